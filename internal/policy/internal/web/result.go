// Copyright 2023 ecodeclub
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
// http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package web

import (
	"errors"

	"github.com/ecodeclub/ginx"
	"github.com/ecodeclub/usedtech/internal/policy/internal/errs"
	"github.com/ecodeclub/usedtech/internal/policy/internal/service"
)

var (
	systemErrorResult = ginx.Result{
		Code: errs.SystemError.Code,
		Msg:  errs.SystemError.Msg,
	}
	invalidTypeResult = ginx.Result{
		Code: errs.InvalidType.Code,
		Msg:  errs.InvalidType.Msg,
	}
	policyNotFoundResult = ginx.Result{
		Code: errs.PolicyNotFound.Code,
		Msg:  errs.PolicyNotFound.Msg,
	}
)

func errResult(err error) ginx.Result {
	switch {
	case errors.Is(err, service.ErrInvalidType):
		return invalidTypeResult
	case errors.Is(err, service.ErrPolicyNotFound):
		return policyNotFoundResult
	default:
		return systemErrorResult
	}
}
