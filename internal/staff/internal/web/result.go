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
	"github.com/ecodeclub/ginx"
	"github.com/ecodeclub/usedtech/internal/staff/internal/errs"
)

var (
	systemErrorResult = ginx.Result{
		Code: errs.SystemError.Code,
		Msg:  errs.SystemError.Msg,
	}
	invalidRoleResult = ginx.Result{
		Code: errs.InvalidRole.Code,
		Msg:  errs.InvalidRole.Msg,
	}
	staffDuplicatedResult = ginx.Result{
		Code: errs.StaffDuplicated.Code,
		Msg:  errs.StaffDuplicated.Msg,
	}
	staffNotFoundResult = ginx.Result{
		Code: errs.StaffNotFound.Code,
		Msg:  errs.StaffNotFound.Msg,
	}
)
