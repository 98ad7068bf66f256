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
	"github.com/ecodeclub/usedtech/internal/inventory/internal/domain"
	"github.com/ecodeclub/usedtech/internal/inventory/internal/errs"
	"github.com/ecodeclub/usedtech/internal/inventory/internal/service"
)

var systemErrorResult = ginx.Result{
	Code: errs.SystemError.Code,
	Msg:  errs.SystemError.Msg,
}

func result(code errs.ErrorCode) ginx.Result {
	return ginx.Result{Code: code.Code, Msg: code.Msg}
}

func errResult(err error) ginx.Result {
	switch {
	case errors.Is(err, service.ErrItemNotFound):
		return result(errs.ItemNotFound)
	case errors.Is(err, service.ErrSoldViaUpdate):
		return result(errs.SoldViaUpdate)
	case errors.Is(err, service.ErrSKUConflict):
		return result(errs.SKUConflict)
	case errors.Is(err, service.ErrStatusChanged):
		return result(errs.StatusChanged)
	case errors.Is(err, domain.ErrTitleRequired),
		errors.Is(err, domain.ErrInvalidCategory),
		errors.Is(err, domain.ErrInvalidPrice),
		errors.Is(err, domain.ErrInvalidGrade),
		errors.Is(err, domain.ErrInvalidBattery),
		errors.Is(err, domain.ErrInvalidStatus):
		return ginx.Result{Code: errs.InvalidItem.Code, Msg: err.Error()}
	default:
		return systemErrorResult
	}
}
