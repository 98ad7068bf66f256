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
	"github.com/ecodeclub/usedtech/internal/sale/internal/domain"
	"github.com/ecodeclub/usedtech/internal/sale/internal/errs"
	"github.com/ecodeclub/usedtech/internal/sale/internal/service"
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
	case errors.Is(err, service.ErrItemAlreadySold):
		return result(errs.ItemAlreadySold)
	case errors.Is(err, service.ErrItemNotSellable):
		return result(errs.ItemNotSellable)
	case errors.Is(err, service.ErrReceiptNumber):
		return result(errs.ReceiptNumber)
	case errors.Is(err, service.ErrSaleNotFound):
		return result(errs.SaleNotFound)
	case errors.Is(err, service.ErrReceiptAttached):
		return result(errs.ReceiptAttached)
	case errors.Is(err, domain.ErrInvalidPrice),
		errors.Is(err, domain.ErrInvalidPayment),
		errors.Is(err, domain.ErrInvalidFulfillment),
		errors.Is(err, domain.ErrInvalidSoldAt):
		return ginx.Result{Code: errs.InvalidSale.Code, Msg: err.Error()}
	default:
		return systemErrorResult
	}
}
