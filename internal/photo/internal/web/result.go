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
	"github.com/ecodeclub/usedtech/internal/photo/internal/domain"
	"github.com/ecodeclub/usedtech/internal/photo/internal/errs"
	"github.com/ecodeclub/usedtech/internal/photo/internal/service"
	"github.com/ecodeclub/usedtech/internal/photo/internal/storage"
)

var (
	systemErrorResult = ginx.Result{
		Code: errs.SystemError.Code,
		Msg:  errs.SystemError.Msg,
	}
	invalidFileResult = ginx.Result{
		Code: errs.InvalidFile.Code,
		Msg:  errs.InvalidFile.Msg,
	}
)

func result(code errs.ErrorCode) ginx.Result {
	return ginx.Result{Code: code.Code, Msg: code.Msg}
}

func errResult(err error) ginx.Result {
	switch {
	case errors.Is(err, domain.ErrUnsupportedContentType),
		errors.Is(err, domain.ErrFileTooLarge),
		errors.Is(err, domain.ErrEmptyFile):
		return invalidFileResult
	case errors.Is(err, service.ErrPhotoLimitExceeded):
		return result(errs.PhotoLimitExceeded)
	case errors.Is(err, service.ErrInvalidOrder):
		return result(errs.InvalidOrder)
	case errors.Is(err, service.ErrPhotoNotFound):
		return result(errs.PhotoNotFound)
	case errors.Is(err, service.ErrItemNotFound):
		return result(errs.ItemNotFound)
	case errors.Is(err, service.ErrInvalidAssetKey):
		return result(errs.InvalidAssetKey)
	case errors.Is(err, storage.ErrStorage),
		errors.Is(err, storage.ErrCredentialUnavailable):
		return result(errs.StorageError)
	default:
		return systemErrorResult
	}
}
