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

package sale

import (
	"github.com/ecodeclub/usedtech/internal/sale/internal/domain"
	"github.com/ecodeclub/usedtech/internal/sale/internal/service"
	"github.com/ecodeclub/usedtech/internal/sale/internal/web"
)

type (
	Service       = service.Service
	AdminHandler  = web.AdminHandler
	Sale          = domain.Sale
	Summary       = domain.Summary
	PaymentMethod = domain.PaymentMethod
	RecordRequest = domain.RecordRequest
)

const (
	PaymentCash         = domain.PaymentCash
	PaymentBankTransfer = domain.PaymentBankTransfer
	PaymentMobileMoney  = domain.PaymentMobileMoney
	PaymentOther        = domain.PaymentOther
)

type Module struct {
	Svc      Service
	AdminHdl *AdminHandler
}
