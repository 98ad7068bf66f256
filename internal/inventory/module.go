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

package inventory

import (
	"github.com/ecodeclub/usedtech/internal/inventory/internal/domain"
	"github.com/ecodeclub/usedtech/internal/inventory/internal/event"
	"github.com/ecodeclub/usedtech/internal/inventory/internal/job"
	"github.com/ecodeclub/usedtech/internal/inventory/internal/service"
	"github.com/ecodeclub/usedtech/internal/inventory/internal/web"
)

type (
	Service                = service.Service
	Handler                = web.Handler
	AdminHandler           = web.AdminHandler
	Consumer               = event.InventoryEventConsumer
	ReleaseExpiredHoldsJob = job.ReleaseExpiredHoldsJob
	Item                   = domain.Item
	Status                 = domain.Status
	Category               = domain.Category
	StoreConfig            = domain.StoreConfig
	Filter                 = domain.Filter
)

const (
	StatusAvailable = domain.StatusAvailable
	StatusOnHold    = domain.StatusOnHold
	StatusSold      = domain.StatusSold
	StatusReturned  = domain.StatusReturned

	CategoryLaptop = domain.CategoryLaptop
	CategoryPhone  = domain.CategoryPhone
)

var (
	ErrItemNotFound = service.ErrItemNotFound
	FormatPrice     = domain.FormatPrice
)

type Module struct {
	Svc                    Service
	Hdl                    *Handler
	AdminHdl               *AdminHandler
	Consumer               *Consumer
	ReleaseExpiredHoldsJob *ReleaseExpiredHoldsJob
}
