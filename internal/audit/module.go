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

package audit

import (
	"github.com/ecodeclub/usedtech/internal/audit/internal/domain"
	"github.com/ecodeclub/usedtech/internal/audit/internal/event"
	"github.com/ecodeclub/usedtech/internal/audit/internal/service"
	"github.com/ecodeclub/usedtech/internal/audit/internal/web"
)

type (
	Service      = service.Service
	AdminHandler = web.AdminHandler
	Consumer     = event.AuditEventConsumer
	Event        = domain.Event
	Action       = domain.Action
	EntityType   = domain.EntityType
)

const (
	ActionItemCreated    = domain.ActionItemCreated
	ActionItemUpdated    = domain.ActionItemUpdated
	ActionItemDeleted    = domain.ActionItemDeleted
	ActionSaleRecorded   = domain.ActionSaleRecorded
	ActionPolicyUpdated  = domain.ActionPolicyUpdated
	ActionStaffCreated   = domain.ActionStaffCreated
	ActionStaffUpdated   = domain.ActionStaffUpdated
	ActionPhotoAdded     = domain.ActionPhotoAdded
	ActionPhotoDeleted   = domain.ActionPhotoDeleted
	ActionPhotoReordered = domain.ActionPhotoReordered

	EntityTypeItem   = domain.EntityTypeItem
	EntityTypeSale   = domain.EntityTypeSale
	EntityTypePolicy = domain.EntityTypePolicy
	EntityTypePhoto  = domain.EntityTypePhoto
	EntityTypeStaff  = domain.EntityTypeStaff
)

type Module struct {
	Svc      Service
	AdminHdl *AdminHandler
	Consumer *Consumer
}
