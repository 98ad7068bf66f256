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

package domain

import "time"

type Action string

const (
	ActionItemCreated    Action = "item.created"
	ActionItemUpdated    Action = "item.updated"
	ActionItemDeleted    Action = "item.deleted"
	ActionSaleRecorded   Action = "sale.recorded"
	ActionPolicyUpdated  Action = "policy.updated"
	ActionStaffCreated   Action = "staff.created"
	ActionStaffUpdated   Action = "staff.updated"
	ActionPhotoAdded     Action = "photo.added"
	ActionPhotoDeleted   Action = "photo.deleted"
	ActionPhotoReordered Action = "photo.reordered"
)

type EntityType string

// 顺序决定了事件 key 里面的业务编号，只能追加
const (
	EntityTypeItem   EntityType = "item"
	EntityTypeSale   EntityType = "sale"
	EntityTypePolicy EntityType = "policy"
	EntityTypePhoto  EntityType = "photo"
	EntityTypeStaff  EntityType = "staff"
)

var EntityTypes = []EntityType{
	EntityTypeItem,
	EntityTypeSale,
	EntityTypePolicy,
	EntityTypePhoto,
	EntityTypeStaff,
}

func (e EntityType) Biz() (uint, bool) {
	for i, et := range EntityTypes {
		if et == e {
			return uint(i), true
		}
	}
	return 0, false
}

// Event 审计事件，只追加，不修改
type Event struct {
	ID  int64
	Key string
	// 操作者，对应员工的 uid
	ActorID int64
	// 只在读取的时候填充
	ActorName  string
	Action     Action
	EntityType EntityType
	EntityID   string
	Details    map[string]any
	Ctime      time.Time
}
