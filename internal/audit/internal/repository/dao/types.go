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

package dao

import (
	"database/sql"

	"github.com/ecodeclub/ekit/sqlx"
)

type AuditEvent struct {
	Id         int64                           `gorm:"primaryKey,autoIncrement"`
	EventKey   string                          `gorm:"type:varchar(64);uniqueIndex;not null;comment:事件唯一键,重复投递时据此去重"`
	ActorId    int64                           `gorm:"index;comment:操作者uid"`
	Action     string                          `gorm:"type:varchar(32);index;not null"`
	EntityType string                          `gorm:"type:varchar(16);index:idx_entity;not null"`
	EntityId   string                          `gorm:"type:varchar(64);index:idx_entity;not null"`
	Details    sqlx.JsonColumn[map[string]any] `gorm:"type:json;comment:事件详情"`
	Ctime      int64
}

func (AuditEvent) TableName() string {
	return "audit_events"
}

// AuditEventWithActor 关联员工表之后的结果
type AuditEventWithActor struct {
	AuditEvent `gorm:"embedded"`
	ActorName  sql.NullString
}
