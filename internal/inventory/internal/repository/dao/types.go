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
	"github.com/ecodeclub/ekit/sqlx"
)

type InventoryItem struct {
	Id                int64                              `gorm:"primaryKey,autoIncrement"`
	Sku               string                             `gorm:"type:varchar(32);uniqueIndex;not null"`
	Slug              string                             `gorm:"type:varchar(256);uniqueIndex;not null"`
	Title             string                             `gorm:"type:varchar(256);not null"`
	Category          string                             `gorm:"type:varchar(16);index;not null"`
	Brand             string                             `gorm:"type:varchar(64)"`
	Model             string                             `gorm:"type:varchar(128)"`
	SerialTag         string                             `gorm:"type:varchar(128);comment:序列号或者资产标签"`
	Specs             sqlx.JsonColumn[map[string]string] `gorm:"type:json"`
	CosmeticGrade     string                             `gorm:"type:varchar(1)"`
	FunctionalGrade   string                             `gorm:"type:varchar(1)"`
	BatteryCondition  string                             `gorm:"type:varchar(16)"`
	PublicPrice       int64                              `gorm:"not null;comment:最小货币单位"`
	InternalCost      int64                              `gorm:"comment:进货成本,不对外展示"`
	PublicDescription string                             `gorm:"type:text"`
	InternalNotes     string                             `gorm:"type:text;comment:内部备注,不对外展示"`
	Status            string                             `gorm:"type:varchar(16);index:idx_status_changed,priority:1;not null;default:'AVAILABLE'"`
	HoldExpiresAt     int64                              `gorm:"comment:预留到期时间,0表示没有预留"`
	StatusChangedAt   int64                              `gorm:"index:idx_status_changed,priority:2"`
	StatusChangedBy   int64
	CreatedBy         int64
	UpdatedBy         int64
	Ctime             int64 `gorm:"index"`
	Utime             int64
}

func (InventoryItem) TableName() string {
	return "inventory_items"
}

type StatusCount struct {
	Status string
	Cnt    int64
}
