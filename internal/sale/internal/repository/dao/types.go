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

type Sale struct {
	Id               int64          `gorm:"primaryKey,autoIncrement"`
	ReceiptNumber    string         `gorm:"type:varchar(32);uniqueIndex;not null"`
	ItemId           int64          `gorm:"index;not null"`
	BuyerName        string         `gorm:"type:varchar(128)"`
	BuyerPhone       string         `gorm:"type:varchar(32)"`
	SalePrice        int64          `gorm:"not null;comment:成交价,最小货币单位"`
	PaymentMethod    string         `gorm:"type:varchar(16);not null"`
	FulfillmentType  string         `gorm:"type:varchar(16);not null;default:'pickup'"`
	DeliveryNotes    string         `gorm:"type:varchar(512)"`
	WarrantySnapshot sql.NullString `gorm:"type:text;comment:成交时的保修政策"`
	ReturnsSnapshot  sql.NullString `gorm:"type:text;comment:成交时的退货政策"`
	ReceiptUrl       sql.NullString `gorm:"type:varchar(512)"`
	SoldAt           int64          `gorm:"index"`
	RecordedBy       int64
	Ctime            int64
	Utime            int64
}

func (Sale) TableName() string {
	return "sales"
}

// auditEvent 和审计模块写同一张表，销售记录要求它和销售在同一个事务里
type auditEvent struct {
	Id         int64 `gorm:"primaryKey,autoIncrement"`
	EventKey   string
	ActorId    int64
	Action     string
	EntityType string
	EntityId   string
	Details    sqlx.JsonColumn[map[string]any]
	Ctime      int64
}

func (auditEvent) TableName() string {
	return "audit_events"
}

type Summary struct {
	Cnt     int64
	Revenue int64
}
