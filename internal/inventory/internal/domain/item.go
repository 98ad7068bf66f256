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

import (
	"time"
)

type Category string

const (
	CategoryLaptop    Category = "laptop"
	CategoryDesktop   Category = "desktop"
	CategoryTablet    Category = "tablet"
	CategoryPhone     Category = "phone"
	CategoryAccessory Category = "accessory"
	CategoryOther     Category = "other"
)

var skuPrefixes = map[Category]string{
	CategoryLaptop:    "LAP",
	CategoryDesktop:   "DSK",
	CategoryTablet:    "TAB",
	CategoryPhone:     "PHN",
	CategoryAccessory: "ACC",
	CategoryOther:     "OTH",
}

func (c Category) Valid() bool {
	_, ok := skuPrefixes[c]
	return ok
}

func (c Category) SKUPrefix() string {
	return skuPrefixes[c]
}

type Status string

const (
	StatusAvailable Status = "AVAILABLE"
	StatusOnHold    Status = "ON_HOLD"
	StatusSold      Status = "SOLD"
	StatusReturned  Status = "RETURNED"
)

var Statuses = []Status{StatusAvailable, StatusOnHold, StatusSold, StatusReturned}

func (s Status) Valid() bool {
	switch s {
	case StatusAvailable, StatusOnHold, StatusSold, StatusReturned:
		return true
	}
	return false
}

type Grade string

const (
	GradeA Grade = "A"
	GradeB Grade = "B"
	GradeC Grade = "C"
)

func (g Grade) Valid() bool {
	return g == GradeA || g == GradeB || g == GradeC
}

type BatteryCondition string

const (
	BatteryExcellent BatteryCondition = "Excellent"
	BatteryGood      BatteryCondition = "Good"
	BatteryFair      BatteryCondition = "Fair"
	BatteryPoor      BatteryCondition = "Poor"
	BatteryNA        BatteryCondition = "N/A"
)

func (b BatteryCondition) Valid() bool {
	switch b {
	case BatteryExcellent, BatteryGood, BatteryFair, BatteryPoor, BatteryNA:
		return true
	}
	return false
}

// Item 库存商品
// InternalCost 和 InternalNotes 只在后台可见
type Item struct {
	ID                int64
	SKU               string
	Slug              string
	Title             string
	Category          Category
	Brand             string
	Model             string
	SerialTag         string
	Specs             map[string]string
	CosmeticGrade     Grade
	FunctionalGrade   Grade
	BatteryCondition  BatteryCondition
	PublicPrice       int64
	InternalCost      int64
	PublicDescription string
	InternalNotes     string
	Status            Status
	HoldExpiresAt     time.Time
	StatusChangedAt   time.Time
	StatusChangedBy   int64
	CreatedBy         int64
	UpdatedBy         int64
	Ctime             time.Time
	Utime             time.Time
}

func (i Item) Validate() error {
	if i.Title == "" {
		return ErrTitleRequired
	}
	if !i.Category.Valid() {
		return ErrInvalidCategory
	}
	if i.PublicPrice < 0 || i.InternalCost < 0 {
		return ErrInvalidPrice
	}
	if i.CosmeticGrade != "" && !i.CosmeticGrade.Valid() {
		return ErrInvalidGrade
	}
	if i.FunctionalGrade != "" && !i.FunctionalGrade.Valid() {
		return ErrInvalidGrade
	}
	if i.BatteryCondition != "" && !i.BatteryCondition.Valid() {
		return ErrInvalidBattery
	}
	if i.Status != "" && !i.Status.Valid() {
		return ErrInvalidStatus
	}
	return nil
}

// ItemPatch 部分更新，nil 表示不修改
type ItemPatch struct {
	ID                int64
	Title             *string
	Brand             *string
	Model             *string
	SerialTag         *string
	Specs             map[string]string
	CosmeticGrade     *Grade
	FunctionalGrade   *Grade
	BatteryCondition  *BatteryCondition
	PublicPrice       *int64
	InternalCost      *int64
	PublicDescription *string
	InternalNotes     *string
	Status            *Status
	HoldExpiresAt     *time.Time
}

func (p ItemPatch) Validate() error {
	if p.Title != nil && *p.Title == "" {
		return ErrTitleRequired
	}
	if (p.PublicPrice != nil && *p.PublicPrice < 0) || (p.InternalCost != nil && *p.InternalCost < 0) {
		return ErrInvalidPrice
	}
	if (p.CosmeticGrade != nil && !p.CosmeticGrade.Valid()) ||
		(p.FunctionalGrade != nil && !p.FunctionalGrade.Valid()) {
		return ErrInvalidGrade
	}
	if p.BatteryCondition != nil && !p.BatteryCondition.Valid() {
		return ErrInvalidBattery
	}
	if p.Status != nil {
		if !p.Status.Valid() {
			return ErrInvalidStatus
		}
		// 售出只能走销售记录
		if *p.Status == StatusSold {
			return ErrSoldViaUpdate
		}
	}
	return nil
}

type Filter struct {
	Category Category
	Status   Status
	// Query 匹配标题、品牌、型号和 SKU
	Query    string
	MinPrice int64
	MaxPrice int64
	// ExcludeStatuses 店面隐藏的状态
	ExcludeStatuses []Status
}

// IsZero 没有任何用户输入的筛选条件
func (f Filter) IsZero() bool {
	return f.Category == "" && f.Status == "" && f.Query == "" &&
		f.MinPrice == 0 && f.MaxPrice == 0
}

type StatusCount struct {
	Status Status
	Count  int64
}
