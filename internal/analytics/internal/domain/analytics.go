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
	"errors"
	"time"

	"github.com/shopspring/decimal"
)

var (
	ErrItemRequired    = errors.New("缺少商品 ID")
	ErrSessionRequired = errors.New("缺少访客会话 ID")
	ErrInvalidSource   = errors.New("咨询来源不合法")
)

// ViewDedupWindow 同一个访客在窗口内重复浏览同一商品只记一次
const ViewDedupWindow = 30 * time.Minute

type Source string

const (
	SourceWhatsApp Source = "whatsapp"
	SourceForm     Source = "form"
)

func (s Source) Valid() bool {
	return s == SourceWhatsApp || s == SourceForm
}

type View struct {
	ItemID    int64
	SessionID string
	Referrer  string
	UserAgent string
	Ctime     time.Time
}

func (v View) Validate() error {
	if v.ItemID <= 0 {
		return ErrItemRequired
	}
	if v.SessionID == "" {
		return ErrSessionRequired
	}
	return nil
}

type Inquiry struct {
	ID          int64
	ItemID      int64
	SessionID   string
	Source      Source
	Message     string
	Referrer    string
	UTMSource   string
	UTMMedium   string
	UTMCampaign string
	Ctime       time.Time
}

// Normalize 没有指定来源的咨询都来自 WhatsApp 按钮
func (i Inquiry) Normalize() (Inquiry, error) {
	if i.ItemID <= 0 {
		return Inquiry{}, ErrItemRequired
	}
	if i.SessionID == "" {
		return Inquiry{}, ErrSessionRequired
	}
	if i.Source == "" {
		i.Source = SourceWhatsApp
	}
	if !i.Source.Valid() {
		return Inquiry{}, ErrInvalidSource
	}
	return i, nil
}

type ItemStat struct {
	ItemID       int64
	Title        string
	SKU          string
	Status       string
	Views7d      int64
	Views30d     int64
	Inquiries7d  int64
	Inquiries30d int64
	// ConversionPct30d 30 天内没有浏览时为 nil
	ConversionPct30d *float64
}

// ConversionPct 咨询数 / 浏览数 × 100，保留一位小数
func ConversionPct(inquiries, views int64) *float64 {
	if views == 0 {
		return nil
	}
	pct, _ := decimal.NewFromInt(inquiries).
		Mul(decimal.NewFromInt(100)).
		Div(decimal.NewFromInt(views)).
		Round(1).
		Float64()
	return &pct
}

type TopItem struct {
	ItemID int64
	Title  string
	SKU    string
	Views  int64
}

type Dashboard struct {
	StatusCounts map[string]int64
	SalesCount   int64
	SalesRevenue int64
	Inquiries7d  int64
	// TopViewed 最近 7 天没有浏览时为 nil
	TopViewed *TopItem
}
