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
)

type PaymentMethod string

const (
	PaymentCash         PaymentMethod = "cash"
	PaymentBankTransfer PaymentMethod = "bank_transfer"
	PaymentMobileMoney  PaymentMethod = "mobile_money"
	PaymentOther        PaymentMethod = "other"
)

func (p PaymentMethod) Valid() bool {
	switch p {
	case PaymentCash, PaymentBankTransfer, PaymentMobileMoney, PaymentOther:
		return true
	}
	return false
}

type FulfillmentType string

const (
	FulfillmentPickup   FulfillmentType = "pickup"
	FulfillmentDelivery FulfillmentType = "delivery"
)

func (f FulfillmentType) Valid() bool {
	return f == FulfillmentPickup || f == FulfillmentDelivery
}

var (
	ErrInvalidPrice       = errors.New("成交价不能为负数")
	ErrInvalidPayment     = errors.New("付款方式不合法")
	ErrInvalidFulfillment = errors.New("交付方式不合法")
	ErrInvalidSoldAt      = errors.New("成交时间不能晚于当前时间")
)

// PolicySnapshot 成交时的保修、退货政策原文，之后修改政策不影响已有的销售
type PolicySnapshot struct {
	Warranty *string
	Returns  *string
}

// Sale 销售记录，写入之后只有 ReceiptURL 可以补充一次
type Sale struct {
	ID              int64
	ReceiptNumber   string
	ItemID          int64
	BuyerName       string
	BuyerPhone      string
	SalePrice       int64
	PaymentMethod   PaymentMethod
	FulfillmentType FulfillmentType
	DeliveryNotes   string
	Policies        PolicySnapshot
	ReceiptURL      string
	SoldAt          time.Time
	RecordedBy      int64
	Ctime           time.Time
}

// RecordRequest 录入一笔销售需要的信息
type RecordRequest struct {
	ItemID          int64
	BuyerName       string
	BuyerPhone      string
	SalePrice       int64
	PaymentMethod   PaymentMethod
	FulfillmentType FulfillmentType
	DeliveryNotes   string
	// SoldAt 补录之前的销售时填写，零值表示当前时间
	SoldAt time.Time
	Actor  int64
}

func (r RecordRequest) Validate() error {
	if r.SalePrice < 0 {
		return ErrInvalidPrice
	}
	if !r.PaymentMethod.Valid() {
		return ErrInvalidPayment
	}
	if r.FulfillmentType != "" && !r.FulfillmentType.Valid() {
		return ErrInvalidFulfillment
	}
	if r.SoldAt.After(time.Now()) {
		return ErrInvalidSoldAt
	}
	return nil
}

// ItemSummary 收据上展示的商品信息
type ItemSummary struct {
	ID    int64
	SKU   string
	Title string
	Brand string
	Model string
}

type Receipt struct {
	Sale Sale
	Item ItemSummary
}

type ListFilter struct {
	// From 和 To 为零值表示不限
	From time.Time
	To   time.Time
}

type Summary struct {
	Count   int64
	Revenue int64
}
