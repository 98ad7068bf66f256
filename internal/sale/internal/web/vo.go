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

package web

import (
	"time"

	"github.com/ecodeclub/usedtech/internal/inventory"
	"github.com/ecodeclub/usedtech/internal/sale/internal/domain"
)

const maxPageSize = 100

type RecordReq struct {
	ItemID          int64  `json:"itemId" binding:"required"`
	BuyerName       string `json:"buyerName"`
	BuyerPhone      string `json:"buyerPhone"`
	SalePrice       int64  `json:"salePrice" binding:"gte=0"`
	PaymentMethod   string `json:"paymentMethod" binding:"required"`
	FulfillmentType string `json:"fulfillmentType"`
	DeliveryNotes   string `json:"deliveryNotes"`
	// SoldAt 毫秒，不传表示当前时间
	SoldAt int64 `json:"soldAt" binding:"gte=0"`
}

func (r RecordReq) toDomain(actor int64) domain.RecordRequest {
	var soldAt time.Time
	if r.SoldAt > 0 {
		soldAt = time.UnixMilli(r.SoldAt)
	}
	return domain.RecordRequest{
		ItemID:          r.ItemID,
		BuyerName:       r.BuyerName,
		BuyerPhone:      r.BuyerPhone,
		SalePrice:       r.SalePrice,
		PaymentMethod:   domain.PaymentMethod(r.PaymentMethod),
		FulfillmentType: domain.FulfillmentType(r.FulfillmentType),
		DeliveryNotes:   r.DeliveryNotes,
		SoldAt:          soldAt,
		Actor:           actor,
	}
}

type RecordResp struct {
	ReceiptNumber string `json:"receiptNumber"`
}

type IDReq struct {
	ID int64 `json:"id" binding:"required"`
}

type ReceiptNumberReq struct {
	ReceiptNumber string `json:"receiptNumber" binding:"required"`
}

type AttachReq struct {
	ID  int64  `json:"id" binding:"required"`
	URL string `json:"url" binding:"required,url"`
}

// ListReq From 和 To 是毫秒时间戳，0 表示不限
type ListReq struct {
	Offset int   `json:"offset"`
	Limit  int   `json:"limit"`
	From   int64 `json:"from"`
	To     int64 `json:"to"`
}

func (r ListReq) normalize() ListReq {
	if r.Offset < 0 {
		r.Offset = 0
	}
	if r.Limit <= 0 || r.Limit > maxPageSize {
		r.Limit = maxPageSize
	}
	return r
}

func (r ListReq) filter() domain.ListFilter {
	var f domain.ListFilter
	if r.From > 0 {
		f.From = time.UnixMilli(r.From)
	}
	if r.To > 0 {
		f.To = time.UnixMilli(r.To)
	}
	return f
}

type Sale struct {
	ID              int64   `json:"id"`
	ReceiptNumber   string  `json:"receiptNumber"`
	ItemID          int64   `json:"itemId"`
	BuyerName       string  `json:"buyerName"`
	BuyerPhone      string  `json:"buyerPhone"`
	SalePrice       int64   `json:"salePrice"`
	PriceText       string  `json:"priceText"`
	PaymentMethod   string  `json:"paymentMethod"`
	FulfillmentType string  `json:"fulfillmentType"`
	DeliveryNotes   string  `json:"deliveryNotes"`
	WarrantyPolicy  *string `json:"warrantyPolicy"`
	ReturnsPolicy   *string `json:"returnsPolicy"`
	ReceiptURL      string  `json:"receiptUrl"`
	SoldAt          int64   `json:"soldAt"`
	RecordedBy      int64   `json:"recordedBy"`
}

func newSale(s domain.Sale) Sale {
	return Sale{
		ID:              s.ID,
		ReceiptNumber:   s.ReceiptNumber,
		ItemID:          s.ItemID,
		BuyerName:       s.BuyerName,
		BuyerPhone:      s.BuyerPhone,
		SalePrice:       s.SalePrice,
		PriceText:       inventory.FormatPrice(s.SalePrice),
		PaymentMethod:   string(s.PaymentMethod),
		FulfillmentType: string(s.FulfillmentType),
		DeliveryNotes:   s.DeliveryNotes,
		WarrantyPolicy:  s.Policies.Warranty,
		ReturnsPolicy:   s.Policies.Returns,
		ReceiptURL:      s.ReceiptURL,
		SoldAt:          s.SoldAt.UnixMilli(),
		RecordedBy:      s.RecordedBy,
	}
}

type ItemSummary struct {
	ID    int64  `json:"id"`
	SKU   string `json:"sku"`
	Title string `json:"title"`
	Brand string `json:"brand"`
	Model string `json:"model"`
}

type Receipt struct {
	Sale Sale        `json:"sale"`
	Item ItemSummary `json:"item"`
}

func newReceipt(r domain.Receipt) Receipt {
	return Receipt{
		Sale: newSale(r.Sale),
		Item: ItemSummary{
			ID:    r.Item.ID,
			SKU:   r.Item.SKU,
			Title: r.Item.Title,
			Brand: r.Item.Brand,
			Model: r.Item.Model,
		},
	}
}

type SaleList struct {
	Total int64  `json:"total"`
	Sales []Sale `json:"sales"`
}
