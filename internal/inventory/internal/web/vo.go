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

	"github.com/ecodeclub/usedtech/internal/inventory/internal/domain"
	"github.com/ecodeclub/usedtech/internal/photo"
)

const maxPageSize = 100

type Page struct {
	Offset int `json:"offset"`
	Limit  int `json:"limit"`
}

func (p Page) normalize(defaultLimit int) Page {
	if p.Offset < 0 {
		p.Offset = 0
	}
	if p.Limit <= 0 {
		p.Limit = defaultLimit
	}
	if p.Limit > maxPageSize {
		p.Limit = maxPageSize
	}
	return p
}

type ListReq struct {
	Page
	Category string `json:"category"`
	Q        string `json:"q"`
	MinPrice int64  `json:"minPrice" binding:"gte=0"`
	MaxPrice int64  `json:"maxPrice" binding:"gte=0"`
}

type AdminListReq struct {
	ListReq
	Status string `json:"status"`
}

func (r AdminListReq) filter() domain.Filter {
	f := r.ListReq.filter()
	f.Status = domain.Status(r.Status)
	return f
}

func (r ListReq) filter() domain.Filter {
	return domain.Filter{
		Category: domain.Category(r.Category),
		Query:    r.Q,
		MinPrice: r.MinPrice,
		MaxPrice: r.MaxPrice,
	}
}

type IDReq struct {
	ID int64 `json:"id" binding:"required"`
}

type SaveReq struct {
	Item Item `json:"item"`
}

// Item 后台看到的完整商品信息
type Item struct {
	ID                int64             `json:"id"`
	SKU               string            `json:"sku"`
	Slug              string            `json:"slug"`
	Title             string            `json:"title"`
	Category          string            `json:"category"`
	Brand             string            `json:"brand"`
	Model             string            `json:"model"`
	SerialTag         string            `json:"serialTag"`
	Specs             map[string]string `json:"specs"`
	CosmeticGrade     string            `json:"cosmeticGrade"`
	FunctionalGrade   string            `json:"functionalGrade"`
	BatteryCondition  string            `json:"batteryCondition"`
	PublicPrice       int64             `json:"publicPrice"`
	InternalCost      int64             `json:"internalCost"`
	PublicDescription string            `json:"publicDescription"`
	InternalNotes     string            `json:"internalNotes"`
	Status            string            `json:"status"`
	HoldExpiresAt     int64             `json:"holdExpiresAt"`
	StatusChangedAt   int64             `json:"statusChangedAt"`
	StatusChangedBy   int64             `json:"statusChangedBy"`
	Utime             int64             `json:"utime"`
}

func (i Item) toDomain() domain.Item {
	res := domain.Item{
		ID:                i.ID,
		SKU:               i.SKU,
		Title:             i.Title,
		Category:          domain.Category(i.Category),
		Brand:             i.Brand,
		Model:             i.Model,
		SerialTag:         i.SerialTag,
		Specs:             i.Specs,
		CosmeticGrade:     domain.Grade(i.CosmeticGrade),
		FunctionalGrade:   domain.Grade(i.FunctionalGrade),
		BatteryCondition:  domain.BatteryCondition(i.BatteryCondition),
		PublicPrice:       i.PublicPrice,
		InternalCost:      i.InternalCost,
		PublicDescription: i.PublicDescription,
		InternalNotes:     i.InternalNotes,
		Status:            domain.Status(i.Status),
	}
	if i.HoldExpiresAt > 0 {
		res.HoldExpiresAt = time.UnixMilli(i.HoldExpiresAt)
	}
	return res
}

func newItem(i domain.Item) Item {
	res := Item{
		ID:                i.ID,
		SKU:               i.SKU,
		Slug:              i.Slug,
		Title:             i.Title,
		Category:          string(i.Category),
		Brand:             i.Brand,
		Model:             i.Model,
		SerialTag:         i.SerialTag,
		Specs:             i.Specs,
		CosmeticGrade:     string(i.CosmeticGrade),
		FunctionalGrade:   string(i.FunctionalGrade),
		BatteryCondition:  string(i.BatteryCondition),
		PublicPrice:       i.PublicPrice,
		InternalCost:      i.InternalCost,
		PublicDescription: i.PublicDescription,
		InternalNotes:     i.InternalNotes,
		Status:            string(i.Status),
		StatusChangedAt:   i.StatusChangedAt.UnixMilli(),
		StatusChangedBy:   i.StatusChangedBy,
		Utime:             i.Utime.UnixMilli(),
	}
	if !i.HoldExpiresAt.IsZero() {
		res.HoldExpiresAt = i.HoldExpiresAt.UnixMilli()
	}
	return res
}

// UpdateReq 只有出现的字段才会修改
type UpdateReq struct {
	ID                int64             `json:"id" binding:"required"`
	Title             *string           `json:"title"`
	Brand             *string           `json:"brand"`
	Model             *string           `json:"model"`
	SerialTag         *string           `json:"serialTag"`
	Specs             map[string]string `json:"specs"`
	CosmeticGrade     *string           `json:"cosmeticGrade"`
	FunctionalGrade   *string           `json:"functionalGrade"`
	BatteryCondition  *string           `json:"batteryCondition"`
	PublicPrice       *int64            `json:"publicPrice"`
	InternalCost      *int64            `json:"internalCost"`
	PublicDescription *string           `json:"publicDescription"`
	InternalNotes     *string           `json:"internalNotes"`
	Status            *string           `json:"status"`
	HoldExpiresAt     *int64            `json:"holdExpiresAt"`
}

func (r UpdateReq) patch() domain.ItemPatch {
	p := domain.ItemPatch{
		ID:                r.ID,
		Title:             r.Title,
		Brand:             r.Brand,
		Model:             r.Model,
		SerialTag:         r.SerialTag,
		Specs:             r.Specs,
		PublicPrice:       r.PublicPrice,
		InternalCost:      r.InternalCost,
		PublicDescription: r.PublicDescription,
		InternalNotes:     r.InternalNotes,
	}
	if r.CosmeticGrade != nil {
		g := domain.Grade(*r.CosmeticGrade)
		p.CosmeticGrade = &g
	}
	if r.FunctionalGrade != nil {
		g := domain.Grade(*r.FunctionalGrade)
		p.FunctionalGrade = &g
	}
	if r.BatteryCondition != nil {
		b := domain.BatteryCondition(*r.BatteryCondition)
		p.BatteryCondition = &b
	}
	if r.Status != nil {
		st := domain.Status(*r.Status)
		p.Status = &st
	}
	if r.HoldExpiresAt != nil {
		t := time.UnixMilli(*r.HoldExpiresAt)
		p.HoldExpiresAt = &t
	}
	return p
}

type ItemList struct {
	Total int64  `json:"total"`
	Items []Item `json:"items"`
}

// PublicItem 店面展示，不包含成本和内部备注
type PublicItem struct {
	ID               int64             `json:"id"`
	SKU              string            `json:"sku"`
	Slug             string            `json:"slug"`
	Title            string            `json:"title"`
	Category         string            `json:"category"`
	Brand            string            `json:"brand"`
	Model            string            `json:"model"`
	Specs            map[string]string `json:"specs,omitempty"`
	CosmeticGrade    string            `json:"cosmeticGrade"`
	FunctionalGrade  string            `json:"functionalGrade"`
	BatteryCondition string            `json:"batteryCondition"`
	Price            int64             `json:"price"`
	PriceText        string            `json:"priceText"`
	Currency         string            `json:"currency"`
	Description      string            `json:"description,omitempty"`
	Status           string            `json:"status"`
	PrimaryPhoto     string            `json:"primaryPhoto,omitempty"`
	Photos           []Photo           `json:"photos,omitempty"`
	WhatsAppLink     string            `json:"whatsappLink,omitempty"`
	Ctime            int64             `json:"ctime"`
}

func newPublicItem(i domain.Item, store domain.StoreConfig) PublicItem {
	return PublicItem{
		ID:               i.ID,
		SKU:              i.SKU,
		Slug:             i.Slug,
		Title:            i.Title,
		Category:         string(i.Category),
		Brand:            i.Brand,
		Model:            i.Model,
		CosmeticGrade:    string(i.CosmeticGrade),
		FunctionalGrade:  string(i.FunctionalGrade),
		BatteryCondition: string(i.BatteryCondition),
		Price:            i.PublicPrice,
		PriceText:        domain.FormatPrice(i.PublicPrice),
		Currency:         store.Currency,
		Status:           string(i.Status),
		Ctime:            i.Ctime.UnixMilli(),
	}
}

type Photo struct {
	URL      string `json:"url"`
	AltText  string `json:"altText"`
	Position int    `json:"position"`
}

func newPhoto(p photo.Photo) Photo {
	return Photo{
		URL:      p.URL,
		AltText:  p.AltText,
		Position: p.Position,
	}
}

type PublicItemList struct {
	Total int64        `json:"total"`
	Items []PublicItem `json:"items"`
}
