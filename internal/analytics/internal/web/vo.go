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
	"github.com/ecodeclub/usedtech/internal/analytics/internal/domain"
	"github.com/ecodeclub/usedtech/internal/inventory"
)

const maxPageSize = 100

type Page struct {
	Offset int `json:"offset"`
	Limit  int `json:"limit"`
}

func (p Page) normalize() Page {
	if p.Offset < 0 {
		p.Offset = 0
	}
	if p.Limit <= 0 || p.Limit > maxPageSize {
		p.Limit = maxPageSize
	}
	return p
}

type SessionReq struct {
	SessionID string `json:"sessionId"`
}

type SessionResp struct {
	SessionID string `json:"sessionId"`
}

type ViewReq struct {
	ItemID    int64  `json:"itemId"`
	SessionID string `json:"sessionId"`
}

type ViewResp struct {
	Recorded bool `json:"recorded"`
}

type InquiryReq struct {
	ItemID      int64  `json:"itemId"`
	SessionID   string `json:"sessionId"`
	Source      string `json:"source"`
	Message     string `json:"message"`
	Referrer    string `json:"referrer"`
	UTMSource   string `json:"utmSource"`
	UTMMedium   string `json:"utmMedium"`
	UTMCampaign string `json:"utmCampaign"`
}

func (r InquiryReq) toDomain() domain.Inquiry {
	return domain.Inquiry{
		ItemID:      r.ItemID,
		SessionID:   r.SessionID,
		Source:      domain.Source(r.Source),
		Message:     r.Message,
		Referrer:    r.Referrer,
		UTMSource:   r.UTMSource,
		UTMMedium:   r.UTMMedium,
		UTMCampaign: r.UTMCampaign,
	}
}

type Inquiry struct {
	ID          int64  `json:"id"`
	ItemID      int64  `json:"itemId"`
	SessionID   string `json:"sessionId"`
	Source      string `json:"source"`
	Message     string `json:"message"`
	Referrer    string `json:"referrer"`
	UTMSource   string `json:"utmSource"`
	UTMMedium   string `json:"utmMedium"`
	UTMCampaign string `json:"utmCampaign"`
	Ctime       int64  `json:"ctime"`
}

func newInquiry(i domain.Inquiry) Inquiry {
	return Inquiry{
		ID:          i.ID,
		ItemID:      i.ItemID,
		SessionID:   i.SessionID,
		Source:      string(i.Source),
		Message:     i.Message,
		Referrer:    i.Referrer,
		UTMSource:   i.UTMSource,
		UTMMedium:   i.UTMMedium,
		UTMCampaign: i.UTMCampaign,
		Ctime:       i.Ctime.UnixMilli(),
	}
}

type InquiryList struct {
	Total     int64     `json:"total"`
	Inquiries []Inquiry `json:"inquiries"`
}

type ItemStat struct {
	ItemID           int64    `json:"itemId"`
	Title            string   `json:"title"`
	SKU              string   `json:"sku"`
	Status           string   `json:"status"`
	Views7d          int64    `json:"views7d"`
	Views30d         int64    `json:"views30d"`
	Inquiries7d      int64    `json:"inquiries7d"`
	Inquiries30d     int64    `json:"inquiries30d"`
	ConversionPct30d *float64 `json:"conversionPct30d"`
}

func newItemStat(s domain.ItemStat) ItemStat {
	return ItemStat{
		ItemID:           s.ItemID,
		Title:            s.Title,
		SKU:              s.SKU,
		Status:           s.Status,
		Views7d:          s.Views7d,
		Views30d:         s.Views30d,
		Inquiries7d:      s.Inquiries7d,
		Inquiries30d:     s.Inquiries30d,
		ConversionPct30d: s.ConversionPct30d,
	}
}

type ItemStatList struct {
	Total int64      `json:"total"`
	Items []ItemStat `json:"items"`
}

type TopItem struct {
	ItemID int64  `json:"itemId"`
	Title  string `json:"title"`
	SKU    string `json:"sku"`
	Views  int64  `json:"views"`
}

type Dashboard struct {
	StatusCounts     map[string]int64 `json:"statusCounts"`
	SalesCount       int64            `json:"salesCount"`
	SalesRevenue     int64            `json:"salesRevenue"`
	SalesRevenueText string           `json:"salesRevenueText"`
	Inquiries7d      int64            `json:"inquiries7d"`
	TopViewed        *TopItem         `json:"topViewed"`
}

func newDashboard(d domain.Dashboard) Dashboard {
	res := Dashboard{
		StatusCounts:     d.StatusCounts,
		SalesCount:       d.SalesCount,
		SalesRevenue:     d.SalesRevenue,
		SalesRevenueText: inventory.FormatPrice(d.SalesRevenue),
		Inquiries7d:      d.Inquiries7d,
	}
	if d.TopViewed != nil {
		res.TopViewed = &TopItem{
			ItemID: d.TopViewed.ItemID,
			Title:  d.TopViewed.Title,
			SKU:    d.TopViewed.SKU,
			Views:  d.TopViewed.Views,
		}
	}
	return res
}
