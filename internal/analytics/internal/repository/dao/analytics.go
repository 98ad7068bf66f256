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
	"context"
	"time"

	"github.com/ego-component/egorm"
	"gorm.io/gorm"
)

var ErrRecordNotFound = gorm.ErrRecordNotFound

//go:generate mockgen -source=./analytics.go -package=daomocks -destination=mocks/analytics.mock.go AnalyticsDAO
type AnalyticsDAO interface {
	InsertView(ctx context.Context, v PageView) error
	// HasViewSince since 之后是否已经有这个访客对这个商品的浏览
	HasViewSince(ctx context.Context, itemID int64, sessionID string, since int64) (bool, error)
	InsertInquiry(ctx context.Context, i Inquiry) (int64, error)
	ListInquiries(ctx context.Context, offset, limit int) ([]Inquiry, error)
	CountInquiries(ctx context.Context) (int64, error)
	CountInquiriesSince(ctx context.Context, since int64) (int64, error)
	ViewCountsSince(ctx context.Context, itemIDs []int64, since int64) ([]ItemCount, error)
	InquiryCountsSince(ctx context.Context, itemIDs []int64, since int64) ([]ItemCount, error)
	// TopViewedSince 没有任何浏览时返回 ErrRecordNotFound
	TopViewedSince(ctx context.Context, since int64) (ItemCount, error)
}

type GORMAnalyticsDAO struct {
	db *egorm.Component
}

func NewGORMAnalyticsDAO(db *egorm.Component) AnalyticsDAO {
	return &GORMAnalyticsDAO{db: db}
}

func (g *GORMAnalyticsDAO) InsertView(ctx context.Context, v PageView) error {
	if v.Ctime == 0 {
		v.Ctime = time.Now().UnixMilli()
	}
	return g.db.WithContext(ctx).Create(&v).Error
}

func (g *GORMAnalyticsDAO) HasViewSince(ctx context.Context, itemID int64, sessionID string, since int64) (bool, error) {
	var ids []int64
	err := g.db.WithContext(ctx).Model(&PageView{}).
		Where("item_id = ? AND session_id = ? AND ctime >= ?", itemID, sessionID, since).
		Limit(1).
		Pluck("id", &ids).Error
	return len(ids) > 0, err
}

func (g *GORMAnalyticsDAO) InsertInquiry(ctx context.Context, i Inquiry) (int64, error) {
	i.Ctime = time.Now().UnixMilli()
	err := g.db.WithContext(ctx).Create(&i).Error
	return i.Id, err
}

func (g *GORMAnalyticsDAO) ListInquiries(ctx context.Context, offset, limit int) ([]Inquiry, error) {
	var res []Inquiry
	err := g.db.WithContext(ctx).
		Order("ctime DESC, id DESC").
		Offset(offset).Limit(limit).
		Find(&res).Error
	return res, err
}

func (g *GORMAnalyticsDAO) CountInquiries(ctx context.Context) (int64, error) {
	var res int64
	err := g.db.WithContext(ctx).Model(&Inquiry{}).Count(&res).Error
	return res, err
}

func (g *GORMAnalyticsDAO) CountInquiriesSince(ctx context.Context, since int64) (int64, error) {
	var res int64
	err := g.db.WithContext(ctx).Model(&Inquiry{}).
		Where("ctime >= ?", since).
		Count(&res).Error
	return res, err
}

func (g *GORMAnalyticsDAO) ViewCountsSince(ctx context.Context, itemIDs []int64, since int64) ([]ItemCount, error) {
	return g.countsSince(ctx, &PageView{}, itemIDs, since)
}

func (g *GORMAnalyticsDAO) InquiryCountsSince(ctx context.Context, itemIDs []int64, since int64) ([]ItemCount, error) {
	return g.countsSince(ctx, &Inquiry{}, itemIDs, since)
}

func (g *GORMAnalyticsDAO) countsSince(ctx context.Context, model any, itemIDs []int64, since int64) ([]ItemCount, error) {
	var res []ItemCount
	if len(itemIDs) == 0 {
		return res, nil
	}
	err := g.db.WithContext(ctx).Model(model).
		Select("item_id, COUNT(*) AS cnt").
		Where("item_id IN ? AND ctime >= ?", itemIDs, since).
		Group("item_id").
		Scan(&res).Error
	return res, err
}

func (g *GORMAnalyticsDAO) TopViewedSince(ctx context.Context, since int64) (ItemCount, error) {
	var res []ItemCount
	err := g.db.WithContext(ctx).Model(&PageView{}).
		Select("item_id, COUNT(*) AS cnt").
		Where("ctime >= ?", since).
		Group("item_id").
		Order("cnt DESC, item_id ASC").
		Limit(1).
		Scan(&res).Error
	if err != nil {
		return ItemCount{}, err
	}
	if len(res) == 0 {
		return ItemCount{}, ErrRecordNotFound
	}
	return res[0], nil
}

func InitTables(db *egorm.Component) error {
	return db.AutoMigrate(&PageView{}, &Inquiry{})
}
