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

package repository

import (
	"context"
	"time"

	"github.com/ecodeclub/ekit/slice"
	"github.com/ecodeclub/ekit/sqlx"
	"github.com/ecodeclub/usedtech/internal/inventory/internal/domain"
	"github.com/ecodeclub/usedtech/internal/inventory/internal/repository/cache"
	"github.com/ecodeclub/usedtech/internal/inventory/internal/repository/dao"
	"github.com/gotomicro/ego/core/elog"
)

var (
	ErrItemNotFound = dao.ErrRecordNotFound
	ErrDuplicated   = dao.ErrDuplicated
	// ErrStatusConflict 状态变更时发现商品已经不是读取时的状态
	ErrStatusConflict = dao.ErrStatusConflict
)

//go:generate mockgen -source=./item.go -package=repomocks -destination=mocks/item.mock.go ItemRepository
type ItemRepository interface {
	Create(ctx context.Context, item domain.Item) (int64, error)
	// Update from 不为空时按照旧状态做条件更新
	Update(ctx context.Context, patch domain.ItemPatch, from domain.Status, changes map[string]any) error
	Delete(ctx context.Context, id int64) error
	FindByID(ctx context.Context, id int64) (domain.Item, error)
	FindByIDs(ctx context.Context, ids []int64) ([]domain.Item, error)
	// FindBySlug 店面详情页，优先读缓存
	FindBySlug(ctx context.Context, slug string) (domain.Item, error)
	List(ctx context.Context, filter domain.Filter, offset, limit int) ([]domain.Item, error)
	Count(ctx context.Context, filter domain.Filter) (int64, error)
	// HomeList 不带筛选条件的第一页，走缓存
	HomeList(ctx context.Context, filter domain.Filter, limit int) ([]domain.Item, int64, error)
	ListSold(ctx context.Context, offset, limit int) ([]domain.Item, error)
	CountByCategory(ctx context.Context, category domain.Category) (int64, error)
	CountByStatus(ctx context.Context) ([]domain.StatusCount, error)
	ReleaseExpiredHolds(ctx context.Context, now time.Time, limit int) ([]domain.Item, error)
	Invalidate(ctx context.Context, slug string) error
}

type itemRepository struct {
	dao    dao.ItemDAO
	cache  cache.ItemCache
	logger *elog.Component
}

func NewItemRepository(d dao.ItemDAO, c cache.ItemCache) ItemRepository {
	return &itemRepository{
		dao:    d,
		cache:  c,
		logger: elog.DefaultLogger,
	}
}

func (r *itemRepository) Create(ctx context.Context, item domain.Item) (int64, error) {
	return r.dao.Insert(ctx, r.toEntity(item))
}

// Update changes 由 service 根据 patch 计算出来的额外字段，例如状态变更时间
func (r *itemRepository) Update(ctx context.Context, patch domain.ItemPatch, from domain.Status, changes map[string]any) error {
	fields := make(map[string]any, len(changes)+8)
	setIf(fields, "title", patch.Title)
	setIf(fields, "brand", patch.Brand)
	setIf(fields, "model", patch.Model)
	setIf(fields, "serial_tag", patch.SerialTag)
	setIf(fields, "public_price", patch.PublicPrice)
	setIf(fields, "internal_cost", patch.InternalCost)
	setIf(fields, "public_description", patch.PublicDescription)
	setIf(fields, "internal_notes", patch.InternalNotes)
	if patch.CosmeticGrade != nil {
		fields["cosmetic_grade"] = string(*patch.CosmeticGrade)
	}
	if patch.FunctionalGrade != nil {
		fields["functional_grade"] = string(*patch.FunctionalGrade)
	}
	if patch.BatteryCondition != nil {
		fields["battery_condition"] = string(*patch.BatteryCondition)
	}
	if patch.Specs != nil {
		fields["specs"] = sqlx.JsonColumn[map[string]string]{Val: patch.Specs, Valid: true}
	}
	for k, v := range changes {
		fields[k] = v
	}
	return r.dao.Update(ctx, patch.ID, string(from), fields)
}

func setIf[T any](fields map[string]any, column string, val *T) {
	if val != nil {
		fields[column] = *val
	}
}

func (r *itemRepository) Delete(ctx context.Context, id int64) error {
	return r.dao.Delete(ctx, id)
}

func (r *itemRepository) FindByID(ctx context.Context, id int64) (domain.Item, error) {
	item, err := r.dao.FindByID(ctx, id)
	if err != nil {
		return domain.Item{}, err
	}
	return r.toDomain(item), nil
}

func (r *itemRepository) FindByIDs(ctx context.Context, ids []int64) ([]domain.Item, error) {
	if len(ids) == 0 {
		return nil, nil
	}
	items, err := r.dao.FindByIDs(ctx, ids)
	if err != nil {
		return nil, err
	}
	return slice.Map(items, func(idx int, src dao.InventoryItem) domain.Item {
		return r.toDomain(src)
	}), nil
}

func (r *itemRepository) FindBySlug(ctx context.Context, slug string) (domain.Item, error) {
	item, err := r.cache.GetItem(ctx, slug)
	if err == nil {
		return item, nil
	}
	entity, err := r.dao.FindBySlug(ctx, slug)
	if err != nil {
		return domain.Item{}, err
	}
	item = r.toDomain(entity)
	if err = r.cache.SetItem(ctx, item); err != nil {
		r.logger.Error("缓存商品详情失败", elog.FieldErr(err), elog.String("slug", slug))
	}
	return item, nil
}

func (r *itemRepository) List(ctx context.Context, filter domain.Filter, offset, limit int) ([]domain.Item, error) {
	items, err := r.dao.List(ctx, filter, offset, limit)
	if err != nil {
		return nil, err
	}
	return slice.Map(items, func(idx int, src dao.InventoryItem) domain.Item {
		return r.toDomain(src)
	}), nil
}

func (r *itemRepository) Count(ctx context.Context, filter domain.Filter) (int64, error) {
	return r.dao.Count(ctx, filter)
}

func (r *itemRepository) HomeList(ctx context.Context, filter domain.Filter, limit int) ([]domain.Item, int64, error) {
	items, total, err := r.cache.GetHomeList(ctx)
	if err == nil {
		return items, total, nil
	}
	items, err = r.List(ctx, filter, 0, limit)
	if err != nil {
		return nil, 0, err
	}
	total, err = r.dao.Count(ctx, filter)
	if err != nil {
		return nil, 0, err
	}
	if err = r.cache.SetHomeList(ctx, items, total); err != nil {
		r.logger.Error("缓存首页列表失败", elog.FieldErr(err))
	}
	return items, total, nil
}

func (r *itemRepository) ListSold(ctx context.Context, offset, limit int) ([]domain.Item, error) {
	items, err := r.dao.ListSold(ctx, offset, limit)
	if err != nil {
		return nil, err
	}
	return slice.Map(items, func(idx int, src dao.InventoryItem) domain.Item {
		return r.toDomain(src)
	}), nil
}

func (r *itemRepository) CountByCategory(ctx context.Context, category domain.Category) (int64, error) {
	return r.dao.CountByCategory(ctx, string(category))
}

func (r *itemRepository) CountByStatus(ctx context.Context) ([]domain.StatusCount, error) {
	res, err := r.dao.CountByStatus(ctx)
	if err != nil {
		return nil, err
	}
	return slice.Map(res, func(idx int, src dao.StatusCount) domain.StatusCount {
		return domain.StatusCount{Status: domain.Status(src.Status), Count: src.Cnt}
	}), nil
}

func (r *itemRepository) ReleaseExpiredHolds(ctx context.Context, now time.Time, limit int) ([]domain.Item, error) {
	items, err := r.dao.ReleaseExpiredHolds(ctx, now.UnixMilli(), limit)
	if err != nil {
		return nil, err
	}
	return slice.Map(items, func(idx int, src dao.InventoryItem) domain.Item {
		return r.toDomain(src)
	}), nil
}

func (r *itemRepository) Invalidate(ctx context.Context, slug string) error {
	return r.cache.Invalidate(ctx, slug)
}

func (r *itemRepository) toEntity(item domain.Item) dao.InventoryItem {
	return dao.InventoryItem{
		Id:                item.ID,
		Sku:               item.SKU,
		Slug:              item.Slug,
		Title:             item.Title,
		Category:          string(item.Category),
		Brand:             item.Brand,
		Model:             item.Model,
		SerialTag:         item.SerialTag,
		Specs:             sqlx.JsonColumn[map[string]string]{Val: item.Specs, Valid: item.Specs != nil},
		CosmeticGrade:     string(item.CosmeticGrade),
		FunctionalGrade:   string(item.FunctionalGrade),
		BatteryCondition:  string(item.BatteryCondition),
		PublicPrice:       item.PublicPrice,
		InternalCost:      item.InternalCost,
		PublicDescription: item.PublicDescription,
		InternalNotes:     item.InternalNotes,
		Status:            string(item.Status),
		HoldExpiresAt:     unixMilli(item.HoldExpiresAt),
		StatusChangedAt:   unixMilli(item.StatusChangedAt),
		StatusChangedBy:   item.StatusChangedBy,
		CreatedBy:         item.CreatedBy,
		UpdatedBy:         item.UpdatedBy,
	}
}

func (r *itemRepository) toDomain(item dao.InventoryItem) domain.Item {
	return domain.Item{
		ID:                item.Id,
		SKU:               item.Sku,
		Slug:              item.Slug,
		Title:             item.Title,
		Category:          domain.Category(item.Category),
		Brand:             item.Brand,
		Model:             item.Model,
		SerialTag:         item.SerialTag,
		Specs:             item.Specs.Val,
		CosmeticGrade:     domain.Grade(item.CosmeticGrade),
		FunctionalGrade:   domain.Grade(item.FunctionalGrade),
		BatteryCondition:  domain.BatteryCondition(item.BatteryCondition),
		PublicPrice:       item.PublicPrice,
		InternalCost:      item.InternalCost,
		PublicDescription: item.PublicDescription,
		InternalNotes:     item.InternalNotes,
		Status:            domain.Status(item.Status),
		HoldExpiresAt:     fromUnixMilli(item.HoldExpiresAt),
		StatusChangedAt:   fromUnixMilli(item.StatusChangedAt),
		StatusChangedBy:   item.StatusChangedBy,
		CreatedBy:         item.CreatedBy,
		UpdatedBy:         item.UpdatedBy,
		Ctime:             time.UnixMilli(item.Ctime),
		Utime:             time.UnixMilli(item.Utime),
	}
}

func unixMilli(t time.Time) int64 {
	if t.IsZero() {
		return 0
	}
	return t.UnixMilli()
}

func fromUnixMilli(ms int64) time.Time {
	if ms == 0 {
		return time.Time{}
	}
	return time.UnixMilli(ms)
}
