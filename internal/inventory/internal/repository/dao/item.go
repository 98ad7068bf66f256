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
	"errors"
	"time"

	"github.com/ecodeclub/usedtech/internal/inventory/internal/domain"
	"github.com/ego-component/egorm"
	"github.com/go-sql-driver/mysql"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

var (
	ErrRecordNotFound = gorm.ErrRecordNotFound
	ErrDuplicated     = errors.New("SKU 或者 slug 重复")
	// ErrStatusConflict 更新时商品状态已经被别人改掉了
	ErrStatusConflict = errors.New("商品状态已变更")
)

//go:generate mockgen -source=./item.go -package=daomocks -destination=mocks/item.mock.go ItemDAO
type ItemDAO interface {
	Insert(ctx context.Context, item InventoryItem) (int64, error)
	// Update fromStatus 不为空时，只有当前状态还是 fromStatus 才会更新
	Update(ctx context.Context, id int64, fromStatus string, fields map[string]any) error
	Delete(ctx context.Context, id int64) error
	FindByID(ctx context.Context, id int64) (InventoryItem, error)
	FindBySlug(ctx context.Context, slug string) (InventoryItem, error)
	FindByIDs(ctx context.Context, ids []int64) ([]InventoryItem, error)
	List(ctx context.Context, filter domain.Filter, offset, limit int) ([]InventoryItem, error)
	Count(ctx context.Context, filter domain.Filter) (int64, error)
	ListSold(ctx context.Context, offset, limit int) ([]InventoryItem, error)
	CountByCategory(ctx context.Context, category string) (int64, error)
	CountByStatus(ctx context.Context) ([]StatusCount, error)
	// ReleaseExpiredHolds 返回被释放的商品
	ReleaseExpiredHolds(ctx context.Context, now int64, limit int) ([]InventoryItem, error)
}

type GORMItemDAO struct {
	db *egorm.Component
}

func NewGORMItemDAO(db *egorm.Component) ItemDAO {
	return &GORMItemDAO{db: db}
}

func (g *GORMItemDAO) Insert(ctx context.Context, item InventoryItem) (int64, error) {
	now := time.Now().UnixMilli()
	item.Ctime, item.Utime = now, now
	if item.StatusChangedAt == 0 {
		item.StatusChangedAt = now
	}
	err := g.db.WithContext(ctx).Create(&item).Error
	var me *mysql.MySQLError
	if errors.As(err, &me) {
		const uniqueIndexErrNo uint16 = 1062
		if me.Number == uniqueIndexErrNo {
			return 0, ErrDuplicated
		}
	}
	return item.Id, err
}

func (g *GORMItemDAO) Update(ctx context.Context, id int64, fromStatus string, fields map[string]any) error {
	fields["utime"] = time.Now().UnixMilli()
	db := g.db.WithContext(ctx).Model(&InventoryItem{}).Where("id = ?", id)
	if fromStatus != "" {
		db = db.Where("status = ?", fromStatus)
	}
	res := db.Updates(fields)
	if res.Error != nil {
		return res.Error
	}
	if fromStatus != "" && res.RowsAffected == 0 {
		return ErrStatusConflict
	}
	return nil
}

func (g *GORMItemDAO) Delete(ctx context.Context, id int64) error {
	res := g.db.WithContext(ctx).Where("id = ?", id).Delete(&InventoryItem{})
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return ErrRecordNotFound
	}
	return nil
}

func (g *GORMItemDAO) FindByID(ctx context.Context, id int64) (InventoryItem, error) {
	var item InventoryItem
	err := g.db.WithContext(ctx).Where("id = ?", id).First(&item).Error
	return item, err
}

func (g *GORMItemDAO) FindBySlug(ctx context.Context, slug string) (InventoryItem, error) {
	var item InventoryItem
	err := g.db.WithContext(ctx).Where("slug = ?", slug).First(&item).Error
	return item, err
}

func (g *GORMItemDAO) FindByIDs(ctx context.Context, ids []int64) ([]InventoryItem, error) {
	var res []InventoryItem
	err := g.db.WithContext(ctx).Where("id IN ?", ids).Find(&res).Error
	return res, err
}

func (g *GORMItemDAO) List(ctx context.Context, filter domain.Filter, offset, limit int) ([]InventoryItem, error) {
	var res []InventoryItem
	err := g.filtered(ctx, filter).
		Order("ctime DESC").
		Offset(offset).
		Limit(limit).
		Find(&res).Error
	return res, err
}

func (g *GORMItemDAO) Count(ctx context.Context, filter domain.Filter) (int64, error) {
	var cnt int64
	err := g.filtered(ctx, filter).Count(&cnt).Error
	return cnt, err
}

func (g *GORMItemDAO) filtered(ctx context.Context, filter domain.Filter) *gorm.DB {
	db := g.db.WithContext(ctx).Model(&InventoryItem{})
	if filter.Category != "" {
		db = db.Where("category = ?", filter.Category)
	}
	if filter.Status != "" {
		db = db.Where("status = ?", filter.Status)
	}
	if len(filter.ExcludeStatuses) > 0 {
		db = db.Where("status NOT IN ?", filter.ExcludeStatuses)
	}
	if filter.Query != "" {
		like := "%" + filter.Query + "%"
		db = db.Where("title LIKE ? OR brand LIKE ? OR model LIKE ? OR sku LIKE ?", like, like, like, like)
	}
	if filter.MinPrice > 0 {
		db = db.Where("public_price >= ?", filter.MinPrice)
	}
	if filter.MaxPrice > 0 {
		db = db.Where("public_price <= ?", filter.MaxPrice)
	}
	return db
}

func (g *GORMItemDAO) ListSold(ctx context.Context, offset, limit int) ([]InventoryItem, error) {
	var res []InventoryItem
	err := g.db.WithContext(ctx).
		Where("status = ?", domain.StatusSold).
		Order("status_changed_at DESC").
		Offset(offset).
		Limit(limit).
		Find(&res).Error
	return res, err
}

func (g *GORMItemDAO) CountByCategory(ctx context.Context, category string) (int64, error) {
	var cnt int64
	err := g.db.WithContext(ctx).Model(&InventoryItem{}).Where("category = ?", category).Count(&cnt).Error
	return cnt, err
}

func (g *GORMItemDAO) CountByStatus(ctx context.Context) ([]StatusCount, error) {
	var res []StatusCount
	err := g.db.WithContext(ctx).Model(&InventoryItem{}).
		Select("status, COUNT(*) AS cnt").
		Group("status").
		Scan(&res).Error
	return res, err
}

func (g *GORMItemDAO) ReleaseExpiredHolds(ctx context.Context, now int64, limit int) ([]InventoryItem, error) {
	var items []InventoryItem
	err := g.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		err := tx.Clauses(clause.Locking{Strength: "UPDATE"}).
			Where("status = ? AND hold_expires_at > 0 AND hold_expires_at <= ?", domain.StatusOnHold, now).
			Limit(limit).
			Find(&items).Error
		if err != nil || len(items) == 0 {
			return err
		}
		ids := make([]int64, 0, len(items))
		for _, item := range items {
			ids = append(ids, item.Id)
		}
		return tx.Model(&InventoryItem{}).
			Where("id IN ? AND status = ?", ids, domain.StatusOnHold).
			Updates(map[string]any{
				"status":            domain.StatusAvailable,
				"hold_expires_at":   0,
				"status_changed_at": now,
				"status_changed_by": 0,
				"utime":             now,
			}).Error
	})
	return items, err
}

func InitTables(db *egorm.Component) error {
	return db.AutoMigrate(&InventoryItem{})
}
