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

	"github.com/ecodeclub/usedtech/internal/photo/internal/domain"
	"github.com/ego-component/egorm"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

var (
	ErrRecordNotFound     = gorm.ErrRecordNotFound
	ErrItemNotFound       = errors.New("商品不存在")
	ErrPhotoLimitExceeded = errors.New("商品图片数量已达上限")
	ErrInvalidOrder       = domain.ErrInvalidOrder
)

const inventoryItemTableName = "inventory_items"

//go:generate mockgen -source=./photo.go -package=daomocks -destination=mocks/photo.mock.go PhotoDAO
type PhotoDAO interface {
	CountByItem(ctx context.Context, itemID int64) (int64, error)
	// Append 把图片追加到末尾，position 等于追加前的数量
	Append(ctx context.Context, p ItemPhoto, limit int) (ItemPhoto, error)
	FindByID(ctx context.Context, id int64) (ItemPhoto, error)
	FindByItem(ctx context.Context, itemID int64) ([]ItemPhoto, error)
	FindByItemsAndPosition(ctx context.Context, itemIDs []int64, position int) ([]ItemPhoto, error)
	// DeleteAndRenumber 删除图片之后，剩下的图片按原有顺序重新编号为 0..n-1
	DeleteAndRenumber(ctx context.Context, id int64) error
	// Reorder ids 必须恰好是商品当前的全部图片
	Reorder(ctx context.Context, itemID int64, ids []int64) error
	DeleteByItem(ctx context.Context, itemID int64) error
}

type GORMPhotoDAO struct {
	db *egorm.Component
}

func NewGORMPhotoDAO(db *egorm.Component) PhotoDAO {
	return &GORMPhotoDAO{db: db}
}

func (g *GORMPhotoDAO) CountByItem(ctx context.Context, itemID int64) (int64, error) {
	var cnt int64
	err := g.db.WithContext(ctx).Model(&ItemPhoto{}).Where("item_id = ?", itemID).Count(&cnt).Error
	return cnt, err
}

func (g *GORMPhotoDAO) Append(ctx context.Context, p ItemPhoto, limit int) (ItemPhoto, error) {
	err := g.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		// 锁住商品，同一商品的图片变更串行执行
		if err := lockItem(tx, p.ItemId); err != nil {
			return err
		}
		var cnt int64
		if err := tx.Model(&ItemPhoto{}).Where("item_id = ?", p.ItemId).Count(&cnt).Error; err != nil {
			return err
		}
		if cnt >= int64(limit) {
			return ErrPhotoLimitExceeded
		}
		now := time.Now().UnixMilli()
		p.Position = int(cnt)
		p.Ctime, p.Utime = now, now
		return tx.Create(&p).Error
	})
	return p, err
}

func (g *GORMPhotoDAO) FindByID(ctx context.Context, id int64) (ItemPhoto, error) {
	var p ItemPhoto
	err := g.db.WithContext(ctx).Where("id = ?", id).First(&p).Error
	return p, err
}

func (g *GORMPhotoDAO) FindByItem(ctx context.Context, itemID int64) ([]ItemPhoto, error) {
	var res []ItemPhoto
	err := g.db.WithContext(ctx).Where("item_id = ?", itemID).Order("position ASC").Find(&res).Error
	return res, err
}

func (g *GORMPhotoDAO) FindByItemsAndPosition(ctx context.Context, itemIDs []int64, position int) ([]ItemPhoto, error) {
	var res []ItemPhoto
	err := g.db.WithContext(ctx).
		Where("item_id IN ? AND position = ?", itemIDs, position).
		Find(&res).Error
	return res, err
}

func (g *GORMPhotoDAO) DeleteAndRenumber(ctx context.Context, id int64) error {
	return g.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var p ItemPhoto
		if err := tx.Where("id = ?", id).First(&p).Error; err != nil {
			return err
		}
		if err := lockItem(tx, p.ItemId); err != nil {
			return err
		}
		if err := tx.Where("id = ?", id).Delete(&ItemPhoto{}).Error; err != nil {
			return err
		}
		var rest []ItemPhoto
		if err := tx.Where("item_id = ?", p.ItemId).Order("position ASC").Find(&rest).Error; err != nil {
			return err
		}
		return renumber(tx, rest)
	})
}

func (g *GORMPhotoDAO) Reorder(ctx context.Context, itemID int64, ids []int64) error {
	return g.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := lockItem(tx, itemID); err != nil {
			return err
		}
		var existing []int64
		if err := tx.Model(&ItemPhoto{}).Where("item_id = ?", itemID).Pluck("id", &existing).Error; err != nil {
			return err
		}
		if err := domain.ValidateOrder(existing, ids); err != nil {
			return err
		}
		now := time.Now().UnixMilli()
		for pos, id := range ids {
			err := tx.Model(&ItemPhoto{}).Where("id = ?", id).
				Updates(map[string]any{"position": pos, "utime": now}).Error
			if err != nil {
				return err
			}
		}
		return nil
	})
}

func (g *GORMPhotoDAO) DeleteByItem(ctx context.Context, itemID int64) error {
	return g.db.WithContext(ctx).Where("item_id = ?", itemID).Delete(&ItemPhoto{}).Error
}

func lockItem(tx *gorm.DB, itemID int64) error {
	var ids []int64
	err := tx.Table(inventoryItemTableName).
		Clauses(clause.Locking{Strength: "UPDATE"}).
		Where("id = ?", itemID).
		Pluck("id", &ids).Error
	if err != nil {
		return err
	}
	if len(ids) == 0 {
		return ErrItemNotFound
	}
	return nil
}

// renumber photos 已经按照原 position 排好序
func renumber(tx *gorm.DB, photos []ItemPhoto) error {
	now := time.Now().UnixMilli()
	for i := range photos {
		if photos[i].Position == i {
			continue
		}
		err := tx.Model(&ItemPhoto{}).Where("id = ?", photos[i].Id).
			Updates(map[string]any{"position": i, "utime": now}).Error
		if err != nil {
			return err
		}
	}
	return nil
}

type ItemPhoto struct {
	Id         int64  `gorm:"primaryKey,autoIncrement"`
	ItemId     int64  `gorm:"index:idx_item_position,priority:1;not null"`
	AssetKey   string `gorm:"type:varchar(256);not null;comment:图床上的对象key"`
	Url        string `gorm:"type:varchar(512);not null"`
	AltText    string `gorm:"type:varchar(256)"`
	Position   int    `gorm:"index:idx_item_position,priority:2;not null;comment:从0开始,0是主图"`
	UploadedBy int64
	Ctime      int64
	Utime      int64
}

func (ItemPhoto) TableName() string {
	return "item_photos"
}

func InitTables(db *egorm.Component) error {
	return db.AutoMigrate(&ItemPhoto{})
}
