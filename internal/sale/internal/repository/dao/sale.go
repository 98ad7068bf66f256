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
	"fmt"
	"strconv"
	"time"

	"github.com/ecodeclub/ekit/sqlx"
	"github.com/ego-component/egorm"
	"gorm.io/gorm"
)

var (
	ErrRecordNotFound  = gorm.ErrRecordNotFound
	ErrStatusConflict  = errors.New("商品状态已经变化")
	ErrReceiptAttached = errors.New("收据文件已经存在")
)

const (
	inventoryItemTableName = "inventory_items"
	auditActionSaleRecord  = "sale.recorded"
	auditEntitySale        = "sale"
)

//go:generate mockgen -source=./sale.go -package=daomocks -destination=mocks/sale.mock.go SaleDAO
type SaleDAO interface {
	// Record 在一个事务里完成状态流转、写销售记录和审计
	Record(ctx context.Context, s Sale) (int64, error)
	FindByID(ctx context.Context, id int64) (Sale, error)
	FindByReceiptNumber(ctx context.Context, receiptNumber string) (Sale, error)
	List(ctx context.Context, from, to int64, offset, limit int) ([]Sale, error)
	Count(ctx context.Context, from, to int64) (int64, error)
	AttachReceipt(ctx context.Context, id int64, url string) error
	Summary(ctx context.Context, from, to int64) (Summary, error)
	// LastReceiptNumber 以 prefix 开头的最大收据号，没有时返回空字符串
	LastReceiptNumber(ctx context.Context, prefix string) (string, error)
}

type GORMSaleDAO struct {
	db *egorm.Component
}

func NewGORMSaleDAO(db *egorm.Component) SaleDAO {
	return &GORMSaleDAO{db: db}
}

func (g *GORMSaleDAO) Record(ctx context.Context, s Sale) (int64, error) {
	now := time.Now().UnixMilli()
	s.Ctime, s.Utime = now, now
	if s.SoldAt == 0 {
		s.SoldAt = now
	}
	err := g.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		// 条件更新代替先查后改，两个并发的销售只有一个能成功
		res := tx.Table(inventoryItemTableName).
			Where("id = ? AND status IN ?", s.ItemId, []string{"AVAILABLE", "ON_HOLD"}).
			Updates(map[string]any{
				"status":            "SOLD",
				"hold_expires_at":   0,
				"status_changed_at": s.SoldAt,
				"status_changed_by": s.RecordedBy,
				"updated_by":        s.RecordedBy,
				"utime":             now,
			})
		if res.Error != nil {
			return res.Error
		}
		if res.RowsAffected == 0 {
			return ErrStatusConflict
		}
		if err := tx.Create(&s).Error; err != nil {
			return err
		}
		return tx.Create(&auditEvent{
			EventKey:   "sale:" + s.ReceiptNumber,
			ActorId:    s.RecordedBy,
			Action:     auditActionSaleRecord,
			EntityType: auditEntitySale,
			EntityId:   strconv.FormatInt(s.Id, 10),
			Details: sqlx.JsonColumn[map[string]any]{
				Valid: true,
				Val: map[string]any{
					"item_id":        s.ItemId,
					"receipt_number": s.ReceiptNumber,
					"sale_price":     s.SalePrice,
					"payment_method": s.PaymentMethod,
				},
			},
			Ctime: now,
		}).Error
	})
	if err != nil {
		return 0, err
	}
	return s.Id, nil
}

func (g *GORMSaleDAO) FindByID(ctx context.Context, id int64) (Sale, error) {
	var s Sale
	err := g.db.WithContext(ctx).Where("id = ?", id).First(&s).Error
	return s, err
}

func (g *GORMSaleDAO) FindByReceiptNumber(ctx context.Context, receiptNumber string) (Sale, error) {
	var s Sale
	err := g.db.WithContext(ctx).Where("receipt_number = ?", receiptNumber).First(&s).Error
	return s, err
}

func (g *GORMSaleDAO) List(ctx context.Context, from, to int64, offset, limit int) ([]Sale, error) {
	var res []Sale
	err := g.between(ctx, from, to).
		Order("sold_at DESC").
		Offset(offset).
		Limit(limit).
		Find(&res).Error
	return res, err
}

func (g *GORMSaleDAO) Count(ctx context.Context, from, to int64) (int64, error) {
	var cnt int64
	err := g.between(ctx, from, to).Count(&cnt).Error
	return cnt, err
}

func (g *GORMSaleDAO) between(ctx context.Context, from, to int64) *gorm.DB {
	db := g.db.WithContext(ctx).Model(&Sale{})
	if from > 0 {
		db = db.Where("sold_at >= ?", from)
	}
	if to > 0 {
		db = db.Where("sold_at < ?", to)
	}
	return db
}

func (g *GORMSaleDAO) AttachReceipt(ctx context.Context, id int64, url string) error {
	res := g.db.WithContext(ctx).Model(&Sale{}).
		Where("id = ? AND (receipt_url IS NULL OR receipt_url = '')", id).
		Updates(map[string]any{
			"receipt_url": url,
			"utime":       time.Now().UnixMilli(),
		})
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected > 0 {
		return nil
	}
	if _, err := g.FindByID(ctx, id); err != nil {
		return err
	}
	return fmt.Errorf("%w: sale=%d", ErrReceiptAttached, id)
}

func (g *GORMSaleDAO) Summary(ctx context.Context, from, to int64) (Summary, error) {
	var res Summary
	err := g.between(ctx, from, to).
		Select("COUNT(*) AS cnt, COALESCE(SUM(sale_price), 0) AS revenue").
		Scan(&res).Error
	return res, err
}

func (g *GORMSaleDAO) LastReceiptNumber(ctx context.Context, prefix string) (string, error) {
	var res []string
	// 序号超过 6 位后字符串更长，先按长度再按字典序
	err := g.db.WithContext(ctx).Model(&Sale{}).
		Where("receipt_number LIKE ?", prefix+"%").
		Order("LENGTH(receipt_number) DESC, receipt_number DESC").
		Limit(1).
		Pluck("receipt_number", &res).Error
	if err != nil || len(res) == 0 {
		return "", err
	}
	return res[0], nil
}

func InitTables(db *egorm.Component) error {
	return db.AutoMigrate(&Sale{})
}
