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
	"database/sql"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/ecodeclub/ekit/slice"
	"github.com/ecodeclub/usedtech/internal/pkg/sequencenumber"
	"github.com/ecodeclub/usedtech/internal/sale/internal/domain"
	"github.com/ecodeclub/usedtech/internal/sale/internal/repository/dao"
)

var (
	ErrSaleNotFound    = dao.ErrRecordNotFound
	ErrStatusConflict  = dao.ErrStatusConflict
	ErrReceiptAttached = dao.ErrReceiptAttached
)

//go:generate mockgen -source=./sale.go -package=repomocks -destination=mocks/sale.mock.go SaleRepository
type SaleRepository interface {
	// Record 商品状态不允许销售时返回 ErrStatusConflict，此时什么都没有写入
	Record(ctx context.Context, s domain.Sale) (int64, error)
	FindByID(ctx context.Context, id int64) (domain.Sale, error)
	FindByReceiptNumber(ctx context.Context, receiptNumber string) (domain.Sale, error)
	List(ctx context.Context, filter domain.ListFilter, offset, limit int) ([]domain.Sale, error)
	Count(ctx context.Context, filter domain.ListFilter) (int64, error)
	AttachReceipt(ctx context.Context, id int64, url string) error
	Summary(ctx context.Context, filter domain.ListFilter) (domain.Summary, error)
	// LastSequence 某一年已经发出的最大收据序号，用来恢复收据号计数器
	LastSequence(ctx context.Context, prefix string, year int) (int64, error)
}

type saleRepository struct {
	dao dao.SaleDAO
}

func NewSaleRepository(d dao.SaleDAO) SaleRepository {
	return &saleRepository{dao: d}
}

func (r *saleRepository) Record(ctx context.Context, s domain.Sale) (int64, error) {
	return r.dao.Record(ctx, r.toEntity(s))
}

func (r *saleRepository) FindByID(ctx context.Context, id int64) (domain.Sale, error) {
	s, err := r.dao.FindByID(ctx, id)
	if err != nil {
		return domain.Sale{}, err
	}
	return r.toDomain(s), nil
}

func (r *saleRepository) FindByReceiptNumber(ctx context.Context, receiptNumber string) (domain.Sale, error) {
	s, err := r.dao.FindByReceiptNumber(ctx, receiptNumber)
	if err != nil {
		return domain.Sale{}, err
	}
	return r.toDomain(s), nil
}

func (r *saleRepository) List(ctx context.Context, filter domain.ListFilter, offset, limit int) ([]domain.Sale, error) {
	from, to := r.between(filter)
	sales, err := r.dao.List(ctx, from, to, offset, limit)
	if err != nil {
		return nil, err
	}
	return slice.Map(sales, func(idx int, src dao.Sale) domain.Sale {
		return r.toDomain(src)
	}), nil
}

func (r *saleRepository) Count(ctx context.Context, filter domain.ListFilter) (int64, error) {
	from, to := r.between(filter)
	return r.dao.Count(ctx, from, to)
}

func (r *saleRepository) AttachReceipt(ctx context.Context, id int64, url string) error {
	return r.dao.AttachReceipt(ctx, id, url)
}

func (r *saleRepository) Summary(ctx context.Context, filter domain.ListFilter) (domain.Summary, error) {
	from, to := r.between(filter)
	s, err := r.dao.Summary(ctx, from, to)
	if err != nil {
		return domain.Summary{}, err
	}
	return domain.Summary{Count: s.Cnt, Revenue: s.Revenue}, nil
}

func (r *saleRepository) LastSequence(ctx context.Context, prefix string, year int) (int64, error) {
	yearPrefix := sequencenumber.YearPrefix(prefix, year)
	last, err := r.dao.LastReceiptNumber(ctx, yearPrefix)
	if err != nil || last == "" {
		return 0, err
	}
	seq, err := strconv.ParseInt(strings.TrimPrefix(last, yearPrefix), 10, 64)
	if err != nil {
		return 0, fmt.Errorf("收据号 %s 格式不正确: %w", last, err)
	}
	return seq, nil
}

func (r *saleRepository) between(filter domain.ListFilter) (int64, int64) {
	var from, to int64
	if !filter.From.IsZero() {
		from = filter.From.UnixMilli()
	}
	if !filter.To.IsZero() {
		to = filter.To.UnixMilli()
	}
	return from, to
}

func (r *saleRepository) toEntity(s domain.Sale) dao.Sale {
	return dao.Sale{
		Id:               s.ID,
		ReceiptNumber:    s.ReceiptNumber,
		ItemId:           s.ItemID,
		BuyerName:        s.BuyerName,
		BuyerPhone:       s.BuyerPhone,
		SalePrice:        s.SalePrice,
		PaymentMethod:    string(s.PaymentMethod),
		FulfillmentType:  string(s.FulfillmentType),
		DeliveryNotes:    s.DeliveryNotes,
		WarrantySnapshot: nullString(s.Policies.Warranty),
		ReturnsSnapshot:  nullString(s.Policies.Returns),
		ReceiptUrl:       sql.NullString{String: s.ReceiptURL, Valid: s.ReceiptURL != ""},
		SoldAt:           s.SoldAt.UnixMilli(),
		RecordedBy:       s.RecordedBy,
	}
}

func (r *saleRepository) toDomain(s dao.Sale) domain.Sale {
	return domain.Sale{
		ID:              s.Id,
		ReceiptNumber:   s.ReceiptNumber,
		ItemID:          s.ItemId,
		BuyerName:       s.BuyerName,
		BuyerPhone:      s.BuyerPhone,
		SalePrice:       s.SalePrice,
		PaymentMethod:   domain.PaymentMethod(s.PaymentMethod),
		FulfillmentType: domain.FulfillmentType(s.FulfillmentType),
		DeliveryNotes:   s.DeliveryNotes,
		Policies: domain.PolicySnapshot{
			Warranty: stringPtr(s.WarrantySnapshot),
			Returns:  stringPtr(s.ReturnsSnapshot),
		},
		ReceiptURL: s.ReceiptUrl.String,
		SoldAt:     time.UnixMilli(s.SoldAt),
		RecordedBy: s.RecordedBy,
		Ctime:      time.UnixMilli(s.Ctime),
	}
}

func nullString(s *string) sql.NullString {
	if s == nil {
		return sql.NullString{}
	}
	return sql.NullString{String: *s, Valid: true}
}

func stringPtr(s sql.NullString) *string {
	if !s.Valid {
		return nil
	}
	return &s.String
}
