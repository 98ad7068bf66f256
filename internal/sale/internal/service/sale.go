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

package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/ecodeclub/usedtech/internal/inventory"
	"github.com/ecodeclub/usedtech/internal/policy"
	"github.com/ecodeclub/usedtech/internal/sale/internal/domain"
	"github.com/ecodeclub/usedtech/internal/sale/internal/event"
	"github.com/ecodeclub/usedtech/internal/sale/internal/repository"
	"github.com/gotomicro/ego/core/elog"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"golang.org/x/sync/errgroup"
)

var (
	ErrItemNotFound    = errors.New("商品不存在")
	ErrItemAlreadySold = domain.ErrItemAlreadySold
	ErrItemNotSellable = domain.ErrItemNotSellable
	ErrReceiptNumber   = errors.New("生成收据号失败")
	ErrSaleNotFound    = repository.ErrSaleNotFound
	ErrReceiptAttached = repository.ErrReceiptAttached
)

var saleRecordedTotal = promauto.NewCounterVec(prometheus.CounterOpts{
	Namespace: "usedtech",
	Name:      "sale_recorded_total",
	Help:      "成功录入的销售数量",
}, []string{"payment_method"})

// ReceiptNumberGenerator 并发安全，生成的号码永不重复
type ReceiptNumberGenerator interface {
	Next(ctx context.Context) (string, error)
}

//go:generate mockgen -source=./sale.go -package=salemocks -destination=../../mocks/sale.mock.go Service
type Service interface {
	// Record 录入一笔销售，返回收据号
	Record(ctx context.Context, req domain.RecordRequest) (string, error)
	FindByID(ctx context.Context, id int64) (domain.Receipt, error)
	FindByReceiptNumber(ctx context.Context, receiptNumber string) (domain.Receipt, error)
	List(ctx context.Context, filter domain.ListFilter, offset, limit int) ([]domain.Sale, int64, error)
	// AttachReceipt 收据文件只能上传一次
	AttachReceipt(ctx context.Context, id int64, url string) error
	// MonthlySummary now 所在自然月的销售数量和金额
	MonthlySummary(ctx context.Context, now time.Time) (domain.Summary, error)
}

type service struct {
	repo      repository.SaleRepository
	itemSvc   inventory.Service
	policySvc policy.Service
	generator ReceiptNumberGenerator
	producer  event.InventoryEventProducer
	logger    *elog.Component
}

func NewService(repo repository.SaleRepository,
	itemSvc inventory.Service,
	policySvc policy.Service,
	generator ReceiptNumberGenerator,
	producer event.InventoryEventProducer) Service {
	return &service{
		repo:      repo,
		itemSvc:   itemSvc,
		policySvc: policySvc,
		generator: generator,
		producer:  producer,
		logger:    elog.DefaultLogger,
	}
}

func (s *service) Record(ctx context.Context, req domain.RecordRequest) (string, error) {
	if err := req.Validate(); err != nil {
		return "", err
	}
	item, err := s.findItem(ctx, req.ItemID)
	if err != nil {
		return "", err
	}
	if err = domain.CanSell(item.Status); err != nil {
		return "", err
	}
	// 政策只读这一次，后面的步骤都使用这份快照
	snapshot, err := s.snapshot(ctx)
	if err != nil {
		return "", err
	}
	receiptNumber, err := s.generator.Next(ctx)
	if err != nil {
		return "", fmt.Errorf("%w: %w", ErrReceiptNumber, err)
	}
	if req.FulfillmentType == "" {
		req.FulfillmentType = domain.FulfillmentPickup
	}
	soldAt := req.SoldAt
	if soldAt.IsZero() {
		soldAt = time.Now()
	}
	_, err = s.repo.Record(ctx, domain.Sale{
		ReceiptNumber:   receiptNumber,
		ItemID:          req.ItemID,
		BuyerName:       req.BuyerName,
		BuyerPhone:      req.BuyerPhone,
		SalePrice:       req.SalePrice,
		PaymentMethod:   req.PaymentMethod,
		FulfillmentType: req.FulfillmentType,
		DeliveryNotes:   req.DeliveryNotes,
		Policies:        snapshot,
		SoldAt:          soldAt,
		RecordedBy:      req.Actor,
	})
	if errors.Is(err, repository.ErrStatusConflict) {
		return "", s.conflict(ctx, req.ItemID)
	}
	if err != nil {
		return "", fmt.Errorf("保存销售记录失败 receipt=%s: %w", receiptNumber, err)
	}
	s.notify(ctx, req.ItemID)
	saleRecordedTotal.WithLabelValues(string(req.PaymentMethod)).Inc()
	return receiptNumber, nil
}

func (s *service) findItem(ctx context.Context, id int64) (inventory.Item, error) {
	item, err := s.itemSvc.FindByID(ctx, id)
	if errors.Is(err, inventory.ErrItemNotFound) {
		return inventory.Item{}, fmt.Errorf("%w: id=%d", ErrItemNotFound, id)
	}
	return item, err
}

func (s *service) snapshot(ctx context.Context) (domain.PolicySnapshot, error) {
	snap, err := s.policySvc.Snapshot(ctx)
	if err != nil {
		return domain.PolicySnapshot{}, fmt.Errorf("读取政策失败: %w", err)
	}
	return domain.PolicySnapshot{
		Warranty: snap.Warranty,
		Returns:  snap.Returns,
	}, nil
}

// conflict 条件更新没有命中，重新读取状态给出准确的错误
func (s *service) conflict(ctx context.Context, itemID int64) error {
	item, err := s.findItem(ctx, itemID)
	if err != nil {
		return err
	}
	if err = domain.CanSell(item.Status); err != nil {
		return err
	}
	return ErrItemAlreadySold
}

func (s *service) notify(ctx context.Context, itemID int64) {
	err := s.producer.Produce(ctx, event.InventoryEvent{ItemID: itemID, Action: "sold"})
	if err == nil {
		return
	}
	s.logger.Error("发送商品售出事件失败", elog.FieldErr(err), elog.Int64("itemId", itemID))
	if err = s.itemSvc.Invalidate(ctx, itemID); err != nil {
		s.logger.Error("清理商品缓存失败", elog.FieldErr(err), elog.Int64("itemId", itemID))
	}
}

func (s *service) FindByID(ctx context.Context, id int64) (domain.Receipt, error) {
	sale, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return domain.Receipt{}, err
	}
	return s.receipt(ctx, sale)
}

func (s *service) FindByReceiptNumber(ctx context.Context, receiptNumber string) (domain.Receipt, error) {
	sale, err := s.repo.FindByReceiptNumber(ctx, receiptNumber)
	if err != nil {
		return domain.Receipt{}, err
	}
	return s.receipt(ctx, sale)
}

func (s *service) receipt(ctx context.Context, sale domain.Sale) (domain.Receipt, error) {
	res := domain.Receipt{Sale: sale, Item: domain.ItemSummary{ID: sale.ItemID}}
	item, err := s.itemSvc.FindByID(ctx, sale.ItemID)
	switch {
	case errors.Is(err, inventory.ErrItemNotFound):
		// 商品删除之后收据仍然可以查看
		return res, nil
	case err != nil:
		return domain.Receipt{}, err
	}
	res.Item = domain.ItemSummary{
		ID:    item.ID,
		SKU:   item.SKU,
		Title: item.Title,
		Brand: item.Brand,
		Model: item.Model,
	}
	return res, nil
}

func (s *service) List(ctx context.Context, filter domain.ListFilter, offset, limit int) ([]domain.Sale, int64, error) {
	var (
		eg    errgroup.Group
		sales []domain.Sale
		total int64
	)
	eg.Go(func() error {
		var err error
		sales, err = s.repo.List(ctx, filter, offset, limit)
		return err
	})
	eg.Go(func() error {
		var err error
		total, err = s.repo.Count(ctx, filter)
		return err
	})
	return sales, total, eg.Wait()
}

func (s *service) AttachReceipt(ctx context.Context, id int64, url string) error {
	return s.repo.AttachReceipt(ctx, id, url)
}

func (s *service) MonthlySummary(ctx context.Context, now time.Time) (domain.Summary, error) {
	from := time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, now.Location())
	return s.repo.Summary(ctx, domain.ListFilter{From: from, To: from.AddDate(0, 1, 0)})
}
