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
	"time"

	"github.com/ecodeclub/ekit/slice"
	"github.com/ecodeclub/usedtech/internal/analytics/internal/domain"
	"github.com/ecodeclub/usedtech/internal/analytics/internal/repository"
	"github.com/ecodeclub/usedtech/internal/inventory"
	"github.com/ecodeclub/usedtech/internal/sale"
	"github.com/gotomicro/ego/core/elog"
	"golang.org/x/sync/errgroup"
)

const (
	week  = 7 * 24 * time.Hour
	month = 30 * 24 * time.Hour
)

//go:generate mockgen -source=./analytics.go -package=analyticsmocks -destination=../../mocks/analytics.mock.go Service
type Service interface {
	// LogView 返回 false 表示被去重，没有记录
	LogView(ctx context.Context, v domain.View) (bool, error)
	LogInquiry(ctx context.Context, i domain.Inquiry) (int64, error)
	// ListInquiries 按时间倒序
	ListInquiries(ctx context.Context, offset, limit int) ([]domain.Inquiry, int64, error)
	// ItemAnalytics 每个商品最近 7 天和 30 天的浏览、咨询以及转化率
	ItemAnalytics(ctx context.Context, offset, limit int) ([]domain.ItemStat, int64, error)
	Dashboard(ctx context.Context) (domain.Dashboard, error)
}

type service struct {
	repo    repository.AnalyticsRepository
	itemSvc inventory.Service
	saleSvc sale.Service
	nowFunc func() time.Time
	logger  *elog.Component
}

func NewService(repo repository.AnalyticsRepository,
	itemSvc inventory.Service,
	saleSvc sale.Service) Service {
	return &service{
		repo:    repo,
		itemSvc: itemSvc,
		saleSvc: saleSvc,
		nowFunc: time.Now,
		logger:  elog.DefaultLogger,
	}
}

func (s *service) LogView(ctx context.Context, v domain.View) (bool, error) {
	if err := v.Validate(); err != nil {
		return false, err
	}
	now := s.nowFunc()
	v.Ctime = now
	return s.repo.LogView(ctx, v, now.Add(-domain.ViewDedupWindow))
}

func (s *service) LogInquiry(ctx context.Context, i domain.Inquiry) (int64, error) {
	i, err := i.Normalize()
	if err != nil {
		return 0, err
	}
	return s.repo.LogInquiry(ctx, i)
}

func (s *service) ListInquiries(ctx context.Context, offset, limit int) ([]domain.Inquiry, int64, error) {
	var (
		eg        errgroup.Group
		inquiries []domain.Inquiry
		total     int64
	)
	eg.Go(func() error {
		var err error
		inquiries, err = s.repo.ListInquiries(ctx, offset, limit)
		return err
	})
	eg.Go(func() error {
		var err error
		total, err = s.repo.CountInquiries(ctx)
		return err
	})
	return inquiries, total, eg.Wait()
}

func (s *service) ItemAnalytics(ctx context.Context, offset, limit int) ([]domain.ItemStat, int64, error) {
	items, total, err := s.itemSvc.AdminList(ctx, inventory.Filter{}, offset, limit)
	if err != nil {
		return nil, 0, err
	}
	ids := slice.Map(items, func(idx int, src inventory.Item) int64 {
		return src.ID
	})
	now := s.nowFunc()
	var (
		eg                        errgroup.Group
		views7d, views30d         map[int64]int64
		inquiries7d, inquiries30d map[int64]int64
	)
	eg.Go(func() error {
		var err error
		views7d, err = s.repo.ViewCountsSince(ctx, ids, now.Add(-week))
		return err
	})
	eg.Go(func() error {
		var err error
		views30d, err = s.repo.ViewCountsSince(ctx, ids, now.Add(-month))
		return err
	})
	eg.Go(func() error {
		var err error
		inquiries7d, err = s.repo.InquiryCountsSince(ctx, ids, now.Add(-week))
		return err
	})
	eg.Go(func() error {
		var err error
		inquiries30d, err = s.repo.InquiryCountsSince(ctx, ids, now.Add(-month))
		return err
	})
	if err = eg.Wait(); err != nil {
		return nil, 0, err
	}
	return slice.Map(items, func(idx int, src inventory.Item) domain.ItemStat {
		return domain.ItemStat{
			ItemID:           src.ID,
			Title:            src.Title,
			SKU:              src.SKU,
			Status:           string(src.Status),
			Views7d:          views7d[src.ID],
			Views30d:         views30d[src.ID],
			Inquiries7d:      inquiries7d[src.ID],
			Inquiries30d:     inquiries30d[src.ID],
			ConversionPct30d: domain.ConversionPct(inquiries30d[src.ID], views30d[src.ID]),
		}
	}), total, nil
}

func (s *service) Dashboard(ctx context.Context) (domain.Dashboard, error) {
	now := s.nowFunc()
	var (
		eg  errgroup.Group
		res domain.Dashboard
	)
	eg.Go(func() error {
		counts, err := s.itemSvc.CountByStatus(ctx)
		if err != nil {
			return err
		}
		res.StatusCounts = make(map[string]int64, len(counts))
		for status, cnt := range counts {
			res.StatusCounts[string(status)] = cnt
		}
		return nil
	})
	eg.Go(func() error {
		summary, err := s.saleSvc.MonthlySummary(ctx, now)
		res.SalesCount, res.SalesRevenue = summary.Count, summary.Revenue
		return err
	})
	eg.Go(func() error {
		var err error
		res.Inquiries7d, err = s.repo.CountInquiriesSince(ctx, now.Add(-week))
		return err
	})
	eg.Go(func() error {
		top, err := s.topViewed(ctx, now.Add(-week))
		res.TopViewed = top
		return err
	})
	return res, eg.Wait()
}

func (s *service) topViewed(ctx context.Context, since time.Time) (*domain.TopItem, error) {
	top, err := s.repo.TopViewedSince(ctx, since)
	if errors.Is(err, repository.ErrNoViews) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	item, err := s.itemSvc.FindByID(ctx, top.ItemID)
	switch {
	case errors.Is(err, inventory.ErrItemNotFound):
		// 商品已经删除，只展示浏览数
		s.logger.Warn("浏览最多的商品已删除", elog.Int64("itemId", top.ItemID))
	case err != nil:
		return nil, err
	default:
		top.Title, top.SKU = item.Title, item.SKU
	}
	return &top, nil
}
