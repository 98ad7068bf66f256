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
	"errors"
	"time"

	"github.com/ecodeclub/ekit/slice"
	"github.com/ecodeclub/usedtech/internal/analytics/internal/domain"
	"github.com/ecodeclub/usedtech/internal/analytics/internal/repository/cache"
	"github.com/ecodeclub/usedtech/internal/analytics/internal/repository/dao"
	"github.com/gotomicro/ego/core/elog"
)

var ErrNoViews = errors.New("没有浏览记录")

//go:generate mockgen -source=./analytics.go -package=repomocks -destination=mocks/analytics.mock.go AnalyticsRepository
type AnalyticsRepository interface {
	// LogView since 之后已有同一访客的浏览时返回 false
	LogView(ctx context.Context, v domain.View, since time.Time) (bool, error)
	LogInquiry(ctx context.Context, i domain.Inquiry) (int64, error)
	ListInquiries(ctx context.Context, offset, limit int) ([]domain.Inquiry, error)
	CountInquiries(ctx context.Context) (int64, error)
	CountInquiriesSince(ctx context.Context, since time.Time) (int64, error)
	ViewCountsSince(ctx context.Context, itemIDs []int64, since time.Time) (map[int64]int64, error)
	InquiryCountsSince(ctx context.Context, itemIDs []int64, since time.Time) (map[int64]int64, error)
	TopViewedSince(ctx context.Context, since time.Time) (domain.TopItem, error)
}

type analyticsRepository struct {
	dao    dao.AnalyticsDAO
	cache  cache.ViewCache
	logger *elog.Component
}

func NewAnalyticsRepository(d dao.AnalyticsDAO, c cache.ViewCache) AnalyticsRepository {
	return &analyticsRepository{
		dao:    d,
		cache:  c,
		logger: elog.DefaultLogger,
	}
}

func (r *analyticsRepository) LogView(ctx context.Context, v domain.View, since time.Time) (bool, error) {
	marked, err := r.cache.MarkView(ctx, v.ItemID, v.SessionID)
	if err != nil {
		// 缓存不可用时以数据库为准
		r.logger.Warn("浏览去重缓存不可用", elog.FieldErr(err))
	} else if !marked {
		return false, nil
	}
	exists, err := r.dao.HasViewSince(ctx, v.ItemID, v.SessionID, since.UnixMilli())
	if err != nil || exists {
		return false, err
	}
	err = r.dao.InsertView(ctx, dao.PageView{
		ItemId:    v.ItemID,
		SessionId: v.SessionID,
		Referrer:  v.Referrer,
		UserAgent: v.UserAgent,
		Ctime:     v.Ctime.UnixMilli(),
	})
	if err != nil {
		if marked {
			if er := r.cache.UnmarkView(ctx, v.ItemID, v.SessionID); er != nil {
				r.logger.Error("清理浏览去重标记失败", elog.FieldErr(er))
			}
		}
		return false, err
	}
	return true, nil
}

func (r *analyticsRepository) LogInquiry(ctx context.Context, i domain.Inquiry) (int64, error) {
	return r.dao.InsertInquiry(ctx, dao.Inquiry{
		ItemId:      i.ItemID,
		SessionId:   i.SessionID,
		Source:      string(i.Source),
		Message:     i.Message,
		Referrer:    i.Referrer,
		UtmSource:   i.UTMSource,
		UtmMedium:   i.UTMMedium,
		UtmCampaign: i.UTMCampaign,
	})
}

func (r *analyticsRepository) ListInquiries(ctx context.Context, offset, limit int) ([]domain.Inquiry, error) {
	res, err := r.dao.ListInquiries(ctx, offset, limit)
	return slice.Map(res, func(idx int, src dao.Inquiry) domain.Inquiry {
		return r.toInquiry(src)
	}), err
}

func (r *analyticsRepository) CountInquiries(ctx context.Context) (int64, error) {
	return r.dao.CountInquiries(ctx)
}

func (r *analyticsRepository) CountInquiriesSince(ctx context.Context, since time.Time) (int64, error) {
	return r.dao.CountInquiriesSince(ctx, since.UnixMilli())
}

func (r *analyticsRepository) ViewCountsSince(ctx context.Context, itemIDs []int64, since time.Time) (map[int64]int64, error) {
	res, err := r.dao.ViewCountsSince(ctx, itemIDs, since.UnixMilli())
	return r.toCountMap(res), err
}

func (r *analyticsRepository) InquiryCountsSince(ctx context.Context, itemIDs []int64, since time.Time) (map[int64]int64, error) {
	res, err := r.dao.InquiryCountsSince(ctx, itemIDs, since.UnixMilli())
	return r.toCountMap(res), err
}

func (r *analyticsRepository) TopViewedSince(ctx context.Context, since time.Time) (domain.TopItem, error) {
	res, err := r.dao.TopViewedSince(ctx, since.UnixMilli())
	if errors.Is(err, dao.ErrRecordNotFound) {
		return domain.TopItem{}, ErrNoViews
	}
	return domain.TopItem{ItemID: res.ItemId, Views: res.Cnt}, err
}

func (r *analyticsRepository) toCountMap(counts []dao.ItemCount) map[int64]int64 {
	res := make(map[int64]int64, len(counts))
	for _, c := range counts {
		res[c.ItemId] = c.Cnt
	}
	return res
}

func (r *analyticsRepository) toInquiry(i dao.Inquiry) domain.Inquiry {
	return domain.Inquiry{
		ID:          i.Id,
		ItemID:      i.ItemId,
		SessionID:   i.SessionId,
		Source:      domain.Source(i.Source),
		Message:     i.Message,
		Referrer:    i.Referrer,
		UTMSource:   i.UtmSource,
		UTMMedium:   i.UtmMedium,
		UTMCampaign: i.UtmCampaign,
		Ctime:       time.UnixMilli(i.Ctime),
	}
}
