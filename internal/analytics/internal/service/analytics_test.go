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
	"testing"
	"time"

	"github.com/ecodeclub/usedtech/internal/analytics/internal/domain"
	"github.com/ecodeclub/usedtech/internal/analytics/internal/repository"
	repomocks "github.com/ecodeclub/usedtech/internal/analytics/internal/repository/mocks"
	"github.com/ecodeclub/usedtech/internal/inventory"
	invmocks "github.com/ecodeclub/usedtech/internal/inventory/mocks"
	"github.com/ecodeclub/usedtech/internal/sale"
	salemocks "github.com/ecodeclub/usedtech/internal/sale/mocks"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

var fixedNow = time.Date(2025, 3, 14, 10, 0, 0, 0, time.UTC)

func newTestService(ctrl *gomock.Controller) (*service, *repomocks.MockAnalyticsRepository,
	*invmocks.MockService, *salemocks.MockService) {
	repo := repomocks.NewMockAnalyticsRepository(ctrl)
	itemSvc := invmocks.NewMockService(ctrl)
	saleSvc := salemocks.NewMockService(ctrl)
	svc := NewService(repo, itemSvc, saleSvc).(*service)
	svc.nowFunc = func() time.Time { return fixedNow }
	return svc, repo, itemSvc, saleSvc
}

func TestService_LogView(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	svc, repo, _, _ := newTestService(ctrl)

	_, err := svc.LogView(context.Background(), domain.View{ItemID: 1})
	assert.ErrorIs(t, err, domain.ErrSessionRequired)

	repo.EXPECT().LogView(gomock.Any(), domain.View{ItemID: 1, SessionID: "s1", Ctime: fixedNow},
		fixedNow.Add(-30*time.Minute)).Return(true, nil)
	ok, err := svc.LogView(context.Background(), domain.View{ItemID: 1, SessionID: "s1"})
	require.NoError(t, err)
	assert.True(t, ok)
}

func TestService_LogInquiry(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	svc, repo, _, _ := newTestService(ctrl)

	repo.EXPECT().LogInquiry(gomock.Any(), gomock.Any()).
		DoAndReturn(func(ctx context.Context, i domain.Inquiry) (int64, error) {
			assert.Equal(t, domain.SourceWhatsApp, i.Source)
			return 3, nil
		})
	id, err := svc.LogInquiry(context.Background(), domain.Inquiry{ItemID: 1, SessionID: "s1"})
	require.NoError(t, err)
	assert.Equal(t, int64(3), id)
}

func TestService_ItemAnalytics(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	svc, repo, itemSvc, _ := newTestService(ctrl)

	itemSvc.EXPECT().AdminList(gomock.Any(), inventory.Filter{}, 0, 10).Return([]inventory.Item{
		{ID: 1, Title: "MacBook", SKU: "LAP-2025-001", Status: inventory.StatusAvailable},
		{ID: 2, Title: "Pixel", SKU: "PHN-2025-001", Status: inventory.StatusSold},
	}, int64(2), nil)
	ids := []int64{1, 2}
	repo.EXPECT().ViewCountsSince(gomock.Any(), ids, fixedNow.Add(-week)).Return(map[int64]int64{1: 3}, nil)
	repo.EXPECT().ViewCountsSince(gomock.Any(), ids, fixedNow.Add(-month)).Return(map[int64]int64{1: 3}, nil)
	repo.EXPECT().InquiryCountsSince(gomock.Any(), ids, fixedNow.Add(-week)).Return(map[int64]int64{1: 1}, nil)
	repo.EXPECT().InquiryCountsSince(gomock.Any(), ids, fixedNow.Add(-month)).Return(map[int64]int64{1: 1, 2: 1}, nil)

	stats, total, err := svc.ItemAnalytics(context.Background(), 0, 10)
	require.NoError(t, err)
	assert.Equal(t, int64(2), total)
	require.Len(t, stats, 2)

	assert.Equal(t, int64(3), stats[0].Views30d)
	assert.Equal(t, int64(1), stats[0].Inquiries7d)
	require.NotNil(t, stats[0].ConversionPct30d)
	assert.InDelta(t, 33.3, *stats[0].ConversionPct30d, 1e-9)

	// 没有浏览时转化率为空
	assert.Equal(t, int64(0), stats[1].Views30d)
	assert.Equal(t, int64(1), stats[1].Inquiries30d)
	assert.Nil(t, stats[1].ConversionPct30d)
}

func TestService_Dashboard(t *testing.T) {
	testCases := []struct {
		name    string
		mock    func(repo *repomocks.MockAnalyticsRepository, itemSvc *invmocks.MockService, saleSvc *salemocks.MockService)
		want    domain.Dashboard
		wantErr error
	}{
		{
			name: "完整的看板",
			mock: func(repo *repomocks.MockAnalyticsRepository, itemSvc *invmocks.MockService, saleSvc *salemocks.MockService) {
				itemSvc.EXPECT().CountByStatus(gomock.Any()).Return(map[inventory.Status]int64{
					inventory.StatusAvailable: 4,
					inventory.StatusOnHold:    1,
					inventory.StatusSold:      7,
					inventory.StatusReturned:  0,
				}, nil)
				saleSvc.EXPECT().MonthlySummary(gomock.Any(), fixedNow).Return(sale.Summary{Count: 2, Revenue: 90000}, nil)
				repo.EXPECT().CountInquiriesSince(gomock.Any(), fixedNow.Add(-week)).Return(int64(5), nil)
				repo.EXPECT().TopViewedSince(gomock.Any(), fixedNow.Add(-week)).
					Return(domain.TopItem{ItemID: 9, Views: 42}, nil)
				itemSvc.EXPECT().FindByID(gomock.Any(), int64(9)).
					Return(inventory.Item{ID: 9, Title: "iPad Air", SKU: "TAB-2025-003"}, nil)
			},
			want: domain.Dashboard{
				StatusCounts: map[string]int64{"AVAILABLE": 4, "ON_HOLD": 1, "SOLD": 7, "RETURNED": 0},
				SalesCount:   2,
				SalesRevenue: 90000,
				Inquiries7d:  5,
				TopViewed:    &domain.TopItem{ItemID: 9, Title: "iPad Air", SKU: "TAB-2025-003", Views: 42},
			},
		},
		{
			name: "最近没有浏览",
			mock: func(repo *repomocks.MockAnalyticsRepository, itemSvc *invmocks.MockService, saleSvc *salemocks.MockService) {
				itemSvc.EXPECT().CountByStatus(gomock.Any()).Return(map[inventory.Status]int64{}, nil)
				saleSvc.EXPECT().MonthlySummary(gomock.Any(), fixedNow).Return(sale.Summary{}, nil)
				repo.EXPECT().CountInquiriesSince(gomock.Any(), gomock.Any()).Return(int64(0), nil)
				repo.EXPECT().TopViewedSince(gomock.Any(), gomock.Any()).Return(domain.TopItem{}, repository.ErrNoViews)
			},
			want: domain.Dashboard{StatusCounts: map[string]int64{}},
		},
		{
			name: "销售汇总失败",
			mock: func(repo *repomocks.MockAnalyticsRepository, itemSvc *invmocks.MockService, saleSvc *salemocks.MockService) {
				itemSvc.EXPECT().CountByStatus(gomock.Any()).Return(map[inventory.Status]int64{}, nil)
				saleSvc.EXPECT().MonthlySummary(gomock.Any(), fixedNow).Return(sale.Summary{}, errors.New("mock db error"))
				repo.EXPECT().CountInquiriesSince(gomock.Any(), gomock.Any()).Return(int64(0), nil)
				repo.EXPECT().TopViewedSince(gomock.Any(), gomock.Any()).Return(domain.TopItem{}, repository.ErrNoViews)
			},
			wantErr: errors.New("mock db error"),
		},
	}
	for _, tc := range testCases {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()
			svc, repo, itemSvc, saleSvc := newTestService(ctrl)
			tc.mock(repo, itemSvc, saleSvc)
			res, err := svc.Dashboard(context.Background())
			assert.Equal(t, tc.wantErr, err)
			if err != nil {
				return
			}
			assert.Equal(t, tc.want, res)
		})
	}
}
