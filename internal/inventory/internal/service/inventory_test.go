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

	auditmocks "github.com/ecodeclub/usedtech/internal/audit/mocks"
	"github.com/ecodeclub/usedtech/internal/inventory/internal/domain"
	"github.com/ecodeclub/usedtech/internal/inventory/internal/repository"
	repomocks "github.com/ecodeclub/usedtech/internal/inventory/internal/repository/mocks"
	photomocks "github.com/ecodeclub/usedtech/internal/photo/mocks"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

var fixedNow = time.Date(2025, 3, 14, 10, 0, 0, 0, time.UTC)

func newTestService(t *testing.T, store domain.StoreConfig,
	mock func(repo *repomocks.MockItemRepository, photoSvc *photomocks.MockService)) Service {
	ctrl := gomock.NewController(t)
	repo := repomocks.NewMockItemRepository(ctrl)
	photoSvc := photomocks.NewMockService(ctrl)
	auditSvc := auditmocks.NewMockService(ctrl)
	auditSvc.EXPECT().Record(gomock.Any(), gomock.Any()).Return(nil).AnyTimes()
	repo.EXPECT().Invalidate(gomock.Any(), gomock.Any()).Return(nil).AnyTimes()
	if mock != nil {
		mock(repo, photoSvc)
	}
	svc := NewService(repo, photoSvc, auditSvc, store).(*service)
	svc.nowFunc = func() time.Time { return fixedNow }
	return svc
}

func TestService_Create(t *testing.T) {
	testCases := []struct {
		name     string
		item     domain.Item
		mock     func(repo *repomocks.MockItemRepository, photoSvc *photomocks.MockService)
		wantErr  error
		wantSKU  string
		wantSlug string
	}{
		{
			name: "自动生成SKU",
			item: domain.Item{Title: "ThinkPad X1 Carbon", Category: domain.CategoryLaptop},
			mock: func(repo *repomocks.MockItemRepository, photoSvc *photomocks.MockService) {
				repo.EXPECT().CountByCategory(gomock.Any(), domain.CategoryLaptop).Return(int64(6), nil)
				repo.EXPECT().Create(gomock.Any(), gomock.Any()).
					DoAndReturn(func(ctx context.Context, item domain.Item) (int64, error) {
						assert.Equal(t, domain.StatusAvailable, item.Status)
						assert.Equal(t, int64(3), item.CreatedBy)
						return 11, nil
					})
			},
			wantSKU:  "LAP-2025-007",
			wantSlug: "thinkpad-x1-carbon-lap-2025-007",
		},
		{
			name: "序号冲突后顺延",
			item: domain.Item{Title: "Pixel 7", Category: domain.CategoryPhone},
			mock: func(repo *repomocks.MockItemRepository, photoSvc *photomocks.MockService) {
				repo.EXPECT().CountByCategory(gomock.Any(), domain.CategoryPhone).Return(int64(0), nil)
				gomock.InOrder(
					repo.EXPECT().Create(gomock.Any(), gomock.Any()).Return(int64(0), repository.ErrDuplicated),
					repo.EXPECT().Create(gomock.Any(), gomock.Any()).Return(int64(12), nil),
				)
			},
			wantSKU:  "PHN-2025-002",
			wantSlug: "pixel-7-phn-2025-002",
		},
		{
			name: "手工指定的SKU冲突",
			item: domain.Item{Title: "Pixel 7", Category: domain.CategoryPhone, SKU: "PHN-2025-001"},
			mock: func(repo *repomocks.MockItemRepository, photoSvc *photomocks.MockService) {
				repo.EXPECT().Create(gomock.Any(), gomock.Any()).Return(int64(0), repository.ErrDuplicated)
			},
			wantErr: ErrSKUConflict,
		},
		{
			name:    "不能直接创建已售商品",
			item:    domain.Item{Title: "Pixel 7", Category: domain.CategoryPhone, Status: domain.StatusSold},
			wantErr: ErrSoldViaUpdate,
		},
		{
			name:    "分类不合法",
			item:    domain.Item{Title: "Pixel 7", Category: "camera"},
			wantErr: domain.ErrInvalidCategory,
		},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			svc := newTestService(t, domain.StoreConfig{}, tc.mock)
			item, err := svc.Create(context.Background(), tc.item, 3)
			assert.ErrorIs(t, err, tc.wantErr)
			if err != nil {
				return
			}
			assert.Equal(t, tc.wantSKU, item.SKU)
			assert.Equal(t, tc.wantSlug, item.Slug)
		})
	}
}

func TestService_Update(t *testing.T) {
	sold := domain.StatusSold
	hold := domain.StatusOnHold
	returned := domain.StatusReturned
	price := int64(99900)
	testCases := []struct {
		name    string
		patch   domain.ItemPatch
		mock    func(repo *repomocks.MockItemRepository, photoSvc *photomocks.MockService)
		wantErr error
	}{
		{
			name:    "不能通过更新标记售出",
			patch:   domain.ItemPatch{ID: 1, Status: &sold},
			wantErr: ErrSoldViaUpdate,
		},
		{
			name:  "商品不存在",
			patch: domain.ItemPatch{ID: 1, PublicPrice: &price},
			mock: func(repo *repomocks.MockItemRepository, photoSvc *photomocks.MockService) {
				repo.EXPECT().FindByID(gomock.Any(), int64(1)).Return(domain.Item{}, repository.ErrItemNotFound)
			},
			wantErr: ErrItemNotFound,
		},
		{
			name:  "预留时写入默认到期时间",
			patch: domain.ItemPatch{ID: 1, Status: &hold},
			mock: func(repo *repomocks.MockItemRepository, photoSvc *photomocks.MockService) {
				repo.EXPECT().FindByID(gomock.Any(), int64(1)).
					Return(domain.Item{ID: 1, Slug: "a", Status: domain.StatusAvailable}, nil)
				repo.EXPECT().Update(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).
					DoAndReturn(func(ctx context.Context, patch domain.ItemPatch, from domain.Status, changes map[string]any) error {
						assert.Equal(t, domain.StatusAvailable, from)
						assert.Equal(t, "ON_HOLD", changes["status"])
						assert.Equal(t, fixedNow.UnixMilli(), changes["status_changed_at"])
						assert.Equal(t, int64(5), changes["status_changed_by"])
						assert.Equal(t, fixedNow.Add(48*time.Hour).UnixMilli(), changes["hold_expires_at"])
						return nil
					})
			},
		},
		{
			name:  "售出后标记退回",
			patch: domain.ItemPatch{ID: 1, Status: &returned},
			mock: func(repo *repomocks.MockItemRepository, photoSvc *photomocks.MockService) {
				repo.EXPECT().FindByID(gomock.Any(), int64(1)).
					Return(domain.Item{ID: 1, Slug: "a", Status: domain.StatusSold}, nil)
				repo.EXPECT().Update(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).
					DoAndReturn(func(ctx context.Context, patch domain.ItemPatch, from domain.Status, changes map[string]any) error {
						assert.Equal(t, "RETURNED", changes["status"])
						assert.Equal(t, int64(0), changes["hold_expires_at"])
						return nil
					})
			},
		},
		{
			name:  "只改价格不动状态",
			patch: domain.ItemPatch{ID: 1, PublicPrice: &price},
			mock: func(repo *repomocks.MockItemRepository, photoSvc *photomocks.MockService) {
				repo.EXPECT().FindByID(gomock.Any(), int64(1)).
					Return(domain.Item{ID: 1, Slug: "a", Status: domain.StatusAvailable}, nil)
				repo.EXPECT().Update(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).
					DoAndReturn(func(ctx context.Context, patch domain.ItemPatch, from domain.Status, changes map[string]any) error {
						_, ok := changes["status"]
						assert.False(t, ok)
						assert.Equal(t, domain.Status(""), from)
						assert.Equal(t, int64(5), changes["updated_by"])
						return nil
					})
			},
		},
		{
			name:  "状态已被其他人修改",
			patch: domain.ItemPatch{ID: 1, Status: &hold},
			mock: func(repo *repomocks.MockItemRepository, photoSvc *photomocks.MockService) {
				repo.EXPECT().FindByID(gomock.Any(), int64(1)).
					Return(domain.Item{ID: 1, Slug: "a", Status: domain.StatusAvailable}, nil)
				repo.EXPECT().Update(gomock.Any(), gomock.Any(), domain.StatusAvailable, gomock.Any()).
					Return(repository.ErrStatusConflict)
			},
			wantErr: ErrStatusChanged,
		},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			svc := newTestService(t, domain.StoreConfig{}, tc.mock)
			err := svc.Update(context.Background(), tc.patch, 5)
			assert.ErrorIs(t, err, tc.wantErr)
		})
	}
}

func TestService_Delete(t *testing.T) {
	svc := newTestService(t, domain.StoreConfig{}, func(repo *repomocks.MockItemRepository, photoSvc *photomocks.MockService) {
		repo.EXPECT().FindByID(gomock.Any(), int64(2)).Return(domain.Item{ID: 2, Slug: "b"}, nil)
		repo.EXPECT().Delete(gomock.Any(), int64(2)).Return(nil)
		// 图片清理失败不影响删除结果
		photoSvc.EXPECT().DeleteByItem(gomock.Any(), int64(2)).Return(errors.New("cos timeout"))
	})
	require.NoError(t, svc.Delete(context.Background(), 2, 1))
}

func TestService_FindBySlug(t *testing.T) {
	testCases := []struct {
		name    string
		store   domain.StoreConfig
		status  domain.Status
		wantErr error
	}{
		{name: "可售", status: domain.StatusAvailable},
		{name: "已售仍然可以查看", status: domain.StatusSold},
		{name: "退回默认隐藏", status: domain.StatusReturned, wantErr: ErrItemNotFound},
		{name: "配置展示退回", status: domain.StatusReturned, store: domain.StoreConfig{ShowReturned: true}},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			svc := newTestService(t, tc.store, func(repo *repomocks.MockItemRepository, photoSvc *photomocks.MockService) {
				repo.EXPECT().FindBySlug(gomock.Any(), "x").Return(domain.Item{ID: 1, Slug: "x", Status: tc.status}, nil)
			})
			_, err := svc.FindBySlug(context.Background(), "x")
			assert.ErrorIs(t, err, tc.wantErr)
		})
	}
}

func TestService_PublicList(t *testing.T) {
	t.Run("首页走缓存", func(t *testing.T) {
		svc := newTestService(t, domain.StoreConfig{}, func(repo *repomocks.MockItemRepository, photoSvc *photomocks.MockService) {
			repo.EXPECT().HomeList(gomock.Any(), domain.Filter{ExcludeStatuses: []domain.Status{domain.StatusReturned}}, 20).
				Return([]domain.Item{{ID: 1}}, int64(1), nil)
		})
		items, total, err := svc.PublicList(context.Background(), domain.Filter{}, 0, 20)
		require.NoError(t, err)
		assert.Len(t, items, 1)
		assert.Equal(t, int64(1), total)
	})
	t.Run("带筛选条件查数据库", func(t *testing.T) {
		want := domain.Filter{Category: domain.CategoryPhone, ExcludeStatuses: []domain.Status{domain.StatusReturned}}
		svc := newTestService(t, domain.StoreConfig{}, func(repo *repomocks.MockItemRepository, photoSvc *photomocks.MockService) {
			repo.EXPECT().List(gomock.Any(), want, 0, 20).Return([]domain.Item{{ID: 1}, {ID: 2}}, nil)
			repo.EXPECT().Count(gomock.Any(), want).Return(int64(7), nil)
		})
		items, total, err := svc.PublicList(context.Background(), domain.Filter{Category: domain.CategoryPhone}, 0, 20)
		require.NoError(t, err)
		assert.Len(t, items, 2)
		assert.Equal(t, int64(7), total)
	})
}

func TestService_CountByStatus(t *testing.T) {
	svc := newTestService(t, domain.StoreConfig{}, func(repo *repomocks.MockItemRepository, photoSvc *photomocks.MockService) {
		repo.EXPECT().CountByStatus(gomock.Any()).Return([]domain.StatusCount{
			{Status: domain.StatusAvailable, Count: 4},
			{Status: domain.StatusSold, Count: 9},
		}, nil)
	})
	res, err := svc.CountByStatus(context.Background())
	require.NoError(t, err)
	assert.Equal(t, map[domain.Status]int64{
		domain.StatusAvailable: 4,
		domain.StatusOnHold:    0,
		domain.StatusSold:      9,
		domain.StatusReturned:  0,
	}, res)
}

func TestService_ReleaseExpiredHolds(t *testing.T) {
	svc := newTestService(t, domain.StoreConfig{}, func(repo *repomocks.MockItemRepository, photoSvc *photomocks.MockService) {
		gomock.InOrder(
			repo.EXPECT().ReleaseExpiredHolds(gomock.Any(), fixedNow, 2).
				Return([]domain.Item{{ID: 1, Slug: "a"}, {ID: 2, Slug: "b"}}, nil),
			repo.EXPECT().ReleaseExpiredHolds(gomock.Any(), fixedNow, 2).
				Return([]domain.Item{{ID: 3, Slug: "c"}}, nil),
		)
	})
	n, err := svc.ReleaseExpiredHolds(context.Background(), 2)
	require.NoError(t, err)
	assert.Equal(t, 3, n)
}
