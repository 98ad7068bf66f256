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
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/ecodeclub/usedtech/internal/inventory"
	invmocks "github.com/ecodeclub/usedtech/internal/inventory/mocks"
	"github.com/ecodeclub/usedtech/internal/pkg/sequencenumber"
	"github.com/ecodeclub/usedtech/internal/policy"
	policymocks "github.com/ecodeclub/usedtech/internal/policy/mocks"
	"github.com/ecodeclub/usedtech/internal/sale/internal/domain"
	"github.com/ecodeclub/usedtech/internal/sale/internal/event"
	evtmocks "github.com/ecodeclub/usedtech/internal/sale/internal/event/mocks"
	"github.com/ecodeclub/usedtech/internal/sale/internal/repository"
	repomocks "github.com/ecodeclub/usedtech/internal/sale/internal/repository/mocks"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

type generatorFunc func(ctx context.Context) (string, error)

func (f generatorFunc) Next(ctx context.Context) (string, error) {
	return f(ctx)
}

func fixedReceipt(n string) generatorFunc {
	return func(ctx context.Context) (string, error) {
		return n, nil
	}
}

func strPtr(s string) *string {
	return &s
}

func validRequest(itemID int64) domain.RecordRequest {
	return domain.RecordRequest{
		ItemID:        itemID,
		BuyerName:     "Ama",
		SalePrice:     45000,
		PaymentMethod: domain.PaymentCash,
		Actor:         7,
	}
}

func TestService_Record(t *testing.T) {
	testCases := []struct {
		name      string
		req       domain.RecordRequest
		generator ReceiptNumberGenerator
		mock      func(ctrl *gomock.Controller) (repository.SaleRepository, inventory.Service,
			policy.Service, event.InventoryEventProducer)
		wantErr     error
		wantReceipt string
	}{
		{
			name:      "商品不存在",
			req:       validRequest(1),
			generator: fixedReceipt("RCP-2025-000001"),
			mock: func(ctrl *gomock.Controller) (repository.SaleRepository, inventory.Service,
				policy.Service, event.InventoryEventProducer) {
				itemSvc := invmocks.NewMockService(ctrl)
				itemSvc.EXPECT().FindByID(gomock.Any(), int64(1)).Return(inventory.Item{}, inventory.ErrItemNotFound)
				return repomocks.NewMockSaleRepository(ctrl), itemSvc,
					policymocks.NewMockService(ctrl), evtmocks.NewMockInventoryEventProducer(ctrl)
			},
			wantErr: ErrItemNotFound,
		},
		{
			name:      "商品已售出",
			req:       validRequest(2),
			generator: fixedReceipt("RCP-2025-000001"),
			mock: func(ctrl *gomock.Controller) (repository.SaleRepository, inventory.Service,
				policy.Service, event.InventoryEventProducer) {
				itemSvc := invmocks.NewMockService(ctrl)
				itemSvc.EXPECT().FindByID(gomock.Any(), int64(2)).
					Return(inventory.Item{ID: 2, Status: inventory.StatusSold}, nil)
				return repomocks.NewMockSaleRepository(ctrl), itemSvc,
					policymocks.NewMockService(ctrl), evtmocks.NewMockInventoryEventProducer(ctrl)
			},
			wantErr: ErrItemAlreadySold,
		},
		{
			name:      "已退货的商品不能直接销售",
			req:       validRequest(3),
			generator: fixedReceipt("RCP-2025-000001"),
			mock: func(ctrl *gomock.Controller) (repository.SaleRepository, inventory.Service,
				policy.Service, event.InventoryEventProducer) {
				itemSvc := invmocks.NewMockService(ctrl)
				itemSvc.EXPECT().FindByID(gomock.Any(), int64(3)).
					Return(inventory.Item{ID: 3, Status: inventory.StatusReturned}, nil)
				return repomocks.NewMockSaleRepository(ctrl), itemSvc,
					policymocks.NewMockService(ctrl), evtmocks.NewMockInventoryEventProducer(ctrl)
			},
			wantErr: ErrItemNotSellable,
		},
		{
			name: "收据号生成失败不写入任何数据",
			req:  validRequest(4),
			generator: generatorFunc(func(ctx context.Context) (string, error) {
				return "", errors.New("redis down")
			}),
			mock: func(ctrl *gomock.Controller) (repository.SaleRepository, inventory.Service,
				policy.Service, event.InventoryEventProducer) {
				itemSvc := invmocks.NewMockService(ctrl)
				itemSvc.EXPECT().FindByID(gomock.Any(), int64(4)).
					Return(inventory.Item{ID: 4, Status: inventory.StatusAvailable}, nil)
				policySvc := policymocks.NewMockService(ctrl)
				policySvc.EXPECT().Snapshot(gomock.Any()).Return(policy.Snapshot{}, nil)
				return repomocks.NewMockSaleRepository(ctrl), itemSvc,
					policySvc, evtmocks.NewMockInventoryEventProducer(ctrl)
			},
			wantErr: ErrReceiptNumber,
		},
		{
			name:      "并发冲突后重新读取状态",
			req:       validRequest(5),
			generator: fixedReceipt("RCP-2025-000009"),
			mock: func(ctrl *gomock.Controller) (repository.SaleRepository, inventory.Service,
				policy.Service, event.InventoryEventProducer) {
				itemSvc := invmocks.NewMockService(ctrl)
				gomock.InOrder(
					itemSvc.EXPECT().FindByID(gomock.Any(), int64(5)).
						Return(inventory.Item{ID: 5, Status: inventory.StatusOnHold}, nil),
					itemSvc.EXPECT().FindByID(gomock.Any(), int64(5)).
						Return(inventory.Item{ID: 5, Status: inventory.StatusSold}, nil),
				)
				policySvc := policymocks.NewMockService(ctrl)
				policySvc.EXPECT().Snapshot(gomock.Any()).Return(policy.Snapshot{}, nil)
				repo := repomocks.NewMockSaleRepository(ctrl)
				repo.EXPECT().Record(gomock.Any(), gomock.Any()).Return(int64(0), repository.ErrStatusConflict)
				return repo, itemSvc, policySvc, evtmocks.NewMockInventoryEventProducer(ctrl)
			},
			wantErr: ErrItemAlreadySold,
		},
		{
			name:      "保存失败",
			req:       validRequest(6),
			generator: fixedReceipt("RCP-2025-000010"),
			mock: func(ctrl *gomock.Controller) (repository.SaleRepository, inventory.Service,
				policy.Service, event.InventoryEventProducer) {
				itemSvc := invmocks.NewMockService(ctrl)
				itemSvc.EXPECT().FindByID(gomock.Any(), int64(6)).
					Return(inventory.Item{ID: 6, Status: inventory.StatusAvailable}, nil)
				policySvc := policymocks.NewMockService(ctrl)
				policySvc.EXPECT().Snapshot(gomock.Any()).Return(policy.Snapshot{}, nil)
				repo := repomocks.NewMockSaleRepository(ctrl)
				repo.EXPECT().Record(gomock.Any(), gomock.Any()).Return(int64(0), errors.New("mock db error"))
				return repo, itemSvc, policySvc, evtmocks.NewMockInventoryEventProducer(ctrl)
			},
			wantErr: errors.New("保存销售记录失败 receipt=RCP-2025-000010: mock db error"),
		},
		{
			name:      "录入成功并保存政策快照",
			req:       validRequest(7),
			generator: fixedReceipt("RCP-2025-000011"),
			mock: func(ctrl *gomock.Controller) (repository.SaleRepository, inventory.Service,
				policy.Service, event.InventoryEventProducer) {
				itemSvc := invmocks.NewMockService(ctrl)
				itemSvc.EXPECT().FindByID(gomock.Any(), int64(7)).
					Return(inventory.Item{ID: 7, Status: inventory.StatusAvailable}, nil)
				policySvc := policymocks.NewMockService(ctrl)
				policySvc.EXPECT().Snapshot(gomock.Any()).Return(policy.Snapshot{Warranty: strPtr("30 天保修")}, nil)
				repo := repomocks.NewMockSaleRepository(ctrl)
				repo.EXPECT().Record(gomock.Any(), gomock.Any()).
					DoAndReturn(func(ctx context.Context, s domain.Sale) (int64, error) {
						assert.Equal(t, "RCP-2025-000011", s.ReceiptNumber)
						assert.Equal(t, domain.FulfillmentPickup, s.FulfillmentType)
						require.NotNil(t, s.Policies.Warranty)
						assert.Equal(t, "30 天保修", *s.Policies.Warranty)
						assert.Nil(t, s.Policies.Returns)
						assert.Equal(t, int64(7), s.RecordedBy)
						return 1, nil
					})
				producer := evtmocks.NewMockInventoryEventProducer(ctrl)
				producer.EXPECT().Produce(gomock.Any(), event.InventoryEvent{ItemID: 7, Action: "sold"}).Return(nil)
				return repo, itemSvc, policySvc, producer
			},
			wantReceipt: "RCP-2025-000011",
		},
		{
			name:      "事件发送失败时直接清理缓存",
			req:       validRequest(8),
			generator: fixedReceipt("RCP-2025-000012"),
			mock: func(ctrl *gomock.Controller) (repository.SaleRepository, inventory.Service,
				policy.Service, event.InventoryEventProducer) {
				itemSvc := invmocks.NewMockService(ctrl)
				itemSvc.EXPECT().FindByID(gomock.Any(), int64(8)).
					Return(inventory.Item{ID: 8, Status: inventory.StatusAvailable}, nil)
				itemSvc.EXPECT().Invalidate(gomock.Any(), int64(8)).Return(nil)
				policySvc := policymocks.NewMockService(ctrl)
				policySvc.EXPECT().Snapshot(gomock.Any()).Return(policy.Snapshot{}, nil)
				repo := repomocks.NewMockSaleRepository(ctrl)
				repo.EXPECT().Record(gomock.Any(), gomock.Any()).Return(int64(2), nil)
				producer := evtmocks.NewMockInventoryEventProducer(ctrl)
				producer.EXPECT().Produce(gomock.Any(), gomock.Any()).Return(errors.New("mq down"))
				return repo, itemSvc, policySvc, producer
			},
			wantReceipt: "RCP-2025-000012",
		},
	}
	for _, tc := range testCases {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()
			repo, itemSvc, policySvc, producer := tc.mock(ctrl)
			svc := NewService(repo, itemSvc, policySvc, tc.generator, producer)
			receipt, err := svc.Record(context.Background(), tc.req)
			if tc.wantErr != nil {
				if errors.Is(err, tc.wantErr) {
					return
				}
				require.Error(t, err)
				assert.Equal(t, tc.wantErr.Error(), err.Error())
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tc.wantReceipt, receipt)
		})
	}
}

func TestService_Record_InvalidRequest(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	svc := NewService(repomocks.NewMockSaleRepository(ctrl), invmocks.NewMockService(ctrl),
		policymocks.NewMockService(ctrl), fixedReceipt("x"), evtmocks.NewMockInventoryEventProducer(ctrl))
	req := validRequest(1)
	req.SalePrice = -1
	_, err := svc.Record(context.Background(), req)
	assert.ErrorIs(t, err, domain.ErrInvalidPrice)
}

func TestService_Record_SoldAt(t *testing.T) {
	backdated := time.Date(2025, 3, 1, 15, 4, 0, 0, time.Local)
	testCases := []struct {
		name    string
		soldAt  time.Time
		wantErr error
		assert  func(t *testing.T, s domain.Sale)
	}{
		{
			name:   "补录之前的销售",
			soldAt: backdated,
			assert: func(t *testing.T, s domain.Sale) {
				assert.True(t, backdated.Equal(s.SoldAt))
			},
		},
		{
			name: "不填写时使用当前时间",
			assert: func(t *testing.T, s domain.Sale) {
				assert.WithinDuration(t, time.Now(), s.SoldAt, time.Minute)
			},
		},
		{
			name:    "成交时间不能在未来",
			soldAt:  time.Now().Add(time.Hour),
			wantErr: domain.ErrInvalidSoldAt,
		},
	}
	for _, tc := range testCases {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()
			itemSvc := invmocks.NewMockService(ctrl)
			policySvc := policymocks.NewMockService(ctrl)
			repo := repomocks.NewMockSaleRepository(ctrl)
			producer := evtmocks.NewMockInventoryEventProducer(ctrl)
			if tc.wantErr == nil {
				itemSvc.EXPECT().FindByID(gomock.Any(), int64(1)).
					Return(inventory.Item{ID: 1, Status: inventory.StatusAvailable}, nil)
				policySvc.EXPECT().Snapshot(gomock.Any()).Return(policy.Snapshot{}, nil)
				repo.EXPECT().Record(gomock.Any(), gomock.Any()).
					DoAndReturn(func(ctx context.Context, s domain.Sale) (int64, error) {
						tc.assert(t, s)
						return 1, nil
					})
				producer.EXPECT().Produce(gomock.Any(), gomock.Any()).Return(nil)
			}
			svc := NewService(repo, itemSvc, policySvc, fixedReceipt("RCP-2025-000001"), producer)
			req := validRequest(1)
			req.SoldAt = tc.soldAt
			_, err := svc.Record(context.Background(), req)
			assert.ErrorIs(t, err, tc.wantErr)
		})
	}
}

// casStore 用内存模拟条件更新：只有可售状态才能变成已售
type casStore struct {
	mu   sync.Mutex
	sold map[int64]bool
	recs []domain.Sale
}

func (c *casStore) record(ctx context.Context, s domain.Sale) (int64, error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.sold[s.ItemID] {
		return 0, repository.ErrStatusConflict
	}
	c.sold[s.ItemID] = true
	c.recs = append(c.recs, s)
	return int64(len(c.recs)), nil
}

func (c *casStore) status(id int64) inventory.Status {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.sold[id] {
		return inventory.StatusSold
	}
	return inventory.StatusAvailable
}

func newConcurrentService(t *testing.T, store *casStore) Service {
	ctrl := gomock.NewController(t)
	t.Cleanup(ctrl.Finish)
	itemSvc := invmocks.NewMockService(ctrl)
	itemSvc.EXPECT().FindByID(gomock.Any(), gomock.Any()).
		DoAndReturn(func(ctx context.Context, id int64) (inventory.Item, error) {
			return inventory.Item{ID: id, Status: store.status(id)}, nil
		}).AnyTimes()
	policySvc := policymocks.NewMockService(ctrl)
	policySvc.EXPECT().Snapshot(gomock.Any()).Return(policy.Snapshot{}, nil).AnyTimes()
	repo := repomocks.NewMockSaleRepository(ctrl)
	repo.EXPECT().Record(gomock.Any(), gomock.Any()).DoAndReturn(store.record).AnyTimes()
	producer := evtmocks.NewMockInventoryEventProducer(ctrl)
	producer.EXPECT().Produce(gomock.Any(), gomock.Any()).Return(nil).AnyTimes()

	mr := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	generator := sequencenumber.NewGeneratorWith(client, sequencenumber.DefaultPrefix, func() time.Time {
		return time.Date(2025, 3, 14, 0, 0, 0, 0, time.UTC)
	})
	return NewService(repo, itemSvc, policySvc, generator, producer)
}

func TestService_Record_ConcurrentItems(t *testing.T) {
	store := &casStore{sold: map[int64]bool{}}
	svc := newConcurrentService(t, store)

	const n = 30
	var (
		wg       sync.WaitGroup
		mu       sync.Mutex
		receipts = make(map[string]struct{}, n)
	)
	for i := 1; i <= n; i++ {
		wg.Add(1)
		go func(id int64) {
			defer wg.Done()
			receipt, err := svc.Record(context.Background(), validRequest(id))
			assert.NoError(t, err)
			mu.Lock()
			receipts[receipt] = struct{}{}
			mu.Unlock()
		}(int64(i))
	}
	wg.Wait()
	assert.Len(t, receipts, n)
	assert.Len(t, store.recs, n)
	_, ok := receipts[fmt.Sprintf("RCP-2025-%06d", n)]
	assert.True(t, ok)
}

func TestService_Record_ConcurrentSameItem(t *testing.T) {
	store := &casStore{sold: map[int64]bool{}}
	svc := newConcurrentService(t, store)

	const n = 20
	var (
		wg      sync.WaitGroup
		success atomic.Int32
		sold    atomic.Int32
	)
	for i := 0; i < n; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_, err := svc.Record(context.Background(), validRequest(99))
			switch {
			case err == nil:
				success.Add(1)
			case errors.Is(err, ErrItemAlreadySold):
				sold.Add(1)
			default:
				t.Errorf("unexpected error: %v", err)
			}
		}()
	}
	wg.Wait()
	assert.Equal(t, int32(1), success.Load())
	assert.Equal(t, int32(n-1), sold.Load())
	assert.Len(t, store.recs, 1)
}

func TestService_FindByID(t *testing.T) {
	testCases := []struct {
		name     string
		mock     func(ctrl *gomock.Controller) (repository.SaleRepository, inventory.Service)
		wantErr  error
		wantItem domain.ItemSummary
	}{
		{
			name: "带商品摘要",
			mock: func(ctrl *gomock.Controller) (repository.SaleRepository, inventory.Service) {
				repo := repomocks.NewMockSaleRepository(ctrl)
				repo.EXPECT().FindByID(gomock.Any(), int64(1)).Return(domain.Sale{ID: 1, ItemID: 3}, nil)
				itemSvc := invmocks.NewMockService(ctrl)
				itemSvc.EXPECT().FindByID(gomock.Any(), int64(3)).Return(inventory.Item{
					ID:           3,
					SKU:          "LAP-2025-001",
					Title:        "MacBook Air",
					Brand:        "Apple",
					Model:        "M1",
					InternalCost: 100,
				}, nil)
				return repo, itemSvc
			},
			wantItem: domain.ItemSummary{ID: 3, SKU: "LAP-2025-001", Title: "MacBook Air", Brand: "Apple", Model: "M1"},
		},
		{
			name: "商品已删除",
			mock: func(ctrl *gomock.Controller) (repository.SaleRepository, inventory.Service) {
				repo := repomocks.NewMockSaleRepository(ctrl)
				repo.EXPECT().FindByID(gomock.Any(), int64(1)).Return(domain.Sale{ID: 1, ItemID: 3}, nil)
				itemSvc := invmocks.NewMockService(ctrl)
				itemSvc.EXPECT().FindByID(gomock.Any(), int64(3)).Return(inventory.Item{}, inventory.ErrItemNotFound)
				return repo, itemSvc
			},
			wantItem: domain.ItemSummary{ID: 3},
		},
		{
			name: "销售记录不存在",
			mock: func(ctrl *gomock.Controller) (repository.SaleRepository, inventory.Service) {
				repo := repomocks.NewMockSaleRepository(ctrl)
				repo.EXPECT().FindByID(gomock.Any(), int64(1)).Return(domain.Sale{}, repository.ErrSaleNotFound)
				return repo, invmocks.NewMockService(ctrl)
			},
			wantErr: ErrSaleNotFound,
		},
	}
	for _, tc := range testCases {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()
			repo, itemSvc := tc.mock(ctrl)
			svc := NewService(repo, itemSvc, policymocks.NewMockService(ctrl),
				fixedReceipt("x"), evtmocks.NewMockInventoryEventProducer(ctrl))
			res, err := svc.FindByID(context.Background(), 1)
			assert.ErrorIs(t, err, tc.wantErr)
			if err != nil {
				return
			}
			assert.Equal(t, tc.wantItem, res.Item)
		})
	}
}

func TestService_MonthlySummary(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	repo := repomocks.NewMockSaleRepository(ctrl)
	now := time.Date(2025, 12, 20, 15, 0, 0, 0, time.UTC)
	repo.EXPECT().Summary(gomock.Any(), domain.ListFilter{
		From: time.Date(2025, 12, 1, 0, 0, 0, 0, time.UTC),
		To:   time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC),
	}).Return(domain.Summary{Count: 2, Revenue: 90000}, nil)
	svc := NewService(repo, invmocks.NewMockService(ctrl), policymocks.NewMockService(ctrl),
		fixedReceipt("x"), evtmocks.NewMockInventoryEventProducer(ctrl))
	res, err := svc.MonthlySummary(context.Background(), now)
	require.NoError(t, err)
	assert.Equal(t, domain.Summary{Count: 2, Revenue: 90000}, res)
}
