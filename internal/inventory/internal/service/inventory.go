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
	"strconv"
	"time"

	"github.com/ecodeclub/usedtech/internal/audit"
	"github.com/ecodeclub/usedtech/internal/inventory/internal/domain"
	"github.com/ecodeclub/usedtech/internal/inventory/internal/repository"
	"github.com/ecodeclub/usedtech/internal/photo"
	"github.com/gotomicro/ego/core/elog"
	"golang.org/x/sync/errgroup"
)

var (
	ErrItemNotFound  = repository.ErrItemNotFound
	ErrSoldViaUpdate = domain.ErrSoldViaUpdate
	ErrSKUConflict   = errors.New("SKU 已存在")
	// ErrStatusChanged 读取之后商品状态被并发修改，例如刚好被售出
	ErrStatusChanged = errors.New("商品状态已被修改，请刷新后重试")
)

// skuAttempts 并发创建同一分类的商品时，序号可能冲突
const skuAttempts = 3

//go:generate mockgen -source=./inventory.go -package=invmocks -destination=../../mocks/inventory.mock.go Service
type Service interface {
	Create(ctx context.Context, item domain.Item, actor int64) (domain.Item, error)
	Update(ctx context.Context, patch domain.ItemPatch, actor int64) error
	Delete(ctx context.Context, id int64, actor int64) error
	FindByID(ctx context.Context, id int64) (domain.Item, error)
	FindByIDs(ctx context.Context, ids []int64) ([]domain.Item, error)
	// FindBySlug 店面详情，隐藏的状态视为不存在
	FindBySlug(ctx context.Context, slug string) (domain.Item, error)
	AdminList(ctx context.Context, filter domain.Filter, offset, limit int) ([]domain.Item, int64, error)
	PublicList(ctx context.Context, filter domain.Filter, offset, limit int) ([]domain.Item, int64, error)
	SoldList(ctx context.Context, offset, limit int) ([]domain.Item, error)
	CountByStatus(ctx context.Context) (map[domain.Status]int64, error)
	// ReleaseExpiredHolds 把预留过期的商品改回可售，返回处理的数量
	ReleaseExpiredHolds(ctx context.Context, batchSize int) (int, error)
	// Invalidate 清理商品的店面缓存
	Invalidate(ctx context.Context, itemID int64) error
}

type service struct {
	repo     repository.ItemRepository
	photoSvc photo.Service
	auditSvc audit.Service
	store    domain.StoreConfig
	nowFunc  func() time.Time
	logger   *elog.Component
}

func NewService(repo repository.ItemRepository,
	photoSvc photo.Service,
	auditSvc audit.Service,
	store domain.StoreConfig) Service {
	return &service{
		repo:     repo,
		photoSvc: photoSvc,
		auditSvc: auditSvc,
		store:    store,
		nowFunc:  time.Now,
		logger:   elog.DefaultLogger,
	}
}

func (s *service) Create(ctx context.Context, item domain.Item, actor int64) (domain.Item, error) {
	if item.Status == "" {
		item.Status = domain.StatusAvailable
	}
	if err := item.Validate(); err != nil {
		return domain.Item{}, err
	}
	if item.Status == domain.StatusSold {
		return domain.Item{}, ErrSoldViaUpdate
	}
	now := s.nowFunc()
	if item.Status == domain.StatusOnHold && item.HoldExpiresAt.IsZero() {
		item.HoldExpiresAt = now.Add(s.store.HoldDuration())
	}
	item.CreatedBy, item.UpdatedBy = actor, actor
	item.StatusChangedBy = actor
	item.StatusChangedAt = now

	var (
		id  int64
		err error
	)
	if item.SKU != "" {
		item.Slug = domain.GenerateSlug(item.Title, item.SKU)
		id, err = s.repo.Create(ctx, item)
		if errors.Is(err, repository.ErrDuplicated) {
			return domain.Item{}, fmt.Errorf("%w: %s", ErrSKUConflict, item.SKU)
		}
	} else {
		id, item, err = s.createWithGeneratedSKU(ctx, item, now.Year())
	}
	if err != nil {
		return domain.Item{}, err
	}
	item.ID = id
	s.record(ctx, actor, audit.ActionItemCreated, id, map[string]any{
		"sku":    item.SKU,
		"status": item.Status,
	})
	s.invalidate(ctx, "")
	return item, nil
}

func (s *service) createWithGeneratedSKU(ctx context.Context, item domain.Item, year int) (int64, domain.Item, error) {
	cnt, err := s.repo.CountByCategory(ctx, item.Category)
	if err != nil {
		return 0, item, err
	}
	for i := int64(1); i <= skuAttempts; i++ {
		item.SKU = domain.GenerateSKU(item.Category, year, cnt+i)
		item.Slug = domain.GenerateSlug(item.Title, item.SKU)
		id, err := s.repo.Create(ctx, item)
		if errors.Is(err, repository.ErrDuplicated) {
			continue
		}
		return id, item, err
	}
	return 0, item, fmt.Errorf("%w: 分类 %s 连续 %d 次冲突", ErrSKUConflict, item.Category, skuAttempts)
}

func (s *service) Update(ctx context.Context, patch domain.ItemPatch, actor int64) error {
	if err := patch.Validate(); err != nil {
		return err
	}
	old, err := s.repo.FindByID(ctx, patch.ID)
	if err != nil {
		return err
	}
	now := s.nowFunc()
	changes := map[string]any{"updated_by": actor}
	details := map[string]any{}
	var from domain.Status
	if patch.Status != nil && *patch.Status != old.Status {
		from = old.Status
		changes["status"] = string(*patch.Status)
		changes["status_changed_at"] = now.UnixMilli()
		changes["status_changed_by"] = actor
		changes["hold_expires_at"] = int64(0)
		details["status_from"] = old.Status
		details["status_to"] = *patch.Status
	}
	target := old.Status
	if patch.Status != nil {
		target = *patch.Status
	}
	if target == domain.StatusOnHold {
		switch {
		case patch.HoldExpiresAt != nil:
			changes["hold_expires_at"] = patch.HoldExpiresAt.UnixMilli()
		case old.Status != domain.StatusOnHold:
			changes["hold_expires_at"] = now.Add(s.store.HoldDuration()).UnixMilli()
		}
	}
	err = s.repo.Update(ctx, patch, from, changes)
	if errors.Is(err, repository.ErrStatusConflict) {
		return fmt.Errorf("%w: id=%d from=%s", ErrStatusChanged, patch.ID, from)
	}
	if err != nil {
		return err
	}
	s.record(ctx, actor, audit.ActionItemUpdated, patch.ID, details)
	s.invalidate(ctx, old.Slug)
	return nil
}

func (s *service) Delete(ctx context.Context, id int64, actor int64) error {
	item, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return err
	}
	if err = s.repo.Delete(ctx, id); err != nil {
		return err
	}
	if err = s.photoSvc.DeleteByItem(ctx, id); err != nil {
		s.logger.Error("删除商品图片失败", elog.FieldErr(err), elog.Int64("itemId", id))
	}
	s.record(ctx, actor, audit.ActionItemDeleted, id, map[string]any{
		"sku":   item.SKU,
		"title": item.Title,
	})
	s.invalidate(ctx, item.Slug)
	return nil
}

func (s *service) FindByID(ctx context.Context, id int64) (domain.Item, error) {
	return s.repo.FindByID(ctx, id)
}

func (s *service) FindByIDs(ctx context.Context, ids []int64) ([]domain.Item, error) {
	return s.repo.FindByIDs(ctx, ids)
}

func (s *service) FindBySlug(ctx context.Context, slug string) (domain.Item, error) {
	item, err := s.repo.FindBySlug(ctx, slug)
	if err != nil {
		return domain.Item{}, err
	}
	for _, st := range s.store.PublicExcludedStatuses() {
		if item.Status == st {
			return domain.Item{}, ErrItemNotFound
		}
	}
	return item, nil
}

func (s *service) AdminList(ctx context.Context, filter domain.Filter, offset, limit int) ([]domain.Item, int64, error) {
	return s.list(ctx, filter, offset, limit)
}

func (s *service) PublicList(ctx context.Context, filter domain.Filter, offset, limit int) ([]domain.Item, int64, error) {
	home := filter.IsZero() && offset == 0
	filter.ExcludeStatuses = s.store.PublicExcludedStatuses()
	if home {
		return s.repo.HomeList(ctx, filter, limit)
	}
	return s.list(ctx, filter, offset, limit)
}

func (s *service) list(ctx context.Context, filter domain.Filter, offset, limit int) ([]domain.Item, int64, error) {
	var (
		eg    errgroup.Group
		items []domain.Item
		total int64
	)
	eg.Go(func() error {
		var err error
		items, err = s.repo.List(ctx, filter, offset, limit)
		return err
	})
	eg.Go(func() error {
		var err error
		total, err = s.repo.Count(ctx, filter)
		return err
	})
	return items, total, eg.Wait()
}

func (s *service) SoldList(ctx context.Context, offset, limit int) ([]domain.Item, error) {
	return s.repo.ListSold(ctx, offset, limit)
}

func (s *service) CountByStatus(ctx context.Context) (map[domain.Status]int64, error) {
	counts, err := s.repo.CountByStatus(ctx)
	if err != nil {
		return nil, err
	}
	res := make(map[domain.Status]int64, len(domain.Statuses))
	for _, st := range domain.Statuses {
		res[st] = 0
	}
	for _, c := range counts {
		res[c.Status] = c.Count
	}
	return res, nil
}

func (s *service) ReleaseExpiredHolds(ctx context.Context, batchSize int) (int, error) {
	total := 0
	for {
		items, err := s.repo.ReleaseExpiredHolds(ctx, s.nowFunc(), batchSize)
		if err != nil {
			return total, err
		}
		for _, item := range items {
			s.record(ctx, 0, audit.ActionItemUpdated, item.ID, map[string]any{
				"status_from": domain.StatusOnHold,
				"status_to":   domain.StatusAvailable,
				"reason":      "hold_expired",
			})
			s.invalidate(ctx, item.Slug)
		}
		total += len(items)
		if len(items) < batchSize {
			return total, nil
		}
	}
}

func (s *service) Invalidate(ctx context.Context, itemID int64) error {
	item, err := s.repo.FindByID(ctx, itemID)
	if errors.Is(err, ErrItemNotFound) {
		// 商品已经删除，首页仍然要刷新
		return s.repo.Invalidate(ctx, "")
	}
	if err != nil {
		return err
	}
	return s.repo.Invalidate(ctx, item.Slug)
}

func (s *service) invalidate(ctx context.Context, slug string) {
	if err := s.repo.Invalidate(ctx, slug); err != nil {
		s.logger.Error("清理商品缓存失败", elog.FieldErr(err), elog.String("slug", slug))
	}
}

func (s *service) record(ctx context.Context, actor int64, action audit.Action, itemID int64, details map[string]any) {
	err := s.auditSvc.Record(ctx, audit.Event{
		ActorID:    actor,
		Action:     action,
		EntityType: audit.EntityTypeItem,
		EntityID:   strconv.FormatInt(itemID, 10),
		Details:    details,
	})
	if err != nil {
		s.logger.Error("记录商品审计失败",
			elog.FieldErr(err),
			elog.String("action", string(action)),
			elog.Int64("itemId", itemID))
	}
}
