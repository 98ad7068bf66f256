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

	"github.com/ecodeclub/usedtech/internal/audit/internal/domain"
	"github.com/ecodeclub/usedtech/internal/audit/internal/event"
	"github.com/ecodeclub/usedtech/internal/audit/internal/repository"
	"github.com/ecodeclub/usedtech/internal/pkg/snowflake"
	"github.com/gotomicro/ego/core/elog"
)

var ErrUnknownEntityType = errors.New("未知的审计实体类型")

// MaxListLimit 活动页最多展示最近 100 条
const MaxListLimit = 100

//go:generate mockgen -source=./audit.go -package=auditmocks -destination=../../mocks/audit.mock.go Service
type Service interface {
	// Record 记录一条审计事件，优先走消息队列，发送失败时直接写库
	Record(ctx context.Context, evt domain.Event) error
	// Save 消费者落库，重复投递是幂等的
	Save(ctx context.Context, evt domain.Event) error
	List(ctx context.Context, offset, limit int) ([]domain.Event, error)
	ListByEntity(ctx context.Context, entityType domain.EntityType, entityID string) ([]domain.Event, error)
}

type service struct {
	repo     repository.AuditRepository
	producer event.AuditEventProducer
	keyGen   *snowflake.KeyGenerator
	logger   *elog.Component
}

func NewService(repo repository.AuditRepository,
	producer event.AuditEventProducer,
	keyGen *snowflake.KeyGenerator) Service {
	return &service{
		repo:     repo,
		producer: producer,
		keyGen:   keyGen,
		logger:   elog.DefaultLogger,
	}
}

func (s *service) Record(ctx context.Context, evt domain.Event) error {
	biz, ok := evt.EntityType.Biz()
	if !ok {
		return fmt.Errorf("%w: %s", ErrUnknownEntityType, evt.EntityType)
	}
	if evt.Key == "" {
		key, err := s.keyGen.Generate(biz)
		if err != nil {
			return fmt.Errorf("生成审计事件key失败: %w", err)
		}
		evt.Key = key.String()
	}
	if evt.Ctime.IsZero() {
		evt.Ctime = time.Now()
	}
	err := s.producer.Produce(ctx, event.AuditEvent{
		Key:        evt.Key,
		ActorID:    evt.ActorID,
		Action:     string(evt.Action),
		EntityType: string(evt.EntityType),
		EntityID:   evt.EntityID,
		Details:    evt.Details,
		Ctime:      evt.Ctime.UnixMilli(),
	})
	if err == nil {
		return nil
	}
	s.logger.Warn("发送审计事件失败，改为直接写库",
		elog.FieldErr(err),
		elog.String("key", evt.Key),
		elog.String("action", string(evt.Action)))
	if err1 := s.repo.Create(ctx, evt); err1 != nil {
		return fmt.Errorf("记录审计事件失败: %w", errors.Join(err, err1))
	}
	return nil
}

func (s *service) Save(ctx context.Context, evt domain.Event) error {
	return s.repo.Create(ctx, evt)
}

func (s *service) List(ctx context.Context, offset, limit int) ([]domain.Event, error) {
	if limit <= 0 || limit > MaxListLimit {
		limit = MaxListLimit
	}
	return s.repo.List(ctx, offset, limit)
}

func (s *service) ListByEntity(ctx context.Context, entityType domain.EntityType, entityID string) ([]domain.Event, error) {
	return s.repo.ListByEntity(ctx, entityType, entityID, MaxListLimit)
}
