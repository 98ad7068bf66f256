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
	"time"

	"github.com/ecodeclub/ekit/slice"
	"github.com/ecodeclub/ekit/sqlx"
	"github.com/ecodeclub/usedtech/internal/audit/internal/domain"
	"github.com/ecodeclub/usedtech/internal/audit/internal/repository/dao"
)

//go:generate mockgen -source=./audit.go -package=repomocks -destination=mocks/audit.mock.go AuditRepository
type AuditRepository interface {
	Create(ctx context.Context, evt domain.Event) error
	List(ctx context.Context, offset, limit int) ([]domain.Event, error)
	ListByEntity(ctx context.Context, entityType domain.EntityType, entityID string, limit int) ([]domain.Event, error)
}

type auditRepository struct {
	dao dao.AuditDAO
}

func NewAuditRepository(d dao.AuditDAO) AuditRepository {
	return &auditRepository{dao: d}
}

func (r *auditRepository) Create(ctx context.Context, evt domain.Event) error {
	return r.dao.Insert(ctx, r.toEntity(evt))
}

func (r *auditRepository) List(ctx context.Context, offset, limit int) ([]domain.Event, error) {
	res, err := r.dao.List(ctx, offset, limit)
	if err != nil {
		return nil, err
	}
	return slice.Map(res, func(idx int, src dao.AuditEventWithActor) domain.Event {
		return r.toDomain(src)
	}), nil
}

func (r *auditRepository) ListByEntity(ctx context.Context, entityType domain.EntityType, entityID string, limit int) ([]domain.Event, error) {
	res, err := r.dao.ListByEntity(ctx, string(entityType), entityID, limit)
	if err != nil {
		return nil, err
	}
	return slice.Map(res, func(idx int, src dao.AuditEventWithActor) domain.Event {
		return r.toDomain(src)
	}), nil
}

func (r *auditRepository) toEntity(evt domain.Event) dao.AuditEvent {
	return dao.AuditEvent{
		EventKey:   evt.Key,
		ActorId:    evt.ActorID,
		Action:     string(evt.Action),
		EntityType: string(evt.EntityType),
		EntityId:   evt.EntityID,
		Details: sqlx.JsonColumn[map[string]any]{
			Val:   evt.Details,
			Valid: len(evt.Details) > 0,
		},
		Ctime: evt.Ctime.UnixMilli(),
	}
}

func (r *auditRepository) toDomain(src dao.AuditEventWithActor) domain.Event {
	return domain.Event{
		ID:         src.Id,
		Key:        src.EventKey,
		ActorID:    src.ActorId,
		ActorName:  src.ActorName.String,
		Action:     domain.Action(src.Action),
		EntityType: domain.EntityType(src.EntityType),
		EntityID:   src.EntityId,
		Details:    src.Details.Val,
		Ctime:      time.UnixMilli(src.Ctime),
	}
}
