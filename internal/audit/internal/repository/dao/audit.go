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

package dao

import (
	"context"

	"github.com/ego-component/egorm"
	"gorm.io/gorm/clause"
)

//go:generate mockgen -source=./audit.go -package=daomocks -destination=mocks/audit.mock.go AuditDAO
type AuditDAO interface {
	// Insert 幂等，event_key 重复时什么也不做
	Insert(ctx context.Context, evt AuditEvent) error
	List(ctx context.Context, offset, limit int) ([]AuditEventWithActor, error)
	ListByEntity(ctx context.Context, entityType, entityID string, limit int) ([]AuditEventWithActor, error)
}

type GORMAuditDAO struct {
	db *egorm.Component
}

func NewGORMAuditDAO(db *egorm.Component) AuditDAO {
	return &GORMAuditDAO{db: db}
}

func (g *GORMAuditDAO) Insert(ctx context.Context, evt AuditEvent) error {
	return g.db.WithContext(ctx).Clauses(clause.OnConflict{DoNothing: true}).Create(&evt).Error
}

func (g *GORMAuditDAO) List(ctx context.Context, offset, limit int) ([]AuditEventWithActor, error) {
	var res []AuditEventWithActor
	err := g.withActor(ctx).
		Order("a.id DESC").
		Offset(offset).Limit(limit).
		Scan(&res).Error
	return res, err
}

func (g *GORMAuditDAO) ListByEntity(ctx context.Context, entityType, entityID string, limit int) ([]AuditEventWithActor, error) {
	var res []AuditEventWithActor
	err := g.withActor(ctx).
		Where("a.entity_type = ? AND a.entity_id = ?", entityType, entityID).
		Order("a.id DESC").
		Limit(limit).
		Scan(&res).Error
	return res, err
}

func (g *GORMAuditDAO) withActor(ctx context.Context) *egorm.Component {
	return g.db.WithContext(ctx).
		Table("audit_events AS a").
		Select("a.*, s.full_name AS actor_name").
		Joins("LEFT JOIN staff_profiles AS s ON s.uid = a.actor_id")
}
