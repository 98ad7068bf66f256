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
	"github.com/ecodeclub/usedtech/internal/policy/internal/domain"
	"github.com/ecodeclub/usedtech/internal/policy/internal/repository/dao"
)

var ErrPolicyNotFound = dao.ErrRecordNotFound

//go:generate mockgen -source=./policy.go -package=repomocks -destination=mocks/policy.mock.go PolicyRepository
type PolicyRepository interface {
	Save(ctx context.Context, p domain.Policy) error
	FindByType(ctx context.Context, typ domain.Type) (domain.Policy, error)
	FindByTypes(ctx context.Context, types ...domain.Type) ([]domain.Policy, error)
	List(ctx context.Context) ([]domain.Policy, error)
}

type policyRepository struct {
	dao dao.PolicyDAO
}

func NewPolicyRepository(d dao.PolicyDAO) PolicyRepository {
	return &policyRepository{dao: d}
}

func (r *policyRepository) Save(ctx context.Context, p domain.Policy) error {
	return r.dao.Upsert(ctx, dao.Policy{
		Type:          string(p.Type),
		Title:         p.Title,
		Content:       p.Content,
		EffectiveDate: p.EffectiveDate.UnixMilli(),
		UpdatedBy:     p.UpdatedBy,
	})
}

func (r *policyRepository) FindByType(ctx context.Context, typ domain.Type) (domain.Policy, error) {
	p, err := r.dao.FindByType(ctx, string(typ))
	if err != nil {
		return domain.Policy{}, err
	}
	return r.toDomain(p), nil
}

func (r *policyRepository) FindByTypes(ctx context.Context, types ...domain.Type) ([]domain.Policy, error) {
	res, err := r.dao.FindByTypes(ctx, slice.Map(types, func(idx int, src domain.Type) string {
		return string(src)
	}))
	if err != nil {
		return nil, err
	}
	return slice.Map(res, func(idx int, src dao.Policy) domain.Policy {
		return r.toDomain(src)
	}), nil
}

func (r *policyRepository) List(ctx context.Context) ([]domain.Policy, error) {
	res, err := r.dao.List(ctx)
	if err != nil {
		return nil, err
	}
	return slice.Map(res, func(idx int, src dao.Policy) domain.Policy {
		return r.toDomain(src)
	}), nil
}

func (r *policyRepository) toDomain(p dao.Policy) domain.Policy {
	return domain.Policy{
		ID:            p.Id,
		Type:          domain.Type(p.Type),
		Title:         p.Title,
		Content:       p.Content,
		EffectiveDate: time.UnixMilli(p.EffectiveDate),
		UpdatedBy:     p.UpdatedBy,
		Utime:         time.UnixMilli(p.Utime),
	}
}
