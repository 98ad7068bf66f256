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
	"github.com/ecodeclub/usedtech/internal/staff/internal/domain"
	"github.com/ecodeclub/usedtech/internal/staff/internal/repository/dao"
)

var (
	ErrStaffDuplicated = dao.ErrStaffDuplicated
	ErrStaffNotFound   = dao.ErrRecordNotFound
)

//go:generate mockgen -source=./staff.go -package=repomocks -destination=mocks/staff.mock.go StaffRepository
type StaffRepository interface {
	Create(ctx context.Context, p domain.Profile) (int64, error)
	Update(ctx context.Context, change domain.ProfileChange) error
	FindByUID(ctx context.Context, uid int64) (domain.Profile, error)
	FindByUIDs(ctx context.Context, uids []int64) ([]domain.Profile, error)
	List(ctx context.Context) ([]domain.Profile, error)
}

type staffRepository struct {
	dao dao.StaffDAO
}

func NewStaffRepository(d dao.StaffDAO) StaffRepository {
	return &staffRepository{dao: d}
}

func (r *staffRepository) Create(ctx context.Context, p domain.Profile) (int64, error) {
	return r.dao.Insert(ctx, dao.StaffProfile{
		Uid:      p.UID,
		Email:    p.Email,
		FullName: p.FullName,
		Role:     string(p.Role),
	})
}

func (r *staffRepository) Update(ctx context.Context, change domain.ProfileChange) error {
	fields := make(map[string]any, 2)
	if change.FullName != nil {
		fields["full_name"] = *change.FullName
	}
	if change.Role != nil {
		fields["role"] = string(*change.Role)
	}
	if len(fields) == 0 {
		return nil
	}
	return r.dao.UpdateByUID(ctx, change.UID, fields)
}

func (r *staffRepository) FindByUID(ctx context.Context, uid int64) (domain.Profile, error) {
	p, err := r.dao.FindByUID(ctx, uid)
	if err != nil {
		return domain.Profile{}, err
	}
	return r.toDomain(p), nil
}

func (r *staffRepository) FindByUIDs(ctx context.Context, uids []int64) ([]domain.Profile, error) {
	res, err := r.dao.FindByUIDs(ctx, uids)
	if err != nil {
		return nil, err
	}
	return slice.Map(res, func(idx int, src dao.StaffProfile) domain.Profile {
		return r.toDomain(src)
	}), nil
}

func (r *staffRepository) List(ctx context.Context) ([]domain.Profile, error) {
	res, err := r.dao.List(ctx)
	if err != nil {
		return nil, err
	}
	return slice.Map(res, func(idx int, src dao.StaffProfile) domain.Profile {
		return r.toDomain(src)
	}), nil
}

func (r *staffRepository) toDomain(p dao.StaffProfile) domain.Profile {
	return domain.Profile{
		ID:       p.Id,
		UID:      p.Uid,
		Email:    p.Email,
		FullName: p.FullName,
		Role:     domain.Role(p.Role),
		Ctime:    time.UnixMilli(p.Ctime),
		Utime:    time.UnixMilli(p.Utime),
	}
}
