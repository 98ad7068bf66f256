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

	"github.com/ecodeclub/usedtech/internal/audit"
	"github.com/ecodeclub/usedtech/internal/staff/internal/domain"
	"github.com/ecodeclub/usedtech/internal/staff/internal/repository"
	"github.com/gotomicro/ego/core/elog"
)

var (
	ErrInvalidRole     = errors.New("非法角色")
	ErrStaffDuplicated = repository.ErrStaffDuplicated
	ErrStaffNotFound   = repository.ErrStaffNotFound
)

//go:generate mockgen -source=./staff.go -package=staffmocks -destination=../../mocks/staff.mock.go Service
type Service interface {
	Create(ctx context.Context, p domain.Profile, actor int64) (int64, error)
	Update(ctx context.Context, change domain.ProfileChange, actor int64) error
	FindByUID(ctx context.Context, uid int64) (domain.Profile, error)
	FindByUIDs(ctx context.Context, uids []int64) (map[int64]domain.Profile, error)
	List(ctx context.Context) ([]domain.Profile, error)
	// EnsureAdmin 档案不存在时以管理员身份创建，已存在的档案保持不变
	EnsureAdmin(ctx context.Context, p domain.Profile) (bool, error)
}

type service struct {
	repo     repository.StaffRepository
	auditSvc audit.Service
	logger   *elog.Component
}

func NewService(repo repository.StaffRepository, auditSvc audit.Service) Service {
	return &service{
		repo:     repo,
		auditSvc: auditSvc,
		logger:   elog.DefaultLogger,
	}
}

func (s *service) Create(ctx context.Context, p domain.Profile, actor int64) (int64, error) {
	if p.Role == "" {
		p.Role = domain.RoleStaff
	}
	if !p.Role.IsValid() {
		return 0, fmt.Errorf("%w: %s", ErrInvalidRole, p.Role)
	}
	id, err := s.repo.Create(ctx, p)
	if err != nil {
		return 0, err
	}
	err = s.auditSvc.Record(ctx, audit.Event{
		ActorID:    actor,
		Action:     audit.ActionStaffCreated,
		EntityType: audit.EntityTypeStaff,
		EntityID:   strconv.FormatInt(p.UID, 10),
		Details: map[string]any{
			"email": p.Email,
			"role":  string(p.Role),
		},
	})
	if err != nil {
		s.logger.Error("记录员工创建审计失败", elog.FieldErr(err), elog.Int64("uid", p.UID))
	}
	return id, nil
}

func (s *service) Update(ctx context.Context, change domain.ProfileChange, actor int64) error {
	if change.Role != nil && !change.Role.IsValid() {
		return fmt.Errorf("%w: %s", ErrInvalidRole, *change.Role)
	}
	if _, err := s.repo.FindByUID(ctx, change.UID); err != nil {
		return err
	}
	if err := s.repo.Update(ctx, change); err != nil {
		return err
	}
	details := make(map[string]any, 2)
	if change.FullName != nil {
		details["full_name"] = *change.FullName
	}
	if change.Role != nil {
		details["role"] = string(*change.Role)
	}
	err := s.auditSvc.Record(ctx, audit.Event{
		ActorID:    actor,
		Action:     audit.ActionStaffUpdated,
		EntityType: audit.EntityTypeStaff,
		EntityID:   strconv.FormatInt(change.UID, 10),
		Details:    details,
	})
	if err != nil {
		s.logger.Error("记录员工更新审计失败", elog.FieldErr(err), elog.Int64("uid", change.UID))
	}
	return nil
}

func (s *service) FindByUID(ctx context.Context, uid int64) (domain.Profile, error) {
	return s.repo.FindByUID(ctx, uid)
}

func (s *service) FindByUIDs(ctx context.Context, uids []int64) (map[int64]domain.Profile, error) {
	if len(uids) == 0 {
		return map[int64]domain.Profile{}, nil
	}
	profiles, err := s.repo.FindByUIDs(ctx, uids)
	if err != nil {
		return nil, err
	}
	res := make(map[int64]domain.Profile, len(profiles))
	for _, p := range profiles {
		res[p.UID] = p
	}
	return res, nil
}

func (s *service) List(ctx context.Context) ([]domain.Profile, error) {
	return s.repo.List(ctx)
}

func (s *service) EnsureAdmin(ctx context.Context, p domain.Profile) (bool, error) {
	_, err := s.repo.FindByUID(ctx, p.UID)
	if err == nil {
		return false, nil
	}
	if !errors.Is(err, ErrStaffNotFound) {
		return false, err
	}
	p.Role = domain.RoleAdmin
	_, err = s.Create(ctx, p, 0)
	switch {
	case errors.Is(err, ErrStaffDuplicated):
		// 多个实例同时启动
		return false, nil
	case err != nil:
		return false, err
	}
	return true, nil
}
