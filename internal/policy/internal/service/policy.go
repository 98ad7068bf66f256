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
	"strings"

	"github.com/ecodeclub/usedtech/internal/audit"
	"github.com/ecodeclub/usedtech/internal/policy/internal/domain"
	"github.com/ecodeclub/usedtech/internal/policy/internal/repository"
	"github.com/gotomicro/ego/core/elog"
	"github.com/microcosm-cc/bluemonday"
)

var (
	ErrInvalidType    = errors.New("非法的政策类型")
	ErrPolicyNotFound = repository.ErrPolicyNotFound
)

//go:generate mockgen -source=./policy.go -package=policymocks -destination=../../mocks/policy.mock.go Service
type Service interface {
	Get(ctx context.Context, typ domain.Type) (domain.Policy, error)
	List(ctx context.Context) ([]domain.Policy, error)
	// Update 内容会先做 HTML 清洗再保存
	Update(ctx context.Context, p domain.Policy, actor int64) error
	// Snapshot 读取当前的保修和退货政策，只读
	Snapshot(ctx context.Context) (domain.Snapshot, error)
}

type service struct {
	repo      repository.PolicyRepository
	auditSvc  audit.Service
	sanitizer *bluemonday.Policy
	logger    *elog.Component
}

func NewService(repo repository.PolicyRepository, auditSvc audit.Service) Service {
	return &service{
		repo:      repo,
		auditSvc:  auditSvc,
		sanitizer: newSanitizer(),
		logger:    elog.DefaultLogger,
	}
}

func (s *service) Get(ctx context.Context, typ domain.Type) (domain.Policy, error) {
	if !typ.IsValid() {
		return domain.Policy{}, fmt.Errorf("%w: %s", ErrInvalidType, typ)
	}
	return s.repo.FindByType(ctx, typ)
}

func (s *service) List(ctx context.Context) ([]domain.Policy, error) {
	return s.repo.List(ctx)
}

func (s *service) Update(ctx context.Context, p domain.Policy, actor int64) error {
	if !p.Type.IsValid() {
		return fmt.Errorf("%w: %s", ErrInvalidType, p.Type)
	}
	p.Content = s.sanitizer.Sanitize(p.Content)
	p.UpdatedBy = actor
	if err := s.repo.Save(ctx, p); err != nil {
		return err
	}
	err := s.auditSvc.Record(ctx, audit.Event{
		ActorID:    actor,
		Action:     audit.ActionPolicyUpdated,
		EntityType: audit.EntityTypePolicy,
		EntityID:   string(p.Type),
		Details:    map[string]any{"title": p.Title},
	})
	if err != nil {
		s.logger.Error("记录政策更新审计失败", elog.FieldErr(err), elog.String("type", string(p.Type)))
	}
	return nil
}

func (s *service) Snapshot(ctx context.Context) (domain.Snapshot, error) {
	policies, err := s.repo.FindByTypes(ctx, domain.TypeWarranty, domain.TypeReturns)
	if err != nil {
		return domain.Snapshot{}, fmt.Errorf("读取政策快照失败: %w", err)
	}
	var snapshot domain.Snapshot
	for i := range policies {
		content := policies[i].Content
		// 清空的政策等同于没有配置
		if strings.TrimSpace(content) == "" {
			continue
		}
		switch policies[i].Type {
		case domain.TypeWarranty:
			snapshot.Warranty = &content
		case domain.TypeReturns:
			snapshot.Returns = &content
		}
	}
	return snapshot, nil
}
