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

//go:build wireinject

package staff

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/ecodeclub/usedtech/internal/audit"
	"github.com/ecodeclub/usedtech/internal/staff/internal/domain"
	"github.com/ecodeclub/usedtech/internal/staff/internal/repository"
	"github.com/ecodeclub/usedtech/internal/staff/internal/repository/dao"
	"github.com/ecodeclub/usedtech/internal/staff/internal/service"
	"github.com/ecodeclub/usedtech/internal/staff/internal/web"
	"github.com/ego-component/egorm"
	"github.com/google/wire"
	"github.com/gotomicro/ego/core/econf"
	"github.com/gotomicro/ego/core/elog"
)

func InitModule(db *egorm.Component, am *audit.Module) (*Module, error) {
	wire.Build(
		InitTablesOnce,
		repository.NewStaffRepository,
		wire.FieldsOf(new(*audit.Module), "Svc"),
		initService,
		web.NewAdminHandler,
		wire.Struct(new(Module), "*"),
	)
	return new(Module), nil
}

var once = &sync.Once{}

func InitTablesOnce(db *egorm.Component) dao.StaffDAO {
	once.Do(func() {
		_ = dao.InitTables(db)
	})
	return dao.NewGORMStaffDAO(db)
}

type bootstrapAdmin struct {
	UID      int64  `yaml:"uid"`
	Email    string `yaml:"email"`
	FullName string `yaml:"fullName"`
}

func initService(repo repository.StaffRepository, auditSvc audit.Service) (service.Service, error) {
	svc := service.NewService(repo, auditSvc)
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := ensureBootstrapAdmins(ctx, svc); err != nil {
		return nil, err
	}
	return svc, nil
}

// ensureBootstrapAdmins 为 staff.bootstrapAdmins 中配置的用户创建管理员档案，用于第一次部署
func ensureBootstrapAdmins(ctx context.Context, svc service.Service) error {
	var admins []bootstrapAdmin
	err := econf.UnmarshalKey("staff.bootstrapAdmins", &admins)
	if errors.Is(err, econf.ErrInvalidKey) {
		return nil
	}
	if err != nil {
		return fmt.Errorf("读取 staff.bootstrapAdmins 配置失败: %w", err)
	}
	for _, a := range admins {
		created, err := svc.EnsureAdmin(ctx, domain.Profile{
			UID:      a.UID,
			Email:    a.Email,
			FullName: a.FullName,
		})
		if err != nil {
			return fmt.Errorf("初始化管理员失败 uid=%d: %w", a.UID, err)
		}
		if created {
			elog.DefaultLogger.Info("已创建初始管理员", elog.Int64("uid", a.UID))
		}
	}
	return nil
}
