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

package inventory

import (
	"fmt"
	"sync"
	"time"

	"github.com/ecodeclub/ecache"
	"github.com/ecodeclub/mq-api"
	"github.com/ecodeclub/usedtech/internal/audit"
	"github.com/ecodeclub/usedtech/internal/inventory/internal/domain"
	"github.com/ecodeclub/usedtech/internal/inventory/internal/event"
	"github.com/ecodeclub/usedtech/internal/inventory/internal/job"
	"github.com/ecodeclub/usedtech/internal/inventory/internal/repository"
	"github.com/ecodeclub/usedtech/internal/inventory/internal/repository/cache"
	"github.com/ecodeclub/usedtech/internal/inventory/internal/repository/dao"
	"github.com/ecodeclub/usedtech/internal/inventory/internal/service"
	"github.com/ecodeclub/usedtech/internal/inventory/internal/web"
	"github.com/ecodeclub/usedtech/internal/photo"
	"github.com/ego-component/egorm"
	"github.com/google/wire"
	"github.com/gotomicro/ego/core/econf"
)

func InitModule(db *egorm.Component,
	ec ecache.Cache,
	q mq.MQ,
	pm *photo.Module,
	am *audit.Module) (*Module, error) {
	wire.Build(
		InitTablesOnce,
		cache.NewItemCache,
		repository.NewItemRepository,
		initStoreConfig,
		wire.FieldsOf(new(*photo.Module), "Svc"),
		wire.FieldsOf(new(*audit.Module), "Svc"),
		service.NewService,
		initConsumer,
		initReleaseExpiredHoldsJob,
		web.NewHandler,
		web.NewAdminHandler,
		wire.Struct(new(Module), "*"),
	)
	return new(Module), nil
}

var once = &sync.Once{}

func InitTablesOnce(db *egorm.Component) dao.ItemDAO {
	once.Do(func() {
		_ = dao.InitTables(db)
	})
	return dao.NewGORMItemDAO(db)
}

func initStoreConfig() (domain.StoreConfig, error) {
	var cfg domain.StoreConfig
	if err := econf.UnmarshalKey("store", &cfg); err != nil {
		return domain.StoreConfig{}, fmt.Errorf("读取 store 配置失败: %w", err)
	}
	return cfg, nil
}

func initConsumer(svc service.Service, q mq.MQ) (*event.InventoryEventConsumer, error) {
	return event.NewInventoryEventConsumer(svc, q)
}

func initReleaseExpiredHoldsJob(svc service.Service) *job.ReleaseExpiredHoldsJob {
	return job.NewReleaseExpiredHoldsJob(svc, 100, time.Minute)
}
