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

package analytics

import (
	"sync"

	"github.com/ecodeclub/ecache"
	"github.com/ecodeclub/usedtech/internal/analytics/internal/repository"
	"github.com/ecodeclub/usedtech/internal/analytics/internal/repository/cache"
	"github.com/ecodeclub/usedtech/internal/analytics/internal/repository/dao"
	"github.com/ecodeclub/usedtech/internal/analytics/internal/service"
	"github.com/ecodeclub/usedtech/internal/analytics/internal/web"
	"github.com/ecodeclub/usedtech/internal/inventory"
	"github.com/ecodeclub/usedtech/internal/sale"
	"github.com/ego-component/egorm"
	"github.com/google/wire"
)

func InitModule(db *egorm.Component,
	ec ecache.Cache,
	im *inventory.Module,
	sm *sale.Module) *Module {
	wire.Build(
		InitTablesOnce,
		cache.NewViewCache,
		repository.NewAnalyticsRepository,
		wire.FieldsOf(new(*inventory.Module), "Svc"),
		wire.FieldsOf(new(*sale.Module), "Svc"),
		service.NewService,
		web.NewHandler,
		web.NewAdminHandler,
		wire.Struct(new(Module), "*"),
	)
	return new(Module)
}

var once = &sync.Once{}

func InitTablesOnce(db *egorm.Component) dao.AnalyticsDAO {
	once.Do(func() {
		_ = dao.InitTables(db)
	})
	return dao.NewGORMAnalyticsDAO(db)
}
