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

package sale

import (
	"sync"

	"github.com/ecodeclub/mq-api"
	"github.com/ecodeclub/usedtech/internal/inventory"
	"github.com/ecodeclub/usedtech/internal/pkg/sequencenumber"
	"github.com/ecodeclub/usedtech/internal/policy"
	"github.com/ecodeclub/usedtech/internal/sale/internal/event"
	"github.com/ecodeclub/usedtech/internal/sale/internal/repository"
	"github.com/ecodeclub/usedtech/internal/sale/internal/repository/dao"
	"github.com/ecodeclub/usedtech/internal/sale/internal/service"
	"github.com/ecodeclub/usedtech/internal/sale/internal/web"
	"github.com/ego-component/egorm"
	"github.com/google/wire"
	"github.com/redis/go-redis/v9"
)

func InitModule(db *egorm.Component,
	rc redis.Cmdable,
	q mq.MQ,
	im *inventory.Module,
	pm *policy.Module) (*Module, error) {
	wire.Build(
		InitTablesOnce,
		repository.NewSaleRepository,
		initReceiptNumberGenerator,
		event.NewInventoryEventProducer,
		wire.FieldsOf(new(*inventory.Module), "Svc"),
		wire.FieldsOf(new(*policy.Module), "Svc"),
		service.NewService,
		web.NewAdminHandler,
		wire.Struct(new(Module), "*"),
	)
	return new(Module), nil
}

var once = &sync.Once{}

func InitTablesOnce(db *egorm.Component) dao.SaleDAO {
	once.Do(func() {
		_ = dao.InitTables(db)
	})
	return dao.NewGORMSaleDAO(db)
}

func initReceiptNumberGenerator(rc redis.Cmdable, repo repository.SaleRepository) service.ReceiptNumberGenerator {
	return sequencenumber.NewGenerator(rc, repo)
}
