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

package audit

import (
	"sync"

	"github.com/ecodeclub/mq-api"
	"github.com/ecodeclub/usedtech/internal/audit/internal/domain"
	"github.com/ecodeclub/usedtech/internal/audit/internal/event"
	"github.com/ecodeclub/usedtech/internal/audit/internal/repository"
	"github.com/ecodeclub/usedtech/internal/audit/internal/repository/dao"
	"github.com/ecodeclub/usedtech/internal/audit/internal/service"
	"github.com/ecodeclub/usedtech/internal/audit/internal/web"
	"github.com/ecodeclub/usedtech/internal/pkg/snowflake"
	"github.com/ego-component/egorm"
	"github.com/google/wire"
	"github.com/gotomicro/ego/core/econf"
)

func InitModule(db *egorm.Component, q mq.MQ) (*Module, error) {
	wire.Build(
		InitTablesOnce,
		repository.NewAuditRepository,
		initKeyGenerator,
		event.NewAuditEventProducer,
		service.NewService,
		initConsumer,
		web.NewAdminHandler,
		wire.Struct(new(Module), "*"),
	)
	return new(Module), nil
}

var once = &sync.Once{}

func InitTablesOnce(db *egorm.Component) dao.AuditDAO {
	once.Do(func() {
		_ = dao.InitTables(db)
	})
	return dao.NewGORMAuditDAO(db)
}

func initKeyGenerator() (*snowflake.KeyGenerator, error) {
	return snowflake.NewKeyGenerator(uint(econf.GetInt("snowflake.node")), uint(len(domain.EntityTypes)))
}

func initConsumer(svc service.Service, q mq.MQ) (*event.AuditEventConsumer, error) {
	return event.NewAuditEventConsumer(svc, q)
}
