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

package ioc

import (
	"github.com/ecodeclub/usedtech/internal/analytics"
	"github.com/ecodeclub/usedtech/internal/audit"
	"github.com/ecodeclub/usedtech/internal/inventory"
	"github.com/ecodeclub/usedtech/internal/photo"
	"github.com/ecodeclub/usedtech/internal/policy"
	"github.com/ecodeclub/usedtech/internal/sale"
	"github.com/ecodeclub/usedtech/internal/staff"
	"github.com/google/wire"
)

var BaseSet = wire.NewSet(InitDB, InitCache, InitRedis, InitMQ)

func InitApp() (*App, error) {
	wire.Build(wire.Struct(new(App), "*"),
		BaseSet,
		InitSession,
		audit.InitModule,
		staff.InitModule,
		policy.InitModule,
		photo.InitModule,
		inventory.InitModule,
		sale.InitModule,
		analytics.InitModule,
		wire.FieldsOf(new(*inventory.Module), "Hdl", "AdminHdl", "ReleaseExpiredHoldsJob"),
		wire.FieldsOf(new(*policy.Module), "Hdl", "AdminHdl"),
		wire.FieldsOf(new(*photo.Module), "AdminHdl"),
		wire.FieldsOf(new(*sale.Module), "AdminHdl"),
		wire.FieldsOf(new(*staff.Module), "AdminHdl"),
		wire.FieldsOf(new(*audit.Module), "AdminHdl"),
		wire.FieldsOf(new(*analytics.Module), "Hdl", "AdminHdl"),
		initGinxServer,
		InitAdminServer,
		initMQConsumers,
		initCronJobs)
	return new(App), nil
}
