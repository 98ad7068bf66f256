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

package photo

import (
	"fmt"
	"sync"

	"github.com/ecodeclub/mq-api"
	"github.com/ecodeclub/usedtech/internal/audit"
	"github.com/ecodeclub/usedtech/internal/photo/internal/event"
	"github.com/ecodeclub/usedtech/internal/photo/internal/repository"
	"github.com/ecodeclub/usedtech/internal/photo/internal/repository/dao"
	"github.com/ecodeclub/usedtech/internal/photo/internal/service"
	"github.com/ecodeclub/usedtech/internal/photo/internal/storage"
	"github.com/ecodeclub/usedtech/internal/photo/internal/web"
	"github.com/ego-component/egorm"
	"github.com/google/wire"
	"github.com/gotomicro/ego/core/econf"
)

func InitModule(db *egorm.Component, q mq.MQ, am *audit.Module) (*Module, error) {
	wire.Build(
		InitTablesOnce,
		repository.NewPhotoRepository,
		initCOSConfig,
		initImageStorage,
		initCredentialIssuer,
		event.NewInventoryEventProducer,
		wire.FieldsOf(new(*audit.Module), "Svc"),
		service.NewService,
		web.NewAdminHandler,
		wire.Struct(new(Module), "*"),
	)
	return new(Module), nil
}

var once = &sync.Once{}

func InitTablesOnce(db *egorm.Component) dao.PhotoDAO {
	once.Do(func() {
		_ = dao.InitTables(db)
	})
	return dao.NewGORMPhotoDAO(db)
}

func initCOSConfig() (storage.COSConfig, error) {
	var cfg storage.COSConfig
	if err := econf.UnmarshalKey("cos", &cfg); err != nil {
		return cfg, fmt.Errorf("读取 cos 配置失败: %w", err)
	}
	return cfg, nil
}

// initImageStorage 没有配置存储桶时退回到内存实现，方便本地开发
func initImageStorage(cfg storage.COSConfig) (storage.ImageStorage, error) {
	if cfg.Bucket == "" {
		return storage.NewMemoryStorage(cfg.CDNDomain), nil
	}
	return storage.NewCOSStorage(cfg)
}

// initCredentialIssuer 内存存储不支持浏览器直传
func initCredentialIssuer(cfg storage.COSConfig) storage.CredentialIssuer {
	if cfg.Bucket == "" {
		return storage.UnavailableIssuer{}
	}
	return storage.NewSTSIssuer(cfg)
}
