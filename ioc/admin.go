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

package ioc

import (
	"net/http"

	"github.com/ecodeclub/ginx/session"
	"github.com/ecodeclub/usedtech/internal/analytics"
	"github.com/ecodeclub/usedtech/internal/audit"
	"github.com/ecodeclub/usedtech/internal/inventory"
	"github.com/ecodeclub/usedtech/internal/photo"
	"github.com/ecodeclub/usedtech/internal/pkg/middleware"
	"github.com/ecodeclub/usedtech/internal/policy"
	"github.com/ecodeclub/usedtech/internal/sale"
	"github.com/ecodeclub/usedtech/internal/staff"
	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/gotomicro/ego/server/egin"
)

type AdminServer *egin.Component

func InitAdminServer(sp session.Provider,
	itemHdl *inventory.AdminHandler,
	photoHdl *photo.AdminHandler,
	saleHdl *sale.AdminHandler,
	policyHdl *policy.AdminHandler,
	staffHdl *staff.AdminHandler,
	auditHdl *audit.AdminHandler,
	analyticsHdl *analytics.AdminHandler,
) AdminServer {
	session.SetDefaultProvider(sp)
	res := egin.Load("server.admin").Build()
	res.Use(cors.New(cors.Config{
		ExposeHeaders:    []string{"X-Refresh-Token", "X-Access-Token"},
		AllowCredentials: true,
		AllowHeaders:     []string{"X-Timestamp", "Authorization", "Content-Type"},
		AllowOriginFunc:  allowOrigin,
	}))
	res.Use(middleware.NewMetricsBuilder("admin").Build())
	res.GET("/hello", func(ctx *gin.Context) {
		ctx.String(http.StatusOK, "hello, world!")
	})

	// 登录校验
	res.Use(session.CheckLoginMiddleware())
	// 只有员工和管理员可以进入后台，管理员专属的接口由各个模块自己校验
	res.Use(middleware.NewCheckRoleMiddlewareBuilder().Build(middleware.RoleStaff, middleware.RoleAdmin))
	itemHdl.PrivateRoutes(res.Engine)
	photoHdl.PrivateRoutes(res.Engine)
	saleHdl.PrivateRoutes(res.Engine)
	policyHdl.PrivateRoutes(res.Engine)
	staffHdl.PrivateRoutes(res.Engine)
	auditHdl.PrivateRoutes(res.Engine)
	analyticsHdl.PrivateRoutes(res.Engine)
	return res
}
