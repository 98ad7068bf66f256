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

package middleware

import (
	"net/http"

	"github.com/ecodeclub/ekit/slice"
	"github.com/ecodeclub/ginx"
	"github.com/ecodeclub/ginx/session"
	"github.com/gin-gonic/gin"
	"github.com/gotomicro/ego/core/elog"
)

const (
	RoleClaimKey = "role"

	RoleStaff = "staff"
	RoleAdmin = "admin"
)

// ForbiddenResult 权限不足时统一返回，前端据此跳转
var ForbiddenResult = ginx.Result{
	Code: 403001,
	Msg:  "权限不足",
}

// CheckRoleMiddlewareBuilder 根据 session 中的角色声明校验访问权限
type CheckRoleMiddlewareBuilder struct {
	sp     session.Provider
	logger *elog.Component
}

func NewCheckRoleMiddlewareBuilder() *CheckRoleMiddlewareBuilder {
	return &CheckRoleMiddlewareBuilder{
		logger: elog.DefaultLogger,
	}
}

// Build 只放行 roles 里面的角色
func (c *CheckRoleMiddlewareBuilder) Build(roles ...string) gin.HandlerFunc {
	return func(ctx *gin.Context) {
		sp := c.sp
		if sp == nil {
			sp = session.DefaultProvider()
		}
		gctx := &ginx.Context{Context: ctx}
		sess, err := sp.Get(gctx)
		if err != nil {
			c.logger.Debug("用户未登录", elog.FieldErr(err))
			ctx.AbortWithStatus(http.StatusUnauthorized)
			return
		}
		claims := sess.Claims()
		role := claims.Get(RoleClaimKey).StringOrDefault("")
		if !slice.Contains(roles, role) {
			c.logger.Warn("非法访问后台接口",
				elog.Int64("uid", claims.Uid),
				elog.String("role", role))
			ctx.AbortWithStatusJSON(http.StatusForbidden, ForbiddenResult)
			return
		}
	}
}
