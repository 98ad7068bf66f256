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

package web

import (
	"time"

	"github.com/ecodeclub/ekit/slice"
	"github.com/ecodeclub/ginx"
	"github.com/ecodeclub/ginx/session"
	"github.com/ecodeclub/usedtech/internal/pkg/middleware"
	"github.com/ecodeclub/usedtech/internal/policy/internal/domain"
	"github.com/ecodeclub/usedtech/internal/policy/internal/service"
	"github.com/gin-gonic/gin"
)

// Handler 店面展示保修、退货政策
type Handler struct {
	svc service.Service
}

func NewHandler(svc service.Service) *Handler {
	return &Handler{svc: svc}
}

func (h *Handler) PublicRoutes(server *gin.Engine) {
	server.GET("/policy/:type", ginx.W(h.Detail))
}

func (h *Handler) Detail(ctx *ginx.Context) (ginx.Result, error) {
	p, err := h.svc.Get(ctx, domain.Type(ctx.Context.Param("type")))
	if err != nil {
		return errResult(err), err
	}
	return ginx.Result{Data: newPolicy(p)}, nil
}

type AdminHandler struct {
	svc  service.Service
	role *middleware.CheckRoleMiddlewareBuilder
}

func NewAdminHandler(svc service.Service) *AdminHandler {
	return &AdminHandler{
		svc:  svc,
		role: middleware.NewCheckRoleMiddlewareBuilder(),
	}
}

func (h *AdminHandler) PrivateRoutes(server *gin.Engine) {
	g := server.Group("/policy")
	g.GET("/list", ginx.W(h.List))
	g.POST("/update", h.role.Build(middleware.RoleAdmin), ginx.BS[UpdateReq](h.Update))
}

func (h *AdminHandler) List(ctx *ginx.Context) (ginx.Result, error) {
	policies, err := h.svc.List(ctx)
	if err != nil {
		return systemErrorResult, err
	}
	return ginx.Result{
		Data: slice.Map(policies, func(idx int, src domain.Policy) Policy {
			res := newPolicy(src)
			res.UpdatedBy = src.UpdatedBy
			return res
		}),
	}, nil
}

func (h *AdminHandler) Update(ctx *ginx.Context, req UpdateReq, sess session.Session) (ginx.Result, error) {
	effective := time.Now()
	if req.EffectiveDate > 0 {
		effective = time.UnixMilli(req.EffectiveDate)
	}
	err := h.svc.Update(ctx, domain.Policy{
		Type:          domain.Type(req.Type),
		Title:         req.Title,
		Content:       req.Content,
		EffectiveDate: effective,
	}, sess.Claims().Uid)
	if err != nil {
		return errResult(err), err
	}
	return ginx.Result{}, nil
}
