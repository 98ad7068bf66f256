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
	"errors"

	"github.com/ecodeclub/ekit/slice"
	"github.com/ecodeclub/ginx"
	"github.com/ecodeclub/ginx/session"
	"github.com/ecodeclub/usedtech/internal/pkg/middleware"
	"github.com/ecodeclub/usedtech/internal/staff/internal/domain"
	"github.com/ecodeclub/usedtech/internal/staff/internal/service"
	"github.com/gin-gonic/gin"
)

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
	g := server.Group("/staff")
	g.GET("/profile", ginx.S(h.Profile))
	// 员工管理只有管理员可以操作
	admin := g.Group("", h.role.Build(middleware.RoleAdmin))
	admin.GET("/list", ginx.W(h.List))
	admin.POST("/create", ginx.BS[CreateReq](h.Create))
	admin.POST("/update", ginx.BS[UpdateReq](h.Update))
}

func (h *AdminHandler) Profile(ctx *ginx.Context, sess session.Session) (ginx.Result, error) {
	p, err := h.svc.FindByUID(ctx, sess.Claims().Uid)
	if err != nil {
		return h.errResult(err), err
	}
	return ginx.Result{Data: newProfile(p)}, nil
}

func (h *AdminHandler) List(ctx *ginx.Context) (ginx.Result, error) {
	profiles, err := h.svc.List(ctx)
	if err != nil {
		return systemErrorResult, err
	}
	return ginx.Result{
		Data: slice.Map(profiles, func(idx int, src domain.Profile) Profile {
			return newProfile(src)
		}),
	}, nil
}

func (h *AdminHandler) Create(ctx *ginx.Context, req CreateReq, sess session.Session) (ginx.Result, error) {
	id, err := h.svc.Create(ctx, domain.Profile{
		UID:      req.UID,
		Email:    req.Email,
		FullName: req.FullName,
		Role:     domain.Role(req.Role),
	}, sess.Claims().Uid)
	if err != nil {
		return h.errResult(err), err
	}
	return ginx.Result{Data: id}, nil
}

func (h *AdminHandler) Update(ctx *ginx.Context, req UpdateReq, sess session.Session) (ginx.Result, error) {
	change := domain.ProfileChange{
		UID:      req.UID,
		FullName: req.FullName,
	}
	if req.Role != nil {
		role := domain.Role(*req.Role)
		change.Role = &role
	}
	err := h.svc.Update(ctx, change, sess.Claims().Uid)
	if err != nil {
		return h.errResult(err), err
	}
	return ginx.Result{}, nil
}

func (h *AdminHandler) errResult(err error) ginx.Result {
	switch {
	case errors.Is(err, service.ErrInvalidRole):
		return invalidRoleResult
	case errors.Is(err, service.ErrStaffDuplicated):
		return staffDuplicatedResult
	case errors.Is(err, service.ErrStaffNotFound):
		return staffNotFoundResult
	default:
		return systemErrorResult
	}
}
