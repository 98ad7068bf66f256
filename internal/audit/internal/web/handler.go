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
	"github.com/ecodeclub/ekit/slice"
	"github.com/ecodeclub/ginx"
	"github.com/ecodeclub/usedtech/internal/audit/internal/domain"
	"github.com/ecodeclub/usedtech/internal/audit/internal/service"
	"github.com/gin-gonic/gin"
)

// AdminHandler 活动记录，只读
type AdminHandler struct {
	svc service.Service
}

func NewAdminHandler(svc service.Service) *AdminHandler {
	return &AdminHandler{svc: svc}
}

func (h *AdminHandler) PrivateRoutes(server *gin.Engine) {
	g := server.Group("/audit")
	g.POST("/list", ginx.B[ListReq](h.List))
	g.POST("/entity", ginx.B[EntityReq](h.ListByEntity))
}

func (h *AdminHandler) List(ctx *ginx.Context, req ListReq) (ginx.Result, error) {
	events, err := h.svc.List(ctx, req.Offset, req.Limit)
	if err != nil {
		return systemErrorResult, err
	}
	return ginx.Result{
		Data: slice.Map(events, func(idx int, src domain.Event) Event {
			return newEvent(src)
		}),
	}, nil
}

func (h *AdminHandler) ListByEntity(ctx *ginx.Context, req EntityReq) (ginx.Result, error) {
	events, err := h.svc.ListByEntity(ctx, domain.EntityType(req.EntityType), req.EntityID)
	if err != nil {
		return systemErrorResult, err
	}
	return ginx.Result{
		Data: slice.Map(events, func(idx int, src domain.Event) Event {
			return newEvent(src)
		}),
	}, nil
}
