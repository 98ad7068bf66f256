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
	"github.com/ecodeclub/ginx/session"
	"github.com/ecodeclub/usedtech/internal/inventory/internal/domain"
	"github.com/ecodeclub/usedtech/internal/inventory/internal/service"
	"github.com/ecodeclub/usedtech/internal/photo"
	"github.com/gin-gonic/gin"
	"github.com/gotomicro/ego/core/elog"
)

const publicPageSize = 24

// Handler 店面商品列表和详情
type Handler struct {
	svc      service.Service
	photoSvc photo.Service
	store    domain.StoreConfig
	logger   *elog.Component
}

func NewHandler(svc service.Service, photoSvc photo.Service, store domain.StoreConfig) *Handler {
	return &Handler{
		svc:      svc,
		photoSvc: photoSvc,
		store:    store,
		logger:   elog.DefaultLogger,
	}
}

func (h *Handler) PublicRoutes(server *gin.Engine) {
	g := server.Group("/item")
	g.POST("/list", ginx.B[ListReq](h.List))
	g.GET("/detail/:slug", ginx.W(h.Detail))
}

func (h *Handler) List(ctx *ginx.Context, req ListReq) (ginx.Result, error) {
	page := req.Page.normalize(publicPageSize)
	items, total, err := h.svc.PublicList(ctx, req.filter(), page.Offset, page.Limit)
	if err != nil {
		return errResult(err), err
	}
	primaries, err := h.photoSvc.Primaries(ctx, slice.Map(items, func(idx int, src domain.Item) int64 {
		return src.ID
	}))
	if err != nil {
		// 没有主图也可以展示列表
		h.logger.Error("查询商品主图失败", elog.FieldErr(err))
	}
	return ginx.Result{
		Data: PublicItemList{
			Total: total,
			Items: slice.Map(items, func(idx int, src domain.Item) PublicItem {
				res := newPublicItem(src, h.store)
				if p, ok := primaries[src.ID]; ok {
					res.PrimaryPhoto = p.URL
				}
				return res
			}),
		},
	}, nil
}

func (h *Handler) Detail(ctx *ginx.Context) (ginx.Result, error) {
	item, err := h.svc.FindBySlug(ctx, ctx.Context.Param("slug"))
	if err != nil {
		return errResult(err), err
	}
	photos, err := h.photoSvc.ListByItem(ctx, item.ID)
	if err != nil {
		return systemErrorResult, err
	}
	res := newPublicItem(item, h.store)
	res.Specs = item.Specs
	res.Description = item.PublicDescription
	res.Photos = slice.Map(photos, func(idx int, src photo.Photo) Photo {
		return newPhoto(src)
	})
	if len(res.Photos) > 0 {
		res.PrimaryPhoto = res.Photos[0].URL
	}
	res.WhatsAppLink = h.store.WhatsAppLink(item)
	return ginx.Result{Data: res}, nil
}

// AdminHandler 后台库存管理，所有员工都可以使用
type AdminHandler struct {
	svc service.Service
}

func NewAdminHandler(svc service.Service) *AdminHandler {
	return &AdminHandler{svc: svc}
}

func (h *AdminHandler) PrivateRoutes(server *gin.Engine) {
	g := server.Group("/item")
	g.POST("/create", ginx.BS[SaveReq](h.Create))
	g.POST("/update", ginx.BS[UpdateReq](h.Update))
	g.POST("/delete", ginx.BS[IDReq](h.Delete))
	g.POST("/detail", ginx.B[IDReq](h.Detail))
	g.POST("/list", ginx.B[AdminListReq](h.List))
	g.POST("/sold", ginx.B[Page](h.SoldList))
}

func (h *AdminHandler) Create(ctx *ginx.Context, req SaveReq, sess session.Session) (ginx.Result, error) {
	item, err := h.svc.Create(ctx, req.Item.toDomain(), sess.Claims().Uid)
	if err != nil {
		return errResult(err), err
	}
	return ginx.Result{Data: newItem(item)}, nil
}

func (h *AdminHandler) Update(ctx *ginx.Context, req UpdateReq, sess session.Session) (ginx.Result, error) {
	err := h.svc.Update(ctx, req.patch(), sess.Claims().Uid)
	if err != nil {
		return errResult(err), err
	}
	return ginx.Result{}, nil
}

func (h *AdminHandler) Delete(ctx *ginx.Context, req IDReq, sess session.Session) (ginx.Result, error) {
	err := h.svc.Delete(ctx, req.ID, sess.Claims().Uid)
	if err != nil {
		return errResult(err), err
	}
	return ginx.Result{}, nil
}

func (h *AdminHandler) Detail(ctx *ginx.Context, req IDReq) (ginx.Result, error) {
	item, err := h.svc.FindByID(ctx, req.ID)
	if err != nil {
		return errResult(err), err
	}
	return ginx.Result{Data: newItem(item)}, nil
}

func (h *AdminHandler) List(ctx *ginx.Context, req AdminListReq) (ginx.Result, error) {
	page := req.Page.normalize(maxPageSize)
	items, total, err := h.svc.AdminList(ctx, req.filter(), page.Offset, page.Limit)
	if err != nil {
		return systemErrorResult, err
	}
	return ginx.Result{Data: ItemList{
		Total: total,
		Items: slice.Map(items, func(idx int, src domain.Item) Item {
			return newItem(src)
		}),
	}}, nil
}

func (h *AdminHandler) SoldList(ctx *ginx.Context, req Page) (ginx.Result, error) {
	page := req.normalize(maxPageSize)
	items, err := h.svc.SoldList(ctx, page.Offset, page.Limit)
	if err != nil {
		return systemErrorResult, err
	}
	return ginx.Result{Data: slice.Map(items, func(idx int, src domain.Item) Item {
		return newItem(src)
	})}, nil
}
