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
	"github.com/ecodeclub/usedtech/internal/analytics/internal/domain"
	"github.com/ecodeclub/usedtech/internal/analytics/internal/service"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// Handler 店面埋点，不需要登录
type Handler struct {
	svc service.Service
}

func NewHandler(svc service.Service) *Handler {
	return &Handler{svc: svc}
}

func (h *Handler) PublicRoutes(server *gin.Engine) {
	server.POST("/session", ginx.B[SessionReq](h.Session))
	g := server.Group("/analytics")
	g.POST("/view", ginx.B[ViewReq](h.LogView))
	g.POST("/inquiry", ginx.B[InquiryReq](h.LogInquiry))
}

// Session 访客会话 ID，客户端已经持有合法的 ID 时原样返回
func (h *Handler) Session(ctx *ginx.Context, req SessionReq) (ginx.Result, error) {
	if _, err := uuid.Parse(req.SessionID); err == nil {
		return ginx.Result{Data: SessionResp{SessionID: req.SessionID}}, nil
	}
	return ginx.Result{Data: SessionResp{SessionID: uuid.NewString()}}, nil
}

func (h *Handler) LogView(ctx *ginx.Context, req ViewReq) (ginx.Result, error) {
	recorded, err := h.svc.LogView(ctx, domain.View{
		ItemID:    req.ItemID,
		SessionID: req.SessionID,
		Referrer:  ctx.Request.Referer(),
		UserAgent: ctx.Request.UserAgent(),
	})
	if err != nil {
		return errResult(err), err
	}
	return ginx.Result{Data: ViewResp{Recorded: recorded}}, nil
}

func (h *Handler) LogInquiry(ctx *ginx.Context, req InquiryReq) (ginx.Result, error) {
	inquiry := req.toDomain()
	if inquiry.Referrer == "" {
		inquiry.Referrer = ctx.Request.Referer()
	}
	_, err := h.svc.LogInquiry(ctx, inquiry)
	if err != nil {
		return errResult(err), err
	}
	return ginx.Result{Data: ViewResp{Recorded: true}}, nil
}

// AdminHandler 后台数据看板
type AdminHandler struct {
	svc service.Service
}

func NewAdminHandler(svc service.Service) *AdminHandler {
	return &AdminHandler{svc: svc}
}

func (h *AdminHandler) PrivateRoutes(server *gin.Engine) {
	g := server.Group("/analytics")
	g.POST("/dashboard", ginx.W(h.Dashboard))
	g.POST("/items", ginx.B[Page](h.ItemAnalytics))
	g.POST("/inquiries", ginx.B[Page](h.ListInquiries))
}

func (h *AdminHandler) Dashboard(ctx *ginx.Context) (ginx.Result, error) {
	d, err := h.svc.Dashboard(ctx)
	if err != nil {
		return systemErrorResult, err
	}
	return ginx.Result{Data: newDashboard(d)}, nil
}

func (h *AdminHandler) ItemAnalytics(ctx *ginx.Context, req Page) (ginx.Result, error) {
	page := req.normalize()
	stats, total, err := h.svc.ItemAnalytics(ctx, page.Offset, page.Limit)
	if err != nil {
		return systemErrorResult, err
	}
	return ginx.Result{Data: ItemStatList{
		Total: total,
		Items: slice.Map(stats, func(idx int, src domain.ItemStat) ItemStat {
			return newItemStat(src)
		}),
	}}, nil
}

func (h *AdminHandler) ListInquiries(ctx *ginx.Context, req Page) (ginx.Result, error) {
	page := req.normalize()
	inquiries, total, err := h.svc.ListInquiries(ctx, page.Offset, page.Limit)
	if err != nil {
		return systemErrorResult, err
	}
	return ginx.Result{Data: InquiryList{
		Total: total,
		Inquiries: slice.Map(inquiries, func(idx int, src domain.Inquiry) Inquiry {
			return newInquiry(src)
		}),
	}}, nil
}
