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
	"github.com/ecodeclub/usedtech/internal/sale/internal/domain"
	"github.com/ecodeclub/usedtech/internal/sale/internal/service"
	"github.com/gin-gonic/gin"
)

// AdminHandler 销售录入和收据查询，只开放给后台员工
type AdminHandler struct {
	svc service.Service
}

func NewAdminHandler(svc service.Service) *AdminHandler {
	return &AdminHandler{svc: svc}
}

func (h *AdminHandler) PrivateRoutes(server *gin.Engine) {
	g := server.Group("/sale")
	g.POST("/record", ginx.BS[RecordReq](h.Record))
	g.POST("/detail", ginx.B[IDReq](h.Detail))
	g.POST("/receipt", ginx.B[ReceiptNumberReq](h.Receipt))
	g.POST("/list", ginx.B[ListReq](h.List))
	g.POST("/attach", ginx.B[AttachReq](h.Attach))
}

func (h *AdminHandler) Record(ctx *ginx.Context, req RecordReq, sess session.Session) (ginx.Result, error) {
	receiptNumber, err := h.svc.Record(ctx, req.toDomain(sess.Claims().Uid))
	if err != nil {
		return errResult(err), err
	}
	return ginx.Result{Data: RecordResp{ReceiptNumber: receiptNumber}}, nil
}

func (h *AdminHandler) Detail(ctx *ginx.Context, req IDReq) (ginx.Result, error) {
	r, err := h.svc.FindByID(ctx, req.ID)
	if err != nil {
		return errResult(err), err
	}
	return ginx.Result{Data: newReceipt(r)}, nil
}

func (h *AdminHandler) Receipt(ctx *ginx.Context, req ReceiptNumberReq) (ginx.Result, error) {
	r, err := h.svc.FindByReceiptNumber(ctx, req.ReceiptNumber)
	if err != nil {
		return errResult(err), err
	}
	return ginx.Result{Data: newReceipt(r)}, nil
}

func (h *AdminHandler) List(ctx *ginx.Context, req ListReq) (ginx.Result, error) {
	req = req.normalize()
	sales, total, err := h.svc.List(ctx, req.filter(), req.Offset, req.Limit)
	if err != nil {
		return systemErrorResult, err
	}
	return ginx.Result{Data: SaleList{
		Total: total,
		Sales: slice.Map(sales, func(idx int, src domain.Sale) Sale {
			return newSale(src)
		}),
	}}, nil
}

func (h *AdminHandler) Attach(ctx *ginx.Context, req AttachReq) (ginx.Result, error) {
	err := h.svc.AttachReceipt(ctx, req.ID, req.URL)
	if err != nil {
		return errResult(err), err
	}
	return ginx.Result{}, nil
}
