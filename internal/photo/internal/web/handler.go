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
	"strconv"

	"github.com/ecodeclub/ekit/slice"
	"github.com/ecodeclub/ginx"
	"github.com/ecodeclub/ginx/session"
	"github.com/ecodeclub/usedtech/internal/photo/internal/domain"
	"github.com/ecodeclub/usedtech/internal/photo/internal/service"
	"github.com/gin-gonic/gin"
)

// AdminHandler 后台商品图片管理，路由挂在 CheckRole 之后
type AdminHandler struct {
	svc service.Service
}

func NewAdminHandler(svc service.Service) *AdminHandler {
	return &AdminHandler{svc: svc}
}

func (h *AdminHandler) PrivateRoutes(server *gin.Engine) {
	g := server.Group("/photo")
	g.POST("/upload", ginx.S(h.Upload))
	g.POST("/credential", ginx.BS[CredentialReq](h.Credential))
	g.POST("/register", ginx.BS[RegisterReq](h.Register))
	g.POST("/delete", ginx.BS[IDReq](h.Delete))
	g.POST("/reorder", ginx.BS[ReorderReq](h.Reorder))
	g.POST("/list", ginx.B[ItemReq](h.List))
}

// Upload multipart 表单，字段 itemId、altText、file
func (h *AdminHandler) Upload(ctx *ginx.Context, sess session.Session) (ginx.Result, error) {
	itemID, err := strconv.ParseInt(ctx.PostForm("itemId"), 10, 64)
	if err != nil {
		return invalidFileResult, err
	}
	fh, err := ctx.FormFile("file")
	if err != nil {
		return invalidFileResult, err
	}
	f, err := fh.Open()
	if err != nil {
		return systemErrorResult, err
	}
	defer f.Close()
	p, err := h.svc.Add(ctx, domain.Upload{
		ItemID:      itemID,
		AltText:     ctx.PostForm("altText"),
		ContentType: fh.Header.Get("Content-Type"),
		Size:        fh.Size,
		Content:     f,
		Actor:       sess.Claims().Uid,
	})
	if err != nil {
		return errResult(err), err
	}
	return ginx.Result{Data: newPhoto(p)}, nil
}

func (h *AdminHandler) Credential(ctx *ginx.Context, req CredentialReq, sess session.Session) (ginx.Result, error) {
	cred, err := h.svc.IssueCredential(ctx, req.ItemID, req.ContentType)
	if err != nil {
		return errResult(err), err
	}
	return ginx.Result{Data: Credential{
		SecretID:     cred.SecretID,
		SecretKey:    cred.SecretKey,
		SessionToken: cred.SessionToken,
		StartTime:    cred.StartTime,
		ExpiredTime:  cred.ExpiredTime,
		Bucket:       cred.Bucket,
		Region:       cred.Region,
		KeyPrefix:    cred.KeyPrefix,
	}}, nil
}

func (h *AdminHandler) Register(ctx *ginx.Context, req RegisterReq, sess session.Session) (ginx.Result, error) {
	p, err := h.svc.Register(ctx, req.ItemID, req.Key, req.AltText, sess.Claims().Uid)
	if err != nil {
		return errResult(err), err
	}
	return ginx.Result{Data: newPhoto(p)}, nil
}

func (h *AdminHandler) Delete(ctx *ginx.Context, req IDReq, sess session.Session) (ginx.Result, error) {
	err := h.svc.Delete(ctx, req.ID, sess.Claims().Uid)
	if err != nil {
		return errResult(err), err
	}
	return ginx.Result{}, nil
}

func (h *AdminHandler) Reorder(ctx *ginx.Context, req ReorderReq, sess session.Session) (ginx.Result, error) {
	err := h.svc.Reorder(ctx, req.ItemID, req.IDs, sess.Claims().Uid)
	if err != nil {
		return errResult(err), err
	}
	return ginx.Result{}, nil
}

func (h *AdminHandler) List(ctx *ginx.Context, req ItemReq) (ginx.Result, error) {
	photos, err := h.svc.ListByItem(ctx, req.ItemID)
	if err != nil {
		return systemErrorResult, err
	}
	return ginx.Result{Data: slice.Map(photos, func(idx int, src domain.Photo) Photo {
		return newPhoto(src)
	})}, nil
}
