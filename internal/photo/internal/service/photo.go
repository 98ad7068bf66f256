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

package service

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/ecodeclub/usedtech/internal/audit"
	"github.com/ecodeclub/usedtech/internal/photo/internal/domain"
	"github.com/ecodeclub/usedtech/internal/photo/internal/event"
	"github.com/ecodeclub/usedtech/internal/photo/internal/repository"
	"github.com/ecodeclub/usedtech/internal/photo/internal/storage"
	"github.com/gotomicro/ego/core/elog"
	"github.com/lithammer/shortuuid/v4"
)

var (
	ErrPhotoNotFound      = repository.ErrPhotoNotFound
	ErrItemNotFound       = repository.ErrItemNotFound
	ErrPhotoLimitExceeded = repository.ErrPhotoLimitExceeded
	ErrInvalidOrder       = domain.ErrInvalidOrder
	ErrInvalidAssetKey    = errors.New("图片路径不属于该商品")
	ErrStorage            = storage.ErrStorage
	ErrUnsupportedType    = domain.ErrUnsupportedContentType
)

//go:generate mockgen -source=./photo.go -package=photomocks -destination=../../mocks/photo.mock.go Service
type Service interface {
	// Add 上传图片并追加到末尾
	Add(ctx context.Context, upload domain.Upload) (domain.Photo, error)
	// Register 登记一张前端已经直传到图床的图片
	Register(ctx context.Context, itemID int64, key, altText string, actor int64) (domain.Photo, error)
	Delete(ctx context.Context, id int64, actor int64) error
	Reorder(ctx context.Context, itemID int64, ids []int64, actor int64) error
	ListByItem(ctx context.Context, itemID int64) ([]domain.Photo, error)
	// Primaries 每件商品的主图，也就是 position 为 0 的那张
	Primaries(ctx context.Context, itemIDs []int64) (map[int64]domain.Photo, error)
	// DeleteByItem 商品被删除时清理全部图片
	DeleteByItem(ctx context.Context, itemID int64) error
	// IssueCredential 签发只能写入该商品目录的临时密钥
	IssueCredential(ctx context.Context, itemID int64, contentType string) (storage.Credential, error)
}

type service struct {
	repo     repository.PhotoRepository
	storage  storage.ImageStorage
	issuer   storage.CredentialIssuer
	producer event.InventoryEventProducer
	auditSvc audit.Service
	logger   *elog.Component
}

func NewService(repo repository.PhotoRepository,
	store storage.ImageStorage,
	issuer storage.CredentialIssuer,
	producer event.InventoryEventProducer,
	auditSvc audit.Service) Service {
	return &service{
		repo:     repo,
		storage:  store,
		issuer:   issuer,
		producer: producer,
		auditSvc: auditSvc,
		logger:   elog.DefaultLogger,
	}
}

func (s *service) Add(ctx context.Context, upload domain.Upload) (domain.Photo, error) {
	if err := upload.Validate(); err != nil {
		return domain.Photo{}, err
	}
	// 先查一遍，满了就不必上传；真正的上限由 Append 在事务里保证
	cnt, err := s.repo.CountByItem(ctx, upload.ItemID)
	if err != nil {
		return domain.Photo{}, err
	}
	if cnt >= domain.MaxPhotosPerItem {
		return domain.Photo{}, ErrPhotoLimitExceeded
	}
	key := domain.AssetPrefix(upload.ItemID) + shortuuid.New() + upload.Ext()
	url, err := s.storage.Upload(ctx, key, upload.ContentType, upload.Content, upload.Size)
	if err != nil {
		return domain.Photo{}, err
	}
	return s.append(ctx, domain.Photo{
		ItemID:     upload.ItemID,
		AssetKey:   key,
		URL:        url,
		AltText:    upload.AltText,
		UploadedBy: upload.Actor,
	})
}

func (s *service) Register(ctx context.Context, itemID int64, key, altText string, actor int64) (domain.Photo, error) {
	if !strings.HasPrefix(key, domain.AssetPrefix(itemID)) || strings.Contains(key, "..") {
		return domain.Photo{}, fmt.Errorf("%w: %s", ErrInvalidAssetKey, key)
	}
	return s.append(ctx, domain.Photo{
		ItemID:     itemID,
		AssetKey:   key,
		URL:        s.storage.URL(key),
		AltText:    altText,
		UploadedBy: actor,
	})
}

func (s *service) append(ctx context.Context, p domain.Photo) (domain.Photo, error) {
	res, err := s.repo.Append(ctx, p, domain.MaxPhotosPerItem)
	if err != nil {
		// 图片已经在图床上了，记录没写进去就要删掉，避免孤儿文件
		if derr := s.storage.Delete(ctx, p.AssetKey); derr != nil {
			s.logger.Error("清理图床文件失败",
				elog.FieldErr(derr),
				elog.String("key", p.AssetKey))
		}
		return domain.Photo{}, err
	}
	s.afterChange(ctx, res.ItemID, audit.ActionPhotoAdded, p.UploadedBy, map[string]any{
		"photo_id": res.ID,
		"position": res.Position,
	})
	return res, nil
}

func (s *service) Delete(ctx context.Context, id int64, actor int64) error {
	p, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return err
	}
	if err = s.storage.Delete(ctx, p.AssetKey); err != nil {
		return err
	}
	if err = s.repo.DeleteAndRenumber(ctx, id); err != nil {
		return err
	}
	s.afterChange(ctx, p.ItemID, audit.ActionPhotoDeleted, actor, map[string]any{
		"photo_id": id,
	})
	return nil
}

func (s *service) Reorder(ctx context.Context, itemID int64, ids []int64, actor int64) error {
	if err := s.repo.Reorder(ctx, itemID, ids); err != nil {
		return err
	}
	s.afterChange(ctx, itemID, audit.ActionPhotoReordered, actor, map[string]any{
		"order": ids,
	})
	return nil
}

func (s *service) ListByItem(ctx context.Context, itemID int64) ([]domain.Photo, error) {
	return s.repo.FindByItem(ctx, itemID)
}

func (s *service) Primaries(ctx context.Context, itemIDs []int64) (map[int64]domain.Photo, error) {
	res := make(map[int64]domain.Photo, len(itemIDs))
	if len(itemIDs) == 0 {
		return res, nil
	}
	photos, err := s.repo.FindPrimaries(ctx, itemIDs)
	if err != nil {
		return nil, err
	}
	for _, p := range photos {
		res[p.ItemID] = p
	}
	return res, nil
}

func (s *service) DeleteByItem(ctx context.Context, itemID int64) error {
	photos, err := s.repo.FindByItem(ctx, itemID)
	if err != nil {
		return err
	}
	for _, p := range photos {
		if err = s.storage.Delete(ctx, p.AssetKey); err != nil {
			s.logger.Error("删除商品图片失败",
				elog.FieldErr(err),
				elog.Int64("itemId", itemID),
				elog.String("key", p.AssetKey))
		}
	}
	return s.repo.DeleteByItem(ctx, itemID)
}

func (s *service) IssueCredential(ctx context.Context, itemID int64, contentType string) (storage.Credential, error) {
	if !domain.IsAllowedContentType(contentType) {
		return storage.Credential{}, fmt.Errorf("%w: %s", ErrUnsupportedType, contentType)
	}
	cnt, err := s.repo.CountByItem(ctx, itemID)
	if err != nil {
		return storage.Credential{}, err
	}
	if cnt >= domain.MaxPhotosPerItem {
		return storage.Credential{}, ErrPhotoLimitExceeded
	}
	return s.issuer.Issue(domain.AssetPrefix(itemID), contentType)
}

// afterChange 审计和缓存刷新都不影响主流程
func (s *service) afterChange(ctx context.Context, itemID int64, action audit.Action, actor int64, details map[string]any) {
	err := s.auditSvc.Record(ctx, audit.Event{
		ActorID:    actor,
		Action:     action,
		EntityType: audit.EntityTypePhoto,
		EntityID:   strconv.FormatInt(itemID, 10),
		Details:    details,
	})
	if err != nil {
		s.logger.Error("记录图片审计失败", elog.FieldErr(err), elog.Int64("itemId", itemID))
	}
	err = s.producer.Produce(ctx, event.InventoryEvent{ItemID: itemID, Action: string(action)})
	if err != nil {
		s.logger.Error("发送商品变更事件失败", elog.FieldErr(err), elog.Int64("itemId", itemID))
	}
}
