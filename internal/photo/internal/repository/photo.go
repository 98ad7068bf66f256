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

package repository

import (
	"context"
	"time"

	"github.com/ecodeclub/ekit/slice"
	"github.com/ecodeclub/usedtech/internal/photo/internal/domain"
	"github.com/ecodeclub/usedtech/internal/photo/internal/repository/dao"
)

var (
	ErrPhotoNotFound      = dao.ErrRecordNotFound
	ErrItemNotFound       = dao.ErrItemNotFound
	ErrPhotoLimitExceeded = dao.ErrPhotoLimitExceeded
)

//go:generate mockgen -source=./photo.go -package=repomocks -destination=mocks/photo.mock.go PhotoRepository
type PhotoRepository interface {
	CountByItem(ctx context.Context, itemID int64) (int64, error)
	Append(ctx context.Context, p domain.Photo, limit int) (domain.Photo, error)
	FindByID(ctx context.Context, id int64) (domain.Photo, error)
	FindByItem(ctx context.Context, itemID int64) ([]domain.Photo, error)
	FindPrimaries(ctx context.Context, itemIDs []int64) ([]domain.Photo, error)
	DeleteAndRenumber(ctx context.Context, id int64) error
	Reorder(ctx context.Context, itemID int64, ids []int64) error
	DeleteByItem(ctx context.Context, itemID int64) error
}

type photoRepository struct {
	dao dao.PhotoDAO
}

func NewPhotoRepository(d dao.PhotoDAO) PhotoRepository {
	return &photoRepository{dao: d}
}

func (r *photoRepository) CountByItem(ctx context.Context, itemID int64) (int64, error) {
	return r.dao.CountByItem(ctx, itemID)
}

func (r *photoRepository) Append(ctx context.Context, p domain.Photo, limit int) (domain.Photo, error) {
	res, err := r.dao.Append(ctx, dao.ItemPhoto{
		ItemId:     p.ItemID,
		AssetKey:   p.AssetKey,
		Url:        p.URL,
		AltText:    p.AltText,
		UploadedBy: p.UploadedBy,
	}, limit)
	if err != nil {
		return domain.Photo{}, err
	}
	return r.toDomain(res), nil
}

func (r *photoRepository) FindByID(ctx context.Context, id int64) (domain.Photo, error) {
	p, err := r.dao.FindByID(ctx, id)
	if err != nil {
		return domain.Photo{}, err
	}
	return r.toDomain(p), nil
}

func (r *photoRepository) FindByItem(ctx context.Context, itemID int64) ([]domain.Photo, error) {
	res, err := r.dao.FindByItem(ctx, itemID)
	if err != nil {
		return nil, err
	}
	return r.toDomains(res), nil
}

func (r *photoRepository) FindPrimaries(ctx context.Context, itemIDs []int64) ([]domain.Photo, error) {
	res, err := r.dao.FindByItemsAndPosition(ctx, itemIDs, 0)
	if err != nil {
		return nil, err
	}
	return r.toDomains(res), nil
}

func (r *photoRepository) DeleteAndRenumber(ctx context.Context, id int64) error {
	return r.dao.DeleteAndRenumber(ctx, id)
}

func (r *photoRepository) Reorder(ctx context.Context, itemID int64, ids []int64) error {
	return r.dao.Reorder(ctx, itemID, ids)
}

func (r *photoRepository) DeleteByItem(ctx context.Context, itemID int64) error {
	return r.dao.DeleteByItem(ctx, itemID)
}

func (r *photoRepository) toDomains(photos []dao.ItemPhoto) []domain.Photo {
	return slice.Map(photos, func(idx int, src dao.ItemPhoto) domain.Photo {
		return r.toDomain(src)
	})
}

func (r *photoRepository) toDomain(p dao.ItemPhoto) domain.Photo {
	return domain.Photo{
		ID:         p.Id,
		ItemID:     p.ItemId,
		AssetKey:   p.AssetKey,
		URL:        p.Url,
		AltText:    p.AltText,
		Position:   p.Position,
		UploadedBy: p.UploadedBy,
		Ctime:      time.UnixMilli(p.Ctime),
	}
}
