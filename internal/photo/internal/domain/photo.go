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

package domain

import (
	"errors"
	"fmt"
	"io"
	"time"
)

const (
	// MaxPhotosPerItem 每件商品最多 5 张图片
	MaxPhotosPerItem = 5
	// MaxFileSize 单张图片最大 10MB
	MaxFileSize int64 = 10 << 20
)

var (
	ErrUnsupportedContentType = errors.New("不支持的图片格式")
	ErrFileTooLarge           = errors.New("图片超过 10MB")
	ErrEmptyFile              = errors.New("图片内容为空")
	ErrInvalidOrder           = errors.New("排序必须包含商品当前的全部图片且不能重复")
)

var contentTypeExt = map[string]string{
	"image/jpeg": ".jpg",
	"image/png":  ".png",
	"image/webp": ".webp",
}

// Photo 商品图片，同一商品的 Position 总是 0..n-1 连续的
type Photo struct {
	ID         int64
	ItemID     int64
	AssetKey   string
	URL        string
	AltText    string
	Position   int
	UploadedBy int64
	Ctime      time.Time
}

type Upload struct {
	ItemID      int64
	AltText     string
	ContentType string
	Size        int64
	Content     io.Reader
	Actor       int64
}

func (u Upload) Validate() error {
	if _, ok := contentTypeExt[u.ContentType]; !ok {
		return fmt.Errorf("%w: %s", ErrUnsupportedContentType, u.ContentType)
	}
	if u.Size <= 0 || u.Content == nil {
		return ErrEmptyFile
	}
	if u.Size > MaxFileSize {
		return fmt.Errorf("%w: %d", ErrFileTooLarge, u.Size)
	}
	return nil
}

func (u Upload) Ext() string {
	return contentTypeExt[u.ContentType]
}

func IsAllowedContentType(contentType string) bool {
	_, ok := contentTypeExt[contentType]
	return ok
}

// AssetPrefix 商品图片在图床上的目录
func AssetPrefix(itemID int64) string {
	return fmt.Sprintf("inventory/%d/", itemID)
}

// ValidateOrder 新的排序必须恰好是当前图片 ID 的一个排列
func ValidateOrder(existing, ordered []int64) error {
	if len(existing) != len(ordered) {
		return ErrInvalidOrder
	}
	set := make(map[int64]struct{}, len(existing))
	for _, id := range existing {
		set[id] = struct{}{}
	}
	for _, id := range ordered {
		if _, ok := set[id]; !ok {
			return ErrInvalidOrder
		}
		// 删掉之后重复的 ID 就会被拒绝
		delete(set, id)
	}
	return nil
}
