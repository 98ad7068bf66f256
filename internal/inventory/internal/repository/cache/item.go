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

package cache

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/ecodeclub/ecache"
	"github.com/ecodeclub/usedtech/internal/inventory/internal/domain"
	"github.com/pkg/errors"
)

var ErrItemNotFound = errors.New("缓存中没有商品")

const (
	detailExpiration = 24 * time.Hour
	// 首页列表变化频繁，过期时间短一些
	listExpiration = 10 * time.Minute
)

//go:generate mockgen -source=./item.go -package=cachemocks -destination=mocks/item.mock.go ItemCache
type ItemCache interface {
	SetItem(ctx context.Context, item domain.Item) error
	GetItem(ctx context.Context, slug string) (domain.Item, error)
	// SetHomeList 缓存店面首页，也就是不带筛选条件的第一页
	SetHomeList(ctx context.Context, items []domain.Item, total int64) error
	GetHomeList(ctx context.Context) ([]domain.Item, int64, error)
	// Invalidate slug 为空时只清理首页列表
	Invalidate(ctx context.Context, slug string) error
}

type itemCache struct {
	ec ecache.Cache
}

func NewItemCache(ec ecache.Cache) ItemCache {
	return &itemCache{
		ec: &ecache.NamespaceCache{
			C:         ec,
			Namespace: "inventory:",
		},
	}
}

func (c *itemCache) SetItem(ctx context.Context, item domain.Item) error {
	data, err := json.Marshal(item)
	if err != nil {
		return errors.Wrap(err, "序列化商品失败")
	}
	return c.ec.Set(ctx, c.itemKey(item.Slug), string(data), detailExpiration)
}

func (c *itemCache) GetItem(ctx context.Context, slug string) (domain.Item, error) {
	val := c.ec.Get(ctx, c.itemKey(slug))
	if val.KeyNotFound() {
		return domain.Item{}, ErrItemNotFound
	}
	if val.Err != nil {
		return domain.Item{}, val.Err
	}
	str, err := val.String()
	if err != nil {
		return domain.Item{}, err
	}
	var item domain.Item
	err = json.Unmarshal([]byte(str), &item)
	return item, errors.Wrap(err, "反序列化商品失败")
}

type homeList struct {
	Items []domain.Item
	Total int64
}

func (c *itemCache) SetHomeList(ctx context.Context, items []domain.Item, total int64) error {
	data, err := json.Marshal(homeList{Items: items, Total: total})
	if err != nil {
		return errors.Wrap(err, "序列化商品列表失败")
	}
	return c.ec.Set(ctx, c.homeKey(), string(data), listExpiration)
}

func (c *itemCache) GetHomeList(ctx context.Context) ([]domain.Item, int64, error) {
	val := c.ec.Get(ctx, c.homeKey())
	if val.KeyNotFound() {
		return nil, 0, ErrItemNotFound
	}
	if val.Err != nil {
		return nil, 0, val.Err
	}
	str, err := val.String()
	if err != nil {
		return nil, 0, err
	}
	var res homeList
	if err = json.Unmarshal([]byte(str), &res); err != nil {
		return nil, 0, errors.Wrap(err, "反序列化商品列表失败")
	}
	return res.Items, res.Total, nil
}

func (c *itemCache) Invalidate(ctx context.Context, slug string) error {
	keys := []string{c.homeKey()}
	if slug != "" {
		keys = append(keys, c.itemKey(slug))
	}
	_, err := c.ec.Delete(ctx, keys...)
	return err
}

func (c *itemCache) itemKey(slug string) string {
	return fmt.Sprintf("item:%s", slug)
}

func (c *itemCache) homeKey() string {
	return "list:home"
}
