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
	"fmt"

	"github.com/ecodeclub/ecache"
	"github.com/ecodeclub/usedtech/internal/analytics/internal/domain"
)

//go:generate mockgen -source=./view.go -package=cachemocks -destination=mocks/view.mock.go ViewCache
type ViewCache interface {
	// MarkView 返回 false 说明窗口内已经记录过
	MarkView(ctx context.Context, itemID int64, sessionID string) (bool, error)
	UnmarkView(ctx context.Context, itemID int64, sessionID string) error
}

type viewCache struct {
	ec ecache.Cache
}

func NewViewCache(ec ecache.Cache) ViewCache {
	return &viewCache{
		ec: &ecache.NamespaceCache{
			C:         ec,
			Namespace: "analytics:",
		},
	}
}

func (c *viewCache) MarkView(ctx context.Context, itemID int64, sessionID string) (bool, error) {
	return c.ec.SetNX(ctx, c.key(itemID, sessionID), 1, domain.ViewDedupWindow)
}

func (c *viewCache) UnmarkView(ctx context.Context, itemID int64, sessionID string) error {
	_, err := c.ec.Delete(ctx, c.key(itemID, sessionID))
	return err
}

func (c *viewCache) key(itemID int64, sessionID string) string {
	return fmt.Sprintf("view:%d:%s", itemID, sessionID)
}
