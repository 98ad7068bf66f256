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
	"testing"

	"github.com/alicebob/miniredis/v2"
	eredis "github.com/ecodeclub/ecache/redis"
	"github.com/ecodeclub/usedtech/internal/analytics/internal/domain"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestViewCache(t *testing.T) {
	ctx := context.Background()
	mr := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	c := NewViewCache(eredis.NewCache(client))

	ok, err := c.MarkView(ctx, 1, "s1")
	require.NoError(t, err)
	assert.True(t, ok)

	ok, err = c.MarkView(ctx, 1, "s1")
	require.NoError(t, err)
	assert.False(t, ok)

	// 不同的访客互不影响
	ok, err = c.MarkView(ctx, 1, "s2")
	require.NoError(t, err)
	assert.True(t, ok)

	mr.FastForward(domain.ViewDedupWindow)
	ok, err = c.MarkView(ctx, 1, "s1")
	require.NoError(t, err)
	assert.True(t, ok)

	require.NoError(t, c.UnmarkView(ctx, 1, "s1"))
	ok, err = c.MarkView(ctx, 1, "s1")
	require.NoError(t, err)
	assert.True(t, ok)
}
