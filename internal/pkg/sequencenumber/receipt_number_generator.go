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

package sequencenumber

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
)

var ErrGenerateFailed = errors.New("生成收据号失败")

const DefaultPrefix = "RCP"

// NowFunc 定义获取当前时间的函数类型
type NowFunc func() time.Time

// Seeder 返回某一年已经发出去的最大序号，没有时返回 0
type Seeder interface {
	LastSequence(ctx context.Context, prefix string, year int) (int64, error)
}

// Generator 按年份分段的收据号生成器
// 计数器保存在 redis 中，INCR 保证并发下唯一，且号码只增不减，不会复用。
// 计数器丢失时（redis 重启、淘汰）先用 Seeder 从已有的收据号恢复，再继续递增
type Generator struct {
	client  redis.Cmdable
	prefix  string
	nowFunc NowFunc
	seeder  Seeder
}

// NewGeneratorWith 创建一个Generator实例
func NewGeneratorWith(client redis.Cmdable, prefix string, nowFunc NowFunc) *Generator {
	return &Generator{
		client:  client,
		prefix:  prefix,
		nowFunc: nowFunc,
	}
}

// NewGenerator 创建一个Generator实例，seeder 用来在计数器丢失时恢复
func NewGenerator(client redis.Cmdable, seeder Seeder) *Generator {
	g := NewGeneratorWith(client, DefaultPrefix, time.Now)
	g.seeder = seeder
	return g
}

// Next 生成下一个收据号，形如 RCP-2024-000001
func (g *Generator) Next(ctx context.Context) (string, error) {
	year := g.nowFunc().Year()
	key := g.key(year)
	if err := g.ensureSeeded(ctx, key, year); err != nil {
		return "", fmt.Errorf("%w: %w", ErrGenerateFailed, err)
	}
	seq, err := g.client.Incr(ctx, key).Result()
	if err != nil {
		return "", fmt.Errorf("%w: %w", ErrGenerateFailed, err)
	}
	return Format(g.prefix, year, seq), nil
}

// ensureSeeded 计数器不存在时，用已发出的最大序号初始化。
// SetNX 保证多个实例同时恢复时只有一个写入成功，不会把已经递增过的计数器改小
func (g *Generator) ensureSeeded(ctx context.Context, key string, year int) error {
	if g.seeder == nil {
		return nil
	}
	cnt, err := g.client.Exists(ctx, key).Result()
	if err != nil || cnt > 0 {
		return err
	}
	last, err := g.seeder.LastSequence(ctx, g.prefix, year)
	if err != nil {
		return fmt.Errorf("恢复计数器 %s 失败: %w", key, err)
	}
	return g.client.SetNX(ctx, key, last, 0).Err()
}

// Format 收据号格式，序号至少 6 位
func Format(prefix string, year int, seq int64) string {
	return fmt.Sprintf("%s-%d-%06d", prefix, year, seq)
}

// YearPrefix 某一年所有收据号的公共前缀，例如 RCP-2024-
func YearPrefix(prefix string, year int) string {
	return fmt.Sprintf("%s-%d-", prefix, year)
}

func (g *Generator) key(year int) string {
	return fmt.Sprintf("receipt:seq:%s:%d", g.prefix, year)
}
