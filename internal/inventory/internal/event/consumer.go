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

package event

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/ecodeclub/mq-api"
	"github.com/gotomicro/ego/core/elog"
)

type Invalidator interface {
	Invalidate(ctx context.Context, itemID int64) error
}

// InventoryEventConsumer 收到事件后清理店面缓存
type InventoryEventConsumer struct {
	invalidator Invalidator
	consumer    mq.Consumer
	logger      *elog.Component
}

func NewInventoryEventConsumer(invalidator Invalidator, q mq.MQ) (*InventoryEventConsumer, error) {
	const groupID = "inventory_cache"
	consumer, err := q.Consumer(InventoryEventName, groupID)
	if err != nil {
		return nil, err
	}
	return &InventoryEventConsumer{
		invalidator: invalidator,
		consumer:    consumer,
		logger:      elog.DefaultLogger,
	}, nil
}

func (c *InventoryEventConsumer) Start(ctx context.Context) {
	go func() {
		for {
			if ctx.Err() != nil {
				return
			}
			err := c.Consume(ctx)
			if err != nil {
				c.logger.Error("消费商品变更事件失败", elog.FieldErr(err))
			}
		}
	}()
}

func (c *InventoryEventConsumer) Consume(ctx context.Context) error {
	msg, err := c.consumer.Consume(ctx)
	if err != nil {
		return fmt.Errorf("获取消息失败: %w", err)
	}
	var evt InventoryEvent
	err = json.Unmarshal(msg.Value, &evt)
	if err != nil {
		return fmt.Errorf("解析消息失败: %w", err)
	}
	err = c.invalidator.Invalidate(ctx, evt.ItemID)
	if err != nil {
		return fmt.Errorf("清理商品缓存失败 itemId=%d action=%s: %w", evt.ItemID, evt.Action, err)
	}
	return nil
}

func (c *InventoryEventConsumer) Stop(_ context.Context) error {
	return c.consumer.Close()
}
