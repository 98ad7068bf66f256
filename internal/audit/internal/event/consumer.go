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
	"time"

	"github.com/ecodeclub/ekit/retry"
	"github.com/ecodeclub/mq-api"
	"github.com/ecodeclub/usedtech/internal/audit/internal/domain"
	"github.com/gotomicro/ego/core/elog"
)

// Saver 由 service 实现，避免 event 和 service 相互依赖
type Saver interface {
	Save(ctx context.Context, evt domain.Event) error
}

type AuditEventConsumer struct {
	saver    Saver
	consumer mq.Consumer
	logger   *elog.Component
	// 保存失败时的重试间隔，不限次数，直到成功或者 ctx 被取消
	initialInterval time.Duration
	maxInterval     time.Duration
}

func NewAuditEventConsumer(saver Saver, q mq.MQ) (*AuditEventConsumer, error) {
	const groupID = "audit"
	consumer, err := q.Consumer(AuditEventName, groupID)
	if err != nil {
		return nil, err
	}
	return &AuditEventConsumer{
		saver:           saver,
		consumer:        consumer,
		logger:          elog.DefaultLogger,
		initialInterval: 100 * time.Millisecond,
		maxInterval:     30 * time.Second,
	}, nil
}

func (c *AuditEventConsumer) Start(ctx context.Context) {
	go func() {
		for {
			if ctx.Err() != nil {
				return
			}
			err := c.Consume(ctx)
			if err != nil {
				c.logger.Error("消费审计事件失败", elog.FieldErr(err))
			}
		}
	}()
}

func (c *AuditEventConsumer) Consume(ctx context.Context) error {
	msg, err := c.consumer.Consume(ctx)
	if err != nil {
		return fmt.Errorf("获取消息失败: %w", err)
	}
	var evt AuditEvent
	err = json.Unmarshal(msg.Value, &evt)
	if err != nil {
		return fmt.Errorf("解析消息失败: %w", err)
	}
	return c.save(ctx, domain.Event{
		Key:        evt.Key,
		ActorID:    evt.ActorID,
		Action:     domain.Action(evt.Action),
		EntityType: domain.EntityType(evt.EntityType),
		EntityID:   evt.EntityID,
		Details:    evt.Details,
		Ctime:      time.UnixMilli(evt.Ctime),
	})
}

// save 审计事件至少落库一次，失败就退避重试，不会跳过这条消息去读下一条
func (c *AuditEventConsumer) save(ctx context.Context, evt domain.Event) error {
	strategy, err := retry.NewExponentialBackoffRetryStrategy(c.initialInterval, c.maxInterval, 0)
	if err != nil {
		return err
	}
	err = retry.Retry(ctx, strategy, func() error {
		er := c.saver.Save(ctx, evt)
		if er != nil {
			c.logger.Warn("保存审计事件失败，稍后重试", elog.FieldErr(er), elog.String("key", evt.Key))
		}
		return er
	})
	if err != nil {
		return fmt.Errorf("保存审计事件失败 key=%s: %w", evt.Key, err)
	}
	return nil
}

func (c *AuditEventConsumer) Stop(_ context.Context) error {
	return c.consumer.Close()
}
