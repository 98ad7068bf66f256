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
	"errors"
	"testing"
	"time"

	"github.com/ecodeclub/mq-api/memory"
	"github.com/ecodeclub/usedtech/internal/audit/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeSaver struct {
	// failures 前几次调用返回的错误
	failures []error
	calls    int
	events   []domain.Event
}

func (f *fakeSaver) Save(ctx context.Context, evt domain.Event) error {
	f.calls++
	if len(f.failures) > 0 {
		err := f.failures[0]
		f.failures = f.failures[1:]
		return err
	}
	f.events = append(f.events, evt)
	return nil
}

func newTestConsumer(t *testing.T, saver Saver) (*AuditEventConsumer, AuditEventProducer) {
	t.Helper()
	q := memory.NewMQ()
	require.NoError(t, q.CreateTopic(context.Background(), AuditEventName, 1))
	consumer, err := NewAuditEventConsumer(saver, q)
	require.NoError(t, err)
	consumer.initialInterval = time.Millisecond
	consumer.maxInterval = 5 * time.Millisecond
	producer, err := NewAuditEventProducer(q)
	require.NoError(t, err)
	return consumer, producer
}

func TestAuditEventConsumer_Consume(t *testing.T) {
	saver := &fakeSaver{}
	consumer, producer := newTestConsumer(t, saver)

	evt := AuditEvent{
		Key:        "123",
		ActorID:    7,
		Action:     string(domain.ActionSaleRecorded),
		EntityType: string(domain.EntityTypeSale),
		EntityID:   "9",
		Details:    map[string]any{"receipt_number": "RCP-2024-000001"},
		Ctime:      1700000000000,
	}
	require.NoError(t, producer.Produce(context.Background(), evt))

	ctx, cancel := context.WithTimeout(context.Background(), 3*time.Second)
	defer cancel()
	require.NoError(t, consumer.Consume(ctx))

	require.Len(t, saver.events, 1)
	got := saver.events[0]
	assert.Equal(t, "123", got.Key)
	assert.Equal(t, int64(7), got.ActorID)
	assert.Equal(t, domain.ActionSaleRecorded, got.Action)
	assert.Equal(t, "RCP-2024-000001", got.Details["receipt_number"])
	assert.Equal(t, int64(1700000000000), got.Ctime.UnixMilli())
}

func TestAuditEventConsumer_ConsumeRetrySave(t *testing.T) {
	saver := &fakeSaver{failures: []error{errors.New("数据库超时"), errors.New("连接断开")}}
	consumer, producer := newTestConsumer(t, saver)
	require.NoError(t, producer.Produce(context.Background(), AuditEvent{
		Key:        "456",
		ActorID:    7,
		Action:     string(domain.ActionItemUpdated),
		EntityType: string(domain.EntityTypeItem),
		EntityID:   "3",
	}))

	ctx, cancel := context.WithTimeout(context.Background(), 3*time.Second)
	defer cancel()
	require.NoError(t, consumer.Consume(ctx))

	assert.Equal(t, 3, saver.calls)
	require.Len(t, saver.events, 1)
	assert.Equal(t, "456", saver.events[0].Key)
}

func TestAuditEventConsumer_ConsumeCanceled(t *testing.T) {
	failures := make([]error, 1000)
	for i := range failures {
		failures[i] = errors.New("数据库不可用")
	}
	saver := &fakeSaver{failures: failures}
	consumer, producer := newTestConsumer(t, saver)
	require.NoError(t, producer.Produce(context.Background(), AuditEvent{Key: "789"}))

	ctx, cancel := context.WithTimeout(context.Background(), 100*time.Millisecond)
	defer cancel()
	err := consumer.Consume(ctx)
	assert.ErrorIs(t, err, context.DeadlineExceeded)
	assert.Empty(t, saver.events)
}
