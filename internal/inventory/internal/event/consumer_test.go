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
	"testing"
	"time"

	"github.com/ecodeclub/mq-api"
	"github.com/ecodeclub/mq-api/memory"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeInvalidator struct {
	ids []int64
}

func (f *fakeInvalidator) Invalidate(ctx context.Context, itemID int64) error {
	f.ids = append(f.ids, itemID)
	return nil
}

func TestInventoryEventConsumer_Consume(t *testing.T) {
	q := memory.NewMQ()
	require.NoError(t, q.CreateTopic(context.Background(), InventoryEventName, 1))
	inv := &fakeInvalidator{}
	consumer, err := NewInventoryEventConsumer(inv, q)
	require.NoError(t, err)
	producer, err := q.Producer(InventoryEventName)
	require.NoError(t, err)

	data, err := json.Marshal(InventoryEvent{ItemID: 12, Action: "sold"})
	require.NoError(t, err)
	_, err = producer.Produce(context.Background(), &mq.Message{Value: data})
	require.NoError(t, err)

	ctx, cancel := context.WithTimeout(context.Background(), 3*time.Second)
	defer cancel()
	require.NoError(t, consumer.Consume(ctx))
	assert.Equal(t, []int64{12}, inv.ids)
}
