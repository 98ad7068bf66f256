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
	"strconv"

	"github.com/ecodeclub/mq-api"
	"github.com/ecodeclub/usedtech/internal/pkg/mqx"
)

const InventoryEventName = "inventory_events"

// InventoryEvent 商品对外展示的内容发生了变化，店面需要刷新缓存
type InventoryEvent struct {
	ItemID int64  `json:"itemId"`
	Action string `json:"action"`
}

func (e InventoryEvent) MessageKey() string {
	return strconv.FormatInt(e.ItemID, 10)
}

//go:generate mockgen -source=./producer.go -package=evtmocks -destination=mocks/producer.mock.go InventoryEventProducer
type InventoryEventProducer interface {
	Produce(ctx context.Context, evt InventoryEvent) error
}

func NewInventoryEventProducer(q mq.MQ) (InventoryEventProducer, error) {
	p, err := mqx.NewGeneralProducer[InventoryEvent](q, InventoryEventName)
	if err != nil {
		return nil, err
	}
	return p, nil
}
