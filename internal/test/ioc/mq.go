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

package testioc

import (
	"context"
	"sync"

	"github.com/ecodeclub/mq-api"
	"github.com/ecodeclub/mq-api/memory"
)

// topics 和 config.yaml 里 kafka.topics 保持一致
var topics = []string{"inventory_events", "audit_events"}

var (
	q          mq.MQ
	mqInitOnce sync.Once
)

// InitMQ 集成测试共用一个内存队列，跨模块的事件可以互相投递
func InitMQ() mq.MQ {
	mqInitOnce.Do(func() {
		mem := memory.NewMQ()
		for _, name := range topics {
			if err := mem.CreateTopic(context.Background(), name, 1); err != nil {
				panic(err)
			}
		}
		q = mem
	})
	return q
}
