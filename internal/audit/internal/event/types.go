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

const AuditEventName = "audit_events"

// AuditEvent 审计事件的消息体
type AuditEvent struct {
	Key        string         `json:"key"`
	ActorID    int64          `json:"actorId"`
	Action     string         `json:"action"`
	EntityType string         `json:"entityType"`
	EntityID   string         `json:"entityId"`
	Details    map[string]any `json:"details"`
	Ctime      int64          `json:"ctime"`
}

// MessageKey 同一个实体的事件进入同一个分区，保证顺序
func (a AuditEvent) MessageKey() string {
	return a.EntityType + ":" + a.EntityID
}
