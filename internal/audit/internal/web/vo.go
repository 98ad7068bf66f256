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

package web

import "github.com/ecodeclub/usedtech/internal/audit/internal/domain"

type ListReq struct {
	Offset int `json:"offset"`
	Limit  int `json:"limit"`
}

type EntityReq struct {
	EntityType string `json:"entityType"`
	EntityID   string `json:"entityId"`
}

type Event struct {
	ID         int64          `json:"id"`
	ActorID    int64          `json:"actorId"`
	ActorName  string         `json:"actorName"`
	Action     string         `json:"action"`
	EntityType string         `json:"entityType"`
	EntityID   string         `json:"entityId"`
	Details    map[string]any `json:"details,omitempty"`
	Ctime      int64          `json:"ctime"`
}

func newEvent(e domain.Event) Event {
	return Event{
		ID:         e.ID,
		ActorID:    e.ActorID,
		ActorName:  e.ActorName,
		Action:     string(e.Action),
		EntityType: string(e.EntityType),
		EntityID:   e.EntityID,
		Details:    e.Details,
		Ctime:      e.Ctime.UnixMilli(),
	}
}
