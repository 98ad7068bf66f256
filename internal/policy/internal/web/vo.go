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

import "github.com/ecodeclub/usedtech/internal/policy/internal/domain"

type UpdateReq struct {
	Type          string `json:"type" binding:"required"`
	Title         string `json:"title" binding:"required"`
	Content       string `json:"content"`
	EffectiveDate int64  `json:"effectiveDate"`
}

type Policy struct {
	Type          string `json:"type"`
	Title         string `json:"title"`
	Content       string `json:"content"`
	EffectiveDate int64  `json:"effectiveDate"`
	UpdatedBy     int64  `json:"updatedBy,omitempty"`
	Utime         int64  `json:"utime"`
}

func newPolicy(p domain.Policy) Policy {
	return Policy{
		Type:          string(p.Type),
		Title:         p.Title,
		Content:       p.Content,
		EffectiveDate: p.EffectiveDate.UnixMilli(),
		Utime:         p.Utime.UnixMilli(),
	}
}
