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

package domain

import "time"

type Type string

const (
	TypeWarranty Type = "warranty"
	TypeReturns  Type = "returns"
)

func (t Type) IsValid() bool {
	return t == TypeWarranty || t == TypeReturns
}

// Policy 对外公开的保修、退货政策，Content 是清洗过的 HTML
type Policy struct {
	ID            int64
	Type          Type
	Title         string
	Content       string
	EffectiveDate time.Time
	UpdatedBy     int64
	Utime         time.Time
}

// Snapshot 销售发生那一刻的政策内容，某项政策不存在时为 nil
type Snapshot struct {
	Warranty *string
	Returns  *string
}
