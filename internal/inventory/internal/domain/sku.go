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

import (
	"fmt"
	"strings"

	"github.com/gosimple/slug"
)

// GenerateSKU 形如 LAP-2024-007，seq 是该分类下的第几件商品
func GenerateSKU(c Category, year int, seq int64) string {
	return fmt.Sprintf("%s-%d-%03d", c.SKUPrefix(), year, seq)
}

// GenerateSlug 标题转成 URL 片段后拼上 SKU，保证唯一
func GenerateSlug(title, sku string) string {
	s := slug.Make(title)
	sku = strings.ToLower(sku)
	if s == "" {
		return sku
	}
	return s + "-" + sku
}
