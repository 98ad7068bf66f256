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
	"errors"
	"fmt"

	"github.com/ecodeclub/usedtech/internal/inventory"
)

var (
	ErrItemAlreadySold = errors.New("商品已经售出")
	ErrItemNotSellable = errors.New("商品当前状态不能销售")
)

// CanSell 只有可售和预留中的商品可以成交
func CanSell(status inventory.Status) error {
	switch status {
	case inventory.StatusAvailable, inventory.StatusOnHold:
		return nil
	case inventory.StatusSold:
		return ErrItemAlreadySold
	default:
		return fmt.Errorf("%w: %s", ErrItemNotSellable, status)
	}
}
