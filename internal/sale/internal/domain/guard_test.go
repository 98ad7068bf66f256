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
	"testing"

	"github.com/ecodeclub/usedtech/internal/inventory"
	"github.com/stretchr/testify/assert"
)

func TestCanSell(t *testing.T) {
	testCases := []struct {
		name    string
		status  inventory.Status
		wantErr error
	}{
		{name: "可售", status: inventory.StatusAvailable},
		{name: "预留中", status: inventory.StatusOnHold},
		{name: "已售", status: inventory.StatusSold, wantErr: ErrItemAlreadySold},
		{name: "已退回", status: inventory.StatusReturned, wantErr: ErrItemNotSellable},
		{name: "未知状态", status: "LOST", wantErr: ErrItemNotSellable},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			assert.ErrorIs(t, CanSell(tc.status), tc.wantErr)
		})
	}
}

func TestRecordRequest_Validate(t *testing.T) {
	testCases := []struct {
		name    string
		req     RecordRequest
		wantErr error
	}{
		{name: "现金自提", req: RecordRequest{SalePrice: 45000, PaymentMethod: PaymentCash}},
		{name: "送货上门", req: RecordRequest{PaymentMethod: PaymentMobileMoney, FulfillmentType: FulfillmentDelivery}},
		{name: "负价格", req: RecordRequest{SalePrice: -1, PaymentMethod: PaymentCash}, wantErr: ErrInvalidPrice},
		{name: "付款方式为空", req: RecordRequest{SalePrice: 1}, wantErr: ErrInvalidPayment},
		{name: "交付方式不合法", req: RecordRequest{PaymentMethod: PaymentCash, FulfillmentType: "drone"}, wantErr: ErrInvalidFulfillment},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			assert.ErrorIs(t, tc.req.Validate(), tc.wantErr)
		})
	}
}
