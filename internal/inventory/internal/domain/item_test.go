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

	"github.com/stretchr/testify/assert"
)

func TestGenerateSKU(t *testing.T) {
	testCases := []struct {
		name     string
		category Category
		year     int
		seq      int64
		want     string
	}{
		{name: "笔记本", category: CategoryLaptop, year: 2024, seq: 7, want: "LAP-2024-007"},
		{name: "台式机", category: CategoryDesktop, year: 2025, seq: 1, want: "DSK-2025-001"},
		{name: "平板", category: CategoryTablet, year: 2024, seq: 42, want: "TAB-2024-042"},
		{name: "手机", category: CategoryPhone, year: 2024, seq: 100, want: "PHN-2024-100"},
		{name: "配件超过三位", category: CategoryAccessory, year: 2024, seq: 1234, want: "ACC-2024-1234"},
		{name: "其它", category: CategoryOther, year: 2024, seq: 3, want: "OTH-2024-003"},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, GenerateSKU(tc.category, tc.year, tc.seq))
		})
	}
}

func TestGenerateSlug(t *testing.T) {
	testCases := []struct {
		name  string
		title string
		sku   string
		want  string
	}{
		{name: "普通标题", title: "MacBook Pro 14 M1", sku: "LAP-2024-007", want: "macbook-pro-14-m1-lap-2024-007"},
		{name: "特殊字符", title: "Dell XPS 13 (2020) / 16GB", sku: "LAP-2024-008", want: "dell-xps-13-2020-16gb-lap-2024-008"},
		{name: "空标题", title: "", sku: "OTH-2024-001", want: "oth-2024-001"},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, GenerateSlug(tc.title, tc.sku))
		})
	}
}

func TestItemPatch_Validate(t *testing.T) {
	sold := StatusSold
	hold := StatusOnHold
	bad := Status("LOST")
	empty := ""
	negative := int64(-1)
	testCases := []struct {
		name    string
		patch   ItemPatch
		wantErr error
	}{
		{name: "不能直接改成已售", patch: ItemPatch{Status: &sold}, wantErr: ErrSoldViaUpdate},
		{name: "可以改成预留", patch: ItemPatch{Status: &hold}},
		{name: "未知状态", patch: ItemPatch{Status: &bad}, wantErr: ErrInvalidStatus},
		{name: "标题为空", patch: ItemPatch{Title: &empty}, wantErr: ErrTitleRequired},
		{name: "负价格", patch: ItemPatch{PublicPrice: &negative}, wantErr: ErrInvalidPrice},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			assert.ErrorIs(t, tc.patch.Validate(), tc.wantErr)
		})
	}
}

func TestFormatPrice(t *testing.T) {
	assert.Equal(t, "1299.00", FormatPrice(129900))
	assert.Equal(t, "0.05", FormatPrice(5))
	assert.Equal(t, "0.00", FormatPrice(0))
}

func TestStoreConfig_WhatsAppLink(t *testing.T) {
	item := Item{Title: "iPhone 12", SKU: "PHN-2024-001"}
	testCases := []struct {
		name   string
		number string
		want   string
	}{
		{
			name:   "去掉号码中的符号",
			number: "+233 (20) 123-4567",
			want:   "https://wa.me/233201234567?text=Hi%2C%20I%27m%20interested%20in%20iPhone%2012%20%28PHN-2024-001%29",
		},
		{
			name: "没有配置号码",
			want: "",
		},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			cfg := StoreConfig{WhatsAppNumber: tc.number}
			assert.Equal(t, tc.want, cfg.WhatsAppLink(item))
		})
	}
}

func TestStoreConfig_PublicExcludedStatuses(t *testing.T) {
	assert.Equal(t, []Status{StatusReturned}, StoreConfig{}.PublicExcludedStatuses())
	assert.Nil(t, StoreConfig{ShowReturned: true}.PublicExcludedStatuses())
}
