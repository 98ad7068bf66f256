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
	"net/url"
	"strings"
	"time"
)

// StoreConfig 店铺级别的配置，来自 store 配置项
type StoreConfig struct {
	// ShowReturned 店面是否展示已退回的商品
	ShowReturned bool `yaml:"showReturned"`
	// HoldHours 预留默认持续多少小时
	HoldHours      int    `yaml:"holdHours"`
	WhatsAppNumber string `yaml:"whatsappNumber"`
	Currency       string `yaml:"currency"`
}

const defaultHoldHours = 48

func (c StoreConfig) HoldDuration() time.Duration {
	if c.HoldHours <= 0 {
		return defaultHoldHours * time.Hour
	}
	return time.Duration(c.HoldHours) * time.Hour
}

// PublicExcludedStatuses 店面列表里不展示的状态
func (c StoreConfig) PublicExcludedStatuses() []Status {
	if c.ShowReturned {
		return nil
	}
	return []Status{StatusReturned}
}

// WhatsAppLink 商品详情页上的咨询链接，号码没有配置时返回空
func (c StoreConfig) WhatsAppLink(item Item) string {
	number := strings.Map(func(r rune) rune {
		if r >= '0' && r <= '9' {
			return r
		}
		return -1
	}, c.WhatsAppNumber)
	if number == "" {
		return ""
	}
	text := fmt.Sprintf("Hi, I'm interested in %s (%s)", item.Title, item.SKU)
	return "https://wa.me/" + number + "?text=" + strings.ReplaceAll(url.QueryEscape(text), "+", "%20")
}
