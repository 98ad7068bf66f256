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

package dao

type PageView struct {
	Id        int64  `gorm:"primaryKey,autoIncrement"`
	ItemId    int64  `gorm:"index:idx_item_session_ctime,priority:1;not null"`
	SessionId string `gorm:"type:varchar(64);index:idx_item_session_ctime,priority:2;not null"`
	Referrer  string `gorm:"type:varchar(512)"`
	UserAgent string `gorm:"type:varchar(512)"`
	Ctime     int64  `gorm:"index:idx_item_session_ctime,priority:3;index"`
}

type Inquiry struct {
	Id          int64  `gorm:"primaryKey,autoIncrement"`
	ItemId      int64  `gorm:"index;not null"`
	SessionId   string `gorm:"type:varchar(64);not null"`
	Source      string `gorm:"type:varchar(16);not null;comment:whatsapp 或者 form"`
	Message     string `gorm:"type:text"`
	Referrer    string `gorm:"type:varchar(512)"`
	UtmSource   string `gorm:"type:varchar(128)"`
	UtmMedium   string `gorm:"type:varchar(128)"`
	UtmCampaign string `gorm:"type:varchar(128)"`
	Ctime       int64  `gorm:"index"`
}

type ItemCount struct {
	ItemId int64
	Cnt    int64
}
