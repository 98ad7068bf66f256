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

import "github.com/ecodeclub/usedtech/internal/photo/internal/domain"

type ItemReq struct {
	ItemID int64 `json:"itemId" binding:"required"`
}

type IDReq struct {
	ID int64 `json:"id" binding:"required"`
}

type ReorderReq struct {
	ItemID int64   `json:"itemId" binding:"required"`
	IDs    []int64 `json:"ids"`
}

type CredentialReq struct {
	ItemID      int64  `json:"itemId" binding:"required"`
	ContentType string `json:"contentType" binding:"required"`
}

type RegisterReq struct {
	ItemID  int64  `json:"itemId" binding:"required"`
	Key     string `json:"key" binding:"required"`
	AltText string `json:"altText"`
}

type Photo struct {
	ID       int64  `json:"id"`
	ItemID   int64  `json:"itemId"`
	URL      string `json:"url"`
	AltText  string `json:"altText"`
	Position int    `json:"position"`
	Ctime    int64  `json:"ctime"`
}

func newPhoto(p domain.Photo) Photo {
	return Photo{
		ID:       p.ID,
		ItemID:   p.ItemID,
		URL:      p.URL,
		AltText:  p.AltText,
		Position: p.Position,
		Ctime:    p.Ctime.UnixMilli(),
	}
}

type Credential struct {
	SecretID     string `json:"secretId"`
	SecretKey    string `json:"secretKey"`
	SessionToken string `json:"sessionToken"`
	StartTime    int64  `json:"startTime"`
	ExpiredTime  int64  `json:"expiredTime"`
	Bucket       string `json:"bucket"`
	Region       string `json:"region"`
	KeyPrefix    string `json:"keyPrefix"`
}
