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

import "github.com/ecodeclub/usedtech/internal/staff/internal/domain"

type CreateReq struct {
	UID      int64  `json:"uid" binding:"required"`
	Email    string `json:"email" binding:"required,email"`
	FullName string `json:"fullName"`
	Role     string `json:"role"`
}

type UpdateReq struct {
	UID      int64   `json:"uid" binding:"required"`
	FullName *string `json:"fullName"`
	Role     *string `json:"role"`
}

type Profile struct {
	UID      int64  `json:"uid"`
	Email    string `json:"email"`
	FullName string `json:"fullName"`
	Role     string `json:"role"`
	Ctime    int64  `json:"ctime"`
}

func newProfile(p domain.Profile) Profile {
	return Profile{
		UID:      p.UID,
		Email:    p.Email,
		FullName: p.FullName,
		Role:     string(p.Role),
		Ctime:    p.Ctime.UnixMilli(),
	}
}
