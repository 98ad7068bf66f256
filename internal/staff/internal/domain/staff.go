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

type Role string

const (
	RoleStaff Role = "staff"
	RoleAdmin Role = "admin"
)

func (r Role) IsValid() bool {
	return r == RoleStaff || r == RoleAdmin
}

// Profile 员工档案，UID 与身份系统中的用户一一对应
type Profile struct {
	ID       int64
	UID      int64
	Email    string
	FullName string
	Role     Role
	Ctime    time.Time
	Utime    time.Time
}

// ProfileChange 部分更新，nil 表示不修改
type ProfileChange struct {
	UID      int64
	FullName *string
	Role     *Role
}
