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

import (
	"context"
	"errors"
	"time"

	"github.com/ego-component/egorm"
	"github.com/go-sql-driver/mysql"
	"gorm.io/gorm"
)

var (
	ErrStaffDuplicated = errors.New("员工已存在")
	ErrRecordNotFound  = gorm.ErrRecordNotFound
)

//go:generate mockgen -source=./staff.go -package=daomocks -destination=mocks/staff.mock.go StaffDAO
type StaffDAO interface {
	Insert(ctx context.Context, p StaffProfile) (int64, error)
	UpdateByUID(ctx context.Context, uid int64, fields map[string]any) error
	FindByUID(ctx context.Context, uid int64) (StaffProfile, error)
	FindByUIDs(ctx context.Context, uids []int64) ([]StaffProfile, error)
	List(ctx context.Context) ([]StaffProfile, error)
}

type GORMStaffDAO struct {
	db *egorm.Component
}

func NewGORMStaffDAO(db *egorm.Component) StaffDAO {
	return &GORMStaffDAO{db: db}
}

func (g *GORMStaffDAO) Insert(ctx context.Context, p StaffProfile) (int64, error) {
	now := time.Now().UnixMilli()
	p.Ctime, p.Utime = now, now
	err := g.db.WithContext(ctx).Create(&p).Error
	var me *mysql.MySQLError
	if errors.As(err, &me) {
		const uniqueIndexErrNo uint16 = 1062
		if me.Number == uniqueIndexErrNo {
			return 0, ErrStaffDuplicated
		}
	}
	return p.Id, err
}

func (g *GORMStaffDAO) UpdateByUID(ctx context.Context, uid int64, fields map[string]any) error {
	fields["utime"] = time.Now().UnixMilli()
	return g.db.WithContext(ctx).Model(&StaffProfile{}).Where("uid = ?", uid).Updates(fields).Error
}

func (g *GORMStaffDAO) FindByUID(ctx context.Context, uid int64) (StaffProfile, error) {
	var p StaffProfile
	err := g.db.WithContext(ctx).Where("uid = ?", uid).First(&p).Error
	return p, err
}

func (g *GORMStaffDAO) FindByUIDs(ctx context.Context, uids []int64) ([]StaffProfile, error) {
	var res []StaffProfile
	err := g.db.WithContext(ctx).Where("uid IN ?", uids).Find(&res).Error
	return res, err
}

func (g *GORMStaffDAO) List(ctx context.Context) ([]StaffProfile, error) {
	var res []StaffProfile
	err := g.db.WithContext(ctx).Order("full_name ASC").Find(&res).Error
	return res, err
}

type StaffProfile struct {
	Id       int64  `gorm:"primaryKey,autoIncrement"`
	Uid      int64  `gorm:"uniqueIndex;not null;comment:身份系统中的用户ID"`
	Email    string `gorm:"type:varchar(256);not null"`
	FullName string `gorm:"type:varchar(128)"`
	Role     string `gorm:"type:varchar(16);not null;default:'staff';comment:staff 或者 admin"`
	Ctime    int64
	Utime    int64
}

func (StaffProfile) TableName() string {
	return "staff_profiles"
}

func InitTables(db *egorm.Component) error {
	return db.AutoMigrate(&StaffProfile{})
}
