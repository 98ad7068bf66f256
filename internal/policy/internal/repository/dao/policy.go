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
	"time"

	"github.com/ego-component/egorm"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

var ErrRecordNotFound = gorm.ErrRecordNotFound

type PolicyDAO interface {
	Upsert(ctx context.Context, p Policy) error
	FindByType(ctx context.Context, typ string) (Policy, error)
	FindByTypes(ctx context.Context, types []string) ([]Policy, error)
	List(ctx context.Context) ([]Policy, error)
}

type GORMPolicyDAO struct {
	db *egorm.Component
}

func NewGORMPolicyDAO(db *egorm.Component) PolicyDAO {
	return &GORMPolicyDAO{db: db}
}

func (g *GORMPolicyDAO) Upsert(ctx context.Context, p Policy) error {
	now := time.Now().UnixMilli()
	p.Ctime, p.Utime = now, now
	return g.db.WithContext(ctx).Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "type"}},
		DoUpdates: clause.AssignmentColumns([]string{"title", "content", "effective_date", "updated_by", "utime"}),
	}).Create(&p).Error
}

func (g *GORMPolicyDAO) FindByType(ctx context.Context, typ string) (Policy, error) {
	var p Policy
	err := g.db.WithContext(ctx).Where("type = ?", typ).First(&p).Error
	return p, err
}

func (g *GORMPolicyDAO) FindByTypes(ctx context.Context, types []string) ([]Policy, error) {
	var res []Policy
	err := g.db.WithContext(ctx).Where("type IN ?", types).Find(&res).Error
	return res, err
}

func (g *GORMPolicyDAO) List(ctx context.Context) ([]Policy, error) {
	var res []Policy
	err := g.db.WithContext(ctx).Order("type ASC").Find(&res).Error
	return res, err
}

type Policy struct {
	Id            int64  `gorm:"primaryKey,autoIncrement"`
	Type          string `gorm:"type:varchar(16);uniqueIndex;not null;comment:warranty 或者 returns"`
	Title         string `gorm:"type:varchar(256)"`
	Content       string `gorm:"type:text;comment:清洗后的HTML"`
	EffectiveDate int64  `gorm:"comment:生效日期,毫秒"`
	UpdatedBy     int64
	Ctime         int64
	Utime         int64
}

func InitTables(db *egorm.Component) error {
	return db.AutoMigrate(&Policy{})
}
