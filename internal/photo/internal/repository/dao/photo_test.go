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
	"database/sql"
	"errors"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	gormMysql "gorm.io/driver/mysql"
	"gorm.io/gorm"
)

func TestGORMPhotoDAO_Append(t *testing.T) {
	testCases := []struct {
		name         string
		mock         func(t *testing.T) *sql.DB
		wantErr      error
		wantPosition int
	}{
		{
			name: "商品不存在",
			mock: func(t *testing.T) *sql.DB {
				mockDB, mock, err := sqlmock.New()
				require.NoError(t, err)
				mock.ExpectBegin()
				mock.ExpectQuery("SELECT `id` FROM `inventory_items` WHERE id = \\? .*FOR UPDATE").
					WillReturnRows(sqlmock.NewRows([]string{"id"}))
				mock.ExpectRollback()
				return mockDB
			},
			wantErr: ErrItemNotFound,
		},
		{
			name: "已经有 5 张",
			mock: func(t *testing.T) *sql.DB {
				mockDB, mock, err := sqlmock.New()
				require.NoError(t, err)
				mock.ExpectBegin()
				mock.ExpectQuery("SELECT `id` FROM `inventory_items` .*FOR UPDATE").
					WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow(1))
				mock.ExpectQuery("SELECT count\\(\\*\\) FROM `item_photos`.*").
					WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(5))
				mock.ExpectRollback()
				return mockDB
			},
			wantErr: ErrPhotoLimitExceeded,
		},
		{
			name: "插入失败",
			mock: func(t *testing.T) *sql.DB {
				mockDB, mock, err := sqlmock.New()
				require.NoError(t, err)
				mock.ExpectBegin()
				mock.ExpectQuery("SELECT `id` FROM `inventory_items` .*FOR UPDATE").
					WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow(1))
				mock.ExpectQuery("SELECT count\\(\\*\\) FROM `item_photos`.*").
					WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(2))
				mock.ExpectExec("INSERT INTO `item_photos` .*").
					WillReturnError(errors.New("数据库错误"))
				mock.ExpectRollback()
				return mockDB
			},
			wantErr:      errors.New("数据库错误"),
			wantPosition: 2,
		},
		{
			name: "追加到末尾",
			mock: func(t *testing.T) *sql.DB {
				mockDB, mock, err := sqlmock.New()
				require.NoError(t, err)
				mock.ExpectBegin()
				mock.ExpectQuery("SELECT `id` FROM `inventory_items` .*FOR UPDATE").
					WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow(1))
				mock.ExpectQuery("SELECT count\\(\\*\\) FROM `item_photos`.*").
					WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(3))
				mock.ExpectExec("INSERT INTO `item_photos` .*").
					WillReturnResult(sqlmock.NewResult(9, 1))
				mock.ExpectCommit()
				return mockDB
			},
			wantPosition: 3,
		},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			db, err := gorm.Open(gormMysql.New(gormMysql.Config{
				Conn:                      tc.mock(t),
				SkipInitializeWithVersion: true,
			}), &gorm.Config{
				DisableAutomaticPing:   true,
				SkipDefaultTransaction: true,
			})
			require.NoError(t, err)
			p, err := NewGORMPhotoDAO(db).Append(context.Background(), ItemPhoto{
				ItemId:   1,
				AssetKey: "inventory/1/a.jpg",
				Url:      "https://cdn.example.com/inventory/1/a.jpg",
			}, 5)
			assert.Equal(t, tc.wantErr, err)
			if err == nil {
				assert.Equal(t, int64(9), p.Id)
				assert.Equal(t, tc.wantPosition, p.Position)
			}
		})
	}
}

func newPhotoTestDB(t *testing.T) (*gorm.DB, sqlmock.Sqlmock) {
	t.Helper()
	mockDB, mock, err := sqlmock.New()
	require.NoError(t, err)
	db, err := gorm.Open(gormMysql.New(gormMysql.Config{
		Conn:                      mockDB,
		SkipInitializeWithVersion: true,
	}), &gorm.Config{
		DisableAutomaticPing:   true,
		SkipDefaultTransaction: true,
	})
	require.NoError(t, err)
	return db, mock
}

func photoRows() *sqlmock.Rows {
	return sqlmock.NewRows([]string{"id", "item_id", "asset_key", "url", "position"})
}

func TestGORMPhotoDAO_DeleteAndRenumber(t *testing.T) {
	testCases := []struct {
		name    string
		mock    func(mock sqlmock.Sqlmock)
		wantErr error
	}{
		{
			name: "图片不存在",
			mock: func(mock sqlmock.Sqlmock) {
				mock.ExpectBegin()
				mock.ExpectQuery("SELECT \\* FROM `item_photos` WHERE id = \\?.*").
					WillReturnRows(photoRows())
				mock.ExpectRollback()
			},
			wantErr: ErrRecordNotFound,
		},
		{
			name: "删除中间的图片，后面的依次前移",
			mock: func(mock sqlmock.Sqlmock) {
				mock.ExpectBegin()
				mock.ExpectQuery("SELECT \\* FROM `item_photos` WHERE id = \\?.*").
					WillReturnRows(photoRows().AddRow(11, 1, "k11", "u11", 1))
				mock.ExpectQuery("SELECT `id` FROM `inventory_items` WHERE id = \\? .*FOR UPDATE").
					WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow(1))
				mock.ExpectExec("DELETE FROM `item_photos` WHERE id = \\?").
					WithArgs(11).
					WillReturnResult(sqlmock.NewResult(0, 1))
				mock.ExpectQuery("SELECT \\* FROM `item_photos` WHERE item_id = \\? ORDER BY position ASC").
					WillReturnRows(photoRows().
						AddRow(10, 1, "k10", "u10", 0).
						AddRow(12, 1, "k12", "u12", 2).
						AddRow(13, 1, "k13", "u13", 3))
				// 位置没变的 10 不更新
				mock.ExpectExec("UPDATE `item_photos` SET `position`=\\?,`utime`=\\? WHERE id = \\?").
					WithArgs(1, sqlmock.AnyArg(), 12).
					WillReturnResult(sqlmock.NewResult(0, 1))
				mock.ExpectExec("UPDATE `item_photos` SET `position`=\\?,`utime`=\\? WHERE id = \\?").
					WithArgs(2, sqlmock.AnyArg(), 13).
					WillReturnResult(sqlmock.NewResult(0, 1))
				mock.ExpectCommit()
			},
		},
		{
			name: "重新编号失败，删除也回滚",
			mock: func(mock sqlmock.Sqlmock) {
				mock.ExpectBegin()
				mock.ExpectQuery("SELECT \\* FROM `item_photos` WHERE id = \\?.*").
					WillReturnRows(photoRows().AddRow(11, 1, "k11", "u11", 0))
				mock.ExpectQuery("SELECT `id` FROM `inventory_items` .*FOR UPDATE").
					WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow(1))
				mock.ExpectExec("DELETE FROM `item_photos` WHERE id = \\?").
					WillReturnResult(sqlmock.NewResult(0, 1))
				mock.ExpectQuery("SELECT \\* FROM `item_photos` WHERE item_id = \\?.*").
					WillReturnRows(photoRows().AddRow(12, 1, "k12", "u12", 1))
				mock.ExpectExec("UPDATE `item_photos` SET .*").
					WillReturnError(errors.New("数据库错误"))
				mock.ExpectRollback()
			},
			wantErr: errors.New("数据库错误"),
		},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			db, mock := newPhotoTestDB(t)
			tc.mock(mock)
			err := NewGORMPhotoDAO(db).DeleteAndRenumber(context.Background(), 11)
			assert.Equal(t, tc.wantErr, err)
			assert.NoError(t, mock.ExpectationsWereMet())
		})
	}
}

func TestGORMPhotoDAO_Reorder(t *testing.T) {
	testCases := []struct {
		name    string
		ids     []int64
		mock    func(mock sqlmock.Sqlmock)
		wantErr error
	}{
		{
			name: "包含别的商品的图片，不更新任何位置",
			ids:  []int64{11, 99},
			mock: func(mock sqlmock.Sqlmock) {
				mock.ExpectBegin()
				mock.ExpectQuery("SELECT `id` FROM `inventory_items` .*FOR UPDATE").
					WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow(1))
				mock.ExpectQuery("SELECT `id` FROM `item_photos` WHERE item_id = \\?").
					WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow(10).AddRow(11))
				mock.ExpectRollback()
			},
			wantErr: ErrInvalidOrder,
		},
		{
			name: "漏掉一张图片",
			ids:  []int64{11},
			mock: func(mock sqlmock.Sqlmock) {
				mock.ExpectBegin()
				mock.ExpectQuery("SELECT `id` FROM `inventory_items` .*FOR UPDATE").
					WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow(1))
				mock.ExpectQuery("SELECT `id` FROM `item_photos` WHERE item_id = \\?").
					WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow(10).AddRow(11))
				mock.ExpectRollback()
			},
			wantErr: ErrInvalidOrder,
		},
		{
			name: "按照给定顺序编号",
			ids:  []int64{11, 10},
			mock: func(mock sqlmock.Sqlmock) {
				mock.ExpectBegin()
				mock.ExpectQuery("SELECT `id` FROM `inventory_items` .*FOR UPDATE").
					WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow(1))
				mock.ExpectQuery("SELECT `id` FROM `item_photos` WHERE item_id = \\?").
					WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow(10).AddRow(11))
				mock.ExpectExec("UPDATE `item_photos` SET `position`=\\?,`utime`=\\? WHERE id = \\?").
					WithArgs(0, sqlmock.AnyArg(), 11).
					WillReturnResult(sqlmock.NewResult(0, 1))
				mock.ExpectExec("UPDATE `item_photos` SET `position`=\\?,`utime`=\\? WHERE id = \\?").
					WithArgs(1, sqlmock.AnyArg(), 10).
					WillReturnResult(sqlmock.NewResult(0, 1))
				mock.ExpectCommit()
			},
		},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			db, mock := newPhotoTestDB(t)
			tc.mock(mock)
			err := NewGORMPhotoDAO(db).Reorder(context.Background(), 1, tc.ids)
			assert.ErrorIs(t, err, tc.wantErr)
			assert.NoError(t, mock.ExpectationsWereMet())
		})
	}
}
