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
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	gormMysql "gorm.io/driver/mysql"
	"gorm.io/gorm"
)

func newTestDB(t *testing.T, conn *sql.DB) *gorm.DB {
	db, err := gorm.Open(gormMysql.New(gormMysql.Config{
		Conn:                      conn,
		SkipInitializeWithVersion: true,
	}), &gorm.Config{
		DisableAutomaticPing:   true,
		SkipDefaultTransaction: true,
	})
	require.NoError(t, err)
	return db
}

func TestGORMAnalyticsDAO_HasViewSince(t *testing.T) {
	testCases := []struct {
		name string
		rows *sqlmock.Rows
		want bool
	}{
		{
			name: "窗口内已有浏览",
			rows: sqlmock.NewRows([]string{"id"}).AddRow(3),
			want: true,
		},
		{
			name: "窗口内没有浏览",
			rows: sqlmock.NewRows([]string{"id"}),
		},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			mockDB, mock, err := sqlmock.New()
			require.NoError(t, err)
			mock.ExpectQuery("SELECT .* FROM `page_views` WHERE .*").WillReturnRows(tc.rows)
			ok, err := NewGORMAnalyticsDAO(newTestDB(t, mockDB)).
				HasViewSince(context.Background(), 1, "session", 1000)
			require.NoError(t, err)
			assert.Equal(t, tc.want, ok)
		})
	}
}

func TestGORMAnalyticsDAO_TopViewedSince(t *testing.T) {
	testCases := []struct {
		name    string
		rows    *sqlmock.Rows
		want    ItemCount
		wantErr error
	}{
		{
			name:    "没有浏览",
			rows:    sqlmock.NewRows([]string{"item_id", "cnt"}),
			wantErr: ErrRecordNotFound,
		},
		{
			name: "浏览最多的商品",
			rows: sqlmock.NewRows([]string{"item_id", "cnt"}).AddRow(7, 42),
			want: ItemCount{ItemId: 7, Cnt: 42},
		},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			mockDB, mock, err := sqlmock.New()
			require.NoError(t, err)
			mock.ExpectQuery("SELECT item_id, COUNT\\(\\*\\) AS cnt FROM `page_views` .*").WillReturnRows(tc.rows)
			res, err := NewGORMAnalyticsDAO(newTestDB(t, mockDB)).TopViewedSince(context.Background(), 1000)
			assert.Equal(t, tc.wantErr, err)
			assert.Equal(t, tc.want, res)
		})
	}
}

func TestGORMAnalyticsDAO_ViewCountsSince(t *testing.T) {
	mockDB, mock, err := sqlmock.New()
	require.NoError(t, err)
	d := NewGORMAnalyticsDAO(newTestDB(t, mockDB))

	res, err := d.ViewCountsSince(context.Background(), nil, 1000)
	require.NoError(t, err)
	assert.Empty(t, res)

	mock.ExpectQuery("SELECT item_id, COUNT\\(\\*\\) AS cnt FROM `page_views` WHERE .* GROUP BY `item_id`").
		WillReturnRows(sqlmock.NewRows([]string{"item_id", "cnt"}).AddRow(1, 5).AddRow(2, 1))
	res, err = d.ViewCountsSince(context.Background(), []int64{1, 2, 3}, 1000)
	require.NoError(t, err)
	assert.Equal(t, []ItemCount{{ItemId: 1, Cnt: 5}, {ItemId: 2, Cnt: 1}}, res)
	require.NoError(t, mock.ExpectationsWereMet())
}
