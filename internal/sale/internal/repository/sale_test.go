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


package repository

import (
	"context"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/ecodeclub/usedtech/internal/sale/internal/repository/dao"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	gormMysql "gorm.io/driver/mysql"
	"gorm.io/gorm"
)

func TestSaleRepository_LastSequence(t *testing.T) {
	testCases := []struct {
		name    string
		rows    *sqlmock.Rows
		want    int64
		wantErr bool
	}{
		{
			name: "没有收据号",
			rows: sqlmock.NewRows([]string{"receipt_number"}),
			want: 0,
		},
		{
			name: "解析序号",
			rows: sqlmock.NewRows([]string{"receipt_number"}).AddRow("RCP-2026-000128"),
			want: 128,
		},
		{
			name: "超过六位",
			rows: sqlmock.NewRows([]string{"receipt_number"}).AddRow("RCP-2026-1000001"),
			want: 1000001,
		},
		{
			name:    "格式不正确",
			rows:    sqlmock.NewRows([]string{"receipt_number"}).AddRow("RCP-2026-abc"),
			wantErr: true,
		},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			mockDB, mock, err := sqlmock.New()
			require.NoError(t, err)
			mock.ExpectQuery("SELECT `receipt_number` FROM `sales` WHERE receipt_number LIKE \\?.*").
				WillReturnRows(tc.rows)
			db, err := gorm.Open(gormMysql.New(gormMysql.Config{
				Conn:                      mockDB,
				SkipInitializeWithVersion: true,
			}), &gorm.Config{
				DisableAutomaticPing:   true,
				SkipDefaultTransaction: true,
			})
			require.NoError(t, err)
			repo := NewSaleRepository(dao.NewGORMSaleDAO(db))
			seq, err := repo.LastSequence(context.Background(), "RCP", 2026)
			if tc.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tc.want, seq)
		})
	}
}
