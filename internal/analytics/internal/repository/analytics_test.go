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
	"errors"
	"testing"
	"time"

	"github.com/ecodeclub/usedtech/internal/analytics/internal/domain"
	"github.com/ecodeclub/usedtech/internal/analytics/internal/repository/cache"
	cachemocks "github.com/ecodeclub/usedtech/internal/analytics/internal/repository/cache/mocks"
	"github.com/ecodeclub/usedtech/internal/analytics/internal/repository/dao"
	daomocks "github.com/ecodeclub/usedtech/internal/analytics/internal/repository/dao/mocks"
	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"
)

func TestAnalyticsRepository_LogView(t *testing.T) {
	now := time.Date(2025, 3, 14, 10, 0, 0, 0, time.UTC)
	since := now.Add(-domain.ViewDedupWindow)
	view := domain.View{ItemID: 1, SessionID: "s1", Ctime: now}
	testCases := []struct {
		name    string
		mock    func(ctrl *gomock.Controller) (dao.AnalyticsDAO, cache.ViewCache)
		want    bool
		wantErr error
	}{
		{
			name: "缓存命中直接去重",
			mock: func(ctrl *gomock.Controller) (dao.AnalyticsDAO, cache.ViewCache) {
				c := cachemocks.NewMockViewCache(ctrl)
				c.EXPECT().MarkView(gomock.Any(), int64(1), "s1").Return(false, nil)
				return daomocks.NewMockAnalyticsDAO(ctrl), c
			},
		},
		{
			name: "数据库里窗口内已有浏览",
			mock: func(ctrl *gomock.Controller) (dao.AnalyticsDAO, cache.ViewCache) {
				c := cachemocks.NewMockViewCache(ctrl)
				c.EXPECT().MarkView(gomock.Any(), int64(1), "s1").Return(true, nil)
				d := daomocks.NewMockAnalyticsDAO(ctrl)
				d.EXPECT().HasViewSince(gomock.Any(), int64(1), "s1", since.UnixMilli()).Return(true, nil)
				return d, c
			},
		},
		{
			name: "记录新的浏览",
			mock: func(ctrl *gomock.Controller) (dao.AnalyticsDAO, cache.ViewCache) {
				c := cachemocks.NewMockViewCache(ctrl)
				c.EXPECT().MarkView(gomock.Any(), int64(1), "s1").Return(true, nil)
				d := daomocks.NewMockAnalyticsDAO(ctrl)
				d.EXPECT().HasViewSince(gomock.Any(), int64(1), "s1", since.UnixMilli()).Return(false, nil)
				d.EXPECT().InsertView(gomock.Any(), dao.PageView{
					ItemId:    1,
					SessionId: "s1",
					Ctime:     now.UnixMilli(),
				}).Return(nil)
				return d, c
			},
			want: true,
		},
		{
			name: "缓存不可用时以数据库为准",
			mock: func(ctrl *gomock.Controller) (dao.AnalyticsDAO, cache.ViewCache) {
				c := cachemocks.NewMockViewCache(ctrl)
				c.EXPECT().MarkView(gomock.Any(), int64(1), "s1").Return(false, errors.New("redis down"))
				d := daomocks.NewMockAnalyticsDAO(ctrl)
				d.EXPECT().HasViewSince(gomock.Any(), int64(1), "s1", since.UnixMilli()).Return(false, nil)
				d.EXPECT().InsertView(gomock.Any(), gomock.Any()).Return(nil)
				return d, c
			},
			want: true,
		},
		{
			name: "写入失败清理缓存标记",
			mock: func(ctrl *gomock.Controller) (dao.AnalyticsDAO, cache.ViewCache) {
				c := cachemocks.NewMockViewCache(ctrl)
				c.EXPECT().MarkView(gomock.Any(), int64(1), "s1").Return(true, nil)
				c.EXPECT().UnmarkView(gomock.Any(), int64(1), "s1").Return(nil)
				d := daomocks.NewMockAnalyticsDAO(ctrl)
				d.EXPECT().HasViewSince(gomock.Any(), int64(1), "s1", since.UnixMilli()).Return(false, nil)
				d.EXPECT().InsertView(gomock.Any(), gomock.Any()).Return(errors.New("mock db error"))
				return d, c
			},
			wantErr: errors.New("mock db error"),
		},
	}
	for _, tc := range testCases {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()
			d, c := tc.mock(ctrl)
			ok, err := NewAnalyticsRepository(d, c).LogView(context.Background(), view, since)
			assert.Equal(t, tc.wantErr, err)
			assert.Equal(t, tc.want, ok)
		})
	}
}
