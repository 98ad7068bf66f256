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

package service

import (
	"context"
	"errors"
	"testing"

	"github.com/ecodeclub/usedtech/internal/audit"
	auditmocks "github.com/ecodeclub/usedtech/internal/audit/mocks"
	"github.com/ecodeclub/usedtech/internal/policy/internal/domain"
	repomocks "github.com/ecodeclub/usedtech/internal/policy/internal/repository/mocks"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func TestSanitizer(t *testing.T) {
	testCases := []struct {
		name  string
		input string
		want  string
	}{
		{
			name:  "保留标题和段落",
			input: "<h2>保修</h2><h3>范围</h3><p>90 天</p>",
			want:  "<h2>保修</h2><h3>范围</h3><p>90 天</p>",
		},
		{
			name:  "去掉脚本",
			input: `<p>ok</p><script>alert(1)</script>`,
			want:  "<p>ok</p>",
		},
		{
			name:  "链接只保留允许的属性",
			input: `<a href="https://example.com" target="_blank" rel="noopener" onclick="x()">link</a>`,
			want:  `<a href="https://example.com" target="_blank" rel="noopener">link</a>`,
		},
		{
			name:  "去掉 h1",
			input: "<h1>大标题</h1>",
			want:  "大标题",
		},
	}
	s := newSanitizer()
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, s.Sanitize(tc.input))
		})
	}
}

func TestService_Snapshot(t *testing.T) {
	testCases := []struct {
		name         string
		policies     []domain.Policy
		repoErr      error
		wantWarranty *string
		wantReturns  *string
		wantErr      bool
	}{
		{
			name: "两项都有",
			policies: []domain.Policy{
				{Type: domain.TypeWarranty, Content: "<p>90 天保修</p>"},
				{Type: domain.TypeReturns, Content: "<p>7 天无理由</p>"},
			},
			wantWarranty: strPtr("<p>90 天保修</p>"),
			wantReturns:  strPtr("<p>7 天无理由</p>"),
		},
		{
			name: "缺少退货政策",
			policies: []domain.Policy{
				{Type: domain.TypeWarranty, Content: "<p>90 天保修</p>"},
			},
			wantWarranty: strPtr("<p>90 天保修</p>"),
		},
		{
			name: "都没有",
		},
		{
			name: "内容被清空的政策视为没有",
			policies: []domain.Policy{
				{Type: domain.TypeWarranty, Content: ""},
				{Type: domain.TypeReturns, Content: "<p>7 天无理由</p>"},
			},
			wantReturns: strPtr("<p>7 天无理由</p>"),
		},
		{
			name: "只有空白",
			policies: []domain.Policy{
				{Type: domain.TypeWarranty, Content: "  \n"},
			},
		},
		{
			name:    "读取失败",
			repoErr: errors.New("db 错误"),
			wantErr: true,
		},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()
			repo := repomocks.NewMockPolicyRepository(ctrl)
			repo.EXPECT().FindByTypes(gomock.Any(), domain.TypeWarranty, domain.TypeReturns).
				Return(tc.policies, tc.repoErr)
			snapshot, err := NewService(repo, auditmocks.NewMockService(ctrl)).Snapshot(context.Background())
			if tc.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tc.wantWarranty, snapshot.Warranty)
			assert.Equal(t, tc.wantReturns, snapshot.Returns)
		})
	}
}

func TestService_Update(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	repo := repomocks.NewMockPolicyRepository(ctrl)
	auditSvc := auditmocks.NewMockService(ctrl)
	repo.EXPECT().Save(gomock.Any(), gomock.Any()).
		DoAndReturn(func(ctx context.Context, p domain.Policy) error {
			assert.Equal(t, "<p>ok</p>", p.Content)
			assert.Equal(t, int64(5), p.UpdatedBy)
			return nil
		})
	auditSvc.EXPECT().Record(gomock.Any(), gomock.Any()).
		DoAndReturn(func(ctx context.Context, evt audit.Event) error {
			assert.Equal(t, audit.ActionPolicyUpdated, evt.Action)
			assert.Equal(t, "returns", evt.EntityID)
			return nil
		})

	svc := NewService(repo, auditSvc)
	err := svc.Update(context.Background(), domain.Policy{
		Type:    domain.TypeReturns,
		Title:   "退货政策",
		Content: "<p>ok</p><script>x</script>",
	}, 5)
	require.NoError(t, err)

	err = svc.Update(context.Background(), domain.Policy{Type: "shipping"}, 5)
	assert.ErrorIs(t, err, ErrInvalidType)
}

func strPtr(s string) *string {
	return &s
}
