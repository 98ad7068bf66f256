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

package middleware

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/ecodeclub/ginx"
	"github.com/ecodeclub/usedtech/internal/test"
	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCheckRoleMiddlewareBuilder_Build(t *testing.T) {
	testCases := []struct {
		name     string
		role     string
		allowed  []string
		wantCode int
	}{
		{
			name:     "员工访问员工接口",
			role:     RoleStaff,
			allowed:  []string{RoleStaff, RoleAdmin},
			wantCode: http.StatusOK,
		},
		{
			name:     "管理员访问管理员接口",
			role:     RoleAdmin,
			allowed:  []string{RoleAdmin},
			wantCode: http.StatusOK,
		},
		{
			name:     "员工访问管理员接口",
			role:     RoleStaff,
			allowed:  []string{RoleAdmin},
			wantCode: http.StatusForbidden,
		},
		{
			name:     "没有角色",
			role:     "",
			allowed:  []string{RoleStaff, RoleAdmin},
			wantCode: http.StatusForbidden,
		},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			builder := NewCheckRoleMiddlewareBuilder()
			builder.sp = &test.SessionProvider{}

			server := gin.New()
			server.Use(test.LoginAs(123, tc.role))
			server.GET("/admin/ping", builder.Build(tc.allowed...), func(ctx *gin.Context) {
				ctx.String(http.StatusOK, "pong")
			})

			recorder := httptest.NewRecorder()
			req := httptest.NewRequest(http.MethodGet, "/admin/ping", nil)
			server.ServeHTTP(recorder, req)
			require.Equal(t, tc.wantCode, recorder.Code)
			if tc.wantCode != http.StatusForbidden {
				return
			}
			var res ginx.Result
			require.NoError(t, json.Unmarshal(recorder.Body.Bytes(), &res))
			assert.Equal(t, ForbiddenResult.Code, res.Code)
		})
	}
}
