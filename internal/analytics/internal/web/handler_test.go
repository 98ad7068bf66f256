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

import (
	"bytes"
	"net/http"
	"testing"

	"github.com/ecodeclub/ekit/iox"
	"github.com/ecodeclub/usedtech/internal/analytics/internal/domain"
	analyticsmocks "github.com/ecodeclub/usedtech/internal/analytics/mocks"
	"github.com/ecodeclub/usedtech/internal/test"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func TestHandler_Session(t *testing.T) {
	ctrl := gomock.NewController(t)
	server := gin.New()
	NewHandler(analyticsmocks.NewMockService(ctrl)).PublicRoutes(server)

	existing := uuid.NewString()
	testCases := []struct {
		name     string
		req      SessionReq
		wantSame bool
	}{
		{name: "没有会话时生成新的", req: SessionReq{}},
		{name: "不合法的会话重新生成", req: SessionReq{SessionID: "not-a-uuid"}},
		{name: "合法的会话原样返回", req: SessionReq{SessionID: existing}, wantSame: true},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			req, err := http.NewRequest(http.MethodPost, "/session", iox.NewJSONReader(tc.req))
			require.NoError(t, err)
			req.Header.Set("content-type", "application/json")
			recorder := test.NewJSONResponseRecorder[SessionResp]()
			server.ServeHTTP(recorder, req)
			require.Equal(t, http.StatusOK, recorder.Code)
			res := recorder.MustScan()
			_, err = uuid.Parse(res.Data.SessionID)
			require.NoError(t, err)
			if tc.wantSame {
				assert.Equal(t, existing, res.Data.SessionID)
			} else {
				assert.NotEqual(t, tc.req.SessionID, res.Data.SessionID)
			}
		})
	}
}

func TestHandler_LogView(t *testing.T) {
	ctrl := gomock.NewController(t)
	svc := analyticsmocks.NewMockService(ctrl)
	svc.EXPECT().LogView(gomock.Any(), domain.View{
		ItemID:    1,
		SessionID: "s1",
		Referrer:  "https://google.com",
		UserAgent: "test-agent",
	}).Return(false, nil)
	server := gin.New()
	NewHandler(svc).PublicRoutes(server)

	req, err := http.NewRequest(http.MethodPost, "/analytics/view",
		bytes.NewBufferString(`{"itemId":1,"sessionId":"s1"}`))
	require.NoError(t, err)
	req.Header.Set("content-type", "application/json")
	req.Header.Set("Referer", "https://google.com")
	req.Header.Set("User-Agent", "test-agent")
	recorder := test.NewJSONResponseRecorder[ViewResp]()
	server.ServeHTTP(recorder, req)
	require.Equal(t, http.StatusOK, recorder.Code)
	assert.False(t, recorder.MustScan().Data.Recorded)
}
