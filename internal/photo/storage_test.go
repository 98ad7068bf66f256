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


package photo

import (
	"testing"

	"github.com/ecodeclub/usedtech/internal/photo/internal/storage"
	"github.com/gotomicro/ego/core/econf"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestInitStorage(t *testing.T) {
	testCases := []struct {
		name       string
		cos        map[string]any
		wantStore  any
		wantIssuer any
	}{
		{
			name:       "没有配置存储桶",
			cos:        map[string]any{"cdnDomain": "https://cdn.example.com"},
			wantStore:  &storage.MemoryStorage{},
			wantIssuer: storage.UnavailableIssuer{},
		},
		{
			name: "配置了存储桶",
			cos: map[string]any{
				"secretID":  "id",
				"secretKey": "key",
				"appID":     "1250000000",
				"bucket":    "photos",
				"region":    "ap-guangzhou",
			},
			wantStore:  &storage.COSStorage{},
			wantIssuer: &storage.STSIssuer{},
		},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			econf.Set("cos", tc.cos)
			cfg, err := initCOSConfig()
			require.NoError(t, err)
			store, err := initImageStorage(cfg)
			require.NoError(t, err)
			assert.IsType(t, tc.wantStore, store)
			assert.IsType(t, tc.wantIssuer, initCredentialIssuer(cfg))
		})
	}
}

func TestInitStorage_MemoryURL(t *testing.T) {
	store, err := initImageStorage(storage.COSConfig{CDNDomain: "https://cdn.example.com"})
	require.NoError(t, err)
	assert.Equal(t, "https://cdn.example.com/inventory/1/a.jpg", store.URL("inventory/1/a.jpg"))
}
