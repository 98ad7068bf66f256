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

package snowflake

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewKeyGenerator(t *testing.T) {
	testcases := []struct {
		name        string
		nodeID      uint
		bizs        uint
		wantErrFunc require.ErrorAssertionFunc
	}{
		{
			name:   "nodeID超出限制",
			nodeID: 32,
			bizs:   6,
			wantErrFunc: func(t require.TestingT, err error, _ ...interface{}) {
				require.ErrorIs(t, err, ErrExceedNode)
			},
		},
		{
			name:   "biz超出限制",
			nodeID: 3,
			bizs:   33,
			wantErrFunc: func(t require.TestingT, err error, _ ...interface{}) {
				require.ErrorIs(t, err, ErrExceedBiz)
			},
		},
		{
			name:        "生成正常",
			nodeID:      0,
			bizs:        6,
			wantErrFunc: require.NoError,
		},
	}
	for _, tt := range testcases {
		t.Run(tt.name, func(t *testing.T) {
			_, err := NewKeyGenerator(tt.nodeID, tt.bizs)
			tt.wantErrFunc(t, err)
		})
	}
}

func TestKeyGenerator_Generate(t *testing.T) {
	g, err := NewKeyGenerator(1, 6)
	require.NoError(t, err)

	seen := make(map[ID]struct{}, 6*10000)
	for biz := uint(0); biz < 6; biz++ {
		for j := 0; j < 10000; j++ {
			id, err := g.Generate(biz)
			require.NoError(t, err)
			_, ok := seen[id]
			require.False(t, ok)
			seen[id] = struct{}{}
			require.Equal(t, biz, id.Biz())
		}
	}

	_, err = g.Generate(6)
	assert.ErrorIs(t, err, ErrUnknownBiz)
}
