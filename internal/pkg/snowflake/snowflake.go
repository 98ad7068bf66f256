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
	"errors"
	"fmt"
	"strconv"

	"github.com/bwmarrin/snowflake"
	"github.com/ecodeclub/ekit/syncx"
)

const (
	maxNode uint = 31
	maxBiz  uint = 31
)

var (
	ErrExceedNode = errors.New("node超出限制")
	ErrExceedBiz  = errors.New("biz超出限制")
	ErrUnknownBiz = errors.New("未知的biz")
)

// +---------------------------------------------------------------------------------------+
// | 1 Bit Unused | 41 Bit Timestamp |  5 Bit BizID  | 5 Bit NodeID  |   12 Bit Sequence ID |
// +---------------------------------------------------------------------------------------+

// KeyGenerator 为不同业务生成全局唯一的事件 key
// 业务编号编码在 ID 里面，消费端可以据此反推事件来源
type KeyGenerator struct {
	// 键为 biz 编号
	nodes syncx.Map[uint, *snowflake.Node]
}

// NewKeyGenerator node 表示第几个节点，bizs 表示有几个业务，业务编号从 0 开始
func NewKeyGenerator(nodeID uint, bizs uint) (*KeyGenerator, error) {
	if nodeID > maxNode {
		return nil, fmt.Errorf("%w: %d", ErrExceedNode, nodeID)
	}
	if bizs > maxBiz+1 {
		return nil, fmt.Errorf("%w: %d", ErrExceedBiz, bizs)
	}
	g := &KeyGenerator{}
	for i := uint(0); i < bizs; i++ {
		n, err := snowflake.NewNode(int64(i<<5 | nodeID))
		if err != nil {
			return nil, err
		}
		g.nodes.Store(i, n)
	}
	return g, nil
}

type ID int64

func (g *KeyGenerator) Generate(biz uint) (ID, error) {
	n, ok := g.nodes.Load(biz)
	if !ok {
		return 0, fmt.Errorf("%w: %d", ErrUnknownBiz, biz)
	}
	return ID(n.Generate()), nil
}

func (f ID) Biz() uint {
	return uint(snowflake.ID(f).Node() >> 5)
}

func (f ID) String() string {
	return strconv.FormatInt(int64(f), 10)
}
