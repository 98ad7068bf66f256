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

package job

import (
	"context"
	"fmt"
	"time"

	"github.com/ecodeclub/usedtech/internal/inventory/internal/service"
	"github.com/gotomicro/ego/core/elog"
)

// ReleaseExpiredHoldsJob 预留到期的商品重新上架
type ReleaseExpiredHoldsJob struct {
	svc       service.Service
	batchSize int
	timeout   time.Duration
	logger    *elog.Component
}

func NewReleaseExpiredHoldsJob(svc service.Service, batchSize int, timeout time.Duration) *ReleaseExpiredHoldsJob {
	return &ReleaseExpiredHoldsJob{
		svc:       svc,
		batchSize: batchSize,
		timeout:   timeout,
		logger:    elog.DefaultLogger,
	}
}

func (j *ReleaseExpiredHoldsJob) Name() string {
	return "ReleaseExpiredHoldsJob"
}

func (j *ReleaseExpiredHoldsJob) Run(ctx context.Context) error {
	ctx, cancel := context.WithTimeout(ctx, j.timeout)
	defer cancel()
	n, err := j.svc.ReleaseExpiredHolds(ctx, j.batchSize)
	if err != nil {
		return fmt.Errorf("释放过期预留失败，已处理 %d 件: %w", n, err)
	}
	if n > 0 {
		j.logger.Info("释放过期预留", elog.Int("count", n))
	}
	return nil
}
