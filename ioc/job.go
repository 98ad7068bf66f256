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

package ioc

import (
	"context"
	"time"

	"github.com/ecodeclub/usedtech/internal/inventory"
	"github.com/gotomicro/ego/core/elog"
	"github.com/gotomicro/ego/task/ecron"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var cronJobDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{
	Namespace: "usedtech",
	Name:      "cron_job_duration_seconds",
	Help:      "定时任务每次运行的耗时",
	Buckets:   prometheus.DefBuckets,
}, []string{"job", "result"})

func initCronJobs(holdJob *inventory.ReleaseExpiredHoldsJob) []ecron.Ecron {
	return []ecron.Ecron{
		ecron.Load("cron.releaseHolds").Build(ecron.WithJob(funcJobWrapper(holdJob))),
	}
}

func funcJobWrapper(job ecron.NamedJob) ecron.FuncJob {
	name := job.Name()
	return func(ctx context.Context) error {
		start := time.Now()
		err := job.Run(ctx)
		duration := time.Since(start)
		if err != nil {
			cronJobDuration.WithLabelValues(name, "failed").Observe(duration.Seconds())
			elog.DefaultLogger.Error("执行失败",
				elog.FieldErr(err),
				elog.String("cronjob", name))
			return err
		}
		cronJobDuration.WithLabelValues(name, "ok").Observe(duration.Seconds())
		elog.DefaultLogger.Debug("结束运行",
			elog.String("cronjob", name),
			elog.FieldCost(duration))
		return nil
	}
}
