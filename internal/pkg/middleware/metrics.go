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
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// MetricsBuilder 统计 HTTP 请求耗时和次数，server 区分前台和后台
type MetricsBuilder struct {
	server     string
	summaryVec *prometheus.SummaryVec
	counterVec *prometheus.CounterVec
}

var (
	summaryVec = promauto.NewSummaryVec(
		prometheus.SummaryOpts{
			Namespace: "usedtech",
			Name:      "http_request_duration_seconds",
			Help:      "HTTP request duration in seconds",
			Objectives: map[float64]float64{
				0.5:  0.05,
				0.9:  0.01,
				0.99: 0.001,
			},
		},
		[]string{"server", "method", "path", "status_code"},
	)
	counterVec = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "usedtech",
			Name:      "http_requests_total",
			Help:      "Total number of HTTP requests",
		},
		[]string{"server", "method", "path", "status_code"},
	)
)

func NewMetricsBuilder(server string) *MetricsBuilder {
	return &MetricsBuilder{
		server:     server,
		summaryVec: summaryVec,
		counterVec: counterVec,
	}
}

func (a *MetricsBuilder) Build() gin.HandlerFunc {
	return func(ctx *gin.Context) {
		start := time.Now()
		ctx.Next()

		path := ctx.FullPath()
		if path == "" {
			// 没有匹配到路由的请求统一归类，防止标签爆炸
			path = "unmatched"
		}
		statusCode := strconv.Itoa(ctx.Writer.Status())
		a.summaryVec.WithLabelValues(a.server, ctx.Request.Method, path, statusCode).
			Observe(time.Since(start).Seconds())
		a.counterVec.WithLabelValues(a.server, ctx.Request.Method, path, statusCode).Inc()
	}
}
