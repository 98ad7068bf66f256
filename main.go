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

package main

import (
	"context"
	"time"

	"github.com/ecodeclub/usedtech/ioc"
	"github.com/gotomicro/ego"
	"github.com/gotomicro/ego/core/elog"
	"github.com/gotomicro/ego/server/egin"
	"github.com/gotomicro/ego/server/egovernor"
)

// export EGO_DEBUG=true
// go run main.go --config=config/config.yaml
func main() {
	egoApp := ego.New()
	tp := ioc.InitZipkinTracer()
	app, err := ioc.InitApp()
	if err != nil {
		panic(err)
	}

	consumerCtx, stopConsumers := context.WithCancel(context.Background())
	for _, c := range app.Consumers {
		c.Start(consumerCtx)
	}

	err = egoApp.
		Serve(
			egovernor.Load("server.governor").Build(),
			app.Web,
			(*egin.Component)(app.Admin)).
		Cron(app.Crons...).
		Run()
	if err != nil {
		elog.DefaultLogger.Error("服务退出", elog.FieldErr(err))
	}

	stopConsumers()
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	for _, c := range app.Consumers {
		if er := c.Stop(shutdownCtx); er != nil {
			elog.DefaultLogger.Warn("关闭消费者失败", elog.FieldErr(er))
		}
	}
	if er := tp.Shutdown(shutdownCtx); er != nil {
		elog.DefaultLogger.Warn("关闭 zipkin tracer 失败", elog.FieldErr(er))
	}
}
