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

//go:build e2e

package integration

import (
	"context"
	"net/http"
	"strconv"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/ecodeclub/ekit/iox"
	"github.com/ecodeclub/usedtech/internal/audit"
	"github.com/ecodeclub/usedtech/internal/inventory"
	"github.com/ecodeclub/usedtech/internal/photo"
	"github.com/ecodeclub/usedtech/internal/policy"
	"github.com/ecodeclub/usedtech/internal/sale"
	"github.com/ecodeclub/usedtech/internal/sale/internal/errs"
	"github.com/ecodeclub/usedtech/internal/sale/internal/repository/dao"
	"github.com/ecodeclub/usedtech/internal/sale/internal/web"
	"github.com/ecodeclub/usedtech/internal/test"
	testioc "github.com/ecodeclub/usedtech/internal/test/ioc"
	"github.com/ego-component/egorm"
	"github.com/gotomicro/ego/core/econf"
	"github.com/gotomicro/ego/server/egin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
)

const uid = int64(2051)

type HandlerTestSuite struct {
	suite.Suite
	server    *egin.Component
	db        *egorm.Component
	itemSvc   inventory.Service
	policySvc policy.Service
}

func (s *HandlerTestSuite) SetupSuite() {
	db := testioc.InitDB()
	q := testioc.InitMQ()
	econf.Set("store", map[string]any{"holdHours": 48, "currency": "GHS"})
	am, err := audit.InitModule(db, q)
	require.NoError(s.T(), err)
	pm, err := photo.InitModule(db, q, am)
	require.NoError(s.T(), err)
	im, err := inventory.InitModule(db, testioc.InitCache(), q, pm, am)
	require.NoError(s.T(), err)
	policyModule := policy.InitModule(db, am)
	sm, err := sale.InitModule(db, testioc.InitRedis(), q, im, policyModule)
	require.NoError(s.T(), err)

	econf.Set("server", map[string]any{"contextTimeout": "1s"})
	server := egin.Load("server").Build()
	server.Use(test.LoginAs(uid, "staff"))
	sm.AdminHdl.PrivateRoutes(server.Engine)
	s.server = server
	s.db = db
	s.itemSvc = im.Svc
	s.policySvc = policyModule.Svc
}

func (s *HandlerTestSuite) TearDownTest() {
	for _, table := range []string{"sales", "inventory_items", "policies", "audit_events"} {
		err := s.db.Exec("TRUNCATE TABLE `" + table + "`").Error
		require.NoError(s.T(), err)
	}
}

func (s *HandlerTestSuite) TearDownSuite() {
	for _, table := range []string{"sales", "inventory_items", "policies", "audit_events"} {
		err := s.db.Exec("DROP TABLE `" + table + "`").Error
		require.NoError(s.T(), err)
	}
}

func (s *HandlerTestSuite) createItem(t *testing.T, title string) inventory.Item {
	ctx, cancel := context.WithTimeout(context.Background(), time.Second)
	defer cancel()
	item, err := s.itemSvc.Create(ctx, inventory.Item{
		Title:       title,
		Category:    inventory.CategoryLaptop,
		PublicPrice: 450000,
	}, uid)
	require.NoError(t, err)
	return item
}

func (s *HandlerTestSuite) record(req web.RecordReq) test.Result[web.RecordResp] {
	httpReq, err := http.NewRequest(http.MethodPost, "/sale/record", iox.NewJSONReader(req))
	require.NoError(s.T(), err)
	httpReq.Header.Set("content-type", "application/json")
	recorder := test.NewJSONResponseRecorder[web.RecordResp]()
	s.server.ServeHTTP(recorder, httpReq)
	require.Equal(s.T(), http.StatusOK, recorder.Code)
	return recorder.MustScan()
}

func (s *HandlerTestSuite) TestRecord() {
	t := s.T()
	ctx, cancel := context.WithTimeout(context.Background(), time.Second)
	defer cancel()
	err := s.policySvc.Update(ctx, policy.Policy{
		Type:    policy.TypeWarranty,
		Title:   "保修",
		Content: "<p>30 天保修</p>",
	}, uid)
	require.NoError(t, err)
	item := s.createItem(t, "ThinkPad T480")

	res := s.record(web.RecordReq{
		ItemID:        item.ID,
		BuyerName:     "Kofi",
		SalePrice:     420000,
		PaymentMethod: "mobile_money",
	})
	require.Equal(t, 0, res.Code)
	assert.True(t, strings.HasPrefix(res.Data.ReceiptNumber, "RCP-"))

	var sold dao.Sale
	err = s.db.WithContext(ctx).Where("receipt_number = ?", res.Data.ReceiptNumber).First(&sold).Error
	require.NoError(t, err)
	assert.Equal(t, item.ID, sold.ItemId)
	assert.Equal(t, int64(420000), sold.SalePrice)
	assert.Equal(t, "pickup", sold.FulfillmentType)
	assert.True(t, sold.WarrantySnapshot.Valid)
	assert.False(t, sold.ReturnsSnapshot.Valid)

	latest, err := s.itemSvc.FindByID(ctx, item.ID)
	require.NoError(t, err)
	assert.Equal(t, inventory.StatusSold, latest.Status)
	assert.Equal(t, uid, latest.StatusChangedBy)

	var cnt int64
	err = s.db.WithContext(ctx).Table("audit_events").
		Where("action = ? AND entity_id = ?", "sale.recorded", strconv.FormatInt(sold.Id, 10)).Count(&cnt).Error
	require.NoError(t, err)
	assert.Equal(t, int64(1), cnt)

	again := s.record(web.RecordReq{
		ItemID:        item.ID,
		SalePrice:     420000,
		PaymentMethod: "cash",
	})
	assert.Equal(t, errs.ItemAlreadySold.Code, again.Code)
}

func (s *HandlerTestSuite) TestRecord_Concurrent() {
	t := s.T()
	item := s.createItem(t, "iPhone 12")

	const n = 10
	var (
		wg      sync.WaitGroup
		mu      sync.Mutex
		success int
	)
	for i := 0; i < n; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			res := s.record(web.RecordReq{ItemID: item.ID, SalePrice: 1000, PaymentMethod: "cash"})
			if res.Code == 0 {
				mu.Lock()
				success++
				mu.Unlock()
			}
		}()
	}
	wg.Wait()
	assert.Equal(t, 1, success)

	var cnt int64
	err := s.db.Model(&dao.Sale{}).Where("item_id = ?", item.ID).Count(&cnt).Error
	require.NoError(t, err)
	assert.Equal(t, int64(1), cnt)
}

func (s *HandlerTestSuite) TestRecord_UnknownItem() {
	res := s.record(web.RecordReq{ItemID: 404, SalePrice: 1000, PaymentMethod: "cash"})
	assert.Equal(s.T(), errs.ItemNotFound.Code, res.Code)
}

func TestHandler(t *testing.T) {
	suite.Run(t, new(HandlerTestSuite))
}
