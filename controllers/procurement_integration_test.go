// Copyright (C) 2024 supplyline
//
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU Affero General Public License as
// published by the Free Software Foundation, either version 3 of the
// License, or (at your option) any later version.
//
// This program is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU Affero General Public License for more details.
//
// You should have received a copy of the GNU Affero General Public License
// along with this program.  If not, see <https://www.gnu.org/licenses/>.

package controllers

import (
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"

	"github.com/supplyline-dev/supplyline/database/models"
	"github.com/supplyline-dev/supplyline/database/repositories"
	"github.com/supplyline-dev/supplyline/integrationtestutil"
	"github.com/supplyline-dev/supplyline/shared"
)

func jsonRequest(app *echo.Echo, method, target, body string) (echo.Context, *httptest.ResponseRecorder) {
	var req *http.Request
	if body == "" {
		req = httptest.NewRequest(method, target, nil)
	} else {
		req = httptest.NewRequest(method, target, strings.NewReader(body))
		req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	}
	rec := httptest.NewRecorder()
	return app.NewContext(req, rec), rec
}

func withParamID(ctx echo.Context, id uint) echo.Context {
	ctx.SetParamNames("id")
	ctx.SetParamValues(fmt.Sprintf("%d", id))
	return ctx
}

func TestProcurementLifecycle(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping integration test in short mode")
	}

	db, terminate := integrationtestutil.InitDatabaseContainer()
	defer terminate()

	supplierRepo := repositories.NewSupplierRepository(db)
	componentRepo := repositories.NewComponentRepository(db)
	performanceRepo := repositories.NewSupplierPerformanceRepository(db)
	scoreRepo := repositories.NewSupplierScoreRepository(db)
	warehouseRepo := repositories.NewWarehouseRepository(db)
	purchaseGroupRepo := repositories.NewPurchaseGroupRepository(db)
	purchaseOrderRepo := repositories.NewPurchaseOrderRepository(db)
	poItemRepo := repositories.NewPOItemRepository(db)
	auditLogRepo := repositories.NewAuditLogRepository(db)
	orgRepo := repositories.NewOrganizationRepository(db)

	supplierController := NewSupplierController(supplierRepo, componentRepo, performanceRepo, scoreRepo)
	purchaseOrderController := NewPurchaseOrderController(purchaseOrderRepo, supplierRepo, warehouseRepo, purchaseGroupRepo, componentRepo, auditLogRepo)

	app := echo.New()

	t.Run("supplier create applies creation defaults and read returns them", func(t *testing.T) {
		ctx, rec := jsonRequest(app, http.MethodPost, "/", `{"name": "Globex Components"}`)
		assert.Nil(t, supplierController.Create(ctx))
		assert.Equal(t, http.StatusCreated, rec.Code)

		var created models.Supplier
		assert.Nil(t, json.Unmarshal(rec.Body.Bytes(), &created))

		got, err := supplierRepo.Read(created.ID)
		assert.Nil(t, err)
		assert.Equal(t, 4, got.Rating)
		assert.InDelta(t, 0.9, got.HistoricalOntimeRate, 0.0001)
		assert.True(t, got.AvgUnitCost.Equal(decimal.NewFromInt(10)))
		assert.False(t, got.Preferred)
	})

	t.Run("explicit zeros survive the insert on defaulted columns", func(t *testing.T) {
		ctx, rec := jsonRequest(app, http.MethodPost, "/", `{"name": "Fresh Vendor", "historical_ontime_rate": 0, "rating": 1}`)
		assert.Nil(t, supplierController.Create(ctx))
		assert.Equal(t, http.StatusCreated, rec.Code)

		var created models.Supplier
		assert.Nil(t, json.Unmarshal(rec.Body.Bytes(), &created))

		got, err := supplierRepo.Read(created.ID)
		assert.Nil(t, err)
		assert.Equal(t, float64(0), got.HistoricalOntimeRate)
		assert.Equal(t, 1, got.Rating)
	})

	t.Run("automation rule created disabled stays disabled", func(t *testing.T) {
		ruleRepo := repositories.NewAutomationRuleRepository(db)
		ruleController := NewAutomationRuleController(ruleRepo)

		ctx, rec := jsonRequest(app, http.MethodPost, "/", `{"name": "reorder low stock", "enabled": false}`)
		assert.Nil(t, ruleController.Create(ctx))
		assert.Equal(t, http.StatusCreated, rec.Code)

		var created models.AutomationRule
		assert.Nil(t, json.Unmarshal(rec.Body.Bytes(), &created))

		got, err := ruleRepo.Read(created.ID)
		assert.Nil(t, err)
		assert.False(t, got.Enabled)

		// and enabled stays the default when the field is omitted
		ctx, rec = jsonRequest(app, http.MethodPost, "/", `{"name": "reorder default"}`)
		assert.Nil(t, ruleController.Create(ctx))
		assert.Equal(t, http.StatusCreated, rec.Code)
		assert.Nil(t, json.Unmarshal(rec.Body.Bytes(), &created))
		got, err = ruleRepo.Read(created.ID)
		assert.Nil(t, err)
		assert.True(t, got.Enabled)
	})

	t.Run("purchase order with invalid supplier is rejected without a row", func(t *testing.T) {
		before, err := purchaseOrderRepo.Count(nil)
		assert.Nil(t, err)

		ctx, _ := jsonRequest(app, http.MethodPost, "/", `{"supplier_id": 99999}`)
		err = purchaseOrderController.Create(ctx)
		assert.Error(t, err)
		httpErr, ok := err.(*echo.HTTPError)
		assert.True(t, ok)
		assert.Equal(t, http.StatusBadRequest, httpErr.Code)
		assert.Equal(t, "Invalid supplier_id", httpErr.Message)

		after, err := purchaseOrderRepo.Count(nil)
		assert.Nil(t, err)
		assert.Equal(t, before, after)
	})

	t.Run("purchase order create with inline items is transactional and cascades on delete", func(t *testing.T) {
		supplier := models.Supplier{Name: "Initech"}
		assert.Nil(t, supplierRepo.Create(nil, &supplier))

		component := models.Component{Num: "CMP-9001", SupplierID: &supplier.ID}
		assert.Nil(t, componentRepo.Create(nil, &component))

		body := fmt.Sprintf(`{"supplier_id": %d, "items": [{"component_id": %d, "ordered_qty": 10}]}`, supplier.ID, component.ID)
		ctx, rec := jsonRequest(app, http.MethodPost, "/", body)
		assert.Nil(t, purchaseOrderController.Create(ctx))
		assert.Equal(t, http.StatusCreated, rec.Code)

		var order models.PurchaseOrder
		assert.Nil(t, json.Unmarshal(rec.Body.Bytes(), &order))
		assert.Len(t, order.Items, 1)

		items, err := poItemRepo.All(map[string]any{"purchase_order_id": order.ID})
		assert.Nil(t, err)
		assert.Len(t, items, 1)

		// deleting the order removes the items with it
		ctx, rec = jsonRequest(app, http.MethodDelete, "/", "")
		withParamID(ctx, order.ID)
		assert.Nil(t, purchaseOrderController.Delete(ctx))
		assert.Equal(t, http.StatusNoContent, rec.Code)

		items, err = poItemRepo.All(map[string]any{"purchase_order_id": order.ID})
		assert.Nil(t, err)
		assert.Len(t, items, 0)

		// the second delete answers 404
		ctx, _ = jsonRequest(app, http.MethodDelete, "/", "")
		withParamID(ctx, order.ID)
		err = purchaseOrderController.Delete(ctx)
		assert.Error(t, err)
		httpErr, ok := err.(*echo.HTTPError)
		assert.True(t, ok)
		assert.Equal(t, http.StatusNotFound, httpErr.Code)
	})

	t.Run("empty patch leaves the supplier unchanged", func(t *testing.T) {
		supplier := models.Supplier{Name: "Umbrella Logistics", Location: "Madrid"}
		assert.Nil(t, supplierRepo.Create(nil, &supplier))

		ctx, rec := jsonRequest(app, http.MethodPut, "/", `{}`)
		withParamID(ctx, supplier.ID)
		assert.Nil(t, supplierController.Update(ctx))
		assert.Equal(t, http.StatusOK, rec.Code)

		got, err := supplierRepo.Read(supplier.ID)
		assert.Nil(t, err)
		assert.Equal(t, "Umbrella Logistics", got.Name)
		assert.Equal(t, "Madrid", got.Location)
	})

	t.Run("deleting a supplier detaches its components", func(t *testing.T) {
		supplier := models.Supplier{Name: "Soon Gone"}
		assert.Nil(t, supplierRepo.Create(nil, &supplier))

		component := models.Component{Num: "CMP-9002", SupplierID: &supplier.ID}
		assert.Nil(t, componentRepo.Create(nil, &component))

		ctx, rec := jsonRequest(app, http.MethodDelete, "/", "")
		withParamID(ctx, supplier.ID)
		assert.Nil(t, supplierController.Delete(ctx))
		assert.Equal(t, http.StatusNoContent, rec.Code)

		got, err := componentRepo.Read(component.ID)
		assert.Nil(t, err)
		assert.Nil(t, got.SupplierID)
	})

	t.Run("open order count excludes received and cancelled", func(t *testing.T) {
		supplier := models.Supplier{Name: "Status Source"}
		assert.Nil(t, supplierRepo.Create(nil, &supplier))

		before, err := purchaseOrderRepo.CountOpen()
		assert.Nil(t, err)

		for _, status := range []string{"draft", "ordered", "shipped", "received", "cancelled"} {
			order := models.PurchaseOrder{
				OrderRef:   fmt.Sprintf("PO-STATUS-%s", status),
				SupplierID: supplier.ID,
				Status:     status,
			}
			assert.Nil(t, purchaseOrderRepo.Create(nil, &order))
		}

		after, err := purchaseOrderRepo.CountOpen()
		assert.Nil(t, err)
		assert.Equal(t, before+3, after)
	})

	t.Run("organization slugs are claimed uniquely", func(t *testing.T) {
		first := models.Organization{Name: "Same Name"}
		assert.Nil(t, orgRepo.Create(nil, &first))

		second := models.Organization{Name: "Same Name"}
		assert.Nil(t, orgRepo.Create(nil, &second))

		assert.NotEqual(t, first.Slug, second.Slug)
	})
}

func TestRFQTransactionalCreate(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping integration test in short mode")
	}

	db, terminate := integrationtestutil.InitDatabaseContainer()
	defer terminate()

	supplierRepo := repositories.NewSupplierRepository(db)
	componentRepo := repositories.NewComponentRepository(db)
	rfqRepo := repositories.NewRFQRepository(db)

	rfqController := NewRFQController(rfqRepo, supplierRepo, componentRepo)

	app := echo.New()

	supplier := models.Supplier{Name: "Globex"}
	assert.Nil(t, supplierRepo.Create(nil, &supplier))

	component := models.Component{Num: "CMP-1"}
	assert.Nil(t, componentRepo.Create(nil, &component))

	t.Run("an unknown item component rejects the whole request", func(t *testing.T) {
		before, err := rfqRepo.Count(nil)
		assert.Nil(t, err)

		body := fmt.Sprintf(`{"supplier_id": %d, "items": [{"component_id": 99999, "qty": 5}]}`, supplier.ID)
		ctx, _ := jsonRequest(app, http.MethodPost, "/", body)
		err = rfqController.Create(ctx)
		assert.Error(t, err)
		httpErr, ok := err.(*echo.HTTPError)
		assert.True(t, ok)
		assert.Equal(t, http.StatusBadRequest, httpErr.Code)

		// no orphaned parent row
		after, err := rfqRepo.Count(nil)
		assert.Nil(t, err)
		assert.Equal(t, before, after)
	})

	t.Run("a valid request persists the rfq with its items", func(t *testing.T) {
		body := fmt.Sprintf(`{"supplier_id": %d, "items": [{"component_id": %d, "qty": 5}]}`, supplier.ID, component.ID)
		ctx, rec := jsonRequest(app, http.MethodPost, "/", body)
		assert.Nil(t, rfqController.Create(ctx))
		assert.Equal(t, http.StatusCreated, rec.Code)

		var rfq models.RFQ
		assert.Nil(t, json.Unmarshal(rec.Body.Bytes(), &rfq))
		assert.Len(t, rfq.Items, 1)
	})
}

func TestListPagination(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping integration test in short mode")
	}

	db, terminate := integrationtestutil.InitDatabaseContainer()
	defer terminate()

	supplierRepo := repositories.NewSupplierRepository(db)
	for i := 0; i < 15; i++ {
		supplier := models.Supplier{Name: fmt.Sprintf("Supplier %02d", i)}
		assert.Nil(t, supplierRepo.Create(nil, &supplier))
	}

	paged, err := supplierRepo.List(nil, shared.PageInfo{Page: 2, PageSize: 10})
	assert.Nil(t, err)
	assert.Equal(t, int64(15), paged.Total)
	assert.Len(t, paged.Data, 5)
}
