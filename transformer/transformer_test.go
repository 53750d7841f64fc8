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

package transformer

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"

	"github.com/supplyline-dev/supplyline/database/models"
	"github.com/supplyline-dev/supplyline/dtos"
	"github.com/supplyline-dev/supplyline/shared"
)

func TestApplyTaskPatchRequest(t *testing.T) {
	userID := uint(3)

	t.Run("empty patch should not report an update", func(t *testing.T) {
		task := models.Task{Title: "check stock", Status: "open", UserID: &userID}
		before := task

		updated := ApplyTaskPatchRequestToModel(dtos.TaskPatchRequest{}, &task)

		assert.False(t, updated)
		assert.Equal(t, before, task)
	})

	t.Run("present fields overwrite, absent fields stay", func(t *testing.T) {
		task := models.Task{Title: "check stock", Status: "open", Priority: "low"}

		updated := ApplyTaskPatchRequestToModel(dtos.TaskPatchRequest{
			Status: shared.Ptr("done"),
		}, &task)

		assert.True(t, updated)
		assert.Equal(t, "done", task.Status)
		assert.Equal(t, "check stock", task.Title)
		assert.Equal(t, "low", task.Priority)
	})

	t.Run("explicit null clears the user reference", func(t *testing.T) {
		task := models.Task{Title: "check stock", UserID: &userID}

		updated := ApplyTaskPatchRequestToModel(dtos.TaskPatchRequest{
			UserID: dtos.Null[uint](),
		}, &task)

		assert.True(t, updated)
		assert.Nil(t, task.UserID)
	})

	t.Run("absent optional leaves the user reference", func(t *testing.T) {
		task := models.Task{Title: "check stock", UserID: &userID}

		ApplyTaskPatchRequestToModel(dtos.TaskPatchRequest{
			Title: shared.Ptr("recount stock"),
		}, &task)

		if assert.NotNil(t, task.UserID) {
			assert.Equal(t, userID, *task.UserID)
		}
	})

	t.Run("due date can be set through the patch", func(t *testing.T) {
		task := models.Task{Title: "check stock"}
		due := time.Date(2024, 11, 1, 0, 0, 0, 0, time.UTC)

		updated := ApplyTaskPatchRequestToModel(dtos.TaskPatchRequest{
			DueDate: &due,
		}, &task)

		assert.True(t, updated)
		if assert.NotNil(t, task.DueDate) {
			assert.Equal(t, due, *task.DueDate)
		}
	})
}

func TestApplyPurchaseOrderPatchRequest(t *testing.T) {
	warehouseID := uint(7)

	t.Run("warehouse can be cleared with null", func(t *testing.T) {
		order := models.PurchaseOrder{OrderRef: "PO-1", SupplierID: 1, WarehouseID: &warehouseID}

		updated := ApplyPurchaseOrderPatchRequestToModel(dtos.PurchaseOrderPatchRequest{
			WarehouseID: dtos.Null[uint](),
		}, &order)

		assert.True(t, updated)
		assert.Nil(t, order.WarehouseID)
	})

	t.Run("warehouse can be moved to another id", func(t *testing.T) {
		order := models.PurchaseOrder{OrderRef: "PO-1", SupplierID: 1, WarehouseID: &warehouseID}

		updated := ApplyPurchaseOrderPatchRequestToModel(dtos.PurchaseOrderPatchRequest{
			WarehouseID: dtos.Some(uint(9)),
		}, &order)

		assert.True(t, updated)
		if assert.NotNil(t, order.WarehouseID) {
			assert.Equal(t, uint(9), *order.WarehouseID)
		}
	})
}

func TestOrganizationTransforms(t *testing.T) {
	t.Run("create derives the slug from the name", func(t *testing.T) {
		org := OrganizationCreateRequestToModel(dtos.OrganizationCreateRequest{Name: "Acme Manufacturing"})
		assert.Equal(t, "acme-manufacturing", org.Slug)
	})

	t.Run("rename recomputes the slug", func(t *testing.T) {
		org := models.Organization{Name: "Acme Manufacturing", Slug: "acme-manufacturing"}

		updated := ApplyOrganizationPatchRequestToModel(dtos.OrganizationPatchRequest{
			Name: shared.Ptr("Acme Industries"),
		}, &org)

		assert.True(t, updated)
		assert.Equal(t, "acme-industries", org.Slug)
	})
}

func TestSupplierCreateDefaults(t *testing.T) {
	t.Run("omitted fields get the documented defaults", func(t *testing.T) {
		supplier := SupplierCreateRequestToModel(dtos.SupplierCreateRequest{Name: "Globex"})
		assert.Equal(t, 4, supplier.Rating)
		assert.Equal(t, 0.9, supplier.HistoricalOntimeRate)
		assert.True(t, supplier.AvgUnitCost.Equal(decimal.NewFromInt(10)))
		assert.False(t, supplier.Preferred)
	})

	t.Run("explicit values win", func(t *testing.T) {
		rating := 2
		supplier := SupplierCreateRequestToModel(dtos.SupplierCreateRequest{Name: "Globex", Rating: &rating})
		assert.Equal(t, 2, supplier.Rating)
	})

	t.Run("an explicit zero is not mistaken for omission", func(t *testing.T) {
		supplier := SupplierCreateRequestToModel(dtos.SupplierCreateRequest{
			Name:                 "Globex",
			HistoricalOntimeRate: shared.Ptr(0.0),
			AvgUnitCost:          shared.Ptr(decimal.Zero),
		})
		assert.Equal(t, float64(0), supplier.HistoricalOntimeRate)
		assert.True(t, supplier.AvgUnitCost.IsZero())
		assert.Equal(t, 4, supplier.Rating)
	})
}

func TestAutomationRuleCreateEnabled(t *testing.T) {
	rule := AutomationRuleCreateRequestToModel(dtos.AutomationRuleCreateRequest{Name: "reorder"})
	assert.True(t, rule.Enabled)

	// a rule created disabled must stay disabled
	rule = AutomationRuleCreateRequestToModel(dtos.AutomationRuleCreateRequest{
		Name:    "reorder",
		Enabled: shared.Ptr(false),
	})
	assert.False(t, rule.Enabled)
}

func TestRFQItemQtyDefault(t *testing.T) {
	_, items := RFQCreateRequestToModels(dtos.RFQCreateRequest{
		SupplierID: 1,
		Items: []dtos.RFQItemInlineRequest{
			{ComponentID: 2},
			{ComponentID: 3, Qty: shared.Ptr(8)},
		},
	})
	assert.Equal(t, 1, items[0].Qty)
	assert.Equal(t, 8, items[1].Qty)
}

func TestBOMItemRequiredQtyDefault(t *testing.T) {
	item := BOMItemCreateRequestToModel(dtos.BOMItemCreateRequest{ProductID: 1, ComponentID: 2})
	assert.Equal(t, 1, item.RequiredQty)

	item = BOMItemCreateRequestToModel(dtos.BOMItemCreateRequest{ProductID: 1, ComponentID: 2, RequiredQty: shared.Ptr(12)})
	assert.Equal(t, 12, item.RequiredQty)
}

func TestPurchaseOrderCreateRequestToModels(t *testing.T) {
	t.Run("empty order ref gets generated", func(t *testing.T) {
		order, _ := PurchaseOrderCreateRequestToModels(dtos.PurchaseOrderCreateRequest{SupplierID: 1})
		assert.NotEmpty(t, order.OrderRef)
		assert.Contains(t, order.OrderRef, "PO-")
	})

	t.Run("inline items carry over", func(t *testing.T) {
		cost := decimal.NewFromFloat(1.85)
		order, items := PurchaseOrderCreateRequestToModels(dtos.PurchaseOrderCreateRequest{
			OrderRef:   "PO-X",
			SupplierID: 1,
			Items: []dtos.POItemInlineRequest{
				{ComponentID: 5, OrderedQty: 100, UnitCost: &cost},
				{ComponentID: 6, OrderedQty: 20},
			},
		})

		assert.Equal(t, "PO-X", order.OrderRef)
		assert.Len(t, items, 2)
		assert.Equal(t, uint(5), items[0].ComponentID)
		assert.True(t, items[0].UnitCost.Equal(cost))
		assert.True(t, items[1].UnitCost.IsZero())
	})
}

func TestInvoiceCreateDefaults(t *testing.T) {
	amount := decimal.NewFromFloat(120.50)

	t.Run("balance due defaults to the full amount", func(t *testing.T) {
		invoice := InvoiceCreateRequestToModel(dtos.InvoiceCreateRequest{
			SupplierID:    1,
			InvoiceNumber: "INV-1",
			Amount:        &amount,
		})
		assert.True(t, invoice.BalanceDue.Equal(amount))
	})

	t.Run("explicit balance due wins", func(t *testing.T) {
		balance := decimal.NewFromFloat(20)
		invoice := InvoiceCreateRequestToModel(dtos.InvoiceCreateRequest{
			SupplierID:    1,
			InvoiceNumber: "INV-2",
			Amount:        &amount,
			BalanceDue:    &balance,
		})
		assert.True(t, invoice.BalanceDue.Equal(balance))
	})
}

func TestLandedCostCreateTotal(t *testing.T) {
	base := decimal.NewFromFloat(3.40)
	freight := decimal.NewFromFloat(0.30)
	duty := decimal.NewFromFloat(0.10)

	cost := LandedCostCreateRequestToModel(dtos.LandedCostCreateRequest{
		ComponentID: 1,
		BaseCost:    &base,
		Freight:     &freight,
		Duty:        &duty,
	})

	assert.True(t, cost.TotalUnitCost.Equal(decimal.NewFromFloat(3.80)))
}
