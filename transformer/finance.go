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
	"github.com/supplyline-dev/supplyline/database/models"
	"github.com/supplyline-dev/supplyline/dtos"
)

// InvoiceCreateRequestToModel defaults the open balance to the invoice
// amount when the client did not state one.
func InvoiceCreateRequestToModel(req dtos.InvoiceCreateRequest) models.Invoice {
	invoice := models.Invoice{
		PurchaseOrderID: req.PurchaseOrderID,
		SupplierID:      req.SupplierID,
		InvoiceNumber:   req.InvoiceNumber,
		DueDate:         req.DueDate,
		Status:          req.Status,
	}
	if req.Amount != nil {
		invoice.Amount = *req.Amount
	}
	if req.BalanceDue != nil {
		invoice.BalanceDue = *req.BalanceDue
	} else {
		invoice.BalanceDue = invoice.Amount
	}
	return invoice
}

func ApplyInvoicePatchRequestToModel(req dtos.InvoicePatchRequest, invoice *models.Invoice) bool {
	updated := applyOptional(&invoice.PurchaseOrderID, req.PurchaseOrderID)
	updated = apply(&invoice.SupplierID, req.SupplierID) || updated
	updated = apply(&invoice.InvoiceNumber, req.InvoiceNumber) || updated
	updated = apply(&invoice.Amount, req.Amount) || updated
	updated = apply(&invoice.BalanceDue, req.BalanceDue) || updated
	updated = applyRef(&invoice.DueDate, req.DueDate) || updated
	updated = apply(&invoice.Status, req.Status) || updated
	return updated
}

func PaymentCreateRequestToModel(req dtos.PaymentCreateRequest) models.Payment {
	payment := models.Payment{
		InvoiceID: req.InvoiceID,
		PaidAt:    req.PaidAt,
		Method:    req.Method,
		Reference: req.Reference,
	}
	if req.Amount != nil {
		payment.Amount = *req.Amount
	}
	return payment
}

func ApplyPaymentPatchRequestToModel(req dtos.PaymentPatchRequest, payment *models.Payment) bool {
	updated := apply(&payment.InvoiceID, req.InvoiceID)
	updated = apply(&payment.Amount, req.Amount) || updated
	updated = applyRef(&payment.PaidAt, req.PaidAt) || updated
	updated = apply(&payment.Method, req.Method) || updated
	updated = apply(&payment.Reference, req.Reference) || updated
	return updated
}

// LandedCostCreateRequestToModel derives the total unit cost from the parts
// when it is not supplied explicitly.
func LandedCostCreateRequestToModel(req dtos.LandedCostCreateRequest) models.LandedCost {
	cost := models.LandedCost{
		ComponentID: req.ComponentID,
		SupplierID:  req.SupplierID,
	}
	if req.BaseCost != nil {
		cost.BaseCost = *req.BaseCost
	}
	if req.Freight != nil {
		cost.Freight = *req.Freight
	}
	if req.Duty != nil {
		cost.Duty = *req.Duty
	}
	if req.Handling != nil {
		cost.Handling = *req.Handling
	}
	if req.TotalUnitCost != nil {
		cost.TotalUnitCost = *req.TotalUnitCost
	} else {
		cost.TotalUnitCost = cost.BaseCost.Add(cost.Freight).Add(cost.Duty).Add(cost.Handling)
	}
	return cost
}

func ApplyLandedCostPatchRequestToModel(req dtos.LandedCostPatchRequest, cost *models.LandedCost) bool {
	updated := apply(&cost.ComponentID, req.ComponentID)
	updated = applyOptional(&cost.SupplierID, req.SupplierID) || updated
	updated = apply(&cost.BaseCost, req.BaseCost) || updated
	updated = apply(&cost.Freight, req.Freight) || updated
	updated = apply(&cost.Duty, req.Duty) || updated
	updated = apply(&cost.Handling, req.Handling) || updated
	updated = apply(&cost.TotalUnitCost, req.TotalUnitCost) || updated
	return updated
}

func InventoryValuationCreateRequestToModel(req dtos.InventoryValuationCreateRequest) models.InventoryValuation {
	valuation := models.InventoryValuation{
		WarehouseID: req.WarehouseID,
		Method:      req.Method,
		ValuedAt:    req.ValuedAt,
	}
	if req.TotalValue != nil {
		valuation.TotalValue = *req.TotalValue
	}
	return valuation
}

func ApplyInventoryValuationPatchRequestToModel(req dtos.InventoryValuationPatchRequest, valuation *models.InventoryValuation) bool {
	updated := apply(&valuation.WarehouseID, req.WarehouseID)
	updated = apply(&valuation.Method, req.Method) || updated
	updated = apply(&valuation.TotalValue, req.TotalValue) || updated
	updated = applyRef(&valuation.ValuedAt, req.ValuedAt) || updated
	return updated
}
