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

package dtos

import (
	"time"

	"github.com/shopspring/decimal"
)

type InvoiceCreateRequest struct {
	PurchaseOrderID *uint            `json:"purchase_order_id"`
	SupplierID      uint             `json:"supplier_id" validate:"required"`
	InvoiceNumber   string           `json:"invoice_number" validate:"required"`
	Amount          *decimal.Decimal `json:"amount"`
	BalanceDue      *decimal.Decimal `json:"balance_due"`
	DueDate         *time.Time       `json:"due_date"`
	Status          string           `json:"status"`
}

type InvoicePatchRequest struct {
	PurchaseOrderID Optional[uint]   `json:"purchase_order_id"`
	SupplierID      *uint            `json:"supplier_id"`
	InvoiceNumber   *string          `json:"invoice_number"`
	Amount          *decimal.Decimal `json:"amount"`
	BalanceDue      *decimal.Decimal `json:"balance_due"`
	DueDate         *time.Time       `json:"due_date"`
	Status          *string          `json:"status"`
}

type PaymentCreateRequest struct {
	InvoiceID uint             `json:"invoice_id" validate:"required"`
	Amount    *decimal.Decimal `json:"amount"`
	PaidAt    *time.Time       `json:"paid_at"`
	Method    string           `json:"method"`
	Reference string           `json:"reference"`
}

type PaymentPatchRequest struct {
	InvoiceID *uint            `json:"invoice_id"`
	Amount    *decimal.Decimal `json:"amount"`
	PaidAt    *time.Time       `json:"paid_at"`
	Method    *string          `json:"method"`
	Reference *string          `json:"reference"`
}

type LandedCostCreateRequest struct {
	ComponentID   uint             `json:"component_id" validate:"required"`
	SupplierID    *uint            `json:"supplier_id"`
	BaseCost      *decimal.Decimal `json:"base_cost"`
	Freight       *decimal.Decimal `json:"freight"`
	Duty          *decimal.Decimal `json:"duty"`
	Handling      *decimal.Decimal `json:"handling"`
	TotalUnitCost *decimal.Decimal `json:"total_unit_cost"`
}

type LandedCostPatchRequest struct {
	ComponentID   *uint            `json:"component_id"`
	SupplierID    Optional[uint]   `json:"supplier_id"`
	BaseCost      *decimal.Decimal `json:"base_cost"`
	Freight       *decimal.Decimal `json:"freight"`
	Duty          *decimal.Decimal `json:"duty"`
	Handling      *decimal.Decimal `json:"handling"`
	TotalUnitCost *decimal.Decimal `json:"total_unit_cost"`
}

type InventoryValuationCreateRequest struct {
	WarehouseID uint             `json:"warehouse_id" validate:"required"`
	Method      string           `json:"method"`
	TotalValue  *decimal.Decimal `json:"total_value"`
	ValuedAt    *time.Time       `json:"valued_at"`
}

type InventoryValuationPatchRequest struct {
	WarehouseID *uint            `json:"warehouse_id"`
	Method      *string          `json:"method"`
	TotalValue  *decimal.Decimal `json:"total_value"`
	ValuedAt    *time.Time       `json:"valued_at"`
}
