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

package models

import (
	"time"

	"github.com/shopspring/decimal"
)

type Invoice struct {
	Model
	PurchaseOrderID *uint           `json:"purchase_order_id"`
	SupplierID      uint            `json:"supplier_id" gorm:"not null"`
	InvoiceNumber   string          `json:"invoice_number" gorm:"type:text;uniqueIndex;not null"`
	Amount          decimal.Decimal `json:"amount" gorm:"type:decimal(14,2)"`
	BalanceDue      decimal.Decimal `json:"balance_due" gorm:"type:decimal(14,2)"`
	DueDate         *time.Time      `json:"due_date"`
	Status          string          `json:"status" gorm:"type:text;default:'open'"`

	PurchaseOrder *PurchaseOrder `json:"purchase_order,omitempty" gorm:"foreignKey:PurchaseOrderID;constraint:OnDelete:SET NULL;"`
	Supplier      *Supplier      `json:"supplier,omitempty" gorm:"foreignKey:SupplierID;"`
	Payments      []Payment      `json:"payments,omitempty" gorm:"foreignKey:InvoiceID;constraint:OnDelete:CASCADE;"`
}

func (m Invoice) TableName() string {
	return "invoices"
}

type Payment struct {
	Model
	InvoiceID uint            `json:"invoice_id" gorm:"not null"`
	Amount    decimal.Decimal `json:"amount" gorm:"type:decimal(14,2)"`
	PaidAt    *time.Time      `json:"paid_at"`
	Method    string          `json:"method" gorm:"type:text"`
	Reference string          `json:"reference" gorm:"type:text"`

	Invoice *Invoice `json:"invoice,omitempty" gorm:"foreignKey:InvoiceID;constraint:OnDelete:CASCADE;"`
}

func (m Payment) TableName() string {
	return "payments"
}

// LandedCost is the total per-unit cost of a component including freight,
// duty and handling on top of the base price.
type LandedCost struct {
	Model
	ComponentID   uint            `json:"component_id" gorm:"not null"`
	SupplierID    *uint           `json:"supplier_id"`
	BaseCost      decimal.Decimal `json:"base_cost" gorm:"type:decimal(12,4)"`
	Freight       decimal.Decimal `json:"freight" gorm:"type:decimal(12,4)"`
	Duty          decimal.Decimal `json:"duty" gorm:"type:decimal(12,4)"`
	Handling      decimal.Decimal `json:"handling" gorm:"type:decimal(12,4)"`
	TotalUnitCost decimal.Decimal `json:"total_unit_cost" gorm:"type:decimal(12,4)"`

	Component *Component `json:"component,omitempty" gorm:"foreignKey:ComponentID;constraint:OnDelete:CASCADE;"`
	Supplier  *Supplier  `json:"supplier,omitempty" gorm:"foreignKey:SupplierID;constraint:OnDelete:SET NULL;"`
}

func (m LandedCost) TableName() string {
	return "landed_costs"
}

type InventoryValuation struct {
	Model
	WarehouseID uint            `json:"warehouse_id" gorm:"not null"`
	Method      string          `json:"method" gorm:"type:text;default:'fifo'"`
	TotalValue  decimal.Decimal `json:"total_value" gorm:"type:decimal(16,2)"`
	ValuedAt    *time.Time      `json:"valued_at"`

	Warehouse *Warehouse `json:"warehouse,omitempty" gorm:"foreignKey:WarehouseID;constraint:OnDelete:CASCADE;"`
}

func (m InventoryValuation) TableName() string {
	return "inventory_valuations"
}
