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

type Supplier struct {
	Model
	Name                string          `json:"name" gorm:"type:text;not null"`
	ContactEmail        string          `json:"contact_email" gorm:"type:text"`
	Phone               string          `json:"phone" gorm:"type:text"`
	Location            string          `json:"location" gorm:"type:text"`
	Rating              int             `json:"rating"`
	HistoricalOntimeRate float64        `json:"historical_ontime_rate"`
	AvgUnitCost         decimal.Decimal `json:"avg_unit_cost" gorm:"type:decimal(12,4)"`
	Preferred           bool            `json:"preferred" gorm:"default:false"`

	Components     []Component     `json:"components,omitempty" gorm:"foreignKey:SupplierID;constraint:OnDelete:SET NULL;"`
	Quotes         []SupplierQuote `json:"quotes,omitempty" gorm:"foreignKey:SupplierID;constraint:OnDelete:CASCADE;"`
	PurchaseOrders []PurchaseOrder `json:"purchase_orders,omitempty" gorm:"foreignKey:SupplierID;"`
}

func (m Supplier) TableName() string {
	return "suppliers"
}

type SupplierQuote struct {
	Model
	SupplierID   uint            `json:"supplier_id" gorm:"not null"`
	ComponentID  uint            `json:"component_id" gorm:"not null"`
	UnitCost     decimal.Decimal `json:"unit_cost" gorm:"type:decimal(12,4)"`
	MinOrderQty  int             `json:"min_order_qty"`
	LeadTimeDays int             `json:"lead_time_days" gorm:"default:0"`
	ValidUntil   *time.Time      `json:"valid_until"`

	Supplier  *Supplier  `json:"supplier,omitempty" gorm:"foreignKey:SupplierID;constraint:OnDelete:CASCADE;"`
	Component *Component `json:"component,omitempty" gorm:"foreignKey:ComponentID;constraint:OnDelete:CASCADE;"`
}

func (m SupplierQuote) TableName() string {
	return "supplier_quotes"
}

// PurchaseOrder carries a free-text status field. Conventional values are
// draft, ordered, shipped and received, but no transition is enforced.
type PurchaseOrder struct {
	Model
	OrderRef        string          `json:"order_ref" gorm:"type:text;uniqueIndex"`
	SupplierID      uint            `json:"supplier_id" gorm:"not null"`
	WarehouseID     *uint           `json:"warehouse_id"`
	PurchaseGroupID *uint           `json:"purchase_group_id"`
	Status          string          `json:"status" gorm:"type:text;default:'draft'"`
	OrderDate       *time.Time      `json:"order_date"`
	ExpectedDate    *time.Time      `json:"expected_date"`
	TotalCost       decimal.Decimal `json:"total_cost" gorm:"type:decimal(14,2)"`

	Supplier      *Supplier              `json:"supplier,omitempty" gorm:"foreignKey:SupplierID;"`
	Warehouse     *Warehouse             `json:"warehouse,omitempty" gorm:"foreignKey:WarehouseID;constraint:OnDelete:SET NULL;"`
	PurchaseGroup *PurchaseGroup         `json:"purchase_group,omitempty" gorm:"foreignKey:PurchaseGroupID;constraint:OnDelete:SET NULL;"`
	Items         []POItem               `json:"items,omitempty" gorm:"foreignKey:PurchaseOrderID;constraint:OnDelete:CASCADE;"`
	ShippingInfos []ShippingInfo         `json:"shipping_infos,omitempty" gorm:"foreignKey:PurchaseOrderID;constraint:OnDelete:CASCADE;"`
	Threads       []POConversationThread `json:"threads,omitempty" gorm:"foreignKey:PurchaseOrderID;constraint:OnDelete:CASCADE;"`
}

func (m PurchaseOrder) TableName() string {
	return "purchase_orders"
}

type POItem struct {
	Model
	PurchaseOrderID uint            `json:"purchase_order_id" gorm:"not null"`
	ComponentID     uint            `json:"component_id" gorm:"not null"`
	OrderedQty      int             `json:"ordered_qty" gorm:"not null;default:0"`
	ReceivedQty     int             `json:"received_qty" gorm:"not null;default:0"`
	UnitCost        decimal.Decimal `json:"unit_cost" gorm:"type:decimal(12,4)"`

	PurchaseOrder *PurchaseOrder `json:"purchase_order,omitempty" gorm:"foreignKey:PurchaseOrderID;constraint:OnDelete:CASCADE;"`
	Component     *Component     `json:"component,omitempty" gorm:"foreignKey:ComponentID;"`
}

func (m POItem) TableName() string {
	return "po_items"
}

type ShippingInfo struct {
	Model
	PurchaseOrderID  uint       `json:"purchase_order_id" gorm:"not null"`
	Carrier          string     `json:"carrier" gorm:"type:text"`
	TrackingNumber   string     `json:"tracking_number" gorm:"type:text"`
	Status           string     `json:"status" gorm:"type:text;default:'pending'"`
	EstimatedArrival *time.Time `json:"estimated_arrival"`
	ActualArrival    *time.Time `json:"actual_arrival"`

	PurchaseOrder *PurchaseOrder `json:"purchase_order,omitempty" gorm:"foreignKey:PurchaseOrderID;constraint:OnDelete:CASCADE;"`
}

func (m ShippingInfo) TableName() string {
	return "shipping_infos"
}

type PurchaseGroup struct {
	Model
	Name        string `json:"name" gorm:"type:text;not null"`
	Description string `json:"description" gorm:"type:text"`

	PurchaseOrders []PurchaseOrder `json:"purchase_orders,omitempty" gorm:"foreignKey:PurchaseGroupID;constraint:OnDelete:SET NULL;"`
}

func (m PurchaseGroup) TableName() string {
	return "purchase_groups"
}
