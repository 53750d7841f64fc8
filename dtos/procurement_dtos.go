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

type SupplierCreateRequest struct {
	Name                 string           `json:"name" validate:"required"`
	ContactEmail         string           `json:"contact_email" validate:"omitempty,email"`
	Phone                string           `json:"phone"`
	Location             string           `json:"location"`
	Rating               *int             `json:"rating" validate:"omitempty,min=1,max=5"`
	HistoricalOntimeRate *float64         `json:"historical_ontime_rate" validate:"omitempty,min=0,max=1"`
	AvgUnitCost          *decimal.Decimal `json:"avg_unit_cost"`
	Preferred            *bool            `json:"preferred"`
}

type SupplierPatchRequest struct {
	Name                 *string          `json:"name"`
	ContactEmail         *string          `json:"contact_email" validate:"omitempty,email"`
	Phone                *string          `json:"phone"`
	Location             *string          `json:"location"`
	Rating               *int             `json:"rating" validate:"omitempty,min=1,max=5"`
	HistoricalOntimeRate *float64         `json:"historical_ontime_rate" validate:"omitempty,min=0,max=1"`
	AvgUnitCost          *decimal.Decimal `json:"avg_unit_cost"`
	Preferred            *bool            `json:"preferred"`
}

type SupplierQuoteCreateRequest struct {
	SupplierID   uint             `json:"supplier_id" validate:"required"`
	ComponentID  uint             `json:"component_id" validate:"required"`
	UnitCost     *decimal.Decimal `json:"unit_cost"`
	MinOrderQty  *int             `json:"min_order_qty" validate:"omitempty,min=1"`
	LeadTimeDays int              `json:"lead_time_days"`
	ValidUntil   *time.Time       `json:"valid_until"`
}

type SupplierQuotePatchRequest struct {
	SupplierID   *uint            `json:"supplier_id"`
	ComponentID  *uint            `json:"component_id"`
	UnitCost     *decimal.Decimal `json:"unit_cost"`
	MinOrderQty  *int             `json:"min_order_qty"`
	LeadTimeDays *int             `json:"lead_time_days"`
	ValidUntil   *time.Time       `json:"valid_until"`
}

type PurchaseOrderCreateRequest struct {
	OrderRef        string                `json:"order_ref"`
	SupplierID      uint                  `json:"supplier_id" validate:"required"`
	WarehouseID     *uint                 `json:"warehouse_id"`
	PurchaseGroupID *uint                 `json:"purchase_group_id"`
	Status          string                `json:"status"`
	OrderDate       *time.Time            `json:"order_date"`
	ExpectedDate    *time.Time            `json:"expected_date"`
	TotalCost       *decimal.Decimal      `json:"total_cost"`
	Items           []POItemInlineRequest `json:"items" validate:"dive"`
}

// POItemInlineRequest is a line item supplied inline on purchase order
// creation. The parent id comes from the surrounding order.
type POItemInlineRequest struct {
	ComponentID uint             `json:"component_id" validate:"required"`
	OrderedQty  int              `json:"ordered_qty"`
	ReceivedQty int              `json:"received_qty"`
	UnitCost    *decimal.Decimal `json:"unit_cost"`
}

type PurchaseOrderPatchRequest struct {
	OrderRef        *string          `json:"order_ref"`
	SupplierID      *uint            `json:"supplier_id"`
	WarehouseID     Optional[uint]   `json:"warehouse_id"`
	PurchaseGroupID Optional[uint]   `json:"purchase_group_id"`
	Status          *string          `json:"status"`
	OrderDate       *time.Time       `json:"order_date"`
	ExpectedDate    *time.Time       `json:"expected_date"`
	TotalCost       *decimal.Decimal `json:"total_cost"`
}

type POItemCreateRequest struct {
	PurchaseOrderID uint             `json:"purchase_order_id" validate:"required"`
	ComponentID     uint             `json:"component_id" validate:"required"`
	OrderedQty      int              `json:"ordered_qty"`
	ReceivedQty     int              `json:"received_qty"`
	UnitCost        *decimal.Decimal `json:"unit_cost"`
}

type POItemPatchRequest struct {
	PurchaseOrderID *uint            `json:"purchase_order_id"`
	ComponentID     *uint            `json:"component_id"`
	OrderedQty      *int             `json:"ordered_qty"`
	ReceivedQty     *int             `json:"received_qty"`
	UnitCost        *decimal.Decimal `json:"unit_cost"`
}

type ShippingInfoCreateRequest struct {
	PurchaseOrderID  uint       `json:"purchase_order_id" validate:"required"`
	Carrier          string     `json:"carrier"`
	TrackingNumber   string     `json:"tracking_number"`
	Status           string     `json:"status"`
	EstimatedArrival *time.Time `json:"estimated_arrival"`
	ActualArrival    *time.Time `json:"actual_arrival"`
}

type ShippingInfoPatchRequest struct {
	PurchaseOrderID  *uint      `json:"purchase_order_id"`
	Carrier          *string    `json:"carrier"`
	TrackingNumber   *string    `json:"tracking_number"`
	Status           *string    `json:"status"`
	EstimatedArrival *time.Time `json:"estimated_arrival"`
	ActualArrival    *time.Time `json:"actual_arrival"`
}

type PurchaseGroupCreateRequest struct {
	Name        string `json:"name" validate:"required"`
	Description string `json:"description"`
}

type PurchaseGroupPatchRequest struct {
	Name        *string `json:"name"`
	Description *string `json:"description"`
}
