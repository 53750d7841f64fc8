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

import "github.com/shopspring/decimal"

type ProductCreateRequest struct {
	OrganizationID  uint             `json:"organization_id" validate:"required"`
	Name            string           `json:"name" validate:"required"`
	SKU             string           `json:"sku"`
	Description     string           `json:"description"`
	TargetPrice     *decimal.Decimal `json:"target_price"`
	LifecycleStatus string           `json:"lifecycle_status"`
}

type ProductPatchRequest struct {
	OrganizationID  *uint            `json:"organization_id"`
	Name            *string          `json:"name"`
	SKU             *string          `json:"sku"`
	Description     *string          `json:"description"`
	TargetPrice     *decimal.Decimal `json:"target_price"`
	LifecycleStatus *string          `json:"lifecycle_status"`
}

type ComponentCreateRequest struct {
	Num                string           `json:"num" validate:"required"`
	Description        string           `json:"description"`
	SupplierPartNumber string           `json:"supplier_part_number"`
	SupplierID         *uint            `json:"supplier_id"`
	UnitCost           *decimal.Decimal `json:"unit_cost"`
	LeadTimeDays       int              `json:"lead_time_days"`
}

type ComponentPatchRequest struct {
	Num                *string          `json:"num"`
	Description        *string          `json:"description"`
	SupplierPartNumber *string          `json:"supplier_part_number"`
	SupplierID         Optional[uint]   `json:"supplier_id"`
	UnitCost           *decimal.Decimal `json:"unit_cost"`
	LeadTimeDays       *int             `json:"lead_time_days"`
}

type BOMItemCreateRequest struct {
	ProductID   uint `json:"product_id" validate:"required"`
	ComponentID uint `json:"component_id" validate:"required"`
	RequiredQty *int `json:"required_qty" validate:"omitempty,min=1"`
}

type BOMItemPatchRequest struct {
	ProductID   *uint `json:"product_id"`
	ComponentID *uint `json:"component_id"`
	RequiredQty *int  `json:"required_qty"`
}

type ProductDemandCreateRequest struct {
	ProductID  uint `json:"product_id" validate:"required"`
	Month      int  `json:"month" validate:"required,min=1,max=12"`
	Year       int  `json:"year" validate:"required"`
	Qty        int  `json:"qty"`
	IsForecast bool `json:"is_forecast"`
}

type ProductDemandPatchRequest struct {
	ProductID  *uint `json:"product_id"`
	Month      *int  `json:"month" validate:"omitempty,min=1,max=12"`
	Year       *int  `json:"year"`
	Qty        *int  `json:"qty"`
	IsForecast *bool `json:"is_forecast"`
}
