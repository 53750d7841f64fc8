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

import "gorm.io/datatypes"

type WarehouseCreateRequest struct {
	OrganizationID uint   `json:"organization_id" validate:"required"`
	Name           string `json:"name" validate:"required"`
	Location       string `json:"location"`
	Capacity       int    `json:"capacity" validate:"omitempty,min=0"`
}

type WarehousePatchRequest struct {
	OrganizationID *uint   `json:"organization_id"`
	Name           *string `json:"name"`
	Location       *string `json:"location"`
	Capacity       *int    `json:"capacity" validate:"omitempty,min=0"`
}

type WarehouseInventoryCreateRequest struct {
	WarehouseID   uint  `json:"warehouse_id" validate:"required"`
	ComponentID   uint  `json:"component_id" validate:"required"`
	BinLocationID *uint `json:"bin_location_id"`
	CurrentQty    int   `json:"current_qty"`
	IncomingQty   int   `json:"incoming_qty"`
	OutgoingQty   int   `json:"outgoing_qty"`
}

type WarehouseInventoryPatchRequest struct {
	WarehouseID   *uint          `json:"warehouse_id"`
	ComponentID   *uint          `json:"component_id"`
	BinLocationID Optional[uint] `json:"bin_location_id"`
	CurrentQty    *int           `json:"current_qty"`
	IncomingQty   *int           `json:"incoming_qty"`
	OutgoingQty   *int           `json:"outgoing_qty"`
}

type MonthlyStockCreateRequest struct {
	WarehouseID uint `json:"warehouse_id" validate:"required"`
	ComponentID uint `json:"component_id" validate:"required"`
	Month       int  `json:"month" validate:"required,min=1,max=12"`
	Year        int  `json:"year" validate:"required"`
	Qty         int  `json:"qty"`
}

type MonthlyStockPatchRequest struct {
	WarehouseID *uint `json:"warehouse_id"`
	ComponentID *uint `json:"component_id"`
	Month       *int  `json:"month" validate:"omitempty,min=1,max=12"`
	Year        *int  `json:"year"`
	Qty         *int  `json:"qty"`
}

type WarehouseLayoutCreateRequest struct {
	WarehouseID uint           `json:"warehouse_id" validate:"required"`
	Name        string         `json:"name" validate:"required"`
	Grid        datatypes.JSON `json:"grid"`
}

type WarehouseLayoutPatchRequest struct {
	WarehouseID *uint          `json:"warehouse_id"`
	Name        *string        `json:"name"`
	Grid        datatypes.JSON `json:"grid"`
}

type BinLocationCreateRequest struct {
	WarehouseID uint   `json:"warehouse_id" validate:"required"`
	Code        string `json:"code" validate:"required"`
	Zone        string `json:"zone"`
	Capacity    int    `json:"capacity" validate:"omitempty,min=0"`
}

type BinLocationPatchRequest struct {
	WarehouseID *uint   `json:"warehouse_id"`
	Code        *string `json:"code"`
	Zone        *string `json:"zone"`
	Capacity    *int    `json:"capacity" validate:"omitempty,min=0"`
}
