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

import "gorm.io/datatypes"

type Warehouse struct {
	Model
	OrganizationID uint   `json:"organization_id" gorm:"not null"`
	Name           string `json:"name" gorm:"type:text;not null"`
	Location       string `json:"location" gorm:"type:text"`
	Capacity       int    `json:"capacity" gorm:"default:0"`

	Organization *Organization        `json:"organization,omitempty" gorm:"foreignKey:OrganizationID;constraint:OnDelete:CASCADE;"`
	Inventory    []WarehouseInventory `json:"inventory,omitempty" gorm:"foreignKey:WarehouseID;constraint:OnDelete:CASCADE;"`
	MonthlyStock []MonthlyStock       `json:"monthly_stock,omitempty" gorm:"foreignKey:WarehouseID;constraint:OnDelete:CASCADE;"`
	Layouts      []WarehouseLayout    `json:"layouts,omitempty" gorm:"foreignKey:WarehouseID;constraint:OnDelete:CASCADE;"`
	BinLocations []BinLocation        `json:"bin_locations,omitempty" gorm:"foreignKey:WarehouseID;constraint:OnDelete:CASCADE;"`
}

func (m Warehouse) TableName() string {
	return "warehouses"
}

type WarehouseInventory struct {
	Model
	WarehouseID   uint  `json:"warehouse_id" gorm:"not null;uniqueIndex:idx_wh_inventory_component"`
	ComponentID   uint  `json:"component_id" gorm:"not null;uniqueIndex:idx_wh_inventory_component"`
	BinLocationID *uint `json:"bin_location_id"`
	CurrentQty    int   `json:"current_qty" gorm:"not null;default:0"`
	IncomingQty   int   `json:"incoming_qty" gorm:"not null;default:0"`
	OutgoingQty   int   `json:"outgoing_qty" gorm:"not null;default:0"`

	Warehouse   *Warehouse   `json:"warehouse,omitempty" gorm:"foreignKey:WarehouseID;constraint:OnDelete:CASCADE;"`
	Component   *Component   `json:"component,omitempty" gorm:"foreignKey:ComponentID;constraint:OnDelete:CASCADE;"`
	BinLocation *BinLocation `json:"bin_location,omitempty" gorm:"foreignKey:BinLocationID;constraint:OnDelete:SET NULL;"`
}

func (m WarehouseInventory) TableName() string {
	return "warehouse_inventories"
}

type MonthlyStock struct {
	Model
	WarehouseID uint `json:"warehouse_id" gorm:"not null"`
	ComponentID uint `json:"component_id" gorm:"not null"`
	Month       int  `json:"month" gorm:"not null"`
	Year        int  `json:"year" gorm:"not null"`
	Qty         int  `json:"qty" gorm:"not null;default:0"`

	Warehouse *Warehouse `json:"warehouse,omitempty" gorm:"foreignKey:WarehouseID;constraint:OnDelete:CASCADE;"`
	Component *Component `json:"component,omitempty" gorm:"foreignKey:ComponentID;constraint:OnDelete:CASCADE;"`
}

func (m MonthlyStock) TableName() string {
	return "monthly_stocks"
}

type WarehouseLayout struct {
	Model
	WarehouseID uint           `json:"warehouse_id" gorm:"not null"`
	Name        string         `json:"name" gorm:"type:text;not null"`
	Grid        datatypes.JSON `json:"grid" gorm:"type:jsonb"`

	Warehouse *Warehouse `json:"warehouse,omitempty" gorm:"foreignKey:WarehouseID;constraint:OnDelete:CASCADE;"`
}

func (m WarehouseLayout) TableName() string {
	return "warehouse_layouts"
}

type BinLocation struct {
	Model
	WarehouseID uint   `json:"warehouse_id" gorm:"not null"`
	Code        string `json:"code" gorm:"type:text;not null"`
	Zone        string `json:"zone" gorm:"type:text"`
	Capacity    int    `json:"capacity" gorm:"default:0"`

	Warehouse *Warehouse `json:"warehouse,omitempty" gorm:"foreignKey:WarehouseID;constraint:OnDelete:CASCADE;"`
}

func (m BinLocation) TableName() string {
	return "bin_locations"
}
