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

import "github.com/shopspring/decimal"

type Product struct {
	Model
	OrganizationID  uint            `json:"organization_id" gorm:"not null"`
	Name            string          `json:"name" gorm:"type:text;not null"`
	SKU             string          `json:"sku" gorm:"column:sku;type:text;uniqueIndex"`
	Description     string          `json:"description" gorm:"type:text"`
	TargetPrice     decimal.Decimal `json:"target_price" gorm:"type:decimal(12,2)"`
	LifecycleStatus string          `json:"lifecycle_status" gorm:"type:text;default:'active'"`

	Organization *Organization   `json:"organization,omitempty" gorm:"foreignKey:OrganizationID;constraint:OnDelete:CASCADE;"`
	BOMItems     []BOMItem       `json:"bom_items,omitempty" gorm:"foreignKey:ProductID;constraint:OnDelete:CASCADE;"`
	Demands      []ProductDemand `json:"demands,omitempty" gorm:"foreignKey:ProductID;constraint:OnDelete:CASCADE;"`
}

func (m Product) TableName() string {
	return "products"
}

type Component struct {
	Model
	Num                string          `json:"num" gorm:"type:text;not null"`
	Description        string          `json:"description" gorm:"type:text"`
	SupplierPartNumber string          `json:"supplier_part_number" gorm:"type:text"`
	SupplierID         *uint           `json:"supplier_id"`
	UnitCost           decimal.Decimal `json:"unit_cost" gorm:"type:decimal(12,4)"`
	LeadTimeDays       int             `json:"lead_time_days" gorm:"default:0"`

	Supplier *Supplier `json:"supplier,omitempty" gorm:"foreignKey:SupplierID;constraint:OnDelete:SET NULL;"`
}

func (m Component) TableName() string {
	return "components"
}

// BOMItem is the product/component junction carrying the required quantity
// per assembled unit.
type BOMItem struct {
	Model
	ProductID   uint `json:"product_id" gorm:"not null;uniqueIndex:idx_bom_product_component"`
	ComponentID uint `json:"component_id" gorm:"not null;uniqueIndex:idx_bom_product_component"`
	RequiredQty int  `json:"required_qty" gorm:"not null"`

	Product   *Product   `json:"product,omitempty" gorm:"foreignKey:ProductID;constraint:OnDelete:CASCADE;"`
	Component *Component `json:"component,omitempty" gorm:"foreignKey:ComponentID;constraint:OnDelete:CASCADE;"`
}

func (m BOMItem) TableName() string {
	return "bom_items"
}

type ProductDemand struct {
	Model
	ProductID  uint `json:"product_id" gorm:"not null"`
	Month      int  `json:"month" gorm:"not null"`
	Year       int  `json:"year" gorm:"not null"`
	Qty        int  `json:"qty" gorm:"not null;default:0"`
	IsForecast bool `json:"is_forecast" gorm:"default:false"`

	Product *Product `json:"product,omitempty" gorm:"foreignKey:ProductID;constraint:OnDelete:CASCADE;"`
}

func (m ProductDemand) TableName() string {
	return "product_demands"
}
