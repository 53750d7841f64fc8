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

package repositories

import (
	"github.com/supplyline-dev/supplyline/database/models"
	"gorm.io/gorm"
)

type ProductRepository struct {
	*GormRepository[models.Product]
}

func NewProductRepository(db *gorm.DB) *ProductRepository {
	return &ProductRepository{newGormRepository[models.Product](db, orderByName, "Organization", "BOMItems", "BOMItems.Component")}
}

type ComponentRepository struct {
	db *gorm.DB
	*GormRepository[models.Component]
}

func NewComponentRepository(db *gorm.DB) *ComponentRepository {
	return &ComponentRepository{
		db:             db,
		GormRepository: newGormRepository[models.Component](db, "num ASC", "Supplier"),
	}
}

func (g *ComponentRepository) AllBySupplier(supplierID uint) ([]models.Component, error) {
	var components []models.Component
	err := g.db.Where("supplier_id = ?", supplierID).Order("num ASC").Find(&components).Error
	return components, err
}

type BOMItemRepository struct {
	*GormRepository[models.BOMItem]
}

func NewBOMItemRepository(db *gorm.DB) *BOMItemRepository {
	return &BOMItemRepository{newGormRepository[models.BOMItem](db, orderNewestFirst, "Product", "Component")}
}

type ProductDemandRepository struct {
	*GormRepository[models.ProductDemand]
}

func NewProductDemandRepository(db *gorm.DB) *ProductDemandRepository {
	return &ProductDemandRepository{newGormRepository[models.ProductDemand](db, "year ASC, month ASC", "Product")}
}
