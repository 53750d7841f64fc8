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

type WarehouseRepository struct {
	*GormRepository[models.Warehouse]
}

func NewWarehouseRepository(db *gorm.DB) *WarehouseRepository {
	return &WarehouseRepository{newGormRepository[models.Warehouse](db, orderByName, "Organization")}
}

type WarehouseInventoryRepository struct {
	db *gorm.DB
	*GormRepository[models.WarehouseInventory]
}

func NewWarehouseInventoryRepository(db *gorm.DB) *WarehouseInventoryRepository {
	return &WarehouseInventoryRepository{
		db:             db,
		GormRepository: newGormRepository[models.WarehouseInventory](db, orderNewestFirst, "Warehouse", "Component", "BinLocation"),
	}
}

// CountBelowThreshold counts inventory rows whose current quantity fell
// under the given threshold. Feeds the dashboard low-stock figure.
func (g *WarehouseInventoryRepository) CountBelowThreshold(threshold int) (int64, error) {
	var count int64
	err := g.db.Model(models.WarehouseInventory{}).Where("current_qty < ?", threshold).Count(&count).Error
	return count, err
}

type MonthlyStockRepository struct {
	*GormRepository[models.MonthlyStock]
}

func NewMonthlyStockRepository(db *gorm.DB) *MonthlyStockRepository {
	return &MonthlyStockRepository{newGormRepository[models.MonthlyStock](db, "year ASC, month ASC", "Warehouse", "Component")}
}

type WarehouseLayoutRepository struct {
	*GormRepository[models.WarehouseLayout]
}

func NewWarehouseLayoutRepository(db *gorm.DB) *WarehouseLayoutRepository {
	return &WarehouseLayoutRepository{newGormRepository[models.WarehouseLayout](db, orderByName, "Warehouse")}
}

type BinLocationRepository struct {
	*GormRepository[models.BinLocation]
}

func NewBinLocationRepository(db *gorm.DB) *BinLocationRepository {
	return &BinLocationRepository{newGormRepository[models.BinLocation](db, "code ASC", "Warehouse")}
}
