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

type SupplierRepository struct {
	db *gorm.DB
	*GormRepository[models.Supplier]
}

func NewSupplierRepository(db *gorm.DB) *SupplierRepository {
	return &SupplierRepository{
		db:             db,
		GormRepository: newGormRepository[models.Supplier](db, orderByName),
	}
}

type SupplierQuoteRepository struct {
	*GormRepository[models.SupplierQuote]
}

func NewSupplierQuoteRepository(db *gorm.DB) *SupplierQuoteRepository {
	return &SupplierQuoteRepository{newGormRepository[models.SupplierQuote](db, orderNewestFirst, "Supplier", "Component")}
}

type PurchaseOrderRepository struct {
	db *gorm.DB
	*GormRepository[models.PurchaseOrder]
}

func NewPurchaseOrderRepository(db *gorm.DB) *PurchaseOrderRepository {
	return &PurchaseOrderRepository{
		db:             db,
		GormRepository: newGormRepository[models.PurchaseOrder](db, orderNewestFirst, "Supplier", "Warehouse", "PurchaseGroup", "Items", "Items.Component"),
	}
}

// CountOpen counts orders still in flight. Status is free text with
// draft/ordered/shipped/received as the conventional values, so open means
// anything not yet received or cancelled.
func (g *PurchaseOrderRepository) CountOpen() (int64, error) {
	var count int64
	err := g.db.Model(&models.PurchaseOrder{}).
		Where("status NOT IN ?", []string{"received", "cancelled"}).
		Count(&count).Error
	return count, err
}

// CreateWithItems persists the order and its items in a single transaction.
// A failure on any item leaves no orphaned parent behind.
func (g *PurchaseOrderRepository) CreateWithItems(order *models.PurchaseOrder, items []models.POItem) error {
	return g.Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(order).Error; err != nil {
			return err
		}
		for i := range items {
			items[i].PurchaseOrderID = order.ID
			if err := tx.Create(&items[i]).Error; err != nil {
				return err
			}
		}
		order.Items = items
		return nil
	})
}

type POItemRepository struct {
	*GormRepository[models.POItem]
}

func NewPOItemRepository(db *gorm.DB) *POItemRepository {
	return &POItemRepository{newGormRepository[models.POItem](db, orderNewestFirst, "Component")}
}

type ShippingInfoRepository struct {
	*GormRepository[models.ShippingInfo]
}

func NewShippingInfoRepository(db *gorm.DB) *ShippingInfoRepository {
	return &ShippingInfoRepository{newGormRepository[models.ShippingInfo](db, orderNewestFirst, "PurchaseOrder")}
}

type PurchaseGroupRepository struct {
	*GormRepository[models.PurchaseGroup]
}

func NewPurchaseGroupRepository(db *gorm.DB) *PurchaseGroupRepository {
	return &PurchaseGroupRepository{newGormRepository[models.PurchaseGroup](db, orderByName, "PurchaseOrders")}
}
