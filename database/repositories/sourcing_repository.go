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

type RFQRepository struct {
	db *gorm.DB
	*GormRepository[models.RFQ]
}

func NewRFQRepository(db *gorm.DB) *RFQRepository {
	return &RFQRepository{
		db:             db,
		GormRepository: newGormRepository[models.RFQ](db, orderNewestFirst, "Supplier", "Items", "Items.Component"),
	}
}

// CreateWithItems persists the RFQ and its line items atomically.
func (g *RFQRepository) CreateWithItems(rfq *models.RFQ, items []models.RFQItem) error {
	return g.Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(rfq).Error; err != nil {
			return err
		}
		for i := range items {
			items[i].RFQID = rfq.ID
			if err := tx.Create(&items[i]).Error; err != nil {
				return err
			}
		}
		rfq.Items = items
		return nil
	})
}

type RFQItemRepository struct {
	*GormRepository[models.RFQItem]
}

func NewRFQItemRepository(db *gorm.DB) *RFQItemRepository {
	return &RFQItemRepository{newGormRepository[models.RFQItem](db, orderNewestFirst, "Component")}
}

type ReturnOrderRepository struct {
	db *gorm.DB
	*GormRepository[models.ReturnOrder]
}

func NewReturnOrderRepository(db *gorm.DB) *ReturnOrderRepository {
	return &ReturnOrderRepository{
		db:             db,
		GormRepository: newGormRepository[models.ReturnOrder](db, orderNewestFirst, "PurchaseOrder", "Items", "Items.Component"),
	}
}

// CreateWithItems persists the return order and its items atomically.
func (g *ReturnOrderRepository) CreateWithItems(order *models.ReturnOrder, items []models.ReturnOrderItem) error {
	return g.Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(order).Error; err != nil {
			return err
		}
		for i := range items {
			items[i].ReturnOrderID = order.ID
			if err := tx.Create(&items[i]).Error; err != nil {
				return err
			}
		}
		order.Items = items
		return nil
	})
}

type ReturnOrderItemRepository struct {
	*GormRepository[models.ReturnOrderItem]
}

func NewReturnOrderItemRepository(db *gorm.DB) *ReturnOrderItemRepository {
	return &ReturnOrderItemRepository{newGormRepository[models.ReturnOrderItem](db, orderNewestFirst, "Component")}
}

type RiskPredictionRepository struct {
	*GormRepository[models.RiskPrediction]
}

func NewRiskPredictionRepository(db *gorm.DB) *RiskPredictionRepository {
	return &RiskPredictionRepository{newGormRepository[models.RiskPrediction](db, orderNewestFirst, "Supplier", "Component")}
}

type ScenarioModelRepository struct {
	*GormRepository[models.ScenarioModel]
}

func NewScenarioModelRepository(db *gorm.DB) *ScenarioModelRepository {
	return &ScenarioModelRepository{newGormRepository[models.ScenarioModel](db, orderNewestFirst)}
}

type SupplierPerformanceRepository struct {
	db *gorm.DB
	*GormRepository[models.SupplierPerformance]
}

func NewSupplierPerformanceRepository(db *gorm.DB) *SupplierPerformanceRepository {
	return &SupplierPerformanceRepository{
		db:             db,
		GormRepository: newGormRepository[models.SupplierPerformance](db, "period ASC", "Supplier"),
	}
}

func (g *SupplierPerformanceRepository) AllForSupplier(supplierID uint) ([]models.SupplierPerformance, error) {
	var rows []models.SupplierPerformance
	err := g.db.Where("supplier_id = ?", supplierID).Order("period ASC").Find(&rows).Error
	return rows, err
}

type SupplierScoreRepository struct {
	*GormRepository[models.SupplierScore]
}

func NewSupplierScoreRepository(db *gorm.DB) *SupplierScoreRepository {
	return &SupplierScoreRepository{newGormRepository[models.SupplierScore](db, orderNewestFirst, "Supplier")}
}
