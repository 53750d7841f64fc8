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

package database

import (
	"github.com/supplyline-dev/supplyline/database/models"
	"gorm.io/gorm"
)

// AutoMigrate synchronizes the schema with the entity declarations. The
// declarations are the single source of truth, there is no separate
// migration history.
func AutoMigrate(db *gorm.DB) error {
	return db.AutoMigrate(
		&models.Organization{},
		&models.User{},

		&models.Supplier{},
		&models.Component{},
		&models.Product{},
		&models.BOMItem{},
		&models.ProductDemand{},

		&models.Warehouse{},
		&models.BinLocation{},
		&models.WarehouseInventory{},
		&models.MonthlyStock{},
		&models.WarehouseLayout{},

		&models.PurchaseGroup{},
		&models.PurchaseOrder{},
		&models.POItem{},
		&models.ShippingInfo{},
		&models.SupplierQuote{},

		&models.POConversationThread{},
		&models.ChatMessage{},
		&models.MessageAttachment{},

		&models.Invoice{},
		&models.Payment{},
		&models.LandedCost{},
		&models.InventoryValuation{},

		&models.RFQ{},
		&models.RFQItem{},
		&models.ReturnOrder{},
		&models.ReturnOrderItem{},
		&models.RiskPrediction{},
		&models.ScenarioModel{},
		&models.SupplierPerformance{},
		&models.SupplierScore{},

		&models.AuditLog{},
		&models.AISuggestion{},
		&models.Alert{},
		&models.AnomalyLog{},
		&models.AutomationRule{},
		&models.CycleCount{},
		&models.Goal{},
		&models.InventoryAudit{},
		&models.InventoryBatch{},
		&models.InventoryTransaction{},
		&models.Task{},
	)
}
