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

type InvoiceRepository struct {
	db *gorm.DB
	*GormRepository[models.Invoice]
}

func NewInvoiceRepository(db *gorm.DB) *InvoiceRepository {
	return &InvoiceRepository{
		db:             db,
		GormRepository: newGormRepository[models.Invoice](db, orderNewestFirst, "Supplier", "PurchaseOrder", "Payments"),
	}
}

// AllOpen returns every invoice that still carries a balance. Used by
// the finance summary to compute outstanding payables.
func (g *InvoiceRepository) AllOpen() ([]models.Invoice, error) {
	var invoices []models.Invoice
	err := g.db.Where("status = ?", "open").Order(orderNewestFirst).Find(&invoices).Error
	return invoices, err
}

type PaymentRepository struct {
	*GormRepository[models.Payment]
}

func NewPaymentRepository(db *gorm.DB) *PaymentRepository {
	return &PaymentRepository{newGormRepository[models.Payment](db, orderNewestFirst, "Invoice")}
}

type LandedCostRepository struct {
	*GormRepository[models.LandedCost]
}

func NewLandedCostRepository(db *gorm.DB) *LandedCostRepository {
	return &LandedCostRepository{newGormRepository[models.LandedCost](db, orderNewestFirst, "Component", "Supplier")}
}

type InventoryValuationRepository struct {
	*GormRepository[models.InventoryValuation]
}

func NewInventoryValuationRepository(db *gorm.DB) *InventoryValuationRepository {
	return &InventoryValuationRepository{newGormRepository[models.InventoryValuation](db, orderNewestFirst, "Warehouse")}
}
