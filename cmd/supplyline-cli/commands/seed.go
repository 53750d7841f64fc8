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

package commands

import (
	"fmt"
	"log/slog"
	"time"

	"github.com/shopspring/decimal"
	"github.com/spf13/cobra"

	"github.com/supplyline-dev/supplyline/database"
	"github.com/supplyline-dev/supplyline/database/models"
	"github.com/supplyline-dev/supplyline/database/repositories"
	"github.com/supplyline-dev/supplyline/shared"
)

func NewSeedCommand() *cobra.Command {
	seed := cobra.Command{
		Use:   "seed",
		Short: "Seed the database with demo data",
		Args:  cobra.ExactArgs(0),
		Run: func(cmd *cobra.Command, args []string) {
			shared.LoadConfig() // nolint
			db, err := shared.DatabaseFactory()
			if err != nil {
				slog.Error("could not connect to database", "err", err)
				return
			}

			if err := database.AutoMigrate(db); err != nil {
				slog.Error("could not run migrations", "err", err)
				return
			}

			orderCount, err := cmd.Flags().GetInt("orders")
			if err != nil {
				orderCount = 1
			}

			if err := seedDemoData(db, orderCount); err != nil {
				slog.Error("could not seed demo data", "err", err)
				return
			}
			slog.Info("seeding done", "orders", orderCount)
		},
	}

	seed.Flags().Int("orders", 1, "number of demo purchase orders to create")

	return &seed
}

func seedDemoData(db shared.DB, orderCount int) error {
	organizationRepository := repositories.NewOrganizationRepository(db)
	userRepository := repositories.NewUserRepository(db)
	supplierRepository := repositories.NewSupplierRepository(db)
	warehouseRepository := repositories.NewWarehouseRepository(db)
	componentRepository := repositories.NewComponentRepository(db)
	inventoryRepository := repositories.NewWarehouseInventoryRepository(db)
	purchaseOrderRepository := repositories.NewPurchaseOrderRepository(db)

	org := models.Organization{
		Name:        "Acme Manufacturing",
		Description: "Demo organization",
	}
	if err := organizationRepository.Create(nil, &org); err != nil {
		return err
	}

	user := models.User{
		OrganizationID: &org.ID,
		Name:           "Demo Buyer",
		Email:          fmt.Sprintf("buyer+%d@example.com", time.Now().UnixNano()),
		Role:           "buyer",
	}
	if err := userRepository.Create(nil, &user); err != nil {
		return err
	}

	supplier := models.Supplier{
		Name:                 "Globex Components",
		ContactEmail:         "sales@globex.example.com",
		Location:             "Rotterdam",
		Rating:               5,
		HistoricalOntimeRate: 0.97,
		AvgUnitCost:          decimal.NewFromFloat(0.74),
		Preferred:            true,
	}
	if err := supplierRepository.Create(nil, &supplier); err != nil {
		return err
	}

	warehouse := models.Warehouse{
		OrganizationID: org.ID,
		Name:           "Central Warehouse",
		Location:       "Hamburg",
		Capacity:       25000,
	}
	if err := warehouseRepository.Create(nil, &warehouse); err != nil {
		return err
	}

	components := []models.Component{
		{Num: "CMP-1001", Description: "M4 hex bolt", SupplierID: &supplier.ID, UnitCost: decimal.NewFromFloat(0.12), LeadTimeDays: 7},
		{Num: "CMP-1002", Description: "Bearing 608ZZ", SupplierID: &supplier.ID, UnitCost: decimal.NewFromFloat(1.85), LeadTimeDays: 14},
		{Num: "CMP-1003", Description: "Aluminium bracket", SupplierID: &supplier.ID, UnitCost: decimal.NewFromFloat(3.40), LeadTimeDays: 21},
	}
	for i := range components {
		if err := componentRepository.Create(nil, &components[i]); err != nil {
			return err
		}
		inventory := models.WarehouseInventory{
			WarehouseID: warehouse.ID,
			ComponentID: components[i].ID,
			CurrentQty:  120 * (i + 1),
		}
		if err := inventoryRepository.Create(nil, &inventory); err != nil {
			return err
		}
	}

	now := time.Now()
	for i := 0; i < orderCount; i++ {
		order := models.PurchaseOrder{
			OrderRef:    fmt.Sprintf("PO-DEMO-%d-%d", now.UnixNano(), i),
			SupplierID:  supplier.ID,
			WarehouseID: &warehouse.ID,
			Status:      "open",
			OrderDate:   &now,
			TotalCost:   decimal.NewFromFloat(451.00),
		}
		items := []models.POItem{
			{ComponentID: components[0].ID, OrderedQty: 500, UnitCost: components[0].UnitCost},
			{ComponentID: components[1].ID, OrderedQty: 100, UnitCost: components[1].UnitCost},
			{ComponentID: components[2].ID, OrderedQty: 60, UnitCost: components[2].UnitCost},
		}
		if err := purchaseOrderRepository.CreateWithItems(&order, items); err != nil {
			return err
		}
	}

	return nil
}
