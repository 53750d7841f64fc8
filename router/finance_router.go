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

package router

import (
	"github.com/labstack/echo/v4"

	"github.com/supplyline-dev/supplyline/controllers"
)

type FinanceRouter struct {
	*echo.Group
}

func NewFinanceRouter(
	apiRouter APIRouter,
	invoiceController *controllers.InvoiceController,
	paymentController *controllers.PaymentController,
	landedCostController *controllers.LandedCostController,
	inventoryValuationController *controllers.InventoryValuationController,
) FinanceRouter {
	invoiceRouter := registerCRUD(apiRouter.Group, "/invoice", invoiceController)
	registerCRUD(apiRouter.Group, "/payment", paymentController)
	registerCRUD(apiRouter.Group, "/landedcost", landedCostController)
	registerCRUD(apiRouter.Group, "/inventoryvaluation", inventoryValuationController)

	return FinanceRouter{Group: invoiceRouter}
}
