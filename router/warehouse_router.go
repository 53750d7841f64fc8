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

type WarehouseRouter struct {
	*echo.Group
}

func NewWarehouseRouter(
	apiRouter APIRouter,
	warehouseController *controllers.WarehouseController,
	warehouseInventoryController *controllers.WarehouseInventoryController,
	monthlyStockController *controllers.MonthlyStockController,
	warehouseLayoutController *controllers.WarehouseLayoutController,
	binLocationController *controllers.BinLocationController,
) WarehouseRouter {
	warehouseRouter := registerCRUD(apiRouter.Group, "/warehouse", warehouseController)
	registerCRUD(apiRouter.Group, "/warehouseinventory", warehouseInventoryController)
	registerCRUD(apiRouter.Group, "/monthlystock", monthlyStockController)
	registerCRUD(apiRouter.Group, "/warehouselayout", warehouseLayoutController)
	registerCRUD(apiRouter.Group, "/binlocation", binLocationController)

	return WarehouseRouter{Group: warehouseRouter}
}
