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

type ProcurementRouter struct {
	*echo.Group
}

func NewProcurementRouter(
	apiRouter APIRouter,
	supplierController *controllers.SupplierController,
	supplierQuoteController *controllers.SupplierQuoteController,
	purchaseOrderController *controllers.PurchaseOrderController,
	poItemController *controllers.POItemController,
	shippingInfoController *controllers.ShippingInfoController,
	purchaseGroupController *controllers.PurchaseGroupController,
) ProcurementRouter {
	supplierRouter := registerCRUD(apiRouter.Group, "/supplier", supplierController)
	supplierRouter.GET("/:id/components", supplierController.Components)
	supplierRouter.GET("/:id/performance", supplierController.Performance)

	registerCRUD(apiRouter.Group, "/supplierquote", supplierQuoteController)

	purchaseOrderRouter := registerCRUD(apiRouter.Group, "/purchaseorder", purchaseOrderController)
	purchaseOrderRouter.GET("/:id/activities", purchaseOrderController.Activities)

	registerCRUD(apiRouter.Group, "/poitem", poItemController)

	shippingInfoRouter := registerCRUD(apiRouter.Group, "/shippinginfo", shippingInfoController)
	shippingInfoRouter.GET("/:id/history", shippingInfoController.History)
	shippingInfoRouter.GET("/:id/events", shippingInfoController.Events)

	registerCRUD(apiRouter.Group, "/purchasegroup", purchaseGroupController)

	return ProcurementRouter{Group: purchaseOrderRouter}
}
