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

type ProductRouter struct {
	*echo.Group
}

func NewProductRouter(
	apiRouter APIRouter,
	productController *controllers.ProductController,
	componentController *controllers.ComponentController,
	bomItemController *controllers.BOMItemController,
	productDemandController *controllers.ProductDemandController,
) ProductRouter {
	productRouter := registerCRUD(apiRouter.Group, "/product", productController)
	registerCRUD(apiRouter.Group, "/component", componentController)
	registerCRUD(apiRouter.Group, "/bomitem", bomItemController)
	registerCRUD(apiRouter.Group, "/productdemand", productDemandController)

	return ProductRouter{Group: productRouter}
}
