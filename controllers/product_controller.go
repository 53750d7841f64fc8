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

package controllers

import (
	"net/http"

	"github.com/supplyline-dev/supplyline/database/models"
	"github.com/supplyline-dev/supplyline/database/repositories"
	"github.com/supplyline-dev/supplyline/dtos"
	"github.com/supplyline-dev/supplyline/shared"
	"github.com/supplyline-dev/supplyline/transformer"
)

type ProductController struct {
	productRepository      *repositories.ProductRepository
	organizationRepository *repositories.OrganizationRepository
}

func NewProductController(productRepository *repositories.ProductRepository, organizationRepository *repositories.OrganizationRepository) *ProductController {
	return &ProductController{
		productRepository:      productRepository,
		organizationRepository: organizationRepository,
	}
}

func (c ProductController) List(ctx shared.Context) error {
	return listEntity[models.Product](ctx, c.productRepository, "product", map[string]string{
		"organizationId":  "organization_id",
		"sku":             "sku",
		"lifecycleStatus": "lifecycle_status",
	})
}

func (c ProductController) Read(ctx shared.Context) error {
	return readEntity[models.Product](ctx, c.productRepository, "product")
}

func (c ProductController) Create(ctx shared.Context) error {
	req, err := bindAndValidate[dtos.ProductCreateRequest](ctx)
	if err != nil {
		return err
	}
	if err := assertExists(c.organizationRepository, req.OrganizationID, "organization_id"); err != nil {
		return err
	}
	product := transformer.ProductCreateRequestToModel(req)
	if err := c.productRepository.Create(nil, &product); err != nil {
		return writeError(err, "product")
	}
	return ctx.JSON(http.StatusCreated, product)
}

func (c ProductController) Update(ctx shared.Context) error {
	id, err := shared.GetParamID(ctx)
	if err != nil {
		return err
	}
	product, err := c.productRepository.Read(id)
	if err != nil {
		return readError(err, "product")
	}
	req, err := bindAndValidate[dtos.ProductPatchRequest](ctx)
	if err != nil {
		return err
	}
	if req.OrganizationID != nil {
		if err := assertExists(c.organizationRepository, *req.OrganizationID, "organization_id"); err != nil {
			return err
		}
	}
	if transformer.ApplyProductPatchRequestToModel(req, &product) {
		if err := c.productRepository.Save(nil, &product); err != nil {
			return writeError(err, "product")
		}
	}
	return ctx.JSON(http.StatusOK, product)
}

func (c ProductController) Delete(ctx shared.Context) error {
	return deleteEntity(ctx, c.productRepository, "product")
}

type ComponentController struct {
	componentRepository *repositories.ComponentRepository
	supplierRepository  *repositories.SupplierRepository
}

func NewComponentController(componentRepository *repositories.ComponentRepository, supplierRepository *repositories.SupplierRepository) *ComponentController {
	return &ComponentController{
		componentRepository: componentRepository,
		supplierRepository:  supplierRepository,
	}
}

func (c ComponentController) List(ctx shared.Context) error {
	return listEntity[models.Component](ctx, c.componentRepository, "component", map[string]string{
		"supplierId": "supplier_id",
		"num":        "num",
	})
}

func (c ComponentController) Read(ctx shared.Context) error {
	return readEntity[models.Component](ctx, c.componentRepository, "component")
}

func (c ComponentController) Create(ctx shared.Context) error {
	req, err := bindAndValidate[dtos.ComponentCreateRequest](ctx)
	if err != nil {
		return err
	}
	if req.SupplierID != nil {
		if err := assertExists(c.supplierRepository, *req.SupplierID, "supplier_id"); err != nil {
			return err
		}
	}
	component := transformer.ComponentCreateRequestToModel(req)
	if err := c.componentRepository.Create(nil, &component); err != nil {
		return writeError(err, "component")
	}
	return ctx.JSON(http.StatusCreated, component)
}

func (c ComponentController) Update(ctx shared.Context) error {
	id, err := shared.GetParamID(ctx)
	if err != nil {
		return err
	}
	component, err := c.componentRepository.Read(id)
	if err != nil {
		return readError(err, "component")
	}
	req, err := bindAndValidate[dtos.ComponentPatchRequest](ctx)
	if err != nil {
		return err
	}
	if req.SupplierID.Present && req.SupplierID.Value != nil {
		if err := assertExists(c.supplierRepository, *req.SupplierID.Value, "supplier_id"); err != nil {
			return err
		}
	}
	if transformer.ApplyComponentPatchRequestToModel(req, &component) {
		if err := c.componentRepository.Save(nil, &component); err != nil {
			return writeError(err, "component")
		}
	}
	return ctx.JSON(http.StatusOK, component)
}

func (c ComponentController) Delete(ctx shared.Context) error {
	return deleteEntity(ctx, c.componentRepository, "component")
}

type BOMItemController struct {
	bomItemRepository   *repositories.BOMItemRepository
	productRepository   *repositories.ProductRepository
	componentRepository *repositories.ComponentRepository
}

func NewBOMItemController(bomItemRepository *repositories.BOMItemRepository, productRepository *repositories.ProductRepository, componentRepository *repositories.ComponentRepository) *BOMItemController {
	return &BOMItemController{
		bomItemRepository:   bomItemRepository,
		productRepository:   productRepository,
		componentRepository: componentRepository,
	}
}

func (c BOMItemController) List(ctx shared.Context) error {
	return listEntity[models.BOMItem](ctx, c.bomItemRepository, "bom item", map[string]string{
		"productId":   "product_id",
		"componentId": "component_id",
	})
}

func (c BOMItemController) Read(ctx shared.Context) error {
	return readEntity[models.BOMItem](ctx, c.bomItemRepository, "bom item")
}

func (c BOMItemController) Create(ctx shared.Context) error {
	req, err := bindAndValidate[dtos.BOMItemCreateRequest](ctx)
	if err != nil {
		return err
	}
	if err := assertExists(c.productRepository, req.ProductID, "product_id"); err != nil {
		return err
	}
	if err := assertExists(c.componentRepository, req.ComponentID, "component_id"); err != nil {
		return err
	}
	item := transformer.BOMItemCreateRequestToModel(req)
	if err := c.bomItemRepository.Create(nil, &item); err != nil {
		return writeError(err, "bom item")
	}
	return ctx.JSON(http.StatusCreated, item)
}

func (c BOMItemController) Update(ctx shared.Context) error {
	id, err := shared.GetParamID(ctx)
	if err != nil {
		return err
	}
	item, err := c.bomItemRepository.Read(id)
	if err != nil {
		return readError(err, "bom item")
	}
	req, err := bindAndValidate[dtos.BOMItemPatchRequest](ctx)
	if err != nil {
		return err
	}
	if req.ProductID != nil {
		if err := assertExists(c.productRepository, *req.ProductID, "product_id"); err != nil {
			return err
		}
	}
	if req.ComponentID != nil {
		if err := assertExists(c.componentRepository, *req.ComponentID, "component_id"); err != nil {
			return err
		}
	}
	if transformer.ApplyBOMItemPatchRequestToModel(req, &item) {
		if err := c.bomItemRepository.Save(nil, &item); err != nil {
			return writeError(err, "bom item")
		}
	}
	return ctx.JSON(http.StatusOK, item)
}

func (c BOMItemController) Delete(ctx shared.Context) error {
	return deleteEntity(ctx, c.bomItemRepository, "bom item")
}

type ProductDemandController struct {
	productDemandRepository *repositories.ProductDemandRepository
	productRepository       *repositories.ProductRepository
}

func NewProductDemandController(productDemandRepository *repositories.ProductDemandRepository, productRepository *repositories.ProductRepository) *ProductDemandController {
	return &ProductDemandController{
		productDemandRepository: productDemandRepository,
		productRepository:       productRepository,
	}
}

func (c ProductDemandController) List(ctx shared.Context) error {
	return listEntity[models.ProductDemand](ctx, c.productDemandRepository, "product demand", map[string]string{
		"productId": "product_id",
		"year":      "year",
		"month":     "month",
	})
}

func (c ProductDemandController) Read(ctx shared.Context) error {
	return readEntity[models.ProductDemand](ctx, c.productDemandRepository, "product demand")
}

func (c ProductDemandController) Create(ctx shared.Context) error {
	req, err := bindAndValidate[dtos.ProductDemandCreateRequest](ctx)
	if err != nil {
		return err
	}
	if err := assertExists(c.productRepository, req.ProductID, "product_id"); err != nil {
		return err
	}
	demand := transformer.ProductDemandCreateRequestToModel(req)
	if err := c.productDemandRepository.Create(nil, &demand); err != nil {
		return writeError(err, "product demand")
	}
	return ctx.JSON(http.StatusCreated, demand)
}

func (c ProductDemandController) Update(ctx shared.Context) error {
	id, err := shared.GetParamID(ctx)
	if err != nil {
		return err
	}
	demand, err := c.productDemandRepository.Read(id)
	if err != nil {
		return readError(err, "product demand")
	}
	req, err := bindAndValidate[dtos.ProductDemandPatchRequest](ctx)
	if err != nil {
		return err
	}
	if req.ProductID != nil {
		if err := assertExists(c.productRepository, *req.ProductID, "product_id"); err != nil {
			return err
		}
	}
	if transformer.ApplyProductDemandPatchRequestToModel(req, &demand) {
		if err := c.productDemandRepository.Save(nil, &demand); err != nil {
			return writeError(err, "product demand")
		}
	}
	return ctx.JSON(http.StatusOK, demand)
}

func (c ProductDemandController) Delete(ctx shared.Context) error {
	return deleteEntity(ctx, c.productDemandRepository, "product demand")
}
