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

package transformer

import (
	"github.com/supplyline-dev/supplyline/database/models"
	"github.com/supplyline-dev/supplyline/dtos"
)

func ProductCreateRequestToModel(req dtos.ProductCreateRequest) models.Product {
	product := models.Product{
		OrganizationID:  req.OrganizationID,
		Name:            req.Name,
		SKU:             req.SKU,
		Description:     req.Description,
		LifecycleStatus: req.LifecycleStatus,
	}
	if req.TargetPrice != nil {
		product.TargetPrice = *req.TargetPrice
	}
	return product
}

func ApplyProductPatchRequestToModel(req dtos.ProductPatchRequest, product *models.Product) bool {
	updated := apply(&product.OrganizationID, req.OrganizationID)
	updated = apply(&product.Name, req.Name) || updated
	updated = apply(&product.SKU, req.SKU) || updated
	updated = apply(&product.Description, req.Description) || updated
	updated = apply(&product.TargetPrice, req.TargetPrice) || updated
	updated = apply(&product.LifecycleStatus, req.LifecycleStatus) || updated
	return updated
}

func ComponentCreateRequestToModel(req dtos.ComponentCreateRequest) models.Component {
	component := models.Component{
		Num:                req.Num,
		Description:        req.Description,
		SupplierPartNumber: req.SupplierPartNumber,
		SupplierID:         req.SupplierID,
		LeadTimeDays:       req.LeadTimeDays,
	}
	if req.UnitCost != nil {
		component.UnitCost = *req.UnitCost
	}
	return component
}

func ApplyComponentPatchRequestToModel(req dtos.ComponentPatchRequest, component *models.Component) bool {
	updated := apply(&component.Num, req.Num)
	updated = apply(&component.Description, req.Description) || updated
	updated = apply(&component.SupplierPartNumber, req.SupplierPartNumber) || updated
	updated = applyOptional(&component.SupplierID, req.SupplierID) || updated
	updated = apply(&component.UnitCost, req.UnitCost) || updated
	updated = apply(&component.LeadTimeDays, req.LeadTimeDays) || updated
	return updated
}

func BOMItemCreateRequestToModel(req dtos.BOMItemCreateRequest) models.BOMItem {
	item := models.BOMItem{
		ProductID:   req.ProductID,
		ComponentID: req.ComponentID,
		RequiredQty: 1,
	}
	if req.RequiredQty != nil {
		item.RequiredQty = *req.RequiredQty
	}
	return item
}

func ApplyBOMItemPatchRequestToModel(req dtos.BOMItemPatchRequest, item *models.BOMItem) bool {
	updated := apply(&item.ProductID, req.ProductID)
	updated = apply(&item.ComponentID, req.ComponentID) || updated
	updated = apply(&item.RequiredQty, req.RequiredQty) || updated
	return updated
}

func ProductDemandCreateRequestToModel(req dtos.ProductDemandCreateRequest) models.ProductDemand {
	return models.ProductDemand{
		ProductID:  req.ProductID,
		Month:      req.Month,
		Year:       req.Year,
		Qty:        req.Qty,
		IsForecast: req.IsForecast,
	}
}

func ApplyProductDemandPatchRequestToModel(req dtos.ProductDemandPatchRequest, demand *models.ProductDemand) bool {
	updated := apply(&demand.ProductID, req.ProductID)
	updated = apply(&demand.Month, req.Month) || updated
	updated = apply(&demand.Year, req.Year) || updated
	updated = apply(&demand.Qty, req.Qty) || updated
	updated = apply(&demand.IsForecast, req.IsForecast) || updated
	return updated
}
