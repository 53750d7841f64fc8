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
	"fmt"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/supplyline-dev/supplyline/database/models"
	"github.com/supplyline-dev/supplyline/dtos"
	"github.com/supplyline-dev/supplyline/utils"
)

func SupplierCreateRequestToModel(req dtos.SupplierCreateRequest) models.Supplier {
	// defaults for omitted fields are applied here, not as column defaults:
	// gorm skips zero-valued fields carrying a default tag on insert, which
	// would silently discard an explicit zero in the request.
	supplier := models.Supplier{
		Name:                 req.Name,
		ContactEmail:         req.ContactEmail,
		Phone:                req.Phone,
		Location:             req.Location,
		Rating:               4,
		HistoricalOntimeRate: 0.9,
		AvgUnitCost:          decimal.NewFromInt(10),
	}
	if req.Rating != nil {
		supplier.Rating = *req.Rating
	}
	if req.HistoricalOntimeRate != nil {
		supplier.HistoricalOntimeRate = *req.HistoricalOntimeRate
	}
	if req.AvgUnitCost != nil {
		supplier.AvgUnitCost = *req.AvgUnitCost
	}
	if req.Preferred != nil {
		supplier.Preferred = *req.Preferred
	}
	return supplier
}

func ApplySupplierPatchRequestToModel(req dtos.SupplierPatchRequest, supplier *models.Supplier) bool {
	updated := apply(&supplier.Name, req.Name)
	updated = apply(&supplier.ContactEmail, req.ContactEmail) || updated
	updated = apply(&supplier.Phone, req.Phone) || updated
	updated = apply(&supplier.Location, req.Location) || updated
	updated = apply(&supplier.Rating, req.Rating) || updated
	updated = apply(&supplier.HistoricalOntimeRate, req.HistoricalOntimeRate) || updated
	updated = apply(&supplier.AvgUnitCost, req.AvgUnitCost) || updated
	updated = apply(&supplier.Preferred, req.Preferred) || updated
	return updated
}

func SupplierQuoteCreateRequestToModel(req dtos.SupplierQuoteCreateRequest) models.SupplierQuote {
	quote := models.SupplierQuote{
		SupplierID:   req.SupplierID,
		ComponentID:  req.ComponentID,
		MinOrderQty:  1,
		LeadTimeDays: req.LeadTimeDays,
		ValidUntil:   req.ValidUntil,
	}
	if req.MinOrderQty != nil {
		quote.MinOrderQty = *req.MinOrderQty
	}
	if req.UnitCost != nil {
		quote.UnitCost = *req.UnitCost
	}
	return quote
}

func ApplySupplierQuotePatchRequestToModel(req dtos.SupplierQuotePatchRequest, quote *models.SupplierQuote) bool {
	updated := apply(&quote.SupplierID, req.SupplierID)
	updated = apply(&quote.ComponentID, req.ComponentID) || updated
	updated = apply(&quote.UnitCost, req.UnitCost) || updated
	updated = apply(&quote.MinOrderQty, req.MinOrderQty) || updated
	updated = apply(&quote.LeadTimeDays, req.LeadTimeDays) || updated
	updated = applyRef(&quote.ValidUntil, req.ValidUntil) || updated
	return updated
}

// PurchaseOrderCreateRequestToModels splits the request into the order and
// its inline items. A missing order ref gets a generated one.
func PurchaseOrderCreateRequestToModels(req dtos.PurchaseOrderCreateRequest) (models.PurchaseOrder, []models.POItem) {
	order := models.PurchaseOrder{
		OrderRef:        req.OrderRef,
		SupplierID:      req.SupplierID,
		WarehouseID:     req.WarehouseID,
		PurchaseGroupID: req.PurchaseGroupID,
		Status:          req.Status,
		OrderDate:       req.OrderDate,
		ExpectedDate:    req.ExpectedDate,
	}
	if order.OrderRef == "" {
		order.OrderRef = fmt.Sprintf("PO-%s", uuid.NewString()[:8])
	}
	if req.TotalCost != nil {
		order.TotalCost = *req.TotalCost
	}

	items := utils.Map(req.Items, func(item dtos.POItemInlineRequest) models.POItem {
		poItem := models.POItem{
			ComponentID: item.ComponentID,
			OrderedQty:  item.OrderedQty,
			ReceivedQty: item.ReceivedQty,
		}
		if item.UnitCost != nil {
			poItem.UnitCost = *item.UnitCost
		}
		return poItem
	})
	return order, items
}

func ApplyPurchaseOrderPatchRequestToModel(req dtos.PurchaseOrderPatchRequest, order *models.PurchaseOrder) bool {
	updated := apply(&order.OrderRef, req.OrderRef)
	updated = apply(&order.SupplierID, req.SupplierID) || updated
	updated = applyOptional(&order.WarehouseID, req.WarehouseID) || updated
	updated = applyOptional(&order.PurchaseGroupID, req.PurchaseGroupID) || updated
	updated = apply(&order.Status, req.Status) || updated
	updated = applyRef(&order.OrderDate, req.OrderDate) || updated
	updated = applyRef(&order.ExpectedDate, req.ExpectedDate) || updated
	updated = apply(&order.TotalCost, req.TotalCost) || updated
	return updated
}

func POItemCreateRequestToModel(req dtos.POItemCreateRequest) models.POItem {
	item := models.POItem{
		PurchaseOrderID: req.PurchaseOrderID,
		ComponentID:     req.ComponentID,
		OrderedQty:      req.OrderedQty,
		ReceivedQty:     req.ReceivedQty,
	}
	if req.UnitCost != nil {
		item.UnitCost = *req.UnitCost
	}
	return item
}

func ApplyPOItemPatchRequestToModel(req dtos.POItemPatchRequest, item *models.POItem) bool {
	updated := apply(&item.PurchaseOrderID, req.PurchaseOrderID)
	updated = apply(&item.ComponentID, req.ComponentID) || updated
	updated = apply(&item.OrderedQty, req.OrderedQty) || updated
	updated = apply(&item.ReceivedQty, req.ReceivedQty) || updated
	updated = apply(&item.UnitCost, req.UnitCost) || updated
	return updated
}

func ShippingInfoCreateRequestToModel(req dtos.ShippingInfoCreateRequest) models.ShippingInfo {
	return models.ShippingInfo{
		PurchaseOrderID:  req.PurchaseOrderID,
		Carrier:          req.Carrier,
		TrackingNumber:   req.TrackingNumber,
		Status:           req.Status,
		EstimatedArrival: req.EstimatedArrival,
		ActualArrival:    req.ActualArrival,
	}
}

func ApplyShippingInfoPatchRequestToModel(req dtos.ShippingInfoPatchRequest, info *models.ShippingInfo) bool {
	updated := apply(&info.PurchaseOrderID, req.PurchaseOrderID)
	updated = apply(&info.Carrier, req.Carrier) || updated
	updated = apply(&info.TrackingNumber, req.TrackingNumber) || updated
	updated = apply(&info.Status, req.Status) || updated
	updated = applyRef(&info.EstimatedArrival, req.EstimatedArrival) || updated
	updated = applyRef(&info.ActualArrival, req.ActualArrival) || updated
	return updated
}

func PurchaseGroupCreateRequestToModel(req dtos.PurchaseGroupCreateRequest) models.PurchaseGroup {
	return models.PurchaseGroup{
		Name:        req.Name,
		Description: req.Description,
	}
}

func ApplyPurchaseGroupPatchRequestToModel(req dtos.PurchaseGroupPatchRequest, group *models.PurchaseGroup) bool {
	updated := apply(&group.Name, req.Name)
	updated = apply(&group.Description, req.Description) || updated
	return updated
}
