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

func WarehouseCreateRequestToModel(req dtos.WarehouseCreateRequest) models.Warehouse {
	return models.Warehouse{
		OrganizationID: req.OrganizationID,
		Name:           req.Name,
		Location:       req.Location,
		Capacity:       req.Capacity,
	}
}

func ApplyWarehousePatchRequestToModel(req dtos.WarehousePatchRequest, warehouse *models.Warehouse) bool {
	updated := apply(&warehouse.OrganizationID, req.OrganizationID)
	updated = apply(&warehouse.Name, req.Name) || updated
	updated = apply(&warehouse.Location, req.Location) || updated
	updated = apply(&warehouse.Capacity, req.Capacity) || updated
	return updated
}

func WarehouseInventoryCreateRequestToModel(req dtos.WarehouseInventoryCreateRequest) models.WarehouseInventory {
	return models.WarehouseInventory{
		WarehouseID:   req.WarehouseID,
		ComponentID:   req.ComponentID,
		BinLocationID: req.BinLocationID,
		CurrentQty:    req.CurrentQty,
		IncomingQty:   req.IncomingQty,
		OutgoingQty:   req.OutgoingQty,
	}
}

func ApplyWarehouseInventoryPatchRequestToModel(req dtos.WarehouseInventoryPatchRequest, inventory *models.WarehouseInventory) bool {
	updated := apply(&inventory.WarehouseID, req.WarehouseID)
	updated = apply(&inventory.ComponentID, req.ComponentID) || updated
	updated = applyOptional(&inventory.BinLocationID, req.BinLocationID) || updated
	updated = apply(&inventory.CurrentQty, req.CurrentQty) || updated
	updated = apply(&inventory.IncomingQty, req.IncomingQty) || updated
	updated = apply(&inventory.OutgoingQty, req.OutgoingQty) || updated
	return updated
}

func MonthlyStockCreateRequestToModel(req dtos.MonthlyStockCreateRequest) models.MonthlyStock {
	return models.MonthlyStock{
		WarehouseID: req.WarehouseID,
		ComponentID: req.ComponentID,
		Month:       req.Month,
		Year:        req.Year,
		Qty:         req.Qty,
	}
}

func ApplyMonthlyStockPatchRequestToModel(req dtos.MonthlyStockPatchRequest, stock *models.MonthlyStock) bool {
	updated := apply(&stock.WarehouseID, req.WarehouseID)
	updated = apply(&stock.ComponentID, req.ComponentID) || updated
	updated = apply(&stock.Month, req.Month) || updated
	updated = apply(&stock.Year, req.Year) || updated
	updated = apply(&stock.Qty, req.Qty) || updated
	return updated
}

func WarehouseLayoutCreateRequestToModel(req dtos.WarehouseLayoutCreateRequest) models.WarehouseLayout {
	return models.WarehouseLayout{
		WarehouseID: req.WarehouseID,
		Name:        req.Name,
		Grid:        req.Grid,
	}
}

func ApplyWarehouseLayoutPatchRequestToModel(req dtos.WarehouseLayoutPatchRequest, layout *models.WarehouseLayout) bool {
	updated := apply(&layout.WarehouseID, req.WarehouseID)
	updated = apply(&layout.Name, req.Name) || updated
	updated = applyJSON(&layout.Grid, req.Grid) || updated
	return updated
}

func BinLocationCreateRequestToModel(req dtos.BinLocationCreateRequest) models.BinLocation {
	return models.BinLocation{
		WarehouseID: req.WarehouseID,
		Code:        req.Code,
		Zone:        req.Zone,
		Capacity:    req.Capacity,
	}
}

func ApplyBinLocationPatchRequestToModel(req dtos.BinLocationPatchRequest, bin *models.BinLocation) bool {
	updated := apply(&bin.WarehouseID, req.WarehouseID)
	updated = apply(&bin.Code, req.Code) || updated
	updated = apply(&bin.Zone, req.Zone) || updated
	updated = apply(&bin.Capacity, req.Capacity) || updated
	return updated
}
