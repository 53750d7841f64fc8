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

type WarehouseController struct {
	warehouseRepository    *repositories.WarehouseRepository
	organizationRepository *repositories.OrganizationRepository
}

func NewWarehouseController(warehouseRepository *repositories.WarehouseRepository, organizationRepository *repositories.OrganizationRepository) *WarehouseController {
	return &WarehouseController{
		warehouseRepository:    warehouseRepository,
		organizationRepository: organizationRepository,
	}
}

func (c WarehouseController) List(ctx shared.Context) error {
	return listEntity[models.Warehouse](ctx, c.warehouseRepository, "warehouse", map[string]string{
		"organizationId": "organization_id",
		"location":       "location",
	})
}

func (c WarehouseController) Read(ctx shared.Context) error {
	return readEntity[models.Warehouse](ctx, c.warehouseRepository, "warehouse")
}

func (c WarehouseController) Create(ctx shared.Context) error {
	req, err := bindAndValidate[dtos.WarehouseCreateRequest](ctx)
	if err != nil {
		return err
	}
	if err := assertExists(c.organizationRepository, req.OrganizationID, "organization_id"); err != nil {
		return err
	}
	warehouse := transformer.WarehouseCreateRequestToModel(req)
	if err := c.warehouseRepository.Create(nil, &warehouse); err != nil {
		return writeError(err, "warehouse")
	}
	return ctx.JSON(http.StatusCreated, warehouse)
}

func (c WarehouseController) Update(ctx shared.Context) error {
	id, err := shared.GetParamID(ctx)
	if err != nil {
		return err
	}
	warehouse, err := c.warehouseRepository.Read(id)
	if err != nil {
		return readError(err, "warehouse")
	}
	req, err := bindAndValidate[dtos.WarehousePatchRequest](ctx)
	if err != nil {
		return err
	}
	if req.OrganizationID != nil {
		if err := assertExists(c.organizationRepository, *req.OrganizationID, "organization_id"); err != nil {
			return err
		}
	}
	if transformer.ApplyWarehousePatchRequestToModel(req, &warehouse) {
		if err := c.warehouseRepository.Save(nil, &warehouse); err != nil {
			return writeError(err, "warehouse")
		}
	}
	return ctx.JSON(http.StatusOK, warehouse)
}

func (c WarehouseController) Delete(ctx shared.Context) error {
	return deleteEntity(ctx, c.warehouseRepository, "warehouse")
}

type WarehouseInventoryController struct {
	warehouseInventoryRepository *repositories.WarehouseInventoryRepository
	warehouseRepository          *repositories.WarehouseRepository
	componentRepository          *repositories.ComponentRepository
	binLocationRepository        *repositories.BinLocationRepository
}

func NewWarehouseInventoryController(
	warehouseInventoryRepository *repositories.WarehouseInventoryRepository,
	warehouseRepository *repositories.WarehouseRepository,
	componentRepository *repositories.ComponentRepository,
	binLocationRepository *repositories.BinLocationRepository,
) *WarehouseInventoryController {
	return &WarehouseInventoryController{
		warehouseInventoryRepository: warehouseInventoryRepository,
		warehouseRepository:          warehouseRepository,
		componentRepository:          componentRepository,
		binLocationRepository:        binLocationRepository,
	}
}

func (c WarehouseInventoryController) List(ctx shared.Context) error {
	return listEntity[models.WarehouseInventory](ctx, c.warehouseInventoryRepository, "warehouse inventory", map[string]string{
		"warehouseId":   "warehouse_id",
		"componentId":   "component_id",
		"binLocationId": "bin_location_id",
	})
}

func (c WarehouseInventoryController) Read(ctx shared.Context) error {
	return readEntity[models.WarehouseInventory](ctx, c.warehouseInventoryRepository, "warehouse inventory")
}

func (c WarehouseInventoryController) Create(ctx shared.Context) error {
	req, err := bindAndValidate[dtos.WarehouseInventoryCreateRequest](ctx)
	if err != nil {
		return err
	}
	if err := assertExists(c.warehouseRepository, req.WarehouseID, "warehouse_id"); err != nil {
		return err
	}
	if err := assertExists(c.componentRepository, req.ComponentID, "component_id"); err != nil {
		return err
	}
	if req.BinLocationID != nil {
		if err := assertExists(c.binLocationRepository, *req.BinLocationID, "bin_location_id"); err != nil {
			return err
		}
	}
	inventory := transformer.WarehouseInventoryCreateRequestToModel(req)
	if err := c.warehouseInventoryRepository.Create(nil, &inventory); err != nil {
		return writeError(err, "warehouse inventory")
	}
	return ctx.JSON(http.StatusCreated, inventory)
}

func (c WarehouseInventoryController) Update(ctx shared.Context) error {
	id, err := shared.GetParamID(ctx)
	if err != nil {
		return err
	}
	inventory, err := c.warehouseInventoryRepository.Read(id)
	if err != nil {
		return readError(err, "warehouse inventory")
	}
	req, err := bindAndValidate[dtos.WarehouseInventoryPatchRequest](ctx)
	if err != nil {
		return err
	}
	if req.WarehouseID != nil {
		if err := assertExists(c.warehouseRepository, *req.WarehouseID, "warehouse_id"); err != nil {
			return err
		}
	}
	if req.ComponentID != nil {
		if err := assertExists(c.componentRepository, *req.ComponentID, "component_id"); err != nil {
			return err
		}
	}
	if req.BinLocationID.Present && req.BinLocationID.Value != nil {
		if err := assertExists(c.binLocationRepository, *req.BinLocationID.Value, "bin_location_id"); err != nil {
			return err
		}
	}
	if transformer.ApplyWarehouseInventoryPatchRequestToModel(req, &inventory) {
		if err := c.warehouseInventoryRepository.Save(nil, &inventory); err != nil {
			return writeError(err, "warehouse inventory")
		}
	}
	return ctx.JSON(http.StatusOK, inventory)
}

func (c WarehouseInventoryController) Delete(ctx shared.Context) error {
	return deleteEntity(ctx, c.warehouseInventoryRepository, "warehouse inventory")
}

type MonthlyStockController struct {
	monthlyStockRepository *repositories.MonthlyStockRepository
	warehouseRepository    *repositories.WarehouseRepository
	componentRepository    *repositories.ComponentRepository
}

func NewMonthlyStockController(monthlyStockRepository *repositories.MonthlyStockRepository, warehouseRepository *repositories.WarehouseRepository, componentRepository *repositories.ComponentRepository) *MonthlyStockController {
	return &MonthlyStockController{
		monthlyStockRepository: monthlyStockRepository,
		warehouseRepository:    warehouseRepository,
		componentRepository:    componentRepository,
	}
}

func (c MonthlyStockController) List(ctx shared.Context) error {
	return listEntity[models.MonthlyStock](ctx, c.monthlyStockRepository, "monthly stock", map[string]string{
		"warehouseId": "warehouse_id",
		"componentId": "component_id",
		"year":        "year",
		"month":       "month",
	})
}

func (c MonthlyStockController) Read(ctx shared.Context) error {
	return readEntity[models.MonthlyStock](ctx, c.monthlyStockRepository, "monthly stock")
}

func (c MonthlyStockController) Create(ctx shared.Context) error {
	req, err := bindAndValidate[dtos.MonthlyStockCreateRequest](ctx)
	if err != nil {
		return err
	}
	if err := assertExists(c.warehouseRepository, req.WarehouseID, "warehouse_id"); err != nil {
		return err
	}
	if err := assertExists(c.componentRepository, req.ComponentID, "component_id"); err != nil {
		return err
	}
	stock := transformer.MonthlyStockCreateRequestToModel(req)
	if err := c.monthlyStockRepository.Create(nil, &stock); err != nil {
		return writeError(err, "monthly stock")
	}
	return ctx.JSON(http.StatusCreated, stock)
}

func (c MonthlyStockController) Update(ctx shared.Context) error {
	id, err := shared.GetParamID(ctx)
	if err != nil {
		return err
	}
	stock, err := c.monthlyStockRepository.Read(id)
	if err != nil {
		return readError(err, "monthly stock")
	}
	req, err := bindAndValidate[dtos.MonthlyStockPatchRequest](ctx)
	if err != nil {
		return err
	}
	if req.WarehouseID != nil {
		if err := assertExists(c.warehouseRepository, *req.WarehouseID, "warehouse_id"); err != nil {
			return err
		}
	}
	if req.ComponentID != nil {
		if err := assertExists(c.componentRepository, *req.ComponentID, "component_id"); err != nil {
			return err
		}
	}
	if transformer.ApplyMonthlyStockPatchRequestToModel(req, &stock) {
		if err := c.monthlyStockRepository.Save(nil, &stock); err != nil {
			return writeError(err, "monthly stock")
		}
	}
	return ctx.JSON(http.StatusOK, stock)
}

func (c MonthlyStockController) Delete(ctx shared.Context) error {
	return deleteEntity(ctx, c.monthlyStockRepository, "monthly stock")
}

type WarehouseLayoutController struct {
	warehouseLayoutRepository *repositories.WarehouseLayoutRepository
	warehouseRepository       *repositories.WarehouseRepository
}

func NewWarehouseLayoutController(warehouseLayoutRepository *repositories.WarehouseLayoutRepository, warehouseRepository *repositories.WarehouseRepository) *WarehouseLayoutController {
	return &WarehouseLayoutController{
		warehouseLayoutRepository: warehouseLayoutRepository,
		warehouseRepository:       warehouseRepository,
	}
}

func (c WarehouseLayoutController) List(ctx shared.Context) error {
	return listEntity[models.WarehouseLayout](ctx, c.warehouseLayoutRepository, "warehouse layout", map[string]string{
		"warehouseId": "warehouse_id",
	})
}

func (c WarehouseLayoutController) Read(ctx shared.Context) error {
	return readEntity[models.WarehouseLayout](ctx, c.warehouseLayoutRepository, "warehouse layout")
}

func (c WarehouseLayoutController) Create(ctx shared.Context) error {
	req, err := bindAndValidate[dtos.WarehouseLayoutCreateRequest](ctx)
	if err != nil {
		return err
	}
	if err := assertExists(c.warehouseRepository, req.WarehouseID, "warehouse_id"); err != nil {
		return err
	}
	layout := transformer.WarehouseLayoutCreateRequestToModel(req)
	if err := c.warehouseLayoutRepository.Create(nil, &layout); err != nil {
		return writeError(err, "warehouse layout")
	}
	return ctx.JSON(http.StatusCreated, layout)
}

func (c WarehouseLayoutController) Update(ctx shared.Context) error {
	id, err := shared.GetParamID(ctx)
	if err != nil {
		return err
	}
	layout, err := c.warehouseLayoutRepository.Read(id)
	if err != nil {
		return readError(err, "warehouse layout")
	}
	req, err := bindAndValidate[dtos.WarehouseLayoutPatchRequest](ctx)
	if err != nil {
		return err
	}
	if req.WarehouseID != nil {
		if err := assertExists(c.warehouseRepository, *req.WarehouseID, "warehouse_id"); err != nil {
			return err
		}
	}
	if transformer.ApplyWarehouseLayoutPatchRequestToModel(req, &layout) {
		if err := c.warehouseLayoutRepository.Save(nil, &layout); err != nil {
			return writeError(err, "warehouse layout")
		}
	}
	return ctx.JSON(http.StatusOK, layout)
}

func (c WarehouseLayoutController) Delete(ctx shared.Context) error {
	return deleteEntity(ctx, c.warehouseLayoutRepository, "warehouse layout")
}

type BinLocationController struct {
	binLocationRepository *repositories.BinLocationRepository
	warehouseRepository   *repositories.WarehouseRepository
}

func NewBinLocationController(binLocationRepository *repositories.BinLocationRepository, warehouseRepository *repositories.WarehouseRepository) *BinLocationController {
	return &BinLocationController{
		binLocationRepository: binLocationRepository,
		warehouseRepository:   warehouseRepository,
	}
}

func (c BinLocationController) List(ctx shared.Context) error {
	return listEntity[models.BinLocation](ctx, c.binLocationRepository, "bin location", map[string]string{
		"warehouseId": "warehouse_id",
		"zone":        "zone",
	})
}

func (c BinLocationController) Read(ctx shared.Context) error {
	return readEntity[models.BinLocation](ctx, c.binLocationRepository, "bin location")
}

func (c BinLocationController) Create(ctx shared.Context) error {
	req, err := bindAndValidate[dtos.BinLocationCreateRequest](ctx)
	if err != nil {
		return err
	}
	if err := assertExists(c.warehouseRepository, req.WarehouseID, "warehouse_id"); err != nil {
		return err
	}
	bin := transformer.BinLocationCreateRequestToModel(req)
	if err := c.binLocationRepository.Create(nil, &bin); err != nil {
		return writeError(err, "bin location")
	}
	return ctx.JSON(http.StatusCreated, bin)
}

func (c BinLocationController) Update(ctx shared.Context) error {
	id, err := shared.GetParamID(ctx)
	if err != nil {
		return err
	}
	bin, err := c.binLocationRepository.Read(id)
	if err != nil {
		return readError(err, "bin location")
	}
	req, err := bindAndValidate[dtos.BinLocationPatchRequest](ctx)
	if err != nil {
		return err
	}
	if req.WarehouseID != nil {
		if err := assertExists(c.warehouseRepository, *req.WarehouseID, "warehouse_id"); err != nil {
			return err
		}
	}
	if transformer.ApplyBinLocationPatchRequestToModel(req, &bin) {
		if err := c.binLocationRepository.Save(nil, &bin); err != nil {
			return writeError(err, "bin location")
		}
	}
	return ctx.JSON(http.StatusOK, bin)
}

func (c BinLocationController) Delete(ctx shared.Context) error {
	return deleteEntity(ctx, c.binLocationRepository, "bin location")
}
