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
	"time"

	"github.com/supplyline-dev/supplyline/database/models"
	"github.com/supplyline-dev/supplyline/database/repositories"
	"github.com/supplyline-dev/supplyline/dtos"
	"github.com/supplyline-dev/supplyline/shared"
	"github.com/supplyline-dev/supplyline/transformer"
)

type SupplierController struct {
	supplierRepository            *repositories.SupplierRepository
	componentRepository           *repositories.ComponentRepository
	supplierPerformanceRepository *repositories.SupplierPerformanceRepository
	supplierScoreRepository       *repositories.SupplierScoreRepository
}

func NewSupplierController(
	supplierRepository *repositories.SupplierRepository,
	componentRepository *repositories.ComponentRepository,
	supplierPerformanceRepository *repositories.SupplierPerformanceRepository,
	supplierScoreRepository *repositories.SupplierScoreRepository,
) *SupplierController {
	return &SupplierController{
		supplierRepository:            supplierRepository,
		componentRepository:           componentRepository,
		supplierPerformanceRepository: supplierPerformanceRepository,
		supplierScoreRepository:       supplierScoreRepository,
	}
}

func (c SupplierController) List(ctx shared.Context) error {
	return listEntity[models.Supplier](ctx, c.supplierRepository, "supplier", map[string]string{
		"preferred": "preferred",
		"location":  "location",
		"rating":    "rating",
	})
}

func (c SupplierController) Read(ctx shared.Context) error {
	return readEntity[models.Supplier](ctx, c.supplierRepository, "supplier")
}

func (c SupplierController) Create(ctx shared.Context) error {
	req, err := bindAndValidate[dtos.SupplierCreateRequest](ctx)
	if err != nil {
		return err
	}
	supplier := transformer.SupplierCreateRequestToModel(req)
	if err := c.supplierRepository.Create(nil, &supplier); err != nil {
		return writeError(err, "supplier")
	}
	return ctx.JSON(http.StatusCreated, supplier)
}

func (c SupplierController) Update(ctx shared.Context) error {
	id, err := shared.GetParamID(ctx)
	if err != nil {
		return err
	}
	supplier, err := c.supplierRepository.Read(id)
	if err != nil {
		return readError(err, "supplier")
	}
	req, err := bindAndValidate[dtos.SupplierPatchRequest](ctx)
	if err != nil {
		return err
	}
	if transformer.ApplySupplierPatchRequestToModel(req, &supplier) {
		if err := c.supplierRepository.Save(nil, &supplier); err != nil {
			return writeError(err, "supplier")
		}
	}
	return ctx.JSON(http.StatusOK, supplier)
}

func (c SupplierController) Delete(ctx shared.Context) error {
	return deleteEntity(ctx, c.supplierRepository, "supplier")
}

// Components lists every component currently sourced from the supplier.
func (c SupplierController) Components(ctx shared.Context) error {
	id, err := shared.GetParamID(ctx)
	if err != nil {
		return err
	}
	if err := assertRowExists(c.supplierRepository, id, "supplier"); err != nil {
		return err
	}
	components, err := c.componentRepository.AllBySupplier(id)
	if err != nil {
		return readError(err, "component")
	}
	return ctx.JSON(http.StatusOK, components)
}

// Performance combines the per-period performance rows with the computed
// scores into one payload.
func (c SupplierController) Performance(ctx shared.Context) error {
	id, err := shared.GetParamID(ctx)
	if err != nil {
		return err
	}
	if err := assertRowExists(c.supplierRepository, id, "supplier"); err != nil {
		return err
	}
	performance, err := c.supplierPerformanceRepository.AllForSupplier(id)
	if err != nil {
		return readError(err, "supplier performance")
	}
	scores, err := c.supplierScoreRepository.All(map[string]any{"supplier_id": id})
	if err != nil {
		return readError(err, "supplier score")
	}
	return ctx.JSON(http.StatusOK, map[string]any{
		"performance": performance,
		"scores":      scores,
	})
}

type SupplierQuoteController struct {
	supplierQuoteRepository *repositories.SupplierQuoteRepository
	supplierRepository      *repositories.SupplierRepository
	componentRepository     *repositories.ComponentRepository
}

func NewSupplierQuoteController(supplierQuoteRepository *repositories.SupplierQuoteRepository, supplierRepository *repositories.SupplierRepository, componentRepository *repositories.ComponentRepository) *SupplierQuoteController {
	return &SupplierQuoteController{
		supplierQuoteRepository: supplierQuoteRepository,
		supplierRepository:      supplierRepository,
		componentRepository:     componentRepository,
	}
}

func (c SupplierQuoteController) List(ctx shared.Context) error {
	return listEntity[models.SupplierQuote](ctx, c.supplierQuoteRepository, "supplier quote", map[string]string{
		"supplierId":  "supplier_id",
		"componentId": "component_id",
	})
}

func (c SupplierQuoteController) Read(ctx shared.Context) error {
	return readEntity[models.SupplierQuote](ctx, c.supplierQuoteRepository, "supplier quote")
}

func (c SupplierQuoteController) Create(ctx shared.Context) error {
	req, err := bindAndValidate[dtos.SupplierQuoteCreateRequest](ctx)
	if err != nil {
		return err
	}
	if err := assertExists(c.supplierRepository, req.SupplierID, "supplier_id"); err != nil {
		return err
	}
	if err := assertExists(c.componentRepository, req.ComponentID, "component_id"); err != nil {
		return err
	}
	quote := transformer.SupplierQuoteCreateRequestToModel(req)
	if err := c.supplierQuoteRepository.Create(nil, &quote); err != nil {
		return writeError(err, "supplier quote")
	}
	return ctx.JSON(http.StatusCreated, quote)
}

func (c SupplierQuoteController) Update(ctx shared.Context) error {
	id, err := shared.GetParamID(ctx)
	if err != nil {
		return err
	}
	quote, err := c.supplierQuoteRepository.Read(id)
	if err != nil {
		return readError(err, "supplier quote")
	}
	req, err := bindAndValidate[dtos.SupplierQuotePatchRequest](ctx)
	if err != nil {
		return err
	}
	if req.SupplierID != nil {
		if err := assertExists(c.supplierRepository, *req.SupplierID, "supplier_id"); err != nil {
			return err
		}
	}
	if req.ComponentID != nil {
		if err := assertExists(c.componentRepository, *req.ComponentID, "component_id"); err != nil {
			return err
		}
	}
	if transformer.ApplySupplierQuotePatchRequestToModel(req, &quote) {
		if err := c.supplierQuoteRepository.Save(nil, &quote); err != nil {
			return writeError(err, "supplier quote")
		}
	}
	return ctx.JSON(http.StatusOK, quote)
}

func (c SupplierQuoteController) Delete(ctx shared.Context) error {
	return deleteEntity(ctx, c.supplierQuoteRepository, "supplier quote")
}

type PurchaseOrderController struct {
	purchaseOrderRepository *repositories.PurchaseOrderRepository
	supplierRepository      *repositories.SupplierRepository
	warehouseRepository     *repositories.WarehouseRepository
	purchaseGroupRepository *repositories.PurchaseGroupRepository
	componentRepository     *repositories.ComponentRepository
	auditLogRepository      *repositories.AuditLogRepository
}

func NewPurchaseOrderController(
	purchaseOrderRepository *repositories.PurchaseOrderRepository,
	supplierRepository *repositories.SupplierRepository,
	warehouseRepository *repositories.WarehouseRepository,
	purchaseGroupRepository *repositories.PurchaseGroupRepository,
	componentRepository *repositories.ComponentRepository,
	auditLogRepository *repositories.AuditLogRepository,
) *PurchaseOrderController {
	return &PurchaseOrderController{
		purchaseOrderRepository: purchaseOrderRepository,
		supplierRepository:      supplierRepository,
		warehouseRepository:     warehouseRepository,
		purchaseGroupRepository: purchaseGroupRepository,
		componentRepository:     componentRepository,
		auditLogRepository:      auditLogRepository,
	}
}

func (c PurchaseOrderController) List(ctx shared.Context) error {
	return listEntity[models.PurchaseOrder](ctx, c.purchaseOrderRepository, "purchase order", map[string]string{
		"supplierId":      "supplier_id",
		"warehouseId":     "warehouse_id",
		"purchaseGroupId": "purchase_group_id",
		"status":          "status",
	})
}

func (c PurchaseOrderController) Read(ctx shared.Context) error {
	return readEntity[models.PurchaseOrder](ctx, c.purchaseOrderRepository, "purchase order")
}

func (c PurchaseOrderController) Create(ctx shared.Context) error {
	req, err := bindAndValidate[dtos.PurchaseOrderCreateRequest](ctx)
	if err != nil {
		return err
	}
	if err := assertExists(c.supplierRepository, req.SupplierID, "supplier_id"); err != nil {
		return err
	}
	if req.WarehouseID != nil {
		if err := assertExists(c.warehouseRepository, *req.WarehouseID, "warehouse_id"); err != nil {
			return err
		}
	}
	if req.PurchaseGroupID != nil {
		if err := assertExists(c.purchaseGroupRepository, *req.PurchaseGroupID, "purchase_group_id"); err != nil {
			return err
		}
	}
	for _, item := range req.Items {
		if err := assertExists(c.componentRepository, item.ComponentID, "component_id"); err != nil {
			return err
		}
	}
	order, items := transformer.PurchaseOrderCreateRequestToModels(req)
	if err := c.purchaseOrderRepository.CreateWithItems(&order, items); err != nil {
		return writeError(err, "purchase order")
	}
	return ctx.JSON(http.StatusCreated, order)
}

func (c PurchaseOrderController) Update(ctx shared.Context) error {
	id, err := shared.GetParamID(ctx)
	if err != nil {
		return err
	}
	order, err := c.purchaseOrderRepository.Read(id)
	if err != nil {
		return readError(err, "purchase order")
	}
	req, err := bindAndValidate[dtos.PurchaseOrderPatchRequest](ctx)
	if err != nil {
		return err
	}
	if req.SupplierID != nil {
		if err := assertExists(c.supplierRepository, *req.SupplierID, "supplier_id"); err != nil {
			return err
		}
	}
	if req.WarehouseID.Present && req.WarehouseID.Value != nil {
		if err := assertExists(c.warehouseRepository, *req.WarehouseID.Value, "warehouse_id"); err != nil {
			return err
		}
	}
	if req.PurchaseGroupID.Present && req.PurchaseGroupID.Value != nil {
		if err := assertExists(c.purchaseGroupRepository, *req.PurchaseGroupID.Value, "purchase_group_id"); err != nil {
			return err
		}
	}
	if transformer.ApplyPurchaseOrderPatchRequestToModel(req, &order) {
		if err := c.purchaseOrderRepository.Save(nil, &order); err != nil {
			return writeError(err, "purchase order")
		}
	}
	return ctx.JSON(http.StatusOK, order)
}

func (c PurchaseOrderController) Delete(ctx shared.Context) error {
	return deleteEntity(ctx, c.purchaseOrderRepository, "purchase order")
}

// Activities returns the audit trail of a purchase order, newest first.
func (c PurchaseOrderController) Activities(ctx shared.Context) error {
	id, err := shared.GetParamID(ctx)
	if err != nil {
		return err
	}
	if err := assertRowExists(c.purchaseOrderRepository, id, "purchase order"); err != nil {
		return err
	}
	logs, err := c.auditLogRepository.AllForEntity("purchaseorder", id)
	if err != nil {
		return readError(err, "audit log")
	}
	return ctx.JSON(http.StatusOK, logs)
}

type POItemController struct {
	poItemRepository        *repositories.POItemRepository
	purchaseOrderRepository *repositories.PurchaseOrderRepository
	componentRepository     *repositories.ComponentRepository
}

func NewPOItemController(poItemRepository *repositories.POItemRepository, purchaseOrderRepository *repositories.PurchaseOrderRepository, componentRepository *repositories.ComponentRepository) *POItemController {
	return &POItemController{
		poItemRepository:        poItemRepository,
		purchaseOrderRepository: purchaseOrderRepository,
		componentRepository:     componentRepository,
	}
}

func (c POItemController) List(ctx shared.Context) error {
	return listEntity[models.POItem](ctx, c.poItemRepository, "po item", map[string]string{
		"purchaseOrderId": "purchase_order_id",
		"componentId":     "component_id",
	})
}

func (c POItemController) Read(ctx shared.Context) error {
	return readEntity[models.POItem](ctx, c.poItemRepository, "po item")
}

func (c POItemController) Create(ctx shared.Context) error {
	req, err := bindAndValidate[dtos.POItemCreateRequest](ctx)
	if err != nil {
		return err
	}
	if err := assertExists(c.purchaseOrderRepository, req.PurchaseOrderID, "purchase_order_id"); err != nil {
		return err
	}
	if err := assertExists(c.componentRepository, req.ComponentID, "component_id"); err != nil {
		return err
	}
	item := transformer.POItemCreateRequestToModel(req)
	if err := c.poItemRepository.Create(nil, &item); err != nil {
		return writeError(err, "po item")
	}
	return ctx.JSON(http.StatusCreated, item)
}

func (c POItemController) Update(ctx shared.Context) error {
	id, err := shared.GetParamID(ctx)
	if err != nil {
		return err
	}
	item, err := c.poItemRepository.Read(id)
	if err != nil {
		return readError(err, "po item")
	}
	req, err := bindAndValidate[dtos.POItemPatchRequest](ctx)
	if err != nil {
		return err
	}
	if req.PurchaseOrderID != nil {
		if err := assertExists(c.purchaseOrderRepository, *req.PurchaseOrderID, "purchase_order_id"); err != nil {
			return err
		}
	}
	if req.ComponentID != nil {
		if err := assertExists(c.componentRepository, *req.ComponentID, "component_id"); err != nil {
			return err
		}
	}
	if transformer.ApplyPOItemPatchRequestToModel(req, &item) {
		if err := c.poItemRepository.Save(nil, &item); err != nil {
			return writeError(err, "po item")
		}
	}
	return ctx.JSON(http.StatusOK, item)
}

func (c POItemController) Delete(ctx shared.Context) error {
	return deleteEntity(ctx, c.poItemRepository, "po item")
}

type ShippingInfoController struct {
	shippingInfoRepository  *repositories.ShippingInfoRepository
	purchaseOrderRepository *repositories.PurchaseOrderRepository
}

func NewShippingInfoController(shippingInfoRepository *repositories.ShippingInfoRepository, purchaseOrderRepository *repositories.PurchaseOrderRepository) *ShippingInfoController {
	return &ShippingInfoController{
		shippingInfoRepository:  shippingInfoRepository,
		purchaseOrderRepository: purchaseOrderRepository,
	}
}

func (c ShippingInfoController) List(ctx shared.Context) error {
	return listEntity[models.ShippingInfo](ctx, c.shippingInfoRepository, "shipping info", map[string]string{
		"purchaseOrderId": "purchase_order_id",
		"status":          "status",
		"carrier":         "carrier",
	})
}

func (c ShippingInfoController) Read(ctx shared.Context) error {
	return readEntity[models.ShippingInfo](ctx, c.shippingInfoRepository, "shipping info")
}

func (c ShippingInfoController) Create(ctx shared.Context) error {
	req, err := bindAndValidate[dtos.ShippingInfoCreateRequest](ctx)
	if err != nil {
		return err
	}
	if err := assertExists(c.purchaseOrderRepository, req.PurchaseOrderID, "purchase_order_id"); err != nil {
		return err
	}
	info := transformer.ShippingInfoCreateRequestToModel(req)
	if err := c.shippingInfoRepository.Create(nil, &info); err != nil {
		return writeError(err, "shipping info")
	}
	return ctx.JSON(http.StatusCreated, info)
}

func (c ShippingInfoController) Update(ctx shared.Context) error {
	id, err := shared.GetParamID(ctx)
	if err != nil {
		return err
	}
	info, err := c.shippingInfoRepository.Read(id)
	if err != nil {
		return readError(err, "shipping info")
	}
	req, err := bindAndValidate[dtos.ShippingInfoPatchRequest](ctx)
	if err != nil {
		return err
	}
	if req.PurchaseOrderID != nil {
		if err := assertExists(c.purchaseOrderRepository, *req.PurchaseOrderID, "purchase_order_id"); err != nil {
			return err
		}
	}
	if transformer.ApplyShippingInfoPatchRequestToModel(req, &info) {
		if err := c.shippingInfoRepository.Save(nil, &info); err != nil {
			return writeError(err, "shipping info")
		}
	}
	return ctx.JSON(http.StatusOK, info)
}

func (c ShippingInfoController) Delete(ctx shared.Context) error {
	return deleteEntity(ctx, c.shippingInfoRepository, "shipping info")
}

type shipmentEvent struct {
	Status      string     `json:"status"`
	Timestamp   *time.Time `json:"timestamp"`
	Description string     `json:"description"`
}

// History derives the status timeline of a single shipment from its
// timestamps. The rows are synthesized, not stored.
func (c ShippingInfoController) History(ctx shared.Context) error {
	id, err := shared.GetParamID(ctx)
	if err != nil {
		return err
	}
	info, err := c.shippingInfoRepository.Read(id)
	if err != nil {
		return readError(err, "shipping info")
	}
	return ctx.JSON(http.StatusOK, shipmentTimeline(info))
}

// Events lists every shipment of the same purchase order, so the caller can
// follow partial deliveries side by side.
func (c ShippingInfoController) Events(ctx shared.Context) error {
	id, err := shared.GetParamID(ctx)
	if err != nil {
		return err
	}
	info, err := c.shippingInfoRepository.Read(id)
	if err != nil {
		return readError(err, "shipping info")
	}
	siblings, err := c.shippingInfoRepository.All(map[string]any{"purchase_order_id": info.PurchaseOrderID})
	if err != nil {
		return readError(err, "shipping info")
	}
	events := make([]shipmentEvent, 0)
	for _, sibling := range siblings {
		events = append(events, shipmentTimeline(sibling)...)
	}
	return ctx.JSON(http.StatusOK, events)
}

func shipmentTimeline(info models.ShippingInfo) []shipmentEvent {
	createdAt := info.CreatedAt
	events := []shipmentEvent{
		{Status: "created", Timestamp: &createdAt, Description: "shipment registered with " + info.Carrier},
	}
	if info.EstimatedArrival != nil {
		events = append(events, shipmentEvent{
			Status:      info.Status,
			Timestamp:   info.EstimatedArrival,
			Description: "estimated arrival",
		})
	}
	if info.ActualArrival != nil {
		events = append(events, shipmentEvent{
			Status:      "delivered",
			Timestamp:   info.ActualArrival,
			Description: "shipment arrived",
		})
	}
	return events
}

type PurchaseGroupController struct {
	purchaseGroupRepository *repositories.PurchaseGroupRepository
}

func NewPurchaseGroupController(purchaseGroupRepository *repositories.PurchaseGroupRepository) *PurchaseGroupController {
	return &PurchaseGroupController{purchaseGroupRepository: purchaseGroupRepository}
}

func (c PurchaseGroupController) List(ctx shared.Context) error {
	return listEntity[models.PurchaseGroup](ctx, c.purchaseGroupRepository, "purchase group", map[string]string{
		"name": "name",
	})
}

func (c PurchaseGroupController) Read(ctx shared.Context) error {
	return readEntity[models.PurchaseGroup](ctx, c.purchaseGroupRepository, "purchase group")
}

func (c PurchaseGroupController) Create(ctx shared.Context) error {
	req, err := bindAndValidate[dtos.PurchaseGroupCreateRequest](ctx)
	if err != nil {
		return err
	}
	group := transformer.PurchaseGroupCreateRequestToModel(req)
	if err := c.purchaseGroupRepository.Create(nil, &group); err != nil {
		return writeError(err, "purchase group")
	}
	return ctx.JSON(http.StatusCreated, group)
}

func (c PurchaseGroupController) Update(ctx shared.Context) error {
	id, err := shared.GetParamID(ctx)
	if err != nil {
		return err
	}
	group, err := c.purchaseGroupRepository.Read(id)
	if err != nil {
		return readError(err, "purchase group")
	}
	req, err := bindAndValidate[dtos.PurchaseGroupPatchRequest](ctx)
	if err != nil {
		return err
	}
	if transformer.ApplyPurchaseGroupPatchRequestToModel(req, &group) {
		if err := c.purchaseGroupRepository.Save(nil, &group); err != nil {
			return writeError(err, "purchase group")
		}
	}
	return ctx.JSON(http.StatusOK, group)
}

func (c PurchaseGroupController) Delete(ctx shared.Context) error {
	return deleteEntity(ctx, c.purchaseGroupRepository, "purchase group")
}
