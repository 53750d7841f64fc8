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

type InvoiceController struct {
	invoiceRepository       *repositories.InvoiceRepository
	purchaseOrderRepository *repositories.PurchaseOrderRepository
	supplierRepository      *repositories.SupplierRepository
}

func NewInvoiceController(invoiceRepository *repositories.InvoiceRepository, purchaseOrderRepository *repositories.PurchaseOrderRepository, supplierRepository *repositories.SupplierRepository) *InvoiceController {
	return &InvoiceController{
		invoiceRepository:       invoiceRepository,
		purchaseOrderRepository: purchaseOrderRepository,
		supplierRepository:      supplierRepository,
	}
}

func (c InvoiceController) List(ctx shared.Context) error {
	return listEntity[models.Invoice](ctx, c.invoiceRepository, "invoice", map[string]string{
		"supplierId":      "supplier_id",
		"purchaseOrderId": "purchase_order_id",
		"status":          "status",
	})
}

func (c InvoiceController) Read(ctx shared.Context) error {
	return readEntity[models.Invoice](ctx, c.invoiceRepository, "invoice")
}

func (c InvoiceController) Create(ctx shared.Context) error {
	req, err := bindAndValidate[dtos.InvoiceCreateRequest](ctx)
	if err != nil {
		return err
	}
	if err := assertExists(c.supplierRepository, req.SupplierID, "supplier_id"); err != nil {
		return err
	}
	if req.PurchaseOrderID != nil {
		if err := assertExists(c.purchaseOrderRepository, *req.PurchaseOrderID, "purchase_order_id"); err != nil {
			return err
		}
	}
	invoice := transformer.InvoiceCreateRequestToModel(req)
	if err := c.invoiceRepository.Create(nil, &invoice); err != nil {
		return writeError(err, "invoice")
	}
	return ctx.JSON(http.StatusCreated, invoice)
}

func (c InvoiceController) Update(ctx shared.Context) error {
	id, err := shared.GetParamID(ctx)
	if err != nil {
		return err
	}
	invoice, err := c.invoiceRepository.Read(id)
	if err != nil {
		return readError(err, "invoice")
	}
	req, err := bindAndValidate[dtos.InvoicePatchRequest](ctx)
	if err != nil {
		return err
	}
	if req.SupplierID != nil {
		if err := assertExists(c.supplierRepository, *req.SupplierID, "supplier_id"); err != nil {
			return err
		}
	}
	if req.PurchaseOrderID.Present && req.PurchaseOrderID.Value != nil {
		if err := assertExists(c.purchaseOrderRepository, *req.PurchaseOrderID.Value, "purchase_order_id"); err != nil {
			return err
		}
	}
	if transformer.ApplyInvoicePatchRequestToModel(req, &invoice) {
		if err := c.invoiceRepository.Save(nil, &invoice); err != nil {
			return writeError(err, "invoice")
		}
	}
	return ctx.JSON(http.StatusOK, invoice)
}

func (c InvoiceController) Delete(ctx shared.Context) error {
	return deleteEntity(ctx, c.invoiceRepository, "invoice")
}

type PaymentController struct {
	paymentRepository *repositories.PaymentRepository
	invoiceRepository *repositories.InvoiceRepository
}

func NewPaymentController(paymentRepository *repositories.PaymentRepository, invoiceRepository *repositories.InvoiceRepository) *PaymentController {
	return &PaymentController{
		paymentRepository: paymentRepository,
		invoiceRepository: invoiceRepository,
	}
}

func (c PaymentController) List(ctx shared.Context) error {
	return listEntity[models.Payment](ctx, c.paymentRepository, "payment", map[string]string{
		"invoiceId": "invoice_id",
		"method":    "method",
	})
}

func (c PaymentController) Read(ctx shared.Context) error {
	return readEntity[models.Payment](ctx, c.paymentRepository, "payment")
}

func (c PaymentController) Create(ctx shared.Context) error {
	req, err := bindAndValidate[dtos.PaymentCreateRequest](ctx)
	if err != nil {
		return err
	}
	if err := assertExists(c.invoiceRepository, req.InvoiceID, "invoice_id"); err != nil {
		return err
	}
	payment := transformer.PaymentCreateRequestToModel(req)
	if err := c.paymentRepository.Create(nil, &payment); err != nil {
		return writeError(err, "payment")
	}
	return ctx.JSON(http.StatusCreated, payment)
}

func (c PaymentController) Update(ctx shared.Context) error {
	id, err := shared.GetParamID(ctx)
	if err != nil {
		return err
	}
	payment, err := c.paymentRepository.Read(id)
	if err != nil {
		return readError(err, "payment")
	}
	req, err := bindAndValidate[dtos.PaymentPatchRequest](ctx)
	if err != nil {
		return err
	}
	if req.InvoiceID != nil {
		if err := assertExists(c.invoiceRepository, *req.InvoiceID, "invoice_id"); err != nil {
			return err
		}
	}
	if transformer.ApplyPaymentPatchRequestToModel(req, &payment) {
		if err := c.paymentRepository.Save(nil, &payment); err != nil {
			return writeError(err, "payment")
		}
	}
	return ctx.JSON(http.StatusOK, payment)
}

func (c PaymentController) Delete(ctx shared.Context) error {
	return deleteEntity(ctx, c.paymentRepository, "payment")
}

type LandedCostController struct {
	landedCostRepository *repositories.LandedCostRepository
	componentRepository  *repositories.ComponentRepository
	supplierRepository   *repositories.SupplierRepository
}

func NewLandedCostController(landedCostRepository *repositories.LandedCostRepository, componentRepository *repositories.ComponentRepository, supplierRepository *repositories.SupplierRepository) *LandedCostController {
	return &LandedCostController{
		landedCostRepository: landedCostRepository,
		componentRepository:  componentRepository,
		supplierRepository:   supplierRepository,
	}
}

func (c LandedCostController) List(ctx shared.Context) error {
	return listEntity[models.LandedCost](ctx, c.landedCostRepository, "landed cost", map[string]string{
		"componentId": "component_id",
		"supplierId":  "supplier_id",
	})
}

func (c LandedCostController) Read(ctx shared.Context) error {
	return readEntity[models.LandedCost](ctx, c.landedCostRepository, "landed cost")
}

func (c LandedCostController) Create(ctx shared.Context) error {
	req, err := bindAndValidate[dtos.LandedCostCreateRequest](ctx)
	if err != nil {
		return err
	}
	if err := assertExists(c.componentRepository, req.ComponentID, "component_id"); err != nil {
		return err
	}
	if req.SupplierID != nil {
		if err := assertExists(c.supplierRepository, *req.SupplierID, "supplier_id"); err != nil {
			return err
		}
	}
	cost := transformer.LandedCostCreateRequestToModel(req)
	if err := c.landedCostRepository.Create(nil, &cost); err != nil {
		return writeError(err, "landed cost")
	}
	return ctx.JSON(http.StatusCreated, cost)
}

func (c LandedCostController) Update(ctx shared.Context) error {
	id, err := shared.GetParamID(ctx)
	if err != nil {
		return err
	}
	cost, err := c.landedCostRepository.Read(id)
	if err != nil {
		return readError(err, "landed cost")
	}
	req, err := bindAndValidate[dtos.LandedCostPatchRequest](ctx)
	if err != nil {
		return err
	}
	if req.ComponentID != nil {
		if err := assertExists(c.componentRepository, *req.ComponentID, "component_id"); err != nil {
			return err
		}
	}
	if req.SupplierID.Present && req.SupplierID.Value != nil {
		if err := assertExists(c.supplierRepository, *req.SupplierID.Value, "supplier_id"); err != nil {
			return err
		}
	}
	if transformer.ApplyLandedCostPatchRequestToModel(req, &cost) {
		if err := c.landedCostRepository.Save(nil, &cost); err != nil {
			return writeError(err, "landed cost")
		}
	}
	return ctx.JSON(http.StatusOK, cost)
}

func (c LandedCostController) Delete(ctx shared.Context) error {
	return deleteEntity(ctx, c.landedCostRepository, "landed cost")
}

type InventoryValuationController struct {
	valuationRepository *repositories.InventoryValuationRepository
	warehouseRepository *repositories.WarehouseRepository
}

func NewInventoryValuationController(valuationRepository *repositories.InventoryValuationRepository, warehouseRepository *repositories.WarehouseRepository) *InventoryValuationController {
	return &InventoryValuationController{
		valuationRepository: valuationRepository,
		warehouseRepository: warehouseRepository,
	}
}

func (c InventoryValuationController) List(ctx shared.Context) error {
	return listEntity[models.InventoryValuation](ctx, c.valuationRepository, "inventory valuation", map[string]string{
		"warehouseId": "warehouse_id",
		"method":      "method",
	})
}

func (c InventoryValuationController) Read(ctx shared.Context) error {
	return readEntity[models.InventoryValuation](ctx, c.valuationRepository, "inventory valuation")
}

func (c InventoryValuationController) Create(ctx shared.Context) error {
	req, err := bindAndValidate[dtos.InventoryValuationCreateRequest](ctx)
	if err != nil {
		return err
	}
	if err := assertExists(c.warehouseRepository, req.WarehouseID, "warehouse_id"); err != nil {
		return err
	}
	valuation := transformer.InventoryValuationCreateRequestToModel(req)
	if err := c.valuationRepository.Create(nil, &valuation); err != nil {
		return writeError(err, "inventory valuation")
	}
	return ctx.JSON(http.StatusCreated, valuation)
}

func (c InventoryValuationController) Update(ctx shared.Context) error {
	id, err := shared.GetParamID(ctx)
	if err != nil {
		return err
	}
	valuation, err := c.valuationRepository.Read(id)
	if err != nil {
		return readError(err, "inventory valuation")
	}
	req, err := bindAndValidate[dtos.InventoryValuationPatchRequest](ctx)
	if err != nil {
		return err
	}
	if req.WarehouseID != nil {
		if err := assertExists(c.warehouseRepository, *req.WarehouseID, "warehouse_id"); err != nil {
			return err
		}
	}
	if transformer.ApplyInventoryValuationPatchRequestToModel(req, &valuation) {
		if err := c.valuationRepository.Save(nil, &valuation); err != nil {
			return writeError(err, "inventory valuation")
		}
	}
	return ctx.JSON(http.StatusOK, valuation)
}

func (c InventoryValuationController) Delete(ctx shared.Context) error {
	return deleteEntity(ctx, c.valuationRepository, "inventory valuation")
}
