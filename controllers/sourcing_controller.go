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

type RFQController struct {
	rfqRepository       *repositories.RFQRepository
	supplierRepository  *repositories.SupplierRepository
	componentRepository *repositories.ComponentRepository
}

func NewRFQController(rfqRepository *repositories.RFQRepository, supplierRepository *repositories.SupplierRepository, componentRepository *repositories.ComponentRepository) *RFQController {
	return &RFQController{
		rfqRepository:       rfqRepository,
		supplierRepository:  supplierRepository,
		componentRepository: componentRepository,
	}
}

func (c RFQController) List(ctx shared.Context) error {
	return listEntity[models.RFQ](ctx, c.rfqRepository, "rfq", map[string]string{
		"supplierId": "supplier_id",
		"status":     "status",
	})
}

func (c RFQController) Read(ctx shared.Context) error {
	return readEntity[models.RFQ](ctx, c.rfqRepository, "rfq")
}

func (c RFQController) Create(ctx shared.Context) error {
	req, err := bindAndValidate[dtos.RFQCreateRequest](ctx)
	if err != nil {
		return err
	}
	if err := assertExists(c.supplierRepository, req.SupplierID, "supplier_id"); err != nil {
		return err
	}
	for _, item := range req.Items {
		if err := assertExists(c.componentRepository, item.ComponentID, "component_id"); err != nil {
			return err
		}
	}
	rfq, items := transformer.RFQCreateRequestToModels(req)
	if err := c.rfqRepository.CreateWithItems(&rfq, items); err != nil {
		return writeError(err, "rfq")
	}
	return ctx.JSON(http.StatusCreated, rfq)
}

func (c RFQController) Update(ctx shared.Context) error {
	id, err := shared.GetParamID(ctx)
	if err != nil {
		return err
	}
	rfq, err := c.rfqRepository.Read(id)
	if err != nil {
		return readError(err, "rfq")
	}
	req, err := bindAndValidate[dtos.RFQPatchRequest](ctx)
	if err != nil {
		return err
	}
	if req.SupplierID != nil {
		if err := assertExists(c.supplierRepository, *req.SupplierID, "supplier_id"); err != nil {
			return err
		}
	}
	if transformer.ApplyRFQPatchRequestToModel(req, &rfq) {
		if err := c.rfqRepository.Save(nil, &rfq); err != nil {
			return writeError(err, "rfq")
		}
	}
	return ctx.JSON(http.StatusOK, rfq)
}

func (c RFQController) Delete(ctx shared.Context) error {
	return deleteEntity(ctx, c.rfqRepository, "rfq")
}

type RFQItemController struct {
	rfqItemRepository   *repositories.RFQItemRepository
	rfqRepository       *repositories.RFQRepository
	componentRepository *repositories.ComponentRepository
}

func NewRFQItemController(rfqItemRepository *repositories.RFQItemRepository, rfqRepository *repositories.RFQRepository, componentRepository *repositories.ComponentRepository) *RFQItemController {
	return &RFQItemController{
		rfqItemRepository:   rfqItemRepository,
		rfqRepository:       rfqRepository,
		componentRepository: componentRepository,
	}
}

func (c RFQItemController) List(ctx shared.Context) error {
	return listEntity[models.RFQItem](ctx, c.rfqItemRepository, "rfq item", map[string]string{
		"rfqId":       "rfq_id",
		"componentId": "component_id",
	})
}

func (c RFQItemController) Read(ctx shared.Context) error {
	return readEntity[models.RFQItem](ctx, c.rfqItemRepository, "rfq item")
}

func (c RFQItemController) Create(ctx shared.Context) error {
	req, err := bindAndValidate[dtos.RFQItemCreateRequest](ctx)
	if err != nil {
		return err
	}
	if err := assertExists(c.rfqRepository, req.RFQID, "rfq_id"); err != nil {
		return err
	}
	if err := assertExists(c.componentRepository, req.ComponentID, "component_id"); err != nil {
		return err
	}
	item := transformer.RFQItemCreateRequestToModel(req)
	if err := c.rfqItemRepository.Create(nil, &item); err != nil {
		return writeError(err, "rfq item")
	}
	return ctx.JSON(http.StatusCreated, item)
}

func (c RFQItemController) Update(ctx shared.Context) error {
	id, err := shared.GetParamID(ctx)
	if err != nil {
		return err
	}
	item, err := c.rfqItemRepository.Read(id)
	if err != nil {
		return readError(err, "rfq item")
	}
	req, err := bindAndValidate[dtos.RFQItemPatchRequest](ctx)
	if err != nil {
		return err
	}
	if req.RFQID != nil {
		if err := assertExists(c.rfqRepository, *req.RFQID, "rfq_id"); err != nil {
			return err
		}
	}
	if req.ComponentID != nil {
		if err := assertExists(c.componentRepository, *req.ComponentID, "component_id"); err != nil {
			return err
		}
	}
	if transformer.ApplyRFQItemPatchRequestToModel(req, &item) {
		if err := c.rfqItemRepository.Save(nil, &item); err != nil {
			return writeError(err, "rfq item")
		}
	}
	return ctx.JSON(http.StatusOK, item)
}

func (c RFQItemController) Delete(ctx shared.Context) error {
	return deleteEntity(ctx, c.rfqItemRepository, "rfq item")
}

type ReturnOrderController struct {
	returnOrderRepository   *repositories.ReturnOrderRepository
	purchaseOrderRepository *repositories.PurchaseOrderRepository
	componentRepository     *repositories.ComponentRepository
}

func NewReturnOrderController(returnOrderRepository *repositories.ReturnOrderRepository, purchaseOrderRepository *repositories.PurchaseOrderRepository, componentRepository *repositories.ComponentRepository) *ReturnOrderController {
	return &ReturnOrderController{
		returnOrderRepository:   returnOrderRepository,
		purchaseOrderRepository: purchaseOrderRepository,
		componentRepository:     componentRepository,
	}
}

func (c ReturnOrderController) List(ctx shared.Context) error {
	return listEntity[models.ReturnOrder](ctx, c.returnOrderRepository, "return order", map[string]string{
		"purchaseOrderId": "purchase_order_id",
		"status":          "status",
	})
}

func (c ReturnOrderController) Read(ctx shared.Context) error {
	return readEntity[models.ReturnOrder](ctx, c.returnOrderRepository, "return order")
}

func (c ReturnOrderController) Create(ctx shared.Context) error {
	req, err := bindAndValidate[dtos.ReturnOrderCreateRequest](ctx)
	if err != nil {
		return err
	}
	if err := assertExists(c.purchaseOrderRepository, req.PurchaseOrderID, "purchase_order_id"); err != nil {
		return err
	}
	for _, item := range req.Items {
		if err := assertExists(c.componentRepository, item.ComponentID, "component_id"); err != nil {
			return err
		}
	}
	order, items := transformer.ReturnOrderCreateRequestToModels(req)
	if err := c.returnOrderRepository.CreateWithItems(&order, items); err != nil {
		return writeError(err, "return order")
	}
	return ctx.JSON(http.StatusCreated, order)
}

func (c ReturnOrderController) Update(ctx shared.Context) error {
	id, err := shared.GetParamID(ctx)
	if err != nil {
		return err
	}
	order, err := c.returnOrderRepository.Read(id)
	if err != nil {
		return readError(err, "return order")
	}
	req, err := bindAndValidate[dtos.ReturnOrderPatchRequest](ctx)
	if err != nil {
		return err
	}
	if req.PurchaseOrderID != nil {
		if err := assertExists(c.purchaseOrderRepository, *req.PurchaseOrderID, "purchase_order_id"); err != nil {
			return err
		}
	}
	if transformer.ApplyReturnOrderPatchRequestToModel(req, &order) {
		if err := c.returnOrderRepository.Save(nil, &order); err != nil {
			return writeError(err, "return order")
		}
	}
	return ctx.JSON(http.StatusOK, order)
}

func (c ReturnOrderController) Delete(ctx shared.Context) error {
	return deleteEntity(ctx, c.returnOrderRepository, "return order")
}

type ReturnOrderItemController struct {
	returnOrderItemRepository *repositories.ReturnOrderItemRepository
	returnOrderRepository     *repositories.ReturnOrderRepository
	componentRepository       *repositories.ComponentRepository
}

func NewReturnOrderItemController(returnOrderItemRepository *repositories.ReturnOrderItemRepository, returnOrderRepository *repositories.ReturnOrderRepository, componentRepository *repositories.ComponentRepository) *ReturnOrderItemController {
	return &ReturnOrderItemController{
		returnOrderItemRepository: returnOrderItemRepository,
		returnOrderRepository:     returnOrderRepository,
		componentRepository:       componentRepository,
	}
}

func (c ReturnOrderItemController) List(ctx shared.Context) error {
	return listEntity[models.ReturnOrderItem](ctx, c.returnOrderItemRepository, "return order item", map[string]string{
		"returnOrderId": "return_order_id",
		"componentId":   "component_id",
	})
}

func (c ReturnOrderItemController) Read(ctx shared.Context) error {
	return readEntity[models.ReturnOrderItem](ctx, c.returnOrderItemRepository, "return order item")
}

func (c ReturnOrderItemController) Create(ctx shared.Context) error {
	req, err := bindAndValidate[dtos.ReturnOrderItemCreateRequest](ctx)
	if err != nil {
		return err
	}
	if err := assertExists(c.returnOrderRepository, req.ReturnOrderID, "return_order_id"); err != nil {
		return err
	}
	if err := assertExists(c.componentRepository, req.ComponentID, "component_id"); err != nil {
		return err
	}
	item := transformer.ReturnOrderItemCreateRequestToModel(req)
	if err := c.returnOrderItemRepository.Create(nil, &item); err != nil {
		return writeError(err, "return order item")
	}
	return ctx.JSON(http.StatusCreated, item)
}

func (c ReturnOrderItemController) Update(ctx shared.Context) error {
	id, err := shared.GetParamID(ctx)
	if err != nil {
		return err
	}
	item, err := c.returnOrderItemRepository.Read(id)
	if err != nil {
		return readError(err, "return order item")
	}
	req, err := bindAndValidate[dtos.ReturnOrderItemPatchRequest](ctx)
	if err != nil {
		return err
	}
	if req.ReturnOrderID != nil {
		if err := assertExists(c.returnOrderRepository, *req.ReturnOrderID, "return_order_id"); err != nil {
			return err
		}
	}
	if req.ComponentID != nil {
		if err := assertExists(c.componentRepository, *req.ComponentID, "component_id"); err != nil {
			return err
		}
	}
	if transformer.ApplyReturnOrderItemPatchRequestToModel(req, &item) {
		if err := c.returnOrderItemRepository.Save(nil, &item); err != nil {
			return writeError(err, "return order item")
		}
	}
	return ctx.JSON(http.StatusOK, item)
}

func (c ReturnOrderItemController) Delete(ctx shared.Context) error {
	return deleteEntity(ctx, c.returnOrderItemRepository, "return order item")
}

type RiskPredictionController struct {
	riskPredictionRepository *repositories.RiskPredictionRepository
	supplierRepository       *repositories.SupplierRepository
	componentRepository      *repositories.ComponentRepository
}

func NewRiskPredictionController(riskPredictionRepository *repositories.RiskPredictionRepository, supplierRepository *repositories.SupplierRepository, componentRepository *repositories.ComponentRepository) *RiskPredictionController {
	return &RiskPredictionController{
		riskPredictionRepository: riskPredictionRepository,
		supplierRepository:       supplierRepository,
		componentRepository:      componentRepository,
	}
}

func (c RiskPredictionController) List(ctx shared.Context) error {
	return listEntity[models.RiskPrediction](ctx, c.riskPredictionRepository, "risk prediction", map[string]string{
		"supplierId":  "supplier_id",
		"componentId": "component_id",
		"type":        "type",
	})
}

func (c RiskPredictionController) Read(ctx shared.Context) error {
	return readEntity[models.RiskPrediction](ctx, c.riskPredictionRepository, "risk prediction")
}

func (c RiskPredictionController) Create(ctx shared.Context) error {
	req, err := bindAndValidate[dtos.RiskPredictionCreateRequest](ctx)
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
	prediction := transformer.RiskPredictionCreateRequestToModel(req)
	if err := c.riskPredictionRepository.Create(nil, &prediction); err != nil {
		return writeError(err, "risk prediction")
	}
	return ctx.JSON(http.StatusCreated, prediction)
}

func (c RiskPredictionController) Update(ctx shared.Context) error {
	id, err := shared.GetParamID(ctx)
	if err != nil {
		return err
	}
	prediction, err := c.riskPredictionRepository.Read(id)
	if err != nil {
		return readError(err, "risk prediction")
	}
	req, err := bindAndValidate[dtos.RiskPredictionPatchRequest](ctx)
	if err != nil {
		return err
	}
	if req.SupplierID.Present && req.SupplierID.Value != nil {
		if err := assertExists(c.supplierRepository, *req.SupplierID.Value, "supplier_id"); err != nil {
			return err
		}
	}
	if req.ComponentID.Present && req.ComponentID.Value != nil {
		if err := assertExists(c.componentRepository, *req.ComponentID.Value, "component_id"); err != nil {
			return err
		}
	}
	if transformer.ApplyRiskPredictionPatchRequestToModel(req, &prediction) {
		if err := c.riskPredictionRepository.Save(nil, &prediction); err != nil {
			return writeError(err, "risk prediction")
		}
	}
	return ctx.JSON(http.StatusOK, prediction)
}

func (c RiskPredictionController) Delete(ctx shared.Context) error {
	return deleteEntity(ctx, c.riskPredictionRepository, "risk prediction")
}

type ScenarioModelController struct {
	scenarioModelRepository *repositories.ScenarioModelRepository
}

func NewScenarioModelController(scenarioModelRepository *repositories.ScenarioModelRepository) *ScenarioModelController {
	return &ScenarioModelController{scenarioModelRepository: scenarioModelRepository}
}

func (c ScenarioModelController) List(ctx shared.Context) error {
	return listEntity[models.ScenarioModel](ctx, c.scenarioModelRepository, "scenario model", map[string]string{
		"status": "status",
		"name":   "name",
	})
}

func (c ScenarioModelController) Read(ctx shared.Context) error {
	return readEntity[models.ScenarioModel](ctx, c.scenarioModelRepository, "scenario model")
}

func (c ScenarioModelController) Create(ctx shared.Context) error {
	req, err := bindAndValidate[dtos.ScenarioModelCreateRequest](ctx)
	if err != nil {
		return err
	}
	scenario := transformer.ScenarioModelCreateRequestToModel(req)
	if err := c.scenarioModelRepository.Create(nil, &scenario); err != nil {
		return writeError(err, "scenario model")
	}
	return ctx.JSON(http.StatusCreated, scenario)
}

func (c ScenarioModelController) Update(ctx shared.Context) error {
	id, err := shared.GetParamID(ctx)
	if err != nil {
		return err
	}
	scenario, err := c.scenarioModelRepository.Read(id)
	if err != nil {
		return readError(err, "scenario model")
	}
	req, err := bindAndValidate[dtos.ScenarioModelPatchRequest](ctx)
	if err != nil {
		return err
	}
	if transformer.ApplyScenarioModelPatchRequestToModel(req, &scenario) {
		if err := c.scenarioModelRepository.Save(nil, &scenario); err != nil {
			return writeError(err, "scenario model")
		}
	}
	return ctx.JSON(http.StatusOK, scenario)
}

func (c ScenarioModelController) Delete(ctx shared.Context) error {
	return deleteEntity(ctx, c.scenarioModelRepository, "scenario model")
}

type SupplierPerformanceController struct {
	performanceRepository *repositories.SupplierPerformanceRepository
	supplierRepository    *repositories.SupplierRepository
}

func NewSupplierPerformanceController(performanceRepository *repositories.SupplierPerformanceRepository, supplierRepository *repositories.SupplierRepository) *SupplierPerformanceController {
	return &SupplierPerformanceController{
		performanceRepository: performanceRepository,
		supplierRepository:    supplierRepository,
	}
}

func (c SupplierPerformanceController) List(ctx shared.Context) error {
	return listEntity[models.SupplierPerformance](ctx, c.performanceRepository, "supplier performance", map[string]string{
		"supplierId": "supplier_id",
		"period":     "period",
	})
}

func (c SupplierPerformanceController) Read(ctx shared.Context) error {
	return readEntity[models.SupplierPerformance](ctx, c.performanceRepository, "supplier performance")
}

func (c SupplierPerformanceController) Create(ctx shared.Context) error {
	req, err := bindAndValidate[dtos.SupplierPerformanceCreateRequest](ctx)
	if err != nil {
		return err
	}
	if err := assertExists(c.supplierRepository, req.SupplierID, "supplier_id"); err != nil {
		return err
	}
	perf := transformer.SupplierPerformanceCreateRequestToModel(req)
	if err := c.performanceRepository.Create(nil, &perf); err != nil {
		return writeError(err, "supplier performance")
	}
	return ctx.JSON(http.StatusCreated, perf)
}

func (c SupplierPerformanceController) Update(ctx shared.Context) error {
	id, err := shared.GetParamID(ctx)
	if err != nil {
		return err
	}
	perf, err := c.performanceRepository.Read(id)
	if err != nil {
		return readError(err, "supplier performance")
	}
	req, err := bindAndValidate[dtos.SupplierPerformancePatchRequest](ctx)
	if err != nil {
		return err
	}
	if req.SupplierID != nil {
		if err := assertExists(c.supplierRepository, *req.SupplierID, "supplier_id"); err != nil {
			return err
		}
	}
	if transformer.ApplySupplierPerformancePatchRequestToModel(req, &perf) {
		if err := c.performanceRepository.Save(nil, &perf); err != nil {
			return writeError(err, "supplier performance")
		}
	}
	return ctx.JSON(http.StatusOK, perf)
}

func (c SupplierPerformanceController) Delete(ctx shared.Context) error {
	return deleteEntity(ctx, c.performanceRepository, "supplier performance")
}

type SupplierScoreController struct {
	scoreRepository    *repositories.SupplierScoreRepository
	supplierRepository *repositories.SupplierRepository
}

func NewSupplierScoreController(scoreRepository *repositories.SupplierScoreRepository, supplierRepository *repositories.SupplierRepository) *SupplierScoreController {
	return &SupplierScoreController{
		scoreRepository:    scoreRepository,
		supplierRepository: supplierRepository,
	}
}

func (c SupplierScoreController) List(ctx shared.Context) error {
	return listEntity[models.SupplierScore](ctx, c.scoreRepository, "supplier score", map[string]string{
		"supplierId": "supplier_id",
		"category":   "category",
	})
}

func (c SupplierScoreController) Read(ctx shared.Context) error {
	return readEntity[models.SupplierScore](ctx, c.scoreRepository, "supplier score")
}

func (c SupplierScoreController) Create(ctx shared.Context) error {
	req, err := bindAndValidate[dtos.SupplierScoreCreateRequest](ctx)
	if err != nil {
		return err
	}
	if err := assertExists(c.supplierRepository, req.SupplierID, "supplier_id"); err != nil {
		return err
	}
	score := transformer.SupplierScoreCreateRequestToModel(req)
	if err := c.scoreRepository.Create(nil, &score); err != nil {
		return writeError(err, "supplier score")
	}
	return ctx.JSON(http.StatusCreated, score)
}

func (c SupplierScoreController) Update(ctx shared.Context) error {
	id, err := shared.GetParamID(ctx)
	if err != nil {
		return err
	}
	score, err := c.scoreRepository.Read(id)
	if err != nil {
		return readError(err, "supplier score")
	}
	req, err := bindAndValidate[dtos.SupplierScorePatchRequest](ctx)
	if err != nil {
		return err
	}
	if req.SupplierID != nil {
		if err := assertExists(c.supplierRepository, *req.SupplierID, "supplier_id"); err != nil {
			return err
		}
	}
	if transformer.ApplySupplierScorePatchRequestToModel(req, &score) {
		if err := c.scoreRepository.Save(nil, &score); err != nil {
			return writeError(err, "supplier score")
		}
	}
	return ctx.JSON(http.StatusOK, score)
}

func (c SupplierScoreController) Delete(ctx shared.Context) error {
	return deleteEntity(ctx, c.scoreRepository, "supplier score")
}
