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
	"github.com/supplyline-dev/supplyline/utils"
)

func RFQCreateRequestToModels(req dtos.RFQCreateRequest) (models.RFQ, []models.RFQItem) {
	rfq := models.RFQ{
		SupplierID: req.SupplierID,
		Status:     req.Status,
		DueDate:    req.DueDate,
		Notes:      req.Notes,
	}
	items := utils.Map(req.Items, func(item dtos.RFQItemInlineRequest) models.RFQItem {
		rfqItem := models.RFQItem{
			ComponentID: item.ComponentID,
			Qty:         1,
		}
		if item.Qty != nil {
			rfqItem.Qty = *item.Qty
		}
		if item.TargetUnitCost != nil {
			rfqItem.TargetUnitCost = *item.TargetUnitCost
		}
		return rfqItem
	})
	return rfq, items
}

func ApplyRFQPatchRequestToModel(req dtos.RFQPatchRequest, rfq *models.RFQ) bool {
	updated := apply(&rfq.SupplierID, req.SupplierID)
	updated = apply(&rfq.Status, req.Status) || updated
	updated = applyRef(&rfq.DueDate, req.DueDate) || updated
	updated = apply(&rfq.Notes, req.Notes) || updated
	return updated
}

func RFQItemCreateRequestToModel(req dtos.RFQItemCreateRequest) models.RFQItem {
	item := models.RFQItem{
		RFQID:       req.RFQID,
		ComponentID: req.ComponentID,
		Qty:         1,
	}
	if req.Qty != nil {
		item.Qty = *req.Qty
	}
	if req.TargetUnitCost != nil {
		item.TargetUnitCost = *req.TargetUnitCost
	}
	return item
}

func ApplyRFQItemPatchRequestToModel(req dtos.RFQItemPatchRequest, item *models.RFQItem) bool {
	updated := apply(&item.RFQID, req.RFQID)
	updated = apply(&item.ComponentID, req.ComponentID) || updated
	updated = apply(&item.Qty, req.Qty) || updated
	updated = apply(&item.TargetUnitCost, req.TargetUnitCost) || updated
	return updated
}

func ReturnOrderCreateRequestToModels(req dtos.ReturnOrderCreateRequest) (models.ReturnOrder, []models.ReturnOrderItem) {
	order := models.ReturnOrder{
		PurchaseOrderID: req.PurchaseOrderID,
		Reason:          req.Reason,
		Status:          req.Status,
	}
	items := utils.Map(req.Items, func(item dtos.ReturnOrderItemInlineRequest) models.ReturnOrderItem {
		returnItem := models.ReturnOrderItem{
			ComponentID: item.ComponentID,
			Qty:         1,
			Condition:   item.Condition,
		}
		if item.Qty != nil {
			returnItem.Qty = *item.Qty
		}
		return returnItem
	})
	return order, items
}

func ApplyReturnOrderPatchRequestToModel(req dtos.ReturnOrderPatchRequest, order *models.ReturnOrder) bool {
	updated := apply(&order.PurchaseOrderID, req.PurchaseOrderID)
	updated = apply(&order.Reason, req.Reason) || updated
	updated = apply(&order.Status, req.Status) || updated
	return updated
}

func ReturnOrderItemCreateRequestToModel(req dtos.ReturnOrderItemCreateRequest) models.ReturnOrderItem {
	item := models.ReturnOrderItem{
		ReturnOrderID: req.ReturnOrderID,
		ComponentID:   req.ComponentID,
		Qty:           1,
		Condition:     req.Condition,
	}
	if req.Qty != nil {
		item.Qty = *req.Qty
	}
	return item
}

func ApplyReturnOrderItemPatchRequestToModel(req dtos.ReturnOrderItemPatchRequest, item *models.ReturnOrderItem) bool {
	updated := apply(&item.ReturnOrderID, req.ReturnOrderID)
	updated = apply(&item.ComponentID, req.ComponentID) || updated
	updated = apply(&item.Qty, req.Qty) || updated
	updated = apply(&item.Condition, req.Condition) || updated
	return updated
}

func RiskPredictionCreateRequestToModel(req dtos.RiskPredictionCreateRequest) models.RiskPrediction {
	prediction := models.RiskPrediction{
		SupplierID:  req.SupplierID,
		ComponentID: req.ComponentID,
		Type:        req.Type,
		Score:       req.Score,
		HorizonDays: 30,
		Details:     req.Details,
	}
	if req.HorizonDays != nil {
		prediction.HorizonDays = *req.HorizonDays
	}
	return prediction
}

func ApplyRiskPredictionPatchRequestToModel(req dtos.RiskPredictionPatchRequest, prediction *models.RiskPrediction) bool {
	updated := applyOptional(&prediction.SupplierID, req.SupplierID)
	updated = applyOptional(&prediction.ComponentID, req.ComponentID) || updated
	updated = apply(&prediction.Type, req.Type) || updated
	updated = apply(&prediction.Score, req.Score) || updated
	updated = apply(&prediction.HorizonDays, req.HorizonDays) || updated
	updated = apply(&prediction.Details, req.Details) || updated
	return updated
}

func ScenarioModelCreateRequestToModel(req dtos.ScenarioModelCreateRequest) models.ScenarioModel {
	return models.ScenarioModel{
		Name:       req.Name,
		InputData:  req.InputData,
		OutputData: req.OutputData,
		Status:     req.Status,
	}
}

func ApplyScenarioModelPatchRequestToModel(req dtos.ScenarioModelPatchRequest, scenario *models.ScenarioModel) bool {
	updated := apply(&scenario.Name, req.Name)
	updated = applyJSON(&scenario.InputData, req.InputData) || updated
	updated = applyJSON(&scenario.OutputData, req.OutputData) || updated
	updated = apply(&scenario.Status, req.Status) || updated
	return updated
}

func SupplierPerformanceCreateRequestToModel(req dtos.SupplierPerformanceCreateRequest) models.SupplierPerformance {
	return models.SupplierPerformance{
		SupplierID: req.SupplierID,
		Period:     req.Period,
		OntimeRate: req.OntimeRate,
		DefectRate: req.DefectRate,
		FillRate:   req.FillRate,
	}
}

func ApplySupplierPerformancePatchRequestToModel(req dtos.SupplierPerformancePatchRequest, perf *models.SupplierPerformance) bool {
	updated := apply(&perf.SupplierID, req.SupplierID)
	updated = apply(&perf.Period, req.Period) || updated
	updated = apply(&perf.OntimeRate, req.OntimeRate) || updated
	updated = apply(&perf.DefectRate, req.DefectRate) || updated
	updated = apply(&perf.FillRate, req.FillRate) || updated
	return updated
}

func SupplierScoreCreateRequestToModel(req dtos.SupplierScoreCreateRequest) models.SupplierScore {
	return models.SupplierScore{
		SupplierID: req.SupplierID,
		Score:      req.Score,
		Category:   req.Category,
		ComputedAt: req.ComputedAt,
	}
}

func ApplySupplierScorePatchRequestToModel(req dtos.SupplierScorePatchRequest, score *models.SupplierScore) bool {
	updated := apply(&score.SupplierID, req.SupplierID)
	updated = apply(&score.Score, req.Score) || updated
	updated = apply(&score.Category, req.Category) || updated
	updated = applyRef(&score.ComputedAt, req.ComputedAt) || updated
	return updated
}
