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

type AuditLogController struct {
	auditLogRepository *repositories.AuditLogRepository
	userRepository     *repositories.UserRepository
}

func NewAuditLogController(auditLogRepository *repositories.AuditLogRepository, userRepository *repositories.UserRepository) *AuditLogController {
	return &AuditLogController{
		auditLogRepository: auditLogRepository,
		userRepository:     userRepository,
	}
}

func (c AuditLogController) List(ctx shared.Context) error {
	return listEntity[models.AuditLog](ctx, c.auditLogRepository, "audit log", map[string]string{
		"userId":   "user_id",
		"entity":   "entity",
		"entityId": "entity_id",
		"action":   "action",
	})
}

func (c AuditLogController) Read(ctx shared.Context) error {
	return readEntity[models.AuditLog](ctx, c.auditLogRepository, "audit log")
}

func (c AuditLogController) Create(ctx shared.Context) error {
	req, err := bindAndValidate[dtos.AuditLogCreateRequest](ctx)
	if err != nil {
		return err
	}
	if req.UserID != nil {
		if err := assertExists(c.userRepository, *req.UserID, "user_id"); err != nil {
			return err
		}
	}
	log := transformer.AuditLogCreateRequestToModel(req)
	if err := c.auditLogRepository.Create(nil, &log); err != nil {
		return writeError(err, "audit log")
	}
	return ctx.JSON(http.StatusCreated, log)
}

func (c AuditLogController) Update(ctx shared.Context) error {
	id, err := shared.GetParamID(ctx)
	if err != nil {
		return err
	}
	log, err := c.auditLogRepository.Read(id)
	if err != nil {
		return readError(err, "audit log")
	}
	req, err := bindAndValidate[dtos.AuditLogPatchRequest](ctx)
	if err != nil {
		return err
	}
	if req.UserID.Present && req.UserID.Value != nil {
		if err := assertExists(c.userRepository, *req.UserID.Value, "user_id"); err != nil {
			return err
		}
	}
	if transformer.ApplyAuditLogPatchRequestToModel(req, &log) {
		if err := c.auditLogRepository.Save(nil, &log); err != nil {
			return writeError(err, "audit log")
		}
	}
	return ctx.JSON(http.StatusOK, log)
}

func (c AuditLogController) Delete(ctx shared.Context) error {
	return deleteEntity(ctx, c.auditLogRepository, "audit log")
}

type AISuggestionController struct {
	suggestionRepository *repositories.AISuggestionRepository
	componentRepository  *repositories.ComponentRepository
}

func NewAISuggestionController(suggestionRepository *repositories.AISuggestionRepository, componentRepository *repositories.ComponentRepository) *AISuggestionController {
	return &AISuggestionController{
		suggestionRepository: suggestionRepository,
		componentRepository:  componentRepository,
	}
}

func (c AISuggestionController) List(ctx shared.Context) error {
	return listEntity[models.AISuggestion](ctx, c.suggestionRepository, "ai suggestion", map[string]string{
		"type":        "type",
		"status":      "status",
		"componentId": "component_id",
	})
}

func (c AISuggestionController) Read(ctx shared.Context) error {
	return readEntity[models.AISuggestion](ctx, c.suggestionRepository, "ai suggestion")
}

func (c AISuggestionController) Create(ctx shared.Context) error {
	req, err := bindAndValidate[dtos.AISuggestionCreateRequest](ctx)
	if err != nil {
		return err
	}
	if req.ComponentID != nil {
		if err := assertExists(c.componentRepository, *req.ComponentID, "component_id"); err != nil {
			return err
		}
	}
	suggestion := transformer.AISuggestionCreateRequestToModel(req)
	if err := c.suggestionRepository.Create(nil, &suggestion); err != nil {
		return writeError(err, "ai suggestion")
	}
	return ctx.JSON(http.StatusCreated, suggestion)
}

func (c AISuggestionController) Update(ctx shared.Context) error {
	id, err := shared.GetParamID(ctx)
	if err != nil {
		return err
	}
	suggestion, err := c.suggestionRepository.Read(id)
	if err != nil {
		return readError(err, "ai suggestion")
	}
	req, err := bindAndValidate[dtos.AISuggestionPatchRequest](ctx)
	if err != nil {
		return err
	}
	if req.ComponentID.Present && req.ComponentID.Value != nil {
		if err := assertExists(c.componentRepository, *req.ComponentID.Value, "component_id"); err != nil {
			return err
		}
	}
	if transformer.ApplyAISuggestionPatchRequestToModel(req, &suggestion) {
		if err := c.suggestionRepository.Save(nil, &suggestion); err != nil {
			return writeError(err, "ai suggestion")
		}
	}
	return ctx.JSON(http.StatusOK, suggestion)
}

func (c AISuggestionController) Delete(ctx shared.Context) error {
	return deleteEntity(ctx, c.suggestionRepository, "ai suggestion")
}

type AlertController struct {
	alertRepository     *repositories.AlertRepository
	warehouseRepository *repositories.WarehouseRepository
	componentRepository *repositories.ComponentRepository
}

func NewAlertController(alertRepository *repositories.AlertRepository, warehouseRepository *repositories.WarehouseRepository, componentRepository *repositories.ComponentRepository) *AlertController {
	return &AlertController{
		alertRepository:     alertRepository,
		warehouseRepository: warehouseRepository,
		componentRepository: componentRepository,
	}
}

func (c AlertController) List(ctx shared.Context) error {
	return listEntity[models.Alert](ctx, c.alertRepository, "alert", map[string]string{
		"type":         "type",
		"severity":     "severity",
		"warehouseId":  "warehouse_id",
		"componentId":  "component_id",
		"acknowledged": "acknowledged",
	})
}

func (c AlertController) Read(ctx shared.Context) error {
	return readEntity[models.Alert](ctx, c.alertRepository, "alert")
}

func (c AlertController) Create(ctx shared.Context) error {
	req, err := bindAndValidate[dtos.AlertCreateRequest](ctx)
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
	alert := transformer.AlertCreateRequestToModel(req)
	if err := c.alertRepository.Create(nil, &alert); err != nil {
		return writeError(err, "alert")
	}
	return ctx.JSON(http.StatusCreated, alert)
}

func (c AlertController) Update(ctx shared.Context) error {
	id, err := shared.GetParamID(ctx)
	if err != nil {
		return err
	}
	alert, err := c.alertRepository.Read(id)
	if err != nil {
		return readError(err, "alert")
	}
	req, err := bindAndValidate[dtos.AlertPatchRequest](ctx)
	if err != nil {
		return err
	}
	if req.WarehouseID.Present && req.WarehouseID.Value != nil {
		if err := assertExists(c.warehouseRepository, *req.WarehouseID.Value, "warehouse_id"); err != nil {
			return err
		}
	}
	if req.ComponentID.Present && req.ComponentID.Value != nil {
		if err := assertExists(c.componentRepository, *req.ComponentID.Value, "component_id"); err != nil {
			return err
		}
	}
	if transformer.ApplyAlertPatchRequestToModel(req, &alert) {
		if err := c.alertRepository.Save(nil, &alert); err != nil {
			return writeError(err, "alert")
		}
	}
	return ctx.JSON(http.StatusOK, alert)
}

func (c AlertController) Delete(ctx shared.Context) error {
	return deleteEntity(ctx, c.alertRepository, "alert")
}

type AnomalyLogController struct {
	anomalyRepository   *repositories.AnomalyLogRepository
	componentRepository *repositories.ComponentRepository
	warehouseRepository *repositories.WarehouseRepository
}

func NewAnomalyLogController(anomalyRepository *repositories.AnomalyLogRepository, componentRepository *repositories.ComponentRepository, warehouseRepository *repositories.WarehouseRepository) *AnomalyLogController {
	return &AnomalyLogController{
		anomalyRepository:   anomalyRepository,
		componentRepository: componentRepository,
		warehouseRepository: warehouseRepository,
	}
}

func (c AnomalyLogController) List(ctx shared.Context) error {
	return listEntity[models.AnomalyLog](ctx, c.anomalyRepository, "anomaly log", map[string]string{
		"type":        "type",
		"severity":    "severity",
		"componentId": "component_id",
		"warehouseId": "warehouse_id",
	})
}

func (c AnomalyLogController) Read(ctx shared.Context) error {
	return readEntity[models.AnomalyLog](ctx, c.anomalyRepository, "anomaly log")
}

func (c AnomalyLogController) Create(ctx shared.Context) error {
	req, err := bindAndValidate[dtos.AnomalyLogCreateRequest](ctx)
	if err != nil {
		return err
	}
	if req.ComponentID != nil {
		if err := assertExists(c.componentRepository, *req.ComponentID, "component_id"); err != nil {
			return err
		}
	}
	if req.WarehouseID != nil {
		if err := assertExists(c.warehouseRepository, *req.WarehouseID, "warehouse_id"); err != nil {
			return err
		}
	}
	anomaly := transformer.AnomalyLogCreateRequestToModel(req)
	if err := c.anomalyRepository.Create(nil, &anomaly); err != nil {
		return writeError(err, "anomaly log")
	}
	return ctx.JSON(http.StatusCreated, anomaly)
}

func (c AnomalyLogController) Update(ctx shared.Context) error {
	id, err := shared.GetParamID(ctx)
	if err != nil {
		return err
	}
	anomaly, err := c.anomalyRepository.Read(id)
	if err != nil {
		return readError(err, "anomaly log")
	}
	req, err := bindAndValidate[dtos.AnomalyLogPatchRequest](ctx)
	if err != nil {
		return err
	}
	if req.ComponentID.Present && req.ComponentID.Value != nil {
		if err := assertExists(c.componentRepository, *req.ComponentID.Value, "component_id"); err != nil {
			return err
		}
	}
	if req.WarehouseID.Present && req.WarehouseID.Value != nil {
		if err := assertExists(c.warehouseRepository, *req.WarehouseID.Value, "warehouse_id"); err != nil {
			return err
		}
	}
	if transformer.ApplyAnomalyLogPatchRequestToModel(req, &anomaly) {
		if err := c.anomalyRepository.Save(nil, &anomaly); err != nil {
			return writeError(err, "anomaly log")
		}
	}
	return ctx.JSON(http.StatusOK, anomaly)
}

func (c AnomalyLogController) Delete(ctx shared.Context) error {
	return deleteEntity(ctx, c.anomalyRepository, "anomaly log")
}

type AutomationRuleController struct {
	ruleRepository *repositories.AutomationRuleRepository
}

func NewAutomationRuleController(ruleRepository *repositories.AutomationRuleRepository) *AutomationRuleController {
	return &AutomationRuleController{ruleRepository: ruleRepository}
}

func (c AutomationRuleController) List(ctx shared.Context) error {
	return listEntity[models.AutomationRule](ctx, c.ruleRepository, "automation rule", map[string]string{
		"enabled": "enabled",
		"name":    "name",
	})
}

func (c AutomationRuleController) Read(ctx shared.Context) error {
	return readEntity[models.AutomationRule](ctx, c.ruleRepository, "automation rule")
}

func (c AutomationRuleController) Create(ctx shared.Context) error {
	req, err := bindAndValidate[dtos.AutomationRuleCreateRequest](ctx)
	if err != nil {
		return err
	}
	rule := transformer.AutomationRuleCreateRequestToModel(req)
	if err := c.ruleRepository.Create(nil, &rule); err != nil {
		return writeError(err, "automation rule")
	}
	return ctx.JSON(http.StatusCreated, rule)
}

func (c AutomationRuleController) Update(ctx shared.Context) error {
	id, err := shared.GetParamID(ctx)
	if err != nil {
		return err
	}
	rule, err := c.ruleRepository.Read(id)
	if err != nil {
		return readError(err, "automation rule")
	}
	req, err := bindAndValidate[dtos.AutomationRulePatchRequest](ctx)
	if err != nil {
		return err
	}
	if transformer.ApplyAutomationRulePatchRequestToModel(req, &rule) {
		if err := c.ruleRepository.Save(nil, &rule); err != nil {
			return writeError(err, "automation rule")
		}
	}
	return ctx.JSON(http.StatusOK, rule)
}

func (c AutomationRuleController) Delete(ctx shared.Context) error {
	return deleteEntity(ctx, c.ruleRepository, "automation rule")
}

type CycleCountController struct {
	cycleCountRepository *repositories.CycleCountRepository
	warehouseRepository  *repositories.WarehouseRepository
	componentRepository  *repositories.ComponentRepository
	userRepository       *repositories.UserRepository
}

func NewCycleCountController(
	cycleCountRepository *repositories.CycleCountRepository,
	warehouseRepository *repositories.WarehouseRepository,
	componentRepository *repositories.ComponentRepository,
	userRepository *repositories.UserRepository,
) *CycleCountController {
	return &CycleCountController{
		cycleCountRepository: cycleCountRepository,
		warehouseRepository:  warehouseRepository,
		componentRepository:  componentRepository,
		userRepository:       userRepository,
	}
}

func (c CycleCountController) List(ctx shared.Context) error {
	return listEntity[models.CycleCount](ctx, c.cycleCountRepository, "cycle count", map[string]string{
		"warehouseId": "warehouse_id",
		"componentId": "component_id",
		"userId":      "user_id",
	})
}

func (c CycleCountController) Read(ctx shared.Context) error {
	return readEntity[models.CycleCount](ctx, c.cycleCountRepository, "cycle count")
}

func (c CycleCountController) Create(ctx shared.Context) error {
	req, err := bindAndValidate[dtos.CycleCountCreateRequest](ctx)
	if err != nil {
		return err
	}
	if err := assertExists(c.warehouseRepository, req.WarehouseID, "warehouse_id"); err != nil {
		return err
	}
	if err := assertExists(c.componentRepository, req.ComponentID, "component_id"); err != nil {
		return err
	}
	if req.UserID != nil {
		if err := assertExists(c.userRepository, *req.UserID, "user_id"); err != nil {
			return err
		}
	}
	count := transformer.CycleCountCreateRequestToModel(req)
	if err := c.cycleCountRepository.Create(nil, &count); err != nil {
		return writeError(err, "cycle count")
	}
	return ctx.JSON(http.StatusCreated, count)
}

func (c CycleCountController) Update(ctx shared.Context) error {
	id, err := shared.GetParamID(ctx)
	if err != nil {
		return err
	}
	count, err := c.cycleCountRepository.Read(id)
	if err != nil {
		return readError(err, "cycle count")
	}
	req, err := bindAndValidate[dtos.CycleCountPatchRequest](ctx)
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
	if req.UserID.Present && req.UserID.Value != nil {
		if err := assertExists(c.userRepository, *req.UserID.Value, "user_id"); err != nil {
			return err
		}
	}
	if transformer.ApplyCycleCountPatchRequestToModel(req, &count) {
		if err := c.cycleCountRepository.Save(nil, &count); err != nil {
			return writeError(err, "cycle count")
		}
	}
	return ctx.JSON(http.StatusOK, count)
}

func (c CycleCountController) Delete(ctx shared.Context) error {
	return deleteEntity(ctx, c.cycleCountRepository, "cycle count")
}

type GoalController struct {
	goalRepository *repositories.GoalRepository
	userRepository *repositories.UserRepository
}

func NewGoalController(goalRepository *repositories.GoalRepository, userRepository *repositories.UserRepository) *GoalController {
	return &GoalController{
		goalRepository: goalRepository,
		userRepository: userRepository,
	}
}

func (c GoalController) List(ctx shared.Context) error {
	return listEntity[models.Goal](ctx, c.goalRepository, "goal", map[string]string{
		"userId": "user_id",
		"status": "status",
	})
}

func (c GoalController) Read(ctx shared.Context) error {
	return readEntity[models.Goal](ctx, c.goalRepository, "goal")
}

func (c GoalController) Create(ctx shared.Context) error {
	req, err := bindAndValidate[dtos.GoalCreateRequest](ctx)
	if err != nil {
		return err
	}
	if req.UserID != nil {
		if err := assertExists(c.userRepository, *req.UserID, "user_id"); err != nil {
			return err
		}
	}
	goal := transformer.GoalCreateRequestToModel(req)
	if err := c.goalRepository.Create(nil, &goal); err != nil {
		return writeError(err, "goal")
	}
	return ctx.JSON(http.StatusCreated, goal)
}

func (c GoalController) Update(ctx shared.Context) error {
	id, err := shared.GetParamID(ctx)
	if err != nil {
		return err
	}
	goal, err := c.goalRepository.Read(id)
	if err != nil {
		return readError(err, "goal")
	}
	req, err := bindAndValidate[dtos.GoalPatchRequest](ctx)
	if err != nil {
		return err
	}
	if req.UserID.Present && req.UserID.Value != nil {
		if err := assertExists(c.userRepository, *req.UserID.Value, "user_id"); err != nil {
			return err
		}
	}
	if transformer.ApplyGoalPatchRequestToModel(req, &goal) {
		if err := c.goalRepository.Save(nil, &goal); err != nil {
			return writeError(err, "goal")
		}
	}
	return ctx.JSON(http.StatusOK, goal)
}

func (c GoalController) Delete(ctx shared.Context) error {
	return deleteEntity(ctx, c.goalRepository, "goal")
}

type InventoryAuditController struct {
	inventoryAuditRepository *repositories.InventoryAuditRepository
	warehouseRepository      *repositories.WarehouseRepository
}

func NewInventoryAuditController(inventoryAuditRepository *repositories.InventoryAuditRepository, warehouseRepository *repositories.WarehouseRepository) *InventoryAuditController {
	return &InventoryAuditController{
		inventoryAuditRepository: inventoryAuditRepository,
		warehouseRepository:      warehouseRepository,
	}
}

func (c InventoryAuditController) List(ctx shared.Context) error {
	return listEntity[models.InventoryAudit](ctx, c.inventoryAuditRepository, "inventory audit", map[string]string{
		"warehouseId": "warehouse_id",
		"status":      "status",
	})
}

func (c InventoryAuditController) Read(ctx shared.Context) error {
	return readEntity[models.InventoryAudit](ctx, c.inventoryAuditRepository, "inventory audit")
}

func (c InventoryAuditController) Create(ctx shared.Context) error {
	req, err := bindAndValidate[dtos.InventoryAuditCreateRequest](ctx)
	if err != nil {
		return err
	}
	if err := assertExists(c.warehouseRepository, req.WarehouseID, "warehouse_id"); err != nil {
		return err
	}
	audit := transformer.InventoryAuditCreateRequestToModel(req)
	if err := c.inventoryAuditRepository.Create(nil, &audit); err != nil {
		return writeError(err, "inventory audit")
	}
	return ctx.JSON(http.StatusCreated, audit)
}

func (c InventoryAuditController) Update(ctx shared.Context) error {
	id, err := shared.GetParamID(ctx)
	if err != nil {
		return err
	}
	audit, err := c.inventoryAuditRepository.Read(id)
	if err != nil {
		return readError(err, "inventory audit")
	}
	req, err := bindAndValidate[dtos.InventoryAuditPatchRequest](ctx)
	if err != nil {
		return err
	}
	if req.WarehouseID != nil {
		if err := assertExists(c.warehouseRepository, *req.WarehouseID, "warehouse_id"); err != nil {
			return err
		}
	}
	if transformer.ApplyInventoryAuditPatchRequestToModel(req, &audit) {
		if err := c.inventoryAuditRepository.Save(nil, &audit); err != nil {
			return writeError(err, "inventory audit")
		}
	}
	return ctx.JSON(http.StatusOK, audit)
}

func (c InventoryAuditController) Delete(ctx shared.Context) error {
	return deleteEntity(ctx, c.inventoryAuditRepository, "inventory audit")
}

type InventoryBatchController struct {
	batchRepository     *repositories.InventoryBatchRepository
	componentRepository *repositories.ComponentRepository
	warehouseRepository *repositories.WarehouseRepository
}

func NewInventoryBatchController(batchRepository *repositories.InventoryBatchRepository, componentRepository *repositories.ComponentRepository, warehouseRepository *repositories.WarehouseRepository) *InventoryBatchController {
	return &InventoryBatchController{
		batchRepository:     batchRepository,
		componentRepository: componentRepository,
		warehouseRepository: warehouseRepository,
	}
}

func (c InventoryBatchController) List(ctx shared.Context) error {
	return listEntity[models.InventoryBatch](ctx, c.batchRepository, "inventory batch", map[string]string{
		"componentId": "component_id",
		"warehouseId": "warehouse_id",
		"batchNumber": "batch_number",
	})
}

func (c InventoryBatchController) Read(ctx shared.Context) error {
	return readEntity[models.InventoryBatch](ctx, c.batchRepository, "inventory batch")
}

func (c InventoryBatchController) Create(ctx shared.Context) error {
	req, err := bindAndValidate[dtos.InventoryBatchCreateRequest](ctx)
	if err != nil {
		return err
	}
	if err := assertExists(c.componentRepository, req.ComponentID, "component_id"); err != nil {
		return err
	}
	if err := assertExists(c.warehouseRepository, req.WarehouseID, "warehouse_id"); err != nil {
		return err
	}
	batch := transformer.InventoryBatchCreateRequestToModel(req)
	if err := c.batchRepository.Create(nil, &batch); err != nil {
		return writeError(err, "inventory batch")
	}
	return ctx.JSON(http.StatusCreated, batch)
}

func (c InventoryBatchController) Update(ctx shared.Context) error {
	id, err := shared.GetParamID(ctx)
	if err != nil {
		return err
	}
	batch, err := c.batchRepository.Read(id)
	if err != nil {
		return readError(err, "inventory batch")
	}
	req, err := bindAndValidate[dtos.InventoryBatchPatchRequest](ctx)
	if err != nil {
		return err
	}
	if req.ComponentID != nil {
		if err := assertExists(c.componentRepository, *req.ComponentID, "component_id"); err != nil {
			return err
		}
	}
	if req.WarehouseID != nil {
		if err := assertExists(c.warehouseRepository, *req.WarehouseID, "warehouse_id"); err != nil {
			return err
		}
	}
	if transformer.ApplyInventoryBatchPatchRequestToModel(req, &batch) {
		if err := c.batchRepository.Save(nil, &batch); err != nil {
			return writeError(err, "inventory batch")
		}
	}
	return ctx.JSON(http.StatusOK, batch)
}

func (c InventoryBatchController) Delete(ctx shared.Context) error {
	return deleteEntity(ctx, c.batchRepository, "inventory batch")
}

type InventoryTransactionController struct {
	transactionRepository *repositories.InventoryTransactionRepository
	componentRepository   *repositories.ComponentRepository
	warehouseRepository   *repositories.WarehouseRepository
}

func NewInventoryTransactionController(transactionRepository *repositories.InventoryTransactionRepository, componentRepository *repositories.ComponentRepository, warehouseRepository *repositories.WarehouseRepository) *InventoryTransactionController {
	return &InventoryTransactionController{
		transactionRepository: transactionRepository,
		componentRepository:   componentRepository,
		warehouseRepository:   warehouseRepository,
	}
}

func (c InventoryTransactionController) List(ctx shared.Context) error {
	return listEntity[models.InventoryTransaction](ctx, c.transactionRepository, "inventory transaction", map[string]string{
		"componentId": "component_id",
		"warehouseId": "warehouse_id",
		"type":        "type",
	})
}

func (c InventoryTransactionController) Read(ctx shared.Context) error {
	return readEntity[models.InventoryTransaction](ctx, c.transactionRepository, "inventory transaction")
}

func (c InventoryTransactionController) Create(ctx shared.Context) error {
	req, err := bindAndValidate[dtos.InventoryTransactionCreateRequest](ctx)
	if err != nil {
		return err
	}
	if err := assertExists(c.componentRepository, req.ComponentID, "component_id"); err != nil {
		return err
	}
	if err := assertExists(c.warehouseRepository, req.WarehouseID, "warehouse_id"); err != nil {
		return err
	}
	txn := transformer.InventoryTransactionCreateRequestToModel(req)
	if err := c.transactionRepository.Create(nil, &txn); err != nil {
		return writeError(err, "inventory transaction")
	}
	return ctx.JSON(http.StatusCreated, txn)
}

func (c InventoryTransactionController) Update(ctx shared.Context) error {
	id, err := shared.GetParamID(ctx)
	if err != nil {
		return err
	}
	txn, err := c.transactionRepository.Read(id)
	if err != nil {
		return readError(err, "inventory transaction")
	}
	req, err := bindAndValidate[dtos.InventoryTransactionPatchRequest](ctx)
	if err != nil {
		return err
	}
	if req.ComponentID != nil {
		if err := assertExists(c.componentRepository, *req.ComponentID, "component_id"); err != nil {
			return err
		}
	}
	if req.WarehouseID != nil {
		if err := assertExists(c.warehouseRepository, *req.WarehouseID, "warehouse_id"); err != nil {
			return err
		}
	}
	if transformer.ApplyInventoryTransactionPatchRequestToModel(req, &txn) {
		if err := c.transactionRepository.Save(nil, &txn); err != nil {
			return writeError(err, "inventory transaction")
		}
	}
	return ctx.JSON(http.StatusOK, txn)
}

func (c InventoryTransactionController) Delete(ctx shared.Context) error {
	return deleteEntity(ctx, c.transactionRepository, "inventory transaction")
}

type TaskController struct {
	taskRepository *repositories.TaskRepository
	userRepository *repositories.UserRepository
}

func NewTaskController(taskRepository *repositories.TaskRepository, userRepository *repositories.UserRepository) *TaskController {
	return &TaskController{
		taskRepository: taskRepository,
		userRepository: userRepository,
	}
}

func (c TaskController) List(ctx shared.Context) error {
	return listEntity[models.Task](ctx, c.taskRepository, "task", map[string]string{
		"userId":   "user_id",
		"status":   "status",
		"priority": "priority",
	})
}

func (c TaskController) Read(ctx shared.Context) error {
	return readEntity[models.Task](ctx, c.taskRepository, "task")
}

func (c TaskController) Create(ctx shared.Context) error {
	req, err := bindAndValidate[dtos.TaskCreateRequest](ctx)
	if err != nil {
		return err
	}
	if req.UserID != nil {
		if err := assertExists(c.userRepository, *req.UserID, "user_id"); err != nil {
			return err
		}
	}
	task := transformer.TaskCreateRequestToModel(req)
	if err := c.taskRepository.Create(nil, &task); err != nil {
		return writeError(err, "task")
	}
	return ctx.JSON(http.StatusCreated, task)
}

func (c TaskController) Update(ctx shared.Context) error {
	id, err := shared.GetParamID(ctx)
	if err != nil {
		return err
	}
	task, err := c.taskRepository.Read(id)
	if err != nil {
		return readError(err, "task")
	}
	req, err := bindAndValidate[dtos.TaskPatchRequest](ctx)
	if err != nil {
		return err
	}
	if req.UserID.Present && req.UserID.Value != nil {
		if err := assertExists(c.userRepository, *req.UserID.Value, "user_id"); err != nil {
			return err
		}
	}
	if transformer.ApplyTaskPatchRequestToModel(req, &task) {
		if err := c.taskRepository.Save(nil, &task); err != nil {
			return writeError(err, "task")
		}
	}
	return ctx.JSON(http.StatusOK, task)
}

func (c TaskController) Delete(ctx shared.Context) error {
	return deleteEntity(ctx, c.taskRepository, "task")
}
