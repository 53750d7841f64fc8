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

func AuditLogCreateRequestToModel(req dtos.AuditLogCreateRequest) models.AuditLog {
	return models.AuditLog{
		UserID:   req.UserID,
		Action:   req.Action,
		Entity:   req.Entity,
		EntityID: req.EntityID,
		Detail:   req.Detail,
	}
}

func ApplyAuditLogPatchRequestToModel(req dtos.AuditLogPatchRequest, log *models.AuditLog) bool {
	updated := applyOptional(&log.UserID, req.UserID)
	updated = apply(&log.Action, req.Action) || updated
	updated = apply(&log.Entity, req.Entity) || updated
	updated = apply(&log.EntityID, req.EntityID) || updated
	updated = apply(&log.Detail, req.Detail) || updated
	return updated
}

func AISuggestionCreateRequestToModel(req dtos.AISuggestionCreateRequest) models.AISuggestion {
	return models.AISuggestion{
		Type:        req.Type,
		Payload:     req.Payload,
		Status:      req.Status,
		ComponentID: req.ComponentID,
	}
}

func ApplyAISuggestionPatchRequestToModel(req dtos.AISuggestionPatchRequest, suggestion *models.AISuggestion) bool {
	updated := apply(&suggestion.Type, req.Type)
	updated = applyJSON(&suggestion.Payload, req.Payload) || updated
	updated = apply(&suggestion.Status, req.Status) || updated
	updated = applyOptional(&suggestion.ComponentID, req.ComponentID) || updated
	return updated
}

func AlertCreateRequestToModel(req dtos.AlertCreateRequest) models.Alert {
	return models.Alert{
		Type:         req.Type,
		Severity:     req.Severity,
		Message:      req.Message,
		WarehouseID:  req.WarehouseID,
		ComponentID:  req.ComponentID,
		Acknowledged: req.Acknowledged,
	}
}

func ApplyAlertPatchRequestToModel(req dtos.AlertPatchRequest, alert *models.Alert) bool {
	updated := apply(&alert.Type, req.Type)
	updated = apply(&alert.Severity, req.Severity) || updated
	updated = apply(&alert.Message, req.Message) || updated
	updated = applyOptional(&alert.WarehouseID, req.WarehouseID) || updated
	updated = applyOptional(&alert.ComponentID, req.ComponentID) || updated
	updated = apply(&alert.Acknowledged, req.Acknowledged) || updated
	return updated
}

func AnomalyLogCreateRequestToModel(req dtos.AnomalyLogCreateRequest) models.AnomalyLog {
	return models.AnomalyLog{
		Type:        req.Type,
		Severity:    req.Severity,
		Description: req.Description,
		ComponentID: req.ComponentID,
		WarehouseID: req.WarehouseID,
		DetectedAt:  req.DetectedAt,
	}
}

func ApplyAnomalyLogPatchRequestToModel(req dtos.AnomalyLogPatchRequest, anomaly *models.AnomalyLog) bool {
	updated := apply(&anomaly.Type, req.Type)
	updated = apply(&anomaly.Severity, req.Severity) || updated
	updated = apply(&anomaly.Description, req.Description) || updated
	updated = applyOptional(&anomaly.ComponentID, req.ComponentID) || updated
	updated = applyOptional(&anomaly.WarehouseID, req.WarehouseID) || updated
	updated = applyRef(&anomaly.DetectedAt, req.DetectedAt) || updated
	return updated
}

func AutomationRuleCreateRequestToModel(req dtos.AutomationRuleCreateRequest) models.AutomationRule {
	rule := models.AutomationRule{
		Name:    req.Name,
		Trigger: req.Trigger,
		Action:  req.Action,
		Enabled: true,
	}
	if req.Enabled != nil {
		rule.Enabled = *req.Enabled
	}
	return rule
}

func ApplyAutomationRulePatchRequestToModel(req dtos.AutomationRulePatchRequest, rule *models.AutomationRule) bool {
	updated := apply(&rule.Name, req.Name)
	updated = applyJSON(&rule.Trigger, req.Trigger) || updated
	updated = applyJSON(&rule.Action, req.Action) || updated
	updated = apply(&rule.Enabled, req.Enabled) || updated
	return updated
}

func CycleCountCreateRequestToModel(req dtos.CycleCountCreateRequest) models.CycleCount {
	return models.CycleCount{
		WarehouseID: req.WarehouseID,
		ComponentID: req.ComponentID,
		ExpectedQty: req.ExpectedQty,
		CountedQty:  req.CountedQty,
		CountedAt:   req.CountedAt,
		UserID:      req.UserID,
	}
}

func ApplyCycleCountPatchRequestToModel(req dtos.CycleCountPatchRequest, count *models.CycleCount) bool {
	updated := apply(&count.WarehouseID, req.WarehouseID)
	updated = apply(&count.ComponentID, req.ComponentID) || updated
	updated = apply(&count.ExpectedQty, req.ExpectedQty) || updated
	updated = apply(&count.CountedQty, req.CountedQty) || updated
	updated = applyRef(&count.CountedAt, req.CountedAt) || updated
	updated = applyOptional(&count.UserID, req.UserID) || updated
	return updated
}

func GoalCreateRequestToModel(req dtos.GoalCreateRequest) models.Goal {
	return models.Goal{
		UserID:       req.UserID,
		Title:        req.Title,
		Metric:       req.Metric,
		TargetValue:  req.TargetValue,
		CurrentValue: req.CurrentValue,
		DueDate:      req.DueDate,
		Status:       req.Status,
	}
}

func ApplyGoalPatchRequestToModel(req dtos.GoalPatchRequest, goal *models.Goal) bool {
	updated := applyOptional(&goal.UserID, req.UserID)
	updated = apply(&goal.Title, req.Title) || updated
	updated = apply(&goal.Metric, req.Metric) || updated
	updated = apply(&goal.TargetValue, req.TargetValue) || updated
	updated = apply(&goal.CurrentValue, req.CurrentValue) || updated
	updated = applyRef(&goal.DueDate, req.DueDate) || updated
	updated = apply(&goal.Status, req.Status) || updated
	return updated
}

func InventoryAuditCreateRequestToModel(req dtos.InventoryAuditCreateRequest) models.InventoryAudit {
	return models.InventoryAudit{
		WarehouseID: req.WarehouseID,
		Status:      req.Status,
		StartedAt:   req.StartedAt,
		CompletedAt: req.CompletedAt,
		Notes:       req.Notes,
	}
}

func ApplyInventoryAuditPatchRequestToModel(req dtos.InventoryAuditPatchRequest, audit *models.InventoryAudit) bool {
	updated := apply(&audit.WarehouseID, req.WarehouseID)
	updated = apply(&audit.Status, req.Status) || updated
	updated = applyRef(&audit.StartedAt, req.StartedAt) || updated
	updated = applyRef(&audit.CompletedAt, req.CompletedAt) || updated
	updated = apply(&audit.Notes, req.Notes) || updated
	return updated
}

func InventoryBatchCreateRequestToModel(req dtos.InventoryBatchCreateRequest) models.InventoryBatch {
	return models.InventoryBatch{
		ComponentID: req.ComponentID,
		WarehouseID: req.WarehouseID,
		BatchNumber: req.BatchNumber,
		Qty:         req.Qty,
		ReceivedAt:  req.ReceivedAt,
		ExpiresAt:   req.ExpiresAt,
	}
}

func ApplyInventoryBatchPatchRequestToModel(req dtos.InventoryBatchPatchRequest, batch *models.InventoryBatch) bool {
	updated := apply(&batch.ComponentID, req.ComponentID)
	updated = apply(&batch.WarehouseID, req.WarehouseID) || updated
	updated = apply(&batch.BatchNumber, req.BatchNumber) || updated
	updated = apply(&batch.Qty, req.Qty) || updated
	updated = applyRef(&batch.ReceivedAt, req.ReceivedAt) || updated
	updated = applyRef(&batch.ExpiresAt, req.ExpiresAt) || updated
	return updated
}

func InventoryTransactionCreateRequestToModel(req dtos.InventoryTransactionCreateRequest) models.InventoryTransaction {
	return models.InventoryTransaction{
		ComponentID: req.ComponentID,
		WarehouseID: req.WarehouseID,
		Type:        req.Type,
		Qty:         req.Qty,
		Reference:   req.Reference,
		OccurredAt:  req.OccurredAt,
	}
}

func ApplyInventoryTransactionPatchRequestToModel(req dtos.InventoryTransactionPatchRequest, txn *models.InventoryTransaction) bool {
	updated := apply(&txn.ComponentID, req.ComponentID)
	updated = apply(&txn.WarehouseID, req.WarehouseID) || updated
	updated = apply(&txn.Type, req.Type) || updated
	updated = apply(&txn.Qty, req.Qty) || updated
	updated = apply(&txn.Reference, req.Reference) || updated
	updated = applyRef(&txn.OccurredAt, req.OccurredAt) || updated
	return updated
}

func TaskCreateRequestToModel(req dtos.TaskCreateRequest) models.Task {
	return models.Task{
		UserID:      req.UserID,
		Title:       req.Title,
		Description: req.Description,
		Status:      req.Status,
		DueDate:     req.DueDate,
		Priority:    req.Priority,
	}
}

func ApplyTaskPatchRequestToModel(req dtos.TaskPatchRequest, task *models.Task) bool {
	updated := applyOptional(&task.UserID, req.UserID)
	updated = apply(&task.Title, req.Title) || updated
	updated = apply(&task.Description, req.Description) || updated
	updated = apply(&task.Status, req.Status) || updated
	updated = applyRef(&task.DueDate, req.DueDate) || updated
	updated = apply(&task.Priority, req.Priority) || updated
	return updated
}
