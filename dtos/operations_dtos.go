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

package dtos

import (
	"time"

	"gorm.io/datatypes"
)

type AuditLogCreateRequest struct {
	UserID   *uint  `json:"user_id"`
	Action   string `json:"action" validate:"required"`
	Entity   string `json:"entity" validate:"required"`
	EntityID uint   `json:"entity_id"`
	Detail   string `json:"detail"`
}

type AuditLogPatchRequest struct {
	UserID   Optional[uint] `json:"user_id"`
	Action   *string        `json:"action"`
	Entity   *string        `json:"entity"`
	EntityID *uint          `json:"entity_id"`
	Detail   *string        `json:"detail"`
}

type AISuggestionCreateRequest struct {
	Type        string         `json:"type" validate:"required"`
	Payload     datatypes.JSON `json:"payload"`
	Status      string         `json:"status"`
	ComponentID *uint          `json:"component_id"`
}

type AISuggestionPatchRequest struct {
	Type        *string        `json:"type"`
	Payload     datatypes.JSON `json:"payload"`
	Status      *string        `json:"status"`
	ComponentID Optional[uint] `json:"component_id"`
}

type AlertCreateRequest struct {
	Type         string `json:"type" validate:"required"`
	Severity     string `json:"severity"`
	Message      string `json:"message"`
	WarehouseID  *uint  `json:"warehouse_id"`
	ComponentID  *uint  `json:"component_id"`
	Acknowledged bool   `json:"acknowledged"`
}

type AlertPatchRequest struct {
	Type         *string        `json:"type"`
	Severity     *string        `json:"severity"`
	Message      *string        `json:"message"`
	WarehouseID  Optional[uint] `json:"warehouse_id"`
	ComponentID  Optional[uint] `json:"component_id"`
	Acknowledged *bool          `json:"acknowledged"`
}

type AnomalyLogCreateRequest struct {
	Type        string     `json:"type" validate:"required"`
	Severity    string     `json:"severity"`
	Description string     `json:"description"`
	ComponentID *uint      `json:"component_id"`
	WarehouseID *uint      `json:"warehouse_id"`
	DetectedAt  *time.Time `json:"detected_at"`
}

type AnomalyLogPatchRequest struct {
	Type        *string        `json:"type"`
	Severity    *string        `json:"severity"`
	Description *string        `json:"description"`
	ComponentID Optional[uint] `json:"component_id"`
	WarehouseID Optional[uint] `json:"warehouse_id"`
	DetectedAt  *time.Time     `json:"detected_at"`
}

type AutomationRuleCreateRequest struct {
	Name    string         `json:"name" validate:"required"`
	Trigger datatypes.JSON `json:"trigger"`
	Action  datatypes.JSON `json:"action"`
	Enabled *bool          `json:"enabled"`
}

type AutomationRulePatchRequest struct {
	Name    *string        `json:"name"`
	Trigger datatypes.JSON `json:"trigger"`
	Action  datatypes.JSON `json:"action"`
	Enabled *bool          `json:"enabled"`
}

type CycleCountCreateRequest struct {
	WarehouseID uint       `json:"warehouse_id" validate:"required"`
	ComponentID uint       `json:"component_id" validate:"required"`
	ExpectedQty int        `json:"expected_qty"`
	CountedQty  int        `json:"counted_qty"`
	CountedAt   *time.Time `json:"counted_at"`
	UserID      *uint      `json:"user_id"`
}

type CycleCountPatchRequest struct {
	WarehouseID *uint          `json:"warehouse_id"`
	ComponentID *uint          `json:"component_id"`
	ExpectedQty *int           `json:"expected_qty"`
	CountedQty  *int           `json:"counted_qty"`
	CountedAt   *time.Time     `json:"counted_at"`
	UserID      Optional[uint] `json:"user_id"`
}

type GoalCreateRequest struct {
	UserID       *uint      `json:"user_id"`
	Title        string     `json:"title" validate:"required"`
	Metric       string     `json:"metric"`
	TargetValue  float64    `json:"target_value"`
	CurrentValue float64    `json:"current_value"`
	DueDate      *time.Time `json:"due_date"`
	Status       string     `json:"status"`
}

type GoalPatchRequest struct {
	UserID       Optional[uint] `json:"user_id"`
	Title        *string        `json:"title"`
	Metric       *string        `json:"metric"`
	TargetValue  *float64       `json:"target_value"`
	CurrentValue *float64       `json:"current_value"`
	DueDate      *time.Time     `json:"due_date"`
	Status       *string        `json:"status"`
}

type InventoryAuditCreateRequest struct {
	WarehouseID uint       `json:"warehouse_id" validate:"required"`
	Status      string     `json:"status"`
	StartedAt   *time.Time `json:"started_at"`
	CompletedAt *time.Time `json:"completed_at"`
	Notes       string     `json:"notes"`
}

type InventoryAuditPatchRequest struct {
	WarehouseID *uint      `json:"warehouse_id"`
	Status      *string    `json:"status"`
	StartedAt   *time.Time `json:"started_at"`
	CompletedAt *time.Time `json:"completed_at"`
	Notes       *string    `json:"notes"`
}

type InventoryBatchCreateRequest struct {
	ComponentID uint       `json:"component_id" validate:"required"`
	WarehouseID uint       `json:"warehouse_id" validate:"required"`
	BatchNumber string     `json:"batch_number" validate:"required"`
	Qty         int        `json:"qty"`
	ReceivedAt  *time.Time `json:"received_at"`
	ExpiresAt   *time.Time `json:"expires_at"`
}

type InventoryBatchPatchRequest struct {
	ComponentID *uint      `json:"component_id"`
	WarehouseID *uint      `json:"warehouse_id"`
	BatchNumber *string    `json:"batch_number"`
	Qty         *int       `json:"qty"`
	ReceivedAt  *time.Time `json:"received_at"`
	ExpiresAt   *time.Time `json:"expires_at"`
}

type InventoryTransactionCreateRequest struct {
	ComponentID uint       `json:"component_id" validate:"required"`
	WarehouseID uint       `json:"warehouse_id" validate:"required"`
	Type        string     `json:"type" validate:"required"`
	Qty         int        `json:"qty" validate:"required"`
	Reference   string     `json:"reference"`
	OccurredAt  *time.Time `json:"occurred_at"`
}

type InventoryTransactionPatchRequest struct {
	ComponentID *uint      `json:"component_id"`
	WarehouseID *uint      `json:"warehouse_id"`
	Type        *string    `json:"type"`
	Qty         *int       `json:"qty"`
	Reference   *string    `json:"reference"`
	OccurredAt  *time.Time `json:"occurred_at"`
}

type TaskCreateRequest struct {
	UserID      *uint      `json:"user_id"`
	Title       string     `json:"title" validate:"required"`
	Description string     `json:"description"`
	Status      string     `json:"status"`
	DueDate     *time.Time `json:"due_date"`
	Priority    string     `json:"priority"`
}

type TaskPatchRequest struct {
	UserID      Optional[uint] `json:"user_id"`
	Title       *string        `json:"title"`
	Description *string        `json:"description"`
	Status      *string        `json:"status"`
	DueDate     *time.Time     `json:"due_date"`
	Priority    *string        `json:"priority"`
}
