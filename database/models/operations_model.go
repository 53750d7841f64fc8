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

package models

import (
	"time"

	"gorm.io/datatypes"
)

type AuditLog struct {
	Model
	UserID   *uint  `json:"user_id"`
	Action   string `json:"action" gorm:"type:text;not null"`
	Entity   string `json:"entity" gorm:"type:text;not null"`
	EntityID uint   `json:"entity_id"`
	Detail   string `json:"detail" gorm:"type:text"`

	User *User `json:"user,omitempty" gorm:"foreignKey:UserID;constraint:OnDelete:SET NULL;"`
}

func (m AuditLog) TableName() string {
	return "audit_logs"
}

type AISuggestion struct {
	Model
	Type        string         `json:"type" gorm:"type:text;not null"`
	Payload     datatypes.JSON `json:"payload" gorm:"type:jsonb"`
	Status      string         `json:"status" gorm:"type:text;default:'pending'"`
	ComponentID *uint          `json:"component_id"`

	Component *Component `json:"component,omitempty" gorm:"foreignKey:ComponentID;constraint:OnDelete:SET NULL;"`
}

func (m AISuggestion) TableName() string {
	return "ai_suggestions"
}

type Alert struct {
	Model
	Type         string `json:"type" gorm:"type:text;not null"`
	Severity     string `json:"severity" gorm:"type:text;default:'info'"`
	Message      string `json:"message" gorm:"type:text"`
	WarehouseID  *uint  `json:"warehouse_id"`
	ComponentID  *uint  `json:"component_id"`
	Acknowledged bool   `json:"acknowledged" gorm:"default:false"`

	Warehouse *Warehouse `json:"warehouse,omitempty" gorm:"foreignKey:WarehouseID;constraint:OnDelete:SET NULL;"`
	Component *Component `json:"component,omitempty" gorm:"foreignKey:ComponentID;constraint:OnDelete:SET NULL;"`
}

func (m Alert) TableName() string {
	return "alerts"
}

type AnomalyLog struct {
	Model
	Type        string     `json:"type" gorm:"type:text;not null"`
	Severity    string     `json:"severity" gorm:"type:text;default:'low'"`
	Description string     `json:"description" gorm:"type:text"`
	ComponentID *uint      `json:"component_id"`
	WarehouseID *uint      `json:"warehouse_id"`
	DetectedAt  *time.Time `json:"detected_at"`

	Component *Component `json:"component,omitempty" gorm:"foreignKey:ComponentID;constraint:OnDelete:SET NULL;"`
	Warehouse *Warehouse `json:"warehouse,omitempty" gorm:"foreignKey:WarehouseID;constraint:OnDelete:SET NULL;"`
}

func (m AnomalyLog) TableName() string {
	return "anomaly_logs"
}

type AutomationRule struct {
	Model
	Name    string         `json:"name" gorm:"type:text;not null"`
	Trigger datatypes.JSON `json:"trigger" gorm:"type:jsonb"`
	Action  datatypes.JSON `json:"action" gorm:"type:jsonb"`
	Enabled bool           `json:"enabled"`
}

func (m AutomationRule) TableName() string {
	return "automation_rules"
}

type CycleCount struct {
	Model
	WarehouseID uint       `json:"warehouse_id" gorm:"not null"`
	ComponentID uint       `json:"component_id" gorm:"not null"`
	ExpectedQty int        `json:"expected_qty" gorm:"default:0"`
	CountedQty  int        `json:"counted_qty" gorm:"default:0"`
	CountedAt   *time.Time `json:"counted_at"`
	UserID      *uint      `json:"user_id"`

	Warehouse *Warehouse `json:"warehouse,omitempty" gorm:"foreignKey:WarehouseID;constraint:OnDelete:CASCADE;"`
	Component *Component `json:"component,omitempty" gorm:"foreignKey:ComponentID;constraint:OnDelete:CASCADE;"`
	User      *User      `json:"user,omitempty" gorm:"foreignKey:UserID;constraint:OnDelete:SET NULL;"`
}

func (m CycleCount) TableName() string {
	return "cycle_counts"
}

type Goal struct {
	Model
	UserID       *uint      `json:"user_id"`
	Title        string     `json:"title" gorm:"type:text;not null"`
	Metric       string     `json:"metric" gorm:"type:text"`
	TargetValue  float64    `json:"target_value" gorm:"default:0"`
	CurrentValue float64    `json:"current_value" gorm:"default:0"`
	DueDate      *time.Time `json:"due_date"`
	Status       string     `json:"status" gorm:"type:text;default:'open'"`

	User *User `json:"user,omitempty" gorm:"foreignKey:UserID;constraint:OnDelete:SET NULL;"`
}

func (m Goal) TableName() string {
	return "goals"
}

type InventoryAudit struct {
	Model
	WarehouseID uint       `json:"warehouse_id" gorm:"not null"`
	Status      string     `json:"status" gorm:"type:text;default:'planned'"`
	StartedAt   *time.Time `json:"started_at"`
	CompletedAt *time.Time `json:"completed_at"`
	Notes       string     `json:"notes" gorm:"type:text"`

	Warehouse *Warehouse `json:"warehouse,omitempty" gorm:"foreignKey:WarehouseID;constraint:OnDelete:CASCADE;"`
}

func (m InventoryAudit) TableName() string {
	return "inventory_audits"
}

type InventoryBatch struct {
	Model
	ComponentID uint       `json:"component_id" gorm:"not null"`
	WarehouseID uint       `json:"warehouse_id" gorm:"not null"`
	BatchNumber string     `json:"batch_number" gorm:"type:text;not null"`
	Qty         int        `json:"qty" gorm:"default:0"`
	ReceivedAt  *time.Time `json:"received_at"`
	ExpiresAt   *time.Time `json:"expires_at"`

	Component *Component `json:"component,omitempty" gorm:"foreignKey:ComponentID;constraint:OnDelete:CASCADE;"`
	Warehouse *Warehouse `json:"warehouse,omitempty" gorm:"foreignKey:WarehouseID;constraint:OnDelete:CASCADE;"`
}

func (m InventoryBatch) TableName() string {
	return "inventory_batches"
}

type InventoryTransaction struct {
	Model
	ComponentID uint       `json:"component_id" gorm:"not null"`
	WarehouseID uint       `json:"warehouse_id" gorm:"not null"`
	Type        string     `json:"type" gorm:"type:text;not null"`
	Qty         int        `json:"qty" gorm:"not null"`
	Reference   string     `json:"reference" gorm:"type:text"`
	OccurredAt  *time.Time `json:"occurred_at"`

	Component *Component `json:"component,omitempty" gorm:"foreignKey:ComponentID;constraint:OnDelete:CASCADE;"`
	Warehouse *Warehouse `json:"warehouse,omitempty" gorm:"foreignKey:WarehouseID;constraint:OnDelete:CASCADE;"`
}

func (m InventoryTransaction) TableName() string {
	return "inventory_transactions"
}

type Task struct {
	Model
	UserID      *uint      `json:"user_id"`
	Title       string     `json:"title" gorm:"type:text;not null"`
	Description string     `json:"description" gorm:"type:text"`
	Status      string     `json:"status" gorm:"type:text;default:'todo'"`
	DueDate     *time.Time `json:"due_date"`
	Priority    string     `json:"priority" gorm:"type:text;default:'medium'"`

	User *User `json:"user,omitempty" gorm:"foreignKey:UserID;constraint:OnDelete:SET NULL;"`
}

func (m Task) TableName() string {
	return "tasks"
}
