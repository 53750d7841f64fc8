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

	"github.com/shopspring/decimal"
	"gorm.io/datatypes"
)

type RFQ struct {
	Model
	SupplierID uint       `json:"supplier_id" gorm:"not null"`
	Status     string     `json:"status" gorm:"type:text;default:'draft'"`
	DueDate    *time.Time `json:"due_date"`
	Notes      string     `json:"notes" gorm:"type:text"`

	Supplier *Supplier `json:"supplier,omitempty" gorm:"foreignKey:SupplierID;"`
	Items    []RFQItem `json:"items,omitempty" gorm:"foreignKey:RFQID;constraint:OnDelete:CASCADE;"`
}

func (m RFQ) TableName() string {
	return "rfqs"
}

type RFQItem struct {
	Model
	RFQID          uint            `json:"rfq_id" gorm:"column:rfq_id;not null"`
	ComponentID    uint            `json:"component_id" gorm:"not null"`
	Qty            int             `json:"qty" gorm:"not null"`
	TargetUnitCost decimal.Decimal `json:"target_unit_cost" gorm:"type:decimal(12,4)"`

	RFQ       *RFQ       `json:"rfq,omitempty" gorm:"foreignKey:RFQID;constraint:OnDelete:CASCADE;"`
	Component *Component `json:"component,omitempty" gorm:"foreignKey:ComponentID;"`
}

func (m RFQItem) TableName() string {
	return "rfq_items"
}

type ReturnOrder struct {
	Model
	PurchaseOrderID uint   `json:"purchase_order_id" gorm:"not null"`
	Reason          string `json:"reason" gorm:"type:text"`
	Status          string `json:"status" gorm:"type:text;default:'requested'"`

	PurchaseOrder *PurchaseOrder    `json:"purchase_order,omitempty" gorm:"foreignKey:PurchaseOrderID;"`
	Items         []ReturnOrderItem `json:"items,omitempty" gorm:"foreignKey:ReturnOrderID;constraint:OnDelete:CASCADE;"`
}

func (m ReturnOrder) TableName() string {
	return "return_orders"
}

type ReturnOrderItem struct {
	Model
	ReturnOrderID uint   `json:"return_order_id" gorm:"not null"`
	ComponentID   uint   `json:"component_id" gorm:"not null"`
	Qty           int    `json:"qty" gorm:"not null"`
	Condition     string `json:"condition" gorm:"type:text"`

	ReturnOrder *ReturnOrder `json:"return_order,omitempty" gorm:"foreignKey:ReturnOrderID;constraint:OnDelete:CASCADE;"`
	Component   *Component   `json:"component,omitempty" gorm:"foreignKey:ComponentID;"`
}

func (m ReturnOrderItem) TableName() string {
	return "return_order_items"
}

type RiskPrediction struct {
	Model
	SupplierID  *uint   `json:"supplier_id"`
	ComponentID *uint   `json:"component_id"`
	Type        string  `json:"type" gorm:"type:text;not null"`
	Score       float64 `json:"score" gorm:"default:0"`
	HorizonDays int     `json:"horizon_days"`
	Details     string  `json:"details" gorm:"type:text"`

	Supplier  *Supplier  `json:"supplier,omitempty" gorm:"foreignKey:SupplierID;constraint:OnDelete:SET NULL;"`
	Component *Component `json:"component,omitempty" gorm:"foreignKey:ComponentID;constraint:OnDelete:SET NULL;"`
}

func (m RiskPrediction) TableName() string {
	return "risk_predictions"
}

type ScenarioModel struct {
	Model
	Name       string         `json:"name" gorm:"type:text;not null"`
	InputData  datatypes.JSON `json:"input_data" gorm:"type:jsonb"`
	OutputData datatypes.JSON `json:"output_data" gorm:"type:jsonb"`
	Status     string         `json:"status" gorm:"type:text;default:'draft'"`
}

func (m ScenarioModel) TableName() string {
	return "scenario_models"
}

type SupplierPerformance struct {
	Model
	SupplierID uint    `json:"supplier_id" gorm:"not null"`
	Period     string  `json:"period" gorm:"type:text;not null"`
	OntimeRate float64 `json:"ontime_rate" gorm:"default:0"`
	DefectRate float64 `json:"defect_rate" gorm:"default:0"`
	FillRate   float64 `json:"fill_rate" gorm:"default:0"`

	Supplier *Supplier `json:"supplier,omitempty" gorm:"foreignKey:SupplierID;constraint:OnDelete:CASCADE;"`
}

func (m SupplierPerformance) TableName() string {
	return "supplier_performances"
}

type SupplierScore struct {
	Model
	SupplierID uint       `json:"supplier_id" gorm:"not null"`
	Score      float64    `json:"score" gorm:"default:0"`
	Category   string     `json:"category" gorm:"type:text"`
	ComputedAt *time.Time `json:"computed_at"`

	Supplier *Supplier `json:"supplier,omitempty" gorm:"foreignKey:SupplierID;constraint:OnDelete:CASCADE;"`
}

func (m SupplierScore) TableName() string {
	return "supplier_scores"
}
