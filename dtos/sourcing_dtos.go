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

	"github.com/shopspring/decimal"
	"gorm.io/datatypes"
)

type RFQCreateRequest struct {
	SupplierID uint                   `json:"supplier_id" validate:"required"`
	Status     string                 `json:"status"`
	DueDate    *time.Time             `json:"due_date"`
	Notes      string                 `json:"notes"`
	Items      []RFQItemInlineRequest `json:"items" validate:"dive"`
}

type RFQItemInlineRequest struct {
	ComponentID    uint             `json:"component_id" validate:"required"`
	Qty            *int             `json:"qty" validate:"omitempty,min=1"`
	TargetUnitCost *decimal.Decimal `json:"target_unit_cost"`
}

type RFQPatchRequest struct {
	SupplierID *uint      `json:"supplier_id"`
	Status     *string    `json:"status"`
	DueDate    *time.Time `json:"due_date"`
	Notes      *string    `json:"notes"`
}

type RFQItemCreateRequest struct {
	RFQID          uint             `json:"rfq_id" validate:"required"`
	ComponentID    uint             `json:"component_id" validate:"required"`
	Qty            *int             `json:"qty" validate:"omitempty,min=1"`
	TargetUnitCost *decimal.Decimal `json:"target_unit_cost"`
}

type RFQItemPatchRequest struct {
	RFQID          *uint            `json:"rfq_id"`
	ComponentID    *uint            `json:"component_id"`
	Qty            *int             `json:"qty" validate:"omitempty,min=1"`
	TargetUnitCost *decimal.Decimal `json:"target_unit_cost"`
}

type ReturnOrderCreateRequest struct {
	PurchaseOrderID uint                           `json:"purchase_order_id" validate:"required"`
	Reason          string                         `json:"reason"`
	Status          string                         `json:"status"`
	Items           []ReturnOrderItemInlineRequest `json:"items" validate:"dive"`
}

type ReturnOrderItemInlineRequest struct {
	ComponentID uint   `json:"component_id" validate:"required"`
	Qty         *int   `json:"qty" validate:"omitempty,min=1"`
	Condition   string `json:"condition"`
}

type ReturnOrderPatchRequest struct {
	PurchaseOrderID *uint   `json:"purchase_order_id"`
	Reason          *string `json:"reason"`
	Status          *string `json:"status"`
}

type ReturnOrderItemCreateRequest struct {
	ReturnOrderID uint   `json:"return_order_id" validate:"required"`
	ComponentID   uint   `json:"component_id" validate:"required"`
	Qty           *int   `json:"qty" validate:"omitempty,min=1"`
	Condition     string `json:"condition"`
}

type ReturnOrderItemPatchRequest struct {
	ReturnOrderID *uint   `json:"return_order_id"`
	ComponentID   *uint   `json:"component_id"`
	Qty           *int    `json:"qty" validate:"omitempty,min=1"`
	Condition     *string `json:"condition"`
}

type RiskPredictionCreateRequest struct {
	SupplierID  *uint   `json:"supplier_id"`
	ComponentID *uint   `json:"component_id"`
	Type        string  `json:"type" validate:"required"`
	Score       float64 `json:"score"`
	HorizonDays *int    `json:"horizon_days" validate:"omitempty,min=1"`
	Details     string  `json:"details"`
}

type RiskPredictionPatchRequest struct {
	SupplierID  Optional[uint] `json:"supplier_id"`
	ComponentID Optional[uint] `json:"component_id"`
	Type        *string        `json:"type"`
	Score       *float64       `json:"score"`
	HorizonDays *int           `json:"horizon_days" validate:"omitempty,min=1"`
	Details     *string        `json:"details"`
}

type ScenarioModelCreateRequest struct {
	Name       string         `json:"name" validate:"required"`
	InputData  datatypes.JSON `json:"input_data"`
	OutputData datatypes.JSON `json:"output_data"`
	Status     string         `json:"status"`
}

type ScenarioModelPatchRequest struct {
	Name       *string        `json:"name"`
	InputData  datatypes.JSON `json:"input_data"`
	OutputData datatypes.JSON `json:"output_data"`
	Status     *string        `json:"status"`
}

type SupplierPerformanceCreateRequest struct {
	SupplierID uint    `json:"supplier_id" validate:"required"`
	Period     string  `json:"period" validate:"required"`
	OntimeRate float64 `json:"ontime_rate" validate:"omitempty,min=0,max=1"`
	DefectRate float64 `json:"defect_rate" validate:"omitempty,min=0,max=1"`
	FillRate   float64 `json:"fill_rate" validate:"omitempty,min=0,max=1"`
}

type SupplierPerformancePatchRequest struct {
	SupplierID *uint    `json:"supplier_id"`
	Period     *string  `json:"period"`
	OntimeRate *float64 `json:"ontime_rate" validate:"omitempty,min=0,max=1"`
	DefectRate *float64 `json:"defect_rate" validate:"omitempty,min=0,max=1"`
	FillRate   *float64 `json:"fill_rate" validate:"omitempty,min=0,max=1"`
}

type SupplierScoreCreateRequest struct {
	SupplierID uint       `json:"supplier_id" validate:"required"`
	Score      float64    `json:"score"`
	Category   string     `json:"category"`
	ComputedAt *time.Time `json:"computed_at"`
}

type SupplierScorePatchRequest struct {
	SupplierID *uint      `json:"supplier_id"`
	Score      *float64   `json:"score"`
	Category   *string    `json:"category"`
	ComputedAt *time.Time `json:"computed_at"`
}
