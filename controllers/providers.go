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

import "go.uber.org/fx"

var Module = fx.Module("controllers",
	fx.Provide(
		NewOrganizationController,
		NewUserController,

		NewProductController,
		NewComponentController,
		NewBOMItemController,
		NewProductDemandController,

		NewSupplierController,
		NewSupplierQuoteController,
		NewPurchaseOrderController,
		NewPOItemController,
		NewShippingInfoController,
		NewPurchaseGroupController,

		NewWarehouseController,
		NewWarehouseInventoryController,
		NewMonthlyStockController,
		NewWarehouseLayoutController,
		NewBinLocationController,

		NewPOConversationThreadController,
		NewChatMessageController,
		NewMessageAttachmentController,

		NewInvoiceController,
		NewPaymentController,
		NewLandedCostController,
		NewInventoryValuationController,

		NewRFQController,
		NewRFQItemController,
		NewReturnOrderController,
		NewReturnOrderItemController,
		NewRiskPredictionController,
		NewScenarioModelController,
		NewSupplierPerformanceController,
		NewSupplierScoreController,

		NewAuditLogController,
		NewAISuggestionController,
		NewAlertController,
		NewAnomalyLogController,
		NewAutomationRuleController,
		NewCycleCountController,
		NewGoalController,
		NewInventoryAuditController,
		NewInventoryBatchController,
		NewInventoryTransactionController,
		NewTaskController,

		NewDashboardController,
		NewFinanceController,
	),
)
