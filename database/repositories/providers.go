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

package repositories

import "go.uber.org/fx"

var Module = fx.Module("repositories",
	fx.Provide(
		NewOrganizationRepository,
		NewUserRepository,

		NewProductRepository,
		NewComponentRepository,
		NewBOMItemRepository,
		NewProductDemandRepository,

		NewSupplierRepository,
		NewSupplierQuoteRepository,
		NewPurchaseOrderRepository,
		NewPOItemRepository,
		NewShippingInfoRepository,
		NewPurchaseGroupRepository,

		NewWarehouseRepository,
		NewWarehouseInventoryRepository,
		NewMonthlyStockRepository,
		NewWarehouseLayoutRepository,
		NewBinLocationRepository,

		NewPOConversationThreadRepository,
		NewChatMessageRepository,
		NewMessageAttachmentRepository,

		NewInvoiceRepository,
		NewPaymentRepository,
		NewLandedCostRepository,
		NewInventoryValuationRepository,

		NewRFQRepository,
		NewRFQItemRepository,
		NewReturnOrderRepository,
		NewReturnOrderItemRepository,
		NewRiskPredictionRepository,
		NewScenarioModelRepository,
		NewSupplierPerformanceRepository,
		NewSupplierScoreRepository,

		NewAuditLogRepository,
		NewAISuggestionRepository,
		NewAlertRepository,
		NewAnomalyLogRepository,
		NewAutomationRuleRepository,
		NewCycleCountRepository,
		NewGoalRepository,
		NewInventoryAuditRepository,
		NewInventoryBatchRepository,
		NewInventoryTransactionRepository,
		NewTaskRepository,
	),
)
