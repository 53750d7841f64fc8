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

package router

import (
	"github.com/labstack/echo/v4"

	"github.com/supplyline-dev/supplyline/controllers"
)

type OperationsRouter struct {
	*echo.Group
}

func NewOperationsRouter(
	apiRouter APIRouter,
	auditLogController *controllers.AuditLogController,
	aiSuggestionController *controllers.AISuggestionController,
	alertController *controllers.AlertController,
	anomalyLogController *controllers.AnomalyLogController,
	automationRuleController *controllers.AutomationRuleController,
	cycleCountController *controllers.CycleCountController,
	goalController *controllers.GoalController,
	inventoryAuditController *controllers.InventoryAuditController,
	inventoryBatchController *controllers.InventoryBatchController,
	inventoryTransactionController *controllers.InventoryTransactionController,
	taskController *controllers.TaskController,
) OperationsRouter {
	auditLogRouter := registerCRUD(apiRouter.Group, "/auditlog", auditLogController)
	registerCRUD(apiRouter.Group, "/aisuggestion", aiSuggestionController)
	registerCRUD(apiRouter.Group, "/alert", alertController)
	registerCRUD(apiRouter.Group, "/anomalylog", anomalyLogController)
	registerCRUD(apiRouter.Group, "/automationrule", automationRuleController)
	registerCRUD(apiRouter.Group, "/cyclecount", cycleCountController)
	registerCRUD(apiRouter.Group, "/goal", goalController)
	registerCRUD(apiRouter.Group, "/inventoryaudit", inventoryAuditController)
	registerCRUD(apiRouter.Group, "/inventorybatch", inventoryBatchController)
	registerCRUD(apiRouter.Group, "/inventorytransaction", inventoryTransactionController)
	registerCRUD(apiRouter.Group, "/task", taskController)

	return OperationsRouter{Group: auditLogRouter}
}
