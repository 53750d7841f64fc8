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

import (
	"github.com/supplyline-dev/supplyline/database/models"
	"gorm.io/gorm"
)

type AuditLogRepository struct {
	db *gorm.DB
	*GormRepository[models.AuditLog]
}

func NewAuditLogRepository(db *gorm.DB) *AuditLogRepository {
	return &AuditLogRepository{
		db:             db,
		GormRepository: newGormRepository[models.AuditLog](db, orderNewestFirst, "User"),
	}
}

// AllForEntity returns the audit trail of a single record, newest first.
func (g *AuditLogRepository) AllForEntity(entity string, entityID uint) ([]models.AuditLog, error) {
	var logs []models.AuditLog
	err := g.db.Preload("User").
		Where("entity = ? AND entity_id = ?", entity, entityID).
		Order(orderNewestFirst).Find(&logs).Error
	return logs, err
}

type AISuggestionRepository struct {
	*GormRepository[models.AISuggestion]
}

func NewAISuggestionRepository(db *gorm.DB) *AISuggestionRepository {
	return &AISuggestionRepository{newGormRepository[models.AISuggestion](db, orderNewestFirst, "Component")}
}

type AlertRepository struct {
	db *gorm.DB
	*GormRepository[models.Alert]
}

func NewAlertRepository(db *gorm.DB) *AlertRepository {
	return &AlertRepository{
		db:             db,
		GormRepository: newGormRepository[models.Alert](db, orderNewestFirst, "Warehouse", "Component"),
	}
}

func (g *AlertRepository) CountUnacknowledged() (int64, error) {
	var count int64
	err := g.db.Model(models.Alert{}).Where("acknowledged = ?", false).Count(&count).Error
	return count, err
}

type AnomalyLogRepository struct {
	*GormRepository[models.AnomalyLog]
}

func NewAnomalyLogRepository(db *gorm.DB) *AnomalyLogRepository {
	return &AnomalyLogRepository{newGormRepository[models.AnomalyLog](db, orderNewestFirst, "Component", "Warehouse")}
}

type AutomationRuleRepository struct {
	*GormRepository[models.AutomationRule]
}

func NewAutomationRuleRepository(db *gorm.DB) *AutomationRuleRepository {
	return &AutomationRuleRepository{newGormRepository[models.AutomationRule](db, orderByName)}
}

type CycleCountRepository struct {
	*GormRepository[models.CycleCount]
}

func NewCycleCountRepository(db *gorm.DB) *CycleCountRepository {
	return &CycleCountRepository{newGormRepository[models.CycleCount](db, orderNewestFirst, "Warehouse", "Component", "User")}
}

type GoalRepository struct {
	*GormRepository[models.Goal]
}

func NewGoalRepository(db *gorm.DB) *GoalRepository {
	return &GoalRepository{newGormRepository[models.Goal](db, orderNewestFirst, "User")}
}

type InventoryAuditRepository struct {
	*GormRepository[models.InventoryAudit]
}

func NewInventoryAuditRepository(db *gorm.DB) *InventoryAuditRepository {
	return &InventoryAuditRepository{newGormRepository[models.InventoryAudit](db, orderNewestFirst, "Warehouse")}
}

type InventoryBatchRepository struct {
	*GormRepository[models.InventoryBatch]
}

func NewInventoryBatchRepository(db *gorm.DB) *InventoryBatchRepository {
	return &InventoryBatchRepository{newGormRepository[models.InventoryBatch](db, orderNewestFirst, "Component", "Warehouse")}
}

type InventoryTransactionRepository struct {
	*GormRepository[models.InventoryTransaction]
}

func NewInventoryTransactionRepository(db *gorm.DB) *InventoryTransactionRepository {
	return &InventoryTransactionRepository{newGormRepository[models.InventoryTransaction](db, orderNewestFirst, "Component", "Warehouse")}
}

type TaskRepository struct {
	*GormRepository[models.Task]
}

func NewTaskRepository(db *gorm.DB) *TaskRepository {
	return &TaskRepository{newGormRepository[models.Task](db, orderNewestFirst, "User")}
}
