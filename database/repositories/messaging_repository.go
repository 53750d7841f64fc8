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

type POConversationThreadRepository struct {
	db *gorm.DB
	*GormRepository[models.POConversationThread]
}

func NewPOConversationThreadRepository(db *gorm.DB) *POConversationThreadRepository {
	return &POConversationThreadRepository{
		db:             db,
		GormRepository: newGormRepository[models.POConversationThread](db, orderNewestFirst, "PurchaseOrder"),
	}
}

func (g *POConversationThreadRepository) AllForPurchaseOrder(purchaseOrderID uint) ([]models.POConversationThread, error) {
	var threads []models.POConversationThread
	err := g.db.Where("purchase_order_id = ?", purchaseOrderID).
		Order(orderNewestFirst).Find(&threads).Error
	return threads, err
}

type ChatMessageRepository struct {
	*GormRepository[models.ChatMessage]
}

func NewChatMessageRepository(db *gorm.DB) *ChatMessageRepository {
	return &ChatMessageRepository{newGormRepository[models.ChatMessage](db, "created_at ASC", "Thread", "User")}
}

type MessageAttachmentRepository struct {
	*GormRepository[models.MessageAttachment]
}

func NewMessageAttachmentRepository(db *gorm.DB) *MessageAttachmentRepository {
	return &MessageAttachmentRepository{newGormRepository[models.MessageAttachment](db, orderNewestFirst, "ChatMessage")}
}
