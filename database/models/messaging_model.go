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

type POConversationThread struct {
	Model
	PurchaseOrderID uint   `json:"purchase_order_id" gorm:"not null"`
	Topic           string `json:"topic" gorm:"type:text"`
	Status          string `json:"status" gorm:"type:text;default:'open'"`

	PurchaseOrder *PurchaseOrder `json:"purchase_order,omitempty" gorm:"foreignKey:PurchaseOrderID;constraint:OnDelete:CASCADE;"`
	Messages      []ChatMessage  `json:"messages,omitempty" gorm:"foreignKey:ThreadID;constraint:OnDelete:CASCADE;"`
}

func (m POConversationThread) TableName() string {
	return "po_conversation_threads"
}

type ChatMessage struct {
	Model
	ThreadID uint   `json:"thread_id" gorm:"not null"`
	UserID   *uint  `json:"user_id"`
	Body     string `json:"body" gorm:"type:text;not null"`

	Thread      *POConversationThread `json:"thread,omitempty" gorm:"foreignKey:ThreadID;constraint:OnDelete:CASCADE;"`
	User        *User                 `json:"user,omitempty" gorm:"foreignKey:UserID;constraint:OnDelete:SET NULL;"`
	Attachments []MessageAttachment   `json:"attachments,omitempty" gorm:"foreignKey:ChatMessageID;constraint:OnDelete:CASCADE;"`
}

func (m ChatMessage) TableName() string {
	return "chat_messages"
}

type MessageAttachment struct {
	Model
	ChatMessageID uint   `json:"chat_message_id" gorm:"not null"`
	FileName      string `json:"file_name" gorm:"type:text;not null"`
	ContentType   string `json:"content_type" gorm:"type:text"`
	StorageKey    string `json:"storage_key" gorm:"type:text;uniqueIndex"`
	SizeBytes     int64  `json:"size_bytes" gorm:"default:0"`

	ChatMessage *ChatMessage `json:"chat_message,omitempty" gorm:"foreignKey:ChatMessageID;constraint:OnDelete:CASCADE;"`
}

func (m MessageAttachment) TableName() string {
	return "message_attachments"
}
