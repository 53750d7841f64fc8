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

type POConversationThreadCreateRequest struct {
	PurchaseOrderID uint   `json:"purchase_order_id" validate:"required"`
	Topic           string `json:"topic"`
	Status          string `json:"status"`
}

type POConversationThreadPatchRequest struct {
	PurchaseOrderID *uint   `json:"purchase_order_id"`
	Topic           *string `json:"topic"`
	Status          *string `json:"status"`
}

type ChatMessageCreateRequest struct {
	ThreadID uint   `json:"thread_id" validate:"required"`
	UserID   *uint  `json:"user_id"`
	Body     string `json:"body" validate:"required"`
}

type ChatMessagePatchRequest struct {
	ThreadID *uint          `json:"thread_id"`
	UserID   Optional[uint] `json:"user_id"`
	Body     *string        `json:"body"`
}

type MessageAttachmentCreateRequest struct {
	ChatMessageID uint   `json:"chat_message_id" validate:"required"`
	FileName      string `json:"file_name" validate:"required"`
	ContentType   string `json:"content_type"`
	StorageKey    string `json:"storage_key"`
	SizeBytes     int64  `json:"size_bytes" validate:"omitempty,min=0"`
}

type MessageAttachmentPatchRequest struct {
	ChatMessageID *uint   `json:"chat_message_id"`
	FileName      *string `json:"file_name"`
	ContentType   *string `json:"content_type"`
	StorageKey    *string `json:"storage_key"`
	SizeBytes     *int64  `json:"size_bytes" validate:"omitempty,min=0"`
}
