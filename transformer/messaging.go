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

package transformer

import (
	"github.com/google/uuid"
	"github.com/supplyline-dev/supplyline/database/models"
	"github.com/supplyline-dev/supplyline/dtos"
)

func POConversationThreadCreateRequestToModel(req dtos.POConversationThreadCreateRequest) models.POConversationThread {
	return models.POConversationThread{
		PurchaseOrderID: req.PurchaseOrderID,
		Topic:           req.Topic,
		Status:          req.Status,
	}
}

func ApplyPOConversationThreadPatchRequestToModel(req dtos.POConversationThreadPatchRequest, thread *models.POConversationThread) bool {
	updated := apply(&thread.PurchaseOrderID, req.PurchaseOrderID)
	updated = apply(&thread.Topic, req.Topic) || updated
	updated = apply(&thread.Status, req.Status) || updated
	return updated
}

func ChatMessageCreateRequestToModel(req dtos.ChatMessageCreateRequest) models.ChatMessage {
	return models.ChatMessage{
		ThreadID: req.ThreadID,
		UserID:   req.UserID,
		Body:     req.Body,
	}
}

func ApplyChatMessagePatchRequestToModel(req dtos.ChatMessagePatchRequest, msg *models.ChatMessage) bool {
	updated := apply(&msg.ThreadID, req.ThreadID)
	updated = applyOptional(&msg.UserID, req.UserID) || updated
	updated = apply(&msg.Body, req.Body) || updated
	return updated
}

// MessageAttachmentCreateRequestToModel generates a storage key when the
// client did not supply one, keeping the unique index satisfied.
func MessageAttachmentCreateRequestToModel(req dtos.MessageAttachmentCreateRequest) models.MessageAttachment {
	attachment := models.MessageAttachment{
		ChatMessageID: req.ChatMessageID,
		FileName:      req.FileName,
		ContentType:   req.ContentType,
		StorageKey:    req.StorageKey,
		SizeBytes:     req.SizeBytes,
	}
	if attachment.StorageKey == "" {
		attachment.StorageKey = uuid.NewString()
	}
	return attachment
}

func ApplyMessageAttachmentPatchRequestToModel(req dtos.MessageAttachmentPatchRequest, attachment *models.MessageAttachment) bool {
	updated := apply(&attachment.ChatMessageID, req.ChatMessageID)
	updated = apply(&attachment.FileName, req.FileName) || updated
	updated = apply(&attachment.ContentType, req.ContentType) || updated
	updated = apply(&attachment.StorageKey, req.StorageKey) || updated
	updated = apply(&attachment.SizeBytes, req.SizeBytes) || updated
	return updated
}
