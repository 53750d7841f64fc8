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

import (
	"net/http"

	"github.com/supplyline-dev/supplyline/database/models"
	"github.com/supplyline-dev/supplyline/database/repositories"
	"github.com/supplyline-dev/supplyline/dtos"
	"github.com/supplyline-dev/supplyline/shared"
	"github.com/supplyline-dev/supplyline/transformer"
)

type POConversationThreadController struct {
	threadRepository        *repositories.POConversationThreadRepository
	purchaseOrderRepository *repositories.PurchaseOrderRepository
}

func NewPOConversationThreadController(threadRepository *repositories.POConversationThreadRepository, purchaseOrderRepository *repositories.PurchaseOrderRepository) *POConversationThreadController {
	return &POConversationThreadController{
		threadRepository:        threadRepository,
		purchaseOrderRepository: purchaseOrderRepository,
	}
}

func (c POConversationThreadController) List(ctx shared.Context) error {
	return listEntity[models.POConversationThread](ctx, c.threadRepository, "conversation thread", map[string]string{
		"purchaseOrderId": "purchase_order_id",
		"status":          "status",
	})
}

func (c POConversationThreadController) Read(ctx shared.Context) error {
	return readEntity[models.POConversationThread](ctx, c.threadRepository, "conversation thread")
}

func (c POConversationThreadController) Create(ctx shared.Context) error {
	req, err := bindAndValidate[dtos.POConversationThreadCreateRequest](ctx)
	if err != nil {
		return err
	}
	if err := assertExists(c.purchaseOrderRepository, req.PurchaseOrderID, "purchase_order_id"); err != nil {
		return err
	}
	thread := transformer.POConversationThreadCreateRequestToModel(req)
	if err := c.threadRepository.Create(nil, &thread); err != nil {
		return writeError(err, "conversation thread")
	}
	return ctx.JSON(http.StatusCreated, thread)
}

func (c POConversationThreadController) Update(ctx shared.Context) error {
	id, err := shared.GetParamID(ctx)
	if err != nil {
		return err
	}
	thread, err := c.threadRepository.Read(id)
	if err != nil {
		return readError(err, "conversation thread")
	}
	req, err := bindAndValidate[dtos.POConversationThreadPatchRequest](ctx)
	if err != nil {
		return err
	}
	if req.PurchaseOrderID != nil {
		if err := assertExists(c.purchaseOrderRepository, *req.PurchaseOrderID, "purchase_order_id"); err != nil {
			return err
		}
	}
	if transformer.ApplyPOConversationThreadPatchRequestToModel(req, &thread) {
		if err := c.threadRepository.Save(nil, &thread); err != nil {
			return writeError(err, "conversation thread")
		}
	}
	return ctx.JSON(http.StatusOK, thread)
}

func (c POConversationThreadController) Delete(ctx shared.Context) error {
	return deleteEntity(ctx, c.threadRepository, "conversation thread")
}

type ChatMessageController struct {
	chatMessageRepository *repositories.ChatMessageRepository
	threadRepository      *repositories.POConversationThreadRepository
	userRepository        *repositories.UserRepository
}

func NewChatMessageController(chatMessageRepository *repositories.ChatMessageRepository, threadRepository *repositories.POConversationThreadRepository, userRepository *repositories.UserRepository) *ChatMessageController {
	return &ChatMessageController{
		chatMessageRepository: chatMessageRepository,
		threadRepository:      threadRepository,
		userRepository:        userRepository,
	}
}

func (c ChatMessageController) List(ctx shared.Context) error {
	return listEntity[models.ChatMessage](ctx, c.chatMessageRepository, "chat message", map[string]string{
		"threadId": "thread_id",
		"userId":   "user_id",
	})
}

func (c ChatMessageController) Read(ctx shared.Context) error {
	return readEntity[models.ChatMessage](ctx, c.chatMessageRepository, "chat message")
}

func (c ChatMessageController) Create(ctx shared.Context) error {
	req, err := bindAndValidate[dtos.ChatMessageCreateRequest](ctx)
	if err != nil {
		return err
	}
	if err := assertExists(c.threadRepository, req.ThreadID, "thread_id"); err != nil {
		return err
	}
	if req.UserID != nil {
		if err := assertExists(c.userRepository, *req.UserID, "user_id"); err != nil {
			return err
		}
	}
	msg := transformer.ChatMessageCreateRequestToModel(req)
	if err := c.chatMessageRepository.Create(nil, &msg); err != nil {
		return writeError(err, "chat message")
	}
	return ctx.JSON(http.StatusCreated, msg)
}

func (c ChatMessageController) Update(ctx shared.Context) error {
	id, err := shared.GetParamID(ctx)
	if err != nil {
		return err
	}
	msg, err := c.chatMessageRepository.Read(id)
	if err != nil {
		return readError(err, "chat message")
	}
	req, err := bindAndValidate[dtos.ChatMessagePatchRequest](ctx)
	if err != nil {
		return err
	}
	if req.ThreadID != nil {
		if err := assertExists(c.threadRepository, *req.ThreadID, "thread_id"); err != nil {
			return err
		}
	}
	if req.UserID.Present && req.UserID.Value != nil {
		if err := assertExists(c.userRepository, *req.UserID.Value, "user_id"); err != nil {
			return err
		}
	}
	if transformer.ApplyChatMessagePatchRequestToModel(req, &msg) {
		if err := c.chatMessageRepository.Save(nil, &msg); err != nil {
			return writeError(err, "chat message")
		}
	}
	return ctx.JSON(http.StatusOK, msg)
}

func (c ChatMessageController) Delete(ctx shared.Context) error {
	return deleteEntity(ctx, c.chatMessageRepository, "chat message")
}

type MessageAttachmentController struct {
	attachmentRepository  *repositories.MessageAttachmentRepository
	chatMessageRepository *repositories.ChatMessageRepository
}

func NewMessageAttachmentController(attachmentRepository *repositories.MessageAttachmentRepository, chatMessageRepository *repositories.ChatMessageRepository) *MessageAttachmentController {
	return &MessageAttachmentController{
		attachmentRepository:  attachmentRepository,
		chatMessageRepository: chatMessageRepository,
	}
}

func (c MessageAttachmentController) List(ctx shared.Context) error {
	return listEntity[models.MessageAttachment](ctx, c.attachmentRepository, "message attachment", map[string]string{
		"chatMessageId": "chat_message_id",
	})
}

func (c MessageAttachmentController) Read(ctx shared.Context) error {
	return readEntity[models.MessageAttachment](ctx, c.attachmentRepository, "message attachment")
}

func (c MessageAttachmentController) Create(ctx shared.Context) error {
	req, err := bindAndValidate[dtos.MessageAttachmentCreateRequest](ctx)
	if err != nil {
		return err
	}
	if err := assertExists(c.chatMessageRepository, req.ChatMessageID, "chat_message_id"); err != nil {
		return err
	}
	attachment := transformer.MessageAttachmentCreateRequestToModel(req)
	if err := c.attachmentRepository.Create(nil, &attachment); err != nil {
		return writeError(err, "message attachment")
	}
	return ctx.JSON(http.StatusCreated, attachment)
}

func (c MessageAttachmentController) Update(ctx shared.Context) error {
	id, err := shared.GetParamID(ctx)
	if err != nil {
		return err
	}
	attachment, err := c.attachmentRepository.Read(id)
	if err != nil {
		return readError(err, "message attachment")
	}
	req, err := bindAndValidate[dtos.MessageAttachmentPatchRequest](ctx)
	if err != nil {
		return err
	}
	if req.ChatMessageID != nil {
		if err := assertExists(c.chatMessageRepository, *req.ChatMessageID, "chat_message_id"); err != nil {
			return err
		}
	}
	if transformer.ApplyMessageAttachmentPatchRequestToModel(req, &attachment) {
		if err := c.attachmentRepository.Save(nil, &attachment); err != nil {
			return writeError(err, "message attachment")
		}
	}
	return ctx.JSON(http.StatusOK, attachment)
}

func (c MessageAttachmentController) Delete(ctx shared.Context) error {
	return deleteEntity(ctx, c.attachmentRepository, "message attachment")
}
