package handlers

import (
	"errors"
	"io"
	"net/http"

	"github.com/gin-gonic/gin"
	"portfolio.backend/internal/domain/entities"
	domainerrors "portfolio.backend/internal/domain/errors"
	"portfolio.backend/internal/interfaces/http/response"
	"portfolio.backend/internal/usecases"
)

type MessageHandler struct {
	messageUsecase *usecases.MessageUsecase
}

func NewMessageHandler(messageUsecase *usecases.MessageUsecase) *MessageHandler {
	return &MessageHandler{messageUsecase: messageUsecase}
}

// CreateMessage stores a contact form submission.
// POST /api/v1/messages
func (h *MessageHandler) CreateMessage(c *gin.Context) {
	var input entities.CreateMessageInput
	if !bindJSON(c, &input) {
		return
	}

	msg, err := h.messageUsecase.Create(c.Request.Context(), &input)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, http.StatusCreated, msg)
}

// ListMessages returns every message, newest first.
// GET /api/v1/messages
func (h *MessageHandler) ListMessages(c *gin.Context) {
	items, err := h.messageUsecase.List(c.Request.Context())
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, http.StatusOK, items)
}

// MarkMessageRead sets the read flag; an empty body marks the message read.
// PUT /api/v1/messages/:id/read
func (h *MessageHandler) MarkMessageRead(c *gin.Context) {
	id, ok := pathID(c, "message")
	if !ok {
		return
	}

	var input entities.MarkMessageReadInput
	if err := c.ShouldBindJSON(&input); err != nil && !errors.Is(err, io.EOF) {
		response.Error(c, domainerrors.BadRequest(err.Error()))
		return
	}

	msg, err := h.messageUsecase.MarkRead(c.Request.Context(), id, &input)
	if err != nil {
		resourceError(c, "message", err)
		return
	}
	response.Success(c, http.StatusOK, msg)
}

// DeleteMessage removes a message.
// DELETE /api/v1/messages/:id
func (h *MessageHandler) DeleteMessage(c *gin.Context) {
	id, ok := pathID(c, "message")
	if !ok {
		return
	}
	if err := h.messageUsecase.Delete(c.Request.Context(), id); err != nil {
		resourceError(c, "message", err)
		return
	}
	response.Message(c, http.StatusOK, "Message deleted")
}
