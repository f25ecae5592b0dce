package handler

import (
	"errors"
	"net/http"
	"strconv"

	validation "github.com/go-ozzo/ozzo-validation/v4"
	"github.com/gin-gonic/gin"

	"portfolio-backend/internal/domains/message"
	"portfolio-backend/internal/shared/response"
	"portfolio-backend/pkg/logger"
)

type MessageHandler struct {
	service message.Service
}

func NewMessageHandler(service message.Service) *MessageHandler {
	return &MessageHandler{service: service}
}

// List handles GET /contact (admin)
func (h *MessageHandler) List(c *gin.Context) {
	messages, err := h.service.List(c.Request.Context())
	if err != nil {
		h.handleError(c, err)
		return
	}

	response.Success(c, http.StatusOK, "Messages fetched successfully", messages)
}

// Create handles POST /contact (public contact form)
func (h *MessageHandler) Create(c *gin.Context) {
	var req message.CreateMessageRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "invalid request body")
		return
	}

	m, err := h.service.Create(c.Request.Context(), req)
	if err != nil {
		h.handleError(c, err)
		return
	}

	response.Success(c, http.StatusCreated, "Message sent successfully", message.CreateMessageResponse{ID: m.ID})
}

// MarkRead handles PATCH /contact/:id/read (admin)
func (h *MessageHandler) MarkRead(c *gin.Context) {
	id, ok := h.parseID(c)
	if !ok {
		return
	}

	m, err := h.service.MarkRead(c.Request.Context(), id)
	if err != nil {
		h.handleError(c, err)
		return
	}

	response.Success(c, http.StatusOK, "Message marked as read", m)
}

// Delete handles DELETE /contact/:id (admin)
func (h *MessageHandler) Delete(c *gin.Context) {
	id, ok := h.parseID(c)
	if !ok {
		return
	}

	if err := h.service.Delete(c.Request.Context(), id); err != nil {
		h.handleError(c, err)
		return
	}

	response.Success(c, http.StatusOK, "Message deleted successfully", nil)
}

func (h *MessageHandler) parseID(c *gin.Context) (int64, bool) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		response.BadRequest(c, "invalid message id")
		return 0, false
	}
	return id, true
}

func (h *MessageHandler) handleError(c *gin.Context, err error) {
	var verrs validation.Errors
	if errors.As(err, &verrs) {
		response.ErrorWithDetails(c, http.StatusBadRequest, "VALIDATION_ERROR", "validation failed", verrs)
		return
	}

	status := message.HTTPStatus(err)
	if status == http.StatusInternalServerError {
		logger.Error("message handler", err)
		response.InternalServerError(c, "something went wrong")
		return
	}

	response.ErrorResponse(c, status, "NOT_FOUND", err.Error())
}
