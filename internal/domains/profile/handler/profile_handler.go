package handler

import (
	"errors"
	"net/http"

	validation "github.com/go-ozzo/ozzo-validation/v4"
	"github.com/gin-gonic/gin"

	"portfolio-backend/internal/domains/profile"
	"portfolio-backend/internal/shared/response"
	"portfolio-backend/pkg/logger"
)

type ProfileHandler struct {
	service profile.Service
}

func NewProfileHandler(service profile.Service) *ProfileHandler {
	return &ProfileHandler{service: service}
}

// Get handles GET /personal (public)
func (h *ProfileHandler) Get(c *gin.Context) {
	p, err := h.service.Get(c.Request.Context())
	if err != nil {
		logger.Error("profile handler", err)
		response.InternalServerError(c, "something went wrong")
		return
	}

	response.Success(c, http.StatusOK, "Profile fetched successfully", p)
}

// Update handles PUT /personal (admin)
func (h *ProfileHandler) Update(c *gin.Context) {
	var req profile.UpdateProfileRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "invalid request body")
		return
	}

	p, err := h.service.Update(c.Request.Context(), req)
	if err != nil {
		var verrs validation.Errors
		if errors.As(err, &verrs) {
			response.ErrorWithDetails(c, http.StatusBadRequest, "VALIDATION_ERROR", "validation failed", verrs)
			return
		}
		logger.Error("profile handler", err)
		response.InternalServerError(c, "something went wrong")
		return
	}

	response.Success(c, http.StatusOK, "Profile updated successfully", p)
}
