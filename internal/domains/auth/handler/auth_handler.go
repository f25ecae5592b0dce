package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"portfolio-backend/internal/domains/auth"
	"portfolio-backend/internal/shared/middleware"
	"portfolio-backend/internal/shared/response"
)

type AuthHandler struct {
	service auth.Service
}

func NewAuthHandler(service auth.Service) *AuthHandler {
	return &AuthHandler{service: service}
}

// Login handles POST /auth/login
func (h *AuthHandler) Login(c *gin.Context) {
	var req auth.LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "invalid request body")
		return
	}

	if err := req.Validate(); err != nil {
		response.ErrorWithDetails(c, http.StatusBadRequest, "VALIDATION_ERROR", "validation failed", err)
		return
	}

	resp, err := h.service.Login(c.Request.Context(), req)
	if err != nil {
		status := auth.HTTPStatus(err)
		if status == http.StatusInternalServerError {
			response.InternalServerError(c, "something went wrong")
			return
		}
		response.ErrorResponse(c, status, "INVALID_CREDENTIALS", err.Error())
		return
	}

	response.Success(c, http.StatusOK, "Login successful", resp)
}

// Session handles GET /auth/session. It sits behind AuthMiddleware,
// so reaching the handler means the held token is valid; the admin
// route guard calls this before rendering protected pages.
func (h *AuthHandler) Session(c *gin.Context) {
	identity := auth.Identity{
		ID:    c.GetString(middleware.CtxUserID),
		Email: c.GetString(middleware.CtxEmail),
		Role:  c.GetString(middleware.CtxRole),
	}

	response.Success(c, http.StatusOK, "Session valid", identity)
}
