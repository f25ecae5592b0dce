package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"portfolio-backend/internal/domains/message"
	"portfolio-backend/internal/domains/project"
	"portfolio-backend/internal/shared/response"
	"portfolio-backend/pkg/logger"
)

// DashboardHandler serves the admin dashboard counters
type DashboardHandler struct {
	projects project.Repository
	messages message.Repository
}

func NewDashboardHandler(projects project.Repository, messages message.Repository) *DashboardHandler {
	return &DashboardHandler{projects: projects, messages: messages}
}

type statsResponse struct {
	Projects       int `json:"projects"`
	Messages       int `json:"messages"`
	UnreadMessages int `json:"unread_messages"`
}

// Stats handles GET /admin/stats (admin)
func (h *DashboardHandler) Stats(c *gin.Context) {
	projectCount, err := h.projects.Count(c.Request.Context())
	if err != nil {
		logger.Error("dashboard handler", err)
		response.InternalServerError(c, "something went wrong")
		return
	}

	messageCount, unread, err := h.messages.Count(c.Request.Context())
	if err != nil {
		logger.Error("dashboard handler", err)
		response.InternalServerError(c, "something went wrong")
		return
	}

	response.Success(c, http.StatusOK, "Stats fetched successfully", statsResponse{
		Projects:       projectCount,
		Messages:       messageCount,
		UnreadMessages: unread,
	})
}
