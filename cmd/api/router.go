package main

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"portfolio-backend/internal/shared/middleware"
	"portfolio-backend/pkg/container"
)

func SetupRouter(c *container.Container) *gin.Engine {
	router := gin.New()

	// Global middlewares
	router.Use(
		middleware.Recovery(),
		middleware.RequestID(),
		middleware.Logger(),
		middleware.CORS(c.Config.CORS.AllowedOrigins),
	)

	v1 := router.Group("/api/v1")
	{
		// Health check
		v1.GET("/health", healthCheckHandler(c))

		setupAuthRoutes(v1, c)
		setupPersonalRoutes(v1, c)
		setupProjectRoutes(v1, c)
		setupContactRoutes(v1, c)
		setupAdminRoutes(v1, c)
	}

	return router
}

// ========================================
// AUTH ROUTES
// ========================================
func setupAuthRoutes(v1 *gin.RouterGroup, c *container.Container) {
	auth := v1.Group("/auth")
	{
		// Login is never behind the auth middleware; the route guard
		// exempts it explicitly to avoid a redirect loop.
		auth.POST("/login", c.AuthHandler.Login)
		auth.GET("/session", middleware.AuthMiddleware(c.JWTManager), c.AuthHandler.Session)
	}
}

// ========================================
// PERSONAL PROFILE ROUTES
// ========================================
func setupPersonalRoutes(v1 *gin.RouterGroup, c *container.Container) {
	personal := v1.Group("/personal")
	{
		personal.GET("", c.ProfileHandler.Get)
		personal.PUT("",
			middleware.AuthMiddleware(c.JWTManager),
			middleware.AdminMiddleware(),
			c.ProfileHandler.Update,
		)
	}
}

// ========================================
// PROJECT ROUTES
// ========================================
func setupProjectRoutes(v1 *gin.RouterGroup, c *container.Container) {
	projects := v1.Group("/projects")
	{
		// Public reads
		projects.GET("", c.ProjectHandler.List)
		projects.GET("/:id", c.ProjectHandler.GetByID)
	}

	// Mutations require a valid admin session; authorization runs
	// before any body validation or store access.
	adminProjects := v1.Group("/projects")
	adminProjects.Use(
		middleware.AuthMiddleware(c.JWTManager),
		middleware.AdminMiddleware(),
	)
	{
		adminProjects.POST("", c.ProjectHandler.Create)
		adminProjects.PUT("/:id", c.ProjectHandler.Update)
		adminProjects.DELETE("/:id", c.ProjectHandler.Delete)
	}
}

// ========================================
// CONTACT ROUTES
// ========================================
func setupContactRoutes(v1 *gin.RouterGroup, c *container.Container) {
	contact := v1.Group("/contact")
	{
		// Public contact form
		contact.POST("", c.MessageHandler.Create)
	}

	adminContact := v1.Group("/contact")
	adminContact.Use(
		middleware.AuthMiddleware(c.JWTManager),
		middleware.AdminMiddleware(),
	)
	{
		adminContact.GET("", c.MessageHandler.List)
		adminContact.PATCH("/:id/read", c.MessageHandler.MarkRead)
		adminContact.DELETE("/:id", c.MessageHandler.Delete)
	}
}

// ========================================
// ADMIN ROUTES
// ========================================
func setupAdminRoutes(v1 *gin.RouterGroup, c *container.Container) {
	admin := v1.Group("/admin")
	admin.Use(
		middleware.AuthMiddleware(c.JWTManager),
		middleware.AdminMiddleware(),
	)
	{
		admin.GET("/stats", c.DashboardHandler.Stats)
	}
}

// ========================================
// HEALTH CHECK HANDLER
// ========================================
func healthCheckHandler(appCtx *container.Container) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"status":    "ok",
			"timestamp": time.Now().Format(time.RFC3339),
			"version":   appCtx.Config.App.Version,
		})
	}
}
