package container

import (
	"fmt"
	"log"
	"time"

	"portfolio-backend/internal/config"
	"portfolio-backend/internal/infrastructure/docstore"
	"portfolio-backend/pkg/jwt"

	"portfolio-backend/internal/domains/auth"
	authHandler "portfolio-backend/internal/domains/auth/handler"
	authService "portfolio-backend/internal/domains/auth/service"

	"portfolio-backend/internal/domains/project"
	projectHandler "portfolio-backend/internal/domains/project/handler"
	projectRepo "portfolio-backend/internal/domains/project/repository"
	projectService "portfolio-backend/internal/domains/project/service"

	"portfolio-backend/internal/domains/message"
	messageHandler "portfolio-backend/internal/domains/message/handler"
	messageRepo "portfolio-backend/internal/domains/message/repository"
	messageService "portfolio-backend/internal/domains/message/service"

	"portfolio-backend/internal/domains/profile"
	profileHandler "portfolio-backend/internal/domains/profile/handler"
	profileRepo "portfolio-backend/internal/domains/profile/repository"
	profileService "portfolio-backend/internal/domains/profile/service"

	dashboardHandler "portfolio-backend/internal/domains/dashboard/handler"
)

// Container holds every dependency of the application.
// Initialization order matters: config, infrastructure,
// repositories, services, handlers.
type Container struct {
	// Infrastructure
	Config     *config.Config
	Store      *docstore.Store
	JWTManager *jwt.Manager

	// Repositories
	ProjectRepo project.Repository
	MessageRepo message.Repository
	ProfileRepo profile.Repository

	// Services
	AuthService    auth.Service
	ProjectService project.Service
	MessageService message.Service
	ProfileService profile.Service

	// Handlers
	AuthHandler      *authHandler.AuthHandler
	ProjectHandler   *projectHandler.ProjectHandler
	MessageHandler   *messageHandler.MessageHandler
	ProfileHandler   *profileHandler.ProfileHandler
	DashboardHandler *dashboardHandler.DashboardHandler
}

// NewContainer builds the whole dependency graph
func NewContainer() (*Container, error) {
	log.Println("🔧 Initializing DI Container...")

	c := &Container{}

	// 1. Config
	cfg, err := config.Load()
	if err != nil {
		return nil, fmt.Errorf("load config: %w", err)
	}
	c.Config = cfg

	// 2. Infrastructure
	store, err := docstore.New(cfg.Store.DataDir)
	if err != nil {
		return nil, fmt.Errorf("init docstore: %w", err)
	}
	c.Store = store
	c.JWTManager = jwt.NewManager(cfg.JWT.Secret, time.Duration(cfg.JWT.ExpiryHours)*time.Hour)

	// 3. Repositories
	if c.ProjectRepo, err = projectRepo.NewDocstoreRepository(store); err != nil {
		return nil, err
	}
	if c.MessageRepo, err = messageRepo.NewDocstoreRepository(store); err != nil {
		return nil, err
	}
	if c.ProfileRepo, err = profileRepo.NewDocstoreRepository(store); err != nil {
		return nil, err
	}

	// 4. Services
	credentials := auth.NewEnvCredentialStore(cfg.Admin)
	c.AuthService = authService.NewAuthService(credentials, c.JWTManager)
	c.ProjectService = projectService.NewProjectService(c.ProjectRepo)
	c.MessageService = messageService.NewMessageService(c.MessageRepo)
	c.ProfileService = profileService.NewProfileService(c.ProfileRepo)

	// 5. Handlers
	c.AuthHandler = authHandler.NewAuthHandler(c.AuthService)
	c.ProjectHandler = projectHandler.NewProjectHandler(c.ProjectService)
	c.MessageHandler = messageHandler.NewMessageHandler(c.MessageService)
	c.ProfileHandler = profileHandler.NewProfileHandler(c.ProfileService)
	c.DashboardHandler = dashboardHandler.NewDashboardHandler(c.ProjectRepo, c.MessageRepo)

	log.Println("✅ Container initialized")
	return c, nil
}
