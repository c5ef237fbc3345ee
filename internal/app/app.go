package app

import (
	"errors"
	"fmt"
	"time"

	"github.com/gin-gonic/gin"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"

	"riskscreen_backend/database"
	"riskscreen_backend/internal/auth"
	"riskscreen_backend/internal/config"
	"riskscreen_backend/internal/email"
	"riskscreen_backend/internal/handlers"
	"riskscreen_backend/internal/logger"
	"riskscreen_backend/internal/middleware"
	"riskscreen_backend/internal/models"
	"riskscreen_backend/internal/repositories"
	"riskscreen_backend/internal/routes"
	"riskscreen_backend/internal/services"
	"riskscreen_backend/internal/validator"
)

func Run() {
	config.LoadConfig()
	cfg := config.AppConfig

	logger.Init(cfg.Server.Env)
	logger.Info("Logger initialized", "env", cfg.Server.Env)

	logger.Info("Connecting to database...")
	// TranslateError turns driver unique-violation errors into
	// gorm.ErrDuplicatedKey, which the repositories rely on.
	gormDB, err := gorm.Open(postgres.Open(cfg.Database.DSN), &gorm.Config{TranslateError: true})
	if err != nil {
		logger.Fatal("Failed to connect to database", "error", err)
	}
	sqlDB, err := gormDB.DB()
	if err != nil {
		logger.Fatal("Failed to get *sql.DB from GORM", "error", err)
	}
	if err = sqlDB.Ping(); err != nil {
		logger.Fatal("Database unavailable", "error", err)
	}
	logger.Info("Database connected")

	if err := database.Migrate(gormDB); err != nil {
		logger.Fatal("Failed to run migrations", "error", err)
	}

	if err := seedFirstAdmin(gormDB, cfg); err != nil {
		logger.Fatal("Failed to seed first admin user", "error", err)
	}

	verifier := auth.NewGoogleVerifier(cfg.Google.ClientID)
	ginRouter := SetupRouter(cfg, gormDB, verifier)

	address := fmt.Sprintf("%s:%d", cfg.Server.Host, cfg.Server.Port)
	logger.Info(fmt.Sprintf("Server starting on %s", address))
	if err := ginRouter.Run(address); err != nil {
		logger.Fatal("Server startup error", "error", err)
	}
}

// SetupRouter wires services, handlers and routes onto a gin engine. Tests
// call it directly with a fake verifier instead of going through Run.
func SetupRouter(cfg *config.Config, gormDB *gorm.DB, verifier auth.IDTokenVerifier) *gin.Engine {
	tokens := auth.NewTokenService(
		auth.StaticSecret(cfg.JWT.Secret),
		time.Duration(cfg.JWT.TTLHours)*time.Hour,
	)

	serviceContainer := initializeServices(cfg, tokens, verifier)
	appHandlers := initializeHandlers(serviceContainer)

	ginRouter := initializeGinRouter(gormDB)
	routes.RegisterRoutes(ginRouter, appHandlers, tokens)

	return ginRouter
}

func initializeServices(cfg *config.Config, tokens *auth.TokenService, verifier auth.IDTokenVerifier) *services.ServiceContainer {
	// The nil check guards against storing a typed nil in the interface,
	// which would defeat the provider == nil skip in the services.
	var emailProvider email.Provider
	if p := email.NewSMTPProvider(cfg); p != nil {
		emailProvider = p
		logger.Info("Email provider initialized", "smtp_host", cfg.Email.SMTPHost)
	} else {
		logger.Warn("SMTP not configured, outgoing email disabled")
	}

	userRepo := repositories.NewUserRepository()
	profileRepo := repositories.NewProfileRepository()
	categoryRepo := repositories.NewCategoryRepository()

	authService := services.NewAuthService(userRepo, profileRepo, tokens, verifier, emailProvider)
	userService := services.NewUserService(userRepo)
	profileService := services.NewProfileService(profileRepo)
	categoryService := services.NewCategoryService(categoryRepo)
	dashboardService := services.NewDashboardService(userRepo, categoryRepo)

	return &services.ServiceContainer{
		AuthService:      authService,
		UserService:      userService,
		ProfileService:   profileService,
		CategoryService:  categoryService,
		DashboardService: dashboardService,
	}
}

func initializeHandlers(services *services.ServiceContainer) *handlers.AppHandlers {
	customValidator := validator.New()
	baseHandler := handlers.NewBaseHandler(customValidator)

	return &handlers.AppHandlers{
		AuthHandler:      handlers.NewAuthHandler(baseHandler, services.AuthService),
		UserHandler:      handlers.NewUserHandler(baseHandler, services.UserService),
		ProfileHandler:   handlers.NewProfileHandler(baseHandler, services.ProfileService),
		CategoryHandler:  handlers.NewCategoryHandler(baseHandler, services.CategoryService),
		DashboardHandler: handlers.NewDashboardHandler(baseHandler, services.DashboardService),
	}
}

func initializeGinRouter(db *gorm.DB) *gin.Engine {
	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(middleware.RequestIDMiddleware())
	router.Use(middleware.LoggingMiddleware())
	router.Use(middleware.CORSMiddleware())
	router.Use(middleware.DBMiddleware(db))
	return router
}

// seedFirstAdmin bootstraps the first admin account from config so a fresh
// deployment has a way in. User and profile are created in one transaction.
func seedFirstAdmin(db *gorm.DB, cfg *config.Config) error {
	adminEmail := cfg.FirstAdminEmail
	adminPassword := cfg.FirstAdminPassword

	if adminEmail == "" || adminPassword == "" {
		logger.Warn("First admin credentials not configured, skipping admin seeding")
		return nil
	}

	var existing models.User
	result := db.Where("email = ?", adminEmail).First(&existing)
	if result.Error == nil {
		logger.Info("Admin user already exists, skipping creation", "email", adminEmail)
		return nil
	}
	if !errors.Is(result.Error, gorm.ErrRecordNotFound) {
		return fmt.Errorf("check for admin user: %w", result.Error)
	}

	hashedPassword, err := auth.HashPassword(adminPassword)
	if err != nil {
		return fmt.Errorf("hash admin password: %w", err)
	}

	err = db.Transaction(func(tx *gorm.DB) error {
		admin := &models.User{
			Email:        adminEmail,
			PasswordHash: hashedPassword,
			Role:         models.UserRoleAdmin,
			Status:       models.UserStatusActive,
		}
		if err := tx.Create(admin).Error; err != nil {
			return fmt.Errorf("create admin user: %w", err)
		}
		profile := &models.Profile{
			UserID: admin.ID,
			Name:   "Administrator",
		}
		if err := tx.Create(profile).Error; err != nil {
			return fmt.Errorf("create admin profile: %w", err)
		}
		return nil
	})
	if err != nil {
		return err
	}

	logger.Info("Created first admin user", "email", adminEmail)
	return nil
}
