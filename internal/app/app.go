package app

import (
	"context"
	"errors"
	"fmt"
	"time"

	"cityinbox_backend/internal/auth"
	"cityinbox_backend/internal/config"
	"cityinbox_backend/internal/email"
	"cityinbox_backend/internal/handlers"
	"cityinbox_backend/internal/imageprocessor"
	"cityinbox_backend/internal/logger"
	"cityinbox_backend/internal/middleware"
	"cityinbox_backend/internal/models"
	"cityinbox_backend/internal/push"
	"cityinbox_backend/internal/repositories"
	"cityinbox_backend/internal/routes"
	"cityinbox_backend/internal/services"
	"cityinbox_backend/internal/storage"
	"cityinbox_backend/internal/validator"

	"github.com/gin-gonic/gin"
	"gorm.io/driver/mysql"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

func Run() {
	config.LoadConfig()
	cfg := config.AppConfig
	logger.Init(cfg.Server.Env)
	logger.Info("Logger initialized", "env", cfg.Server.Env)

	gormDB, err := openDatabase(cfg.Database.Driver, cfg.Database.DSN)
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
	logger.Info("Database connected", "driver", cfg.Database.Driver)

	if err := autoMigrate(gormDB); err != nil {
		logger.Fatal("Migration failed", "error", err)
	}

	if err := seedFirstAdmin(gormDB, cfg); err != nil {
		logger.Fatal("Failed to seed first admin", "error", err)
	}

	ginRouter := SetupRouter(cfg, gormDB)

	address := fmt.Sprintf("%s:%d", cfg.Server.Host, cfg.Server.Port)
	logger.Info("Server starting", "address", address)
	if err := ginRouter.Run(address); err != nil {
		logger.Fatal("Server startup error", "error", err)
	}
}

func openDatabase(driver, dsn string) (*gorm.DB, error) {
	switch driver {
	case "mysql":
		return gorm.Open(mysql.Open(dsn), &gorm.Config{TranslateError: true})
	case "postgres":
		return gorm.Open(postgres.Open(dsn), &gorm.Config{TranslateError: true})
	default:
		return nil, fmt.Errorf("unsupported database driver: %s", driver)
	}
}

func autoMigrate(db *gorm.DB) error {
	return db.AutoMigrate(
		&models.Admin{},
		&models.User{},
		&models.Category{},
		&models.Subcategory{},
		&models.SalesExecutive{},
		&models.Vendor{},
		&models.Notification{},
		&models.UserNotification{},
		&models.Bookmark{},
		&models.VendorRating{},
		&models.StateCity{},
		&models.PageContent{},
		&models.Slider{},
		&models.Feedback{},
	)
}

func SetupRouter(cfg *config.Config, gormDB *gorm.DB) *gin.Engine {
	storageInstance, err := storage.NewStorage(storage.Config{
		Type:       cfg.Storage.Type,
		BasePath:   cfg.Storage.BasePath,
		BaseURL:    cfg.Storage.BaseURL,
		Bucket:     cfg.Storage.Bucket,
		Region:     cfg.Storage.Region,
		AccessKey:  cfg.Storage.AccessKey,
		SecretKey:  cfg.Storage.SecretKey,
		Endpoint:   cfg.Storage.Endpoint,
		PublicRead: cfg.Storage.PublicRead,
	})
	if err != nil {
		logger.Fatal("Failed to initialize storage", "error", err)
	}
	logger.Info("Storage initialized", "type", cfg.Storage.Type)

	tokens := auth.NewTokenManager(cfg.JWT.Secret, time.Duration(cfg.JWT.TTL)*time.Minute)
	dispatcher := newDispatcher(cfg)
	mailer := newMailer(cfg)

	appHandlers := initializeHandlers(cfg, gormDB, storageInstance, tokens, dispatcher, mailer)

	ginRouter := initializeGinRouter()
	routes.RegisterRoutes(ginRouter, appHandlers)

	if cfg.Storage.Type == "local" {
		ginRouter.Static("/uploads", cfg.Storage.BasePath)
	}

	return ginRouter
}

func newDispatcher(cfg *config.Config) *push.Dispatcher {
	var sender push.Sender
	if cfg.Push.CredentialsFile != "" {
		fcm, err := push.NewFCMSender(context.Background(), cfg.Push.CredentialsFile)
		if err != nil {
			logger.Fatal("Failed to initialize FCM", "error", err)
		}
		sender = fcm
		logger.Info("Push sender initialized", "type", "fcm")
	} else {
		sender = push.NewLogSender()
		logger.Warn("Push credentials not configured, using log-only sender")
	}
	return push.NewDispatcher(sender, time.Duration(cfg.Push.DispatchTimeout)*time.Second)
}

func newMailer(cfg *config.Config) email.Provider {
	if cfg.Email.SMTPHost == "" {
		logger.Warn("SMTP not configured, outbound mail disabled")
		return email.NoopProvider{}
	}
	return email.NewSMTPProvider(email.SMTPConfig{
		Host:      cfg.Email.SMTPHost,
		Port:      cfg.Email.SMTPPort,
		Username:  cfg.Email.SMTPUsername,
		Password:  cfg.Email.SMTPPassword,
		FromEmail: cfg.Email.FromEmail,
		FromName:  cfg.Email.FromName,
	})
}

func initializeHandlers(
	cfg *config.Config,
	gormDB *gorm.DB,
	storageInstance storage.Storage,
	tokens *auth.TokenManager,
	dispatcher *push.Dispatcher,
	mailer email.Provider,
) *handlers.AppHandlers {
	userRepo := repositories.NewUserRepository(gormDB)
	adminRepo := repositories.NewAdminRepository(gormDB)
	vendorRepo := repositories.NewVendorRepository(gormDB)
	salesRepo := repositories.NewSalesExecutiveRepository(gormDB)
	categoryRepo := repositories.NewCategoryRepository(gormDB)
	stateCityRepo := repositories.NewStateCityRepository(gormDB)
	notificationRepo := repositories.NewNotificationRepository(gormDB)
	bookmarkRepo := repositories.NewBookmarkRepository(gormDB)
	ratingRepo := repositories.NewRatingRepository(gormDB)
	contentRepo := repositories.NewContentRepository(gormDB)

	authService := services.NewAuthService(userRepo, adminRepo, vendorRepo, salesRepo, tokens)
	userService := services.NewUserService(userRepo)
	vendorService := services.NewVendorService(vendorRepo, ratingRepo, bookmarkRepo)
	notificationService := services.NewNotificationService(notificationRepo, userRepo, dispatcher, storageInstance)
	bookmarkService := services.NewBookmarkService(bookmarkRepo, vendorRepo)
	ratingService := services.NewRatingService(ratingRepo, vendorRepo)
	catalogService := services.NewCatalogService(categoryRepo, stateCityRepo)
	contentService := services.NewContentService(contentRepo, mailer, cfg.Email.AdminEmail)
	salesService := services.NewSalesExecutiveService(salesRepo, vendorRepo)
	adminService := services.NewAdminService(adminRepo)
	uploadService := services.NewUploadService(storageInstance, imageprocessor.NewProcessor(85), cfg.Upload.MaxSize, cfg.Upload.AllowedTypes)

	customValidator := validator.New()
	baseHandler := handlers.NewBaseHandler(customValidator)
	authMW := middleware.AuthMiddleware(tokens)

	return &handlers.AppHandlers{
		AuthHandler:         handlers.NewAuthHandler(baseHandler, authService),
		UserHandler:         handlers.NewUserHandler(baseHandler, userService, authService, bookmarkService, ratingService, authMW),
		VendorHandler:       handlers.NewVendorHandler(baseHandler, vendorService, ratingService, authMW),
		NotificationHandler: handlers.NewNotificationHandler(baseHandler, notificationService, authMW),
		CatalogHandler:      handlers.NewCatalogHandler(baseHandler, catalogService, authMW),
		ContentHandler:      handlers.NewContentHandler(baseHandler, contentService, authMW),
		SalesHandler:        handlers.NewSalesHandler(baseHandler, salesService, authMW),
		AdminHandler:        handlers.NewAdminHandler(baseHandler, adminService, authMW),
		UploadHandler:       handlers.NewUploadHandler(baseHandler, uploadService, authMW),
	}
}

func initializeGinRouter() *gin.Engine {
	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(middleware.RequestIDMiddleware())
	router.Use(middleware.LoggingMiddleware())
	router.Use(middleware.CORSMiddleware())
	return router
}

func seedFirstAdmin(db *gorm.DB, cfg *config.Config) error {
	adminEmail := cfg.FirstAdminEmail
	adminPassword := cfg.FirstAdminPassword

	if adminEmail == "" || adminPassword == "" {
		logger.Warn("First admin credentials not set, skipping admin seeding")
		return nil
	}

	return db.Transaction(func(tx *gorm.DB) error {
		var existing models.Admin
		result := tx.Where("email = ?", adminEmail).First(&existing)
		if result.Error == nil {
			logger.Info("Admin already exists, skipping creation", "email", adminEmail)
			return nil
		}
		if !errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return fmt.Errorf("check for admin: %w", result.Error)
		}

		hash, err := auth.HashPassword(adminPassword)
		if err != nil {
			return fmt.Errorf("hash admin password: %w", err)
		}

		admin := &models.Admin{
			Role:         models.AdminRoleSuper,
			Name:         "Administrator",
			Email:        adminEmail,
			PasswordHash: hash,
		}
		if err := tx.Create(admin).Error; err != nil {
			return fmt.Errorf("create admin: %w", err)
		}

		logger.Info("Created first admin", "email", adminEmail)
		return nil
	})
}
