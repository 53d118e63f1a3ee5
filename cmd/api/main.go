package main

import (
	"log"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/limiter"
	fiberlogger "github.com/gofiber/fiber/v2/middleware/logger"
	"go.uber.org/zap"

	"github.com/photoshare/photoshare-backend/internal/config"
	"github.com/photoshare/photoshare-backend/internal/handler"
	"github.com/photoshare/photoshare-backend/internal/middleware"
	"github.com/photoshare/photoshare-backend/internal/repository"
	"github.com/photoshare/photoshare-backend/internal/service"
	"github.com/photoshare/photoshare-backend/pkg/database"
	"github.com/photoshare/photoshare-backend/pkg/logger"
	"github.com/photoshare/photoshare-backend/pkg/session"
	"github.com/photoshare/photoshare-backend/pkg/storage"
	"github.com/photoshare/photoshare-backend/pkg/utils"
)

func main() {
	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatal("Failed to load config: ", err)
	}

	zlog, err := logger.New(cfg.LogLevel)
	if err != nil {
		log.Fatal("Failed to initialize logger: ", err)
	}
	defer zlog.Sync()

	db, err := database.NewDatabase(cfg.DatabaseURL)
	if err != nil {
		zlog.Fatal("failed to initialize database", zap.Error(err))
	}

	// Session store
	var sessions session.Store
	switch cfg.SessionBackend {
	case config.SessionBackendDatabase:
		sessions, err = session.NewGormStore(db, zlog)
		if err != nil {
			zlog.Fatal("failed to initialize session store", zap.Error(err))
		}
	default:
		sessions = session.NewMemoryStore()
	}

	// Blob storage
	var blobs storage.BlobStorage
	switch cfg.StorageBackend {
	case config.StorageBackendS3:
		blobs, err = storage.NewS3Storage(storage.S3Config{
			Endpoint:        cfg.S3.Endpoint,
			Region:          cfg.S3.Region,
			Bucket:          cfg.S3.Bucket,
			AccessKeyID:     cfg.S3.AccessKeyID,
			SecretAccessKey: cfg.S3.SecretAccessKey,
		})
	default:
		blobs, err = storage.NewLocalStorage(cfg.ImagesDir)
	}
	if err != nil {
		zlog.Fatal("failed to initialize blob storage", zap.Error(err))
	}

	// Repositories
	userRepo := repository.NewUserRepository(db)
	photoRepo := repository.NewPhotoRepository(db)
	schemaInfoRepo := repository.NewSchemaInfoRepository(db)

	// Services
	authService := service.NewAuthService(userRepo, sessions, cfg.SessionTTL, zlog)
	userService := service.NewUserService(userRepo)
	photoService := service.NewPhotoService(photoRepo, userRepo, blobs, cfg.MaxUploadBytes, zlog)
	diagService := service.NewDiagService(schemaInfoRepo, userRepo, photoRepo)

	validator := utils.NewValidator()

	// Handlers
	authHandler := handler.NewAuthHandler(authService, validator)
	userHandler := handler.NewUserHandler(userService)
	photoHandler := handler.NewPhotoHandler(photoService)
	testHandler := handler.NewTestHandler(diagService)

	app := fiber.New(fiber.Config{
		ReadTimeout:  30 * time.Second,
		WriteTimeout: 30 * time.Second,
		BodyLimit:    int(cfg.MaxUploadBytes) + 1024*1024,
	})

	app.Use(cors.New(cors.Config{
		AllowOrigins:     "http://localhost:3000, http://localhost:5173",
		AllowHeaders:     "Origin, Content-Type, Accept",
		AllowMethods:     "GET, POST",
		AllowCredentials: true,
	}))
	app.Use(fiberlogger.New())
	app.Use(limiter.New(limiter.Config{
		Max:        120,
		Expiration: 1 * time.Minute,
		KeyGenerator: func(c *fiber.Ctx) string {
			return c.IP()
		},
	}))

	// Anonymous routes must be registered before the session gate.
	app.Get("/", testHandler.Liveness)
	app.Get("/test/:p1?", testHandler.Test)
	app.Post("/admin/login", authHandler.Login)
	app.Post("/admin/logout", authHandler.Logout)
	app.Post("/user", authHandler.Register)
	if cfg.StorageBackend == config.StorageBackendLocal {
		app.Static("/images", cfg.ImagesDir)
	}

	app.Use(middleware.SessionAuth(sessions))

	app.Get("/user/list", userHandler.List)
	app.Get("/user/:id", userHandler.GetByID)
	app.Get("/photosOfUser/:id", photoHandler.PhotosOfUser)
	app.Post("/commentsOfPhoto/:photoId", photoHandler.AddComment)
	app.Post("/photos/new", photoHandler.Upload)

	zlog.Info("starting server", zap.String("port", cfg.Port))
	if err := app.Listen(":" + cfg.Port); err != nil {
		zlog.Fatal("server exited", zap.Error(err))
	}
}
