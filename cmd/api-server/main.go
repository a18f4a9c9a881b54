package main

import (
	"fmt"
	"log"
	"os"

	"github.com/gin-gonic/gin"

	"cursohub/database"
	"cursohub/internal/config"
	"cursohub/internal/http-api/handler"
	"cursohub/internal/http-api/middleware"
	"cursohub/internal/http-api/repository"
	"cursohub/internal/http-api/service"
)

func main() {
	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}
	if err := cfg.Validate(); err != nil {
		log.Fatalf("Invalid configuration: %v", err)
	}

	db, err := database.OpenGorm(cfg.DatabaseURL)
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}
	if err := database.AutoMigrate(db); err != nil {
		log.Fatalf("Failed to migrate database: %v", err)
	}

	if err := os.MkdirAll(cfg.UploadDir, 0o755); err != nil {
		log.Fatalf("Failed to create upload directory: %v", err)
	}

	lessonCache, err := repository.NewLessonCache(cfg.RedisAddr, cfg.RedisPassword, cfg.CacheTTL)
	if err != nil {
		// The catalog works without the cache, just slower.
		log.Printf("lesson cache disabled: %v", err)
	}

	// Repositories
	userRepo := repository.NewUserRepository(db)
	refreshTokenRepo := repository.NewRefreshTokenRepository(db)
	if err := refreshTokenRepo.DeleteExpired(); err != nil {
		log.Printf("refresh token cleanup failed: %v", err)
	}
	lessonRepo := repository.NewLessonRepository(db)
	progressRepo := repository.NewProgressRepository(db)
	resourceRepo := repository.NewResourceRepository(db)
	checkoutRepo := repository.NewCheckoutRepository(db)

	// Services
	authService := service.NewAuthService(userRepo, refreshTokenRepo, cfg)
	oauthService := service.NewGoogleOAuthService(cfg, userRepo, authService)
	accessService := service.NewAccessService()
	lessonService := service.NewLessonService(lessonRepo, lessonCache)
	progressService := service.NewProgressService(progressRepo, lessonRepo)
	resourceService := service.NewResourceService(resourceRepo)
	paymentService := service.NewPaymentService(checkoutRepo, userRepo, cfg)

	// Handlers
	authHandler := handler.NewAuthHandler(authService, int64(cfg.AccessTokenTTL.Seconds()))
	oauthHandler := handler.NewOAuthHandler(oauthService, cfg.FrontendURL)
	userHandler := handler.NewUserHandler(userRepo, accessService)
	lessonHandler := handler.NewLessonHandler(lessonService)
	progressHandler := handler.NewProgressHandler(progressService)
	resourceHandler := handler.NewResourceHandler(resourceService)
	uploadHandler := handler.NewUploadHandler(cfg.UploadDir, cfg.UploadMaxSize)
	paymentHandler := handler.NewPaymentHandler(paymentService, userRepo)

	if cfg.IsProduction() {
		gin.SetMode(gin.ReleaseMode)
	}

	router := gin.New()
	router.Use(gin.Logger(), gin.Recovery())
	router.Use(middleware.CORS(cfg.CORSOrigins))

	router.GET("/api", func(c *gin.Context) {
		c.JSON(200, gin.H{"status": "ok", "service": "cursohub-api"})
	})

	// Uploaded files are served straight off disk.
	router.Static("/uploads", cfg.UploadDir)

	// Auth: rate limited, no token required.
	authGroup := router.Group("/api/auth")
	authGroup.Use(middleware.RateLimit(5, 10))
	authHandler.RegisterRoutes(authGroup)
	oauthHandler.RegisterRoutes(router.Group("/auth"))

	// The gate answers for anonymous callers too, so it lives outside
	// AuthMiddleware and resolves the token itself.
	router.GET("/api/access/gate", userHandler.Gate(authService))

	// Payment webhook: authenticated by the shared provider secret.
	paymentHandler.RegisterWebhookRoutes(router.Group("/api/payments"), cfg.PaymentSecretKey)

	// Authenticated surface.
	api := router.Group("/api")
	api.Use(middleware.AuthMiddleware(authService))
	{
		userHandler.RegisterRoutes(api.Group("/users"))
		paymentHandler.RegisterRoutes(api.Group("/payments"))

		// Course content and the progress ledger sit behind the paywall.
		paid := api.Group("")
		paid.Use(middleware.RequirePaid(userRepo, accessService))
		{
			lessonHandler.RegisterRoutes(paid.Group("/lessons"))
			progressHandler.RegisterRoutes(paid.Group("/progress"))
			resourceHandler.RegisterRoutes(paid.Group("/files"))
		}

		// Admin surface.
		admin := api.Group("")
		admin.Use(middleware.RequireAdmin())
		{
			lessonHandler.RegisterAdminRoutes(admin.Group("/lessons"))
			resourceHandler.RegisterAdminRoutes(admin.Group("/files"))
			uploadHandler.RegisterRoutes(admin.Group(""))
		}
	}

	addr := fmt.Sprintf(":%d", cfg.HTTPPort)
	log.Printf("API server listening on %s (env=%s)", addr, cfg.GoEnv)
	if err := router.Run(addr); err != nil {
		log.Fatalf("Failed to start server: %v", err)
	}
}
