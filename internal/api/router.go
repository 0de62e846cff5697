package api

import (
	"github.com/labstack/echo-contrib/echoprometheus"
	"github.com/labstack/echo/v4"
	echomiddleware "github.com/labstack/echo/v4/middleware"
	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/JuanFernandoBallesterosMaciasUIS/rutinia1/internal/api/handler"
	"github.com/JuanFernandoBallesterosMaciasUIS/rutinia1/internal/api/middleware"
	"github.com/JuanFernandoBallesterosMaciasUIS/rutinia1/internal/core/service"
	"github.com/JuanFernandoBallesterosMaciasUIS/rutinia1/internal/core/token"
	mongostore "github.com/JuanFernandoBallesterosMaciasUIS/rutinia1/internal/infrastructure/db/mongo"
	redisstore "github.com/JuanFernandoBallesterosMaciasUIS/rutinia1/internal/infrastructure/db/redis"
	"github.com/JuanFernandoBallesterosMaciasUIS/rutinia1/internal/pkg/config"
)

// NewRouter builds and returns the Echo instance with all routes registered.
func NewRouter(db *mongo.Database, rdb *redis.Client, codec *token.Codec, cfg *config.Config, log zerolog.Logger) *echo.Echo {
	e := echo.New()
	e.HideBanner = true
	e.Validator = handler.NewValidator()
	e.HTTPErrorHandler = NewHTTPErrorHandler(log)

	// --- Global middleware ---
	e.Use(echomiddleware.Recover())
	e.Use(echomiddleware.RequestID())
	e.Use(echomiddleware.Logger())
	e.Use(echoprometheus.NewMiddleware("rutinia"))

	// --- Dependencies ---
	userRepo := mongostore.NewUserRepository(db)
	categoryRepo := mongostore.NewCategoryRepository(db)
	throttle := redisstore.NewLoginLimiter(rdb, cfg.LoginMaxAttempts, cfg.LoginAttemptWindow)

	authService := service.NewAuthService(userRepo, codec, log)
	categoryService := service.NewCategoryService(categoryRepo, log)

	authHandler := handler.NewAuthHandler(authService, throttle, log)
	categoryHandler := handler.NewCategoryHandler(categoryService)
	authMiddleware := middleware.Auth(codec, userRepo)

	// --- Auth routes ---
	e.POST("/api/auth/login", authHandler.Login)
	e.POST("/api/auth/register", authHandler.Register)
	e.GET("/api/auth/validate", authHandler.Validate)

	// --- Category routes (authenticated; delete is admin-only) ---
	categories := e.Group("/api/categories", authMiddleware)
	categories.GET("", categoryHandler.List)
	categories.GET("/:id", categoryHandler.Get)
	categories.POST("", categoryHandler.Create)
	categories.PUT("/:id", categoryHandler.Update)
	categories.DELETE("/:id", categoryHandler.Delete, middleware.RBAC("ROLE_ADMIN"))

	// --- Health probes and metrics (no auth required) ---
	healthHandler := handler.NewHealthHandler()
	healthDepsHandler := handler.NewHealthDependenciesHandler(db, rdb)

	e.GET("/health", healthHandler.Liveness)            // liveness  – is the process alive?
	e.GET("/health/ready", healthDepsHandler.Readiness) // readiness – are dependencies up?
	e.GET("/metrics", echoprometheus.NewHandler())

	return e
}
