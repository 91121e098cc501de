package api

import (
	"time"

	"github.com/labstack/echo-contrib/echoprometheus"
	"github.com/labstack/echo/v4"
	echomiddleware "github.com/labstack/echo/v4/middleware"
	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"
	echoswagger "github.com/swaggo/echo-swagger"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/taskboard/taskboard-api/internal/api/handler"
	"github.com/taskboard/taskboard-api/internal/api/middleware"
	"github.com/taskboard/taskboard-api/internal/core/service"
	mongodb "github.com/taskboard/taskboard-api/internal/infrastructure/db/mongo"
	redisdb "github.com/taskboard/taskboard-api/internal/infrastructure/db/redis"
)

// Options carries the runtime settings the router needs beyond its
// infrastructure handles.
type Options struct {
	JWTSecret string
	TokenTTL  time.Duration
}

// NewRouter builds and returns the Echo instance with all routes registered.
func NewRouter(db *mongo.Database, rdb *redis.Client, log zerolog.Logger, opts Options) *echo.Echo {
	e := echo.New()
	e.HideBanner = true
	e.Validator = handler.NewValidator()
	e.HTTPErrorHandler = NewHTTPErrorHandler(log)

	// --- Global middleware ---
	e.Use(echomiddleware.Recover())
	e.Use(echomiddleware.RequestID())
	e.Use(echomiddleware.Logger())
	e.Use(echoprometheus.NewMiddleware("taskboard"))

	// --- Repositories ---
	userRepo := mongodb.NewUserRepository(db)
	projectRepo := mongodb.NewProjectRepository(db)
	taskRepo := mongodb.NewTaskRepository(db)
	revocations := redisdb.NewRevocationStore(rdb)

	// --- Services ---
	tokenService := service.NewTokenService(opts.JWTSecret, opts.TokenTTL, revocations)
	authService := service.NewAuthService(userRepo, tokenService, revocations, log)
	userService := service.NewUserService(userRepo, log)
	projectService := service.NewProjectService(projectRepo, taskRepo, log)
	taskService := service.NewTaskService(taskRepo, projectRepo, log)
	statsService := service.NewStatsService(userRepo, projectRepo, taskRepo)

	// --- Handlers ---
	authHandler := handler.NewAuthHandler(authService)
	userHandler := handler.NewUserHandler(userService)
	projectHandler := handler.NewProjectHandler(projectService)
	taskHandler := handler.NewTaskHandler(taskService)
	adminHandler := handler.NewAdminHandler(statsService)

	authRequired := middleware.Auth(tokenService)
	adminOnly := middleware.AdminOnly()

	// --- Auth routes ---
	auth := e.Group("/v1/auth")
	auth.POST("/signup", authHandler.Signup)
	auth.POST("/signin", authHandler.Signin)
	auth.POST("/refresh", authHandler.Refresh, authRequired)
	auth.POST("/logout", authHandler.Logout, authRequired)

	// --- Profile routes ---
	users := e.Group("/v1/users", authRequired)
	users.GET("/me", userHandler.Me)
	users.PUT("/me", userHandler.UpdateMe)

	// --- Project routes ---
	projects := e.Group("/v1/projects", authRequired)
	projects.POST("", projectHandler.Create)
	projects.GET("", projectHandler.List)
	projects.GET("/:id", projectHandler.Get)
	projects.PUT("/:id", projectHandler.Update)
	projects.DELETE("/:id", projectHandler.Delete)

	// --- Task routes ---
	tasks := e.Group("/v1/tasks", authRequired)
	tasks.POST("", taskHandler.Create)
	tasks.GET("", taskHandler.List)
	tasks.GET("/:id", taskHandler.Get)
	tasks.PUT("/:id", taskHandler.Update)
	tasks.DELETE("/:id", taskHandler.Delete)

	// --- Admin routes ---
	admin := e.Group("/v1/admin", authRequired, adminOnly)
	admin.GET("/users", userHandler.ListUsers)
	admin.GET("/stats", adminHandler.Stats)

	// --- Observability and docs (no auth required) ---
	e.GET("/metrics", echoprometheus.NewHandler())
	e.GET("/swagger/*", echoswagger.WrapHandler)

	// --- Health probes (no auth required) ---
	healthHandler := handler.NewHealthHandler()
	readinessHandler := handler.NewReadinessHandler(db, rdb)

	e.GET("/health", healthHandler.Liveness)
	e.GET("/health/ready", readinessHandler.Readiness)

	return e
}
