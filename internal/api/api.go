package api

import (
	"context"
	"net/http"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	log "github.com/sirupsen/logrus"

	"todo-list/internal/config"
	"todo-list/internal/services"
)

// HealthChecker reports whether the backing store is reachable
type HealthChecker interface {
	Ping(ctx context.Context) error
}

// New builds the Echo instance with middleware and every route registered.
func New(cfg *config.Config, service services.TaskService, store HealthChecker, logger *log.Logger) *echo.Echo {
	e := echo.New()
	e.HideBanner = true
	e.HidePort = true
	e.JSONSerializer = SonicSerializer{}
	e.HTTPErrorHandler = ErrorHandler(logger)

	e.Pre(middleware.RemoveTrailingSlash())
	e.Use(middleware.RequestIDWithConfig(middleware.RequestIDConfig{
		Generator: uuid.NewString,
	}))
	e.Use(AccessLog(logger))
	e.Use(middleware.Recover())
	e.Use(middleware.CORSWithConfig(middleware.CORSConfig{
		AllowOrigins: cfg.Server.AllowOrigins,
		AllowMethods: []string{http.MethodGet, http.MethodPost, http.MethodPut, http.MethodDelete, http.MethodOptions},
		AllowHeaders: []string{echo.HeaderOrigin, echo.HeaderContentType, echo.HeaderAccept, echo.HeaderXRequestID},
	}))
	if cfg.Server.BodyLimit != "" {
		e.Use(middleware.BodyLimit(cfg.Server.BodyLimit))
	}

	Register(e, service, store, logger)
	return e
}

// Register wires up all API routes on the provided Echo instance.
func Register(e *echo.Echo, service services.TaskService, store HealthChecker, logger *log.Logger) {
	h := &handlers{service: service, logger: logger}

	g := e.Group("/api/todos")
	g.GET("", h.listTasks)
	g.POST("", h.createTask)
	// Static segment first so it can never be captured as an :id
	g.PUT("/reorder", h.reorderTasks)
	g.PUT("/:id", h.updateTask)
	g.DELETE("/:id", h.deleteTask)

	e.GET("/healthz", healthz(store))
}
