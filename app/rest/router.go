package rest

import (
	"log/slog"

	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"

	"admin-service/app/port"
	"admin-service/app/rest/handlers"
	custommw "admin-service/app/rest/middleware"
)

// RouterConfig holds router configuration
type RouterConfig struct {
	Logger          *slog.Logger
	AdminUsecase    port.AdminUsecase
	IdentityGateway port.IdentityGateway
	HealthChecks    map[string]handlers.DependencyCheck
	EnableDebug     bool
}

// NewRouter creates and configures the Echo router
func NewRouter(config RouterConfig) *echo.Echo {
	// Create Echo instance
	e := echo.New()

	// Configure Echo
	e.HideBanner = true
	e.Debug = config.EnableDebug

	// Create handlers
	adminHandler := handlers.NewAdminHandler(config.AdminUsecase, config.Logger)
	healthHandler := handlers.NewHealthHandler(config.Logger, config.HealthChecks)

	// Create middleware
	authMiddleware := custommw.NewAuthMiddleware(config.IdentityGateway, config.Logger)
	rateLimiter := custommw.NewRateLimiter()

	// Global middleware
	e.Use(middleware.Logger())
	e.Use(middleware.Recover())
	e.Use(middleware.RequestID())
	e.Use(custommw.DefaultCORS())
	e.Use(custommw.SecurityHeaders())
	e.Use(rateLimiter.RateLimit())

	// API versioning
	v1 := e.Group("/v1")

	// Health endpoints (no auth required)
	v1.GET("/health", healthHandler.HealthCheck)
	v1.GET("/ready", healthHandler.ReadinessCheck)
	v1.GET("/live", healthHandler.LivenessCheck)

	// Admin endpoints (require a resolvable session; the usecase
	// decides whether the caller is privileged enough)
	admin := v1.Group("/admin")
	admin.Use(authMiddleware.RequireSession())

	admin.POST("/accounts/delete", adminHandler.DeleteUserAccount)
	admin.POST("/accounts/role", adminHandler.UpdateUserRole)
	admin.POST("/partner-requests/approve", adminHandler.ApprovePartnerRequest)
	admin.POST("/staff", adminHandler.CreateStaffAccount)

	return e
}
