package di

import (
	"fmt"
	"log/slog"

	"github.com/labstack/echo/v4"

	"admin-service/app/config"
	"admin-service/app/driver/kratos"
	"admin-service/app/driver/postgres"
	"admin-service/app/gateway"
	"admin-service/app/port"
	"admin-service/app/rest"
	"admin-service/app/rest/handlers"
	"admin-service/app/usecase"
)

// Container holds all dependencies for the application
type Container struct {
	Config *config.Config
	Logger *slog.Logger

	// Drivers
	DB           *postgres.DB
	KratosClient *kratos.Client

	// Gateways
	IdentityGateway port.IdentityGateway

	// Usecases
	AdminUsecase port.AdminUsecase
}

// NewContainer creates and initializes a new dependency injection container
func NewContainer(cfg *config.Config, logger *slog.Logger) (*Container, error) {
	container := &Container{
		Config: cfg,
		Logger: logger,
	}

	var err error

	// Initialize database connection
	container.DB, err = postgres.NewConnection(cfg, logger)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize database: %w", err)
	}

	// Initialize Kratos client
	container.KratosClient, err = kratos.NewClient(cfg, logger)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize Kratos client: %w", err)
	}

	// Initialize repositories
	accountRepository := postgres.NewAccountRepository(container.DB.Pool(), logger)
	partnerRequestRepository := postgres.NewPartnerRequestRepository(container.DB.Pool(), logger)

	// Initialize gateways
	identityAdapter := kratos.NewIdentityAdapter(container.KratosClient, logger)
	container.IdentityGateway = gateway.NewIdentityGateway(identityAdapter, logger)

	// Initialize usecases
	container.AdminUsecase = usecase.NewAdminUsecase(
		accountRepository,
		partnerRequestRepository,
		container.IdentityGateway,
		logger,
	)

	logger.Info("Container initialized with full dependency stack")

	return container, nil
}

// CreateRouter creates and returns a fully configured Echo router
func (c *Container) CreateRouter() *echo.Echo {
	routerConfig := rest.RouterConfig{
		Logger:          c.Logger,
		AdminUsecase:    c.AdminUsecase,
		IdentityGateway: c.IdentityGateway,
		HealthChecks: map[string]handlers.DependencyCheck{
			"database": c.DB.HealthCheck,
			"kratos":   c.KratosClient.HealthCheck,
		},
		EnableDebug: c.Config.LogLevel == "debug",
	}

	router := rest.NewRouter(routerConfig)

	c.Logger.Info("Full API router created")
	return router
}

// Close closes all resources
func (c *Container) Close() error {
	if c.DB != nil {
		c.DB.Close()
	}

	// Kratos client doesn't need explicit cleanup

	c.Logger.Info("Container closed successfully")
	return nil
}
