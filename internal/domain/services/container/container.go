package container

import (
	"context"
	"sync"
	"time"

	"github.com/go-redis/redis/v8"
	"gorm.io/gorm"

	"github.com/prithu-10/criminal-dbms-project/internal/domain/services"
	"github.com/prithu-10/criminal-dbms-project/internal/infrastructure/config"
	"github.com/prithu-10/criminal-dbms-project/pkg/logger"
)

// ServiceContainer manages dependency injection for all services
type ServiceContainer struct {
	db     *gorm.DB
	config *config.Config
	redis  *redis.Client

	// session plumbing
	jwtService     services.InterfaceJWTService
	sessionService services.InterfaceSessionService

	// business services
	officerService  services.InterfaceOfficerService
	criminalService services.InterfaceCriminalService
	caseService     services.InterfaceCaseService
	locationService services.InterfaceLocationService
	searchService   services.InterfaceSearchService
	reportService   services.InterfaceReportService

	mu sync.RWMutex
}

// NewServiceContainer creates a new service container
func NewServiceContainer(db *gorm.DB, cfg *config.Config, redisClient *redis.Client) *ServiceContainer {
	if db == nil {
		panic("database connection is nil")
	}
	if cfg == nil {
		panic("config is nil")
	}

	// Probe Redis; the session service falls back to process memory when it
	// is unreachable.
	if redisClient != nil {
		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()

		if err := redisClient.Ping(ctx).Err(); err != nil {
			logger.Warning("redis ping failed: %v, sessions fall back to memory", err)
			redisClient = nil
		}
	}

	container := &ServiceContainer{
		db:     db,
		config: cfg,
		redis:  redisClient,
	}
	container.initializeServices()
	return container
}

// initializeServices wires up every service
func (c *ServiceContainer) initializeServices() {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.jwtService = services.NewJWTService(c.config)
	c.sessionService = services.NewSessionService(c.config, c.redis)

	c.officerService = services.NewOfficerService(c.db, c.config)
	c.criminalService = services.NewCriminalService(c.db, c.config)
	c.caseService = services.NewCaseService(c.db, c.config)
	c.locationService = services.NewLocationService(c.db)
	c.searchService = services.NewSearchService(c.db)
	c.reportService = services.NewReportService(c.db)
}

// GetService returns a service by name
func (c *ServiceContainer) GetService(name string) interface{} {
	c.mu.RLock()
	defer c.mu.RUnlock()

	switch name {
	case "config":
		return c.config
	case "db":
		return c.db
	case "jwt":
		return c.jwtService
	case "session":
		return c.sessionService
	case "officer":
		return c.officerService
	case "criminal":
		return c.criminalService
	case "case":
		return c.caseService
	case "location":
		return c.locationService
	case "search":
		return c.searchService
	case "report":
		return c.reportService
	default:
		return nil
	}
}

// GetDB returns the database handle
func (c *ServiceContainer) GetDB() *gorm.DB {
	return c.db
}

// GetConfig returns the application configuration
func (c *ServiceContainer) GetConfig() *config.Config {
	return c.config
}
