package container

import (
	"context"
	"sync"
	"time"

	"resident-records-service/internal/domain/repository"
	"resident-records-service/internal/domain/services"
	"resident-records-service/internal/infrastructure/config"
	"resident-records-service/pkg/logger"
)

// ServiceContainer wires the services over one store
type ServiceContainer struct {
	store  repository.Store
	config *config.Config

	// infrastructure
	jwtService   services.InterfaceJWTService
	redisService services.InterfaceRedisService
	cacheStore   services.InterfaceCacheStore
	publisher    services.InterfaceEventPublisher

	// domain
	residentService services.InterfaceResidentService
	qrTokenService  services.InterfaceQRTokenService
	authService     services.InterfaceAuthService
	scanLogService  services.InterfaceScanLogService
	statsService    services.InterfaceStatsService

	mu sync.RWMutex
}

// Option customises a container before its services are built
type Option func(*ServiceContainer)

// WithRedis backs the response cache with redis
func WithRedis(redisService services.InterfaceRedisService) Option {
	return func(c *ServiceContainer) { c.redisService = redisService }
}

// WithPublisher forwards scan events to publisher
func WithPublisher(publisher services.InterfaceEventPublisher) Option {
	return func(c *ServiceContainer) { c.publisher = publisher }
}

// NewServiceContainer creates a new service container
func NewServiceContainer(store repository.Store, cfg *config.Config, opts ...Option) *ServiceContainer {
	if store == nil {
		panic("store is nil")
	}
	if cfg == nil {
		panic("config is nil")
	}

	container := &ServiceContainer{
		store:  store,
		config: cfg,
	}
	for _, opt := range opts {
		opt(container)
	}

	if container.redisService != nil {
		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := container.redisService.Ping(ctx); err != nil {
			logger.Warning("redis ping failed: %v, falling back to in-memory cache", err)
			container.redisService = nil
		}
	}

	container.initializeServices()
	return container
}

// initializeServices builds every service
func (c *ServiceContainer) initializeServices() {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.jwtService = services.NewJWTService(c.config)

	if c.redisService != nil {
		c.cacheStore = services.NewRedisCacheStore(c.redisService)
	} else {
		c.cacheStore = services.NewMemoryCacheStore()
	}

	c.residentService = services.NewResidentService(c.store.Residents())
	c.qrTokenService = services.NewQRTokenService(c.store.Residents(), c.store.QRTokens(), c.config)
	c.authService = services.NewAuthService(c.store.Accounts(), c.jwtService)
	c.scanLogService = services.NewScanLogService(c.store.ScanLogs(), c.publisher)
	c.statsService = services.NewStatsService(c.store.Residents())
}

// GetService returns the service registered under name, nil if unknown
func (c *ServiceContainer) GetService(name string) interface{} {
	c.mu.RLock()
	defer c.mu.RUnlock()

	switch name {
	case "config":
		return c.config
	case "store":
		return c.store
	case "jwt":
		return c.jwtService
	case "redis":
		return c.redisService
	case "cache":
		return c.cacheStore
	case "resident":
		return c.residentService
	case "qr_token":
		return c.qrTokenService
	case "auth":
		return c.authService
	case "scan_log":
		return c.scanLogService
	case "stats":
		return c.statsService
	default:
		return nil
	}
}

// GetStore returns the backing store
func (c *ServiceContainer) GetStore() repository.Store {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.store
}
