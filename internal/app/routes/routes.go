package routes

import (
	"time"

	sentrygin "github.com/getsentry/sentry-go/gin"
	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	_ "resident-records-service/docs"
	"resident-records-service/internal/app/controllers"
	"resident-records-service/internal/app/middleware"
	"resident-records-service/internal/domain/models"
	"resident-records-service/internal/domain/services"
	"resident-records-service/internal/domain/services/container"
	"resident-records-service/internal/infrastructure/config"
	"resident-records-service/pkg/logger"
)

// SetupRouter builds the engine with every route registered
func SetupRouter(serviceContainer *container.ServiceContainer, cfg *config.Config) *gin.Engine {
	r := gin.New()
	r.Use(gin.LoggerWithWriter(logger.Writer))
	r.Use(gin.Recovery())
	r.Use(sentrygin.New(sentrygin.Options{Repanic: true}))
	r.Use(cors.New(corsConfig(cfg)))

	r.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	registerRoutes(r, serviceContainer)
	return r
}

// corsConfig allows the configured browser origins
func corsConfig(cfg *config.Config) cors.Config {
	corsCfg := cors.Config{
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Content-Length", "Accept", "Authorization", "Cache-Control", "X-Requested-With"},
		ExposeHeaders:    []string{"Content-Length", middleware.CacheHeader},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}

	for _, origin := range cfg.CORSAllowOrigins {
		if origin == "*" {
			corsCfg.AllowAllOrigins = true
			corsCfg.AllowCredentials = false
			return corsCfg
		}
	}
	corsCfg.AllowOrigins = cfg.CORSAllowOrigins
	if len(corsCfg.AllowOrigins) == 0 {
		corsCfg.AllowAllOrigins = true
		corsCfg.AllowCredentials = false
	}
	return corsCfg
}

// registerRoutes wires every API route
func registerRoutes(r *gin.Engine, container *container.ServiceContainer) {
	registerPublicRoutes(r, container)
	registerAuthenticatedRoutes(r, container)
}

// registerPublicRoutes wires the routes that need no session
func registerPublicRoutes(r *gin.Engine, container *container.ServiceContainer) {
	health := controllers.NewHealthCheckController(container)
	api := r.Group("/api")
	api.Use(middleware.IPRateLimiter(10, 20))
	api.GET("/ping", health.Ping)
	api.GET("/health", health.Health)

	// QR scanners are anonymous
	api.GET("/verify-qr/:token", controllers.HandleQRFunc(container, "verifyToken"))
	api.GET("/verify-resident/:id", controllers.HandleQRFunc(container, "verifyResident"))
	api.POST("/log-scan", controllers.HandleScanFunc(container, "logScan"))

	// credential endpoints are limited per IP and path
	auth := r.Group("/")
	auth.Use(middleware.CombinedRateLimiter(5, 20))
	auth.POST("/register", controllers.HandleAuthFunc(container, "register"))
	auth.POST("/login", controllers.HandleAuthFunc(container, "login"))
}

// registerAuthenticatedRoutes wires the routes behind a session token
func registerAuthenticatedRoutes(r *gin.Engine, container *container.ServiceContainer) {
	jwtService := container.GetService("jwt").(services.InterfaceJWTService)
	cacheStore := container.GetService("cache").(services.InterfaceCacheStore)
	cache := middleware.Cache(cacheStore, middleware.CacheConfig{Expiration: 1 * time.Minute})

	session := r.Group("/")
	session.Use(middleware.Authenticate(jwtService))
	session.Use(middleware.IPRateLimiter(30, 50))

	// accounts
	session.GET("/users", middleware.RequireRole(models.RoleAdmin), controllers.HandleAuthFunc(container, "getUsers"))

	// residents
	residents := session.Group("/residents")
	{
		residents.GET("", cache, controllers.HandleResidentFunc(container, "getResidents"))
		residents.GET("/stats", cache, controllers.HandleResidentFunc(container, "getStats"))
		residents.GET("/:id", cache, controllers.HandleResidentFunc(container, "getResident"))
		residents.POST("", controllers.HandleResidentFunc(container, "createResident"))
		residents.PUT("/:id", controllers.HandleResidentFunc(container, "updateResident"))
		residents.DELETE("/:id", controllers.HandleResidentFunc(container, "deleteResident"))
	}

	// QR tokens and images
	qr := session.Group("/api/residents/:id")
	{
		qr.POST("/qr-token", controllers.HandleQRFunc(container, "issueToken"))
		qr.GET("/qr-code", middleware.PathRateLimiter(5, 10), controllers.HandleQRFunc(container, "getQRCode"))
	}
}
