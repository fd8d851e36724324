// @title           Resident Records Service API
// @version         1.0
// @description     Resident records, QR verification and scan logging for barangay offices

// @contact.name   API Support

// @license.name  Apache 2.0
// @license.url   http://www.apache.org/licenses/LICENSE-2.0.html

// @BasePath  /

// @securityDefinitions.apikey  BearerAuth
// @in                          header
// @name                        Authorization
// @description                 Enter the token with the `Bearer ` prefix
package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"runtime"
	"syscall"
	"time"

	"github.com/joho/godotenv"

	"resident-records-service/internal/app/routes"
	"resident-records-service/internal/domain/repository"
	"resident-records-service/internal/domain/services"
	"resident-records-service/internal/domain/services/container"
	"resident-records-service/internal/infrastructure/config"
	"resident-records-service/internal/infrastructure/database"
	"resident-records-service/internal/infrastructure/mongodb"
	"resident-records-service/internal/infrastructure/mqtt"
	"resident-records-service/internal/infrastructure/sentry"
	"resident-records-service/internal/workers"
	Logger "resident-records-service/pkg/logger"
)

func main() {
	if err := Logger.SetupLogger("logs"); err != nil {
		fmt.Printf("failed to set up logging: %v\n", err)
		os.Exit(1)
	}

	// variables may already be set by the environment
	if err := godotenv.Load(); err != nil {
		Logger.Warning("could not load .env file: %v", err)
	} else {
		Logger.Info(".env file loaded")
	}

	cfg := config.GetConfig()

	sentryService := sentry.NewSentryService(cfg)
	defer sentryService.Close()

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	store, err := openStore(ctx, cfg)
	if err != nil {
		sentryService.CaptureException(err)
		Logger.Error("failed to open store: %v", err)
		sentryService.Close()
		os.Exit(1)
	}
	defer store.Close()

	var opts []container.Option
	if cfg.RedisEnabled {
		redisService := services.NewRedisService(cfg)
		defer redisService.Close()
		opts = append(opts, container.WithRedis(redisService))
	}
	if cfg.MQTTBrokerURL != "" {
		publisher := mqtt.NewPublisher(cfg)
		if err := publisher.Connect(ctx, 3); err != nil {
			// scans are dropped until the broker is reachable
			Logger.Warning("MQTT broker unavailable, retrying in background: %v", err)
			go func() {
				if err := publisher.Connect(ctx, 0); err != nil && ctx.Err() == nil {
					Logger.Error("MQTT connect: %v", err)
				}
			}()
		}
		defer publisher.Close()
		opts = append(opts, container.WithPublisher(publisher))
	}

	serviceContainer := container.NewServiceContainer(store, cfg, opts...)

	authService := serviceContainer.GetService("auth").(services.InterfaceAuthService)
	if created, err := authService.EnsureAdmin(ctx, cfg.DefaultAdminEmail, cfg.DefaultAdminPassword); err != nil {
		Logger.Error("failed to seed admin account: %v", err)
	} else if !created && cfg.DefaultAdminPassword == "" {
		Logger.Info("DEFAULT_ADMIN_PASSWORD not set, admin seeding skipped")
	}

	qrTokenService := serviceContainer.GetService("qr_token").(services.InterfaceQRTokenService)
	sweeper := workers.NewTokenSweeper(qrTokenService, cfg.TokenSweepInterval, cfg.QRTokenRetention)
	sweeper.Start(ctx)

	r := routes.SetupRouter(serviceContainer, cfg)
	printSystemInfo(cfg)

	srv := &http.Server{
		Addr:              "0.0.0.0:" + cfg.ServerPort,
		Handler:           r,
		ReadHeaderTimeout: 10 * time.Second,
	}

	go func() {
		Logger.Info("server listening on http://0.0.0.0:%s", cfg.ServerPort)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			Logger.Error("server stopped: %v", err)
			stop()
		}
	}()

	<-ctx.Done()
	Logger.Info("shutting down")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		Logger.Error("graceful shutdown failed: %v", err)
	}
	sweeper.Wait()
}

// openStore connects the backend selected by STORE_DRIVER
func openStore(ctx context.Context, cfg *config.Config) (repository.Store, error) {
	switch cfg.StoreDriver {
	case config.StoreMongo:
		client, err := mongodb.Connect(ctx, cfg)
		if err != nil {
			return nil, err
		}
		store := repository.NewMongoStore(client.Database, client.Close)
		if err := store.EnsureIndexes(ctx); err != nil {
			_ = client.Close()
			return nil, err
		}
		return store, nil

	case config.StoreMySQL, config.StoreSQLite:
		pool, err := database.NewConnectionPool(cfg)
		if err != nil {
			return nil, err
		}
		if err := database.Migrate(pool.GetDB(), cfg.DBMigrationMode); err != nil {
			_ = pool.Close()
			return nil, err
		}
		if stats, err := pool.Stats(); err == nil {
			Logger.Info("database pool: %+v", stats)
		}
		return repository.NewGormStore(pool.GetDB(), pool.Close), nil

	default:
		return nil, fmt.Errorf("unknown STORE_DRIVER %q", cfg.StoreDriver)
	}
}

// printSystemInfo logs the runtime footprint at startup
func printSystemInfo(cfg *config.Config) {
	Logger.Info("environment: %s, store: %s", cfg.EnvType, cfg.StoreDriver)
	Logger.Info("CPU cores: %d, goroutines: %d", runtime.NumCPU(), runtime.NumGoroutine())

	var m runtime.MemStats
	runtime.ReadMemStats(&m)
	Logger.Info("memory: Alloc=%v MiB, Sys=%v MiB", m.Alloc/1024/1024, m.Sys/1024/1024)
}
