package database

import (
	"context"
	"fmt"
	"time"

	"gorm.io/driver/mysql"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"resident-records-service/internal/domain/models"
	"resident-records-service/internal/infrastructure/config"
	Logger "resident-records-service/pkg/logger"
)

// ConnectionPool owns the gorm handle and its sql.DB pool settings.
type ConnectionPool struct {
	DB              *gorm.DB
	MaxIdleConns    int
	MaxOpenConns    int
	ConnMaxLifetime time.Duration
	ConnMaxIdleTime time.Duration
}

// NewConnectionPool opens the relational store selected by cfg.StoreDriver.
func NewConnectionPool(cfg *config.Config) (*ConnectionPool, error) {
	var dialector gorm.Dialector
	switch cfg.StoreDriver {
	case config.StoreMySQL:
		dialector = mysql.Open(cfg.GetDSN())
	case config.StoreSQLite:
		dialector = sqlite.Open(cfg.SQLitePath)
	default:
		return nil, fmt.Errorf("unsupported relational driver %q", cfg.StoreDriver)
	}

	db, err := Open(dialector, logger.Warn)
	if err != nil {
		return nil, err
	}

	pool := &ConnectionPool{
		DB:              db,
		MaxIdleConns:    10,
		MaxOpenConns:    100,
		ConnMaxLifetime: 1 * time.Hour,
		ConnMaxIdleTime: 30 * time.Minute,
	}
	if cfg.StoreDriver == config.StoreSQLite {
		// sqlite serialises writers; one connection avoids SQLITE_BUSY.
		pool.MaxIdleConns = 1
		pool.MaxOpenConns = 1
	}

	if err := pool.ConfigurePool(); err != nil {
		pool.Close()
		return nil, err
	}

	return pool, nil
}

// Open creates a gorm handle with driver errors translated, so unique
// violations surface as gorm.ErrDuplicatedKey.
func Open(dialector gorm.Dialector, level logger.LogLevel) (*gorm.DB, error) {
	db, err := gorm.Open(dialector, &gorm.Config{
		Logger:         logger.Default.LogMode(level),
		TranslateError: true,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}
	return db, nil
}

// ConfigurePool applies the pool limits and pings the database.
func (p *ConnectionPool) ConfigurePool() error {
	sqlDB, err := p.DB.DB()
	if err != nil {
		return err
	}

	sqlDB.SetMaxIdleConns(p.MaxIdleConns)
	sqlDB.SetMaxOpenConns(p.MaxOpenConns)
	sqlDB.SetConnMaxLifetime(p.ConnMaxLifetime)
	sqlDB.SetConnMaxIdleTime(p.ConnMaxIdleTime)

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := sqlDB.PingContext(ctx); err != nil {
		return fmt.Errorf("ping database: %w", err)
	}

	Logger.Info("database pool configured: max idle=%d, max open=%d", p.MaxIdleConns, p.MaxOpenConns)
	return nil
}

// Stats returns sql.DB pool statistics.
func (p *ConnectionPool) Stats() (map[string]interface{}, error) {
	sqlDB, err := p.DB.DB()
	if err != nil {
		return nil, err
	}

	stats := sqlDB.Stats()
	return map[string]interface{}{
		"max_open_connections": stats.MaxOpenConnections,
		"open_connections":     stats.OpenConnections,
		"in_use":               stats.InUse,
		"idle":                 stats.Idle,
		"wait_count":           stats.WaitCount,
		"wait_duration":        stats.WaitDuration.String(),
	}, nil
}

// Close releases the pool.
func (p *ConnectionPool) Close() error {
	sqlDB, err := p.DB.DB()
	if err != nil {
		return err
	}
	return sqlDB.Close()
}

// GetDB returns the gorm handle.
func (p *ConnectionPool) GetDB() *gorm.DB {
	return p.DB
}

// AutoMigrate creates missing tables and columns. It never drops anything.
func AutoMigrate(db *gorm.DB) error {
	if err := db.AutoMigrate(
		&models.Resident{},
		&models.Account{},
		&models.QRToken{},
		&models.ScanLog{},
	); err != nil {
		return fmt.Errorf("auto migrate: %w", err)
	}
	return nil
}

// DropAndRecreate drops every table owned by the service and migrates again.
func DropAndRecreate(db *gorm.DB) error {
	if err := db.Migrator().DropTable(
		&models.ScanLog{},
		&models.QRToken{},
		&models.Account{},
		&models.Resident{},
	); err != nil {
		return fmt.Errorf("drop tables: %w", err)
	}
	return AutoMigrate(db)
}

// Migrate runs the migration selected by mode ("drop" or the default "auto").
func Migrate(db *gorm.DB, mode string) error {
	if mode == "drop" {
		Logger.Warning("running in drop mode, every table will be recreated")
		return DropAndRecreate(db)
	}
	return AutoMigrate(db)
}
