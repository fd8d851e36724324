// Package repository persists the domain models. Two backends implement the
// same interfaces: gorm (mysql, sqlite) and the mongo driver.
package repository

import (
	"context"
	"errors"
	"time"

	"resident-records-service/internal/domain/models"
)

var (
	// ErrNotFound is returned when no record matches.
	ErrNotFound = errors.New("record not found")
	// ErrDuplicate is returned when a unique constraint rejects a write.
	ErrDuplicate = errors.New("duplicate key")
)

// InterfaceResidentRepository persists residents keyed by their string id.
type InterfaceResidentRepository interface {
	Create(ctx context.Context, resident *models.Resident) error
	FindAll(ctx context.Context) ([]models.Resident, error)
	FindByID(ctx context.Context, id string) (*models.Resident, error)
	Exists(ctx context.Context, id string) (bool, error)
	// Update applies updates keyed by JSON field name.
	Update(ctx context.Context, id string, updates map[string]interface{}) error
	Delete(ctx context.Context, id string) error
}

// InterfaceAccountRepository persists admin/staff accounts keyed by email.
type InterfaceAccountRepository interface {
	Create(ctx context.Context, account *models.Account) error
	FindByEmail(ctx context.Context, email string) (*models.Account, error)
	FindAll(ctx context.Context) ([]models.Account, error)
	Count(ctx context.Context) (int64, error)
}

// InterfaceQRTokenRepository persists issued QR tokens.
type InterfaceQRTokenRepository interface {
	Create(ctx context.Context, token *models.QRToken) error
	FindByToken(ctx context.Context, token string) (*models.QRToken, error)
	DeleteExpiredBefore(ctx context.Context, cutoff time.Time) (int64, error)
}

// InterfaceScanLogRepository appends scan logs.
type InterfaceScanLogRepository interface {
	Create(ctx context.Context, log *models.ScanLog) error
}

// Store bundles the repositories of one backend with its lifecycle.
type Store interface {
	Residents() InterfaceResidentRepository
	Accounts() InterfaceAccountRepository
	QRTokens() InterfaceQRTokenRepository
	ScanLogs() InterfaceScanLogRepository
	Ping(ctx context.Context) error
	Close() error
}
