package repository

import (
	"context"
	"errors"
	"fmt"
	"time"

	"gorm.io/gorm"

	"resident-records-service/internal/domain/models"
)

// GormStore implements Store over a relational database.
type GormStore struct {
	db    *gorm.DB
	close func() error
}

// NewGormStore wraps db. closeFn releases the underlying pool and may be nil.
func NewGormStore(db *gorm.DB, closeFn func() error) *GormStore {
	return &GormStore{db: db, close: closeFn}
}

func (s *GormStore) Residents() InterfaceResidentRepository { return &gormResidentRepository{db: s.db} }
func (s *GormStore) Accounts() InterfaceAccountRepository   { return &gormAccountRepository{db: s.db} }
func (s *GormStore) QRTokens() InterfaceQRTokenRepository   { return &gormQRTokenRepository{db: s.db} }
func (s *GormStore) ScanLogs() InterfaceScanLogRepository   { return &gormScanLogRepository{db: s.db} }

// Ping checks the connection.
func (s *GormStore) Ping(ctx context.Context) error {
	sqlDB, err := s.db.DB()
	if err != nil {
		return err
	}
	return sqlDB.PingContext(ctx)
}

// Close releases the pool.
func (s *GormStore) Close() error {
	if s.close == nil {
		return nil
	}
	return s.close()
}

// translate maps gorm errors onto the package sentinels.
func translate(err error) error {
	switch {
	case err == nil:
		return nil
	case errors.Is(err, gorm.ErrRecordNotFound):
		return ErrNotFound
	case errors.Is(err, gorm.ErrDuplicatedKey):
		return fmt.Errorf("%w: %v", ErrDuplicate, err)
	}
	return err
}

type gormResidentRepository struct {
	db *gorm.DB
}

func (r *gormResidentRepository) Create(ctx context.Context, resident *models.Resident) error {
	if err := r.db.WithContext(ctx).Create(resident).Error; err != nil {
		return translate(err)
	}
	return nil
}

func (r *gormResidentRepository) FindAll(ctx context.Context) ([]models.Resident, error) {
	var residents []models.Resident
	if err := r.db.WithContext(ctx).Order("created_at ASC").Find(&residents).Error; err != nil {
		return nil, err
	}
	return residents, nil
}

func (r *gormResidentRepository) FindByID(ctx context.Context, id string) (*models.Resident, error) {
	var resident models.Resident
	if err := r.db.WithContext(ctx).Where("id = ?", id).First(&resident).Error; err != nil {
		return nil, translate(err)
	}
	return &resident, nil
}

func (r *gormResidentRepository) Exists(ctx context.Context, id string) (bool, error) {
	var count int64
	if err := r.db.WithContext(ctx).Model(&models.Resident{}).Where("id = ?", id).Count(&count).Error; err != nil {
		return false, err
	}
	return count > 0, nil
}

func (r *gormResidentRepository) Update(ctx context.Context, id string, updates map[string]interface{}) error {
	columns := make(map[string]interface{}, len(updates))
	for name, value := range updates {
		column, ok := models.ResidentColumn(name)
		if !ok {
			return fmt.Errorf("unknown resident field %q", name)
		}
		columns[column] = value
	}

	result := r.db.WithContext(ctx).Model(&models.Resident{}).Where("id = ?", id).Updates(columns)
	if result.Error != nil {
		return translate(result.Error)
	}
	if result.RowsAffected == 0 {
		// mysql reports zero affected rows when values are unchanged
		exists, err := r.Exists(ctx, id)
		if err != nil {
			return err
		}
		if !exists {
			return ErrNotFound
		}
	}
	return nil
}

func (r *gormResidentRepository) Delete(ctx context.Context, id string) error {
	result := r.db.WithContext(ctx).Where("id = ?", id).Delete(&models.Resident{})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}

type gormAccountRepository struct {
	db *gorm.DB
}

func (r *gormAccountRepository) Create(ctx context.Context, account *models.Account) error {
	return translate(r.db.WithContext(ctx).Create(account).Error)
}

func (r *gormAccountRepository) FindByEmail(ctx context.Context, email string) (*models.Account, error) {
	var account models.Account
	if err := r.db.WithContext(ctx).Where("email = ?", email).First(&account).Error; err != nil {
		return nil, translate(err)
	}
	return &account, nil
}

func (r *gormAccountRepository) FindAll(ctx context.Context) ([]models.Account, error) {
	var accounts []models.Account
	if err := r.db.WithContext(ctx).Omit("password").Order("created_at ASC").Find(&accounts).Error; err != nil {
		return nil, err
	}
	return accounts, nil
}

func (r *gormAccountRepository) Count(ctx context.Context) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&models.Account{}).Count(&count).Error
	return count, err
}

type gormQRTokenRepository struct {
	db *gorm.DB
}

func (r *gormQRTokenRepository) Create(ctx context.Context, token *models.QRToken) error {
	return translate(r.db.WithContext(ctx).Create(token).Error)
}

func (r *gormQRTokenRepository) FindByToken(ctx context.Context, token string) (*models.QRToken, error) {
	var qrToken models.QRToken
	if err := r.db.WithContext(ctx).Where("token = ?", token).First(&qrToken).Error; err != nil {
		return nil, translate(err)
	}
	return &qrToken, nil
}

func (r *gormQRTokenRepository) DeleteExpiredBefore(ctx context.Context, cutoff time.Time) (int64, error) {
	result := r.db.WithContext(ctx).Where("expiration < ?", cutoff).Delete(&models.QRToken{})
	return result.RowsAffected, result.Error
}

type gormScanLogRepository struct {
	db *gorm.DB
}

func (r *gormScanLogRepository) Create(ctx context.Context, log *models.ScanLog) error {
	return translate(r.db.WithContext(ctx).Create(log).Error)
}
