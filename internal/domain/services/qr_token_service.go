package services

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	qrcode "github.com/skip2/go-qrcode"

	"resident-records-service/internal/domain/models"
	"resident-records-service/internal/domain/repository"
	"resident-records-service/internal/error/code"
	"resident-records-service/internal/infrastructure/config"
)

// QR image sizes in pixels.
const (
	DefaultQRSize = 256
	MinQRSize     = 64
	MaxQRSize     = 1024
)

// InterfaceQRTokenService defines the QR token service interface
type InterfaceQRTokenService interface {
	Issue(ctx context.Context, residentID string) (*IssuedToken, error)
	Verify(ctx context.Context, token string) (*models.ResidentSummary, error)
	VerifyResidentDirect(ctx context.Context, residentID string) (*models.ResidentSummary, error)
	ContactQRCode(ctx context.Context, residentID string, size int) ([]byte, error)
	TokenQRCode(ctx context.Context, residentID string, size int) ([]byte, error)
	PurgeExpired(ctx context.Context, olderThan time.Duration) (int64, error)
}

// IssuedToken is returned to the caller that requested a token.
type IssuedToken struct {
	Token      string    `json:"token"`
	Expiration time.Time `json:"expiration"`
}

// QRTokenService issues and verifies resident QR tokens
type QRTokenService struct {
	Residents     repository.InterfaceResidentRepository
	Tokens        repository.InterfaceQRTokenRepository
	TTL           time.Duration
	PublicBaseURL string

	now func() time.Time
}

// NewQRTokenService creates a new QR token service
func NewQRTokenService(residents repository.InterfaceResidentRepository, tokens repository.InterfaceQRTokenRepository, cfg *config.Config) *QRTokenService {
	ttl := cfg.QRTokenTTL
	if ttl <= 0 {
		ttl = 24 * time.Hour
	}
	return &QRTokenService{
		Residents:     residents,
		Tokens:        tokens,
		TTL:           ttl,
		PublicBaseURL: cfg.PublicBaseURL,
		now:           time.Now,
	}
}

// SetClock replaces the time source.
func (s *QRTokenService) SetClock(now func() time.Time) {
	s.now = now
}

// 1 Issue binds a fresh random token to an existing resident
func (s *QRTokenService) Issue(ctx context.Context, residentID string) (*IssuedToken, error) {
	exists, err := s.Residents.Exists(ctx, residentID)
	if err != nil {
		return nil, err
	}
	if !exists {
		return nil, notFoundError(code.ErrResidentNotFound)
	}

	random, err := uuid.NewRandom()
	if err != nil {
		return nil, fmt.Errorf("generate token: %w", err)
	}

	now := s.now()
	token := &models.QRToken{
		Token:      random.String(),
		ResidentID: residentID,
		Expiration: now.Add(s.TTL),
		CreatedAt:  now,
	}
	if err := s.Tokens.Create(ctx, token); err != nil {
		return nil, err
	}

	return &IssuedToken{Token: token.Token, Expiration: token.Expiration}, nil
}

// 2 Verify resolves a token to the reduced resident view
func (s *QRTokenService) Verify(ctx context.Context, token string) (*models.ResidentSummary, error) {
	qrToken, err := s.Tokens.FindByToken(ctx, token)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, notFoundError(code.ErrQRTokenNotFound)
		}
		return nil, err
	}

	if qrToken.ExpiredAt(s.now()) {
		return nil, expiredError(code.ErrQRTokenExpired)
	}

	return s.VerifyResidentDirect(ctx, qrToken.ResidentID)
}

// 3 VerifyResidentDirect returns the reduced view without a token
func (s *QRTokenService) VerifyResidentDirect(ctx context.Context, residentID string) (*models.ResidentSummary, error) {
	resident, err := s.Residents.FindByID(ctx, residentID)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, notFoundError(code.ErrResidentNotFound)
		}
		return nil, err
	}

	summary := resident.Summary()
	return &summary, nil
}

// 4 ContactQRCode renders a PNG that dials the resident's phone number
func (s *QRTokenService) ContactQRCode(ctx context.Context, residentID string, size int) ([]byte, error) {
	resident, err := s.Residents.FindByID(ctx, residentID)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, notFoundError(code.ErrResidentNotFound)
		}
		return nil, err
	}

	return renderQR("tel:"+resident.Pnumber.String(), size)
}

// 5 TokenQRCode issues a token and renders a PNG of its verification URL
func (s *QRTokenService) TokenQRCode(ctx context.Context, residentID string, size int) ([]byte, error) {
	issued, err := s.Issue(ctx, residentID)
	if err != nil {
		return nil, err
	}

	return renderQR(s.PublicBaseURL+"/api/verify-qr/"+issued.Token, size)
}

// 6 PurgeExpired deletes tokens that expired more than olderThan ago
func (s *QRTokenService) PurgeExpired(ctx context.Context, olderThan time.Duration) (int64, error) {
	return s.Tokens.DeleteExpiredBefore(ctx, s.now().Add(-olderThan))
}

// ClampQRSize bounds a requested image size, falling back to the default.
func ClampQRSize(size int) int {
	switch {
	case size <= 0:
		return DefaultQRSize
	case size < MinQRSize:
		return MinQRSize
	case size > MaxQRSize:
		return MaxQRSize
	}
	return size
}

func renderQR(content string, size int) ([]byte, error) {
	png, err := qrcode.Encode(content, qrcode.Medium, ClampQRSize(size))
	if err != nil {
		return nil, fmt.Errorf("render qr: %w", err)
	}
	return png, nil
}
