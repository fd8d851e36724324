package services

import (
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v4"

	"resident-records-service/internal/infrastructure/config"
)

// ErrEmptySecret is returned when no signing key is configured
var ErrEmptySecret = errors.New("jwt secret key is empty")

// InterfaceJWTService defines the JWT service interface
type InterfaceJWTService interface {
	GenerateToken(email, role string) (string, error)
	ValidateToken(tokenString string) (*jwt.Token, error)
	ExtractClaims(tokenString string) (*JWTClaims, error)
}

// JWTService signs and validates session tokens
type JWTService struct {
	secretKey string
	issuer    string
	ttl       time.Duration
}

// JWTClaims defines the session token claims
type JWTClaims struct {
	Email string `json:"email"`
	Role  string `json:"role"`
	jwt.RegisteredClaims
}

// NewJWTService creates a new JWT service
func NewJWTService(cfg *config.Config) InterfaceJWTService {
	ttl := cfg.SessionTTL
	if ttl <= 0 {
		ttl = 24 * time.Hour
	}
	return &JWTService{
		secretKey: cfg.JWTSecretKey,
		issuer:    "resident-records-service",
		ttl:       ttl,
	}
}

// GenerateToken signs an HS256 token for email and role
func (s *JWTService) GenerateToken(email, role string) (string, error) {
	if s.secretKey == "" {
		return "", ErrEmptySecret
	}

	now := time.Now()
	claims := &JWTClaims{
		Email: email,
		Role:  role,
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(now.Add(s.ttl)),
			IssuedAt:  jwt.NewNumericDate(now),
			NotBefore: jwt.NewNumericDate(now),
			Issuer:    s.issuer,
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(s.secretKey))
}

// ValidateToken parses tokenString into JWTClaims and checks its signature
func (s *JWTService) ValidateToken(tokenString string) (*jwt.Token, error) {
	if s.secretKey == "" {
		return nil, ErrEmptySecret
	}
	return jwt.ParseWithClaims(tokenString, &JWTClaims{}, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}
		return []byte(s.secretKey), nil
	})
}

// ExtractClaims returns the claims of a valid token
func (s *JWTService) ExtractClaims(tokenString string) (*JWTClaims, error) {
	token, err := s.ValidateToken(tokenString)
	if err != nil {
		return nil, err
	}

	claims, ok := token.Claims.(*JWTClaims)
	if !ok || !token.Valid {
		return nil, errors.New("invalid token claims")
	}
	if claims.Email == "" || claims.Role == "" {
		return nil, errors.New("token is missing email or role")
	}
	return claims, nil
}
