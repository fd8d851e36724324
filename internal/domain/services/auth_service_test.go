package services

import (
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v4"

	"resident-records-service/internal/domain/models"
	"resident-records-service/internal/error/code"
	"resident-records-service/internal/infrastructure/config"
	"resident-records-service/internal/test/testutil"
)

const testSecret = "test-secret"

func newAuthService(t *testing.T) (InterfaceAuthService, InterfaceJWTService) {
	t.Helper()
	jwtService := NewJWTService(&config.Config{JWTSecretKey: testSecret, SessionTTL: time.Hour})
	return NewAuthService(testutil.NewTestStore(t).Accounts(), jwtService), jwtService
}

func TestRegister(t *testing.T) {
	ctx := context.Background()
	svc, _ := newAuthService(t)

	t.Run("admin role kept", func(t *testing.T) {
		result, err := svc.Register(ctx, RegisterRequest{Email: "admin@x.com", Password: "admin", Role: "admin"})
		if err != nil {
			t.Fatalf("Register returned error: %v", err)
		}
		if !result.Success || result.Role != models.RoleAdmin {
			t.Fatalf("unexpected result %+v", result)
		}
	})

	t.Run("role defaults to staff", func(t *testing.T) {
		for i, role := range []string{"", "Admin", "superuser"} {
			email := []string{"a@x.com", "b@x.com", "c@x.com"}[i]
			result, err := svc.Register(ctx, RegisterRequest{Email: email, Password: "pw", Role: role})
			if err != nil {
				t.Fatalf("Register returned error: %v", err)
			}
			if result.Role != models.RoleStaff {
				t.Errorf("role %q stored as %q", role, result.Role)
			}
		}
	})

	t.Run("duplicate email is a soft failure", func(t *testing.T) {
		result, err := svc.Register(ctx, RegisterRequest{Email: "admin@x.com", Password: "other"})
		if err != nil {
			t.Fatalf("Register returned error: %v", err)
		}
		if result.Success {
			t.Fatal("expected success=false for a duplicate email")
		}
		if result.Message != "User already exists" {
			t.Fatalf("unexpected message %q", result.Message)
		}
	})

	t.Run("missing credentials", func(t *testing.T) {
		_, err := svc.Register(ctx, RegisterRequest{Email: " "})
		assertKind(t, err, ErrValidation, code.ErrValidation)
	})
}

func TestLogin(t *testing.T) {
	ctx := context.Background()
	svc, jwtService := newAuthService(t)
	if _, err := svc.Register(ctx, RegisterRequest{
		Email: "admin@x.com", Password: "admin", FirstName: "Ana", LastName: "Reyes", Role: "admin",
	}); err != nil {
		t.Fatalf("Register returned error: %v", err)
	}

	t.Run("success", func(t *testing.T) {
		result, err := svc.Login(ctx, "admin@x.com", "admin", "admin")
		if err != nil {
			t.Fatalf("Login returned error: %v", err)
		}
		if result.User.FirstName != "Ana" || result.User.Role != "admin" {
			t.Fatalf("unexpected profile %+v", result.User)
		}
		claims, err := jwtService.ExtractClaims(result.Token)
		if err != nil {
			t.Fatalf("ExtractClaims returned error: %v", err)
		}
		if claims.Email != "admin@x.com" || claims.Role != "admin" {
			t.Fatalf("unexpected claims %+v", claims)
		}
	})

	t.Run("role mismatch with valid credentials", func(t *testing.T) {
		_, err := svc.Login(ctx, "admin@x.com", "admin", "staff")
		assertKind(t, err, ErrAuth, code.ErrRoleMismatch)
		if code.GetStatus(code.ErrRoleMismatch) != 403 {
			t.Fatal("role mismatch should map to 403")
		}
	})

	t.Run("missing role", func(t *testing.T) {
		_, err := svc.Login(ctx, "admin@x.com", "admin", "")
		assertKind(t, err, ErrValidation, code.ErrRoleRequired)
	})

	t.Run("wrong password", func(t *testing.T) {
		_, err := svc.Login(ctx, "admin@x.com", "nope", "admin")
		assertKind(t, err, ErrAuth, code.ErrInvalidCredentials)
	})

	t.Run("unknown email is checked before role", func(t *testing.T) {
		_, err := svc.Login(ctx, "ghost@x.com", "admin", "")
		assertKind(t, err, ErrAuth, code.ErrInvalidCredentials)
	})
}

func TestListAccountsExcludesPasswords(t *testing.T) {
	ctx := context.Background()
	svc, _ := newAuthService(t)
	for _, email := range []string{"a@x.com", "b@x.com"} {
		if _, err := svc.Register(ctx, RegisterRequest{Email: email, Password: "secret"}); err != nil {
			t.Fatalf("Register returned error: %v", err)
		}
	}

	accounts, err := svc.ListAccounts(ctx)
	if err != nil {
		t.Fatalf("ListAccounts returned error: %v", err)
	}
	if len(accounts) != 2 {
		t.Fatalf("expected 2 accounts, got %d", len(accounts))
	}
	for _, a := range accounts {
		if a.Password != "" {
			t.Fatalf("password leaked for %s", a.Email)
		}
	}
}

func TestEnsureAdmin(t *testing.T) {
	ctx := context.Background()
	svc, _ := newAuthService(t)

	created, err := svc.EnsureAdmin(ctx, "root@x.com", "changeme")
	if err != nil || !created {
		t.Fatalf("EnsureAdmin = %v, %v", created, err)
	}
	if _, err := svc.Login(ctx, "root@x.com", "changeme", models.RoleAdmin); err != nil {
		t.Fatalf("seeded admin cannot log in: %v", err)
	}

	created, err = svc.EnsureAdmin(ctx, "other@x.com", "changeme")
	if err != nil || created {
		t.Fatalf("second EnsureAdmin = %v, %v", created, err)
	}

	created, err = svc.EnsureAdmin(ctx, "root@x.com", "")
	if err != nil || created {
		t.Fatalf("EnsureAdmin without password = %v, %v", created, err)
	}
}

func TestJWTService(t *testing.T) {
	jwtService := NewJWTService(&config.Config{JWTSecretKey: testSecret})

	token, err := jwtService.GenerateToken("staff@x.com", models.RoleStaff)
	if err != nil {
		t.Fatalf("GenerateToken returned error: %v", err)
	}

	t.Run("valid", func(t *testing.T) {
		claims, err := jwtService.ExtractClaims(token)
		if err != nil {
			t.Fatalf("ExtractClaims returned error: %v", err)
		}
		if claims.ExpiresAt.Sub(claims.IssuedAt.Time) != 24*time.Hour {
			t.Fatalf("expected 24h lifetime, got %v", claims.ExpiresAt.Sub(claims.IssuedAt.Time))
		}
	})

	t.Run("other secret", func(t *testing.T) {
		other := NewJWTService(&config.Config{JWTSecretKey: "another-secret"})
		if _, err := other.ExtractClaims(token); err == nil {
			t.Fatal("expected signature error")
		}
	})

	t.Run("tampered", func(t *testing.T) {
		if _, err := jwtService.ExtractClaims(strings.TrimSuffix(token, token[len(token)-4:]) + "abcd"); err == nil {
			t.Fatal("expected error for a tampered token")
		}
	})
}

func TestJWTServiceRefusesEmptySecret(t *testing.T) {
	jwtService := NewJWTService(&config.Config{JWTSecretKey: ""})

	if _, err := jwtService.GenerateToken("admin@x.com", models.RoleAdmin); !errors.Is(err, ErrEmptySecret) {
		t.Fatalf("GenerateToken with empty secret = %v, want ErrEmptySecret", err)
	}

	// an admin token signed with the empty key must not be accepted
	forged, err := jwt.NewWithClaims(jwt.SigningMethodHS256, &JWTClaims{
		Email: "x@evil",
		Role:  models.RoleAdmin,
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Hour)),
		},
	}).SignedString([]byte(""))
	if err != nil {
		t.Fatalf("sign token: %v", err)
	}

	claims, err := jwtService.ExtractClaims(forged)
	if !errors.Is(err, ErrEmptySecret) {
		t.Fatalf("ExtractClaims = %+v, %v, want ErrEmptySecret", claims, err)
	}
}
