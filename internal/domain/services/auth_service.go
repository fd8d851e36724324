package services

import (
	"context"
	"errors"
	"strings"

	"golang.org/x/crypto/bcrypt"

	"resident-records-service/internal/domain/models"
	"resident-records-service/internal/domain/repository"
	"resident-records-service/internal/error/code"
	"resident-records-service/pkg/logger"
)

// InterfaceAuthService defines the account service interface
type InterfaceAuthService interface {
	Register(ctx context.Context, req RegisterRequest) (*RegisterResult, error)
	Login(ctx context.Context, email, password, role string) (*LoginResult, error)
	ListAccounts(ctx context.Context) ([]models.Account, error)
	EnsureAdmin(ctx context.Context, email, password string) (bool, error)
}

// RegisterRequest is the registration form.
type RegisterRequest struct {
	Email     string `json:"email" example:"admin@x.com"`
	Password  string `json:"password" example:"admin"`
	FirstName string `json:"firstName" example:"Juan"`
	LastName  string `json:"lastName" example:"Dela Cruz"`
	Role      string `json:"role" example:"staff"`
}

// RegisterResult reports the outcome of a registration. A duplicate email is a
// soft failure with Success false.
type RegisterResult struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
	Role    string `json:"role,omitempty"`
}

// LoginResult is returned on a successful login
type LoginResult struct {
	Success bool        `json:"success"`
	User    UserProfile `json:"user"`
	Token   string      `json:"token"`
}

// UserProfile is the public view of an account
type UserProfile struct {
	Email     string `json:"email"`
	Role      string `json:"role"`
	FirstName string `json:"firstName"`
	LastName  string `json:"lastName"`
}

// AuthService registers and authenticates accounts
type AuthService struct {
	Accounts   repository.InterfaceAccountRepository
	JWTService InterfaceJWTService
}

// NewAuthService creates a new auth service
func NewAuthService(accounts repository.InterfaceAccountRepository, jwtService InterfaceJWTService) InterfaceAuthService {
	return &AuthService{
		Accounts:   accounts,
		JWTService: jwtService,
	}
}

// 1 Register creates an account with a bcrypt hashed password
func (s *AuthService) Register(ctx context.Context, req RegisterRequest) (*RegisterResult, error) {
	email := strings.TrimSpace(req.Email)
	var missing []string
	if email == "" {
		missing = append(missing, "email")
	}
	if req.Password == "" {
		missing = append(missing, "password")
	}
	if len(missing) > 0 {
		return nil, validationError(code.ErrValidation, missing...)
	}

	if _, err := s.Accounts.FindByEmail(ctx, email); err == nil {
		return duplicateAccount(), nil
	} else if !errors.Is(err, repository.ErrNotFound) {
		return nil, err
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}

	account := &models.Account{
		Email:     email,
		Password:  string(hashed),
		FirstName: req.FirstName,
		LastName:  req.LastName,
		Role:      models.NormalizeRole(req.Role),
	}
	if err := s.Accounts.Create(ctx, account); err != nil {
		if errors.Is(err, repository.ErrDuplicate) {
			return duplicateAccount(), nil
		}
		return nil, err
	}

	return &RegisterResult{
		Success: true,
		Message: "Registration successful",
		Role:    account.Role,
	}, nil
}

func duplicateAccount() *RegisterResult {
	return &RegisterResult{Success: false, Message: code.GetMessage(code.ErrUserAlreadyExist)}
}

// 2 Login checks credentials first, then the requested role
func (s *AuthService) Login(ctx context.Context, email, password, role string) (*LoginResult, error) {
	account, err := s.Accounts.FindByEmail(ctx, strings.TrimSpace(email))
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, authError(code.ErrInvalidCredentials)
		}
		return nil, err
	}

	if err := bcrypt.CompareHashAndPassword([]byte(account.Password), []byte(password)); err != nil {
		return nil, authError(code.ErrInvalidCredentials)
	}

	if role == "" {
		return nil, validationError(code.ErrRoleRequired, "role")
	}
	if role != account.Role {
		return nil, authError(code.ErrRoleMismatch)
	}

	token, err := s.JWTService.GenerateToken(account.Email, account.Role)
	if err != nil {
		return nil, err
	}

	return &LoginResult{
		Success: true,
		User: UserProfile{
			Email:     account.Email,
			Role:      account.Role,
			FirstName: account.FirstName,
			LastName:  account.LastName,
		},
		Token: token,
	}, nil
}

// 3 ListAccounts returns every account without password hashes
func (s *AuthService) ListAccounts(ctx context.Context) ([]models.Account, error) {
	accounts, err := s.Accounts.FindAll(ctx)
	if err != nil {
		return nil, err
	}
	for i := range accounts {
		accounts[i].Password = ""
	}
	if accounts == nil {
		accounts = []models.Account{}
	}
	return accounts, nil
}

// 4 EnsureAdmin seeds an admin account when no account exists yet
func (s *AuthService) EnsureAdmin(ctx context.Context, email, password string) (bool, error) {
	if email == "" || password == "" {
		return false, nil
	}

	count, err := s.Accounts.Count(ctx)
	if err != nil {
		return false, err
	}
	if count > 0 {
		return false, nil
	}

	result, err := s.Register(ctx, RegisterRequest{
		Email:     email,
		Password:  password,
		FirstName: "System",
		LastName:  "Administrator",
		Role:      models.RoleAdmin,
	})
	if err != nil {
		return false, err
	}
	if result.Success {
		logger.Info("default admin account %s created", email)
	}
	return result.Success, nil
}
