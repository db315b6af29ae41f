package service

import (
	"context"
	"strings"

	"github.com/conectVagas/ConectaVagas/internal/model"
	"github.com/conectVagas/ConectaVagas/pkg/jwt"
	"golang.org/x/crypto/bcrypt"
)

const (
	// bcrypt cost factor (10-14 recommended for production)
	bcryptCost = 12

	// Input constraints
	minNameLength     = 2
	minPasswordLength = 6
	maxEmailLength    = 254
)

// CompanyRepository defines the interface for company account storage
type CompanyRepository interface {
	Create(ctx context.Context, company *model.Company) error
	GetByEmail(ctx context.Context, email string) (*model.Company, error)
}

// AuthService registers and authenticates companies and issues
// bearer tokens for them.
type AuthService struct {
	companyRepo CompanyRepository
	jwtService  *jwt.Service
}

// AuthServiceConfig holds configuration for the auth service
type AuthServiceConfig struct {
	CompanyRepo CompanyRepository
	JWTService  *jwt.Service
}

// NewAuthService creates a new auth service
func NewAuthService(cfg AuthServiceConfig) *AuthService {
	return &AuthService{
		companyRepo: cfg.CompanyRepo,
		jwtService:  cfg.JWTService,
	}
}

// RegisterRequest represents a registration request
type RegisterRequest struct {
	Name     string
	Email    string
	Password string
}

// Register creates a new company account and returns a signed token
// embedding the company's id, email and name.
func (s *AuthService) Register(ctx context.Context, req RegisterRequest) (string, error) {
	name := strings.TrimSpace(req.Name)
	email := strings.TrimSpace(strings.ToLower(req.Email))

	var fields []model.FieldError
	if len(name) < minNameLength {
		fields = append(fields, model.FieldError{Field: "name", Message: "name must be at least 2 characters"})
	}
	if !isValidEmail(email) {
		fields = append(fields, model.FieldError{Field: "email", Message: "invalid email format"})
	}
	if len(req.Password) < minPasswordLength {
		fields = append(fields, model.FieldError{Field: "password", Message: "password must be at least 6 characters"})
	}
	if len(fields) > 0 {
		return "", newValidationError(fields)
	}

	hash, err := hashPassword(req.Password)
	if err != nil {
		return "", err
	}

	company := &model.Company{
		Name:  name,
		Email: email,
		Hash:  hash,
	}

	// The unique index on email is the authority on duplicates; no
	// pre-check, so concurrent registrations cannot race past it.
	if err := s.companyRepo.Create(ctx, company); err != nil {
		if isDuplicate(err) {
			return "", ErrEmailAlreadyExists
		}
		return "", err
	}

	return s.signToken(company)
}

// LoginRequest represents a login request
type LoginRequest struct {
	Email    string
	Password string
}

// Login authenticates a company by email and password. Input shape is
// validated before any lookup; after that, unknown email and wrong
// password fail identically with ErrInvalidCredentials.
func (s *AuthService) Login(ctx context.Context, req LoginRequest) (string, error) {
	email := strings.TrimSpace(strings.ToLower(req.Email))

	var fields []model.FieldError
	if !isValidEmail(email) {
		fields = append(fields, model.FieldError{Field: "email", Message: "invalid email format"})
	}
	if len(req.Password) < minPasswordLength {
		fields = append(fields, model.FieldError{Field: "password", Message: "password must be at least 6 characters"})
	}
	if len(fields) > 0 {
		return "", newValidationError(fields)
	}

	company, err := s.companyRepo.GetByEmail(ctx, email)
	if err != nil {
		return "", err
	}
	if company == nil {
		return "", ErrInvalidCredentials
	}

	if !checkPassword(req.Password, company.Hash) {
		return "", ErrInvalidCredentials
	}

	return s.signToken(company)
}

// VerifyToken verifies a bearer token's signature and expiry and
// returns the embedded claims for use as the request principal.
func (s *AuthService) VerifyToken(token string) (*jwt.Claims, error) {
	return s.jwtService.Validate(token)
}

func (s *AuthService) signToken(company *model.Company) (string, error) {
	return s.jwtService.Sign(jwt.Claims{
		Subject:   company.ID,
		CompanyID: company.ID,
		Email:     company.Email,
		Name:      company.Name,
	})
}

// Helper functions

func hashPassword(password string) (string, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcryptCost)
	if err != nil {
		return "", err
	}
	return string(hash), nil
}

func checkPassword(password, hash string) bool {
	err := bcrypt.CompareHashAndPassword([]byte(hash), []byte(password))
	return err == nil
}

func isValidEmail(email string) bool {
	// Basic email validation
	if email == "" {
		return false
	}
	if len(email) > maxEmailLength {
		return false
	}
	atIndex := strings.Index(email, "@")
	if atIndex < 1 {
		return false
	}
	dotIndex := strings.LastIndex(email, ".")
	if dotIndex < atIndex+2 {
		return false
	}
	if dotIndex >= len(email)-1 {
		return false
	}
	return true
}
