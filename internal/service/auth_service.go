package service

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"
	"workshop-site/internal/data"

	validation "github.com/go-ozzo/ozzo-validation/v4"
	"github.com/go-ozzo/ozzo-validation/v4/is"
	"golang.org/x/crypto/bcrypt"
)

// AuthService authenticates dashboard operators.
type AuthService struct {
	repo OperatorRepository
}

// NewAuthService creates a new AuthService.
func NewAuthService(repo OperatorRepository) *AuthService {
	return &AuthService{repo: repo}
}

// Login checks email and password and returns the matching operator.
func (s *AuthService) Login(ctx context.Context, email, password string) (*data.Operator, error) {
	op, err := s.repo.GetByEmail(ctx, strings.TrimSpace(email))
	if err != nil {
		if errors.Is(err, data.ErrNotFound) {
			return nil, ErrInvalidCredentials
		}
		return nil, &FetchError{Collection: "Users", Err: err}
	}
	if err := bcrypt.CompareHashAndPassword([]byte(op.PasswordHash), []byte(password)); err != nil {
		return nil, ErrInvalidCredentials
	}
	return op, nil
}

// Lookup returns the operator registered under email, e.g. after single sign-on.
func (s *AuthService) Lookup(ctx context.Context, email string) (*data.Operator, error) {
	op, err := s.repo.GetByEmail(ctx, strings.TrimSpace(email))
	if err != nil {
		if errors.Is(err, data.ErrNotFound) {
			return nil, ErrInvalidCredentials
		}
		return nil, &FetchError{Collection: "Users", Err: err}
	}
	return op, nil
}

// Register stores a new operator with a bcrypt hash of password.
func (s *AuthService) Register(ctx context.Context, name, email, password string) (*data.Operator, error) {
	err := validation.Errors{
		"name":     validation.Validate(name, validation.Required),
		"email":    validation.Validate(email, validation.Required, is.EmailFormat),
		"password": validation.Validate(password, validation.Required, validation.Length(8, 72)),
	}.Filter()
	if err != nil {
		return nil, asValidationError(err)
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return nil, fmt.Errorf("failed to hash password: %w", err)
	}
	op := &data.Operator{Name: name, Email: email, PasswordHash: string(hash)}
	if err := s.repo.Create(ctx, op); err != nil {
		return nil, &PersistenceError{Op: "create", Collection: "Users", Err: err}
	}
	return op, nil
}

// Greeting returns the dashboard salutation for the hour of t.
func Greeting(t time.Time) string {
	switch h := t.Hour(); {
	case h < 12:
		return "Good Morning"
	case h < 17:
		return "Good Afternoon"
	default:
		return "Good Evening"
	}
}
