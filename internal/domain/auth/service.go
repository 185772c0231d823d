package auth

import (
	"context"
	"crypto/subtle"
	"fmt"
	"strings"

	"golang.org/x/crypto/bcrypt"

	"odgpos/internal/core/apperror"
	"odgpos/pkg/logger"
)

// Repository reads operator records.
type Repository interface {
	// GetByCode returns the stored record or apperror.NewNotFound.
	GetByCode(ctx context.Context, code string) (*Record, error)
}

// Service authenticates operators and issues tokens.
type Service struct {
	repo   Repository
	tokens *TokenIssuer
}

// NewService creates a new auth service.
func NewService(repo Repository, tokens *TokenIssuer) *Service {
	return &Service{repo: repo, tokens: tokens}
}

// Login verifies credentials and returns the operator profile with a signed
// access token. Unknown operators and wrong passwords are indistinguishable
// to the caller.
func (s *Service) Login(ctx context.Context, creds *Credentials) (*Session, error) {
	if err := creds.Validate(ctx); err != nil {
		return nil, err
	}

	record, err := s.repo.GetByCode(ctx, creds.Code)
	if err != nil {
		if apperror.IsNotFound(err) {
			return nil, apperror.NewUnauthorized("invalid credentials")
		}
		return nil, fmt.Errorf("load operator: %w", err)
	}

	if !passwordMatches(record.Password, creds.Password) {
		logger.Warn(ctx, "login rejected", "code", creds.Code)
		return nil, apperror.NewUnauthorized("invalid credentials")
	}

	token, err := s.tokens.Issue(record.User)
	if err != nil {
		return nil, fmt.Errorf("issue token: %w", err)
	}

	logger.Info(ctx, "operator logged in", "code", record.Code)
	return &Session{User: record.User, Token: token}, nil
}

// Verify validates a token and returns its claims.
func (s *Service) Verify(ctx context.Context, token string) (*Claims, error) {
	return s.tokens.Verify(token)
}

// passwordMatches checks the supplied password against the stored one.
// erp_user rows predating this service hold plaintext passwords, so a value
// that is not a bcrypt hash falls back to a constant-time equality check.
func passwordMatches(stored, supplied string) bool {
	if isBcryptHash(stored) {
		return bcrypt.CompareHashAndPassword([]byte(stored), []byte(supplied)) == nil
	}
	return subtle.ConstantTimeCompare([]byte(stored), []byte(supplied)) == 1
}

func isBcryptHash(s string) bool {
	return strings.HasPrefix(s, "$2a$") ||
		strings.HasPrefix(s, "$2b$") ||
		strings.HasPrefix(s, "$2y$")
}
