// Package adapter defines interfaces that will be implemented in the integration layer.
package adapter

import (
	"context"
	"time"

	"github.com/google/uuid"
)

// TokenPair is the access/refresh token pair handed to a client on login,
// registration, or refresh.
type TokenPair struct {
	AccessToken  string
	RefreshToken string
}

// TokenClaims are the identity claims extracted from a validated token.
type TokenClaims struct {
	UserID    uuid.UUID
	Email     string
	ExpiresAt time.Time
}

// TokenService issues and validates the JWT pair. Refresh tokens are
// revocable: ValidateRefreshToken rejects tokens that have been invalidated,
// not just ones that fail signature or expiry checks.
type TokenService interface {
	GenerateTokenPair(ctx context.Context, userID uuid.UUID, email string) (*TokenPair, error)
	ValidateAccessToken(ctx context.Context, token string) (*TokenClaims, error)
	ValidateRefreshToken(ctx context.Context, token string) (*TokenClaims, error)
	InvalidateRefreshToken(ctx context.Context, token string) error
}
