// Package adapters implements adapter interfaces from the application layer.
package adapters

import (
	"context"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"

	"github.com/fincast/backend/internal/application/adapter"
	"github.com/fincast/backend/internal/integration/persistence"
)

const (
	accessTokenTTL  = 15 * time.Minute
	refreshTokenTTL = 7 * 24 * time.Hour

	tokenKindAccess  = "access"
	tokenKindRefresh = "refresh"

	tokenIssuer = "fincast"
)

// CustomClaims is the JWT payload for both token kinds. token_type keeps an
// access token from being replayed as a refresh token and vice versa.
type CustomClaims struct {
	UserID    string `json:"user_id"`
	Email     string `json:"email"`
	TokenType string `json:"token_type"`
	jwt.RegisteredClaims
}

type tokenService struct {
	signingKey []byte
	tokens     persistence.TokenRepository
}

// NewTokenService creates an HS256 token service. Issued refresh tokens are
// recorded through the token repository so they can be revoked.
func NewTokenService(secret string, tokens persistence.TokenRepository) adapter.TokenService {
	return &tokenService{signingKey: []byte(secret), tokens: tokens}
}

func (s *tokenService) GenerateTokenPair(ctx context.Context, userID uuid.UUID, email string) (*adapter.TokenPair, error) {
	access, err := s.sign(userID, email, tokenKindAccess, accessTokenTTL)
	if err != nil {
		return nil, fmt.Errorf("failed to generate access token: %w", err)
	}

	refresh, err := s.sign(userID, email, tokenKindRefresh, refreshTokenTTL)
	if err != nil {
		return nil, fmt.Errorf("failed to generate refresh token: %w", err)
	}

	if err := s.tokens.SaveRefreshToken(ctx, refresh, userID, time.Now().UTC().Add(refreshTokenTTL)); err != nil {
		return nil, fmt.Errorf("failed to save refresh token: %w", err)
	}

	return &adapter.TokenPair{AccessToken: access, RefreshToken: refresh}, nil
}

func (s *tokenService) ValidateAccessToken(ctx context.Context, token string) (*adapter.TokenClaims, error) {
	return s.validate(token, tokenKindAccess)
}

// ValidateRefreshToken checks signature, kind, and expiry, and then confirms
// against the repository that the token has not been revoked.
func (s *tokenService) ValidateRefreshToken(ctx context.Context, token string) (*adapter.TokenClaims, error) {
	claims, err := s.validate(token, tokenKindRefresh)
	if err != nil {
		return nil, err
	}

	active, err := s.tokens.IsRefreshTokenValid(ctx, token)
	if err != nil {
		return nil, fmt.Errorf("failed to check refresh token state: %w", err)
	}
	if !active {
		return nil, fmt.Errorf("refresh token has been revoked")
	}

	return claims, nil
}

func (s *tokenService) InvalidateRefreshToken(ctx context.Context, token string) error {
	return s.tokens.InvalidateRefreshToken(ctx, token)
}

func (s *tokenService) sign(userID uuid.UUID, email, kind string, ttl time.Duration) (string, error) {
	now := time.Now().UTC()
	claims := CustomClaims{
		UserID:    userID.String(),
		Email:     email,
		TokenType: kind,
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(now.Add(ttl)),
			IssuedAt:  jwt.NewNumericDate(now),
			NotBefore: jwt.NewNumericDate(now),
			Issuer:    tokenIssuer,
			Subject:   userID.String(),
		},
	}
	return jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(s.signingKey)
}

func (s *tokenService) validate(tokenString, kind string) (*adapter.TokenClaims, error) {
	parsed, err := jwt.ParseWithClaims(tokenString, &CustomClaims{}, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", t.Header["alg"])
		}
		return s.signingKey, nil
	})
	if err != nil {
		return nil, fmt.Errorf("failed to parse token: %w", err)
	}

	claims, ok := parsed.Claims.(*CustomClaims)
	if !ok || !parsed.Valid {
		return nil, fmt.Errorf("invalid token claims")
	}
	if claims.TokenType != kind {
		return nil, fmt.Errorf("invalid token type: expected %s token", kind)
	}

	userID, err := uuid.Parse(claims.UserID)
	if err != nil {
		return nil, fmt.Errorf("invalid user ID in token: %w", err)
	}

	return &adapter.TokenClaims{
		UserID:    userID,
		Email:     claims.Email,
		ExpiresAt: claims.ExpiresAt.Time,
	}, nil
}
