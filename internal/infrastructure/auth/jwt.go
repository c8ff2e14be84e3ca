// Package auth provides token issuance, validation and storage.
package auth

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"github.com/stkrizh/conduit/internal/domain/user"
	"github.com/stkrizh/conduit/internal/domain/uuid"
)

// Token errors.
var (
	ErrInvalidToken = errors.New("invalid token")
	ErrTokenExpired = errors.New("token expired")
)

const defaultTokenTTL = 24 * time.Hour

// JWTManager issues and validates HMAC-signed JWTs carrying a user identity.
type JWTManager struct {
	secret []byte
	issuer string
	ttl    time.Duration
}

// JWTConfig contains configuration for JWTManager.
type JWTConfig struct {
	// Secret is the HMAC signing key. Required.
	Secret string

	// Issuer is the iss claim value.
	Issuer string

	// TTL is the token lifetime. Defaults to 24h.
	TTL time.Duration
}

// NewJWTManager creates a new JWTManager.
func NewJWTManager(cfg JWTConfig) (*JWTManager, error) {
	if cfg.Secret == "" {
		return nil, errors.New("jwt secret is required")
	}

	ttl := cfg.TTL
	if ttl <= 0 {
		ttl = defaultTokenTTL
	}

	return &JWTManager{
		secret: []byte(cfg.Secret),
		issuer: cfg.Issuer,
		ttl:    ttl,
	}, nil
}

// Issue mints a token bound to the given user id.
// Implements the application layer's TokenIssuer port.
func (m *JWTManager) Issue(_ context.Context, userID uuid.UUID) (user.AuthToken, error) {
	if userID.IsZero() {
		return "", errors.New("userID is required")
	}

	now := time.Now()
	claims := jwt.RegisteredClaims{
		Subject:   userID.String(),
		Issuer:    m.issuer,
		ID:        uuid.NewUUID().String(),
		IssuedAt:  jwt.NewNumericDate(now),
		ExpiresAt: jwt.NewNumericDate(now.Add(m.ttl)),
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString(m.secret)
	if err != nil {
		return "", fmt.Errorf("failed to sign token: %w", err)
	}

	return user.AuthToken(signed), nil
}

// Validate parses and verifies a token and returns the user id it is bound to.
func (m *JWTManager) Validate(_ context.Context, raw string) (uuid.UUID, error) {
	token, err := jwt.ParseWithClaims(
		raw,
		&jwt.RegisteredClaims{},
		func(t *jwt.Token) (any, error) {
			if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
				return nil, fmt.Errorf("unexpected signing method: %v", t.Header["alg"])
			}
			return m.secret, nil
		},
	)
	if err != nil {
		if errors.Is(err, jwt.ErrTokenExpired) {
			return "", ErrTokenExpired
		}
		return "", fmt.Errorf("%w: %w", ErrInvalidToken, err)
	}

	claims, ok := token.Claims.(*jwt.RegisteredClaims)
	if !ok || claims.Subject == "" {
		return "", ErrInvalidToken
	}

	userID, err := uuid.ParseUUID(claims.Subject)
	if err != nil {
		return "", fmt.Errorf("%w: malformed subject", ErrInvalidToken)
	}

	return userID, nil
}

// TokenID extracts the jti claim without verifying the signature.
// Used by revocation bookkeeping after a token has already been validated.
func TokenID(raw string) (string, error) {
	parser := jwt.NewParser()
	claims := &jwt.RegisteredClaims{}
	if _, _, err := parser.ParseUnverified(raw, claims); err != nil {
		return "", fmt.Errorf("%w: %w", ErrInvalidToken, err)
	}
	if claims.ID == "" {
		return "", fmt.Errorf("%w: missing token id", ErrInvalidToken)
	}
	return claims.ID, nil
}
