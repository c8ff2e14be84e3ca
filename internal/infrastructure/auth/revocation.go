package auth

import (
	"context"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// RevocationChecker answers whether a token has been revoked and revokes
// tokens on sign-out. It keys the denylist by the jti claim so the entry
// can expire together with the token itself.
type RevocationChecker struct {
	store *TokenStore
}

// NewRevocationChecker creates a new RevocationChecker.
func NewRevocationChecker(store *TokenStore) *RevocationChecker {
	return &RevocationChecker{store: store}
}

// IsTokenRevoked reports whether the given raw token has been revoked.
func (r *RevocationChecker) IsTokenRevoked(ctx context.Context, token string) (bool, error) {
	tokenID, err := TokenID(token)
	if err != nil {
		return false, fmt.Errorf("failed to extract token id: %w", err)
	}
	return r.store.IsRevoked(ctx, tokenID)
}

// RevokeToken adds the token to the denylist for the remainder of its
// lifetime. A token that is already past its expiry needs no entry.
func (r *RevocationChecker) RevokeToken(ctx context.Context, token string) error {
	claims := &jwt.RegisteredClaims{}
	if _, _, err := jwt.NewParser().ParseUnverified(token, claims); err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidToken, err)
	}
	if claims.ID == "" {
		return fmt.Errorf("%w: missing token id", ErrInvalidToken)
	}

	ttl := defaultRevocationTTL
	if claims.ExpiresAt != nil {
		ttl = time.Until(claims.ExpiresAt.Time)
		if ttl <= 0 {
			return nil
		}
	}

	return r.store.Revoke(ctx, claims.ID, ttl)
}
