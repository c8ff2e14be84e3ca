package auth

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
)

const (
	defaultRevocationPrefix = "auth:revoked:"

	// defaultRevocationTTL is used when a token carries no exp claim.
	defaultRevocationTTL = 24 * time.Hour
)

// TokenStore tracks revoked token ids in Redis.
//
// Issued JWTs are stateless; sign-out works by placing the token's id on a
// denylist until its natural expiry. The auth middleware consults the
// denylist after signature validation.
type TokenStore struct {
	client    *redis.Client
	keyPrefix string
}

// TokenStoreConfig contains configuration for TokenStore.
type TokenStoreConfig struct {
	Client    *redis.Client
	KeyPrefix string
}

// NewTokenStore creates a new Redis-based token store.
func NewTokenStore(cfg TokenStoreConfig) *TokenStore {
	keyPrefix := cfg.KeyPrefix
	if keyPrefix == "" {
		keyPrefix = defaultRevocationPrefix
	}

	return &TokenStore{
		client:    cfg.Client,
		keyPrefix: keyPrefix,
	}
}

func (s *TokenStore) revocationKey(tokenID string) string {
	return s.keyPrefix + tokenID
}

// Revoke places a token id on the denylist for the given TTL.
// The TTL should cover the token's remaining lifetime; after that the entry
// is useless anyway since the token no longer validates.
func (s *TokenStore) Revoke(ctx context.Context, tokenID string, ttl time.Duration) error {
	if tokenID == "" {
		return errors.New("tokenID is required")
	}
	if ttl <= 0 {
		return errors.New("ttl must be positive")
	}

	if err := s.client.Set(ctx, s.revocationKey(tokenID), "1", ttl).Err(); err != nil {
		return fmt.Errorf("failed to revoke token: %w", err)
	}

	return nil
}

// IsRevoked reports whether a token id is on the denylist.
func (s *TokenStore) IsRevoked(ctx context.Context, tokenID string) (bool, error) {
	if tokenID == "" {
		return false, errors.New("tokenID is required")
	}

	exists, err := s.client.Exists(ctx, s.revocationKey(tokenID)).Result()
	if err != nil {
		return false, fmt.Errorf("failed to check token revocation: %w", err)
	}

	return exists > 0, nil
}
