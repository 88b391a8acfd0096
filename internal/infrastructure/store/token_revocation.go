package store

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/mikiasgoitom/PetSymptomTracker/internal/domain/contract"
)

// TokenRevocationStore keeps revoked token ids in redis until the token's own expiry.
type TokenRevocationStore struct {
	rdb *redis.Client
	now func() time.Time
}

var _ contract.ITokenRevocationStore = (*TokenRevocationStore)(nil)

func NewTokenRevocationStore(rdb *redis.Client) *TokenRevocationStore {
	return &TokenRevocationStore{rdb: rdb, now: time.Now}
}

func revokedTokenKey(tokenID string) string { return fmt.Sprintf("auth:revoked:%s", tokenID) }

// Revoke is a no-op for tokens that have already expired.
func (s *TokenRevocationStore) Revoke(ctx context.Context, tokenID string, expiresAt time.Time) error {
	if tokenID == "" {
		return errors.New("token id must not be empty")
	}
	ttl := expiresAt.Sub(s.now())
	if ttl <= 0 {
		return nil
	}
	if err := s.rdb.Set(ctx, revokedTokenKey(tokenID), 1, ttl).Err(); err != nil {
		return fmt.Errorf("redis set revoked token: %w", err)
	}
	return nil
}

func (s *TokenRevocationStore) IsRevoked(ctx context.Context, tokenID string) (bool, error) {
	n, err := s.rdb.Exists(ctx, revokedTokenKey(tokenID)).Result()
	if err != nil {
		return false, fmt.Errorf("redis exists revoked token: %w", err)
	}
	return n > 0, nil
}
