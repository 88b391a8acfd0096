package contract

import (
	"context"
	"time"
)

// ITokenRevocationStore remembers revoked token ids until the token would
// have expired anyway.
type ITokenRevocationStore interface {
	Revoke(ctx context.Context, tokenID string, expiresAt time.Time) error
	IsRevoked(ctx context.Context, tokenID string) (bool, error)
}
