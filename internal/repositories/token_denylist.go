package repositories

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/sbilibin2017/gw-event-checkin/internal/logger"
)

// TokenDenylistRepository remembers revoked refresh tokens in Redis until they expire.
type TokenDenylistRepository struct {
	client *redis.Client
}

// NewTokenDenylistRepository creates a new repository instance
func NewTokenDenylistRepository(client *redis.Client) *TokenDenylistRepository {
	return &TokenDenylistRepository{client: client}
}

func denylistKey(tokenID string) string {
	return fmt.Sprintf("revoked_token:%s", tokenID)
}

// Revoke stores tokenID until expiresAt. Already expired tokens are not stored.
func (r *TokenDenylistRepository) Revoke(ctx context.Context, tokenID string, expiresAt time.Time) error {
	ttl := time.Until(expiresAt)
	if ttl <= 0 {
		return nil
	}

	key := denylistKey(tokenID)
	err := r.client.Set(ctx, key, "1", ttl).Err()

	logger.Log.Infow(
		"redis",
		"key", key,
		"ttl", ttl,
		"error", err,
	)

	return err
}

// IsRevoked reports whether tokenID has been revoked.
func (r *TokenDenylistRepository) IsRevoked(ctx context.Context, tokenID string) (bool, error) {
	key := denylistKey(tokenID)
	err := r.client.Get(ctx, key).Err()

	logger.Log.Infow(
		"redis",
		"key", key,
		"error", err,
	)

	if errors.Is(err, redis.Nil) {
		return false, nil
	}
	if err != nil {
		return false, err
	}
	return true, nil
}
