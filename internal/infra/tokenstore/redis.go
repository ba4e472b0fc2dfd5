package tokenstore

import (
	"context"
	"time"

	"github.com/go-redis/redis/v8"

	"github.com/BruksfildServices01/crm-api/internal/auth"
)

const redisKeyPrefix = "revoked:"

// RedisStore keeps one key per revoked jti, expiring with the token.
type RedisStore struct {
	client redis.UniversalClient
	now    func() time.Time
}

var _ auth.RevocationStore = (*RedisStore)(nil)

func NewRedisStore(client redis.UniversalClient) *RedisStore {
	return &RedisStore{client: client, now: time.Now}
}

func (s *RedisStore) Revoke(ctx context.Context, jti string, expiresAt time.Time) error {
	ttl := expiresAt.Sub(s.now())
	if ttl <= 0 {
		return nil
	}
	return s.client.Set(ctx, redisKeyPrefix+jti, 1, ttl).Err()
}

func (s *RedisStore) IsRevoked(ctx context.Context, jti string) (bool, error) {
	n, err := s.client.Exists(ctx, redisKeyPrefix+jti).Result()
	if err != nil {
		return false, err
	}
	return n > 0, nil
}
