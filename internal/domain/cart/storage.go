// internal/domain/cart/storage.go
package cart

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/sirupsen/logrus"
	"github.com/your-org/storefront-backend/internal/config"
)

// Storage persists whole carts keyed by session id. Reads must tolerate a
// missing or corrupt value by returning an empty cart; the worst outcome of
// a storage failure is starting over with nothing in the basket.
type Storage interface {
	Load(ctx context.Context, sessionID string) (*Cart, error)
	Save(ctx context.Context, sessionID string, c *Cart) error
	Delete(ctx context.Context, sessionID string) error
}

// RedisStorage stores JSON-serialized carts in Redis with a session TTL.
type RedisStorage struct {
	client    *redis.Client
	keyPrefix string
	ttl       time.Duration
	logger    *logrus.Logger
}

// NewRedisStorage creates Redis-backed cart storage.
func NewRedisStorage(client *redis.Client, cfg *config.Config, logger *logrus.Logger) *RedisStorage {
	return &RedisStorage{
		client:    client,
		keyPrefix: cfg.Cart.KeyPrefix,
		ttl:       cfg.Cart.SessionTTL,
		logger:    logger,
	}
}

func (s *RedisStorage) key(sessionID string) string {
	return s.keyPrefix + sessionID
}

// Load retrieves the cart for a session. A missing key or an unparsable
// payload yields an empty cart, never an error.
func (s *RedisStorage) Load(ctx context.Context, sessionID string) (*Cart, error) {
	data, err := s.client.Get(ctx, s.key(sessionID)).Result()
	if err == redis.Nil {
		return &Cart{}, nil
	} else if err != nil {
		return nil, fmt.Errorf("failed to load cart: %w", err)
	}

	var c Cart
	if err := json.Unmarshal([]byte(data), &c); err != nil {
		s.logger.WithError(err).WithField("session_id", sessionID).
			Warn("Stored cart is unparsable, treating as empty")
		return &Cart{}, nil
	}

	return &c, nil
}

// Save writes the full cart synchronously. Every mutation goes through here;
// there is no debouncing.
func (s *RedisStorage) Save(ctx context.Context, sessionID string, c *Cart) error {
	data, err := json.Marshal(c)
	if err != nil {
		return fmt.Errorf("failed to serialize cart: %w", err)
	}

	if err := s.client.Set(ctx, s.key(sessionID), data, s.ttl).Err(); err != nil {
		return fmt.Errorf("failed to persist cart: %w", err)
	}
	return nil
}

// Delete removes the stored cart for a session.
func (s *RedisStorage) Delete(ctx context.Context, sessionID string) error {
	if err := s.client.Del(ctx, s.key(sessionID)).Err(); err != nil {
		return fmt.Errorf("failed to delete cart: %w", err)
	}
	return nil
}
