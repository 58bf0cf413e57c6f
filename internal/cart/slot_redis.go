package cart

import (
	"context"
	"errors"
	"time"

	"github.com/go-redis/redis/v8"
)

const (
	DefaultRedisPrefix = "aufburger:cart:"
	DefaultSlotTTL     = 7 * 24 * time.Hour
)

// RedisSlot stores carts as Redis strings under prefix+key. Every save
// refreshes the TTL, so an abandoned cart eventually expires.
type RedisSlot struct {
	client *redis.Client
	prefix string
	ttl    time.Duration
}

type RedisSlotOption func(*RedisSlot)

func WithPrefix(prefix string) RedisSlotOption {
	return func(s *RedisSlot) {
		s.prefix = prefix
	}
}

// WithTTL sets the expiry; zero keeps carts forever.
func WithTTL(ttl time.Duration) RedisSlotOption {
	return func(s *RedisSlot) {
		s.ttl = ttl
	}
}

func NewRedisSlot(client *redis.Client, opts ...RedisSlotOption) *RedisSlot {
	s := &RedisSlot{
		client: client,
		prefix: DefaultRedisPrefix,
		ttl:    DefaultSlotTTL,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

func (s *RedisSlot) Load(ctx context.Context, key string) ([]byte, error) {
	val, err := s.client.Get(ctx, s.prefix+key).Bytes()
	if errors.Is(err, redis.Nil) {
		return nil, ErrSlotEmpty
	}
	if err != nil {
		return nil, err
	}
	return val, nil
}

func (s *RedisSlot) Save(ctx context.Context, key string, data []byte) error {
	return s.client.Set(ctx, s.prefix+key, data, s.ttl).Err()
}

func (s *RedisSlot) Delete(ctx context.Context, key string) error {
	return s.client.Del(ctx, s.prefix+key).Err()
}
