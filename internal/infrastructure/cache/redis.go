package cache

import (
	"context"
	"math/rand"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/K-dessa/VHM-api-sub000/internal/config"
	"github.com/K-dessa/VHM-api-sub000/internal/infrastructure/monitoring/logging"
	"github.com/K-dessa/VHM-api-sub000/pkg/errors"
)

// RedisStore backs the cache with a Redis instance so multiple API
// replicas share analysis results. TTLs are jittered +/- 10% to avoid
// synchronized expiry stampedes.
type RedisStore struct {
	client     *redis.Client
	logger     logging.Logger
	prefix     string
	defaultTTL time.Duration
	serializer Serializer
}

// RedisOption customises a RedisStore.
type RedisOption func(*RedisStore)

func WithDefaultTTL(ttl time.Duration) RedisOption {
	return func(s *RedisStore) {
		if ttl > 0 {
			s.defaultTTL = ttl
		}
	}
}

func WithSerializer(ser Serializer) RedisOption {
	return func(s *RedisStore) { s.serializer = ser }
}

// NewRedisStore connects to Redis using cfg. The connection is lazy;
// use Ping to verify reachability at startup.
func NewRedisStore(cfg config.RedisConfig, log logging.Logger, opts ...RedisOption) (*RedisStore, error) {
	if cfg.Addr == "" {
		return nil, errors.New(errors.ErrCodeConfigInvalid, "redis addr is required")
	}
	client := redis.NewClient(&redis.Options{
		Addr:         cfg.Addr,
		Password:     cfg.Password,
		DB:           cfg.DB,
		PoolSize:     cfg.PoolSize,
		DialTimeout:  cfg.DialTimeout,
		ReadTimeout:  cfg.ReadTimeout,
		WriteTimeout: cfg.WriteTimeout,
	})
	prefix := cfg.KeyPrefix
	if prefix == "" {
		prefix = "vhm:"
	}
	s := &RedisStore{
		client:     client,
		logger:     log,
		prefix:     prefix,
		defaultTTL: 30 * time.Minute,
		serializer: jsonSerializer{},
	}
	for _, opt := range opts {
		opt(s)
	}
	return s, nil
}

func (s *RedisStore) fullKey(key string) string { return s.prefix + key }

func (s *RedisStore) jitterTTL(ttl time.Duration) time.Duration {
	if ttl == 0 {
		return 0
	}
	jitter := float64(ttl) * 0.1 * (rand.Float64()*2 - 1)
	return ttl + time.Duration(jitter)
}

func (s *RedisStore) Get(ctx context.Context, key string, dest interface{}) error {
	data, err := s.client.Get(ctx, s.fullKey(key)).Bytes()
	if err == redis.Nil {
		return ErrCacheMiss
	}
	if err != nil {
		return errors.Wrap(err, errors.ErrCodeCacheError, "failed to get from cache")
	}
	return s.serializer.Unmarshal(data, dest)
}

func (s *RedisStore) Set(ctx context.Context, key string, value interface{}, ttl time.Duration) error {
	if ttl <= 0 {
		ttl = s.defaultTTL
	}
	data, err := s.serializer.Marshal(value)
	if err != nil {
		return ErrSerializationFailed
	}
	if err := s.client.Set(ctx, s.fullKey(key), data, s.jitterTTL(ttl)).Err(); err != nil {
		return errors.Wrap(err, errors.ErrCodeCacheError, "failed to set cache entry")
	}
	return nil
}

func (s *RedisStore) Delete(ctx context.Context, keys ...string) error {
	if len(keys) == 0 {
		return nil
	}
	fullKeys := make([]string, len(keys))
	for i, k := range keys {
		fullKeys[i] = s.fullKey(k)
	}
	if err := s.client.Del(ctx, fullKeys...).Err(); err != nil {
		return errors.Wrap(err, errors.ErrCodeCacheError, "failed to delete cache entries")
	}
	return nil
}

func (s *RedisStore) Ping(ctx context.Context) error {
	return s.client.Ping(ctx).Err()
}

// Close releases the underlying connection pool.
func (s *RedisStore) Close() error { return s.client.Close() }

//Personal.AI order the ending
