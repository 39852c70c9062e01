// Package cache provides the result-cache abstraction shared by the
// analysis services. Two backends are supported: an in-process store
// with bounded capacity, and Redis for multi-instance deployments.
package cache

import (
	"context"
	"encoding/json"
	"time"

	"github.com/K-dessa/VHM-api-sub000/internal/config"
	"github.com/K-dessa/VHM-api-sub000/internal/infrastructure/monitoring/logging"
	"github.com/K-dessa/VHM-api-sub000/pkg/errors"
)

var (
	ErrCacheMiss           = errors.New(errors.ErrCodeNotFound, "cache miss")
	ErrSerializationFailed = errors.New(errors.ErrCodeSerialization, "serialization failed")
)

// Store is the minimal cache surface the application layer depends on.
// Implementations must treat a missing or expired key as ErrCacheMiss,
// never as a hard failure.
type Store interface {
	Get(ctx context.Context, key string, dest interface{}) error
	Set(ctx context.Context, key string, value interface{}, ttl time.Duration) error
	Delete(ctx context.Context, keys ...string) error
	Ping(ctx context.Context) error
}

// Serializer converts cached values to and from their stored form.
type Serializer interface {
	Marshal(v interface{}) ([]byte, error)
	Unmarshal(data []byte, v interface{}) error
}

type jsonSerializer struct{}

func (jsonSerializer) Marshal(v interface{}) ([]byte, error)      { return json.Marshal(v) }
func (jsonSerializer) Unmarshal(data []byte, v interface{}) error { return json.Unmarshal(data, v) }

// NewStore builds the Store selected by cfg.Backend.
func NewStore(cfg config.CacheConfig, redisCfg config.RedisConfig, log logging.Logger) (Store, error) {
	switch cfg.Backend {
	case "redis":
		return NewRedisStore(redisCfg, log, WithDefaultTTL(cfg.TTL))
	case "", "memory":
		return NewMemoryStore(cfg.Capacity, cfg.TTL), nil
	default:
		return nil, errors.New(errors.ErrCodeConfigInvalid, "unknown cache backend: "+cfg.Backend)
	}
}

//Personal.AI order the ending
