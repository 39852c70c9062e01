// Package config defines all configuration structures for the VHM analysis
// service.  No I/O or parsing logic lives here, only plain data types and
// validation.
package config

import (
	"fmt"
	"time"
)

// ServerConfig holds HTTP server tunables.
type ServerConfig struct {
	Port            int           `mapstructure:"port"`
	Mode            string        `mapstructure:"mode"` // "debug" | "release" | "test"
	ReadTimeout     time.Duration `mapstructure:"read_timeout"`
	WriteTimeout    time.Duration `mapstructure:"write_timeout"`
	MaxBodySize     int64         `mapstructure:"max_body_size"`
	ShutdownTimeout time.Duration `mapstructure:"shutdown_timeout"`
}

// AuthConfig holds the static API keys accepted by the service.
type AuthConfig struct {
	APIKeys []string `mapstructure:"api_keys"`
	// Disabled turns off API-key checking entirely (local development only).
	Disabled bool `mapstructure:"disabled"`
}

// RateLimitConfig holds the per-client sliding-window limiter parameters.
type RateLimitConfig struct {
	RequestsPerWindow int           `mapstructure:"requests_per_window"`
	Window            time.Duration `mapstructure:"window"`
	CleanupInterval   time.Duration `mapstructure:"cleanup_interval"`
}

// CacheConfig holds the case-search cache parameters.
type CacheConfig struct {
	// Backend selects the store implementation: "memory" | "redis".
	Backend  string        `mapstructure:"backend"`
	TTL      time.Duration `mapstructure:"ttl"`
	Capacity int           `mapstructure:"capacity"`
}

// RedisConfig holds Redis connection parameters for the shared cache backend.
type RedisConfig struct {
	Addr         string        `mapstructure:"addr"`
	Password     string        `mapstructure:"password"`
	DB           int           `mapstructure:"db"`
	PoolSize     int           `mapstructure:"pool_size"`
	DialTimeout  time.Duration `mapstructure:"dial_timeout"`
	ReadTimeout  time.Duration `mapstructure:"read_timeout"`
	WriteTimeout time.Duration `mapstructure:"write_timeout"`
	KeyPrefix    string        `mapstructure:"key_prefix"`
}

// RechtspraakConfig holds the public case-index client parameters.
type RechtspraakConfig struct {
	BaseURL         string        `mapstructure:"base_url"`
	Timeout         time.Duration `mapstructure:"timeout"`
	PolitenessDelay time.Duration `mapstructure:"politeness_delay"`
	MaxResults      int           `mapstructure:"max_results"`
	LookbackDays    int           `mapstructure:"lookback_days"`
	MaxRetries      int           `mapstructure:"max_retries"`
	RetryBackoff    time.Duration `mapstructure:"retry_backoff"`
	UserAgent       string        `mapstructure:"user_agent"`
}

// NewsConfig holds the news/sentiment collaborator parameters.
// An empty BaseURL or APIKey leaves the collaborator unconfigured; the
// coordinator then reports the source as unavailable instead of failing.
type NewsConfig struct {
	BaseURL    string        `mapstructure:"base_url"`
	APIKey     string        `mapstructure:"api_key"`
	Timeout    time.Duration `mapstructure:"timeout"`
	MaxSignals int           `mapstructure:"max_signals"`
}

// CrawlerConfig holds the best-effort company-website crawler parameters.
type CrawlerConfig struct {
	Enabled     bool          `mapstructure:"enabled"`
	Timeout     time.Duration `mapstructure:"timeout"`
	MaxBodySize int64         `mapstructure:"max_body_size"`
	UserAgent   string        `mapstructure:"user_agent"`
}

// AnalysisConfig holds coordinator-level tunables.
type AnalysisConfig struct {
	FastBudget      time.Duration `mapstructure:"fast_budget"`
	StandardBudget  time.Duration `mapstructure:"standard_budget"`
	DeepBudget      time.Duration `mapstructure:"deep_budget"`
	ExpeditedBudget time.Duration `mapstructure:"expedited_budget"`
}

// LogConfig holds structured-logging parameters.
type LogConfig struct {
	Level            string `mapstructure:"level"`  // "debug" | "info" | "warn" | "error"
	Format           string `mapstructure:"format"` // "json" | "text"
	Output           string `mapstructure:"output"`
	EnableCaller     bool   `mapstructure:"enable_caller"`
	EnableStacktrace bool   `mapstructure:"enable_stacktrace"`
}

// Config is the root configuration structure for the entire service.
// Every infrastructure component and application service reads its settings
// from the relevant sub-struct.
type Config struct {
	Server      ServerConfig      `mapstructure:"server"`
	Auth        AuthConfig        `mapstructure:"auth"`
	RateLimit   RateLimitConfig   `mapstructure:"rate_limit"`
	Cache       CacheConfig       `mapstructure:"cache"`
	Redis       RedisConfig       `mapstructure:"redis"`
	Rechtspraak RechtspraakConfig `mapstructure:"rechtspraak"`
	News        NewsConfig        `mapstructure:"news"`
	Crawler     CrawlerConfig     `mapstructure:"crawler"`
	Analysis    AnalysisConfig    `mapstructure:"analysis"`
	Log         LogConfig         `mapstructure:"log"`
}

// Validate performs semantic validation of the fully-populated Config.
// It returns the first error encountered; callers should treat any error as
// fatal and refuse to start the application.
func (c *Config) Validate() error {
	// Server
	if c.Server.Port < 1 || c.Server.Port > 65535 {
		return fmt.Errorf("config: server.port %d is out of range [1, 65535]", c.Server.Port)
	}
	switch c.Server.Mode {
	case "debug", "release", "test":
	default:
		return fmt.Errorf("config: server.mode %q is invalid; expected debug|release|test", c.Server.Mode)
	}

	// Auth
	if !c.Auth.Disabled && len(c.Auth.APIKeys) == 0 {
		return fmt.Errorf("config: auth.api_keys must contain at least one key when auth is enabled")
	}

	// Rate limit
	if c.RateLimit.RequestsPerWindow < 1 {
		return fmt.Errorf("config: rate_limit.requests_per_window must be >= 1, got %d", c.RateLimit.RequestsPerWindow)
	}
	if c.RateLimit.Window <= 0 {
		return fmt.Errorf("config: rate_limit.window must be positive, got %s", c.RateLimit.Window)
	}

	// Cache
	switch c.Cache.Backend {
	case "memory", "redis":
	default:
		return fmt.Errorf("config: cache.backend %q is invalid; expected memory|redis", c.Cache.Backend)
	}
	if c.Cache.Capacity < 1 {
		return fmt.Errorf("config: cache.capacity must be >= 1, got %d", c.Cache.Capacity)
	}
	if c.Cache.TTL <= 0 {
		return fmt.Errorf("config: cache.ttl must be positive, got %s", c.Cache.TTL)
	}
	if c.Cache.Backend == "redis" && c.Redis.Addr == "" {
		return fmt.Errorf("config: redis.addr is required when cache.backend is redis")
	}

	// Rechtspraak
	if c.Rechtspraak.BaseURL == "" {
		return fmt.Errorf("config: rechtspraak.base_url is required")
	}
	if c.Rechtspraak.MaxResults < 1 {
		return fmt.Errorf("config: rechtspraak.max_results must be >= 1, got %d", c.Rechtspraak.MaxResults)
	}
	if c.Rechtspraak.LookbackDays < 1 {
		return fmt.Errorf("config: rechtspraak.lookback_days must be >= 1, got %d", c.Rechtspraak.LookbackDays)
	}
	if c.Rechtspraak.MaxRetries < 0 {
		return fmt.Errorf("config: rechtspraak.max_retries must be >= 0, got %d", c.Rechtspraak.MaxRetries)
	}

	// Analysis
	if c.Analysis.FastBudget <= 0 || c.Analysis.StandardBudget <= 0 || c.Analysis.DeepBudget <= 0 {
		return fmt.Errorf("config: analysis budgets must all be positive")
	}
	if c.Analysis.ExpeditedBudget <= 0 {
		return fmt.Errorf("config: analysis.expedited_budget must be positive, got %s", c.Analysis.ExpeditedBudget)
	}

	// Log
	switch c.Log.Level {
	case "debug", "info", "warn", "error":
	default:
		return fmt.Errorf("config: log.level %q is invalid; expected debug|info|warn|error", c.Log.Level)
	}
	switch c.Log.Format {
	case "json", "text":
	default:
		return fmt.Errorf("config: log.format %q is invalid; expected json|text", c.Log.Format)
	}

	return nil
}

//Personal.AI order the ending
