// Package config provides configuration loading, defaults, and validation for
// the VHM analysis service.
package config

import "time"

const (
	DefaultServerPort = 8080
	DefaultServerMode = "debug"

	DefaultRateLimitRequests = 60
	DefaultRateLimitWindow   = time.Hour
	DefaultCleanupInterval   = 10 * time.Minute

	DefaultCacheBackend  = "memory"
	DefaultCacheTTL      = 30 * time.Minute
	DefaultCacheCapacity = 100

	DefaultRedisAddr = "localhost:6379"

	DefaultRechtspraakBaseURL = "https://data.rechtspraak.nl"
	DefaultRechtspraakTimeout = 15 * time.Second
	DefaultPolitenessDelay    = time.Second
	DefaultMaxResults         = 50
	DefaultLookbackDays       = 730
	DefaultMaxRetries         = 3
	DefaultRetryBackoff       = time.Second

	DefaultNewsTimeout    = 10 * time.Second
	DefaultNewsMaxSignals = 25

	DefaultCrawlerTimeout     = 10 * time.Second
	DefaultCrawlerMaxBodySize = 2 << 20

	DefaultFastBudget      = 30 * time.Second
	DefaultStandardBudget  = 60 * time.Second
	DefaultDeepBudget      = 90 * time.Second
	DefaultExpeditedBudget = 10 * time.Second

	DefaultLogLevel  = "info"
	DefaultLogFormat = "json"

	DefaultUserAgent = "vhm-analysis/1.0"
)

// ApplyDefaults fills every zero-value field in cfg with the service default.
// Fields that have already been set by the caller (non-zero values) are left
// unchanged so that explicit configuration always wins.  It must be called
// after unmarshalling raw config data and before Validate() so that
// optional-but-defaulted fields are never seen as missing.
func ApplyDefaults(cfg *Config) {
	if cfg == nil {
		return
	}

	if cfg.Server.Port == 0 {
		cfg.Server.Port = DefaultServerPort
	}
	if cfg.Server.Mode == "" {
		cfg.Server.Mode = DefaultServerMode
	}
	if cfg.Server.ReadTimeout == 0 {
		cfg.Server.ReadTimeout = 15 * time.Second
	}
	if cfg.Server.WriteTimeout == 0 {
		cfg.Server.WriteTimeout = 120 * time.Second
	}
	if cfg.Server.ShutdownTimeout == 0 {
		cfg.Server.ShutdownTimeout = 10 * time.Second
	}
	if cfg.Server.MaxBodySize == 0 {
		cfg.Server.MaxBodySize = 1 << 20
	}

	if cfg.RateLimit.RequestsPerWindow == 0 {
		cfg.RateLimit.RequestsPerWindow = DefaultRateLimitRequests
	}
	if cfg.RateLimit.Window == 0 {
		cfg.RateLimit.Window = DefaultRateLimitWindow
	}
	if cfg.RateLimit.CleanupInterval == 0 {
		cfg.RateLimit.CleanupInterval = DefaultCleanupInterval
	}

	if cfg.Cache.Backend == "" {
		cfg.Cache.Backend = DefaultCacheBackend
	}
	if cfg.Cache.TTL == 0 {
		cfg.Cache.TTL = DefaultCacheTTL
	}
	if cfg.Cache.Capacity == 0 {
		cfg.Cache.Capacity = DefaultCacheCapacity
	}

	if cfg.Redis.Addr == "" && cfg.Cache.Backend == "redis" {
		cfg.Redis.Addr = DefaultRedisAddr
	}
	if cfg.Redis.PoolSize == 0 {
		cfg.Redis.PoolSize = 10
	}
	if cfg.Redis.DialTimeout == 0 {
		cfg.Redis.DialTimeout = 5 * time.Second
	}
	if cfg.Redis.ReadTimeout == 0 {
		cfg.Redis.ReadTimeout = 3 * time.Second
	}
	if cfg.Redis.WriteTimeout == 0 {
		cfg.Redis.WriteTimeout = 3 * time.Second
	}
	if cfg.Redis.KeyPrefix == "" {
		cfg.Redis.KeyPrefix = "vhm"
	}

	if cfg.Rechtspraak.BaseURL == "" {
		cfg.Rechtspraak.BaseURL = DefaultRechtspraakBaseURL
	}
	if cfg.Rechtspraak.Timeout == 0 {
		cfg.Rechtspraak.Timeout = DefaultRechtspraakTimeout
	}
	if cfg.Rechtspraak.PolitenessDelay == 0 {
		cfg.Rechtspraak.PolitenessDelay = DefaultPolitenessDelay
	}
	if cfg.Rechtspraak.MaxResults == 0 {
		cfg.Rechtspraak.MaxResults = DefaultMaxResults
	}
	if cfg.Rechtspraak.LookbackDays == 0 {
		cfg.Rechtspraak.LookbackDays = DefaultLookbackDays
	}
	if cfg.Rechtspraak.MaxRetries == 0 {
		cfg.Rechtspraak.MaxRetries = DefaultMaxRetries
	}
	if cfg.Rechtspraak.RetryBackoff == 0 {
		cfg.Rechtspraak.RetryBackoff = DefaultRetryBackoff
	}
	if cfg.Rechtspraak.UserAgent == "" {
		cfg.Rechtspraak.UserAgent = DefaultUserAgent
	}

	if cfg.News.Timeout == 0 {
		cfg.News.Timeout = DefaultNewsTimeout
	}
	if cfg.News.MaxSignals == 0 {
		cfg.News.MaxSignals = DefaultNewsMaxSignals
	}

	if cfg.Crawler.Timeout == 0 {
		cfg.Crawler.Timeout = DefaultCrawlerTimeout
	}
	if cfg.Crawler.MaxBodySize == 0 {
		cfg.Crawler.MaxBodySize = DefaultCrawlerMaxBodySize
	}
	if cfg.Crawler.UserAgent == "" {
		cfg.Crawler.UserAgent = DefaultUserAgent
	}

	if cfg.Analysis.FastBudget == 0 {
		cfg.Analysis.FastBudget = DefaultFastBudget
	}
	if cfg.Analysis.StandardBudget == 0 {
		cfg.Analysis.StandardBudget = DefaultStandardBudget
	}
	if cfg.Analysis.DeepBudget == 0 {
		cfg.Analysis.DeepBudget = DefaultDeepBudget
	}
	if cfg.Analysis.ExpeditedBudget == 0 {
		cfg.Analysis.ExpeditedBudget = DefaultExpeditedBudget
	}

	if cfg.Log.Level == "" {
		cfg.Log.Level = DefaultLogLevel
	}
	if cfg.Log.Format == "" {
		cfg.Log.Format = DefaultLogFormat
	}
	if cfg.Log.Output == "" {
		cfg.Log.Output = "stdout"
	}
}

//Personal.AI order the ending
