// Package config provides configuration loading, defaults, and validation for
// the VHM analysis service.
package config

import (
	"fmt"
	"strings"

	"github.com/fsnotify/fsnotify"
	"github.com/spf13/viper"
)

// envPrefix is the environment variable prefix used by all service settings.
const envPrefix = "VHM"

// newViper builds a pre-configured Viper instance with the service's standard
// settings: YAML file type, VHM_ env prefix, automatic env binding, and a
// key replacer that maps "." → "_" so that nested keys like "rechtspraak.base_url"
// resolve to "VHM_RECHTSPRAAK_BASE_URL".
func newViper() *viper.Viper {
	v := viper.New()
	v.SetConfigType("yaml")
	v.SetEnvPrefix(envPrefix)
	v.AutomaticEnv()
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	registerKeys(v)
	return v
}

// registerKeys declares every config key to viper so that environment-only
// overrides survive Unmarshal.  Viper ignores env vars for keys it has never
// seen; a zero default is enough to make the key known.
func registerKeys(v *viper.Viper) {
	for _, key := range []string{
		"server.port", "server.mode", "server.read_timeout", "server.write_timeout",
		"server.max_body_size", "server.shutdown_timeout",
		"auth.api_keys", "auth.disabled",
		"rate_limit.requests_per_window", "rate_limit.window", "rate_limit.cleanup_interval",
		"cache.backend", "cache.ttl", "cache.capacity",
		"redis.addr", "redis.password", "redis.db", "redis.pool_size",
		"redis.dial_timeout", "redis.read_timeout", "redis.write_timeout", "redis.key_prefix",
		"rechtspraak.base_url", "rechtspraak.timeout", "rechtspraak.politeness_delay",
		"rechtspraak.max_results", "rechtspraak.lookback_days", "rechtspraak.max_retries",
		"rechtspraak.retry_backoff", "rechtspraak.user_agent",
		"news.base_url", "news.api_key", "news.timeout", "news.max_signals",
		"crawler.enabled", "crawler.timeout", "crawler.max_body_size", "crawler.user_agent",
		"analysis.fast_budget", "analysis.standard_budget", "analysis.deep_budget",
		"analysis.expedited_budget",
		"log.level", "log.format", "log.output", "log.enable_caller", "log.enable_stacktrace",
	} {
		v.SetDefault(key, nil)
	}
}

// Load reads the YAML file at configPath, merges any VHM_* environment
// variable overrides, applies service defaults for unset fields, and
// validates the result.  It returns a fully-populated *Config or a
// descriptive error.
func Load(configPath string) (*Config, error) {
	v := newViper()
	v.SetConfigFile(configPath)

	if err := v.ReadInConfig(); err != nil {
		return nil, fmt.Errorf("config: failed to read config file %q: %w", configPath, err)
	}

	return unmarshalAndFinalize(v)
}

// LoadFromEnv builds a Config entirely from VHM_* environment variables,
// with no config file required.  This is the preferred loading strategy for
// containerised (12-factor) deployments.
//
// Environment variable naming convention:
//
//	VHM_<SECTION>_<FIELD>   e.g.  VHM_SERVER_PORT, VHM_RECHTSPRAAK_BASE_URL
func LoadFromEnv() (*Config, error) {
	v := newViper()
	// No config file; rely solely on env vars and defaults.
	return unmarshalAndFinalize(v)
}

// unmarshalAndFinalize unmarshals viper state into a Config struct, applies
// defaults, and validates the result.
func unmarshalAndFinalize(v *viper.Viper) (*Config, error) {
	cfg := &Config{}
	if err := v.Unmarshal(cfg); err != nil {
		return nil, fmt.Errorf("config: failed to unmarshal configuration: %w", err)
	}

	ApplyDefaults(cfg)

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("config: validation failed: %w", err)
	}

	return cfg, nil
}

// Watch monitors configPath for changes and invokes onChange with the newly
// parsed Config whenever the file is modified on disk.  It is intended for
// hot-reloading non-critical settings such as log level and rate-limit
// thresholds; callers are responsible for applying only the safe subset of
// changes at runtime.
//
// Watch is non-blocking; it starts a background goroutine managed by viper.
// If the changed file fails to parse or validate, onChange is NOT called so
// the application never enters a broken state from a bad edit.
func Watch(configPath string, onChange func(*Config)) {
	v := newViper()
	v.SetConfigFile(configPath)

	// Initial read errors are ignored here; callers should call Load first.
	_ = v.ReadInConfig()

	v.WatchConfig()
	v.OnConfigChange(func(_ fsnotify.Event) {
		cfg, err := unmarshalAndFinalize(v)
		if err != nil {
			return
		}
		onChange(cfg)
	})
}

// MustLoad is a convenience wrapper around Load that panics on any error.
// It is intended for use in main() where a config-load failure is always fatal.
func MustLoad(configPath string) *Config {
	cfg, err := Load(configPath)
	if err != nil {
		panic(fmt.Sprintf("config: MustLoad failed: %v", err))
	}
	return cfg
}

//Personal.AI order the ending
