// Package middleware provides the HTTP middleware chain: API-key
// authentication, request logging, and per-client rate limiting.
package middleware

import (
	"context"
	"net/http"
	"strings"

	"github.com/K-dessa/VHM-api-sub000/internal/config"
	"github.com/K-dessa/VHM-api-sub000/internal/infrastructure/monitoring/logging"
)

// contextKey is an unexported type for context keys to prevent collisions.
type contextKey int

const clientKeyContextKey contextKey = iota

// AuthMiddleware enforces static API-key authentication on the routes it
// wraps.  Keys are compared verbatim against the configured set.
type AuthMiddleware struct {
	keys     map[string]struct{}
	disabled bool
	logger   logging.Logger
}

// NewAuthMiddleware creates an AuthMiddleware from the static key set.
func NewAuthMiddleware(cfg config.AuthConfig, logger logging.Logger) *AuthMiddleware {
	if logger == nil {
		logger = logging.NewNopLogger()
	}
	keys := make(map[string]struct{}, len(cfg.APIKeys))
	for _, k := range cfg.APIKeys {
		if k != "" {
			keys[k] = struct{}{}
		}
	}
	return &AuthMiddleware{
		keys:     keys,
		disabled: cfg.Disabled,
		logger:   logger.Named("auth"),
	}
}

// Handler rejects requests without a recognized X-API-Key header with 401.
// The accepted key is stored in the request context so the rate limiter can
// key quotas per client rather than per IP.
func (m *AuthMiddleware) Handler(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if m.disabled {
			next.ServeHTTP(w, r)
			return
		}

		key := extractAPIKey(r)
		if key == "" {
			writeUnauthorized(w, "authentication required")
			return
		}
		if _, ok := m.keys[key]; !ok {
			m.logger.Warn("rejected unknown API key",
				logging.String("path", r.URL.Path),
				logging.String("remote_addr", r.RemoteAddr))
			writeUnauthorized(w, "invalid API key")
			return
		}

		ctx := context.WithValue(r.Context(), clientKeyContextKey, key)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

// extractAPIKey reads the API key from the X-API-Key header.
func extractAPIKey(r *http.Request) string {
	return strings.TrimSpace(r.Header.Get("X-API-Key"))
}

// ContextGetClientKey returns the authenticated API key, or "" when the
// request was not authenticated (auth disabled or public route).
func ContextGetClientKey(ctx context.Context) string {
	key, _ := ctx.Value(clientKeyContextKey).(string)
	return key
}

// writeUnauthorized writes a 401 JSON response.  The message is kept vague
// so the check itself leaks nothing about the configured key set.
func writeUnauthorized(w http.ResponseWriter, message string) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(http.StatusUnauthorized)
	w.Write([]byte(`{"success":false,"error":{"code":"COMMON_003","message":"` + message + `"}}`))
}

//Personal.AI order the ending
