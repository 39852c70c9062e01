// Package ratelimit implements a per-client sliding-window request limiter.
// Each client key owns a fixed-size counter that resets in place when its
// window elapses: a request is admitted only when the pre-increment count is
// below the limit.  Rejected requests never consume quota.
package ratelimit

import (
	"math"
	"sync"
	"time"

	"github.com/K-dessa/VHM-api-sub000/internal/infrastructure/monitoring/logging"
	"github.com/K-dessa/VHM-api-sub000/pkg/errors"
)

// Snapshot is the non-mutating view of one client's quota, suitable for
// X-RateLimit response headers.
type Snapshot struct {
	Limit     int
	Remaining int
	// Reset is the unix time at which the client's current window ends.
	// When the client has no live window, it is now+window.
	Reset  int64
	Window time.Duration
}

// clientQuota tracks the current window for one API key.
// Invariant: count never exceeds the limit as a stored value.
type clientQuota struct {
	windowStart time.Time
	count       int
}

// expired reports whether the quota's window has fully elapsed at now.
func (q *clientQuota) expired(now time.Time, window time.Duration) bool {
	return !now.Before(q.windowStart.Add(window))
}

// Limiter is a thread-safe rate limiter keyed by client identifier (API key).
type Limiter struct {
	mu      sync.Mutex
	clients map[string]*clientQuota

	limit  int
	window time.Duration
	logger logging.Logger

	// now is stubbed in tests.
	now func() time.Time
}

// Option configures a Limiter.
type Option func(*Limiter)

// WithClock overrides the limiter's time source.
func WithClock(now func() time.Time) Option {
	return func(l *Limiter) { l.now = now }
}

// New constructs a Limiter admitting at most limit requests per window per key.
func New(limit int, window time.Duration, logger logging.Logger, opts ...Option) *Limiter {
	if logger == nil {
		logger = logging.NewNopLogger()
	}
	l := &Limiter{
		clients: make(map[string]*clientQuota),
		limit:   limit,
		window:  window,
		logger:  logger.Named("ratelimit"),
		now:     time.Now,
	}
	for _, opt := range opts {
		opt(l)
	}
	return l
}

// Check admits or rejects one request for key.  On admission the quota counter
// is incremented and nil is returned.  On rejection nothing is recorded and
// the returned *AppError carries the number of seconds until the window
// resets, rounded up plus one.
func (l *Limiter) Check(key string) error {
	now := l.now()

	l.mu.Lock()
	defer l.mu.Unlock()

	q, ok := l.clients[key]
	if !ok {
		q = &clientQuota{windowStart: now}
		l.clients[key] = q
	}
	if q.expired(now, l.window) {
		q.count = 0
		q.windowStart = now
	}

	if q.count >= l.limit {
		reset := q.windowStart.Add(l.window)
		retryAfter := int(math.Ceil(reset.Sub(now).Seconds())) + 1
		if retryAfter < 1 {
			retryAfter = 1
		}
		l.logger.Warn("request rejected",
			logging.String("client", key),
			logging.Int("retry_after", retryAfter))
		return errors.RateLimit("rate limit exceeded", retryAfter)
	}

	q.count++
	return nil
}

// Peek returns the current quota snapshot for key without recording a request
// and without mutating stored state.
func (l *Limiter) Peek(key string) Snapshot {
	now := l.now()

	l.mu.Lock()
	defer l.mu.Unlock()

	snap := Snapshot{
		Limit:  l.limit,
		Window: l.window,
		Reset:  now.Add(l.window).Unix(),
	}

	q, ok := l.clients[key]
	if !ok || q.expired(now, l.window) {
		snap.Remaining = l.limit
		return snap
	}

	remaining := l.limit - q.count
	if remaining < 0 {
		remaining = 0
	}
	snap.Remaining = remaining
	snap.Reset = q.windowStart.Add(l.window).Unix()
	return snap
}

// Cleanup removes clients whose window started more than twice the window
// size ago.  It returns the number of removed clients.  Call periodically
// from a background goroutine.
func (l *Limiter) Cleanup() int {
	now := l.now()

	l.mu.Lock()
	defer l.mu.Unlock()

	removed := 0
	for key, q := range l.clients {
		if now.After(q.windowStart.Add(2 * l.window)) {
			delete(l.clients, key)
			removed++
		}
	}
	if removed > 0 {
		l.logger.Debug("cleaned idle clients", logging.Int("removed", removed))
	}
	return removed
}

// Stats reports the number of tracked clients and the requests counted in
// still-live windows.
func (l *Limiter) Stats() (clients, activeRequests int) {
	now := l.now()

	l.mu.Lock()
	defer l.mu.Unlock()

	for _, q := range l.clients {
		if !q.expired(now, l.window) {
			activeRequests += q.count
		}
	}
	return len(l.clients), activeRequests
}

// Run starts a background cleanup loop that sweeps idle clients every
// interval until stop is closed.
func (l *Limiter) Run(interval time.Duration, stop <-chan struct{}) {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()
	for {
		select {
		case <-ticker.C:
			l.Cleanup()
		case <-stop:
			return
		}
	}
}

//Personal.AI order the ending
