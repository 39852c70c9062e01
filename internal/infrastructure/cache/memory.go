package cache

import (
	"context"
	"sync"
	"time"
)

type memoryEntry struct {
	data      []byte
	expiresAt time.Time
}

// MemoryStore is an in-process Store with a fixed capacity. When full,
// inserting a new key evicts the entry closest to expiry. Expired
// entries are dropped lazily on read and during eviction scans.
type MemoryStore struct {
	mu         sync.Mutex
	entries    map[string]memoryEntry
	capacity   int
	defaultTTL time.Duration
	serializer Serializer
	clock      func() time.Time
}

// MemoryOption customises a MemoryStore.
type MemoryOption func(*MemoryStore)

// WithClock overrides the time source. Tests use this to control expiry.
func WithClock(clock func() time.Time) MemoryOption {
	return func(s *MemoryStore) { s.clock = clock }
}

// NewMemoryStore returns a bounded in-process store. A capacity of zero
// or less falls back to 100 entries.
func NewMemoryStore(capacity int, defaultTTL time.Duration, opts ...MemoryOption) *MemoryStore {
	if capacity <= 0 {
		capacity = 100
	}
	s := &MemoryStore{
		entries:    make(map[string]memoryEntry, capacity),
		capacity:   capacity,
		defaultTTL: defaultTTL,
		serializer: jsonSerializer{},
		clock:      time.Now,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

func (s *MemoryStore) Get(_ context.Context, key string, dest interface{}) error {
	s.mu.Lock()
	e, ok := s.entries[key]
	if ok && s.clock().After(e.expiresAt) {
		delete(s.entries, key)
		ok = false
	}
	s.mu.Unlock()
	if !ok {
		return ErrCacheMiss
	}
	return s.serializer.Unmarshal(e.data, dest)
}

func (s *MemoryStore) Set(_ context.Context, key string, value interface{}, ttl time.Duration) error {
	if ttl <= 0 {
		ttl = s.defaultTTL
	}
	data, err := s.serializer.Marshal(value)
	if err != nil {
		return ErrSerializationFailed
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	now := s.clock()
	if _, exists := s.entries[key]; !exists && len(s.entries) >= s.capacity {
		s.evictLocked(now)
	}
	s.entries[key] = memoryEntry{data: data, expiresAt: now.Add(ttl)}
	return nil
}

// evictLocked removes expired entries, and if none were expired, the
// entry closest to expiry. Callers must hold s.mu.
func (s *MemoryStore) evictLocked(now time.Time) {
	var (
		victim   string
		earliest time.Time
		removed  bool
	)
	for k, e := range s.entries {
		if now.After(e.expiresAt) {
			delete(s.entries, k)
			removed = true
			continue
		}
		if victim == "" || e.expiresAt.Before(earliest) {
			victim = k
			earliest = e.expiresAt
		}
	}
	if !removed && victim != "" {
		delete(s.entries, victim)
	}
}

func (s *MemoryStore) Delete(_ context.Context, keys ...string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, k := range keys {
		delete(s.entries, k)
	}
	return nil
}

func (s *MemoryStore) Ping(context.Context) error { return nil }

// Len reports the number of live entries, counting expired ones that
// have not yet been swept.
func (s *MemoryStore) Len() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.entries)
}

//Personal.AI order the ending
