package cache

import (
	"context"
	"fmt"
	"strconv"
	"strings"
	"sync"
	"time"

	"github.com/riskibarqy/fifa-results/internal/platform/resilience"
)

type entry struct {
	value     any
	expiresAt time.Time
}

// Store is an in-process TTL cache. A zero TTL keeps entries until they are deleted.
//
// Every Delete and DeletePrefix records an invalidation generation for its key or
// prefix. A load that overlaps an invalidation of its key does not store its result.
type Store struct {
	mu          sync.RWMutex
	entries     map[string]entry
	invalidated map[string]uint64
	generation  uint64
	ttl         time.Duration
	flight      resilience.Group[any]
	now         func() time.Time
}

func NewStore(ttl time.Duration) *Store {
	return &Store{
		entries:     make(map[string]entry),
		invalidated: make(map[string]uint64),
		ttl:         ttl,
		now:         time.Now,
	}
}

func (s *Store) Get(_ context.Context, key string) (any, bool) {
	if key == "" {
		return nil, false
	}

	s.mu.RLock()
	e, ok := s.entries[key]
	s.mu.RUnlock()
	if !ok {
		return nil, false
	}
	if s.expired(e) {
		s.mu.Lock()
		if current, ok := s.entries[key]; ok && s.expired(current) {
			delete(s.entries, key)
		}
		s.mu.Unlock()
		return nil, false
	}
	return e.value, true
}

func (s *Store) Set(_ context.Context, key string, value any) {
	if key == "" {
		return
	}

	var expiresAt time.Time
	if s.ttl > 0 {
		expiresAt = s.now().Add(s.ttl)
	}

	s.mu.Lock()
	s.entries[key] = entry{value: value, expiresAt: expiresAt}
	s.mu.Unlock()
}

func (s *Store) Delete(_ context.Context, key string) {
	s.mu.Lock()
	delete(s.entries, key)
	s.generation++
	s.invalidated[key] = s.generation
	s.mu.Unlock()
}

// DeletePrefix drops every key starting with prefix. An empty prefix clears the store.
func (s *Store) DeletePrefix(_ context.Context, prefix string) {
	s.mu.Lock()
	for key := range s.entries {
		if strings.HasPrefix(key, prefix) {
			delete(s.entries, key)
		}
	}
	s.generation++
	s.invalidated[prefix] = s.generation
	s.mu.Unlock()
}

// keyGeneration is the latest invalidation generation covering key, 0 if none.
func (s *Store) keyGeneration(key string) uint64 {
	s.mu.RLock()
	defer s.mu.RUnlock()

	var latest uint64
	for prefix, gen := range s.invalidated {
		if gen > latest && strings.HasPrefix(key, prefix) {
			latest = gen
		}
	}
	return latest
}

// setIfCurrent stores value unless key was invalidated after generation gen.
func (s *Store) setIfCurrent(key string, value any, gen uint64) bool {
	var expiresAt time.Time
	if s.ttl > 0 {
		expiresAt = s.now().Add(s.ttl)
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	for prefix, latest := range s.invalidated {
		if latest > gen && strings.HasPrefix(key, prefix) {
			return false
		}
	}
	s.entries[key] = entry{value: value, expiresAt: expiresAt}
	return true
}

// Len counts live entries.
func (s *Store) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()

	n := 0
	for _, e := range s.entries {
		if !s.expired(e) {
			n++
		}
	}
	return n
}

// GetOrLoad returns the cached value or runs loader once for concurrent callers of the
// same key. Loader errors are not cached, and neither is a value whose load overlapped an
// invalidation of key. Callers arriving after such an invalidation start a fresh load.
func (s *Store) GetOrLoad(ctx context.Context, key string, loader func(context.Context) (any, error)) (any, error) {
	if loader == nil {
		return nil, fmt.Errorf("loader is required")
	}
	if key == "" {
		return loader(ctx)
	}
	if value, ok := s.Get(ctx, key); ok {
		return value, nil
	}

	gen := s.keyGeneration(key)
	value, err, _ := s.flight.Do(key+"#"+strconv.FormatUint(gen, 10), func() (any, error) {
		if cached, ok := s.Get(ctx, key); ok {
			return cached, nil
		}
		loaded, err := loader(ctx)
		if err != nil {
			return nil, err
		}
		s.setIfCurrent(key, loaded, gen)
		return loaded, nil
	})
	return value, err
}

func (s *Store) expired(e entry) bool {
	return !e.expiresAt.IsZero() && !e.expiresAt.After(s.now())
}

// Load is a typed GetOrLoad. Callers get a copy only if loader returns one.
func Load[T any](ctx context.Context, s *Store, key string, loader func(context.Context) (T, error)) (T, error) {
	var zero T
	v, err := s.GetOrLoad(ctx, key, func(ctx context.Context) (any, error) {
		return loader(ctx)
	})
	if err != nil {
		return zero, err
	}
	typed, ok := v.(T)
	if !ok {
		return zero, fmt.Errorf("cache key %q holds %T", key, v)
	}
	return typed, nil
}
