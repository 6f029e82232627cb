package memory

import (
	"context"
	"fmt"
	"sync"

	"github.com/riskibarqy/fifa-results/internal/domain/match"
	"github.com/riskibarqy/fifa-results/internal/usecase"
)

type MatchRepository struct {
	mu     sync.RWMutex
	items  map[string]match.Record
	orders []string
}

func NewMatchRepository(records []match.Record) *MatchRepository {
	repo := &MatchRepository{items: make(map[string]match.Record, len(records))}
	for _, r := range records {
		repo.put(r)
	}
	return repo
}

func (r *MatchRepository) List(_ context.Context, scope match.Scope) ([]match.Record, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]match.Record, 0, len(r.orders))
	for _, id := range r.orders {
		if item := r.items[id]; scope.Contains(item) {
			out = append(out, item)
		}
	}
	return out, nil
}

func (r *MatchRepository) ListByPlayer(_ context.Context, name string, scope match.Scope) ([]match.Record, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]match.Record, 0)
	for _, id := range r.orders {
		item := r.items[id]
		if item.Involves(name) && scope.Contains(item) {
			out = append(out, item)
		}
	}
	return out, nil
}

func (r *MatchRepository) GetByID(_ context.Context, matchID string) (match.Record, bool, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	item, ok := r.items[matchID]
	return item, ok, nil
}

func (r *MatchRepository) Create(_ context.Context, record match.Record) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.items[record.ID]; exists {
		return fmt.Errorf("%w: match %s already exists", usecase.ErrConflict, record.ID)
	}
	r.put(record)
	return nil
}

// Complete replaces a pending record; it fails with match.ErrNotPending otherwise.
func (r *MatchRepository) Complete(_ context.Context, record match.Record) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	current, ok := r.items[record.ID]
	if !ok {
		return fmt.Errorf("match %s not found", record.ID)
	}
	if !current.IsPending() {
		return match.ErrNotPending
	}
	r.items[record.ID] = record
	return nil
}

func (r *MatchRepository) put(record match.Record) {
	if _, exists := r.items[record.ID]; !exists {
		r.orders = append(r.orders, record.ID)
	}
	r.items[record.ID] = record
}
