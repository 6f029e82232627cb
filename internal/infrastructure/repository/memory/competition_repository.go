package memory

import (
	"context"
	"sync"

	"github.com/riskibarqy/fifa-results/internal/domain/competition"
)

type CompetitionRepository struct {
	mu     sync.RWMutex
	items  map[string]competition.Competition
	orders []string
}

func NewCompetitionRepository(items []competition.Competition) *CompetitionRepository {
	repo := &CompetitionRepository{items: make(map[string]competition.Competition, len(items))}
	for _, c := range items {
		repo.items[c.ID] = c
		repo.orders = append(repo.orders, c.ID)
	}
	return repo
}

func (r *CompetitionRepository) List(_ context.Context) ([]competition.Competition, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]competition.Competition, 0, len(r.orders))
	for _, id := range r.orders {
		out = append(out, r.items[id])
	}
	return out, nil
}

func (r *CompetitionRepository) GetByID(_ context.Context, competitionID string) (competition.Competition, bool, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	c, ok := r.items[competitionID]
	return c, ok, nil
}

func (r *CompetitionRepository) Create(_ context.Context, c competition.Competition) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.items[c.ID]; !exists {
		r.orders = append(r.orders, c.ID)
	}
	r.items[c.ID] = c
	return nil
}
