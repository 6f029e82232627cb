package memory

import (
	"context"
	"sync"

	"github.com/riskibarqy/fifa-results/internal/domain/tournament"
)

type TournamentRepository struct {
	mu     sync.RWMutex
	items  map[string]tournament.Tournament
	orders []string
}

func NewTournamentRepository(items []tournament.Tournament) *TournamentRepository {
	repo := &TournamentRepository{items: make(map[string]tournament.Tournament, len(items))}
	for _, t := range items {
		repo.items[t.ID] = cloneTournament(t)
		repo.orders = append(repo.orders, t.ID)
	}
	return repo
}

func (r *TournamentRepository) List(_ context.Context) ([]tournament.Tournament, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]tournament.Tournament, 0, len(r.orders))
	for _, id := range r.orders {
		out = append(out, cloneTournament(r.items[id]))
	}
	return out, nil
}

func (r *TournamentRepository) GetByID(_ context.Context, tournamentID string) (tournament.Tournament, bool, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	t, ok := r.items[tournamentID]
	if !ok {
		return tournament.Tournament{}, false, nil
	}
	return cloneTournament(t), true, nil
}

func (r *TournamentRepository) Create(_ context.Context, t tournament.Tournament) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.items[t.ID]; !exists {
		r.orders = append(r.orders, t.ID)
	}
	r.items[t.ID] = cloneTournament(t)
	return nil
}

func cloneTournament(t tournament.Tournament) tournament.Tournament {
	copied := t
	copied.Participants = append([]string(nil), t.Participants...)
	return copied
}
