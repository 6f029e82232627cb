package memory

import (
	"context"
	"fmt"
	"sync"

	"github.com/riskibarqy/fifa-results/internal/domain/match"
	"github.com/riskibarqy/fifa-results/internal/domain/player"
	"github.com/riskibarqy/fifa-results/internal/usecase"
)

type PlayerRepository struct {
	mu     sync.RWMutex
	items  map[string]player.Player
	byName map[string]string
	orders []string
}

func NewPlayerRepository(players []player.Player) *PlayerRepository {
	repo := &PlayerRepository{
		items:  make(map[string]player.Player, len(players)),
		byName: make(map[string]string, len(players)),
	}
	for _, p := range players {
		_ = repo.put(p)
	}
	return repo
}

func (r *PlayerRepository) List(_ context.Context, scope match.Scope) ([]player.Player, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]player.Player, 0, len(r.orders))
	for _, id := range r.orders {
		if p := r.items[id]; player.InScope(p, scope) {
			out = append(out, p)
		}
	}
	return out, nil
}

func (r *PlayerRepository) GetByName(_ context.Context, competitionID, name string) (player.Player, bool, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	id, ok := r.byName[nameKey(competitionID, name)]
	if !ok {
		return player.Player{}, false, nil
	}
	return r.items[id], true, nil
}

func (r *PlayerRepository) GetByID(_ context.Context, playerID string) (player.Player, bool, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	p, ok := r.items[playerID]
	return p, ok, nil
}

func (r *PlayerRepository) Create(_ context.Context, p player.Player) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	return r.put(p)
}

func (r *PlayerRepository) put(p player.Player) error {
	key := nameKey(p.CompetitionID, p.Name)
	if _, exists := r.byName[key]; exists {
		return fmt.Errorf("%w: player %q already exists", usecase.ErrConflict, p.Name)
	}
	if _, exists := r.items[p.ID]; exists {
		return fmt.Errorf("%w: player id %s already exists", usecase.ErrConflict, p.ID)
	}
	r.items[p.ID] = p
	r.byName[key] = p.ID
	r.orders = append(r.orders, p.ID)
	return nil
}

func nameKey(competitionID, name string) string {
	return competitionID + "::" + name
}
