package memory

import (
	"context"
	"fmt"
	"sort"
	"sync"

	"github.com/riskibarqy/fifa-results/internal/domain/team"
	"github.com/riskibarqy/fifa-results/internal/usecase"
)

type TeamRepository struct {
	mu     sync.RWMutex
	items  map[string]team.Team
	byName map[string]string
}

func NewTeamRepository(teams []team.Team) *TeamRepository {
	repo := &TeamRepository{
		items:  make(map[string]team.Team, len(teams)),
		byName: make(map[string]string, len(teams)),
	}
	for _, t := range teams {
		_ = repo.put(t)
	}
	return repo
}

// List returns the teams ordered by name.
func (r *TeamRepository) List(_ context.Context) ([]team.Team, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]team.Team, 0, len(r.items))
	for _, t := range r.items {
		out = append(out, t)
	}
	sort.Slice(out, func(i, j int) bool {
		return team.Key(out[i].Name) < team.Key(out[j].Name)
	})
	return out, nil
}

func (r *TeamRepository) GetByID(_ context.Context, teamID string) (team.Team, bool, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	t, ok := r.items[teamID]
	return t, ok, nil
}

func (r *TeamRepository) GetByName(_ context.Context, name string) (team.Team, bool, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	id, ok := r.byName[team.Key(name)]
	if !ok {
		return team.Team{}, false, nil
	}
	return r.items[id], true, nil
}

func (r *TeamRepository) Create(_ context.Context, t team.Team) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	return r.put(t)
}

func (r *TeamRepository) Delete(_ context.Context, teamID string) (bool, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	t, ok := r.items[teamID]
	if !ok {
		return false, nil
	}
	delete(r.items, teamID)
	delete(r.byName, team.Key(t.Name))
	return true, nil
}

func (r *TeamRepository) put(t team.Team) error {
	key := team.Key(t.Name)
	if _, exists := r.byName[key]; exists {
		return fmt.Errorf("%w: team %q already exists", usecase.ErrConflict, t.Name)
	}
	if _, exists := r.items[t.ID]; exists {
		return fmt.Errorf("%w: team id %s already exists", usecase.ErrConflict, t.ID)
	}
	r.items[t.ID] = t
	r.byName[key] = t.ID
	return nil
}
