package usecase

import (
	"context"
	"strconv"
	"sync"
	"sync/atomic"

	"github.com/riskibarqy/fifa-results/internal/domain/competition"
	"github.com/riskibarqy/fifa-results/internal/domain/match"
	"github.com/riskibarqy/fifa-results/internal/domain/player"
	"github.com/riskibarqy/fifa-results/internal/domain/team"
	"github.com/riskibarqy/fifa-results/internal/domain/tournament"
)

type stubMatchRepo struct {
	mu      sync.Mutex
	items   []match.Record
	listErr error
}

func (s *stubMatchRepo) List(_ context.Context, scope match.Scope) ([]match.Record, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.listErr != nil {
		return nil, s.listErr
	}
	return scope.Filter(s.items), nil
}

func (s *stubMatchRepo) ListByPlayer(ctx context.Context, name string, scope match.Scope) ([]match.Record, error) {
	items, err := s.List(ctx, scope)
	if err != nil {
		return nil, err
	}
	out := make([]match.Record, 0, len(items))
	for _, r := range items {
		if r.Involves(name) {
			out = append(out, r)
		}
	}
	return out, nil
}

func (s *stubMatchRepo) GetByID(_ context.Context, matchID string) (match.Record, bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, r := range s.items {
		if r.ID == matchID {
			return r, true, nil
		}
	}
	return match.Record{}, false, nil
}

func (s *stubMatchRepo) Create(_ context.Context, record match.Record) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.items = append(s.items, record)
	return nil
}

func (s *stubMatchRepo) Complete(_ context.Context, record match.Record) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i := range s.items {
		if s.items[i].ID != record.ID {
			continue
		}
		if !s.items[i].IsPending() {
			return match.ErrNotPending
		}
		s.items[i] = record
		return nil
	}
	return nil
}

type stubPlayerRepo struct {
	mu      sync.Mutex
	items   []player.Player
	listErr error
}

func newStubPlayerRepo(names ...string) *stubPlayerRepo {
	repo := &stubPlayerRepo{}
	for i, name := range names {
		repo.items = append(repo.items, player.Player{ID: "p" + strconv.Itoa(i+1), Name: name})
	}
	return repo
}

func (s *stubPlayerRepo) List(_ context.Context, scope match.Scope) ([]player.Player, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.listErr != nil {
		return nil, s.listErr
	}
	out := make([]player.Player, 0, len(s.items))
	for _, p := range s.items {
		if player.InScope(p, scope) {
			out = append(out, p)
		}
	}
	return out, nil
}

func (s *stubPlayerRepo) GetByName(_ context.Context, competitionID, name string) (player.Player, bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, p := range s.items {
		if p.CompetitionID == competitionID && p.Name == name {
			return p, true, nil
		}
	}
	return player.Player{}, false, nil
}

func (s *stubPlayerRepo) GetByID(_ context.Context, playerID string) (player.Player, bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, p := range s.items {
		if p.ID == playerID {
			return p, true, nil
		}
	}
	return player.Player{}, false, nil
}

func (s *stubPlayerRepo) Create(_ context.Context, p player.Player) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.items = append(s.items, p)
	return nil
}

type stubCompetitionRepo struct {
	items []competition.Competition
}

func (s *stubCompetitionRepo) List(_ context.Context) ([]competition.Competition, error) {
	return append([]competition.Competition(nil), s.items...), nil
}

func (s *stubCompetitionRepo) GetByID(_ context.Context, competitionID string) (competition.Competition, bool, error) {
	for _, c := range s.items {
		if c.ID == competitionID {
			return c, true, nil
		}
	}
	return competition.Competition{}, false, nil
}

func (s *stubCompetitionRepo) Create(_ context.Context, c competition.Competition) error {
	s.items = append(s.items, c)
	return nil
}

type stubTournamentRepo struct {
	items []tournament.Tournament
}

func (s *stubTournamentRepo) List(_ context.Context) ([]tournament.Tournament, error) {
	return append([]tournament.Tournament(nil), s.items...), nil
}

func (s *stubTournamentRepo) GetByID(_ context.Context, tournamentID string) (tournament.Tournament, bool, error) {
	for _, t := range s.items {
		if t.ID == tournamentID {
			return t, true, nil
		}
	}
	return tournament.Tournament{}, false, nil
}

func (s *stubTournamentRepo) Create(_ context.Context, t tournament.Tournament) error {
	s.items = append(s.items, t)
	return nil
}

type stubTeamRepo struct {
	mu      sync.Mutex
	items   []team.Team
	listErr error
}

func newStubTeamRepo(names ...string) *stubTeamRepo {
	repo := &stubTeamRepo{}
	for i, name := range names {
		repo.items = append(repo.items, team.Team{ID: "tm" + strconv.Itoa(i+1), Name: name})
	}
	return repo
}

func (s *stubTeamRepo) List(_ context.Context) ([]team.Team, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.listErr != nil {
		return nil, s.listErr
	}
	return append([]team.Team(nil), s.items...), nil
}

func (s *stubTeamRepo) GetByID(_ context.Context, teamID string) (team.Team, bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, t := range s.items {
		if t.ID == teamID {
			return t, true, nil
		}
	}
	return team.Team{}, false, nil
}

func (s *stubTeamRepo) GetByName(_ context.Context, name string) (team.Team, bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, t := range s.items {
		if team.Key(t.Name) == team.Key(name) {
			return t, true, nil
		}
	}
	return team.Team{}, false, nil
}

func (s *stubTeamRepo) Create(_ context.Context, t team.Team) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.items = append(s.items, t)
	return nil
}

func (s *stubTeamRepo) Delete(_ context.Context, teamID string) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i, t := range s.items {
		if t.ID == teamID {
			s.items = append(s.items[:i], s.items[i+1:]...)
			return true, nil
		}
	}
	return false, nil
}

type seqIDGenerator struct {
	prefix string
	n      atomic.Int64
}

func (g *seqIDGenerator) NewID() (string, error) {
	return g.prefix + strconv.FormatInt(g.n.Add(1), 10), nil
}
