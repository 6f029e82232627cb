package usecase

import (
	"context"
	"fmt"
	"sort"
	"strings"
	"time"

	"github.com/riskibarqy/fifa-results/internal/domain/match"
	"github.com/riskibarqy/fifa-results/internal/domain/player"
	"github.com/riskibarqy/fifa-results/internal/domain/team"
	idgen "github.com/riskibarqy/fifa-results/internal/platform/id"
)

// RecordMatchInput is a played overall match.
type RecordMatchInput struct {
	Player1 string
	Player2 string
	Score1  int
	Score2  int
	Date    time.Time
	// Team1 and Team2 are optional registered team names.
	Team1 string
	Team2 string
}

// PlayerMatch is a record seen from one player's side.
type PlayerMatch struct {
	Record  match.Record
	Outcome match.Outcome
}

type MatchService struct {
	matchRepo  match.Repository
	playerRepo player.Repository
	teamRepo   team.Repository
	idGen      idgen.Generator
	now        func() time.Time
}

// NewMatchService builds the match service. teams may be nil when matches never
// name a team.
func NewMatchService(matchRepo match.Repository, playerRepo player.Repository, teams team.Repository, idGen idgen.Generator) *MatchService {
	return &MatchService{
		matchRepo:  matchRepo,
		playerRepo: playerRepo,
		teamRepo:   teams,
		idGen:      idGen,
		now:        time.Now,
	}
}

// Record stores a match between two registered players. A zero date means now.
// Named teams must be registered and are stored under their registered name.
func (s *MatchService) Record(ctx context.Context, input RecordMatchInput) (match.Record, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.MatchService.Record")
	defer span.End()

	record := match.Record{
		Player1: strings.TrimSpace(input.Player1),
		Player2: strings.TrimSpace(input.Player2),
		Score1:  input.Score1,
		Score2:  input.Score2,
		Date:    input.Date.UTC(),
		Status:  match.StatusCompleted,
	}
	if input.Date.IsZero() {
		record.Date = s.now().UTC()
	}
	if err := record.Validate(); err != nil {
		return match.Record{}, fmt.Errorf("%w: %w", ErrInvalidInput, err)
	}

	for _, name := range []string{record.Player1, record.Player2} {
		_, exists, err := s.playerRepo.GetByName(ctx, "", name)
		if err != nil {
			return match.Record{}, fmt.Errorf("get player by name: %w", err)
		}
		if !exists {
			return match.Record{}, fmt.Errorf("%w: player=%s", ErrNotFound, name)
		}
	}

	var err error
	if record.Team1, err = s.resolveTeam(ctx, input.Team1); err != nil {
		return match.Record{}, err
	}
	if record.Team2, err = s.resolveTeam(ctx, input.Team2); err != nil {
		return match.Record{}, err
	}

	matchID, err := s.idGen.NewID()
	if err != nil {
		return match.Record{}, fmt.Errorf("generate match id: %w", err)
	}
	record.ID = matchID

	if err := s.matchRepo.Create(ctx, record); err != nil {
		return match.Record{}, fmt.Errorf("create match: %w", err)
	}
	return record, nil
}

func (s *MatchService) resolveTeam(ctx context.Context, name string) (string, error) {
	if strings.TrimSpace(name) == "" {
		return "", nil
	}
	if s.teamRepo == nil {
		return "", fmt.Errorf("%w: team=%s", ErrNotFound, strings.TrimSpace(name))
	}
	item, exists, err := s.teamRepo.GetByName(ctx, name)
	if err != nil {
		return "", fmt.Errorf("get team by name: %w", err)
	}
	if !exists {
		return "", fmt.Errorf("%w: team=%s", ErrNotFound, strings.TrimSpace(name))
	}
	return item.Name, nil
}

// List returns the scope's records as stored, newest first.
func (s *MatchService) List(ctx context.Context, scope match.Scope) ([]match.Record, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.MatchService.List")
	defer span.End()

	items, err := s.matchRepo.List(ctx, scope)
	if err != nil {
		return nil, fmt.Errorf("list matches: %w", err)
	}
	items = scope.Filter(items)
	sortNewestFirst(items)
	return items, nil
}

// ListByPlayer returns a player's completed matches in scope with the outcome from
// that player's side, newest first.
func (s *MatchService) ListByPlayer(ctx context.Context, name string, scope match.Scope) ([]PlayerMatch, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.MatchService.ListByPlayer")
	defer span.End()

	name = strings.TrimSpace(name)
	if name == "" {
		return nil, fmt.Errorf("%w: player name is required", ErrInvalidInput)
	}

	items, err := s.matchRepo.ListByPlayer(ctx, name, scope)
	if err != nil {
		return nil, fmt.Errorf("list matches by player: %w", err)
	}
	valid, _ := match.Sanitize(scope.Filter(items))
	sortNewestFirst(valid)

	out := make([]PlayerMatch, 0, len(valid))
	for _, r := range valid {
		outcome, ok := r.OutcomeFor(name)
		if !ok {
			continue
		}
		out = append(out, PlayerMatch{Record: r, Outcome: outcome})
	}
	return out, nil
}

func sortNewestFirst(items []match.Record) {
	sort.SliceStable(items, func(i, j int) bool {
		return items[i].Date.After(items[j].Date)
	})
}
