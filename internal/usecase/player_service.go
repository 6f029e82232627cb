package usecase

import (
	"context"
	"fmt"
	"sort"
	"time"

	"github.com/riskibarqy/fifa-results/internal/domain/match"
	"github.com/riskibarqy/fifa-results/internal/domain/player"
	"github.com/riskibarqy/fifa-results/internal/domain/standings"
	"github.com/riskibarqy/fifa-results/internal/domain/tournament"
	idgen "github.com/riskibarqy/fifa-results/internal/platform/id"
)

// PlayerSummary is a registered player with counters derived from the scope's matches.
type PlayerSummary struct {
	Player player.Player
	Stats  standings.Row
}

type PlayerService struct {
	playerRepo player.Repository
	loader     scopeLoader
	idGen      idgen.Generator
	now        func() time.Time
}

// NewPlayerService builds the player registry. tournaments may be nil, in which case
// tournament scopes list no participants.
func NewPlayerService(playerRepo player.Repository, matches match.Reader, tournaments tournament.Repository, idGen idgen.Generator) *PlayerService {
	return &PlayerService{
		playerRepo: playerRepo,
		loader:     scopeLoader{src: ScopeSources{Matches: matches, Players: playerRepo, Tournaments: tournaments}},
		idGen:      idGen,
		now:        time.Now,
	}
}

// Register creates an overall player. Names are unique and case-sensitive.
func (s *PlayerService) Register(ctx context.Context, name string) (player.Player, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.PlayerService.Register")
	defer span.End()

	return registerPlayer(ctx, s.playerRepo, s.idGen, s.now, "", name)
}

// List returns the scope's registered players ordered by name, each with derived stats.
// A tournament scope lists its participants, resolved to overall players where registered.
func (s *PlayerService) List(ctx context.Context, scope match.Scope) ([]PlayerSummary, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.PlayerService.List")
	defer span.End()

	snap, err := s.loader.load(ctx, scope)
	if err != nil {
		return nil, err
	}

	players := append([]player.Player(nil), snap.Players...)
	participants, err := s.participantPlayers(ctx, players, snap.Participants)
	if err != nil {
		return nil, err
	}
	players = append(players, participants...)
	sort.SliceStable(players, func(i, j int) bool { return players[i].Name < players[j].Name })

	table := standings.Compute(snap.Records, player.Names(players)...)
	out := make([]PlayerSummary, 0, len(players))
	for _, p := range players {
		row, _ := table.Get(p.Name)
		out = append(out, PlayerSummary{Player: p, Stats: row})
	}
	return out, nil
}

func (s *PlayerService) participantPlayers(ctx context.Context, listed []player.Player, names []string) ([]player.Player, error) {
	seen := make(map[string]struct{}, len(listed))
	for _, p := range listed {
		seen[p.Name] = struct{}{}
	}

	out := make([]player.Player, 0, len(names))
	for _, name := range names {
		if _, ok := seen[name]; ok {
			continue
		}
		seen[name] = struct{}{}

		item, exists, err := s.playerRepo.GetByName(ctx, "", name)
		if err != nil {
			return nil, fmt.Errorf("%w: get player by name: %w", ErrDependencyUnavailable, err)
		}
		if !exists {
			item = player.Player{Name: name}
		}
		out = append(out, item)
	}
	return out, nil
}

func registerPlayer(
	ctx context.Context,
	repo player.Repository,
	idGen idgen.Generator,
	now func() time.Time,
	competitionID string,
	name string,
) (player.Player, error) {
	name, err := player.NormalizeName(name)
	if err != nil {
		return player.Player{}, fmt.Errorf("%w: %w", ErrInvalidInput, err)
	}

	_, exists, err := repo.GetByName(ctx, competitionID, name)
	if err != nil {
		return player.Player{}, fmt.Errorf("get player by name: %w", err)
	}
	if exists {
		return player.Player{}, fmt.Errorf("%w: player %q already registered", ErrConflict, name)
	}

	playerID, err := idGen.NewID()
	if err != nil {
		return player.Player{}, fmt.Errorf("generate player id: %w", err)
	}

	item := player.Player{
		ID:            playerID,
		Name:          name,
		CompetitionID: competitionID,
		CreatedAt:     now().UTC(),
	}
	if err := repo.Create(ctx, item); err != nil {
		return player.Player{}, fmt.Errorf("create player: %w", err)
	}
	return item, nil
}
