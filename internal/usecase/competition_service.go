package usecase

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/riskibarqy/fifa-results/internal/domain/competition"
	"github.com/riskibarqy/fifa-results/internal/domain/match"
	"github.com/riskibarqy/fifa-results/internal/domain/player"
	"github.com/riskibarqy/fifa-results/internal/domain/standings"
	idgen "github.com/riskibarqy/fifa-results/internal/platform/id"
)

// CompetitionDetail is a competition with everything scoped to it.
type CompetitionDetail struct {
	Competition competition.Competition
	Players     []player.Player
	Matches     []match.Record
	Standings   standings.Table
	Excluded    int
}

// AddCompetitionMatchInput references competition players by id.
type AddCompetitionMatchInput struct {
	CompetitionID string
	Player1ID     string
	Player2ID     string
	Score1        int
	Score2        int
}

type CompetitionService struct {
	competitionRepo competition.Repository
	playerRepo      player.Repository
	matchRepo       match.Repository
	idGen           idgen.Generator
	now             func() time.Time
}

func NewCompetitionService(
	competitionRepo competition.Repository,
	playerRepo player.Repository,
	matchRepo match.Repository,
	idGen idgen.Generator,
) *CompetitionService {
	return &CompetitionService{
		competitionRepo: competitionRepo,
		playerRepo:      playerRepo,
		matchRepo:       matchRepo,
		idGen:           idGen,
		now:             time.Now,
	}
}

func (s *CompetitionService) Create(ctx context.Context, name string) (competition.Competition, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.CompetitionService.Create")
	defer span.End()

	name, err := competition.NormalizeName(name)
	if err != nil {
		return competition.Competition{}, fmt.Errorf("%w: %w", ErrInvalidInput, err)
	}

	competitionID, err := s.idGen.NewID()
	if err != nil {
		return competition.Competition{}, fmt.Errorf("generate competition id: %w", err)
	}

	item := competition.Competition{ID: competitionID, Name: name, CreatedAt: s.now().UTC()}
	if err := s.competitionRepo.Create(ctx, item); err != nil {
		return competition.Competition{}, fmt.Errorf("create competition: %w", err)
	}
	return item, nil
}

func (s *CompetitionService) List(ctx context.Context) ([]competition.Competition, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.CompetitionService.List")
	defer span.End()

	items, err := s.competitionRepo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("list competitions: %w", err)
	}
	return items, nil
}

func (s *CompetitionService) Get(ctx context.Context, competitionID string) (CompetitionDetail, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.CompetitionService.Get")
	defer span.End()

	item, err := s.get(ctx, competitionID)
	if err != nil {
		return CompetitionDetail{}, err
	}

	scope := match.ForCompetition(item.ID)
	loader := scopeLoader{src: ScopeSources{Matches: s.matchRepo, Players: s.playerRepo}}
	snap, err := loader.load(ctx, scope)
	if err != nil {
		return CompetitionDetail{}, err
	}
	return CompetitionDetail{
		Competition: item,
		Players:     snap.Players,
		Matches:     snap.Records,
		Standings:   standings.Compute(snap.Records, snap.Seed...),
		Excluded:    snap.Excluded,
	}, nil
}

func (s *CompetitionService) AddPlayer(ctx context.Context, competitionID, name string) (player.Player, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.CompetitionService.AddPlayer")
	defer span.End()

	item, err := s.get(ctx, competitionID)
	if err != nil {
		return player.Player{}, err
	}
	return registerPlayer(ctx, s.playerRepo, s.idGen, s.now, item.ID, name)
}

func (s *CompetitionService) AddMatch(ctx context.Context, input AddCompetitionMatchInput) (match.Record, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.CompetitionService.AddMatch")
	defer span.End()

	item, err := s.get(ctx, input.CompetitionID)
	if err != nil {
		return match.Record{}, err
	}

	p1ID := strings.TrimSpace(input.Player1ID)
	p2ID := strings.TrimSpace(input.Player2ID)
	if p1ID == "" || p2ID == "" || p1ID == p2ID {
		return match.Record{}, fmt.Errorf("%w: select two different players", ErrInvalidInput)
	}

	p1, err := s.competitionPlayer(ctx, item.ID, p1ID)
	if err != nil {
		return match.Record{}, err
	}
	p2, err := s.competitionPlayer(ctx, item.ID, p2ID)
	if err != nil {
		return match.Record{}, err
	}

	record := match.Record{
		Player1:       p1.Name,
		Player2:       p2.Name,
		Score1:        input.Score1,
		Score2:        input.Score2,
		Date:          s.now().UTC(),
		CompetitionID: item.ID,
		Status:        match.StatusCompleted,
	}
	if err := record.Validate(); err != nil {
		return match.Record{}, fmt.Errorf("%w: %w", ErrInvalidInput, err)
	}

	matchID, err := s.idGen.NewID()
	if err != nil {
		return match.Record{}, fmt.Errorf("generate match id: %w", err)
	}
	record.ID = matchID
	if err := s.matchRepo.Create(ctx, record); err != nil {
		return match.Record{}, fmt.Errorf("create competition match: %w", err)
	}
	return record, nil
}

func (s *CompetitionService) get(ctx context.Context, competitionID string) (competition.Competition, error) {
	competitionID = strings.TrimSpace(competitionID)
	if competitionID == "" {
		return competition.Competition{}, fmt.Errorf("%w: competition id is required", ErrInvalidInput)
	}
	item, exists, err := s.competitionRepo.GetByID(ctx, competitionID)
	if err != nil {
		return competition.Competition{}, fmt.Errorf("get competition: %w", err)
	}
	if !exists {
		return competition.Competition{}, fmt.Errorf("%w: competition=%s", ErrNotFound, competitionID)
	}
	return item, nil
}

func (s *CompetitionService) competitionPlayer(ctx context.Context, competitionID, playerID string) (player.Player, error) {
	p, exists, err := s.playerRepo.GetByID(ctx, playerID)
	if err != nil {
		return player.Player{}, fmt.Errorf("get player: %w", err)
	}
	if !exists || p.CompetitionID != competitionID {
		return player.Player{}, fmt.Errorf("%w: player=%s competition=%s", ErrNotFound, playerID, competitionID)
	}
	return p, nil
}
