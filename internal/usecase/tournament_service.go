package usecase

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"strings"
	"time"

	"github.com/riskibarqy/fifa-results/internal/domain/match"
	"github.com/riskibarqy/fifa-results/internal/domain/player"
	"github.com/riskibarqy/fifa-results/internal/domain/tournament"
	idgen "github.com/riskibarqy/fifa-results/internal/platform/id"
)

type CreateTournamentInput struct {
	Name         string
	Participants []string
}

type ScheduleTournamentMatchInput struct {
	TournamentID string
	Player1      string
	Player2      string
	Round        int
}

type RecordTournamentResultInput struct {
	TournamentID string
	MatchID      string
	Score1       int
	Score2       int
	Winner       string
}

// TournamentDetail is a tournament with its bracket matches ordered by round.
type TournamentDetail struct {
	Tournament tournament.Tournament
	Matches    []match.Record
	FinalRound int
	Champion   string
}

type TournamentService struct {
	tournamentRepo tournament.Repository
	playerRepo     player.Repository
	matchRepo      match.Repository
	idGen          idgen.Generator
	now            func() time.Time
}

func NewTournamentService(
	tournamentRepo tournament.Repository,
	playerRepo player.Repository,
	matchRepo match.Repository,
	idGen idgen.Generator,
) *TournamentService {
	return &TournamentService{
		tournamentRepo: tournamentRepo,
		playerRepo:     playerRepo,
		matchRepo:      matchRepo,
		idGen:          idGen,
		now:            time.Now,
	}
}

// Create registers a tournament between existing overall players.
func (s *TournamentService) Create(ctx context.Context, input CreateTournamentInput) (tournament.Tournament, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.TournamentService.Create")
	defer span.End()

	item := tournament.Tournament{Name: input.Name, Participants: input.Participants}
	if err := item.Validate(); err != nil {
		return tournament.Tournament{}, fmt.Errorf("%w: %w", ErrInvalidInput, err)
	}
	for _, name := range item.Participants {
		_, exists, err := s.playerRepo.GetByName(ctx, "", name)
		if err != nil {
			return tournament.Tournament{}, fmt.Errorf("get player by name: %w", err)
		}
		if !exists {
			return tournament.Tournament{}, fmt.Errorf("%w: player=%s", ErrNotFound, name)
		}
	}

	tournamentID, err := s.idGen.NewID()
	if err != nil {
		return tournament.Tournament{}, fmt.Errorf("generate tournament id: %w", err)
	}
	item.ID = tournamentID
	item.CreatedAt = s.now().UTC()

	if err := s.tournamentRepo.Create(ctx, item); err != nil {
		return tournament.Tournament{}, fmt.Errorf("create tournament: %w", err)
	}
	return item, nil
}

func (s *TournamentService) List(ctx context.Context) ([]tournament.Tournament, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.TournamentService.List")
	defer span.End()

	items, err := s.tournamentRepo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("list tournaments: %w", err)
	}
	return items, nil
}

func (s *TournamentService) Get(ctx context.Context, tournamentID string) (TournamentDetail, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.TournamentService.Get")
	defer span.End()

	item, err := s.get(ctx, tournamentID)
	if err != nil {
		return TournamentDetail{}, err
	}

	matches, err := s.matchRepo.List(ctx, match.ForTournament(item.ID))
	if err != nil {
		return TournamentDetail{}, fmt.Errorf("list tournament matches: %w", err)
	}
	matches = match.ForTournament(item.ID).Filter(matches)
	sort.SliceStable(matches, func(i, j int) bool {
		if matches[i].Round != matches[j].Round {
			return matches[i].Round < matches[j].Round
		}
		return matches[i].Date.Before(matches[j].Date)
	})

	champion, _ := tournament.Champion(matches)
	return TournamentDetail{
		Tournament: item,
		Matches:    matches,
		FinalRound: tournament.FinalRound(matches),
		Champion:   champion,
	}, nil
}

// ScheduleMatch adds a pending bracket match between two participants.
func (s *TournamentService) ScheduleMatch(ctx context.Context, input ScheduleTournamentMatchInput) (match.Record, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.TournamentService.ScheduleMatch")
	defer span.End()

	item, err := s.get(ctx, input.TournamentID)
	if err != nil {
		return match.Record{}, err
	}

	record := match.Record{
		Player1:      strings.TrimSpace(input.Player1),
		Player2:      strings.TrimSpace(input.Player2),
		Date:         s.now().UTC(),
		TournamentID: item.ID,
		Round:        input.Round,
		Status:       match.StatusPending,
	}
	if err := item.ValidateMatch(record); err != nil {
		return match.Record{}, fmt.Errorf("%w: %w", ErrInvalidInput, err)
	}

	matchID, err := s.idGen.NewID()
	if err != nil {
		return match.Record{}, fmt.Errorf("generate match id: %w", err)
	}
	record.ID = matchID
	if err := s.matchRepo.Create(ctx, record); err != nil {
		return match.Record{}, fmt.Errorf("create tournament match: %w", err)
	}
	return record, nil
}

// RecordResult moves a pending bracket match to completed and sets its winner.
func (s *TournamentService) RecordResult(ctx context.Context, input RecordTournamentResultInput) (match.Record, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.TournamentService.RecordResult")
	defer span.End()

	item, err := s.get(ctx, input.TournamentID)
	if err != nil {
		return match.Record{}, err
	}

	matchID := strings.TrimSpace(input.MatchID)
	record, exists, err := s.matchRepo.GetByID(ctx, matchID)
	if err != nil {
		return match.Record{}, fmt.Errorf("get match: %w", err)
	}
	if !exists || record.TournamentID != item.ID {
		return match.Record{}, fmt.Errorf("%w: match=%s tournament=%s", ErrNotFound, matchID, item.ID)
	}

	completed, err := tournament.Complete(record, input.Score1, input.Score2, input.Winner)
	if err != nil {
		if errors.Is(err, match.ErrNotPending) {
			return match.Record{}, fmt.Errorf("%w: %w", ErrConflict, err)
		}
		return match.Record{}, fmt.Errorf("%w: %w", ErrInvalidInput, err)
	}

	if err := s.matchRepo.Complete(ctx, completed); err != nil {
		if errors.Is(err, match.ErrNotPending) {
			return match.Record{}, fmt.Errorf("%w: %w", ErrConflict, err)
		}
		return match.Record{}, fmt.Errorf("complete tournament match: %w", err)
	}
	return completed, nil
}

func (s *TournamentService) get(ctx context.Context, tournamentID string) (tournament.Tournament, error) {
	tournamentID = strings.TrimSpace(tournamentID)
	if tournamentID == "" {
		return tournament.Tournament{}, fmt.Errorf("%w: tournament id is required", ErrInvalidInput)
	}
	item, exists, err := s.tournamentRepo.GetByID(ctx, tournamentID)
	if err != nil {
		return tournament.Tournament{}, fmt.Errorf("get tournament: %w", err)
	}
	if !exists {
		return tournament.Tournament{}, fmt.Errorf("%w: tournament=%s", ErrNotFound, tournamentID)
	}
	return item, nil
}
