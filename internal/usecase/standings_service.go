package usecase

import (
	"context"

	"github.com/riskibarqy/fifa-results/internal/domain/match"
	"github.com/riskibarqy/fifa-results/internal/domain/standings"
)

// StandingsResult is the ranking for a scope. NoData is set when the scope holds no
// valid records; seeded players are still listed with zero stats.
type StandingsResult struct {
	Scope    match.Scope
	Table    standings.Table
	Excluded int
	NoData   bool
}

type StandingsService struct {
	loader scopeLoader
}

func NewStandingsService(src ScopeSources) *StandingsService {
	return &StandingsService{loader: scopeLoader{src: src}}
}

func (s *StandingsService) Standings(ctx context.Context, scope match.Scope) (StandingsResult, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.StandingsService.Standings", scopeAttributes(scope)...)
	defer span.End()

	snap, err := s.loader.load(ctx, scope)
	if err != nil {
		return StandingsResult{}, err
	}

	return StandingsResult{
		Scope:    scope,
		Table:    standings.Compute(snap.Records, snap.Seed...),
		Excluded: snap.Excluded,
		NoData:   len(snap.Records) == 0,
	}, nil
}
