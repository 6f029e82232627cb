package usecase

import (
	"context"

	"github.com/riskibarqy/fifa-results/internal/domain/match"
	"github.com/riskibarqy/fifa-results/internal/domain/matchstats"
)

type StatsResult struct {
	Scope    match.Scope
	Summary  matchstats.Summary
	Excluded int
}

type StatsService struct {
	loader scopeLoader
}

func NewStatsService(src ScopeSources) *StatsService {
	return &StatsService{loader: scopeLoader{src: src}}
}

func (s *StatsService) Summary(ctx context.Context, scope match.Scope) (StatsResult, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.StatsService.Summary", scopeAttributes(scope)...)
	defer span.End()

	snap, err := s.loader.load(ctx, scope)
	if err != nil {
		return StatsResult{}, err
	}

	return StatsResult{
		Scope:    scope,
		Summary:  matchstats.Compute(snap.Records, snap.Seed...),
		Excluded: snap.Excluded,
	}, nil
}
