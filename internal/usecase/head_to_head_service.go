package usecase

import (
	"context"
	"errors"
	"fmt"

	"github.com/riskibarqy/fifa-results/internal/domain/headtohead"
	"github.com/riskibarqy/fifa-results/internal/domain/match"
)

type HeadToHeadResult struct {
	Scope    match.Scope
	Summary  headtohead.Summary
	Excluded int
}

type HeadToHeadService struct {
	loader scopeLoader
}

func NewHeadToHeadService(src ScopeSources) *HeadToHeadService {
	return &HeadToHeadService{loader: scopeLoader{src: src}}
}

// Compare rejects a self comparison before anything is fetched.
func (s *HeadToHeadService) Compare(ctx context.Context, playerA, playerB string, scope match.Scope) (HeadToHeadResult, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.HeadToHeadService.Compare", scopeAttributes(scope)...)
	defer span.End()

	if _, err := headtohead.Compute(playerA, playerB, nil); err != nil {
		return HeadToHeadResult{}, headToHeadError(err)
	}

	snap, err := s.loader.load(ctx, scope)
	if err != nil {
		return HeadToHeadResult{}, err
	}

	summary, err := headtohead.Compute(playerA, playerB, snap.Records)
	if err != nil {
		return HeadToHeadResult{}, headToHeadError(err)
	}

	return HeadToHeadResult{
		Scope:    scope,
		Summary:  summary,
		Excluded: snap.Excluded,
	}, nil
}

func headToHeadError(err error) error {
	if errors.Is(err, headtohead.ErrSamePlayer) || errors.Is(err, headtohead.ErrMissingPlayer) {
		return fmt.Errorf("%w: %w", ErrInvalidInput, err)
	}
	return err
}
