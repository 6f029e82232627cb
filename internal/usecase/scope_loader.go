package usecase

import (
	"context"
	"fmt"
	"sort"

	"github.com/sourcegraph/conc/pool"
	"go.opentelemetry.io/otel/attribute"

	"github.com/riskibarqy/fifa-results/internal/domain/competition"
	"github.com/riskibarqy/fifa-results/internal/domain/match"
	"github.com/riskibarqy/fifa-results/internal/domain/player"
	"github.com/riskibarqy/fifa-results/internal/domain/team"
	"github.com/riskibarqy/fifa-results/internal/domain/tournament"
)

// ScopeSources are the read contracts a scope is loaded from. Competitions and
// Tournaments are optional; without them those scopes are not checked for existence.
// Teams is only read by team reports.
type ScopeSources struct {
	Matches      match.Reader
	Players      player.Reader
	Competitions competition.Repository
	Tournaments  tournament.Repository
	Teams        team.Reader
}

// scopeSnapshot is the validated input of one aggregation. Records are in
// match.SortCanonical order and Seed is sorted and unique, whatever the source order.
type scopeSnapshot struct {
	Scope        match.Scope
	Records      []match.Record
	Players      []player.Player
	Participants []string
	Seed         []string
	Excluded     int
}

type scopeLoader struct {
	src ScopeSources
}

// load fetches matches and players concurrently and waits for both. Any failure ends
// the load; nothing is retried.
func (l scopeLoader) load(ctx context.Context, scope match.Scope) (scopeSnapshot, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.scopeLoader.load", scopeAttributes(scope)...)
	defer span.End()

	var (
		records      []match.Record
		players      []player.Player
		participants []string
	)

	p := pool.New().WithErrors().WithContext(ctx).WithCancelOnError()
	p.Go(func(ctx context.Context) error {
		items, err := l.src.Matches.List(ctx, scope)
		if err != nil {
			return fmt.Errorf("%w: list matches scope=%s: %w", ErrDependencyUnavailable, scope, err)
		}
		records = items
		return nil
	})
	p.Go(func(ctx context.Context) error {
		if l.src.Players == nil {
			return nil
		}
		items, err := l.src.Players.List(ctx, scope)
		if err != nil {
			return fmt.Errorf("%w: list players scope=%s: %w", ErrDependencyUnavailable, scope, err)
		}
		players = items
		return nil
	})
	p.Go(func(ctx context.Context) error {
		names, err := l.scopeOwner(ctx, scope)
		if err != nil {
			return err
		}
		participants = names
		return nil
	})
	if err := p.Wait(); err != nil {
		return scopeSnapshot{}, err
	}

	valid, excluded := match.Sanitize(scope.Filter(records))
	match.SortCanonical(valid)
	span.SetAttributes(
		attribute.Int("fifa.matches", len(valid)),
		attribute.Int("fifa.excluded", excluded),
	)

	return scopeSnapshot{
		Scope:        scope,
		Records:      valid,
		Players:      players,
		Participants: participants,
		Seed:         canonicalSeed(player.Names(players), participants),
		Excluded:     excluded,
	}, nil
}

func canonicalSeed(groups ...[]string) []string {
	seen := make(map[string]struct{})
	out := make([]string, 0)
	for _, names := range groups {
		for _, name := range names {
			if _, ok := seen[name]; ok {
				continue
			}
			seen[name] = struct{}{}
			out = append(out, name)
		}
	}
	sort.Strings(out)
	return out
}

// scopeOwner checks that a competition or tournament scope exists and returns the
// tournament participants used as seed names.
func (l scopeLoader) scopeOwner(ctx context.Context, scope match.Scope) ([]string, error) {
	switch scope.Kind {
	case match.ScopeCompetition:
		if l.src.Competitions == nil {
			return nil, nil
		}
		_, exists, err := l.src.Competitions.GetByID(ctx, scope.ID)
		if err != nil {
			return nil, fmt.Errorf("%w: get competition: %w", ErrDependencyUnavailable, err)
		}
		if !exists {
			return nil, fmt.Errorf("%w: competition=%s", ErrNotFound, scope.ID)
		}
	case match.ScopeTournament:
		if l.src.Tournaments == nil {
			return nil, nil
		}
		item, exists, err := l.src.Tournaments.GetByID(ctx, scope.ID)
		if err != nil {
			return nil, fmt.Errorf("%w: get tournament: %w", ErrDependencyUnavailable, err)
		}
		if !exists {
			return nil, fmt.Errorf("%w: tournament=%s", ErrNotFound, scope.ID)
		}
		return item.Participants, nil
	}
	return nil, nil
}
