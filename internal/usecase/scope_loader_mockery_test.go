package usecase

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/riskibarqy/fifa-results/internal/domain/match"
	"github.com/riskibarqy/fifa-results/internal/domain/player"
	matchmock "github.com/riskibarqy/fifa-results/internal/mocks/domain/match"
	playermock "github.com/riskibarqy/fifa-results/internal/mocks/domain/player"
)

func TestScopeLoader_WaitsForBothSourcesUsingMockery(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	scope := match.ForYear(2024)
	matches := matchmock.NewReader(t)
	players := playermock.NewReader(t)

	matches.
		On("List", mock.Anything, scope).
		After(20*time.Millisecond).
		Return([]match.Record{
			{ID: "m1", Player1: "A", Player2: "B", Score1: 1, Score2: 0, Date: time.Date(2024, 1, 5, 0, 0, 0, 0, time.UTC)},
		}, nil).
		Once()
	players.
		On("List", mock.Anything, scope).
		Return([]player.Player{{ID: "p3", Name: "C"}}, nil).
		Once()

	svc := NewStandingsService(ScopeSources{Matches: matches, Players: players})
	got, err := svc.Standings(ctx, scope)
	require.NoError(t, err)
	require.Len(t, got.Table.Rows, 3)

	c, ok := got.Table.Get("C")
	require.True(t, ok)
	assert.Equal(t, 0, c.Matches)
	assert.Equal(t, 3, c.Rank)
}

func TestScopeLoader_PlayerFailureEndsLoadUsingMockery(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	scope := match.Overall()
	matches := matchmock.NewReader(t)
	players := playermock.NewReader(t)

	matches.
		On("List", mock.Anything, scope).
		Return([]match.Record{}, nil).
		Maybe()
	players.
		On("List", mock.Anything, scope).
		Return(nil, errors.New("upstream 502")).
		Once()

	_, err := NewStatsService(ScopeSources{Matches: matches, Players: players}).Summary(ctx, scope)
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrDependencyUnavailable)
	assert.Contains(t, err.Error(), "upstream 502")
}
