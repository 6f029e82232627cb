package resultsapi

import (
	"context"
	"fmt"
	"strconv"
	"strings"

	"github.com/riskibarqy/fifa-results/internal/domain/match"
	"github.com/riskibarqy/fifa-results/internal/domain/player"
	"github.com/riskibarqy/fifa-results/internal/domain/team"
	"github.com/riskibarqy/fifa-results/internal/usecase"
)

// MatchReader implements match.Reader over the results API.
type MatchReader struct {
	client *Client
}

func (r MatchReader) List(ctx context.Context, scope match.Scope) ([]match.Record, error) {
	switch scope.Kind {
	case match.ScopeCompetition:
		c, err := r.client.competition(ctx, scope.ID)
		if err != nil {
			return nil, err
		}
		byID := playerIndex(c.Players)
		out := make([]match.Record, 0, len(c.Matches))
		for _, m := range c.Matches {
			record := m.toRecord(byID)
			record.CompetitionID = c.ID
			out = append(out, record)
		}
		return out, nil
	case match.ScopeTournament:
		t, err := r.client.tournament(ctx, scope.ID)
		if err != nil {
			return nil, err
		}
		out := make([]match.Record, 0, len(t.Matches))
		for _, m := range t.Matches {
			record := m.toRecord(nil)
			record.TournamentID = t.ID
			out = append(out, record)
		}
		return out, nil
	}

	items, err := r.client.fetchMatches(ctx, yearParam(scope))
	if err != nil {
		return nil, err
	}
	out := make([]match.Record, 0, len(items))
	for _, m := range items {
		out = append(out, m.toRecord(nil))
	}
	return out, nil
}

// PlayerReader implements player.Reader over the results API.
type PlayerReader struct {
	client *Client
}

func (r PlayerReader) List(ctx context.Context, scope match.Scope) ([]player.Player, error) {
	switch scope.Kind {
	case match.ScopeCompetition:
		c, err := r.client.competition(ctx, scope.ID)
		if err != nil {
			return nil, err
		}
		return toPlayers(c.Players, c.ID), nil
	case match.ScopeTournament:
		t, err := r.client.tournament(ctx, scope.ID)
		if err != nil {
			return nil, err
		}
		out := make([]player.Player, 0, len(t.Participants))
		for _, p := range t.Participants {
			if p.Name != "" {
				out = append(out, player.Player{ID: p.ID, Name: p.Name})
			}
		}
		return out, nil
	}

	items, err := r.client.fetchPlayers(ctx, yearParam(scope))
	if err != nil {
		return nil, err
	}
	return toPlayers(items, ""), nil
}

// TeamReader implements team.Reader over the results API.
type TeamReader struct {
	client *Client
}

func (r TeamReader) List(ctx context.Context) ([]team.Team, error) {
	items, err := r.client.fetchTeams(ctx)
	if err != nil {
		return nil, err
	}
	out := make([]team.Team, 0, len(items))
	for _, t := range items {
		name := strings.Join(strings.Fields(t.Name), " ")
		if name == "" {
			continue
		}
		out = append(out, team.Team{ID: strings.TrimSpace(t.ID), Name: name, CreatedAt: parseDate(t.CreatedAt)})
	}
	return out, nil
}

func (c *Client) competition(ctx context.Context, id string) (competitionPayload, error) {
	items, err := c.fetchCompetitions(ctx)
	if err != nil {
		return competitionPayload{}, err
	}
	for _, item := range items {
		if item.ID == id {
			return item, nil
		}
	}
	return competitionPayload{}, fmt.Errorf("%w: competition %s", usecase.ErrNotFound, id)
}

func (c *Client) tournament(ctx context.Context, id string) (tournamentPayload, error) {
	items, err := c.fetchTournaments(ctx)
	if err != nil {
		return tournamentPayload{}, err
	}
	for _, item := range items {
		if item.ID == id {
			return item, nil
		}
	}
	return tournamentPayload{}, fmt.Errorf("%w: tournament %s", usecase.ErrNotFound, id)
}

func toPlayers(items []playerPayload, competitionID string) []player.Player {
	out := make([]player.Player, 0, len(items))
	for _, p := range items {
		name := strings.TrimSpace(p.Name)
		if name == "" {
			continue
		}
		out = append(out, player.Player{ID: strings.TrimSpace(p.ID), Name: name, CompetitionID: competitionID})
	}
	return out
}

func yearParam(scope match.Scope) string {
	if scope.Kind == match.ScopeYear {
		return strconv.Itoa(scope.Year)
	}
	return "overall"
}
