package cli

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	sonic "github.com/bytedance/sonic"
	"github.com/riskibarqy/fifa-results/internal/domain/match"
	"github.com/riskibarqy/fifa-results/internal/domain/player"
	"github.com/riskibarqy/fifa-results/internal/domain/team"
	"github.com/riskibarqy/fifa-results/internal/usecase"
)

const maxServiceResponseSize = 4 << 20

// ServiceClient reads matches and players from a running fifa-results API.
type ServiceClient struct {
	httpClient *http.Client
	baseURL    string
}

func NewServiceClient(baseURL string, httpClient *http.Client) *ServiceClient {
	if httpClient == nil {
		httpClient = &http.Client{Timeout: 15 * time.Second}
	}
	return &ServiceClient{
		httpClient: httpClient,
		baseURL:    strings.TrimRight(strings.TrimSpace(baseURL), "/"),
	}
}

func (c *ServiceClient) Sources() usecase.ScopeSources {
	return usecase.ScopeSources{
		Matches: serviceMatches{client: c},
		Players: servicePlayers{client: c},
		Teams:   serviceTeams{client: c},
	}
}

type serviceEnvelope[T any] struct {
	Data  T `json:"data"`
	Error *struct {
		Code    int    `json:"code"`
		Message string `json:"message"`
		Status  string `json:"status"`
	} `json:"error"`
}

type serviceMatch struct {
	ID            string `json:"id"`
	Player1       string `json:"player1"`
	Player2       string `json:"player2"`
	Score1        int    `json:"score1"`
	Score2        int    `json:"score2"`
	Date          string `json:"date"`
	CompetitionID string `json:"competitionId"`
	TournamentID  string `json:"tournamentId"`
	Round         int    `json:"round"`
	Status        string `json:"status"`
	Winner        string `json:"winner"`
	Team1         string `json:"team1"`
	Team2         string `json:"team2"`
}

type serviceTeam struct {
	ID         string `json:"id"`
	Name       string `json:"name"`
	Registered bool   `json:"registered"`
}

type servicePlayer struct {
	ID            string `json:"id"`
	Name          string `json:"name"`
	CompetitionID string `json:"competitionId"`
}

type serviceMatches struct {
	client *ServiceClient
}

func (s serviceMatches) List(ctx context.Context, scope match.Scope) ([]match.Record, error) {
	items, err := get[[]serviceMatch](ctx, s.client, "/v1/matches", scope)
	if err != nil {
		return nil, err
	}

	out := make([]match.Record, 0, len(items))
	for _, m := range items {
		record := match.Record{
			ID:            m.ID,
			Player1:       m.Player1,
			Player2:       m.Player2,
			Score1:        m.Score1,
			Score2:        m.Score2,
			CompetitionID: m.CompetitionID,
			TournamentID:  m.TournamentID,
			Round:         m.Round,
			Status:        m.Status,
			Winner:        m.Winner,
			Team1:         m.Team1,
			Team2:         m.Team2,
		}
		if parsed, err := time.Parse(time.RFC3339, m.Date); err == nil {
			record.Date = parsed
		}
		out = append(out, record)
	}
	return out, nil
}

type servicePlayers struct {
	client *ServiceClient
}

func (s servicePlayers) List(ctx context.Context, scope match.Scope) ([]player.Player, error) {
	items, err := get[[]servicePlayer](ctx, s.client, "/v1/players", scope)
	if err != nil {
		return nil, err
	}

	out := make([]player.Player, 0, len(items))
	for _, p := range items {
		out = append(out, player.Player{ID: p.ID, Name: p.Name, CompetitionID: p.CompetitionID})
	}
	return out, nil
}

type serviceTeams struct {
	client *ServiceClient
}

// List returns the registered teams; names only seen on matches are left to the tally.
func (s serviceTeams) List(ctx context.Context) ([]team.Team, error) {
	items, err := get[[]serviceTeam](ctx, s.client, "/v1/teams", match.Overall())
	if err != nil {
		return nil, err
	}

	out := make([]team.Team, 0, len(items))
	for _, t := range items {
		if t.Registered {
			out = append(out, team.Team{ID: t.ID, Name: t.Name})
		}
	}
	return out, nil
}

func get[T any](ctx context.Context, c *ServiceClient, path string, scope match.Scope) (T, error) {
	var zero T

	endpoint := c.baseURL + path + "?" + url.Values{"scope": []string{scope.String()}}.Encode()
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return zero, fmt.Errorf("build request: %w", err)
	}
	req.Header.Set("Accept", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return zero, fmt.Errorf("%w: GET %s: %v", usecase.ErrDependencyUnavailable, path, err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(io.LimitReader(resp.Body, maxServiceResponseSize))
	if err != nil {
		return zero, fmt.Errorf("%w: read %s: %v", usecase.ErrDependencyUnavailable, path, err)
	}

	var envelope serviceEnvelope[T]
	if err := sonic.Unmarshal(body, &envelope); err != nil {
		return zero, fmt.Errorf("%w: decode %s (status %d): %v", usecase.ErrDependencyUnavailable, path, resp.StatusCode, err)
	}
	if envelope.Error != nil || resp.StatusCode >= http.StatusBadRequest {
		msg := http.StatusText(resp.StatusCode)
		if envelope.Error != nil {
			msg = envelope.Error.Message
		}
		if resp.StatusCode == http.StatusNotFound {
			return zero, fmt.Errorf("%w: %s", usecase.ErrNotFound, msg)
		}
		if resp.StatusCode == http.StatusBadRequest {
			return zero, fmt.Errorf("%w: %s", usecase.ErrInvalidInput, msg)
		}
		return zero, fmt.Errorf("%w: GET %s status %d: %s", usecase.ErrDependencyUnavailable, path, resp.StatusCode, msg)
	}
	return envelope.Data, nil
}
