package resultsapi

import (
	"context"
	stderrors "errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	sonic "github.com/bytedance/sonic"
	crerr "github.com/cockroachdb/errors"
	"github.com/riskibarqy/fifa-results/internal/platform/logging"
	"github.com/riskibarqy/fifa-results/internal/platform/resilience"
	"github.com/riskibarqy/fifa-results/internal/usecase"
)

const (
	defaultBaseURL  = "https://fifa-matches-results.onrender.com"
	defaultTimeout  = 20 * time.Second
	maxResponseSize = 6 << 20
)

var errUpstreamTransient = crerr.New("results api transient failure")

type ClientConfig struct {
	HTTPClient     *http.Client
	BaseURL        string
	Timeout        time.Duration
	MaxRetries     int
	Logger         *logging.Logger
	CircuitBreaker resilience.CircuitBreakerConfig
}

// Client reads the public results API. It is read only; writes go to the local store.
type Client struct {
	httpClient *http.Client
	baseURL    string
	maxRetries int
	logger     *logging.Logger
	breaker    *resilience.CircuitBreaker
	flight     resilience.Group[[]byte]
}

func NewClient(cfg ClientConfig) *Client {
	logger := cfg.Logger
	if logger == nil {
		logger = logging.Default()
	}

	httpClient := cfg.HTTPClient
	if httpClient == nil {
		httpClient = &http.Client{Timeout: cfg.Timeout}
	}
	if httpClient.Timeout <= 0 {
		httpClient.Timeout = defaultTimeout
	}

	baseURL := strings.TrimRight(strings.TrimSpace(cfg.BaseURL), "/")
	if baseURL == "" {
		baseURL = defaultBaseURL
	}

	breaker := resilience.NewCircuitBreaker(cfg.CircuitBreaker)
	breaker.OnStateChange(func(from, to resilience.CircuitState) {
		logger.Warn("results api circuit breaker state changed", "from", string(from), "to", string(to))
	})

	return &Client{
		httpClient: httpClient,
		baseURL:    baseURL,
		maxRetries: max(cfg.MaxRetries, 0),
		logger:     logger,
		breaker:    breaker,
	}
}

// Sources exposes the client as the read side of a scope load.
func (c *Client) Sources() usecase.ScopeSources {
	return usecase.ScopeSources{
		Matches: MatchReader{client: c},
		Players: PlayerReader{client: c},
		Teams:   TeamReader{client: c},
	}
}

func (c *Client) fetchMatches(ctx context.Context, year string) ([]matchPayload, error) {
	var out []matchPayload
	if err := c.doJSON(ctx, "/api/matches", map[string]string{"year": year}, &out); err != nil {
		return nil, fmt.Errorf("fetch matches year=%s: %w", year, err)
	}
	return out, nil
}

func (c *Client) fetchPlayers(ctx context.Context, year string) ([]playerPayload, error) {
	var out []playerPayload
	if err := c.doJSON(ctx, "/api/players", map[string]string{"year": year}, &out); err != nil {
		return nil, fmt.Errorf("fetch players year=%s: %w", year, err)
	}
	return out, nil
}

func (c *Client) fetchCompetitions(ctx context.Context) ([]competitionPayload, error) {
	var out []competitionPayload
	if err := c.doJSON(ctx, "/api/competitions", nil, &out); err != nil {
		return nil, fmt.Errorf("fetch competitions: %w", err)
	}
	return out, nil
}

func (c *Client) fetchTournaments(ctx context.Context) ([]tournamentPayload, error) {
	var out []tournamentPayload
	if err := c.doJSON(ctx, "/api/tournaments", nil, &out); err != nil {
		return nil, fmt.Errorf("fetch tournaments: %w", err)
	}
	return out, nil
}

func (c *Client) fetchTeams(ctx context.Context) ([]teamPayload, error) {
	var out []teamPayload
	if err := c.doJSON(ctx, "/api/teams", nil, &out); err != nil {
		return nil, fmt.Errorf("fetch teams: %w", err)
	}
	return out, nil
}

func (c *Client) doJSON(ctx context.Context, path string, query map[string]string, target any) error {
	if err := c.breaker.Allow(); err != nil {
		c.logger.WarnContext(ctx, "results api circuit breaker rejected request", "state", string(c.breaker.State()))
		return fmt.Errorf("%w: results api is temporarily unavailable", usecase.ErrDependencyUnavailable)
	}

	values := url.Values{}
	for key, value := range query {
		values.Set(key, value)
	}
	fullURL := c.baseURL + path
	if encoded := values.Encode(); encoded != "" {
		fullURL += "?" + encoded
	}

	raw, err, _ := c.flight.Do(fullURL, func() ([]byte, error) {
		raw, reqErr := c.executeRequest(ctx, fullURL)
		if reqErr != nil && isTransient(reqErr) {
			c.breaker.RecordFailure()
		} else {
			c.breaker.RecordSuccess()
		}
		return raw, reqErr
	})
	if err != nil {
		return fmt.Errorf("%w: %w", usecase.ErrDependencyUnavailable, err)
	}

	if err := sonic.Unmarshal(raw, target); err != nil {
		return fmt.Errorf("%w: decode results api payload: %w", usecase.ErrDependencyUnavailable, err)
	}
	return nil
}

func (c *Client) executeRequest(ctx context.Context, fullURL string) ([]byte, error) {
	var lastErr error
	for attempt := 0; attempt <= c.maxRetries; attempt++ {
		req, err := http.NewRequestWithContext(ctx, http.MethodGet, fullURL, nil)
		if err != nil {
			return nil, fmt.Errorf("build request: %w", err)
		}
		req.Header.Set("accept", "application/json")

		resp, err := c.httpClient.Do(req)
		if err != nil {
			lastErr = crerr.Wrapf(errUpstreamTransient, "send request: %v", err)
		} else {
			raw, readErr := io.ReadAll(io.LimitReader(resp.Body, maxResponseSize))
			_ = resp.Body.Close()
			switch {
			case readErr != nil:
				lastErr = crerr.Wrapf(errUpstreamTransient, "read response body: %v", readErr)
			case resp.StatusCode >= 200 && resp.StatusCode < 300:
				return raw, nil
			case isRetryableStatus(resp.StatusCode):
				lastErr = crerr.Wrapf(errUpstreamTransient, "upstream status=%d body=%s", resp.StatusCode, abbreviateBody(raw))
			default:
				return nil, crerr.Newf("upstream status=%d body=%s", resp.StatusCode, abbreviateBody(raw))
			}
		}

		if attempt == c.maxRetries {
			break
		}
		timer := time.NewTimer(time.Duration(attempt+1) * time.Second)
		select {
		case <-ctx.Done():
			timer.Stop()
			return nil, ctx.Err()
		case <-timer.C:
		}
	}

	if lastErr == nil {
		lastErr = crerr.New("upstream request failed")
	}
	c.logger.WarnContext(ctx, "results api request failed", "url", fullURL, "error", lastErr)
	return nil, lastErr
}

func isTransient(err error) bool {
	return stderrors.Is(err, errUpstreamTransient)
}

func isRetryableStatus(code int) bool {
	return code == http.StatusTooManyRequests || code >= http.StatusInternalServerError
}

func abbreviateBody(body []byte) string {
	text := strings.TrimSpace(string(body))
	if len(text) <= 240 {
		return text
	}
	return text[:240] + "..."
}
