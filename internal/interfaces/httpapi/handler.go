package httpapi

import (
	"context"
	"fmt"
	"net/http"
	"strconv"
	"strings"
	"time"

	sonic "github.com/bytedance/sonic"
	"github.com/go-playground/validator/v10"
	"github.com/riskibarqy/fifa-results/internal/domain/match"
	"github.com/riskibarqy/fifa-results/internal/platform/logging"
	"github.com/riskibarqy/fifa-results/internal/usecase"
	"go.opentelemetry.io/otel/attribute"
)

const maxRequestBodyBytes = 1 << 20

// Services groups the use cases served over HTTP.
type Services struct {
	Players      *usecase.PlayerService
	Matches      *usecase.MatchService
	Standings    *usecase.StandingsService
	HeadToHead   *usecase.HeadToHeadService
	Stats        *usecase.StatsService
	Seasons      *usecase.SeasonService
	Competitions *usecase.CompetitionService
	Tournaments  *usecase.TournamentService
	Teams        *usecase.TeamService
	Imports      *usecase.ImportService
}

type Handler struct {
	playerService      *usecase.PlayerService
	matchService       *usecase.MatchService
	standingsService   *usecase.StandingsService
	headToHeadService  *usecase.HeadToHeadService
	statsService       *usecase.StatsService
	seasonService      *usecase.SeasonService
	competitionService *usecase.CompetitionService
	tournamentService  *usecase.TournamentService
	teamService        *usecase.TeamService
	importService      *usecase.ImportService
	logger             *logging.Logger
	validator          *validator.Validate
}

func NewHandler(services Services, logger *logging.Logger) *Handler {
	if logger == nil {
		logger = logging.Default()
	}

	return &Handler{
		playerService:      services.Players,
		matchService:       services.Matches,
		standingsService:   services.Standings,
		headToHeadService:  services.HeadToHead,
		statsService:       services.Stats,
		seasonService:      services.Seasons,
		competitionService: services.Competitions,
		tournamentService:  services.Tournaments,
		teamService:        services.Teams,
		importService:      services.Imports,
		logger:             logger,
		validator:          validator.New(),
	}
}

func (h *Handler) Healthz(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.Healthz")
	defer span.End()

	writeSuccess(ctx, w, http.StatusOK, map[string]string{"status": "ok"})
}

func (h *Handler) decodeRequest(ctx context.Context, w http.ResponseWriter, r *http.Request, payload any) error {
	ctx, span := startSpan(ctx, "httpapi.Handler.decodeRequest")
	defer span.End()

	decoder := sonic.ConfigDefault.NewDecoder(http.MaxBytesReader(w, r.Body, maxRequestBodyBytes))
	decoder.DisallowUnknownFields()
	if err := decoder.Decode(payload); err != nil {
		return fmt.Errorf("%w: invalid JSON payload: %v", usecase.ErrInvalidInput, err)
	}
	return h.validateRequest(ctx, payload)
}

func (h *Handler) validateRequest(ctx context.Context, payload any) error {
	ctx, span := startSpan(ctx, "httpapi.Handler.validateRequest")
	defer span.End()

	if err := h.validator.StructCtx(ctx, payload); err != nil {
		return fmt.Errorf("%w: validation failed: %v", usecase.ErrInvalidInput, err)
	}

	return nil
}

// scopeFromQuery reads ?scope=, falling back to the original ?year= parameter.
func scopeFromQuery(r *http.Request) (match.Scope, error) {
	query := r.URL.Query()
	raw := strings.TrimSpace(query.Get("scope"))
	if raw == "" {
		raw = strings.TrimSpace(query.Get("year"))
	}

	scope, err := match.ParseScope(raw)
	if err != nil {
		return match.Scope{}, fmt.Errorf("%w: %w", usecase.ErrInvalidInput, err)
	}
	annotateRequestSpan(r.Context(), attribute.String("fifa.scope", scope.String()))
	return scope, nil
}

func parseYears(raw string) ([]int, error) {
	parts := strings.Split(raw, ",")
	years := make([]int, 0, len(parts))
	for _, part := range parts {
		part = strings.TrimSpace(part)
		if part == "" {
			continue
		}
		year, err := strconv.Atoi(part)
		if err != nil || year <= 0 {
			return nil, fmt.Errorf("%w: invalid year %q", usecase.ErrInvalidInput, part)
		}
		years = append(years, year)
	}
	return years, nil
}

var matchDateLayouts = []string{time.RFC3339, "2006-01-02"}

func parseMatchDate(raw string) (time.Time, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return time.Time{}, nil
	}
	for _, layout := range matchDateLayouts {
		if parsed, err := time.Parse(layout, raw); err == nil {
			return parsed.UTC(), nil
		}
	}
	return time.Time{}, fmt.Errorf("%w: date must be RFC3339 or YYYY-MM-DD", usecase.ErrInvalidInput)
}
