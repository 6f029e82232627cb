package httpapi

import (
	"fmt"
	"net/http"
	"strings"

	"github.com/riskibarqy/fifa-results/internal/usecase"
)

func (h *Handler) ListPlayers(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.ListPlayers")
	defer span.End()

	scope, err := scopeFromQuery(r)
	if err != nil {
		writeError(ctx, w, err)
		return
	}

	items, err := h.playerService.List(ctx, scope)
	if err != nil {
		h.logger.WarnContext(ctx, "list players failed", "scope", scope.String(), "error", err)
		writeError(ctx, w, err)
		return
	}

	out := make([]playerSummaryDTO, 0, len(items))
	for _, item := range items {
		out = append(out, playerSummaryToDTO(item))
	}
	writeSuccess(ctx, w, http.StatusOK, out)
}

func (h *Handler) RegisterPlayer(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.RegisterPlayer")
	defer span.End()

	var req registerPlayerRequest
	if err := h.decodeRequest(ctx, w, r, &req); err != nil {
		writeError(ctx, w, err)
		return
	}

	item, err := h.playerService.Register(ctx, req.Name)
	if err != nil {
		h.logger.WarnContext(ctx, "register player failed", "name", req.Name, "error", err)
		writeError(ctx, w, err)
		return
	}

	writeSuccess(ctx, w, http.StatusCreated, playerToDTO(item))
}

func (h *Handler) ListPlayerMatches(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.ListPlayerMatches")
	defer span.End()

	name := strings.TrimSpace(r.PathValue("name"))
	scope, err := scopeFromQuery(r)
	if err != nil {
		writeError(ctx, w, err)
		return
	}

	items, err := h.matchService.ListByPlayer(ctx, name, scope)
	if err != nil {
		h.logger.WarnContext(ctx, "list player matches failed", "player", name, "scope", scope.String(), "error", err)
		writeError(ctx, w, err)
		return
	}

	out := make([]playerMatchDTO, 0, len(items))
	for _, item := range items {
		out = append(out, playerMatchDTO{matchDTO: matchToDTO(item.Record), Outcome: string(item.Outcome)})
	}
	writeSuccess(ctx, w, http.StatusOK, out)
}

func (h *Handler) ListMatches(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.ListMatches")
	defer span.End()

	scope, err := scopeFromQuery(r)
	if err != nil {
		writeError(ctx, w, err)
		return
	}

	items, err := h.matchService.List(ctx, scope)
	if err != nil {
		h.logger.WarnContext(ctx, "list matches failed", "scope", scope.String(), "error", err)
		writeError(ctx, w, err)
		return
	}

	writeSuccess(ctx, w, http.StatusOK, matchesToDTO(items))
}

func (h *Handler) RecordMatch(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.RecordMatch")
	defer span.End()

	var req recordMatchRequest
	if err := h.decodeRequest(ctx, w, r, &req); err != nil {
		writeError(ctx, w, err)
		return
	}
	playedAt, err := parseMatchDate(req.Date)
	if err != nil {
		writeError(ctx, w, err)
		return
	}

	item, err := h.matchService.Record(ctx, usecase.RecordMatchInput{
		Player1: req.Player1,
		Player2: req.Player2,
		Score1:  *req.Score1,
		Score2:  *req.Score2,
		Date:    playedAt,
		Team1:   req.Team1,
		Team2:   req.Team2,
	})
	if err != nil {
		h.logger.WarnContext(ctx, "record match failed", "player1", req.Player1, "player2", req.Player2, "error", err)
		writeError(ctx, w, err)
		return
	}

	writeSuccess(ctx, w, http.StatusCreated, matchToDTO(item))
}

func (h *Handler) GetStandings(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.GetStandings")
	defer span.End()

	scope, err := scopeFromQuery(r)
	if err != nil {
		writeError(ctx, w, err)
		return
	}

	result, err := h.standingsService.Standings(ctx, scope)
	if err != nil {
		h.logger.WarnContext(ctx, "get standings failed", "scope", scope.String(), "error", err)
		writeError(ctx, w, err)
		return
	}

	writeSuccess(ctx, w, http.StatusOK, standingsDTO{
		Scope:    result.Scope.String(),
		Rows:     standingRowsToDTO(result.Table),
		Excluded: result.Excluded,
		NoData:   result.NoData,
	})
}

func (h *Handler) GetHeadToHead(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.GetHeadToHead")
	defer span.End()

	query := r.URL.Query()
	playerA := strings.TrimSpace(query.Get("player1"))
	playerB := strings.TrimSpace(query.Get("player2"))
	if playerA == "" || playerB == "" {
		writeError(ctx, w, fmt.Errorf("%w: player1 and player2 are required", usecase.ErrInvalidInput))
		return
	}
	scope, err := scopeFromQuery(r)
	if err != nil {
		writeError(ctx, w, err)
		return
	}

	result, err := h.headToHeadService.Compare(ctx, playerA, playerB, scope)
	if err != nil {
		h.logger.WarnContext(ctx, "head to head failed", "player1", playerA, "player2", playerB, "scope", scope.String(), "error", err)
		writeError(ctx, w, err)
		return
	}

	s := result.Summary
	writeSuccess(ctx, w, http.StatusOK, headToHeadDTO{
		Scope:        result.Scope.String(),
		Player1:      s.PlayerA,
		Player2:      s.PlayerB,
		TotalMatches: s.TotalMatches,
		Player1Wins:  s.AWins,
		Player2Wins:  s.BWins,
		Draws:        s.Draws,
		Player1Goals: s.AGoals,
		Player2Goals: s.BGoals,
		Matches:      matchesToDTO(s.Matches),
		Excluded:     result.Excluded,
	})
}

func (h *Handler) GetStats(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.GetStats")
	defer span.End()

	scope, err := scopeFromQuery(r)
	if err != nil {
		writeError(ctx, w, err)
		return
	}

	result, err := h.statsService.Summary(ctx, scope)
	if err != nil {
		h.logger.WarnContext(ctx, "get stats failed", "scope", scope.String(), "error", err)
		writeError(ctx, w, err)
		return
	}

	writeSuccess(ctx, w, http.StatusOK, statsToDTO(result))
}

// GetSeasonOverview summarizes each year in ?years=2023,2024.
func (h *Handler) GetSeasonOverview(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.GetSeasonOverview")
	defer span.End()

	years, err := parseYears(r.URL.Query().Get("years"))
	if err != nil {
		writeError(ctx, w, err)
		return
	}

	items, err := h.seasonService.Overview(ctx, years)
	if err != nil {
		h.logger.WarnContext(ctx, "season overview failed", "years", years, "error", err)
		writeError(ctx, w, err)
		return
	}

	out := make([]seasonDTO, 0, len(items))
	for _, item := range items {
		dto := seasonDTO{
			Year:     item.Year,
			Matches:  item.Matches,
			Players:  item.Players,
			Excluded: item.Excluded,
		}
		if item.Leader != nil {
			leader := standingRowToDTO(*item.Leader)
			dto.Leader = &leader
		}
		out = append(out, dto)
	}
	writeSuccess(ctx, w, http.StatusOK, out)
}
