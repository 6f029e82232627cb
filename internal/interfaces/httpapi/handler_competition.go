package httpapi

import (
	"net/http"
	"strings"

	"github.com/riskibarqy/fifa-results/internal/usecase"
)

func (h *Handler) ListCompetitions(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.ListCompetitions")
	defer span.End()

	items, err := h.competitionService.List(ctx)
	if err != nil {
		h.logger.WarnContext(ctx, "list competitions failed", "error", err)
		writeError(ctx, w, err)
		return
	}

	out := make([]competitionDTO, 0, len(items))
	for _, item := range items {
		out = append(out, competitionToDTO(item))
	}
	writeSuccess(ctx, w, http.StatusOK, out)
}

func (h *Handler) CreateCompetition(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.CreateCompetition")
	defer span.End()

	var req createCompetitionRequest
	if err := h.decodeRequest(ctx, w, r, &req); err != nil {
		writeError(ctx, w, err)
		return
	}

	item, err := h.competitionService.Create(ctx, req.Name)
	if err != nil {
		h.logger.WarnContext(ctx, "create competition failed", "name", req.Name, "error", err)
		writeError(ctx, w, err)
		return
	}

	writeSuccess(ctx, w, http.StatusCreated, competitionToDTO(item))
}

func (h *Handler) GetCompetition(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.GetCompetition")
	defer span.End()

	competitionID := strings.TrimSpace(r.PathValue("competitionID"))
	detail, err := h.competitionService.Get(ctx, competitionID)
	if err != nil {
		h.logger.WarnContext(ctx, "get competition failed", "competition_id", competitionID, "error", err)
		writeError(ctx, w, err)
		return
	}

	writeSuccess(ctx, w, http.StatusOK, competitionDetailDTO{
		competitionDTO: competitionToDTO(detail.Competition),
		Players:        playersToDTO(detail.Players),
		Matches:        matchesToDTO(detail.Matches),
		Standings:      standingRowsToDTO(detail.Standings),
		Excluded:       detail.Excluded,
	})
}

func (h *Handler) AddCompetitionPlayer(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.AddCompetitionPlayer")
	defer span.End()

	competitionID := strings.TrimSpace(r.PathValue("competitionID"))
	var req registerPlayerRequest
	if err := h.decodeRequest(ctx, w, r, &req); err != nil {
		writeError(ctx, w, err)
		return
	}

	item, err := h.competitionService.AddPlayer(ctx, competitionID, req.Name)
	if err != nil {
		h.logger.WarnContext(ctx, "add competition player failed", "competition_id", competitionID, "name", req.Name, "error", err)
		writeError(ctx, w, err)
		return
	}

	writeSuccess(ctx, w, http.StatusCreated, playerToDTO(item))
}

func (h *Handler) AddCompetitionMatch(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.AddCompetitionMatch")
	defer span.End()

	competitionID := strings.TrimSpace(r.PathValue("competitionID"))
	var req addCompetitionMatchRequest
	if err := h.decodeRequest(ctx, w, r, &req); err != nil {
		writeError(ctx, w, err)
		return
	}

	item, err := h.competitionService.AddMatch(ctx, usecase.AddCompetitionMatchInput{
		CompetitionID: competitionID,
		Player1ID:     req.Player1ID,
		Player2ID:     req.Player2ID,
		Score1:        *req.Score1,
		Score2:        *req.Score2,
	})
	if err != nil {
		h.logger.WarnContext(ctx, "add competition match failed", "competition_id", competitionID, "error", err)
		writeError(ctx, w, err)
		return
	}

	writeSuccess(ctx, w, http.StatusCreated, matchToDTO(item))
}
