package httpapi

import (
	"net/http"
	"strings"

	"github.com/riskibarqy/fifa-results/internal/usecase"
)

func (h *Handler) ListTournaments(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.ListTournaments")
	defer span.End()

	items, err := h.tournamentService.List(ctx)
	if err != nil {
		h.logger.WarnContext(ctx, "list tournaments failed", "error", err)
		writeError(ctx, w, err)
		return
	}

	out := make([]tournamentDTO, 0, len(items))
	for _, item := range items {
		out = append(out, tournamentToDTO(item))
	}
	writeSuccess(ctx, w, http.StatusOK, out)
}

func (h *Handler) CreateTournament(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.CreateTournament")
	defer span.End()

	var req createTournamentRequest
	if err := h.decodeRequest(ctx, w, r, &req); err != nil {
		writeError(ctx, w, err)
		return
	}

	item, err := h.tournamentService.Create(ctx, usecase.CreateTournamentInput{
		Name:         req.Name,
		Participants: req.Participants,
	})
	if err != nil {
		h.logger.WarnContext(ctx, "create tournament failed", "name", req.Name, "error", err)
		writeError(ctx, w, err)
		return
	}

	writeSuccess(ctx, w, http.StatusCreated, tournamentToDTO(item))
}

func (h *Handler) GetTournament(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.GetTournament")
	defer span.End()

	tournamentID := strings.TrimSpace(r.PathValue("tournamentID"))
	detail, err := h.tournamentService.Get(ctx, tournamentID)
	if err != nil {
		h.logger.WarnContext(ctx, "get tournament failed", "tournament_id", tournamentID, "error", err)
		writeError(ctx, w, err)
		return
	}

	writeSuccess(ctx, w, http.StatusOK, tournamentDetailDTO{
		tournamentDTO: tournamentToDTO(detail.Tournament),
		Matches:       matchesToDTO(detail.Matches),
		FinalRound:    detail.FinalRound,
		Champion:      detail.Champion,
	})
}

func (h *Handler) ScheduleTournamentMatch(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.ScheduleTournamentMatch")
	defer span.End()

	tournamentID := strings.TrimSpace(r.PathValue("tournamentID"))
	var req scheduleTournamentMatchRequest
	if err := h.decodeRequest(ctx, w, r, &req); err != nil {
		writeError(ctx, w, err)
		return
	}

	item, err := h.tournamentService.ScheduleMatch(ctx, usecase.ScheduleTournamentMatchInput{
		TournamentID: tournamentID,
		Player1:      req.Player1,
		Player2:      req.Player2,
		Round:        req.Round,
	})
	if err != nil {
		h.logger.WarnContext(ctx, "schedule tournament match failed", "tournament_id", tournamentID, "round", req.Round, "error", err)
		writeError(ctx, w, err)
		return
	}

	writeSuccess(ctx, w, http.StatusCreated, matchToDTO(item))
}

func (h *Handler) RecordTournamentResult(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.RecordTournamentResult")
	defer span.End()

	tournamentID := strings.TrimSpace(r.PathValue("tournamentID"))
	matchID := strings.TrimSpace(r.PathValue("matchID"))
	var req recordTournamentResultRequest
	if err := h.decodeRequest(ctx, w, r, &req); err != nil {
		writeError(ctx, w, err)
		return
	}

	item, err := h.tournamentService.RecordResult(ctx, usecase.RecordTournamentResultInput{
		TournamentID: tournamentID,
		MatchID:      matchID,
		Score1:       *req.Score1,
		Score2:       *req.Score2,
		Winner:       req.Winner,
	})
	if err != nil {
		h.logger.WarnContext(ctx, "record tournament result failed", "tournament_id", tournamentID, "match_id", matchID, "error", err)
		writeError(ctx, w, err)
		return
	}

	writeSuccess(ctx, w, http.StatusOK, matchToDTO(item))
}
