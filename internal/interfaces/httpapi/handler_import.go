package httpapi

import (
	"fmt"
	"net/http"

	"github.com/riskibarqy/fifa-results/internal/domain/match"
	"github.com/riskibarqy/fifa-results/internal/usecase"
)

// RunImport copies one upstream scope into the local store. An empty body imports overall.
func (h *Handler) RunImport(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.RunImport")
	defer span.End()

	var req importRequest
	if r.ContentLength != 0 {
		if err := h.decodeRequest(ctx, w, r, &req); err != nil {
			writeError(ctx, w, err)
			return
		}
	}
	scope, err := match.ParseScope(req.Scope)
	if err != nil {
		writeError(ctx, w, fmt.Errorf("%w: %w", usecase.ErrInvalidInput, err))
		return
	}

	result, err := h.importService.Import(ctx, scope)
	if err != nil {
		h.logger.WarnContext(ctx, "import failed", "scope", scope.String(), "error", err)
		writeError(ctx, w, err)
		return
	}

	writeSuccess(ctx, w, http.StatusOK, importResultDTO{
		Scope:          result.Scope.String(),
		PlayersCreated: result.PlayersCreated,
		PlayersSkipped: result.PlayersSkipped,
		MatchesCreated: result.MatchesCreated,
		MatchesSkipped: result.MatchesSkipped,
		MatchesFailed:  result.MatchesFailed,
		Excluded:       result.Excluded,
		DurationMs:     result.DurationMs,
	})
}
