package httpapi

import (
	"encoding/csv"
	"fmt"
	"net/http"
	"strconv"

	"github.com/riskibarqy/fifa-results/internal/domain/standings"
	"github.com/valyala/bytebufferpool"
)

var standingsCSVHeader = []string{
	"rank", "player", "matches", "wins", "draws", "losses",
	"goals_for", "goals_against", "goal_difference", "points", "efficiency",
}

// ExportStandingsCSV writes the same table as GetStandings as a CSV attachment.
func (h *Handler) ExportStandingsCSV(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.ExportStandingsCSV")
	defer span.End()

	scope, err := scopeFromQuery(r)
	if err != nil {
		writeError(ctx, w, err)
		return
	}

	result, err := h.standingsService.Standings(ctx, scope)
	if err != nil {
		h.logger.WarnContext(ctx, "export standings failed", "scope", scope.String(), "error", err)
		writeError(ctx, w, err)
		return
	}

	buf := bytebufferpool.Get()
	defer bytebufferpool.Put(buf)

	if err := writeStandingsCSV(buf, result.Table); err != nil {
		h.logger.ErrorContext(ctx, "encode standings csv failed", "scope", scope.String(), "error", err)
		writeInternalError(ctx, w)
		return
	}

	w.Header().Set("Content-Type", "text/csv; charset=utf-8")
	w.Header().Set("Content-Disposition", fmt.Sprintf("attachment; filename=%q", "standings-"+scope.String()+".csv"))
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write(buf.B)
}

func writeStandingsCSV(buf *bytebufferpool.ByteBuffer, table standings.Table) error {
	writer := csv.NewWriter(buf)
	if err := writer.Write(standingsCSVHeader); err != nil {
		return err
	}
	for _, row := range table.Rows {
		record := []string{
			strconv.Itoa(row.Rank),
			row.Player,
			strconv.Itoa(row.Matches),
			strconv.Itoa(row.Wins),
			strconv.Itoa(row.Draws),
			strconv.Itoa(row.Losses),
			strconv.Itoa(row.GoalsFor),
			strconv.Itoa(row.GoalsAgainst),
			strconv.Itoa(row.GoalDifference),
			strconv.Itoa(row.Points),
			strconv.FormatFloat(row.Efficiency, 'f', 2, 64),
		}
		if err := writer.Write(record); err != nil {
			return err
		}
	}
	writer.Flush()
	return writer.Error()
}
