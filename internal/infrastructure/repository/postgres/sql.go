package postgres

import (
	"database/sql"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/lib/pq"
	"github.com/riskibarqy/fifa-results/internal/domain/match"
	qb "github.com/riskibarqy/fifa-results/internal/platform/querybuilder"
	"github.com/riskibarqy/fifa-results/internal/usecase"
)

const pqUniqueViolation = "23505"

func isNotFound(err error) bool {
	return errors.Is(err, sql.ErrNoRows)
}

func isUniqueViolation(err error) bool {
	var pqErr *pq.Error
	if errors.As(err, &pqErr) {
		return string(pqErr.Code) == pqUniqueViolation
	}
	return false
}

// insertError maps a unique violation to usecase.ErrConflict.
func insertError(what string, err error) error {
	if isUniqueViolation(err) {
		return fmt.Errorf("%w: %s already exists: %w", usecase.ErrConflict, what, err)
	}
	return fmt.Errorf("insert %s: %w", what, err)
}

func nullString(value string) sql.NullString {
	value = strings.TrimSpace(value)
	return sql.NullString{String: value, Valid: value != ""}
}

// yearBounds returns the half-open UTC interval covering year.
func yearBounds(year int) (time.Time, time.Time) {
	start := time.Date(year, time.January, 1, 0, 0, 0, 0, time.UTC)
	return start, start.AddDate(1, 0, 0)
}

// matchScopeConditions mirrors match.Scope.Contains for the matches table.
func matchScopeConditions(scope match.Scope) []qb.Condition {
	switch scope.Kind {
	case match.ScopeCompetition:
		return []qb.Condition{qb.Eq("competition_public_id", scope.ID)}
	case match.ScopeTournament:
		return []qb.Condition{qb.Eq("tournament_public_id", scope.ID)}
	}

	conds := []qb.Condition{
		qb.IsNull("competition_public_id"),
		qb.IsNull("tournament_public_id"),
	}
	if scope.Kind == match.ScopeYear {
		start, end := yearBounds(scope.Year)
		conds = append(conds, qb.Gte("played_at", start), qb.Lt("played_at", end))
	}
	return conds
}
