package postgres

import (
	"database/sql"
	"errors"
	"fmt"
	"testing"
	"time"

	"github.com/lib/pq"
	"github.com/riskibarqy/fifa-results/internal/domain/match"
	qb "github.com/riskibarqy/fifa-results/internal/platform/querybuilder"
	"github.com/riskibarqy/fifa-results/internal/usecase"
)

func TestIsUniqueViolation(t *testing.T) {
	t.Run("matches wrapped pq unique violation", func(t *testing.T) {
		err := fmt.Errorf("insert player: %w", &pq.Error{Code: "23505"})
		if !isUniqueViolation(err) {
			t.Fatalf("expected true for unique violation")
		}
	})

	t.Run("ignores other pq errors", func(t *testing.T) {
		if isUniqueViolation(&pq.Error{Code: "42P01"}) {
			t.Fatalf("expected false for undefined table")
		}
	})

	t.Run("ignores plain errors", func(t *testing.T) {
		if isUniqueViolation(sql.ErrConnDone) {
			t.Fatalf("expected false for plain error")
		}
	})
}

func TestInsertError(t *testing.T) {
	t.Run("unique violation is a conflict", func(t *testing.T) {
		err := insertError(`player "Ana"`, &pq.Error{Code: "23505"})
		if !errors.Is(err, usecase.ErrConflict) {
			t.Fatalf("expected conflict, got %v", err)
		}
		var pqErr *pq.Error
		if !errors.As(err, &pqErr) {
			t.Fatalf("driver error must stay reachable: %v", err)
		}
	})

	t.Run("other failures are not conflicts", func(t *testing.T) {
		err := insertError("match mt-1", &pq.Error{Code: "23503"})
		if errors.Is(err, usecase.ErrConflict) {
			t.Fatalf("foreign key failure must not be a conflict: %v", err)
		}
		if err.Error() == "" {
			t.Fatalf("expected message")
		}
	})
}

func TestDeleteTeamQuery(t *testing.T) {
	query, args, err := deleteTeamQuery("tm-1")
	if err != nil {
		t.Fatalf("build query: %v", err)
	}
	want := "UPDATE teams SET deleted_at = NOW(), updated_at = NOW() WHERE public_id = $1 AND deleted_at IS NULL RETURNING public_id"
	if query != want {
		t.Fatalf("unexpected query:\n got=%s\nwant=%s", query, want)
	}
	if len(args) != 1 || args[0] != "tm-1" {
		t.Fatalf("unexpected args: %v", args)
	}
}

func TestIsNotFound(t *testing.T) {
	if !isNotFound(fmt.Errorf("get match: %w", sql.ErrNoRows)) {
		t.Fatalf("expected wrapped ErrNoRows to be not found")
	}
}

func TestNullString(t *testing.T) {
	if got := nullString("  "); got.Valid {
		t.Fatalf("expected blank string to be null, got %+v", got)
	}
	if got := nullString(" cmp-1 "); !got.Valid || got.String != "cmp-1" {
		t.Fatalf("unexpected null string: %+v", got)
	}
}

func TestMatchScopeConditions(t *testing.T) {
	tests := []struct {
		name      string
		scope     match.Scope
		wantQuery string
		wantArgs  []any
	}{
		{
			name:      "overall",
			scope:     match.Overall(),
			wantQuery: "SELECT * FROM matches WHERE competition_public_id IS NULL AND tournament_public_id IS NULL",
		},
		{
			name:      "year",
			scope:     match.ForYear(2024),
			wantQuery: "SELECT * FROM matches WHERE competition_public_id IS NULL AND tournament_public_id IS NULL AND played_at >= $1 AND played_at < $2",
			wantArgs: []any{
				time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC),
				time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC),
			},
		},
		{
			name:      "competition",
			scope:     match.ForCompetition("cmp-1"),
			wantQuery: "SELECT * FROM matches WHERE competition_public_id = $1",
			wantArgs:  []any{"cmp-1"},
		},
		{
			name:      "tournament",
			scope:     match.ForTournament("trn-1"),
			wantQuery: "SELECT * FROM matches WHERE tournament_public_id = $1",
			wantArgs:  []any{"trn-1"},
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			query, args, err := qb.Select("*").From("matches").Where(matchScopeConditions(tc.scope)...).ToSQL()
			if err != nil {
				t.Fatalf("build query: %v", err)
			}
			if query != tc.wantQuery {
				t.Fatalf("unexpected query:\n got=%s\nwant=%s", query, tc.wantQuery)
			}
			if len(args) != len(tc.wantArgs) {
				t.Fatalf("unexpected args: got=%v want=%v", args, tc.wantArgs)
			}
			for i := range args {
				if args[i] != tc.wantArgs[i] {
					t.Fatalf("unexpected arg %d: got=%v want=%v", i, args[i], tc.wantArgs[i])
				}
			}
		})
	}
}
