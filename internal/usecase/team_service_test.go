package usecase

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/riskibarqy/fifa-results/internal/domain/match"
)

func TestTeamService_Create(t *testing.T) {
	t.Parallel()

	teams := newStubTeamRepo("Real Madrid")
	svc := NewTeamService(teams, ScopeSources{Matches: &stubMatchRepo{}}, &seqIDGenerator{prefix: TeamIDPrefix})
	now := time.Date(2024, 9, 1, 10, 0, 0, 0, time.UTC)
	svc.now = func() time.Time { return now }

	got, err := svc.Create(context.Background(), "  Arsenal ")
	if err != nil {
		t.Fatalf("create team: %v", err)
	}
	if got.ID != "tm-1" || got.Name != "Arsenal" || !got.CreatedAt.Equal(now) {
		t.Fatalf("unexpected team: %+v", got)
	}

	if _, err := svc.Create(context.Background(), "REAL  madrid"); !errors.Is(err, ErrConflict) {
		t.Fatalf("expected conflict for a case-insensitive duplicate, got %v", err)
	}
	if _, err := svc.Create(context.Background(), "  "); !errors.Is(err, ErrInvalidInput) {
		t.Fatalf("expected invalid input, got %v", err)
	}
}

func TestTeamService_Delete(t *testing.T) {
	t.Parallel()

	teams := newStubTeamRepo("Real Madrid", "Arsenal")
	svc := NewTeamService(teams, ScopeSources{Matches: &stubMatchRepo{}}, &seqIDGenerator{})

	got, err := svc.Delete(context.Background(), "tm2")
	if err != nil {
		t.Fatalf("delete team: %v", err)
	}
	if got.Name != "Arsenal" || len(teams.items) != 1 {
		t.Fatalf("unexpected delete result: got=%+v remaining=%+v", got, teams.items)
	}

	if _, err := svc.Delete(context.Background(), "tm2"); !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected not found on second delete, got %v", err)
	}
	if _, err := svc.Delete(context.Background(), " "); !errors.Is(err, ErrInvalidInput) {
		t.Fatalf("expected invalid input, got %v", err)
	}
}

func TestTeamService_ListTalliesScope(t *testing.T) {
	t.Parallel()

	matches := &stubMatchRepo{items: []match.Record{
		{ID: "m1", Player1: "Ana", Player2: "Ben", Team1: "Real Madrid", Team2: "Arsenal", Score1: 2, Score2: 0, Date: time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)},
		{ID: "m2", Player1: "Ana", Player2: "Ben", Team1: "Real Madrid", Team2: "Arsenal", Score1: 1, Score2: 1, CompetitionID: "cmp-1"},
		{ID: "m3", Player1: "Ana", Player2: "Ben", Status: match.StatusPending, Team1: "Arsenal"},
	}}
	svc := NewTeamService(newStubTeamRepo("Arsenal", "Real Madrid", "Ajax"), ScopeSources{Matches: matches}, &seqIDGenerator{})

	rows, err := svc.List(context.Background(), match.Overall())
	if err != nil {
		t.Fatalf("list teams: %v", err)
	}
	if len(rows) != 3 {
		t.Fatalf("unexpected rows: %+v", rows)
	}
	if rows[0].Team != "Real Madrid" || rows[0].Matches != 1 || rows[0].Wins != 1 {
		t.Fatalf("overall scope must ignore competition and pending matches: %+v", rows)
	}
	if rows[2].Team != "Ajax" || rows[2].Matches != 0 {
		t.Fatalf("unused registered team must be listed last: %+v", rows)
	}
}

func TestTeamService_ListDependencyFailure(t *testing.T) {
	t.Parallel()

	teams := newStubTeamRepo()
	teams.listErr = errors.New("db down")
	svc := NewTeamService(teams, ScopeSources{Matches: &stubMatchRepo{}}, &seqIDGenerator{})

	if _, err := svc.List(context.Background(), match.Overall()); !errors.Is(err, ErrDependencyUnavailable) {
		t.Fatalf("expected dependency unavailable, got %v", err)
	}
}
