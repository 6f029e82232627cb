package tournament

import (
	"errors"
	"testing"

	"github.com/riskibarqy/fifa-results/internal/domain/match"
)

func TestValidate(t *testing.T) {
	t.Parallel()

	valid := Tournament{Name: " Winter Cup ", Participants: []string{"A", " B ", "", "C"}}
	if err := valid.Validate(); err != nil {
		t.Fatalf("validate tournament: %v", err)
	}
	if valid.Name != "Winter Cup" || len(valid.Participants) != 3 || valid.Participants[1] != "B" {
		t.Fatalf("unexpected normalized tournament: %+v", valid)
	}

	tests := []struct {
		name string
		in   Tournament
		want error
	}{
		{name: "missing name", in: Tournament{Participants: []string{"A", "B"}}, want: ErrNameRequired},
		{name: "one participant", in: Tournament{Name: "Cup", Participants: []string{"A"}}, want: ErrNotEnoughPlayers},
		{name: "duplicate", in: Tournament{Name: "Cup", Participants: []string{"A", "A"}}, want: ErrDuplicateParticipant},
	}
	for _, tc := range tests {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			if err := tc.in.Validate(); !errors.Is(err, tc.want) {
				t.Fatalf("unexpected error: got=%v want=%v", err, tc.want)
			}
		})
	}
}

func TestValidateMatch(t *testing.T) {
	t.Parallel()

	cup := Tournament{Name: "Cup", Participants: []string{"A", "B", "C", "D"}}
	if err := cup.ValidateMatch(match.Record{Player1: "A", Player2: "B", Round: 1, Status: match.StatusPending}); err != nil {
		t.Fatalf("validate match: %v", err)
	}
	if err := cup.ValidateMatch(match.Record{Player1: "A", Player2: "E", Round: 1, Status: match.StatusPending}); !errors.Is(err, ErrNotParticipant) {
		t.Fatalf("expected not participant error, got=%v", err)
	}
	if err := cup.ValidateMatch(match.Record{Player1: "A", Player2: "B", Status: match.StatusPending}); !errors.Is(err, ErrInvalidRound) {
		t.Fatalf("expected invalid round error, got=%v", err)
	}
}

func TestComplete(t *testing.T) {
	t.Parallel()

	pending := match.Record{ID: "m1", Player1: "A", Player2: "B", Round: 1, Status: match.StatusPending}

	done, err := Complete(pending, 2, 1, "")
	if err != nil {
		t.Fatalf("complete match: %v", err)
	}
	if done.Winner != "A" || done.Status != match.StatusCompleted {
		t.Fatalf("unexpected completed match: %+v", done)
	}

	if _, err := Complete(done, 1, 0, ""); !errors.Is(err, match.ErrNotPending) {
		t.Fatalf("expected not pending error, got=%v", err)
	}
	if _, err := Complete(pending, 1, 1, ""); !errors.Is(err, match.ErrInvalidWinner) {
		t.Fatalf("expected winner required on level score, got=%v", err)
	}
	if _, err := Complete(pending, 0, 3, "A"); !errors.Is(err, match.ErrWinnerMismatch) {
		t.Fatalf("expected winner mismatch, got=%v", err)
	}

	penalties, err := Complete(pending, 1, 1, "B")
	if err != nil || penalties.Winner != "B" {
		t.Fatalf("expected penalties winner B: %+v err=%v", penalties, err)
	}
}

func TestChampion(t *testing.T) {
	t.Parallel()

	matches := []match.Record{
		{ID: "sf1", Round: 1, Status: match.StatusCompleted, Winner: "A"},
		{ID: "sf2", Round: 1, Status: match.StatusCompleted, Winner: "C"},
		{ID: "f", Round: 2, Status: match.StatusPending},
	}
	if got := FinalRound(matches); got != 2 {
		t.Fatalf("unexpected final round: got=%d want=2", got)
	}
	if _, ok := Champion(matches); ok {
		t.Fatalf("pending final has no champion")
	}

	matches[2].Status = match.StatusCompleted
	matches[2].Winner = "C"
	if got, ok := Champion(matches); !ok || got != "C" {
		t.Fatalf("unexpected champion: got=%s ok=%v", got, ok)
	}

	if _, ok := Champion(matches[:2]); ok {
		t.Fatalf("two matches in the last round is not a final")
	}
	if got := FinalRound(nil); got != 0 {
		t.Fatalf("unexpected final round without matches: got=%d", got)
	}
}
