package match

import (
	"errors"
	"testing"
	"time"
)

func TestSanitize(t *testing.T) {
	t.Parallel()

	records := []Record{
		{ID: "ok", Player1: "A", Player2: "B", Score1: 1, Score2: 0},
		{ID: "missing", Player1: "", Player2: "B", Score1: 1, Score2: 0},
		{ID: "negative", Player1: "A", Player2: "B", Score1: -1, Score2: 0},
		{ID: "self", Player1: "A", Player2: "A", Score1: 1, Score2: 1},
		{ID: "pending", Player1: "A", Player2: "B", Status: StatusPending},
		{ID: "bad-winner", Player1: "A", Player2: "B", Score1: 0, Score2: 2, Winner: "A"},
		{ID: "ok-2", Player1: "B", Player2: "C", Score1: 2, Score2: 2, Winner: "C"},
	}

	valid, excluded := Sanitize(records)
	if excluded != 4 {
		t.Fatalf("unexpected excluded count: got=%d want=4", excluded)
	}
	if len(valid) != 2 || valid[0].ID != "ok" || valid[1].ID != "ok-2" {
		t.Fatalf("unexpected valid records: %+v", valid)
	}
}

func TestValidateWinner(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name   string
		s1, s2 int
		winner string
		want   error
	}{
		{name: "higher scorer", s1: 3, s2: 1, winner: "A"},
		{name: "lower scorer", s1: 3, s2: 1, winner: "B", want: ErrWinnerMismatch},
		{name: "outsider", s1: 3, s2: 1, winner: "C", want: ErrInvalidWinner},
		{name: "level score either side", s1: 1, s2: 1, winner: "B"},
	}

	for _, tc := range tests {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			err := ValidateWinner("A", "B", tc.s1, tc.s2, tc.winner)
			if !errors.Is(err, tc.want) {
				t.Fatalf("unexpected error: got=%v want=%v", err, tc.want)
			}
		})
	}
}

func TestOutcomeFor(t *testing.T) {
	t.Parallel()

	r := Record{Player1: "A", Player2: "B", Score1: 1, Score2: 4}
	if got, _ := r.OutcomeFor("A"); got != OutcomeLoss {
		t.Fatalf("unexpected outcome for A: got=%s", got)
	}
	if got, _ := r.OutcomeFor("B"); got != OutcomeWin {
		t.Fatalf("unexpected outcome for B: got=%s", got)
	}
	if _, ok := r.OutcomeFor("C"); ok {
		t.Fatalf("expected no outcome for outsider")
	}
	if got := r.Result(); got != "1-4" {
		t.Fatalf("unexpected result: got=%s", got)
	}
}

func TestParseScope(t *testing.T) {
	t.Parallel()

	tests := []struct {
		in      string
		want    Scope
		wantErr bool
	}{
		{in: "", want: Overall()},
		{in: "overall", want: Overall()},
		{in: "2024", want: ForYear(2024)},
		{in: "year:2023", want: ForYear(2023)},
		{in: "competition:c1", want: ForCompetition("c1")},
		{in: "Tournament: t9", want: ForTournament("t9")},
		{in: "competition:", wantErr: true},
		{in: "league:x", wantErr: true},
		{in: "abc", wantErr: true},
	}

	for _, tc := range tests {
		got, err := ParseScope(tc.in)
		if tc.wantErr {
			if !errors.Is(err, ErrInvalidScope) {
				t.Fatalf("parse %q: expected invalid scope, got=%v", tc.in, err)
			}
			continue
		}
		if err != nil {
			t.Fatalf("parse %q: %v", tc.in, err)
		}
		if got != tc.want {
			t.Fatalf("parse %q: got=%+v want=%+v", tc.in, got, tc.want)
		}
		if round, err := ParseScope(got.String()); err != nil || round != got {
			t.Fatalf("scope %q does not round trip: %+v %v", got.String(), round, err)
		}
	}
}

func TestScopeFilter(t *testing.T) {
	t.Parallel()

	records := []Record{
		{ID: "2023", Date: time.Date(2023, 12, 31, 23, 0, 0, 0, time.UTC)},
		{ID: "2024", Date: time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)},
		{ID: "comp", Date: time.Date(2024, 2, 1, 0, 0, 0, 0, time.UTC), CompetitionID: "c1"},
		{ID: "cup", Date: time.Date(2024, 2, 1, 0, 0, 0, 0, time.UTC), TournamentID: "t1"},
	}

	ids := func(rs []Record) []string {
		out := make([]string, 0, len(rs))
		for _, r := range rs {
			out = append(out, r.ID)
		}
		return out
	}

	if got := ids(Overall().Filter(records)); len(got) != 2 {
		t.Fatalf("unexpected overall records: %v", got)
	}
	if got := ids(ForYear(2024).Filter(records)); len(got) != 1 || got[0] != "2024" {
		t.Fatalf("unexpected 2024 records: %v", got)
	}
	if got := ids(ForCompetition("c1").Filter(records)); len(got) != 1 || got[0] != "comp" {
		t.Fatalf("unexpected competition records: %v", got)
	}
	if got := ids(ForTournament("t1").Filter(records)); len(got) != 1 || got[0] != "cup" {
		t.Fatalf("unexpected tournament records: %v", got)
	}
}
