package team

import (
	"testing"

	"github.com/riskibarqy/fifa-results/internal/domain/match"
)

func TestNormalizeName(t *testing.T) {
	got, err := NormalizeName("  Real   Madrid ")
	if err != nil || got != "Real Madrid" {
		t.Fatalf("unexpected name: got=%q err=%v", got, err)
	}
	if _, err := NormalizeName("   "); err != ErrNameRequired {
		t.Fatalf("expected ErrNameRequired, got %v", err)
	}
	if Key(" REAL madrid") != Key("Real Madrid") {
		t.Fatalf("keys must ignore case and spacing")
	}
}

func TestTally(t *testing.T) {
	teams := []Team{
		{ID: "tm-1", Name: "Real Madrid"},
		{ID: "tm-2", Name: "Arsenal"},
		{ID: "tm-3", Name: "Ajax"},
	}
	records := []match.Record{
		{ID: "m1", Player1: "Ana", Player2: "Budi", Team1: "real madrid", Team2: "Arsenal", Score1: 3, Score2: 1},
		{ID: "m2", Player1: "Budi", Player2: "Ana", Team1: "Arsenal", Team2: "Real Madrid", Score1: 2, Score2: 2},
		{ID: "m3", Player1: "Ana", Player2: "Citra", Team1: "Real Madrid", Team2: "Inter", Score1: 0, Score2: 1},
		{ID: "m4", Player1: "Ana", Player2: "Budi", Score1: 5, Score2: 0},
	}

	rows := Tally(teams, records)
	if len(rows) != 4 {
		t.Fatalf("unexpected rows: %+v", rows)
	}

	real := rows[0]
	if real.Team != "Real Madrid" || real.TeamID != "tm-1" || !real.Registered {
		t.Fatalf("expected Real Madrid first: %+v", real)
	}
	if real.Matches != 3 || real.Wins != 1 || real.Draws != 1 || real.Losses != 1 || real.GoalsFor != 5 || real.GoalsAgainst != 4 {
		t.Fatalf("unexpected Real Madrid tally: %+v", real)
	}

	arsenal := rows[1]
	if arsenal.Team != "Arsenal" || arsenal.Matches != 2 || arsenal.Losses != 1 || arsenal.Draws != 1 {
		t.Fatalf("unexpected Arsenal tally: %+v", arsenal)
	}

	inter := rows[2]
	if inter.Team != "Inter" || inter.Registered || inter.Wins != 1 {
		t.Fatalf("unregistered team from records must be listed: %+v", inter)
	}

	if rows[3].Team != "Ajax" || rows[3].Matches != 0 {
		t.Fatalf("registered team without matches must be listed last: %+v", rows[3])
	}
}

func TestTally_MirrorMatchCountsBothSides(t *testing.T) {
	rows := Tally(nil, []match.Record{
		{ID: "m1", Player1: "Ana", Player2: "Budi", Team1: "Ajax", Team2: "Ajax", Score1: 2, Score2: 1},
	})
	if len(rows) != 1 || rows[0].Matches != 2 || rows[0].Wins != 1 || rows[0].Losses != 1 {
		t.Fatalf("unexpected mirror tally: %+v", rows)
	}
}
