package usecase

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/riskibarqy/fifa-results/internal/domain/match"
	"github.com/riskibarqy/fifa-results/internal/domain/tournament"
)

func TestMatchService_Record(t *testing.T) {
	t.Parallel()

	matchRepo := &stubMatchRepo{}
	svc := NewMatchService(matchRepo, newStubPlayerRepo("Ana", "Ben"), newStubTeamRepo("Real Madrid"), &seqIDGenerator{prefix: "m"})
	now := time.Date(2024, 9, 1, 18, 30, 0, 0, time.UTC)
	svc.now = func() time.Time { return now }

	got, err := svc.Record(context.Background(), RecordMatchInput{Player1: " Ana ", Player2: "Ben", Score1: 4, Score2: 2})
	if err != nil {
		t.Fatalf("record match: %v", err)
	}
	if got.ID != "m1" || got.Player1 != "Ana" || !got.Date.Equal(now) || got.Status != match.StatusCompleted {
		t.Fatalf("unexpected record: %+v", got)
	}
	if len(matchRepo.items) != 1 {
		t.Fatalf("expected record to be stored")
	}
	if got.Team1 != "" || got.Team2 != "" {
		t.Fatalf("teams must stay empty when none are named: %+v", got)
	}
}

func TestMatchService_RecordWithTeams(t *testing.T) {
	t.Parallel()

	matchRepo := &stubMatchRepo{}
	svc := NewMatchService(matchRepo, newStubPlayerRepo("Ana", "Ben"), newStubTeamRepo("Real Madrid", "Arsenal"), &seqIDGenerator{prefix: "m"})

	got, err := svc.Record(context.Background(), RecordMatchInput{Player1: "Ana", Player2: "Ben", Score1: 1, Score2: 0, Team1: " real madrid ", Team2: "ARSENAL"})
	if err != nil {
		t.Fatalf("record match: %v", err)
	}
	if got.Team1 != "Real Madrid" || got.Team2 != "Arsenal" {
		t.Fatalf("teams must be stored under their registered names: %+v", got)
	}
	if matchRepo.items[0].Team1 != "Real Madrid" {
		t.Fatalf("unexpected stored record: %+v", matchRepo.items[0])
	}
}

func TestMatchService_RecordValidation(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name  string
		input RecordMatchInput
		want  error
	}{
		{name: "same player", input: RecordMatchInput{Player1: "Ana", Player2: "Ana"}, want: ErrInvalidInput},
		{name: "missing player", input: RecordMatchInput{Player1: "Ana"}, want: ErrInvalidInput},
		{name: "negative score", input: RecordMatchInput{Player1: "Ana", Player2: "Ben", Score1: -1}, want: ErrInvalidInput},
		{name: "unregistered player", input: RecordMatchInput{Player1: "Ana", Player2: "Zoe"}, want: ErrNotFound},
		{name: "unregistered team", input: RecordMatchInput{Player1: "Ana", Player2: "Ben", Team2: "Inter"}, want: ErrNotFound},
	}

	for _, tc := range tests {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			svc := NewMatchService(&stubMatchRepo{}, newStubPlayerRepo("Ana", "Ben"), newStubTeamRepo("Real Madrid"), &seqIDGenerator{})
			if _, err := svc.Record(context.Background(), tc.input); !errors.Is(err, tc.want) {
				t.Fatalf("unexpected error: got=%v want=%v", err, tc.want)
			}
		})
	}
}

func TestMatchService_ListByPlayer(t *testing.T) {
	t.Parallel()

	day := time.Date(2024, 2, 1, 0, 0, 0, 0, time.UTC)
	matchRepo := &stubMatchRepo{items: []match.Record{
		{ID: "m1", Player1: "Ana", Player2: "Ben", Score1: 1, Score2: 2, Date: day},
		{ID: "m2", Player1: "Cid", Player2: "Ana", Score1: 0, Score2: 0, Date: day.AddDate(0, 0, 2)},
		{ID: "m3", Player1: "Ben", Player2: "Cid", Score1: 3, Score2: 0, Date: day.AddDate(0, 0, 1)},
		{ID: "m4", Player1: "Ana", Player2: "Cid", Score1: 5, Score2: 1, Date: day.AddDate(0, 0, 1)},
	}}
	svc := NewMatchService(matchRepo, newStubPlayerRepo(), nil, &seqIDGenerator{})

	got, err := svc.ListByPlayer(context.Background(), "Ana", match.Overall())
	if err != nil {
		t.Fatalf("list by player: %v", err)
	}

	want := []struct {
		id      string
		outcome match.Outcome
	}{
		{"m2", match.OutcomeDraw},
		{"m4", match.OutcomeWin},
		{"m1", match.OutcomeLoss},
	}
	if len(got) != len(want) {
		t.Fatalf("unexpected match count: got=%d want=%d", len(got), len(want))
	}
	for i, w := range want {
		if got[i].Record.ID != w.id || got[i].Outcome != w.outcome {
			t.Fatalf("unexpected match at %d: got=%s/%s want=%s/%s", i, got[i].Record.ID, got[i].Outcome, w.id, w.outcome)
		}
	}
}

func TestPlayerService_RegisterAndList(t *testing.T) {
	t.Parallel()

	playerRepo := newStubPlayerRepo("Ben")
	matchRepo := &stubMatchRepo{items: []match.Record{
		{ID: "m1", Player1: "Ben", Player2: "Ana", Score1: 2, Score2: 0, Date: time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)},
	}}
	svc := NewPlayerService(playerRepo, matchRepo, nil, &seqIDGenerator{prefix: "p"})

	created, err := svc.Register(context.Background(), "  Ana ")
	if err != nil {
		t.Fatalf("register player: %v", err)
	}
	if created.Name != "Ana" {
		t.Fatalf("unexpected player name: %q", created.Name)
	}

	if _, err := svc.Register(context.Background(), "Ana"); !errors.Is(err, ErrConflict) {
		t.Fatalf("expected ErrConflict for duplicate name, got %v", err)
	}
	if _, err := svc.Register(context.Background(), "   "); !errors.Is(err, ErrInvalidInput) {
		t.Fatalf("expected ErrInvalidInput for blank name, got %v", err)
	}

	list, err := svc.List(context.Background(), match.Overall())
	if err != nil {
		t.Fatalf("list players: %v", err)
	}
	if len(list) != 2 || list[0].Player.Name != "Ana" || list[1].Player.Name != "Ben" {
		t.Fatalf("unexpected players: %+v", list)
	}
	if list[0].Stats.Losses != 1 || list[1].Stats.Points != 3 {
		t.Fatalf("unexpected derived stats: %+v", list)
	}
}

func TestPlayerService_ListsTournamentParticipants(t *testing.T) {
	t.Parallel()

	playerRepo := newStubPlayerRepo("Ana", "Ben")
	matchRepo := &stubMatchRepo{items: []match.Record{
		{ID: "t1", Player1: "Ana", Player2: "Cici", Score1: 1, Score2: 0, TournamentID: "trn-1", Round: 1, Status: match.StatusCompleted, Winner: "Ana"},
	}}
	tournaments := &stubTournamentRepo{items: []tournament.Tournament{
		{ID: "trn-1", Name: "Cup", Participants: []string{"Ana", "Ben", "Cici", "Dodi"}},
	}}
	svc := NewPlayerService(playerRepo, matchRepo, tournaments, &seqIDGenerator{prefix: "p"})

	list, err := svc.List(context.Background(), match.ForTournament("trn-1"))
	if err != nil {
		t.Fatalf("list players: %v", err)
	}
	if len(list) != 4 {
		t.Fatalf("expected every participant listed, got %+v", list)
	}
	names := []string{list[0].Player.Name, list[1].Player.Name, list[2].Player.Name, list[3].Player.Name}
	if names[0] != "Ana" || names[1] != "Ben" || names[2] != "Cici" || names[3] != "Dodi" {
		t.Fatalf("unexpected order: %v", names)
	}
	if list[0].Player.ID != "p1" || list[2].Player.ID != "" {
		t.Fatalf("registered participants keep their id, others have none: %+v", list)
	}
	if list[0].Stats.Wins != 1 || list[3].Stats.Matches != 0 {
		t.Fatalf("unexpected derived stats: %+v", list)
	}

	if _, err := svc.List(context.Background(), match.ForTournament("missing")); !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound for unknown tournament, got %v", err)
	}
}
