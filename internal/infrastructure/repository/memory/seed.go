package memory

import (
	"time"

	"github.com/riskibarqy/fifa-results/internal/domain/competition"
	"github.com/riskibarqy/fifa-results/internal/domain/match"
	"github.com/riskibarqy/fifa-results/internal/domain/player"
	"github.com/riskibarqy/fifa-results/internal/domain/team"
	"github.com/riskibarqy/fifa-results/internal/domain/tournament"
)

const (
	CompetitionIDOfficeLeague = "cmp-office-league"
	TournamentIDWinterCup     = "trn-winter-cup"
)

func SeedPlayers() []player.Player {
	created := time.Date(2023, 1, 2, 9, 0, 0, 0, time.UTC)
	return []player.Player{
		{ID: "ply-riski", Name: "Riski", CreatedAt: created},
		{ID: "ply-bima", Name: "Bima", CreatedAt: created},
		{ID: "ply-dewi", Name: "Dewi", CreatedAt: created},
		{ID: "ply-arga", Name: "Arga", CreatedAt: created},
		{ID: "ply-sekar", Name: "Sekar", CreatedAt: created.AddDate(1, 0, 0)},
		{ID: "ply-ol-riski", Name: "Riski", CompetitionID: CompetitionIDOfficeLeague, CreatedAt: created},
		{ID: "ply-ol-tomi", Name: "Tomi", CompetitionID: CompetitionIDOfficeLeague, CreatedAt: created},
		{ID: "ply-ol-nadia", Name: "Nadia", CompetitionID: CompetitionIDOfficeLeague, CreatedAt: created},
	}
}

func SeedCompetitions() []competition.Competition {
	return []competition.Competition{
		{ID: CompetitionIDOfficeLeague, Name: "Office League", CreatedAt: time.Date(2023, 1, 2, 9, 0, 0, 0, time.UTC)},
	}
}

func SeedTournaments() []tournament.Tournament {
	return []tournament.Tournament{
		{
			ID:           TournamentIDWinterCup,
			Name:         "Winter Cup",
			Participants: []string{"Riski", "Bima", "Dewi", "Arga"},
			CreatedAt:    time.Date(2023, 12, 1, 9, 0, 0, 0, time.UTC),
		},
	}
}

func SeedTeams() []team.Team {
	created := time.Date(2023, 1, 2, 9, 0, 0, 0, time.UTC)
	return []team.Team{
		{ID: "tm-real-madrid", Name: "Real Madrid", CreatedAt: created},
		{ID: "tm-liverpool", Name: "Liverpool", CreatedAt: created},
		{ID: "tm-inter", Name: "Inter", CreatedAt: created},
	}
}

func SeedMatches() []match.Record {
	at := func(year int, month time.Month, day, hour int) time.Time {
		return time.Date(year, month, day, hour, 0, 0, 0, time.UTC)
	}

	return []match.Record{
		{ID: "mt-2023-001", Player1: "Riski", Player2: "Bima", Score1: 3, Score2: 1, Date: at(2023, 3, 4, 19)},
		{ID: "mt-2023-002", Player1: "Dewi", Player2: "Arga", Score1: 2, Score2: 2, Date: at(2023, 3, 4, 20)},
		{ID: "mt-2023-003", Player1: "Bima", Player2: "Dewi", Score1: 0, Score2: 1, Date: at(2023, 4, 15, 19)},
		{ID: "mt-2023-004", Player1: "Arga", Player2: "Riski", Score1: 10, Score2: 4, Date: at(2023, 5, 20, 21)},
		{ID: "mt-2023-005", Player1: "Riski", Player2: "Dewi", Score1: 3, Score2: 1, Date: at(2023, 7, 1, 19)},
		{ID: "mt-2024-001", Player1: "Bima", Player2: "Riski", Score1: 2, Score2: 2, Date: at(2024, 1, 13, 19)},
		{ID: "mt-2024-002", Player1: "Sekar", Player2: "Arga", Score1: 4, Score2: 0, Date: at(2024, 2, 10, 20)},
		{ID: "mt-2024-003", Player1: "Dewi", Player2: "Sekar", Score1: 1, Score2: 3, Date: at(2024, 3, 9, 19)},
		{ID: "mt-2024-004", Player1: "Riski", Player2: "Arga", Score1: 5, Score2: 2, Date: at(2024, 4, 6, 21), Team1: "Real Madrid", Team2: "Liverpool"},
		{ID: "mt-2024-005", Player1: "Bima", Player2: "Sekar", Score1: 0, Score2: 0, Date: at(2024, 5, 4, 19), Team1: "Inter", Team2: "Real Madrid"},

		{ID: "mt-ol-001", Player1: "Riski", Player2: "Tomi", Score1: 2, Score2: 1, Date: at(2023, 2, 1, 12), CompetitionID: CompetitionIDOfficeLeague},
		{ID: "mt-ol-002", Player1: "Nadia", Player2: "Riski", Score1: 3, Score2: 3, Date: at(2023, 2, 8, 12), CompetitionID: CompetitionIDOfficeLeague},
		{ID: "mt-ol-003", Player1: "Tomi", Player2: "Nadia", Score1: 0, Score2: 2, Date: at(2023, 2, 15, 12), CompetitionID: CompetitionIDOfficeLeague},

		{ID: "mt-wc-sf1", Player1: "Riski", Player2: "Arga", Score1: 2, Score2: 1, Date: at(2023, 12, 9, 19), TournamentID: TournamentIDWinterCup, Round: 1, Status: match.StatusCompleted, Winner: "Riski"},
		{ID: "mt-wc-sf2", Player1: "Bima", Player2: "Dewi", Score1: 1, Score2: 1, Date: at(2023, 12, 9, 20), TournamentID: TournamentIDWinterCup, Round: 1, Status: match.StatusCompleted, Winner: "Dewi"},
		{ID: "mt-wc-final", Player1: "Riski", Player2: "Dewi", Date: at(2023, 12, 16, 19), TournamentID: TournamentIDWinterCup, Round: 2, Status: match.StatusPending},
	}
}
