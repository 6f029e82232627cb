package postgres

import (
	"context"
	"fmt"

	"github.com/jmoiron/sqlx"
	"github.com/lib/pq"
	"github.com/riskibarqy/fifa-results/internal/domain/match"
	"github.com/riskibarqy/fifa-results/internal/infrastructure/repository/memory"
)

// BootstrapSeed loads the demo data set into an empty database.
func BootstrapSeed(ctx context.Context, db *sqlx.DB) error {
	var count int
	if err := db.GetContext(ctx, &count, `SELECT COUNT(1) FROM players WHERE deleted_at IS NULL`); err != nil {
		return fmt.Errorf("count players for bootstrap seed: %w", err)
	}
	if count > 0 {
		return nil
	}

	tx, err := db.BeginTxx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin seed tx: %w", err)
	}
	defer func() {
		_ = tx.Rollback()
	}()

	exec := func(what, query string, arg map[string]any) error {
		sqlQuery, args, err := sqlx.Named(query, arg)
		if err != nil {
			return fmt.Errorf("bind seed %s query: %w", what, err)
		}
		if _, err := tx.ExecContext(ctx, tx.Rebind(sqlQuery), args...); err != nil {
			return fmt.Errorf("seed %s: %w", what, err)
		}
		return nil
	}

	for _, c := range memory.SeedCompetitions() {
		if err := exec("competition "+c.ID, `
INSERT INTO competitions (public_id, name, created_at)
VALUES (:public_id, :name, :created_at)
ON CONFLICT (public_id) DO NOTHING`, map[string]any{
			"public_id":  c.ID,
			"name":       c.Name,
			"created_at": c.CreatedAt,
		}); err != nil {
			return err
		}
	}

	for _, t := range memory.SeedTournaments() {
		if err := exec("tournament "+t.ID, `
INSERT INTO tournaments (public_id, name, participants, created_at)
VALUES (:public_id, :name, :participants, :created_at)
ON CONFLICT (public_id) DO NOTHING`, map[string]any{
			"public_id":    t.ID,
			"name":         t.Name,
			"participants": pq.StringArray(t.Participants),
			"created_at":   t.CreatedAt,
		}); err != nil {
			return err
		}
	}

	for _, t := range memory.SeedTeams() {
		if err := exec("team "+t.ID, `
INSERT INTO teams (public_id, name, created_at)
VALUES (:public_id, :name, :created_at)
ON CONFLICT (public_id) DO NOTHING`, map[string]any{
			"public_id":  t.ID,
			"name":       t.Name,
			"created_at": t.CreatedAt,
		}); err != nil {
			return err
		}
	}

	for _, p := range memory.SeedPlayers() {
		if err := exec("player "+p.ID, `
INSERT INTO players (public_id, name, competition_public_id, created_at)
VALUES (:public_id, :name, :competition_public_id, :created_at)
ON CONFLICT (public_id) DO NOTHING`, map[string]any{
			"public_id":             p.ID,
			"name":                  p.Name,
			"competition_public_id": nullString(p.CompetitionID),
			"created_at":            p.CreatedAt,
		}); err != nil {
			return err
		}
	}

	for _, m := range memory.SeedMatches() {
		if err := exec("match "+m.ID, `
INSERT INTO matches (public_id, player1, player2, score1, score2, played_at, competition_public_id, tournament_public_id, round, status, winner, team1, team2)
VALUES (:public_id, :player1, :player2, :score1, :score2, :played_at, :competition_public_id, :tournament_public_id, :round, :status, :winner, :team1, :team2)
ON CONFLICT (public_id) DO NOTHING`, map[string]any{
			"public_id":             m.ID,
			"player1":               m.Player1,
			"player2":               m.Player2,
			"score1":                m.Score1,
			"score2":                m.Score2,
			"played_at":             m.Date,
			"competition_public_id": nullString(m.CompetitionID),
			"tournament_public_id":  nullString(m.TournamentID),
			"round":                 m.Round,
			"status":                match.NormalizeStatus(m.Status),
			"winner":                nullString(m.Winner),
			"team1":                 nullString(m.Team1),
			"team2":                 nullString(m.Team2),
		}); err != nil {
			return err
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("commit seed tx: %w", err)
	}
	return nil
}
