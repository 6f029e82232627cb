package postgres

import (
	"database/sql"
	"time"
)

type matchTableModel struct {
	ID                  int64          `db:"id"`
	PublicID            string         `db:"public_id"`
	Player1             string         `db:"player1"`
	Player2             string         `db:"player2"`
	Score1              int            `db:"score1"`
	Score2              int            `db:"score2"`
	PlayedAt            time.Time      `db:"played_at"`
	CompetitionPublicID sql.NullString `db:"competition_public_id"`
	TournamentPublicID  sql.NullString `db:"tournament_public_id"`
	Round               int            `db:"round"`
	Status              string         `db:"status"`
	Winner              sql.NullString `db:"winner"`
	Team1               sql.NullString `db:"team1"`
	Team2               sql.NullString `db:"team2"`
	CreatedAt           time.Time      `db:"created_at"`
	UpdatedAt           time.Time      `db:"updated_at"`
	DeletedAt           *time.Time     `db:"deleted_at"`
}

type matchInsertModel struct {
	PublicID            string         `db:"public_id"`
	Player1             string         `db:"player1"`
	Player2             string         `db:"player2"`
	Score1              int            `db:"score1"`
	Score2              int            `db:"score2"`
	PlayedAt            time.Time      `db:"played_at"`
	CompetitionPublicID sql.NullString `db:"competition_public_id,omitempty"`
	TournamentPublicID  sql.NullString `db:"tournament_public_id,omitempty"`
	Round               int            `db:"round,omitempty"`
	Status              string         `db:"status"`
	Winner              sql.NullString `db:"winner,omitempty"`
	Team1               sql.NullString `db:"team1,omitempty"`
	Team2               sql.NullString `db:"team2,omitempty"`
}
