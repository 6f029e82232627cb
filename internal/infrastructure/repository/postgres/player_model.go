package postgres

import (
	"database/sql"
	"time"
)

type playerTableModel struct {
	ID                  int64          `db:"id"`
	PublicID            string         `db:"public_id"`
	Name                string         `db:"name"`
	CompetitionPublicID sql.NullString `db:"competition_public_id"`
	CreatedAt           time.Time      `db:"created_at"`
	UpdatedAt           time.Time      `db:"updated_at"`
	DeletedAt           *time.Time     `db:"deleted_at"`
}

type playerInsertModel struct {
	PublicID            string         `db:"public_id"`
	Name                string         `db:"name"`
	CompetitionPublicID sql.NullString `db:"competition_public_id"`
	CreatedAt           time.Time      `db:"created_at"`
}
