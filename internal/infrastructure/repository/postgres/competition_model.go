package postgres

import (
	"time"

	"github.com/lib/pq"
)

type competitionTableModel struct {
	ID        int64      `db:"id"`
	PublicID  string     `db:"public_id"`
	Name      string     `db:"name"`
	CreatedAt time.Time  `db:"created_at"`
	UpdatedAt time.Time  `db:"updated_at"`
	DeletedAt *time.Time `db:"deleted_at"`
}

type competitionInsertModel struct {
	PublicID  string    `db:"public_id"`
	Name      string    `db:"name"`
	CreatedAt time.Time `db:"created_at"`
}

type tournamentTableModel struct {
	ID           int64          `db:"id"`
	PublicID     string         `db:"public_id"`
	Name         string         `db:"name"`
	Participants pq.StringArray `db:"participants"`
	CreatedAt    time.Time      `db:"created_at"`
	UpdatedAt    time.Time      `db:"updated_at"`
	DeletedAt    *time.Time     `db:"deleted_at"`
}

type tournamentInsertModel struct {
	PublicID     string         `db:"public_id"`
	Name         string         `db:"name"`
	Participants pq.StringArray `db:"participants"`
	CreatedAt    time.Time      `db:"created_at"`
}
