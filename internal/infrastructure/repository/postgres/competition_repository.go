package postgres

import (
	"context"
	"fmt"

	"github.com/jmoiron/sqlx"
	"github.com/lib/pq"
	"github.com/riskibarqy/fifa-results/internal/domain/competition"
	"github.com/riskibarqy/fifa-results/internal/domain/tournament"
	qb "github.com/riskibarqy/fifa-results/internal/platform/querybuilder"
)

type CompetitionRepository struct {
	db *sqlx.DB
}

func NewCompetitionRepository(db *sqlx.DB) *CompetitionRepository {
	return &CompetitionRepository{db: db}
}

func (r *CompetitionRepository) List(ctx context.Context) ([]competition.Competition, error) {
	query, args, err := qb.Select("*").From("competitions").
		Where(qb.IsNull("deleted_at")).
		OrderBy("id").
		ToSQL()
	if err != nil {
		return nil, fmt.Errorf("build select competitions query: %w", err)
	}

	var rows []competitionTableModel
	if err := r.db.SelectContext(ctx, &rows, query, args...); err != nil {
		return nil, fmt.Errorf("select competitions: %w", err)
	}

	out := make([]competition.Competition, 0, len(rows))
	for _, row := range rows {
		out = append(out, competition.Competition{ID: row.PublicID, Name: row.Name, CreatedAt: row.CreatedAt.UTC()})
	}
	return out, nil
}

func (r *CompetitionRepository) GetByID(ctx context.Context, competitionID string) (competition.Competition, bool, error) {
	query, args, err := qb.Select("*").From("competitions").
		Where(qb.Eq("public_id", competitionID), qb.IsNull("deleted_at")).
		Limit(1).
		ToSQL()
	if err != nil {
		return competition.Competition{}, false, fmt.Errorf("build get competition by id query: %w", err)
	}

	var row competitionTableModel
	if err := r.db.GetContext(ctx, &row, query, args...); err != nil {
		if isNotFound(err) {
			return competition.Competition{}, false, nil
		}
		return competition.Competition{}, false, fmt.Errorf("get competition by id: %w", err)
	}
	return competition.Competition{ID: row.PublicID, Name: row.Name, CreatedAt: row.CreatedAt.UTC()}, true, nil
}

func (r *CompetitionRepository) Create(ctx context.Context, c competition.Competition) error {
	query, args, err := qb.InsertModel("competitions", competitionInsertModel{
		PublicID:  c.ID,
		Name:      c.Name,
		CreatedAt: c.CreatedAt.UTC(),
	}, "")
	if err != nil {
		return fmt.Errorf("build insert competition query: %w", err)
	}
	if _, err := r.db.ExecContext(ctx, query, args...); err != nil {
		return insertError("competition "+c.ID, err)
	}
	return nil
}

type TournamentRepository struct {
	db *sqlx.DB
}

func NewTournamentRepository(db *sqlx.DB) *TournamentRepository {
	return &TournamentRepository{db: db}
}

func (r *TournamentRepository) List(ctx context.Context) ([]tournament.Tournament, error) {
	query, args, err := qb.Select("*").From("tournaments").
		Where(qb.IsNull("deleted_at")).
		OrderBy("id").
		ToSQL()
	if err != nil {
		return nil, fmt.Errorf("build select tournaments query: %w", err)
	}

	var rows []tournamentTableModel
	if err := r.db.SelectContext(ctx, &rows, query, args...); err != nil {
		return nil, fmt.Errorf("select tournaments: %w", err)
	}

	out := make([]tournament.Tournament, 0, len(rows))
	for _, row := range rows {
		out = append(out, row.toDomain())
	}
	return out, nil
}

func (r *TournamentRepository) GetByID(ctx context.Context, tournamentID string) (tournament.Tournament, bool, error) {
	query, args, err := qb.Select("*").From("tournaments").
		Where(qb.Eq("public_id", tournamentID), qb.IsNull("deleted_at")).
		Limit(1).
		ToSQL()
	if err != nil {
		return tournament.Tournament{}, false, fmt.Errorf("build get tournament by id query: %w", err)
	}

	var row tournamentTableModel
	if err := r.db.GetContext(ctx, &row, query, args...); err != nil {
		if isNotFound(err) {
			return tournament.Tournament{}, false, nil
		}
		return tournament.Tournament{}, false, fmt.Errorf("get tournament by id: %w", err)
	}
	return row.toDomain(), true, nil
}

func (r *TournamentRepository) Create(ctx context.Context, t tournament.Tournament) error {
	query, args, err := qb.InsertModel("tournaments", tournamentInsertModel{
		PublicID:     t.ID,
		Name:         t.Name,
		Participants: append(pq.StringArray(nil), t.Participants...),
		CreatedAt:    t.CreatedAt.UTC(),
	}, "")
	if err != nil {
		return fmt.Errorf("build insert tournament query: %w", err)
	}
	if _, err := r.db.ExecContext(ctx, query, args...); err != nil {
		return insertError("tournament "+t.ID, err)
	}
	return nil
}

func (m tournamentTableModel) toDomain() tournament.Tournament {
	return tournament.Tournament{
		ID:           m.PublicID,
		Name:         m.Name,
		Participants: append([]string(nil), m.Participants...),
		CreatedAt:    m.CreatedAt.UTC(),
	}
}
