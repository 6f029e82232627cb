package postgres

import (
	"context"
	"fmt"

	"github.com/jmoiron/sqlx"
	"github.com/riskibarqy/fifa-results/internal/domain/match"
	qb "github.com/riskibarqy/fifa-results/internal/platform/querybuilder"
)

type MatchRepository struct {
	db *sqlx.DB
}

func NewMatchRepository(db *sqlx.DB) *MatchRepository {
	return &MatchRepository{db: db}
}

func (r *MatchRepository) List(ctx context.Context, scope match.Scope) ([]match.Record, error) {
	conds := append(matchScopeConditions(scope), qb.IsNull("deleted_at"))
	return r.selectMatches(ctx, conds)
}

func (r *MatchRepository) ListByPlayer(ctx context.Context, name string, scope match.Scope) ([]match.Record, error) {
	conds := append(matchScopeConditions(scope),
		qb.Or(qb.Eq("player1", name), qb.Eq("player2", name)),
		qb.IsNull("deleted_at"),
	)
	return r.selectMatches(ctx, conds)
}

func (r *MatchRepository) GetByID(ctx context.Context, matchID string) (match.Record, bool, error) {
	query, args, err := qb.Select("*").From("matches").
		Where(
			qb.Eq("public_id", matchID),
			qb.IsNull("deleted_at"),
		).
		Limit(1).
		ToSQL()
	if err != nil {
		return match.Record{}, false, fmt.Errorf("build get match by id query: %w", err)
	}

	var row matchTableModel
	if err := r.db.GetContext(ctx, &row, query, args...); err != nil {
		if isNotFound(err) {
			return match.Record{}, false, nil
		}
		return match.Record{}, false, fmt.Errorf("get match by id: %w", err)
	}
	return row.toDomain(), true, nil
}

func (r *MatchRepository) Create(ctx context.Context, record match.Record) error {
	insertModel := matchInsertModel{
		PublicID:            record.ID,
		Player1:             record.Player1,
		Player2:             record.Player2,
		Score1:              record.Score1,
		Score2:              record.Score2,
		PlayedAt:            record.Date.UTC(),
		CompetitionPublicID: nullString(record.CompetitionID),
		TournamentPublicID:  nullString(record.TournamentID),
		Round:               record.Round,
		Status:              match.NormalizeStatus(record.Status),
		Winner:              nullString(record.Winner),
		Team1:               nullString(record.Team1),
		Team2:               nullString(record.Team2),
	}
	query, args, err := qb.InsertModel("matches", insertModel, "")
	if err != nil {
		return fmt.Errorf("build insert match query: %w", err)
	}
	if _, err := r.db.ExecContext(ctx, query, args...); err != nil {
		return insertError("match "+record.ID, err)
	}
	return nil
}

// Complete writes the result only while the stored row is still pending.
func (r *MatchRepository) Complete(ctx context.Context, record match.Record) error {
	query, args, err := qb.Update("matches").
		Set("score1", record.Score1).
		Set("score2", record.Score2).
		Set("winner", nullString(record.Winner)).
		Set("status", match.StatusCompleted).
		SetExpr("updated_at", "NOW()").
		Where(
			qb.Eq("public_id", record.ID),
			qb.Eq("status", match.StatusPending),
			qb.IsNull("deleted_at"),
		).
		ToSQL()
	if err != nil {
		return fmt.Errorf("build complete match query: %w", err)
	}

	res, err := r.db.ExecContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("complete match: %w", err)
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("complete match rows affected: %w", err)
	}
	if affected > 0 {
		return nil
	}

	_, exists, err := r.GetByID(ctx, record.ID)
	if err != nil {
		return err
	}
	if !exists {
		return fmt.Errorf("match %s not found", record.ID)
	}
	return match.ErrNotPending
}

func (r *MatchRepository) selectMatches(ctx context.Context, conds []qb.Condition) ([]match.Record, error) {
	query, args, err := qb.Select("*").From("matches").
		Where(conds...).
		OrderBy("played_at", "id").
		ToSQL()
	if err != nil {
		return nil, fmt.Errorf("build select matches query: %w", err)
	}

	var rows []matchTableModel
	if err := r.db.SelectContext(ctx, &rows, query, args...); err != nil {
		return nil, fmt.Errorf("select matches: %w", err)
	}

	out := make([]match.Record, 0, len(rows))
	for _, row := range rows {
		out = append(out, row.toDomain())
	}
	return out, nil
}

func (m matchTableModel) toDomain() match.Record {
	return match.Record{
		ID:            m.PublicID,
		Player1:       m.Player1,
		Player2:       m.Player2,
		Score1:        m.Score1,
		Score2:        m.Score2,
		Date:          m.PlayedAt.UTC(),
		CompetitionID: m.CompetitionPublicID.String,
		TournamentID:  m.TournamentPublicID.String,
		Team1:         m.Team1.String,
		Team2:         m.Team2.String,
		Round:         m.Round,
		Status:        m.Status,
		Winner:        m.Winner.String,
	}
}
