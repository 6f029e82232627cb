package postgres

import (
	"context"
	"fmt"

	"github.com/jmoiron/sqlx"
	"github.com/riskibarqy/fifa-results/internal/domain/match"
	"github.com/riskibarqy/fifa-results/internal/domain/player"
	qb "github.com/riskibarqy/fifa-results/internal/platform/querybuilder"
)

type PlayerRepository struct {
	db *sqlx.DB
}

func NewPlayerRepository(db *sqlx.DB) *PlayerRepository {
	return &PlayerRepository{db: db}
}

func (r *PlayerRepository) List(ctx context.Context, scope match.Scope) ([]player.Player, error) {
	if scope.Kind == match.ScopeTournament {
		return []player.Player{}, nil
	}

	competitionCond := qb.IsNull("competition_public_id")
	if scope.Kind == match.ScopeCompetition {
		competitionCond = qb.Eq("competition_public_id", scope.ID)
	}

	query, args, err := qb.Select("*").From("players").
		Where(competitionCond, qb.IsNull("deleted_at")).
		OrderBy("id").
		ToSQL()
	if err != nil {
		return nil, fmt.Errorf("build select players query: %w", err)
	}

	var rows []playerTableModel
	if err := r.db.SelectContext(ctx, &rows, query, args...); err != nil {
		return nil, fmt.Errorf("select players: %w", err)
	}

	out := make([]player.Player, 0, len(rows))
	for _, row := range rows {
		out = append(out, row.toDomain())
	}
	return out, nil
}

func (r *PlayerRepository) GetByName(ctx context.Context, competitionID, name string) (player.Player, bool, error) {
	competitionCond := qb.IsNull("competition_public_id")
	if competitionID != "" {
		competitionCond = qb.Eq("competition_public_id", competitionID)
	}
	return r.getOne(ctx, "get player by name", qb.Eq("name", name), competitionCond)
}

func (r *PlayerRepository) GetByID(ctx context.Context, playerID string) (player.Player, bool, error) {
	return r.getOne(ctx, "get player by id", qb.Eq("public_id", playerID))
}

func (r *PlayerRepository) Create(ctx context.Context, p player.Player) error {
	insertModel := playerInsertModel{
		PublicID:            p.ID,
		Name:                p.Name,
		CompetitionPublicID: nullString(p.CompetitionID),
		CreatedAt:           p.CreatedAt.UTC(),
	}
	query, args, err := qb.InsertModel("players", insertModel, "")
	if err != nil {
		return fmt.Errorf("build insert player query: %w", err)
	}
	if _, err := r.db.ExecContext(ctx, query, args...); err != nil {
		return insertError(fmt.Sprintf("player %q", p.Name), err)
	}
	return nil
}

func (r *PlayerRepository) getOne(ctx context.Context, op string, conds ...qb.Condition) (player.Player, bool, error) {
	query, args, err := qb.Select("*").From("players").
		Where(append(conds, qb.IsNull("deleted_at"))...).
		Limit(1).
		ToSQL()
	if err != nil {
		return player.Player{}, false, fmt.Errorf("build %s query: %w", op, err)
	}

	var row playerTableModel
	if err := r.db.GetContext(ctx, &row, query, args...); err != nil {
		if isNotFound(err) {
			return player.Player{}, false, nil
		}
		return player.Player{}, false, fmt.Errorf("%s: %w", op, err)
	}
	return row.toDomain(), true, nil
}

func (m playerTableModel) toDomain() player.Player {
	return player.Player{
		ID:            m.PublicID,
		Name:          m.Name,
		CompetitionID: m.CompetitionPublicID.String,
		CreatedAt:     m.CreatedAt.UTC(),
	}
}
