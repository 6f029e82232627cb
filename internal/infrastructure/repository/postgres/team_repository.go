package postgres

import (
	"context"
	"fmt"
	"strings"

	"github.com/jmoiron/sqlx"
	"github.com/riskibarqy/fifa-results/internal/domain/team"
	qb "github.com/riskibarqy/fifa-results/internal/platform/querybuilder"
)

type TeamRepository struct {
	db *sqlx.DB
}

func NewTeamRepository(db *sqlx.DB) *TeamRepository {
	return &TeamRepository{db: db}
}

func (r *TeamRepository) List(ctx context.Context) ([]team.Team, error) {
	query, args, err := qb.Select("*").From("teams").
		Where(qb.IsNull("deleted_at")).
		OrderBy("lower(name)").
		ToSQL()
	if err != nil {
		return nil, fmt.Errorf("build select teams query: %w", err)
	}

	var rows []teamTableModel
	if err := r.db.SelectContext(ctx, &rows, query, args...); err != nil {
		return nil, fmt.Errorf("select teams: %w", err)
	}

	out := make([]team.Team, 0, len(rows))
	for _, row := range rows {
		out = append(out, row.toDomain())
	}
	return out, nil
}

func (r *TeamRepository) GetByID(ctx context.Context, teamID string) (team.Team, bool, error) {
	return r.getOne(ctx, "get team by id", qb.Eq("public_id", teamID))
}

// GetByName matches names ignoring case, the same way the unique index does.
func (r *TeamRepository) GetByName(ctx context.Context, name string) (team.Team, bool, error) {
	name = strings.Join(strings.Fields(name), " ")
	return r.getOne(ctx, "get team by name", qb.Expr("lower(name) = lower(?)", name))
}

func (r *TeamRepository) Create(ctx context.Context, t team.Team) error {
	query, args, err := qb.InsertModel("teams", teamInsertModel{
		PublicID:  t.ID,
		Name:      t.Name,
		CreatedAt: t.CreatedAt.UTC(),
	}, "")
	if err != nil {
		return fmt.Errorf("build insert team query: %w", err)
	}
	if _, err := r.db.ExecContext(ctx, query, args...); err != nil {
		return insertError(fmt.Sprintf("team %q", t.Name), err)
	}
	return nil
}

// Delete soft-deletes the team row.
func (r *TeamRepository) Delete(ctx context.Context, teamID string) (bool, error) {
	query, args, err := deleteTeamQuery(teamID)
	if err != nil {
		return false, fmt.Errorf("build delete team query: %w", err)
	}

	var publicID string
	if err := r.db.QueryRowxContext(ctx, query, args...).Scan(&publicID); err != nil {
		if isNotFound(err) {
			return false, nil
		}
		return false, fmt.Errorf("delete team: %w", err)
	}
	return true, nil
}

func deleteTeamQuery(teamID string) (string, []any, error) {
	return qb.Update("teams").
		SetExpr("deleted_at", "NOW()").
		SetExpr("updated_at", "NOW()").
		Where(qb.Eq("public_id", teamID), qb.IsNull("deleted_at")).
		Suffix("RETURNING public_id").
		ToSQL()
}

func (r *TeamRepository) getOne(ctx context.Context, op string, conds ...qb.Condition) (team.Team, bool, error) {
	query, args, err := qb.Select("*").From("teams").
		Where(append(conds, qb.IsNull("deleted_at"))...).
		Limit(1).
		ToSQL()
	if err != nil {
		return team.Team{}, false, fmt.Errorf("build %s query: %w", op, err)
	}

	var row teamTableModel
	if err := r.db.GetContext(ctx, &row, query, args...); err != nil {
		if isNotFound(err) {
			return team.Team{}, false, nil
		}
		return team.Team{}, false, fmt.Errorf("%s: %w", op, err)
	}
	return row.toDomain(), true, nil
}

func (m teamTableModel) toDomain() team.Team {
	return team.Team{ID: m.PublicID, Name: m.Name, CreatedAt: m.CreatedAt.UTC()}
}
