package player

import (
	"context"

	"github.com/riskibarqy/fifa-results/internal/domain/match"
)

// Reader lists players registered for a scope.
type Reader interface {
	List(ctx context.Context, scope match.Scope) ([]Player, error)
}

type Repository interface {
	Reader
	GetByName(ctx context.Context, competitionID, name string) (Player, bool, error)
	GetByID(ctx context.Context, playerID string) (Player, bool, error)
	Create(ctx context.Context, p Player) error
}
