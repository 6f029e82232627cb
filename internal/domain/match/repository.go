package match

import "context"

// Reader lists match records for a scope.
type Reader interface {
	List(ctx context.Context, scope Scope) ([]Record, error)
}

// Repository persists match records.
type Repository interface {
	Reader
	ListByPlayer(ctx context.Context, name string, scope Scope) ([]Record, error)
	GetByID(ctx context.Context, matchID string) (Record, bool, error)
	Create(ctx context.Context, record Record) error
	Complete(ctx context.Context, record Record) error
}
