package competition

import "context"

type Repository interface {
	List(ctx context.Context) ([]Competition, error)
	GetByID(ctx context.Context, competitionID string) (Competition, bool, error)
	Create(ctx context.Context, c Competition) error
}
