package tournament

import "context"

type Repository interface {
	List(ctx context.Context) ([]Tournament, error)
	GetByID(ctx context.Context, tournamentID string) (Tournament, bool, error)
	Create(ctx context.Context, t Tournament) error
}
