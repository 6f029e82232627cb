package team

import "context"

// Reader lists the registered teams.
type Reader interface {
	List(ctx context.Context) ([]Team, error)
}

// Repository describes team persistence needs from use cases.
type Repository interface {
	Reader
	GetByID(ctx context.Context, teamID string) (Team, bool, error)
	GetByName(ctx context.Context, name string) (Team, bool, error)
	Create(ctx context.Context, t Team) error
	// Delete removes the team and reports whether it existed. Recorded matches keep
	// the team name.
	Delete(ctx context.Context, teamID string) (bool, error)
}
