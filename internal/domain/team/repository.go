package team

import "context"

// Repository describes team persistence needs from use cases. The backing
// store keeps teams as one ordered collection: creates append, updates
// replace in place, and reordering swaps neighbors.
type Repository interface {
	List(ctx context.Context) (Collection, error)
	GetByID(ctx context.Context, teamID string) (Team, bool, error)
	Create(ctx context.Context, item Team) error
	Update(ctx context.Context, item Team) (bool, error)
	Delete(ctx context.Context, teamID string) (bool, error)
	Reorder(ctx context.Context, teamID string, dir Direction) (Collection, bool, error)
}
