package contract

import "context"

// ResourceRepository is the store for one content type. Lookups return
// (nil, nil) when nothing matches. Unique violations surface as
// apperr.Constraint naming the column.
type ResourceRepository[M any] interface {
	FindMany(ctx context.Context, query Query) (int64, []*M, error)
	FindByID(ctx context.Context, id int64) (*M, error)
	FindBySlug(ctx context.Context, slug string) (*M, error)
	// LockByID reads the row with a write lock held until the unit of work ends.
	LockByID(ctx context.Context, id int64) (*M, error)
	Create(ctx context.Context, m *M) error
	// Update merges values into the record and returns the stored result.
	Update(ctx context.Context, id int64, values map[string]interface{}) (*M, error)
	Delete(ctx context.Context, id int64) (bool, error)
	// Increment adds by to column in place.
	Increment(ctx context.Context, id int64, column string, by int64) (bool, error)
}
