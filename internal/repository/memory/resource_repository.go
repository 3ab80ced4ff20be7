package memory

import (
	"context"

	"company-profile-be/internal/repository/contract"
)

// ResourceRepository serves a Table through the repository contract.
type ResourceRepository[M any] struct {
	table *Table[M]
}

func NewResourceRepository[M any](table *Table[M]) contract.ResourceRepository[M] {
	return &ResourceRepository[M]{table: table}
}

func (r *ResourceRepository[M]) FindMany(_ context.Context, q contract.Query) (int64, []*M, error) {
	total, rows := r.table.Select(q)
	return total, rows, nil
}

func (r *ResourceRepository[M]) FindByID(_ context.Context, id int64) (*M, error) {
	return r.table.Get(id), nil
}

func (r *ResourceRepository[M]) FindBySlug(_ context.Context, slug string) (*M, error) {
	return r.table.FindFirst(contract.Eq("slug", slug)), nil
}

// LockByID has no separate lock: every table write is already serialized.
func (r *ResourceRepository[M]) LockByID(ctx context.Context, id int64) (*M, error) {
	return r.FindByID(ctx, id)
}

func (r *ResourceRepository[M]) Create(_ context.Context, m *M) error {
	return r.table.Insert(m)
}

func (r *ResourceRepository[M]) Update(_ context.Context, id int64, values map[string]interface{}) (*M, error) {
	return r.table.Update(id, values, true)
}

func (r *ResourceRepository[M]) Delete(_ context.Context, id int64) (bool, error) {
	return r.table.Delete(id), nil
}

func (r *ResourceRepository[M]) Increment(_ context.Context, id int64, column string, by int64) (bool, error) {
	return r.table.Increment(id, column, by)
}
