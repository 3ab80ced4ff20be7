package memory

import (
	"context"

	"company-profile-be/internal/model"
	"company-profile-be/internal/pkg/apperr"
	"company-profile-be/internal/repository/contract"
)

type RetiredSlugRepository struct {
	table *Table[model.RetiredSlug]
}

func NewRetiredSlugRepository(table *Table[model.RetiredSlug]) contract.RetiredSlugRepository {
	return &RetiredSlugRepository{table: table}
}

func (r *RetiredSlugRepository) IsRetired(_ context.Context, resource, slug string) (bool, error) {
	row := r.table.FindFirst(contract.Eq("resource", resource), contract.Eq("slug", slug))
	return row != nil, nil
}

func (r *RetiredSlugRepository) Retire(_ context.Context, resource, slug string) error {
	err := r.table.Insert(&model.RetiredSlug{Resource: resource, Slug: slug})
	if apperr.IsConstraint(err) {
		return nil
	}
	return err
}
