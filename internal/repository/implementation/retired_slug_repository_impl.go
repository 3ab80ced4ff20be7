package implementation

import (
	"context"

	"company-profile-be/internal/model"
	"company-profile-be/internal/repository/contract"

	"github.com/pkg/errors"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type RetiredSlugRepositoryImpl struct {
	db *gorm.DB
}

func NewRetiredSlugRepository(db *gorm.DB) contract.RetiredSlugRepository {
	return &RetiredSlugRepositoryImpl{db: db}
}

func (r *RetiredSlugRepositoryImpl) IsRetired(ctx context.Context, resource, slug string) (bool, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&model.RetiredSlug{}).
		Where("resource = ? AND slug = ?", resource, slug).
		Count(&count).Error
	if err != nil {
		return false, errors.Wrap(err, "check retired slug")
	}
	return count > 0, nil
}

// Retire is idempotent.
func (r *RetiredSlugRepositoryImpl) Retire(ctx context.Context, resource, slug string) error {
	err := r.db.WithContext(ctx).
		Clauses(clause.OnConflict{DoNothing: true}).
		Create(&model.RetiredSlug{Resource: resource, Slug: slug}).Error
	return errors.Wrap(err, "retire slug")
}
