package implementation

import (
	"context"
	"fmt"
	"regexp"

	"company-profile-be/internal/pkg/apperr"
	"company-profile-be/internal/repository/contract"
	"company-profile-be/internal/repository/specification"

	"github.com/jackc/pgx/v5/pgconn"
	"github.com/pkg/errors"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

const pgUniqueViolation = "23505"

var reDuplicateKey = regexp.MustCompile(`Key \(([^)]+)\)=`)

type ResourceRepositoryImpl[M any] struct {
	db *gorm.DB
}

func NewResourceRepository[M any](db *gorm.DB) contract.ResourceRepository[M] {
	return &ResourceRepositoryImpl[M]{db: db}
}

func (r *ResourceRepositoryImpl[M]) applySpecifications(db *gorm.DB, specs ...specification.Specification) *gorm.DB {
	for _, spec := range specs {
		db = spec.Apply(db)
	}
	return db
}

func filterSpecs(q contract.Query) []specification.Specification {
	specs := make([]specification.Specification, 0, len(q.Filters)+1)
	for _, f := range q.Filters {
		specs = append(specs, specification.Filter(f))
	}
	if q.Search.Term != "" {
		specs = append(specs, specification.SearchQuery{Term: q.Search.Term, Columns: q.Search.Columns})
	}
	return specs
}

// orderSpecs appends an id tie-break so pages are stable.
func orderSpecs(sorts []contract.Sort) []specification.Specification {
	specs := make([]specification.Specification, 0, len(sorts)+1)
	hasID := false
	for _, s := range sorts {
		specs = append(specs, specification.OrderBy{Field: s.Column, Desc: s.Desc})
		hasID = hasID || s.Column == "id"
	}
	if !hasID {
		specs = append(specs, specification.OrderBy{Field: "id"})
	}
	return specs
}

func (r *ResourceRepositoryImpl[M]) FindMany(ctx context.Context, q contract.Query) (int64, []*M, error) {
	var total int64
	countQuery := r.applySpecifications(r.db.WithContext(ctx).Model(new(M)), filterSpecs(q)...)
	if err := countQuery.Count(&total).Error; err != nil {
		return 0, nil, errors.Wrap(err, "count")
	}

	items := make([]*M, 0)
	if total == 0 {
		return 0, items, nil
	}

	specs := filterSpecs(q)
	specs = append(specs, orderSpecs(q.Sort)...)
	specs = append(specs, specification.Pagination{Limit: q.Limit, Offset: q.Offset})

	if err := r.applySpecifications(r.db.WithContext(ctx), specs...).Find(&items).Error; err != nil {
		return 0, nil, errors.Wrap(err, "find many")
	}
	return total, items, nil
}

func (r *ResourceRepositoryImpl[M]) findOne(ctx context.Context, specs ...specification.Specification) (*M, error) {
	var m M
	query := r.applySpecifications(r.db.WithContext(ctx), specs...)

	if err := query.First(&m).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, errors.Wrap(err, "find one")
	}
	return &m, nil
}

func (r *ResourceRepositoryImpl[M]) FindByID(ctx context.Context, id int64) (*M, error) {
	return r.findOne(ctx, specification.ByID{ID: id})
}

func (r *ResourceRepositoryImpl[M]) FindBySlug(ctx context.Context, slug string) (*M, error) {
	return r.findOne(ctx, specification.BySlug{Slug: slug})
}

func (r *ResourceRepositoryImpl[M]) LockByID(ctx context.Context, id int64) (*M, error) {
	return r.findOne(ctx, specification.ForUpdate{}, specification.ByID{ID: id})
}

func (r *ResourceRepositoryImpl[M]) Create(ctx context.Context, m *M) error {
	if err := r.db.WithContext(ctx).Create(m).Error; err != nil {
		return translateError(err, "create")
	}
	return nil
}

func (r *ResourceRepositoryImpl[M]) Update(ctx context.Context, id int64, values map[string]interface{}) (*M, error) {
	res := r.applySpecifications(r.db.WithContext(ctx).Model(new(M)), specification.ByID{ID: id}).Updates(values)
	if res.Error != nil {
		return nil, translateError(res.Error, "update")
	}
	if res.RowsAffected == 0 {
		return nil, nil
	}
	return r.FindByID(ctx, id)
}

func (r *ResourceRepositoryImpl[M]) Delete(ctx context.Context, id int64) (bool, error) {
	res := r.applySpecifications(r.db.WithContext(ctx), specification.ByID{ID: id}).Delete(new(M))
	if res.Error != nil {
		return false, errors.Wrap(res.Error, "delete")
	}
	return res.RowsAffected > 0, nil
}

// Increment runs UPDATE ... SET col = col + ? without touching updated_at.
func (r *ResourceRepositoryImpl[M]) Increment(ctx context.Context, id int64, column string, by int64) (bool, error) {
	res := r.applySpecifications(r.db.WithContext(ctx).Model(new(M)), specification.ByID{ID: id}).
		UpdateColumn(column, gorm.Expr("? + ?", clause.Column{Name: column}, by))
	if res.Error != nil {
		return false, errors.Wrapf(res.Error, "increment %s", column)
	}
	return res.RowsAffected > 0, nil
}

// translateError turns unique violations into constraint errors naming the column.
func translateError(err error, op string) error {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) && pgErr.Code == pgUniqueViolation {
		column := duplicateColumn(pgErr)
		return apperr.Constraint(column, fmt.Sprintf("%s already exists", column))
	}
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return apperr.Constraint("slug", "slug already exists")
	}
	return errors.Wrap(err, op)
}

func duplicateColumn(pgErr *pgconn.PgError) string {
	if m := reDuplicateKey.FindStringSubmatch(pgErr.Detail); m != nil {
		return m[1]
	}
	if pgErr.ColumnName != "" {
		return pgErr.ColumnName
	}
	return "slug"
}
