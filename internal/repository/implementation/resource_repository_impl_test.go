package implementation

import (
	"context"
	"errors"
	"testing"
	"time"

	"company-profile-be/internal/model"
	"company-profile-be/internal/pkg/apperr"
	"company-profile-be/internal/repository/contract"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func newMockDB(t *testing.T) (*gorm.DB, sqlmock.Sqlmock) {
	t.Helper()
	sqlDB, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { sqlDB.Close() })

	db, err := gorm.Open(postgres.New(postgres.Config{Conn: sqlDB}), &gorm.Config{
		SkipDefaultTransaction: true,
		Logger:                 logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)
	return db, mock
}

var productColumns = []string{"id", "name", "slug", "is_active", "created_at", "updated_at"}

func TestFindByID(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewResourceRepository[model.Product](db)
	now := time.Now()

	mock.ExpectQuery(`SELECT \* FROM "products" WHERE "id" = \$1`).
		WillReturnRows(sqlmock.NewRows(productColumns).AddRow(7, "Widget", "widget", true, now, now))

	p, err := repo.FindByID(context.Background(), 7)
	require.NoError(t, err)
	require.NotNil(t, p)
	assert.Equal(t, int64(7), p.Id)
	assert.Equal(t, "widget", p.Slug)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestFindBySlugNotFound(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewResourceRepository[model.Product](db)

	mock.ExpectQuery(`SELECT \* FROM "products" WHERE "slug" = \$1`).
		WillReturnRows(sqlmock.NewRows(productColumns))

	p, err := repo.FindBySlug(context.Background(), "missing")
	assert.NoError(t, err)
	assert.Nil(t, p)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestFindManyBuildsFilterSearchAndOrder(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewResourceRepository[model.Product](db)
	now := time.Now()

	mock.ExpectQuery(`SELECT count\(\*\) FROM "products" WHERE "is_active" = \$1 AND .*"name" ILIKE \$2 OR "description" ILIKE \$3`).
		WithArgs(true, `%50\%%`, `%50\%%`).
		WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(11))
	mock.ExpectQuery(`SELECT \* FROM "products" WHERE .* ORDER BY "order_number","created_at" DESC,"id" LIMIT \$4 OFFSET \$5`).
		WillReturnRows(sqlmock.NewRows(productColumns).AddRow(1, "Fifty %", "fifty", true, now, now))

	total, rows, err := repo.FindMany(context.Background(), contract.Query{
		Filters: []contract.Filter{contract.Eq("is_active", true)},
		Search:  contract.Search{Term: "50%", Columns: []string{"name", "description"}},
		Sort:    []contract.Sort{{Column: "order_number"}, {Column: "created_at", Desc: true}},
		Limit:   10,
		Offset:  10,
	})
	require.NoError(t, err)
	assert.Equal(t, int64(11), total)
	assert.Len(t, rows, 1)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestFindManyEmptySkipsSelect(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewResourceRepository[model.Product](db)

	mock.ExpectQuery(`SELECT count\(\*\) FROM "products"`).
		WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(0))

	total, rows, err := repo.FindMany(context.Background(), contract.Query{Limit: 10})
	require.NoError(t, err)
	assert.Zero(t, total)
	assert.NotNil(t, rows)
	assert.Empty(t, rows)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestCreateDuplicateSlugIsConstraint(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewResourceRepository[model.Product](db)

	mock.ExpectQuery(`INSERT INTO "products"`).
		WillReturnError(&pgconn.PgError{
			Code:           "23505",
			ConstraintName: "idx_products_slug",
			Detail:         "Key (slug)=(widget) already exists.",
		})

	err := repo.Create(context.Background(), &model.Product{Name: "Widget", Slug: "widget"})
	require.Error(t, err)
	assert.True(t, apperr.IsConstraint(err))
	assert.Equal(t, "slug already exists", apperr.From(err).Message)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestCreateOtherFailureIsStoreFault(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewResourceRepository[model.Product](db)

	mock.ExpectQuery(`INSERT INTO "products"`).WillReturnError(errors.New("connection reset"))

	err := repo.Create(context.Background(), &model.Product{Name: "Widget", Slug: "widget"})
	require.Error(t, err)
	assert.Equal(t, apperr.KindStore, apperr.KindOf(err))
	assert.Contains(t, err.Error(), "create")
}

func TestUpdateMissingRowReturnsNil(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewResourceRepository[model.Product](db)

	mock.ExpectExec(`UPDATE "products" SET .*"is_active"=\$\d.* WHERE "id" = \$\d`).
		WillReturnResult(sqlmock.NewResult(0, 0))

	p, err := repo.Update(context.Background(), 42, map[string]interface{}{"is_active": false})
	assert.NoError(t, err)
	assert.Nil(t, p)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestUpdateReturnsStoredRow(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewResourceRepository[model.Product](db)
	now := time.Now()

	mock.ExpectExec(`UPDATE "products" SET .*"is_active"=\$\d.* WHERE "id" = \$\d`).
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectQuery(`SELECT \* FROM "products" WHERE "id" = \$1`).
		WillReturnRows(sqlmock.NewRows(productColumns).AddRow(42, "Widget", "widget", false, now, now))

	p, err := repo.Update(context.Background(), 42, map[string]interface{}{"is_active": false})
	require.NoError(t, err)
	require.NotNil(t, p)
	assert.False(t, p.IsActive)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestIncrementIsSingleStatement(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewResourceRepository[model.News](db)

	mock.ExpectExec(`UPDATE "news" SET "views"="views" \+ \$1 WHERE "id" = \$2`).
		WithArgs(int64(1), int64(5)).
		WillReturnResult(sqlmock.NewResult(0, 1))

	ok, err := repo.Increment(context.Background(), 5, "views", 1)
	require.NoError(t, err)
	assert.True(t, ok)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestDelete(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewResourceRepository[model.Product](db)

	mock.ExpectExec(`DELETE FROM "products" WHERE "id" = \$1`).
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectExec(`DELETE FROM "products" WHERE "id" = \$1`).
		WillReturnResult(sqlmock.NewResult(0, 0))

	ok, err := repo.Delete(context.Background(), 3)
	require.NoError(t, err)
	assert.True(t, ok)

	ok, err = repo.Delete(context.Background(), 3)
	require.NoError(t, err)
	assert.False(t, ok)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestDuplicateColumnFallsBackToColumnName(t *testing.T) {
	assert.Equal(t, "email", duplicateColumn(&pgconn.PgError{ColumnName: "email"}))
	assert.Equal(t, "slug", duplicateColumn(&pgconn.PgError{}))
}
