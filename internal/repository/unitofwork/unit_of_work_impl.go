package unitofwork

import (
	"context"

	"company-profile-be/internal/repository/contract"
	"company-profile-be/internal/repository/implementation"

	"github.com/pkg/errors"
	"gorm.io/gorm"
)

var (
	ErrTransactionActive = errors.New("transaction already started")
	ErrNoTransaction     = errors.New("no active transaction")
)

// UnitOfWorkImpl runs on the shared pool until Begin, then every repository
// it hands out is bound to the open transaction.
type UnitOfWorkImpl struct {
	db *gorm.DB
	tx *gorm.DB
}

func NewUnitOfWork(db *gorm.DB) UnitOfWork {
	return &UnitOfWorkImpl{db: db}
}

func (u *UnitOfWorkImpl) conn() *gorm.DB {
	if u.tx != nil {
		return u.tx
	}
	return u.db
}

func (u *UnitOfWorkImpl) Begin(ctx context.Context) error {
	if u.tx != nil {
		return ErrTransactionActive
	}
	tx := u.db.WithContext(ctx).Begin()
	if tx.Error != nil {
		return errors.Wrap(tx.Error, "begin")
	}
	u.tx = tx
	return nil
}

// end finishes the open transaction with commit or rollback.
func (u *UnitOfWorkImpl) end(finish func(*gorm.DB) *gorm.DB, op string) error {
	if u.tx == nil {
		return ErrNoTransaction
	}
	tx := u.tx
	u.tx = nil
	return errors.Wrap(finish(tx).Error, op)
}

func (u *UnitOfWorkImpl) Commit() error {
	return u.end((*gorm.DB).Commit, "commit")
}

func (u *UnitOfWorkImpl) Rollback() error {
	return u.end((*gorm.DB).Rollback, "rollback")
}

func (u *UnitOfWorkImpl) UserRepository() contract.UserRepository {
	return implementation.NewUserRepository(u.conn())
}

func (u *UnitOfWorkImpl) RetiredSlugRepository() contract.RetiredSlugRepository {
	return implementation.NewRetiredSlugRepository(u.conn())
}
