package unitofwork

import (
	"context"

	"company-profile-be/internal/repository/contract"
	"company-profile-be/internal/repository/memory"
)

// MemoryUnitOfWork tracks transaction state for API parity only; memory
// writes are applied immediately and Rollback does not undo them.
type MemoryUnitOfWork struct {
	db     *memory.Database
	active bool
}

func (u *MemoryUnitOfWork) Begin(context.Context) error {
	if u.active {
		return ErrTransactionActive
	}
	u.active = true
	return nil
}

func (u *MemoryUnitOfWork) Commit() error {
	if !u.active {
		return ErrNoTransaction
	}
	u.active = false
	return nil
}

func (u *MemoryUnitOfWork) Rollback() error {
	if !u.active {
		return ErrNoTransaction
	}
	u.active = false
	return nil
}

func (u *MemoryUnitOfWork) UserRepository() contract.UserRepository {
	return u.db.Users
}

func (u *MemoryUnitOfWork) RetiredSlugRepository() contract.RetiredSlugRepository {
	return memory.NewRetiredSlugRepository(u.db.RetiredSlugs)
}
