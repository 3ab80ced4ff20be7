package unitofwork

import (
	"context"

	"company-profile-be/internal/repository/contract"
	"company-profile-be/internal/repository/implementation"
	"company-profile-be/internal/repository/memory"
)

type UnitOfWork interface {
	Begin(ctx context.Context) error
	Commit() error
	Rollback() error

	UserRepository() contract.UserRepository
	RetiredSlugRepository() contract.RetiredSlugRepository
}

// Repository returns the repository for M bound to the unit of work, inside
// its transaction when one was begun.
func Repository[M any](u UnitOfWork) contract.ResourceRepository[M] {
	switch uow := u.(type) {
	case *UnitOfWorkImpl:
		return implementation.NewResourceRepository[M](uow.conn())
	case *MemoryUnitOfWork:
		return memory.NewResourceRepository(memory.TableOf[M](uow.db))
	default:
		panic("unitofwork: unsupported unit of work implementation")
	}
}
