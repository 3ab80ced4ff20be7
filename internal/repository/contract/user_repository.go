package contract

import (
	"context"
	"time"

	"company-profile-be/internal/model"

	"github.com/google/uuid"
)

type UserRepository interface {
	Create(ctx context.Context, user *model.User) error
	FindByID(ctx context.Context, id uuid.UUID) (*model.User, error)
	FindByEmail(ctx context.Context, email string) (*model.User, error)
	// FindMany matches search against email and full name, newest first.
	// limit <= 0 returns every match.
	FindMany(ctx context.Context, search string, limit, offset int) (int64, []*model.User, error)
	// Save overwrites every column of an existing account.
	Save(ctx context.Context, user *model.User) error
	Delete(ctx context.Context, id uuid.UUID) (bool, error)
	UpdateLastLogin(ctx context.Context, id uuid.UUID, at time.Time) error
	Count(ctx context.Context) (int64, error)
	CountActiveByRole(ctx context.Context, role string) (int64, error)
}
