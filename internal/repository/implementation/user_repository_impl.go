package implementation

import (
	"context"
	"strings"
	"time"

	"company-profile-be/internal/model"
	"company-profile-be/internal/repository/contract"
	"company-profile-be/internal/repository/scope"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"gorm.io/gorm"
)

type UserRepositoryImpl struct {
	db *gorm.DB
}

func NewUserRepository(db *gorm.DB) contract.UserRepository {
	return &UserRepositoryImpl{db: db}
}

func (r *UserRepositoryImpl) Create(ctx context.Context, user *model.User) error {
	if user.Id == uuid.Nil {
		user.Id = uuid.New()
	}
	user.Email = strings.ToLower(user.Email)
	if err := r.db.WithContext(ctx).Create(user).Error; err != nil {
		return translateError(err, "create user")
	}
	return nil
}

func (r *UserRepositoryImpl) findOne(ctx context.Context, query string, args ...interface{}) (*model.User, error) {
	var user model.User
	if err := r.db.WithContext(ctx).Where(query, args...).First(&user).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, errors.Wrap(err, "find user")
	}
	return &user, nil
}

func (r *UserRepositoryImpl) FindByID(ctx context.Context, id uuid.UUID) (*model.User, error) {
	return r.findOne(ctx, "id = ?", id)
}

func (r *UserRepositoryImpl) FindByEmail(ctx context.Context, email string) (*model.User, error) {
	return r.findOne(ctx, "email = ?", strings.ToLower(email))
}

func (r *UserRepositoryImpl) FindMany(ctx context.Context, search string, limit, offset int) (int64, []*model.User, error) {
	db := r.db.WithContext(ctx).Model(&model.User{})
	if search != "" {
		like := "%" + strings.ToLower(search) + "%"
		db = db.Where("LOWER(email) LIKE ? OR LOWER(full_name) LIKE ?", like, like)
	}

	var total int64
	if err := db.Count(&total).Error; err != nil {
		return 0, nil, errors.Wrap(err, "count users")
	}

	var users []*model.User
	if err := db.Scopes(scope.OrderByCreatedDesc, scope.Paginate(limit, offset)).Find(&users).Error; err != nil {
		return 0, nil, errors.Wrap(err, "list users")
	}
	return total, users, nil
}

func (r *UserRepositoryImpl) Save(ctx context.Context, user *model.User) error {
	user.Email = strings.ToLower(user.Email)
	if err := r.db.WithContext(ctx).Save(user).Error; err != nil {
		return translateError(err, "save user")
	}
	return nil
}

func (r *UserRepositoryImpl) Delete(ctx context.Context, id uuid.UUID) (bool, error) {
	res := r.db.WithContext(ctx).Where("id = ?", id).Delete(&model.User{})
	if res.Error != nil {
		return false, errors.Wrap(res.Error, "delete user")
	}
	return res.RowsAffected > 0, nil
}

func (r *UserRepositoryImpl) UpdateLastLogin(ctx context.Context, id uuid.UUID, at time.Time) error {
	err := r.db.WithContext(ctx).Model(&model.User{}).Where("id = ?", id).UpdateColumn("last_login_at", at).Error
	return errors.Wrap(err, "update last login")
}

func (r *UserRepositoryImpl) Count(ctx context.Context) (int64, error) {
	var count int64
	if err := r.db.WithContext(ctx).Model(&model.User{}).Count(&count).Error; err != nil {
		return 0, errors.Wrap(err, "count users")
	}
	return count, nil
}

func (r *UserRepositoryImpl) CountActiveByRole(ctx context.Context, role string) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&model.User{}).
		Where("role = ? AND is_active = ?", role, true).
		Count(&count).Error
	if err != nil {
		return 0, errors.Wrap(err, "count users by role")
	}
	return count, nil
}
