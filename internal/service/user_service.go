// FILE: internal/service/user_service.go
package service

import (
	"context"
	"strings"

	"company-profile-be/internal/dto"
	"company-profile-be/internal/mapper"
	"company-profile-be/internal/model"
	"company-profile-be/internal/pkg/apperr"
	"company-profile-be/internal/pkg/logger"
	"company-profile-be/internal/repository/unitofwork"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"golang.org/x/crypto/bcrypt"
)

const msgLastAdmin = "at least one active admin must remain"

// IUserService manages back-office accounts. Every method but ChangePassword
// is reserved for admins by the router.
type IUserService interface {
	List(ctx context.Context, page, limit int, search string) (int64, []dto.UserResponse, error)
	Get(ctx context.Context, id uuid.UUID) (*dto.UserResponse, error)
	Create(ctx context.Context, req *dto.CreateUserRequest) (*dto.UserResponse, error)
	Update(ctx context.Context, id uuid.UUID, req *dto.UpdateUserRequest) (*dto.UserResponse, error)
	Delete(ctx context.Context, id uuid.UUID, actorID string) error
	ChangePassword(ctx context.Context, userID string, req *dto.ChangePasswordRequest) error
}

type userService struct {
	uowFactory unitofwork.RepositoryFactory
	logger     logger.ILogger
}

func NewUserService(uowFactory unitofwork.RepositoryFactory, log logger.ILogger) IUserService {
	return &userService{
		uowFactory: uowFactory,
		logger:     log,
	}
}

func (s *userService) List(ctx context.Context, page, limit int, search string) (int64, []dto.UserResponse, error) {
	if page < 1 {
		page = 1
	}
	uow := s.uowFactory.NewUnitOfWork(ctx)
	total, users, err := uow.UserRepository().FindMany(ctx, strings.TrimSpace(search), limit, (page-1)*limit)
	if err != nil {
		return 0, nil, err
	}
	return total, mapper.ToUserResponses(users), nil
}

func (s *userService) Get(ctx context.Context, id uuid.UUID) (*dto.UserResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)
	user, err := uow.UserRepository().FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, apperr.NotFound("User")
	}
	res := mapper.ToUserResponse(user)
	return &res, nil
}

func (s *userService) Create(ctx context.Context, req *dto.CreateUserRequest) (*dto.UserResponse, error) {
	email := strings.ToLower(strings.TrimSpace(req.Email))

	uow := s.uowFactory.NewUnitOfWork(ctx)
	existing, err := uow.UserRepository().FindByEmail(ctx, email)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, apperr.Constraint("email", "email already exists")
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, errors.Wrap(err, "hash password")
	}

	user := &model.User{
		Email:        email,
		PasswordHash: string(hash),
		FullName:     strings.TrimSpace(req.FullName),
		Role:         req.Role,
		IsActive:     true,
	}
	if err := uow.UserRepository().Create(ctx, user); err != nil {
		return nil, err
	}

	s.logger.Info("UserService", "User created", map[string]interface{}{"user_id": user.Id, "role": user.Role})
	res := mapper.ToUserResponse(user)
	return &res, nil
}

func (s *userService) Update(ctx context.Context, id uuid.UUID, req *dto.UpdateUserRequest) (*dto.UserResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)
	if err := uow.Begin(ctx); err != nil {
		return nil, errors.Wrap(err, "begin transaction")
	}
	defer uow.Rollback()

	repo := uow.UserRepository()
	user, err := repo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, apperr.NotFound("User")
	}

	wasActiveAdmin := user.Role == model.UserRoleAdmin && user.IsActive

	if req.FullName != nil {
		user.FullName = strings.TrimSpace(*req.FullName)
	}
	if req.Role != nil {
		user.Role = *req.Role
	}
	if req.IsActive != nil {
		user.IsActive = *req.IsActive
	}
	if req.Password != nil {
		hash, err := bcrypt.GenerateFromPassword([]byte(*req.Password), bcrypt.DefaultCost)
		if err != nil {
			return nil, errors.Wrap(err, "hash password")
		}
		user.PasswordHash = string(hash)
	}

	if wasActiveAdmin && (user.Role != model.UserRoleAdmin || !user.IsActive) {
		if err := s.ensureAnotherAdmin(ctx, uow); err != nil {
			return nil, err
		}
	}

	if err := repo.Save(ctx, user); err != nil {
		return nil, err
	}
	if err := uow.Commit(); err != nil {
		return nil, errors.Wrap(err, "commit transaction")
	}

	res := mapper.ToUserResponse(user)
	return &res, nil
}

func (s *userService) Delete(ctx context.Context, id uuid.UUID, actorID string) error {
	if id.String() == actorID {
		return apperr.Forbidden("you cannot delete your own account")
	}

	uow := s.uowFactory.NewUnitOfWork(ctx)
	if err := uow.Begin(ctx); err != nil {
		return errors.Wrap(err, "begin transaction")
	}
	defer uow.Rollback()

	repo := uow.UserRepository()
	user, err := repo.FindByID(ctx, id)
	if err != nil {
		return err
	}
	if user == nil {
		return apperr.NotFound("User")
	}
	if user.Role == model.UserRoleAdmin && user.IsActive {
		if err := s.ensureAnotherAdmin(ctx, uow); err != nil {
			return err
		}
	}

	if _, err := repo.Delete(ctx, id); err != nil {
		return err
	}
	if err := uow.Commit(); err != nil {
		return errors.Wrap(err, "commit transaction")
	}

	s.logger.Info("UserService", "User deleted", map[string]interface{}{"user_id": id, "by": actorID})
	return nil
}

// ensureAnotherAdmin fails when the account being changed is the only active admin.
func (s *userService) ensureAnotherAdmin(ctx context.Context, uow unitofwork.UnitOfWork) error {
	admins, err := uow.UserRepository().CountActiveByRole(ctx, model.UserRoleAdmin)
	if err != nil {
		return err
	}
	if admins <= 1 {
		return apperr.InvalidField("role", msgLastAdmin)
	}
	return nil
}

func (s *userService) ChangePassword(ctx context.Context, userID string, req *dto.ChangePasswordRequest) error {
	id, err := uuid.Parse(userID)
	if err != nil {
		return apperr.Unauthorized("invalid token subject")
	}

	uow := s.uowFactory.NewUnitOfWork(ctx)
	user, err := uow.UserRepository().FindByID(ctx, id)
	if err != nil {
		return err
	}
	if user == nil || !user.IsActive {
		return apperr.NotFound("User")
	}
	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(req.CurrentPassword)); err != nil {
		return apperr.InvalidField("current_password", "is incorrect")
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(req.NewPassword), bcrypt.DefaultCost)
	if err != nil {
		return errors.Wrap(err, "hash password")
	}
	user.PasswordHash = string(hash)
	return uow.UserRepository().Save(ctx, user)
}
