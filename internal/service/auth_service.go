// FILE: internal/service/auth_service.go
package service

import (
	"context"
	"strings"
	"time"

	"company-profile-be/internal/dto"
	"company-profile-be/internal/mapper"
	"company-profile-be/internal/model"
	"company-profile-be/internal/pkg/apperr"
	"company-profile-be/internal/pkg/logger"
	"company-profile-be/internal/pkg/serverutils"
	"company-profile-be/internal/repository/unitofwork"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"golang.org/x/crypto/bcrypt"
)

const msgInvalidCredentials = "invalid email or password"

type IAuthService interface {
	Login(ctx context.Context, req *dto.LoginRequest) (*dto.LoginResponse, error)
	Me(ctx context.Context, userID string) (*dto.UserResponse, error)
	// EnsureUser creates the account unless the email is already taken.
	EnsureUser(ctx context.Context, email, password, fullName, role string) (*model.User, bool, error)
}

type authService struct {
	uowFactory unitofwork.RepositoryFactory
	jwtSecret  string
	tokenTTL   time.Duration
	logger     logger.ILogger
}

func NewAuthService(uowFactory unitofwork.RepositoryFactory, jwtSecret string, tokenTTL time.Duration, log logger.ILogger) IAuthService {
	return &authService{
		uowFactory: uowFactory,
		jwtSecret:  jwtSecret,
		tokenTTL:   tokenTTL,
		logger:     log,
	}
}

func (s *authService) Login(ctx context.Context, req *dto.LoginRequest) (*dto.LoginResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	user, err := uow.UserRepository().FindByEmail(ctx, strings.TrimSpace(req.Email))
	if err != nil {
		return nil, err
	}
	if user == nil || !user.IsActive {
		return nil, apperr.Unauthorized(msgInvalidCredentials)
	}
	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(req.Password)); err != nil {
		s.logger.Warn("AuthService", "Failed login attempt", map[string]interface{}{"email": user.Email})
		return nil, apperr.Unauthorized(msgInvalidCredentials)
	}

	token, expiresAt, err := serverutils.SignToken(s.jwtSecret, user.Id.String(), user.Email, user.Role, s.tokenTTL)
	if err != nil {
		return nil, errors.Wrap(err, "sign token")
	}

	now := time.Now()
	if err := uow.UserRepository().UpdateLastLogin(ctx, user.Id, now); err != nil {
		// The login itself succeeded; a stale timestamp is not worth failing it.
		s.logger.Warn("AuthService", "Failed to record last login", map[string]interface{}{"error": err.Error()})
	} else {
		user.LastLoginAt = &now
	}

	s.logger.Info("AuthService", "Admin logged in", map[string]interface{}{"user_id": user.Id, "role": user.Role})

	return &dto.LoginResponse{
		Token:     token,
		ExpiresAt: expiresAt,
		User:      mapper.ToUserResponse(user),
	}, nil
}

func (s *authService) Me(ctx context.Context, userID string) (*dto.UserResponse, error) {
	id, err := uuid.Parse(userID)
	if err != nil {
		return nil, apperr.Unauthorized("invalid token subject")
	}

	uow := s.uowFactory.NewUnitOfWork(ctx)
	user, err := uow.UserRepository().FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if user == nil || !user.IsActive {
		return nil, apperr.NotFound("User")
	}

	res := mapper.ToUserResponse(user)
	return &res, nil
}

func (s *authService) EnsureUser(ctx context.Context, email, password, fullName, role string) (*model.User, bool, error) {
	if role != model.UserRoleAdmin && role != model.UserRoleEditor {
		return nil, false, apperr.InvalidField("role", "must be one of: admin, editor")
	}

	uow := s.uowFactory.NewUnitOfWork(ctx)
	existing, err := uow.UserRepository().FindByEmail(ctx, email)
	if err != nil {
		return nil, false, err
	}
	if existing != nil {
		return existing, false, nil
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return nil, false, errors.Wrap(err, "hash password")
	}

	user := &model.User{
		Email:        strings.ToLower(strings.TrimSpace(email)),
		PasswordHash: string(hash),
		FullName:     fullName,
		Role:         role,
		IsActive:     true,
	}
	if err := uow.UserRepository().Create(ctx, user); err != nil {
		return nil, false, err
	}
	return user, true, nil
}
