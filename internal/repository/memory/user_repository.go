package memory

import (
	"context"
	"sort"
	"strings"
	"sync"
	"time"

	"company-profile-be/internal/model"
	"company-profile-be/internal/pkg/apperr"
	"company-profile-be/internal/repository/contract"

	"github.com/google/uuid"
)

type UserRepository struct {
	mu    sync.RWMutex
	users map[uuid.UUID]model.User
}

func NewUserRepository() *UserRepository {
	return &UserRepository{users: make(map[uuid.UUID]model.User)}
}

var _ contract.UserRepository = (*UserRepository)(nil)

func (r *UserRepository) Create(_ context.Context, user *model.User) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	user.Email = strings.ToLower(user.Email)
	for _, u := range r.users {
		if u.Email == user.Email {
			return apperr.Constraint("email", "email already exists")
		}
	}
	if user.Id == uuid.Nil {
		user.Id = uuid.New()
	}
	now := time.Now()
	user.CreatedAt, user.UpdatedAt = now, now
	r.users[user.Id] = *user
	return nil
}

func (r *UserRepository) FindByID(_ context.Context, id uuid.UUID) (*model.User, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	if u, ok := r.users[id]; ok {
		return &u, nil
	}
	return nil, nil
}

func (r *UserRepository) FindByEmail(_ context.Context, email string) (*model.User, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	email = strings.ToLower(email)
	for _, u := range r.users {
		if u.Email == email {
			return &u, nil
		}
	}
	return nil, nil
}

func (r *UserRepository) FindMany(_ context.Context, search string, limit, offset int) (int64, []*model.User, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	search = strings.ToLower(search)
	matches := make([]*model.User, 0, len(r.users))
	for _, u := range r.users {
		if search != "" && !strings.Contains(u.Email, search) && !strings.Contains(strings.ToLower(u.FullName), search) {
			continue
		}
		u := u
		matches = append(matches, &u)
	}
	sort.Slice(matches, func(i, j int) bool {
		return matches[i].CreatedAt.After(matches[j].CreatedAt)
	})

	total := int64(len(matches))
	if limit <= 0 {
		return total, matches, nil
	}
	if offset >= len(matches) {
		return total, []*model.User{}, nil
	}
	end := offset + limit
	if end > len(matches) {
		end = len(matches)
	}
	return total, matches[offset:end], nil
}

func (r *UserRepository) Save(_ context.Context, user *model.User) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.users[user.Id]; !ok {
		return apperr.NotFound("User")
	}
	user.Email = strings.ToLower(user.Email)
	for id, u := range r.users {
		if id != user.Id && u.Email == user.Email {
			return apperr.Constraint("email", "email already exists")
		}
	}
	user.UpdatedAt = time.Now()
	r.users[user.Id] = *user
	return nil
}

func (r *UserRepository) Delete(_ context.Context, id uuid.UUID) (bool, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.users[id]; !ok {
		return false, nil
	}
	delete(r.users, id)
	return true, nil
}

func (r *UserRepository) UpdateLastLogin(_ context.Context, id uuid.UUID, at time.Time) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if u, ok := r.users[id]; ok {
		u.LastLoginAt = &at
		r.users[id] = u
	}
	return nil
}

func (r *UserRepository) Count(_ context.Context) (int64, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return int64(len(r.users)), nil
}

func (r *UserRepository) CountActiveByRole(_ context.Context, role string) (int64, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	var n int64
	for _, u := range r.users {
		if u.Role == role && u.IsActive {
			n++
		}
	}
	return n, nil
}
