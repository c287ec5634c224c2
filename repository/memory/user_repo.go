package memory

import (
	"context"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/junohq/backend/domain"
	"github.com/junohq/backend/repository"
)

type userRepository struct {
	mu    sync.RWMutex
	users map[string]domain.User
}

// NewUserRepository returns an in-memory implementation of UserRepository.
func NewUserRepository() repository.UserRepository {
	return &userRepository{users: make(map[string]domain.User)}
}

func (r *userRepository) GetByID(ctx context.Context, id string) (*domain.User, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	user, ok := r.users[id]
	if !ok {
		return nil, domain.ErrUserNotFound
	}
	return cloneUser(&user), nil
}

func (r *userRepository) Upsert(ctx context.Context, user *domain.User) error {
	if user == nil {
		return domain.ErrInvalidPayload
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	if user.ID == "" {
		user.ID = uuid.NewString()
	}
	now := time.Now().UTC()
	if existing, ok := r.users[user.ID]; ok {
		user.CreatedAt = existing.CreatedAt
	} else if user.CreatedAt.IsZero() {
		user.CreatedAt = now
	}
	user.UpdatedAt = now

	r.users[user.ID] = *cloneUser(user)
	return nil
}

func cloneUser(u *domain.User) *domain.User {
	if u == nil {
		return nil
	}
	out := *u
	out.Clusters = append([]string(nil), u.Clusters...)
	return &out
}
