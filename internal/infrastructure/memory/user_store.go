package memory

import (
	"context"
	"sync"

	"github.com/skyops/missiond/internal/application/ports"
	"github.com/skyops/missiond/internal/domain"
	domerrors "github.com/skyops/missiond/internal/domain/errors"
)

// UserStore is an in-memory ports.UserRepository suitable for single-instance
// deployment. The uniqueness check and the insert happen under one lock, so
// two concurrent signups for the same email cannot both succeed.
type UserStore struct {
	mu    sync.RWMutex
	users map[string]domain.User // keyed by email
}

func NewUserStore() *UserStore {
	return &UserStore{users: make(map[string]domain.User)}
}

func (s *UserStore) Create(ctx context.Context, user *domain.User) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, exists := s.users[user.Email]; exists {
		return domerrors.ErrEmailTaken
	}
	s.users[user.Email] = *user
	return nil
}

func (s *UserStore) GetByEmail(ctx context.Context, email string) (*domain.User, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	u, ok := s.users[email]
	if !ok {
		return nil, nil
	}
	return &u, nil
}

var _ ports.UserRepository = (*UserStore)(nil)
