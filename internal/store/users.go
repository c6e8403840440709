package store

import (
	"errors"
	"fmt"
	"sync"

	"github.com/alfagnish/trading-app/internal/domain"
)

// ErrUserNotFound is returned by Rename when no user has the given id.
var ErrUserNotFound = errors.New("user not found")

// UserStore is an in-memory, ordered collection of users. Each method holds
// the lock for its own duration only; callers composing several calls get no
// atomicity across them.
type UserStore struct {
	mu    sync.RWMutex
	users []domain.User
}

// NewUserStore creates a store holding copies of users, in order.
func NewUserStore(users []domain.User) *UserStore {
	s := &UserStore{users: make([]domain.User, 0, len(users))}
	for _, u := range users {
		s.users = append(s.users, u.Clone())
	}
	return s
}

// Get returns every user whose id matches. The result is a list, usually of
// zero or one element; duplicate ids yield several.
func (s *UserStore) Get(id int64) []domain.User {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := []domain.User{}
	for _, u := range s.users {
		if u.ID == id {
			out = append(out, u.Clone())
		}
	}
	return out
}

// All returns a copy of every user in insertion order.
func (s *UserStore) All() []domain.User {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]domain.User, len(s.users))
	for i, u := range s.users {
		out[i] = u.Clone()
	}
	return out
}

// Len returns the number of users.
func (s *UserStore) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.users)
}

// Rename sets the name of the first user with the given id and returns the
// updated record.
func (s *UserStore) Rename(id int64, name string) (domain.User, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i := range s.users {
		if s.users[i].ID == id {
			s.users[i].Name = name
			return s.users[i].Clone(), nil
		}
	}
	return domain.User{}, fmt.Errorf("rename user %d: %w", id, ErrUserNotFound)
}
