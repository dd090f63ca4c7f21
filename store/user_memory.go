package store

import (
	"context"
	"iter"
	"strings"

	"github.com/MarcSastreViB/chatrooms/models"
)

// MemoryUserStore is an in-memory UserStore keyed by the canonical
// (lower-cased) username. The registry is volatile: its lifetime is the
// lifetime of the process.
type MemoryUserStore struct {
	users *SyncMap[string, models.User]
}

func NewMemoryUserStore() *MemoryUserStore {
	return &MemoryUserStore{
		users: NewSyncMap[string, models.User](),
	}
}

func (s *MemoryUserStore) Register(ctx context.Context, user models.User) error {
	if strings.TrimSpace(user.Username) == "" {
		return ErrBlankUsername
	}
	s.users.Store(user.Key(), user)
	return nil
}

func (s *MemoryUserStore) Get(ctx context.Context, username string) (*models.User, error) {
	if strings.TrimSpace(username) == "" {
		return nil, ErrBlankUsername
	}
	user, ok := s.users.Load(models.UserKey(username))
	if !ok {
		return nil, nil
	}
	return &user, nil
}

func (s *MemoryUserStore) Exists(ctx context.Context, username string) (bool, error) {
	if strings.TrimSpace(username) == "" {
		return false, ErrBlankUsername
	}
	_, ok := s.users.Load(models.UserKey(username))
	return ok, nil
}

func (s *MemoryUserStore) Users(ctx context.Context) iter.Seq[models.User] {
	users := s.users.Values()
	return func(yield func(models.User) bool) {
		for _, u := range users {
			if !yield(u) {
				return
			}
		}
	}
}

func (s *MemoryUserStore) Delete(ctx context.Context, username string) (bool, error) {
	if strings.TrimSpace(username) == "" {
		return false, ErrBlankUsername
	}
	return s.users.Delete(models.UserKey(username)), nil
}
