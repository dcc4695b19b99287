package memory

import (
	"context"
	"sync"

	"med-reminder-api/internal/domain/users"
)

type usersRepo struct {
	mu   sync.RWMutex
	byID map[string]users.User
}

func NewUsersRepo() users.Repository {
	return &usersRepo{
		byID: make(map[string]users.User),
	}
}

func (r *usersRepo) Upsert(ctx context.Context, u users.User) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if existing, ok := r.byID[u.ID]; ok {
		existing.Email = u.Email
		existing.DisplayName = u.DisplayName
		existing.PhotoURL = u.PhotoURL
		existing.UpdatedAt = u.UpdatedAt
		r.byID[u.ID] = existing
		return nil
	}

	r.byID[u.ID] = u
	return nil
}

func (r *usersRepo) UpdateProfile(ctx context.Context, id string, p users.Profile) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	u, ok := r.byID[id]
	if !ok {
		return users.ErrNotFound
	}
	u.Profile = p
	r.byID[id] = u
	return nil
}

func (r *usersRepo) GetByID(ctx context.Context, id string) (users.User, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	u, ok := r.byID[id]
	if !ok {
		return users.User{}, users.ErrNotFound
	}
	return u, nil
}
