package memory

import (
	"context"
	"errors"
	"sync"

	"vet-recetas/internal/domain/users"
)

type usersRepo struct {
	mu      sync.RWMutex
	nextID  int64
	byID    map[int64]users.User
	byEmail map[string]int64
}

func NewUsersRepo() users.Repository {
	return &usersRepo{
		byID:    make(map[int64]users.User),
		byEmail: make(map[string]int64),
	}
}

// Create hace de unique constraint: el chequeo y el insert van bajo el mismo lock.
func (r *usersRepo) Create(ctx context.Context, u *users.User) error {
	if u == nil {
		return errors.New("user required")
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.byEmail[u.Email]; exists {
		return users.ErrEmailTaken
	}

	r.nextID++
	u.ID = r.nextID
	r.byID[u.ID] = *u
	r.byEmail[u.Email] = u.ID
	return nil
}

func (r *usersRepo) GetByID(ctx context.Context, id int64) (users.User, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	u, ok := r.byID[id]
	if !ok {
		return users.User{}, users.ErrNotFound
	}
	return u, nil
}

func (r *usersRepo) GetByEmail(ctx context.Context, email string) (users.User, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	id, ok := r.byEmail[email]
	if !ok {
		return users.User{}, users.ErrNotFound
	}
	return r.byID[id], nil
}
