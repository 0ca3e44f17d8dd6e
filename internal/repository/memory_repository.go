package repository

import (
	"context"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/Tyagianshu04/krishi-mitra/internal/errors"
	"github.com/Tyagianshu04/krishi-mitra/internal/model"
)

// memoryUserRepository is a process-local credential store. A single mutex
// guards the check-and-insert so that two concurrent registrations with the
// same email or mobile can never both succeed.
type memoryUserRepository struct {
	mu       sync.RWMutex
	byID     map[uuid.UUID]model.User
	byEmail  map[string]uuid.UUID
	byMobile map[string]uuid.UUID
}

// NewMemoryUserRepository builds an in-memory repository. Nothing survives a
// restart; this is the default driver for demo deployments.
func NewMemoryUserRepository() UserRepository {
	return &memoryUserRepository{
		byID:     make(map[uuid.UUID]model.User),
		byEmail:  make(map[string]uuid.UUID),
		byMobile: make(map[string]uuid.UUID),
	}
}

func (r *memoryUserRepository) Create(ctx context.Context, user *model.User) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.byEmail[user.Email]; ok {
		return errors.ErrEmailTaken
	}
	if _, ok := r.byMobile[user.Mobile]; ok {
		return errors.ErrMobileTaken
	}

	now := time.Now()
	if user.CreatedAt.IsZero() {
		user.CreatedAt = now
	}
	user.UpdatedAt = now

	r.byID[user.ID] = *user
	r.byEmail[user.Email] = user.ID
	r.byMobile[user.Mobile] = user.ID
	return nil
}

func (r *memoryUserRepository) FindByIdentifier(ctx context.Context, identifier string) (*model.User, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	id, ok := r.byEmail[identifier]
	if !ok {
		id, ok = r.byMobile[identifier]
	}
	if !ok {
		return nil, errors.ErrUserNotFound
	}
	user := r.byID[id]
	return &user, nil
}

func (r *memoryUserRepository) FindByID(ctx context.Context, id uuid.UUID) (*model.User, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	user, ok := r.byID[id]
	if !ok {
		return nil, errors.ErrUserNotFound
	}
	return &user, nil
}

func (r *memoryUserRepository) Count(ctx context.Context) (int64, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return int64(len(r.byID)), nil
}
