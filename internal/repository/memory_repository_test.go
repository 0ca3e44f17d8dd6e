package repository

import (
	"context"
	"sync"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Tyagianshu04/krishi-mitra/internal/errors"
	"github.com/Tyagianshu04/krishi-mitra/internal/model"
)

func newTestUser(email, mobile string) *model.User {
	return &model.User{
		ID:           uuid.New(),
		FullName:     "Test User",
		Email:        email,
		Mobile:       mobile,
		PasswordHash: "hashed",
	}
}

func TestMemoryUserRepository_CreateAndFind(t *testing.T) {
	repo := NewMemoryUserRepository()
	ctx := context.Background()

	user := newTestUser("ravi@example.com", "9876543210")
	require.NoError(t, repo.Create(ctx, user))
	assert.False(t, user.CreatedAt.IsZero())

	byEmail, err := repo.FindByIdentifier(ctx, "ravi@example.com")
	require.NoError(t, err)
	assert.Equal(t, user.ID, byEmail.ID)

	byMobile, err := repo.FindByIdentifier(ctx, "9876543210")
	require.NoError(t, err)
	assert.Equal(t, user.ID, byMobile.ID)

	byID, err := repo.FindByID(ctx, user.ID)
	require.NoError(t, err)
	assert.Equal(t, user.Email, byID.Email)

	count, err := repo.Count(ctx)
	require.NoError(t, err)
	assert.Equal(t, int64(1), count)
}

func TestMemoryUserRepository_NotFound(t *testing.T) {
	repo := NewMemoryUserRepository()
	ctx := context.Background()

	_, err := repo.FindByIdentifier(ctx, "nobody@example.com")
	assert.ErrorIs(t, err, errors.ErrUserNotFound)

	_, err = repo.FindByID(ctx, uuid.New())
	assert.ErrorIs(t, err, errors.ErrUserNotFound)
}

func TestMemoryUserRepository_Uniqueness(t *testing.T) {
	repo := NewMemoryUserRepository()
	ctx := context.Background()

	require.NoError(t, repo.Create(ctx, newTestUser("ravi@example.com", "9876543210")))

	err := repo.Create(ctx, newTestUser("ravi@example.com", "1111111111"))
	assert.ErrorIs(t, err, errors.ErrEmailTaken)

	err = repo.Create(ctx, newTestUser("other@example.com", "9876543210"))
	assert.ErrorIs(t, err, errors.ErrMobileTaken)

	count, err := repo.Count(ctx)
	require.NoError(t, err)
	assert.Equal(t, int64(1), count)
}

// Two goroutines racing to register the same email: exactly one may win.
func TestMemoryUserRepository_ConcurrentCreate(t *testing.T) {
	repo := NewMemoryUserRepository()
	ctx := context.Background()

	const attempts = 32
	var wg sync.WaitGroup
	results := make(chan error, attempts)

	for i := 0; i < attempts; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			results <- repo.Create(ctx, newTestUser("race@example.com", "9876543210"))
		}()
	}
	wg.Wait()
	close(results)

	succeeded := 0
	for err := range results {
		if err == nil {
			succeeded++
		}
	}
	assert.Equal(t, 1, succeeded)

	count, err := repo.Count(ctx)
	require.NoError(t, err)
	assert.Equal(t, int64(1), count)
}

// Stored users are copies: mutating the returned value must not leak back.
func TestMemoryUserRepository_ReturnsCopies(t *testing.T) {
	repo := NewMemoryUserRepository()
	ctx := context.Background()

	user := newTestUser("ravi@example.com", "9876543210")
	require.NoError(t, repo.Create(ctx, user))

	first, err := repo.FindByID(ctx, user.ID)
	require.NoError(t, err)
	first.FullName = "Mutated"

	second, err := repo.FindByID(ctx, user.ID)
	require.NoError(t, err)
	assert.Equal(t, "Test User", second.FullName)
}
