package memory

import (
	"context"
	"sync"
	"sync/atomic"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/skyops/missiond/internal/domain"
	domerrors "github.com/skyops/missiond/internal/domain/errors"
)

func testUser(email string) *domain.User {
	return &domain.User{
		ID:           domain.NewUserID(uuid.New()),
		Email:        email,
		FirstName:    "Ada",
		LastName:     "Vega",
		PasswordHash: "$argon2id$...",
	}
}

func TestUserStore_CreateAndGet(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	s := NewUserStore()
	u := testUser("a@x.com")
	require.NoError(t, s.Create(ctx, u))

	got, err := s.GetByEmail(ctx, "a@x.com")
	require.NoError(t, err)
	require.NotNil(t, got)
	assert.Equal(t, *u, *got)

	missing, err := s.GetByEmail(ctx, "nobody@x.com")
	require.NoError(t, err)
	assert.Nil(t, missing)
}

func TestUserStore_DuplicateEmail(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	s := NewUserStore()
	require.NoError(t, s.Create(ctx, testUser("a@x.com")))
	err := s.Create(ctx, testUser("a@x.com"))
	require.ErrorIs(t, err, domerrors.ErrEmailTaken)
}

func TestUserStore_ConcurrentCreateSameEmail(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	s := NewUserStore()

	var wg sync.WaitGroup
	var created atomic.Int32
	for i := 0; i < 50; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			if err := s.Create(ctx, testUser("race@x.com")); err == nil {
				created.Add(1)
			}
		}()
	}
	wg.Wait()
	assert.Equal(t, int32(1), created.Load(), "exactly one concurrent signup may win")
}
