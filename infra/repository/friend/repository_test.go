package friend_test

import (
	"context"
	"io"
	"log/slog"
	"path/filepath"
	"testing"
	"time"

	"github.com/Nweder/fuel-friends-azure/infra"
	friendrepo "github.com/Nweder/fuel-friends-azure/infra/repository/friend"
	"github.com/Nweder/fuel-friends-azure/pkg/config"
	"github.com/Nweder/fuel-friends-azure/pkg/domain"
	"github.com/Nweder/fuel-friends-azure/pkg/dto"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	db, err := infra.NewDBConnection(
		&config.DB{Path: filepath.Join(t.TempDir(), "fuel_test.db")}, "test")
	require.NoError(t, err)
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	require.NoError(t, infra.Migrate(db, logger))
	return db
}

func ptr[T any](v T) *T { return &v }

func TestFriendRepository_CreateAndGet(t *testing.T) {
	require := require.New(t)
	assert := assert.New(t)
	repo := friendrepo.New(newTestDB(t))
	ctx := context.Background()

	created, err := repo.Create(ctx, dto.FriendCreate{Name: "Alice"})
	require.NoError(err)
	require.NotNil(created)
	assert.Equal(uint(1), created.ID)
	assert.Equal("Alice", created.Name)
	assert.Zero(created.TotalLiters)
	assert.Zero(created.PaidSEK)
	assert.WithinDuration(time.Now().UTC(), created.CreatedAt, 5*time.Second)

	got, err := repo.Get(ctx, created.ID)
	require.NoError(err)
	assert.Equal(created.ID, got.ID)
	assert.Equal("Alice", got.Name)
}

func TestFriendRepository_Get_NotFound(t *testing.T) {
	repo := friendrepo.New(newTestDB(t))

	_, err := repo.Get(context.Background(), 999)
	require.ErrorIs(t, err, domain.ErrFriendNotFound)
}

func TestFriendRepository_List(t *testing.T) {
	require := require.New(t)
	assert := assert.New(t)
	repo := friendrepo.New(newTestDB(t))
	ctx := context.Background()

	friends, err := repo.List(ctx)
	require.NoError(err)
	assert.NotNil(friends)
	assert.Empty(friends)

	for _, name := range []string{"Cleo", "Adam", "Bea"} {
		_, err = repo.Create(ctx, dto.FriendCreate{Name: name})
		require.NoError(err)
	}

	friends, err = repo.List(ctx)
	require.NoError(err)
	require.Len(friends, 3)
	// Ordered by id, not by name.
	assert.Equal("Cleo", friends[0].Name)
	assert.Equal("Adam", friends[1].Name)
	assert.Equal("Bea", friends[2].Name)
	assert.Less(friends[0].ID, friends[1].ID)
	assert.Less(friends[1].ID, friends[2].ID)
}

func TestFriendRepository_Update(t *testing.T) {
	require := require.New(t)
	assert := assert.New(t)
	repo := friendrepo.New(newTestDB(t))
	ctx := context.Background()

	created, err := repo.Create(ctx, dto.FriendCreate{Name: "Alice"})
	require.NoError(err)

	err = repo.Update(ctx, created.ID, dto.FriendUpdate{
		TotalLiters: ptr(12.5),
		PaidSEK:     ptr(60.0),
	})
	require.NoError(err)

	got, err := repo.Get(ctx, created.ID)
	require.NoError(err)
	assert.Equal("Alice", got.Name)
	assert.InDelta(12.5, got.TotalLiters, 1e-9)
	assert.InDelta(60.0, got.PaidSEK, 1e-9)

	err = repo.Update(ctx, created.ID, dto.FriendUpdate{Name: ptr("Alicia")})
	require.NoError(err)

	got, err = repo.Get(ctx, created.ID)
	require.NoError(err)
	assert.Equal("Alicia", got.Name)
	assert.InDelta(12.5, got.TotalLiters, 1e-9)

	// An update with no fields set is a no-op.
	require.NoError(repo.Update(ctx, created.ID, dto.FriendUpdate{}))
}

func TestFriendRepository_Delete(t *testing.T) {
	require := require.New(t)
	repo := friendrepo.New(newTestDB(t))
	ctx := context.Background()

	created, err := repo.Create(ctx, dto.FriendCreate{Name: "Alice"})
	require.NoError(err)

	require.NoError(repo.Delete(ctx, created.ID))

	_, err = repo.Get(ctx, created.ID)
	require.ErrorIs(err, domain.ErrFriendNotFound)

	// Deleting an id that never existed reports nothing; existence checks
	// live in the service layer.
	require.NoError(repo.Delete(ctx, 999))
}

func TestFriendRepository_ResetAll(t *testing.T) {
	require := require.New(t)
	assert := assert.New(t)
	repo := friendrepo.New(newTestDB(t))
	ctx := context.Background()

	for _, name := range []string{"Alice", "Bob"} {
		created, err := repo.Create(ctx, dto.FriendCreate{Name: name})
		require.NoError(err)
		require.NoError(repo.Update(ctx, created.ID, dto.FriendUpdate{
			TotalLiters: ptr(10.0),
			PaidSEK:     ptr(40.0),
		}))
	}

	require.NoError(repo.ResetAll(ctx))

	friends, err := repo.List(ctx)
	require.NoError(err)
	require.Len(friends, 2)
	for _, f := range friends {
		assert.Zero(f.TotalLiters)
		assert.Zero(f.PaidSEK)
	}
	assert.Equal("Alice", friends[0].Name)
	assert.Equal("Bob", friends[1].Name)

	// Resetting an empty table is fine too.
	require.NoError(repo.Delete(ctx, friends[0].ID))
	require.NoError(repo.Delete(ctx, friends[1].ID))
	require.NoError(repo.ResetAll(ctx))
}
