package transaction_test

import (
	"context"
	"io"
	"log/slog"
	"path/filepath"
	"testing"

	"github.com/Nweder/fuel-friends-azure/infra"
	friendrepo "github.com/Nweder/fuel-friends-azure/infra/repository/friend"
	txrepo "github.com/Nweder/fuel-friends-azure/infra/repository/transaction"
	"github.com/Nweder/fuel-friends-azure/pkg/config"
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

func createFriend(t *testing.T, db *gorm.DB, name string) uint {
	t.Helper()
	f, err := friendrepo.New(db).Create(context.Background(), dto.FriendCreate{Name: name})
	require.NoError(t, err)
	return f.ID
}

func TestTransactionRepository_CreateAndList(t *testing.T) {
	require := require.New(t)
	assert := assert.New(t)
	db := newTestDB(t)
	repo := txrepo.New(db)
	ctx := context.Background()
	friendID := createFriend(t, db, "Alice")

	err := repo.Create(ctx, dto.TransactionCreate{
		FriendID:    friendID,
		Kind:        "fuel-added",
		Amount:      10,
		Description: "Added 10 L",
	})
	require.NoError(err)

	entries, err := repo.ListByFriend(ctx, friendID, 50)
	require.NoError(err)
	require.Len(entries, 1)
	assert.Equal(friendID, entries[0].FriendID)
	assert.Equal("fuel-added", entries[0].Kind)
	assert.InDelta(10.0, entries[0].Amount, 1e-9)
	assert.Equal("Added 10 L", entries[0].Description)
	assert.False(entries[0].CreatedAt.IsZero())
}

func TestTransactionRepository_List_NewestFirst(t *testing.T) {
	require := require.New(t)
	assert := assert.New(t)
	db := newTestDB(t)
	repo := txrepo.New(db)
	ctx := context.Background()
	friendID := createFriend(t, db, "Alice")

	for i := 1; i <= 5; i++ {
		require.NoError(repo.Create(ctx, dto.TransactionCreate{
			FriendID: friendID,
			Kind:     "fuel-added",
			Amount:   float64(i),
		}))
	}

	entries, err := repo.ListByFriend(ctx, friendID, 3)
	require.NoError(err)
	require.Len(entries, 3)
	assert.InDelta(5.0, entries[0].Amount, 1e-9)
	assert.InDelta(4.0, entries[1].Amount, 1e-9)
	assert.InDelta(3.0, entries[2].Amount, 1e-9)
	assert.Greater(entries[0].ID, entries[1].ID)
	assert.Greater(entries[1].ID, entries[2].ID)
}

func TestTransactionRepository_List_IDBreaksCreatedAtTies(t *testing.T) {
	require := require.New(t)
	assert := assert.New(t)
	db := newTestDB(t)
	repo := txrepo.New(db)
	ctx := context.Background()
	friendID := createFriend(t, db, "Alice")

	// Two rows sharing the exact same timestamp.
	err := db.Exec(
		`INSERT INTO transactions (friend_id, type, amount, description, created_at)
		 VALUES (?, 'fuel-added', 1, 'first', '2024-01-01 10:00:00'),
		        (?, 'payment', 2, 'second', '2024-01-01 10:00:00')`,
		friendID, friendID).Error
	require.NoError(err)

	entries, err := repo.ListByFriend(ctx, friendID, 50)
	require.NoError(err)
	require.Len(entries, 2)
	assert.Equal("second", entries[0].Description)
	assert.Equal("first", entries[1].Description)
	assert.Greater(entries[0].ID, entries[1].ID)
}

func TestTransactionRepository_List_FiltersByFriend(t *testing.T) {
	require := require.New(t)
	assert := assert.New(t)
	db := newTestDB(t)
	repo := txrepo.New(db)
	ctx := context.Background()
	alice := createFriend(t, db, "Alice")
	bob := createFriend(t, db, "Bob")

	require.NoError(repo.Create(ctx, dto.TransactionCreate{FriendID: alice, Kind: "fuel-added", Amount: 1}))
	require.NoError(repo.Create(ctx, dto.TransactionCreate{FriendID: bob, Kind: "payment", Amount: 2}))

	entries, err := repo.ListByFriend(ctx, alice, 50)
	require.NoError(err)
	require.Len(entries, 1)
	assert.Equal(alice, entries[0].FriendID)

	entries, err = repo.ListByFriend(ctx, 999, 50)
	require.NoError(err)
	assert.Empty(entries)
}

func TestTransactionRepository_DeleteByFriend(t *testing.T) {
	require := require.New(t)
	assert := assert.New(t)
	db := newTestDB(t)
	repo := txrepo.New(db)
	ctx := context.Background()
	alice := createFriend(t, db, "Alice")
	bob := createFriend(t, db, "Bob")

	require.NoError(repo.Create(ctx, dto.TransactionCreate{FriendID: alice, Kind: "fuel-added", Amount: 1}))
	require.NoError(repo.Create(ctx, dto.TransactionCreate{FriendID: alice, Kind: "payment", Amount: 2}))
	require.NoError(repo.Create(ctx, dto.TransactionCreate{FriendID: bob, Kind: "fuel-added", Amount: 3}))

	require.NoError(repo.DeleteByFriend(ctx, alice))

	entries, err := repo.ListByFriend(ctx, alice, 50)
	require.NoError(err)
	assert.Empty(entries)

	entries, err = repo.ListByFriend(ctx, bob, 50)
	require.NoError(err)
	assert.Len(entries, 1)
}
