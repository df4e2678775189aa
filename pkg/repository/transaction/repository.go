package transaction

import (
	"context"

	"github.com/Nweder/fuel-friends-azure/pkg/dto"
)

// Repository defines the interface for transaction history data access.
// The history is append-only, so there are no update operations.
type Repository interface {
	// Create appends a new history entry from a DTO.
	Create(ctx context.Context, create dto.TransactionCreate) error

	// ListByFriend lists up to limit history entries for a friend, newest
	// first. Ties on creation time are broken by id descending so the
	// order stays stable when timestamps collide.
	ListByFriend(ctx context.Context, friendID uint, limit int) ([]*dto.TransactionRead, error)

	// DeleteByFriend removes every history entry belonging to a friend.
	DeleteByFriend(ctx context.Context, friendID uint) error
}
