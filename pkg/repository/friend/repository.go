package friend

import (
	"context"

	"github.com/Nweder/fuel-friends-azure/pkg/dto"
)

// Repository defines the interface for friend data access operations.
// Reads return DTOs, writes take DTOs, so callers never touch store models.
type Repository interface {
	// Create inserts a new friend record from a DTO and returns the stored
	// row, including the store-assigned id.
	Create(ctx context.Context, create dto.FriendCreate) (*dto.FriendRead, error)

	// Get retrieves a friend by its ID as a read-optimized DTO.
	Get(ctx context.Context, id uint) (*dto.FriendRead, error)

	// List lists all friends ordered by id ascending as read-optimized DTOs.
	List(ctx context.Context) ([]*dto.FriendRead, error)

	// Update updates an existing friend by its ID using a DTO.
	Update(ctx context.Context, id uint, update dto.FriendUpdate) error

	// Delete removes a friend row by its ID.
	Delete(ctx context.Context, id uint) error

	// ResetAll zeroes the liter balance and paid amount of every friend.
	ResetAll(ctx context.Context) error
}
