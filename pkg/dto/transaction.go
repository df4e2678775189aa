package dto

import "time"

// TransactionRead is a read-optimized DTO for transaction history queries
// and API responses.
type TransactionRead struct {
	ID          uint
	FriendID    uint    // Friend the entry belongs to
	Kind        string  // Operation that produced the entry
	Amount      float64 // Liters for fuel entries, SEK for payments, 0 otherwise
	Description string  // Human-readable summary
	CreatedAt   time.Time
}

// TransactionCreate is a DTO for appending a new history entry. Entries are
// immutable once written, so there is no update counterpart.
type TransactionCreate struct {
	FriendID    uint
	Kind        string
	Amount      float64
	Description string
}
