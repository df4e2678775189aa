// Package dto defines the data transfer objects exchanged between the
// service layer and the repositories.
package dto

import "time"

// FriendRead is a read-optimized DTO for friend queries and API responses.
type FriendRead struct {
	ID          uint
	Name        string
	TotalLiters float64 // Raw liter balance still owed, stored unrounded
	PaidSEK     float64 // Lifetime paid amount, stored unrounded
	CreatedAt   time.Time
}

// FriendCreate is a DTO for creating a new friend. Balances always start
// at zero.
type FriendCreate struct {
	Name string
}

// FriendUpdate is a DTO for updating one or more fields of a friend.
type FriendUpdate struct {
	Name        *string  // Optional rename
	TotalLiters *float64 // Optional new liter balance
	PaidSEK     *float64 // Optional new lifetime paid amount
}
