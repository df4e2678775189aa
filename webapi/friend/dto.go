package friend

import (
	"time"

	"github.com/Nweder/fuel-friends-azure/pkg/dto"
	"github.com/Nweder/fuel-friends-azure/pkg/fuel"
)

// CreateFriendRequest is the body for creating a friend.
type CreateFriendRequest struct {
	Name string `json:"name" validate:"required"`
}

// RenameFriendRequest is the body for renaming a friend.
type RenameFriendRequest struct {
	Name string `json:"name" validate:"required"`
}

// AddLitersRequest is the body for logging a fill-up.
type AddLitersRequest struct {
	Liters float64 `json:"liters" validate:"required"`
}

// PayRequest is the body for recording a payment.
type PayRequest struct {
	Amount float64 `json:"amount" validate:"required"`
}

// FriendResponse is the wire shape of one friend with derived balances.
// remainingSek always equals totalSek because the stored liters already
// count only what is still owed.
type FriendResponse struct {
	ID           uint    `json:"id"`
	Name         string  `json:"name"`
	TotalLiters  float64 `json:"totalLiters"`
	TotalSek     float64 `json:"totalSek"`
	PaidSek      float64 `json:"paidSek"`
	RemainingSek float64 `json:"remainingSek"`
}

// NewFriendResponse derives the wire view from a read DTO.
func NewFriendResponse(f *dto.FriendRead) FriendResponse {
	b := fuel.BalanceOf(f.TotalLiters, f.PaidSEK)
	return FriendResponse{
		ID:           f.ID,
		Name:         f.Name,
		TotalLiters:  b.TotalLiters,
		TotalSek:     b.TotalSEK,
		PaidSek:      b.PaidSEK,
		RemainingSek: b.RemainingSEK,
	}
}

// TransactionResponse is the wire shape of one history entry. The kind is
// exposed under the historical "type" key.
type TransactionResponse struct {
	ID          uint      `json:"id"`
	Type        string    `json:"type"`
	Amount      float64   `json:"amount"`
	Description string    `json:"description"`
	CreatedAt   time.Time `json:"createdAt"`
}

// NewTransactionResponse derives the wire view from a read DTO.
func NewTransactionResponse(tx *dto.TransactionRead) TransactionResponse {
	return TransactionResponse{
		ID:          tx.ID,
		Type:        tx.Kind,
		Amount:      fuel.Round2(tx.Amount),
		Description: tx.Description,
		CreatedAt:   tx.CreatedAt,
	}
}
