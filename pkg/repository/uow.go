// Package repository defines the persistence contracts the service layer
// depends on. Implementations live in infra/repository.
package repository

import (
	"context"

	"github.com/Nweder/fuel-friends-azure/pkg/repository/friend"
	"github.com/Nweder/fuel-friends-azure/pkg/repository/transaction"
)

// UnitOfWork defines the contract for transactional work and repository
// access. Repositories obtained from a UnitOfWork inside Do share one DB
// transaction, so a balance write and its history entry commit together
// or not at all.
type UnitOfWork interface {
	// Do executes the given function within a transaction boundary.
	// The provided function receives a UnitOfWork bound to that
	// transaction. If the function returns an error, the transaction
	// is rolled back.
	Do(ctx context.Context, fn func(uow UnitOfWork) error) error

	// FriendRepository returns a friend repository bound to the current
	// transaction or session.
	FriendRepository() (friend.Repository, error)

	// TransactionRepository returns a history repository bound to the
	// current transaction or session.
	TransactionRepository() (transaction.Repository, error)
}
