package infra

import (
	"context"

	friendinfra "github.com/Nweder/fuel-friends-azure/infra/repository/friend"
	txinfra "github.com/Nweder/fuel-friends-azure/infra/repository/transaction"
	"github.com/Nweder/fuel-friends-azure/pkg/repository"
	friendrepo "github.com/Nweder/fuel-friends-azure/pkg/repository/friend"
	txrepo "github.com/Nweder/fuel-friends-azure/pkg/repository/transaction"
	"gorm.io/gorm"
)

// UoW provides transaction boundary and repository access in one
// abstraction. Repositories handed out inside Do share the same DB
// transaction, so a balance write and its history entry commit or roll
// back together.
type UoW struct {
	db *gorm.DB
	tx *gorm.DB
}

// NewUoW creates a new UoW for the given *gorm.DB.
func NewUoW(db *gorm.DB) *UoW {
	return &UoW{db: db}
}

// Do runs the given function in a transaction boundary, providing a UoW
// with repository access. A nested Do reuses the already-open transaction
// instead of starting a second one.
func (u *UoW) Do(ctx context.Context, fn func(uow repository.UnitOfWork) error) error {
	if u.tx != nil {
		return fn(u)
	}
	return u.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		return fn(&UoW{db: u.db, tx: tx})
	})
}

// session returns the transaction inside Do and the base session outside.
func (u *UoW) session() *gorm.DB {
	if u.tx != nil {
		return u.tx
	}
	return u.db
}

// FriendRepository returns a friend repository bound to the current
// transaction or session.
func (u *UoW) FriendRepository() (friendrepo.Repository, error) {
	return friendinfra.New(u.session()), nil
}

// TransactionRepository returns a history repository bound to the current
// transaction or session.
func (u *UoW) TransactionRepository() (txrepo.Repository, error) {
	return txinfra.New(u.session()), nil
}
