// Package ledger provides the business logic of the shared fuel ledger:
// friend lifecycle, balance mutations and the transaction history. Every
// mutation runs inside a unit of work so the balance write and its history
// entry commit together.
package ledger

import (
	"context"
	"fmt"
	"log/slog"
	"strconv"

	"github.com/Nweder/fuel-friends-azure/pkg/domain"
	"github.com/Nweder/fuel-friends-azure/pkg/dto"
	"github.com/Nweder/fuel-friends-azure/pkg/fuel"
	"github.com/Nweder/fuel-friends-azure/pkg/repository"
)

// HistoryLimit caps how many entries a transaction history read returns.
const HistoryLimit = 50

// Service provides business logic for ledger operations.
type Service struct {
	uow    repository.UnitOfWork
	logger *slog.Logger
}

// New creates a new Service with a UnitOfWork and logger.
func New(
	uow repository.UnitOfWork,
	logger *slog.Logger,
) *Service {
	return &Service{
		uow:    uow,
		logger: logger,
	}
}

// ListFriends returns every friend, ordered by id ascending.
func (s *Service) ListFriends(ctx context.Context) (friends []*dto.FriendRead, err error) {
	err = s.uow.Do(ctx, func(uow repository.UnitOfWork) error {
		repo, err := uow.FriendRepository()
		if err != nil {
			return err
		}
		friends, err = repo.List(ctx)
		return err
	})
	if err != nil {
		friends = nil
	}
	return
}

// GetFriend returns one friend by id.
func (s *Service) GetFriend(ctx context.Context, id uint) (f *dto.FriendRead, err error) {
	err = s.uow.Do(ctx, func(uow repository.UnitOfWork) error {
		repo, err := uow.FriendRepository()
		if err != nil {
			return err
		}
		f, err = repo.Get(ctx, id)
		return err
	})
	if err != nil {
		f = nil
	}
	return
}

// CreateFriend creates a new friend with zeroed balances and logs the
// creation in the history.
func (s *Service) CreateFriend(ctx context.Context, name string) (f *dto.FriendRead, err error) {
	cleaned, err := domain.ValidateName(name)
	if err != nil {
		return nil, err
	}
	logger := s.logger.With("name", cleaned)
	err = s.uow.Do(ctx, func(uow repository.UnitOfWork) error {
		friends, err := uow.FriendRepository()
		if err != nil {
			return err
		}
		txs, err := uow.TransactionRepository()
		if err != nil {
			return err
		}
		f, err = friends.Create(ctx, dto.FriendCreate{Name: cleaned})
		if err != nil {
			return err
		}
		return txs.Create(ctx, dto.TransactionCreate{
			FriendID:    f.ID,
			Kind:        string(domain.TxKindCreated),
			Amount:      0,
			Description: fmt.Sprintf("Created friend: %s", cleaned),
		})
	})
	if err != nil {
		f = nil
		logger.Error("CreateFriend failed", "error", err)
		return
	}
	logger.Info("CreateFriend successful", "friendID", f.ID)
	return
}

// RenameFriend changes a friend's name. Renames are not recorded in the
// history.
func (s *Service) RenameFriend(ctx context.Context, id uint, name string) (f *dto.FriendRead, err error) {
	cleaned, err := domain.ValidateName(name)
	if err != nil {
		return nil, err
	}
	err = s.uow.Do(ctx, func(uow repository.UnitOfWork) error {
		friends, err := uow.FriendRepository()
		if err != nil {
			return err
		}
		f, err = friends.Get(ctx, id)
		if err != nil {
			return err
		}
		if err = friends.Update(ctx, id, dto.FriendUpdate{Name: &cleaned}); err != nil {
			return err
		}
		f.Name = cleaned
		return nil
	})
	if err != nil {
		f = nil
	}
	return
}

// DeleteFriend removes a friend and every history entry that belongs to
// it, in one transaction.
func (s *Service) DeleteFriend(ctx context.Context, id uint) (err error) {
	logger := s.logger.With("friendID", id)
	err = s.uow.Do(ctx, func(uow repository.UnitOfWork) error {
		friends, err := uow.FriendRepository()
		if err != nil {
			return err
		}
		txs, err := uow.TransactionRepository()
		if err != nil {
			return err
		}
		if _, err = friends.Get(ctx, id); err != nil {
			return err
		}
		if err = txs.DeleteByFriend(ctx, id); err != nil {
			return err
		}
		return friends.Delete(ctx, id)
	})
	if err != nil {
		logger.Error("DeleteFriend failed", "error", err)
		return
	}
	logger.Info("DeleteFriend successful")
	return
}

// AddFuel adds liters to a friend's balance and logs the fill-up.
func (s *Service) AddFuel(ctx context.Context, id uint, liters float64) (f *dto.FriendRead, err error) {
	if err = domain.ValidateAmount(liters); err != nil {
		return nil, err
	}
	logger := s.logger.With("friendID", id, "liters", liters)
	err = s.uow.Do(ctx, func(uow repository.UnitOfWork) error {
		friends, err := uow.FriendRepository()
		if err != nil {
			return err
		}
		txs, err := uow.TransactionRepository()
		if err != nil {
			return err
		}
		f, err = friends.Get(ctx, id)
		if err != nil {
			return err
		}
		newLiters := f.TotalLiters + liters
		if err = friends.Update(ctx, id, dto.FriendUpdate{TotalLiters: &newLiters}); err != nil {
			return err
		}
		f.TotalLiters = newLiters
		return txs.Create(ctx, dto.TransactionCreate{
			FriendID:    id,
			Kind:        string(domain.TxKindFuelAdded),
			Amount:      liters,
			Description: fmt.Sprintf("Added %s L", formatAmount(liters)),
		})
	})
	if err != nil {
		f = nil
		logger.Error("AddFuel failed", "error", err)
		return
	}
	logger.Info("AddFuel successful", "totalLiters", f.TotalLiters)
	return
}

// Pay records a payment: the paid amount buys liters at the fixed price
// and those liters come off the balance, while the lifetime paid counter
// grows. Paying more than is owed drives the balance negative, which is
// prepaid credit for the next fill-up.
func (s *Service) Pay(ctx context.Context, id uint, amountSEK float64) (f *dto.FriendRead, err error) {
	if err = domain.ValidateAmount(amountSEK); err != nil {
		return nil, err
	}
	logger := s.logger.With("friendID", id, "amountSEK", amountSEK)
	err = s.uow.Do(ctx, func(uow repository.UnitOfWork) error {
		friends, err := uow.FriendRepository()
		if err != nil {
			return err
		}
		txs, err := uow.TransactionRepository()
		if err != nil {
			return err
		}
		f, err = friends.Get(ctx, id)
		if err != nil {
			return err
		}
		newLiters := f.TotalLiters - fuel.LitersFor(amountSEK)
		newPaid := f.PaidSEK + amountSEK
		update := dto.FriendUpdate{TotalLiters: &newLiters, PaidSEK: &newPaid}
		if err = friends.Update(ctx, id, update); err != nil {
			return err
		}
		f.TotalLiters = newLiters
		f.PaidSEK = newPaid
		return txs.Create(ctx, dto.TransactionCreate{
			FriendID:    id,
			Kind:        string(domain.TxKindPayment),
			Amount:      amountSEK,
			Description: fmt.Sprintf("Paid %s SEK", formatAmount(amountSEK)),
		})
	})
	if err != nil {
		f = nil
		logger.Error("Pay failed", "error", err)
		return
	}
	logger.Info("Pay successful", "totalLiters", f.TotalLiters, "paidSEK", f.PaidSEK)
	return
}

// ResetFriend zeroes one friend's balances and logs the reset.
func (s *Service) ResetFriend(ctx context.Context, id uint) (f *dto.FriendRead, err error) {
	logger := s.logger.With("friendID", id)
	err = s.uow.Do(ctx, func(uow repository.UnitOfWork) error {
		friends, err := uow.FriendRepository()
		if err != nil {
			return err
		}
		txs, err := uow.TransactionRepository()
		if err != nil {
			return err
		}
		f, err = friends.Get(ctx, id)
		if err != nil {
			return err
		}
		zero := 0.0
		if err = friends.Update(ctx, id, dto.FriendUpdate{TotalLiters: &zero, PaidSEK: &zero}); err != nil {
			return err
		}
		f.TotalLiters = 0
		f.PaidSEK = 0
		return txs.Create(ctx, dto.TransactionCreate{
			FriendID:    id,
			Kind:        string(domain.TxKindReset),
			Amount:      0,
			Description: "Reset balance",
		})
	})
	if err != nil {
		f = nil
		logger.Error("ResetFriend failed", "error", err)
		return
	}
	logger.Info("ResetFriend successful")
	return
}

// ResetAll zeroes the balances of every friend. Individual resets are not
// logged per friend, the history keeps its past entries.
func (s *Service) ResetAll(ctx context.Context) (err error) {
	err = s.uow.Do(ctx, func(uow repository.UnitOfWork) error {
		friends, err := uow.FriendRepository()
		if err != nil {
			return err
		}
		return friends.ResetAll(ctx)
	})
	if err != nil {
		s.logger.Error("ResetAll failed", "error", err)
		return
	}
	s.logger.Info("ResetAll successful")
	return
}

// History returns up to HistoryLimit entries for a friend, newest first.
func (s *Service) History(ctx context.Context, friendID uint) (entries []*dto.TransactionRead, err error) {
	err = s.uow.Do(ctx, func(uow repository.UnitOfWork) error {
		friends, err := uow.FriendRepository()
		if err != nil {
			return err
		}
		txs, err := uow.TransactionRepository()
		if err != nil {
			return err
		}
		if _, err = friends.Get(ctx, friendID); err != nil {
			return err
		}
		entries, err = txs.ListByFriend(ctx, friendID, HistoryLimit)
		return err
	})
	if err != nil {
		entries = nil
	}
	return
}

// formatAmount renders an amount for history descriptions without
// trailing zeroes, after the usual two-decimal quantization.
func formatAmount(v float64) string {
	return strconv.FormatFloat(fuel.Round2(v), 'f', -1, 64)
}
