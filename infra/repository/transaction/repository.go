package transaction

import (
	"context"

	infrarepo "github.com/Nweder/fuel-friends-azure/infra/repository"
	"github.com/Nweder/fuel-friends-azure/infra/repository/model"
	"github.com/Nweder/fuel-friends-azure/pkg/dto"
	repo "github.com/Nweder/fuel-friends-azure/pkg/repository/transaction"
	"gorm.io/gorm"
)

type repository struct {
	db *gorm.DB
}

// New creates a new transaction repository using the provided *gorm.DB.
func New(db *gorm.DB) repo.Repository {
	return &repository{db: db}
}

// Create implements transaction.Repository.
func (r *repository) Create(ctx context.Context, create dto.TransactionCreate) error {
	tx := mapCreateDTOToModel(create)
	err := r.db.WithContext(ctx).Create(&tx).Error
	return infrarepo.MapGormErrorToDomain(err)
}

// ListByFriend implements transaction.Repository.
func (r *repository) ListByFriend(ctx context.Context, friendID uint, limit int) ([]*dto.TransactionRead, error) {
	var txs []model.Transaction
	err := r.db.WithContext(ctx).
		Where("friend_id = ?", friendID).
		Order("created_at DESC, id DESC").
		Limit(limit).
		Find(&txs).Error
	if err != nil {
		return nil, infrarepo.MapGormErrorToDomain(err)
	}
	result := make([]*dto.TransactionRead, 0, len(txs))
	for i := range txs {
		result = append(result, mapModelToDTO(&txs[i]))
	}
	return result, nil
}

// DeleteByFriend implements transaction.Repository.
func (r *repository) DeleteByFriend(ctx context.Context, friendID uint) error {
	err := r.db.WithContext(ctx).Delete(&model.Transaction{}, "friend_id = ?", friendID).Error
	return infrarepo.MapGormErrorToDomain(err)
}

// mapCreateDTOToModel maps TransactionCreate DTO to GORM model.
func mapCreateDTOToModel(create dto.TransactionCreate) model.Transaction {
	return model.Transaction{
		FriendID:    create.FriendID,
		Kind:        create.Kind,
		Amount:      create.Amount,
		Description: create.Description,
	}
}

// mapModelToDTO maps a GORM model to a read-optimized DTO.
func mapModelToDTO(tx *model.Transaction) *dto.TransactionRead {
	return &dto.TransactionRead{
		ID:          tx.ID,
		FriendID:    tx.FriendID,
		Kind:        tx.Kind,
		Amount:      tx.Amount,
		Description: tx.Description,
		CreatedAt:   tx.CreatedAt,
	}
}
