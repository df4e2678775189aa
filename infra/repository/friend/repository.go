package friend

import (
	"context"

	infrarepo "github.com/Nweder/fuel-friends-azure/infra/repository"
	"github.com/Nweder/fuel-friends-azure/infra/repository/model"
	"github.com/Nweder/fuel-friends-azure/pkg/dto"
	repo "github.com/Nweder/fuel-friends-azure/pkg/repository/friend"
	"gorm.io/gorm"
)

type repository struct {
	db *gorm.DB
}

// New creates a new friend repository using the provided *gorm.DB.
func New(db *gorm.DB) repo.Repository {
	return &repository{db: db}
}

// Create implements friend.Repository.
func (r *repository) Create(ctx context.Context, create dto.FriendCreate) (*dto.FriendRead, error) {
	f := mapCreateDTOToModel(create)
	if err := r.db.WithContext(ctx).Create(&f).Error; err != nil {
		return nil, infrarepo.MapGormErrorToDomain(err)
	}
	return mapModelToDTO(&f), nil
}

// Get implements friend.Repository.
func (r *repository) Get(ctx context.Context, id uint) (*dto.FriendRead, error) {
	var f model.Friend
	if err := r.db.WithContext(ctx).First(&f, "id = ?", id).Error; err != nil {
		return nil, infrarepo.MapGormErrorToDomain(err)
	}
	return mapModelToDTO(&f), nil
}

// List implements friend.Repository.
func (r *repository) List(ctx context.Context) ([]*dto.FriendRead, error) {
	var friends []model.Friend
	if err := r.db.WithContext(ctx).Order("id ASC").Find(&friends).Error; err != nil {
		return nil, infrarepo.MapGormErrorToDomain(err)
	}
	result := make([]*dto.FriendRead, 0, len(friends))
	for i := range friends {
		result = append(result, mapModelToDTO(&friends[i]))
	}
	return result, nil
}

// Update implements friend.Repository.
func (r *repository) Update(ctx context.Context, id uint, update dto.FriendUpdate) error {
	updates := mapUpdateDTOToModel(update)
	if len(updates) == 0 {
		return nil
	}
	err := r.db.WithContext(ctx).Model(&model.Friend{}).Where("id = ?", id).Updates(updates).Error
	return infrarepo.MapGormErrorToDomain(err)
}

// Delete implements friend.Repository.
func (r *repository) Delete(ctx context.Context, id uint) error {
	err := r.db.WithContext(ctx).Delete(&model.Friend{}, "id = ?", id).Error
	return infrarepo.MapGormErrorToDomain(err)
}

// ResetAll implements friend.Repository.
func (r *repository) ResetAll(ctx context.Context) error {
	err := r.db.WithContext(ctx).
		Session(&gorm.Session{AllowGlobalUpdate: true}).
		Model(&model.Friend{}).
		Updates(map[string]any{"total_liters": 0, "paid_sek": 0}).Error
	return infrarepo.MapGormErrorToDomain(err)
}

// mapCreateDTOToModel maps FriendCreate DTO to GORM model.
func mapCreateDTOToModel(create dto.FriendCreate) model.Friend {
	return model.Friend{
		Name:        create.Name,
		TotalLiters: 0,
		PaidSEK:     0,
	}
}

// mapUpdateDTOToModel maps FriendUpdate DTO to a map for GORM Updates.
func mapUpdateDTOToModel(update dto.FriendUpdate) map[string]any {
	updates := make(map[string]any)
	if update.Name != nil {
		updates["name"] = *update.Name
	}
	if update.TotalLiters != nil {
		updates["total_liters"] = *update.TotalLiters
	}
	if update.PaidSEK != nil {
		updates["paid_sek"] = *update.PaidSEK
	}
	return updates
}

// mapModelToDTO maps a GORM model to a read-optimized DTO.
func mapModelToDTO(f *model.Friend) *dto.FriendRead {
	return &dto.FriendRead{
		ID:          f.ID,
		Name:        f.Name,
		TotalLiters: f.TotalLiters,
		PaidSEK:     f.PaidSEK,
		CreatedAt:   f.CreatedAt,
	}
}
