package repository

import (
	"errors"

	"github.com/Nweder/fuel-friends-azure/pkg/domain"
	"gorm.io/gorm"
)

// MapGormErrorToDomain converts GORM errors to domain errors.
// This keeps infrastructure concerns (database errors) within the
// infrastructure layer. Traverses the error chain to find GORM errors and
// maps them to appropriate domain errors.
func MapGormErrorToDomain(err error) error {
	if err == nil {
		return nil
	}

	currentErr := err
	for currentErr != nil {
		if errors.Is(currentErr, gorm.ErrRecordNotFound) {
			return domain.ErrFriendNotFound
		}
		currentErr = errors.Unwrap(currentErr)
	}

	// Return original error if no mapping found
	return err
}
