package infra

import (
	"log/slog"

	"github.com/Nweder/fuel-friends-azure/infra/repository/model"
	"gorm.io/gorm"
)

// Migrate brings the schema up to date without touching existing data.
// Tables are only created when missing, and databases written before the
// paid_sek column existed get the column added. Running it again is a
// no-op, so it is safe on every startup.
func Migrate(db *gorm.DB, logger *slog.Logger) error {
	m := db.Migrator()

	if !m.HasTable(&model.Friend{}) {
		logger.Info("Creating friends table")
		if err := m.CreateTable(&model.Friend{}); err != nil {
			return err
		}
	}
	if !m.HasColumn(&model.Friend{}, "paid_sek") {
		logger.Info("Adding paid_sek column to friends table")
		if err := m.AddColumn(&model.Friend{}, "PaidSEK"); err != nil {
			return err
		}
	}
	if !m.HasTable(&model.Transaction{}) {
		logger.Info("Creating transactions table")
		if err := m.CreateTable(&model.Transaction{}); err != nil {
			return err
		}
	}
	return nil
}
