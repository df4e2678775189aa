package infra

import (
	"time"

	"github.com/Nweder/fuel-friends-azure/pkg/config"
	"gorm.io/driver/postgres"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// NewDBConnection opens the ledger database. The sqlite file at cnf.Path
// is the default store; setting cnf.Url switches to postgres for
// deployments with a managed database.
func NewDBConnection(
	cnf *config.DB,
	appEnv string,
) (*gorm.DB, error) {
	var logMode logger.LogLevel
	if appEnv == "development" {
		logMode = logger.Info
	} else {
		logMode = logger.Silent
	}

	var dialector gorm.Dialector
	if cnf.Url != "" {
		dialector = postgres.Open(cnf.Url)
	} else {
		dialector = sqlite.Open(cnf.Path)
	}

	connection, err := gorm.Open(dialector, &gorm.Config{
		Logger:                 logger.Default.LogMode(logMode),
		SkipDefaultTransaction: true,
		// Timestamps are stored in UTC regardless of server timezone.
		NowFunc: func() time.Time { return time.Now().UTC() },
	})
	if err != nil {
		return nil, err
	}

	sqlDB, err := connection.DB()
	if err != nil {
		return nil, err
	}
	if cnf.Url != "" {
		sqlDB.SetMaxOpenConns(25)
		sqlDB.SetMaxIdleConns(25)
		sqlDB.SetConnMaxLifetime(1 * time.Hour)
	} else {
		// sqlite allows one writer at a time; a single pooled connection
		// serializes access instead of surfacing SQLITE_BUSY under load.
		sqlDB.SetMaxOpenConns(1)
	}

	return connection, nil
}
