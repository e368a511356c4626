package db

import (
	"fmt"

	"gorm.io/driver/postgres"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"github.com/gramtop961/aiduc-backend/internal/logger"
	"github.com/gramtop961/aiduc-backend/internal/types"
	"github.com/gramtop961/aiduc-backend/internal/utils"
)

type DatabaseService struct {
	db      *gorm.DB
	dialect string
	name    string
	log     *logger.Logger
}

// NewDatabaseService connects to Postgres when POSTGRES_HOST is set and
// falls back to a local sqlite file otherwise, so the service runs
// standalone in development.
func NewDatabaseService(log *logger.Logger) (*DatabaseService, error) {
	serviceLog := log.With("service", "DatabaseService")

	postgresHost := utils.GetEnv("POSTGRES_HOST", "", log)
	if postgresHost == "" {
		sqlitePath := utils.GetEnv("SQLITE_PATH", "aiduc.db", log)
		serviceLog.Info("POSTGRES_HOST not set, using sqlite", "path", sqlitePath)
		db, err := gorm.Open(sqlite.Open(sqlitePath), &gorm.Config{})
		if err != nil {
			serviceLog.Error("Failed to open sqlite database", "error", err)
			return nil, fmt.Errorf("failed to open sqlite database: %w", err)
		}
		return &DatabaseService{db: db, dialect: "sqlite", name: sqlitePath, log: serviceLog}, nil
	}

	postgresPort := utils.GetEnv("POSTGRES_PORT", "5432", log)
	postgresUser := utils.GetEnv("POSTGRES_USER", "postgres", log)
	postgresPassword := utils.GetEnv("POSTGRES_PASSWORD", "", log)
	postgresName := utils.GetEnv("POSTGRES_NAME", "aiduc", log)

	dsn := fmt.Sprintf("postgres://%s:%s@%s:%s/%s?sslmode=disable", postgresUser, postgresPassword, postgresHost, postgresPort, postgresName)

	serviceLog.Info("Connecting to Postgres...", "host", postgresHost, "database", postgresName)
	db, err := gorm.Open(postgres.Open(dsn), &gorm.Config{})
	if err != nil {
		serviceLog.Error("Failed to connect to Postgres", "error", err)
		return nil, fmt.Errorf("failed to connect to Postgres: %w", err)
	}

	return &DatabaseService{db: db, dialect: "postgres", name: postgresName, log: serviceLog}, nil
}

func (s *DatabaseService) AutoMigrateAll() error {
	s.log.Info("Auto migrating tables...")
	if err := s.db.AutoMigrate(
		&types.ForumPost{},
	); err != nil {
		s.log.Error("Auto migration failed", "error", err)
		return err
	}
	return nil
}

func (s *DatabaseService) DB() *gorm.DB {
	return s.db
}

func (s *DatabaseService) Dialect() string {
	return s.dialect
}

func (s *DatabaseService) Name() string {
	return s.name
}

// Tables lists migrated table names for the diagnostic endpoint.
func (s *DatabaseService) Tables() ([]string, error) {
	return s.db.Migrator().GetTables()
}
