package database

import (
	"strings"
	"time"

	"gorm.io/driver/postgres"
	gormsqlite "gorm.io/driver/sqlite"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"
	_ "modernc.org/sqlite"

	"starwars/internal/domain"
	"starwars/internal/pkg/logger"
)

// Models lists every table owned by the service, roots first.
var Models = []any{
	&domain.User{},
	&domain.Character{},
	&domain.Planet{},
	&domain.Starship{},
	&domain.CharacterFavorite{},
	&domain.PlanetFavorite{},
	&domain.StarshipFavorite{},
}

// Connect opens PostgreSQL for postgres:// DSNs and SQLite for everything
// else (a file path, "sqlite://path" or ":memory:").
//
// Foreign key constraints are not created: references are checked by the
// store, and orphaned favorites must survive a delete.
func Connect(dsn string) (*gorm.DB, error) {
	cfg := &gorm.Config{
		DisableForeignKeyConstraintWhenMigrating: true,
		Logger:                                   newGormLogger(),
	}

	if strings.HasPrefix(dsn, "postgres://") || strings.HasPrefix(dsn, "postgresql://") {
		logger.Default().Info("Connecting to PostgreSQL...")
		return gorm.Open(postgres.Open(normalizePostgresDSN(dsn)), cfg)
	}

	dsn = strings.TrimPrefix(dsn, "sqlite://")
	logger.Default().WithField("dsn", dsn).Info("Using SQLite")

	db, err := gorm.Open(
		gormsqlite.New(gormsqlite.Config{
			DriverName: "sqlite",
			DSN:        dsn,
		}),
		cfg,
	)
	if err != nil {
		return nil, err
	}

	// SQLite serializes writers anyway; one connection also keeps a
	// ":memory:" database alive and shared.
	sqlDB, err := db.DB()
	if err != nil {
		return nil, err
	}
	sqlDB.SetMaxOpenConns(1)

	return db, nil
}

// newGormLogger writes slow queries and errors through logrus. Missing rows
// are reported to callers as domain.ErrNotFound and are not logged.
func newGormLogger() gormlogger.Interface {
	return gormlogger.New(logger.Default().WithField("component", "gorm"), gormlogger.Config{
		SlowThreshold:             200 * time.Millisecond,
		LogLevel:                  gormlogger.Warn,
		IgnoreRecordNotFoundError: true,
		Colorful:                  false,
	})
}

// Migrate creates or updates all tables.
func Migrate(db *gorm.DB) error {
	return db.AutoMigrate(Models...)
}

// Close releases the underlying connection pool.
func Close(db *gorm.DB) error {
	sqlDB, err := db.DB()
	if err != nil {
		return err
	}
	return sqlDB.Close()
}

func normalizePostgresDSN(dsn string) string {
	if strings.HasPrefix(dsn, "postgres://") {
		return "postgresql://" + strings.TrimPrefix(dsn, "postgres://")
	}
	return dsn
}
