package data

import (
	"embed"
	"errors"
	"fmt"
	"io/fs"
	"sort"
	"strings"
	"workshop-site/internal/config"

	_ "github.com/go-sql-driver/mysql"
	"github.com/golang-migrate/migrate/v4"
	_ "github.com/golang-migrate/migrate/v4/database/mysql"
	_ "github.com/golang-migrate/migrate/v4/database/sqlite3"
	"github.com/golang-migrate/migrate/v4/source/iofs"
	"github.com/jmoiron/sqlx"
	_ "github.com/mattn/go-sqlite3"
)

//go:embed migrations
var migrationFS embed.FS

// NewDB creates a new database connection pool.
func NewDB(cfg config.DBConfig) (*sqlx.DB, error) {
	dsn := cfg.DSN
	if cfg.Driver == "mysql" {
		// Dates scan into time.Time, and an update that changes nothing still counts its row.
		dsn = withParams(dsn, "parseTime=true", "clientFoundRows=true")
	}
	// sqlx.Connect opens a connection and pings it to verify it's alive.
	db, err := sqlx.Connect(cfg.Driver, dsn)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}
	if cfg.Driver == "sqlite3" {
		// SQLite serialises writers; a single connection also keeps in-memory databases alive.
		db.SetMaxOpenConns(1)
	}
	return db, nil
}

// IsInMemory reports whether the configured database lives only inside this process.
func IsInMemory(cfg config.DBConfig) bool {
	return cfg.Driver == "sqlite3" && strings.Contains(cfg.DSN, "memory")
}

// ApplyMigrations runs all up migrations embedded for the configured driver.
func ApplyMigrations(cfg config.DBConfig) error {
	src, err := iofs.New(migrationFS, "migrations/"+cfg.Driver)
	if err != nil {
		return fmt.Errorf("failed to open embedded migrations for %s: %w", cfg.Driver, err)
	}

	dsn := cfg.DSN
	if cfg.Driver == "mysql" {
		// Each migration file holds several statements.
		dsn = withParams(dsn, "multiStatements=true")
	}

	m, err := migrate.NewWithSourceInstance("iofs", src, fmt.Sprintf("%s://%s", cfg.Driver, dsn))
	if err != nil {
		return fmt.Errorf("failed to create migrate instance: %w", err)
	}
	defer m.Close()

	// Up applies all available up migrations.
	if err := m.Up(); err != nil && !errors.Is(err, migrate.ErrNoChange) {
		return fmt.Errorf("failed to apply migrations: %w", err)
	}

	return nil
}

// ApplySchema executes the embedded up migrations directly on db. It is used for
// in-memory SQLite databases, which the migrate driver cannot share a connection with.
func ApplySchema(db *sqlx.DB, driver string) error {
	dir := "migrations/" + driver
	files, err := fs.Glob(migrationFS, dir+"/*.up.sql")
	if err != nil {
		return fmt.Errorf("failed to list migrations: %w", err)
	}
	if len(files) == 0 {
		return fmt.Errorf("no migrations embedded for driver %q", driver)
	}
	sort.Strings(files)
	for _, f := range files {
		stmt, err := fs.ReadFile(migrationFS, f)
		if err != nil {
			return fmt.Errorf("failed to read migration %s: %w", f, err)
		}
		if _, err := db.Exec(string(stmt)); err != nil {
			return fmt.Errorf("failed to apply migration %s: %w", f, err)
		}
	}
	return nil
}

// withParams appends DSN query parameters that are not already present.
func withParams(dsn string, params ...string) string {
	for _, p := range params {
		key := p[:strings.Index(p, "=")]
		if strings.Contains(dsn, key+"=") {
			continue
		}
		if strings.Contains(dsn, "?") {
			dsn += "&" + p
		} else {
			dsn += "?" + p
		}
	}
	return dsn
}
