package store

import (
	"context"
	"fmt"
	"strings"

	_ "github.com/go-sql-driver/mysql"
	"github.com/jmoiron/sqlx"
	_ "modernc.org/sqlite"

	"github.com/weatherrecap/weatherrecap/internal/constants"
)

type DB struct {
	*sqlx.DB
	Driver string
}

// Open connects to the configured database, bounds the pool and applies the schema.
func Open(driver, dsn string, maxConns int) (*DB, error) {
	db, err := sqlx.Open(driver, dsn)
	if err != nil {
		return nil, fmt.Errorf("failed to open db: %w", err)
	}

	if maxConns > 0 {
		db.SetMaxOpenConns(maxConns)
		db.SetMaxIdleConns(maxConns)
	}

	if driver == constants.DriverSQLite {
		// Set pragmas for better concurrency
		if _, err := db.Exec("PRAGMA journal_mode=WAL"); err != nil {
			_ = db.Close()
			return nil, fmt.Errorf("failed to set WAL mode: %w", err)
		}
		if _, err := db.Exec("PRAGMA busy_timeout=30000"); err != nil {
			_ = db.Close()
			return nil, fmt.Errorf("failed to set busy timeout: %w", err)
		}
	}

	if err := db.Ping(); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("failed to ping db: %w", err)
	}

	store := &DB{DB: db, Driver: driver}
	if err := store.Migrate(context.Background()); err != nil {
		_ = db.Close()
		return nil, err
	}

	return store, nil
}

func NewSQLiteDB(path string) (*DB, error) {
	return Open(constants.DriverSQLite, path, 0)
}

// Migrate applies the idempotent schema for the current driver.
func (db *DB) Migrate(ctx context.Context) error {
	for i, stmt := range schemaStatements(db.Driver) {
		if _, err := db.ExecContext(ctx, stmt); err != nil {
			return fmt.Errorf("failed to apply schema statement %d: %w", i+1, err)
		}
	}
	return nil
}

// ListTables returns the user tables in the current database.
func (db *DB) ListTables(ctx context.Context) ([]string, error) {
	query := `SELECT name FROM sqlite_master WHERE type = 'table' AND name NOT LIKE 'sqlite_%' ORDER BY name`
	if db.Driver == constants.DriverMySQL {
		query = `SHOW TABLES`
	}

	var tables []string
	err := db.SelectContext(ctx, &tables, query)
	return tables, err
}

func (db *DB) Close() error {
	return db.DB.Close()
}

// RunInTx runs fn in a transaction, committing only when fn succeeds.
func (db *DB) RunInTx(ctx context.Context, fn func(tx *sqlx.Tx) error) error {
	tx, err := db.BeginTxx(ctx, nil)
	if err != nil {
		return fmt.Errorf("failed to begin tx: %w", err)
	}
	defer tx.Rollback()

	if err := fn(tx); err != nil {
		return err
	}
	return tx.Commit()
}

func schemaStatements(driver string) []string {
	schema := SQLiteSchema
	if driver == constants.DriverMySQL {
		schema = MySQLSchema
	}

	var stmts []string
	for _, part := range strings.Split(schema, ";") {
		if stmt := strings.TrimSpace(part); stmt != "" {
			stmts = append(stmts, stmt)
		}
	}
	return stmts
}
