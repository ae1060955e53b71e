package storage

import (
	"database/sql"
	"fmt"
	"strings"
)

// Backend is a durable key/value medium the Store persists records into.
// Implementations must make every Set immediately visible to subsequent Gets.
type Backend interface {
	// Get returns the raw value for a key, with found=false if the key is absent.
	Get(key string) (value []byte, found bool, err error)

	// Set writes the raw value for a key, overwriting any existing value.
	Set(key string, value []byte) error

	// Delete removes a key. Deleting an absent key is not an error.
	Delete(key string) error

	// Close releases any resources held by the backend.
	Close() error
}

// SQLBackend stores key/value pairs in a single table, reachable through
// any of the supported SQL dialects.
type SQLBackend struct {
	db      *sql.DB
	dialect Dialect
}

// OpenSQLite opens a SQLite-backed key/value store at the given path.
func OpenSQLite(path string) (*SQLBackend, error) {
	return openSQL(NewSQLiteDialect(), DialectConfig{Path: path})
}

// OpenBackend opens a SQL backend based on the configured database type.
func OpenBackend(dbType, path, url string) (*SQLBackend, error) {
	switch strings.ToLower(dbType) {
	case "postgres", "postgresql":
		return openSQL(NewPostgresDialect(), DialectConfig{URL: url})
	case "mysql":
		return openSQL(NewMySQLDialect(), DialectConfig{URL: url})
	case "sqlite", "sqlite3", "":
		return openSQL(NewSQLiteDialect(), DialectConfig{Path: path})
	default:
		return nil, fmt.Errorf("unsupported database type: %s", dbType)
	}
}

func openSQL(dialect Dialect, config DialectConfig) (*SQLBackend, error) {
	db, err := sql.Open(dialect.DriverName(), dialect.DSN(config))
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}

	// Test the connection
	if err := db.Ping(); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to ping database: %w", err)
	}

	// Apply dialect-specific configuration
	if err := dialect.ConfigureConnection(db); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to configure connection: %w", err)
	}

	if _, err := db.Exec(dialect.CreateTableQuery()); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to create state table: %w", err)
	}

	return &SQLBackend{db: db, dialect: dialect}, nil
}

func (b *SQLBackend) Get(key string) ([]byte, bool, error) {
	query := b.dialect.RewriteQuery("SELECT value FROM app_state WHERE name = ?")

	var value string
	err := b.db.QueryRow(query, key).Scan(&value)
	if err == sql.ErrNoRows {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, err
	}
	return []byte(value), true, nil
}

func (b *SQLBackend) Set(key string, value []byte) error {
	query := b.dialect.RewriteQuery(b.dialect.UpsertQuery())
	_, err := b.db.Exec(query, key, string(value))
	return err
}

func (b *SQLBackend) Delete(key string) error {
	query := b.dialect.RewriteQuery("DELETE FROM app_state WHERE name = ?")
	_, err := b.db.Exec(query, key)
	return err
}

// Close closes the underlying database connection.
func (b *SQLBackend) Close() error {
	return b.db.Close()
}
