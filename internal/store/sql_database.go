package store

import (
	"database/sql"
	"fmt"

	"github.com/MKhiriev/go-rest-auth/internal/logger"
	"github.com/MKhiriev/go-rest-auth/migrations"
)

// ErrorClassificator decides whether a failed database operation may succeed on retry.
type ErrorClassificator interface {
	Classify(err error) ErrorClassification
}

// DB wraps the connection pool together with the error classifier used by
// every repository.
type DB struct {
	*sql.DB
	errorClassificator ErrorClassificator
	logger             *logger.Logger
}

// NewDB wraps an already opened pool. It is used by tests and by
// [NewConnectPostgres].
func NewDB(conn *sql.DB, log *logger.Logger) *DB {
	return &DB{
		DB:                 conn,
		logger:             log,
		errorClassificator: NewPostgresErrorClassifier(),
	}
}

// Migrate applies the embedded schema migrations.
func (db *DB) Migrate() error {
	return migrations.Migrate(db.DB)
}

// unexpected wraps an unclassified driver error. Retryable failures are
// marked with [ErrStorageUnavailable] so the transport can answer 503.
func (db *DB) unexpected(err error) error {
	if db.errorClassificator != nil && db.errorClassificator.Classify(err) == Retryable {
		return fmt.Errorf("%w: %w", ErrStorageUnavailable, err)
	}
	return fmt.Errorf("unexpected DB error: %w", err)
}
