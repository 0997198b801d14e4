package store

import (
	"errors"
	"strings"
)

// ErrorClassification is the result type returned by
// [ErrorClassificator.Classify]. It tells whether a failed statement may
// succeed if it is run again.
type ErrorClassification int

const (
	// NonRetryable indicates that the failed operation should not be retried.
	// This is the default for unrecognised errors.
	NonRetryable ErrorClassification = iota

	// Retryable indicates that the failed operation may succeed if attempted
	// again, e.g. once another process releases its lock on the database file.
	Retryable
)

// ErrorClassificator decides whether a database error is transient.
type ErrorClassificator interface {
	Classify(err error) ErrorClassification
}

// SQLiteErrorClassifier implements [ErrorClassificator] for SQLite.
//
// It matches the driver's error text rather than its result codes, so the
// classification works the same whether or not the driver was built with cgo.
//
// Retryable:
//   - SQLITE_BUSY   "database is locked"
//   - SQLITE_LOCKED "database table is locked"
//
// Everything else, including constraint violations, disk I/O errors and
// "no such table", is [NonRetryable].
type SQLiteErrorClassifier struct{}

// NewSQLiteErrorClassifier constructs a [SQLiteErrorClassifier] ready for use.
func NewSQLiteErrorClassifier() *SQLiteErrorClassifier {
	return &SQLiteErrorClassifier{}
}

var sqliteRetryableMessages = []string{
	"database is locked",
	"database table is locked",
}

// Classify implements [ErrorClassificator]. A nil error is [NonRetryable].
func (c *SQLiteErrorClassifier) Classify(err error) ErrorClassification {
	if err == nil {
		return NonRetryable
	}

	for e := err; e != nil; e = errors.Unwrap(e) {
		msg := e.Error()
		for _, m := range sqliteRetryableMessages {
			if strings.Contains(msg, m) {
				return Retryable
			}
		}
	}

	return NonRetryable
}
