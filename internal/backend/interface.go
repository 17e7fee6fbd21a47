package backend

import (
	"context"

	"surokkha/internal/store"
)

// Backend bundles both stores behind one handle.
type Backend interface {
	store.TransactionStore
	store.CategoryStore
}

// CleanupFunc releases backend resources on shutdown.
type CleanupFunc func() error

// Result carries the backend instance and its optional cleanup.
type Result struct {
	Backend Backend
	Cleanup CleanupFunc
}

// Factory creates backends based on configuration.
type Factory interface {
	CreateBackend(ctx context.Context, config Config) (*Result, error)
}

// Config holds what backend creation needs.
type Config struct {
	Type Type

	// CSV specific
	DataDirectory string

	// SQLite specific
	SQLiteDBPath string
}

// Type selects the persistence backend.
type Type string

const (
	CSVBackend    Type = "csv"
	SQLiteBackend Type = "sqlite"
)

func (t Type) String() string {
	return string(t)
}

func (t Type) IsValid() bool {
	switch t {
	case CSVBackend, SQLiteBackend:
		return true
	default:
		return false
	}
}
