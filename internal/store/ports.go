package store

import (
	"context"

	"surokkha/internal/core"
)

// Ports for the persistence backends.
type (
	// TransactionStore is the ledger table. Load returns every row; a
	// missing or unreadable file loads as an empty table. Append adds one
	// row and persists the whole table.
	TransactionStore interface {
		Load(ctx context.Context) ([]core.Transaction, error)
		Append(ctx context.Context, tx core.Transaction) error
	}

	// CategoryStore is the category table, with the same lenient load and
	// append-only write semantics.
	CategoryStore interface {
		LoadCategories(ctx context.Context) ([]core.Category, error)
		AppendCategory(ctx context.Context, cat core.Category) error
	}
)
