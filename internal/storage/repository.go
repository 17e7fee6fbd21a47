package storage

import (
	"context"
	"database/sql"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"time"

	"github.com/shopspring/decimal"
	_ "modernc.org/sqlite"

	"surokkha/internal/core"
)

// SQLiteRepository implements the transaction and category stores over a
// local SQLite file. It keeps the CSV store's semantics: full-table loads,
// append-only writes, amounts stored as text so values round-trip exactly
// as entered.
type SQLiteRepository struct {
	db *sql.DB
}

func NewSQLiteRepository(dbPath string) (*SQLiteRepository, error) {
	if err := os.MkdirAll(filepath.Dir(dbPath), 0755); err != nil {
		return nil, fmt.Errorf("create db directory: %w", err)
	}

	db, err := sql.Open("sqlite", dbPath)
	if err != nil {
		return nil, fmt.Errorf("open sqlite database: %w", err)
	}

	if err := db.Ping(); err != nil {
		db.Close()
		return nil, fmt.Errorf("ping database: %w", err)
	}

	if err := RunMigrations(dbPath); err != nil {
		db.Close()
		return nil, fmt.Errorf("run migrations: %w", err)
	}

	return &SQLiteRepository{db: db}, nil
}

func (r *SQLiteRepository) Close() error {
	if r.db != nil {
		return r.db.Close()
	}
	return nil
}

// Load implements store.TransactionStore.
func (r *SQLiteRepository) Load(ctx context.Context) ([]core.Transaction, error) {
	rows, err := r.db.QueryContext(ctx, `
		SELECT date, category, type, amount, payment_method,
		       client_name, phone, address, duty_doctor, details
		FROM transactions ORDER BY id`)
	if err != nil {
		return nil, fmt.Errorf("load transactions: %w", err)
	}
	defer rows.Close()

	var txs []core.Transaction
	for rows.Next() {
		var dateStr, amountStr, typ string
		var tx core.Transaction
		if err := rows.Scan(&dateStr, &tx.Category, &typ, &amountStr, &tx.PaymentMethod,
			&tx.ClientName, &tx.Phone, &tx.Address, &tx.DutyDoctor, &tx.Details); err != nil {
			return nil, fmt.Errorf("scan transaction: %w", err)
		}
		if d, err := time.Parse("2006-01-02", dateStr); err == nil {
			tx.Date = d
		}
		tx.Type = core.TxType(typ)
		if a, err := decimal.NewFromString(amountStr); err == nil {
			tx.Amount = a
		} else {
			tx.Amount = decimal.Zero
		}
		txs = append(txs, tx)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("load transactions: %w", err)
	}
	return txs, nil
}

// Append implements store.TransactionStore.
func (r *SQLiteRepository) Append(ctx context.Context, tx core.Transaction) error {
	date := ""
	if !tx.Date.IsZero() {
		date = tx.Date.Format("2006-01-02")
	}
	res, err := r.db.ExecContext(ctx, `
		INSERT INTO transactions
			(date, category, type, amount, payment_method,
			 client_name, phone, address, duty_doctor, details)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		date, tx.Category, string(tx.Type), tx.Amount.String(), tx.PaymentMethod,
		tx.ClientName, tx.Phone, tx.Address, tx.DutyDoctor, tx.Details)
	if err != nil {
		return fmt.Errorf("insert transaction: %w", err)
	}
	id, _ := res.LastInsertId()
	slog.InfoContext(ctx, "Transaction saved to SQLite",
		"id", id,
		"category", tx.Category,
		"type", string(tx.Type),
		"amount", tx.Amount.String())
	return nil
}

// LoadCategories implements store.CategoryStore.
func (r *SQLiteRepository) LoadCategories(ctx context.Context) ([]core.Category, error) {
	rows, err := r.db.QueryContext(ctx, `SELECT name, type FROM categories ORDER BY id`)
	if err != nil {
		return nil, fmt.Errorf("load categories: %w", err)
	}
	defer rows.Close()

	var cats []core.Category
	for rows.Next() {
		var name, typ string
		if err := rows.Scan(&name, &typ); err != nil {
			return nil, fmt.Errorf("scan category: %w", err)
		}
		cats = append(cats, core.Category{Name: name, Type: core.TxType(typ)})
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("load categories: %w", err)
	}
	return cats, nil
}

// AppendCategory implements store.CategoryStore.
func (r *SQLiteRepository) AppendCategory(ctx context.Context, cat core.Category) error {
	_, err := r.db.ExecContext(ctx,
		`INSERT INTO categories (name, type) VALUES (?, ?)`,
		cat.Name, string(cat.Type))
	if err != nil {
		return fmt.Errorf("insert category: %w", err)
	}
	slog.InfoContext(ctx, "Category saved to SQLite", "name", cat.Name, "type", string(cat.Type))
	return nil
}
