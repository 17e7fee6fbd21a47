package storage

import (
	"context"
	"path/filepath"
	"testing"
	"time"

	"github.com/shopspring/decimal"

	"surokkha/internal/core"
)

func newTestRepo(t *testing.T) *SQLiteRepository {
	t.Helper()
	repo, err := NewSQLiteRepository(filepath.Join(t.TempDir(), "surokkha.db"))
	if err != nil {
		t.Fatalf("NewSQLiteRepository() error = %v", err)
	}
	t.Cleanup(func() { _ = repo.Close() })
	return repo
}

func TestSQLite_TransactionRoundTrip(t *testing.T) {
	repo := newTestRepo(t)
	ctx := context.Background()

	amount, _ := decimal.NewFromString("999.99")
	in := core.Transaction{
		Date:          time.Date(2026, 5, 20, 0, 0, 0, 0, time.UTC),
		Category:      "Surgery",
		Type:          core.Income,
		Amount:        amount,
		PaymentMethod: "Card",
		ClientName:    "Karim Mia",
		Phone:         "01822222222",
		Address:       "7 Lake View, Chattogram",
		DutyDoctor:    "Dr. Hasan",
		Details:       "Orthopedic procedure",
	}
	if err := repo.Append(ctx, in); err != nil {
		t.Fatalf("Append() error = %v", err)
	}

	txs, err := repo.Load(ctx)
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if len(txs) != 1 {
		t.Fatalf("Load() = %d rows, want 1", len(txs))
	}
	got := txs[0]
	if !got.Date.Equal(in.Date) || !got.Amount.Equal(in.Amount) {
		t.Errorf("date/amount = %v %s, want %v %s", got.Date, got.Amount, in.Date, in.Amount)
	}
	if got.Category != in.Category || got.Type != in.Type || got.ClientName != in.ClientName ||
		got.Details != in.Details {
		t.Errorf("fields not preserved: %+v", got)
	}
}

func TestSQLite_EmptyLoad(t *testing.T) {
	repo := newTestRepo(t)
	txs, err := repo.Load(context.Background())
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if len(txs) != 0 {
		t.Fatalf("fresh database has %d rows, want 0", len(txs))
	}
}

func TestSQLite_Categories(t *testing.T) {
	repo := newTestRepo(t)
	ctx := context.Background()

	if err := repo.AppendCategory(ctx, core.Category{Name: "Vaccine", Type: core.Income}); err != nil {
		t.Fatalf("AppendCategory() error = %v", err)
	}
	// Duplicates stay permitted, as in the CSV store.
	if err := repo.AppendCategory(ctx, core.Category{Name: "Vaccine", Type: core.Income}); err != nil {
		t.Fatalf("duplicate AppendCategory() error = %v", err)
	}

	cats, err := repo.LoadCategories(ctx)
	if err != nil {
		t.Fatalf("LoadCategories() error = %v", err)
	}
	if len(cats) != 2 {
		t.Fatalf("got %d categories, want 2", len(cats))
	}
}
