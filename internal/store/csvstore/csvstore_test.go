package csvstore

import (
	"bytes"
	"context"
	"encoding/csv"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/shopspring/decimal"

	"surokkha/internal/core"
)

func newTestStore(t *testing.T) *Store {
	t.Helper()
	return New(t.TempDir())
}

func TestLoad_MissingFile(t *testing.T) {
	s := newTestStore(t)
	txs, err := s.Load(context.Background())
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if len(txs) != 0 {
		t.Fatalf("Load() = %d rows, want 0", len(txs))
	}
}

func TestLoad_CorruptFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "transactions.csv")
	if err := os.WriteFile(path, []byte("not,a\"valid\ncsv file\"x"), 0o644); err != nil {
		t.Fatal(err)
	}
	s := New(dir)
	txs, err := s.Load(context.Background())
	if err != nil {
		t.Fatalf("corrupt file should load silently, got %v", err)
	}
	if len(txs) != 0 {
		t.Fatalf("corrupt file loaded %d rows, want 0", len(txs))
	}
}

func TestLoad_WrongHeader(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "transactions.csv")
	if err := os.WriteFile(path, []byte("Foo,Bar\n1,2\n"), 0o644); err != nil {
		t.Fatal(err)
	}
	txs, err := New(dir).Load(context.Background())
	if err != nil || len(txs) != 0 {
		t.Fatalf("wrong header: rows=%d err=%v, want empty table", len(txs), err)
	}
}

func TestAppendThenReload_RoundTrip(t *testing.T) {
	s := newTestStore(t)
	ctx := context.Background()

	amount, _ := decimal.NewFromString("1250.50")
	in := core.Transaction{
		Date:          time.Date(2026, 4, 12, 0, 0, 0, 0, time.UTC),
		Category:      "Consultation",
		Type:          core.Income,
		Amount:        amount,
		PaymentMethod: "bKash",
		ClientName:    "Rahim Uddin",
		Phone:         "01711111111",
		Address:       "22 Green Road, Dhaka",
		DutyDoctor:    "Dr. Akter",
		Details:       "Follow-up, two vaccines",
	}
	if err := s.Append(ctx, in); err != nil {
		t.Fatalf("Append() error = %v", err)
	}

	txs, err := s.Load(ctx)
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if len(txs) != 1 {
		t.Fatalf("Load() = %d rows, want 1", len(txs))
	}
	got := txs[0]
	if !got.Date.Equal(in.Date) {
		t.Errorf("Date = %v, want %v", got.Date, in.Date)
	}
	if !got.Amount.Equal(in.Amount) {
		t.Errorf("Amount = %s, want %s", got.Amount, in.Amount)
	}
	for name, pair := range map[string][2]string{
		"Category":      {got.Category, in.Category},
		"Type":          {string(got.Type), string(in.Type)},
		"PaymentMethod": {got.PaymentMethod, in.PaymentMethod},
		"ClientName":    {got.ClientName, in.ClientName},
		"Phone":         {got.Phone, in.Phone},
		"Address":       {got.Address, in.Address},
		"DutyDoctor":    {got.DutyDoctor, in.DutyDoctor},
		"Details":       {got.Details, in.Details},
	} {
		if pair[0] != pair[1] {
			t.Errorf("%s = %q, want %q", name, pair[0], pair[1])
		}
	}
}

func TestAppend_PreservesExistingRows(t *testing.T) {
	s := newTestStore(t)
	ctx := context.Background()
	for i, cat := range []string{"Consultation", "Surgery", "Vaccine"} {
		tx := core.Transaction{
			Date:          time.Date(2026, 1, i+1, 0, 0, 0, 0, time.UTC),
			Category:      cat,
			Type:          core.Income,
			Amount:        decimal.NewFromInt(int64(100 * (i + 1))),
			PaymentMethod: "Cash",
		}
		if err := s.Append(ctx, tx); err != nil {
			t.Fatalf("Append(%d) error = %v", i, err)
		}
	}
	txs, _ := s.Load(ctx)
	if len(txs) != 3 {
		t.Fatalf("Load() = %d rows, want 3", len(txs))
	}
	if txs[2].Category != "Vaccine" {
		t.Errorf("last row category = %s, want Vaccine", txs[2].Category)
	}
}

func TestLoad_CoercesBadDateAndAmount(t *testing.T) {
	dir := t.TempDir()
	var buf bytes.Buffer
	cw := csv.NewWriter(&buf)
	_ = cw.Write(TransactionColumns)
	_ = cw.Write([]string{"not-a-date", "Consultation", "Income", "oops", "Cash", "", "", "", "", ""})
	cw.Flush()
	if err := os.WriteFile(filepath.Join(dir, "transactions.csv"), buf.Bytes(), 0o644); err != nil {
		t.Fatal(err)
	}
	txs, err := New(dir).Load(context.Background())
	if err != nil || len(txs) != 1 {
		t.Fatalf("rows=%d err=%v, want 1 row", len(txs), err)
	}
	if !txs[0].Date.IsZero() {
		t.Errorf("bad date should coerce to zero, got %v", txs[0].Date)
	}
	if !txs[0].Amount.IsZero() {
		t.Errorf("bad amount should coerce to zero, got %s", txs[0].Amount)
	}
}

func TestWriteTransactionsCSV_EmptyStillHasHeader(t *testing.T) {
	var buf bytes.Buffer
	if err := WriteTransactionsCSV(&buf, nil); err != nil {
		t.Fatalf("WriteTransactionsCSV() error = %v", err)
	}
	line := strings.TrimSpace(buf.String())
	if got := strings.Count(line, ","); got != len(TransactionColumns)-1 {
		t.Fatalf("header has %d commas, want %d: %q", got, len(TransactionColumns)-1, line)
	}
}

func TestCategories_RoundTripAndLenientLoad(t *testing.T) {
	s := newTestStore(t)
	ctx := context.Background()

	cats, err := s.LoadCategories(ctx)
	if err != nil || len(cats) != 0 {
		t.Fatalf("missing file: cats=%d err=%v, want empty", len(cats), err)
	}

	if err := s.AppendCategory(ctx, core.Category{Name: "Consultation", Type: core.Income}); err != nil {
		t.Fatalf("AppendCategory() error = %v", err)
	}
	if err := s.AppendCategory(ctx, core.Category{Name: "Medicine Stock", Type: core.Expense}); err != nil {
		t.Fatalf("AppendCategory() error = %v", err)
	}

	cats, err = s.LoadCategories(ctx)
	if err != nil {
		t.Fatalf("LoadCategories() error = %v", err)
	}
	if len(cats) != 2 {
		t.Fatalf("got %d categories, want 2", len(cats))
	}
	if cats[0].Name != "Consultation" || cats[0].Type != core.Income {
		t.Errorf("first category = %+v", cats[0])
	}
	if cats[1].Name != "Medicine Stock" || cats[1].Type != core.Expense {
		t.Errorf("second category = %+v", cats[1])
	}
}

func TestCategories_WrongColumnsLoadEmpty(t *testing.T) {
	dir := t.TempDir()
	if err := os.WriteFile(filepath.Join(dir, "categories.csv"), []byte("Name,Kind\nx,y\n"), 0o644); err != nil {
		t.Fatal(err)
	}
	cats, err := New(dir).LoadCategories(context.Background())
	if err != nil || len(cats) != 0 {
		t.Fatalf("cats=%d err=%v, want empty table", len(cats), err)
	}
}
