// Package csvstore persists the ledger as flat CSV files, the clinic's
// original bookkeeping format. Every mutation rewrites the whole file;
// there is no locking, so the store is only safe for a single writer.
package csvstore

import (
	"context"
	"encoding/csv"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"sync"
	"time"

	"github.com/shopspring/decimal"

	"surokkha/internal/core"
)

// TransactionColumns is the canonical transactions.csv header.
var TransactionColumns = []string{
	"Date", "Category", "Type", "Amount", "Payment Method",
	"Client Name", "Phone Number", "Client Address", "Duty Doctor", "Details",
}

const dateLayout = "2006-01-02"

// Store reads and writes both CSV tables under a single data directory.
type Store struct {
	mu               sync.Mutex
	transactionsPath string
	categoriesPath   string
}

// New returns a store over transactions.csv and categories.csv in dir.
func New(dir string) *Store {
	return &Store{
		transactionsPath: filepath.Join(dir, "transactions.csv"),
		categoriesPath:   filepath.Join(dir, "categories.csv"),
	}
}

// NewWithPaths returns a store over explicitly named files.
func NewWithPaths(transactionsPath, categoriesPath string) *Store {
	return &Store{
		transactionsPath: transactionsPath,
		categoriesPath:   categoriesPath,
	}
}

// Load returns every transaction row. A missing, unreadable, or malformed
// file yields an empty table and no error: the UI treats "no file yet" and
// "corrupt file" the same way. Within readable rows the date and amount
// columns are coerced, never fatal.
func (s *Store) Load(ctx context.Context) ([]core.Transaction, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.loadLocked(ctx)
}

func (s *Store) loadLocked(ctx context.Context) ([]core.Transaction, error) {
	f, err := os.Open(s.transactionsPath)
	if err != nil {
		return nil, nil
	}
	defer f.Close()

	records, err := readRecords(f)
	if err != nil || len(records) == 0 {
		slog.WarnContext(ctx, "Transactions file unreadable, starting empty",
			"path", s.transactionsPath, "error", err)
		return nil, nil
	}
	if !headerMatches(records[0], TransactionColumns) {
		slog.WarnContext(ctx, "Transactions file has unexpected header, starting empty",
			"path", s.transactionsPath)
		return nil, nil
	}

	txs := make([]core.Transaction, 0, len(records)-1)
	for _, rec := range records[1:] {
		txs = append(txs, decodeTransaction(rec))
	}
	return txs, nil
}

// Append adds one row and rewrites the file in full. The first append
// creates the file together with its header.
func (s *Store) Append(ctx context.Context, tx core.Transaction) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	txs, _ := s.loadLocked(ctx)
	txs = append(txs, tx)

	f, err := os.Create(s.transactionsPath)
	if err != nil {
		return fmt.Errorf("rewrite %s: %w", s.transactionsPath, err)
	}
	defer f.Close()

	if err := WriteTransactionsCSV(f, txs); err != nil {
		return fmt.Errorf("rewrite %s: %w", s.transactionsPath, err)
	}
	slog.InfoContext(ctx, "Transaction appended",
		"path", s.transactionsPath, "rows", len(txs),
		"category", tx.Category, "type", string(tx.Type), "amount", tx.Amount.String())
	return nil
}

// WriteTransactionsCSV renders txs in the canonical schema. It backs both
// the on-disk rewrite and the filtered-export download, so an empty slice
// still produces the header line.
func WriteTransactionsCSV(w io.Writer, txs []core.Transaction) error {
	cw := csv.NewWriter(w)
	if err := cw.Write(TransactionColumns); err != nil {
		return err
	}
	for _, tx := range txs {
		if err := cw.Write(encodeTransaction(tx)); err != nil {
			return err
		}
	}
	cw.Flush()
	return cw.Error()
}

func encodeTransaction(tx core.Transaction) []string {
	date := ""
	if !tx.Date.IsZero() {
		date = tx.Date.Format(dateLayout)
	}
	return []string{
		date, tx.Category, string(tx.Type), tx.Amount.String(), tx.PaymentMethod,
		tx.ClientName, tx.Phone, tx.Address, tx.DutyDoctor, tx.Details,
	}
}

func decodeTransaction(rec []string) core.Transaction {
	get := func(i int) string {
		if i < len(rec) {
			return rec[i]
		}
		return ""
	}
	var date time.Time
	if d, err := time.Parse(dateLayout, get(0)); err == nil {
		date = d
	}
	amount := decimal.Zero
	if a, err := decimal.NewFromString(get(3)); err == nil {
		amount = a
	}
	return core.Transaction{
		Date:          date,
		Category:      get(1),
		Type:          core.TxType(get(2)),
		Amount:        amount,
		PaymentMethod: get(4),
		ClientName:    get(5),
		Phone:         get(6),
		Address:       get(7),
		DutyDoctor:    get(8),
		Details:       get(9),
	}
}

func readRecords(r io.Reader) ([][]string, error) {
	cr := csv.NewReader(r)
	cr.FieldsPerRecord = -1
	return cr.ReadAll()
}

func headerMatches(got, want []string) bool {
	if len(got) < len(want) {
		return false
	}
	for i, col := range want {
		if got[i] != col {
			return false
		}
	}
	return true
}
