package core

import (
	"errors"
	"testing"
	"time"

	"github.com/shopspring/decimal"
)

func validTx() Transaction {
	return Transaction{
		Date:          time.Date(2026, 3, 14, 0, 0, 0, 0, time.UTC),
		Category:      "Consultation",
		Type:          Income,
		Amount:        decimal.NewFromInt(500),
		PaymentMethod: "Cash",
		ClientName:    "Rahim Uddin",
		Phone:         "01711111111",
		DutyDoctor:    "Dr. Akter",
	}
}

func TestTransaction_Validate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*Transaction)
		wantErr error
	}{
		{name: "valid", mutate: func(*Transaction) {}},
		{
			name:    "zero date",
			mutate:  func(tx *Transaction) { tx.Date = time.Time{} },
			wantErr: ErrInvalidDate,
		},
		{
			name:    "blank category",
			mutate:  func(tx *Transaction) { tx.Category = "   " },
			wantErr: ErrEmptyCategory,
		},
		{
			name:    "unknown type",
			mutate:  func(tx *Transaction) { tx.Type = "Transfer" },
			wantErr: ErrInvalidType,
		},
		{
			name:    "negative amount",
			mutate:  func(tx *Transaction) { tx.Amount = decimal.NewFromInt(-1) },
			wantErr: ErrNegativeAmount,
		},
		{
			name:    "unknown payment method",
			mutate:  func(tx *Transaction) { tx.PaymentMethod = "Cheque" },
			wantErr: ErrInvalidPayment,
		},
		{
			name:   "zero amount is allowed",
			mutate: func(tx *Transaction) { tx.Amount = decimal.Zero },
		},
		{
			name:   "free-text category not in store",
			mutate: func(tx *Transaction) { tx.Category = "Something New" },
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tx := validTx()
			tt.mutate(&tx)
			err := tx.Validate()
			if !errors.Is(err, tt.wantErr) {
				t.Fatalf("Validate() = %v, want %v", err, tt.wantErr)
			}
		})
	}
}

func TestCategory_Validate(t *testing.T) {
	if err := (Category{Name: "Surgery", Type: Expense}).Validate(); err != nil {
		t.Fatalf("valid category: %v", err)
	}
	if err := (Category{Name: "", Type: Income}).Validate(); !errors.Is(err, ErrEmptyCategory) {
		t.Fatalf("empty name = %v, want ErrEmptyCategory", err)
	}
	if err := (Category{Name: "Surgery", Type: "Both"}).Validate(); !errors.Is(err, ErrInvalidType) {
		t.Fatalf("bad type = %v, want ErrInvalidType", err)
	}
}

func TestParseTxType(t *testing.T) {
	if typ, err := ParseTxType(" Income "); err != nil || typ != Income {
		t.Fatalf("ParseTxType(Income) = %v, %v", typ, err)
	}
	if _, err := ParseTxType("income"); !errors.Is(err, ErrInvalidType) {
		t.Fatalf("lowercase should not parse, got %v", err)
	}
}
