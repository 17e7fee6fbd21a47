package core

import (
	"errors"
	"strings"
	"time"

	"github.com/shopspring/decimal"
)

const (
	Income  TxType = "Income"
	Expense TxType = "Expense"
)

type (
	// TxType distinguishes money coming into the clinic from money going out.
	TxType string

	// Transaction is a single ledger row as entered at the front desk.
	Transaction struct {
		Date          time.Time
		Category      string
		Type          TxType
		Amount        decimal.Decimal
		PaymentMethod string
		ClientName    string
		Phone         string
		Address       string
		DutyDoctor    string
		Details       string
	}

	// Category labels transactions and carries the side of the ledger it
	// belongs to.
	Category struct {
		Name string
		Type TxType
	}
)

var (
	ErrInvalidType    = errors.New("invalid transaction type")
	ErrInvalidAmount  = errors.New("invalid amount")
	ErrEmptyCategory  = errors.New("empty category")
	ErrNegativeAmount = errors.New("negative amount")
	ErrInvalidDate    = errors.New("invalid date")
	ErrInvalidPayment = errors.New("invalid payment method")
)

// PaymentMethods lists the accepted payment options, in form order.
var PaymentMethods = []string{"Cash", "Card", "bKash", "Nagad", "Bank", "Other"}

// TxTypes lists both ledger sides, in form order.
var TxTypes = []TxType{Income, Expense}

func (t TxType) Valid() bool {
	return t == Income || t == Expense
}

// ParseTxType maps a form value onto a TxType.
func ParseTxType(s string) (TxType, error) {
	switch TxType(strings.TrimSpace(s)) {
	case Income:
		return Income, nil
	case Expense:
		return Expense, nil
	default:
		return "", ErrInvalidType
	}
}

// ValidPaymentMethod reports whether s is one of the accepted options.
func ValidPaymentMethod(s string) bool {
	for _, m := range PaymentMethods {
		if m == s {
			return true
		}
	}
	return false
}

// Validate checks the fields a form submission must get right. Category
// existence in the category store is deliberately not checked: a free-text
// category is accepted when the store is empty.
func (t Transaction) Validate() error {
	if t.Date.IsZero() {
		return ErrInvalidDate
	}
	if strings.TrimSpace(t.Category) == "" {
		return ErrEmptyCategory
	}
	if !t.Type.Valid() {
		return ErrInvalidType
	}
	if t.Amount.IsNegative() {
		return ErrNegativeAmount
	}
	if !ValidPaymentMethod(t.PaymentMethod) {
		return ErrInvalidPayment
	}
	return nil
}

func (c Category) Validate() error {
	if strings.TrimSpace(c.Name) == "" {
		return ErrEmptyCategory
	}
	if !c.Type.Valid() {
		return ErrInvalidType
	}
	return nil
}
