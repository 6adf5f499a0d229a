package model

import (
	"fmt"
	"strings"
	"time"

	"github.com/hance08/cashbook/internal/constants"
	"github.com/shopspring/decimal"
)

type Kind string

const (
	KindIncome  Kind = constants.KindIncome
	KindExpense Kind = constants.KindExpense
)

// ParseKind matches s against the known kinds, ignoring case and surrounding spaces.
func ParseKind(s string) (Kind, bool) {
	switch Kind(strings.ToUpper(strings.TrimSpace(s))) {
	case KindIncome:
		return KindIncome, true
	case KindExpense:
		return KindExpense, true
	default:
		return "", false
	}
}

func (k Kind) String() string {
	return string(k)
}

// Transaction is a single dated money movement. Amount is a magnitude, its
// effect on the balance is decided by Kind.
type Transaction struct {
	Date     time.Time
	Kind     Kind
	Category string
	Amount   decimal.Decimal
}

// NewTransaction truncates date to its calendar day in UTC.
func NewTransaction(date time.Time, kind Kind, category string, amount decimal.Decimal) Transaction {
	return Transaction{
		Date:     time.Date(date.Year(), date.Month(), date.Day(), 0, 0, 0, 0, time.UTC),
		Kind:     kind,
		Category: category,
		Amount:   amount,
	}
}

// InMonth reports whether the transaction date falls in the given calendar month.
func (t Transaction) InMonth(year int, month time.Month) bool {
	return t.Date.Year() == year && t.Date.Month() == month
}

// String renders the transaction as a ledger file record.
func (t Transaction) String() string {
	return fmt.Sprintf("%s%s%s%s%s%s%s",
		t.Date.Format(constants.DateFormat), constants.FieldDelimiter,
		t.Kind, constants.FieldDelimiter,
		t.Category, constants.FieldDelimiter,
		t.Amount.String(),
	)
}
