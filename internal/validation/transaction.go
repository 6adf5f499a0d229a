package validation

import (
	"errors"
	"strconv"
	"strings"
	"time"

	"github.com/hance08/cashbook/internal/constants"
	"github.com/hance08/cashbook/internal/model"
	"github.com/shopspring/decimal"
)

var (
	errDateFormat = errors.New("expected YYYY-MM-DD")
	errKind       = errors.New("expected INCOME or EXPENSE")
	errNotNumber  = errors.New("not a number")
)

// ParseDate parses a calendar date in the YYYY-MM-DD layout.
func ParseDate(s string) (time.Time, error) {
	s = strings.TrimSpace(s)
	t, err := time.Parse(constants.DateFormat, s)
	if err != nil {
		return time.Time{}, &model.ParseError{Field: "date", Value: s, Err: errDateFormat}
	}
	return t, nil
}

func ParseKind(s string) (model.Kind, error) {
	kind, ok := model.ParseKind(s)
	if !ok {
		return "", &model.ParseError{Field: "kind", Value: strings.TrimSpace(s), Err: errKind}
	}
	return kind, nil
}

// ParseAmount parses a plain decimal numeral. The sign is not checked:
// negative amounts are accepted for both kinds.
func ParseAmount(s string) (decimal.Decimal, error) {
	s = strings.TrimSpace(s)
	amount, err := decimal.NewFromString(s)
	if err != nil {
		return decimal.Zero, &model.ParseError{Field: "amount", Value: s, Err: errNotNumber}
	}
	return amount, nil
}

func ParseYear(s string) (int, error) {
	s = strings.TrimSpace(s)
	year, err := strconv.Atoi(s)
	if err != nil {
		return 0, &model.ValidationError{Field: "year", Value: s, Err: errNotNumber}
	}
	return year, nil
}

// ParseMonth parses an integer month and checks it is within 1..12.
func ParseMonth(s string) (time.Month, error) {
	s = strings.TrimSpace(s)
	month, err := strconv.Atoi(s)
	if err != nil {
		return 0, &model.ValidationError{Field: "month", Value: s, Err: errNotNumber}
	}
	if month < constants.MinMonth || month > constants.MaxMonth {
		return 0, &model.ValidationError{Field: "month", Value: s, Err: model.ErrInvalidMonth}
	}
	return time.Month(month), nil
}
