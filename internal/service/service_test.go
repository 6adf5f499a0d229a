package service

import (
	"io"
	"testing"
	"time"

	"github.com/hance08/cashbook/internal/config"
	"github.com/hance08/cashbook/internal/store"
	"github.com/pterm/pterm"
	"github.com/shopspring/decimal"
)

func newTestService(t *testing.T) (*Service, *store.MemoryStore) {
	t.Helper()
	repo := store.NewMemoryStore()
	logger := pterm.DefaultLogger.WithWriter(io.Discard)
	return NewService(repo, config.NewDefault(), logger), repo
}

func date(t *testing.T, s string) time.Time {
	t.Helper()
	d, err := time.Parse("2006-01-02", s)
	if err != nil {
		t.Fatalf("bad test date %q: %v", s, err)
	}
	return d
}

func dec(s string) decimal.Decimal {
	return decimal.RequireFromString(s)
}

func assertDecimal(t *testing.T, name string, got decimal.Decimal, want string) {
	t.Helper()
	if !got.Equal(dec(want)) {
		t.Errorf("%s = %s, want %s", name, got, want)
	}
}
