package shell

import (
	"bytes"
	"io"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/hance08/cashbook/internal/config"
	"github.com/hance08/cashbook/internal/service"
	"github.com/hance08/cashbook/internal/store"
	"github.com/pterm/pterm"
)

func TestMain(m *testing.M) {
	pterm.DisableStyling()
	os.Exit(m.Run())
}

func run(t *testing.T, input string) (string, *store.MemoryStore) {
	t.Helper()
	repo := store.NewMemoryStore()
	cfg := config.NewDefault()
	cfg.Defaults.Currency = "USD"
	svc := service.NewService(repo, cfg, pterm.DefaultLogger.WithWriter(io.Discard))

	var out bytes.Buffer
	if err := New(strings.NewReader(input), &out, svc).Run(); err != nil {
		t.Fatalf("Run: %v", err)
	}
	return out.String(), repo
}

func lines(l ...string) string {
	return strings.Join(l, "\n") + "\n"
}

func TestShellAddAndSummarize(t *testing.T) {
	out, repo := run(t, lines(
		"1", "2025-01-10", "Salary", "50000",
		"2", "2025-01-15", "Rent", "15000",
		"2", "2025-01-20", "Food", "3000",
		"3", "2025", "1",
		"5",
	))

	if repo.Len() != 3 {
		t.Fatalf("expected 3 transactions, got %d", repo.Len())
	}
	for _, want := range []string{
		"Income added successfully.",
		"Expense added successfully.",
		"Monthly Summary for 2025-01",
		"Total Income: $50,000.00",
		"  Salary: $50,000.00",
		"Total Expenses: $18,000.00",
		"  Rent: $15,000.00",
		"  Food: $3,000.00",
		"Net Savings: $32,000.00",
		"Exiting Expense Tracker. Goodbye!",
	} {
		if !strings.Contains(out, want) {
			t.Errorf("output missing %q", want)
		}
	}
}

func TestShellRejectsInvalidInputWithoutMutation(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		message string
	}{
		{"bad date", lines("1", "10/01/2025", "5"), "Invalid date format."},
		{"bad amount", lines("2", "2025-01-10", "Food", "12abc", "5"), "Invalid amount."},
		{"bad year", lines("3", "twenty", "5"), "Invalid year."},
		{"bad month", lines("3", "2025", "june", "5"), "Invalid month."},
		{"month out of range", lines("3", "2025", "13", "5"), "Month must be between 1 and 12."},
		{"unknown option", lines("9", "5"), "Invalid option. Please choose between 1 and 6."},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			out, repo := run(t, tt.input)
			if !strings.Contains(out, tt.message) {
				t.Errorf("output missing %q:\n%s", tt.message, out)
			}
			if repo.Len() != 0 {
				t.Errorf("store should be untouched, has %d transactions", repo.Len())
			}
			if strings.Count(out, "Choose an option") != 2 {
				t.Errorf("menu should be shown again after the failed action:\n%s", out)
			}
		})
	}
}

func TestShellLoadAndSaveFile(t *testing.T) {
	dir := t.TempDir()
	in := filepath.Join(dir, "in.csv")
	content := "2025-02-01,income,Freelance,1200\nnot,a,record\n2025-02-03,EXPENSE,Food,200\n"
	if err := os.WriteFile(in, []byte(content), 0o644); err != nil {
		t.Fatalf("write fixture: %v", err)
	}
	saved := filepath.Join(dir, "out.csv")

	out, repo := run(t, lines("4", in, "6", saved, "3", "2025", "2", "5"))

	if repo.Len() != 2 {
		t.Fatalf("expected 2 loaded transactions, got %d", repo.Len())
	}
	if !strings.Contains(out, "Transactions loaded successfully from "+in) {
		t.Errorf("missing load message:\n%s", out)
	}
	if !strings.Contains(out, "Net Savings: $1,000.00") {
		t.Errorf("missing summary of loaded data:\n%s", out)
	}

	data, err := os.ReadFile(saved)
	if err != nil {
		t.Fatalf("read saved file: %v", err)
	}
	want := "2025-02-01,INCOME,Freelance,1200\n2025-02-03,EXPENSE,Food,200\n"
	if string(data) != want {
		t.Errorf("saved file = %q, want %q", data, want)
	}
}

func TestShellLoadMissingFile(t *testing.T) {
	out, repo := run(t, lines("4", filepath.Join(t.TempDir(), "missing.csv"), "5"))
	if !strings.Contains(out, "Error reading file") {
		t.Errorf("missing file error:\n%s", out)
	}
	if repo.Len() != 0 {
		t.Errorf("nothing should be loaded, got %d", repo.Len())
	}
}

func TestShellStopsAtExit(t *testing.T) {
	_, repo := run(t, lines("5", "1", "2025-01-10", "Salary", "1"))
	if repo.Len() != 0 {
		t.Errorf("input after exit must be ignored, got %d transactions", repo.Len())
	}
}

func TestShellEndOfInputExitsCleanly(t *testing.T) {
	out, repo := run(t, "1\n2025-01-10\nSalary\n100")
	if repo.Len() != 1 {
		t.Errorf("final line without newline should still be read, got %d transactions", repo.Len())
	}
	if !strings.Contains(out, "Goodbye!") {
		t.Errorf("expected goodbye on end of input:\n%s", out)
	}
}
