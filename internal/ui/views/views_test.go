package views

import (
	"bytes"
	"errors"
	"os"
	"strings"
	"testing"
	"time"

	"github.com/hance08/cashbook/internal/model"
	"github.com/hance08/cashbook/internal/service"
	"github.com/pterm/pterm"
	"github.com/shopspring/decimal"
)

func TestMain(m *testing.M) {
	pterm.DisableStyling()
	os.Exit(m.Run())
}

func TestRenderMonthlySummary(t *testing.T) {
	summary := service.MonthlySummary{
		Year:         2025,
		Month:        time.January,
		Transactions: 3,
		TotalIncome:  decimal.NewFromInt(50000),
		TotalExpense: decimal.NewFromInt(18000),
		IncomeByCategory: map[string]decimal.Decimal{
			"Salary": decimal.NewFromInt(50000),
		},
		ExpenseByCategory: map[string]decimal.Decimal{
			"Rent": decimal.NewFromInt(15000),
			"Food": decimal.NewFromInt(3000),
		},
	}

	var buf bytes.Buffer
	RenderMonthlySummary(&buf, summary, "USD")
	out := buf.String()

	for _, want := range []string{
		"Monthly Summary for 2025-01",
		"Total Income: $50,000.00",
		"  Salary: $50,000.00",
		"Total Expenses: $18,000.00",
		"  Food: $3,000.00",
		"  Rent: $15,000.00",
		"Net Savings: $32,000.00",
	} {
		if !strings.Contains(out, want) {
			t.Errorf("summary output missing %q:\n%s", want, out)
		}
	}

	if strings.Index(out, "Food") > strings.Index(out, "Rent") {
		t.Errorf("expense categories should be sorted:\n%s", out)
	}
}

func TestRenderLoadResult(t *testing.T) {
	t.Run("success with skipped lines", func(t *testing.T) {
		var buf bytes.Buffer
		RenderLoadResult(&buf, &service.LoadReport{Path: "a.csv", Loaded: 1200, Skipped: []int{3}}, nil)
		out := buf.String()
		if !strings.Contains(out, "loaded successfully from a.csv (1,200 loaded)") {
			t.Errorf("unexpected output: %s", out)
		}
		if !strings.Contains(out, "Skipped 1 line without 4 fields: 3") {
			t.Errorf("missing skipped warning: %s", out)
		}
	})

	t.Run("file access error", func(t *testing.T) {
		var buf bytes.Buffer
		err := &model.FileAccessError{Path: "x.csv", Err: errors.New("no such file")}
		RenderLoadResult(&buf, &service.LoadReport{Path: "x.csv"}, err)
		if !strings.Contains(buf.String(), "Error reading file: no such file") {
			t.Errorf("unexpected output: %s", buf.String())
		}
	})

	t.Run("parse error keeps partial count", func(t *testing.T) {
		var buf bytes.Buffer
		err := &model.ParseError{Field: "kind", Value: "BONUS", Line: 2, Err: errors.New("bad kind")}
		RenderLoadResult(&buf, &service.LoadReport{Path: "x.csv", Loaded: 1}, err)
		out := buf.String()
		if !strings.Contains(out, "Error parsing file: line 2") || !strings.Contains(out, "1 transactions loaded before the error") {
			t.Errorf("unexpected output: %s", out)
		}
	})
}

func TestListLinesTruncates(t *testing.T) {
	lines := []int{1, 2, 3, 4, 5, 6, 7, 8, 9, 10, 11, 12}
	got := listLines(lines)
	if !strings.HasSuffix(got, "10, ...") {
		t.Errorf("listLines = %q", got)
	}
}
