package service

import (
	"sort"
	"time"

	"github.com/hance08/cashbook/internal/model"
	"github.com/hance08/cashbook/internal/store"
	"github.com/shopspring/decimal"
)

// MonthlySummary aggregates one calendar month. Categories without a
// matching transaction have no entry in the maps.
type MonthlySummary struct {
	Year              int
	Month             time.Month
	Transactions      int
	TotalIncome       decimal.Decimal
	TotalExpense      decimal.Decimal
	IncomeByCategory  map[string]decimal.Decimal
	ExpenseByCategory map[string]decimal.Decimal
}

// CategoryAmount is one line of a category breakdown.
type CategoryAmount struct {
	Category string
	Amount   decimal.Decimal
}

func (s MonthlySummary) NetSavings() decimal.Decimal {
	return s.TotalIncome.Sub(s.TotalExpense)
}

// IncomeCategories returns the income breakdown sorted by category name.
func (s MonthlySummary) IncomeCategories() []CategoryAmount {
	return sortedCategories(s.IncomeByCategory)
}

// ExpenseCategories returns the expense breakdown sorted by category name.
func (s MonthlySummary) ExpenseCategories() []CategoryAmount {
	return sortedCategories(s.ExpenseByCategory)
}

func sortedCategories(m map[string]decimal.Decimal) []CategoryAmount {
	out := make([]CategoryAmount, 0, len(m))
	for category, amount := range m {
		out = append(out, CategoryAmount{Category: category, Amount: amount})
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Category < out[j].Category })
	return out
}

type SummaryService struct {
	repo store.Repository
}

func NewSummaryService(repo store.Repository) *SummaryService {
	return &SummaryService{repo: repo}
}

// Summarize totals the transactions dated in the given year and month.
// It only reads the store.
func (ss *SummaryService) Summarize(year int, month time.Month) MonthlySummary {
	summary := MonthlySummary{
		Year:              year,
		Month:             month,
		TotalIncome:       decimal.Zero,
		TotalExpense:      decimal.Zero,
		IncomeByCategory:  make(map[string]decimal.Decimal),
		ExpenseByCategory: make(map[string]decimal.Decimal),
	}

	for _, tx := range ss.repo.All() {
		if !tx.InMonth(year, month) {
			continue
		}
		summary.Transactions++

		switch tx.Kind {
		case model.KindIncome:
			summary.TotalIncome = summary.TotalIncome.Add(tx.Amount)
			summary.IncomeByCategory[tx.Category] = summary.IncomeByCategory[tx.Category].Add(tx.Amount)
		case model.KindExpense:
			summary.TotalExpense = summary.TotalExpense.Add(tx.Amount)
			summary.ExpenseByCategory[tx.Category] = summary.ExpenseByCategory[tx.Category].Add(tx.Amount)
		}
	}

	return summary
}
