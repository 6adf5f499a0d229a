package views

import (
	"fmt"
	"io"

	"github.com/hance08/cashbook/internal/service"
	"github.com/hance08/cashbook/internal/ui"
	"github.com/hance08/cashbook/internal/utils"
	"github.com/pterm/pterm"
	"github.com/shopspring/decimal"
)

// RenderMonthlySummary prints totals, indented category breakdowns and net
// savings for one month.
func RenderMonthlySummary(w io.Writer, s service.MonthlySummary, currency string) {
	format := func(d decimal.Decimal) string {
		return utils.FormatAmount(d, currency)
	}

	fmt.Fprintln(w)
	ui.FprintL2Title(w, "Monthly Summary for %d-%02d", s.Year, int(s.Month))

	fmt.Fprintf(w, "Total Income: %s\n", pterm.Green(format(s.TotalIncome)))
	for _, c := range s.IncomeCategories() {
		fmt.Fprintf(w, "  %s: %s\n", c.Category, format(c.Amount))
	}

	fmt.Fprintf(w, "Total Expenses: %s\n", pterm.Red(format(s.TotalExpense)))
	for _, c := range s.ExpenseCategories() {
		fmt.Fprintf(w, "  %s: %s\n", c.Category, format(c.Amount))
	}

	net := s.NetSavings()
	netStr := pterm.Green(format(net))
	if net.IsNegative() {
		netStr = pterm.Red(format(net))
	}
	fmt.Fprintf(w, "Net Savings: %s\n", netStr)

	if s.Transactions == 0 {
		RenderInfo(w, "No transactions recorded for %d-%02d", s.Year, int(s.Month))
	}
}
