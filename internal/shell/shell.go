// Package shell implements the numbered-menu console loop.
package shell

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/hance08/cashbook/internal/constants"
	"github.com/hance08/cashbook/internal/model"
	"github.com/hance08/cashbook/internal/service"
	"github.com/hance08/cashbook/internal/ui/views"
	"github.com/hance08/cashbook/internal/validation"
)

type Shell struct {
	in       *bufio.Reader
	out      io.Writer
	svc      *service.Service
	currency string
}

func New(in io.Reader, out io.Writer, svc *service.Service) *Shell {
	currency := constants.DefaultCurrency
	if svc.Config != nil && svc.Config.Defaults.Currency != "" {
		currency = svc.Config.Defaults.Currency
	}

	return &Shell{
		in:       bufio.NewReader(in),
		out:      out,
		svc:      svc,
		currency: currency,
	}
}

// Run shows the menu and dispatches choices until the user exits or the
// input ends. Failed actions are reported and the menu is shown again.
func (s *Shell) Run() error {
	for {
		views.RenderMenu(s.out)

		choice, err := s.readLine()
		if err != nil {
			return s.endOfInput(err)
		}

		done, err := s.dispatch(strings.TrimSpace(choice))
		if err != nil {
			return s.endOfInput(err)
		}
		if done {
			return nil
		}
	}
}

func (s *Shell) dispatch(choice string) (bool, error) {
	switch choice {
	case constants.MenuAddIncome:
		return false, s.addTransaction(model.KindIncome)
	case constants.MenuAddExpense:
		return false, s.addTransaction(model.KindExpense)
	case constants.MenuSummary:
		return false, s.showSummary()
	case constants.MenuLoadFile:
		return false, s.loadFile()
	case constants.MenuSaveFile:
		return false, s.saveFile()
	case constants.MenuExit:
		s.goodbye()
		return true, nil
	default:
		views.RenderWarning(s.out, "Invalid option. Please choose between %d and %d.",
			constants.MenuFirstOption, constants.MenuLastOption)
		return false, nil
	}
}

func (s *Shell) addTransaction(kind model.Kind) error {
	dateStr, err := s.prompt("Enter date (YYYY-MM-DD): ")
	if err != nil {
		return err
	}
	date, err := validation.ParseDate(dateStr)
	if err != nil {
		views.RenderError(s.out, "Invalid date format.")
		return nil
	}

	hint := "income category (e.g., Salary, Business)"
	if kind == model.KindExpense {
		hint = "expense category (e.g., Food, Rent, Travel)"
	}
	category, err := s.prompt(fmt.Sprintf("Enter %s: ", hint))
	if err != nil {
		return err
	}

	amountStr, err := s.prompt("Enter amount: ")
	if err != nil {
		return err
	}
	amount, err := validation.ParseAmount(amountStr)
	if err != nil {
		views.RenderError(s.out, "Invalid amount.")
		return nil
	}

	if kind == model.KindIncome {
		s.svc.Transaction.AddIncome(date, category, amount)
		views.RenderSuccess(s.out, "Income added successfully.")
	} else {
		s.svc.Transaction.AddExpense(date, category, amount)
		views.RenderSuccess(s.out, "Expense added successfully.")
	}
	return nil
}

func (s *Shell) showSummary() error {
	yearStr, err := s.prompt("Enter year (e.g., 2025): ")
	if err != nil {
		return err
	}
	year, err := validation.ParseYear(yearStr)
	if err != nil {
		views.RenderError(s.out, "Invalid year.")
		return nil
	}

	monthStr, err := s.prompt("Enter month (1-12): ")
	if err != nil {
		return err
	}
	month, err := validation.ParseMonth(monthStr)
	if errors.Is(err, model.ErrInvalidMonth) {
		views.RenderError(s.out, "Month must be between 1 and 12.")
		return nil
	}
	if err != nil {
		views.RenderError(s.out, "Invalid month.")
		return nil
	}

	views.RenderMonthlySummary(s.out, s.svc.Summary.Summarize(year, month), s.currency)
	return nil
}

func (s *Shell) loadFile() error {
	path, err := s.prompt("Enter filename to load transactions from: ")
	if err != nil {
		return err
	}

	report, err := s.svc.File.Load(strings.TrimSpace(path))
	views.RenderLoadResult(s.out, report, err)
	return nil
}

func (s *Shell) saveFile() error {
	path, err := s.prompt("Enter filename to save transactions to: ")
	if err != nil {
		return err
	}
	path = strings.TrimSpace(path)
	if path == "" {
		views.RenderError(s.out, "Filename is required.")
		return nil
	}

	saved, err := s.svc.File.Save(path)
	views.RenderSaveResult(s.out, path, saved, err)
	return nil
}

func (s *Shell) goodbye() {
	fmt.Fprintln(s.out, "Exiting Expense Tracker. Goodbye!")
}

// endOfInput treats a closed input like choosing Exit.
func (s *Shell) endOfInput(err error) error {
	if errors.Is(err, io.EOF) {
		fmt.Fprintln(s.out)
		s.goodbye()
		return nil
	}
	return fmt.Errorf("failed to read input: %w", err)
}

func (s *Shell) prompt(message string) (string, error) {
	fmt.Fprint(s.out, message)
	return s.readLine()
}

// readLine returns one line without its terminator. A final line without a
// newline is returned before io.EOF.
func (s *Shell) readLine() (string, error) {
	line, err := s.in.ReadString('\n')
	if err != nil {
		if errors.Is(err, io.EOF) && line != "" {
			return strings.TrimRight(line, "\r\n"), nil
		}
		return "", err
	}
	return strings.TrimRight(line, "\r\n"), nil
}
