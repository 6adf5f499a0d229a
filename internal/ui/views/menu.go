package views

import (
	"fmt"
	"io"

	"github.com/hance08/cashbook/internal/constants"
	"github.com/hance08/cashbook/internal/ui"
)

type MenuItem struct {
	Code  string
	Label string
}

var MenuItems = []MenuItem{
	{constants.MenuAddIncome, "Add Income"},
	{constants.MenuAddExpense, "Add Expense"},
	{constants.MenuSummary, "View Monthly Summary"},
	{constants.MenuLoadFile, "Load Transactions from File"},
	{constants.MenuExit, "Exit"},
	{constants.MenuSaveFile, "Save Transactions to File"},
}

func RenderMenu(w io.Writer) {
	fmt.Fprintln(w)
	ui.FprintL1Title(w, "Expense Tracker Menu")
	for _, item := range MenuItems {
		fmt.Fprintf(w, "%s. %s\n", item.Code, item.Label)
	}
	fmt.Fprintf(w, "Choose an option (%d-%d): ", constants.MenuFirstOption, constants.MenuLastOption)
}
