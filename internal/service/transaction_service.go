package service

import (
	"time"

	"github.com/hance08/cashbook/internal/model"
	"github.com/hance08/cashbook/internal/store"
	"github.com/pterm/pterm"
	"github.com/shopspring/decimal"
)

type TransactionService struct {
	repo   store.Repository
	logger *pterm.Logger
}

func NewTransactionService(repo store.Repository, logger *pterm.Logger) *TransactionService {
	return &TransactionService{repo: repo, logger: logger}
}

// AddIncome records an income. Inputs are expected to be validated already.
func (ts *TransactionService) AddIncome(date time.Time, category string, amount decimal.Decimal) model.Transaction {
	return ts.Add(model.NewTransaction(date, model.KindIncome, category, amount))
}

// AddExpense records an expense. Inputs are expected to be validated already.
func (ts *TransactionService) AddExpense(date time.Time, category string, amount decimal.Decimal) model.Transaction {
	return ts.Add(model.NewTransaction(date, model.KindExpense, category, amount))
}

func (ts *TransactionService) Add(tx model.Transaction) model.Transaction {
	ts.repo.Add(tx)
	ts.logger.Debug("transaction added", ts.logger.Args("record", tx.String(), "count", ts.repo.Len()))
	return tx
}
