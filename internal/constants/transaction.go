package constants

const (
	// Transaction Kinds
	KindIncome  = "INCOME"
	KindExpense = "EXPENSE"

	// Date Layout
	DateFormat = "2006-01-02"

	// Ledger file record layout: date,kind,category,amount
	FieldDelimiter = ","
	RecordFields   = 4
)

const (
	MinMonth = 1
	MaxMonth = 12
)
