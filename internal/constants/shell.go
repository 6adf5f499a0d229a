package constants

// Menu codes understood by the interactive shell
const (
	MenuAddIncome   = "1"
	MenuAddExpense  = "2"
	MenuSummary     = "3"
	MenuLoadFile    = "4"
	MenuExit        = "5"
	MenuSaveFile    = "6"
	MenuFirstOption = 1
	MenuLastOption  = 6
)

const (
	DefaultCurrency = "INR"
	DefaultLogLevel = "warn"
	AppName         = "cashbook"
	EnvPrefix       = "CASHBOOK"
)
