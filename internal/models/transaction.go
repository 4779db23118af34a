package models

import "time"

// TransactionType marks the direction of money movement.
type TransactionType string

const (
	TypeCredit TransactionType = "credit"
	TypeDebit  TransactionType = "debit"
)

// Category labels produced by the categorizer. The set is closed: every
// transaction carries exactly one of these, with CategoryOther as the
// catch-all.
const (
	CategorySalary    = "salary"
	CategoryRent      = "rent"
	CategoryATM       = "atm-withdrawal"
	CategoryUtilities = "utilities"
	CategoryGroceries = "groceries"
	CategoryFuel      = "fuel"
	CategoryLoan      = "loan"
	CategoryInsurance = "insurance"
	CategoryShopping  = "shopping"
	CategoryFood      = "food"
	CategoryInterest  = "interest"
	CategoryRefund    = "refund"
	CategoryTransfer  = "transfer"
	CategoryOther     = "other"
)

// AllCategories returns the full category vocabulary.
func AllCategories() []string {
	return []string{
		CategorySalary, CategoryRent, CategoryATM, CategoryUtilities,
		CategoryGroceries, CategoryFuel, CategoryLoan, CategoryInsurance,
		CategoryShopping, CategoryFood, CategoryInterest, CategoryRefund,
		CategoryTransfer, CategoryOther,
	}
}

// Transaction is one parsed statement line. Amount is always the absolute
// magnitude; the sign lives in Type. Instances are never mutated after the
// parser returns them.
type Transaction struct {
	StatementID string          `json:"statementId"`
	Date        string          `json:"date"` // canonical YYYY-MM-DD
	Description string          `json:"description"`
	Amount      float64         `json:"amount"`
	Type        TransactionType `json:"type"`
	Category    string          `json:"category"`
	Confidence  float64         `json:"confidence"`
	RawLine     string          `json:"rawLine"`
	CreatedAt   time.Time       `json:"createdAt"`
}

// ParsingSummary is the diagnostic trail of one parse run. Every non-empty
// line of the statement is counted exactly once, either as an extracted
// transaction or as a skip.
type ParsingSummary struct {
	LinesScanned          int      `json:"linesScanned"`
	TransactionsExtracted int      `json:"transactionsExtracted"`
	SkippedLines          int      `json:"skippedLines"`
	ExamplesOfSkipped     []string `json:"examplesOfSkipped"` // first 5 skipped lines, verbatim
}
