package models

// MonthlyTrend is the income/expense pair for one calendar month.
type MonthlyTrend struct {
	Month   string  `json:"month"` // zero-padded YYYY-MM
	Income  float64 `json:"income"`
	Expense float64 `json:"expense"`
}

// AnalyticsReport is derived purely from a transaction set; it has no
// identity of its own and can be recomputed at any time.
type AnalyticsReport struct {
	StatementID          string             `json:"statementId"`
	TotalIncome          float64            `json:"totalIncome"`
	TotalExpense         float64            `json:"totalExpense"`
	Net                  float64            `json:"net"`
	ByCategory           map[string]float64 `json:"byCategory"`
	Top5Expenses         []Transaction      `json:"top5Expenses"`
	MonthlyTrends        []MonthlyTrend     `json:"monthlyTrends"`
	TransactionCount     int                `json:"transactionCount"`
	AvgTransactionAmount float64            `json:"avgTransactionAmount"`
	Parsing              *ParsingSummary    `json:"parsing,omitempty"` // nil for transactions reloaded without a parse run
}
