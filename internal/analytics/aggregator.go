// Package analytics derives summary reports from parsed transaction sets.
// Computation is a pure function of its inputs and can be re-run at any
// time, including on transactions reloaded from storage without a parse
// summary.
package analytics

import (
	"sort"

	"github.com/shopspring/decimal"

	"github.com/ledgerlens/statement-insights/internal/models"
)

// Compute builds an AnalyticsReport from a transaction set in a single
// pass. summary may be nil when the transactions did not come from a fresh
// parse run.
func Compute(statementID string, txns []models.Transaction, summary *models.ParsingSummary) models.AnalyticsReport {
	report := models.AnalyticsReport{
		StatementID:      statementID,
		ByCategory:       make(map[string]float64),
		Top5Expenses:     []models.Transaction{},
		MonthlyTrends:    []models.MonthlyTrend{},
		TransactionCount: len(txns),
		Parsing:          summary,
	}

	var (
		income, expense, total float64
		debits                 []models.Transaction
		months                 = make(map[string]*models.MonthlyTrend)
	)

	for _, t := range txns {
		total += t.Amount
		report.ByCategory[t.Category] += t.Amount

		var trend *models.MonthlyTrend
		if len(t.Date) >= 7 {
			key := t.Date[:7]
			if months[key] == nil {
				months[key] = &models.MonthlyTrend{Month: key}
			}
			trend = months[key]
		}

		if t.Type == models.TypeCredit {
			income += t.Amount
			if trend != nil {
				trend.Income += t.Amount
			}
		} else {
			expense += t.Amount
			debits = append(debits, t)
			if trend != nil {
				trend.Expense += t.Amount
			}
		}
	}

	// Stable keeps encounter order among equal amounts.
	sort.SliceStable(debits, func(i, j int) bool {
		return debits[i].Amount > debits[j].Amount
	})
	if len(debits) > 5 {
		debits = debits[:5]
	}
	report.Top5Expenses = append(report.Top5Expenses, debits...)

	keys := make([]string, 0, len(months))
	for k := range months {
		keys = append(keys, k)
	}
	// Lexical order is chronological because keys are zero-padded YYYY-MM.
	sort.Strings(keys)
	for _, k := range keys {
		m := months[k]
		report.MonthlyTrends = append(report.MonthlyTrends, models.MonthlyTrend{
			Month:   m.Month,
			Income:  round2(m.Income),
			Expense: round2(m.Expense),
		})
	}

	report.TotalIncome = round2(income)
	report.TotalExpense = round2(expense)
	report.Net = round2(income - expense)
	for cat, sum := range report.ByCategory {
		report.ByCategory[cat] = round2(sum)
	}
	if len(txns) > 0 {
		report.AvgTransactionAmount = round2(total / float64(len(txns)))
	}
	return report
}

// round2 rounds to 2 decimal places, half away from zero. Going through
// decimal's shortest representation of the float absorbs binary
// representation error (0.145 stored as 0.14499... still rounds up).
func round2(v float64) float64 {
	return decimal.NewFromFloat(v).Round(2).InexactFloat64()
}
