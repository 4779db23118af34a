package parser

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ledgerlens/statement-insights/internal/models"
)

func TestParseStatement_SalaryCredit(t *testing.T) {
	p := New()

	txns, summary := p.ParseStatement("12/01/2024 SALARY CREDIT 50,000.00", "stmt-1")
	require.Len(t, txns, 1)

	txn := txns[0]
	assert.Equal(t, "stmt-1", txn.StatementID)
	assert.Equal(t, "2024-01-12", txn.Date)
	assert.Equal(t, models.TypeCredit, txn.Type)
	assert.Equal(t, models.CategorySalary, txn.Category)
	assert.Equal(t, 50000.00, txn.Amount)
	assert.Equal(t, "SALARY", txn.Description) // trailing CREDIT marker stripped
	assert.Equal(t, "12/01/2024 SALARY CREDIT 50,000.00", txn.RawLine)
	assert.InDelta(t, 1.0, txn.Confidence, 1e-9)

	assert.Equal(t, 1, summary.LinesScanned)
	assert.Equal(t, 1, summary.TransactionsExtracted)
	assert.Equal(t, 0, summary.SkippedLines)
}

func TestParseStatement_ATMWithdrawal(t *testing.T) {
	p := New()

	txns, _ := p.ParseStatement("2024-03-05 ATM WITHDRAWAL (2,500.00)", "stmt-1")
	require.Len(t, txns, 1)

	txn := txns[0]
	assert.Equal(t, "2024-03-05", txn.Date)
	assert.Equal(t, models.TypeDebit, txn.Type)
	assert.Equal(t, models.CategoryATM, txn.Category)
	assert.Equal(t, 2500.00, txn.Amount)
}

func TestParseStatement_SkipsLinesWithoutDate(t *testing.T) {
	p := New()

	txns, summary := p.ParseStatement("Opening Balance 10000.00", "stmt-1")
	assert.Empty(t, txns)
	assert.Equal(t, 1, summary.LinesScanned)
	assert.Equal(t, 1, summary.SkippedLines)
	require.Len(t, summary.ExamplesOfSkipped, 1)
	assert.Equal(t, "Opening Balance 10000.00", summary.ExamplesOfSkipped[0])
}

func TestParseStatement_MixedStatement(t *testing.T) {
	p := New()

	text := strings.Join([]string{
		"ACME BANK LTD",
		"Statement of Account",
		"",
		"12/01/2024 SALARY CREDIT 50,000.00",
		"15/01/2024 HOUSE RENT 15,000.00",
		"2024-01-20 ATM WITHDRAWAL (2,500.00)",
		"Closing Balance 32,500.00",
	}, "\n")

	txns, summary := p.ParseStatement(text, "stmt-1")
	require.Len(t, txns, 3)

	// Empty lines are not counted; every non-empty line lands in exactly
	// one bucket.
	assert.Equal(t, 6, summary.LinesScanned)
	assert.Equal(t, 3, summary.TransactionsExtracted)
	assert.Equal(t, 3, summary.SkippedLines)
	assert.Equal(t, summary.LinesScanned, summary.SkippedLines+len(txns))
}

func TestParseStatement_SkipExamplesBounded(t *testing.T) {
	p := New()

	var lines []string
	for i := 0; i < 10; i++ {
		lines = append(lines, "unparseable line")
	}
	_, summary := p.ParseStatement(strings.Join(lines, "\n"), "stmt-1")

	assert.Equal(t, 10, summary.SkippedLines)
	assert.LessOrEqual(t, len(summary.ExamplesOfSkipped), 5)
}

func TestParseStatement_NeverPanics(t *testing.T) {
	p := New()

	inputs := []string{
		"",
		"\n\n\n",
		"\x00\x01\x02\xff garbage \x7f",
		strings.Repeat("a1,2.3 ", 50000),
		strings.Repeat("9", 100000),
		"01/01/2024 " + strings.Repeat("x", 100000) + " 100.00",
	}

	for _, input := range inputs {
		assert.NotPanics(t, func() {
			txns, summary := p.ParseStatement(input, "stmt-1")
			assert.Equal(t, summary.LinesScanned, summary.SkippedLines+len(txns))
			assert.Equal(t, len(txns), summary.TransactionsExtracted)
		})
	}
}

func TestParseStatement_Invariants(t *testing.T) {
	p := New()

	text := strings.Join([]string{
		"12/01/2024 SALARY CREDIT 50,000.00",
		"13/01/2024 POS AMAZON 1,299.00",
		"14/01/2024 UPI SWIGGY 450.00",
		"15 Jan 2024 FUEL STATION 2,000.00",
		"junk line no numbers",
	}, "\n")

	txns, _ := p.ParseStatement(text, "stmt-1")
	require.NotEmpty(t, txns)

	for _, txn := range txns {
		assert.GreaterOrEqual(t, txn.Amount, 0.0)
		assert.GreaterOrEqual(t, txn.Confidence, 0.0)
		assert.LessOrEqual(t, txn.Confidence, 1.0)
		assert.Contains(t, []models.TransactionType{models.TypeCredit, models.TypeDebit}, txn.Type)
		assert.Regexp(t, `^\d{4}-\d{2}-\d{2}$`, txn.Date)
		assert.NotEmpty(t, txn.Description)
		assert.False(t, txn.CreatedAt.IsZero())
	}
}

func TestParseStatement_Idempotent(t *testing.T) {
	p := New()
	text := "12/01/2024 SALARY CREDIT 50,000.00\n13/01/2024 POS AMAZON 1,299.00"

	first, _ := p.ParseStatement(text, "stmt-1")
	second, _ := p.ParseStatement(text, "stmt-1")
	require.Equal(t, len(first), len(second))

	for i := range first {
		a, b := first[i], second[i]
		a.CreatedAt = b.CreatedAt // everything but the extraction timestamp must match
		assert.Equal(t, a, b)
	}
}

func TestParseStatement_AmountBeforeDate(t *testing.T) {
	p := New()

	// Reversed layout: the description falls back to the line with both
	// tokens removed.
	txns, _ := p.ParseStatement("1,250.00 GROCERY MART 12/01/2024", "stmt-1")
	require.Len(t, txns, 1)
	assert.Equal(t, "GROCERY MART", txns[0].Description)
	assert.Equal(t, 1250.00, txns[0].Amount)
	assert.Equal(t, "2024-01-12", txns[0].Date)
}

func TestParseStatement_EmptyDescriptionCategorizedFromLine(t *testing.T) {
	p := New()

	// Amount directly after the date leaves no text between the tokens, so
	// categorization falls back to the whole line. The placeholder
	// description neither feeds the categorizer nor earns the
	// description-length bonus.
	txns, _ := p.ParseStatement("12/01/2024 500.00 SWIGGY ORDER", "stmt-1")
	require.Len(t, txns, 1)

	txn := txns[0]
	assert.Equal(t, models.CategoryFood, txn.Category)
	assert.Equal(t, "Unknown transaction", txn.Description)
	assert.InDelta(t, 0.95, txn.Confidence, 1e-9)
}

func TestParseStatement_SkipExamplesVerbatim(t *testing.T) {
	p := New()

	_, summary := p.ParseStatement("   Opening Balance 10000.00", "stmt-1")
	require.Len(t, summary.ExamplesOfSkipped, 1)
	assert.Equal(t, "   Opening Balance 10000.00", summary.ExamplesOfSkipped[0])
}

func TestLineParser_SkipReasons(t *testing.T) {
	lp := NewLineParser(DefaultConfig())

	tests := []struct {
		line   string
		reason string
	}{
		{"no date here 100.00", SkipNoDate},
		{"13/13/2024 BAD MONTH 100.00", SkipInvalidDate},
		{"12/01/2024 no amount at all", SkipNoAmount},
	}

	for _, tt := range tests {
		t.Run(tt.reason, func(t *testing.T) {
			res := lp.Parse(tt.line, "stmt-1")
			require.True(t, res.Skipped)
			assert.Equal(t, tt.reason, res.Reason)
		})
	}
}

func TestStripTrailingMarkers(t *testing.T) {
	markers := DefaultConfig().TrailingMarkers

	tests := []struct {
		input    string
		expected string
	}{
		{"GROCERY STORE DR", "GROCERY STORE"},
		{"SALARY CREDIT", "SALARY"},
		{"ACME CORP CR.", "ACME CORP"},
		{"NOTHING TO STRIP", "NOTHING TO STRIP"},
		{"DOUBLE DR CR", "DOUBLE"},
	}

	for _, tt := range tests {
		if got := stripTrailingMarkers(tt.input, markers); got != tt.expected {
			t.Errorf("stripTrailingMarkers(%q): got %q, want %q", tt.input, got, tt.expected)
		}
	}
}
