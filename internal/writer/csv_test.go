package writer

import (
	"bytes"
	"encoding/csv"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ledgerlens/statement-insights/internal/models"
)

func sampleTxns() []models.Transaction {
	return []models.Transaction{
		{
			Date: "2024-01-12", Description: "SALARY", Category: models.CategorySalary,
			Type: models.TypeCredit, Amount: 50000, Confidence: 1.0,
		},
		{
			Date: "2024-03-05", Description: "ATM WITHDRAWAL", Category: models.CategoryATM,
			Type: models.TypeDebit, Amount: 2500, Confidence: 0.95,
		},
	}
}

func TestCSVWriter_Write(t *testing.T) {
	var buf bytes.Buffer
	w := &CSVWriter{}
	require.NoError(t, w.Write(&buf, "stmt-1", sampleTxns(), nil))

	records, err := csv.NewReader(&buf).ReadAll()
	require.NoError(t, err)
	require.Len(t, records, 3)

	assert.Equal(t, []string{"Date", "Description", "Category", "Type", "Amount", "Confidence"}, records[0])
	assert.Equal(t, []string{"2024-01-12", "SALARY", "salary", "credit", "50000.00", "1.00"}, records[1])
	assert.Equal(t, []string{"2024-03-05", "ATM WITHDRAWAL", "atm-withdrawal", "debit", "2500.00", "0.95"}, records[2])
}

func TestCSVWriter_IncludeSummary(t *testing.T) {
	var buf bytes.Buffer
	w := &CSVWriter{IncludeSummary: true}
	summary := &models.ParsingSummary{LinesScanned: 5, TransactionsExtracted: 2, SkippedLines: 3}
	require.NoError(t, w.Write(&buf, "stmt-1", sampleTxns(), summary))

	r := csv.NewReader(&buf)
	r.FieldsPerRecord = -1
	records, err := r.ReadAll()
	require.NoError(t, err)
	require.Len(t, records, 7)

	assert.Equal(t, []string{"# Statement", "stmt-1"}, records[0])
	assert.Equal(t, []string{"# Lines scanned", "5"}, records[1])
	assert.Equal(t, []string{"# Skipped lines", "3"}, records[3])
}

func TestCSVWriter_Empty(t *testing.T) {
	var buf bytes.Buffer
	w := &CSVWriter{}
	require.NoError(t, w.Write(&buf, "stmt-1", nil, nil))

	records, err := csv.NewReader(&buf).ReadAll()
	require.NoError(t, err)
	require.Len(t, records, 1) // header only
}
