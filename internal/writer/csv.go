package writer

import (
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"strconv"

	"github.com/ledgerlens/statement-insights/internal/models"
)

// CSVWriter writes parsed transactions to CSV.
type CSVWriter struct {
	// IncludeSummary prepends parse-run metadata rows before the column
	// header.
	IncludeSummary bool
}

// WriteToFile writes transactions to a CSV file at the given path.
func (w *CSVWriter) WriteToFile(path, statementID string, txns []models.Transaction, summary *models.ParsingSummary) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("creating output file %q: %w", path, err)
	}
	defer f.Close()

	return w.Write(f, statementID, txns, summary)
}

// Write writes transactions in CSV format to out.
func (w *CSVWriter) Write(out io.Writer, statementID string, txns []models.Transaction, summary *models.ParsingSummary) error {
	cw := csv.NewWriter(out)
	defer cw.Flush()

	if w.IncludeSummary {
		cw.Write([]string{"# Statement", statementID})
		if summary != nil {
			cw.Write([]string{"# Lines scanned", strconv.Itoa(summary.LinesScanned)})
			cw.Write([]string{"# Transactions", strconv.Itoa(summary.TransactionsExtracted)})
			cw.Write([]string{"# Skipped lines", strconv.Itoa(summary.SkippedLines)})
		}
	}

	header := []string{"Date", "Description", "Category", "Type", "Amount", "Confidence"}
	if err := cw.Write(header); err != nil {
		return fmt.Errorf("writing CSV header: %w", err)
	}

	for _, t := range txns {
		row := []string{
			t.Date,
			t.Description,
			t.Category,
			string(t.Type),
			strconv.FormatFloat(t.Amount, 'f', 2, 64),
			strconv.FormatFloat(t.Confidence, 'f', 2, 64),
		}
		if err := cw.Write(row); err != nil {
			return fmt.Errorf("writing CSV row: %w", err)
		}
	}

	return nil
}
