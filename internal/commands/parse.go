package commands

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/google/uuid"
	"github.com/spf13/cobra"

	"github.com/ledgerlens/statement-insights/internal/analytics"
	"github.com/ledgerlens/statement-insights/internal/extractor"
	"github.com/ledgerlens/statement-insights/internal/logger"
	"github.com/ledgerlens/statement-insights/internal/models"
	"github.com/ledgerlens/statement-insights/internal/parser"
	"github.com/ledgerlens/statement-insights/internal/writer"
)

func newParseCommand() *cobra.Command {
	var (
		output   string
		format   string
		password string
	)

	cmd := &cobra.Command{
		Use:   "parse <statement.pdf|statement.txt>",
		Short: "Parse a statement file into transactions and analytics",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runParse(args[0], output, format, password)
		},
	}

	cmd.Flags().StringVarP(&output, "output", "o", "", "output file path (default: input name with new extension)")
	cmd.Flags().StringVarP(&format, "format", "f", "csv", "output format: csv or json")
	cmd.Flags().StringVarP(&password, "password", "p", "", "password for encrypted PDFs")

	return cmd
}

// parseOutput is the JSON document written by parse --format=json.
type parseOutput struct {
	StatementID  string                 `json:"statementId"`
	Transactions []models.Transaction   `json:"transactions"`
	Summary      models.ParsingSummary  `json:"summary"`
	Analytics    models.AnalyticsReport `json:"analytics"`
}

func runParse(inputPath, output, format, password string) error {
	log := logger.New()

	if format != "csv" && format != "json" {
		return fmt.Errorf("unknown format %q: use csv or json", format)
	}

	text, err := readStatementText(inputPath, password)
	if err != nil {
		return err
	}

	statementID := uuid.NewString()
	p := parser.New()
	txns, summary := p.ParseStatement(parser.NormalizeText(text), statementID)
	report := analytics.Compute(statementID, txns, &summary)

	log.Info().
		Str("statementId", statementID).
		Int("linesScanned", summary.LinesScanned).
		Int("transactions", summary.TransactionsExtracted).
		Int("skipped", summary.SkippedLines).
		Msg("statement parsed")

	if summary.TransactionsExtracted == 0 {
		log.Warn().Strs("skippedSample", summary.ExamplesOfSkipped).
			Msg("no transactions extracted; the statement layout may not match known patterns")
	}

	if output == "" {
		output = strings.TrimSuffix(inputPath, filepath.Ext(inputPath)) + "." + format
	}

	switch format {
	case "json":
		if txns == nil {
			txns = []models.Transaction{}
		}
		data, err := json.MarshalIndent(parseOutput{
			StatementID:  statementID,
			Transactions: txns,
			Summary:      summary,
			Analytics:    report,
		}, "", "  ")
		if err != nil {
			return fmt.Errorf("encoding output: %w", err)
		}
		if err := os.WriteFile(output, data, 0o644); err != nil {
			return fmt.Errorf("writing %q: %w", output, err)
		}
	case "csv":
		w := &writer.CSVWriter{IncludeSummary: true}
		if err := w.WriteToFile(output, statementID, txns, &summary); err != nil {
			return err
		}
	}

	log.Info().Str("output", output).Msg("done")
	return nil
}

// readStatementText loads the input as plain text, extracting first when it
// is a PDF.
func readStatementText(inputPath, password string) (string, error) {
	if _, err := os.Stat(inputPath); err != nil {
		return "", fmt.Errorf("input file: %w", err)
	}

	if strings.EqualFold(filepath.Ext(inputPath), ".pdf") {
		text, err := extractor.ExtractText(inputPath, password)
		if err != nil {
			return "", fmt.Errorf("extracting %q: %w", inputPath, err)
		}
		return text, nil
	}

	data, err := os.ReadFile(inputPath)
	if err != nil {
		return "", fmt.Errorf("reading %q: %w", inputPath, err)
	}
	return string(data), nil
}
