package parser

import (
	"strings"

	"github.com/ledgerlens/statement-insights/internal/models"
)

// maxSkipExamples bounds the verbatim skipped-line sample in the summary.
const maxSkipExamples = 5

// StatementParser runs the line parser over a whole statement and
// accumulates the diagnostic summary. It holds only immutable rule tables,
// so one instance is safe to share across goroutines parsing independent
// statements.
type StatementParser struct {
	lines *LineParser
}

// New returns a statement parser with the built-in rule tables.
func New() *StatementParser {
	return NewWithConfig(DefaultConfig())
}

// NewWithConfig returns a statement parser on custom rule tables. Intended
// for tests injecting alternate vocabularies.
func NewWithConfig(cfg *Config) *StatementParser {
	return &StatementParser{lines: NewLineParser(cfg)}
}

// ParseStatement extracts transactions from normalized statement text. It
// never fails: malformed input yields an empty or partial transaction list
// plus a summary accounting for every non-empty line. Input is expected to
// be pre-normalized (see NormalizeText); the parser still trims each line
// defensively.
func (p *StatementParser) ParseStatement(rawText, statementID string) ([]models.Transaction, models.ParsingSummary) {
	var (
		transactions []models.Transaction
		summary      models.ParsingSummary
	)

	for _, raw := range strings.Split(rawText, "\n") {
		line := strings.TrimSpace(raw)
		if line == "" {
			continue
		}
		summary.LinesScanned++

		res := p.lines.Parse(line, statementID)
		if res.Skipped || res.Transaction == nil {
			summary.SkippedLines++
			if len(summary.ExamplesOfSkipped) < maxSkipExamples {
				// The sample keeps the source line as written, not the
				// trimmed form handed to the line parser.
				summary.ExamplesOfSkipped = append(summary.ExamplesOfSkipped, raw)
			}
			continue
		}
		transactions = append(transactions, *res.Transaction)
	}

	summary.TransactionsExtracted = len(transactions)
	return transactions, summary
}
