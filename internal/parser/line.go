package parser

import (
	"math"
	"strings"
	"time"

	"github.com/ledgerlens/statement-insights/internal/models"
)

// Skip reasons carried on LineResult. The summary only keeps a bounded
// sample of raw lines, but the per-line reason is available to callers that
// want to log it.
const (
	SkipNoDate      = "no-date"
	SkipInvalidDate = "invalid-date"
	SkipNoAmount    = "no-amount"
	SkipBadAmount   = "bad-amount"
	SkipPanic       = "panic"
)

// LineResult is the outcome of parsing one line: either a transaction or a
// skip with a reason. There is no error path; unparseable lines are data,
// not failures.
type LineResult struct {
	Transaction *models.Transaction
	Skipped     bool
	Reason      string
}

// LineParser extracts at most one transaction from a single statement line.
type LineParser struct {
	cfg *Config
}

// NewLineParser builds a line parser on the given rule tables.
func NewLineParser(cfg *Config) *LineParser {
	return &LineParser{cfg: cfg}
}

func skip(reason string) LineResult {
	return LineResult{Skipped: true, Reason: reason}
}

// Parse processes one trimmed, non-empty line. Anything unexpected while
// processing is recovered locally and reported as a skip; Parse itself
// never panics.
func (p *LineParser) Parse(line, statementID string) (res LineResult) {
	defer func() {
		if r := recover(); r != nil {
			res = skip(SkipPanic)
		}
	}()

	token, dateStart, dateEnd, ok := findDateToken(line)
	if !ok {
		return skip(SkipNoDate)
	}
	date, ok := normalizeDate(token)
	if !ok {
		return skip(SkipInvalidDate)
	}

	candidates := findAmountCandidates(line, dateStart, dateEnd)
	if len(candidates) == 0 {
		return skip(SkipNoAmount)
	}
	// Statement layouts put the amount at or near line end, after any
	// running balance or reference numbers. Last candidate wins.
	chosen := candidates[len(candidates)-1]
	value, err := parseAmountValue(chosen)
	if err != nil {
		return skip(SkipBadAmount)
	}

	description := extractDescription(line, dateStart, dateEnd, chosen)
	description = stripTrailingMarkers(description, p.cfg.TrailingMarkers)

	// Categorization and scoring see the description as extracted; an empty
	// one makes categorize fall back to the whole line and earns no
	// description bonus. The placeholder is display-only.
	txnType := classifyType(p.cfg, line, chosen, value)
	category := categorize(p.cfg, description, line)
	confidence := scoreConfidence(true, true, true, category, description)
	if description == "" {
		description = "Unknown transaction"
	}

	txn := &models.Transaction{
		StatementID: statementID,
		Date:        date,
		Description: description,
		Amount:      math.Abs(value),
		Type:        txnType,
		Category:    category,
		Confidence:  confidence,
		RawLine:     line,
		CreatedAt:   time.Now().UTC(),
	}
	return LineResult{Transaction: txn}
}

// extractDescription takes the text strictly between the date token and the
// chosen amount token. When the layout reverses (amount before date) it
// falls back to the line with both tokens removed.
func extractDescription(line string, dateStart, dateEnd int, amount amountCandidate) string {
	if amount.start >= dateEnd {
		return strings.TrimSpace(line[dateEnd:amount.start])
	}
	var b strings.Builder
	for i := 0; i < len(line); i++ {
		if i >= amount.start && i < amount.end {
			continue
		}
		if i >= dateStart && i < dateEnd {
			continue
		}
		b.WriteByte(line[i])
	}
	return strings.TrimSpace(b.String())
}

// stripTrailingMarkers removes debit/credit column leftovers from the tail
// of a description ("GROCERY STORE DR" -> "GROCERY STORE").
func stripTrailingMarkers(desc string, markers []string) string {
	for {
		trimmed := strings.TrimSpace(desc)
		fields := strings.Fields(trimmed)
		if len(fields) == 0 {
			return trimmed
		}
		last := strings.ToLower(fields[len(fields)-1])
		matched := false
		for _, m := range markers {
			if last == m {
				matched = true
				break
			}
		}
		if !matched {
			return trimmed
		}
		desc = strings.Join(fields[:len(fields)-1], " ")
	}
}
