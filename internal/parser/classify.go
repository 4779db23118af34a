package parser

import (
	"strings"

	"github.com/ledgerlens/statement-insights/internal/models"
)

// classifyType infers credit vs debit for a line. Priority: explicit sign
// markers on the amount token, then debit/credit keyword vocabulary, then a
// credit fallback vocabulary. Every line gets exactly one of the two types;
// there is no unknown.
func classifyType(cfg *Config, line string, c amountCandidate, value float64) models.TransactionType {
	// Both markers present (e.g. "(+100)"): the true sign of the parsed
	// value decides.
	if c.negative && c.positive {
		if value < 0 {
			return models.TypeDebit
		}
		return models.TypeCredit
	}
	if c.negative {
		return models.TypeDebit
	}
	if c.positive {
		return models.TypeCredit
	}

	lower := strings.ToLower(line)
	if containsAny(lower, cfg.DebitKeywords) {
		if containsAny(lower, cfg.CreditKeywords) {
			return models.TypeCredit
		}
		return models.TypeDebit
	}
	if containsAny(lower, cfg.CreditFallbackKeywords) {
		return models.TypeCredit
	}
	return models.TypeDebit
}
