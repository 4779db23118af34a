package parser

import (
	"strings"

	"github.com/ledgerlens/statement-insights/internal/models"
)

// categorize maps a description to a category label. The ordered rule list
// is walked top-down and the first match wins, making rule order a testable
// artifact. When the description is empty the whole line is matched instead.
// Deterministic: the same input always yields the same category.
func categorize(cfg *Config, description, line string) string {
	text := strings.TrimSpace(description)
	if text == "" {
		text = line
	}
	lower := strings.ToLower(text)

	for _, rule := range cfg.CategoryRules {
		if containsAny(lower, rule.Keywords) {
			return rule.Category
		}
	}

	// No rule hit; a generic payment-instruction word still suggests a bill
	// of some kind.
	if containsAny(lower, cfg.PaymentKeywords) {
		return models.CategoryUtilities
	}
	return models.CategoryOther
}
