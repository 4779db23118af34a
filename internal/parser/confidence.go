package parser

import "github.com/ledgerlens/statement-insights/internal/models"

// Confidence weights. Date and amount are mandatory for a transaction to
// exist, so realized scores never fall below 0.70.
const (
	weightDate        = 0.35
	weightAmount      = 0.35
	weightType        = 0.15
	weightCategory    = 0.10
	weightDescription = 0.05
)

// scoreConfidence produces the [0,1] quality score from signal presence.
func scoreConfidence(hasDate, hasAmount, hasType bool, category, description string) float64 {
	score := 0.0
	if hasDate {
		score += weightDate
	}
	if hasAmount {
		score += weightAmount
	}
	if hasType {
		score += weightType
	}
	if category != models.CategoryOther {
		score += weightCategory
	}
	if len(description) > 3 {
		score += weightDescription
	}
	if score > 1.0 {
		score = 1.0
	}
	return score
}
