package parser

import (
	"strings"

	"github.com/ledgerlens/statement-insights/internal/models"
)

// CategoryRule maps keyword patterns to one category. Rules are evaluated
// in declaration order and the first match wins, so ordering is part of the
// rule set's contract.
type CategoryRule struct {
	Name     string
	Keywords []string
	Category string
}

// Config holds the keyword and rule tables the parser runs on. It is built
// once and never mutated; tests inject alternate rule sets through
// NewWithConfig.
type Config struct {
	CategoryRules []CategoryRule

	// Generic payment-instruction words. When no category rule matches but
	// one of these appears, the category defaults to utilities.
	PaymentKeywords []string

	// Type inference vocabularies.
	DebitKeywords  []string
	CreditKeywords []string
	// Fallback vocabulary consulted when neither marker nor debit keyword
	// decided the type.
	CreditFallbackKeywords []string

	// Marker words stripped from the tail of a description (column leftovers
	// like "DR"/"CR").
	TrailingMarkers []string
}

// DefaultConfig returns the built-in rule tables.
func DefaultConfig() *Config {
	return &Config{
		CategoryRules: []CategoryRule{
			{Name: "salary", Category: models.CategorySalary, Keywords: []string{
				"salary", "payroll", "sal credit", "wages", "stipend",
			}},
			{Name: "rent", Category: models.CategoryRent, Keywords: []string{
				"rent",
			}},
			{Name: "atm-withdrawal", Category: models.CategoryATM, Keywords: []string{
				"atm", "cash withdrawal", "cash wdl", "cash wd",
			}},
			{Name: "utility-bills", Category: models.CategoryUtilities, Keywords: []string{
				"electricity", "electric bill", "water bill", "gas bill",
				"broadband", "internet", "mobile recharge", "phone bill",
				"utility", "dth",
			}},
			{Name: "groceries", Category: models.CategoryGroceries, Keywords: []string{
				"grocery", "groceries", "supermarket", "bigbasket", "kirana", "mart",
			}},
			{Name: "fuel", Category: models.CategoryFuel, Keywords: []string{
				"fuel", "petrol", "diesel", "gas station", "hpcl", "bpcl", "iocl",
			}},
			{Name: "loan-emi", Category: models.CategoryLoan, Keywords: []string{
				"loan", "emi ", " emi", "instalment", "installment",
			}},
			{Name: "insurance", Category: models.CategoryInsurance, Keywords: []string{
				"insurance", "premium", "policy", "lic",
			}},
			{Name: "shopping", Category: models.CategoryShopping, Keywords: []string{
				"amazon", "flipkart", "myntra", "shopping", "store", "mall",
			}},
			{Name: "food-delivery", Category: models.CategoryFood, Keywords: []string{
				"swiggy", "zomato", "restaurant", "cafe", "food", "dining", "pizza",
			}},
			{Name: "interest", Category: models.CategoryInterest, Keywords: []string{
				"interest", "int cr", "int.cr",
			}},
			{Name: "refund-reversal", Category: models.CategoryRefund, Keywords: []string{
				"refund", "reversal", "cashback", "chargeback",
			}},
			{Name: "transfer", Category: models.CategoryTransfer, Keywords: []string{
				"neft", "imps", "rtgs", "transfer", "fund trf", "trf to", "trf from",
			}},
		},
		PaymentKeywords: []string{
			"payment", "upi", "pos", "debit card", "bill pay",
		},
		DebitKeywords: []string{
			"debit", "dr ", " dr", "withdrawal", "withdrawn", "purchase",
			"payment", "transfer to", "sent", "paid", "fee", "charge",
			"emi ", " emi", "pos ", "atm",
		},
		CreditKeywords: []string{
			"credit", "cr ", " cr", "deposit", "received", "refund",
			"reversal", "credited", "transfer from",
		},
		CreditFallbackKeywords: []string{
			"refund", "reversal", "interest", "salary", "credited",
		},
		TrailingMarkers: []string{
			"debit", "credit", "dr", "cr", "dr.", "cr.",
		},
	}
}

// containsAny reports whether any keyword appears in the lowercased text.
func containsAny(lower string, keywords []string) bool {
	for _, kw := range keywords {
		if strings.Contains(lower, kw) {
			return true
		}
	}
	return false
}
