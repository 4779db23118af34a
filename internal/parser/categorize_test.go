package parser

import (
	"testing"

	"github.com/ledgerlens/statement-insights/internal/models"
)

func TestCategorize(t *testing.T) {
	cfg := DefaultConfig()

	tests := []struct {
		description string
		expected    string
	}{
		{"SALARY JULY ACME CORP", models.CategorySalary},
		{"HOUSE RENT TRANSFER", models.CategoryRent},
		{"ATM CASH 2500", models.CategoryATM},
		{"ELECTRICITY BOARD", models.CategoryUtilities},
		{"BIGBASKET ORDER", models.CategoryGroceries},
		{"PETROL PUMP", models.CategoryFuel},
		{"HOME LOAN EMI", models.CategoryLoan},
		{"LIC PREMIUM", models.CategoryInsurance},
		{"AMAZON ORDER", models.CategoryShopping},
		{"SWIGGY ORDER", models.CategoryFood},
		{"QUARTERLY INTEREST", models.CategoryInterest},
		{"MERCHANT REFUND", models.CategoryRefund},
		{"NEFT TO JOHN", models.CategoryTransfer},
		{"UPI JOHN DOE", models.CategoryUtilities}, // generic payment instruction
		{"XYZZY", models.CategoryOther},
	}

	for _, tt := range tests {
		t.Run(tt.description, func(t *testing.T) {
			got := categorize(cfg, tt.description, tt.description)
			if got != tt.expected {
				t.Errorf("categorize(%q): got %q, want %q", tt.description, got, tt.expected)
			}
		})
	}
}

func TestCategorizeRuleOrder(t *testing.T) {
	cfg := DefaultConfig()

	// "RENT" appears before the transfer vocabulary in the rule list, so a
	// rent paid by bank transfer stays rent.
	if got := categorize(cfg, "RENT NEFT TRANSFER", ""); got != models.CategoryRent {
		t.Errorf("got %q, want %q", got, models.CategoryRent)
	}
	// Salary outranks everything.
	if got := categorize(cfg, "SALARY TRANSFER NEFT", ""); got != models.CategorySalary {
		t.Errorf("got %q, want %q", got, models.CategorySalary)
	}
}

func TestCategorizeEmptyDescriptionFallsBackToLine(t *testing.T) {
	cfg := DefaultConfig()

	got := categorize(cfg, "", "01/01/2024 SWIGGY 450.00")
	if got != models.CategoryFood {
		t.Errorf("got %q, want %q", got, models.CategoryFood)
	}
}

func TestCategorizeDeterministic(t *testing.T) {
	cfg := DefaultConfig()

	for i := 0; i < 3; i++ {
		if got := categorize(cfg, "HOME LOAN EMI", ""); got != models.CategoryLoan {
			t.Fatalf("run %d: got %q, want %q", i, got, models.CategoryLoan)
		}
	}
}

func TestCategorizeCustomRules(t *testing.T) {
	cfg := DefaultConfig()
	cfg.CategoryRules = []CategoryRule{
		{Name: "coffee", Category: models.CategoryFood, Keywords: []string{"espresso"}},
	}

	if got := categorize(cfg, "DOUBLE ESPRESSO", ""); got != models.CategoryFood {
		t.Errorf("custom rule: got %q, want %q", got, models.CategoryFood)
	}
	if got := categorize(cfg, "SALARY JULY", ""); got != models.CategoryOther {
		t.Errorf("default rules should be gone: got %q, want %q", got, models.CategoryOther)
	}
}
