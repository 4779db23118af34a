package extractor

import (
	"strings"
	"testing"
)

func TestIsReadableText(t *testing.T) {
	tests := []struct {
		name     string
		pages    []string
		expected bool
	}{
		{
			"real statement text",
			[]string{"ACME BANK\nAccount Statement\n12/01/2024 SALARY CREDIT 50,000.00\nClosing balance 52,000.00"},
			true,
		},
		{
			"too short",
			[]string{"bank"},
			false,
		},
		{
			"binary garbage",
			[]string{strings.Repeat("Ã¿â¢", 100)},
			false,
		},
		{
			"readable but no statement words",
			[]string{strings.Repeat("lorem ipsum dolor sit amet ", 10)},
			false,
		},
		{
			"empty",
			nil,
			false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := isReadableText(tt.pages); got != tt.expected {
				t.Errorf("got %v, want %v", got, tt.expected)
			}
		})
	}
}

func TestTextQuality(t *testing.T) {
	if q := textQuality([]string{"plain ascii text 123"}); q != 1.0 {
		t.Errorf("clean text quality: got %f, want 1.0", q)
	}
	if q := textQuality(nil); q != 0 {
		t.Errorf("empty quality: got %f, want 0", q)
	}
	garbage := strings.Repeat("☃☄★", 50)
	if q := textQuality([]string{garbage}); q > 0.1 {
		t.Errorf("garbage quality: got %f, want near 0", q)
	}
}

func TestExtractText_MissingFile(t *testing.T) {
	_, err := ExtractText("does-not-exist.pdf", "")
	if err == nil {
		t.Fatal("expected error for missing file")
	}
}
