package parser

import (
	"regexp"
	"strings"
)

var wideGapPattern = regexp.MustCompile(`   +`)

// NormalizeText brings extracted document text into the shape the parser
// expects: unified line endings, tabs as spaces, per-line trailing
// whitespace stripped, and runs of three or more spaces collapsed to two.
// Collapsing to two (not one) keeps visible column gaps distinguishable
// from word spacing.
func NormalizeText(text string) string {
	text = strings.ReplaceAll(text, "\r\n", "\n")
	text = strings.ReplaceAll(text, "\r", "\n")
	text = strings.ReplaceAll(text, "\t", " ")

	lines := strings.Split(text, "\n")
	for i, line := range lines {
		line = strings.TrimRight(line, " ")
		lines[i] = wideGapPattern.ReplaceAllString(line, "  ")
	}
	return strings.Join(lines, "\n")
}
