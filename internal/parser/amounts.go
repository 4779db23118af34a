package parser

import (
	"math"
	"regexp"
	"strconv"
	"strings"
)

// amountTokenPattern matches currency-like tokens: optional currency marker,
// optional sign or enclosing parentheses (statement convention for
// negatives), digit groups with optional thousands separators and an
// optional 1-2 digit decimal fraction.
var amountTokenPattern = regexp.MustCompile(
	`\(?\s*[-+]?\s*(?:Rs\.?|INR|USD|GBP|EUR|[₹$£€])?\s*[-+]?\d[\d,]*(?:\.\d{1,2})?\)?`)

var amountStripper = strings.NewReplacer(
	"Rs.", "", "Rs", "", "INR", "", "USD", "", "GBP", "", "EUR", "",
	"₹", "", "$", "", "£", "", "€", "",
	",", "", "(", "", ")", "", " ", "",
)

// amountCandidate is one currency-like token found on a line, with its
// position and the sign markers attached to it.
type amountCandidate struct {
	raw        string
	start, end int
	negative   bool // enclosed in parentheses or carries a leading minus
	positive   bool // carries a leading plus
}

// findAmountCandidates scans a line for amount tokens, excluding anything
// overlapping the already-matched date token span [dateStart, dateEnd).
//
// A token is accepted only when it has at least 2 digits AND (a decimal
// fraction OR a thousands separator OR at most 8 digits total). The 8-digit
// cutoff filters long account and reference numbers; shorter unformatted
// numbers can still slip through, which is a known heuristic limit.
func findAmountCandidates(line string, dateStart, dateEnd int) []amountCandidate {
	var out []amountCandidate
	for _, loc := range amountTokenPattern.FindAllStringIndex(line, -1) {
		start, end := loc[0], loc[1]
		// The pattern admits interior whitespace, which lets a match open on
		// a space. Shrink to the visible token.
		for start < end && line[start] == ' ' {
			start++
		}
		for end > start && line[end-1] == ' ' {
			end--
		}
		if start == end {
			continue
		}
		if start < dateEnd && end > dateStart {
			continue
		}
		// Reject fragments of larger tokens the pattern cannot see whole:
		// date components ("12" in 12/01/2024 elsewhere on the line) and
		// numbers with over-long fractions.
		if start > 0 && isTokenGlue(line[start-1]) {
			continue
		}
		if end < len(line) && isTokenGlue(line[end]) {
			continue
		}
		raw := line[start:end]
		if !acceptAmountToken(raw) {
			continue
		}
		out = append(out, amountCandidate{
			raw:      raw,
			start:    start,
			end:      end,
			negative: strings.Contains(raw, "(") || strings.Contains(raw, "-"),
			positive: strings.Contains(raw, "+"),
		})
	}
	return out
}

func isTokenGlue(b byte) bool {
	return b == '/' || b == '.' || (b >= '0' && b <= '9')
}

func acceptAmountToken(raw string) bool {
	digits := 0
	for _, r := range raw {
		if r >= '0' && r <= '9' {
			digits++
		}
	}
	if digits < 2 {
		return false
	}
	hasDecimal := decimalFraction.MatchString(raw)
	hasSeparator := strings.Contains(raw, ",")
	return hasDecimal || hasSeparator || digits <= 8
}

var decimalFraction = regexp.MustCompile(`\.\d{1,2}\)?$`)

// parseAmountValue converts a candidate token to its signed numeric value.
// Currency markers, separators and enclosing punctuation are stripped;
// parentheses negate. A non-finite result is an error.
func parseAmountValue(c amountCandidate) (float64, error) {
	s := amountStripper.Replace(c.raw)
	v, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0, err
	}
	if math.IsInf(v, 0) || math.IsNaN(v) {
		return 0, strconv.ErrRange
	}
	if c.negative && v > 0 {
		v = -v
	}
	return v, nil
}
