package parser

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"
)

// Date token shapes found in extracted statement text. The scanner isolates
// a token with dateTokenPattern; normalizeDate then tries the three shapes
// in order.
var (
	// 2024-03-05, 2024/3/5, 2024.03.05
	dateYearFirst = regexp.MustCompile(`^(\d{4})[-/.](\d{1,2})[-/.](\d{1,2})$`)
	// 12/01/2024, 12-1-24, 12.01.2024
	dateDayFirst = regexp.MustCompile(`^(\d{1,2})[-/.](\d{1,2})[-/.](\d{4}|\d{2})$`)
	// 15 Jan 2024, 3 September, 2023, 15 Jan. 24
	dateMonthName = regexp.MustCompile(`^(\d{1,2})\s+([A-Za-z]+)\.?,?\s+(\d{4}|\d{2})$`)

	dateTokenPattern = regexp.MustCompile(
		`\b(?:\d{4}[-/.]\d{1,2}[-/.]\d{1,2}` +
			`|\d{1,2}[-/.]\d{1,2}[-/.](?:\d{4}|\d{2})` +
			`|\d{1,2}\s+(?i:Jan|Feb|Mar|Apr|May|Jun|Jul|Aug|Sep|Oct|Nov|Dec)[A-Za-z]*\.?,?\s+(?:\d{4}|\d{2}))\b`)
)

var monthNames = []string{
	"january", "february", "march", "april", "may", "june",
	"july", "august", "september", "october", "november", "december",
}

// findDateToken returns the first date-shaped token in the line together
// with its byte offsets. ok is false when the line carries no date.
func findDateToken(line string) (token string, start, end int, ok bool) {
	loc := dateTokenPattern.FindStringIndex(line)
	if loc == nil {
		return "", 0, 0, false
	}
	return line[loc[0]:loc[1]], loc[0], loc[1], true
}

// normalizeDate converts a matched date token to canonical YYYY-MM-DD.
// Only range checks are applied (month 1-12, day 1-31); there is no
// calendar-day-count validation, so Feb 30 passes.
func normalizeDate(token string) (string, bool) {
	token = strings.TrimSpace(token)

	if m := dateYearFirst.FindStringSubmatch(token); m != nil {
		year, _ := strconv.Atoi(m[1])
		month, _ := strconv.Atoi(m[2])
		day, _ := strconv.Atoi(m[3])
		return formatDate(year, month, day)
	}

	if m := dateDayFirst.FindStringSubmatch(token); m != nil {
		day, _ := strconv.Atoi(m[1])
		month, _ := strconv.Atoi(m[2])
		year, _ := strconv.Atoi(m[3])
		if len(m[3]) == 2 {
			year += 2000
		}
		return formatDate(year, month, day)
	}

	if m := dateMonthName.FindStringSubmatch(token); m != nil {
		day, _ := strconv.Atoi(m[1])
		month, ok := lookupMonth(m[2])
		if !ok {
			return "", false
		}
		year, _ := strconv.Atoi(m[3])
		if len(m[3]) == 2 {
			year += 2000
		}
		return formatDate(year, month, day)
	}

	return "", false
}

// lookupMonth matches a month name or abbreviation (3+ letters,
// case-insensitive) against the fixed name table.
func lookupMonth(name string) (int, bool) {
	lower := strings.ToLower(strings.TrimRight(name, ".,"))
	if len(lower) < 3 {
		return 0, false
	}
	for i, m := range monthNames {
		if strings.HasPrefix(m, lower) {
			return i + 1, true
		}
	}
	return 0, false
}

func formatDate(year, month, day int) (string, bool) {
	if month < 1 || month > 12 || day < 1 || day > 31 {
		return "", false
	}
	return fmt.Sprintf("%04d-%02d-%02d", year, month, day), true
}
