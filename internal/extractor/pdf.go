// Package extractor turns statement PDFs into plain text for the parser.
// It sits outside the parsing core: the parser only ever sees extracted,
// normalized text.
package extractor

import (
	"errors"
	"fmt"
	"math"
	"os"
	"sort"
	"strings"
	"unicode"

	"github.com/ledongthuc/pdf"
)

// ErrPasswordRequired signals an encrypted PDF that needs (a different)
// password. Callers surface this to the user instead of treating it as a
// parse failure.
var ErrPasswordRequired = errors.New("pdf is password protected")

// ErrUnreadable signals a PDF whose text could not be decoded into
// readable content (image-based scans, custom font encodings).
var ErrUnreadable = errors.New("no readable text could be extracted from pdf")

// ExtractText reads a PDF file and returns its text content, pages joined
// by newlines. Multiple extraction methods are tried in order of layout
// fidelity; whatever first produces readable text wins.
func ExtractText(filePath, password string) (string, error) {
	r, closer, err := openReader(filePath, password)
	if err != nil {
		return "", err
	}
	defer closer()

	numPages := r.NumPage()
	if numPages == 0 {
		return "", fmt.Errorf("pdf has no pages")
	}

	for _, method := range []func(*pdf.Reader, int) []string{extractByRow, extractByContent, extractByPlainText} {
		pages := safeExtract(method, r, numPages)
		if isReadableText(pages) {
			return strings.Join(pages, "\n"), nil
		}
	}
	return "", ErrUnreadable
}

func openReader(filePath, password string) (*pdf.Reader, func() error, error) {
	if password == "" {
		f, r, err := pdf.Open(filePath)
		if err != nil {
			return nil, nil, classifyOpenError(err)
		}
		return r, f.Close, nil
	}

	f, err := os.Open(filePath)
	if err != nil {
		return nil, nil, err
	}
	info, err := f.Stat()
	if err != nil {
		f.Close()
		return nil, nil, err
	}
	r, err := pdf.NewReaderEncrypted(f, info.Size(), func() string { return password })
	if err != nil {
		f.Close()
		return nil, nil, classifyOpenError(err)
	}
	return r, f.Close, nil
}

func classifyOpenError(err error) error {
	msg := strings.ToLower(err.Error())
	if strings.Contains(msg, "password") || strings.Contains(msg, "encrypted") {
		return ErrPasswordRequired
	}
	return fmt.Errorf("opening pdf: %w", err)
}

// safeExtract shields against panics inside the PDF library; a crashed
// method simply yields no pages and the next method is tried.
func safeExtract(method func(*pdf.Reader, int) []string, r *pdf.Reader, numPages int) (pages []string) {
	defer func() {
		if rec := recover(); rec != nil {
			pages = nil
		}
	}()
	return method(r, numPages)
}

// extractByRow uses GetTextByRow, which preserves table layout best.
func extractByRow(r *pdf.Reader, numPages int) []string {
	var pages []string
	for i := 1; i <= numPages; i++ {
		page := r.Page(i)
		if page.V.IsNull() {
			continue
		}
		rows, err := page.GetTextByRow()
		if err != nil {
			continue
		}
		var lines []string
		for _, row := range rows {
			var parts []string
			for _, word := range row.Content {
				parts = append(parts, word.S)
			}
			line := strings.TrimSpace(strings.Join(parts, " "))
			if line != "" {
				lines = append(lines, line)
			}
		}
		pages = append(pages, strings.Join(lines, "\n"))
	}
	return pages
}

// extractByContent reconstructs rows from raw text objects by grouping on
// the Y coordinate and ordering by X.
func extractByContent(r *pdf.Reader, numPages int) []string {
	var pages []string
	for i := 1; i <= numPages; i++ {
		page := r.Page(i)
		if page.V.IsNull() {
			continue
		}
		content := page.Content()
		if len(content.Text) == 0 {
			continue
		}

		type textItem struct {
			x float64
			s string
		}
		rowMap := make(map[int][]textItem)
		for _, t := range content.Text {
			if strings.TrimSpace(t.S) == "" {
				continue
			}
			yKey := int(math.Round(t.Y))
			rowMap[yKey] = append(rowMap[yKey], textItem{x: t.X, s: t.S})
		}

		yKeys := make([]int, 0, len(rowMap))
		for y := range rowMap {
			yKeys = append(yKeys, y)
		}
		// PDF Y runs bottom-to-top.
		sort.Sort(sort.Reverse(sort.IntSlice(yKeys)))

		var lines []string
		for _, y := range yKeys {
			items := rowMap[y]
			sort.Slice(items, func(a, b int) bool { return items[a].x < items[b].x })

			var parts []string
			var prevX float64
			for j, item := range items {
				if j > 0 && item.x-prevX > 15 {
					// Column gap.
					parts = append(parts, "  ")
				}
				parts = append(parts, item.s)
				prevX = item.x
			}
			line := strings.TrimSpace(strings.Join(parts, ""))
			if line != "" {
				lines = append(lines, line)
			}
		}
		pages = append(pages, strings.Join(lines, "\n"))
	}
	return pages
}

// extractByPlainText is the lowest-fidelity fallback.
func extractByPlainText(r *pdf.Reader, numPages int) []string {
	var pages []string
	for i := 1; i <= numPages; i++ {
		page := r.Page(i)
		if page.V.IsNull() {
			continue
		}
		fontNames := page.Fonts()
		fonts := make(map[string]*pdf.Font)
		for _, name := range fontNames {
			f := page.Font(name)
			fonts[name] = &f
		}
		text, err := page.GetPlainText(fonts)
		if err != nil {
			continue
		}
		text = strings.TrimSpace(text)
		if text != "" {
			pages = append(pages, text)
		}
	}
	return pages
}

// commonWords appear in virtually every bank statement; extracted text
// containing none of them is almost certainly garbage from an undecodable
// font.
var commonWords = []string{
	"bank", "account", "balance", "date", "payment", "statement",
	"total", "amount", "credit", "debit", "transaction",
	"opening", "closing", "transfer", "withdrawal", "deposit",
}

// isReadableText gates extraction output: enough text, mostly readable
// ASCII, and at least one recognizable statement word.
func isReadableText(pages []string) bool {
	total := 0
	for _, p := range pages {
		total += len(strings.TrimSpace(p))
	}
	if total <= 50 {
		return false
	}
	if textQuality(pages) <= 0.6 {
		return false
	}
	combined := strings.ToLower(strings.Join(pages, " "))
	for _, word := range commonWords {
		if strings.Contains(combined, word) {
			return true
		}
	}
	return false
}

// textQuality returns the ratio of plainly readable characters to total.
// Strict ASCII on purpose: unicode.IsLetter matches the accented garbage
// that identity-encoded fonts produce.
func textQuality(pages []string) float64 {
	total := 0
	readable := 0
	for _, page := range pages {
		for _, r := range page {
			total++
			if (r >= 'a' && r <= 'z') || (r >= 'A' && r <= 'Z') ||
				(r >= '0' && r <= '9') || unicode.IsSpace(r) ||
				strings.ContainsRune(`.,-/:;()'"%&@#!?+=*`, r) ||
				r == '£' || r == '$' || r == '€' || r == '₹' {
				readable++
			}
		}
	}
	if total == 0 {
		return 0
	}
	return float64(readable) / float64(total)
}
