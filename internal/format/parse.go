package format

import (
	"strconv"
	"strings"
	"unicode"
)

// LeadingInt reads an optionally signed decimal integer from the start of raw,
// after any leading whitespace. Trailing characters are ignored, so "12px"
// yields 12. Integers wider than 64 bits come back as the nearest float64.
// It fails when no digit is found or the value exceeds the float64 range.
func LeadingInt(raw string) (float64, bool) {
	s := strings.TrimLeftFunc(raw, unicode.IsSpace)

	end := 0
	if end < len(s) && (s[end] == '+' || s[end] == '-') {
		end++
	}
	digitsStart := end
	for end < len(s) && s[end] >= '0' && s[end] <= '9' {
		end++
	}
	if end == digitsStart {
		return 0, false
	}

	n, err := strconv.ParseFloat(s[:end], 64)
	if err != nil {
		return 0, false
	}
	return n, true
}

// Precision parses a requested number of fraction digits. Anything outside
// 0 to MaxPrecision, or unparseable, means 0.
func Precision(raw string) int {
	n, ok := LeadingInt(raw)
	if !ok || n < 0 || n > MaxPrecision {
		return 0
	}
	return int(n)
}
