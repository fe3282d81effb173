package domain

import (
	"regexp"
	"strings"
	"unicode"
)

var (
	itemCodePattern     = regexp.MustCompile(`^[A-Z]{3}-[A-Za-z0-9]+(?:[-xX][A-Za-z0-9]+)*$`)
	alphanumericPattern = regexp.MustCompile(`^[A-Za-z0-9]+$`)
)

// NormalizeField prepares a code field for storage and comparison:
//   - trims leading/trailing whitespace
//   - collapses every whitespace run into a single space
//   - converts to uppercase
func NormalizeField(s string) string {
	s = strings.TrimSpace(s)
	if s == "" {
		return ""
	}

	var b strings.Builder
	b.Grow(len(s))
	prevSpace := false
	for _, r := range s {
		if unicode.IsSpace(r) {
			if prevSpace {
				continue
			}
			prevSpace = true
			b.WriteRune(' ')
			continue
		}
		prevSpace = false
		b.WriteRune(r)
	}
	return strings.ToUpper(b.String())
}

// NormalizeItemCode trims the code and uppercases only its three-letter
// prefix. The suffix keeps its case so codes like "YPP-48x45" survive.
// Codes shorter than three characters are returned trimmed and fail
// ValidItemCode later.
func NormalizeItemCode(s string) string {
	s = strings.TrimSpace(s)
	runes := []rune(s)
	if len(runes) < 3 {
		return s
	}
	return strings.ToUpper(string(runes[:3])) + string(runes[3:])
}

// ValidItemCode reports whether s is a normalized item code: three uppercase
// letters, a hyphen, then alphanumeric segments separated by '-', 'x' or 'X'.
func ValidItemCode(s string) bool {
	return itemCodePattern.MatchString(s)
}

// ValidAlternateID reports whether s contains only ASCII letters and digits.
func ValidAlternateID(s string) bool {
	return alphanumericPattern.MatchString(s)
}

// SameItemCode compares item codes the way the catalog does: case-insensitively.
func SameItemCode(a, b string) bool {
	return strings.EqualFold(strings.TrimSpace(a), strings.TrimSpace(b))
}
