// Package budgeting is the pure calculation engine behind every report:
// category normalization, aggregation, budget comparison and insight synthesis.
// Nothing in this package performs I/O or returns errors; malformed input
// degrades to empty or zero results.
package budgeting

import (
	"strings"
	"unicode"
	"unicode/utf8"
)

// SentinelCategory is the canonical key for records and budgets with no category.
const SentinelCategory = "other"

// Normalize returns the canonical grouping key for a category label.
// Keys are trimmed and lower-cased; a blank label maps to SentinelCategory.
func Normalize(category string) string {
	key := strings.ToLower(strings.TrimSpace(category))
	if key == "" {
		return SentinelCategory
	}
	return key
}

// DisplayName returns the presentation form of a category: the normalized key
// with its first character upper-cased ("food" -> "Food").
func DisplayName(category string) string {
	key := Normalize(category)
	r, size := utf8.DecodeRuneInString(key)
	return string(unicode.ToUpper(r)) + key[size:]
}

// SameCategory reports whether two labels resolve to the same key.
func SameCategory(a, b string) bool {
	return Normalize(a) == Normalize(b)
}
