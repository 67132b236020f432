package constants

import (
	"strings"
)

// Category classifies an invoice line item.
type Category string

const (
	Parts       Category = "Parts"
	Labor       Category = "Labor"
	Tax         Category = "Tax"
	Shipping    Category = "Shipping"
	Fees        Category = "Fees"
	Diagnostics Category = "Diagnostics"
	Other       Category = "Other"
)

var allCategories = []Category{
	Parts,
	Labor,
	Tax,
	Shipping,
	Fees,
	Diagnostics,
	Other,
}

func AsStringSlice() []string {
	result := make([]string, len(allCategories))
	for i, cat := range allCategories {
		result[i] = string(cat)
	}
	return result
}

// Canonicalize maps free-text category strings from invoice processing to a
// stable Category. The boolean reports whether the input matched; callers
// keep the submitted value when it did not.
func Canonicalize(input string) (Category, bool) {
	if input == "" {
		return Other, false
	}

	normalized := strings.ToLower(strings.TrimSpace(input))

	// synonyms map
	synonyms := map[string]Category{
		"part":              Parts,
		"parts & materials": Parts,
		"materials":         Parts,
		"labour":            Labor,
		"labor hours":       Labor,
		"shop labor":        Labor,
		"sales tax":         Tax,
		"freight":           Shipping,
		"shop supplies":     Fees,
		"disposal fee":      Fees,
		"environmental":     Fees,
		"diagnostic":        Diagnostics,
		"inspection":        Diagnostics,
		"misc":              Other,
	}

	if cat, ok := synonyms[normalized]; ok {
		return cat, true
	}

	// check if it matches any category string
	for _, cat := range allCategories {
		if normalized == strings.ToLower(string(cat)) {
			return cat, true
		}
	}

	return Other, false
}
