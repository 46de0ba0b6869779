package grocery

import (
	"regexp"
	"strings"
)

// Cleaning is a heuristic for the common "quantity + unit + descriptor + noun"
// shape of recipe ingredient lines. Inputs outside that shape may over- or
// under-strip; that is accepted noise, not an error.
var (
	// Leading quantity: an integer, an optional fraction, an optional unit token.
	quantityRe = regexp.MustCompile(`(?i)^\d+(\.\d+)?\s*(\d+/\d+)?\s*` +
		`(cups?|tablespoons?|teaspoons?|tbsp|tsp|oz|ounces?|pounds?|lbs?|lb|` +
		`cloves?|slices?|pieces?|large|medium|small|whole|can|jar|package|bunch|` +
		`head|stalk|sprig|pinch|dash)?\s*`)

	trailingClauseRe = regexp.MustCompile(`,.*$`)
	parentheticalRe  = regexp.MustCompile(`\([^)]*\)`)
	descriptorRe     = regexp.MustCompile(`(?i)\b(fresh|dried|chopped|diced|sliced|minced|crushed|ground|whole|organic|raw|cooked)\b`)
	whitespaceRe     = regexp.MustCompile(`\s+`)
)

// Clean normalizes a raw ingredient line into a shopping-list name: the
// leading quantity expression, trailing clauses after a comma, parenthetical
// notes and free-standing descriptive words are stripped, and whitespace is
// collapsed.
func Clean(ingredient string) string {
	s := quantityRe.ReplaceAllString(ingredient, "")
	s = trailingClauseRe.ReplaceAllString(s, "")
	s = parentheticalRe.ReplaceAllString(s, "")
	s = descriptorRe.ReplaceAllString(s, "")
	s = whitespaceRe.ReplaceAllString(s, " ")
	return strings.TrimSpace(s)
}
