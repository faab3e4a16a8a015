package model

import (
	"fmt"
	"strings"
)

// Display defaults used when the provider omits a field
const (
	DefaultRecipeTitle  = "Unnamed Recipe"
	DefaultDetailTitle  = "Recipe Details"
	DefaultSummaryText  = "No description."
	IngredientListJoint = ", "
)

// RecipeSummary is one entry of a "find by ingredients" response
type RecipeSummary struct {
	ID                 int
	Title              string
	ImageURL           string // empty when the provider sent no image
	UsedIngredients    []string
	MissingIngredients []string
}

// RecipeDetail is the extended information for a single recipe
type RecipeDetail struct {
	ID          int
	Title       string
	ImageURL    string
	SummaryHTML string // already passed through summary sanitization
	SourceURL   string // empty when the provider sent no source link
}

// HasImage reports whether the summary carries an image URL
func (r RecipeSummary) HasImage() bool {
	return r.ImageURL != ""
}

// IngredientsText formats the used/missing ingredient block shown on a card.
// The used line is always present, the missing line only when something is missing.
func (r RecipeSummary) IngredientsText(usedPrefix, missingPrefix string) string {
	var b strings.Builder
	b.WriteString(fmt.Sprintf("%s %s", usedPrefix, strings.Join(r.UsedIngredients, IngredientListJoint)))
	if len(r.MissingIngredients) > 0 {
		b.WriteString("\n")
		b.WriteString(fmt.Sprintf("%s %s", missingPrefix, strings.Join(r.MissingIngredients, IngredientListJoint)))
	}
	return b.String()
}

// HasSource reports whether the detail links to an external recipe page
func (d RecipeDetail) HasSource() bool {
	return d.SourceURL != ""
}
