package model

import (
	"errors"
	"strings"
)

// ErrEmptyInput is returned when the raw ingredient text contains no ingredients
var ErrEmptyInput = errors.New("no ingredients entered")

// RankingMode selects how the provider orders candidate recipes
type RankingMode int

const (
	// RankMaximizeUsed prefers recipes that use as many of the given ingredients as possible
	RankMaximizeUsed RankingMode = 1

	// RankMinimizeMissing prefers recipes that need as few extra ingredients as possible
	RankMinimizeMissing RankingMode = 2
)

// Query defaults applied by NormalizeQuery
const (
	DefaultResultLimit  = 10
	DefaultRanking      = RankMaximizeUsed
	DefaultIgnorePantry = true

	IngredientSeparator = ","
)

// IngredientQuery is a validated "find by ingredients" request
type IngredientQuery struct {
	Ingredients  []string
	ResultLimit  int
	Ranking      RankingMode
	IgnorePantry bool
}

// NormalizeQuery splits raw text on commas, trims every token and drops empty ones.
// It returns ErrEmptyInput when nothing is left.
func NormalizeQuery(raw string) (IngredientQuery, error) {
	var ingredients []string
	for _, token := range strings.Split(raw, IngredientSeparator) {
		token = strings.TrimSpace(token)
		if token == "" {
			continue
		}
		ingredients = append(ingredients, token)
	}

	if len(ingredients) == 0 {
		return IngredientQuery{}, ErrEmptyInput
	}

	return IngredientQuery{
		Ingredients:  ingredients,
		ResultLimit:  DefaultResultLimit,
		Ranking:      DefaultRanking,
		IgnorePantry: DefaultIgnorePantry,
	}, nil
}

// Joined returns the ingredient list in wire form ("a,b,c")
func (q IngredientQuery) Joined() string {
	return strings.Join(q.Ingredients, IngredientSeparator)
}
