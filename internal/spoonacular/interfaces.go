package spoonacular

import (
	"context"

	"github.com/ytget/recipe-finder/internal/model"
)

// Finder defines the interface for the recipe provider client.
type Finder interface {
	// Search runs a "find by ingredients" request
	Search(ctx context.Context, query model.IngredientQuery) ([]model.RecipeSummary, error)

	// GetDetails fetches extended information for one recipe
	GetDetails(ctx context.Context, id int) (model.RecipeDetail, error)
}
