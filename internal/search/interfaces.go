package search

import (
	"context"
	"image"

	"github.com/ytget/recipe-finder/internal/model"
	"github.com/ytget/recipe-finder/internal/spoonacular"
)

// Searcher defines the interface for the search service.
type Searcher interface {
	SetUpdateCallback(func(*model.SearchTask))
	SetDetailCallback(func(*model.DetailTask))

	// Submit starts a search; any earlier search still in flight is superseded
	Submit(query model.IngredientQuery) *model.SearchTask

	// Current returns the latest submitted search
	Current() (*model.SearchTask, bool)

	// RequestDetails starts a detail lookup for one recipe
	RequestDetails(recipeID int) *model.DetailTask

	// SetFinder swaps the provider client, e.g. after settings changed
	SetFinder(finder spoonacular.Finder)
}

// ImageFetcher is the best-effort image source used for thumbnails.
type ImageFetcher interface {
	Fetch(ctx context.Context, url string, size int) (image.Image, bool)
	FetchAll(ctx context.Context, urls map[int]string, size int) map[int]image.Image
}
