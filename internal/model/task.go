package model

import (
	"image"
	"time"
)

// SearchTask is the single live search: the query, its lifecycle and the result set
type SearchTask struct {
	ID         string
	Query      IngredientQuery
	Status     TaskStatus
	Results    []RecipeSummary
	Thumbnails map[int]image.Image // keyed by recipe ID; missing entry means no image
	Err        error
	StartedAt  time.Time
	FinishedAt time.Time
}

// DetailTask is a single "get information" request for one recipe
type DetailTask struct {
	ID         string
	RecipeID   int
	Status     TaskStatus
	Detail     RecipeDetail
	Thumbnail  image.Image // nil when the image is missing or could not be fetched
	Err        error
	StartedAt  time.Time
	FinishedAt time.Time
}

// Thumbnail returns the prefetched card image for a recipe, if any
func (st *SearchTask) Thumbnail(recipeID int) (image.Image, bool) {
	if st.Thumbnails == nil {
		return nil, false
	}
	img, ok := st.Thumbnails[recipeID]
	return img, ok && img != nil
}

// Duration returns how long the task took, or zero while it is still running
func (st *SearchTask) Duration() time.Duration {
	if st.FinishedAt.IsZero() {
		return 0
	}
	return st.FinishedAt.Sub(st.StartedAt)
}
