package search

import (
	"context"
	"fmt"
	"log"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/ytget/recipe-finder/internal/model"
	"github.com/ytget/recipe-finder/internal/spoonacular"
	"github.com/ytget/recipe-finder/internal/thumbnail"
)

// Task ID prefixes
const (
	SearchTaskPrefix = "search-"
	DetailTaskPrefix = "detail-"
)

// Service runs searches and detail lookups in background goroutines
type Service struct {
	mu       sync.RWMutex
	finder   spoonacular.Finder
	images   ImageFetcher
	current  *model.SearchTask
	onUpdate func(*model.SearchTask) // callback for UI updates
	onDetail func(*model.DetailTask)
	wg       sync.WaitGroup
}

// Ensure Service implements the interface.
var _ Searcher = (*Service)(nil)

// NewService creates a new search service. A nil images uses a default thumbnail.Fetcher.
func NewService(finder spoonacular.Finder, images ImageFetcher) *Service {
	if images == nil {
		images = thumbnail.NewFetcher(nil, thumbnail.DefaultParallelism)
	}
	return &Service{
		finder: finder,
		images: images,
	}
}

// SetUpdateCallback sets the callback function for search updates
func (s *Service) SetUpdateCallback(callback func(*model.SearchTask)) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.onUpdate = callback
}

// SetDetailCallback sets the callback function for detail updates
func (s *Service) SetDetailCallback(callback func(*model.DetailTask)) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.onDetail = callback
}

// SetFinder swaps the provider client used by later requests
func (s *Service) SetFinder(finder spoonacular.Finder) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.finder = finder
}

// Submit starts a new search and makes it the current one
func (s *Service) Submit(query model.IngredientQuery) *model.SearchTask {
	task := &model.SearchTask{
		ID:        generateTaskID(SearchTaskPrefix),
		Query:     query,
		Status:    model.TaskStatusPending,
		StartedAt: time.Now(),
	}

	s.mu.Lock()
	if s.current != nil && s.current.Status.IsActive() {
		log.Printf("Search %s superseded by %s", s.current.ID, task.ID)
	}
	s.current = task
	finder := s.finder
	s.mu.Unlock()

	s.wg.Add(1)
	go s.runSearch(task, finder)

	return task
}

// Current returns the latest submitted search
func (s *Service) Current() (*model.SearchTask, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.current, s.current != nil
}

// RequestDetails starts a detail lookup. Detail lookups never supersede each other.
func (s *Service) RequestDetails(recipeID int) *model.DetailTask {
	task := &model.DetailTask{
		ID:        generateTaskID(DetailTaskPrefix),
		RecipeID:  recipeID,
		Status:    model.TaskStatusPending,
		StartedAt: time.Now(),
	}

	s.mu.RLock()
	finder := s.finder
	s.mu.RUnlock()

	s.wg.Add(1)
	go s.runDetails(task, finder)

	return task
}

// Wait blocks until all background requests have finished
func (s *Service) Wait() {
	s.wg.Wait()
}

// runSearch performs the search, prefetches thumbnails and publishes the result
func (s *Service) runSearch(task *model.SearchTask, finder spoonacular.Finder) {
	defer s.wg.Done()

	s.setSearchStatus(task, model.TaskStatusLoading)

	ctx := context.Background()
	results, err := s.search(ctx, finder, task.Query)
	if err == nil && s.isCurrent(task) {
		task.Thumbnails = s.images.FetchAll(ctx, thumbnailURLs(results), thumbnail.CardSize)
	}

	s.mu.Lock()
	task.FinishedAt = time.Now()
	if s.current != task {
		task.Status = model.TaskStatusSuperseded
		s.mu.Unlock()
		log.Printf("Dropping results of superseded search %s", task.ID)
		return
	}
	if err != nil {
		task.Status = model.TaskStatusError
		task.Err = err
	} else {
		task.Status = model.TaskStatusCompleted
		task.Results = results
	}
	callback := s.onUpdate
	s.mu.Unlock()

	log.Printf("Search %s finished: status=%s recipes=%d duration=%v", task.ID, task.Status, len(task.Results), task.Duration())

	if callback != nil {
		callback(task)
	}
}

func (s *Service) search(ctx context.Context, finder spoonacular.Finder, query model.IngredientQuery) ([]model.RecipeSummary, error) {
	if finder == nil {
		return nil, fmt.Errorf("recipe provider is not configured")
	}
	return finder.Search(ctx, query)
}

// runDetails fetches recipe information plus the larger thumbnail
func (s *Service) runDetails(task *model.DetailTask, finder spoonacular.Finder) {
	defer s.wg.Done()

	s.mu.Lock()
	task.Status = model.TaskStatusLoading
	s.mu.Unlock()

	ctx := context.Background()
	var detail model.RecipeDetail
	var err error
	if finder == nil {
		err = fmt.Errorf("recipe provider is not configured")
	} else {
		detail, err = finder.GetDetails(ctx, task.RecipeID)
	}

	if err == nil {
		if img, ok := s.images.Fetch(ctx, detail.ImageURL, thumbnail.PopupSize); ok {
			task.Thumbnail = img
		}
	}

	s.mu.Lock()
	task.FinishedAt = time.Now()
	if err != nil {
		task.Status = model.TaskStatusError
		task.Err = err
	} else {
		task.Status = model.TaskStatusCompleted
		task.Detail = detail
	}
	callback := s.onDetail
	s.mu.Unlock()

	log.Printf("Detail %s for recipe %d finished: status=%s", task.ID, task.RecipeID, task.Status)

	if callback != nil {
		callback(task)
	}
}

func (s *Service) setSearchStatus(task *model.SearchTask, status model.TaskStatus) {
	s.mu.Lock()
	defer s.mu.Unlock()
	task.Status = status
}

func (s *Service) isCurrent(task *model.SearchTask) bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.current == task
}

// thumbnailURLs collects the image URLs of recipes that have one
func thumbnailURLs(results []model.RecipeSummary) map[int]string {
	urls := make(map[int]string, len(results))
	for _, r := range results {
		if r.HasImage() {
			urls[r.ID] = r.ImageURL
		}
	}
	return urls
}

// generateTaskID generates a unique task ID
func generateTaskID(prefix string) string {
	return prefix + uuid.NewString()
}
