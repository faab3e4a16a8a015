package ui

import (
	"errors"
	"fmt"
	"image"
	"testing"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/canvas"
	"fyne.io/fyne/v2/test"
	"fyne.io/fyne/v2/theme"
	"fyne.io/fyne/v2/widget"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ytget/recipe-finder/internal/config"
	"github.com/ytget/recipe-finder/internal/model"
	"github.com/ytget/recipe-finder/internal/spoonacular"
)

// fakeSearcher records requests and lets tests deliver results by hand
type fakeSearcher struct {
	submits  []*model.SearchTask
	details  []*model.DetailTask
	current  *model.SearchTask
	finder   spoonacular.Finder
	onUpdate func(*model.SearchTask)
	onDetail func(*model.DetailTask)
}

func (f *fakeSearcher) SetUpdateCallback(cb func(*model.SearchTask)) { f.onUpdate = cb }
func (f *fakeSearcher) SetDetailCallback(cb func(*model.DetailTask)) { f.onDetail = cb }
func (f *fakeSearcher) SetFinder(finder spoonacular.Finder)          { f.finder = finder }

func (f *fakeSearcher) Submit(query model.IngredientQuery) *model.SearchTask {
	task := &model.SearchTask{
		ID:     fmt.Sprintf("search-%d", len(f.submits)+1),
		Query:  query,
		Status: model.TaskStatusPending,
	}
	f.submits = append(f.submits, task)
	f.current = task
	return task
}

func (f *fakeSearcher) Current() (*model.SearchTask, bool) {
	return f.current, f.current != nil
}

func (f *fakeSearcher) RequestDetails(recipeID int) *model.DetailTask {
	task := &model.DetailTask{
		ID:       fmt.Sprintf("detail-%d", len(f.details)+1),
		RecipeID: recipeID,
		Status:   model.TaskStatusPending,
	}
	f.details = append(f.details, task)
	return task
}

func (f *fakeSearcher) complete(task *model.SearchTask, results []model.RecipeSummary) {
	task.Status = model.TaskStatusCompleted
	task.Results = results
	f.onUpdate(task)
}

func (f *fakeSearcher) fail(task *model.SearchTask, err error) {
	task.Status = model.TaskStatusError
	task.Err = err
	f.onUpdate(task)
}

type testRoot struct {
	ui       *RootUI
	app      fyne.App
	window   fyne.Window
	searcher *fakeSearcher
	opened   []string
	built    []config.APIConfig
}

func newTestRoot(t *testing.T) *testRoot {
	t.Helper()

	a := test.NewTempApp(t)
	w := a.NewWindow("test")
	tr := &testRoot{app: a, window: w, searcher: &fakeSearcher{}}

	settings := config.NewSettings(a, config.APIConfig{})
	tr.ui = NewRootUI(w, a, tr.searcher, settings, func(cfg config.APIConfig) spoonacular.Finder {
		tr.built = append(tr.built, cfg)
		return spoonacular.NewClient(cfg.APIKey, cfg.SearchEndpoint, cfg.InfoEndpoint)
	})
	tr.ui.runOnMain = func(f func()) { f() }
	tr.ui.openURL = func(u string) { tr.opened = append(tr.opened, u) }
	return tr
}

func (tr *testRoot) search(text string) {
	tr.ui.ingredientsEntry.SetText(text)
	test.Tap(tr.ui.searchBtn)
}

func testImage() image.Image {
	return image.NewRGBA(image.Rect(0, 0, 150, 150))
}

func TestRootUI_EmptyInputShowsDialog(t *testing.T) {
	tr := newTestRoot(t)

	tr.search(" , ,  ")

	assert.Empty(t, tr.searcher.submits, "no request for empty input")
	assert.NotNil(t, tr.window.Canvas().Overlays().Top(), "input required dialog expected")
	assert.Empty(t, tr.ui.results.Cards())
	assert.Empty(t, tr.ui.results.Notice())
}

func TestRootUI_SearchRendersCards(t *testing.T) {
	tr := newTestRoot(t)

	tr.search("bread, garlic ,")

	require.Len(t, tr.searcher.submits, 1)
	task := tr.searcher.submits[0]
	assert.Equal(t, []string{"bread", "garlic"}, task.Query.Ingredients)
	assert.Equal(t, "Fetching live recipes...", tr.ui.results.Notice())

	task.Thumbnails = map[int]image.Image{1: testImage()}
	tr.searcher.complete(task, []model.RecipeSummary{
		{ID: 1, Title: "Garlic Bread", ImageURL: "http://img/1.jpg", UsedIngredients: []string{"bread", "garlic"}},
		{ID: 2, Title: "Soup", UsedIngredients: []string{"garlic"}, MissingIngredients: []string{"onion"}},
	})

	cards := tr.ui.results.Cards()
	require.Len(t, cards, 2)
	assert.Empty(t, tr.ui.results.Notice())
	assert.Equal(t, "Garlic Bread", cards[0].Title())
	assert.True(t, cards[0].HasImage())
	assert.False(t, cards[1].HasImage())
	assert.Equal(t, "✅ Used: garlic\n⚠ Missing: onion", cards[1].IngredientsText())
}

func TestRootUI_EmptyResultShowsNotice(t *testing.T) {
	tr := newTestRoot(t)

	tr.search("unobtainium")
	tr.searcher.complete(tr.searcher.submits[0], []model.RecipeSummary{})

	assert.Empty(t, tr.ui.results.Cards())
	assert.Equal(t, "❌ No recipes found. Try more ingredients.", tr.ui.results.Notice())
}

func TestRootUI_StaleSearchIgnored(t *testing.T) {
	tr := newTestRoot(t)

	tr.search("bread")
	tr.search("rice")
	require.Len(t, tr.searcher.submits, 2)

	tr.searcher.complete(tr.searcher.submits[0], []model.RecipeSummary{{ID: 1, Title: "Old"}})
	assert.Empty(t, tr.ui.results.Cards(), "superseded search must not render")
	assert.Equal(t, "Fetching live recipes...", tr.ui.results.Notice())

	tr.searcher.complete(tr.searcher.submits[1], []model.RecipeSummary{{ID: 2, Title: "New"}})
	require.Len(t, tr.ui.results.Cards(), 1)
	assert.Equal(t, "New", tr.ui.results.Cards()[0].Title())
}

func TestRootUI_SearchFailure(t *testing.T) {
	tr := newTestRoot(t)

	tr.search("bread")
	tr.searcher.fail(tr.searcher.submits[0], &spoonacular.APIError{StatusCode: 401, Body: "invalid key"})

	assert.Equal(t, "❌ Search failed", tr.ui.results.Notice())
	assert.Empty(t, tr.ui.results.Cards())
	assert.NotNil(t, tr.window.Canvas().Overlays().Top(), "error dialog expected")
}

func TestRootUI_DetailsFlow(t *testing.T) {
	tr := newTestRoot(t)

	tr.search("bread")
	tr.searcher.complete(tr.searcher.submits[0], []model.RecipeSummary{{ID: 42, Title: "Toast"}})

	test.Tap(tr.ui.results.Cards()[0].detailsBtn)
	require.Len(t, tr.searcher.details, 1)
	assert.Equal(t, 42, tr.searcher.details[0].RecipeID)
	assert.True(t, tr.ui.notificationContainer.Visible())

	windowsBefore := len(tr.app.Driver().AllWindows())

	detail := tr.searcher.details[0]
	detail.Status = model.TaskStatusCompleted
	detail.Detail = model.RecipeDetail{ID: 42, Title: "Toast", SummaryHTML: "Crispy.", SourceURL: "https://example.com/toast"}
	tr.searcher.onDetail(detail)

	assert.Len(t, tr.app.Driver().AllWindows(), windowsBefore+1)
	assert.False(t, tr.ui.notificationContainer.Visible())
}

func TestRootUI_SettingsSavedRebuildsFinder(t *testing.T) {
	tr := newTestRoot(t)

	tr.ui.settings.SetAPIKey("abc123")
	tr.ui.onSettingsSaved()

	require.Len(t, tr.built, 1)
	assert.Equal(t, "abc123", tr.built[0].APIKey)
	assert.NotNil(t, tr.searcher.finder)
}

func TestRootUI_LanguageChange(t *testing.T) {
	tr := newTestRoot(t)

	tr.ui.onLanguageChange("pt")

	assert.Equal(t, "🔍 Buscar Receitas", tr.ui.searchBtn.Text)
	assert.Equal(t, "pt", tr.ui.settings.GetLanguage())
}

func TestRootUI_EmptyInputDropsRunningSearch(t *testing.T) {
	tr := newTestRoot(t)

	tr.search("bread")
	tr.search(" , ")
	require.Len(t, tr.searcher.submits, 1)

	tr.searcher.complete(tr.searcher.submits[0], []model.RecipeSummary{{ID: 1, Title: "Old"}})

	assert.Empty(t, tr.ui.results.Cards(), "cleared area must stay empty")
	assert.Empty(t, tr.ui.results.Notice())
}

func TestRootUI_LanguageChangeAfterClearKeepsAreaEmpty(t *testing.T) {
	tr := newTestRoot(t)

	tr.search("bread")
	tr.searcher.complete(tr.searcher.submits[0], []model.RecipeSummary{{ID: 1, Title: "Old"}})
	require.Len(t, tr.ui.results.Cards(), 1)

	tr.search("")
	require.Empty(t, tr.ui.results.Cards())

	tr.ui.onLanguageChange("pt")
	assert.Empty(t, tr.ui.results.Cards())
	assert.Empty(t, tr.ui.results.Notice())
}

func TestRootUI_LanguageChangeRelocalizesResults(t *testing.T) {
	tr := newTestRoot(t)

	tr.search("bread")
	tr.ui.onLanguageChange("ru")
	assert.Equal(t, "Загрузка рецептов...", tr.ui.results.Notice())

	tr.searcher.fail(tr.searcher.submits[0], errors.New("boom"))
	tr.ui.onLanguageChange("pt")
	assert.Equal(t, "❌ Falha na busca", tr.ui.results.Notice())

	tr.search("rice")
	tr.searcher.complete(tr.searcher.submits[1], []model.RecipeSummary{{ID: 5, Title: "Arroz", UsedIngredients: []string{"rice"}}})
	tr.ui.onLanguageChange("en")
	require.Len(t, tr.ui.results.Cards(), 1)
	assert.Equal(t, "✅ Used: rice", tr.ui.results.Cards()[0].IngredientsText())
}

func TestRootUI_RequestErrorsUseErrorDialog(t *testing.T) {
	tr := newTestRoot(t)

	tr.ui.showRequestError(&spoonacular.APIError{StatusCode: 402, Body: "quota exceeded"})

	top := tr.window.Canvas().Overlays().Top()
	require.NotNil(t, top)
	assert.True(t, canvasContainsText(top, "quota exceeded"), "raw body expected in dialog")
	assert.True(t, canvasContainsText(top, "API Error"), "API Error title expected")
	assert.True(t, canvasContainsErrorIcon(top), "error icon expected")
}

func TestErrorContent(t *testing.T) {
	test.NewTempApp(t)

	content := newErrorContent("network down")

	var icon *widget.Icon
	var label *widget.Label
	for _, obj := range content.Objects {
		switch o := obj.(type) {
		case *widget.Icon:
			icon = o
		case *widget.Label:
			label = o
		}
	}
	require.NotNil(t, icon)
	require.NotNil(t, label)
	assert.Equal(t, theme.ErrorIcon().Name(), icon.Resource.Name())
	assert.Equal(t, "network down", label.Text)
}

// canvasContainsText walks the rendered tree looking for a label or text with s
func canvasContainsText(obj fyne.CanvasObject, s string) bool {
	found := false
	walkCanvas(obj, func(o fyne.CanvasObject) {
		switch v := o.(type) {
		case *widget.Label:
			if v.Text == s {
				found = true
			}
		case *canvas.Text:
			if v.Text == s {
				found = true
			}
		}
	})
	return found
}

func canvasContainsErrorIcon(obj fyne.CanvasObject) bool {
	found := false
	walkCanvas(obj, func(o fyne.CanvasObject) {
		if icon, ok := o.(*widget.Icon); ok && icon.Resource != nil && icon.Resource.Name() == theme.ErrorIcon().Name() {
			found = true
		}
	})
	return found
}

func walkCanvas(obj fyne.CanvasObject, visit func(fyne.CanvasObject)) {
	if obj == nil {
		return
	}
	visit(obj)
	switch o := obj.(type) {
	case *fyne.Container:
		for _, child := range o.Objects {
			walkCanvas(child, visit)
		}
	case fyne.Widget:
		for _, child := range test.WidgetRenderer(o).Objects() {
			walkCanvas(child, visit)
		}
	}
}
