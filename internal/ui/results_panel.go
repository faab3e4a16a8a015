package ui

import (
	"image"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/widget"

	"github.com/ytget/recipe-finder/internal/model"
)

// ResultsPanel is the scrollable area holding recipe cards or a single notice.
// Every render replaces the previous content.
type ResultsPanel struct {
	localization *Localization
	onDetails    func(recipeID int)

	list   *fyne.Container
	scroll *container.Scroll
	cards  []*RecipeCard

	// Current notice, kept as a localization key so it follows language changes
	notice     *widget.Label
	noticeKey  string
	noticeIcon string

	// Last rendered result set, used to rebuild cards on language change
	summaries []model.RecipeSummary
	thumbs    map[int]image.Image
}

// NewResultsPanel creates an empty results panel
func NewResultsPanel(localization *Localization, onDetails func(recipeID int)) *ResultsPanel {
	p := &ResultsPanel{
		localization: localization,
		onDetails:    onDetails,
		list:         container.NewVBox(),
	}
	p.scroll = container.NewVScroll(p.list)
	return p
}

// Container returns the canvas object to place in the window
func (p *ResultsPanel) Container() fyne.CanvasObject {
	return p.scroll
}

// Clear removes all cards and notices
func (p *ResultsPanel) Clear() {
	p.cards = nil
	p.notice = nil
	p.noticeKey = ""
	p.noticeIcon = ""
	p.summaries = nil
	p.thumbs = nil
	p.list.RemoveAll()
	p.scroll.ScrollToTop()
}

// ShowLoading replaces the content with the loading notice
func (p *ResultsPanel) ShowLoading() {
	p.Clear()
	p.showNotice("", KeyFetchingRecipes)
}

// ShowFailure replaces the content with the search failure notice
func (p *ResultsPanel) ShowFailure() {
	p.Clear()
	p.showNotice(IconError, KeySearchFailed)
}

// Render replaces the content with one card per summary, in order.
// An empty result shows the "no recipes" notice instead.
func (p *ResultsPanel) Render(summaries []model.RecipeSummary, thumbs map[int]image.Image) {
	p.Clear()

	if len(summaries) == 0 {
		p.showNotice(IconError, KeyNoRecipes)
		return
	}

	p.summaries = summaries
	p.thumbs = thumbs
	p.buildCards()
}

// RefreshTexts re-applies the current language to whatever is shown
func (p *ResultsPanel) RefreshTexts() {
	if p.notice != nil {
		p.notice.SetText(p.noticeText())
		return
	}
	if len(p.summaries) > 0 {
		p.cards = nil
		p.list.RemoveAll()
		p.buildCards()
	}
}

// Cards returns the cards currently shown
func (p *ResultsPanel) Cards() []*RecipeCard {
	return p.cards
}

// Notice returns the notice currently shown, or "" when cards are shown
func (p *ResultsPanel) Notice() string {
	if p.notice == nil {
		return ""
	}
	return p.notice.Text
}

func (p *ResultsPanel) buildCards() {
	for _, recipe := range p.summaries {
		var thumb image.Image
		if recipe.HasImage() {
			thumb = p.thumbs[recipe.ID]
		}
		card := NewRecipeCard(recipe, thumb, p.localization, p.onDetails)
		p.cards = append(p.cards, card)
		p.list.Add(card)
	}
	p.list.Refresh()
}

func (p *ResultsPanel) showNotice(icon, key string) {
	p.noticeIcon = icon
	p.noticeKey = key
	p.notice = widget.NewLabel(p.noticeText())
	p.notice.Alignment = fyne.TextAlignCenter
	p.notice.Wrapping = fyne.TextWrapWord
	p.list.Add(p.notice)
	p.list.Refresh()
}

func (p *ResultsPanel) noticeText() string {
	text := p.localization.GetText(p.noticeKey)
	if p.noticeIcon == "" {
		return text
	}
	return p.noticeIcon + " " + text
}
