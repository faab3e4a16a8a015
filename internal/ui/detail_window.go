package ui

import (
	"image"
	"log"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/canvas"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/widget"

	"github.com/ytget/recipe-finder/internal/model"
)

// DetailView is the content of a recipe detail window
type DetailView struct {
	Title   *widget.Label
	Image   *canvas.Image // nil without an image
	Summary *widget.Label
	LinkBtn *widget.Button // nil without a source URL
	Content fyne.CanvasObject
}

// NewDetailView builds the detail content. openURL is called with the source URL.
func NewDetailView(detail model.RecipeDetail, thumb image.Image, localization *Localization, openURL func(string)) *DetailView {
	v := &DetailView{}
	v.Title = widget.NewLabel(detail.Title)
	v.Title.TextStyle = fyne.TextStyle{Bold: true}
	v.Title.Alignment = fyne.TextAlignCenter
	v.Title.Wrapping = fyne.TextWrapWord

	items := []fyne.CanvasObject{v.Title}

	if thumb != nil {
		v.Image = canvas.NewImageFromImage(thumb)
		v.Image.FillMode = canvas.ImageFillContain
		v.Image.SetMinSize(fyne.NewSize(PopupImageSize, PopupImageSize))
		items = append(items, container.NewCenter(v.Image))
	}

	v.Summary = widget.NewLabel(detail.SummaryHTML)
	v.Summary.Wrapping = fyne.TextWrapWord
	items = append(items, v.Summary)

	if detail.HasSource() {
		source := detail.SourceURL
		v.LinkBtn = widget.NewButton(localization.GetText(KeyViewOnline), func() {
			if openURL != nil {
				openURL(source)
			}
		})
		v.LinkBtn.Importance = widget.HighImportance
		items = append(items, container.NewCenter(v.LinkBtn))
	}

	v.Content = container.NewVScroll(container.NewPadded(container.NewVBox(items...)))
	return v
}

// ShowRecipeDetail opens a new window with the recipe details
func ShowRecipeDetail(app fyne.App, detail model.RecipeDetail, thumb image.Image, localization *Localization, openURL func(string)) fyne.Window {
	view := NewDetailView(detail, thumb, localization, openURL)

	w := app.NewWindow(view.Title.Text)
	w.SetContent(view.Content)
	w.Resize(fyne.NewSize(DetailWindowWidth, DetailWindowHeight))
	w.Show()

	log.Printf("Opened detail window for recipe %d", detail.ID)
	return w
}
