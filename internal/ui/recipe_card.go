package ui

import (
	"fmt"
	"image"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/canvas"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/theme"
	"fyne.io/fyne/v2/widget"

	"github.com/ytget/recipe-finder/internal/model"
)

// RecipeCard shows a single search result
type RecipeCard struct {
	widget.BaseWidget

	recipe       model.RecipeSummary
	localization *Localization

	// UI components
	titleLabel       *widget.Label
	image            *canvas.Image // nil when the recipe has no usable image
	ingredientsLabel *widget.Label
	idLabel          *widget.Label
	detailsBtn       *widget.Button

	onDetails func(recipeID int)
}

var _ fyne.Widget = (*RecipeCard)(nil)

// NewRecipeCard creates a card for recipe. thumb may be nil.
func NewRecipeCard(recipe model.RecipeSummary, thumb image.Image, localization *Localization, onDetails func(recipeID int)) *RecipeCard {
	card := &RecipeCard{
		recipe:       recipe,
		localization: localization,
		onDetails:    onDetails,
	}

	card.titleLabel = widget.NewLabel(IconRecipe + " " + recipe.Title)
	card.titleLabel.TextStyle = fyne.TextStyle{Bold: true}
	card.titleLabel.Wrapping = fyne.TextWrapWord

	if thumb != nil {
		card.image = canvas.NewImageFromImage(thumb)
		card.image.FillMode = canvas.ImageFillContain
		card.image.SetMinSize(fyne.NewSize(CardImageSize, CardImageSize))
	}

	card.ingredientsLabel = widget.NewLabel(recipe.IngredientsText(
		IconUsed+" "+localization.GetText(KeyUsed),
		IconMissing+" "+localization.GetText(KeyMissing),
	))
	card.ingredientsLabel.Wrapping = fyne.TextWrapWord

	card.idLabel = widget.NewLabel(fmt.Sprintf(RecipeIDFormat, recipe.ID))
	card.idLabel.Importance = widget.LowImportance

	card.detailsBtn = widget.NewButton(localization.GetText(KeyGetRecipe), card.onDetailsClick)
	card.detailsBtn.Importance = widget.HighImportance

	card.ExtendBaseWidget(card)
	return card
}

// CreateRenderer creates the renderer for the card
func (c *RecipeCard) CreateRenderer() fyne.WidgetRenderer {
	text := container.NewVBox(
		c.titleLabel,
		c.ingredientsLabel,
		c.idLabel,
		container.NewHBox(c.detailsBtn),
	)

	var body fyne.CanvasObject = text
	if c.image != nil {
		body = container.NewBorder(nil, nil, c.image, nil, text)
	}

	background := canvas.NewRectangle(theme.Color(theme.ColorNameInputBackground))
	background.CornerRadius = 8
	return widget.NewSimpleRenderer(container.NewStack(background, container.NewPadded(body)))
}

// RecipeID returns the recipe shown by the card
func (c *RecipeCard) RecipeID() int {
	return c.recipe.ID
}

// Title returns the recipe title shown on the card
func (c *RecipeCard) Title() string {
	return c.recipe.Title
}

// HasImage reports whether the card renders an image
func (c *RecipeCard) HasImage() bool {
	return c.image != nil
}

// IngredientsText returns the displayed ingredient block
func (c *RecipeCard) IngredientsText() string {
	return c.ingredientsLabel.Text
}

func (c *RecipeCard) onDetailsClick() {
	if c.onDetails != nil {
		c.onDetails(c.recipe.ID)
	}
}
