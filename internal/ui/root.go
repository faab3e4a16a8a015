package ui

import (
	"errors"
	"log"
	"time"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/canvas"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/dialog"
	"fyne.io/fyne/v2/theme"
	"fyne.io/fyne/v2/widget"

	"github.com/ytget/recipe-finder/internal/config"
	"github.com/ytget/recipe-finder/internal/model"
	"github.com/ytget/recipe-finder/internal/platform"
	"github.com/ytget/recipe-finder/internal/search"
	"github.com/ytget/recipe-finder/internal/spoonacular"
)

// FinderFactory builds a provider client from the effective configuration
type FinderFactory func(cfg config.APIConfig) spoonacular.Finder

// RootUI represents the main UI structure
type RootUI struct {
	window       fyne.Window
	app          fyne.App
	searcher     search.Searcher
	settings     *config.Settings
	localization *Localization
	newFinder    FinderFactory

	headingLabel     *widget.Label
	promptLabel      *widget.Label
	ingredientsEntry *widget.Entry
	searchBtn        *widget.Button
	results          *ResultsPanel

	// Notification panel
	notificationContainer *fyne.Container
	notificationLabel     *widget.Label
	notificationSpinner   *widget.ProgressBarInfinite

	// liveSearchID is the only search allowed to render; "" after a trigger without a request
	liveSearchID   string
	pendingDetails int

	// runOnMain schedules UI mutations from background goroutines
	runOnMain func(func())
	// openURL opens a recipe page in the browser
	openURL func(string)
}

// NewRootUI creates and initializes the main UI
func NewRootUI(window fyne.Window, app fyne.App, searcher search.Searcher, settings *config.Settings, newFinder FinderFactory) *RootUI {
	localization := NewLocalization()
	localization.SetLanguage(settings.GetLanguage())

	ui := &RootUI{
		window:       window,
		app:          app,
		searcher:     searcher,
		settings:     settings,
		localization: localization,
		newFinder:    newFinder,
		runOnMain:    fyne.Do,
	}
	ui.openURL = ui.openInBrowser

	window.SetTitle(localization.GetText(KeyAppTitle))

	// Set up callbacks for search service updates
	ui.searcher.SetUpdateCallback(ui.onSearchUpdate)
	ui.searcher.SetDetailCallback(ui.onDetailUpdate)

	ui.setupUI()

	if settings.APIConfig().IsPlaceholderKey() {
		ui.showNotification(localization.GetText(KeyPlaceholderAPIKey), false)
	}
	return ui
}

// setupUI creates and arranges all UI components
func (ui *RootUI) setupUI() {
	ui.createMenu()

	ui.headingLabel = widget.NewLabel(ui.localization.GetText(KeyHeading))
	ui.headingLabel.TextStyle = fyne.TextStyle{Bold: true}
	ui.headingLabel.SizeName = theme.SizeNameHeadingText
	ui.headingLabel.Alignment = fyne.TextAlignCenter

	ui.promptLabel = widget.NewLabel(ui.localization.GetText(KeyIngredientsLabel))

	ui.ingredientsEntry = widget.NewEntry()
	ui.ingredientsEntry.SetPlaceHolder(ui.localization.GetText(KeyIngredientsHint))
	// Trigger search when user presses Enter in the ingredients field
	ui.ingredientsEntry.OnSubmitted = func(string) {
		ui.onSearchClick()
	}

	ui.searchBtn = widget.NewButton(ui.searchButtonText(), ui.onSearchClick)
	ui.searchBtn.Importance = widget.HighImportance

	settingsBtn := widget.NewButton(IconSettings, ui.onShowSettings)
	settingsBtn.Importance = widget.LowImportance

	// Logo is optional
	left := container.NewHBox(settingsBtn)
	if logo, err := LoadLogoResource(); err == nil {
		logoImage := canvas.NewImageFromResource(logo)
		logoImage.SetMinSize(fyne.NewSize(32, 32))
		logoImage.FillMode = canvas.ImageFillContain
		left = container.NewHBox(logoImage, settingsBtn)
	}

	inputRow := container.NewBorder(nil, nil, left, ui.searchBtn, ui.ingredientsEntry)

	// Notification panel under the input row (hidden by default)
	ui.notificationLabel = widget.NewLabel("")
	ui.notificationLabel.Alignment = fyne.TextAlignLeading
	ui.notificationSpinner = widget.NewProgressBarInfinite()
	ui.notificationSpinner.Hide()
	ui.notificationContainer = container.NewHBox(ui.notificationSpinner, container.NewPadded(ui.notificationLabel))
	ui.notificationContainer.Hide()

	top := container.NewVBox(ui.headingLabel, ui.promptLabel, inputRow, ui.notificationContainer)

	ui.results = NewResultsPanel(ui.localization, ui.onRecipeDetails)

	content := container.NewBorder(
		top,                    // top
		nil,                    // bottom
		nil,                    // left
		nil,                    // right
		ui.results.Container(), // center
	)

	ui.window.SetContent(content)

	log.Printf("UI setup completed successfully")
}

// createMenu creates the application menu
func (ui *RootUI) createMenu() {
	settingsItem := fyne.NewMenuItem(ui.localization.GetText(KeySettings), ui.onShowSettings)

	languageMenu := fyne.NewMenu(IconLanguage + " " + ui.localization.GetText(KeyLanguage))

	for _, code := range []string{"en", "ru", "pt"} {
		langCode := code // Capture for closure
		langItem := fyne.NewMenuItem(ui.localization.GetAvailableLanguages()[code], func() {
			ui.onLanguageChange(langCode)
		})

		// Mark current language
		if ui.localization.GetCurrentLanguage() == code {
			langItem.Checked = true
		}

		languageMenu.Items = append(languageMenu.Items, langItem)
	}

	mainMenu := fyne.NewMainMenu(
		fyne.NewMenu(ui.localization.GetText(KeyFile), settingsItem),
		languageMenu,
	)

	ui.window.SetMainMenu(mainMenu)
}

// onLanguageChange handles language change
func (ui *RootUI) onLanguageChange(langCode string) {
	ui.localization.SetLanguage(langCode)
	ui.settings.SetLanguage(langCode)

	ui.refreshUITexts()
	ui.createMenu()
}

// refreshUITexts updates all UI texts with current language
func (ui *RootUI) refreshUITexts() {
	ui.window.SetTitle(ui.localization.GetText(KeyAppTitle))

	ui.headingLabel.SetText(ui.localization.GetText(KeyHeading))
	ui.promptLabel.SetText(ui.localization.GetText(KeyIngredientsLabel))
	ui.ingredientsEntry.SetPlaceHolder(ui.localization.GetText(KeyIngredientsHint))
	ui.searchBtn.SetText(ui.searchButtonText())

	ui.results.RefreshTexts()
}

func (ui *RootUI) searchButtonText() string {
	return IconSearch + " " + ui.localization.GetText(KeyFindRecipes)
}

// onSearchClick handles the search button and Enter in the ingredients field
func (ui *RootUI) onSearchClick() {
	// Any earlier search loses the result area, even when no new request is made
	ui.liveSearchID = ""
	ui.results.Clear()

	query, err := model.NormalizeQuery(ui.ingredientsEntry.Text)
	if errors.Is(err, model.ErrEmptyInput) {
		dialog.ShowInformation(
			ui.localization.GetText(KeyInputRequired),
			ui.localization.GetText(KeyPleaseEnter),
			ui.window,
		)
		return
	}

	ui.results.ShowLoading()

	task := ui.searcher.Submit(query)
	ui.liveSearchID = task.ID
	log.Printf("Search %s submitted: ingredients=%q", task.ID, query.Joined())
}

// onSearchUpdate handles results from the search service. It runs on a background goroutine.
func (ui *RootUI) onSearchUpdate(task *model.SearchTask) {
	ui.runOnMain(func() {
		if task.ID != ui.liveSearchID {
			log.Printf("Ignoring stale search update %s", task.ID)
			return
		}

		switch task.Status {
		case model.TaskStatusCompleted:
			ui.results.Render(task.Results, task.Thumbnails)
		case model.TaskStatusError:
			ui.results.ShowFailure()
			ui.showRequestError(task.Err)
		}
	})
}

// onRecipeDetails handles the "Get Recipe" action of a card
func (ui *RootUI) onRecipeDetails(recipeID int) {
	ui.pendingDetails++
	ui.showNotification(ui.localization.GetText(KeyLoadingDetails), true)

	task := ui.searcher.RequestDetails(recipeID)
	log.Printf("Detail %s requested for recipe %d", task.ID, recipeID)
}

// onDetailUpdate handles detail results. It runs on a background goroutine.
func (ui *RootUI) onDetailUpdate(task *model.DetailTask) {
	ui.runOnMain(func() {
		if ui.pendingDetails > 0 {
			ui.pendingDetails--
		}
		if ui.pendingDetails == 0 {
			ui.hideNotification()
		}

		switch task.Status {
		case model.TaskStatusCompleted:
			ShowRecipeDetail(ui.app, task.Detail, task.Thumbnail, ui.localization, ui.openURL)
		case model.TaskStatusError:
			ui.showRequestError(task.Err)
		}
	})
}

// showRequestError shows the provider body for API errors and the error text otherwise
func (ui *RootUI) showRequestError(err error) {
	if err == nil {
		return
	}

	var apiErr *spoonacular.APIError
	if errors.As(err, &apiErr) {
		showErrorDialog(ui.localization.GetText(KeyAPIError), apiErr.Body, ui.localization.GetText(KeyOK), ui.window)
		return
	}
	showErrorDialog(ui.localization.GetText(KeyError), err.Error(), ui.localization.GetText(KeyOK), ui.window)
}

// openInBrowser opens a recipe page, falling back to the platform launcher
func (ui *RootUI) openInBrowser(raw string) {
	u, err := platform.ValidateWebURL(raw)
	if err != nil {
		log.Printf("Refusing to open link %q: %v", raw, err)
		showErrorDialog(ui.localization.GetText(KeyErrorOpeningLink), err.Error(), ui.localization.GetText(KeyOK), ui.window)
		return
	}

	err = ui.app.OpenURL(u)
	if err == nil {
		return
	}
	log.Printf("App could not open %s: %v, trying platform launcher", raw, err)

	if err := platform.OpenInBrowser(raw); err != nil {
		log.Printf("Failed to open %s: %v", raw, err)
		showErrorDialog(ui.localization.GetText(KeyErrorOpeningLink), err.Error(), ui.localization.GetText(KeyOK), ui.window)
	}
}

// showNotification displays a message in the notification panel under the input row.
// When spinning is true, a spinner is shown to indicate background activity.
func (ui *RootUI) showNotification(message string, spinning bool) {
	if ui.notificationLabel == nil || ui.notificationContainer == nil || ui.notificationSpinner == nil {
		return
	}
	ui.notificationLabel.SetText(message)
	if spinning {
		ui.notificationSpinner.Show()
	} else {
		ui.notificationSpinner.Hide()
	}
	ui.notificationContainer.Show()
	ui.notificationContainer.Refresh()
}

// showTransientNotification shows a message that hides itself after NotificationAutoHide
func (ui *RootUI) showTransientNotification(message string) {
	ui.showNotification(message, false)
	time.AfterFunc(NotificationAutoHide, func() {
		ui.runOnMain(func() {
			if ui.pendingDetails == 0 && ui.notificationLabel.Text == message {
				ui.hideNotification()
			}
		})
	})
}

// hideNotification hides the notification panel.
func (ui *RootUI) hideNotification() {
	if ui.notificationContainer == nil || ui.notificationSpinner == nil {
		return
	}
	ui.notificationSpinner.Hide()
	ui.notificationContainer.Hide()
}

// onShowSettings shows the settings dialog
func (ui *RootUI) onShowSettings() {
	ShowSettingsDialog(ui.window, ui.settings, ui.localization, ui.onSettingsSaved)
}

// onSettingsSaved rebuilds the provider client and applies the language
func (ui *RootUI) onSettingsSaved() {
	cfg := ui.settings.APIConfig()
	if ui.newFinder != nil {
		ui.searcher.SetFinder(ui.newFinder(cfg))
		log.Printf("Recipe provider reconfigured: search=%s info=%s", cfg.SearchEndpoint, cfg.InfoEndpoint)
	}

	ui.localization.SetLanguage(ui.settings.GetLanguage())
	ui.refreshUITexts()
	ui.createMenu()

	ui.showTransientNotification(ui.localization.GetText(KeySettingsSaved))
}
