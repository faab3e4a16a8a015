package ui

import (
	"sort"
	"strings"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/dialog"
	"fyne.io/fyne/v2/widget"

	"github.com/ytget/recipe-finder/internal/config"
)

// SettingsDialog represents the settings configuration dialog
type SettingsDialog struct {
	settings     *config.Settings
	localization *Localization
	window       fyne.Window
	dialog       *dialog.ConfirmDialog
	onSaved      func()

	// UI components
	apiKeyEntry         *widget.Entry
	searchEndpointEntry *widget.Entry
	infoEndpointEntry   *widget.Entry
	languageSelect      *widget.Select
}

// NewSettingsDialog creates a new settings dialog. onSaved runs after a successful save.
func NewSettingsDialog(settings *config.Settings, localization *Localization, window fyne.Window, onSaved func()) *SettingsDialog {
	sd := &SettingsDialog{
		settings:     settings,
		localization: localization,
		window:       window,
		onSaved:      onSaved,
	}

	sd.createUI()
	return sd
}

// ShowSettingsDialog creates and shows the settings dialog
func ShowSettingsDialog(window fyne.Window, settings *config.Settings, localization *Localization, onSaved func()) *SettingsDialog {
	sd := NewSettingsDialog(settings, localization, window, onSaved)
	sd.Show()
	return sd
}

// Show displays the settings dialog
func (sd *SettingsDialog) Show() {
	sd.loadCurrentSettings()
	sd.dialog.Show()
}

// createUI creates the settings dialog UI
func (sd *SettingsDialog) createUI() {
	sd.apiKeyEntry = widget.NewPasswordEntry()
	sd.apiKeyEntry.SetPlaceHolder(config.DefaultAPIKey)

	sd.searchEndpointEntry = widget.NewEntry()
	sd.searchEndpointEntry.SetPlaceHolder(config.DefaultSearchEndpoint)

	sd.infoEndpointEntry = widget.NewEntry()
	sd.infoEndpointEntry.SetPlaceHolder(config.DefaultInfoEndpoint)

	// Language selection, codes in stable order
	languageOptions := []string{}
	for code := range sd.settings.GetLanguageOptions() {
		languageOptions = append(languageOptions, code)
	}
	sort.Strings(languageOptions)
	sd.languageSelect = widget.NewSelect(languageOptions, nil)
	sd.languageSelect.PlaceHolder = "Select language"

	form := container.NewVBox(
		widget.NewLabel(sd.localization.GetText(KeyAPIKey)+":"),
		sd.apiKeyEntry,

		widget.NewLabel(sd.localization.GetText(KeySearchEndpoint)+":"),
		sd.searchEndpointEntry,

		widget.NewLabel(sd.localization.GetText(KeyInfoEndpoint)+":"),
		sd.infoEndpointEntry,

		widget.NewSeparator(),

		widget.NewLabel(sd.localization.GetText(KeyLanguage)+":"),
		sd.languageSelect,
	)

	sd.dialog = dialog.NewCustomConfirm(
		sd.localization.GetText(KeySettings),
		sd.localization.GetText(KeySave),
		sd.localization.GetText(KeyCancel),
		form,
		sd.onSave,
		sd.window,
	)

	sd.dialog.Resize(fyne.NewSize(SettingsDialogWidth, SettingsDialogHeight))
}

// loadCurrentSettings loads current settings into the UI
func (sd *SettingsDialog) loadCurrentSettings() {
	sd.apiKeyEntry.SetText(sd.settings.GetAPIKey())
	sd.searchEndpointEntry.SetText(sd.settings.GetSearchEndpoint())
	sd.infoEndpointEntry.SetText(sd.settings.GetInfoEndpoint())
	sd.languageSelect.SetSelected(sd.settings.GetLanguage())
}

// onSave handles the dialog result
func (sd *SettingsDialog) onSave(confirmed bool) {
	if !confirmed {
		return
	}

	if err := sd.save(); err != nil {
		showErrorDialog(
			sd.localization.GetText(KeyInvalidSettings),
			err.Error(),
			sd.localization.GetText(KeyOK),
			sd.window,
		)
		return
	}

	dialog.ShowInformation(sd.localization.GetText(KeySettings), sd.localization.GetText(KeySettingsSaved), sd.window)
}

// save validates the entered values and stores them. Nothing is stored on error.
func (sd *SettingsDialog) save() error {
	entered := config.APIConfig{
		APIKey:         strings.TrimSpace(sd.apiKeyEntry.Text),
		SearchEndpoint: strings.TrimSpace(sd.searchEndpointEntry.Text),
		InfoEndpoint:   strings.TrimSpace(sd.infoEndpointEntry.Text),
	}

	// Empty fields fall back to the defaults, so validate the merged view
	if err := config.DefaultAPIConfig().Merge(entered).Validate(); err != nil {
		return err
	}

	sd.settings.SetAPIKey(entered.APIKey)
	sd.settings.SetSearchEndpoint(entered.SearchEndpoint)
	sd.settings.SetInfoEndpoint(entered.InfoEndpoint)

	if sd.languageSelect.Selected != "" {
		sd.settings.SetLanguage(sd.languageSelect.Selected)
	}

	if sd.onSaved != nil {
		sd.onSaved()
	}
	return nil
}
