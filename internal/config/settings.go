package config

import (
	"os"

	"fyne.io/fyne/v2"
)

// Settings keys for Fyne preferences
const (
	KeyAPIKey         = "api_key"
	KeySearchEndpoint = "search_endpoint"
	KeyInfoEndpoint   = "info_endpoint"
	KeyLanguage       = "app_language"
)

// Default values
const (
	DefaultLanguage = "system"
)

// Settings manages application configuration. Provider settings are layered:
// built-in defaults and the config file (base), then preferences, then environment.
type Settings struct {
	app       fyne.App
	base      APIConfig
	lookupEnv func(string) (string, bool)
}

// NewSettings creates a new settings manager on top of base
func NewSettings(app fyne.App, base APIConfig) *Settings {
	return &Settings{
		app:       app,
		base:      DefaultAPIConfig().Merge(base),
		lookupEnv: os.LookupEnv,
	}
}

// GetAPIKey returns the stored API key, falling back to the base config
func (s *Settings) GetAPIKey() string {
	return s.app.Preferences().StringWithFallback(KeyAPIKey, s.base.APIKey)
}

// SetAPIKey stores the API key; an empty key clears the override
func (s *Settings) SetAPIKey(key string) {
	s.setOrRemove(KeyAPIKey, key)
}

// GetSearchEndpoint returns the "find by ingredients" endpoint
func (s *Settings) GetSearchEndpoint() string {
	return s.app.Preferences().StringWithFallback(KeySearchEndpoint, s.base.SearchEndpoint)
}

// SetSearchEndpoint stores the search endpoint; empty resets to the base value
func (s *Settings) SetSearchEndpoint(endpoint string) {
	s.setOrRemove(KeySearchEndpoint, endpoint)
}

// GetInfoEndpoint returns the recipe information endpoint template
func (s *Settings) GetInfoEndpoint() string {
	return s.app.Preferences().StringWithFallback(KeyInfoEndpoint, s.base.InfoEndpoint)
}

// SetInfoEndpoint stores the information endpoint; empty resets to the base value
func (s *Settings) SetInfoEndpoint(endpoint string) {
	s.setOrRemove(KeyInfoEndpoint, endpoint)
}

// GetLanguage returns the configured language
func (s *Settings) GetLanguage() string {
	lang := s.app.Preferences().String(KeyLanguage)
	if lang == "" {
		s.SetLanguage(DefaultLanguage)
		return DefaultLanguage
	}
	return lang
}

// SetLanguage sets the application language
func (s *Settings) SetLanguage(lang string) {
	s.app.Preferences().SetString(KeyLanguage, lang)
}

// GetLanguageOptions returns available language options
func (s *Settings) GetLanguageOptions() map[string]string {
	return map[string]string{
		"system": "System Default",
		"en":     "English",
		"ru":     "Русский",
		"pt":     "Português",
	}
}

// APIConfig resolves the effective provider configuration
func (s *Settings) APIConfig() APIConfig {
	cfg := s.base.Merge(APIConfig{
		APIKey:         s.GetAPIKey(),
		SearchEndpoint: s.GetSearchEndpoint(),
		InfoEndpoint:   s.GetInfoEndpoint(),
	})
	return cfg.Merge(FromEnv(s.lookupEnv))
}

func (s *Settings) setOrRemove(key, value string) {
	if value == "" {
		s.app.Preferences().RemoveValue(key)
		return
	}
	s.app.Preferences().SetString(key, value)
}
