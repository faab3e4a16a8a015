package config

import (
	"testing"

	"fyne.io/fyne/v2/test"
)

func noEnv(string) (string, bool) { return "", false }

func newTestSettings(t *testing.T, base APIConfig) *Settings {
	t.Helper()
	settings := NewSettings(test.NewTempApp(t), base)
	settings.lookupEnv = noEnv
	return settings
}

func TestNewSettings(t *testing.T) {
	app := test.NewTempApp(t)
	settings := NewSettings(app, APIConfig{})

	if settings.app != app {
		t.Error("Settings app reference should match provided app")
	}

	if settings.base.SearchEndpoint != DefaultSearchEndpoint {
		t.Errorf("Expected base search endpoint %s, got %s", DefaultSearchEndpoint, settings.base.SearchEndpoint)
	}
}

func TestAPIKey(t *testing.T) {
	settings := newTestSettings(t, APIConfig{APIKey: "from-file"})

	// Test base value
	if key := settings.GetAPIKey(); key != "from-file" {
		t.Errorf("Expected API key from base config, got %s", key)
	}

	// Test setting custom value
	settings.SetAPIKey("custom")
	if key := settings.GetAPIKey(); key != "custom" {
		t.Errorf("Expected API key 'custom', got %s", key)
	}

	// Clearing falls back to base
	settings.SetAPIKey("")
	if key := settings.GetAPIKey(); key != "from-file" {
		t.Errorf("Cleared API key should fall back to base, got %s", key)
	}
}

func TestEndpoints(t *testing.T) {
	settings := newTestSettings(t, APIConfig{})

	if settings.GetSearchEndpoint() != DefaultSearchEndpoint {
		t.Errorf("Expected default search endpoint, got %s", settings.GetSearchEndpoint())
	}
	if settings.GetInfoEndpoint() != DefaultInfoEndpoint {
		t.Errorf("Expected default info endpoint, got %s", settings.GetInfoEndpoint())
	}

	settings.SetSearchEndpoint("http://localhost:8080/find")
	settings.SetInfoEndpoint("http://localhost:8080/info/{id}")

	if settings.GetSearchEndpoint() != "http://localhost:8080/find" {
		t.Errorf("Expected custom search endpoint, got %s", settings.GetSearchEndpoint())
	}
	if settings.GetInfoEndpoint() != "http://localhost:8080/info/{id}" {
		t.Errorf("Expected custom info endpoint, got %s", settings.GetInfoEndpoint())
	}
}

func TestLanguage(t *testing.T) {
	settings := newTestSettings(t, APIConfig{})

	// Test default value
	lang := settings.GetLanguage()
	if lang != DefaultLanguage {
		t.Errorf("Expected default language %s, got %s", DefaultLanguage, lang)
	}

	// Test setting custom value
	settings.SetLanguage("en")

	retrievedLang := settings.GetLanguage()
	if retrievedLang != "en" {
		t.Errorf("Expected language 'en', got %s", retrievedLang)
	}
}

func TestGetLanguageOptions(t *testing.T) {
	settings := newTestSettings(t, APIConfig{})

	options := settings.GetLanguageOptions()

	expectedLangs := []string{"system", "en", "ru", "pt"}
	for _, lang := range expectedLangs {
		if _, exists := options[lang]; !exists {
			t.Errorf("Expected language option '%s' to exist", lang)
		}
	}

	if len(options) != len(expectedLangs) {
		t.Errorf("Expected %d language options, got %d", len(expectedLangs), len(options))
	}
}

func TestAPIConfigPrecedence(t *testing.T) {
	settings := newTestSettings(t, APIConfig{APIKey: "file-key", SearchEndpoint: "https://file/find"})
	settings.SetSearchEndpoint("https://prefs/find")

	cfg := settings.APIConfig()
	if cfg.APIKey != "file-key" {
		t.Errorf("Expected file key, got %s", cfg.APIKey)
	}
	if cfg.SearchEndpoint != "https://prefs/find" {
		t.Errorf("Preferences should override file, got %s", cfg.SearchEndpoint)
	}

	settings.lookupEnv = func(key string) (string, bool) {
		if key == EnvAPIKey {
			return "env-key", true
		}
		return "", false
	}

	cfg = settings.APIConfig()
	if cfg.APIKey != "env-key" {
		t.Errorf("Environment should override everything, got %s", cfg.APIKey)
	}
	if cfg.InfoEndpoint != DefaultInfoEndpoint {
		t.Errorf("Expected default info endpoint, got %s", cfg.InfoEndpoint)
	}
}
