package ui

import "testing"

func TestLocalization_AllLanguagesComplete(t *testing.T) {
	l := NewLocalization()
	english := l.texts["en"]

	for lang := range l.GetAvailableLanguages() {
		texts, ok := l.texts[lang]
		if !ok {
			t.Fatalf("Missing texts for language %s", lang)
		}
		for key := range english {
			if _, found := texts[key]; !found {
				t.Errorf("Language %s is missing key %s", lang, key)
			}
		}
	}
}

func TestLocalization_SetLanguage(t *testing.T) {
	l := NewLocalization()

	l.SetLanguage("ru")
	if l.GetCurrentLanguage() != "ru" {
		t.Errorf("Expected language ru, got %s", l.GetCurrentLanguage())
	}
	if l.GetText(KeyGetRecipe) != "Открыть рецепт" {
		t.Errorf("Unexpected Russian text: %s", l.GetText(KeyGetRecipe))
	}

	// Unknown languages are ignored
	l.SetLanguage("xx")
	if l.GetCurrentLanguage() != "ru" {
		t.Errorf("Unknown language should be ignored, got %s", l.GetCurrentLanguage())
	}

	l.SetLanguage("system")
	if l.GetCurrentLanguage() != "en" {
		t.Errorf("System language should map to en, got %s", l.GetCurrentLanguage())
	}

	if l.GetText("no_such_key") != "no_such_key" {
		t.Error("Unknown key should fall back to the key itself")
	}
}
