package ui

// Localization manages UI text translations
type Localization struct {
	currentLanguage string
	texts           map[string]map[string]string
}

// Text keys for localization
const (
	KeyAppTitle          = "app_title"
	KeyHeading           = "heading"
	KeyIngredientsLabel  = "ingredients_label"
	KeyIngredientsHint   = "ingredients_hint"
	KeyFindRecipes       = "find_recipes"
	KeySettings          = "settings"
	KeyFile              = "file"
	KeyLanguage          = "language"
	KeyAPIKey            = "api_key"
	KeySearchEndpoint    = "search_endpoint"
	KeyInfoEndpoint      = "info_endpoint"
	KeySave              = "save"
	KeyCancel            = "cancel"
	KeySettingsSaved     = "settings_saved"
	KeyInvalidSettings   = "invalid_settings"
	KeyInputRequired     = "input_required"
	KeyPleaseEnter       = "please_enter_ingredients"
	KeyFetchingRecipes   = "fetching_recipes"
	KeyNoRecipes         = "no_recipes"
	KeySearchFailed      = "search_failed"
	KeyUsed              = "used"
	KeyMissing           = "missing"
	KeyGetRecipe         = "get_recipe"
	KeyLoadingDetails    = "loading_details"
	KeyViewOnline        = "view_online"
	KeyAPIError          = "api_error"
	KeyError             = "error"
	KeyErrorOpeningLink  = "error_opening_link"
	KeyPlaceholderAPIKey = "placeholder_api_key"
	KeyOK                = "ok"
)

// NewLocalization creates a new localization manager
func NewLocalization() *Localization {
	l := &Localization{
		currentLanguage: "en",
		texts:           make(map[string]map[string]string),
	}

	l.initializeTexts()
	return l
}

// SetLanguage sets the current language
func (l *Localization) SetLanguage(lang string) {
	if lang == "system" {
		// Use system locale - simplified to English for now
		lang = "en"
	}

	if _, exists := l.texts[lang]; exists {
		l.currentLanguage = lang
	}
}

// GetText returns localized text for the given key
func (l *Localization) GetText(key string) string {
	if texts, exists := l.texts[l.currentLanguage]; exists {
		if text, found := texts[key]; found {
			return text
		}
	}

	// Fallback to English
	if texts, exists := l.texts["en"]; exists {
		if text, found := texts[key]; found {
			return text
		}
	}

	// Final fallback - return key itself
	return key
}

// GetCurrentLanguage returns the current language code
func (l *Localization) GetCurrentLanguage() string {
	return l.currentLanguage
}

// GetAvailableLanguages returns map of available languages with their display names
func (l *Localization) GetAvailableLanguages() map[string]string {
	return map[string]string{
		"en": "English",
		"ru": "Русский",
		"pt": "Português",
	}
}

// initializeTexts initializes all text translations
func (l *Localization) initializeTexts() {
	// English texts
	l.texts["en"] = map[string]string{
		KeyAppTitle:          "Smart Recipe Finder",
		KeyHeading:           "🍽 Smart Recipe Finder",
		KeyIngredientsLabel:  "Enter ingredients (comma-separated):",
		KeyIngredientsHint:   "e.g. bread, garlic, onion, chicken",
		KeyFindRecipes:       "Find Recipes",
		KeySettings:          "Settings",
		KeyFile:              "File",
		KeyLanguage:          "Language",
		KeyAPIKey:            "API Key",
		KeySearchEndpoint:    "Search Endpoint",
		KeyInfoEndpoint:      "Recipe Information Endpoint",
		KeySave:              "Save",
		KeyCancel:            "Cancel",
		KeySettingsSaved:     "Settings saved successfully!",
		KeyInvalidSettings:   "Invalid settings",
		KeyInputRequired:     "Input Required",
		KeyPleaseEnter:       "Please enter ingredients.",
		KeyFetchingRecipes:   "Fetching live recipes...",
		KeyNoRecipes:         "No recipes found. Try more ingredients.",
		KeySearchFailed:      "Search failed",
		KeyUsed:              "Used:",
		KeyMissing:           "Missing:",
		KeyGetRecipe:         "Get Recipe",
		KeyLoadingDetails:    "Loading recipe details...",
		KeyViewOnline:        "View Full Recipe Online",
		KeyAPIError:          "API Error",
		KeyError:             "Error",
		KeyErrorOpeningLink:  "Error opening link",
		KeyPlaceholderAPIKey: "No API key configured. Set one in Settings.",
		KeyOK:                "OK",
	}

	// Russian texts
	l.texts["ru"] = map[string]string{
		KeyAppTitle:          "Умный поиск рецептов",
		KeyHeading:           "🍽 Умный поиск рецептов",
		KeyIngredientsLabel:  "Введите ингредиенты (через запятую):",
		KeyIngredientsHint:   "например: хлеб, чеснок, лук, курица",
		KeyFindRecipes:       "Найти рецепты",
		KeySettings:          "Настройки",
		KeyFile:              "Файл",
		KeyLanguage:          "Язык",
		KeyAPIKey:            "Ключ API",
		KeySearchEndpoint:    "Адрес поиска",
		KeyInfoEndpoint:      "Адрес информации о рецепте",
		KeySave:              "Сохранить",
		KeyCancel:            "Отмена",
		KeySettingsSaved:     "Настройки успешно сохранены!",
		KeyInvalidSettings:   "Неверные настройки",
		KeyInputRequired:     "Требуется ввод",
		KeyPleaseEnter:       "Пожалуйста, введите ингредиенты.",
		KeyFetchingRecipes:   "Загрузка рецептов...",
		KeyNoRecipes:         "Рецепты не найдены. Попробуйте больше ингредиентов.",
		KeySearchFailed:      "Ошибка поиска",
		KeyUsed:              "Есть:",
		KeyMissing:           "Не хватает:",
		KeyGetRecipe:         "Открыть рецепт",
		KeyLoadingDetails:    "Загрузка рецепта...",
		KeyViewOnline:        "Полный рецепт на сайте",
		KeyAPIError:          "Ошибка API",
		KeyError:             "Ошибка",
		KeyErrorOpeningLink:  "Ошибка открытия ссылки",
		KeyPlaceholderAPIKey: "Ключ API не задан. Укажите его в настройках.",
		KeyOK:                "ОК",
	}

	// Portuguese texts
	l.texts["pt"] = map[string]string{
		KeyAppTitle:          "Buscador de Receitas",
		KeyHeading:           "🍽 Buscador de Receitas",
		KeyIngredientsLabel:  "Digite os ingredientes (separados por vírgula):",
		KeyIngredientsHint:   "ex.: pão, alho, cebola, frango",
		KeyFindRecipes:       "Buscar Receitas",
		KeySettings:          "Configurações",
		KeyFile:              "Arquivo",
		KeyLanguage:          "Idioma",
		KeyAPIKey:            "Chave da API",
		KeySearchEndpoint:    "Endpoint de Busca",
		KeyInfoEndpoint:      "Endpoint de Informações da Receita",
		KeySave:              "Salvar",
		KeyCancel:            "Cancelar",
		KeySettingsSaved:     "Configurações salvas com sucesso!",
		KeyInvalidSettings:   "Configurações inválidas",
		KeyInputRequired:     "Entrada Necessária",
		KeyPleaseEnter:       "Por favor, digite os ingredientes.",
		KeyFetchingRecipes:   "Buscando receitas...",
		KeyNoRecipes:         "Nenhuma receita encontrada. Tente mais ingredientes.",
		KeySearchFailed:      "Falha na busca",
		KeyUsed:              "Usados:",
		KeyMissing:           "Faltando:",
		KeyGetRecipe:         "Ver Receita",
		KeyLoadingDetails:    "Carregando receita...",
		KeyViewOnline:        "Ver Receita Completa Online",
		KeyAPIError:          "Erro da API",
		KeyError:             "Erro",
		KeyErrorOpeningLink:  "Erro ao abrir link",
		KeyPlaceholderAPIKey: "Nenhuma chave de API configurada. Defina uma nas Configurações.",
		KeyOK:                "OK",
	}
}
