package main

import (
	"fmt"
	"log"
	"os"
	"path/filepath"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/app"

	"github.com/ytget/recipe-finder/internal/config"
	"github.com/ytget/recipe-finder/internal/platform"
	"github.com/ytget/recipe-finder/internal/search"
	"github.com/ytget/recipe-finder/internal/spoonacular"
	"github.com/ytget/recipe-finder/internal/thumbnail"
	"github.com/ytget/recipe-finder/internal/ui"
)

// Version is set during build via -ldflags "-X main.version=X.Y.Z"
var version = "dev"

const (
	AppID   = "com.ytget.recipe-finder"
	AppName = "Smart Recipe Finder"
)

func main() {
	// Log version information
	fmt.Printf("%s v%s starting...\n", AppName, version)

	myApp := app.NewWithID(AppID)
	myApp.Settings().SetTheme(ui.NewRecipeTheme())

	windowTitle := fmt.Sprintf("%s v%s", AppName, version)
	myWindow := myApp.NewWindow(windowTitle)
	myWindow.Resize(fyne.NewSize(ui.WindowWidth, ui.WindowHeight))

	// Configuration: defaults < config file < preferences < environment
	fileCfg := loadConfigFile()
	settings := config.NewSettings(myApp, fileCfg)
	apiCfg := settings.APIConfig()
	if apiCfg.IsPlaceholderKey() {
		log.Printf("No Spoonacular API key configured, set %s or use Settings", config.EnvAPIKey)
	}
	if err := apiCfg.Validate(); err != nil {
		log.Printf("Provider configuration is invalid: %v", err)
	}

	// Initialize services
	images := thumbnail.NewFetcher(nil, thumbnail.DefaultParallelism)
	searchSvc := search.NewService(newFinder(apiCfg), images)

	// Create and setup UI
	ui.NewRootUI(myWindow, myApp, searchSvc, settings, newFinder)

	// Show and run
	myWindow.ShowAndRun()
}

// newFinder builds the Spoonacular client for cfg
func newFinder(cfg config.APIConfig) spoonacular.Finder {
	return spoonacular.NewClient(
		cfg.APIKey,
		cfg.SearchEndpoint,
		cfg.InfoEndpoint,
		spoonacular.WithTimeout(cfg.Timeout()),
		spoonacular.WithUserAgent(fmt.Sprintf("recipe-finder/%s", version)),
	)
}

// loadConfigFile reads config.toml from the user config dir, writing a template on first start
func loadConfigFile() config.APIConfig {
	dir, err := platform.GetConfigDir()
	if err != nil {
		log.Printf("failed to resolve config dir: %v", err)
		return config.APIConfig{}
	}
	path := filepath.Join(dir, config.ConfigFileName)

	if _, err := os.Stat(path); os.IsNotExist(err) {
		if err := platform.CreateDirectoryIfNotExists(dir); err != nil {
			log.Printf("failed to ensure config dir: %v", err)
			return config.APIConfig{}
		}
		if err := config.SaveFile(path, config.DefaultAPIConfig()); err != nil {
			log.Printf("failed to write config template: %v", err)
		}
		return config.APIConfig{}
	}

	cfg, err := config.LoadFile(path)
	if err != nil {
		log.Printf("ignoring config file: %v", err)
		return config.APIConfig{}
	}
	log.Printf("Loaded config from %s", path)
	return cfg
}
