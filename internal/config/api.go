package config

import (
	"errors"
	"fmt"
	"net/url"
	"os"
	"strings"
	"time"

	"github.com/pelletier/go-toml/v2"
)

// Provider defaults
const (
	DefaultAPIKey         = "YOUR_API_KEY"
	DefaultSearchEndpoint = "https://api.spoonacular.com/recipes/findByIngredients"
	DefaultInfoEndpoint   = "https://api.spoonacular.com/recipes/{id}/information"
	DefaultTimeoutSeconds = 30

	ConfigFileName = "config.toml"
)

// Environment overrides
const (
	EnvAPIKey         = "RECIPE_FINDER_API_KEY"
	EnvSearchEndpoint = "RECIPE_FINDER_SEARCH_URL"
	EnvInfoEndpoint   = "RECIPE_FINDER_INFO_URL"
)

// APIConfig holds the credential and endpoint templates for the recipe provider
type APIConfig struct {
	APIKey         string `toml:"api_key"`
	SearchEndpoint string `toml:"search_endpoint"`
	InfoEndpoint   string `toml:"info_endpoint"`
	TimeoutSeconds int    `toml:"timeout_seconds"`
}

// DefaultAPIConfig returns the built-in provider configuration
func DefaultAPIConfig() APIConfig {
	return APIConfig{
		APIKey:         DefaultAPIKey,
		SearchEndpoint: DefaultSearchEndpoint,
		InfoEndpoint:   DefaultInfoEndpoint,
		TimeoutSeconds: DefaultTimeoutSeconds,
	}
}

// Timeout returns the per-request timeout
func (c APIConfig) Timeout() time.Duration {
	if c.TimeoutSeconds <= 0 {
		return DefaultTimeoutSeconds * time.Second
	}
	return time.Duration(c.TimeoutSeconds) * time.Second
}

// Validate checks that the endpoints are absolute http(s) URLs and a key is present
func (c APIConfig) Validate() error {
	if strings.TrimSpace(c.APIKey) == "" {
		return errors.New("api key is empty")
	}
	if err := validateEndpoint("search endpoint", c.SearchEndpoint); err != nil {
		return err
	}
	return validateEndpoint("information endpoint", c.InfoEndpoint)
}

// IsPlaceholderKey reports whether the key is still the shipped placeholder
func (c APIConfig) IsPlaceholderKey() bool {
	return c.APIKey == DefaultAPIKey
}

func validateEndpoint(name, raw string) error {
	if strings.TrimSpace(raw) == "" {
		return fmt.Errorf("%s is empty", name)
	}
	parsed, err := url.Parse(raw)
	if err != nil {
		return fmt.Errorf("%s is not a valid URL: %w", name, err)
	}
	if parsed.Scheme != "http" && parsed.Scheme != "https" {
		return fmt.Errorf("%s must start with http:// or https://", name)
	}
	if parsed.Host == "" {
		return fmt.Errorf("%s has no host", name)
	}
	return nil
}

// Merge returns c with every non-empty field of override applied on top
func (c APIConfig) Merge(override APIConfig) APIConfig {
	if override.APIKey != "" {
		c.APIKey = override.APIKey
	}
	if override.SearchEndpoint != "" {
		c.SearchEndpoint = override.SearchEndpoint
	}
	if override.InfoEndpoint != "" {
		c.InfoEndpoint = override.InfoEndpoint
	}
	if override.TimeoutSeconds > 0 {
		c.TimeoutSeconds = override.TimeoutSeconds
	}
	return c
}

// LoadFile reads an APIConfig from a TOML file.
// A missing file yields an empty config and no error.
func LoadFile(path string) (APIConfig, error) {
	var cfg APIConfig

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return cfg, nil
		}
		return cfg, fmt.Errorf("failed to read config file %s: %w", path, err)
	}

	if err := toml.Unmarshal(data, &cfg); err != nil {
		return cfg, fmt.Errorf("failed to parse config file %s: %w", path, err)
	}

	return cfg, nil
}

// SaveFile writes cfg as TOML, creating or truncating the file
func SaveFile(path string, cfg APIConfig) error {
	data, err := toml.Marshal(cfg)
	if err != nil {
		return fmt.Errorf("failed to encode config: %w", err)
	}
	if err := os.WriteFile(path, data, 0600); err != nil {
		return fmt.Errorf("failed to write config file %s: %w", path, err)
	}
	return nil
}

// FromEnv collects overrides from the environment using lookup (usually os.LookupEnv)
func FromEnv(lookup func(string) (string, bool)) APIConfig {
	var cfg APIConfig
	if lookup == nil {
		return cfg
	}
	if v, ok := lookup(EnvAPIKey); ok {
		cfg.APIKey = strings.TrimSpace(v)
	}
	if v, ok := lookup(EnvSearchEndpoint); ok {
		cfg.SearchEndpoint = strings.TrimSpace(v)
	}
	if v, ok := lookup(EnvInfoEndpoint); ok {
		cfg.InfoEndpoint = strings.TrimSpace(v)
	}
	return cfg
}
