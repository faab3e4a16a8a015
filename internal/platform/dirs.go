package platform

import (
	"fmt"
	"os"
	"path/filepath"
)

// File permissions
const (
	DefaultDirPermissions = 0700
)

// AppDirName is the per-user configuration directory name
const AppDirName = "recipe-finder"

// userConfigDir is swapped in tests
var userConfigDir = os.UserConfigDir

// GetConfigDir returns <user config dir>/recipe-finder
func GetConfigDir() (string, error) {
	base, err := userConfigDir()
	if err != nil {
		return "", fmt.Errorf("failed to get user config directory: %w", err)
	}
	return filepath.Join(base, AppDirName), nil
}

// CreateDirectoryIfNotExists creates a directory if it doesn't exist
func CreateDirectoryIfNotExists(dirPath string) error {
	if _, err := os.Stat(dirPath); os.IsNotExist(err) {
		return os.MkdirAll(dirPath, DefaultDirPermissions)
	}
	return nil
}
