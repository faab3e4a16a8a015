package platform

import (
	"fmt"
	"net/url"
	"os/exec"
	"runtime"
)

// Operating system constants
const (
	OSDarwin  = "darwin"
	OSWindows = "windows"
	OSLinux   = "linux"
	OSFreeBSD = "freebsd"
	OSAndroid = "android"
)

// Command constants
const (
	OpenCommand     = "open"
	XDGOpenCommand  = "xdg-open"
	RunDLLCommand   = "rundll32"
	URLHandlerEntry = "url.dll,FileProtocolHandler"
	AndroidCommand  = "am"
)

// runCommand is swapped in tests
var runCommand = func(name string, args ...string) error {
	return exec.Command(name, args...).Start()
}

// ValidateWebURL parses raw and accepts only absolute http(s) URLs
func ValidateWebURL(raw string) (*url.URL, error) {
	parsed, err := url.Parse(raw)
	if err != nil {
		return nil, fmt.Errorf("invalid URL %q: %w", raw, err)
	}
	if parsed.Scheme != "http" && parsed.Scheme != "https" {
		return nil, fmt.Errorf("URL must start with http:// or https://: %s", raw)
	}
	if parsed.Host == "" {
		return nil, fmt.Errorf("URL has no host: %s", raw)
	}
	return parsed, nil
}

// OpenInBrowser opens an http(s) URL in the system default browser
func OpenInBrowser(raw string) error {
	parsed, err := ValidateWebURL(raw)
	if err != nil {
		return err
	}

	name, args, err := browserCommand(runtime.GOOS, parsed.String())
	if err != nil {
		return err
	}

	if err := runCommand(name, args...); err != nil {
		return fmt.Errorf("failed to open browser: %w", err)
	}
	return nil
}

// browserCommand returns the launcher command for goos
func browserCommand(goos, target string) (string, []string, error) {
	switch goos {
	case OSDarwin:
		return OpenCommand, []string{target}, nil
	case OSWindows:
		return RunDLLCommand, []string{URLHandlerEntry, target}, nil
	case OSLinux, OSFreeBSD:
		return XDGOpenCommand, []string{target}, nil
	case OSAndroid:
		return AndroidCommand, []string{"start", "-a", "android.intent.action.VIEW", "-d", target}, nil
	default:
		return "", nil, fmt.Errorf("unsupported operating system: %s", goos)
	}
}
