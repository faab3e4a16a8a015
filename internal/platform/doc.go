package platform

// Package platform contains OS/platform integration: opening links in the
// default browser and locating the per-user configuration directory.
