package search

// Package search coordinates recipe searches and detail lookups off the UI
// thread. It keeps exactly one live search, drops results of superseded
// searches, and prefetches thumbnails before handing results to the UI.
