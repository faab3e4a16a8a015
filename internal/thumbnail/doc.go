package thumbnail

// Package thumbnail fetches recipe images on a best-effort basis. A failed or
// missing image is reported as "no image" and never as an error.
