package spoonacular

// Package spoonacular is the HTTP client for the recipe provider. It issues the
// "find by ingredients" and "recipe information" requests, maps responses into
// model types, and classifies failures as API or transport errors.
