package model

// Package model defines domain data structures used across the app: ingredient
// queries, recipe summaries and details, and the search/detail task records the
// UI renders. Structures carry explicit status values for state transitions.
