// Package catalog holds the static content tables: the five companion
// personas, the onboarding matching quiz, the daily check-in questions,
// the marathon reflection questions, the per-companion challenge list,
// persona prompts for the reply generator, and the localized fallback
// phrase bank. Everything here is process-wide read-only state,
// initialized once and never mutated; accessors return copies where a
// caller could otherwise alias internal slices.
package catalog
