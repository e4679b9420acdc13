// Package gemini implements the generation.Responder interface using
// Google's Gemini API to produce companion chat replies.
//
// The responder holds one client per configured API key and rotates
// through them on failure, so a rate-limited or revoked key degrades
// the experience instead of breaking it.
package gemini
