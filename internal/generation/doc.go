// Package generation defines the boundary between the chat core and the
// remote conversational AI service. The chat service depends only on the
// Responder interface; the Gemini implementation lives under
// internal/platform/gemini, and failure on this boundary always degrades
// to the local fallback phrase bank rather than surfacing to the user.
package generation
