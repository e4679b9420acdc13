// Package api implements the localhost HTTP surface the UI talks to.
// Handlers decode and validate requests, call into the service layer,
// and translate service errors into sanitized JSON error responses.
package api
