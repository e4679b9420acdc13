// Package supabase implements a client for a GoTrue-compatible identity
// provider. It handles the password-grant sign-in and sign-up flows,
// reads identity claims out of the issued access tokens, and notifies
// subscribers about session changes so the rest of the app can react to
// sign-in and sign-out without polling.
package supabase
