package supabase

import "errors"

// Common errors returned by the identity provider client
var (
	// ErrInvalidCredentials is returned when the provider rejects the email/password pair
	ErrInvalidCredentials = errors.New("invalid email or password")

	// ErrEmailTaken is returned when signing up with an email that already has an account
	ErrEmailTaken = errors.New("an account with this email already exists")

	// ErrProviderUnavailable is returned when the provider cannot be reached or errors out
	ErrProviderUnavailable = errors.New("identity provider unavailable")

	// ErrInvalidToken is returned when an access token cannot be parsed
	ErrInvalidToken = errors.New("invalid access token")
)
