package supabase

import (
	"fmt"

	"github.com/golang-jwt/jwt/v5"
)

// SessionUser is the identity the provider vouches for.
type SessionUser struct {
	// ID is the provider's stable identifier for the account
	ID string `json:"id"`

	// Email is the address the account was registered with
	Email string `json:"email"`

	// UserMetadata carries free-form profile fields set at sign-up
	// (full_name, preferred_username, and similar)
	UserMetadata map[string]interface{} `json:"user_metadata"`
}

// Session is an authenticated session issued by the provider.
type Session struct {
	AccessToken  string      `json:"access_token"`
	RefreshToken string      `json:"refresh_token"`
	TokenType    string      `json:"token_type"`
	ExpiresIn    int         `json:"expires_in"`
	User         SessionUser `json:"user"`
}

// tokenClaims are the JWT claims the provider embeds in access tokens.
type tokenClaims struct {
	Email        string                 `json:"email"`
	UserMetadata map[string]interface{} `json:"user_metadata"`
	jwt.RegisteredClaims
}

// UserFromToken recovers the session user from the access token claims.
// Some provider responses omit the user object; the token always carries
// the subject, email, and metadata.
//
// The token signature is NOT verified: the token was just received over
// TLS from the provider itself, and this client holds no signing secret.
func UserFromToken(accessToken string) (SessionUser, error) {
	parser := jwt.NewParser()

	var claims tokenClaims
	if _, _, err := parser.ParseUnverified(accessToken, &claims); err != nil {
		return SessionUser{}, fmt.Errorf("%w: %v", ErrInvalidToken, err)
	}

	if claims.Subject == "" {
		return SessionUser{}, fmt.Errorf("%w: token has no subject", ErrInvalidToken)
	}

	return SessionUser{
		ID:           claims.Subject,
		Email:        claims.Email,
		UserMetadata: claims.UserMetadata,
	}, nil
}
