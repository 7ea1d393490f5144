package auth

import "context"

// TokenBundle is the set of tokens issued by the identity provider on a
// successful authentication. The fields are returned to the caller
// verbatim; no local parsing or validation is performed on them.
type TokenBundle struct {
	IDToken      string `json:"idToken"`
	AccessToken  string `json:"accessToken"`
	RefreshToken string `json:"refreshToken"`

	// ExpiresIn is the access token lifetime in seconds, as reported by
	// the provider.
	ExpiresIn int64 `json:"expiresIn"`
}

// Authenticator exchanges a user's credentials for a token bundle at the
// remote identity provider. Authentication is attempted exactly once per
// call: no retries, no credential caching, and no local session state.
//
// Failures are reported through the package's error taxonomy:
// ErrInvalidCredentials, ErrAccountNotConfirmed, ErrUserNotFound,
// ErrPasswordChangeRequired, *ProviderError, or a wrapped
// ErrAuthenticationFailed for anything unexpected.
type Authenticator interface {
	Authenticate(ctx context.Context, email, password string) (*TokenBundle, error)
}
