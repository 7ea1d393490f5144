package auth

import (
	"context"
	"slices"
)

// Identity is the verified caller identity extracted from a validated
// access token. It is placed in the request context by the authentication
// middleware.
type Identity struct {
	// Subject is the provider-assigned unique user identifier.
	Subject string

	// Username is the provider-side username (usually the email).
	Username string

	// Groups holds the role groups the user belongs to (e.g., "user",
	// "admin").
	Groups []string
}

// HasGroup reports whether the identity belongs to any of the given groups.
func (i *Identity) HasGroup(groups ...string) bool {
	for _, g := range groups {
		if slices.Contains(i.Groups, g) {
			return true
		}
	}
	return false
}

// TokenVerifier validates a raw bearer token and returns the identity it
// asserts. Returns ErrInvalidToken or ErrExpiredToken on validation
// failures.
type TokenVerifier interface {
	Verify(ctx context.Context, rawToken string) (*Identity, error)
}
