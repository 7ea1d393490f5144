package mocks

import (
	"context"

	"github.com/phrazzld/taskboard-api/internal/service/auth"
)

// Authenticator is a configurable fake implementation of auth.Authenticator.
type Authenticator struct {
	// AuthenticateFn is invoked by Authenticate when set.
	AuthenticateFn func(ctx context.Context, email, password string) (*auth.TokenBundle, error)

	// Calls records the (email, password) pairs Authenticate was invoked with.
	Calls []AuthenticateCall
}

// AuthenticateCall is one recorded invocation of Authenticate.
type AuthenticateCall struct {
	Email    string
	Password string
}

// Ensure Authenticator implements auth.Authenticator interface
var _ auth.Authenticator = (*Authenticator)(nil)

// Authenticate implements auth.Authenticator.Authenticate
func (a *Authenticator) Authenticate(
	ctx context.Context,
	email, password string,
) (*auth.TokenBundle, error) {
	a.Calls = append(a.Calls, AuthenticateCall{Email: email, Password: password})
	if a.AuthenticateFn != nil {
		return a.AuthenticateFn(ctx, email, password)
	}
	return &auth.TokenBundle{}, nil
}

// TokenVerifier is a configurable fake implementation of auth.TokenVerifier.
type TokenVerifier struct {
	// VerifyFn is invoked by Verify when set.
	VerifyFn func(ctx context.Context, rawToken string) (*auth.Identity, error)
}

// Ensure TokenVerifier implements auth.TokenVerifier interface
var _ auth.TokenVerifier = (*TokenVerifier)(nil)

// Verify implements auth.TokenVerifier.Verify
func (v *TokenVerifier) Verify(ctx context.Context, rawToken string) (*auth.Identity, error) {
	if v.VerifyFn != nil {
		return v.VerifyFn(ctx, rawToken)
	}
	return nil, auth.ErrInvalidToken
}
