// Package auth defines the authentication contracts for the application:
// the Authenticator that exchanges credentials for a token bundle at the
// identity provider, the TokenVerifier that validates bearer tokens on
// protected routes, and the fixed set of failure categories the HTTP layer
// branches on.
package auth
