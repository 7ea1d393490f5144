// Package shared holds the API plumbing used by both handlers and
// middleware: context keys and response helpers.
package shared

import (
	"context"

	"github.com/phrazzld/taskboard-api/internal/service/auth"
)

// contextKey is a private type for context keys defined in this package.
type contextKey string

// IdentityContextKey is the context key under which the authentication
// middleware stores the verified caller identity.
const IdentityContextKey contextKey = "identity"

// IdentityFromContext returns the verified identity stored in the context
// by the authentication middleware, or false if none is present.
func IdentityFromContext(ctx context.Context) (*auth.Identity, bool) {
	identity, ok := ctx.Value(IdentityContextKey).(*auth.Identity)
	if !ok || identity == nil {
		return nil, false
	}
	return identity, true
}
