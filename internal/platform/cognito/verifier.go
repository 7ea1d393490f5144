package cognito

import (
	"context"
	"errors"
	"fmt"

	"github.com/golang-jwt/jwt/v5"

	"github.com/phrazzld/taskboard-api/internal/config"
	"github.com/phrazzld/taskboard-api/internal/service/auth"
)

// accessTokenClaims is the subset of Cognito access token claims the
// verifier extracts. Role groups arrive in the "cognito:groups" claim.
type accessTokenClaims struct {
	Username string   `json:"username"`
	TokenUse string   `json:"token_use"`
	Groups   []string `json:"cognito:groups"`
	jwt.RegisteredClaims
}

// Verifier implements auth.TokenVerifier by validating Cognito access
// tokens (RS256) against the user pool's published JWKS. Only signature,
// issuer, expiry, and token_use are checked; no network call to Cognito is
// made on the happy path once the signing keys are cached.
type Verifier struct {
	issuer string
	keys   *keyCache
}

// Ensure Verifier implements auth.TokenVerifier interface
var _ auth.TokenVerifier = (*Verifier)(nil)

// NewVerifier creates a token verifier for the configured user pool.
func NewVerifier(cfg config.CognitoConfig) *Verifier {
	issuer := fmt.Sprintf("https://cognito-idp.%s.amazonaws.com/%s", cfg.Region, cfg.UserPoolID)
	return &Verifier{
		issuer: issuer,
		keys:   newKeyCache(issuer + "/.well-known/jwks.json"),
	}
}

// Verify parses and validates the raw access token, returning the caller
// identity it asserts.
func (v *Verifier) Verify(ctx context.Context, rawToken string) (*auth.Identity, error) {
	claims := &accessTokenClaims{}

	_, err := jwt.ParseWithClaims(
		rawToken,
		claims,
		func(token *jwt.Token) (interface{}, error) {
			keyID, ok := token.Header["kid"].(string)
			if !ok || keyID == "" {
				return nil, errors.New("token missing key ID header")
			}
			return v.keys.Get(ctx, keyID)
		},
		jwt.WithValidMethods([]string{jwt.SigningMethodRS256.Alg()}),
		jwt.WithIssuer(v.issuer),
		jwt.WithExpirationRequired(),
	)
	if err != nil {
		if errors.Is(err, jwt.ErrTokenExpired) {
			return nil, auth.ErrExpiredToken
		}
		return nil, fmt.Errorf("%w: %v", auth.ErrInvalidToken, err)
	}

	// Only access tokens are accepted on protected routes; an ID token
	// passes the signature check but must be rejected here.
	if claims.TokenUse != "access" {
		return nil, fmt.Errorf("%w: unexpected token_use %q", auth.ErrInvalidToken, claims.TokenUse)
	}

	return &auth.Identity{
		Subject:  claims.Subject,
		Username: claims.Username,
		Groups:   claims.Groups,
	}, nil
}
