// Package cognito implements the authentication contracts from
// internal/service/auth against an AWS Cognito user pool: password
// authentication through the InitiateAuth API and access token
// verification against the pool's published JWKS.
package cognito
