package cognito

import (
	"context"
	"crypto/rsa"
	"encoding/base64"
	"encoding/json"
	"fmt"
	"math/big"
	"net/http"
	"sync"
	"time"
)

// jwk is a single RSA key from the pool's published key set. Only the
// fields needed to rebuild the public key are decoded.
type jwk struct {
	KeyType  string `json:"kty"`
	KeyID    string `json:"kid"`
	Modulus  string `json:"n"`
	Exponent string `json:"e"`
}

// jwksDocument is the shape of the .well-known/jwks.json endpoint.
type jwksDocument struct {
	Keys []jwk `json:"keys"`
}

// keyCache fetches and caches the user pool's RSA public keys. Keys are
// cached indefinitely; an unknown key ID triggers a refetch, which covers
// provider-side key rotation.
type keyCache struct {
	jwksURL    string
	httpClient *http.Client

	mu   sync.RWMutex
	keys map[string]*rsa.PublicKey
}

func newKeyCache(jwksURL string) *keyCache {
	return &keyCache{
		jwksURL:    jwksURL,
		httpClient: &http.Client{Timeout: 10 * time.Second},
		keys:       make(map[string]*rsa.PublicKey),
	}
}

// Get returns the public key for the given key ID, refreshing the cache
// from the JWKS endpoint when the ID is unknown.
func (c *keyCache) Get(ctx context.Context, keyID string) (*rsa.PublicKey, error) {
	c.mu.RLock()
	key, ok := c.keys[keyID]
	c.mu.RUnlock()
	if ok {
		return key, nil
	}

	if err := c.refresh(ctx); err != nil {
		return nil, err
	}

	c.mu.RLock()
	key, ok = c.keys[keyID]
	c.mu.RUnlock()
	if !ok {
		return nil, fmt.Errorf("no key found for key ID %q", keyID)
	}
	return key, nil
}

// refresh downloads the key set and replaces the cached keys.
func (c *keyCache) refresh(ctx context.Context) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.jwksURL, nil)
	if err != nil {
		return fmt.Errorf("failed to build JWKS request: %w", err)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("failed to fetch JWKS: %w", err)
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("JWKS endpoint returned status %d", resp.StatusCode)
	}

	var doc jwksDocument
	if err := json.NewDecoder(resp.Body).Decode(&doc); err != nil {
		return fmt.Errorf("failed to decode JWKS document: %w", err)
	}

	keys := make(map[string]*rsa.PublicKey, len(doc.Keys))
	for _, k := range doc.Keys {
		if k.KeyType != "RSA" {
			continue
		}
		pub, err := k.publicKey()
		if err != nil {
			return fmt.Errorf("failed to parse JWK %q: %w", k.KeyID, err)
		}
		keys[k.KeyID] = pub
	}

	c.mu.Lock()
	c.keys = keys
	c.mu.Unlock()
	return nil
}

// publicKey rebuilds the RSA public key from the base64url-encoded
// modulus and exponent.
func (k jwk) publicKey() (*rsa.PublicKey, error) {
	nBytes, err := base64.RawURLEncoding.DecodeString(k.Modulus)
	if err != nil {
		return nil, fmt.Errorf("invalid modulus: %w", err)
	}

	eBytes, err := base64.RawURLEncoding.DecodeString(k.Exponent)
	if err != nil {
		return nil, fmt.Errorf("invalid exponent: %w", err)
	}

	e := 0
	for _, b := range eBytes {
		e = e<<8 | int(b)
	}

	return &rsa.PublicKey{
		N: new(big.Int).SetBytes(nBytes),
		E: e,
	}, nil
}
