// Package token issues and verifies the signed session tokens that carry
// user identity between requests. Tokens are stateless HS256 JWTs: validity
// is a pure function of the signature and the clock, so no server-side
// session store exists and no revocation happens before expiry.
package token

import (
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"github.com/JuanFernandoBallesterosMaciasUIS/rutinia1/internal/core/domain"
)

const (
	// minSecretLen guards against weak HMAC keys. Shorter secrets are a
	// deployment mistake, rejected at construction so the process fails at
	// startup instead of per request.
	minSecretLen = 32

	defaultTTL = 24 * time.Hour
)

// Codec signs and verifies identity tokens with a single symmetric key,
// fixed at construction.
type Codec struct {
	secret []byte
	ttl    time.Duration
}

// NewCodec builds a Codec from the configured signing secret and token
// lifetime. An absent or short secret is a fatal misconfiguration.
func NewCodec(secret string, ttl time.Duration) (*Codec, error) {
	if len(secret) < minSecretLen {
		return nil, fmt.Errorf("token: signing secret must be at least %d bytes", minSecretLen)
	}
	if ttl <= 0 {
		ttl = defaultTTL
	}
	return &Codec{secret: []byte(secret), ttl: ttl}, nil
}

// TTL returns the configured token lifetime.
func (c *Codec) TTL() time.Duration {
	return c.ttl
}

// Issue creates a signed token asserting subject, issued at now and expiring
// at now plus the configured lifetime.
func (c *Codec) Issue(subject string, now time.Time) (string, error) {
	claims := jwt.RegisteredClaims{
		Subject:   subject,
		IssuedAt:  jwt.NewNumericDate(now),
		ExpiresAt: jwt.NewNumericDate(now.Add(c.ttl)),
	}
	signed, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(c.secret)
	if err != nil {
		return "", fmt.Errorf("token: sign: %w", err)
	}
	return signed, nil
}

// Verify checks the signature and expiry and returns the token subject.
// Every failure cause collapses to domain.ErrInvalidToken wrapping the
// underlying reason; callers log the cause but never surface it.
func (c *Codec) Verify(tokenString string) (string, error) {
	claims := &jwt.RegisteredClaims{}
	parsed, err := jwt.ParseWithClaims(tokenString, claims, func(t *jwt.Token) (any, error) {
		if t.Method.Alg() != jwt.SigningMethodHS256.Alg() {
			return nil, jwt.ErrTokenSignatureInvalid
		}
		return c.secret, nil
	}, jwt.WithExpirationRequired())
	if err != nil {
		return "", fmt.Errorf("%w: %w", domain.ErrInvalidToken, err)
	}
	if !parsed.Valid || claims.Subject == "" {
		return "", domain.ErrInvalidToken
	}
	return claims.Subject, nil
}
