package auth

import (
	"errors"
	"strings"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

var (
	// ErrInvalidCredentials is returned by Issue when the submitted
	// password does not match the configured admin secret. There is a
	// single identity, so "unknown user" and "wrong password" are the
	// same condition.
	ErrInvalidCredentials = errors.New("invalid credentials")

	// ErrMissingToken means no Authorization header was present.
	ErrMissingToken = errors.New("no token provided")

	// ErrMalformedToken means the Authorization header carried no
	// bearer token segment.
	ErrMalformedToken = errors.New("invalid token format")

	// ErrInvalidToken covers bad signatures and expired tokens.
	ErrInvalidToken = errors.New("invalid token")
)

// Claims is the token payload: a single admin marker plus expiry.
type Claims struct {
	Admin bool `json:"admin"`
	jwt.RegisteredClaims
}

// Tokens issues and verifies admin bearer tokens. Validity is purely
// a function of signature and expiry; there is no revocation list, so
// a leaked token remains valid until it expires naturally.
type Tokens struct {
	adminPassword string
	secret        []byte
	ttl           time.Duration

	now func() time.Time // overridable in tests
}

func NewTokens(adminPassword, secret string, ttl time.Duration) *Tokens {
	if ttl <= 0 {
		ttl = 24 * time.Hour
	}
	return &Tokens{
		adminPassword: adminPassword,
		secret:        []byte(secret),
		ttl:           ttl,
		now:           time.Now,
	}
}

// Issue mints a signed token when password matches the admin secret.
// No rate limiting or lockout is applied; see the known limitations
// in DESIGN.md.
func (t *Tokens) Issue(password string) (string, error) {
	if password == "" || password != t.adminPassword {
		return "", ErrInvalidCredentials
	}

	now := t.now()
	claims := Claims{
		Admin: true,
		RegisteredClaims: jwt.RegisteredClaims{
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(t.ttl)),
		},
	}

	tok := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return tok.SignedString(t.secret)
}

// Verify validates signature and expiry of a raw token string.
func (t *Tokens) Verify(raw string) (*Claims, error) {
	claims := &Claims{}
	parsed, err := jwt.ParseWithClaims(raw, claims, func(tok *jwt.Token) (interface{}, error) {
		if _, ok := tok.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, ErrInvalidToken
		}
		return t.secret, nil
	}, jwt.WithTimeFunc(t.now))
	if err != nil || !parsed.Valid {
		return nil, ErrInvalidToken
	}
	return claims, nil
}

// VerifyHeader extracts the bearer token from an Authorization header
// value and verifies it, distinguishing missing from malformed headers.
func (t *Tokens) VerifyHeader(header string) (*Claims, error) {
	if strings.TrimSpace(header) == "" {
		return nil, ErrMissingToken
	}

	parts := strings.SplitN(header, " ", 2)
	if len(parts) < 2 || strings.TrimSpace(parts[1]) == "" {
		return nil, ErrMalformedToken
	}

	return t.Verify(strings.TrimSpace(parts[1]))
}
