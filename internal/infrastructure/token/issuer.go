// Package token signs and verifies the HS256 bearer tokens that identify an
// authenticated school.
package token

import (
	"errors"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"github.com/schooldesk/school-api/internal/core/domain"
)

// DefaultTTL is the validity window used when none is configured.
const DefaultTTL = 24 * time.Hour

// ErrMissingSigningKey is returned by NewIssuer when no secret is configured.
var ErrMissingSigningKey = errors.New("token: signing key is not configured")

// Claims is the token payload. SchoolID is serialised as "id".
type Claims struct {
	SchoolID string `json:"id"`
	jwt.RegisteredClaims
}

// Issuer implements ports.TokenIssuer and ports.TokenVerifier.
type Issuer struct {
	key []byte
	ttl time.Duration
	now func() time.Time
}

// Option customises an Issuer.
type Option func(*Issuer)

// WithClock overrides the time source used for issuing and verifying.
func WithClock(now func() time.Time) Option {
	return func(i *Issuer) { i.now = now }
}

func NewIssuer(secret string, ttl time.Duration, opts ...Option) (*Issuer, error) {
	if secret == "" {
		return nil, ErrMissingSigningKey
	}
	if ttl <= 0 {
		ttl = DefaultTTL
	}
	i := &Issuer{key: []byte(secret), ttl: ttl, now: time.Now}
	for _, opt := range opts {
		opt(i)
	}
	return i, nil
}

// Issue returns a signed token for schoolID valid for the issuer's TTL.
func (i *Issuer) Issue(schoolID string) (string, error) {
	now := i.now()
	t := jwt.NewWithClaims(jwt.SigningMethodHS256, Claims{
		SchoolID: schoolID,
		RegisteredClaims: jwt.RegisteredClaims{
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(i.ttl)),
		},
	})
	return t.SignedString(i.key)
}

// Verify checks signature and expiry. Expired tokens fail with
// domain.ErrTokenExpired; anything else wrong fails with
// domain.ErrUnauthenticated.
func (i *Issuer) Verify(raw string) (domain.Identity, error) {
	var claims Claims
	parsed, err := jwt.ParseWithClaims(raw, &claims, func(t *jwt.Token) (interface{}, error) {
		return i.key, nil
	},
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
		jwt.WithExpirationRequired(),
		jwt.WithTimeFunc(i.now),
	)
	if err != nil {
		if errors.Is(err, jwt.ErrTokenExpired) {
			return domain.Identity{}, domain.ErrTokenExpired
		}
		return domain.Identity{}, domain.ErrUnauthenticated
	}
	if !parsed.Valid || claims.SchoolID == "" {
		return domain.Identity{}, domain.ErrUnauthenticated
	}
	return domain.Identity{SchoolID: claims.SchoolID}, nil
}
