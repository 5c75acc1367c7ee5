package ports

import "github.com/schooldesk/school-api/internal/core/domain"

// TokenIssuer signs identity tokens for authenticated schools.
type TokenIssuer interface {
	Issue(schoolID string) (string, error)
}

// TokenVerifier checks a bearer token and returns the identity it carries.
// Expired tokens fail with domain.ErrTokenExpired, every other failure with
// domain.ErrUnauthenticated.
type TokenVerifier interface {
	Verify(token string) (domain.Identity, error)
}
