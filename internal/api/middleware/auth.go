package middleware

import (
	"errors"
	"strings"

	"github.com/labstack/echo/v4"

	"github.com/schooldesk/school-api/internal/api/metrics"
	"github.com/schooldesk/school-api/internal/core/domain"
	"github.com/schooldesk/school-api/internal/core/ports"
)

const identityKey = "identity"

// Auth verifies the bearer token and stores the school identity in the echo
// context. Requests without a valid token never reach next.
func Auth(verifier ports.TokenVerifier) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			raw, ok := bearerToken(c.Request().Header.Get(echo.HeaderAuthorization))
			if !ok {
				metrics.AuthRejectionsTotal.WithLabelValues("missing_token").Inc()
				return domain.ErrUnauthenticated
			}

			id, err := verifier.Verify(raw)
			if err != nil {
				if errors.Is(err, domain.ErrTokenExpired) {
					metrics.AuthRejectionsTotal.WithLabelValues("expired_token").Inc()
					return domain.ErrTokenExpired
				}
				metrics.AuthRejectionsTotal.WithLabelValues("invalid_token").Inc()
				return domain.ErrUnauthenticated
			}

			SetIdentity(c, id)
			return next(c)
		}
	}
}

func bearerToken(header string) (string, bool) {
	scheme, token, ok := strings.Cut(header, " ")
	if !ok || !strings.EqualFold(scheme, "bearer") {
		return "", false
	}
	token = strings.TrimSpace(token)
	return token, token != ""
}

// SetIdentity attaches a verified identity to the request.
func SetIdentity(c echo.Context, id domain.Identity) {
	c.Set(identityKey, id)
}

// IdentityFrom returns the identity stored by Auth.
func IdentityFrom(c echo.Context) (domain.Identity, bool) {
	id, ok := c.Get(identityKey).(domain.Identity)
	return id, ok && id.SchoolID != ""
}
