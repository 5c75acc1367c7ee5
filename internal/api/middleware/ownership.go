package middleware

import (
	"github.com/labstack/echo/v4"

	"github.com/schooldesk/school-api/internal/api/metrics"
	"github.com/schooldesk/school-api/internal/core/domain"
)

// OwnSchool only lets a request through when the school in the path
// parameter param is the authenticated school. It must run after Auth.
func OwnSchool(param string) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			id, ok := IdentityFrom(c)
			if !ok {
				metrics.AuthRejectionsTotal.WithLabelValues("missing_token").Inc()
				return domain.ErrUnauthenticated
			}
			if c.Param(param) != id.SchoolID {
				metrics.AuthRejectionsTotal.WithLabelValues("forbidden").Inc()
				return domain.ErrForbidden
			}
			return next(c)
		}
	}
}
