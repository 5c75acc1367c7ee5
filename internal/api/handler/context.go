package handler

import (
	"encoding/json"
	"io"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/schooldesk/school-api/internal/api/middleware"
	"github.com/schooldesk/school-api/internal/core/domain"
	"github.com/schooldesk/school-api/internal/core/validation"
)

// ctxIdentity returns the identity injected by the Auth middleware. A missing
// identity means the route was registered without the guard.
func ctxIdentity(c echo.Context) (domain.Identity, error) {
	id, ok := middleware.IdentityFrom(c)
	if !ok {
		return domain.Identity{}, domain.ErrUnauthenticated
	}
	return id, nil
}

// readRecord decodes the JSON body into an untyped record for the rule-based
// request validator.
func readRecord(c echo.Context) (validation.Record, error) {
	body, err := io.ReadAll(c.Request().Body)
	if err != nil {
		return nil, echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	rec := validation.Record{}
	if len(body) == 0 {
		return rec, nil
	}
	if err := json.Unmarshal(body, &rec); err != nil {
		return nil, echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	return rec, nil
}

// bindAndValidate binds the body into req and runs the echo validator.
func bindAndValidate(c echo.Context, req any) error {
	if err := c.Bind(req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	return c.Validate(req)
}
