package handler

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/schooldesk/school-api/internal/api/metrics"
	"github.com/schooldesk/school-api/internal/core/domain"
	"github.com/schooldesk/school-api/internal/core/ports"
	"github.com/schooldesk/school-api/internal/core/validation"
)

// SchoolHandler handles registration, login and the school profile.
type SchoolHandler struct {
	service ports.SchoolService
}

func NewSchoolHandler(service ports.SchoolService) *SchoolHandler {
	return &SchoolHandler{service: service}
}

// Register creates a school account and returns its token.
//
// @Summary      Register a school
// @Tags         schools
// @Accept       json
// @Produce      json
// @Param        body  body      registerRequest  true  "School registration details"
// @Success      201   {object}  authResponse
// @Failure      400   {object}  errorBody
// @Failure      503   {object}  errorBody
// @Router       /api/schools/register [post]
func (h *SchoolHandler) Register(c echo.Context) error {
	rec, err := readRecord(c)
	if err != nil {
		return err
	}
	if err := validation.RegistrationRules.Validate(rec); err != nil {
		metrics.RegistrationsTotal.WithLabelValues("invalid").Inc()
		return err
	}

	name := rec.String("schoolName")
	if name == "" {
		name = rec.String("name")
	}

	result, err := h.service.Register(c.Request().Context(), ports.RegisterInput{
		Name:             name,
		Email:            rec.String("email"),
		Password:         rec.String("password"),
		InstitutionLevel: rec.String("institutionLevel"),
		Country:          rec.String("country"),
		Address:          rec.String("address"),
		PhoneNumber:      rec.String("phoneNumber"),
		Currency:         rec.String("currency"),
	})
	if err != nil {
		if errors.Is(err, domain.ErrDuplicateEmail) {
			metrics.RegistrationsTotal.WithLabelValues("duplicate").Inc()
		} else {
			metrics.RegistrationsTotal.WithLabelValues("error").Inc()
		}
		return err
	}

	metrics.RegistrationsTotal.WithLabelValues("created").Inc()
	return c.JSON(http.StatusCreated, authResponse{Token: result.Token, School: result.School})
}

// Login authenticates a school and returns a fresh token.
//
// @Summary      Login
// @Tags         schools
// @Accept       json
// @Produce      json
// @Param        body  body      loginRequest  true  "Login credentials"
// @Success      200   {object}  authResponse
// @Failure      400   {object}  errorBody
// @Failure      401   {object}  errorBody
// @Router       /api/schools/login [post]
func (h *SchoolHandler) Login(c echo.Context) error {
	rec, err := readRecord(c)
	if err != nil {
		return err
	}
	if err := validation.LoginRules.Validate(rec); err != nil {
		metrics.LoginsTotal.WithLabelValues("invalid").Inc()
		return err
	}

	result, err := h.service.Login(c.Request().Context(), rec.String("email"), rec.String("password"))
	if err != nil {
		if errors.Is(err, domain.ErrInvalidCredentials) {
			metrics.LoginsTotal.WithLabelValues("invalid").Inc()
		} else {
			metrics.LoginsTotal.WithLabelValues("error").Inc()
		}
		return err
	}

	metrics.LoginsTotal.WithLabelValues("success").Inc()
	return c.JSON(http.StatusOK, authResponse{Token: result.Token, School: result.School})
}

// Me returns the profile of the authenticated school.
//
// @Summary      Current school
// @Tags         schools
// @Produce      json
// @Security     BearerAuth
// @Success      200  {object}  domain.School
// @Failure      401  {object}  errorBody
// @Router       /api/schools/me [get]
func (h *SchoolHandler) Me(c echo.Context) error {
	id, err := ctxIdentity(c)
	if err != nil {
		return err
	}
	school, err := h.service.Get(c.Request().Context(), id.SchoolID)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, school)
}

// Get returns a school profile.
//
// @Summary      Get a school
// @Tags         schools
// @Produce      json
// @Security     BearerAuth
// @Param        schoolId  path      string  true  "School ID"
// @Success      200       {object}  domain.School
// @Failure      401       {object}  errorBody
// @Failure      403       {object}  errorBody
// @Failure      404       {object}  errorBody
// @Router       /api/schools/{schoolId} [get]
func (h *SchoolHandler) Get(c echo.Context) error {
	school, err := h.service.Get(c.Request().Context(), c.Param("schoolId"))
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, school)
}

// Update applies a partial profile update.
//
// @Summary      Update a school profile
// @Tags         schools
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        schoolId  path      string                true  "School ID"
// @Param        body      body      profileUpdateRequest  true  "Fields to change"
// @Success      200       {object}  domain.School
// @Failure      400       {object}  errorBody
// @Failure      401       {object}  errorBody
// @Failure      403       {object}  errorBody
// @Failure      404       {object}  errorBody
// @Router       /api/schools/{schoolId} [patch]
func (h *SchoolHandler) Update(c echo.Context) error {
	rec, err := readRecord(c)
	if err != nil {
		return err
	}
	if err := validation.ProfileUpdateRules.Validate(rec); err != nil {
		return err
	}

	update := ports.ProfileUpdate{
		Name:             optional(rec, "schoolName"),
		Email:            optional(rec, "email"),
		InstitutionLevel: optional(rec, "institutionLevel"),
		Country:          optional(rec, "country"),
		Address:          optional(rec, "address"),
		PhoneNumber:      optional(rec, "phoneNumber"),
		Currency:         optional(rec, "currency"),
		BackdropImage:    optional(rec, "backdropImage"),
		AvatarImage:      optional(rec, "avatarImage"),
	}
	if update.Name == nil {
		update.Name = optional(rec, "name")
	}

	school, err := h.service.UpdateProfile(c.Request().Context(), c.Param("schoolId"), update)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, school)
}

func optional(rec validation.Record, key string) *string {
	v, ok := rec[key].(string)
	if !ok {
		return nil
	}
	return &v
}
