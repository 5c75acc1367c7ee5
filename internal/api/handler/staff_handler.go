package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/schooldesk/school-api/internal/core/domain"
	"github.com/schooldesk/school-api/internal/core/ports"
)

// StaffHandler handles the staff of the school in the path.
// Ownership of :schoolId is enforced by middleware before these run.
type StaffHandler struct {
	service ports.RosterService
}

func NewStaffHandler(service ports.RosterService) *StaffHandler {
	return &StaffHandler{service: service}
}

// Create adds a staff member.
//
// @Summary      Add a staff member
// @Tags         staff
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        schoolId  path      string          true  "School ID"
// @Param        body      body      staffRequest  true  "Staff member"
// @Success      201       {object}  domain.Staff
// @Failure      400       {object}  errorBody
// @Failure      401       {object}  errorBody
// @Failure      403       {object}  errorBody
// @Router       /api/schools/{schoolId}/staffs [post]
func (h *StaffHandler) Create(c echo.Context) error {
	var req staffRequest
	if err := bindAndValidate(c, &req); err != nil {
		return err
	}
	member, err := h.service.CreateStaff(c.Request().Context(), c.Param("schoolId"), req.toInput())
	if err != nil {
		return err
	}
	return c.JSON(http.StatusCreated, member)
}

// List returns all staff.
//
// @Summary      List staff
// @Tags         staff
// @Produce      json
// @Security     BearerAuth
// @Param        schoolId  path      string  true  "School ID"
// @Success      200       {array}   domain.Staff
// @Failure      401       {object}  errorBody
// @Failure      403       {object}  errorBody
// @Router       /api/schools/{schoolId}/staffs [get]
func (h *StaffHandler) List(c echo.Context) error {
	staff, err := h.service.ListStaff(c.Request().Context(), c.Param("schoolId"))
	if err != nil {
		return err
	}
	if staff == nil {
		staff = []domain.Staff{}
	}
	return c.JSON(http.StatusOK, staff)
}

// Get returns one staff member.
//
// @Summary      Get a staff member
// @Tags         staff
// @Produce      json
// @Security     BearerAuth
// @Param        schoolId   path      string  true  "School ID"
// @Param        staffId  path      string  true  "Staff ID"
// @Success      200        {object}  domain.Staff
// @Failure      404        {object}  errorBody
// @Router       /api/schools/{schoolId}/staffs/{staffId} [get]
func (h *StaffHandler) Get(c echo.Context) error {
	member, err := h.service.GetStaff(c.Request().Context(), c.Param("schoolId"), c.Param("staffId"))
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, member)
}

// Update replaces a staff member's fields.
//
// @Summary      Update a staff member
// @Tags         staff
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        schoolId   path      string          true  "School ID"
// @Param        staffId  path      string          true  "Staff ID"
// @Param        body       body      staffRequest  true  "Staff member"
// @Success      200        {object}  domain.Staff
// @Failure      400        {object}  errorBody
// @Failure      404        {object}  errorBody
// @Router       /api/schools/{schoolId}/staffs/{staffId} [put]
func (h *StaffHandler) Update(c echo.Context) error {
	var req staffRequest
	if err := bindAndValidate(c, &req); err != nil {
		return err
	}
	member, err := h.service.UpdateStaff(c.Request().Context(), c.Param("schoolId"), c.Param("staffId"), req.toInput())
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, member)
}

// Delete removes a staff member.
//
// @Summary      Delete a staff member
// @Tags         staff
// @Security     BearerAuth
// @Param        schoolId   path  string  true  "School ID"
// @Param        staffId  path  string  true  "Staff ID"
// @Success      204
// @Failure      404  {object}  errorBody
// @Router       /api/schools/{schoolId}/staffs/{staffId} [delete]
func (h *StaffHandler) Delete(c echo.Context) error {
	if err := h.service.DeleteStaff(c.Request().Context(), c.Param("schoolId"), c.Param("staffId")); err != nil {
		return err
	}
	return c.NoContent(http.StatusNoContent)
}
