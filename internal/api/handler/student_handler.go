package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/schooldesk/school-api/internal/core/domain"
	"github.com/schooldesk/school-api/internal/core/ports"
)

// StudentHandler handles the students of the school in the path.
// Ownership of :schoolId is enforced by middleware before these run.
type StudentHandler struct {
	service ports.RosterService
}

func NewStudentHandler(service ports.RosterService) *StudentHandler {
	return &StudentHandler{service: service}
}

// Create adds a student.
//
// @Summary      Add a student
// @Tags         students
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        schoolId  path      string          true  "School ID"
// @Param        body      body      studentRequest  true  "Student"
// @Success      201       {object}  domain.Student
// @Failure      400       {object}  errorBody
// @Failure      401       {object}  errorBody
// @Failure      403       {object}  errorBody
// @Router       /api/schools/{schoolId}/students [post]
func (h *StudentHandler) Create(c echo.Context) error {
	var req studentRequest
	if err := bindAndValidate(c, &req); err != nil {
		return err
	}
	student, err := h.service.CreateStudent(c.Request().Context(), c.Param("schoolId"), req.toInput())
	if err != nil {
		return err
	}
	return c.JSON(http.StatusCreated, student)
}

// List returns all students.
//
// @Summary      List students
// @Tags         students
// @Produce      json
// @Security     BearerAuth
// @Param        schoolId  path      string  true  "School ID"
// @Success      200       {array}   domain.Student
// @Failure      401       {object}  errorBody
// @Failure      403       {object}  errorBody
// @Router       /api/schools/{schoolId}/students [get]
func (h *StudentHandler) List(c echo.Context) error {
	students, err := h.service.ListStudents(c.Request().Context(), c.Param("schoolId"))
	if err != nil {
		return err
	}
	if students == nil {
		students = []domain.Student{}
	}
	return c.JSON(http.StatusOK, students)
}

// Get returns one student.
//
// @Summary      Get a student
// @Tags         students
// @Produce      json
// @Security     BearerAuth
// @Param        schoolId   path      string  true  "School ID"
// @Param        studentId  path      string  true  "Student ID"
// @Success      200        {object}  domain.Student
// @Failure      404        {object}  errorBody
// @Router       /api/schools/{schoolId}/students/{studentId} [get]
func (h *StudentHandler) Get(c echo.Context) error {
	student, err := h.service.GetStudent(c.Request().Context(), c.Param("schoolId"), c.Param("studentId"))
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, student)
}

// Update replaces a student's fields.
//
// @Summary      Update a student
// @Tags         students
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        schoolId   path      string          true  "School ID"
// @Param        studentId  path      string          true  "Student ID"
// @Param        body       body      studentRequest  true  "Student"
// @Success      200        {object}  domain.Student
// @Failure      400        {object}  errorBody
// @Failure      404        {object}  errorBody
// @Router       /api/schools/{schoolId}/students/{studentId} [put]
func (h *StudentHandler) Update(c echo.Context) error {
	var req studentRequest
	if err := bindAndValidate(c, &req); err != nil {
		return err
	}
	student, err := h.service.UpdateStudent(c.Request().Context(), c.Param("schoolId"), c.Param("studentId"), req.toInput())
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, student)
}

// Delete removes a student.
//
// @Summary      Delete a student
// @Tags         students
// @Security     BearerAuth
// @Param        schoolId   path  string  true  "School ID"
// @Param        studentId  path  string  true  "Student ID"
// @Success      204
// @Failure      404  {object}  errorBody
// @Router       /api/schools/{schoolId}/students/{studentId} [delete]
func (h *StudentHandler) Delete(c echo.Context) error {
	if err := h.service.DeleteStudent(c.Request().Context(), c.Param("schoolId"), c.Param("studentId")); err != nil {
		return err
	}
	return c.NoContent(http.StatusNoContent)
}
