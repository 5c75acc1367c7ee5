package handler

import (
	"context"
	"net/http/httptest"
	"strings"

	"github.com/labstack/echo/v4"

	"github.com/schooldesk/school-api/internal/core/domain"
	"github.com/schooldesk/school-api/internal/core/ports"
)

type stubSchoolService struct {
	ensureFn   func(ctx context.Context, email string) error
	registerFn func(ctx context.Context, in ports.RegisterInput) (*ports.AuthResult, error)
	loginFn    func(ctx context.Context, email, password string) (*ports.AuthResult, error)
	getFn      func(ctx context.Context, schoolID string) (*domain.School, error)
	updateFn   func(ctx context.Context, schoolID string, update ports.ProfileUpdate) (*domain.School, error)
}

func (s *stubSchoolService) EnsureEmailAvailable(ctx context.Context, email string) error {
	return s.ensureFn(ctx, email)
}

func (s *stubSchoolService) Register(ctx context.Context, in ports.RegisterInput) (*ports.AuthResult, error) {
	return s.registerFn(ctx, in)
}

func (s *stubSchoolService) Login(ctx context.Context, email, password string) (*ports.AuthResult, error) {
	return s.loginFn(ctx, email, password)
}

func (s *stubSchoolService) Get(ctx context.Context, schoolID string) (*domain.School, error) {
	return s.getFn(ctx, schoolID)
}

func (s *stubSchoolService) UpdateProfile(ctx context.Context, schoolID string, update ports.ProfileUpdate) (*domain.School, error) {
	return s.updateFn(ctx, schoolID, update)
}

// stubRosterService only implements what the roster tests exercise; the
// embedded interface panics on anything else.
type stubRosterService struct {
	ports.RosterService
	createStudentFn func(ctx context.Context, schoolID string, in ports.StudentInput) (*domain.Student, error)
	listStudentsFn  func(ctx context.Context, schoolID string) ([]domain.Student, error)
	deleteStudentFn func(ctx context.Context, schoolID, studentID string) error
	createStaffFn   func(ctx context.Context, schoolID string, in ports.StaffInput) (*domain.Staff, error)
}

func (s *stubRosterService) CreateStudent(ctx context.Context, schoolID string, in ports.StudentInput) (*domain.Student, error) {
	return s.createStudentFn(ctx, schoolID, in)
}

func (s *stubRosterService) ListStudents(ctx context.Context, schoolID string) ([]domain.Student, error) {
	return s.listStudentsFn(ctx, schoolID)
}

func (s *stubRosterService) DeleteStudent(ctx context.Context, schoolID, studentID string) error {
	return s.deleteStudentFn(ctx, schoolID, studentID)
}

func (s *stubRosterService) CreateStaff(ctx context.Context, schoolID string, in ports.StaffInput) (*domain.Staff, error) {
	return s.createStaffFn(ctx, schoolID, in)
}

type stubMessageService struct {
	sendFn       func(ctx context.Context, in ports.SendMessageInput) (*ports.SendResult, error)
	inboxFn      func(ctx context.Context, schoolID string) ([]*domain.Message, error)
	outboxFn     func(ctx context.Context, schoolID string) ([]*domain.Message, error)
	markViewedFn func(ctx context.Context, schoolID, messageID string) (*domain.Message, error)
}

func (s *stubMessageService) Send(ctx context.Context, in ports.SendMessageInput) (*ports.SendResult, error) {
	return s.sendFn(ctx, in)
}

func (s *stubMessageService) Inbox(ctx context.Context, schoolID string) ([]*domain.Message, error) {
	return s.inboxFn(ctx, schoolID)
}

func (s *stubMessageService) Outbox(ctx context.Context, schoolID string) ([]*domain.Message, error) {
	return s.outboxFn(ctx, schoolID)
}

func (s *stubMessageService) MarkViewed(ctx context.Context, schoolID, messageID string) (*domain.Message, error) {
	return s.markViewedFn(ctx, schoolID, messageID)
}

// newJSONContext builds an echo context carrying body, with the validator
// installed and the given path parameters (name, value pairs) set.
func newJSONContext(method, target, body string, params ...string) (echo.Context, *httptest.ResponseRecorder) {
	e := echo.New()
	e.Validator = NewValidator()
	req := httptest.NewRequest(method, target, strings.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	var names, values []string
	for i := 0; i+1 < len(params); i += 2 {
		names = append(names, params[i])
		values = append(values, params[i+1])
	}
	if len(names) > 0 {
		c.SetParamNames(names...)
		c.SetParamValues(values...)
	}
	return c, rec
}
