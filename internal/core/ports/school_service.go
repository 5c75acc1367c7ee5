package ports

import (
	"context"

	"github.com/schooldesk/school-api/internal/core/domain"
)

// RegisterInput carries a validated registration. Password is plain text and
// is hashed by the service.
type RegisterInput struct {
	Name             string
	Email            string
	Password         string
	InstitutionLevel string
	Country          string
	Address          string
	PhoneNumber      string
	Currency         string
}

// AuthResult is returned on successful registration or login.
type AuthResult struct {
	Token  string
	School *domain.School
}

// SchoolService defines the account use cases.
type SchoolService interface {
	EnsureEmailAvailable(ctx context.Context, email string) error
	Register(ctx context.Context, input RegisterInput) (*AuthResult, error)
	Login(ctx context.Context, email, password string) (*AuthResult, error)
	Get(ctx context.Context, schoolID string) (*domain.School, error)
	UpdateProfile(ctx context.Context, schoolID string, update ProfileUpdate) (*domain.School, error)
}

// StudentInput carries the writable fields of a student.
type StudentInput struct {
	Name        string
	Age         int
	Class       string
	Height      string
	Weight      string
	Avatar      string
	FeesStatus  string
	Nationality string
}

// StaffInput carries the writable fields of a staff member.
type StaffInput struct {
	Name        string
	Age         int
	TypeOfStaff string
	Office      string
	Height      string
	Weight      string
	Avatar      string
	Salary      float64
	Nationality string
}

// RosterService manages the students and staff of a school.
type RosterService interface {
	CreateStudent(ctx context.Context, schoolID string, in StudentInput) (*domain.Student, error)
	ListStudents(ctx context.Context, schoolID string) ([]domain.Student, error)
	GetStudent(ctx context.Context, schoolID, studentID string) (*domain.Student, error)
	UpdateStudent(ctx context.Context, schoolID, studentID string, in StudentInput) (*domain.Student, error)
	DeleteStudent(ctx context.Context, schoolID, studentID string) error

	CreateStaff(ctx context.Context, schoolID string, in StaffInput) (*domain.Staff, error)
	ListStaff(ctx context.Context, schoolID string) ([]domain.Staff, error)
	GetStaff(ctx context.Context, schoolID, staffID string) (*domain.Staff, error)
	UpdateStaff(ctx context.Context, schoolID, staffID string, in StaffInput) (*domain.Staff, error)
	DeleteStaff(ctx context.Context, schoolID, staffID string) error
}
