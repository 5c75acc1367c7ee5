package ports

import (
	"context"

	"github.com/schooldesk/school-api/internal/core/domain"
)

// SchoolRepository defines persistence for school accounts. Emails are stored
// and looked up lower-cased.
type SchoolRepository interface {
	Create(ctx context.Context, school *domain.School) (*domain.School, error)
	// FindByEmail returns domain.ErrSchoolNotFound when no school uses email.
	FindByEmail(ctx context.Context, email string) (*domain.School, error)
	FindByID(ctx context.Context, id string) (*domain.School, error)
	// UpdateProfile applies the non-nil fields of update and returns the stored school.
	UpdateProfile(ctx context.Context, id string, update ProfileUpdate) (*domain.School, error)
}

// ProfileUpdate carries a partial school profile. Nil fields are left untouched.
type ProfileUpdate struct {
	Name             *string
	Email            *string
	InstitutionLevel *string
	Country          *string
	Address          *string
	PhoneNumber      *string
	Currency         *string
	BackdropImage    *string
	AvatarImage      *string
}

// StudentRepository manages the students embedded in a school.
type StudentRepository interface {
	AddStudent(ctx context.Context, schoolID string, s *domain.Student) error
	ListStudents(ctx context.Context, schoolID string) ([]domain.Student, error)
	FindStudent(ctx context.Context, schoolID, studentID string) (*domain.Student, error)
	ReplaceStudent(ctx context.Context, schoolID string, s *domain.Student) error
	DeleteStudent(ctx context.Context, schoolID, studentID string) error
}

// StaffRepository manages the staff embedded in a school.
type StaffRepository interface {
	AddStaff(ctx context.Context, schoolID string, s *domain.Staff) error
	ListStaff(ctx context.Context, schoolID string) ([]domain.Staff, error)
	FindStaff(ctx context.Context, schoolID, staffID string) (*domain.Staff, error)
	ReplaceStaff(ctx context.Context, schoolID string, s *domain.Staff) error
	DeleteStaff(ctx context.Context, schoolID, staffID string) error
}
