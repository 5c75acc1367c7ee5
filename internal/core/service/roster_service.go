package service

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/schooldesk/school-api/internal/core/domain"
	"github.com/schooldesk/school-api/internal/core/ports"
)

// RosterService manages the students and staff embedded in a school.
type RosterService struct {
	students ports.StudentRepository
	staff    ports.StaffRepository
	log      zerolog.Logger
}

func NewRosterService(students ports.StudentRepository, staff ports.StaffRepository, log zerolog.Logger) *RosterService {
	return &RosterService{students: students, staff: staff, log: log}
}

// --- Students ---

func (s *RosterService) CreateStudent(ctx context.Context, schoolID string, in ports.StudentInput) (*domain.Student, error) {
	now := time.Now().UTC()
	student := &domain.Student{ID: uuid.NewString(), CreatedAt: now}
	applyStudent(student, in, now)

	if err := s.students.AddStudent(ctx, schoolID, student); err != nil {
		return nil, storeError("add student", err)
	}
	s.log.Info().Str("school_id", schoolID).Str("student_id", student.ID).Msg("student created")
	return student, nil
}

func (s *RosterService) ListStudents(ctx context.Context, schoolID string) ([]domain.Student, error) {
	students, err := s.students.ListStudents(ctx, schoolID)
	if err != nil {
		return nil, storeError("list students", err)
	}
	return students, nil
}

func (s *RosterService) GetStudent(ctx context.Context, schoolID, studentID string) (*domain.Student, error) {
	student, err := s.students.FindStudent(ctx, schoolID, studentID)
	if err != nil {
		return nil, storeError("find student", err)
	}
	return student, nil
}

func (s *RosterService) UpdateStudent(ctx context.Context, schoolID, studentID string, in ports.StudentInput) (*domain.Student, error) {
	student, err := s.GetStudent(ctx, schoolID, studentID)
	if err != nil {
		return nil, err
	}
	applyStudent(student, in, time.Now().UTC())

	if err := s.students.ReplaceStudent(ctx, schoolID, student); err != nil {
		return nil, storeError("replace student", err)
	}
	return student, nil
}

func (s *RosterService) DeleteStudent(ctx context.Context, schoolID, studentID string) error {
	if err := s.students.DeleteStudent(ctx, schoolID, studentID); err != nil {
		return storeError("delete student", err)
	}
	s.log.Info().Str("school_id", schoolID).Str("student_id", studentID).Msg("student deleted")
	return nil
}

func applyStudent(dst *domain.Student, in ports.StudentInput, now time.Time) {
	dst.Name = in.Name
	dst.Age = in.Age
	dst.Class = in.Class
	dst.Height = in.Height
	dst.Weight = in.Weight
	dst.Avatar = in.Avatar
	dst.FeesStatus = in.FeesStatus
	dst.Nationality = in.Nationality
	dst.UpdatedAt = now
}

// --- Staff ---

func (s *RosterService) CreateStaff(ctx context.Context, schoolID string, in ports.StaffInput) (*domain.Staff, error) {
	now := time.Now().UTC()
	member := &domain.Staff{ID: uuid.NewString(), CreatedAt: now}
	applyStaff(member, in, now)

	if err := s.staff.AddStaff(ctx, schoolID, member); err != nil {
		return nil, storeError("add staff", err)
	}
	s.log.Info().Str("school_id", schoolID).Str("staff_id", member.ID).Msg("staff created")
	return member, nil
}

func (s *RosterService) ListStaff(ctx context.Context, schoolID string) ([]domain.Staff, error) {
	staff, err := s.staff.ListStaff(ctx, schoolID)
	if err != nil {
		return nil, storeError("list staff", err)
	}
	return staff, nil
}

func (s *RosterService) GetStaff(ctx context.Context, schoolID, staffID string) (*domain.Staff, error) {
	member, err := s.staff.FindStaff(ctx, schoolID, staffID)
	if err != nil {
		return nil, storeError("find staff", err)
	}
	return member, nil
}

func (s *RosterService) UpdateStaff(ctx context.Context, schoolID, staffID string, in ports.StaffInput) (*domain.Staff, error) {
	member, err := s.GetStaff(ctx, schoolID, staffID)
	if err != nil {
		return nil, err
	}
	applyStaff(member, in, time.Now().UTC())

	if err := s.staff.ReplaceStaff(ctx, schoolID, member); err != nil {
		return nil, storeError("replace staff", err)
	}
	return member, nil
}

func (s *RosterService) DeleteStaff(ctx context.Context, schoolID, staffID string) error {
	if err := s.staff.DeleteStaff(ctx, schoolID, staffID); err != nil {
		return storeError("delete staff", err)
	}
	s.log.Info().Str("school_id", schoolID).Str("staff_id", staffID).Msg("staff deleted")
	return nil
}

func applyStaff(dst *domain.Staff, in ports.StaffInput, now time.Time) {
	dst.Name = in.Name
	dst.Age = in.Age
	dst.TypeOfStaff = in.TypeOfStaff
	dst.Office = in.Office
	dst.Height = in.Height
	dst.Weight = in.Weight
	dst.Avatar = in.Avatar
	dst.Salary = in.Salary
	dst.Nationality = in.Nationality
	dst.UpdatedAt = now
}
