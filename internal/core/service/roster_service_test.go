package service

import (
	"context"
	"errors"
	"testing"

	"github.com/schooldesk/school-api/internal/core/domain"
	"github.com/schooldesk/school-api/internal/core/ports"
)

func studentInput(name string) ports.StudentInput {
	return ports.StudentInput{
		Name:        name,
		Age:         12,
		Class:       "JSS2",
		Height:      "150cm",
		Weight:      "40kg",
		Avatar:      "https://cdn.example.com/ada.png",
		Nationality: "Nigerian",
	}
}

func TestRosterService_StudentLifecycle(t *testing.T) {
	repo := newStubRosterRepo("s1")
	svc := NewRosterService(repo, repo, discardLogger)
	ctx := context.Background()

	created, err := svc.CreateStudent(ctx, "s1", studentInput("Ada Obi"))
	if err != nil {
		t.Fatalf("create: %v", err)
	}
	if created.ID == "" || created.CreatedAt.IsZero() {
		t.Fatalf("expected id and timestamps, got %+v", created)
	}

	list, err := svc.ListStudents(ctx, "s1")
	if err != nil || len(list) != 1 {
		t.Fatalf("expected one student, got %d (%v)", len(list), err)
	}

	in := studentInput("Ada Obi")
	in.Class = "JSS3"
	updated, err := svc.UpdateStudent(ctx, "s1", created.ID, in)
	if err != nil {
		t.Fatalf("update: %v", err)
	}
	if updated.Class != "JSS3" || !updated.CreatedAt.Equal(created.CreatedAt) {
		t.Fatalf("unexpected update result: %+v", updated)
	}

	if err := svc.DeleteStudent(ctx, "s1", created.ID); err != nil {
		t.Fatalf("delete: %v", err)
	}
	if _, err := svc.GetStudent(ctx, "s1", created.ID); !errors.Is(err, domain.ErrStudentNotFound) {
		t.Fatalf("expected ErrStudentNotFound, got %v", err)
	}
}

func TestRosterService_CreateStudent_UnknownSchool(t *testing.T) {
	repo := newStubRosterRepo()
	svc := NewRosterService(repo, repo, discardLogger)

	if _, err := svc.CreateStudent(context.Background(), "ghost", studentInput("Ada Obi")); !errors.Is(err, domain.ErrSchoolNotFound) {
		t.Fatalf("expected ErrSchoolNotFound, got %v", err)
	}
}

func TestRosterService_StoreFailureIsTransient(t *testing.T) {
	repo := newStubRosterRepo("s1")
	repo.err = errors.New("socket closed")
	svc := NewRosterService(repo, repo, discardLogger)

	if _, err := svc.ListStudents(context.Background(), "s1"); !errors.Is(err, domain.ErrTransient) {
		t.Fatalf("expected ErrTransient, got %v", err)
	}
}

func TestRosterService_StaffLifecycle(t *testing.T) {
	repo := newStubRosterRepo("s1")
	svc := NewRosterService(repo, repo, discardLogger)
	ctx := context.Background()

	in := ports.StaffInput{
		Name:        "Grace Bello",
		Age:         34,
		TypeOfStaff: "Teacher",
		Office:      "Block B",
		Height:      "170cm",
		Weight:      "65kg",
		Avatar:      "https://cdn.example.com/grace.png",
		Salary:      250000,
		Nationality: "Nigerian",
	}
	created, err := svc.CreateStaff(ctx, "s1", in)
	if err != nil {
		t.Fatalf("create: %v", err)
	}

	in.Salary = 300000
	updated, err := svc.UpdateStaff(ctx, "s1", created.ID, in)
	if err != nil {
		t.Fatalf("update: %v", err)
	}
	if updated.Salary != 300000 {
		t.Fatalf("expected salary update, got %v", updated.Salary)
	}

	if err := svc.DeleteStaff(ctx, "s1", created.ID); err != nil {
		t.Fatalf("delete: %v", err)
	}
	if err := svc.DeleteStaff(ctx, "s1", created.ID); !errors.Is(err, domain.ErrStaffNotFound) {
		t.Fatalf("expected ErrStaffNotFound, got %v", err)
	}
}
