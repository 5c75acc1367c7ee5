package service

import (
	"context"
	"fmt"

	"github.com/rs/zerolog"

	"github.com/schooldesk/school-api/internal/core/domain"
	"github.com/schooldesk/school-api/internal/core/ports"
)

var discardLogger = zerolog.Nop()

// ---------------------------------------------------------------------------
// Schools
// ---------------------------------------------------------------------------

type stubSchoolRepo struct {
	schools  map[string]*domain.School
	findErr  error // if set, FindByEmail and FindByID return this error
	nextID   int
	lastFind string
}

func newStubSchoolRepo() *stubSchoolRepo {
	return &stubSchoolRepo{schools: make(map[string]*domain.School)}
}

func cloneSchool(s *domain.School) *domain.School {
	if s == nil {
		return nil
	}
	clone := *s
	return &clone
}

func (r *stubSchoolRepo) Create(_ context.Context, s *domain.School) (*domain.School, error) {
	for _, existing := range r.schools {
		if existing.Email == s.Email {
			return nil, domain.ErrDuplicateEmail
		}
	}
	r.nextID++
	created := cloneSchool(s)
	created.ID = fmt.Sprintf("school_%d", r.nextID)
	r.schools[created.ID] = created
	return cloneSchool(created), nil
}

func (r *stubSchoolRepo) FindByEmail(_ context.Context, email string) (*domain.School, error) {
	r.lastFind = email
	if r.findErr != nil {
		return nil, r.findErr
	}
	for _, s := range r.schools {
		if s.Email == email {
			return cloneSchool(s), nil
		}
	}
	return nil, domain.ErrSchoolNotFound
}

func (r *stubSchoolRepo) FindByID(_ context.Context, id string) (*domain.School, error) {
	if r.findErr != nil {
		return nil, r.findErr
	}
	s, ok := r.schools[id]
	if !ok {
		return nil, domain.ErrSchoolNotFound
	}
	return cloneSchool(s), nil
}

func (r *stubSchoolRepo) UpdateProfile(_ context.Context, id string, u ports.ProfileUpdate) (*domain.School, error) {
	s, ok := r.schools[id]
	if !ok {
		return nil, domain.ErrSchoolNotFound
	}
	set := func(dst *string, src *string) {
		if src != nil {
			*dst = *src
		}
	}
	set(&s.Name, u.Name)
	set(&s.Email, u.Email)
	set(&s.InstitutionLevel, u.InstitutionLevel)
	set(&s.Country, u.Country)
	set(&s.Address, u.Address)
	set(&s.PhoneNumber, u.PhoneNumber)
	set(&s.Currency, u.Currency)
	set(&s.BackdropImage, u.BackdropImage)
	set(&s.AvatarImage, u.AvatarImage)
	return cloneSchool(s), nil
}

type stubTokens struct {
	issued []string
	err    error
}

func (t *stubTokens) Issue(schoolID string) (string, error) {
	if t.err != nil {
		return "", t.err
	}
	t.issued = append(t.issued, schoolID)
	return "token-for-" + schoolID, nil
}

// ---------------------------------------------------------------------------
// Roster
// ---------------------------------------------------------------------------

type stubRosterRepo struct {
	students map[string][]domain.Student
	staff    map[string][]domain.Staff
	err      error
}

func newStubRosterRepo(schoolIDs ...string) *stubRosterRepo {
	r := &stubRosterRepo{
		students: make(map[string][]domain.Student),
		staff:    make(map[string][]domain.Staff),
	}
	for _, id := range schoolIDs {
		r.students[id] = []domain.Student{}
		r.staff[id] = []domain.Staff{}
	}
	return r
}

func (r *stubRosterRepo) AddStudent(_ context.Context, schoolID string, s *domain.Student) error {
	if r.err != nil {
		return r.err
	}
	list, ok := r.students[schoolID]
	if !ok {
		return domain.ErrSchoolNotFound
	}
	r.students[schoolID] = append(list, *s)
	return nil
}

func (r *stubRosterRepo) ListStudents(_ context.Context, schoolID string) ([]domain.Student, error) {
	if r.err != nil {
		return nil, r.err
	}
	list, ok := r.students[schoolID]
	if !ok {
		return nil, domain.ErrSchoolNotFound
	}
	return append([]domain.Student(nil), list...), nil
}

func (r *stubRosterRepo) FindStudent(_ context.Context, schoolID, studentID string) (*domain.Student, error) {
	for _, s := range r.students[schoolID] {
		if s.ID == studentID {
			clone := s
			return &clone, nil
		}
	}
	return nil, domain.ErrStudentNotFound
}

func (r *stubRosterRepo) ReplaceStudent(_ context.Context, schoolID string, s *domain.Student) error {
	for i, existing := range r.students[schoolID] {
		if existing.ID == s.ID {
			r.students[schoolID][i] = *s
			return nil
		}
	}
	return domain.ErrStudentNotFound
}

func (r *stubRosterRepo) DeleteStudent(_ context.Context, schoolID, studentID string) error {
	list := r.students[schoolID]
	for i, existing := range list {
		if existing.ID == studentID {
			r.students[schoolID] = append(list[:i], list[i+1:]...)
			return nil
		}
	}
	return domain.ErrStudentNotFound
}

func (r *stubRosterRepo) AddStaff(_ context.Context, schoolID string, s *domain.Staff) error {
	list, ok := r.staff[schoolID]
	if !ok {
		return domain.ErrSchoolNotFound
	}
	r.staff[schoolID] = append(list, *s)
	return nil
}

func (r *stubRosterRepo) ListStaff(_ context.Context, schoolID string) ([]domain.Staff, error) {
	list, ok := r.staff[schoolID]
	if !ok {
		return nil, domain.ErrSchoolNotFound
	}
	return append([]domain.Staff(nil), list...), nil
}

func (r *stubRosterRepo) FindStaff(_ context.Context, schoolID, staffID string) (*domain.Staff, error) {
	for _, s := range r.staff[schoolID] {
		if s.ID == staffID {
			clone := s
			return &clone, nil
		}
	}
	return nil, domain.ErrStaffNotFound
}

func (r *stubRosterRepo) ReplaceStaff(_ context.Context, schoolID string, s *domain.Staff) error {
	for i, existing := range r.staff[schoolID] {
		if existing.ID == s.ID {
			r.staff[schoolID][i] = *s
			return nil
		}
	}
	return domain.ErrStaffNotFound
}

func (r *stubRosterRepo) DeleteStaff(_ context.Context, schoolID, staffID string) error {
	list := r.staff[schoolID]
	for i, existing := range list {
		if existing.ID == staffID {
			r.staff[schoolID] = append(list[:i], list[i+1:]...)
			return nil
		}
	}
	return domain.ErrStaffNotFound
}

// ---------------------------------------------------------------------------
// Messages
// ---------------------------------------------------------------------------

type stubMessageRepo struct {
	byID      map[string]*domain.Message
	order     []string
	createErr error
	onCreate  func()
}

func newStubMessageRepo() *stubMessageRepo {
	return &stubMessageRepo{byID: make(map[string]*domain.Message)}
}

func (r *stubMessageRepo) Create(_ context.Context, m *domain.Message) (*domain.Message, error) {
	if r.onCreate != nil {
		hook := r.onCreate
		r.onCreate = nil
		hook()
	}
	if r.createErr != nil {
		return nil, r.createErr
	}
	clone := *m
	clone.ID = fmt.Sprintf("msg_%d", len(r.order)+1)
	r.byID[clone.ID] = &clone
	r.order = append(r.order, clone.ID)
	out := clone
	return &out, nil
}

func (r *stubMessageRepo) FindByID(_ context.Context, id string) (*domain.Message, error) {
	m, ok := r.byID[id]
	if !ok {
		return nil, domain.ErrMessageNotFound
	}
	clone := *m
	return &clone, nil
}

func (r *stubMessageRepo) list(match func(*domain.Message) bool) []*domain.Message {
	var out []*domain.Message
	for i := len(r.order) - 1; i >= 0; i-- {
		m := r.byID[r.order[i]]
		if match(m) {
			clone := *m
			out = append(out, &clone)
		}
	}
	return out
}

func (r *stubMessageRepo) ListByRecipient(_ context.Context, schoolID string) ([]*domain.Message, error) {
	return r.list(func(m *domain.Message) bool { return m.To == schoolID }), nil
}

func (r *stubMessageRepo) ListBySender(_ context.Context, schoolID string) ([]*domain.Message, error) {
	return r.list(func(m *domain.Message) bool { return m.From == schoolID }), nil
}

func (r *stubMessageRepo) MarkViewed(_ context.Context, id, recipient string) (*domain.Message, error) {
	m, ok := r.byID[id]
	if !ok || m.To != recipient {
		return nil, domain.ErrMessageNotFound
	}
	m.Viewed = true
	clone := *m
	return &clone, nil
}

type stubIdempotency struct {
	keys       map[string]string
	reserveErr error
	released   int
}

func newStubIdempotency() *stubIdempotency {
	return &stubIdempotency{keys: make(map[string]string)}
}

func (s *stubIdempotency) Reserve(_ context.Context, schoolID, key string) (string, bool, error) {
	if s.reserveErr != nil {
		return "", false, s.reserveErr
	}
	id, ok := s.keys[schoolID+":"+key]
	switch {
	case !ok:
		s.keys[schoolID+":"+key] = ""
		return "", true, nil
	case id == "":
		return "", false, domain.ErrSendInProgress
	default:
		return id, false, nil
	}
}

func (s *stubIdempotency) Complete(_ context.Context, schoolID, key, messageID string) error {
	s.keys[schoolID+":"+key] = messageID
	return nil
}

func (s *stubIdempotency) Release(_ context.Context, schoolID, key string) error {
	delete(s.keys, schoolID+":"+key)
	s.released++
	return nil
}
