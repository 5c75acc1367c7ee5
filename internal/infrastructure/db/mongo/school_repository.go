package mongo

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/schooldesk/school-api/internal/core/domain"
	"github.com/schooldesk/school-api/internal/core/ports"
)

const collectionSchools = "schools"

// SchoolRepository stores schools with their students and staff embedded in
// the same document. It implements ports.SchoolRepository,
// ports.StudentRepository and ports.StaffRepository.
type SchoolRepository struct {
	col      *mongo.Collection
	students embedded[domain.Student]
	staff    embedded[domain.Staff]
}

func NewSchoolRepository(db *mongo.Database) *SchoolRepository {
	col := db.Collection(collectionSchools)
	return &SchoolRepository{
		col:      col,
		students: embedded[domain.Student]{col: col, field: "students", notFound: domain.ErrStudentNotFound},
		staff:    embedded[domain.Staff]{col: col, field: "staffs", notFound: domain.ErrStaffNotFound},
	}
}

type mongoSchool struct {
	ID               primitive.ObjectID `bson:"_id,omitempty"`
	Name             string             `bson:"name"`
	Email            string             `bson:"email"`
	PasswordHash     string             `bson:"password_hash"`
	InstitutionLevel string             `bson:"institution_level"`
	Country          string             `bson:"country"`
	Address          string             `bson:"address"`
	PhoneNumber      string             `bson:"phone_number"`
	Currency         string             `bson:"currency"`
	BackdropImage    string             `bson:"backdrop_image"`
	AvatarImage      string             `bson:"avatar_image"`
	Students         []domain.Student   `bson:"students"`
	Staffs           []domain.Staff     `bson:"staffs"`
	CreatedAt        time.Time          `bson:"created_at"`
	UpdatedAt        time.Time          `bson:"updated_at"`
}

func (m mongoSchool) toDomain() *domain.School {
	return &domain.School{
		ID:               m.ID.Hex(),
		Name:             m.Name,
		Email:            m.Email,
		PasswordHash:     m.PasswordHash,
		InstitutionLevel: m.InstitutionLevel,
		Country:          m.Country,
		Address:          m.Address,
		PhoneNumber:      m.PhoneNumber,
		Currency:         m.Currency,
		BackdropImage:    m.BackdropImage,
		AvatarImage:      m.AvatarImage,
		CreatedAt:        m.CreatedAt,
		UpdatedAt:        m.UpdatedAt,
	}
}

// profileOnly keeps the embedded arrays out of profile reads.
var profileOnly = bson.M{"students": 0, "staffs": 0}

// Create inserts a new school. A duplicate email is reported as
// domain.ErrDuplicateEmail.
func (r *SchoolRepository) Create(ctx context.Context, s *domain.School) (*domain.School, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	doc := mongoSchool{
		Name:             s.Name,
		Email:            strings.ToLower(s.Email),
		PasswordHash:     s.PasswordHash,
		InstitutionLevel: s.InstitutionLevel,
		Country:          s.Country,
		Address:          s.Address,
		PhoneNumber:      s.PhoneNumber,
		Currency:         s.Currency,
		BackdropImage:    s.BackdropImage,
		AvatarImage:      s.AvatarImage,
		Students:         []domain.Student{},
		Staffs:           []domain.Staff{},
		CreatedAt:        s.CreatedAt,
		UpdatedAt:        s.UpdatedAt,
	}

	res, err := r.col.InsertOne(ctx, doc)
	if err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return nil, domain.ErrDuplicateEmail
		}
		return nil, fmt.Errorf("insert school: %w", err)
	}

	if oid, ok := res.InsertedID.(primitive.ObjectID); ok {
		doc.ID = oid
	}
	return doc.toDomain(), nil
}

// FindByEmail looks a school up by its lower-cased email.
func (r *SchoolRepository) FindByEmail(ctx context.Context, email string) (*domain.School, error) {
	return r.findOne(ctx, bson.M{"email": strings.ToLower(email)})
}

// FindByID returns domain.ErrSchoolNotFound for unknown or malformed ids.
func (r *SchoolRepository) FindByID(ctx context.Context, id string) (*domain.School, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, domain.ErrSchoolNotFound
	}
	return r.findOne(ctx, bson.M{"_id": oid})
}

func (r *SchoolRepository) findOne(ctx context.Context, filter bson.M) (*domain.School, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	var doc mongoSchool
	err := r.col.FindOne(ctx, filter, options.FindOne().SetProjection(profileOnly)).Decode(&doc)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, domain.ErrSchoolNotFound
		}
		return nil, fmt.Errorf("find school: %w", err)
	}
	return doc.toDomain(), nil
}

// UpdateProfile sets the non-nil fields of update and returns the stored school.
func (r *SchoolRepository) UpdateProfile(ctx context.Context, id string, update ports.ProfileUpdate) (*domain.School, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, domain.ErrSchoolNotFound
	}

	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	opts := options.FindOneAndUpdate().
		SetReturnDocument(options.After).
		SetProjection(profileOnly)

	var doc mongoSchool
	err = r.col.FindOneAndUpdate(ctx, bson.M{"_id": oid}, bson.M{"$set": profileSet(update, time.Now().UTC())}, opts).Decode(&doc)
	if err != nil {
		switch {
		case errors.Is(err, mongo.ErrNoDocuments):
			return nil, domain.ErrSchoolNotFound
		case mongo.IsDuplicateKeyError(err):
			return nil, domain.ErrDuplicateEmail
		}
		return nil, fmt.Errorf("update school: %w", err)
	}
	return doc.toDomain(), nil
}

// profileSet builds the $set document of a profile update.
func profileSet(u ports.ProfileUpdate, now time.Time) bson.M {
	set := bson.M{"updated_at": now}
	put := func(key string, v *string) {
		if v != nil {
			set[key] = *v
		}
	}
	put("name", u.Name)
	if u.Email != nil {
		set["email"] = strings.ToLower(strings.TrimSpace(*u.Email))
	}
	put("institution_level", u.InstitutionLevel)
	put("country", u.Country)
	put("address", u.Address)
	put("phone_number", u.PhoneNumber)
	put("currency", u.Currency)
	put("backdrop_image", u.BackdropImage)
	put("avatar_image", u.AvatarImage)
	return set
}

// --- Students ---

func (r *SchoolRepository) AddStudent(ctx context.Context, schoolID string, s *domain.Student) error {
	return r.students.add(ctx, schoolID, *s)
}

func (r *SchoolRepository) ListStudents(ctx context.Context, schoolID string) ([]domain.Student, error) {
	return r.students.list(ctx, schoolID)
}

func (r *SchoolRepository) FindStudent(ctx context.Context, schoolID, studentID string) (*domain.Student, error) {
	return r.students.find(ctx, schoolID, studentID)
}

func (r *SchoolRepository) ReplaceStudent(ctx context.Context, schoolID string, s *domain.Student) error {
	return r.students.replace(ctx, schoolID, s.ID, *s)
}

func (r *SchoolRepository) DeleteStudent(ctx context.Context, schoolID, studentID string) error {
	return r.students.remove(ctx, schoolID, studentID)
}

// --- Staff ---

func (r *SchoolRepository) AddStaff(ctx context.Context, schoolID string, s *domain.Staff) error {
	return r.staff.add(ctx, schoolID, *s)
}

func (r *SchoolRepository) ListStaff(ctx context.Context, schoolID string) ([]domain.Staff, error) {
	return r.staff.list(ctx, schoolID)
}

func (r *SchoolRepository) FindStaff(ctx context.Context, schoolID, staffID string) (*domain.Staff, error) {
	return r.staff.find(ctx, schoolID, staffID)
}

func (r *SchoolRepository) ReplaceStaff(ctx context.Context, schoolID string, s *domain.Staff) error {
	return r.staff.replace(ctx, schoolID, s.ID, *s)
}

func (r *SchoolRepository) DeleteStaff(ctx context.Context, schoolID, staffID string) error {
	return r.staff.remove(ctx, schoolID, staffID)
}

// EnsureIndexes creates the unique email index on the schools collection.
func (r *SchoolRepository) EnsureIndexes(ctx context.Context) error {
	ctx, cancel := context.WithTimeout(ctx, 30*time.Second)
	defer cancel()

	indexes := []mongo.IndexModel{
		{
			Keys:    bson.D{{Key: "email", Value: 1}},
			Options: options.Index().SetUnique(true).SetName("uniq_email"),
		},
	}

	_, err := r.col.Indexes().CreateMany(ctx, indexes)
	return err
}
