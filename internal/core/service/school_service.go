package service

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/rs/zerolog"
	"golang.org/x/crypto/bcrypt"

	"github.com/schooldesk/school-api/internal/core/domain"
	"github.com/schooldesk/school-api/internal/core/ports"
)

const defaultLookupTimeout = 5 * time.Second

// SchoolService implements registration, login and profile management.
type SchoolService struct {
	repo          ports.SchoolRepository
	tokens        ports.TokenIssuer
	lookupTimeout time.Duration
	log           zerolog.Logger
}

func NewSchoolService(repo ports.SchoolRepository, tokens ports.TokenIssuer, lookupTimeout time.Duration, log zerolog.Logger) *SchoolService {
	if lookupTimeout <= 0 {
		lookupTimeout = defaultLookupTimeout
	}
	return &SchoolService{repo: repo, tokens: tokens, lookupTimeout: lookupTimeout, log: log}
}

func normalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}

// EnsureEmailAvailable fails with domain.ErrDuplicateEmail when a school is
// already registered under email. Lookup failures are transient.
func (s *SchoolService) EnsureEmailAvailable(ctx context.Context, email string) error {
	ctx, cancel := context.WithTimeout(ctx, s.lookupTimeout)
	defer cancel()

	_, err := s.repo.FindByEmail(ctx, normalizeEmail(email))
	switch {
	case err == nil:
		return domain.ErrDuplicateEmail
	case errors.Is(err, domain.ErrSchoolNotFound):
		return nil
	default:
		return storeError("check email", err)
	}
}

func (s *SchoolService) Register(ctx context.Context, in ports.RegisterInput) (*ports.AuthResult, error) {
	email := normalizeEmail(in.Email)
	if err := s.EnsureEmailAvailable(ctx, email); err != nil {
		return nil, err
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(in.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}

	now := time.Now().UTC()
	created, err := s.repo.Create(ctx, &domain.School{
		Name:             strings.TrimSpace(in.Name),
		Email:            email,
		PasswordHash:     string(hash),
		InstitutionLevel: in.InstitutionLevel,
		Country:          in.Country,
		Address:          in.Address,
		PhoneNumber:      in.PhoneNumber,
		Currency:         strings.ToUpper(in.Currency),
		CreatedAt:        now,
		UpdatedAt:        now,
	})
	if err != nil {
		return nil, storeError("create school", err)
	}

	token, err := s.tokens.Issue(created.ID)
	if err != nil {
		return nil, err
	}

	s.log.Info().Str("school_id", created.ID).Msg("school registered")
	return &ports.AuthResult{Token: token, School: created}, nil
}

// Login verifies the credentials and issues a token. Unknown emails and wrong
// passwords both fail with domain.ErrInvalidCredentials.
func (s *SchoolService) Login(ctx context.Context, email, password string) (*ports.AuthResult, error) {
	school, err := s.repo.FindByEmail(ctx, normalizeEmail(email))
	if err != nil {
		if errors.Is(err, domain.ErrSchoolNotFound) {
			return nil, domain.ErrInvalidCredentials
		}
		return nil, storeError("find school", err)
	}

	if bcrypt.CompareHashAndPassword([]byte(school.PasswordHash), []byte(password)) != nil {
		return nil, domain.ErrInvalidCredentials
	}

	token, err := s.tokens.Issue(school.ID)
	if err != nil {
		return nil, err
	}
	return &ports.AuthResult{Token: token, School: school}, nil
}

func (s *SchoolService) Get(ctx context.Context, schoolID string) (*domain.School, error) {
	school, err := s.repo.FindByID(ctx, schoolID)
	if err != nil {
		return nil, storeError("find school", err)
	}
	return school, nil
}

// UpdateProfile applies a partial update. Changing the email re-runs the
// availability check.
func (s *SchoolService) UpdateProfile(ctx context.Context, schoolID string, update ports.ProfileUpdate) (*domain.School, error) {
	current, err := s.Get(ctx, schoolID)
	if err != nil {
		return nil, err
	}

	if update.Email != nil {
		email := normalizeEmail(*update.Email)
		update.Email = &email
		if email != current.Email {
			if err := s.EnsureEmailAvailable(ctx, email); err != nil {
				return nil, err
			}
		}
	}
	if update.Name != nil {
		name := strings.TrimSpace(*update.Name)
		update.Name = &name
	}
	if update.Currency != nil {
		currency := strings.ToUpper(*update.Currency)
		update.Currency = &currency
	}

	updated, err := s.repo.UpdateProfile(ctx, schoolID, update)
	if err != nil {
		return nil, storeError("update school", err)
	}
	return updated, nil
}
