package validation

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/schooldesk/school-api/internal/core/domain"
)

func validRegistration() Record {
	return Record{
		"schoolName":       "Greenfield Academy",
		"institutionLevel": "Secondary",
		"address":          "12 Harbour Road, Lagos",
		"email":            "admin@greenfield.edu",
		"phoneNumber":      "+2348012345678",
		"password":         "Password!1",
		"confirmPassword":  "Password!1",
		"country":          "Nigeria",
		"currency":         "NGN",
	}
}

func fieldsOf(t *testing.T, err error) *domain.ErrorSet {
	t.Helper()
	var ve *domain.ValidationError
	require.ErrorAs(t, err, &ve)
	return ve.Fields
}

func TestRegistrationRules_Valid(t *testing.T) {
	assert.NoError(t, RegistrationRules.Validate(validRegistration()))
}

func TestRegistrationRules_NameAlias(t *testing.T) {
	rec := validRegistration()
	delete(rec, "schoolName")
	rec["name"] = "Greenfield Academy"
	assert.NoError(t, RegistrationRules.Validate(rec))
}

func TestRegistrationRules_MissingRequiredKey(t *testing.T) {
	for _, key := range []string{"schoolName", "institutionLevel", "address", "email", "phoneNumber", "password", "confirmPassword", "country", "currency"} {
		rec := validRegistration()
		delete(rec, key)
		err := RegistrationRules.Validate(rec)
		assert.ErrorIs(t, err, domain.ErrIncompleteSubmission, key)
		assert.NotErrorIs(t, err, domain.ErrFieldValidation, key)
	}
}

func TestRegistrationRules_NullCountsAsMissing(t *testing.T) {
	rec := validRegistration()
	rec["address"] = nil
	assert.ErrorIs(t, RegistrationRules.Validate(rec), domain.ErrIncompleteSubmission)
}

func TestRegistrationRules_IncompleteWinsOverFieldErrors(t *testing.T) {
	rec := validRegistration()
	rec["address"] = "short"
	delete(rec, "currency")
	assert.ErrorIs(t, RegistrationRules.Validate(rec), domain.ErrIncompleteSubmission)
}

func TestRegistrationRules_SingleInvalidFieldKeyedByName(t *testing.T) {
	cases := map[string]struct {
		value any
		msg   string
	}{
		"schoolName":       {"Tiny", ErrNameTooShort.Error()},
		"institutionLevel": {"Select your institution", ErrInstitutionMissing.Error()},
		"address":          {"Lagos", ErrAddressTooShort.Error()},
		"email":            {"not-an-email", ErrInvalidEmail.Error()},
		"phoneNumber":      {"call me", ErrInvalidPhone.Error()},
		"currency":         {"Naira", ErrInvalidCurrency.Error()},
		"country":          {42.0, "country must be text"},
	}

	for field, tc := range cases {
		t.Run(field, func(t *testing.T) {
			rec := validRegistration()
			rec[field] = tc.value

			fields := fieldsOf(t, RegistrationRules.Validate(rec))
			assert.Equal(t, []string{field}, fields.Fields())
			msg, _ := fields.Get(field)
			assert.Equal(t, tc.msg, msg)
		})
	}
}

func TestRegistrationRules_PasswordMismatchReportedOnBothFields(t *testing.T) {
	rec := validRegistration()
	rec["confirmPassword"] = "Password!2"

	fields := fieldsOf(t, RegistrationRules.Validate(rec))
	assert.Equal(t, []string{"password", "confirmPassword"}, fields.Fields())
	msg, _ := fields.Get("password")
	assert.Equal(t, ErrPasswordMismatch.Error(), msg)
	msg, _ = fields.Get("confirmPassword")
	assert.Equal(t, ErrConfirmationMismatch.Error(), msg)
}

func TestRegistrationRules_AllFieldErrorsReportedTogether(t *testing.T) {
	rec := validRegistration()
	rec["schoolName"] = "abc"
	rec["email"] = "nope"
	rec["address"] = "tiny"

	fields := fieldsOf(t, RegistrationRules.Validate(rec))
	assert.Equal(t, []string{"schoolName", "address", "email"}, fields.Fields())
}

func TestRegistrationRules_UnknownKeysIgnored(t *testing.T) {
	rec := validRegistration()
	rec["favouriteColour"] = "x"
	rec["students"] = []any{}
	assert.NoError(t, RegistrationRules.Validate(rec))
}

func TestRegistrationRules_ErrorSetJSON(t *testing.T) {
	rec := validRegistration()
	rec["address"] = "tiny"
	rec["email"] = "nope"

	b, err := json.Marshal(fieldsOf(t, RegistrationRules.Validate(rec)))
	require.NoError(t, err)
	assert.JSONEq(t, `{"address":"Address cannot be less than 10 characters","email":"Please input valid E-mail"}`, string(b))
}

func TestLoginRules(t *testing.T) {
	assert.NoError(t, LoginRules.Validate(Record{"email": "admin@greenfield.edu", "password": "x"}))
	assert.ErrorIs(t, LoginRules.Validate(Record{"email": "admin@greenfield.edu"}), domain.ErrIncompleteSubmission)

	fields := fieldsOf(t, LoginRules.Validate(Record{"email": "nope", "password": "x"}))
	assert.Equal(t, []string{"email"}, fields.Fields())
}

func TestProfileUpdateRules(t *testing.T) {
	assert.NoError(t, ProfileUpdateRules.Validate(Record{}))
	assert.NoError(t, ProfileUpdateRules.Validate(Record{"avatarImage": "https://cdn.example.com/a.png"}))

	fields := fieldsOf(t, ProfileUpdateRules.Validate(Record{"address": "tiny", "password": "ignored"}))
	assert.Equal(t, []string{"address"}, fields.Fields())
}
