// Package validation holds the field checks and rule tables applied to
// school records before they reach the service layer.
//
// Field validators are pure: they return nil when the value is acceptable and
// one of the exported sentinel errors otherwise. The sentinel's text is the
// message shown to the client.
package validation

import (
	"errors"
	"regexp"
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/go-playground/validator/v10"

	"github.com/schooldesk/school-api/internal/core/domain"
)

const (
	minNameLength     = 5
	minAddressLength  = 10
	minPasswordLength = 8
)

var (
	ErrNameTooShort         = errors.New("Name of school cannot be less than 5 characters")
	ErrAddressTooShort      = errors.New("Address cannot be less than 10 characters")
	ErrInvalidEmail         = errors.New("Please input valid E-mail")
	ErrInvalidPhone         = errors.New("Please enter valid phone number")
	ErrInstitutionMissing   = errors.New("Please select your institution")
	ErrInvalidCurrency      = errors.New("Please select standard currency")
	ErrPasswordTooShort     = errors.New("Password cannot be less than 8 characters")
	ErrPasswordWeak         = errors.New("Password must include at least 1 uppercase, 1 lowercase, 1 number and 1 symbol.")
	ErrPasswordMismatch     = errors.New("This field does not match confirm password field")
	ErrConfirmationMismatch = errors.New("Passwords do not match")
)

// validate is configured once; validator.Validate is safe for concurrent use
// after registration.
var validate = NewValidate()

// NewValidate returns a validator with the custom "phone" and
// "strongpassword" tags registered, so struct tags in transport code share
// the rules applied here. It panics if a tag cannot be registered.
func NewValidate(opts ...validator.Option) *validator.Validate {
	v := validator.New(opts...)
	if err := v.RegisterValidation("phone", validatePhone); err != nil {
		panic(err)
	}
	if err := v.RegisterValidation("strongpassword", validateStrongPassword); err != nil {
		panic(err)
	}
	return v
}

var (
	phoneSeparators = strings.NewReplacer(" ", "", "-", "", ".", "", "(", "", ")", "")
	phonePattern    = regexp.MustCompile(`^\+?[0-9]{7,15}$`)
)

func validatePhone(fl validator.FieldLevel) bool {
	return phonePattern.MatchString(phoneSeparators.Replace(fl.Field().String()))
}

// validateStrongPassword requires at least one uppercase letter, one
// lowercase letter, one digit and one punctuation or symbol character.
func validateStrongPassword(fl validator.FieldLevel) bool {
	var hasUpper, hasLower, hasDigit, hasSymbol bool
	for _, r := range fl.Field().String() {
		switch {
		case unicode.IsUpper(r):
			hasUpper = true
		case unicode.IsLower(r):
			hasLower = true
		case unicode.IsDigit(r):
			hasDigit = true
		case unicode.IsPunct(r) || unicode.IsSymbol(r):
			hasSymbol = true
		}
	}
	return hasUpper && hasLower && hasDigit && hasSymbol
}

// CheckName rejects names and titles shorter than five characters.
// CheckName counts characters after trimming surrounding whitespace, which is
// how the name is stored.
func CheckName(v string) error {
	if utf8.RuneCountInString(strings.TrimSpace(v)) < minNameLength {
		return ErrNameTooShort
	}
	return nil
}

func CheckAddress(v string) error {
	if utf8.RuneCountInString(v) < minAddressLength {
		return ErrAddressTooShort
	}
	return nil
}

// CheckEmail accepts addresses the validator's email grammar accepts and whose
// domain has at least one dot.
func CheckEmail(v string) error {
	if validate.Var(v, "required,email") != nil {
		return ErrInvalidEmail
	}
	at := strings.LastIndexByte(v, '@')
	host := v[at+1:]
	if !strings.Contains(host, ".") || strings.HasSuffix(host, ".") {
		return ErrInvalidEmail
	}
	return nil
}

func CheckPhoneNumber(v string) error {
	if validate.Var(v, "required,phone") != nil {
		return ErrInvalidPhone
	}
	return nil
}

func CheckInstitutionLevel(v string) error {
	if strings.TrimSpace(v) == "" || v == domain.InstitutionPlaceholder {
		return ErrInstitutionMissing
	}
	return nil
}

// CheckCurrency accepts ISO 4217 codes in any letter case.
func CheckCurrency(v string) error {
	if validate.Var(strings.ToUpper(strings.TrimSpace(v)), "required,iso4217") != nil {
		return ErrInvalidCurrency
	}
	return nil
}

// CheckPassword reports every rule the password breaks, in a fixed order:
// length, strength, confirmation. It returns nil for a valid password.
func CheckPassword(password, confirm string) []error {
	var errs []error
	if utf8.RuneCountInString(password) < minPasswordLength {
		errs = append(errs, ErrPasswordTooShort)
	}
	if validate.Var(password, "strongpassword") != nil {
		errs = append(errs, ErrPasswordWeak)
	}
	if password != confirm {
		errs = append(errs, ErrPasswordMismatch)
	}
	return errs
}

func CheckConfirmPassword(confirm, password string) error {
	if confirm != password {
		return ErrConfirmationMismatch
	}
	return nil
}
