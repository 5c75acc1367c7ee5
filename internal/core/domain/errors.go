package domain

import "errors"

// Client errors. Each maps to a fixed 4xx status in the HTTP error handler.
var (
	ErrIncompleteSubmission = errors.New("please fill in all fields")
	ErrFieldValidation      = errors.New("validation failed")
	ErrDuplicateEmail       = errors.New("email already used")
	ErrInvalidCredentials   = errors.New("invalid credentials")

	ErrUnauthenticated = errors.New("please authenticate.")
	ErrTokenExpired    = errors.New("token has expired")
	ErrForbidden       = errors.New("not authorized to access this resource")

	ErrSchoolNotFound  = errors.New("school not found")
	ErrStudentNotFound = errors.New("student not found")
	ErrStaffNotFound   = errors.New("staff not found")
	ErrMessageNotFound = errors.New("message not found")

	ErrSendInProgress = errors.New("a message with this idempotency key is still being sent")
)

// ErrTransient marks failures of a backing store. Never reported as a 4xx.
var ErrTransient = errors.New("service temporarily unavailable")
