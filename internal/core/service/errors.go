package service

import (
	"errors"
	"fmt"

	"github.com/schooldesk/school-api/internal/core/domain"
)

// known lists the repository errors that describe the request rather than
// the health of the store.
var known = []error{
	domain.ErrDuplicateEmail,
	domain.ErrSchoolNotFound,
	domain.ErrStudentNotFound,
	domain.ErrStaffNotFound,
	domain.ErrMessageNotFound,
}

// storeError passes domain errors through and marks everything else as
// transient so it is never reported as a client error.
func storeError(op string, err error) error {
	for _, k := range known {
		if errors.Is(err, k) {
			return err
		}
	}
	return fmt.Errorf("%s: %w: %w", op, domain.ErrTransient, err)
}
