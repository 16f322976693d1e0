package scheduling

import (
	"database/sql/driver"
	"errors"
)

// Classified outcomes of the booking and quota engine. Controllers map
// these onto HTTP statuses; nothing in this package logs and swallows.
var (
	ErrTenantNotApproved = errors.New("salon is not approved")
	ErrSlotConflict      = errors.New("time slot conflicts with an existing booking")
	ErrQuotaExceeded     = errors.New("subscription plan limit reached")
	ErrInvalidTransition = errors.New("invalid booking status transition")
	ErrUnknownService    = errors.New("service not found in salon")
	ErrUnknownStaff      = errors.New("staff member not found in salon")
	ErrStaffNotQualified = errors.New("staff member is not assigned to this service")
	ErrNotFound          = errors.New("record not found")
	ErrForbidden         = errors.New("actor may not perform this transition")
	ErrInvalidInput      = errors.New("invalid input")
)

// isTransient reports whether a store error is worth one immediate retry.
// Conflict and quota checks are idempotent to re-run, so a dropped
// connection mid-transaction is the one recoverable case.
func isTransient(err error) bool {
	return errors.Is(err, driver.ErrBadConn)
}

// withRetry runs fn and retries it once if the failure was transient.
func withRetry(fn func() error) error {
	err := fn()
	if err != nil && isTransient(err) {
		err = fn()
	}
	return err
}
