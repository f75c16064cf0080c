package usecase

import "errors"

// Error kinds surfaced to handlers. Services wrap these with context via
// fmt.Errorf("%w: ...") so callers can branch with errors.Is.
var (
	// ErrValidation marks input that failed a domain rule, e.g. a rating
	// value outside 1-5. Nothing is persisted.
	ErrValidation = errors.New("validation failed")

	// ErrForbidden marks an operation the acting user may not perform,
	// e.g. rating their own note. Nothing is persisted.
	ErrForbidden = errors.New("forbidden operation")

	// ErrNotFound marks a reference to a note or user that does not exist.
	ErrNotFound = errors.New("not found")

	// ErrConflict marks a write conflict that persisted after retrying.
	ErrConflict = errors.New("persistence conflict")
)
