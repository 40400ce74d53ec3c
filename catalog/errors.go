package catalog

import "errors"

// =============================================================================
// SENTINEL ERRORS - Use with errors.Is()
// =============================================================================

var (
	// ErrPropertyNotFound is returned when a referenced property doesn't exist.
	ErrPropertyNotFound = errors.New("property not found")

	// ErrEmptyRecord is returned when a record to be saved has no ID or name.
	ErrEmptyRecord = errors.New("record missing id or name")
)

// IsNotFound returns true if the error indicates a missing property.
func IsNotFound(err error) bool {
	return errors.Is(err, ErrPropertyNotFound)
}
