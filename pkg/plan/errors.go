package plan

import "fmt"

// NotFoundError reports a plan whose text or status artifact is missing.
type NotFoundError struct {
	Plan string
	// Status is true when the text exists but the status artifact is
	// missing.
	Status bool
}

func (e *NotFoundError) Error() string {
	if e.Status {
		return fmt.Sprintf("status for plan '%s' not found", e.Plan)
	}
	return fmt.Sprintf("plan '%s' does not exist", e.Plan)
}

// CorruptError reports a status artifact whose content is not a single
// base-10 integer within the size cap.
type CorruptError struct {
	Path   string
	Reason string
}

func (e *CorruptError) Error() string {
	return fmt.Sprintf("malformed status file '%s' (%s)", e.Path, e.Reason)
}
