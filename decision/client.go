package decision

import (
	"context"
	"fmt"

	"processcheck-backend/models"
)

// Client issues the final verdict for a canonical process record. The
// judgment itself is delegated to an external reasoning service and is
// not deterministic; tests stub this interface with canned responses.
type Client interface {
	Decide(ctx context.Context, proc *models.MinimalProcess) (*models.Decision, error)
}

// FormatError reports a collaborator response that failed JSON parsing or
// schema validation. Raw carries the offending content for diagnosis.
// Format errors are hard failures for the request and are never retried.
type FormatError struct {
	Raw string
	Err error
}

func (e *FormatError) Error() string {
	return fmt.Sprintf("invalid decision response: %v (raw: %s)", e.Err, e.Raw)
}

func (e *FormatError) Unwrap() error {
	return e.Err
}
