package services

import (
	"errors"
	"fmt"

	"github.com/skillforge/dashboard-backend/internal/types"
)

// ErrAccessDenied means the caller is not permitted to view the target's
// dashboard. Maps to 403 at the HTTP layer.
var ErrAccessDenied = errors.New("access denied")

// UserNotFoundError means the target user is absent. When the caller is an
// admin it carries the user directory so the caller can recover.
type UserNotFoundError struct {
	Name           string
	CallerIsAdmin  bool
	AvailableUsers []types.UserSummary
}

func (e *UserNotFoundError) Error() string {
	return fmt.Sprintf("user %q not found in database", e.Name)
}

// ReadFailureError names the child read that failed. The aggregation is
// atomic: a single failing read fails the whole request, no partial results.
type ReadFailureError struct {
	Which string
	Err   error
}

func (e *ReadFailureError) Error() string {
	return fmt.Sprintf("failed to fetch %s", e.Which)
}

func (e *ReadFailureError) Unwrap() error {
	return e.Err
}
