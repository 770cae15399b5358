package domain

import (
	"errors"
	"fmt"
	"strings"
)

var (
	ErrUnauthenticated = errors.New("auth: unauthenticated")
	ErrForbidden       = errors.New("auth: forbidden")
)

// UnknownTasksError rejects a batch containing ids absent from the registry.
// IDs lists every unknown id, not just the first.
type UnknownTasksError struct {
	IDs []string
}

func (e *UnknownTasksError) Error() string {
	return fmt.Sprintf("unknown tasks: %s", strings.Join(e.IDs, ", "))
}

// ForbiddenTasksError rejects a batch containing tasks whose module is not
// granted to the caller. IDs lists every forbidden id.
type ForbiddenTasksError struct {
	IDs []string
}

func (e *ForbiddenTasksError) Error() string {
	return fmt.Sprintf("no permission for tasks: %s", strings.Join(e.IDs, ", "))
}

// DispatchError reports that a work item failed during parallel execution.
// The batch result is void; Index identifies the failed submission slot.
type DispatchError struct {
	Index int
	Err   error
}

func (e *DispatchError) Error() string {
	return fmt.Sprintf("dispatch: work item %d failed: %v", e.Index, e.Err)
}

func (e *DispatchError) Unwrap() error {
	return e.Err
}
