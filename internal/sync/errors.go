package sync

import (
	"errors"
	"fmt"
)

// Mutation and fetch error taxonomy. Failed mutations leave the entity
// store unchanged and perform no invalidation.
var (
	// ErrNotAuthenticated means the operation needs a known actor
	ErrNotAuthenticated = errors.New("not authenticated")

	// ErrNotAuthorized means the actor is not the resource's author
	ErrNotAuthorized = errors.New("not authorized")

	// ErrBackendUnavailable means the backend is not configured or the call
	// failed. Only the follow relation degrades gracefully from this; for
	// every other collection it surfaces to the caller.
	ErrBackendUnavailable = errors.New("backend unavailable")

	// ErrValidation means the input violates a data-layer invariant
	ErrValidation = errors.New("validation failed")
)

// PartialWriteError reports a multi-step mutation that failed after its
// first step. The gorm backend wraps recipe child writes in a transaction so
// it never produces one; a backend without transaction support may.
type PartialWriteError struct {
	Step string
	Err  error
}

func (e *PartialWriteError) Error() string {
	return fmt.Sprintf("partial write: %s failed: %v", e.Step, e.Err)
}

func (e *PartialWriteError) Unwrap() error {
	return e.Err
}

// backendErr classifies a backend failure for the caller
func backendErr(err error) error {
	if err == nil {
		return nil
	}
	var pw *PartialWriteError
	if errors.As(err, &pw) {
		return err
	}
	return fmt.Errorf("%w: %v", ErrBackendUnavailable, err)
}
