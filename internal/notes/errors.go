package notes

import (
	"errors"
	"fmt"
)

// ErrNotConfirmed is returned by Remove when the user declines the delete.
var ErrNotConfirmed = errors.New("delete not confirmed")

// ValidationError reports a required field that was empty. It is raised
// before any call to the document store.
type ValidationError struct {
	Field string
	Msg   string
}

func (e *ValidationError) Error() string {
	return e.Msg
}

// RemoteOperationError wraps a failure returned by the document store.
type RemoteOperationError struct {
	Op  string
	Err error
}

func (e *RemoteOperationError) Error() string {
	return fmt.Sprintf("%s: %v", e.Op, e.Err)
}

func (e *RemoteOperationError) Unwrap() error {
	return e.Err
}
