package download

import (
	"errors"
	"fmt"
)

// ErrBusy is returned by Start while a batch is already running.
var ErrBusy = errors.New("a download batch is already running")

// Input error reasons
const (
	ReasonNoLinks       = "no links provided"
	ReasonNoDestination = "no download folder provided"
	ReasonBadMode       = "invalid download type"
)

// InputError represents a request that is missing required fields. The batch
// is never started.
type InputError struct {
	Reason string // Human-readable explanation
	Err    error  // Underlying error, if any
}

func (e *InputError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("input error: %s: %v", e.Reason, e.Err)
	}
	return fmt.Sprintf("input error: %s", e.Reason)
}

func (e *InputError) Unwrap() error {
	return e.Err
}

// DirectoryError represents a failure to create the mode output directory.
type DirectoryError struct {
	Path string
	Err  error
}

func (e *DirectoryError) Error() string {
	return fmt.Sprintf("cannot create download directory %s: %v", e.Path, e.Err)
}

func (e *DirectoryError) Unwrap() error {
	return e.Err
}
