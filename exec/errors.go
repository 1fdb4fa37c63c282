package exec

import "errors"

var (
	// ErrConnection is returned when the target could not be reached or the
	// secure channel could not be established.
	ErrConnection = errors.New("target unreachable")

	// ErrActionFailed is returned when the action ran on the target but
	// exited with a nonzero status.
	ErrActionFailed = errors.New("whitelist action failed")
)
