package cli

import "errors"

// Exit codes for ssmlcheck.
const (
	// ExitSuccess indicates the checked markup is valid.
	ExitSuccess = 0

	// ExitInvalidMarkup indicates the checked markup is invalid.
	ExitInvalidMarkup = 1

	// ExitInvalidUsage indicates invalid command-line usage.
	ExitInvalidUsage = 64

	// ExitInternalError indicates an internal error.
	ExitInternalError = 70
)

var (
	// ErrInvalidMarkup is returned when the checked markup is invalid.
	// The outcome has already been reported, so it is not logged.
	ErrInvalidMarkup = errors.New("invalid markup")

	// ErrInvalidUsage marks errors caused by bad flags or arguments.
	ErrInvalidUsage = errors.New("invalid usage")
)

// ExitCode maps a command error to a process exit code.
func ExitCode(err error) int {
	switch {
	case err == nil:
		return ExitSuccess
	case errors.Is(err, ErrInvalidMarkup):
		return ExitInvalidMarkup
	case errors.Is(err, ErrInvalidUsage):
		return ExitInvalidUsage
	default:
		return ExitInternalError
	}
}
