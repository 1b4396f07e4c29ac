package cli

import (
	"errors"
	"fmt"
	"io"

	"stockroom/client/resource"
)

// Exit codes.
const (
	ExitSuccess      = 0
	ExitFailure      = 1
	ExitCommandError = 2
)

// CommandError provides structured error reporting for CLI commands.
type CommandError struct {
	Message    string
	Cause      error
	Suggestion string
	ExitCode   int
}

func (e CommandError) Error() string {
	if e.Message != "" {
		if e.Cause != nil {
			return fmt.Sprintf("%s: %v", e.Message, e.Cause)
		}
		return e.Message
	}
	if e.Cause != nil {
		return e.Cause.Error()
	}
	return "command failed"
}

func (e CommandError) Unwrap() error {
	return e.Cause
}

// ExitStatus returns the process exit code associated with the error.
func (e CommandError) ExitStatus() int {
	if e.ExitCode != 0 {
		return e.ExitCode
	}
	return ExitFailure
}

// wrapError classifies cause by the client error taxonomy and attaches a
// hint for the ones a user can act on.
func wrapError(message string, cause error) error {
	if cause == nil {
		return CommandError{Message: message, ExitCode: ExitCommandError}
	}

	var (
		vErr   *resource.ValidationError
		netErr *resource.NetworkError
		apiErr *resource.APIError
	)
	switch {
	case errors.As(cause, &vErr):
		return CommandError{Message: message, Cause: cause, Suggestion: "fix the " + vErr.Field + " flag and retry", ExitCode: ExitCommandError}
	case errors.As(cause, &netErr):
		return CommandError{Message: message, Cause: cause, Suggestion: "check STOCKROOM_API_URL and that the API is running", ExitCode: ExitFailure}
	case errors.As(cause, &apiErr) && apiErr.NotFound():
		return CommandError{Message: message, Cause: cause, Suggestion: "list the collection to find a valid id", ExitCode: ExitFailure}
	default:
		return CommandError{Message: message, Cause: cause, ExitCode: ExitFailure}
	}
}

// ExitCode extracts the exit code from an error returned by Execute.
func ExitCode(err error) int {
	if err == nil {
		return ExitSuccess
	}
	var cmdErr CommandError
	if errors.As(err, &cmdErr) {
		return cmdErr.ExitStatus()
	}
	return ExitFailure
}

// PrintError writes err and its hint, if any, to w.
func PrintError(w io.Writer, err error) {
	fmt.Fprintf(w, "error: %v\n", err)
	var cmdErr CommandError
	if errors.As(err, &cmdErr) && cmdErr.Suggestion != "" {
		fmt.Fprintf(w, "hint: %s\n", cmdErr.Suggestion)
	}
}
