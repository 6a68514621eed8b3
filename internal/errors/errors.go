package errors

import (
	"errors"
	"fmt"
)

// Exit codes for readmegen
const (
	ExitSuccess      = 0
	ExitGeneralError = 1
	ExitConfigError  = 2
)

// ReadmeError is the base error type for readmegen
type ReadmeError struct {
	Code    int
	Message string
	Cause   error
}

func (e *ReadmeError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Cause)
	}
	return e.Message
}

func (e *ReadmeError) Unwrap() error {
	return e.Cause
}

// ExitCode returns the exit code for this error
func (e *ReadmeError) ExitCode() int {
	return e.Code
}

// New creates a new ReadmeError
func New(code int, message string) *ReadmeError {
	return &ReadmeError{
		Code:    code,
		Message: message,
	}
}

// Wrap wraps an existing error with a ReadmeError
func Wrap(code int, message string, cause error) *ReadmeError {
	return &ReadmeError{
		Code:    code,
		Message: message,
		Cause:   cause,
	}
}

// Sentinels matched with errors.Is by callers that need the failure kind
// rather than the message.
var (
	ErrNoRepository     = errors.New("no git repository")
	ErrNoRemote         = errors.New("no remote url")
	ErrIdentityMismatch = errors.New("identity mismatch")
	ErrPromptCancelled  = errors.New("prompt cancelled")
)

// Common error constructors

// NoRepository returns the refusal for a project root without a .git entry
func NoRepository(root string) *ReadmeError {
	return Wrap(ExitGeneralError, "No git repository found in the current directory.",
		fmt.Errorf("%w at %s", ErrNoRepository, root))
}

// NoRemote returns the refusal for a repository whose config has no remote url
func NoRemote(root string) *ReadmeError {
	return Wrap(ExitGeneralError, "That is not your current root. Try again with the correct repository URL.",
		fmt.Errorf("%w configured in %s", ErrNoRemote, root))
}

// IdentityMismatch returns the refusal for a supplied URL that does not match the local remote
func IdentityMismatch(supplied, local string) *ReadmeError {
	return Wrap(ExitGeneralError, "That is not your current root. Try again with the correct repository URL.",
		fmt.Errorf("%w: %q does not match %q", ErrIdentityMismatch, supplied, local))
}

// PromptCancelled returns an error for an aborted interactive prompt
func PromptCancelled() *ReadmeError {
	return Wrap(ExitGeneralError, "Aborted.", ErrPromptCancelled)
}

// GenerationFailed returns an error for any failure while assembling or writing the document
func GenerationFailed(cause error) *ReadmeError {
	return Wrap(ExitGeneralError, "Error generating README.md", cause)
}

// ConfigError returns an error for configuration issues
func ConfigError(message string, cause error) *ReadmeError {
	return Wrap(ExitConfigError, message, cause)
}

// ValidationError returns an error for input validation failures
func ValidationError(message string) *ReadmeError {
	return New(ExitGeneralError, message)
}

// GetExitCode extracts the exit code from an error
func GetExitCode(err error) int {
	var readmeErr *ReadmeError
	if errors.As(err, &readmeErr) {
		return readmeErr.ExitCode()
	}
	return ExitGeneralError
}

// UserMessage returns the message to show the operator for err.
func UserMessage(err error) string {
	var readmeErr *ReadmeError
	if !errors.As(err, &readmeErr) {
		return err.Error()
	}
	// Refusals carry internal detail in the cause; the operator only needs the message.
	for _, refusal := range []error{ErrNoRepository, ErrNoRemote, ErrIdentityMismatch, ErrPromptCancelled} {
		if errors.Is(readmeErr, refusal) {
			return readmeErr.Message
		}
	}
	return readmeErr.Error()
}
