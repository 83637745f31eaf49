package errors

import "errors"

// Exit codes returned by the newcrate binary.
const (
	// ExitSuccess indicates the command completed successfully.
	ExitSuccess = 0

	// ExitGeneralError indicates an unspecified error occurred.
	ExitGeneralError = 1

	// ExitValidationError indicates invalid arguments or configuration.
	ExitValidationError = 2

	// ExitTargetNotEmpty indicates the target path was not usable.
	ExitTargetNotEmpty = 3

	// ExitVCSError indicates repository initialization failed.
	ExitVCSError = 4

	// ExitIOError indicates a filesystem operation failed.
	ExitIOError = 5

	// ExitManifestError indicates the manifest could not be updated.
	ExitManifestError = 6
)

// ExitError wraps an error with an exit code.
type ExitError struct {
	// Code is the process exit code.
	Code int

	// Err is the underlying error.
	Err error

	// Printed is set once the error has already been reported to the user.
	Printed bool
}

// Error implements the error interface.
func (e *ExitError) Error() string {
	if e.Err == nil {
		return ""
	}
	return e.Err.Error()
}

// Unwrap returns the wrapped error.
func (e *ExitError) Unwrap() error {
	return e.Err
}

// ExitCodeFromError determines the appropriate exit code for an error.
func ExitCodeFromError(err error) int {
	if err == nil {
		return ExitSuccess
	}

	var exitErr *ExitError
	if errors.As(err, &exitErr) {
		return exitErr.Code
	}

	switch {
	case errors.Is(err, ErrValidation):
		return ExitValidationError
	case errors.Is(err, ErrTargetNotEmpty):
		return ExitTargetNotEmpty
	case errors.Is(err, ErrVCSInit):
		return ExitVCSError
	case errors.Is(err, ErrIO):
		return ExitIOError
	case errors.Is(err, ErrMalformedManifest):
		return ExitManifestError
	default:
		return ExitGeneralError
	}
}

// ExitCodeName returns the name of the exit code.
func ExitCodeName(code int) string {
	switch code {
	case ExitSuccess:
		return "Success"
	case ExitGeneralError:
		return "General Error"
	case ExitValidationError:
		return "Validation Error"
	case ExitTargetNotEmpty:
		return "Target Not Empty"
	case ExitVCSError:
		return "VCS Error"
	case ExitIOError:
		return "I/O Error"
	case ExitManifestError:
		return "Manifest Error"
	default:
		return "Unknown"
	}
}
