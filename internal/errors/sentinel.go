package errors

import "errors"

// Sentinel errors for known conditions.
var (
	// ErrValidation indicates invalid arguments or configuration.
	ErrValidation = errors.New("validation error")

	// ErrTargetNotEmpty indicates the target path exists and is not an empty directory.
	ErrTargetNotEmpty = errors.New("target not empty")

	// ErrVCSInit indicates the version-control repository could not be initialized.
	ErrVCSInit = errors.New("vcs init failed")

	// ErrIO indicates a filesystem operation failed.
	ErrIO = errors.New("i/o error")

	// ErrMalformedManifest indicates the manifest has no insertion point or
	// does not decode as TOML.
	ErrMalformedManifest = errors.New("malformed manifest")

	// ErrNotScaffolded indicates an optional step ran before the base scaffold.
	ErrNotScaffolded = errors.New("package not scaffolded")
)
