//nolint:revive // Package name matches the package it tests
package errors

import (
	"errors"
	"fmt"
	"io/fs"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSentinelErrors(t *testing.T) {
	all := []error{ErrValidation, ErrTargetNotEmpty, ErrVCSInit, ErrIO, ErrMalformedManifest, ErrNotScaffolded}
	for i, a := range all {
		for j, b := range all {
			if i != j {
				assert.NotEqual(t, a, b)
			}
		}
	}
}

func TestDetailErrorError(t *testing.T) {
	detail := &DetailError{
		Type:     "validation failed",
		Message:  "invalid package name",
		Location: "/tmp/1app",
		Hint:     "Package names must start with a letter",
	}

	out := detail.Error()

	assert.Contains(t, out, "validation failed: invalid package name")
	assert.Contains(t, out, "(/tmp/1app)")
	assert.Contains(t, out, "Hint: Package names must start with a letter")
}

func TestDetailErrorUnwrap(t *testing.T) {
	detail := &DetailError{
		Type:    "test",
		Message: "test message",
		Cause:   ErrValidation,
	}

	assert.True(t, errors.Is(detail, ErrValidation))
	assert.Equal(t, ErrValidation, detail.Unwrap())
}

func TestNewValidationError(t *testing.T) {
	err := NewValidationError("bad edition", "package.edition", "Use 2021")

	require.NotNil(t, err)
	assert.True(t, errors.Is(err, ErrValidation))

	var detail *DetailError
	require.True(t, errors.As(err, &detail))
	assert.Equal(t, "validation failed", detail.Type)
	assert.Equal(t, "bad edition", detail.Message)
	assert.Equal(t, "package.edition", detail.Location)
	assert.Equal(t, "Use 2021", detail.Hint)
}

func TestNewTargetNotEmptyError(t *testing.T) {
	err := NewTargetNotEmptyError("/tmp/demo")

	assert.True(t, errors.Is(err, ErrTargetNotEmpty))
	assert.Contains(t, err.Error(), "/tmp/demo is not empty")
}

func TestNewVCSInitError_KeepsCause(t *testing.T) {
	err := NewVCSInitError("/tmp/demo", fs.ErrPermission)

	assert.True(t, errors.Is(err, ErrVCSInit))
	assert.True(t, errors.Is(err, fs.ErrPermission))
}

func TestNewIOError_KeepsCause(t *testing.T) {
	err := NewIOError("writing file", "/tmp/demo/Cargo.toml", fs.ErrPermission)

	assert.True(t, errors.Is(err, ErrIO))
	assert.True(t, errors.Is(err, fs.ErrPermission))
	assert.Contains(t, err.Error(), "writing file")
}

func TestWrap(t *testing.T) {
	wrapped := Wrap(ErrMalformedManifest, "no insertion point")

	assert.True(t, errors.Is(wrapped, ErrMalformedManifest))
	assert.Contains(t, wrapped.Error(), "no insertion point")
}

func TestExitCodeFromError(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want int
	}{
		{"nil", nil, ExitSuccess},
		{"validation", NewValidationError("x", "", ""), ExitValidationError},
		{"target not empty", NewTargetNotEmptyError("/x"), ExitTargetNotEmpty},
		{"vcs", NewVCSInitError("/x", errors.New("boom")), ExitVCSError},
		{"io", NewIOError("mkdir", "/x", errors.New("boom")), ExitIOError},
		{"manifest", Wrap(ErrMalformedManifest, "x"), ExitManifestError},
		{"not scaffolded", Wrap(ErrNotScaffolded, "x"), ExitGeneralError},
		{"plain", errors.New("boom"), ExitGeneralError},
		{"exit error wins", &ExitError{Code: 42, Err: NewTargetNotEmptyError("/x")}, 42},
		{"wrapped", fmt.Errorf("outer: %w", NewIOError("x", "/x", errors.New("boom"))), ExitIOError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, ExitCodeFromError(tt.err))
		})
	}
}

func TestExitCodeName(t *testing.T) {
	assert.Equal(t, "Success", ExitCodeName(ExitSuccess))
	assert.Equal(t, "Target Not Empty", ExitCodeName(ExitTargetNotEmpty))
	assert.Equal(t, "Unknown", ExitCodeName(99))
}
