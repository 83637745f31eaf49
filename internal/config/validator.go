package config

import (
	"fmt"
	"slices"
	"strings"

	"github.com/Masterminds/semver/v3"

	oerrors "github.com/newcrate/cli/internal/errors"
)

// ValidateVersion checks v is a full MAJOR.MINOR.PATCH semantic version.
func ValidateVersion(v string) error {
	if _, err := semver.StrictNewVersion(v); err != nil {
		return oerrors.NewValidationError(
			fmt.Sprintf("invalid package version %q: %v", v, err),
			"package.version",
			"Use a semantic version such as 0.1.0.")
	}
	return nil
}

// ValidateEdition checks e is a known Rust edition.
func ValidateEdition(e string) error {
	if !slices.Contains(Editions, e) {
		return oerrors.NewValidationError(
			fmt.Sprintf("unknown edition %q", e),
			"package.edition",
			fmt.Sprintf("Valid editions: %s", strings.Join(Editions, ", ")))
	}
	return nil
}

// Validate checks the resolved generation settings.
func (g Generation) Validate() error {
	if err := ValidateVersion(g.Version); err != nil {
		return err
	}
	return ValidateEdition(g.Edition)
}
