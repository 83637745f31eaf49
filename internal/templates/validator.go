package templates

import (
	"fmt"
	"regexp"

	oerrors "github.com/newcrate/cli/internal/errors"
)

// Crate names must start with a letter or underscore and contain only
// letters, digits, hyphens and underscores.
var crateNameRegex = regexp.MustCompile(`^[a-zA-Z_][a-zA-Z0-9_-]*$`)

// ValidatePackageName checks if a string is a usable crate name.
func ValidatePackageName(name string) error {
	if name == "" {
		return oerrors.NewValidationError("package name cannot be empty", "",
			"The package name is the last component of the target path.")
	}

	if !crateNameRegex.MatchString(name) {
		return oerrors.NewValidationError(
			fmt.Sprintf("invalid package name %q: must start with a letter or underscore and contain only letters, digits, '-' and '_'", name),
			"", "Rename the target directory.")
	}

	if isReservedWord(name) {
		return oerrors.NewValidationError(
			fmt.Sprintf("invalid package name %q: cannot use a Rust keyword", name),
			"", "Rename the target directory.")
	}

	return nil
}

// isReservedWord checks if a name is a Rust keyword.
func isReservedWord(name string) bool {
	reserved := map[string]bool{
		"_":        true,
		"abstract": true,
		"as":       true,
		"async":    true,
		"await":    true,
		"become":   true,
		"box":      true,
		"break":    true,
		"const":    true,
		"continue": true,
		"crate":    true,
		"do":       true,
		"dyn":      true,
		"else":     true,
		"enum":     true,
		"extern":   true,
		"false":    true,
		"final":    true,
		"fn":       true,
		"for":      true,
		"if":       true,
		"impl":     true,
		"in":       true,
		"let":      true,
		"loop":     true,
		"macro":    true,
		"match":    true,
		"mod":      true,
		"move":     true,
		"mut":      true,
		"override": true,
		"priv":     true,
		"pub":      true,
		"ref":      true,
		"return":   true,
		"self":     true,
		"Self":     true,
		"static":   true,
		"struct":   true,
		"super":    true,
		"trait":    true,
		"true":     true,
		"try":      true,
		"type":     true,
		"typeof":   true,
		"unsafe":   true,
		"unsized":  true,
		"use":      true,
		"virtual":  true,
		"where":    true,
		"while":    true,
		"yield":    true,
	}
	return reserved[name]
}
