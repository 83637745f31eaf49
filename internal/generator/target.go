package generator

import (
	"fmt"
	"path/filepath"
	"strings"

	oerrors "github.com/newcrate/cli/internal/errors"
	"github.com/newcrate/cli/internal/templates"
)

// Target identifies where a package is created and what it is called.
type Target struct {
	// Path is the target directory as given by the user.
	Path string

	// PackageName is the final component of Path.
	PackageName string
}

// NewTarget derives a Target from path. It fails when path has no final
// component (empty, ".", "..", or a filesystem root) or when that component
// is not a valid crate name.
func NewTarget(path string) (Target, error) {
	if strings.TrimSpace(path) == "" {
		return Target{}, oerrors.NewValidationError("target path cannot be empty", "", "")
	}

	name := filepath.Base(filepath.Clean(path))
	if name == "." || name == ".." || name == string(filepath.Separator) {
		return Target{}, oerrors.NewValidationError(
			fmt.Sprintf("target path %q has no final component", path), path,
			"Pass a path ending in the package directory name.")
	}

	if err := templates.ValidatePackageName(name); err != nil {
		return Target{}, err
	}

	return Target{Path: path, PackageName: name}, nil
}
