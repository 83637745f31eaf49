package templates

import (
	"fmt"

	"github.com/newcrate/cli/internal/config"
	oerrors "github.com/newcrate/cli/internal/errors"
	"github.com/newcrate/cli/internal/manifest"
)

// EntryPoint returns the hello world program placed at src/main.rs.
func EntryPoint() string {
	return mustRender(entryPointTemplate, TemplateData{})
}

// Ignore returns the .gitignore content excluding the build output directory.
func Ignore() string {
	return mustRender(ignoreTemplate, TemplateData{})
}

// Readme returns a README consisting of a level-1 heading with the package name.
func Readme(packageName string) string {
	return mustRender(readmeTemplate, TemplateData{PackageName: packageName})
}

// License returns the MIT license text with year and names on the copyright line.
func License(names, year string) string {
	return mustRender(licenseTemplate, TemplateData{Names: names, Year: year})
}

// Manifest renders the Cargo.toml skeleton for data.PackageName.
// Empty Version and Edition fall back to the defaults.
func Manifest(data TemplateData) (*manifest.Document, error) {
	if data.PackageName == "" {
		return nil, oerrors.NewValidationError("package name cannot be empty", "", "")
	}
	if data.Version == "" {
		data.Version = config.DefaultVersion
	}
	if data.Edition == "" {
		data.Edition = config.DefaultEdition
	}

	text, err := render(manifestTemplate, data)
	if err != nil {
		return nil, fmt.Errorf("rendering manifest: %w", err)
	}

	return manifest.Parse(text), nil
}
