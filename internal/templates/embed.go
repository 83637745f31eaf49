// Package templates renders the files of a new crate from embedded templates.
package templates

import (
	"bytes"
	"embed"
	"fmt"
	"text/template"
)

//go:embed files/*
var templateFS embed.FS

// parsed holds every embedded template keyed by its file name.
var parsed = template.Must(template.New("").ParseFS(templateFS, "files/*.tmpl"))

// Template names within the embedded filesystem.
const (
	entryPointTemplate = "main.rs.tmpl"
	manifestTemplate   = "Cargo.toml.tmpl"
	ignoreTemplate     = "gitignore.tmpl"
	readmeTemplate     = "README.md.tmpl"
	licenseTemplate    = "LICENSE-MIT.tmpl"
)

// render executes the named template with data.
func render(name string, data TemplateData) (string, error) {
	var buf bytes.Buffer
	if err := parsed.ExecuteTemplate(&buf, name, data); err != nil {
		return "", fmt.Errorf("executing template %s: %w", name, err)
	}
	return buf.String(), nil
}

// mustRender executes a template whose inputs are plain strings and cannot fail.
func mustRender(name string, data TemplateData) string {
	out, err := render(name, data)
	if err != nil {
		panic(err)
	}
	return out
}
