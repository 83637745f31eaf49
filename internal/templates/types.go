package templates

// Files created in a new crate, relative to the crate root.
const (
	EntryPointFile = "src/main.rs"
	ManifestFile   = "Cargo.toml"
	IgnoreFile     = ".gitignore"
	ReadmeFile     = "README.md"
	LicenseFile    = "LICENSE"
)

// TemplateData holds the data passed to template rendering.
type TemplateData struct {
	// PackageName is the crate name (final component of the target path).
	PackageName string

	// Version is the initial crate version.
	Version string

	// Edition is the Rust edition written to the manifest.
	Edition string

	// Names are the copyright holders named in the license.
	Names string

	// Year is the four-digit copyright year.
	Year string
}

// Describe returns a short description of a generated file for display.
func Describe(file string) string {
	descriptions := map[string]string{
		EntryPointFile: "Entry point",
		ManifestFile:   "Package manifest",
		IgnoreFile:     "Git ignore rules",
		ReadmeFile:     "Readme",
		LicenseFile:    "MIT license",
	}
	return descriptions[file]
}
