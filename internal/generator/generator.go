// Package generator creates a new crate: repository, source stub, manifest,
// ignore file and the optional README and LICENSE.
package generator

import (
	"fmt"
	"slices"
	"time"

	"github.com/newcrate/cli/internal/config"
	oerrors "github.com/newcrate/cli/internal/errors"
	"github.com/newcrate/cli/internal/manifest"
	"github.com/newcrate/cli/internal/output"
	"github.com/newcrate/cli/internal/templates"
)

// srcDir holds the crate sources.
const srcDir = "src"

// Workspace is the filesystem and version-control access the generator needs.
// *workspace.Gateway implements it.
type Workspace interface {
	PathExists(p string) (bool, error)
	IsEmptyDirectory(p string) (bool, error)
	InitRepository(p string) error
	CreateDirectory(base, rel string) error
	WriteFile(base, rel string, content []byte) error
}

// Options configures a Generator.
type Options struct {
	// Path is the target directory.
	Path string

	// Config holds the resolved generation settings.
	Config config.Generation

	// Now fixes the copyright year. Zero means the current time.
	Now time.Time
}

// Generator owns the target, the in-memory manifest and the generation settings.
type Generator struct {
	ws         Workspace
	target     Target
	cfg        config.Generation
	year       string
	manifest   *manifest.Document
	scaffolded bool
	files      []string
	rewritten  []string
}

// New creates a generator for opts.Path. The package name, the copyright
// year and the manifest skeleton are fixed here. Invalid settings fail here,
// before anything is written.
func New(ws Workspace, opts Options) (*Generator, error) {
	target, err := NewTarget(opts.Path)
	if err != nil {
		return nil, err
	}

	now := opts.Now
	if now.IsZero() {
		now = time.Now()
	}

	cfg := opts.Config
	if cfg.Version == "" {
		cfg.Version = config.DefaultVersion
	}
	if cfg.Edition == "" {
		cfg.Edition = config.DefaultEdition
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	doc, err := templates.Manifest(templates.TemplateData{
		PackageName: target.PackageName,
		Version:     cfg.Version,
		Edition:     cfg.Edition,
	})
	if err != nil {
		return nil, err
	}
	// nothing may touch the target unless the skeleton is writable
	if err := doc.Validate(); err != nil {
		return nil, err
	}

	return &Generator{
		ws:       ws,
		target:   target,
		cfg:      cfg,
		year:     now.Format("2006"),
		manifest: doc,
	}, nil
}

// Target returns the generation target.
func (g *Generator) Target() Target {
	return g.target
}

// Year returns the copyright year captured at construction.
func (g *Generator) Year() string {
	return g.year
}

// Manifest returns a copy of the current manifest.
func (g *Generator) Manifest() *manifest.Document {
	return g.manifest.Clone()
}

// Files returns the files created so far, relative to the target, in
// creation order.
func (g *Generator) Files() []string {
	out := make([]string, len(g.files))
	copy(out, g.files)
	return out
}

// Rewritten reports whether rel was written again after it was created,
// as Cargo.toml is when a license or README is added.
func (g *Generator) Rewritten(rel string) bool {
	return slices.Contains(g.rewritten, rel)
}

// Run scaffolds the package and then adds the license and README the
// configuration asks for. Optional steps never run if Scaffold fails.
func (g *Generator) Run() (string, error) {
	msg, err := g.Scaffold()
	if err != nil {
		return "", err
	}

	if g.cfg.WantsLicense() {
		if _, err := g.AddLicense(); err != nil {
			return "", err
		}
	} else {
		output.Debug("skipping license", "names", g.cfg.Names)
	}

	if g.cfg.Readme {
		if _, err := g.AddReadme(); err != nil {
			return "", err
		}
	}

	return msg, nil
}

// Scaffold creates the repository, src/main.rs, Cargo.toml and .gitignore.
// The target must not exist or be an empty directory; an existing,
// populated target is never touched.
func (g *Generator) Scaffold() (string, error) {
	path := g.target.Path

	if err := g.checkTarget(); err != nil {
		return "", err
	}

	if err := g.ws.InitRepository(path); err != nil {
		return "", oerrors.NewVCSInitError(path, err)
	}

	if err := g.ws.CreateDirectory(path, srcDir); err != nil {
		return "", oerrors.NewIOError("creating source directory", path, err)
	}

	if err := g.write(templates.EntryPointFile, []byte(templates.EntryPoint())); err != nil {
		return "", err
	}

	if err := g.writeManifest(g.manifest); err != nil {
		return "", err
	}

	if err := g.write(templates.IgnoreFile, []byte(templates.Ignore())); err != nil {
		return "", err
	}

	g.scaffolded = true
	output.Debug("scaffolded package", "name", g.target.PackageName, "path", path)

	return fmt.Sprintf("Created %s", path), nil
}

// AddLicense writes an MIT LICENSE for the configured names and sets
// license = "MIT" in the manifest. Calling it again rewrites both files
// without duplicating the manifest field.
func (g *Generator) AddLicense() (string, error) {
	if err := g.requireScaffold("license"); err != nil {
		return "", err
	}
	if !g.cfg.WantsLicense() {
		return "", oerrors.NewValidationError("no copyright holders configured", "",
			"Pass --names with the copyright holders.")
	}

	text := templates.License(g.cfg.Names, g.year)
	if err := g.write(templates.LicenseFile, []byte(text)); err != nil {
		return "", err
	}

	if err := g.setField("license", "MIT"); err != nil {
		return "", err
	}

	return fmt.Sprintf("Created %s", g.target.Path), nil
}

// AddReadme writes README.md and sets readme = "README.md" in the manifest.
func (g *Generator) AddReadme() (string, error) {
	if err := g.requireScaffold("readme"); err != nil {
		return "", err
	}

	if err := g.write(templates.ReadmeFile, []byte(templates.Readme(g.target.PackageName))); err != nil {
		return "", err
	}

	if err := g.setField("readme", templates.ReadmeFile); err != nil {
		return "", err
	}

	return fmt.Sprintf("Created %s", g.target.Path), nil
}

// checkTarget fails with ErrTargetNotEmpty unless the target is missing or
// an empty directory.
func (g *Generator) checkTarget() error {
	path := g.target.Path

	exists, err := g.ws.PathExists(path)
	if err != nil {
		return oerrors.NewIOError("checking target", path, err)
	}
	if !exists {
		return nil
	}

	empty, err := g.ws.IsEmptyDirectory(path)
	if err != nil {
		return oerrors.NewIOError("reading target", path, err)
	}
	if !empty {
		return oerrors.NewTargetNotEmptyError(path)
	}

	return nil
}

func (g *Generator) requireScaffold(step string) error {
	if !g.scaffolded {
		return oerrors.Wrap(oerrors.ErrNotScaffolded, fmt.Sprintf("adding %s", step))
	}
	return nil
}

// setField updates a copy of the manifest, writes it, and keeps the copy
// only once it is on disk.
func (g *Generator) setField(key, value string) error {
	next := g.manifest.Clone()
	if err := next.InsertField(key, value); err != nil {
		return err
	}
	if err := g.writeManifest(next); err != nil {
		return err
	}
	g.manifest = next
	output.Debug("updated manifest", "field", key, "value", value)
	return nil
}

func (g *Generator) writeManifest(doc *manifest.Document) error {
	if err := doc.Validate(); err != nil {
		return err
	}
	return g.write(templates.ManifestFile, doc.Bytes())
}

// write writes rel under the target and records it as created.
func (g *Generator) write(rel string, content []byte) error {
	if err := g.ws.WriteFile(g.target.Path, rel, content); err != nil {
		return oerrors.NewIOError("writing "+rel, g.target.Path, err)
	}
	switch {
	case !slices.Contains(g.files, rel):
		g.files = append(g.files, rel)
	case !slices.Contains(g.rewritten, rel):
		g.rewritten = append(g.rewritten, rel)
	}
	return nil
}
