// Package workspace provides filesystem and version-control access for
// package generation.
//
// Every operation takes explicit paths; the process working directory is
// never changed.
package workspace

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/afero"

	"github.com/newcrate/cli/internal/output"
)

// Default permissions for created directories and files.
const (
	DirMode  os.FileMode = 0o755
	FileMode os.FileMode = 0o644
)

// Initializer creates a version-control repository rooted at a path.
type Initializer interface {
	// Init initializes a repository at path, creating path if absent.
	Init(path string) error
}

// Gateway performs filesystem and repository operations for the generator.
type Gateway struct {
	fs       afero.Fs
	vcs      Initializer
	fileMode os.FileMode
}

// New creates a gateway over fs that initializes repositories with vcs.
// Written files get FileMode narrowed by the process umask, as a plain
// create would.
func New(fs afero.Fs, vcs Initializer) *Gateway {
	return &Gateway{fs: fs, vcs: vcs, fileMode: FileMode &^ processUmask()}
}

// NewOS creates a gateway over the host filesystem using git repositories.
func NewOS() *Gateway {
	return New(afero.NewOsFs(), GitInitializer{})
}

// Fs returns the underlying filesystem.
func (g *Gateway) Fs() afero.Fs {
	return g.fs
}

// PathExists reports whether p exists. Errors other than not-exist are returned.
func (g *Gateway) PathExists(p string) (bool, error) {
	return afero.Exists(g.fs, p)
}

// IsEmptyDirectory reports whether p is a directory with zero entries.
// A non-directory or a non-empty directory yields false. Metadata errors,
// including p not existing, are returned.
func (g *Gateway) IsEmptyDirectory(p string) (bool, error) {
	info, err := g.fs.Stat(p)
	if err != nil {
		return false, err
	}
	if !info.IsDir() {
		return false, nil
	}

	entries, err := afero.ReadDir(g.fs, p)
	if err != nil {
		return false, err
	}
	return len(entries) == 0, nil
}

// InitRepository initializes a repository rooted at p.
func (g *Gateway) InitRepository(p string) error {
	output.Debug("initializing repository", "path", p)
	return g.vcs.Init(p)
}

// CreateDirectory creates rel under base along with any missing parents.
func (g *Gateway) CreateDirectory(base, rel string) error {
	dir := filepath.Join(base, rel)
	if err := g.fs.MkdirAll(dir, DirMode); err != nil {
		return fmt.Errorf("creating directory %s: %w", dir, err)
	}
	output.Trace("created directory", "path", dir)
	return nil
}

// WriteFile creates or replaces rel under base with content.
// Content is written to a temporary file in the same directory and renamed
// into place, so a reader never observes a partially written file.
func (g *Gateway) WriteFile(base, rel string, content []byte) error {
	target := filepath.Join(base, rel)
	dir := filepath.Dir(target)

	tmp, err := afero.TempFile(g.fs, dir, "."+filepath.Base(target)+".*.tmp")
	if err != nil {
		return fmt.Errorf("creating temporary file for %s: %w", target, err)
	}
	tmpName := tmp.Name()
	output.Trace("writing temporary file", "path", tmpName, "bytes", len(content))

	if _, err := tmp.Write(content); err != nil {
		_ = tmp.Close()
		_ = g.fs.Remove(tmpName)
		return fmt.Errorf("writing %s: %w", target, err)
	}
	if err := tmp.Close(); err != nil {
		_ = g.fs.Remove(tmpName)
		return fmt.Errorf("closing %s: %w", target, err)
	}
	if err := g.fs.Chmod(tmpName, g.fileMode); err != nil {
		_ = g.fs.Remove(tmpName)
		return fmt.Errorf("setting permissions on %s: %w", target, err)
	}
	if err := g.fs.Rename(tmpName, target); err != nil {
		_ = g.fs.Remove(tmpName)
		return fmt.Errorf("replacing %s: %w", target, err)
	}

	output.Debug("wrote file", "path", target)
	return nil
}

// ReadFile reads rel under base.
func (g *Gateway) ReadFile(base, rel string) ([]byte, error) {
	return afero.ReadFile(g.fs, filepath.Join(base, rel))
}
