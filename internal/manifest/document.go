// Package manifest models a Cargo.toml manifest as an ordered list of lines.
//
// Optional [package] fields are inserted at a fixed anchor, the first blank
// line after the [package] table header, so the generated file keeps the
// same shape cargo itself produces. The model never touches the filesystem.
package manifest

import (
	"fmt"
	"strings"

	"github.com/pelletier/go-toml/v2"

	oerrors "github.com/newcrate/cli/internal/errors"
)

// PackageTable is the header of the package metadata table.
const PackageTable = "[package]"

// Document is an ordered, mutable sequence of manifest lines.
type Document struct {
	lines []string
}

// Metadata is the decoded [package] table.
type Metadata struct {
	Name    string `toml:"name"`
	Version string `toml:"version"`
	Edition string `toml:"edition"`
	License string `toml:"license,omitempty"`
	Readme  string `toml:"readme,omitempty"`
}

type decoded struct {
	Package      Metadata       `toml:"package"`
	Dependencies map[string]any `toml:"dependencies"`
}

// New creates a document from the given lines.
func New(lines ...string) *Document {
	d := &Document{lines: make([]string, len(lines))}
	copy(d.lines, lines)
	return d
}

// Parse splits manifest text into a document.
func Parse(text string) *Document {
	return New(strings.Split(text, "\n")...)
}

// Clone returns an independent copy of the document.
func (d *Document) Clone() *Document {
	return New(d.lines...)
}

// Lines returns a copy of the document lines.
func (d *Document) Lines() []string {
	out := make([]string, len(d.lines))
	copy(out, d.lines)
	return out
}

// String serializes the document by joining lines with newlines.
func (d *Document) String() string {
	return strings.Join(d.lines, "\n")
}

// Bytes returns the serialized document.
func (d *Document) Bytes() []byte {
	return []byte(d.String())
}

// InsertField sets key = "value" in the [package] table.
// An existing line for key is replaced in place; otherwise the line is
// inserted immediately before the insertion point.
func (d *Document) InsertField(key, value string) error {
	if key == "" {
		return fmt.Errorf("inserting field: %w", oerrors.ErrValidation)
	}

	line := fmt.Sprintf("%s = %s", key, quote(value))

	header, end := d.packageBounds()
	if header < 0 {
		return oerrors.Wrap(oerrors.ErrMalformedManifest, "no [package] table")
	}

	for i := header + 1; i < end; i++ {
		if k, ok := lineKey(d.lines[i]); ok && k == key {
			d.lines[i] = line
			return nil
		}
	}

	at := d.InsertionPoint()
	if at < 0 {
		return oerrors.Wrap(oerrors.ErrMalformedManifest, "no insertion point after [package] table")
	}

	d.lines = append(d.lines, "")
	copy(d.lines[at+1:], d.lines[at:])
	d.lines[at] = line
	return nil
}

// Field returns the raw value of key in the [package] table.
func (d *Document) Field(key string) (string, bool) {
	header, end := d.packageBounds()
	if header < 0 {
		return "", false
	}
	for i := header + 1; i < end; i++ {
		k, ok := lineKey(d.lines[i])
		if !ok || k != key {
			continue
		}
		_, v, _ := strings.Cut(d.lines[i], "=")
		return unquote(strings.TrimSpace(v)), true
	}
	return "", false
}

// Count returns how many lines in the [package] table assign key.
func (d *Document) Count(key string) int {
	header, end := d.packageBounds()
	if header < 0 {
		return 0
	}
	n := 0
	for i := header + 1; i < end; i++ {
		if k, ok := lineKey(d.lines[i]); ok && k == key {
			n++
		}
	}
	return n
}

// InsertionPoint returns the index of the first blank line inside the
// [package] table, or -1 when there is none.
func (d *Document) InsertionPoint() int {
	header, end := d.packageBounds()
	if header < 0 {
		return -1
	}
	for i := header + 1; i < end; i++ {
		if strings.TrimSpace(d.lines[i]) == "" {
			return i
		}
	}
	return -1
}

// Metadata decodes the document and returns its [package] table.
func (d *Document) Metadata() (Metadata, error) {
	var doc decoded
	if err := toml.Unmarshal(d.Bytes(), &doc); err != nil {
		return Metadata{}, fmt.Errorf("%w: %w", oerrors.ErrMalformedManifest, err)
	}
	return doc.Package, nil
}

// Validate checks the document has an insertion point, decodes as TOML and
// names its package.
func (d *Document) Validate() error {
	if d.InsertionPoint() < 0 {
		return oerrors.Wrap(oerrors.ErrMalformedManifest, "no insertion point after [package] table")
	}
	meta, err := d.Metadata()
	if err != nil {
		return err
	}
	if meta.Name == "" {
		return oerrors.Wrap(oerrors.ErrMalformedManifest, "package name missing")
	}
	return nil
}

// packageBounds returns the index of the [package] header and the index of
// the next table header (or len(lines)).
func (d *Document) packageBounds() (int, int) {
	header := -1
	for i, l := range d.lines {
		if strings.TrimSpace(l) == PackageTable {
			header = i
			break
		}
	}
	if header < 0 {
		return -1, -1
	}
	for i := header + 1; i < len(d.lines); i++ {
		if strings.HasPrefix(strings.TrimSpace(d.lines[i]), "[") {
			return header, i
		}
	}
	return header, len(d.lines)
}

// lineKey extracts the bare key from a `key = value` line.
func lineKey(line string) (string, bool) {
	trimmed := strings.TrimSpace(line)
	if trimmed == "" || strings.HasPrefix(trimmed, "#") {
		return "", false
	}
	k, _, ok := strings.Cut(trimmed, "=")
	if !ok {
		return "", false
	}
	return strings.TrimSpace(k), true
}

var (
	quoter   = strings.NewReplacer(`\`, `\\`, `"`, `\"`)
	unquoter = strings.NewReplacer(`\\`, `\`, `\"`, `"`)
)

func quote(s string) string {
	return `"` + quoter.Replace(s) + `"`
}

func unquote(s string) string {
	if len(s) >= 2 && s[0] == '"' && s[len(s)-1] == '"' {
		return unquoter.Replace(s[1 : len(s)-1])
	}
	return s
}
