package manifest

import (
	"errors"
	"strings"
	"testing"

	"github.com/pelletier/go-toml/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	oerrors "github.com/newcrate/cli/internal/errors"
)

func skeleton() *Document {
	return New(
		"[package]",
		`name = "myapp"`,
		`version = "0.1.0"`,
		`edition = "2021"`,
		"",
		"# See more keys and their definitions at https://doc.rust-lang.org/cargo/reference/manifest.html",
		"",
		"[dependencies]",
		"",
	)
}

func TestInsertionPoint(t *testing.T) {
	assert.Equal(t, 4, skeleton().InsertionPoint())

	noBlank := New("[package]", `name = "x"`, "[dependencies]", "")
	assert.Equal(t, -1, noBlank.InsertionPoint(), "blank line after [dependencies] is not an anchor")

	assert.Equal(t, -1, New("[dependencies]", "").InsertionPoint())
}

func TestInsertField_PositionedBetweenBlocks(t *testing.T) {
	doc := skeleton()
	require.NoError(t, doc.InsertField("license", "MIT"))

	lines := doc.Lines()
	assert.Equal(t, []string{
		"[package]",
		`name = "myapp"`,
		`version = "0.1.0"`,
		`edition = "2021"`,
		`license = "MIT"`,
		"",
		"# See more keys and their definitions at https://doc.rust-lang.org/cargo/reference/manifest.html",
		"",
		"[dependencies]",
		"",
	}, lines)
}

func TestInsertField_KeepsCallOrder(t *testing.T) {
	doc := skeleton()
	require.NoError(t, doc.InsertField("license", "MIT"))
	require.NoError(t, doc.InsertField("readme", "README.md"))

	lines := doc.Lines()
	assert.Equal(t, `license = "MIT"`, lines[4])
	assert.Equal(t, `readme = "README.md"`, lines[5])
	assert.Equal(t, "", lines[6])
}

func TestInsertField_Idempotent(t *testing.T) {
	doc := skeleton()
	require.NoError(t, doc.InsertField("license", "MIT"))
	require.NoError(t, doc.InsertField("license", "MIT"))
	require.NoError(t, doc.InsertField("readme", "README.md"))
	require.NoError(t, doc.InsertField("readme", "README.md"))

	assert.Equal(t, 1, doc.Count("license"))
	assert.Equal(t, 1, doc.Count("readme"))
	assert.Len(t, doc.Lines(), len(skeleton().Lines())+2)
}

func TestInsertField_ReplacesInPlace(t *testing.T) {
	doc := skeleton()
	require.NoError(t, doc.InsertField("license", "MIT"))
	require.NoError(t, doc.InsertField("readme", "README.md"))
	require.NoError(t, doc.InsertField("license", "Apache-2.0"))

	lines := doc.Lines()
	assert.Equal(t, `license = "Apache-2.0"`, lines[4])
	assert.Equal(t, 1, doc.Count("license"))
}

func TestInsertField_ReplacesExistingMetadataKey(t *testing.T) {
	doc := skeleton()
	require.NoError(t, doc.InsertField("version", "1.0.0"))

	v, ok := doc.Field("version")
	require.True(t, ok)
	assert.Equal(t, "1.0.0", v)
	assert.Equal(t, 1, doc.Count("version"))
}

func TestInsertField_IgnoresDependencyKeys(t *testing.T) {
	doc := New(
		"[package]",
		`name = "x"`,
		"",
		"[dependencies]",
		`license = "not-a-package-field"`,
	)
	require.NoError(t, doc.InsertField("license", "MIT"))

	lines := doc.Lines()
	assert.Equal(t, `license = "MIT"`, lines[2])
	assert.Equal(t, `license = "not-a-package-field"`, lines[5])
}

func TestInsertField_Malformed(t *testing.T) {
	tests := []struct {
		name string
		doc  *Document
	}{
		{"no package table", New("[dependencies]", "")},
		{"no blank line", New("[package]", `name = "x"`)},
		{"empty", New()},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.doc.InsertField("license", "MIT")
			require.Error(t, err)
			assert.True(t, errors.Is(err, oerrors.ErrMalformedManifest))
		})
	}
}

func TestInsertField_EmptyKey(t *testing.T) {
	err := skeleton().InsertField("", "x")
	assert.True(t, errors.Is(err, oerrors.ErrValidation))
}

func TestInsertField_QuotesValue(t *testing.T) {
	doc := skeleton()
	require.NoError(t, doc.InsertField("description", `say "hi" \o/`))

	v, ok := doc.Field("description")
	require.True(t, ok)
	assert.Equal(t, `say "hi" \o/`, v)
	require.NoError(t, doc.Validate())
}

func TestString_RoundTrip(t *testing.T) {
	doc := skeleton()
	require.NoError(t, doc.InsertField("license", "MIT"))

	text := doc.String()
	assert.True(t, strings.HasSuffix(text, "[dependencies]\n"))
	assert.True(t, strings.HasPrefix(text, "[package]\nname = \"myapp\"\nversion = \"0.1.0\"\nedition = \"2021\"\n"))

	reparsed := Parse(text)
	assert.Equal(t, doc.Lines(), reparsed.Lines())
}

func TestMetadata(t *testing.T) {
	doc := skeleton()
	require.NoError(t, doc.InsertField("license", "MIT"))
	require.NoError(t, doc.InsertField("readme", "README.md"))

	meta, err := doc.Metadata()
	require.NoError(t, err)
	assert.Equal(t, Metadata{
		Name:    "myapp",
		Version: "0.1.0",
		Edition: "2021",
		License: "MIT",
		Readme:  "README.md",
	}, meta)

	var raw map[string]any
	require.NoError(t, toml.Unmarshal(doc.Bytes(), &raw))
	assert.Contains(t, raw, "dependencies")
}

func TestValidate(t *testing.T) {
	assert.NoError(t, skeleton().Validate())

	broken := New("[package]", `name = "x`, "")
	assert.True(t, errors.Is(broken.Validate(), oerrors.ErrMalformedManifest))

	nameless := New("[package]", `version = "0.1.0"`, "")
	assert.True(t, errors.Is(nameless.Validate(), oerrors.ErrMalformedManifest))
}

func TestNew_CopiesInput(t *testing.T) {
	lines := []string{"[package]", `name = "x"`, ""}
	doc := New(lines...)
	lines[1] = "mutated"

	assert.Equal(t, `name = "x"`, doc.Lines()[1])

	out := doc.Lines()
	out[0] = "mutated"
	assert.Equal(t, "[package]", doc.Lines()[0])
}

func TestClone(t *testing.T) {
	doc := skeleton()
	clone := doc.Clone()
	require.NoError(t, clone.InsertField("license", "MIT"))

	assert.Equal(t, 0, doc.Count("license"))
	assert.Equal(t, 1, clone.Count("license"))
}
