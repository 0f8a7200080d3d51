package mapping

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"reflection-remapper/internal/diagnostic"
)

const sampleYAML = `
version: "1"
namespaces: [src, dst]
classes:
  - names: {src: a.B, dst: a.B2}
    fields:
      - names: {src: f, dst: g}
        descriptor: I
    methods:
      - names: [m, m1]
        descriptor: (I)V
      - names: [m, m2]
        descriptor: (La/B;)V
  - names: {src: a.C, dst: a.C2}
    superclass: a.B
  - names: a.Same
    superclass: java.lang.Object
    methods:
      - names: run
        descriptor: ()V
`

func TestParse(t *testing.T) {
	f, err := Parse([]byte(sampleYAML))
	require.NoError(t, err)

	assert.Equal(t, "1", f.Version)
	assert.Equal(t, []string{"src", "dst"}, f.Namespaces)
	require.Len(t, f.Classes, 3)

	assert.Equal(t, map[string]string{"src": "a.B", "dst": "a.B2"}, f.Classes[0].Names.ByNamespace)
	assert.Equal(t, []string{"m", "m1"}, f.Classes[0].Methods[0].Names.Positional)
	assert.Equal(t, "a.Same", f.Classes[2].Names.Shared)
	assert.Equal(t, "a.B", f.Classes[1].Superclass)
}

func TestParseDefaultsAndVersion(t *testing.T) {
	f, err := Parse([]byte("namespaces: [a, b]\n"))
	require.NoError(t, err)
	assert.Equal(t, "1", f.Version)

	_, err = Parse([]byte("version: \"1.4\"\nnamespaces: [a, b]\n"))
	require.NoError(t, err)

	_, err = Parse([]byte("version: \"2\"\nnamespaces: [a, b]\n"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unsupported")

	_, err = Parse([]byte("version: banana\n"))
	require.Error(t, err)

	_, err = Parse([]byte("classes: {"))
	require.Error(t, err)
}

func TestFileTable(t *testing.T) {
	f, err := Parse([]byte(sampleYAML))
	require.NoError(t, err)

	table, err := f.Table()
	require.NoError(t, err)

	c, ok := table.ClassByName("src", "a.B")
	require.True(t, ok)

	fld, ok := table.FieldInClass(c, "src", "f")
	require.True(t, ok)
	assert.Equal(t, "g", fld.Name("dst"))

	same, ok := table.ClassByName("dst", "a.Same")
	require.True(t, ok)
	assert.Equal(t, "a.Same", same.Name("src"))
	assert.Len(t, table.MethodsNamed(same, "dst", "run"), 1)
}

func TestFileTableReportsBadNames(t *testing.T) {
	f, err := Parse([]byte(`
namespaces: [src, dst]
classes:
  - names: {src: a.A, other: x}
  - names: [a.B]
  - names: {src: a.C, dst: c}
    fields:
      - names: [f]
`))
	require.NoError(t, err)

	_, err = f.Table()
	require.ErrorIs(t, err, ErrInvalidTable)
	assert.Contains(t, err.Error(), `unknown namespace "other"`)
	assert.Contains(t, err.Error(), "expected 2 names, got 1")
}

func TestFileHierarchy(t *testing.T) {
	f, err := Parse([]byte(sampleYAML))
	require.NoError(t, err)

	table, err := f.Table()
	require.NoError(t, err)

	src, err := f.Hierarchy(table, "src")
	require.NoError(t, err)

	super, ok := src.Superclass("a.C")
	require.True(t, ok)
	assert.Equal(t, "a.B", super)

	dst, err := f.Hierarchy(table, "dst")
	require.NoError(t, err)

	super, ok = dst.Superclass("a.C2")
	require.True(t, ok)
	assert.Equal(t, "a.B2", super)

	super, ok = dst.Superclass("a.Same")
	require.True(t, ok)
	assert.Equal(t, "java.lang.Object", super, "unmapped superclass keeps its name")

	_, err = f.Hierarchy(table, "nope")
	require.Error(t, err)
}

func TestValidate(t *testing.T) {
	f, err := Parse([]byte(sampleYAML))
	require.NoError(t, err)

	diags := Validate(f)
	require.True(t, diags.IsValid(), diags.Error())
	require.Len(t, diags.Infos, 1)
	assert.Equal(t, "unmapped_superclass", diags.Infos[0].Code)
	assert.Equal(t, diagnostic.DiagnosticInfo, diags.Infos[0].Severity)

	assert.False(t, Validate(nil).IsValid())
}

func TestValidateReportsCyclesAndUnnamedClasses(t *testing.T) {
	f, err := Parse([]byte(`
namespaces: [src, dst]
classes:
  - names: [a.A, x]
    superclass: a.B
  - names: [a.B, y]
    superclass: a.A
  - names: {src: a.C}
    fields:
      - names: [f, g]
`))
	require.NoError(t, err)

	diags := Validate(f)
	require.False(t, diags.IsValid())
	assert.Equal(t, "invalid_hierarchy", diags.Errors[0].Code)
	require.Len(t, diags.Warnings, 1)
	assert.Equal(t, "unnamed_class", diags.Warnings[0].Code)
	assert.Equal(t, "dst", diags.Warnings[0].Namespace)
	assert.Len(t, diags.InNamespace("dst"), 1)
}

func TestWriteAndLoadFile(t *testing.T) {
	f, err := Parse([]byte(sampleYAML))
	require.NoError(t, err)

	path := filepath.Join(t.TempDir(), "mappings.yaml")
	require.NoError(t, WriteFile(f, path))

	table, err := LoadTable(path)
	require.NoError(t, err)
	assert.Equal(t, 3, table.Len())

	_, err = LoadFile(filepath.Join(t.TempDir(), "missing.yaml"))
	require.ErrorIs(t, err, os.ErrNotExist)
}
