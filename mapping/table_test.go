package mapping

import (
	"testing"

	"github.com/davecgh/go-spew/spew"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"reflection-remapper/descriptor"
)

func buildTestTable(t *testing.T) *Table {
	t.Helper()

	b := NewBuilder("src", "dst", "mid")
	b.Class("a.B", "a.B2", "a.B1").
		Field("I", "f", "g", "f1").
		Method("(I)V", "m", "m1", "mi").
		Method("(La/B;)V", "m", "m2", "mj").
		Method("()J", "seed", "s", "")
	b.Class("a.C", "a.C2", "a.C1")
	b.Class("a.OnlySrc", "", "a.OnlySrc1")

	table, err := b.Build()
	require.NoError(t, err)

	return table
}

func TestTableLookups(t *testing.T) {
	table := buildTestTable(t)

	assert.Equal(t, []string{"src", "dst", "mid"}, table.Namespaces())
	assert.Equal(t, "src", table.DescriptorNamespace())
	assert.True(t, table.HasNamespace("mid"))
	assert.False(t, table.HasNamespace("other"))
	assert.Equal(t, 3, table.Len())

	c, ok := table.ClassByName("src", "a.B")
	require.True(t, ok, spew.Sdump(table.Classes()))

	byDst, ok := table.ClassByName("dst", "a.B2")
	require.True(t, ok)
	assert.Same(t, c, byDst)

	_, ok = table.ClassByName("src", "a.b")
	assert.False(t, ok, "lookups are case-sensitive")

	_, ok = table.ClassByName("nope", "a.B")
	assert.False(t, ok)

	name, err := table.TranslateClassName(c, "src", "dst")
	require.NoError(t, err)
	assert.Equal(t, "a.B2", name)

	f, ok := table.FieldInClass(c, "src", "f")
	require.True(t, ok)
	assert.Equal(t, "g", f.Name("dst"))
	assert.Equal(t, descriptor.Type("I"), f.Descriptor())
	assert.Same(t, c, f.Owner())

	f, ok = table.FieldInClass(c, "mid", "f1")
	require.True(t, ok)
	assert.Equal(t, "f", f.Name("src"))

	_, ok = table.FieldInClass(c, "src", "g")
	assert.False(t, ok)

	assert.Len(t, table.MethodsNamed(c, "src", "m"), 2)
	assert.Len(t, c.Methods(), 3)
	assert.Len(t, c.Fields(), 1)
}

func TestTableMethodOverloads(t *testing.T) {
	table := buildTestTable(t)
	c, _ := table.ClassByName("src", "a.B")

	m, ok := table.MethodInClass(c, "src", "m", descriptor.MustParseMethod("(I)"))
	require.True(t, ok)
	assert.Equal(t, "m1", m.Name("dst"))

	m, ok = table.MethodInClass(c, "src", "m", descriptor.MustParseMethod("(La/B;)V"))
	require.True(t, ok)
	assert.Equal(t, "m2", m.Name("dst"))
	assert.Equal(t, "(La/B;)V", m.Descriptor().String())

	_, ok = table.MethodInClass(c, "src", "m", descriptor.MustParseMethod("(J)"))
	assert.False(t, ok)

	_, ok = table.MethodInClass(c, "src", "m", descriptor.MustParseMethod("(I)I"))
	assert.False(t, ok, "known return types must match")

	m, ok = table.MethodInClass(c, "src", "seed", descriptor.Method{})
	require.True(t, ok)
	assert.Empty(t, m.Name("mid"))
}

func TestTranslateClassNameUnmapped(t *testing.T) {
	table := buildTestTable(t)
	c, ok := table.ClassByName("mid", "a.OnlySrc1")
	require.True(t, ok)

	_, err := table.TranslateClassName(c, "src", "dst")
	require.ErrorIs(t, err, ErrUnmappedClass)

	_, err = table.TranslateClassName(c, "dst", "src")
	require.ErrorIs(t, err, ErrUnmappedClass)

	name, err := table.TranslateClassName(c, "mid", "src")
	require.NoError(t, err)
	assert.Equal(t, "a.OnlySrc", name)
}

func TestBuilderInvariants(t *testing.T) {
	tests := []struct {
		name  string
		build func() *Builder
		code  string
	}{
		{
			name:  "one namespace",
			build: func() *Builder { return NewBuilder("src") },
			code:  "too_few_namespaces",
		},
		{
			name:  "duplicate namespace",
			build: func() *Builder { return NewBuilder("src", "src") },
			code:  "duplicate_namespace",
		},
		{
			name: "duplicate class",
			build: func() *Builder {
				b := NewBuilder("src", "dst")
				b.Class("a.A", "x")
				b.Class("a.B", "x")

				return b
			},
			code: "duplicate_class",
		},
		{
			name: "duplicate field",
			build: func() *Builder {
				b := NewBuilder("src", "dst")
				b.Class("a.A", "x").Field("", "f", "a").Field("", "g", "a")

				return b
			},
			code: "duplicate_field",
		},
		{
			name: "duplicate method",
			build: func() *Builder {
				b := NewBuilder("src", "dst")
				b.Class("a.A", "x").Method("(I)V", "m", "a").Method("(I)V", "m", "b")

				return b
			},
			code: "duplicate_method",
		},
		{
			name: "bad descriptor",
			build: func() *Builder {
				b := NewBuilder("src", "dst")
				b.Class("a.A", "x").Method("(Q)V", "m", "a")

				return b
			},
			code: "invalid_descriptor",
		},
		{
			name: "method without return type",
			build: func() *Builder {
				b := NewBuilder("src", "dst")
				b.Class("a.A", "x").Method("(I)", "m", "a")

				return b
			},
			code: "invalid_descriptor",
		},
		{
			name: "name count",
			build: func() *Builder {
				b := NewBuilder("src", "dst")
				b.Class("a.A")

				return b
			},
			code: "namespace_count_mismatch",
		},
		{
			name: "missing descriptor namespace name",
			build: func() *Builder {
				b := NewBuilder("src", "dst")
				b.Class("a.A", "x").Field("", "", "a")

				return b
			},
			code: "missing_name",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := tt.build().Build()
			require.ErrorIs(t, err, ErrInvalidTable)
			assert.Contains(t, err.Error(), tt.code)
		})
	}
}

func TestBuilderAllowsOverloadsAndSharedTargetNames(t *testing.T) {
	b := NewBuilder("src", "dst")
	b.Class("a.A", "x").
		Method("(I)V", "m", "a").
		Method("(J)V", "m", "a").
		Method("()V", "n", "a")

	table, err := b.Build()
	require.NoError(t, err)

	c, _ := table.ClassByName("dst", "x")
	assert.Len(t, table.MethodsNamed(c, "dst", "a"), 3)
}

func TestBuiltTableOwnsItsNames(t *testing.T) {
	classNames := []string{"a.B", "a.B2"}
	fieldNames := []string{"f", "g"}
	methodNames := []string{"m", "m1"}

	b := NewBuilder("src", "dst")
	b.Class(classNames...).
		Field("I", fieldNames...).
		Method("(I)V", methodNames...)

	table, err := b.Build()
	require.NoError(t, err)

	classNames[1] = "mutated"
	fieldNames[1] = "mutated"
	methodNames[1] = "mutated"

	c, ok := table.ClassByName("dst", "a.B2")
	require.True(t, ok)
	assert.Equal(t, "a.B2", c.Name("dst"))

	_, ok = table.ClassByName("dst", "mutated")
	assert.False(t, ok)

	f, ok := table.FieldInClass(c, "src", "f")
	require.True(t, ok)
	assert.Equal(t, "g", f.Name("dst"))

	m, ok := table.MethodInClass(c, "src", "m", descriptor.MustParseMethod("(I)"))
	require.True(t, ok)
	assert.Equal(t, "m1", m.Name("dst"))
}

func TestBuilderReportsNamespaceOfDuplicates(t *testing.T) {
	b := NewBuilder("src", "dst")
	b.Class("a.A", "x").Method("(I)V", "m", "a").Method("(I)V", "n", "a")

	_, diags := b.build()
	require.Len(t, diags.Errors, 1)

	d := diags.Errors[0]
	assert.Equal(t, "duplicate_method", d.Code)
	assert.Equal(t, "dst", d.Namespace)
	assert.Equal(t, "a.A", d.Class)
	assert.Equal(t, "a", d.Member)
	assert.Equal(t, `[a.A] a (dst): [duplicate_method] method a(I)V is declared twice`, d.String())
}
