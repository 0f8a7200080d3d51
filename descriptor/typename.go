package descriptor

import (
	"fmt"
	"strings"

	"reflection-remapper/internal/common"
)

var primitiveByName = map[string]Type{
	"boolean": "Z",
	"byte":    "B",
	"char":    "C",
	"short":   "S",
	"int":     "I",
	"long":    "J",
	"float":   "F",
	"double":  "D",
	"void":    Void,
}

var nameByPrimitive = func() map[Type]string {
	m := make(map[Type]string, len(primitiveByName))
	for name, t := range primitiveByName {
		m[t] = name
	}

	return m
}()

// FromTypeName converts a Java type name into a descriptor type.
//
// Accepted spellings:
//   - primitives: "int", "boolean", ...
//   - classes: "java.lang.String", "a.B$C"
//   - source arrays: "a.B[]", "int[][]"
//   - reflection array names: "[I", "[La.B;"
func FromTypeName(name string) (Type, error) {
	if name == "" {
		return "", fmt.Errorf("%w: empty type name", ErrInvalid)
	}

	if strings.HasPrefix(name, "[") {
		t, err := ParseType(common.SlashName(name))
		if err != nil {
			return "", err
		}

		return t, nil
	}

	dims := 0
	for strings.HasSuffix(name, "[]") {
		name = strings.TrimSuffix(name, "[]")
		dims++
	}

	if p, ok := primitiveByName[name]; ok {
		if p == Void && dims > 0 {
			return "", fmt.Errorf("%w: array of void", ErrInvalid)
		}

		return ArrayOf(p, dims), nil
	}

	if name == "" || strings.ContainsAny(name, "/;[]() ") || strings.HasPrefix(name, ".") || strings.HasSuffix(name, ".") {
		return "", fmt.Errorf("%w: bad type name %q", ErrInvalid, name)
	}

	return ArrayOf(Object(name), dims), nil
}

// Params builds a parameters-only method descriptor from Java type names.
func Params(typeNames ...string) (Method, error) {
	m := Method{}
	if len(typeNames) == 0 {
		return m, nil
	}

	m.Params = make([]Type, 0, len(typeNames))

	for _, n := range typeNames {
		t, err := FromTypeName(n)
		if err != nil {
			return Method{}, fmt.Errorf("parameter %q: %w", n, err)
		}

		if t == Void {
			return Method{}, fmt.Errorf("%w: void parameter", ErrInvalid)
		}

		m.Params = append(m.Params, t)
	}

	return m, nil
}

// TypeName returns the Java source spelling of t ("[La/B;" -> "a.B[]").
func (t Type) TypeName() string {
	e := t.Elem()

	base, ok := nameByPrimitive[e]
	if !ok {
		base, _ = e.ClassName()
	}

	return base + strings.Repeat("[]", t.Dims())
}

// ReflectName returns the name reflection reports for t: the binary class
// name for objects, the primitive keyword for primitives, and the
// dotted descriptor for arrays ("[La.B;").
func (t Type) ReflectName() string {
	if t.Dims() == 0 {
		return t.TypeName()
	}

	return common.DotName(string(t))
}
