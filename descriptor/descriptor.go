package descriptor

import (
	"errors"
	"fmt"
	"strings"

	"reflection-remapper/internal/common"
)

// ErrInvalid is returned for malformed descriptors and type names.
var ErrInvalid = errors.New("invalid descriptor")

// Type is a single JVM field descriptor.
type Type string

// Void is the return type of methods that return nothing.
const Void Type = "V"

// ParseType parses a field descriptor. Void is rejected.
func ParseType(s string) (Type, error) {
	end, err := scanType(s, 0, false)
	if err != nil {
		return "", err
	}

	if end != len(s) {
		return "", fmt.Errorf("%w: trailing data in %q", ErrInvalid, s)
	}

	return Type(s), nil
}

// scanType returns the index just past the type starting at s[i].
func scanType(s string, i int, allowVoid bool) (int, error) {
	start := i
	for i < len(s) && s[i] == '[' {
		i++
	}

	if i >= len(s) {
		return 0, fmt.Errorf("%w: truncated type in %q", ErrInvalid, s)
	}

	switch s[i] {
	case 'B', 'C', 'D', 'F', 'I', 'J', 'S', 'Z':
		return i + 1, nil
	case 'V':
		if allowVoid && i == start {
			return i + 1, nil
		}
	case 'L':
		j := strings.IndexByte(s[i:], ';')
		if j <= 1 {
			return 0, fmt.Errorf("%w: unterminated class type in %q", ErrInvalid, s)
		}

		if strings.ContainsAny(s[i+1:i+j], ".[") {
			return 0, fmt.Errorf("%w: bad class name in %q", ErrInvalid, s)
		}

		return i + j + 1, nil
	}

	return 0, fmt.Errorf("%w: unexpected %q at %d in %q", ErrInvalid, s[i], i, s)
}

// Object returns the descriptor of the named class ("a.B" -> "La/B;").
func Object(className string) Type {
	return Type("L" + common.SlashName(className) + ";")
}

// ArrayOf returns t wrapped in dims array dimensions.
func ArrayOf(t Type, dims int) Type {
	return Type(strings.Repeat("[", dims) + string(t))
}

// Dims returns the number of array dimensions.
func (t Type) Dims() int {
	return len(t) - len(strings.TrimLeft(string(t), "["))
}

// Elem strips every array dimension.
func (t Type) Elem() Type {
	return Type(strings.TrimLeft(string(t), "["))
}

// IsPrimitive reports whether the element type is a primitive (or void).
func (t Type) IsPrimitive() bool {
	e := t.Elem()
	return len(e) == 1
}

// ClassName returns the binary name of the element class for object and
// object array types.
func (t Type) ClassName() (string, bool) {
	e := t.Elem()
	if len(e) < 3 || e[0] != 'L' {
		return "", false
	}

	return common.DotName(string(e[1 : len(e)-1])), true
}

// Remap replaces the element class name using fn. Primitive types are
// returned unchanged.
func (t Type) Remap(fn func(className string) string) Type {
	name, ok := t.ClassName()
	if !ok {
		return t
	}

	return ArrayOf(Object(fn(name)), t.Dims())
}

// Method is a method descriptor. An empty Return means the return type is
// unknown and only parameters take part in matching.
type Method struct {
	Params []Type
	Return Type
}

// ParseMethod parses a full method descriptor such as "(ILa/B;)V".
// The partial form "(ILa/B;)" is accepted and yields an empty Return.
func ParseMethod(s string) (Method, error) {
	if len(s) < 2 || s[0] != '(' {
		return Method{}, fmt.Errorf("%w: method descriptor %q must start with '('", ErrInvalid, s)
	}

	var m Method

	i := 1
	for i < len(s) && s[i] != ')' {
		end, err := scanType(s, i, false)
		if err != nil {
			return Method{}, err
		}

		m.Params = append(m.Params, Type(s[i:end]))
		i = end
	}

	if i >= len(s) {
		return Method{}, fmt.Errorf("%w: missing ')' in %q", ErrInvalid, s)
	}

	i++
	if i == len(s) {
		return m, nil
	}

	end, err := scanType(s, i, true)
	if err != nil {
		return Method{}, err
	}

	if end != len(s) {
		return Method{}, fmt.Errorf("%w: trailing data in %q", ErrInvalid, s)
	}

	m.Return = Type(s[i:end])

	return m, nil
}

// MustParseMethod is like ParseMethod but panics on error.
func MustParseMethod(s string) Method {
	m, err := ParseMethod(s)
	if err != nil {
		panic(err)
	}

	return m
}

// String formats the descriptor, omitting the return type when unknown.
func (m Method) String() string {
	var b strings.Builder

	b.WriteByte('(')

	for _, p := range m.Params {
		b.WriteString(string(p))
	}

	b.WriteByte(')')
	b.WriteString(string(m.Return))

	return b.String()
}

// Remap replaces every class name in the descriptor using fn.
func (m Method) Remap(fn func(className string) string) Method {
	out := Method{Return: m.Return.Remap(fn)}
	if len(m.Params) > 0 {
		out.Params = make([]Type, len(m.Params))
		for i, p := range m.Params {
			out.Params[i] = p.Remap(fn)
		}
	}

	return out
}

// SameParams reports whether both descriptors take identical parameters.
func (m Method) SameParams(o Method) bool {
	if len(m.Params) != len(o.Params) {
		return false
	}

	for i := range m.Params {
		if m.Params[i] != o.Params[i] {
			return false
		}
	}

	return true
}

// Matches reports whether o selects the same overload as m: parameters must
// be identical, return types only when both are known.
func (m Method) Matches(o Method) bool {
	if !m.SameParams(o) {
		return false
	}

	return m.Return == "" || o.Return == "" || m.Return == o.Return
}
