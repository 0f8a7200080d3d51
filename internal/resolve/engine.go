package resolve

import (
	"fmt"
	"slices"
	"strings"

	"reflection-remapper/descriptor"
	"reflection-remapper/internal/match"
	"reflection-remapper/mapping"
)

// Field is a resolved field: the target name of its declaring class and
// its own target name.
type Field struct {
	Owner string
	Name  string
}

// Method is a resolved method with its descriptor in the target namespace.
type Method struct {
	Owner      string
	Name       string
	Descriptor descriptor.Method
}

// Engine resolves identifiers from one namespace of a table to another.
// It is immutable and safe for concurrent use.
type Engine struct {
	table  mapping.Reader
	from   string
	to     string
	descNS string
}

// New returns an engine translating from -> to. Both namespaces must be
// known to the table.
func New(table mapping.Reader, from, to string) (*Engine, error) {
	if table == nil {
		return nil, fmt.Errorf("mapping table is nil")
	}

	known := table.Namespaces()
	for _, ns := range []string{from, to} {
		if !slices.Contains(known, ns) {
			return nil, fmt.Errorf("%w %q (known: %s)", ErrUnknownNamespace, ns, strings.Join(known, ", "))
		}
	}

	return &Engine{
		table:  table,
		from:   from,
		to:     to,
		descNS: table.DescriptorNamespace(),
	}, nil
}

// From returns the source namespace.
func (e *Engine) From() string { return e.from }

// To returns the target namespace.
func (e *Engine) To() string { return e.to }

// ClassName translates a source class name.
func (e *Engine) ClassName(name string) (string, error) {
	_, target, err := e.class(name)
	return target, err
}

// SourceClassName translates a target class name back to the source
// namespace.
func (e *Engine) SourceClassName(target string) (string, bool) {
	c, ok := e.table.ClassByName(e.to, target)
	if !ok {
		return "", false
	}

	name := c.Name(e.from)

	return name, name != ""
}

// Field resolves a field declared directly on className.
func (e *Engine) Field(className, fieldName string) (Field, error) {
	c, owner, err := e.class(className)
	if err != nil {
		return Field{}, err
	}

	f, ok := e.table.FieldInClass(c, e.from, fieldName)
	if !ok {
		return Field{}, fmt.Errorf("%w: field %s.%s%s", ErrMemberNotMapped, className, fieldName,
			didYouMean(fieldName, memberNames(c.Fields(), e.from)))
	}

	name := f.Name(e.to)
	if name == "" {
		return Field{}, fmt.Errorf("%w: field %s.%s has no name in %q", ErrMemberNotMapped, className, fieldName, e.to)
	}

	return Field{Owner: owner, Name: name}, nil
}

// Method resolves a method declared directly on className. desc is in the
// source namespace; its return type may be left empty.
func (e *Engine) Method(className, methodName string, desc descriptor.Method) (Method, error) {
	c, owner, err := e.class(className)
	if err != nil {
		return Method{}, err
	}

	m, ok := e.overload(c, methodName, desc)
	if !ok {
		if len(e.table.MethodsNamed(c, e.from, methodName)) > 0 {
			return Method{}, fmt.Errorf("%w: %s.%s%s", ErrDescriptorMismatch, className, methodName, desc)
		}

		return Method{}, fmt.Errorf("%w: method %s.%s%s%s", ErrMemberNotMapped, className, methodName, desc,
			didYouMean(methodName, memberNames(c.Methods(), e.from)))
	}

	name := m.Name(e.to)
	if name == "" {
		return Method{}, fmt.Errorf("%w: method %s.%s%s has no name in %q", ErrMemberNotMapped, className, methodName, desc, e.to)
	}

	return Method{
		Owner:      owner,
		Name:       name,
		Descriptor: e.Descriptor(m.Descriptor(), e.descNS, e.to),
	}, nil
}

// overload picks the overload of methodName whose parameters name the same
// source classes as desc. Candidate descriptors are translated into the
// source namespace, so a query type that only exists under its descriptor
// namespace name never selects another class's overload.
func (e *Engine) overload(c *mapping.ClassMapping, methodName string, desc descriptor.Method) (*mapping.MethodMapping, bool) {
	if e.from == e.descNS {
		return e.table.MethodInClass(c, e.from, methodName, desc)
	}

	for _, m := range e.table.MethodsNamed(c, e.from, methodName) {
		if e.Descriptor(m.Descriptor(), e.descNS, e.from).Matches(desc) {
			return m, true
		}
	}

	return nil, false
}

// Descriptor translates every class in desc from one namespace to another.
// Classes unknown to the table keep their names.
func (e *Engine) Descriptor(desc descriptor.Method, from, to string) descriptor.Method {
	if from == to {
		return desc
	}

	return desc.Remap(func(name string) string {
		return e.translate(name, from, to)
	})
}

// Type translates the class inside t from one namespace to another.
func (e *Engine) Type(t descriptor.Type, from, to string) descriptor.Type {
	if from == to {
		return t
	}

	return t.Remap(func(name string) string {
		return e.translate(name, from, to)
	})
}

func (e *Engine) translate(name, from, to string) string {
	c, ok := e.table.ClassByName(from, name)
	if !ok {
		return name
	}

	if n := c.Name(to); n != "" {
		return n
	}

	return name
}

// class looks className up and returns its mapping with its target name.
func (e *Engine) class(className string) (*mapping.ClassMapping, string, error) {
	c, ok := e.table.ClassByName(e.from, className)
	if !ok {
		return nil, "", fmt.Errorf("%w: %s", ErrClassNotMapped, className)
	}

	target, err := e.table.TranslateClassName(c, e.from, e.to)
	if err != nil {
		return nil, "", fmt.Errorf("%w: %w", ErrClassNotMapped, err)
	}

	return c, target, nil
}

// memberNames lists the names of members in namespace ns.
func memberNames[M interface{ Name(string) string }](members []M, ns string) []string {
	names := make([]string, 0, len(members))
	for _, m := range members {
		names = append(names, m.Name(ns))
	}

	return names
}

func didYouMean(name string, candidates []string) string {
	s := match.Suggest(name, candidates, 3)
	if len(s) == 0 {
		return ""
	}

	return " (did you mean " + strings.Join(s, ", ") + "?)"
}
