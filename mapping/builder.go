package mapping

import (
	"errors"
	"fmt"
	"slices"
	"strings"

	"reflection-remapper/descriptor"
	"reflection-remapper/internal/diagnostic"
)

// ErrInvalidTable is returned by Build when the collected entries violate
// the table invariants.
var ErrInvalidTable = errors.New("invalid mapping table")

// Builder collects class mappings and freezes them into a Table.
// Names are given positionally, in namespace order; an empty name means the
// entry has no name in that namespace. The first namespace is the
// descriptor namespace and every entry must be named in it.
type Builder struct {
	namespaces []string
	classes    []*ClassBuilder
}

// ClassBuilder collects the members declared on one class.
type ClassBuilder struct {
	names   []string
	fields  []memberEntry
	methods []memberEntry
}

type memberEntry struct {
	desc  string
	names []string
}

// NewBuilder starts a table over the given namespaces.
func NewBuilder(namespaces ...string) *Builder {
	return &Builder{namespaces: namespaces}
}

// Class adds a class mapping and returns its member builder. The names are
// copied.
func (b *Builder) Class(names ...string) *ClassBuilder {
	c := &ClassBuilder{names: slices.Clone(names)}
	b.classes = append(b.classes, c)

	return c
}

// Field adds a field. desc may be empty.
func (c *ClassBuilder) Field(desc string, names ...string) *ClassBuilder {
	c.fields = append(c.fields, memberEntry{desc: desc, names: slices.Clone(names)})
	return c
}

// Method adds a method with its descriptor in the descriptor namespace.
func (c *ClassBuilder) Method(desc string, names ...string) *ClassBuilder {
	c.methods = append(c.methods, memberEntry{desc: desc, names: slices.Clone(names)})
	return c
}

// Build validates the collected entries and returns the frozen table.
func (b *Builder) Build() (*Table, error) {
	t, diags := b.build()
	if err := diags.Error(); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidTable, err)
	}

	return t, nil
}

// build returns the table together with every diagnostic found. The table
// is nil when there are errors.
func (b *Builder) build() (*Table, *diagnostic.Diagnostics) {
	diags := &diagnostic.Diagnostics{}

	ns := validateNamespaces(b.namespaces, diags)
	if diags.HasErrors() {
		return nil, diags
	}

	t := &Table{
		ns:     ns,
		byName: make([]map[string]*ClassMapping, len(ns.names)),
	}
	for i := range t.byName {
		t.byName[i] = make(map[string]*ClassMapping)
	}

	for _, cb := range b.classes {
		c := b.buildClass(ns, cb, diags)
		if c == nil {
			continue
		}

		for i, name := range c.names {
			if name == "" {
				continue
			}

			if _, dup := t.byName[i][name]; dup {
				diags.Add(diagnostic.Diagnostic{
					Severity:  diagnostic.DiagnosticError,
					Code:      "duplicate_class",
					Message:   fmt.Sprintf("class name %q is used twice", name),
					Class:     name,
					Namespace: ns.names[i],
				})

				continue
			}

			t.byName[i][name] = c
		}

		t.classes = append(t.classes, c)
	}

	if diags.HasErrors() {
		return nil, diags
	}

	return t, diags
}

func validateNamespaces(namespaces []string, diags *diagnostic.Diagnostics) *namespaceSet {
	if len(namespaces) < 2 {
		diags.AddError("too_few_namespaces",
			fmt.Sprintf("a mapping table needs at least two namespaces, got %d", len(namespaces)), "", "")
	}

	ns := &namespaceSet{
		names: append([]string(nil), namespaces...),
		index: make(map[string]int, len(namespaces)),
	}

	for i, name := range namespaces {
		if strings.TrimSpace(name) == "" {
			diags.AddError("empty_namespace", fmt.Sprintf("namespace %d has no name", i), "", "")
			continue
		}

		if _, dup := ns.index[name]; dup {
			diags.AddError("duplicate_namespace", fmt.Sprintf("namespace %q is declared twice", name), "", "")
			continue
		}

		ns.index[name] = i
	}

	return ns
}

func (b *Builder) buildClass(ns *namespaceSet, cb *ClassBuilder, diags *diagnostic.Diagnostics) *ClassMapping {
	label := strings.Join(cb.names, " -> ")
	if !checkNames(ns, cb.names, diags, label, "") {
		return nil
	}

	c := &ClassMapping{
		ns:          ns,
		names:       cb.names,
		fieldIndex:  make([]map[string]*FieldMapping, len(ns.names)),
		methodIndex: make([]map[string][]*MethodMapping, len(ns.names)),
	}
	for i := range ns.names {
		c.fieldIndex[i] = make(map[string]*FieldMapping)
		c.methodIndex[i] = make(map[string][]*MethodMapping)
	}

	class := cb.names[0]

	for _, fe := range cb.fields {
		f := buildField(ns, c, fe, diags)
		if f == nil {
			continue
		}

		for i, name := range f.names {
			if name == "" {
				continue
			}

			if _, dup := c.fieldIndex[i][name]; dup {
				diags.Add(diagnostic.Diagnostic{
					Severity:  diagnostic.DiagnosticError,
					Code:      "duplicate_field",
					Message:   fmt.Sprintf("field %q is declared twice", name),
					Class:     class,
					Member:    name,
					Namespace: ns.names[i],
				})

				continue
			}

			c.fieldIndex[i][name] = f
		}

		c.fields = append(c.fields, f)
	}

	for _, me := range cb.methods {
		m := buildMethod(ns, c, me, diags)
		if m == nil {
			continue
		}

		for i, name := range m.names {
			if name == "" {
				continue
			}

			overloads := c.methodIndex[i][name]
			if hasOverload(overloads, m.desc) {
				diags.Add(diagnostic.Diagnostic{
					Severity:  diagnostic.DiagnosticError,
					Code:      "duplicate_method",
					Message:   fmt.Sprintf("method %s%s is declared twice", name, m.desc),
					Class:     class,
					Member:    name,
					Namespace: ns.names[i],
				})

				continue
			}

			c.methodIndex[i][name] = append(overloads, m)
		}

		c.methods = append(c.methods, m)
	}

	return c
}

func buildField(ns *namespaceSet, owner *ClassMapping, fe memberEntry, diags *diagnostic.Diagnostics) *FieldMapping {
	class := owner.names[0]
	if !checkNames(ns, fe.names, diags, class, strings.Join(fe.names, " -> ")) {
		return nil
	}

	f := &FieldMapping{owner: owner, names: fe.names}

	if fe.desc != "" {
		t, err := descriptor.ParseType(fe.desc)
		if err != nil {
			diags.AddError("invalid_descriptor", err.Error(), class, fe.names[0])
			return nil
		}

		f.desc = t
	}

	return f
}

func buildMethod(ns *namespaceSet, owner *ClassMapping, me memberEntry, diags *diagnostic.Diagnostics) *MethodMapping {
	class := owner.names[0]
	if !checkNames(ns, me.names, diags, class, strings.Join(me.names, " -> ")) {
		return nil
	}

	desc, err := descriptor.ParseMethod(me.desc)
	if err != nil {
		diags.AddError("invalid_descriptor", err.Error(), class, me.names[0])
		return nil
	}

	if desc.Return == "" {
		diags.AddError("invalid_descriptor",
			fmt.Sprintf("method descriptor %q has no return type", me.desc), class, me.names[0])

		return nil
	}

	return &MethodMapping{owner: owner, names: me.names, desc: desc}
}

// checkNames verifies a positional name list against the namespaces.
func checkNames(ns *namespaceSet, names []string, diags *diagnostic.Diagnostics, class, member string) bool {
	if len(names) != len(ns.names) {
		diags.AddError("namespace_count_mismatch",
			fmt.Sprintf("expected %d names, got %d", len(ns.names), len(names)), class, member)

		return false
	}

	if names[0] == "" {
		diags.Add(diagnostic.Diagnostic{
			Severity:  diagnostic.DiagnosticError,
			Code:      "missing_name",
			Message:   "entry has no name in the descriptor namespace",
			Class:     class,
			Member:    member,
			Namespace: ns.names[0],
		})

		return false
	}

	return true
}

func hasOverload(overloads []*MethodMapping, desc descriptor.Method) bool {
	for _, o := range overloads {
		if o.desc.String() == desc.String() {
			return true
		}
	}

	return false
}
