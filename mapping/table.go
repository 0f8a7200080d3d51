package mapping

import (
	"errors"
	"fmt"
	"slices"

	"reflection-remapper/descriptor"
)

// Well-known namespaces of Paper reobfuscation mappings.
const (
	NamespaceMojangPlusYarn = "mojang+yarn"
	NamespaceMojang         = "mojang"
	NamespaceSpigot         = "spigot"
)

// ErrUnmappedClass is returned when a class has no name in a requested namespace.
var ErrUnmappedClass = errors.New("class has no name in namespace")

// Reader is the read contract a resolver needs from a mapping table.
// All lookups are exact and case-sensitive, and member lookups only see
// members declared directly on the given class.
type Reader interface {
	// Namespaces lists the namespaces known to the table.
	Namespaces() []string
	// DescriptorNamespace is the namespace member descriptors are written in.
	DescriptorNamespace() string
	ClassByName(namespace, name string) (*ClassMapping, bool)
	TranslateClassName(c *ClassMapping, from, to string) (string, error)
	FieldInClass(c *ClassMapping, from, name string) (*FieldMapping, bool)
	// MethodInClass matches desc (in the descriptor namespace) against the
	// overloads named name. A desc without return type matches on parameters.
	MethodInClass(c *ClassMapping, from, name string, desc descriptor.Method) (*MethodMapping, bool)
	// MethodsNamed returns every overload named name.
	MethodsNamed(c *ClassMapping, from, name string) []*MethodMapping
}

var _ Reader = (*Table)(nil)

type namespaceSet struct {
	names []string
	index map[string]int
}

func (n *namespaceSet) lookup(ns string) (int, bool) {
	i, ok := n.index[ns]
	return i, ok
}

// name returns names[i] for namespace ns, or "" when ns is unknown.
func (n *namespaceSet) name(names []string, ns string) string {
	i, ok := n.index[ns]
	if !ok || i >= len(names) {
		return ""
	}

	return names[i]
}

// Table is an immutable multi-namespace mapping table. It is safe for
// concurrent use once built.
type Table struct {
	ns      *namespaceSet
	classes []*ClassMapping
	byName  []map[string]*ClassMapping
}

// ClassMapping holds a class's name in every namespace and the members it
// declares directly.
type ClassMapping struct {
	ns          *namespaceSet
	names       []string
	fields      []*FieldMapping
	methods     []*MethodMapping
	fieldIndex  []map[string]*FieldMapping
	methodIndex []map[string][]*MethodMapping
}

// FieldMapping is a field's name in every namespace.
type FieldMapping struct {
	owner *ClassMapping
	names []string
	desc  descriptor.Type
}

// MethodMapping is a method's name in every namespace together with its
// descriptor in the table's descriptor namespace.
type MethodMapping struct {
	owner *ClassMapping
	names []string
	desc  descriptor.Method
}

// Namespaces returns a copy of the namespace list.
func (t *Table) Namespaces() []string {
	return slices.Clone(t.ns.names)
}

// DescriptorNamespace returns the first namespace.
func (t *Table) DescriptorNamespace() string {
	return t.ns.names[0]
}

// HasNamespace reports whether ns is known to the table.
func (t *Table) HasNamespace(ns string) bool {
	_, ok := t.ns.lookup(ns)
	return ok
}

// Classes returns every class mapping in declaration order.
func (t *Table) Classes() []*ClassMapping {
	return slices.Clone(t.classes)
}

// Len returns the number of class mappings.
func (t *Table) Len() int {
	return len(t.classes)
}

// ClassByName looks a class up by its binary name in namespace.
func (t *Table) ClassByName(namespace, name string) (*ClassMapping, bool) {
	i, ok := t.ns.lookup(namespace)
	if !ok {
		return nil, false
	}

	c, ok := t.byName[i][name]

	return c, ok
}

// TranslateClassName returns c's name in to. The from namespace must also
// carry a name for c.
func (t *Table) TranslateClassName(c *ClassMapping, from, to string) (string, error) {
	if c.Name(from) == "" {
		return "", fmt.Errorf("%w %q: %s", ErrUnmappedClass, from, c.Name(t.DescriptorNamespace()))
	}

	name := c.Name(to)
	if name == "" {
		return "", fmt.Errorf("%w %q: %s", ErrUnmappedClass, to, c.Name(from))
	}

	return name, nil
}

// FieldInClass finds a field declared on c by its name in from.
func (t *Table) FieldInClass(c *ClassMapping, from, name string) (*FieldMapping, bool) {
	i, ok := t.ns.lookup(from)
	if !ok {
		return nil, false
	}

	f, ok := c.fieldIndex[i][name]

	return f, ok
}

// MethodInClass finds the overload of name declared on c whose descriptor
// matches desc. The first match in declaration order wins.
func (t *Table) MethodInClass(c *ClassMapping, from, name string, desc descriptor.Method) (*MethodMapping, bool) {
	for _, m := range t.MethodsNamed(c, from, name) {
		if m.desc.Matches(desc) {
			return m, true
		}
	}

	return nil, false
}

// MethodsNamed returns the overloads of name declared on c.
func (t *Table) MethodsNamed(c *ClassMapping, from, name string) []*MethodMapping {
	i, ok := t.ns.lookup(from)
	if !ok {
		return nil
	}

	return c.methodIndex[i][name]
}

// Name returns the class name in ns, or "" if it has none.
func (c *ClassMapping) Name(ns string) string {
	return c.ns.name(c.names, ns)
}

// Fields returns the fields declared on c.
func (c *ClassMapping) Fields() []*FieldMapping {
	return slices.Clone(c.fields)
}

// Methods returns the methods declared on c.
func (c *ClassMapping) Methods() []*MethodMapping {
	return slices.Clone(c.methods)
}

// Name returns the field name in ns, or "" if it has none.
func (f *FieldMapping) Name(ns string) string {
	return f.owner.ns.name(f.names, ns)
}

// Owner returns the declaring class.
func (f *FieldMapping) Owner() *ClassMapping {
	return f.owner
}

// Descriptor returns the field descriptor, which may be empty.
func (f *FieldMapping) Descriptor() descriptor.Type {
	return f.desc
}

// Name returns the method name in ns, or "" if it has none.
func (m *MethodMapping) Name(ns string) string {
	return m.owner.ns.name(m.names, ns)
}

// Owner returns the declaring class.
func (m *MethodMapping) Owner() *ClassMapping {
	return m.owner
}

// Descriptor returns the descriptor in the table's descriptor namespace.
func (m *MethodMapping) Descriptor() descriptor.Method {
	return m.desc
}
