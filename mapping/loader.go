package mapping

import (
	"fmt"
	"os"

	"github.com/hashicorp/go-version"
	"gopkg.in/yaml.v3"

	"reflection-remapper/hierarchy"
	"reflection-remapper/internal/diagnostic"
)

// supportedVersions lists the schema versions Parse accepts.
var supportedVersions = version.MustConstraints(version.NewConstraint(">= 1, < 2"))

// LoadFile loads and parses a YAML mapping file from the given path.
func LoadFile(path string) (*File, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read mapping file %s: %w", path, err)
	}

	return Parse(data)
}

// Parse parses YAML data into a File.
func Parse(data []byte) (*File, error) {
	var f File

	err := yaml.Unmarshal(data, &f)
	if err != nil {
		return nil, fmt.Errorf("failed to parse mapping YAML: %w", err)
	}

	applyDefaults(&f)

	v, err := version.NewVersion(f.Version)
	if err != nil {
		return nil, fmt.Errorf("invalid mapping schema version %q: %w", f.Version, err)
	}

	if !supportedVersions.Check(v) {
		return nil, fmt.Errorf("unsupported mapping schema version %s (want %s)", v, supportedVersions)
	}

	return &f, nil
}

// applyDefaults fills in default values for optional fields.
func applyDefaults(f *File) {
	if f.Version == "" {
		f.Version = "1"
	}
}

// Marshal serializes a File to YAML.
func Marshal(f *File) ([]byte, error) {
	return yaml.Marshal(f)
}

// WriteFile writes a File to the given path.
func WriteFile(f *File, path string) error {
	data, err := Marshal(f)
	if err != nil {
		return fmt.Errorf("failed to marshal mapping: %w", err)
	}

	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("failed to write mapping file %s: %w", path, err)
	}

	return nil
}

// LoadTable loads a YAML mapping file and builds its table.
func LoadTable(path string) (*Table, error) {
	f, err := LoadFile(path)
	if err != nil {
		return nil, err
	}

	return f.Table()
}

// Table builds the mapping table described by the file.
func (f *File) Table() (*Table, error) {
	diags := &diagnostic.Diagnostics{}

	t, built := f.builder(diags).build()
	diags.Merge(*built)

	if err := diags.Error(); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidTable, err)
	}

	return t, nil
}

// builder converts the file entries into a Builder, reporting entries whose
// names cannot be resolved.
func (f *File) builder(diags *diagnostic.Diagnostics) *Builder {
	b := NewBuilder(f.Namespaces...)

	for _, ce := range f.Classes {
		class := ce.Names.First(f.Namespaces)

		names, err := ce.Names.Resolve(f.Namespaces)
		if err != nil {
			diags.AddError("invalid_names", err.Error(), class, "")
			continue
		}

		cb := b.Class(names...)

		for _, me := range ce.Fields {
			names, err := me.Names.Resolve(f.Namespaces)
			if err != nil {
				diags.AddError("invalid_names", err.Error(), class, me.Names.First(f.Namespaces))
				continue
			}

			cb.Field(me.Descriptor, names...)
		}

		for _, me := range ce.Methods {
			names, err := me.Names.Resolve(f.Namespaces)
			if err != nil {
				diags.AddError("invalid_names", err.Error(), class, me.Names.First(f.Namespaces))
				continue
			}

			cb.Method(me.Descriptor, names...)
		}
	}

	return b
}

// Hierarchy returns the superclass edges recorded in the file with every
// class name expressed in namespace. Names absent from the table are kept
// as written.
func (f *File) Hierarchy(t *Table, namespace string) (*hierarchy.Static, error) {
	if !t.HasNamespace(namespace) {
		return nil, fmt.Errorf("unknown namespace %q", namespace)
	}

	descNS := t.DescriptorNamespace()
	translate := func(name string) string {
		if c, ok := t.ClassByName(descNS, name); ok {
			if n := c.Name(namespace); n != "" {
				return n
			}
		}

		return name
	}

	parents := make(map[string]string)

	for _, ce := range f.Classes {
		if ce.Superclass == "" {
			continue
		}

		parents[translate(ce.Names.First(f.Namespaces))] = translate(ce.Superclass)
	}

	return hierarchy.NewStatic(parents)
}

// Validate checks a mapping file without building a usable table: names,
// table invariants, descriptors and superclass edges.
func Validate(f *File) *diagnostic.Diagnostics {
	diags := &diagnostic.Diagnostics{}
	if f == nil {
		diags.AddError("mapping_is_nil", "mapping file is nil", "", "")
		return diags
	}

	t, built := f.builder(diags).build()
	diags.Merge(*built)

	if t == nil {
		return diags
	}

	descNS := t.DescriptorNamespace()

	for _, ce := range f.Classes {
		if ce.Superclass == "" {
			continue
		}

		if _, ok := t.ClassByName(descNS, ce.Superclass); !ok {
			diags.AddInfo("unmapped_superclass",
				fmt.Sprintf("superclass %q is not in the table and resolves to itself", ce.Superclass),
				ce.Names.First(f.Namespaces), "")
		}
	}

	if _, err := f.Hierarchy(t, descNS); err != nil {
		diags.AddError("invalid_hierarchy", err.Error(), "", "")
	}

	for _, c := range t.classes {
		if len(c.fields) == 0 && len(c.methods) == 0 {
			continue
		}

		for _, ns := range t.ns.names {
			if c.Name(ns) == "" {
				diags.Add(diagnostic.Diagnostic{
					Severity:  diagnostic.DiagnosticWarning,
					Code:      "unnamed_class",
					Message:   "class declares members but has no name",
					Class:     c.names[0],
					Namespace: ns,
				})
			}
		}
	}

	return diags
}
