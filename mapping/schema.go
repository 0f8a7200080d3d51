package mapping

import (
	"fmt"
	"slices"

	"gopkg.in/yaml.v3"
)

// File represents the root of a YAML mapping file.
type File struct {
	// Version of the mapping schema.
	Version string `yaml:"version,omitempty"`

	// Namespaces lists the namespaces; the first one is the descriptor namespace.
	Namespaces []string `yaml:"namespaces"`

	// Classes lists the class mappings.
	Classes []ClassEntry `yaml:"classes,omitempty"`
}

// ClassEntry is one class mapping.
type ClassEntry struct {
	Names Names `yaml:"names"`

	// Superclass is the binary name of the direct superclass in the first
	// namespace. Empty for roots or when unknown.
	Superclass string `yaml:"superclass,omitempty"`

	Fields  []MemberEntry `yaml:"fields,omitempty"`
	Methods []MemberEntry `yaml:"methods,omitempty"`
}

// MemberEntry is one field or method mapping.
type MemberEntry struct {
	Names      Names  `yaml:"names"`
	Descriptor string `yaml:"descriptor,omitempty"`
}

// Names holds an entry's names in one of three YAML forms:
//   - map keyed by namespace: {src: a.B, dst: x}
//   - list in namespace order: [a.B, x]
//   - scalar shared by every namespace: a.B
type Names struct {
	ByNamespace map[string]string
	Positional  []string
	Shared      string
}

// UnmarshalYAML implements custom YAML unmarshaling for Names.
func (n *Names) UnmarshalYAML(node *yaml.Node) error {
	switch node.Kind {
	case yaml.ScalarNode:
		return node.Decode(&n.Shared)

	case yaml.SequenceNode:
		return node.Decode(&n.Positional)

	case yaml.MappingNode:
		return node.Decode(&n.ByNamespace)

	default:
		return fmt.Errorf("expected names as string, list or map, got %v", node.Kind)
	}
}

// MarshalYAML implements custom YAML marshaling for Names.
func (n Names) MarshalYAML() (any, error) {
	switch {
	case n.ByNamespace != nil:
		return n.ByNamespace, nil
	case n.Positional != nil:
		return n.Positional, nil
	default:
		return n.Shared, nil
	}
}

// Resolve returns the names in namespace order.
func (n Names) Resolve(namespaces []string) ([]string, error) {
	switch {
	case n.ByNamespace != nil:
		out := make([]string, len(namespaces))

		for ns, name := range n.ByNamespace {
			i := slices.Index(namespaces, ns)
			if i < 0 {
				return nil, fmt.Errorf("unknown namespace %q", ns)
			}

			out[i] = name
		}

		return out, nil

	case n.Positional != nil:
		if len(n.Positional) != len(namespaces) {
			return nil, fmt.Errorf("expected %d names, got %d", len(namespaces), len(n.Positional))
		}

		return slices.Clone(n.Positional), nil

	case n.Shared != "":
		out := make([]string, len(namespaces))
		for i := range out {
			out[i] = n.Shared
		}

		return out, nil

	default:
		return nil, fmt.Errorf("no names given")
	}
}

// First returns the name in the first namespace, or the best available
// name for diagnostics.
func (n Names) First(namespaces []string) string {
	if names, err := n.Resolve(namespaces); err == nil && len(names) > 0 {
		return names[0]
	}

	if n.Shared != "" {
		return n.Shared
	}

	if len(n.Positional) > 0 {
		return n.Positional[0]
	}

	return ""
}
