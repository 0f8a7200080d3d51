package javasrc

import (
	"fmt"
	"slices"
	"strings"

	sitter "github.com/tree-sitter/go-tree-sitter"
	tree_sitter_java "github.com/tree-sitter/tree-sitter-java/bindings/go"

	"reflection-remapper/internal/common"
)

var javaLanguage = sitter.NewLanguage(tree_sitter_java.Language())

// sourceFile is what one compilation unit contributes to the hierarchy.
type sourceFile struct {
	path      string
	pkg       string
	imports   map[string]string // simple name -> qualified name
	wildcards []string
	topLevel  map[string]string // simple name -> binary name
	members   map[string]string // outer binary name + "." + simple name -> binary name
	declared  []string
	classes   []classDecl
}

// classDecl is a class with an extends clause.
type classDecl struct {
	binary    string
	super     string   // as written, type arguments stripped
	enclosing []string // binary names, innermost last
}

func parseFile(path string, src []byte) (*sourceFile, error) {
	parser := sitter.NewParser()
	defer parser.Close()

	if err := parser.SetLanguage(javaLanguage); err != nil {
		return nil, fmt.Errorf("failed to load java grammar: %w", err)
	}

	tree := parser.Parse(src, nil)
	if tree == nil {
		return nil, fmt.Errorf("tree-sitter failed to parse %s", path)
	}
	defer tree.Close()

	f := &sourceFile{
		path:     path,
		imports:  make(map[string]string),
		topLevel: make(map[string]string),
		members:  make(map[string]string),
	}

	root := tree.RootNode()

	for i := uint(0); i < root.NamedChildCount(); i++ {
		child := root.NamedChild(i)

		switch child.Kind() {
		case "package_declaration":
			f.pkg = packageName(child, src)
		case "import_declaration":
			f.addImport(child, src)
		}
	}

	for i := uint(0); i < root.NamedChildCount(); i++ {
		if child := root.NamedChild(i); isTypeDeclaration(child.Kind()) {
			f.collect(child, src, nil)
		}
	}

	return f, nil
}

func isTypeDeclaration(kind string) bool {
	switch kind {
	case "class_declaration", "interface_declaration", "enum_declaration",
		"record_declaration", "annotation_type_declaration":
		return true
	}

	return false
}

func packageName(node *sitter.Node, src []byte) string {
	for i := uint(0); i < node.NamedChildCount(); i++ {
		child := node.NamedChild(i)
		if child.Kind() == "scoped_identifier" || child.Kind() == "identifier" {
			return child.Utf8Text(src)
		}
	}

	return ""
}

// addImport records single-type and on-demand imports. Static imports
// never name a superclass and are skipped.
func (f *sourceFile) addImport(node *sitter.Node, src []byte) {
	var (
		path     string
		wildcard bool
	)

	for i := uint(0); i < node.ChildCount(); i++ {
		child := node.Child(i)

		switch child.Kind() {
		case "static":
			return
		case "scoped_identifier", "identifier":
			path = child.Utf8Text(src)
		case "asterisk":
			wildcard = true
		}
	}

	switch {
	case path == "":
	case wildcard:
		f.wildcards = append(f.wildcards, path)
	default:
		f.imports[common.SimpleName(path)] = path
	}
}

// collect registers a type declaration and the member types in its body.
// Local and anonymous classes are not reachable by name and are skipped.
func (f *sourceFile) collect(node *sitter.Node, src []byte, enclosing []string) {
	nameNode := node.ChildByFieldName("name")
	if nameNode == nil {
		return
	}

	simple := nameNode.Utf8Text(src)

	var binary string
	if len(enclosing) == 0 {
		binary = qualify(f.pkg, simple)
		f.topLevel[simple] = binary
	} else {
		outer := enclosing[len(enclosing)-1]
		binary = outer + "$" + simple
		f.members[outer+"."+simple] = binary
	}

	f.declared = append(f.declared, binary)

	if node.Kind() == "class_declaration" {
		if sc := node.ChildByFieldName("superclass"); sc != nil {
			if super := superTypeName(sc, src); super != "" {
				f.classes = append(f.classes, classDecl{
					binary:    binary,
					super:     super,
					enclosing: slices.Clone(enclosing),
				})
			}
		}
	}

	body := node.ChildByFieldName("body")
	if body == nil {
		return
	}

	inner := append(slices.Clone(enclosing), binary)

	for _, member := range bodyMembers(body) {
		if isTypeDeclaration(member.Kind()) {
			f.collect(member, src, inner)
		}
	}
}

// bodyMembers lists the declarations of a type body. Enum bodies keep
// theirs after the constants.
func bodyMembers(body *sitter.Node) []*sitter.Node {
	var out []*sitter.Node

	for i := uint(0); i < body.NamedChildCount(); i++ {
		child := body.NamedChild(i)
		if child.Kind() != "enum_body_declarations" {
			out = append(out, child)
			continue
		}

		for j := uint(0); j < child.NamedChildCount(); j++ {
			out = append(out, child.NamedChild(j))
		}
	}

	return out
}

func superTypeName(node *sitter.Node, src []byte) string {
	for i := uint(0); i < node.NamedChildCount(); i++ {
		child := node.NamedChild(i)
		if strings.HasSuffix(child.Kind(), "annotation") {
			continue
		}

		if child.Kind() == "annotated_type" && child.NamedChildCount() > 0 {
			child = child.NamedChild(child.NamedChildCount() - 1)
		}

		return stripTypeArguments(child.Utf8Text(src))
	}

	return ""
}

// stripTypeArguments turns "a.Outer<T>.Inner<List<U>>" into "a.Outer.Inner".
func stripTypeArguments(s string) string {
	var (
		b     strings.Builder
		depth int
	)

	for _, r := range s {
		switch {
		case r == '<':
			depth++
		case r == '>':
			depth--
		case depth > 0, r == ' ', r == '\t', r == '\n', r == '\r':
		default:
			b.WriteRune(r)
		}
	}

	return b.String()
}

func qualify(pkg, simple string) string {
	if pkg == "" {
		return simple
	}

	return pkg + "." + simple
}
