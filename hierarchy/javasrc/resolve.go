package javasrc

import (
	"strings"

	"reflection-remapper/internal/common"
)

// javaLang holds the implicitly imported java.lang classes that are
// commonly extended.
var javaLang = map[string]struct{}{
	"Object":           {},
	"Enum":             {},
	"Record":           {},
	"Number":           {},
	"Thread":           {},
	"ThreadLocal":      {},
	"ClassLoader":      {},
	"Throwable":        {},
	"Exception":        {},
	"Error":            {},
	"RuntimeException": {},
}

// superclassOf returns the binary name of the class named in d's extends
// clause.
func (f *sourceFile) superclassOf(d classDecl, declared map[string]struct{}) string {
	head, rest, scoped := strings.Cut(d.super, ".")

	base := f.resolveSimple(head, d.enclosing, declared, !scoped)
	if !scoped {
		return base
	}

	if base == "" {
		return lookupBinary(d.super, declared)
	}

	return base + "$" + strings.ReplaceAll(rest, ".", "$")
}

// resolveSimple follows Java's lookup order for a simple type name:
// member types of enclosing classes, types of this file, single-type
// imports, the same package and on-demand imports. With fallback set an
// unknown name is guessed to be in java.lang or the same package,
// otherwise "" is returned.
func (f *sourceFile) resolveSimple(simple string, enclosing []string, declared map[string]struct{}, fallback bool) string {
	for i := len(enclosing) - 1; i >= 0; i-- {
		if b, ok := f.members[enclosing[i]+"."+simple]; ok {
			return b
		}
	}

	if b, ok := f.topLevel[simple]; ok {
		return b
	}

	if imp, ok := f.imports[simple]; ok {
		return lookupBinary(imp, declared)
	}

	samePackage := qualify(f.pkg, simple)
	if _, ok := declared[samePackage]; ok {
		return samePackage
	}

	for _, w := range f.wildcards {
		candidate := lookupBinary(w+"."+simple, declared)
		if _, ok := declared[candidate]; ok {
			return candidate
		}
	}

	if !fallback {
		return ""
	}

	if _, ok := javaLang[simple]; ok {
		return "java.lang." + simple
	}

	return samePackage
}

// lookupBinary maps a canonical name to a declared binary name by turning
// trailing dots into '$' ("a.B.Inner" -> "a.B$Inner"). Undeclared names are
// returned unchanged.
func lookupBinary(name string, declared map[string]struct{}) string {
	candidate := name

	for {
		if _, ok := declared[candidate]; ok {
			return candidate
		}

		outer := common.PackageOf(candidate)
		if outer == "" {
			return name
		}

		candidate = outer + "$" + common.SimpleName(candidate)
	}
}
