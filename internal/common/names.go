package common

import "strings"

// DotName converts an internal class name ("a/b/C") to its binary form ("a.b.C").
func DotName(name string) string {
	return strings.ReplaceAll(name, "/", ".")
}

// SlashName converts a binary class name ("a.b.C") to its internal form ("a/b/C").
func SlashName(name string) string {
	return strings.ReplaceAll(name, ".", "/")
}

// PackageOf returns the package part of a binary class name, or empty string
// for a class in the default package.
func PackageOf(className string) string {
	if i := strings.LastIndexByte(className, '.'); i >= 0 {
		return className[:i]
	}

	return ""
}

// SimpleName returns the last segment of a binary class name.
// Nested classes keep their '$' separated outer names.
func SimpleName(className string) string {
	if i := strings.LastIndexByte(className, '.'); i >= 0 {
		return className[i+1:]
	}

	return className
}
