// Package main provides the CLI entrypoint for reflection-remapper.
//
// reflection-remapper translates class, field and method names between the
// namespaces of a mapping table, the same way a plugin would before a
// reflective lookup against an obfuscated runtime.
package main

import "reflection-remapper/cmd/reflection-remapper/cmd"

func main() {
	cmd.Execute()
}
