// Package descriptor models JVM field and method descriptors.
//
// Descriptors are the lookup key that tells overloaded methods apart. A
// mapping table stores them in a single namespace; resolution translates
// the object types inside them class-by-class into other namespaces.
//
// # Forms
//
//	I                      int
//	Ljava/lang/String;     java.lang.String
//	[[J                    long[][]
//	(ILa/B;)V              method taking (int, a.B) returning void
//
// A Method with an empty Return describes parameters only. Such partial
// descriptors are what callers have when they look up a method by name and
// parameter types, and they print as "(ILa/B;)".
//
// # Type names
//
// FromTypeName accepts Java source spellings ("int", "a.B", "a.B[]") as well
// as the descriptor-like names reflection reports for array classes
// ("[I", "[La.B;"), and TypeName converts back to the source spelling.
package descriptor
