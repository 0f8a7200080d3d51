// Package resolve implements the member resolution engine: direct lookups
// of classes, fields and methods in a mapping table, translated from a
// source namespace to a target namespace.
//
// The engine never walks the class hierarchy. It answers for exactly the
// class it is given and reports ErrClassNotMapped or ErrMemberNotMapped on
// a miss, so that a caller holding live hierarchy information can retry on
// the superclass.
//
// # Overload matching
//
// Method queries carry a descriptor in the source namespace. It is
// translated class-by-class into the table's descriptor namespace before
// matching, so overloads are told apart by parameter count and by the
// identity of each parameter type, whatever namespace the table was
// written in. Types unknown to the table keep their names.
package resolve
