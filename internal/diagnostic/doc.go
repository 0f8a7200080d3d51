// Package diagnostic provides structured errors, warnings and notes
// produced while validating mapping tables.
//
// Key capabilities:
//   - Coded diagnostics ("duplicate_field", "invalid_descriptor", ...)
//   - Class and member context on every entry
//   - Collapsing all errors into a single error value
package diagnostic
