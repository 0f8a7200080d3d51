// Package match provides fuzzy name matching used to suggest close
// alternatives when a member lookup misses.
//
// Key functions:
//   - NormalizeIdent: folds an identifier for fuzzy comparison
//   - Levenshtein: computes edit distance between strings
//   - Suggest: ranks candidate names by similarity
package match
