// Package match provides identifier normalization and Levenshtein-based
// name suggestions for specification diagnostics.
//
// Key functions:
//   - NormalizeIdent: normalizes identifiers for fuzzy matching
//   - ExportedIdent: turns a variant name into an exported Go identifier
//   - Levenshtein: computes edit distance between strings
//   - Suggest: ranks known names close to a misspelled one
package match
