// Package gen provides deterministic Go code generation for constant
// enumerations.
//
// Generation approach uses text/template + go/format for readable,
// allocation-free Go code.
//
// Per enumeration one file is generated holding:
//   - The enumeration type over the field's primitive, with its constants
//   - String, IsValid and the Values list
//   - The container's Classify method (interval guard, then variant match)
//   - Reconstruction into the container and the optional supertype
//   - Named constant accessors
package gen
