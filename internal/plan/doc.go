// Package plan provides the resolution pipeline that produces a final
// ResolvedPlan consumed by code generation.
//
// Resolution pipeline:
//  1. Analyze the container package → type graph
//  2. Load the specification (YAML or directives) → validate, taking field
//     kinds from the type graph when the spec omits them
//  3. For each enumeration:
//     - Check the container is a struct holding an integer field
//     - Check the optional supertype carries the same field
//     - Drop interval bounds that every raw value satisfies
//     - Check generated names are free in the package
//  4. Emit diagnostics (errors stop generation, warnings are reported)
package plan
