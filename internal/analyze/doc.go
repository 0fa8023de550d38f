// Package analyze provides package loading and type graph extraction.
//
// It uses golang.org/x/tools/go/packages with go/types to build an
// in-memory model of the named types of a package: structs with their
// fields, and the integer kind behind each field.
//
// Key types:
//   - TypeID: package import path + type name
//   - TypeInfo: describes kind (integer/struct/other) and struct fields
//   - FieldInfo: describes field name, integer kind and type expression
package analyze
