package plan

import (
	"constenum/internal/diagnostic"
	"constenum/primitive"
)

// ResolvedPlan is the final output of the resolution pipeline.
// It contains everything needed for code generation.
type ResolvedPlan struct {
	// Package is the name of the package the code is generated into.
	Package string
	// PkgPath is its import path.
	PkgPath string
	// Dir is the directory of its sources.
	Dir string
	// Enums in specification order.
	Enums []ResolvedEnum
	// Diagnostics contains all warnings and errors from validation and
	// resolution.
	Diagnostics diagnostic.Diagnostics
}

// ResolvedEnum is an enumeration checked against the container package.
type ResolvedEnum struct {
	// Name of the generated type.
	Name string
	// Doc of the generated type, possibly empty.
	Doc string
	// Container is the classified struct type.
	Container string
	// Field is the classified field.
	Field string
	// FieldType spells the field's type in the container package.
	FieldType string
	// Kind is the integer kind behind FieldType.
	Kind primitive.KindEnum
	// Imports lists packages FieldType or SuperFieldType need.
	Imports []string
	// Super optionally names a second struct carrying the same field.
	Super string
	// SuperFieldType spells the field's type in Super.
	SuperFieldType string
	// Interval is the declared validation interval, nil when absent.
	Interval *Interval
	// Variants in declaration order.
	Variants []ResolvedVariant
}

// Interval is the inclusive validation interval of an enumeration. A bound
// equal to the kind's own limit is always satisfied and needs no check.
type Interval struct {
	Low  primitive.Value
	High primitive.Value
	// CheckLow and CheckHigh are false for bounds every raw value meets.
	CheckLow  bool
	CheckHigh bool
}

// NeedsCheck reports whether any bound must be compared at runtime.
func (i *Interval) NeedsCheck() bool {
	return i != nil && (i.CheckLow || i.CheckHigh)
}

// ResolvedVariant is one named constant of an enumeration.
type ResolvedVariant struct {
	// Name as written in the specification.
	Name string
	// Ident is Name as an exported Go identifier.
	Ident string
	// Doc of the variant, possibly empty.
	Doc string
	// Value typed by the enumeration's kind.
	Value primitive.Value
}

// RawType is the Go name of the primitive behind the enumeration.
func (e *ResolvedEnum) RawType() string {
	return e.Kind.GoName()
}

// ConstName is the name of the generated constant for v: "HellosV0".
func (e *ResolvedEnum) ConstName(v ResolvedVariant) string {
	return e.Name + v.Ident
}

// AccessorName is the name of the named constant accessor for v: "HelloV0".
func (e *ResolvedEnum) AccessorName(v ResolvedVariant) string {
	return e.Container + v.Ident
}

// ValuesFunc is the name of the function listing every variant.
func (e *ResolvedEnum) ValuesFunc() string {
	return e.Name + "Values"
}

// Identifiers lists every package-level name the enumeration generates.
func (e *ResolvedEnum) Identifiers() []string {
	ids := []string{e.Name, e.ValuesFunc()}
	for _, v := range e.Variants {
		ids = append(ids, e.ConstName(v), e.AccessorName(v))
	}

	return ids
}

// HasErrors reports whether the plan must not be generated.
func (p *ResolvedPlan) HasErrors() bool {
	return p.Diagnostics.HasErrors()
}
