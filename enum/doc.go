// Package enum classifies untrusted integer fields into closed sets of named
// variants.
//
// A container struct holds one integer field read from the outside world (a
// register, a wire header, a file record). Code consuming the container wants
// to branch over named cases, but nothing guarantees the field holds one of
// them. The package splits the two concerns:
//
//   - A Spec declares the variants. Define validates it once, up front, and
//     every problem with the declaration (duplicate names or values, values
//     the field cannot represent, values outside the validation interval) is
//     returned as a *SpecError. No Enum exists for a broken Spec.
//   - Enum.Classify turns a container into a Classification: Known(variant)
//     or Unknown(raw). It never fails; unexpected data is the Unknown case,
//     and the raw value is kept.
//
// # Defining
//
//	type Hello struct{ Data uint8 }
//
//	type Hellos uint8
//
//	const (
//		HellosV0 Hellos = 0
//		HellosV1 Hellos = 1
//		HellosV2 Hellos = 12
//	)
//
//	var hellos = enum.MustDefine(enum.Spec[Hello, Hellos, uint8]{
//		Name:     "Hellos",
//		Field:    "Data",
//		Interval: enum.Closed[uint8](0, 22),
//		Variants: []enum.Variant[Hellos]{
//			{Name: "V0", Value: HellosV0},
//			{Name: "V1", Value: HellosV1},
//			{Name: "V2", Value: HellosV2},
//		},
//	})
//
// # Classifying
//
//	enum.Match(hellos.Classify(h),
//		func(v Hellos) string { return "known" },
//		func(raw uint8) string { return "unknown" },
//	)
//
// Unwrap converts Known to the bare variant and panics on Unknown. It is
// opt-in and never used by the package itself.
//
// # Reconstructing
//
// Enum.Container builds a container from a variant, and DeriveSuper builds a
// reconstructor into a larger struct carrying the same field.
//
// The cmd/constenum generator emits the same classifier as plain Go code for
// a container, with no reflection involved.
package enum
