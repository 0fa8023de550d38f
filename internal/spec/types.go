package spec

import "fmt"

// CurrentVersion is the only schema version understood.
const CurrentVersion = "1"

// File is the root of a specification file.
type File struct {
	// Version of the schema.
	Version string `yaml:"version"`
	// Package optionally names the Go package the enums are generated into.
	Package string `yaml:"package,omitempty"`
	// Enums lists the enumerations to generate.
	Enums []EnumDef `yaml:"enums"`
}

// EnumDef declares one enumeration over one container field.
type EnumDef struct {
	// Name of the generated enumeration type.
	Name string `yaml:"name"`
	// Container is the struct type holding the classified field.
	Container string `yaml:"container"`
	// Field is the classified field of Container.
	Field string `yaml:"field"`
	// Type is the field's integer type (e.g. "uint8"). Optional when the
	// container package can be analyzed.
	Type string `yaml:"type,omitempty"`
	// Range is the optional inclusive validation interval.
	Range *Range `yaml:"range,omitempty"`
	// Super is an optional struct type carrying the same field.
	Super string `yaml:"super,omitempty"`
	// Doc is copied to the generated type's doc comment.
	Doc string `yaml:"doc,omitempty"`
	// Variants in declaration order.
	Variants Variants `yaml:"variants"`
}

// Label returns a name for diagnostics, falling back to the position.
func (d *EnumDef) Label(i int) string {
	if d.Name != "" {
		return d.Name
	}

	return fmt.Sprintf("enums[%d]", i)
}

// VariantDef binds a name to an integer literal.
type VariantDef struct {
	Name  string  `yaml:"name"`
	Value Literal `yaml:"value"`
	Doc   string  `yaml:"doc,omitempty"`
}

// Variants is an ordered variant list. It reads from a YAML mapping
// (name: value) or a sequence.
type Variants []VariantDef

// Literal is the source text of an integer literal. It is only given a type
// once the field kind is known.
type Literal string

// Range is an inclusive interval of literals.
type Range struct {
	Low  Literal
	High Literal
}

func (r Range) String() string {
	return fmt.Sprintf("[%s, %s]", r.Low, r.High)
}
