package spec

import (
	"errors"
	"fmt"
	"slices"

	"constenum/internal/common"
	"constenum/internal/diagnostic"
	"constenum/internal/match"
	"constenum/primitive"
)

// Diagnostic codes reported by Validate.
const (
	CodeUnsupportedVersion  = "unsupported_version"
	CodeNoEnums             = "no_enums"
	CodeMissingName         = "missing_name"
	CodeInvalidIdentifier   = "invalid_identifier"
	CodeDuplicateEnum       = "duplicate_enum"
	CodeMissingContainer    = "missing_container"
	CodeMissingField        = "missing_field"
	CodeNameCollision       = "name_collision"
	CodeAlreadyClassified   = "container_already_classified"
	CodeUnknownType         = "unknown_type"
	CodeTypeUnresolved      = "type_unresolved"
	CodeNoVariants          = "no_variants"
	CodeMissingVariantName  = "missing_variant_name"
	CodeDuplicateName       = "duplicate_name"
	CodeDuplicateIdentifier = "duplicate_identifier"
	CodeInvalidValue        = "invalid_value"
	CodeOutOfDomain         = "out_of_domain"
	CodeDuplicateValue      = "duplicate_value"
	CodeInvalidRange        = "invalid_range"
	CodeRangeOutOfDomain    = "range_out_of_domain"
	CodeEmptyRange          = "empty_range"
	CodeOutsideRange        = "outside_range"
)

// KindResolver returns the kind of the classified field of def, as found by
// analyzing the container's package.
type KindResolver func(def *EnumDef) (primitive.KindEnum, bool)

// Checked is an enumeration whose literals were typed and validated.
type Checked struct {
	Def *EnumDef
	// Kind of the classified field.
	Kind primitive.KindEnum
	// Bounds is the typed validation interval, nil when none was declared.
	Bounds *Bounds
	// Values and Idents run parallel to Def.Variants.
	Values []primitive.Value
	Idents []string
}

// Bounds is a typed inclusive interval.
type Bounds struct {
	Low  primitive.Value
	High primitive.Value
}

// Contains reports whether low <= v <= high.
func (b Bounds) Contains(v primitive.Value) bool {
	return !v.Less(b.Low) && !b.High.Less(v)
}

// Validate checks every enumeration of f. A field kind comes from the
// definition's type or, when absent, from resolve (which may be nil).
// Enumerations free of errors are returned as Checked, in file order.
func Validate(f *File, resolve KindResolver) ([]Checked, *diagnostic.Diagnostics) {
	res := &diagnostic.Diagnostics{}
	if f == nil {
		res.AddError("spec_is_nil", "spec file is nil", "", "")
		return nil, res
	}

	if f.Version != CurrentVersion {
		res.AddError(CodeUnsupportedVersion,
			fmt.Sprintf("unsupported version %q (expected %q)", f.Version, CurrentVersion), "", "")
	}

	if len(f.Enums) == 0 {
		res.AddError(CodeNoEnums, "spec declares no enums", "", "")
	}

	enumNames := common.FirstSeen[string]{}
	containers := map[string]string{}

	var checked []Checked

	for i := range f.Enums {
		def := &f.Enums[i]
		label := def.Label(i)
		before := len(res.Errors)

		if def.Name != "" {
			if _, dup := enumNames.Check(def.Name, i); dup {
				res.AddError(CodeDuplicateEnum, fmt.Sprintf("enum %q declared more than once", def.Name), label, "")
			}
		}

		if def.Container != "" {
			if other, ok := containers[def.Container]; ok {
				res.AddError(CodeAlreadyClassified,
					fmt.Sprintf("container %s is already classified by %s", def.Container, other), label, "")
			} else {
				containers[def.Container] = label
			}
		}

		c := validateEnum(res, label, def, resolve)

		if len(res.Errors) == before && c != nil {
			checked = append(checked, *c)
		}
	}

	return checked, res
}

func validateEnum(res *diagnostic.Diagnostics, label string, def *EnumDef, resolve KindResolver) *Checked {
	validateNames(res, label, def)

	kind, ok := resolveKind(res, label, def, resolve)

	if len(def.Variants) == 0 {
		res.AddError(CodeNoVariants, "enum declares no variants", label, "")
	}

	c := &Checked{
		Def:    def,
		Kind:   kind,
		Values: make([]primitive.Value, len(def.Variants)),
		Idents: make([]string, len(def.Variants)),
	}

	validateVariantNames(res, label, def, c)

	if !ok {
		return nil
	}

	c.Bounds = validateRange(res, label, def, kind)

	values := common.FirstSeen[primitive.Value]{}

	for i, vd := range def.Variants {
		v, err := primitive.ParseValue(kind, string(vd.Value))
		if err != nil {
			code := CodeInvalidValue
			if errors.Is(err, primitive.ErrOutOfDomain) {
				code = CodeOutOfDomain
			}

			res.AddError(code, fmt.Sprintf("value %q: %v", vd.Value, err), label, vd.Name)

			continue
		}

		c.Values[i] = v

		if prev, dup := values.Check(v, i); dup {
			res.AddError(CodeDuplicateValue,
				fmt.Sprintf("value %s already bound to %s", v, def.Variants[prev].Name), label, vd.Name)
		}

		if c.Bounds != nil && !c.Bounds.Contains(v) {
			res.AddError(CodeOutsideRange,
				fmt.Sprintf("value %s outside range [%s, %s]", v, c.Bounds.Low, c.Bounds.High), label, vd.Name)
		}
	}

	return c
}

func validateNames(res *diagnostic.Diagnostics, label string, def *EnumDef) {
	if def.Name == "" {
		res.AddError(CodeMissingName, "enum must specify name", label, "")
	} else if !match.IsIdent(def.Name) {
		res.AddError(CodeInvalidIdentifier, fmt.Sprintf("enum name %q is not a Go identifier", def.Name), label, "")
	}

	if def.Container == "" {
		res.AddError(CodeMissingContainer, "enum must specify container", label, "")
	} else if !match.IsIdent(def.Container) {
		res.AddError(CodeInvalidIdentifier, fmt.Sprintf("container %q is not a Go identifier", def.Container), label, "")
	}

	if def.Field == "" {
		res.AddError(CodeMissingField, "enum must specify field", label, "")
	} else if !match.IsIdent(def.Field) {
		res.AddError(CodeInvalidIdentifier, fmt.Sprintf("field %q is not a Go identifier", def.Field), label, "")
	}

	if def.Super != "" && !match.IsIdent(def.Super) {
		res.AddError(CodeInvalidIdentifier, fmt.Sprintf("super %q is not a Go identifier", def.Super), label, "")
	}

	if def.Name != "" && (def.Name == def.Container || def.Name == def.Super) {
		res.AddError(CodeNameCollision, fmt.Sprintf("enum name %q collides with a container type", def.Name), label, "")
	}

	if def.Super != "" && def.Super == def.Container {
		res.AddError(CodeNameCollision, fmt.Sprintf("super %q is the container itself", def.Super), label, "")
	}
}

func resolveKind(res *diagnostic.Diagnostics, label string, def *EnumDef, resolve KindResolver) (primitive.KindEnum, bool) {
	if def.Type != "" {
		kind, ok := primitive.ParseKind(def.Type)
		if !ok {
			d := res.AddError(CodeUnknownType,
				fmt.Sprintf("type %q is not an integer type", def.Type), label, "")
			d.Suggest(match.Suggest(def.Type, kindNames(), 2)...)
		}

		return kind, ok
	}

	if resolve != nil {
		if kind, ok := resolve(def); ok {
			return kind, true
		}
	}

	res.AddError(CodeTypeUnresolved,
		fmt.Sprintf("type of %s.%s is unknown; set type or analyze the container package", def.Container, def.Field),
		label, "")

	return 0, false
}

func validateVariantNames(res *diagnostic.Diagnostics, label string, def *EnumDef, c *Checked) {
	names := common.FirstSeen[string]{}
	idents := common.FirstSeen[string]{}

	for i, vd := range def.Variants {
		if vd.Name == "" {
			res.AddError(CodeMissingVariantName, fmt.Sprintf("variant #%d (value %q) has no name", i, vd.Value), label, "")
			continue
		}

		if prev, dup := names.Check(vd.Name, i); dup {
			res.AddError(CodeDuplicateName,
				fmt.Sprintf("variant name already declared at #%d", prev), label, vd.Name)

			continue
		}

		ident := match.ExportedIdent(vd.Name)
		if ident == "" {
			res.AddError(CodeInvalidIdentifier,
				fmt.Sprintf("variant name %q does not form a Go identifier", vd.Name), label, vd.Name)

			continue
		}

		if prev, dup := idents.Check(ident, i); dup {
			res.AddError(CodeDuplicateIdentifier,
				fmt.Sprintf("variant name maps to %s, as does %s", ident, def.Variants[prev].Name), label, vd.Name)
		}

		c.Idents[i] = ident
	}
}

func validateRange(res *diagnostic.Diagnostics, label string, def *EnumDef, kind primitive.KindEnum) *Bounds {
	if def.Range == nil {
		return nil
	}

	low, lerr := primitive.ParseValue(kind, string(def.Range.Low))
	high, herr := primitive.ParseValue(kind, string(def.Range.High))

	for _, err := range []error{lerr, herr} {
		switch {
		case err == nil:
		case errors.Is(err, primitive.ErrOutOfDomain):
			res.AddError(CodeRangeOutOfDomain, fmt.Sprintf("range %s: %v", def.Range, err), label, "")
		default:
			res.AddError(CodeInvalidRange, fmt.Sprintf("range %s: %v", def.Range, err), label, "")
		}
	}

	if lerr != nil || herr != nil {
		return nil
	}

	if high.Less(low) {
		res.AddError(CodeEmptyRange, fmt.Sprintf("range %s is empty", def.Range), label, "")
		return nil
	}

	return &Bounds{Low: low, High: high}
}

func kindNames() []string {
	names := make([]string, 0, primitive.KindTotal)
	for k := primitive.KindEnum(1); int(k) < primitive.KindTotal; k++ {
		names = append(names, k.GoName())
	}

	slices.Sort(names)

	return names
}
