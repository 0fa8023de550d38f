package plan

import (
	"errors"
	"fmt"
	"path/filepath"
	"slices"
	"strings"

	"constenum/internal/analyze"
	"constenum/internal/common"
	"constenum/internal/diagnostic"
	"constenum/internal/match"
	"constenum/internal/spec"
	"constenum/primitive"
)

// Diagnostic codes reported by the resolver, on top of spec.Validate's.
const (
	CodeContainerNotFound  = "container_not_found"
	CodeContainerNotStruct = "container_not_struct"
	CodeFieldNotFound      = "field_not_found"
	CodeFieldNotInteger    = "field_not_integer"
	CodeTypeMismatch       = "type_mismatch"
	CodeMultiField         = "multi_field_container"
	CodeSuperNotFound      = "super_not_found"
	CodeSuperMismatch      = "super_field_mismatch"
	CodePackageMismatch    = "package_mismatch"
	CodeIntervalUnchecked  = "interval_unchecked"
	CodeIdentifierTaken    = spec.CodeNameCollision
)

// ResolutionConfig holds configuration for the resolution process.
type ResolutionConfig struct {
	// StrictMode fails on warnings too.
	StrictMode bool
	// MaxCandidates is the maximum number of candidates to include in suggestions.
	MaxCandidates int
	// AllowMultiField silences the warning for containers with more than
	// one field.
	AllowMultiField bool
}

// DefaultConfig returns the default resolution configuration.
func DefaultConfig() ResolutionConfig {
	return ResolutionConfig{
		StrictMode:      false,
		MaxCandidates:   3,
		AllowMultiField: false,
	}
}

// Resolver performs the resolution pipeline for one package.
type Resolver struct {
	graph   *analyze.TypeGraph
	pkgPath string
	file    *spec.File
	config  ResolutionConfig
}

// NewResolver creates a new Resolver for the enumerations of file, whose
// containers live in package pkgPath of graph.
func NewResolver(
	graph *analyze.TypeGraph,
	pkgPath string,
	file *spec.File,
	config ResolutionConfig,
) *Resolver {
	return &Resolver{
		graph:   graph,
		pkgPath: pkgPath,
		file:    file,
		config:  config,
	}
}

// Resolve runs the full resolution pipeline and returns a ResolvedPlan.
// Problems with the specification land in the plan's diagnostics; the
// error reports missing inputs and, in strict mode, any diagnostic.
func (r *Resolver) Resolve() (*ResolvedPlan, error) {
	if r.file == nil {
		return nil, errors.New("spec file is required")
	}

	pkg := r.graph.Packages[r.pkgPath]
	if pkg == nil {
		return nil, fmt.Errorf("package %s was not analyzed", r.pkgPath)
	}

	plan := &ResolvedPlan{
		Package: pkg.Name,
		PkgPath: pkg.Path,
		Dir:     pkg.Dir,
	}

	if r.file.Package != "" && r.file.Package != pkg.Name {
		plan.Diagnostics.AddError(CodePackageMismatch,
			fmt.Sprintf("spec targets package %s but %s is package %s", r.file.Package, r.pkgPath, pkg.Name), "", "")
	}

	// Untyped enums take their kind from the container; say why it failed.
	for i, def := range r.file.Enums {
		if def.Type == "" && def.Container != "" && def.Field != "" {
			if _, ok := r.fieldKind(&r.file.Enums[i]); !ok {
				r.containerField(def.Label(i), def.Container, def.Field, &plan.Diagnostics,
					CodeContainerNotFound, CodeContainerNotStruct)
			}
		}
	}

	checked, diags := spec.Validate(r.file, r.fieldKind)
	plan.Diagnostics.Merge(*diags)

	taken := map[string]string{}

	for i := range checked {
		enum, ok := r.resolveEnum(&checked[i], &plan.Diagnostics)
		if !ok {
			continue
		}

		if !r.claimIdentifiers(enum, taken, &plan.Diagnostics) {
			continue
		}

		plan.Enums = append(plan.Enums, *enum)
	}

	if r.config.StrictMode && (plan.Diagnostics.HasErrors() || len(plan.Diagnostics.Warnings) > 0) {
		return plan, errors.New("strict mode: resolution reported diagnostics")
	}

	return plan, nil
}

// fieldKind feeds spec.Validate the kind of a field the spec left untyped.
func (r *Resolver) fieldKind(def *spec.EnumDef) (primitive.KindEnum, bool) {
	t := r.graph.Lookup(r.pkgPath, def.Container)
	if t == nil || t.Kind != analyze.TypeKindStruct {
		return 0, false
	}

	f := t.Field(def.Field)
	if f == nil || !f.IsInteger() {
		return 0, false
	}

	return f.Kind, true
}

func (r *Resolver) resolveEnum(c *spec.Checked, diags *diagnostic.Diagnostics) (*ResolvedEnum, bool) {
	def := c.Def
	before := len(diags.Errors)

	field := r.containerField(def.Name, def.Container, def.Field, diags, CodeContainerNotFound, CodeContainerNotStruct)
	if field == nil {
		return nil, false
	}

	if field.Kind != c.Kind {
		diags.AddError(CodeTypeMismatch,
			fmt.Sprintf("%s is %s, spec says %s",
				analyze.FieldPath(def.Container, def.Field), field.Kind.GoName(), c.Kind.GoName()),
			def.Name, "")
	}

	container := r.graph.Lookup(r.pkgPath, def.Container)
	if len(container.Fields) > 1 && !r.config.AllowMultiField {
		others := slices.DeleteFunc(container.FieldNames(), func(n string) bool { return n == def.Field })
		diags.AddWarning(CodeMultiField,
			fmt.Sprintf("%s has other fields (%s); reconstruction leaves them zero",
				def.Container, strings.Join(others, ", ")),
			def.Name, "")
	}

	enum := &ResolvedEnum{
		Name:      def.Name,
		Doc:       def.Doc,
		Container: def.Container,
		Field:     def.Field,
		FieldType: field.TypeExpr,
		Kind:      c.Kind,
		Super:     def.Super,
	}
	enum.addImport(field.TypePkgPath)

	if def.Super != "" {
		superField := r.containerField(def.Name, def.Super, def.Field, diags, CodeSuperNotFound, CodeSuperMismatch)
		if superField != nil {
			if superField.Kind != field.Kind {
				diags.AddError(CodeSuperMismatch,
					fmt.Sprintf("%s is %s but %s is %s",
						analyze.FieldPath(def.Super, def.Field), superField.Kind.GoName(),
						analyze.FieldPath(def.Container, def.Field), field.Kind.GoName()),
					def.Name, "")
			}

			enum.SuperFieldType = superField.TypeExpr
			enum.addImport(superField.TypePkgPath)
		}
	}

	if c.Bounds != nil {
		enum.Interval = &Interval{
			Low:       c.Bounds.Low,
			High:      c.Bounds.High,
			CheckLow:  c.Bounds.Low != primitive.MinValue(c.Kind),
			CheckHigh: c.Bounds.High != primitive.MaxValue(c.Kind),
		}

		if !enum.Interval.NeedsCheck() {
			diags.AddInfo(CodeIntervalUnchecked,
				fmt.Sprintf("range [%s, %s] admits every %s; no check is generated",
					c.Bounds.Low, c.Bounds.High, c.Kind.GoName()),
				def.Name, "")
		}
	}

	for i, vd := range def.Variants {
		enum.Variants = append(enum.Variants, ResolvedVariant{
			Name:  vd.Name,
			Ident: c.Idents[i],
			Doc:   vd.Doc,
			Value: c.Values[i],
		})
	}

	return enum, len(diags.Errors) == before
}

// containerField finds the integer field of a struct type, reporting a
// missing type with notFound and a non-struct with notStruct.
func (r *Resolver) containerField(
	enumName, typeName, fieldName string,
	diags *diagnostic.Diagnostics,
	notFound, notStruct string,
) *analyze.FieldInfo {
	t := r.graph.Lookup(r.pkgPath, typeName)
	if t == nil {
		d := diags.AddError(notFound, fmt.Sprintf("type %s not found in %s", typeName, r.pkgPath), enumName, "")
		d.Suggest(match.Suggest(typeName, r.structNames(), r.config.MaxCandidates)...)

		return nil
	}

	if t.Kind != analyze.TypeKindStruct {
		diags.AddError(notStruct, fmt.Sprintf("type %s is not a struct (kind: %s)", typeName, t.Kind), enumName, "")
		return nil
	}

	f := t.Field(fieldName)
	if f == nil {
		code := CodeFieldNotFound
		if notStruct == CodeSuperMismatch {
			code = CodeSuperMismatch
		}

		d := diags.AddError(code,
			fmt.Sprintf("%s has no field %s", typeName, fieldName), enumName, "")
		d.Suggest(match.Suggest(fieldName, t.FieldNames(), r.config.MaxCandidates)...)

		return nil
	}

	if !f.IsInteger() {
		diags.AddError(CodeFieldNotInteger,
			fmt.Sprintf("%s is %s, not an integer", analyze.FieldPath(typeName, fieldName), f.TypeExpr),
			enumName, "")

		return nil
	}

	return f
}

func (r *Resolver) structNames() []string {
	var names []string

	for _, name := range r.graph.TypeNames(r.pkgPath) {
		if t := r.graph.Lookup(r.pkgPath, name); t != nil && t.Kind == analyze.TypeKindStruct {
			names = append(names, name)
		}
	}

	return names
}

// Methods every generated file declares on the container and on the
// enumeration type.
var (
	containerMethods = []string{"Classify"}
	enumMethods      = []string{"String", "IsValid"}
)

// claimIdentifiers checks the names enum generates against each other, the
// package's own declarations and the enumerations resolved before it.
func (r *Resolver) claimIdentifiers(enum *ResolvedEnum, taken map[string]string, diags *diagnostic.Diagnostics) bool {
	ok := true
	fail := func(format string, args ...any) {
		diags.AddError(CodeIdentifierTaken, fmt.Sprintf(format, args...), enum.Name, "")
		ok = false
	}

	ids := enum.Identifiers()
	seen := common.FirstSeen[string]{}

	for i, id := range ids {
		if _, dup := seen.Check(id, i); dup {
			fail("%s is generated twice for %s", id, enum.Name)
			continue
		}

		if owner, dup := taken[id]; dup {
			fail("%s is generated for both %s and %s", id, owner, enum.Name)
			continue
		}

		if file, declared := r.graph.Declared(r.pkgPath, id); declared && !common.IsGenerated(file) {
			fail("%s is already declared in %s", id, filepath.Base(file))
		}
	}

	for _, name := range []string{enum.Container, enum.Super} {
		if slices.Contains(enumMethods, name) {
			fail("%s would name a method %s already generates", name, enum.Name)
		}
	}

	if t := r.graph.Lookup(r.pkgPath, enum.Container); t != nil {
		for _, m := range containerMethods {
			if t.HasMethod(m) || t.Field(m) != nil {
				fail("%s already has a field or method %s", enum.Container, m)
			}
		}
	}

	if ok {
		for _, id := range ids {
			taken[id] = enum.Name
		}
	}

	return ok
}

func (e *ResolvedEnum) addImport(path string) {
	if path != "" && !slices.Contains(e.Imports, path) {
		e.Imports = append(e.Imports, path)
	}
}
