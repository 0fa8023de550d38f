package analyze

import (
	"errors"
	"fmt"
	"go/token"
	"go/types"
	"path/filepath"
	"strings"

	"golang.org/x/tools/go/packages"

	"constenum/internal/common"
	"constenum/primitive"
)

// LoadMode specifies what information to load from packages.
const LoadMode = packages.NeedName |
	packages.NeedFiles |
	packages.NeedSyntax |
	packages.NeedTypes |
	packages.NeedTypesInfo |
	packages.NeedImports

// Analyzer loads Go packages and builds a type graph.
type Analyzer struct {
	// Dir is the directory patterns are resolved from; empty means the
	// current directory.
	Dir string
	// Tags are extra build tags.
	Tags []string

	graph *TypeGraph
}

// NewAnalyzer creates a new Analyzer.
func NewAnalyzer() *Analyzer {
	return &Analyzer{
		graph: NewTypeGraph(),
	}
}

// LoadPackages loads the specified packages and builds the type graph.
// Patterns are standard Go package patterns (e.g., "./examples/hello",
// "constenum/examples/opcode").
//
// Generated files are reduced to their package clause before type
// checking, so stale or broken output never blocks a regeneration. The type
// errors left over are recorded on the package instead of failing the load;
// listing and parse errors still fail it.
func (a *Analyzer) LoadPackages(patterns ...string) (*TypeGraph, error) {
	overlay, err := a.generatedOverlay(patterns)
	if err != nil {
		return nil, err
	}

	cfg := a.config(LoadMode)
	cfg.Overlay = overlay

	pkgs, err := packages.Load(cfg, patterns...)
	if err != nil {
		return nil, fmt.Errorf("failed to load packages: %w", err)
	}

	// Check for package errors
	var errs []error

	for _, pkg := range pkgs {
		for _, e := range pkg.Errors {
			if e.Kind != packages.TypeError {
				errs = append(errs, e)
			}
		}
	}

	if len(errs) > 0 {
		return nil, fmt.Errorf("package errors: %w", errors.Join(errs...))
	}

	for _, pkg := range pkgs {
		a.processPackage(pkg)
	}

	return a.graph, nil
}

func (a *Analyzer) config(mode packages.LoadMode) *packages.Config {
	cfg := &packages.Config{
		Mode: mode,
		Dir:  a.Dir,
	}

	if len(a.Tags) > 0 {
		cfg.BuildFlags = []string{"-tags=" + strings.Join(a.Tags, ",")}
	}

	return cfg
}

// generatedOverlay lists the packages without type checking them and maps
// each generated file to a bare package clause.
func (a *Analyzer) generatedOverlay(patterns []string) (map[string][]byte, error) {
	pkgs, err := packages.Load(a.config(packages.NeedName|packages.NeedFiles), patterns...)
	if err != nil {
		return nil, fmt.Errorf("failed to list packages: %w", err)
	}

	overlay := map[string][]byte{}

	for _, pkg := range pkgs {
		if pkg.Name == "" {
			continue
		}

		for _, file := range pkg.GoFiles {
			if common.IsGenerated(file) {
				overlay[file] = []byte("package " + pkg.Name + "\n")
			}
		}
	}

	return overlay, nil
}

// processPackage records the package-scope declarations of a loaded
// package and analyzes its named types.
func (a *Analyzer) processPackage(pkg *packages.Package) {
	pkgInfo := &PackageInfo{
		Path:  pkg.PkgPath,
		Name:  pkg.Name,
		Decls: map[string]string{},
	}

	if len(pkg.GoFiles) > 0 {
		pkgInfo.Dir = filepath.Dir(pkg.GoFiles[0])
	}

	for _, e := range pkg.Errors {
		pkgInfo.TypeErrors = append(pkgInfo.TypeErrors, e.Error())
	}

	scope := pkg.Types.Scope()
	for _, name := range scope.Names() {
		obj := scope.Lookup(name)

		file := pkg.Fset.Position(obj.Pos()).Filename
		if common.IsGenerated(file) {
			continue
		}

		pkgInfo.Decls[name] = file

		typeName, ok := obj.(*types.TypeName)
		if !ok || typeName.IsAlias() {
			continue
		}

		typeID := TypeID{PkgPath: pkg.PkgPath, Name: name}

		info := a.analyzeNamed(pkg.Types, typeName.Type())
		info.ID = typeID
		info.File = file
		info.Methods = methodNames(pkg.Fset, typeName.Type())

		a.graph.Types[typeID] = info
		pkgInfo.Types = append(pkgInfo.Types, typeID)
	}

	a.graph.Packages[pkg.PkgPath] = pkgInfo
}

// methodNames lists the methods of t and *t that generated files do not
// declare.
func methodNames(fset *token.FileSet, t types.Type) []string {
	if types.IsInterface(t) {
		return nil
	}

	var names []string

	ms := types.NewMethodSet(types.NewPointer(t))
	for i := range ms.Len() {
		fn := ms.At(i).Obj()
		if !common.IsGenerated(fset.Position(fn.Pos()).Filename) {
			names = append(names, fn.Name())
		}
	}

	return names
}

func (a *Analyzer) analyzeNamed(pkg *types.Package, t types.Type) *TypeInfo {
	info := &TypeInfo{GoType: t}

	switch ut := t.Underlying().(type) {
	case *types.Struct:
		info.Kind = TypeKindStruct
		info.Fields = analyzeStructFields(pkg, ut)

	case *types.Basic:
		if primitive.FromGoType(ut).IsValid() {
			info.Kind = TypeKindInteger
		} else {
			info.Kind = TypeKindOther
		}

	default:
		info.Kind = TypeKindOther
	}

	return info
}

// analyzeStructFields extracts fields from a struct type. Unexported fields
// are kept so a container with a hidden second field is still seen as
// having more than one field.
func analyzeStructFields(pkg *types.Package, st *types.Struct) []FieldInfo {
	fields := make([]FieldInfo, 0, st.NumFields())

	for i := range st.NumFields() {
		field := st.Field(i)

		fi := FieldInfo{
			Name:     field.Name(),
			Exported: field.Exported(),
			Embedded: field.Embedded(),
			Index:    i,
			Kind:     primitive.FromGoType(field.Type()),
			TypeExpr: types.TypeString(field.Type(), types.RelativeTo(pkg)),
			GoType:   field.Type(),
		}

		if named, ok := field.Type().(*types.Named); ok {
			if p := named.Obj().Pkg(); p != nil && p != pkg {
				fi.TypePkgPath = p.Path()
			}
		}

		fields = append(fields, fi)
	}

	return fields
}
