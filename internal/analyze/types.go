package analyze

import (
	"go/types"
	"slices"

	"constenum/internal/common"
	"constenum/primitive"
)

// TypeID uniquely identifies a type by its package path and name.
type TypeID struct {
	PkgPath string // e.g., "constenum/examples/hello"
	Name    string // e.g., "Hello"
}

// String returns a human-readable representation of the TypeID.
func (t TypeID) String() string {
	if t.PkgPath == "" {
		return t.Name
	}

	return t.PkgPath + "." + t.Name
}

// TypeKind represents the kind of a type.
type TypeKind int

const (
	TypeKindUnknown TypeKind = iota
	TypeKindInteger          // any type whose underlying type is an integer
	TypeKindStruct           // struct type
	TypeKindOther            // strings, floats, pointers, slices, maps...
)

// String returns a human-readable representation of the TypeKind.
func (k TypeKind) String() string {
	switch k {
	case TypeKindInteger:
		return "integer"
	case TypeKindStruct:
		return "struct"
	case TypeKindOther:
		return "other"
	default:
		return common.UnknownStr
	}
}

// TypeInfo describes a named type of an analyzed package.
type TypeInfo struct {
	ID     TypeID      // Unique identifier
	Kind   TypeKind    // Kind of the underlying type
	Fields []FieldInfo // For structs, the list of fields
	GoType types.Type  // The original go/types.Type
	File   string      // File declaring the type
	// Methods of the type and its pointer, minus those of generated files.
	Methods []string
}

// Field returns the field called name, or nil.
func (t *TypeInfo) Field(name string) *FieldInfo {
	for i := range t.Fields {
		if t.Fields[i].Name == name {
			return &t.Fields[i]
		}
	}

	return nil
}

// HasMethod reports whether the type, or a pointer to it, has the method.
func (t *TypeInfo) HasMethod(name string) bool {
	return slices.Contains(t.Methods, name)
}

// FieldNames lists the field names in declaration order.
func (t *TypeInfo) FieldNames() []string {
	names := make([]string, 0, len(t.Fields))
	for _, f := range t.Fields {
		names = append(names, f.Name)
	}

	return names
}

// FieldInfo describes a struct field.
type FieldInfo struct {
	Name     string             // Go field name
	Exported bool               // Whether the field is exported
	Embedded bool               // Whether the field is embedded (anonymous)
	Index    int                // Field index in the struct
	Kind     primitive.KindEnum // Integer kind of the underlying type, 0 otherwise
	// TypeExpr spells the field type as seen from the declaring package:
	// "uint8", "Byte" or "wire.Byte".
	TypeExpr string
	// TypePkgPath is the import path of a named field type declared in
	// another package, empty otherwise.
	TypePkgPath string
	GoType      types.Type
}

// IsInteger reports whether the field holds an integer.
func (f *FieldInfo) IsInteger() bool {
	return f.Kind.IsValid()
}

// FieldPath returns "Type.Field".
func FieldPath(typeName, field string) string {
	return typeName + "." + field
}

// TypeGraph holds all analyzed types from loaded packages.
type TypeGraph struct {
	// Types maps TypeID to TypeInfo for all named types.
	Types map[TypeID]*TypeInfo
	// Packages maps package paths to their package info.
	Packages map[string]*PackageInfo
}

// NewTypeGraph creates a new empty TypeGraph.
func NewTypeGraph() *TypeGraph {
	return &TypeGraph{
		Types:    make(map[TypeID]*TypeInfo),
		Packages: make(map[string]*PackageInfo),
	}
}

// Lookup returns the type called name in package pkgPath, or nil.
func (g *TypeGraph) Lookup(pkgPath, name string) *TypeInfo {
	return g.Types[TypeID{PkgPath: pkgPath, Name: name}]
}

// TypeNames lists the named types of package pkgPath.
func (g *TypeGraph) TypeNames(pkgPath string) []string {
	pkg := g.Packages[pkgPath]
	if pkg == nil {
		return nil
	}

	names := make([]string, 0, len(pkg.Types))
	for _, id := range pkg.Types {
		names = append(names, id.Name)
	}

	return names
}

// Declared returns the file declaring the package-scope name in package
// pkgPath. Generated files declare nothing.
func (g *TypeGraph) Declared(pkgPath, name string) (string, bool) {
	pkg := g.Packages[pkgPath]
	if pkg == nil {
		return "", false
	}

	file, ok := pkg.Decls[name]

	return file, ok
}

// PackageInfo holds information about a loaded package.
type PackageInfo struct {
	Path  string   // Import path
	Name  string   // Package name
	Dir   string   // Directory of the package sources
	Types []TypeID // Named types defined in this package
	// Decls maps every package-scope name (types, funcs, vars, consts) to
	// its declaring file.
	Decls map[string]string
	// TypeErrors are the type-checking errors left once generated files are
	// set aside, typically uses of names those files declare.
	TypeErrors []string
}
