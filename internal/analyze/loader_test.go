package analyze

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"constenum/primitive"
)

const (
	helloPkg  = "constenum/examples/hello"
	opcodePkg = "constenum/examples/opcode"
)

func TestAnalyzer_LoadPackages(t *testing.T) {
	analyzer := NewAnalyzer()
	graph, err := analyzer.LoadPackages(helloPkg, opcodePkg)
	require.NoError(t, err)
	require.NotNil(t, graph)

	assert.Contains(t, graph.Packages, helloPkg)
	assert.Contains(t, graph.Packages, opcodePkg)
	assert.Equal(t, "hello", graph.Packages[helloPkg].Name)
	assert.NotEmpty(t, graph.Packages[helloPkg].Dir)

	assert.Contains(t, graph.Types, TypeID{PkgPath: helloPkg, Name: "Hello"})
	assert.Contains(t, graph.Types, TypeID{PkgPath: helloPkg, Name: "HelloRecord"})
	assert.Contains(t, graph.TypeNames(opcodePkg), "Instruction")
}

func TestAnalyzer_HelloFields(t *testing.T) {
	analyzer := NewAnalyzer()
	graph, err := analyzer.LoadPackages(helloPkg)
	require.NoError(t, err)

	hello := graph.Lookup(helloPkg, "Hello")
	require.NotNil(t, hello)
	assert.Equal(t, TypeKindStruct, hello.Kind)
	assert.Equal(t, []string{"Data"}, hello.FieldNames())
	assert.Contains(t, hello.File, "hello.go")

	data := hello.Field("Data")
	require.NotNil(t, data)
	assert.True(t, data.Exported)
	assert.True(t, data.IsInteger())
	assert.Equal(t, primitive.KindUint8, data.Kind)
	assert.Equal(t, "uint8", data.TypeExpr)
	assert.Empty(t, data.TypePkgPath)

	assert.Nil(t, hello.Field("data"))
}

func TestAnalyzer_NamedFieldType(t *testing.T) {
	analyzer := NewAnalyzer()
	graph, err := analyzer.LoadPackages(opcodePkg)
	require.NoError(t, err)

	instr := graph.Lookup(opcodePkg, "Instruction")
	require.NotNil(t, instr)

	op := instr.Field("Op")
	require.NotNil(t, op)
	assert.Equal(t, primitive.KindInt8, op.Kind)
	assert.Equal(t, "Code", op.TypeExpr)
	assert.Empty(t, op.TypePkgPath, "same-package types need no import")

	code := graph.Lookup(opcodePkg, "Code")
	require.NotNil(t, code)
	assert.Equal(t, TypeKindInteger, code.Kind)
}

func TestAnalyzer_SetsGeneratedFilesAside(t *testing.T) {
	analyzer := NewAnalyzer()
	graph, err := analyzer.LoadPackages(helloPkg)
	require.NoError(t, err)

	pkg := graph.Packages[helloPkg]

	file, ok := graph.Declared(helloPkg, "Greet")
	require.True(t, ok)
	assert.Equal(t, "hello.go", filepath.Base(file))
	assert.Contains(t, pkg.Decls, "HelloRecord")

	for _, name := range []string{"Hellos", "HellosV0", "HelloV0", "HellosValues"} {
		_, ok := graph.Declared(helloPkg, name)
		assert.False(t, ok, name)
	}

	assert.Nil(t, graph.Lookup(helloPkg, "Hellos"))
	assert.False(t, graph.Lookup(helloPkg, "Hello").HasMethod("Classify"))
	assert.NotEmpty(t, pkg.TypeErrors, "Greet uses names only the generated file declares")
}

// writeModule lays out a throwaway module and returns its directory.
func writeModule(t *testing.T, files map[string]string) string {
	t.Helper()

	dir := t.TempDir()
	files["go.mod"] = "module scratch\n\ngo 1.24\n"

	for name, content := range files {
		require.NoError(t, os.WriteFile(filepath.Join(dir, name), []byte(content), 0o644))
	}

	return dir
}

func TestAnalyzer_BrokenGeneratedFile(t *testing.T) {
	dir := writeModule(t, map[string]string{
		"hello.go": "package scratch\n\ntype Hello struct{ Data uint8 }\n\nfunc (h *Hello) Classify() int { return 0 }\n\nvar HelloV0 = Hello{}\n",
		"hellos_constenum.go": "package scratch\n\nimport \"example.com/missing\"\n\ntype Hello int\n\nfunc HelloV1() { missing.Do() }\n",
	})

	analyzer := NewAnalyzer()
	analyzer.Dir = dir

	graph, err := analyzer.LoadPackages(".")
	require.NoError(t, err)
	require.Len(t, graph.Packages, 1)

	var pkgPath string
	for path := range graph.Packages {
		pkgPath = path
	}

	hello := graph.Lookup(pkgPath, "Hello")
	require.NotNil(t, hello)
	assert.Equal(t, TypeKindStruct, hello.Kind)
	assert.True(t, hello.HasMethod("Classify"), "pointer methods count")

	_, ok := graph.Declared(pkgPath, "HelloV0")
	assert.True(t, ok, "vars are declarations too")

	_, ok = graph.Declared(pkgPath, "HelloV1")
	assert.False(t, ok)
	assert.Empty(t, graph.Packages[pkgPath].TypeErrors)
}

func TestAnalyzer_ParseErrorFails(t *testing.T) {
	dir := writeModule(t, map[string]string{
		"hello.go": "package scratch\n\ntype Hello struct{ Data uint8\n",
	})

	analyzer := NewAnalyzer()
	analyzer.Dir = dir

	_, err := analyzer.LoadPackages(".")
	assert.ErrorContains(t, err, "package errors")
}

func TestAnalyzer_LoadPackages_Error(t *testing.T) {
	analyzer := NewAnalyzer()
	_, err := analyzer.LoadPackages("constenum/examples/does-not-exist")
	assert.Error(t, err)
}

func TestTypeKind_String(t *testing.T) {
	assert.Equal(t, "integer", TypeKindInteger.String())
	assert.Equal(t, "struct", TypeKindStruct.String())
	assert.Equal(t, "other", TypeKindOther.String())
	assert.Equal(t, "unknown", TypeKindUnknown.String())
	assert.Equal(t, "constenum/examples/hello.Hello", TypeID{PkgPath: helloPkg, Name: "Hello"}.String())
	assert.Equal(t, "Hello.Data", FieldPath("Hello", "Data"))
}
