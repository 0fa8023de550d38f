package gen

import (
	"bytes"
	"fmt"
	"go/format"
	"slices"
	"strings"
	"text/template"

	"constenum/internal/common"
	"constenum/internal/match"
	"constenum/internal/plan"
)

// FileSuffix ends the name of every generated file.
const FileSuffix = common.GeneratedSuffix

// GeneratorConfig holds configuration for code generation.
type GeneratorConfig struct {
	// OutputDir is where sidecar debug files go when formatting fails.
	// Empty means the plan's package directory.
	OutputDir string
	// GenerateComments enables doc comments on generated declarations.
	GenerateComments bool
	// EnumPkgPath is the import path of the runtime package.
	EnumPkgPath string
}

// DefaultGeneratorConfig returns the default generator configuration.
func DefaultGeneratorConfig() GeneratorConfig {
	return GeneratorConfig{
		OutputDir:        "",
		GenerateComments: true,
		EnumPkgPath:      common.EnumPkgPath,
	}
}

// Generator generates Go code from a resolved plan.
type Generator struct {
	config GeneratorConfig
}

// NewGenerator creates a new Generator with the given configuration.
func NewGenerator(config GeneratorConfig) *Generator {
	if config.EnumPkgPath == "" {
		config.EnumPkgPath = common.EnumPkgPath
	}

	return &Generator{config: config}
}

// GeneratedFile represents a generated Go source file.
type GeneratedFile struct {
	// Filename is the name of the file (e.g., "hellos_constenum.go").
	Filename string
	// Content is the formatted Go source code.
	Content []byte
}

// Generate generates one file per enumeration of p.
func (g *Generator) Generate(p *plan.ResolvedPlan) ([]GeneratedFile, error) {
	if p.HasErrors() {
		return nil, fmt.Errorf("plan has errors: %w", p.Diagnostics.Error())
	}

	outDir := g.config.OutputDir
	if outDir == "" {
		outDir = p.Dir
	}

	files := make([]GeneratedFile, 0, len(p.Enums))

	for i := range p.Enums {
		file, err := g.generateEnum(p.Package, outDir, &p.Enums[i])
		if err != nil {
			return nil, fmt.Errorf("generating %s: %w", p.Enums[i].Name, err)
		}

		files = append(files, *file)
	}

	return files, nil
}

func (g *Generator) generateEnum(pkgName, outDir string, e *plan.ResolvedEnum) (*GeneratedFile, error) {
	data := g.buildTemplateData(pkgName, e)

	var buf bytes.Buffer
	if err := enumTemplate.Execute(&buf, data); err != nil {
		return nil, fmt.Errorf("executing template: %w", err)
	}

	// Format the generated code
	formatted, err := format.Source(buf.Bytes())
	if err != nil {
		// Best-effort: keep the unformatted code next to the output.
		if outDir != "" {
			_ = writeDebugUnformatted(outDir, data.Filename, buf.Bytes())
		}

		return &GeneratedFile{
			Filename: data.Filename,
			Content:  buf.Bytes(),
		}, fmt.Errorf("formatting code: %w (unformatted code returned)", err)
	}

	return &GeneratedFile{
		Filename: data.Filename,
		Content:  formatted,
	}, nil
}

// templateData holds all data needed for the enum template.
type templateData struct {
	PackageName      string
	Filename         string
	StdImports       []importSpec
	Imports          []importSpec
	EnumPkg          string
	GenerateComments bool

	Name      string
	Doc       []string
	RawType   string
	Container string
	Field     string
	FieldType string
	// FormatRaw renders a raw value as decimal text.
	FormatRaw string
	// Guard is the interval test, empty when none is needed.
	Guard string

	Super          string
	SuperFieldType string

	ValuesFunc string
	Variants   []variantData
}

type variantData struct {
	Name     string
	Const    string
	Accessor string
	Value    string
	Doc      []string
}

type importSpec struct {
	Alias string
	Path  string
}

func (g *Generator) buildTemplateData(pkgName string, e *plan.ResolvedEnum) *templateData {
	enumAlias := common.PkgAlias(g.config.EnumPkgPath)

	data := &templateData{
		PackageName:      pkgName,
		Filename:         Filename(e.Name),
		EnumPkg:          enumAlias,
		GenerateComments: g.config.GenerateComments,
		Name:             e.Name,
		Doc:              docLines(e.Doc),
		RawType:          e.RawType(),
		Container:        e.Container,
		Field:            e.Field,
		FieldType:        e.FieldType,
		Guard:            guard(e),
		Super:            e.Super,
		SuperFieldType:   e.SuperFieldType,
		ValuesFunc:       e.ValuesFunc(),
	}

	if len(data.Doc) == 0 {
		data.Doc = []string{fmt.Sprintf("%s classifies %s.%s.", e.Name, e.Container, e.Field)}
	}

	if e.Kind.IsSigned() {
		data.FormatRaw = "strconv.FormatInt(int64(v), 10)"
	} else {
		data.FormatRaw = "strconv.FormatUint(uint64(v), 10)"
	}

	data.StdImports = []importSpec{{Path: "strconv"}}

	paths := append([]string{g.config.EnumPkgPath}, e.Imports...)
	slices.Sort(paths)

	for _, p := range slices.Compact(paths) {
		data.Imports = append(data.Imports, importSpec{Path: p})
	}

	for _, v := range e.Variants {
		data.Variants = append(data.Variants, variantData{
			Name:     v.Name,
			Const:    e.ConstName(v),
			Accessor: e.AccessorName(v),
			Value:    v.Value.String(),
			Doc:      constDoc(e.ConstName(v), docLines(v.Doc), v.Name, v.Ident),
		})
	}

	return data
}

// guard renders the condition under which a raw value is outside the
// validation interval.
func guard(e *plan.ResolvedEnum) string {
	if !e.Interval.NeedsCheck() {
		return ""
	}

	var parts []string
	if e.Interval.CheckLow {
		parts = append(parts, "raw < "+e.Interval.Low.String())
	}

	if e.Interval.CheckHigh {
		parts = append(parts, "raw > "+e.Interval.High.String())
	}

	return strings.Join(parts, " || ")
}

func docLines(doc string) []string {
	doc = strings.TrimSpace(doc)
	if doc == "" {
		return nil
	}

	return strings.Split(doc, "\n")
}

// constDoc makes the first line of a variant doc start with the constant it
// documents: "Push pushes a word" and "pushes a word" both become
// "OpcodesPush pushes a word".
func constDoc(constName string, lines []string, names ...string) []string {
	if len(lines) == 0 {
		return nil
	}

	first := lines[0]
	for _, name := range append([]string{constName}, names...) {
		if rest, ok := strings.CutPrefix(first, name+" "); ok {
			first = rest
			break
		}
	}

	return append([]string{constName + " " + first}, lines[1:]...)
}

// Filename returns the generated file name for an enumeration: "Hellos"
// gives "hellos_constenum.go", "OpCodes" gives "op_codes_constenum.go".
func Filename(enumName string) string {
	return strings.Join(match.TokenizeIdent(enumName), "_") + FileSuffix
}

// Template for the enumeration file

var enumTemplate = template.Must(template.New("enum").Parse(`// Code generated by constenum. DO NOT EDIT.

package {{.PackageName}}

import (
{{range .StdImports}}	"{{.Path}}"
{{end}}
{{range .Imports}}	{{if .Alias}}{{.Alias}} {{end}}"{{.Path}}"
{{end}})

{{range .Doc}}// {{.}}
{{end}}type {{.Name}} {{.RawType}}

const (
{{range .Variants}}{{range .Doc}}	// {{.}}
{{end}}	{{.Const}} {{$.Name}} = {{.Value}}
{{end}})

{{if .GenerateComments}}// String returns the variant name, or {{.Name}}(raw) for any other value.
{{end}}func (v {{.Name}}) String() string {
	switch v {
{{range .Variants}}	case {{.Const}}:
		return "{{.Name}}"
{{end}}	}

	return "{{.Name}}(" + {{.FormatRaw}} + ")"
}

{{if .GenerateComments}}// IsValid reports whether v is a declared variant.
{{end}}func (v {{.Name}}) IsValid() bool {
	switch v {
	case {{range $i, $v := .Variants}}{{if $i}}, {{end}}{{$v.Const}}{{end}}:
		return true
	}

	return false
}

{{if .GenerateComments}}// {{.ValuesFunc}} returns every variant in declaration order.
{{end}}func {{.ValuesFunc}}() []{{.Name}} {
	return []{{.Name}}{ {{- range $i, $v := .Variants}}{{if $i}}, {{end}}{{$v.Const}}{{end -}} }
}

{{if .GenerateComments}}// Classify returns the {{.Name}} held by c.{{.Field}}, or the raw value when it
// names no variant.
{{end}}func (c {{.Container}}) Classify() {{.EnumPkg}}.Classification[{{.Name}}, {{.RawType}}] {
	raw := {{.RawType}}(c.{{.Field}})
{{if .Guard}}	if {{.Guard}} {
		return {{.EnumPkg}}.Unknown[{{.Name}}](raw)
	}
{{end}}
	if v := {{.Name}}(raw); v.IsValid() {
		return {{.EnumPkg}}.Known[{{.RawType}}](v)
	}

	return {{.EnumPkg}}.Unknown[{{.Name}}](raw)
}

{{if .GenerateComments}}// {{.Container}} returns the {{.Container}} holding v.
{{end}}func (v {{.Name}}) {{.Container}}() {{.Container}} {
	return {{.Container}}{ {{- .Field}}: {{.FieldType}}(v)}
}
{{if .Super}}
{{if .GenerateComments}}// {{.Super}} returns the {{.Super}} holding v.
{{end}}func (v {{.Name}}) {{.Super}}() {{.Super}} {
	return {{.Super}}{ {{- .Field}}: {{.SuperFieldType}}(v)}
}
{{end}}{{range .Variants}}
{{if $.GenerateComments}}// {{.Accessor}} returns the {{$.Container}} holding {{.Const}}.
{{end}}func {{.Accessor}}() {{$.Container}} {
	return {{.Const}}.{{$.Container}}()
}
{{end}}`))
