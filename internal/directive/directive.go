// Package directive reads enumeration specifications written as annotated
// const blocks in Go source:
//
//	//go:build constenum
//
//	package opcode
//
//	//constenum:enum Opcodes container=Instruction field=Op super=Word range=-8..=8
//	const (
//		// Nop does nothing.
//		Nop  = 0
//		Push = 1
//		Pop  = -1
//	)
//
// Files carrying the directives sit behind the constenum build tag so they
// never take part in a normal build.
package directive

import (
	"errors"
	"fmt"
	"go/token"
	"os"
	"path/filepath"
	"slices"
	"strings"

	"github.com/dave/dst"
	"github.com/dave/dst/decorator"

	"constenum/internal/common"
	"constenum/internal/spec"
)

// Prefix starts a directive comment.
const Prefix = "//constenum:enum"

var (
	// ErrSyntax reports a malformed directive line.
	ErrSyntax = errors.New("malformed directive")
	// ErrUnknownKey reports a directive key that is not understood.
	ErrUnknownKey = errors.New("unknown directive key")
	// ErrNotConst reports a directive attached to something else than a
	// const declaration.
	ErrNotConst = errors.New("directive must annotate a const declaration")
	// ErrValue reports a constant whose value is not an integer literal.
	ErrValue = errors.New("constant value must be an integer literal")
)

// ParseSource reads the directives of one Go source file. It returns the
// package name and one definition per annotated const block, in source
// order.
func ParseSource(filename string, src []byte) (string, []spec.EnumDef, error) {
	f, err := decorator.ParseFile(token.NewFileSet(), filename, src, 0)
	if err != nil {
		return "", nil, fmt.Errorf("failed to parse %s: %w", filename, err)
	}

	var (
		defs []spec.EnumDef
		errs []error
	)

	for _, decl := range f.Decls {
		line, doc, ok := directiveOf(decl.Decorations().Start)
		if !ok {
			continue
		}

		gen, isGen := decl.(*dst.GenDecl)
		if !isGen || gen.Tok != token.CONST {
			errs = append(errs, fmt.Errorf("%s: %q: %w", filename, line, ErrNotConst))
			continue
		}

		def, err := parseLine(line)
		if err != nil {
			errs = append(errs, fmt.Errorf("%s: %w", filename, err))
			continue
		}

		def.Doc = doc

		variants, err := constVariants(gen)
		if err != nil {
			errs = append(errs, fmt.Errorf("%s: enum %s: %w", filename, def.Name, err))
			continue
		}

		def.Variants = variants
		defs = append(defs, def)
	}

	return f.Name.Name, defs, errors.Join(errs...)
}

// ParseFile reads the directives of the Go file at path.
func ParseFile(path string) (string, []spec.EnumDef, error) {
	src, err := os.ReadFile(path)
	if err != nil {
		return "", nil, fmt.Errorf("failed to read %s: %w", path, err)
	}

	return ParseSource(path, src)
}

// ScanDir collects the directives of every non-test, non-generated Go file
// in dir into one specification file. The files holding directives are
// returned sorted.
func ScanDir(dir string) (*spec.File, []string, error) {
	matches, err := filepath.Glob(filepath.Join(dir, "*.go"))
	if err != nil {
		return nil, nil, err
	}

	slices.Sort(matches)

	out := &spec.File{Version: spec.CurrentVersion}

	var (
		files []string
		errs  []error
	)

	for _, path := range matches {
		base := filepath.Base(path)
		if strings.HasSuffix(base, "_test.go") || common.IsGenerated(base) {
			continue
		}

		pkg, defs, err := ParseFile(path)
		if err != nil {
			errs = append(errs, err)
			continue
		}

		if len(defs) == 0 {
			continue
		}

		if out.Package != "" && out.Package != pkg {
			errs = append(errs, fmt.Errorf("%s: package %s differs from %s", path, pkg, out.Package))
			continue
		}

		out.Package = pkg
		out.Enums = append(out.Enums, defs...)
		files = append(files, path)
	}

	return out, files, errors.Join(errs...)
}

// directiveOf finds the directive among the comments preceding a
// declaration. The other comment lines, minus compiler directives, make the
// enumeration's doc.
func directiveOf(decs dst.Decorations) (string, string, bool) {
	var (
		line  string
		found bool
		doc   []string
	)

	for _, c := range decs {
		c = strings.TrimSpace(c)

		switch {
		case c == Prefix || strings.HasPrefix(c, Prefix+" "):
			line, found = c, true
		case strings.HasPrefix(c, "//go:"), !strings.HasPrefix(c, "//"):
		case commentText(c) == "":
		default:
			doc = append(doc, commentText(c))
		}
	}

	return line, strings.Join(doc, " "), found
}

func commentText(c string) string {
	return strings.TrimSpace(strings.TrimPrefix(c, "//"))
}

// parseLine reads "//constenum:enum Name key=value ...".
func parseLine(line string) (spec.EnumDef, error) {
	var def spec.EnumDef

	fields := strings.Fields(strings.TrimPrefix(line, Prefix))
	if len(fields) == 0 || strings.Contains(fields[0], "=") {
		return def, fmt.Errorf("%q: %w: enum name comes first", line, ErrSyntax)
	}

	def.Name = fields[0]

	for _, kv := range fields[1:] {
		key, value, ok := strings.Cut(kv, "=")
		if !ok || value == "" {
			return def, fmt.Errorf("%q: %w: expected key=value, got %q", line, ErrSyntax, kv)
		}

		switch key {
		case "container":
			def.Container = value
		case "field":
			def.Field = value
		case "type":
			def.Type = value
		case "super":
			def.Super = value
		case "range":
			r, err := spec.ParseRange(value)
			if err != nil {
				return def, fmt.Errorf("%q: %w", line, err)
			}

			def.Range = &r
		default:
			return def, fmt.Errorf("%q: %w %q", line, ErrUnknownKey, key)
		}
	}

	return def, nil
}

// constVariants turns each "Name = literal" of a const block into a variant.
func constVariants(gen *dst.GenDecl) (spec.Variants, error) {
	var out spec.Variants

	for _, s := range gen.Specs {
		vs, ok := s.(*dst.ValueSpec)
		if !ok {
			continue
		}

		if len(vs.Values) != len(vs.Names) {
			return nil, fmt.Errorf("%s: %w", vs.Names[0].Name, ErrValue)
		}

		doc := specDoc(vs)

		for i, name := range vs.Names {
			lit, ok := literal(vs.Values[i])
			if !ok {
				return nil, fmt.Errorf("%s: %w", name.Name, ErrValue)
			}

			out = append(out, spec.VariantDef{Name: name.Name, Value: lit, Doc: doc})
		}
	}

	return out, nil
}

func specDoc(vs *dst.ValueSpec) string {
	var doc []string

	for _, c := range append(slices.Clone(vs.Decs.Start), vs.Decs.End...) {
		if c = strings.TrimSpace(c); strings.HasPrefix(c, "//") && commentText(c) != "" {
			doc = append(doc, commentText(c))
		}
	}

	return strings.Join(doc, " ")
}

// literal accepts an integer literal with an optional sign, possibly in
// parentheses.
func literal(e dst.Expr) (spec.Literal, bool) {
	switch x := e.(type) {
	case *dst.BasicLit:
		if x.Kind != token.INT {
			return "", false
		}

		return spec.Literal(x.Value), true

	case *dst.UnaryExpr:
		if x.Op != token.SUB && x.Op != token.ADD {
			return "", false
		}

		inner, ok := literal(x.X)
		if !ok || strings.HasPrefix(string(inner), "-") {
			return "", false
		}

		if x.Op == token.SUB {
			return "-" + inner, true
		}

		return inner, true

	case *dst.ParenExpr:
		return literal(x.X)

	default:
		return "", false
	}
}
