package main

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"path/filepath"
	"strings"

	"github.com/sirupsen/logrus"

	"constenum/internal/analyze"
	"constenum/internal/directive"
	"constenum/internal/gen"
	"constenum/internal/plan"
	"constenum/internal/spec"
)

// inputFlags select the package and the source of its enumerations.
type inputFlags struct {
	specPath   string
	pattern    string
	tags       string
	strict     bool
	allowMulti bool
	verbose    bool
}

func (in *inputFlags) register(fs *flag.FlagSet) {
	fs.StringVar(&in.specPath, "spec", "", "YAML spec file (default: //constenum:enum directives of the package)")
	fs.StringVar(&in.pattern, "pkg", ".", "package holding the containers")
	fs.StringVar(&in.tags, "tags", "", "comma-separated build tags used to load the package")
	fs.BoolVar(&in.strict, "strict", false, "treat warnings as errors")
	fs.BoolVar(&in.allowMulti, "allow-multi-field", false, "do not warn about containers with several fields")
	fs.BoolVar(&in.verbose, "v", false, "debug logging (also "+debugEnv+"=1)")
}

func newFlagSet(name string, stderr io.Writer) *flag.FlagSet {
	fs := flag.NewFlagSet(name, flag.ContinueOnError)
	fs.SetOutput(stderr)

	return fs
}

// loadPackage analyzes the single package the pattern names.
func (in *inputFlags) loadPackage(log *logrus.Logger) (*analyze.TypeGraph, *analyze.PackageInfo, error) {
	analyzer := analyze.NewAnalyzer()
	if in.tags != "" {
		analyzer.Tags = strings.Split(in.tags, ",")
	}

	log.WithField("pkg", in.pattern).Debug("loading package")

	graph, err := analyzer.LoadPackages(in.pattern)
	if err != nil {
		return nil, nil, err
	}

	if len(graph.Packages) != 1 {
		return nil, nil, fmt.Errorf("pattern %q matches %d packages, want one", in.pattern, len(graph.Packages))
	}

	for _, pkg := range graph.Packages {
		log.WithFields(logrus.Fields{"path": pkg.Path, "dir": pkg.Dir, "types": len(pkg.Types)}).Debug("package loaded")

		for _, e := range pkg.TypeErrors {
			log.WithField("pkg", pkg.Path).Debug("type error: " + e)
		}

		return graph, pkg, nil
	}

	return nil, nil, errors.New("unreachable")
}

// loadSpec reads the YAML spec, or the directives of the package directory.
func (in *inputFlags) loadSpec(log *logrus.Logger, dir string) (*spec.File, error) {
	if in.specPath != "" {
		log.WithField("spec", in.specPath).Debug("reading spec")
		return spec.LoadFile(in.specPath)
	}

	f, files, err := directive.ScanDir(dir)
	if err != nil {
		return nil, err
	}

	if len(files) == 0 {
		return nil, fmt.Errorf("no -spec given and no %s directives in %s", directive.Prefix, dir)
	}

	log.WithField("files", files).Debug("read directives")

	return f, nil
}

// resolve runs the pipeline up to the plan and logs its diagnostics.
func (in *inputFlags) resolve(log *logrus.Logger) (*plan.ResolvedPlan, error) {
	graph, pkg, err := in.loadPackage(log)
	if err != nil {
		return nil, err
	}

	file, err := in.loadSpec(log, pkg.Dir)
	if err != nil {
		return nil, err
	}

	cfg := plan.DefaultConfig()
	cfg.StrictMode = in.strict
	cfg.AllowMultiField = in.allowMulti

	p, err := plan.NewResolver(graph, pkg.Path, file, cfg).Resolve()
	if p != nil {
		logDiagnostics(log, &p.Diagnostics)
	}

	if err != nil {
		return nil, err
	}

	if p.HasErrors() {
		return nil, fmt.Errorf("spec has %d error(s)", len(p.Diagnostics.Errors))
	}

	return p, nil
}

func runGen(args []string, stdout, stderr io.Writer) error {
	var (
		in         inputFlags
		outDir     string
		dryRun     bool
		noComments bool
	)

	fs := newFlagSet("gen", stderr)
	in.register(fs)
	fs.StringVar(&outDir, "out", "", "output directory (default: the package directory)")
	fs.BoolVar(&dryRun, "dry-run", false, "print the generated code instead of writing it")
	fs.BoolVar(&noComments, "no-comments", false, "omit doc comments on generated methods")

	if err := fs.Parse(args); err != nil {
		return errUsage
	}

	log := newLogger(stderr, in.verbose)

	p, err := in.resolve(log)
	if err != nil {
		return err
	}

	if outDir == "" {
		outDir = p.Dir
	}

	cfg := gen.DefaultGeneratorConfig()
	cfg.OutputDir = outDir
	cfg.GenerateComments = !noComments

	files, err := gen.NewGenerator(cfg).Generate(p)
	if err != nil {
		return err
	}

	if dryRun {
		for _, f := range files {
			fmt.Fprintf(stdout, "// %s\n%s\n", f.Filename, f.Content)
		}

		return nil
	}

	if err := gen.WriteFiles(files, outDir); err != nil {
		return err
	}

	for _, f := range files {
		log.WithField("file", filepath.Join(outDir, f.Filename)).Info("generated")
	}

	return nil
}

func runCheck(args []string, stdout, stderr io.Writer) error {
	var in inputFlags

	fs := newFlagSet("check", stderr)
	in.register(fs)

	if err := fs.Parse(args); err != nil {
		return errUsage
	}

	log := newLogger(stderr, in.verbose)

	p, err := in.resolve(log)
	if err != nil {
		return err
	}

	for _, e := range p.Enums {
		fmt.Fprintf(stdout, "%s: %d variants over %s.%s (%s)\n",
			e.Name, len(e.Variants), e.Container, e.Field, e.RawType())
	}

	return nil
}

func runScan(args []string, stdout, stderr io.Writer) error {
	var (
		in  inputFlags
		out string
	)

	fs := newFlagSet("scan", stderr)
	fs.StringVar(&in.pattern, "pkg", ".", "package holding the directives")
	fs.StringVar(&out, "o", "", "write the YAML spec to this file instead of stdout")
	fs.BoolVar(&in.verbose, "v", false, "debug logging")

	if err := fs.Parse(args); err != nil {
		return errUsage
	}

	log := newLogger(stderr, in.verbose)

	_, pkg, err := in.loadPackage(log)
	if err != nil {
		return err
	}

	f, err := in.loadSpec(log, pkg.Dir)
	if err != nil {
		return err
	}

	if out != "" {
		if err := spec.WriteFile(f, out); err != nil {
			return err
		}

		log.WithFields(logrus.Fields{"file": out, "enums": len(f.Enums)}).Info("spec written")

		return nil
	}

	data, err := spec.Marshal(f)
	if err != nil {
		return err
	}

	_, err = stdout.Write(data)

	return err
}
