// Package main provides the CLI entrypoint for constenum.
//
// constenum generates closed enumerations over one integer field of a
// struct:
//   - Reads the enumerations from a YAML spec or from //constenum:enum
//     directives in the package
//   - Checks them against the package's types (go/packages)
//   - Generates the enumeration, its classifier and its reconstructors
//
// Commands: gen | check | scan
package main

import (
	"errors"
	"fmt"
	"io"
	"os"
)

var errUsage = errors.New("usage")

func main() {
	if err := run(os.Args[1:], os.Stdout, os.Stderr); err != nil {
		if !errors.Is(err, errUsage) {
			fmt.Fprintln(os.Stderr, "constenum:", err)
		}

		os.Exit(1)
	}
}

// run executes one command. Results go to stdout, logs to stderr.
func run(args []string, stdout, stderr io.Writer) error {
	if len(args) == 0 {
		usage(stderr)
		return errUsage
	}

	switch args[0] {
	case "gen":
		return runGen(args[1:], stdout, stderr)
	case "check":
		return runCheck(args[1:], stdout, stderr)
	case "scan":
		return runScan(args[1:], stdout, stderr)
	case "help", "-h", "-help", "--help":
		usage(stdout)
		return nil
	default:
		usage(stderr)
		return fmt.Errorf("unknown command %q: %w", args[0], errUsage)
	}
}

func usage(w io.Writer) {
	fmt.Fprint(w, `constenum - closed enumerations over an integer struct field

Usage:
  constenum gen   [-spec file.yaml] [-pkg pattern] [-out dir] [-dry-run] [flags]
  constenum check [-spec file.yaml] [-pkg pattern] [flags]
  constenum scan  [-pkg pattern] [-o file.yaml]

Without -spec, enumerations come from //constenum:enum directives in the
package. Run "constenum <command> -h" for the flags of a command.
`)
}
