package common

import (
	"path"
	"path/filepath"
	"strings"
)

// UnknownStr is the name printed for out-of-range enumerated values.
const UnknownStr = "unknown"

// EnumPkgPath is the import path of the runtime package generated code uses.
const EnumPkgPath = "constenum/enum"

// GeneratedSuffix ends the name of every file the generator writes.
const GeneratedSuffix = "_constenum.go"

// IsGenerated reports whether the file at path is generator output. Such
// files are rewritten on every run, so nothing declared in them is binding.
func IsGenerated(path string) bool {
	return strings.HasSuffix(filepath.Base(path), GeneratedSuffix)
}

// PkgAlias returns the package alias (last element of path) for a given package path.
// Returns empty string if pkgPath is empty.
func PkgAlias(pkgPath string) string {
	if pkgPath == "" {
		return ""
	}

	return path.Base(pkgPath)
}
