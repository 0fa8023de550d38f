package gen

import (
	"os"
	"path/filepath"
	"strings"
)

// writeDebugUnformatted writes unformatted code to a sidecar file next to the
// intended output. Failing to write it never changes the generation error.
func writeDebugUnformatted(outDir, filename string, content []byte) error {
	if outDir == "" || filename == "" {
		return nil
	}

	if err := os.MkdirAll(outDir, dirPerm); err != nil {
		return err
	}

	return os.WriteFile(filepath.Join(outDir, debugFilename(filename)), content, filePerm)
}

// debugFilename keeps a .go extension so editors highlight the sidecar.
// The leading underscore keeps it out of the package build.
func debugFilename(filename string) string {
	return "_" + strings.TrimSuffix(filename, ".go") + ".unformatted.go"
}
