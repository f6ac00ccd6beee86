package utils

import (
	"os"
	"path/filepath"

	"github.com/quill-lang/quill/internal/config"
)

// ResolveSourcePath maps a user-supplied script argument to a file path.
// A path that already carries a source extension, or that names an
// existing file, is returned as is; otherwise the default extension is
// appended. "fib" resolves to "fib.ql" when no plain "fib" file exists.
func ResolveSourcePath(path string) string {
	if config.HasSourceExt(path) {
		return path
	}
	if _, err := os.Stat(path); err == nil {
		return path
	}
	return path + config.SourceFileExt
}

// ScriptName derives a display name from a source path: the base filename
// without its source extension.
func ScriptName(path string) string {
	return config.TrimSourceExt(filepath.Base(path))
}
