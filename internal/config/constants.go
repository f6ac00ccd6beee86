package config

import "strings"

const SourceFileExt = ".ql"

// SourceFileExtensions are all recognized source file extensions
var SourceFileExtensions = []string{".ql", ".quill"}

// Native function names seeded into the root scope
const (
	DebugFuncName = "debug"
	PrintFuncName = "print"
	LogFuncName   = "log"
	ListFuncName  = "list"
	RangeFuncName = "range"
)

// OptionsFileName is the per-project runtime options file.
const OptionsFileName = ".quill.yaml"

// HasSourceExt reports whether path ends in a recognized source extension.
func HasSourceExt(path string) bool {
	for _, ext := range SourceFileExtensions {
		if strings.HasSuffix(path, ext) {
			return true
		}
	}
	return false
}

// TrimSourceExt removes a recognized source extension from name, if any.
func TrimSourceExt(name string) string {
	for _, ext := range SourceFileExtensions {
		if strings.HasSuffix(name, ext) {
			return strings.TrimSuffix(name, ext)
		}
	}
	return name
}
