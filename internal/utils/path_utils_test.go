package utils

import (
	"os"
	"path/filepath"
	"testing"
)

func TestResolveSourcePath(t *testing.T) {
	dir := t.TempDir()
	plain := filepath.Join(dir, "script")
	if err := os.WriteFile(plain, nil, 0o644); err != nil {
		t.Fatal(err)
	}

	testCases := []struct {
		name string
		in   string
		want string
	}{
		{"with_extension", "fib.ql", "fib.ql"},
		{"alternate_extension", "fib.quill", "fib.quill"},
		{"without_extension", filepath.Join(dir, "fib"), filepath.Join(dir, "fib") + ".ql"},
		{"existing_plain_file", plain, plain},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			if got := ResolveSourcePath(tc.in); got != tc.want {
				t.Errorf("ResolveSourcePath(%q) = %q, want %q", tc.in, got, tc.want)
			}
		})
	}
}

func TestScriptName(t *testing.T) {
	if got := ScriptName("/tmp/demo/fib.ql"); got != "fib" {
		t.Errorf("ScriptName = %q, want fib", got)
	}
	if got := ScriptName("fib"); got != "fib" {
		t.Errorf("ScriptName = %q, want fib", got)
	}
}
