package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// Options are the runtime options read from .quill.yaml. Everything is
// optional; zero values mean defaults.
type Options struct {
	// Color controls diagnostic coloring: "auto" (default), "always",
	// "never".
	Color string `yaml:"color"`
	// Trace prints a per-run trace line (run id, stage timings) to
	// stderr.
	Trace bool `yaml:"trace"`
	// HistoryFile overrides the REPL history location.
	HistoryFile string `yaml:"history_file"`
}

func DefaultOptions() *Options {
	return &Options{Color: "auto"}
}

// LoadOptions reads an options file. A missing file is not an error; the
// defaults are returned.
func LoadOptions(path string) (*Options, error) {
	data, err := os.ReadFile(path)
	if errors.Is(err, os.ErrNotExist) {
		return DefaultOptions(), nil
	}
	if err != nil {
		return nil, err
	}
	opts := DefaultOptions()
	if err := yaml.Unmarshal(data, opts); err != nil {
		return nil, fmt.Errorf("parse %s: %w", path, err)
	}
	switch opts.Color {
	case "", "auto", "always", "never":
	default:
		return nil, fmt.Errorf("parse %s: invalid color %q", path, opts.Color)
	}
	if opts.Color == "" {
		opts.Color = "auto"
	}
	return opts, nil
}

// FindOptions looks for the options file next to the given source file,
// falling back to the working directory.
func FindOptions(sourcePath string) (*Options, error) {
	if sourcePath != "" {
		path := filepath.Join(filepath.Dir(sourcePath), OptionsFileName)
		if _, err := os.Stat(path); err == nil {
			return LoadOptions(path)
		}
	}
	return LoadOptions(OptionsFileName)
}
