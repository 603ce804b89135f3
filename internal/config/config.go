// Package config reads the optional persisted configuration document. Every
// field of the document is optional and unknown keys are ignored; a field of
// the wrong type is reported and left unset without discarding the rest of
// the document.
package config

import (
	"errors"
	"io/fs"
	"log/slog"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

const (
	confDir      = "lsg"
	confFileName = "config.yaml"
)

// Config is the raw configuration document. A nil pointer means the document
// does not set the field.
type Config struct {
	Classic      *bool      `yaml:"classic"`
	Blocks       []string   `yaml:"blocks"`
	Color        *Color     `yaml:"color"`
	Date         *string    `yaml:"date"`
	Dereference  *bool      `yaml:"dereference"`
	Display      *string    `yaml:"display"`
	Icons        *Icons     `yaml:"icons"`
	IgnoreGlobs  []string   `yaml:"ignore-globs"`
	Indicators   *bool      `yaml:"indicators"`
	Layout       *string    `yaml:"layout"`
	Recursion    *Recursion `yaml:"recursion"`
	Size         *string    `yaml:"size"`
	Sorting      *Sorting   `yaml:"sorting"`
	NoSymlink    *bool      `yaml:"no-symlink"`
	TotalSize    *bool      `yaml:"total-size"`
	SymlinkArrow *string    `yaml:"symlink-arrow"`

	// Origin is the file the document was read from, kept for diagnostics.
	Origin string `yaml:"-"`
}

// Color holds the color section of the document.
type Color struct {
	When *string `yaml:"when"`
}

// Icons holds the icons section of the document.
type Icons struct {
	When  *string `yaml:"when"`
	Theme *string `yaml:"theme"`
}

// Recursion holds the recursion section of the document.
type Recursion struct {
	Enabled *bool `yaml:"enabled"`
	Depth   *int  `yaml:"depth"`
}

// Sorting holds the sorting section of the document.
type Sorting struct {
	Column      *string `yaml:"column"`
	Reverse     *bool   `yaml:"reverse"`
	DirGrouping *string `yaml:"dir-grouping"`
}

// Parse decodes a document. Field-level type mismatches are reported once
// per offending key and the affected fields stay unset; any other decode
// error invalidates the whole document and yields nil.
func Parse(data []byte, origin string) *Config {
	var c Config
	if err := yaml.Unmarshal(data, &c); err != nil {
		var typeErr *yaml.TypeError
		if !errors.As(err, &typeErr) {
			slog.Warn("configuration file format error", "file", origin, "error", err)
			return nil
		}

		for _, detail := range typeErr.Errors {
			slog.Warn("ignoring configuration field", "file", origin, "error", detail)
		}
	}

	c.Origin = origin

	return &c
}

// ReadFile loads the document at path. A missing file is silent and yields
// no document; any other read failure is reported and yields no document.
func ReadFile(path string) *Config {
	data, err := os.ReadFile(path)
	if err != nil {
		if !errors.Is(err, fs.ErrNotExist) {
			slog.Warn("bad config file", "file", path, "error", err)
		}
		return nil
	}

	return Parse(data, path)
}

// DefaultPath returns the conventional location of the configuration
// document, or "" when the user configuration directory cannot be resolved.
func DefaultPath() string {
	dir, err := os.UserConfigDir()
	if err != nil {
		slog.Warn("cannot locate user configuration directory", "error", err)
		return ""
	}

	return filepath.Join(dir, confDir, confFileName)
}

// Read resolves the document for one invocation. An explicitly supplied
// override path is consulted first; without one the conventional per-user
// location is used. Either way, absence means no document.
func Read(override string) *Config {
	if override != "" {
		return ReadFile(override)
	}

	if path := DefaultPath(); path != "" {
		return ReadFile(path)
	}

	return nil
}
