// Package theme provides the icon lookup tables: two compiled-in glyph sets
// and an optional user override document that is overlaid on the fancy set
// key by key.
package theme

import (
	"errors"
	"io/fs"
	"log/slog"
	"maps"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"

	"lsg.dev/pkg/lsg/internal/flags"
)

const (
	themeDir      = "lsg"
	themeFileName = "icons.yaml"
)

// FileTypeIcons holds one glyph per file type category. The struct form
// keeps the set exhaustive: a compiled table cannot omit a category.
type FileTypeIcons struct {
	File        string `yaml:"file"`
	Executable  string `yaml:"executable"`
	Dir         string `yaml:"dir"`
	SymlinkFile string `yaml:"symlink-file"`
	SymlinkDir  string `yaml:"symlink-dir"`
	Socket      string `yaml:"socket"`
	Pipe        string `yaml:"pipe"`
	CharDevice  string `yaml:"device-char"`
	BlockDevice string `yaml:"device-block"`
	Special     string `yaml:"special"`
}

// IconTheme maps a file's category, lowercase name, or lowercase extension
// to a glyph. It is immutable once loaded and safe for concurrent lookups.
type IconTheme struct {
	ByFileType  FileTypeIcons     `yaml:"icons-by-filetype"`
	ByName      map[string]string `yaml:"icons-by-name"`
	ByExtension map[string]string `yaml:"icons-by-extension"`
}

// Overlay applies the entries of override on top of t, key by key. Entries
// the override does not specify keep their base values, so the result stays
// exhaustive over file type categories.
func (t IconTheme) Overlay(override IconTheme) IconTheme {
	out := IconTheme{
		ByFileType:  t.ByFileType,
		ByName:      maps.Clone(t.ByName),
		ByExtension: maps.Clone(t.ByExtension),
	}
	if out.ByName == nil {
		out.ByName = map[string]string{}
	}
	if out.ByExtension == nil {
		out.ByExtension = map[string]string{}
	}

	overlayFileTypes(&out.ByFileType, override.ByFileType)

	for name, icon := range override.ByName {
		out.ByName[strings.ToLower(name)] = icon
	}
	for ext, icon := range override.ByExtension {
		out.ByExtension[strings.ToLower(ext)] = icon
	}

	return out
}

func overlayFileTypes(base *FileTypeIcons, override FileTypeIcons) {
	apply := func(dst *string, src string) {
		if src != "" {
			*dst = src
		}
	}

	apply(&base.File, override.File)
	apply(&base.Executable, override.Executable)
	apply(&base.Dir, override.Dir)
	apply(&base.SymlinkFile, override.SymlinkFile)
	apply(&base.SymlinkDir, override.SymlinkDir)
	apply(&base.Socket, override.Socket)
	apply(&base.Pipe, override.Pipe)
	apply(&base.CharDevice, override.CharDevice)
	apply(&base.BlockDevice, override.BlockDevice)
	apply(&base.Special, override.Special)
}

// defaultThemePath returns the conventional location of the user's icon
// theme override, or "" when the configuration directory is unavailable.
func defaultThemePath() string {
	dir, err := os.UserConfigDir()
	if err != nil {
		return ""
	}

	return filepath.Join(dir, themeDir, themeFileName)
}

// LoadIcons builds the icon table for the resolved theme choice. The
// unicode set never consults external files. The fancy set tries a user
// override at overridePath (the conventional location when empty); a
// missing override is silent, a malformed one is reported, and both leave
// the compiled table in full effect.
func LoadIcons(choice flags.IconTheme, overridePath string) IconTheme {
	if choice == flags.IconThemeUnicode {
		return Unicode()
	}

	base := Fancy()

	path := overridePath
	if path == "" {
		path = defaultThemePath()
	}
	if path == "" {
		return base
	}

	data, err := os.ReadFile(path)
	if err != nil {
		if !errors.Is(err, fs.ErrNotExist) {
			slog.Warn("bad icon theme file", "file", path, "error", err)
		}
		return base
	}

	var override IconTheme
	if err := yaml.Unmarshal(data, &override); err != nil {
		slog.Warn("icon theme format error", "file", path, "error", err)
		return base
	}

	return base.Overlay(override)
}
