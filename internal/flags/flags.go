// Package flags resolves every tunable option through its three layers:
// command-line arguments, the configuration document, and the built-in
// default, in that strict precedence order. Each option contributes one
// fromArgs reader, one fromConfig reader, and one total default; the
// resolver never fails, it only falls back a layer.
package flags

import (
	"github.com/gobwas/glob"
	"github.com/spf13/pflag"

	"lsg.dev/pkg/lsg/internal/config"
)

// Flags is the effective configuration for one invocation. Every field holds
// exactly one resolved value and the struct is never mutated after Resolve.
type Flags struct {
	Classic        bool
	Display        Display
	Blocks         []Block
	ColorWhen      ColorWhen
	ColorThemePath string
	Date           Date
	Dereference    bool
	IconWhen       IconWhen
	IconTheme      IconTheme
	IgnoreGlobs    []glob.Glob
	Indicators     bool
	Layout         Layout
	Long           bool
	Recursion      Recursion
	Size           SizeFormat
	Sorting        Sorting
	NoSymlink      bool
	TotalSize      bool
	SymlinkArrow   string
}

// resolve merges one option: an argument wins over the document, which wins
// over the default.
func resolve[T any](
	fs *pflag.FlagSet,
	cfg *config.Config,
	fromArgs func(*pflag.FlagSet) (T, bool),
	fromConfig func(*config.Config) (T, bool),
	def func() T,
) T {
	if fs != nil {
		if v, ok := fromArgs(fs); ok {
			return v
		}
	}

	if cfg != nil {
		if v, ok := fromConfig(cfg); ok {
			return v
		}
	}

	return def()
}

// Resolve produces the effective configuration from the parsed command line
// and the optional configuration document. Classic mode is expanded first:
// when active it rewrites the affected keys at the document layer, so an
// explicit argument still overrides it.
func Resolve(fs *pflag.FlagSet, cfg *config.Config) Flags {
	classic := resolve(fs, cfg, boolFromArgs("classic"), classicFromConfig, defaultFalse)
	if classic {
		cfg = classicOverlay(cfg)
	}

	return Flags{
		Classic:        classic,
		Display:        resolve(fs, cfg, displayFromArgs, displayFromConfig, defaultDisplay),
		Blocks:         resolve(fs, cfg, blocksFromArgs, blocksFromConfig, defaultBlocks),
		ColorWhen:      resolve(fs, cfg, colorWhenFromArgs, colorWhenFromConfig, defaultColorWhen),
		ColorThemePath: resolve(fs, cfg, colorThemeFromArgs, colorThemeFromConfig, defaultColorTheme),
		Date:           resolve(fs, cfg, dateFromArgs, dateFromConfig, defaultDate),
		Dereference:    resolve(fs, cfg, boolFromArgs("dereference"), boolFromConfig(func(c *config.Config) *bool { return c.Dereference }), defaultFalse),
		IconWhen:       resolve(fs, cfg, iconWhenFromArgs, iconWhenFromConfig, defaultIconWhen),
		IconTheme:      resolve(fs, cfg, iconThemeFromArgs, iconThemeFromConfig, defaultIconTheme),
		IgnoreGlobs:    resolve(fs, cfg, ignoreGlobsFromArgs, ignoreGlobsFromConfig, defaultIgnoreGlobs),
		Indicators:     resolve(fs, cfg, boolFromArgs("indicators"), boolFromConfig(func(c *config.Config) *bool { return c.Indicators }), defaultFalse),
		Layout:         resolve(fs, cfg, layoutFromArgs, layoutFromConfig, defaultLayout),
		Long:           resolve(fs, cfg, boolFromArgs("long"), noConfig[bool], defaultFalse),
		Recursion: Recursion{
			Enabled: resolve(fs, cfg, boolFromArgs("recursive"), recursionEnabledFromConfig, defaultFalse),
			Depth:   resolve(fs, cfg, depthFromArgs, depthFromConfig, defaultDepth),
		},
		Size: resolve(fs, cfg, sizeFromArgs, sizeFromConfig, defaultSize),
		Sorting: Sorting{
			Column:      resolve(fs, cfg, sortColumnFromArgs, sortColumnFromConfig, defaultSortColumn),
			Reverse:     resolve(fs, cfg, boolFromArgs("reverse"), boolFromConfig(func(c *config.Config) *bool { return sortingField(c).Reverse }), defaultFalse),
			DirGrouping: resolve(fs, cfg, dirGroupingFromArgs, dirGroupingFromConfig, defaultDirGrouping),
		},
		NoSymlink:    resolve(fs, cfg, boolFromArgs("no-symlink"), boolFromConfig(func(c *config.Config) *bool { return c.NoSymlink }), defaultFalse),
		TotalSize:    resolve(fs, cfg, boolFromArgs("total-size"), boolFromConfig(func(c *config.Config) *bool { return c.TotalSize }), defaultFalse),
		SymlinkArrow: resolve(fs, cfg, noArgs[string], symlinkArrowFromConfig, defaultSymlinkArrow),
	}
}

func classicFromConfig(cfg *config.Config) (bool, bool) {
	if cfg.Classic == nil {
		return false, false
	}

	return *cfg.Classic, true
}

// classicOverlay injects the classic-mode values at the document layer. The
// original document is copied, never mutated.
func classicOverlay(cfg *config.Config) *config.Config {
	out := config.Config{}
	if cfg != nil {
		out = *cfg
	}

	never := "never"
	date := "date"
	none := "none"

	out.Color = &config.Color{When: &never}
	out.Date = &date

	icons := config.Icons{When: &never}
	if cfg != nil && cfg.Icons != nil {
		icons.Theme = cfg.Icons.Theme
	}
	out.Icons = &icons

	sorting := config.Sorting{DirGrouping: &none}
	if cfg != nil && cfg.Sorting != nil {
		sorting.Column = cfg.Sorting.Column
		sorting.Reverse = cfg.Sorting.Reverse
	}
	out.Sorting = &sorting

	return &out
}

func defaultFalse() bool {
	return false
}

// noArgs is for options that cannot be set on the command line.
func noArgs[T any](*pflag.FlagSet) (T, bool) {
	var zero T
	return zero, false
}

// noConfig is for options that cannot come from the document layer.
func noConfig[T any](*config.Config) (T, bool) {
	var zero T
	return zero, false
}
