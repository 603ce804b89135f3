package flags

import (
	"github.com/spf13/pflag"

	"lsg.dev/pkg/lsg/internal/config"
)

// IconWhen controls when icons are printed.
type IconWhen int

// Available IconWhen values.
const (
	IconAuto IconWhen = iota
	IconAlways
	IconNever
)

// IconTheme names the glyph set icons are drawn from.
type IconTheme int

// Available IconTheme values.
const (
	IconThemeFancy IconTheme = iota
	IconThemeUnicode
)

func parseIconWhen(value string) (IconWhen, bool) {
	switch value {
	case "auto":
		return IconAuto, true
	case "always":
		return IconAlways, true
	case "never":
		return IconNever, true
	}

	return IconAuto, false
}

func iconWhenFromArgs(fs *pflag.FlagSet) (IconWhen, bool) {
	value, ok := stringArg(fs, "icon")
	if !ok {
		return IconAuto, false
	}

	return parseIconWhen(value)
}

func iconWhenFromConfig(cfg *config.Config) (IconWhen, bool) {
	if cfg.Icons == nil || cfg.Icons.When == nil {
		return IconAuto, false
	}

	when, ok := parseIconWhen(*cfg.Icons.When)
	if !ok {
		reportBadValue(cfg, "icons.when", *cfg.Icons.When, "always, auto, never")
		return IconAuto, false
	}

	return when, true
}

func defaultIconWhen() IconWhen {
	return IconAuto
}

func parseIconTheme(value string) (IconTheme, bool) {
	switch value {
	case "fancy":
		return IconThemeFancy, true
	case "unicode":
		return IconThemeUnicode, true
	}

	return IconThemeFancy, false
}

func iconThemeFromArgs(fs *pflag.FlagSet) (IconTheme, bool) {
	value, ok := stringArg(fs, "icon-theme")
	if !ok {
		return IconThemeFancy, false
	}

	return parseIconTheme(value)
}

func iconThemeFromConfig(cfg *config.Config) (IconTheme, bool) {
	if cfg.Icons == nil || cfg.Icons.Theme == nil {
		return IconThemeFancy, false
	}

	theme, ok := parseIconTheme(*cfg.Icons.Theme)
	if !ok {
		reportBadValue(cfg, "icons.theme", *cfg.Icons.Theme, "fancy, unicode")
		return IconThemeFancy, false
	}

	return theme, true
}

func defaultIconTheme() IconTheme {
	return IconThemeFancy
}
