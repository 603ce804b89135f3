package flags

import (
	"github.com/spf13/pflag"

	"lsg.dev/pkg/lsg/internal/config"
)

// ColorWhen controls when output is colorized.
type ColorWhen int

// Available ColorWhen values.
const (
	ColorAuto ColorWhen = iota
	ColorAlways
	ColorNever
)

func parseColorWhen(value string) (ColorWhen, bool) {
	switch value {
	case "auto":
		return ColorAuto, true
	case "always":
		return ColorAlways, true
	case "never":
		return ColorNever, true
	}

	return ColorAuto, false
}

func colorWhenFromArgs(fs *pflag.FlagSet) (ColorWhen, bool) {
	value, ok := stringArg(fs, "color")
	if !ok {
		return ColorAuto, false
	}

	return parseColorWhen(value)
}

func colorWhenFromConfig(cfg *config.Config) (ColorWhen, bool) {
	if cfg.Color == nil || cfg.Color.When == nil {
		return ColorAuto, false
	}

	when, ok := parseColorWhen(*cfg.Color.When)
	if !ok {
		reportBadValue(cfg, "color.when", *cfg.Color.When, "never, auto, always")
		return ColorAuto, false
	}

	return when, true
}

func defaultColorWhen() ColorWhen {
	return ColorAuto
}

// Color theme resolution is path-override only: the flag names a theme file
// and no partial overlay is applied, unlike icon themes.

func colorThemeFromArgs(fs *pflag.FlagSet) (string, bool) {
	return stringArg(fs, "color-theme")
}

func colorThemeFromConfig(*config.Config) (string, bool) {
	return "", false
}

func defaultColorTheme() string {
	return ""
}
