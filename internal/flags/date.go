package flags

import (
	"strings"

	"github.com/spf13/pflag"

	"lsg.dev/pkg/lsg/internal/config"
)

// DateKind names the supported date column styles.
type DateKind int

// Available DateKind values.
const (
	DateDefault DateKind = iota
	DateRelative
	DateCustom
)

// Date controls how the date column is formatted. Layout carries the Go
// reference-time layout when the kind is DateCustom.
type Date struct {
	Kind   DateKind
	Layout string
}

func parseDate(value string) (Date, bool) {
	switch {
	case value == "date":
		return Date{Kind: DateDefault}, true
	case value == "relative":
		return Date{Kind: DateRelative}, true
	case strings.HasPrefix(value, "+"):
		return Date{Kind: DateCustom, Layout: strings.TrimPrefix(value, "+")}, true
	}

	return Date{}, false
}

func dateFromArgs(fs *pflag.FlagSet) (Date, bool) {
	value, ok := stringArg(fs, "date")
	if !ok {
		return Date{}, false
	}

	return parseDate(value)
}

func dateFromConfig(cfg *config.Config) (Date, bool) {
	if cfg.Date == nil {
		return Date{}, false
	}

	date, ok := parseDate(*cfg.Date)
	if !ok {
		reportBadValue(cfg, "date", *cfg.Date, "date, relative, +<layout>")
		return Date{}, false
	}

	return date, true
}

func defaultDate() Date {
	return Date{Kind: DateDefault}
}
