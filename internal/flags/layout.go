package flags

import (
	"github.com/spf13/pflag"

	"lsg.dev/pkg/lsg/internal/config"
)

// Layout selects how entries are arranged on screen.
type Layout int

// Available Layout values.
const (
	LayoutGrid Layout = iota
	LayoutTree
	LayoutOneline
)

func layoutFromArgs(fs *pflag.FlagSet) (Layout, bool) {
	switch {
	case changed(fs, "tree"):
		return LayoutTree, true
	case changed(fs, "oneline"):
		return LayoutOneline, true
	}

	return LayoutGrid, false
}

func layoutFromConfig(cfg *config.Config) (Layout, bool) {
	if cfg.Layout == nil {
		return LayoutGrid, false
	}

	switch *cfg.Layout {
	case "grid":
		return LayoutGrid, true
	case "tree":
		return LayoutTree, true
	case "oneline":
		return LayoutOneline, true
	}

	reportBadValue(cfg, "layout", *cfg.Layout, "grid, tree, oneline")

	return LayoutGrid, false
}

func defaultLayout() Layout {
	return LayoutGrid
}
