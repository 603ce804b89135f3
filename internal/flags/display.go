package flags

import (
	"github.com/spf13/pflag"

	"lsg.dev/pkg/lsg/internal/config"
)

// Display selects which file system nodes to show.
type Display int

// Available Display values.
const (
	DisplayVisibleOnly Display = iota
	DisplayAll
	DisplayAlmostAll
	DisplayDirectoryOnly
)

func displayFromArgs(fs *pflag.FlagSet) (Display, bool) {
	switch {
	case changed(fs, "all"):
		return DisplayAll, true
	case changed(fs, "almost-all"):
		return DisplayAlmostAll, true
	case changed(fs, "directory-only"):
		return DisplayDirectoryOnly, true
	}

	return DisplayVisibleOnly, false
}

func displayFromConfig(cfg *config.Config) (Display, bool) {
	if cfg.Display == nil {
		return DisplayVisibleOnly, false
	}

	switch *cfg.Display {
	case "all":
		return DisplayAll, true
	case "almost-all":
		return DisplayAlmostAll, true
	case "directory-only":
		return DisplayDirectoryOnly, true
	}

	reportBadValue(cfg, "display", *cfg.Display, "all, almost-all, directory-only")

	return DisplayVisibleOnly, false
}

func defaultDisplay() Display {
	return DisplayVisibleOnly
}
