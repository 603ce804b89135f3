package flags

import "lsg.dev/pkg/lsg/internal/config"

// The symlink arrow has no command-line flag: it comes from the document or
// the default only.

func symlinkArrowFromConfig(cfg *config.Config) (string, bool) {
	if cfg.SymlinkArrow == nil {
		return "", false
	}

	return *cfg.SymlinkArrow, true
}

func defaultSymlinkArrow() string {
	return "⇒"
}
