package flags

import (
	"log/slog"

	"lsg.dev/pkg/lsg/internal/config"
)

// boolFromConfig builds the document reader for a plain bool option. Type
// mismatches for bools are already isolated at document parse time, so a
// present pointer is always usable.
func boolFromConfig(pick func(*config.Config) *bool) func(*config.Config) (bool, bool) {
	return func(cfg *config.Config) (bool, bool) {
		v := pick(cfg)
		if v == nil {
			return false, false
		}

		return *v, true
	}
}

// sortingField returns the sorting section, substituting an empty one so
// pickers stay nil-safe.
func sortingField(cfg *config.Config) *config.Sorting {
	if cfg.Sorting == nil {
		return &config.Sorting{}
	}

	return cfg.Sorting
}

// reportBadValue is the single user-facing report for a document field whose
// value matches none of the accepted ones. The field then falls through to
// the next layer.
func reportBadValue(cfg *config.Config, key, value, accepted string) {
	slog.Warn("ignoring configuration value",
		"file", cfg.Origin,
		"key", key,
		"value", value,
		"accepted", accepted,
	)
}
