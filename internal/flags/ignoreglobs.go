package flags

import (
	"log/slog"

	"github.com/gobwas/glob"
	"github.com/spf13/pflag"

	"lsg.dev/pkg/lsg/internal/config"
)

// compileGlobs compiles a pattern list, skipping (and reporting) patterns
// that do not compile. A list that loses every pattern counts as absent.
func compileGlobs(patterns []string, origin string) ([]glob.Glob, bool) {
	globs := make([]glob.Glob, 0, len(patterns))
	for _, pattern := range patterns {
		g, err := glob.Compile(pattern)
		if err != nil {
			slog.Warn("ignoring invalid glob pattern", "source", origin, "pattern", pattern, "error", err)
			continue
		}
		globs = append(globs, g)
	}

	return globs, len(globs) > 0
}

func ignoreGlobsFromArgs(fs *pflag.FlagSet) ([]glob.Glob, bool) {
	if !changed(fs, "ignore-glob") {
		return nil, false
	}

	patterns, err := fs.GetStringArray("ignore-glob")
	if err != nil {
		return nil, false
	}

	return compileGlobs(patterns, "arguments")
}

func ignoreGlobsFromConfig(cfg *config.Config) ([]glob.Glob, bool) {
	if len(cfg.IgnoreGlobs) == 0 {
		return nil, false
	}

	return compileGlobs(cfg.IgnoreGlobs, cfg.Origin)
}

func defaultIgnoreGlobs() []glob.Glob {
	return nil
}
