package flags

import (
	"math"
	"strconv"

	"github.com/spf13/pflag"

	"lsg.dev/pkg/lsg/internal/config"
)

// Recursion holds the resolved recursion policy. Depth is math.MaxInt when
// unbounded.
type Recursion struct {
	Enabled bool
	Depth   int
}

func recursionEnabledFromConfig(cfg *config.Config) (bool, bool) {
	if cfg.Recursion == nil || cfg.Recursion.Enabled == nil {
		return false, false
	}

	return *cfg.Recursion.Enabled, true
}

func depthFromArgs(fs *pflag.FlagSet) (int, bool) {
	if !changed(fs, "depth") {
		return 0, false
	}

	depth, err := fs.GetInt("depth")
	if err != nil {
		return 0, false
	}

	return depth, true
}

func depthFromConfig(cfg *config.Config) (int, bool) {
	if cfg.Recursion == nil || cfg.Recursion.Depth == nil {
		return 0, false
	}

	depth := *cfg.Recursion.Depth
	if depth <= 0 {
		reportBadValue(cfg, "recursion.depth", strconv.Itoa(depth), "a positive integer")
		return 0, false
	}

	return depth, true
}

func defaultDepth() int {
	return math.MaxInt
}
