package flags

import (
	"github.com/spf13/pflag"

	"lsg.dev/pkg/lsg/internal/config"
)

// SizeFormat selects how the size column is rendered.
type SizeFormat int

// Available SizeFormat values.
const (
	SizeDefault SizeFormat = iota
	SizeShort
	SizeBytes
)

func parseSize(value string) (SizeFormat, bool) {
	switch value {
	case "default":
		return SizeDefault, true
	case "short":
		return SizeShort, true
	case "bytes":
		return SizeBytes, true
	}

	return SizeDefault, false
}

func sizeFromArgs(fs *pflag.FlagSet) (SizeFormat, bool) {
	value, ok := stringArg(fs, "size")
	if !ok {
		return SizeDefault, false
	}

	return parseSize(value)
}

func sizeFromConfig(cfg *config.Config) (SizeFormat, bool) {
	if cfg.Size == nil {
		return SizeDefault, false
	}

	size, ok := parseSize(*cfg.Size)
	if !ok {
		reportBadValue(cfg, "size", *cfg.Size, "default, short, bytes")
		return SizeDefault, false
	}

	return size, true
}

func defaultSize() SizeFormat {
	return SizeDefault
}
