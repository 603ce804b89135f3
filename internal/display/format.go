package display

import (
	"fmt"
	"io/fs"
	"math"
	"path/filepath"
	"strconv"
	"time"

	"github.com/dustin/go-humanize"

	"lsg.dev/pkg/lsg/internal/flags"
	"lsg.dev/pkg/lsg/internal/meta"
)

const defaultDateLayout = "Jan _2 15:04"

func (r Renderer) dateString(t time.Time) string {
	switch r.flags.Date.Kind {
	case flags.DateRelative:
		return relative(time.Since(t))
	case flags.DateCustom:
		return t.Format(r.flags.Date.Layout)
	default:
		return t.Format(defaultDateLayout)
	}
}

// relativeMagnitudes spell out the date column's coarse buckets: anything
// under a minute is "just now", months are 30 days, years 365.
var relativeMagnitudes = []humanize.RelTimeMagnitude{
	{D: time.Minute, Format: "just now", DivBy: time.Second},
	{D: 2 * time.Minute, Format: "1 minute %s", DivBy: 1},
	{D: time.Hour, Format: "%d minutes %s", DivBy: time.Minute},
	{D: 2 * time.Hour, Format: "1 hour %s", DivBy: 1},
	{D: 24 * time.Hour, Format: "%d hours %s", DivBy: time.Hour},
	{D: 2 * 24 * time.Hour, Format: "1 day %s", DivBy: 1},
	{D: 30 * 24 * time.Hour, Format: "%d days %s", DivBy: 24 * time.Hour},
	{D: 2 * 30 * 24 * time.Hour, Format: "1 month %s", DivBy: 1},
	{D: 365 * 24 * time.Hour, Format: "%d months %s", DivBy: 30 * 24 * time.Hour},
	{D: 2 * 365 * 24 * time.Hour, Format: "1 year %s", DivBy: 1},
	{D: math.MaxInt64, Format: "%d years %s", DivBy: 365 * 24 * time.Hour},
}

func relative(d time.Duration) string {
	now := time.Now()
	return humanize.CustomRelTime(now.Add(-d), now, "ago", "from now", relativeMagnitudes)
}

func (r Renderer) sizeString(entry Entry) string {
	size := entry.Info.Size()
	if r.flags.TotalSize && entry.Name.FileType() == meta.TypeDir {
		size = dirSize(entry.Path)
	}

	switch r.flags.Size {
	case flags.SizeBytes:
		return strconv.FormatInt(size, 10)
	case flags.SizeShort:
		return humanSize(size, "%.0f%s", "")
	default:
		return humanSize(size, "%.1f %s", "B")
	}
}

func humanSize(size int64, format, byteSuffix string) string {
	const step = 1024.0

	units := []string{"K", "M", "G", "T", "P"}
	value := float64(size)

	if value < step {
		if byteSuffix == "" {
			return strconv.FormatInt(size, 10)
		}
		return fmt.Sprintf("%d %s", size, byteSuffix)
	}

	unit := ""
	for _, u := range units {
		value /= step
		unit = u
		if value < step {
			break
		}
	}

	return fmt.Sprintf(format, value, unit+byteSuffix)
}

// dirSize walks a directory adding up regular file sizes. Unreadable
// subtrees contribute what could be read.
func dirSize(path string) int64 {
	var total int64

	_ = filepath.WalkDir(path, func(_ string, d fs.DirEntry, err error) error {
		if err != nil {
			return nil
		}
		if info, err := d.Info(); err == nil && info.Mode().IsRegular() {
			total += info.Size()
		}
		return nil
	})

	return total
}
