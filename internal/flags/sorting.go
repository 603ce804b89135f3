package flags

import (
	"github.com/spf13/pflag"

	"lsg.dev/pkg/lsg/internal/config"
)

// SortColumn names the attribute entries are ordered by.
type SortColumn int

// Available SortColumn values.
const (
	SortName SortColumn = iota
	SortExtension
	SortTime
	SortSize
	SortVersion
)

// DirGrouping controls whether directories are grouped before or after
// everything else.
type DirGrouping int

// Available DirGrouping values.
const (
	GroupNone DirGrouping = iota
	GroupFirst
	GroupLast
)

// Sorting holds the resolved ordering policy.
type Sorting struct {
	Column      SortColumn
	Reverse     bool
	DirGrouping DirGrouping
}

func parseSortColumn(value string) (SortColumn, bool) {
	switch value {
	case "name":
		return SortName, true
	case "extension":
		return SortExtension, true
	case "time":
		return SortTime, true
	case "size":
		return SortSize, true
	case "version":
		return SortVersion, true
	}

	return SortName, false
}

func sortColumnFromArgs(fs *pflag.FlagSet) (SortColumn, bool) {
	value, ok := stringArg(fs, "sort")
	if !ok {
		return SortName, false
	}

	return parseSortColumn(value)
}

func sortColumnFromConfig(cfg *config.Config) (SortColumn, bool) {
	column := sortingField(cfg).Column
	if column == nil {
		return SortName, false
	}

	parsed, ok := parseSortColumn(*column)
	if !ok {
		reportBadValue(cfg, "sorting.column", *column, "extension, name, time, size, version")
		return SortName, false
	}

	return parsed, true
}

func defaultSortColumn() SortColumn {
	return SortName
}

func parseDirGrouping(value string) (DirGrouping, bool) {
	switch value {
	case "none":
		return GroupNone, true
	case "first":
		return GroupFirst, true
	case "last":
		return GroupLast, true
	}

	return GroupNone, false
}

func dirGroupingFromArgs(fs *pflag.FlagSet) (DirGrouping, bool) {
	value, ok := stringArg(fs, "group-dirs")
	if !ok {
		return GroupNone, false
	}

	return parseDirGrouping(value)
}

func dirGroupingFromConfig(cfg *config.Config) (DirGrouping, bool) {
	grouping := sortingField(cfg).DirGrouping
	if grouping == nil {
		return GroupNone, false
	}

	parsed, ok := parseDirGrouping(*grouping)
	if !ok {
		reportBadValue(cfg, "sorting.dir-grouping", *grouping, "first, last, none")
		return GroupNone, false
	}

	return parsed, true
}

func defaultDirGrouping() DirGrouping {
	return GroupNone
}
