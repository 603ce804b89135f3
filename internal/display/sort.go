package display

import (
	"sort"
	"strings"

	"lsg.dev/pkg/lsg/internal/flags"
)

// sortEntries orders entries in place according to the resolved sorting
// policy. Directory grouping is applied outside the reversal: `--reverse`
// flips the column order, not which group comes first.
func (l Lister) sortEntries(entries []Entry) {
	sorting := l.flags.Sorting

	sort.SliceStable(entries, func(i, j int) bool {
		a, b := entries[i], entries[j]

		if sorting.DirGrouping != flags.GroupNone && a.IsDir() != b.IsDir() {
			if sorting.DirGrouping == flags.GroupFirst {
				return a.IsDir()
			}
			return b.IsDir()
		}

		less := columnLess(sorting.Column, a, b)
		if sorting.Reverse {
			return !less && !columnEqual(sorting.Column, a, b)
		}

		return less
	})
}

func columnLess(column flags.SortColumn, a, b Entry) bool {
	switch column {
	case flags.SortExtension:
		ea, _ := a.Name.Extension()
		eb, _ := b.Name.Extension()
		if ea != eb {
			return strings.ToLower(ea) < strings.ToLower(eb)
		}
	case flags.SortTime:
		ta, tb := a.Info.ModTime(), b.Info.ModTime()
		if !ta.Equal(tb) {
			return ta.After(tb)
		}
	case flags.SortSize:
		if a.Info.Size() != b.Info.Size() {
			return a.Info.Size() > b.Info.Size()
		}
	case flags.SortVersion:
		if c := natCompare(a.Name.Lower(), b.Name.Lower()); c != 0 {
			return c < 0
		}
	}

	return nameLess(a, b)
}

func columnEqual(column flags.SortColumn, a, b Entry) bool {
	return !columnLess(column, a, b) && !columnLess(column, b, a)
}

func nameLess(a, b Entry) bool {
	la, lb := a.Name.Lower(), b.Name.Lower()
	if la != lb {
		return la < lb
	}

	return a.Name.String() < b.Name.String()
}

// natCompare compares two strings treating digit runs as numbers, so
// "file2" sorts before "file10".
func natCompare(a, b string) int {
	for len(a) > 0 && len(b) > 0 {
		if isDigit(a[0]) && isDigit(b[0]) {
			na, ra := digitRun(a)
			nb, rb := digitRun(b)
			if na != nb {
				if len(na) != len(nb) {
					if len(na) < len(nb) {
						return -1
					}
					return 1
				}
				if na < nb {
					return -1
				}
				return 1
			}
			a, b = ra, rb
			continue
		}

		if a[0] != b[0] {
			if a[0] < b[0] {
				return -1
			}
			return 1
		}
		a, b = a[1:], b[1:]
	}

	switch {
	case len(a) == len(b):
		return 0
	case len(a) < len(b):
		return -1
	default:
		return 1
	}
}

func isDigit(c byte) bool {
	return c >= '0' && c <= '9'
}

// digitRun splits a leading digit run, trimmed of leading zeros, from the
// rest of the string.
func digitRun(s string) (string, string) {
	i := 0
	for i < len(s) && isDigit(s[i]) {
		i++
	}

	run := strings.TrimLeft(s[:i], "0")
	if run == "" {
		run = "0"
	}

	return run, s[i:]
}
