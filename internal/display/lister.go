// Package display walks the requested paths and renders the resulting
// entries according to the effective configuration.
package display

import (
	"context"
	"io/fs"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"golang.org/x/sync/errgroup"

	"lsg.dev/pkg/lsg/internal/flags"
	"lsg.dev/pkg/lsg/internal/meta"
)

// statWorkers bounds per-directory metadata collection.
const statWorkers = 8

// Entry is one renderable filesystem node. Children is populated for
// directories when the tree layout or recursion asks for it.
type Entry struct {
	Name     meta.Name
	Path     string
	Info     fs.FileInfo
	Target   string
	Children []Entry
}

// IsDir reports whether the entry renders as a directory.
func (e Entry) IsDir() bool {
	t := e.Name.FileType()
	return t == meta.TypeDir || t == meta.TypeSymlinkDir
}

// Lister collects, filters, and orders entries.
type Lister struct {
	flags flags.Flags
}

// NewLister builds a lister over the resolved configuration.
func NewLister(f flags.Flags) Lister {
	return Lister{flags: f}
}

// List returns the renderable entries for the given paths. An inaccessible
// path is reported and skipped; the listing itself never aborts.
func (l Lister) List(ctx context.Context, paths []string) []Entry {
	if len(paths) == 0 {
		paths = []string{"."}
	}

	out := make([]Entry, 0, len(paths))

	for _, path := range paths {
		entry, ok := l.entryAt(path)
		if !ok {
			continue
		}

		if entry.IsDir() && l.flags.Display != flags.DisplayDirectoryOnly {
			children, err := l.listDir(ctx, path, 1)
			if err != nil {
				slog.Warn("cannot read directory", "path", path, "error", err)
				continue
			}
			entry.Children = children
		}

		out = append(out, entry)
	}

	l.sortEntries(out)

	return out
}

// entryAt stats one path and classifies it. Dereferencing follows the link
// for classification but keeps the link name for display.
func (l Lister) entryAt(path string) (Entry, bool) {
	info, err := os.Lstat(path)
	if err != nil {
		slog.Warn("cannot access path", "path", path, "error", err)
		return Entry{}, false
	}

	if l.flags.Dereference && info.Mode()&fs.ModeSymlink != 0 {
		if resolved, err := os.Stat(path); err == nil {
			info = resolved
		}
	}

	entry := Entry{
		Name: meta.ForEntry(path, info),
		Path: path,
		Info: info,
	}

	if info.Mode()&fs.ModeSymlink != 0 {
		entry.Target, _ = os.Readlink(path)
	}

	return entry, true
}

func (l Lister) listDir(ctx context.Context, dir string, depth int) ([]Entry, error) {
	dirents, err := os.ReadDir(dir)
	if err != nil {
		return nil, err
	}

	names := make([]string, 0, len(dirents))
	if l.flags.Display == flags.DisplayAll {
		names = append(names, ".", "..")
	}
	for _, de := range dirents {
		if l.skip(de.Name()) {
			continue
		}
		names = append(names, de.Name())
	}

	entries := make([]Entry, len(names))

	group, _ := errgroup.WithContext(ctx)
	group.SetLimit(statWorkers)
	for idx, name := range names {
		idx, name := idx, name
		group.Go(func() error {
			entry, ok := l.entryAt(filepath.Join(dir, name))
			if ok {
				entries[idx] = entry
			}
			return nil
		})
	}
	_ = group.Wait()

	kept := entries[:0]
	for _, entry := range entries {
		if entry.Info != nil {
			kept = append(kept, entry)
		}
	}
	entries = kept

	l.sortEntries(entries)

	if l.recurseAt(depth) {
		for i := range entries {
			if entries[i].Name.FileType() != meta.TypeDir || entries[i].Name.String() == "." || entries[i].Name.String() == ".." {
				continue
			}
			children, err := l.listDir(ctx, entries[i].Path, depth+1)
			if err != nil {
				slog.Warn("cannot read directory", "path", entries[i].Path, "error", err)
				continue
			}
			entries[i].Children = children
		}
	}

	return entries, nil
}

// skip applies the display filter and the ignore globs to one base name.
func (l Lister) skip(name string) bool {
	if l.flags.Display == flags.DisplayVisibleOnly && strings.HasPrefix(name, ".") {
		return true
	}

	for _, g := range l.flags.IgnoreGlobs {
		if g.Match(name) {
			return true
		}
	}

	return false
}

func (l Lister) recurseAt(depth int) bool {
	if l.flags.Layout != flags.LayoutTree && !l.flags.Recursion.Enabled {
		return false
	}

	return depth < l.flags.Recursion.Depth
}
