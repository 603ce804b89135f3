package display

import (
	"context"
	"math"
	"os"
	"path/filepath"
	"testing"

	"github.com/gobwas/glob"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"lsg.dev/pkg/lsg/internal/flags"
	"lsg.dev/pkg/lsg/internal/meta"
)

func writeFiles(t *testing.T, dir string, names ...string) {
	t.Helper()
	for _, name := range names {
		require.NoError(t, os.WriteFile(filepath.Join(dir, name), nil, 0o644))
	}
}

func defaultFlags() flags.Flags {
	return flags.Flags{
		Display:   flags.DisplayVisibleOnly,
		Layout:    flags.LayoutGrid,
		Recursion: flags.Recursion{Depth: math.MaxInt},
		Sorting:   flags.Sorting{Column: flags.SortName},
	}
}

func TestListHidesDotfilesByDefault(t *testing.T) {
	dir := t.TempDir()
	writeFiles(t, dir, "visible.txt", ".hidden")

	entries := NewLister(defaultFlags()).List(context.Background(), []string{dir})
	require.Len(t, entries, 1)

	assert.Equal(t, []string{"visible.txt"}, names(entries[0].Children))
}

func TestListAlmostAllShowsDotfiles(t *testing.T) {
	dir := t.TempDir()
	writeFiles(t, dir, "visible.txt", ".hidden")

	f := defaultFlags()
	f.Display = flags.DisplayAlmostAll

	entries := NewLister(f).List(context.Background(), []string{dir})
	require.Len(t, entries, 1)

	assert.Equal(t, []string{".hidden", "visible.txt"}, names(entries[0].Children))
}

func TestListAllIncludesDotAndDotDot(t *testing.T) {
	dir := t.TempDir()
	writeFiles(t, dir, "a.txt")

	f := defaultFlags()
	f.Display = flags.DisplayAll

	entries := NewLister(f).List(context.Background(), []string{dir})
	require.Len(t, entries, 1)

	assert.Equal(t, []string{".", "..", "a.txt"}, names(entries[0].Children))
}

func TestListDirectoryOnlyKeepsTheDirItself(t *testing.T) {
	dir := t.TempDir()
	writeFiles(t, dir, "a.txt")

	f := defaultFlags()
	f.Display = flags.DisplayDirectoryOnly

	entries := NewLister(f).List(context.Background(), []string{dir})
	require.Len(t, entries, 1)

	assert.Nil(t, entries[0].Children)
	assert.Equal(t, meta.TypeDir, entries[0].Name.FileType())
}

func TestListIgnoreGlobs(t *testing.T) {
	dir := t.TempDir()
	writeFiles(t, dir, "keep.go", "skip.log", "also.log")

	f := defaultFlags()
	f.IgnoreGlobs = []glob.Glob{glob.MustCompile("*.log")}

	entries := NewLister(f).List(context.Background(), []string{dir})
	require.Len(t, entries, 1)

	assert.Equal(t, []string{"keep.go"}, names(entries[0].Children))
}

func TestListInaccessiblePathIsSkipped(t *testing.T) {
	dir := t.TempDir()
	writeFiles(t, dir, "a.txt")

	entries := NewLister(defaultFlags()).List(context.Background(), []string{
		filepath.Join(dir, "does-not-exist"),
		dir,
	})

	require.Len(t, entries, 1)
	assert.Equal(t, dir, entries[0].Path)
}

func TestListTreeRecursesIntoSubdirectories(t *testing.T) {
	dir := t.TempDir()
	sub := filepath.Join(dir, "sub")
	require.NoError(t, os.Mkdir(sub, 0o755))
	writeFiles(t, dir, "top.txt")
	writeFiles(t, sub, "nested.txt")

	f := defaultFlags()
	f.Layout = flags.LayoutTree

	entries := NewLister(f).List(context.Background(), []string{dir})
	require.Len(t, entries, 1)
	require.Equal(t, []string{"sub", "top.txt"}, names(entries[0].Children))

	assert.Equal(t, []string{"nested.txt"}, names(entries[0].Children[0].Children))
}

func TestListRecursionDepthBound(t *testing.T) {
	dir := t.TempDir()
	level1 := filepath.Join(dir, "level1")
	level2 := filepath.Join(level1, "level2")
	require.NoError(t, os.MkdirAll(level2, 0o755))
	writeFiles(t, level2, "deep.txt")

	f := defaultFlags()
	f.Recursion = flags.Recursion{Enabled: true, Depth: 1}

	entries := NewLister(f).List(context.Background(), []string{dir})
	require.Len(t, entries, 1)
	require.Equal(t, []string{"level1"}, names(entries[0].Children))

	assert.Nil(t, entries[0].Children[0].Children)
}

func TestListDereferenceClassifiesTarget(t *testing.T) {
	dir := t.TempDir()
	target := filepath.Join(dir, "real.txt")
	require.NoError(t, os.WriteFile(target, []byte("x"), 0o644))
	link := filepath.Join(dir, "link")
	require.NoError(t, os.Symlink(target, link))

	f := defaultFlags()
	f.Dereference = true

	entries := NewLister(f).List(context.Background(), []string{link})
	require.Len(t, entries, 1)

	assert.Equal(t, meta.TypeFile, entries[0].Name.FileType())
}

func TestListSymlinkTargetRecorded(t *testing.T) {
	dir := t.TempDir()
	target := filepath.Join(dir, "real.txt")
	require.NoError(t, os.WriteFile(target, nil, 0o644))
	link := filepath.Join(dir, "link")
	require.NoError(t, os.Symlink(target, link))

	entries := NewLister(defaultFlags()).List(context.Background(), []string{link})
	require.Len(t, entries, 1)

	assert.Equal(t, target, entries[0].Target)
	assert.Equal(t, meta.TypeSymlinkFile, entries[0].Name.FileType())
}

func TestListEmptyPathsDefaultsToCwd(t *testing.T) {
	dir := t.TempDir()
	writeFiles(t, dir, "here.txt")
	oldWD, err := os.Getwd()
	require.NoError(t, err)
	require.NoError(t, os.Chdir(dir))
	t.Cleanup(func() { _ = os.Chdir(oldWD) })

	entries := NewLister(defaultFlags()).List(context.Background(), nil)
	require.Len(t, entries, 1)

	assert.Equal(t, []string{"here.txt"}, names(entries[0].Children))
}
