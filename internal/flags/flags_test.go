package flags

import (
	"math"
	"testing"

	"github.com/spf13/pflag"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"lsg.dev/pkg/lsg/internal/config"
)

func ptr[T any](v T) *T {
	return &v
}

// newTestFlagSet mirrors the listing flag surface well enough for the
// resolvers: they only look at presence and string values.
func newTestFlagSet() *pflag.FlagSet {
	fs := pflag.NewFlagSet("lsg", pflag.ContinueOnError)

	fs.Bool("classic", false, "")
	fs.Bool("all", false, "")
	fs.Bool("almost-all", false, "")
	fs.Bool("directory-only", false, "")
	fs.String("color", "auto", "")
	fs.String("color-theme", "", "")
	fs.String("date", "date", "")
	fs.Bool("dereference", false, "")
	fs.String("icon", "auto", "")
	fs.String("icon-theme", "fancy", "")
	fs.StringArray("ignore-glob", nil, "")
	fs.Bool("indicators", false, "")
	fs.Bool("long", false, "")
	fs.Bool("oneline", false, "")
	fs.Bool("tree", false, "")
	fs.StringSlice("blocks", nil, "")
	fs.Bool("recursive", false, "")
	fs.Int("depth", 0, "")
	fs.String("size", "default", "")
	fs.String("sort", "name", "")
	fs.Bool("reverse", false, "")
	fs.String("group-dirs", "none", "")
	fs.Bool("no-symlink", false, "")
	fs.Bool("total-size", false, "")

	return fs
}

func parseArgs(t *testing.T, args ...string) *pflag.FlagSet {
	t.Helper()

	fs := newTestFlagSet()
	require.NoError(t, fs.Parse(args))

	return fs
}

func TestResolveDefaults(t *testing.T) {
	resolved := Resolve(parseArgs(t), nil)

	assert.False(t, resolved.Classic)
	assert.Equal(t, DisplayVisibleOnly, resolved.Display)
	assert.Equal(t, ColorAuto, resolved.ColorWhen)
	assert.Equal(t, Date{Kind: DateDefault}, resolved.Date)
	assert.Equal(t, IconAuto, resolved.IconWhen)
	assert.Equal(t, IconThemeFancy, resolved.IconTheme)
	assert.Equal(t, LayoutGrid, resolved.Layout)
	assert.False(t, resolved.Recursion.Enabled)
	assert.Equal(t, math.MaxInt, resolved.Recursion.Depth)
	assert.Equal(t, SizeDefault, resolved.Size)
	assert.Equal(t, Sorting{Column: SortName, Reverse: false, DirGrouping: GroupNone}, resolved.Sorting)
	assert.Equal(t, "⇒", resolved.SymlinkArrow)
	assert.Equal(t, []Block{BlockPermission, BlockUser, BlockGroup, BlockSize, BlockDate, BlockName}, resolved.Blocks)
	assert.Empty(t, resolved.IgnoreGlobs)
}

func TestResolveDocumentOverDefault(t *testing.T) {
	cfg := &config.Config{
		Display: ptr("almost-all"),
		Color:   &config.Color{When: ptr("always")},
		Layout:  ptr("oneline"),
		Sorting: &config.Sorting{Column: ptr("size"), Reverse: ptr(true)},
	}

	resolved := Resolve(parseArgs(t), cfg)

	assert.Equal(t, DisplayAlmostAll, resolved.Display)
	assert.Equal(t, ColorAlways, resolved.ColorWhen)
	assert.Equal(t, LayoutOneline, resolved.Layout)
	assert.Equal(t, SortSize, resolved.Sorting.Column)
	assert.True(t, resolved.Sorting.Reverse)
}

func TestResolveArgumentsOverDocument(t *testing.T) {
	cfg := &config.Config{
		Display: ptr("almost-all"),
		Color:   &config.Color{When: ptr("always")},
		Sorting: &config.Sorting{Column: ptr("size")},
	}

	fs := parseArgs(t, "--all", "--color", "never", "--sort", "time")
	resolved := Resolve(fs, cfg)

	assert.Equal(t, DisplayAll, resolved.Display)
	assert.Equal(t, ColorNever, resolved.ColorWhen)
	assert.Equal(t, SortTime, resolved.Sorting.Column)
}

func TestResolveExplicitFalseArgumentWins(t *testing.T) {
	cfg := &config.Config{Indicators: ptr(true)}

	resolved := Resolve(parseArgs(t, "--indicators=false"), cfg)

	assert.False(t, resolved.Indicators)
}

func TestResolveClassicForcesDocumentLayer(t *testing.T) {
	cfg := &config.Config{
		Classic: ptr(true),
		Color:   &config.Color{When: ptr("always")},
		Icons:   &config.Icons{When: ptr("always"), Theme: ptr("unicode")},
		Sorting: &config.Sorting{DirGrouping: ptr("first")},
		Date:    ptr("relative"),
	}

	resolved := Resolve(parseArgs(t), cfg)

	assert.True(t, resolved.Classic)
	assert.Equal(t, ColorNever, resolved.ColorWhen)
	assert.Equal(t, IconNever, resolved.IconWhen)
	assert.Equal(t, GroupNone, resolved.Sorting.DirGrouping)
	assert.Equal(t, Date{Kind: DateDefault}, resolved.Date)
	// Classic changes when icons print, not which glyph set is used.
	assert.Equal(t, IconThemeUnicode, resolved.IconTheme)
}

func TestResolveClassicFromArgs(t *testing.T) {
	resolved := Resolve(parseArgs(t, "--classic"), nil)

	assert.True(t, resolved.Classic)
	assert.Equal(t, ColorNever, resolved.ColorWhen)
	assert.Equal(t, IconNever, resolved.IconWhen)
}

func TestResolveArgumentOverridesClassic(t *testing.T) {
	cfg := &config.Config{Classic: ptr(true)}

	resolved := Resolve(parseArgs(t, "--color", "always"), cfg)

	assert.True(t, resolved.Classic)
	assert.Equal(t, ColorAlways, resolved.ColorWhen)
	assert.Equal(t, IconNever, resolved.IconWhen)
}

func TestResolveMalformedFieldIsolation(t *testing.T) {
	// A wrongly typed classic does not take the rest of the document down.
	cfg := config.Parse([]byte("classic: notabool\nicons:\n  theme: unicode\n"), "test")
	require.NotNil(t, cfg)

	resolved := Resolve(parseArgs(t), cfg)

	assert.False(t, resolved.Classic)
	assert.Equal(t, IconThemeUnicode, resolved.IconTheme)
}

func TestResolveBadDocumentValueFallsThrough(t *testing.T) {
	cfg := &config.Config{Display: ptr("everything"), Origin: "test"}

	resolved := Resolve(parseArgs(t), cfg)

	assert.Equal(t, DisplayVisibleOnly, resolved.Display)
}

func TestResolveRecursionDepth(t *testing.T) {
	cfg := &config.Config{Recursion: &config.Recursion{Enabled: ptr(true), Depth: ptr(3)}}

	resolved := Resolve(parseArgs(t), cfg)
	assert.True(t, resolved.Recursion.Enabled)
	assert.Equal(t, 3, resolved.Recursion.Depth)

	resolved = Resolve(parseArgs(t, "--depth", "7"), cfg)
	assert.Equal(t, 7, resolved.Recursion.Depth)
}

func TestResolveNonPositiveDepthFallsThrough(t *testing.T) {
	cfg := &config.Config{Recursion: &config.Recursion{Depth: ptr(-1)}, Origin: "test"}

	resolved := Resolve(parseArgs(t), cfg)

	assert.Equal(t, math.MaxInt, resolved.Recursion.Depth)
}

func TestResolveSymlinkArrowFromDocumentOnly(t *testing.T) {
	cfg := &config.Config{SymlinkArrow: ptr("->")}

	resolved := Resolve(parseArgs(t), cfg)

	assert.Equal(t, "->", resolved.SymlinkArrow)
}

func TestResolveIgnoreGlobs(t *testing.T) {
	cfg := &config.Config{IgnoreGlobs: []string{"*.bak", ".git"}}

	resolved := Resolve(parseArgs(t), cfg)
	require.Len(t, resolved.IgnoreGlobs, 2)
	assert.True(t, resolved.IgnoreGlobs[0].Match("old.bak"))
	assert.False(t, resolved.IgnoreGlobs[0].Match("old.txt"))
	assert.True(t, resolved.IgnoreGlobs[1].Match(".git"))

	resolved = Resolve(parseArgs(t, "--ignore-glob", "*.tmp"), cfg)
	require.Len(t, resolved.IgnoreGlobs, 1)
	assert.True(t, resolved.IgnoreGlobs[0].Match("scratch.tmp"))
}

func TestResolveBlocksFromArgs(t *testing.T) {
	resolved := Resolve(parseArgs(t, "--blocks", "size,name"), nil)

	assert.Equal(t, []Block{BlockSize, BlockName}, resolved.Blocks)
}

func TestResolveBlocksBadDocumentName(t *testing.T) {
	cfg := &config.Config{Blocks: []string{"size", "owner"}, Origin: "test"}

	resolved := Resolve(parseArgs(t), cfg)

	assert.Equal(t, defaultBlocks(), resolved.Blocks)
}
