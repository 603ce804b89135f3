package display

import (
	"fmt"
	"io"
	"strings"

	"github.com/mattn/go-runewidth"
	"github.com/olekukonko/tablewriter"

	"lsg.dev/pkg/lsg/internal/flags"
	"lsg.dev/pkg/lsg/internal/icons"
	"lsg.dev/pkg/lsg/internal/meta"
)

// Tree connector characters.
const (
	treeBranch     = "├── "
	treeLastBranch = "└── "
	treeVertical   = "│   "
	treeSpace      = "    "
)

// Renderer turns listed entries into terminal output. It only consumes the
// resolved configuration; all policy decisions happened during resolution.
type Renderer struct {
	flags   flags.Flags
	icons   icons.Icons
	color   bool
	width   int
	palette palette
}

// NewRenderer builds a renderer. Color is decided here once: always wins,
// never loses, and auto follows whether the output is a terminal. A color
// theme path resolved from the arguments selects the palette.
func NewRenderer(f flags.Flags, ic icons.Icons, tty bool, width int) Renderer {
	color := f.ColorWhen == flags.ColorAlways || (f.ColorWhen == flags.ColorAuto && tty)
	if width <= 0 {
		width = 80
	}

	p := defaultPalette()
	if color {
		p = loadPalette(f.ColorThemePath)
	}

	return Renderer{flags: f, icons: ic, color: color, width: width, palette: p}
}

// Render writes all entries in the resolved layout.
func (r Renderer) Render(w io.Writer, entries []Entry) {
	entries = r.flatten(entries)

	switch {
	case r.flags.Long:
		r.renderLong(w, entries)
	case r.flags.Layout == flags.LayoutTree:
		r.renderTree(w, entries, "")
	case r.flags.Layout == flags.LayoutOneline:
		r.renderOneline(w, entries)
	default:
		r.renderGrid(w, entries)
	}
}

// flatten unwraps the common case of listing a single directory: its
// contents are the listing. Multiple roots keep their own entries.
func (r Renderer) flatten(entries []Entry) []Entry {
	if len(entries) == 1 && entries[0].Children != nil && r.flags.Layout != flags.LayoutTree {
		return entries[0].Children
	}

	return entries
}

func (r Renderer) renderOneline(w io.Writer, entries []Entry) {
	for _, entry := range entries {
		fmt.Fprintln(w, r.cell(entry, true))
		if entry.Children != nil && r.flags.Recursion.Enabled {
			fmt.Fprintf(w, "\n%s:\n", entry.Path)
			r.renderOneline(w, entry.Children)
		}
	}
}

func (r Renderer) renderGrid(w io.Writer, entries []Entry) {
	if len(entries) == 0 {
		return
	}

	cells := make([]string, len(entries))
	widths := make([]int, len(entries))
	maxWidth := 0
	for i, entry := range entries {
		cells[i] = r.cell(entry, false)
		widths[i] = runewidth.StringWidth(r.plainCell(entry, false))
		if widths[i] > maxWidth {
			maxWidth = widths[i]
		}
	}

	columns := r.width / (maxWidth + 2)
	if columns < 1 {
		columns = 1
	}

	for i, cell := range cells {
		last := i == len(cells)-1 || (i+1)%columns == 0
		if last {
			fmt.Fprintln(w, cell)
			continue
		}
		fmt.Fprint(w, cell, strings.Repeat(" ", maxWidth+2-widths[i]))
	}

	for _, entry := range entries {
		if entry.Children != nil && r.flags.Recursion.Enabled {
			fmt.Fprintf(w, "\n%s:\n", entry.Path)
			r.renderGrid(w, entry.Children)
		}
	}
}

func (r Renderer) renderTree(w io.Writer, entries []Entry, prefix string) {
	for i, entry := range entries {
		connector, childPrefix := treeBranch, treeVertical
		if i == len(entries)-1 {
			connector, childPrefix = treeLastBranch, treeSpace
		}

		fmt.Fprintln(w, prefix+connector+r.cell(entry, false))
		if len(entry.Children) > 0 {
			r.renderTree(w, entry.Children, prefix+childPrefix)
		}
	}
}

func (r Renderer) renderLong(w io.Writer, entries []Entry) {
	table := tablewriter.NewWriter(w)
	table.SetBorder(false)
	table.SetColumnSeparator("")
	table.SetCenterSeparator("")
	table.SetRowSeparator("")
	table.SetHeaderLine(false)
	table.SetAutoWrapText(false)
	table.SetAlignment(tablewriter.ALIGN_LEFT)

	for _, entry := range entries {
		table.Append(r.longRow(entry))
	}

	table.Render()

	for _, entry := range entries {
		if entry.Children != nil && r.flags.Recursion.Enabled {
			fmt.Fprintf(w, "\n%s:\n", entry.Path)
			r.renderLong(w, entry.Children)
		}
	}
}

func (r Renderer) longRow(entry Entry) []string {
	row := make([]string, 0, len(r.flags.Blocks))
	for _, block := range r.flags.Blocks {
		switch block {
		case flags.BlockPermission:
			row = append(row, entry.Info.Mode().String())
		case flags.BlockUser:
			user, _ := ownerStrings(entry.Info)
			row = append(row, user)
		case flags.BlockGroup:
			_, group := ownerStrings(entry.Info)
			row = append(row, group)
		case flags.BlockSize:
			row = append(row, r.sizeString(entry))
		case flags.BlockDate:
			row = append(row, r.dateString(entry.Info.ModTime()))
		case flags.BlockInode:
			row = append(row, inodeString(entry.Info))
		default:
			row = append(row, r.cell(entry, true))
		}
	}

	return row
}

// cell renders the name column: icon, styled name, optional indicator, and
// for symlinks the arrow with the target when those are wanted.
func (r Renderer) cell(entry Entry, withTarget bool) string {
	var b strings.Builder
	b.WriteString(r.icons.Glyph(entry.Name))
	b.WriteString(r.styled(entry.Name))

	if r.flags.Indicators {
		b.WriteString(indicator(entry.Name.FileType()))
	}

	if withTarget && entry.Target != "" && !r.flags.NoSymlink {
		b.WriteString(" " + r.flags.SymlinkArrow + " " + entry.Target)
	}

	return b.String()
}

// plainCell is the cell without styling, used for width arithmetic.
func (r Renderer) plainCell(entry Entry, withTarget bool) string {
	var b strings.Builder
	b.WriteString(r.icons.Glyph(entry.Name))
	b.WriteString(entry.Name.String())

	if r.flags.Indicators {
		b.WriteString(indicator(entry.Name.FileType()))
	}

	if withTarget && entry.Target != "" && !r.flags.NoSymlink {
		b.WriteString(" " + r.flags.SymlinkArrow + " " + entry.Target)
	}

	return b.String()
}

func (r Renderer) styled(name meta.Name) string {
	if !r.color {
		return name.String()
	}

	switch name.FileType() {
	case meta.TypeDir:
		return r.palette.dir.Render(name.String())
	case meta.TypeSymlinkFile, meta.TypeSymlinkDir:
		return r.palette.symlink.Render(name.String())
	case meta.TypeExecutable:
		return r.palette.executable.Render(name.String())
	case meta.TypeSocket, meta.TypePipe, meta.TypeCharDevice, meta.TypeBlockDevice, meta.TypeSpecial:
		return r.palette.special.Render(name.String())
	default:
		return name.String()
	}
}

func indicator(t meta.FileType) string {
	switch t {
	case meta.TypeDir:
		return "/"
	case meta.TypeExecutable:
		return "*"
	case meta.TypePipe:
		return "|"
	case meta.TypeSocket:
		return "="
	case meta.TypeSymlinkFile, meta.TypeSymlinkDir:
		return "@"
	default:
		return ""
	}
}
