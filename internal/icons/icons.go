// Package icons resolves the glyph printed before each listed entry.
package icons

import (
	"strings"

	"lsg.dev/pkg/lsg/internal/flags"
	"lsg.dev/pkg/lsg/internal/meta"
	"lsg.dev/pkg/lsg/internal/theme"
)

// Separator is printed between a glyph and the entry name.
const Separator = " "

// Icons resolves glyphs against one immutable theme. A nil theme means
// icons are disabled for the whole invocation. Safe for concurrent use.
type Icons struct {
	separator string
	theme     *theme.IconTheme
}

// New builds the resolver for one invocation. Icons are disabled outright
// when the policy is never, or when the policy is auto and the output is
// not a terminal.
func New(tty bool, when flags.IconWhen, choice flags.IconTheme, separator string) Icons {
	if when == flags.IconNever || (when == flags.IconAuto && !tty) {
		return Icons{separator: separator}
	}

	t := theme.LoadIcons(choice, "")

	return FromTheme(&t, separator)
}

// FromTheme builds a resolver over an already loaded theme.
func FromTheme(t *theme.IconTheme, separator string) Icons {
	return Icons{separator: separator, theme: t}
}

// Glyph returns the icon for the entry with the trailing separator, or the
// empty string when icons are disabled.
//
// Matching order: entries whose identity is defined by their type alone
// (symlinks, sockets, pipes, devices, specials) get their category glyph
// unconditionally. For everything else the lowercase full name is tried
// first, then the lowercase extension, then the category fallback.
func (i Icons) Glyph(name meta.Name) string {
	if i.theme == nil {
		return ""
	}

	t := i.theme

	var icon string
	switch name.FileType() {
	case meta.TypeSymlinkDir:
		icon = t.ByFileType.SymlinkDir
	case meta.TypeSymlinkFile:
		icon = t.ByFileType.SymlinkFile
	case meta.TypeSocket:
		icon = t.ByFileType.Socket
	case meta.TypePipe:
		icon = t.ByFileType.Pipe
	case meta.TypeCharDevice:
		icon = t.ByFileType.CharDevice
	case meta.TypeBlockDevice:
		icon = t.ByFileType.BlockDevice
	case meta.TypeSpecial:
		icon = t.ByFileType.Special
	default:
		icon = i.lookup(name)
	}

	return icon + i.separator
}

func (i Icons) lookup(name meta.Name) string {
	t := i.theme

	if icon, ok := t.ByName[name.Lower()]; ok {
		return icon
	}

	if ext, ok := name.Extension(); ok {
		if icon, ok := t.ByExtension[strings.ToLower(ext)]; ok {
			return icon
		}
	}

	switch name.FileType() {
	case meta.TypeDir:
		return t.ByFileType.Dir
	case meta.TypeExecutable:
		return t.ByFileType.Executable
	default:
		return t.ByFileType.File
	}
}
