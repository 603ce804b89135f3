package display

import (
	"log/slog"
	"os"

	"github.com/charmbracelet/lipgloss"
	"gopkg.in/yaml.v3"
)

// palette holds the per-category name styles of one invocation.
type palette struct {
	dir        lipgloss.Style
	symlink    lipgloss.Style
	executable lipgloss.Style
	special    lipgloss.Style
}

func defaultPalette() palette {
	return palette{
		dir:        lipgloss.NewStyle().Foreground(lipgloss.Color("33")).Bold(true),
		symlink:    lipgloss.NewStyle().Foreground(lipgloss.Color("51")),
		executable: lipgloss.NewStyle().Foreground(lipgloss.Color("40")),
		special:    lipgloss.NewStyle().Foreground(lipgloss.Color("214")),
	}
}

// paletteDoc is the color theme document: one ANSI-256 color per category.
type paletteDoc struct {
	Dir        string `yaml:"dir"`
	Symlink    string `yaml:"symlink"`
	Executable string `yaml:"executable"`
	Special    string `yaml:"special"`
}

// loadPalette resolves the palette for one invocation. A color theme file
// replaces the built-in palette wholesale: categories the document leaves
// out render unstyled, there is no per-key overlay as with icon themes.
// The path is always explicitly supplied, so any failure to use it is
// reported, and the built-in palette stands.
func loadPalette(path string) palette {
	if path == "" {
		return defaultPalette()
	}

	data, err := os.ReadFile(path)
	if err != nil {
		slog.Warn("bad color theme file", "file", path, "error", err)
		return defaultPalette()
	}

	var doc paletteDoc
	if err := yaml.Unmarshal(data, &doc); err != nil {
		slog.Warn("color theme format error", "file", path, "error", err)
		return defaultPalette()
	}

	return palette{
		dir:        styleFor(doc.Dir),
		symlink:    styleFor(doc.Symlink),
		executable: styleFor(doc.Executable),
		special:    styleFor(doc.Special),
	}
}

func styleFor(color string) lipgloss.Style {
	if color == "" {
		return lipgloss.NewStyle()
	}

	return lipgloss.NewStyle().Foreground(lipgloss.Color(color))
}
