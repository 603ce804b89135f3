// Package cmd provides the lsg command-line surface.
package cmd

import (
	"fmt"
	"os"

	"github.com/mattn/go-isatty"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"lsg.dev/pkg/lsg/internal/config"
	"lsg.dev/pkg/lsg/internal/display"
	"lsg.dev/pkg/lsg/internal/flags"
	"lsg.dev/pkg/lsg/internal/icons"
)

const rootLongDescription = `lsg lists directory contents with colors, icons, and several layouts.

Behavior is resolved per option from three layers in strict order: explicit
command-line arguments win over the configuration file, which wins over the
built-in defaults. A broken configuration never aborts a listing; the
offending value falls back one layer and a warning explains why.`

// rootCmd represents the base command: the listing itself.
var rootCmd = newRootCmd()

func newRootCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:          "lsg [paths...]",
		Short:        "List directory contents with colors and icons",
		Long:         rootLongDescription,
		Args:         cobra.ArbitraryArgs,
		SilenceUsage: true,
		PersistentPreRun: func(*cobra.Command, []string) {
			configureLogger()
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			return runList(cmd, args)
		},
	}
	configureListFlags(cmd)

	return cmd
}

func configureListFlags(cmd *cobra.Command) {
	fs := cmd.Flags()

	fs.String("config", "", "path of the configuration file to use instead of the default one")
	fs.Bool("classic", false, "enable ls-compatible output (no colors, no icons)")

	fs.BoolP("all", "a", false, "do not ignore entries starting with . (includes . and ..)")
	fs.BoolP("almost-all", "A", false, "do not ignore entries starting with .")
	fs.BoolP("directory-only", "d", false, "display directories themselves, not their contents")

	fs.Var(newEnumValue("auto", "never", "auto", "always"), "color", "when to colorize the output (never, auto, always)")
	fs.String("color-theme", "", "path of a color theme file to use")

	fs.Var(newDateValue(), "date", "date format (date, relative, +<layout>)")
	fs.BoolP("dereference", "L", false, "show information for the file a symlink references")

	fs.Var(newEnumValue("auto", "always", "auto", "never"), "icon", "when to print icons (always, auto, never)")
	fs.Var(newEnumValue("fancy", "fancy", "unicode"), "icon-theme", "which icon theme to use (fancy, unicode)")

	fs.StringArrayP("ignore-glob", "I", nil, "do not list entries matching this glob (can be repeated)")
	fs.BoolP("indicators", "F", false, "append indicator characters (*/=|@) to entry names")

	fs.BoolP("long", "l", false, "display extended metadata as a table of blocks")
	fs.Bool("oneline", false, "display one entry per line")
	fs.Bool("tree", false, "display entries as a tree")
	fs.StringSlice("blocks", nil, "columns of the long layout, in order")

	fs.BoolP("recursive", "R", false, "recurse into directories")
	fs.Int("depth", 0, "stop recursing below this depth (tree and recursive)")

	fs.Var(newEnumValue("default", "default", "short", "bytes"), "size", "size column format (default, short, bytes)")

	fs.Var(newEnumValue("name", "extension", "name", "time", "size", "version"), "sort", "what to sort by (extension, name, time, size, version)")
	fs.BoolP("reverse", "r", false, "reverse the sorting order")
	fs.Var(newEnumValue("none", "first", "last", "none"), "group-dirs", "group directories (first, last, none)")

	fs.Bool("no-symlink", false, "do not display symlink targets")
	fs.Bool("total-size", false, "display the total size of directories")
}

func runList(cmd *cobra.Command, args []string) error {
	fs := cmd.Flags()

	if fs.Changed("depth") {
		if depth, err := fs.GetInt("depth"); err != nil || depth < 1 {
			return fmt.Errorf("--depth must be a positive integer")
		}
	}

	cfgPath := fs.Lookup("config").Value.String()
	cfg := config.Read(cfgPath)
	resolved := flags.Resolve(fs, cfg)

	tty := isatty.IsTerminal(os.Stdout.Fd())
	ic := icons.New(tty, resolved.IconWhen, resolved.IconTheme, icons.Separator)

	width := 0
	if tty {
		if w, _, err := term.GetSize(int(os.Stdout.Fd())); err == nil {
			width = w
		}
	}

	entries := display.NewLister(resolved).List(cmd.Context(), args)
	display.NewRenderer(resolved, ic, tty, width).Render(cmd.OutOrStdout(), entries)

	return nil
}

// Execute runs the root command. This is called by main.main().
func Execute() {
	err := rootCmd.Execute()
	if err != nil {
		os.Exit(1)
	}
}
