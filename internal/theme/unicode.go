package theme

// Unicode returns the compiled plain-unicode glyph set. It carries only
// per-category glyphs: every regular file shares one icon, so the name and
// extension tables stay empty.
func Unicode() IconTheme {
	return IconTheme{
		ByFileType: FileTypeIcons{
			File:        "\U0001f4c4",
			Executable:  "\U0001f3d7",
			Dir:         "\U0001f4c2",
			SymlinkFile: "\U0001f517",
			SymlinkDir:  "\U0001f5c2",
			Socket:      "\U0001f50c",
			Pipe:        "\U0001f4e9",
			CharDevice:  "\U0001f5a8",
			BlockDevice: "\U0001f4bd",
			Special:     "\U0001f4a5",
		},
		ByName:      map[string]string{},
		ByExtension: map[string]string{},
	}
}
