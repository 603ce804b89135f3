package theme

// Fancy returns the compiled nerd-font glyph set. It supplies a glyph for
// every file type category, which is what guarantees the resolver always
// has a fallback.
func Fancy() IconTheme {
	return IconTheme{
		ByFileType: FileTypeIcons{
			File:        "",
			Executable:  "",
			Dir:         "",
			SymlinkFile: "",
			SymlinkDir:  "",
			Socket:      "",
			Pipe:        "",
			CharDevice:  "",
			BlockDevice: "ﰩ",
			Special:     "",
		},
		ByName:      fancyIconsByName(),
		ByExtension: fancyIconsByExtension(),
	}
}

func fancyIconsByName() map[string]string {
	return map[string]string{
		".atom":              "",
		".bash_history":      "",
		".bash_profile":      "",
		".bashrc":            "",
		".cargo":             "",
		".clang-format":      "",
		".config":            "",
		".docker":            "",
		".editorconfig":      "",
		".git":               "",
		".gitattributes":     "",
		".gitconfig":         "",
		".github":            "",
		".gitignore":         "",
		".gitmodules":        "",
		".npmrc":             "",
		".profile":           "",
		".ssh":               "",
		".vim":               "",
		".vimrc":             "",
		".vscode":            "",
		".zshrc":             "",
		"bin":                "",
		"cargo.lock":         "",
		"cargo.toml":         "",
		"changelog":          "",
		"config":             "",
		"docker-compose.yml": "",
		"dockerfile":         "",
		"go.mod":             "",
		"go.sum":             "",
		"gruntfile.js":       "",
		"gulpfile.js":        "",
		"hidden":             "",
		"include":            "",
		"lib":                "",
		"license":            "",
		"license.md":         "",
		"license.txt":        "",
		"makefile":           "",
		"node_modules":       "",
		"npmignore":          "",
		"package-lock.json":  "",
		"package.json":       "",
		"readme":             "",
		"readme.md":          "",
		"rubydoc":            "",
		"yarn.lock":          "",
	}
}

func fancyIconsByExtension() map[string]string {
	return map[string]string{
		"7z":         "",
		"apk":        "",
		"avi":        "",
		"avro":       "",
		"awk":        "",
		"bash":       "",
		"bat":        "",
		"bmp":        "",
		"bz2":        "",
		"c":          "",
		"c++":        "",
		"cc":         "",
		"cfg":        "",
		"clj":        "",
		"cls":        "",
		"coffee":     "",
		"conf":       "",
		"cp":         "",
		"cpp":        "",
		"cs":         "",
		"csh":        "",
		"css":        "",
		"csv":        "",
		"cxx":        "",
		"dart":       "",
		"db":         "",
		"deb":        "",
		"diff":       "",
		"doc":        "",
		"docx":       "",
		"dump":       "",
		"ebook":      "",
		"editorconfig": "",
		"ejs":        "",
		"elm":        "",
		"env":        "",
		"eot":        "",
		"epub":       "",
		"erb":        "",
		"erl":        "",
		"exe":        "",
		"ex":         "",
		"exs":        "",
		"fish":       "",
		"flac":       "",
		"flv":        "",
		"font":       "",
		"gdoc":       "",
		"gemfile":    "",
		"gemspec":    "",
		"gform":      "",
		"gif":        "",
		"go":         "",
		"gz":         "",
		"h":          "",
		"hbs":        "",
		"hpp":        "",
		"hs":         "",
		"htm":        "",
		"html":       "",
		"hxx":        "",
		"ico":        "",
		"image":      "",
		"iml":        "",
		"ini":        "",
		"ipynb":      "",
		"jar":        "",
		"java":       "",
		"jpeg":       "",
		"jpg":        "",
		"js":         "",
		"json":       "",
		"jsx":        "",
		"ksh":        "",
		"less":       "",
		"lhs":        "",
		"license":    "",
		"lock":       "",
		"log":        "",
		"lua":        "",
		"m4a":        "",
		"markdown":   "",
		"md":         "",
		"mkd":        "",
		"mkv":        "",
		"mobi":       "",
		"mov":        "",
		"mp3":        "",
		"mp4":        "",
		"mustache":   "",
		"nix":        "",
		"npmignore":  "",
		"ogg":        "",
		"ogv":        "",
		"otf":        "",
		"pdf":        "",
		"php":        "",
		"pl":         "",
		"png":        "",
		"ppt":        "",
		"pptx":       "",
		"procfile":   "",
		"properties": "",
		"ps1":        "",
		"psd":        "",
		"pxm":        "",
		"py":         "",
		"pyc":        "",
		"r":          "",
		"rakefile":   "",
		"rar":        "",
		"rb":         "",
		"rdata":      "",
		"rdb":        "",
		"rdoc":       "",
		"rds":        "",
		"readme":     "",
		"rlib":       "",
		"rmd":        "",
		"rpm":        "",
		"rs":         "",
		"rspec":      "",
		"rss":        "",
		"rtf":        "",
		"ru":         "",
		"sass":       "",
		"scala":      "",
		"scss":       "",
		"sh":         "",
		"shell":      "",
		"slim":       "",
		"sql":        "",
		"sqlite3":    "",
		"styl":       "",
		"stylus":     "",
		"svg":        "",
		"swift":      "",
		"tar":        "",
		"tex":        "",
		"tiff":       "",
		"toml":       "",
		"ts":         "",
		"tsx":        "",
		"ttf":        "",
		"twig":       "",
		"txt":        "",
		"video":      "",
		"vim":        "",
		"vue":        "﵂",
		"wav":        "",
		"webm":       "",
		"webp":       "",
		"windows":    "",
		"woff":       "",
		"woff2":      "",
		"xls":        "",
		"xlsx":       "",
		"xml":        "",
		"xul":        "",
		"yaml":       "",
		"yml":        "",
		"zip":        "",
		"zsh":        "",
	}
}
