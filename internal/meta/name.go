package meta

import (
	"io/fs"
	"os"
	"path/filepath"
	"strings"
)

// Name is the minimal descriptor the icon resolver consumes: the entry's
// file name and its type category. It is read-only after construction.
type Name struct {
	name     string
	fileType FileType
}

// NewName builds a descriptor from an already classified entry.
func NewName(name string, fileType FileType) Name {
	return Name{name: name, fileType: fileType}
}

// ForEntry classifies an entry at path from its lstat info. For symlinks it
// performs one extra stat to learn whether the target is a directory; a
// broken link counts as a symlink to a file.
func ForEntry(path string, info fs.FileInfo) Name {
	linkTargetIsDir := false
	if info.Mode()&fs.ModeSymlink != 0 {
		if target, err := os.Stat(path); err == nil {
			linkTargetIsDir = target.IsDir()
		}
	}

	return Name{
		name:     filepath.Base(path),
		fileType: TypeOf(info.Mode(), linkTargetIsDir),
	}
}

// String returns the file name as observed on disk.
func (n Name) String() string {
	return n.name
}

// Lower returns the file name folded to lowercase for table lookups.
func (n Name) Lower() string {
	return strings.ToLower(n.name)
}

// FileType returns the entry's type category.
func (n Name) FileType() FileType {
	return n.fileType
}

// Extension returns the dot-delimited suffix of the file name, without the
// dot. A dotfile such as ".gitignore" has no extension under this rule, and
// neither does a name with a trailing dot.
func (n Name) Extension() (string, bool) {
	i := strings.LastIndex(n.name, ".")
	if i <= 0 || i == len(n.name)-1 {
		return "", false
	}

	return n.name[i+1:], true
}
