// Package meta derives the display-relevant facts about a filesystem entry:
// its name, its extension, and its file type category.
package meta

import (
	"io/fs"
	"runtime"
)

// FileType is the closed classification of a filesystem entry. It is derived
// from metadata at listing time and drives the type-keyed icon lookup.
type FileType int

// Available FileType values.
const (
	TypeFile FileType = iota
	TypeExecutable
	TypeDir
	TypeSymlinkFile
	TypeSymlinkDir
	TypeSocket
	TypePipe
	TypeCharDevice
	TypeBlockDevice
	TypeSpecial
)

// String returns the lowercase name used in logs and theme documents.
func (t FileType) String() string {
	switch t {
	case TypeFile:
		return "file"
	case TypeExecutable:
		return "executable"
	case TypeDir:
		return "dir"
	case TypeSymlinkFile:
		return "symlink-file"
	case TypeSymlinkDir:
		return "symlink-dir"
	case TypeSocket:
		return "socket"
	case TypePipe:
		return "pipe"
	case TypeCharDevice:
		return "device-char"
	case TypeBlockDevice:
		return "device-block"
	case TypeSpecial:
		return "special"
	}

	return "file"
}

// TypeOf classifies mode bits. Symlinks need a second stat to learn whether
// the target is a directory, so the caller passes that in.
func TypeOf(mode fs.FileMode, linkTargetIsDir bool) FileType {
	switch {
	case mode&fs.ModeSymlink != 0:
		if linkTargetIsDir {
			return TypeSymlinkDir
		}
		return TypeSymlinkFile
	case mode.IsDir():
		return TypeDir
	case mode&fs.ModeSocket != 0:
		return TypeSocket
	case mode&fs.ModeNamedPipe != 0:
		return TypePipe
	case mode&fs.ModeCharDevice != 0:
		return TypeCharDevice
	case mode&fs.ModeDevice != 0:
		return TypeBlockDevice
	case mode&fs.ModeIrregular != 0:
		return TypeSpecial
	case mode&0o111 != 0 && runtime.GOOS != "windows":
		// Windows reports everything as executable, so the permission bits
		// only count on platforms that actually track them.
		return TypeExecutable
	default:
		return TypeFile
	}
}
