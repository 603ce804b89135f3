//go:build !unix

package display

import "io/fs"

// The owner, group, and inode columns need stat fields this platform does
// not expose.

func ownerStrings(fs.FileInfo) (string, string) {
	return "-", "-"
}

func inodeString(fs.FileInfo) string {
	return "-"
}
