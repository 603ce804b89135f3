//go:build unix

package display

import (
	"io/fs"
	"os/user"
	"strconv"
	"syscall"
)

// ownerStrings resolves the owner and group names, falling back to the
// numeric ids when the lookup fails.
func ownerStrings(info fs.FileInfo) (string, string) {
	st, ok := info.Sys().(*syscall.Stat_t)
	if !ok {
		return "-", "-"
	}

	uid := strconv.FormatUint(uint64(st.Uid), 10)
	owner := uid
	if u, err := user.LookupId(uid); err == nil {
		owner = u.Username
	}

	gid := strconv.FormatUint(uint64(st.Gid), 10)
	group := gid
	if g, err := user.LookupGroupId(gid); err == nil {
		group = g.Name
	}

	return owner, group
}

func inodeString(info fs.FileInfo) string {
	st, ok := info.Sys().(*syscall.Stat_t)
	if !ok {
		return "-"
	}

	return strconv.FormatUint(uint64(st.Ino), 10)
}
