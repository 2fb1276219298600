//go:build linux

package fs

import (
	"os"
	"syscall"
)

// stat_linux.go extracts timestamps and ownership from syscall.Stat_t.
// ctime is the inode change time; it cannot be set from userspace.

func fillStat(st os.FileInfo, info *FileInfo) {
	sys, ok := st.Sys().(*syscall.Stat_t)
	if !ok {
		info.Mtime = st.ModTime()
		info.Atime = st.ModTime()
		info.Ctime = st.ModTime()
		return
	}
	info.UID = sys.Uid
	info.Atime = timespecTime(sys.Atim)
	info.Mtime = timespecTime(sys.Mtim)
	info.Ctime = timespecTime(sys.Ctim)
}
