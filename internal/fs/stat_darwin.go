//go:build darwin

package fs

import (
	"os"
	"syscall"
)

func fillStat(st os.FileInfo, info *FileInfo) {
	sys, ok := st.Sys().(*syscall.Stat_t)
	if !ok {
		info.Mtime = st.ModTime()
		info.Atime = st.ModTime()
		info.Ctime = st.ModTime()
		return
	}
	info.UID = sys.Uid
	info.Atime = timespecTime(sys.Atimespec)
	info.Mtime = timespecTime(sys.Mtimespec)
	info.Ctime = timespecTime(sys.Ctimespec)
}
