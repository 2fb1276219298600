package fs

import (
	"context"
	"os"
)

type OSFS struct{}

// the concrete implementation of FS backed by the local OS filesystem.
// Platform-specific details (timestamp and uid extraction) are handled
// in build-tagged files.

func New() *OSFS {
	return &OSFS{}
}

func (o *OSFS) Lstat(path string) (FileInfo, error) {
	st, err := os.Lstat(path)
	if err != nil {
		return FileInfo{}, err
	}

	info := FileInfo{
		Path: path,
		Size: st.Size(),
	}
	fillStat(st, &info)
	return info, nil
}

func (o *OSFS) ReadDir(path string) ([]os.DirEntry, error) {
	return os.ReadDir(path)
}

func (o *OSFS) MkdirOwned(path string, uid uint32) error {
	if err := os.MkdirAll(path, 0o700); err != nil {
		return err
	}
	return o.Lchown(path, uid)
}

func (o *OSFS) Lchown(path string, uid uint32) error {
	return os.Lchown(path, int(uid), -1)
}

func (o *OSFS) Rename(ctx context.Context, oldPath, newPath string) error {
	return renameWithRetry(ctx, oldPath, newPath)
}
