// Package fs defines the filesystem abstraction used by cleansweep.
// It provides the FS interface and the FileInfo type shared across the
// system. Timestamps and ownership come from lstat, so symlinks are
// never followed.
package fs

import (
	"context"
	"os"
	"time"
)

type FileInfo struct {
	Path  string
	Size  int64
	UID   uint32
	Atime time.Time
	Mtime time.Time
	Ctime time.Time
}

type FS interface {
	Lstat(path string) (FileInfo, error)
	ReadDir(path string) ([]os.DirEntry, error)
	Rename(ctx context.Context, oldPath, newPath string) error
	// MkdirOwned creates path (and missing parents) with owner-only
	// access and hands it to uid. Creating an existing directory is
	// not an error.
	MkdirOwned(path string, uid uint32) error
	Lchown(path string, uid uint32) error
}
