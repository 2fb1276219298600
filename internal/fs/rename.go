package fs

import (
	"context"
	"os"
)

// wraps os.Rename with retry logic so a single transient error does
// not abandon a file that could still be relocated.

func renameWithRetry(ctx context.Context, oldPath, newPath string) error {
	return retry(ctx, "rename", func() error {
		return os.Rename(oldPath, newPath)
	})
}
