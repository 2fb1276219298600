//go:build unix

package fs

import (
	"syscall"
	"time"
)

func timespecTime(ts syscall.Timespec) time.Time {
	return time.Unix(int64(ts.Sec), int64(ts.Nsec))
}
