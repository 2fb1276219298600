package sweep

import (
	"fmt"
	"io"
	"sync"
	"time"
)

// invalidStamp is printed when an instant cannot be rendered in local
// time; a corrupt timestamp must not fail the run. Padded to the width
// of a formatted stamp.
const invalidStamp = "Invalid date    "

const auditHeader = "atime             ctime             mtime             UID     Path"

// auditWriter emits one line per relocated (or would-be relocated)
// file. Every line goes out as a single Write so output from
// concurrent workers never interleaves mid-line.
type auditWriter struct {
	mu sync.Mutex
	w  io.Writer
}

func newAuditWriter(w io.Writer) *auditWriter {
	return &auditWriter{w: w}
}

func (a *auditWriter) Header() error {
	return a.write(auditHeader + "\n")
}

func (a *auditWriter) Line(atime, ctime, mtime time.Time, uid uint32, encodedPath string) error {
	line := fmt.Sprintf("%s, %s, %s, %6d, %s\n",
		formatStamp(atime), formatStamp(ctime), formatStamp(mtime), uid, encodedPath)
	return a.write(line)
}

func (a *auditWriter) write(s string) error {
	a.mu.Lock()
	defer a.mu.Unlock()
	_, err := io.WriteString(a.w, s)
	return err
}

// formatStamp renders an instant in local time as YYYY-MM-DD HH:MM,
// degrading to a fixed placeholder for instants outside the
// four-digit-year window.
func formatStamp(t time.Time) string {
	local := t.Local()
	if y := local.Year(); y < 0 || y > 9999 {
		return invalidStamp
	}
	return local.Format("2006-01-02 15:04")
}
