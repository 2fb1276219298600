package sweep

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strconv"

	"github.com/osievert/cleansweep/internal/fs"
	"github.com/osievert/cleansweep/internal/ledger"
	"github.com/osievert/cleansweep/internal/pathenc"
	"github.com/osievert/cleansweep/internal/walker"
)

// engine runs the per-file relocation pipeline. It is shared across
// walker workers; the ledger is its only mutable state.
type engine struct {
	destRoot string
	dryRun   bool
	fs       fs.FS
	led      *ledger.Ledger
	audit    *auditWriter
}

// process relocates one candidate: sequence assignment, bucket
// materialization, rename, audit line, provenance record. In dry-run
// mode the bucket and rename steps are skipped but the ledger and
// audit still reflect what would happen. An error abandons only this
// file; the caller logs it and the walk continues.
func (e *engine) process(ctx context.Context, c walker.Candidate) error {
	uid := c.Info.UID

	n, err := e.led.NextSeq(ctx, uid)
	if err != nil {
		return err
	}

	bucket := filepath.Join(e.destRoot, strconv.FormatUint(uint64(uid), 10))
	if !e.dryRun {
		// Non-atomic existence check; a concurrent create of the
		// same bucket is benign since MkdirOwned tolerates it.
		if _, statErr := os.Stat(bucket); statErr != nil {
			if err := e.fs.MkdirOwned(bucket, uid); err != nil {
				return fmt.Errorf("creating bucket for uid %d: %w", uid, err)
			}
		}
	}

	dest := filepath.Join(bucket, strconv.FormatUint(uint64(n), 10))
	if !e.dryRun {
		if err := e.fs.Rename(ctx, c.Path, dest); err != nil {
			return fmt.Errorf("moving %s: %w", pathenc.Encode(c.Path), err)
		}
	}

	origEnc := pathenc.Encode(c.Path)
	if err := e.audit.Line(c.Info.Atime, c.Info.Ctime, c.Info.Mtime, uid, origEnc); err != nil {
		return fmt.Errorf("writing audit line: %w", err)
	}

	if err := e.led.RecordProvenance(ctx, uid, pathenc.Encode(dest), origEnc); err != nil {
		return err
	}
	return nil
}
