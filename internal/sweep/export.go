package sweep

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strconv"

	"github.com/osievert/cleansweep/internal/ledger"
)

// exportMaps flattens the ledger's provenance into one map.json per
// owner bucket, owned by that uid. It runs single-threaded after the
// walk; a failure for one owner does not stop the others.
func (r *Runner) exportMaps(ctx context.Context, led *ledger.Ledger) error {
	owners, err := led.Owners(ctx)
	if err != nil {
		return err
	}

	for _, uid := range owners {
		if err := r.exportOwner(ctx, led, uid); err != nil {
			r.log.Error("export: uid %d: %v", uid, err)
		}
	}
	return nil
}

func (r *Runner) exportOwner(ctx context.Context, led *ledger.Ledger, uid uint32) error {
	m, err := led.ProvenanceFor(ctx, uid)
	if err != nil {
		return err
	}

	data, err := json.Marshal(m)
	if err != nil {
		return fmt.Errorf("encoding map: %w", err)
	}

	path := filepath.Join(r.cfg.Dest, strconv.FormatUint(uint64(uid), 10), "map.json")
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("writing %s: %w", path, err)
	}
	if err := r.fs.Lchown(path, uid); err != nil {
		return fmt.Errorf("chowning %s: %w", path, err)
	}
	return nil
}
