// Package sweep orchestrates one relocation run: ledger and policy
// setup, the parallel walk feeding the relocation engine, and the
// final per-owner export.
package sweep

import (
	"context"
	"io"
	"os"
	"time"

	"github.com/osievert/cleansweep/internal/age"
	"github.com/osievert/cleansweep/internal/config"
	"github.com/osievert/cleansweep/internal/exclude"
	"github.com/osievert/cleansweep/internal/fs"
	"github.com/osievert/cleansweep/internal/ledger"
	"github.com/osievert/cleansweep/internal/logging"
	"github.com/osievert/cleansweep/internal/walker"
)

type Runner struct {
	cfg *config.Config
	fs  fs.FS
	log logging.Logger

	// Out receives the audit stream; defaults to stdout.
	Out io.Writer
}

// New creates a Runner for a finalized config.
func New(cfg *config.Config, filesystem fs.FS, log logging.Logger) *Runner {
	if filesystem == nil {
		filesystem = fs.New()
	}
	return &Runner{
		cfg: cfg,
		fs:  filesystem,
		log: log,
		Out: os.Stdout,
	}
}

// Run performs one sweep. Errors returned here are fatal setup errors;
// anything that goes wrong for a single file is logged and skipped.
func (r *Runner) Run(ctx context.Context) error {
	led, err := ledger.Open(r.cfg.Dest)
	if err != nil {
		return err
	}
	defer led.Close()

	policy, err := exclude.New(r.cfg.Source, r.cfg.Dest, r.cfg.ExcludeFile)
	if err != nil {
		return err
	}

	pred := age.Predicate{
		Cutoff:     time.Now().Add(-time.Duration(r.cfg.OlderDays) * 24 * time.Hour),
		CheckAtime: !r.cfg.NoAtime,
		CheckMtime: !r.cfg.NoMtime,
		CheckCtime: !r.cfg.NoCtime,
	}

	audit := newAuditWriter(r.Out)
	if err := audit.Header(); err != nil {
		return err
	}

	eng := &engine{
		destRoot: r.cfg.Dest,
		dryRun:   r.cfg.DryRun,
		fs:       r.fs,
		led:      led,
		audit:    audit,
	}

	w := walker.New(r.fs, policy, pred, r.cfg.NumThreads, r.log)
	w.Walk(r.cfg.Source, func(c walker.Candidate) {
		if err := eng.process(ctx, c); err != nil {
			r.log.Error("sweep: %s: %v", c.Path, err)
		}
	})

	if !r.cfg.DryRun {
		if err := r.exportMaps(ctx, led); err != nil {
			return err
		}
	}

	return led.Flush()
}
