package sweep

import (
	"context"
	"fmt"
	"sync"

	"github.com/robfig/cron/v3"

	"github.com/osievert/cleansweep/internal/logging"
)

// Scheduler repeats the one-shot sweep on a standard cron schedule.
// Each tick is an independent run with a freshly computed cutoff; a
// tick is skipped when the previous run is still going.
type Scheduler struct {
	runner *Runner
	cron   *cron.Cron
	log    logging.Logger
	mu     sync.Mutex
}

func NewScheduler(r *Runner, log logging.Logger) *Scheduler {
	return &Scheduler{
		runner: r,
		cron:   cron.New(),
		log:    log,
	}
}

// Start validates spec, schedules runs, and blocks until ctx is
// cancelled. A sweep in flight when ctx is cancelled finishes before
// Start returns.
func (s *Scheduler) Start(ctx context.Context, spec string) error {
	if _, err := cron.ParseStandard(spec); err != nil {
		return fmt.Errorf("invalid cron schedule %q: %w", spec, err)
	}

	if _, err := s.cron.AddFunc(spec, func() { s.tick(ctx) }); err != nil {
		return fmt.Errorf("scheduling sweep: %w", err)
	}

	s.cron.Start()
	s.log.Info("scheduler: started with schedule %q", spec)

	<-ctx.Done()

	stopped := s.cron.Stop()
	<-stopped.Done()

	// Wait out a run started just before cancellation.
	s.mu.Lock()
	s.mu.Unlock()

	s.log.Info("scheduler: stopped")
	return nil
}

func (s *Scheduler) tick(ctx context.Context) {
	if !s.mu.TryLock() {
		s.log.Info("scheduler: previous sweep still running, skipping tick")
		return
	}
	defer s.mu.Unlock()

	if err := s.runner.Run(ctx); err != nil {
		s.log.Error("scheduler: sweep failed: %v", err)
	}
}
