// Package walker enumerates regular files under the source root in
// parallel, applying the exclusion policy during descent and the age
// predicate at each file. Output order is unspecified.
package walker

import (
	"os"
	"path/filepath"
	"sync"

	"github.com/osievert/cleansweep/internal/age"
	"github.com/osievert/cleansweep/internal/exclude"
	"github.com/osievert/cleansweep/internal/fs"
	"github.com/osievert/cleansweep/internal/logging"
)

// Candidate is one qualifying regular file with its metadata. Each
// candidate is delivered exactly once.
type Candidate struct {
	Path string
	Info fs.FileInfo
}

type Walker struct {
	fs      fs.FS
	policy  *exclude.Policy
	pred    age.Predicate
	workers int
	log     logging.Logger
}

func New(filesystem fs.FS, policy *exclude.Policy, pred age.Predicate, workers int, log logging.Logger) *Walker {
	if workers < 1 {
		workers = 1
	}
	return &Walker{
		fs:      filesystem,
		policy:  policy,
		pred:    pred,
		workers: workers,
		log:     log,
	}
}

// Walk traverses root and calls emit for every qualifying file. emit
// is invoked concurrently from the worker pool and must be safe for
// concurrent use. Directory read errors and stat errors are logged and
// the offending entry skipped; symlinks are never followed. Walk
// returns after every worker has drained.
func (w *Walker) Walk(root string, emit func(Candidate)) {
	list := newDirList()
	list.add(root)

	var wg sync.WaitGroup
	for i := 0; i < w.workers; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for {
				dir, ok := list.next()
				if !ok {
					return
				}
				w.scanDir(dir, list, emit)
				list.done()
			}
		}()
	}
	wg.Wait()
}

func (w *Walker) scanDir(dir string, list *dirList, emit func(Candidate)) {
	entries, err := w.fs.ReadDir(dir)
	if err != nil {
		w.log.Error("walker: reading %s: %v", dir, err)
		return
	}

	for _, ent := range entries {
		path := filepath.Join(dir, ent.Name())

		if ent.IsDir() {
			if w.policy.Excluded(path, true) {
				continue
			}
			list.add(path)
			continue
		}

		// Symlinks and other non-regular entries are not candidates.
		if ent.Type()&os.ModeSymlink != 0 || !ent.Type().IsRegular() {
			continue
		}
		if w.policy.Excluded(path, false) {
			continue
		}

		info, err := w.fs.Lstat(path)
		if err != nil {
			w.log.Error("walker: stat %s: %v", path, err)
			continue
		}
		if !w.pred.Old(info.Atime, info.Mtime, info.Ctime) {
			continue
		}
		emit(Candidate{Path: path, Info: info})
	}
}
