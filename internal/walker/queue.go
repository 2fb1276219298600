package walker

import "sync"

// dirList is the shared work list of directories still to be scanned.
// Workers block in next() until a directory is available or the walk
// has drained: no queued directories and no worker mid-scan (a scan in
// flight may still add subdirectories).
type dirList struct {
	mu     sync.Mutex
	cond   *sync.Cond
	dirs   []string
	active int
}

func newDirList() *dirList {
	l := &dirList{}
	l.cond = sync.NewCond(&l.mu)
	return l
}

func (l *dirList) add(dir string) {
	l.mu.Lock()
	l.dirs = append(l.dirs, dir)
	l.mu.Unlock()
	l.cond.Signal()
}

// next returns the next directory to scan, blocking while the list is
// empty but other workers are still scanning. The second return value
// is false once the walk has drained.
func (l *dirList) next() (string, bool) {
	l.mu.Lock()
	defer l.mu.Unlock()

	for len(l.dirs) == 0 && l.active > 0 {
		l.cond.Wait()
	}
	if len(l.dirs) == 0 {
		return "", false
	}

	dir := l.dirs[len(l.dirs)-1]
	l.dirs = l.dirs[:len(l.dirs)-1]
	l.active++
	return dir, true
}

// done marks one taken directory as fully scanned.
func (l *dirList) done() {
	l.mu.Lock()
	l.active--
	drained := l.active == 0 && len(l.dirs) == 0
	l.mu.Unlock()
	if drained {
		l.cond.Broadcast()
	}
}
