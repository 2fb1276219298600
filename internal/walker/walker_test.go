package walker

import (
	"os"
	"path/filepath"
	"sort"
	"sync"
	"testing"
	"time"

	"github.com/osievert/cleansweep/internal/age"
	"github.com/osievert/cleansweep/internal/exclude"
	"github.com/osievert/cleansweep/internal/fs"
	"github.com/osievert/cleansweep/internal/logging"
)

// ctime cannot be set from userspace, so tests disable the ctime check
// and steer selection with atime/mtime via os.Chtimes.

func testPredicate(cutoff time.Time) age.Predicate {
	return age.Predicate{Cutoff: cutoff, CheckAtime: true, CheckMtime: true}
}

func writeAged(t *testing.T, path string, stamp time.Time) {
	t.Helper()
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(path, []byte("x"), 0o644); err != nil {
		t.Fatal(err)
	}
	if err := os.Chtimes(path, stamp, stamp); err != nil {
		t.Fatal(err)
	}
}

func collect(t *testing.T, root string, policy *exclude.Policy, pred age.Predicate, workers int) []string {
	t.Helper()
	w := New(fs.New(), policy, pred, workers, logging.New("error"))

	var mu sync.Mutex
	var got []string
	w.Walk(root, func(c Candidate) {
		mu.Lock()
		got = append(got, c.Path)
		mu.Unlock()
	})
	sort.Strings(got)
	return got
}

func TestWalkSelectsOnlyOldFiles(t *testing.T) {
	root := t.TempDir()
	cutoff := time.Now().Add(-24 * time.Hour)
	old := cutoff.Add(-time.Hour)
	fresh := time.Now()

	writeAged(t, filepath.Join(root, "a", "old1"), old)
	writeAged(t, filepath.Join(root, "a", "b", "old2"), old)
	writeAged(t, filepath.Join(root, "fresh"), fresh)
	writeAged(t, filepath.Join(root, ".hidden"), old) // no dotfile skipping

	policy, err := exclude.New(root, "", "")
	if err != nil {
		t.Fatal(err)
	}

	got := collect(t, root, policy, testPredicate(cutoff), 4)
	want := []string{
		filepath.Join(root, ".hidden"),
		filepath.Join(root, "a", "b", "old2"),
		filepath.Join(root, "a", "old1"),
	}
	if len(got) != len(want) {
		t.Fatalf("candidates = %v, want %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("candidate[%d] = %q, want %q", i, got[i], want[i])
		}
	}
}

func TestWalkDoesNotFollowSymlinks(t *testing.T) {
	root := t.TempDir()
	outside := t.TempDir()
	cutoff := time.Now().Add(-24 * time.Hour)
	old := cutoff.Add(-time.Hour)

	writeAged(t, filepath.Join(outside, "old"), old)
	writeAged(t, filepath.Join(root, "old"), old)
	if err := os.Symlink(outside, filepath.Join(root, "link")); err != nil {
		t.Fatal(err)
	}
	if err := os.Symlink(filepath.Join(root, "old"), filepath.Join(root, "filelink")); err != nil {
		t.Fatal(err)
	}

	policy, err := exclude.New(root, "", "")
	if err != nil {
		t.Fatal(err)
	}

	got := collect(t, root, policy, testPredicate(cutoff), 2)
	if len(got) != 1 || got[0] != filepath.Join(root, "old") {
		t.Errorf("candidates = %v, want only the regular file", got)
	}
}

func TestWalkPrunesExcludedDirectory(t *testing.T) {
	root := t.TempDir()
	dest := filepath.Join(root, "quarantine")
	cutoff := time.Now().Add(-24 * time.Hour)
	old := cutoff.Add(-time.Hour)

	writeAged(t, filepath.Join(dest, "1000", "0"), old)
	writeAged(t, filepath.Join(root, "old"), old)

	policy, err := exclude.New(root, dest, "")
	if err != nil {
		t.Fatal(err)
	}

	got := collect(t, root, policy, testPredicate(cutoff), 2)
	if len(got) != 1 || got[0] != filepath.Join(root, "old") {
		t.Errorf("candidates = %v; destination subtree must not be walked", got)
	}
}

func TestWalkUnreadableDirectoryIsSkipped(t *testing.T) {
	if os.Getuid() == 0 {
		t.Skip("permission checks do not apply to root")
	}
	root := t.TempDir()
	cutoff := time.Now().Add(-24 * time.Hour)
	old := cutoff.Add(-time.Hour)

	writeAged(t, filepath.Join(root, "ok"), old)
	locked := filepath.Join(root, "locked")
	if err := os.Mkdir(locked, 0o000); err != nil {
		t.Fatal(err)
	}
	defer os.Chmod(locked, 0o755)

	policy, err := exclude.New(root, "", "")
	if err != nil {
		t.Fatal(err)
	}

	got := collect(t, root, policy, testPredicate(cutoff), 2)
	if len(got) != 1 || got[0] != filepath.Join(root, "ok") {
		t.Errorf("candidates = %v; unreadable directory should be skipped, not fatal", got)
	}
}
