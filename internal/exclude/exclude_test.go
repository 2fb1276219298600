package exclude

import (
	"os"
	"path/filepath"
	"testing"
)

func TestDestinationInsideSourceIsExcluded(t *testing.T) {
	root := t.TempDir()
	dest := filepath.Join(root, "quarantine")

	p, err := New(root, dest, "")
	if err != nil {
		t.Fatal(err)
	}

	if !p.Excluded(dest, true) {
		t.Error("destination directory should be excluded from descent")
	}
	if p.Excluded(filepath.Join(root, "data"), true) {
		t.Error("sibling directory should not be excluded")
	}
}

func TestDestinationOutsideSourceAddsNoRule(t *testing.T) {
	root := t.TempDir()
	dest := t.TempDir()

	p, err := New(root, dest, "")
	if err != nil {
		t.Fatal(err)
	}

	if p.Excluded(filepath.Join(root, "anything"), true) {
		t.Error("nothing should be excluded when destination is outside the root")
	}
}

func TestPatternFileEntries(t *testing.T) {
	root := t.TempDir()
	pf := filepath.Join(root, ".sweepignore")
	content := "# comment\n\n*.log\nkeep/\n"
	if err := os.WriteFile(pf, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}

	p, err := New(root, "", pf)
	if err != nil {
		t.Fatal(err)
	}

	if !p.Excluded(filepath.Join(root, "sub", "x.log"), false) {
		t.Error("*.log should match files in subdirectories")
	}
	if p.Excluded(filepath.Join(root, "x.txt"), false) {
		t.Error("x.txt should not match *.log")
	}
	if !p.Excluded(filepath.Join(root, "keep"), true) {
		t.Error("keep/ should exclude the directory")
	}
	// The pattern file itself is protected.
	if !p.Excluded(pf, false) {
		t.Error("the pattern file must be excluded from the walk")
	}
}

func TestMissingPatternFileFails(t *testing.T) {
	root := t.TempDir()
	if _, err := New(root, "", filepath.Join(root, "absent")); err == nil {
		t.Error("New should fail when the pattern file cannot be read")
	}
}

func TestRootNeverExcluded(t *testing.T) {
	root := t.TempDir()
	p, err := New(root, root, "")
	if err != nil {
		t.Fatal(err)
	}
	if p.Excluded(root, true) {
		t.Error("the source root itself must never be excluded")
	}
}
