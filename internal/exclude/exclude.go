// Package exclude builds the deny predicate applied during traversal.
// User patterns use gitignore syntax, evaluated relative to the source
// root; matching itself is delegated to go-git's gitignore matcher.
// Two rules are always enforced on top of the user's: the destination
// subtree is never descended into when it lies inside the source, and
// the exclusion file itself is never picked up as a candidate.
package exclude

import (
	"bufio"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/go-git/go-git/v5/plumbing/format/gitignore"
)

type Policy struct {
	root    string
	matcher gitignore.Matcher
}

// New compiles a Policy for the given canonical source root. dest and
// patternFile must also be canonical; either may be empty or lie
// outside the root, in which case no self-protection rule is needed
// for it.
func New(root, dest, patternFile string) (*Policy, error) {
	var patterns []gitignore.Pattern

	if patternFile != "" {
		ps, err := readPatterns(patternFile)
		if err != nil {
			return nil, fmt.Errorf("reading exclude file: %w", err)
		}
		patterns = append(patterns, ps...)
	}

	// Never walk into the quarantine area we are filling.
	if rel, ok := under(root, dest); ok {
		patterns = append(patterns, gitignore.ParsePattern("/"+rel+"/", nil))
	}

	// Never treat the pattern file as data.
	if rel, ok := under(root, patternFile); ok {
		patterns = append(patterns, gitignore.ParsePattern("/"+rel, nil))
	}

	return &Policy{
		root:    root,
		matcher: gitignore.NewMatcher(patterns),
	}, nil
}

// Excluded reports whether path (absolute, under the policy's root)
// should be pruned. For directories this is checked before descent, so
// an excluded directory is never opened.
func (p *Policy) Excluded(path string, isDir bool) bool {
	rel, err := filepath.Rel(p.root, path)
	if err != nil || rel == "." || rel == ".." || strings.HasPrefix(rel, "../") {
		return false
	}
	return p.matcher.Match(strings.Split(filepath.ToSlash(rel), "/"), isDir)
}

func readPatterns(path string) ([]gitignore.Pattern, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	var patterns []gitignore.Pattern
	scanner := bufio.NewScanner(f)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		patterns = append(patterns, gitignore.ParsePattern(line, nil))
	}
	if err := scanner.Err(); err != nil {
		return nil, err
	}
	return patterns, nil
}

// under returns path relative to root when path is a proper descendant
// of root.
func under(root, path string) (string, bool) {
	if path == "" || path == root {
		return "", false
	}
	rel, err := filepath.Rel(root, path)
	if err != nil || rel == "." || rel == ".." || strings.HasPrefix(rel, "../") {
		return "", false
	}
	return filepath.ToSlash(rel), true
}
