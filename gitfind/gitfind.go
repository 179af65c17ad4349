// Package gitfind locates Git repositories under a directory.
//
// A repository is any directory containing a ".git" child directory.
// Scanning covers the immediate children of a root or, one sub-level
// down, the children of each child, which matches checkout layouts
// like ~/src/<host>/<repo>. Symbolic links to directories are followed.
package gitfind

import (
	"os"
	"path/filepath"
	"sort"

	"github.com/bmatcuk/doublestar/v4"
)

// Finder scans directories for Git repositories, skipping entries whose
// path relative to the scan root matches an ignore pattern.
type Finder struct {
	ignores []string
}

// NewFinder returns a Finder with the given doublestar ignore patterns.
func NewFinder(ignores []string) *Finder {
	return &Finder{ignores: ignores}
}

// Find returns the repositories under root using a Finder without
// ignore patterns.
func Find(root string, subLevel bool) ([]string, error) {
	return NewFinder(nil).Find(root, subLevel)
}

// Find returns the directories under root that contain a .git
// directory, sorted by path. With subLevel the children of each child
// directory are checked instead of the children themselves. Entries
// that cannot be read are skipped; an unreadable root is an error.
func (f *Finder) Find(root string, subLevel bool) ([]string, error) {
	entries, err := os.ReadDir(root)
	if err != nil {
		return nil, err
	}

	var repos []string
	for _, entry := range entries {
		path := filepath.Join(root, entry.Name())
		if !isDir(entry, path) || f.ignored(entry.Name()) {
			continue
		}

		if !subLevel {
			if hasGitDir(path) {
				repos = append(repos, path)
			}
			continue
		}

		subEntries, err := os.ReadDir(path)
		if err != nil {
			continue
		}
		for _, sub := range subEntries {
			subPath := filepath.Join(path, sub.Name())
			if !isDir(sub, subPath) || f.ignored(filepath.Join(entry.Name(), sub.Name())) {
				continue
			}
			if hasGitDir(subPath) {
				repos = append(repos, subPath)
			}
		}
	}

	sort.Strings(repos)
	return repos, nil
}

func (f *Finder) ignored(rel string) bool {
	for _, pattern := range f.ignores {
		if ok, err := doublestar.Match(pattern, rel); err == nil && ok {
			return true
		}
	}
	return false
}

// isDir reports whether the entry is a directory, following symlinks.
func isDir(entry os.DirEntry, path string) bool {
	if entry.IsDir() {
		return true
	}
	if entry.Type()&os.ModeSymlink == 0 {
		return false
	}
	info, err := os.Stat(path)
	return err == nil && info.IsDir()
}

// hasGitDir reports whether dir contains a .git directory. A .git file,
// as left by "git worktree" or submodules, does not count.
func hasGitDir(dir string) bool {
	info, err := os.Stat(filepath.Join(dir, ".git"))
	return err == nil && info.IsDir()
}
