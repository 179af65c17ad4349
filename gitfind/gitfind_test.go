package gitfind

import (
	"os"
	"path/filepath"
	"reflect"
	"testing"
)

func mkRepo(t *testing.T, path string) {
	t.Helper()
	if err := os.MkdirAll(filepath.Join(path, ".git"), 0o755); err != nil {
		t.Fatal(err)
	}
}

func mkDir(t *testing.T, path string) {
	t.Helper()
	if err := os.MkdirAll(path, 0o755); err != nil {
		t.Fatal(err)
	}
}

func mkFile(t *testing.T, path string) {
	t.Helper()
	if err := os.WriteFile(path, []byte("x"), 0o644); err != nil {
		t.Fatal(err)
	}
}

func TestFind(t *testing.T) {
	root := t.TempDir()

	mkRepo(t, filepath.Join(root, "gamma"))
	mkRepo(t, filepath.Join(root, "alpha"))
	mkDir(t, filepath.Join(root, "beta"))
	mkFile(t, filepath.Join(root, "notes.txt"))

	// A .git file does not make a repository.
	mkDir(t, filepath.Join(root, "delta"))
	mkFile(t, filepath.Join(root, "delta", ".git"))

	got, err := Find(root, false)
	if err != nil {
		t.Fatalf("Find failed: %v", err)
	}

	want := []string{
		filepath.Join(root, "alpha"),
		filepath.Join(root, "gamma"),
	}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("Find = %v, want %v", got, want)
	}
}

func TestFindSubLevel(t *testing.T) {
	root := t.TempDir()

	mkRepo(t, filepath.Join(root, "github.com", "proj1"))
	mkRepo(t, filepath.Join(root, "github.com", "proj2"))
	mkRepo(t, filepath.Join(root, "gitlab.com", "proj3"))

	// Top-level repositories are not part of a sub-level scan.
	mkRepo(t, filepath.Join(root, "toplevel"))
	mkFile(t, filepath.Join(root, "notes.txt"))

	got, err := Find(root, true)
	if err != nil {
		t.Fatalf("Find failed: %v", err)
	}

	want := []string{
		filepath.Join(root, "github.com", "proj1"),
		filepath.Join(root, "github.com", "proj2"),
		filepath.Join(root, "gitlab.com", "proj3"),
	}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("Find = %v, want %v", got, want)
	}
}

func TestFindMissingRoot(t *testing.T) {
	if _, err := Find(filepath.Join(t.TempDir(), "missing"), false); err == nil {
		t.Error("expected error for missing root")
	}
}

func TestFindEmptyRoot(t *testing.T) {
	got, err := Find(t.TempDir(), false)
	if err != nil {
		t.Fatalf("Find failed: %v", err)
	}
	if len(got) != 0 {
		t.Errorf("Find = %v, want no repositories", got)
	}
}

func TestFinderIgnores(t *testing.T) {
	root := t.TempDir()

	mkRepo(t, filepath.Join(root, "keep"))
	mkRepo(t, filepath.Join(root, "archive"))
	mkRepo(t, filepath.Join(root, "work-old"))

	finder := NewFinder([]string{"archive", "*-old"})
	got, err := finder.Find(root, false)
	if err != nil {
		t.Fatalf("Find failed: %v", err)
	}

	want := []string{filepath.Join(root, "keep")}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("Find = %v, want %v", got, want)
	}
}

func TestFinderIgnoresSubLevel(t *testing.T) {
	root := t.TempDir()

	mkRepo(t, filepath.Join(root, "github.com", "take"))
	mkRepo(t, filepath.Join(root, "github.com", "skipme"))
	mkRepo(t, filepath.Join(root, "mirror", "take"))

	finder := NewFinder([]string{"github.com/skip*", "mirror"})
	got, err := finder.Find(root, true)
	if err != nil {
		t.Fatalf("Find failed: %v", err)
	}

	want := []string{filepath.Join(root, "github.com", "take")}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("Find = %v, want %v", got, want)
	}
}

func TestFindFollowsSymlinks(t *testing.T) {
	tmp := t.TempDir()

	target := filepath.Join(tmp, "target")
	mkRepo(t, target)

	root := filepath.Join(tmp, "root")
	mkDir(t, root)
	if err := os.Symlink(target, filepath.Join(root, "linked")); err != nil {
		t.Skipf("symlinks not supported: %v", err)
	}

	got, err := Find(root, false)
	if err != nil {
		t.Fatalf("Find failed: %v", err)
	}

	want := []string{filepath.Join(root, "linked")}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("Find = %v, want %v", got, want)
	}
}
