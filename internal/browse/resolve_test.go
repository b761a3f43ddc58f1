package browse

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
)

func write(t *testing.T, path, content string) {
	t.Helper()
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}
}

func TestResolve_EmptyAndDotYieldRoot(t *testing.T) {
	dir := t.TempDir()
	root := NewRoot(dir)
	for _, rel := range []string{"", "."} {
		p, info, err := root.Resolve(rel)
		if err != nil {
			t.Fatalf("Resolve(%q): %v", rel, err)
		}
		if !info.IsDir() {
			t.Fatalf("Resolve(%q): not a directory", rel)
		}
		real, _ := filepath.EvalSymlinks(dir)
		if p != real {
			t.Fatalf("Resolve(%q) = %q, want %q", rel, p, real)
		}
	}
}

func TestResolve_RejectsTraversal(t *testing.T) {
	base := t.TempDir()
	rootDir := filepath.Join(base, "media")
	write(t, filepath.Join(base, "secret"), "top secret")
	if err := os.MkdirAll(rootDir, 0o755); err != nil {
		t.Fatal(err)
	}
	root := NewRoot(rootDir)

	for _, rel := range []string{"../secret", "..", "a/../../secret", "../../etc/passwd"} {
		_, _, err := root.Resolve(rel)
		if !errors.Is(err, ErrAccessDenied) {
			t.Fatalf("Resolve(%q): got %v, want ErrAccessDenied", rel, err)
		}
	}
}

func TestResolve_SiblingPrefixDoesNotMatch(t *testing.T) {
	base := t.TempDir()
	rootDir := filepath.Join(base, "media")
	if err := os.MkdirAll(rootDir, 0o755); err != nil {
		t.Fatal(err)
	}
	write(t, filepath.Join(base, "media-evil", "x.jpg"), "x")

	root := NewRoot(rootDir)
	_, _, err := root.Resolve("../media-evil/x.jpg")
	if !errors.Is(err, ErrAccessDenied) {
		t.Fatalf("sibling prefix escape: got %v, want ErrAccessDenied", err)
	}
}

func TestResolve_NotFound(t *testing.T) {
	root := NewRoot(t.TempDir())
	_, _, err := root.Resolve("missing/thing.jpg")
	if !errors.Is(err, ErrNotFound) {
		t.Fatalf("got %v, want ErrNotFound", err)
	}
}

func TestResolve_SymlinkEscape(t *testing.T) {
	base := t.TempDir()
	rootDir := filepath.Join(base, "media")
	write(t, filepath.Join(base, "outside", "leak.jpg"), "leak")
	if err := os.MkdirAll(rootDir, 0o755); err != nil {
		t.Fatal(err)
	}
	if err := os.Symlink(filepath.Join(base, "outside"), filepath.Join(rootDir, "link")); err != nil {
		t.Skipf("symlinks not supported: %v", err)
	}

	root := NewRoot(rootDir)
	_, _, err := root.Resolve("link/leak.jpg")
	if !errors.Is(err, ErrAccessDenied) {
		t.Fatalf("symlink escape: got %v, want ErrAccessDenied", err)
	}
}

func TestResolve_Unconfigured(t *testing.T) {
	var root Root
	_, _, err := root.Resolve("anything")
	if !errors.Is(err, ErrNotConfigured) {
		t.Fatalf("got %v, want ErrNotConfigured", err)
	}
}

func TestResolveDirAndFile_KindChecks(t *testing.T) {
	dir := t.TempDir()
	write(t, filepath.Join(dir, "a.jpg"), "img")
	if err := os.MkdirAll(filepath.Join(dir, "sub"), 0o755); err != nil {
		t.Fatal(err)
	}
	root := NewRoot(dir)

	if _, err := root.ResolveDir("a.jpg"); !errors.Is(err, ErrNotDirectory) {
		t.Fatalf("ResolveDir(file): got %v, want ErrNotDirectory", err)
	}
	if _, err := root.ResolveFile("sub"); !errors.Is(err, ErrNotFile) {
		t.Fatalf("ResolveFile(dir): got %v, want ErrNotFile", err)
	}
	if _, err := root.ResolveDir("sub"); err != nil {
		t.Fatalf("ResolveDir(sub): %v", err)
	}
	if _, err := root.ResolveFile("a.jpg"); err != nil {
		t.Fatalf("ResolveFile(a.jpg): %v", err)
	}
}
