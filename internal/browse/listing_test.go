package browse

import (
	"errors"
	"os"
	"path/filepath"
	"reflect"
	"testing"

	"github.com/claes/kiloview/internal/media"
)

func TestBuildListing_CountsOneLevel(t *testing.T) {
	root := t.TempDir()
	write(t, filepath.Join(root, "A", "one.jpg"), "x")
	write(t, filepath.Join(root, "A", "two.jpg"), "x")
	write(t, filepath.Join(root, "A", "clip.mp4"), "x")
	write(t, filepath.Join(root, "b.png"), "x")

	l, err := NewRoot(root).BuildListing("")
	if err != nil {
		t.Fatal(err)
	}
	if l.Path != "" {
		t.Fatalf("path = %q, want \"\"", l.Path)
	}
	if len(l.Directories) != 1 {
		t.Fatalf("expected 1 directory, got %d", len(l.Directories))
	}
	d := l.Directories[0]
	if d.Name != "A" || d.Path != "A" || d.ImageCount != 2 || d.VideoCount != 1 {
		t.Fatalf("bad directory entry: %+v", d)
	}
	if l.ImageCount != 1 || l.VideoCount != 0 {
		t.Fatalf("top-level counts = %d/%d, want 1/0", l.ImageCount, l.VideoCount)
	}
}

func TestBuildListing_CountsAreNonRecursive(t *testing.T) {
	root := t.TempDir()
	write(t, filepath.Join(root, "A", "one.jpg"), "x")
	write(t, filepath.Join(root, "A", "deep", "hidden.jpg"), "x")

	l, err := NewRoot(root).BuildListing("")
	if err != nil {
		t.Fatal(err)
	}
	if l.Directories[0].ImageCount != 1 {
		t.Fatalf("nested file leaked into count: %+v", l.Directories[0])
	}
}

func TestBuildListing_SortedByName(t *testing.T) {
	root := t.TempDir()
	for _, name := range []string{"zeta", "alpha", "mid"} {
		if err := os.MkdirAll(filepath.Join(root, name), 0o755); err != nil {
			t.Fatal(err)
		}
	}
	l, err := NewRoot(root).BuildListing("")
	if err != nil {
		t.Fatal(err)
	}
	var names []string
	for _, d := range l.Directories {
		names = append(names, d.Name)
	}
	if !reflect.DeepEqual(names, []string{"alpha", "mid", "zeta"}) {
		t.Fatalf("bad order: %v", names)
	}
}

func TestBuildListing_UnreadableSubdirYieldsZeroCounts(t *testing.T) {
	if os.Geteuid() == 0 {
		t.Skip("permission checks are not enforced for root")
	}
	root := t.TempDir()
	locked := filepath.Join(root, "locked")
	write(t, filepath.Join(locked, "a.jpg"), "x")
	if err := os.Chmod(locked, 0o000); err != nil {
		t.Fatal(err)
	}
	t.Cleanup(func() { _ = os.Chmod(locked, 0o755) })

	l, err := NewRoot(root).BuildListing("")
	if err != nil {
		t.Fatalf("unreadable subdir must not fail listing: %v", err)
	}
	if len(l.Directories) != 1 {
		t.Fatalf("expected 1 directory, got %d", len(l.Directories))
	}
	d := l.Directories[0]
	if d.ImageCount != 0 || d.VideoCount != 0 {
		t.Fatalf("expected zero counts, got %+v", d)
	}
}

func TestBuildListing_Errors(t *testing.T) {
	root := t.TempDir()
	write(t, filepath.Join(root, "file.jpg"), "x")
	r := NewRoot(root)

	if _, err := r.BuildListing("missing"); !errors.Is(err, ErrNotFound) {
		t.Fatalf("missing: got %v, want ErrNotFound", err)
	}
	if _, err := r.BuildListing("file.jpg"); !errors.Is(err, ErrNotDirectory) {
		t.Fatalf("file: got %v, want ErrNotDirectory", err)
	}
	if _, err := r.BuildListing("../"); !errors.Is(err, ErrAccessDenied) {
		t.Fatalf("escape: got %v, want ErrAccessDenied", err)
	}
}

func TestListMedia_Filter(t *testing.T) {
	root := t.TempDir()
	write(t, filepath.Join(root, "a.png"), "x")
	write(t, filepath.Join(root, "b.mp4"), "x")
	write(t, filepath.Join(root, "notes.txt"), "x")
	r := NewRoot(root)

	imgOnly := media.TypeImage
	l, err := r.ListMedia("", &imgOnly)
	if err != nil {
		t.Fatal(err)
	}
	if len(l.Images) != 1 || l.Images[0].Name != "a.png" || l.Images[0].Path != "a.png" {
		t.Fatalf("bad images: %+v", l.Images)
	}
	if len(l.Videos) != 0 {
		t.Fatalf("videos must stay empty under image filter: %+v", l.Videos)
	}

	l, err = r.ListMedia("", nil)
	if err != nil {
		t.Fatal(err)
	}
	if len(l.Images) != 1 || len(l.Videos) != 1 {
		t.Fatalf("unfiltered: got %d/%d, want 1/1", len(l.Images), len(l.Videos))
	}
}

func TestListMedia_IgnoresSubdirectories(t *testing.T) {
	root := t.TempDir()
	write(t, filepath.Join(root, "sub", "inner.jpg"), "x")
	write(t, filepath.Join(root, "top.jpg"), "x")

	l, err := NewRoot(root).ListMedia("", nil)
	if err != nil {
		t.Fatal(err)
	}
	if len(l.Images) != 1 || l.Images[0].Name != "top.jpg" {
		t.Fatalf("bad images: %+v", l.Images)
	}
}

func TestSlideshow_Deterministic(t *testing.T) {
	root := t.TempDir()
	for _, name := range []string{"c.jpg", "a.jpg", "b.jpg"} {
		write(t, filepath.Join(root, name), "x")
	}
	r := NewRoot(root)

	first, found := r.Slideshow("", media.TypeImage, false)
	if !found {
		t.Fatal("expected found")
	}
	second, _ := r.Slideshow("", media.TypeImage, false)
	if !reflect.DeepEqual(first, second) {
		t.Fatalf("ordered slideshow not deterministic: %v vs %v", first, second)
	}
	if first[0].Name != "a.jpg" || first[1].Name != "b.jpg" || first[2].Name != "c.jpg" {
		t.Fatalf("bad order: %v", first)
	}
}

func TestSlideshow_ShuffleCoversPermutations(t *testing.T) {
	root := t.TempDir()
	write(t, filepath.Join(root, "a.jpg"), "x")
	write(t, filepath.Join(root, "b.jpg"), "x")
	r := NewRoot(root)

	seen := map[string]bool{}
	for i := 0; i < 200 && len(seen) < 2; i++ {
		entries, _ := r.Slideshow("", media.TypeImage, true)
		seen[entries[0].Name+entries[1].Name] = true
	}
	if len(seen) != 2 {
		t.Fatalf("shuffle never produced both orders: %v", seen)
	}
}

func TestSlideshow_MissingDirectoryIsSoft(t *testing.T) {
	r := NewRoot(t.TempDir())
	entries, found := r.Slideshow("nope", media.TypeImage, false)
	if found {
		t.Fatal("expected found=false for missing directory")
	}
	if len(entries) != 0 {
		t.Fatalf("expected empty sequence, got %v", entries)
	}
}
