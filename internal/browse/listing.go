package browse

import (
	"errors"
	"fmt"
	"io/fs"
	"math/rand/v2"
	"os"
	"path/filepath"

	"github.com/claes/kiloview/internal/media"
	"github.com/claes/kiloview/internal/model"
)

// BuildListing scans the directory at rel and returns its subdirectories
// annotated with one-level media counts, plus the counts of media files
// directly inside the directory itself. Files never appear individually.
func (r Root) BuildListing(rel string) (model.Listing, error) {
	listing := model.Listing{
		Path:        cleanRel(rel),
		Directories: []model.DirectoryEntry{},
	}
	dir, err := r.ResolveDir(rel)
	if err != nil {
		return listing, err
	}
	entries, err := os.ReadDir(dir)
	if err != nil {
		return listing, fmt.Errorf("read %s: %w", dir, err)
	}

	// os.ReadDir returns entries sorted by name; that is the only sort.
	for _, e := range entries {
		if e.IsDir() {
			imgs, vids, err := countMedia(filepath.Join(dir, e.Name()))
			if err != nil {
				return listing, err
			}
			listing.Directories = append(listing.Directories, model.DirectoryEntry{
				Name:       e.Name(),
				Path:       joinRel(listing.Path, e.Name()),
				ImageCount: imgs,
				VideoCount: vids,
			})
			continue
		}
		if t, ok := media.Classify(e.Name()); ok {
			if t == media.TypeImage {
				listing.ImageCount++
			} else {
				listing.VideoCount++
			}
		}
	}
	return listing, nil
}

// countMedia tallies classifiable files directly inside dir. A permission
// failure yields zero counts instead of an error: one unreadable
// subdirectory must not fail the whole parent listing. Other read errors
// still propagate.
func countMedia(dir string) (images, videos int, err error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		if errors.Is(err, fs.ErrPermission) {
			return 0, 0, nil
		}
		return 0, 0, fmt.Errorf("read %s: %w", dir, err)
	}
	for _, e := range entries {
		if e.IsDir() {
			continue
		}
		if t, ok := media.Classify(e.Name()); ok {
			if t == media.TypeImage {
				images++
			} else {
				videos++
			}
		}
	}
	return images, videos, nil
}

// ListMedia returns the image and video files directly inside the
// directory at rel, sorted by name. A filter restricts classification to
// one type; the other slice stays empty. Subdirectories are ignored.
func (r Root) ListMedia(rel string, filter *media.Type) (model.MediaListing, error) {
	out := model.MediaListing{
		Path:   cleanRel(rel),
		Images: []model.MediaEntry{},
		Videos: []model.MediaEntry{},
	}
	dir, err := r.ResolveDir(rel)
	if err != nil {
		return out, err
	}
	entries, err := os.ReadDir(dir)
	if err != nil {
		return out, fmt.Errorf("read %s: %w", dir, err)
	}
	for _, e := range entries {
		if e.IsDir() {
			continue
		}
		t, ok := media.Classify(e.Name())
		if !ok || (filter != nil && t != *filter) {
			continue
		}
		entry := model.MediaEntry{Name: e.Name(), Path: joinRel(out.Path, e.Name())}
		if t == media.TypeImage {
			out.Images = append(out.Images, entry)
		} else {
			out.Videos = append(out.Videos, entry)
		}
	}
	return out, nil
}

// Slideshow builds the ordered sequence of entries of one type for the
// directory at rel, optionally shuffled once. A missing or non-directory
// path is a soft condition: it yields an empty sequence and found=false
// so the page can render "directory not found" instead of failing.
func (r Root) Slideshow(rel string, typ media.Type, randomize bool) (entries []model.MediaEntry, found bool) {
	listing, err := r.ListMedia(rel, &typ)
	if err != nil {
		return []model.MediaEntry{}, false
	}
	if typ == media.TypeImage {
		entries = listing.Images
	} else {
		entries = listing.Videos
	}
	if randomize {
		rand.Shuffle(len(entries), func(i, j int) {
			entries[i], entries[j] = entries[j], entries[i]
		})
	}
	return entries, true
}
