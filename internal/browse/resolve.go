package browse

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
)

// Sentinel errors mapped to HTTP statuses by the transport layer.
var (
	ErrNotConfigured = errors.New("media root not configured")
	ErrNotFound      = errors.New("path not found")
	ErrNotDirectory  = errors.New("path is not a directory")
	ErrNotFile       = errors.New("path is not a regular file")
	ErrAccessDenied  = errors.New("access denied")
)

// Root bounds all resolvable paths. Constructed once at startup and never
// reassigned; every request-facing operation hangs off it.
type Root struct {
	dir string
}

// NewRoot returns a Root for dir. The caller is expected to have verified
// that dir exists and is a directory; resolution fails cleanly either way.
func NewRoot(dir string) Root {
	if dir == "" {
		return Root{}
	}
	abs, err := filepath.Abs(dir)
	if err != nil {
		return Root{dir: dir}
	}
	return Root{dir: abs}
}

// Dir returns the configured root directory ("" if unconfigured).
func (r Root) Dir() string { return r.dir }

// Resolve joins rel onto the root and enforces containment. The lexical
// check runs before stat so traversal attempts fail AccessDenied even when
// the target does not exist; after stat, symlinks are resolved and the
// check runs again against the canonical root.
func (r Root) Resolve(rel string) (string, fs.FileInfo, error) {
	if r.dir == "" {
		return "", nil, ErrNotConfigured
	}
	target := filepath.Join(r.dir, filepath.FromSlash(rel))
	if !isSubpath(r.dir, target) {
		return "", nil, ErrAccessDenied
	}
	info, err := os.Stat(target)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return "", nil, ErrNotFound
		}
		return "", nil, fmt.Errorf("stat %s: %w", target, err)
	}
	realRoot, err := filepath.EvalSymlinks(r.dir)
	if err != nil {
		return "", nil, fmt.Errorf("resolve root: %w", err)
	}
	realTarget, err := filepath.EvalSymlinks(target)
	if err != nil {
		return "", nil, fmt.Errorf("resolve %s: %w", target, err)
	}
	if !isSubpath(realRoot, realTarget) {
		return "", nil, ErrAccessDenied
	}
	return realTarget, info, nil
}

// ResolveDir resolves rel and requires it to be a directory.
func (r Root) ResolveDir(rel string) (string, error) {
	p, info, err := r.Resolve(rel)
	if err != nil {
		return "", err
	}
	if !info.IsDir() {
		return "", ErrNotDirectory
	}
	return p, nil
}

// ResolveFile resolves rel and requires it to be a regular file.
func (r Root) ResolveFile(rel string) (string, error) {
	p, info, err := r.Resolve(rel)
	if err != nil {
		return "", err
	}
	if !info.Mode().IsRegular() {
		return "", ErrNotFile
	}
	return p, nil
}

// isSubpath reports whether child is root or a descendant of root. The
// comparison is segment-aware via filepath.Rel, so a sibling like
// /media-evil never matches root /media.
func isSubpath(root, child string) bool {
	rel, err := filepath.Rel(root, child)
	if err != nil {
		return false
	}
	return rel != ".." && !strings.HasPrefix(rel, ".."+string(filepath.Separator))
}

// cleanRel normalizes a client-supplied relative path for echoing back in
// responses ("" means root).
func cleanRel(rel string) string {
	rel = filepath.ToSlash(filepath.Clean(filepath.FromSlash(rel)))
	rel = strings.TrimPrefix(rel, "/")
	if rel == "." {
		return ""
	}
	return rel
}

// joinRel appends a name to a relative path using forward slashes.
func joinRel(rel, name string) string {
	if rel == "" {
		return name
	}
	return rel + "/" + name
}
