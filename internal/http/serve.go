package http

import (
	nethttp "net/http"
	"os"
	"path"

	"github.com/claes/kiloview/internal/media"
)

// handleFile streams one file from under the root. The containment check
// runs here in full, independently of anything the client resolved
// earlier in the same session.
func (s *server) handleFile(w nethttp.ResponseWriter, r *nethttp.Request) {
	rel := r.PathValue("file")
	resolved, err := s.root.ResolveFile(rel)
	if err != nil {
		s.writeError(w, r, err)
		return
	}
	f, err := os.Open(resolved)
	if err != nil {
		s.writeError(w, r, err)
		return
	}
	defer f.Close()
	info, err := f.Stat()
	if err != nil {
		s.writeError(w, r, err)
		return
	}
	w.Header().Set("Content-Type", media.ContentType(path.Base(rel)))
	w.Header().Set("Cache-Control", "public, max-age=60")
	nethttp.ServeContent(w, r, "", info.ModTime(), f)
}
