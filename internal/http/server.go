package http

import (
	"errors"
	"html/template"
	"log/slog"
	nethttp "net/http"

	"github.com/claes/kiloview/internal/browse"
	"github.com/claes/kiloview/internal/httputil"
)

type server struct {
	root   browse.Root
	logger *slog.Logger
	slides *template.Template
}

// NewServer creates the HTTP handler for browsing and viewing media
// rooted at dir. An empty dir is tolerated; every request then answers
// with a configuration error instead of crashing.
func NewServer(dir string, logger *slog.Logger) nethttp.Handler {
	if logger == nil {
		logger = slog.Default()
	}
	s := &server{
		root:   browse.NewRoot(dir),
		logger: logger,
		slides: template.Must(template.New("slideshow").Parse(slideshowTpl)),
	}
	mux := nethttp.NewServeMux()
	mux.HandleFunc("GET /{$}", s.handleIndex)
	mux.HandleFunc("GET /health", s.handleHealth)
	mux.HandleFunc("GET /api/directories", s.handleDirectories)
	mux.HandleFunc("GET /api/media", s.handleMedia)
	mux.HandleFunc("GET /slideshow/{media_type}", s.handleSlideshow)
	mux.HandleFunc("GET /media/{file...}", s.handleFile)
	return mux
}

// writeError maps resolver errors to HTTP statuses. Anything outside the
// sentinel taxonomy is an unexpected I/O failure and becomes a 500.
func (s *server) writeError(w nethttp.ResponseWriter, r *nethttp.Request, err error) {
	var status int
	switch {
	case errors.Is(err, browse.ErrNotFound):
		status = nethttp.StatusNotFound
	case errors.Is(err, browse.ErrNotDirectory), errors.Is(err, browse.ErrNotFile):
		status = nethttp.StatusBadRequest
	case errors.Is(err, browse.ErrAccessDenied):
		status = nethttp.StatusForbidden
	default:
		status = nethttp.StatusInternalServerError
		s.logger.Error("request failed", "path", r.URL.Path, "err", err)
	}
	httputil.RespondDetail(w, status, err.Error())
}
