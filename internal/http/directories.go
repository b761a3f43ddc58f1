package http

import (
	nethttp "net/http"

	validation "github.com/go-ozzo/ozzo-validation/v4"

	"github.com/claes/kiloview/internal/httputil"
)

// directoriesParams carries the validated query parameters for
// GET /api/directories.
type directoriesParams struct {
	Path string
}

func (p directoriesParams) Validate() error {
	return validation.ValidateStruct(&p,
		validation.Field(&p.Path, validation.Length(0, 4096)),
	)
}

func (s *server) handleDirectories(w nethttp.ResponseWriter, r *nethttp.Request) {
	params := directoriesParams{Path: r.URL.Query().Get("path")}
	if err := params.Validate(); err != nil {
		httputil.RespondDetail(w, nethttp.StatusBadRequest, err.Error())
		return
	}
	listing, err := s.root.BuildListing(params.Path)
	if err != nil {
		s.writeError(w, r, err)
		return
	}
	httputil.RespondJSON(w, nethttp.StatusOK, listing)
}
