package http

import (
	nethttp "net/http"

	validation "github.com/go-ozzo/ozzo-validation/v4"

	"github.com/claes/kiloview/internal/httputil"
	"github.com/claes/kiloview/internal/media"
)

// mediaParams carries the validated query parameters for GET /api/media.
type mediaParams struct {
	Path      string
	MediaType string
}

func (p mediaParams) Validate() error {
	return validation.ValidateStruct(&p,
		validation.Field(&p.Path, validation.Length(0, 4096)),
		validation.Field(&p.MediaType, validation.In(
			string(media.TypeImage), string(media.TypeVideo),
		)),
	)
}

func (s *server) handleMedia(w nethttp.ResponseWriter, r *nethttp.Request) {
	q := r.URL.Query()
	params := mediaParams{Path: q.Get("path"), MediaType: q.Get("media_type")}
	if err := params.Validate(); err != nil {
		httputil.RespondDetail(w, nethttp.StatusBadRequest, err.Error())
		return
	}
	var filter *media.Type
	if params.MediaType != "" {
		t, _ := media.ParseType(params.MediaType)
		filter = &t
	}
	listing, err := s.root.ListMedia(params.Path, filter)
	if err != nil {
		s.writeError(w, r, err)
		return
	}
	httputil.RespondJSON(w, nethttp.StatusOK, listing)
}
