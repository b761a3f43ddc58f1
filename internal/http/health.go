package http

import (
	"io"
	nethttp "net/http"
)

func (s *server) handleHealth(w nethttp.ResponseWriter, r *nethttp.Request) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(nethttp.StatusOK)
	_, _ = io.WriteString(w, `{"status":"ok"}`)
}
